package container

import (
	"fmt"
	"math"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
)

type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorRGB            ColorType = 2
	ColorGrayscaleAlpha ColorType = 4
	ColorRGBA           ColorType = 6
)

// Samples is the number of channels per pixel, or 0 for an unknown type.
func (c ColorType) Samples() int {
	switch c {
	case ColorGrayscale:
		return 1
	case ColorRGB:
		return 3
	case ColorGrayscaleAlpha:
		return 2
	case ColorRGBA:
		return 4
	}
	return 0
}

func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "grayscale"
	case ColorRGB:
		return "rgb"
	case ColorGrayscaleAlpha:
		return "grayscale+alpha"
	case ColorRGBA:
		return "rgba"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(c))
}

const headerLength = 13

// Header mirrors the IHDR chunk. Compression records the payload method
// so a reader can pick the matching decoder.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   ColorType
	Compression Compression
	Filter      uint8
	Interlace   uint8
}

// Stride is the number of pixel bytes in one row, without the filter byte.
func (h *Header) Stride() int {
	return int(h.Width) * h.ColorType.Samples() * int(h.BitDepth) / 8
}

// PixelBytes is the size of the unfiltered pixel buffer.
func (h *Header) PixelBytes() int {
	return h.Stride() * int(h.Height)
}

func (h *Header) Validate() error {
	if h.Width == 0 || h.Height == 0 || h.Width > math.MaxInt32 || h.Height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}
	if h.ColorType.Samples() == 0 {
		return fmt.Errorf("%w: colour type %d", ErrInvalidHeader, h.ColorType)
	}
	if h.BitDepth != 8 && h.BitDepth != 16 {
		return fmt.Errorf("%w: bit depth %d", ErrInvalidHeader, h.BitDepth)
	}
	if !h.Compression.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedCompression, h.Compression)
	}
	if h.Filter != 0 {
		return fmt.Errorf("%w: filter method %d", ErrInvalidHeader, h.Filter)
	}
	if h.Interlace != 0 {
		return fmt.Errorf("%w: interlace method %d", ErrInvalidHeader, h.Interlace)
	}
	return nil
}

func (h *Header) MarshalBinary() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerLength)
	out = bitio.AppendUint32(out, h.Width)
	out = bitio.AppendUint32(out, h.Height)
	return append(out, h.BitDepth, byte(h.ColorType), byte(h.Compression), h.Filter, h.Interlace), nil
}

func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != headerLength {
		return fmt.Errorf("%w: length %d", ErrInvalidHeader, len(data))
	}
	h.Width, _ = bitio.Uint32(data, 0)
	h.Height, _ = bitio.Uint32(data, 4)
	h.BitDepth = data[8]
	h.ColorType = ColorType(data[9])
	h.Compression = Compression(data[10])
	h.Filter = data[11]
	h.Interlace = data[12]
	return h.Validate()
}
