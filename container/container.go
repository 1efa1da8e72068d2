// Package container reads and writes a minimal PNG-style image file: the PNG
// signature, one IHDR chunk, one or more IDAT chunks and an IEND chunk, each
// protected by a CRC-32. Scanlines always use filter type 0. The IDAT payload
// is zlib by default and may instead be LZSS or zstd; the IHDR compression
// byte records which.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

const DefaultMaxChunkSize = 8192

type Options struct {
	Compression Compression
	ColorType   ColorType
	BitDepth    int
	// MaxChunkSize caps each IDAT payload; the compressed stream is split
	// across as many chunks as needed.
	MaxChunkSize int
	// Level is the zlib level for deflate or the zstd level for zstd.
	Level int
}

func DefaultOptions() *Options {
	return &Options{
		Compression:  CompressionDeflate,
		ColorType:    ColorRGB,
		BitDepth:     8,
		MaxChunkSize: DefaultMaxChunkSize,
		Level:        6,
	}
}

func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	n := *o
	if n.BitDepth == 0 {
		n.BitDepth = 8
	}
	if n.MaxChunkSize <= 0 {
		n.MaxChunkSize = DefaultMaxChunkSize
	}
	return &n
}

type Image struct {
	Header Header
	Pixels []byte
}

// Write encodes width x height pixels, laid out row by row with no padding,
// into a complete container file.
func Write(width, height int, pixels []byte, opts *Options) ([]byte, error) {
	opts = opts.normalized()
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if opts.BitDepth > 255 {
		return nil, fmt.Errorf("%w: bit depth %d", ErrInvalidHeader, opts.BitDepth)
	}
	img := &Image{
		Header: Header{
			Width:     uint32(width),
			Height:    uint32(height),
			BitDepth:  uint8(opts.BitDepth),
			ColorType: opts.ColorType,
		},
		Pixels: pixels,
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes img to w. Dimensions, colour type and bit depth come from
// img.Header; the payload settings come from opts.
func Encode(w io.Writer, img *Image, opts *Options) error {
	opts = opts.normalized()
	header := img.Header
	header.Compression = opts.Compression
	header.Filter = 0
	header.Interlace = 0

	ihdr, err := header.MarshalBinary()
	if err != nil {
		return err
	}
	if len(img.Pixels) != header.PixelBytes() {
		return fmt.Errorf("%w: have %d bytes, %dx%d %s at depth %d needs %d",
			ErrPixelCount, len(img.Pixels), header.Width, header.Height,
			header.ColorType, header.BitDepth, header.PixelBytes())
	}

	raw := addFilters(img.Pixels, header.Stride(), int(header.Height))
	payload, err := compressPayload(raw, header.Compression, opts.Level)
	if err != nil {
		return fmt.Errorf("container: compressing %s payload: %w", header.Compression, err)
	}

	out := make([]byte, 0, len(Signature)+3*chunkOverhead+headerLength+len(payload)+
		chunkOverhead*(len(payload)/opts.MaxChunkSize))
	out = append(out, Signature[:]...)
	out = appendChunk(out, TypeIHDR, ihdr)
	for {
		n := min(len(payload), opts.MaxChunkSize)
		out = appendChunk(out, TypeIDAT, payload[:n])
		payload = payload[n:]
		if len(payload) == 0 {
			break
		}
	}
	out = appendChunk(out, TypeIEND, nil)

	_, err = w.Write(out)
	return err
}

// Read parses a container file. On ErrTruncated the returned image holds the
// header and every complete row that could still be decoded.
func Read(data []byte) (*Image, error) {
	if !hasSignature(data) {
		return nil, ErrBadSignature
	}

	var (
		header  *Header
		payload []byte
		ended   bool
		readErr error
	)
	for pos := len(Signature); !ended; {
		c, next, err := readChunk(data, pos)
		if err != nil {
			if !errors.Is(err, ErrTruncated) {
				return nil, err
			}
			readErr = err
			break
		}
		pos = next

		switch c.Type {
		case TypeIHDR:
			if header != nil {
				return nil, fmt.Errorf("%w: duplicate IHDR", ErrInvalidHeader)
			}
			header = new(Header)
			if err := header.UnmarshalBinary(c.Data); err != nil {
				return nil, err
			}
		case TypeIDAT:
			if header == nil {
				return nil, fmt.Errorf("%w: IDAT before IHDR", ErrMissingHeader)
			}
			payload = append(payload, c.Data...)
		case TypeIEND:
			ended = true
		}
		if !ended && pos == len(data) {
			readErr = fmt.Errorf("%w: no IEND chunk", ErrTruncated)
			break
		}
	}

	if header == nil {
		if readErr != nil {
			return nil, readErr
		}
		return nil, ErrMissingHeader
	}

	img := &Image{Header: *header}
	raw, decodeErr := decompressPayload(payload, header.Compression)
	pixels, filterErr := stripFilters(raw, header.Stride(), int(header.Height))
	img.Pixels = pixels
	if filterErr != nil {
		return img, filterErr
	}
	if readErr != nil {
		return img, readErr
	}
	if decodeErr != nil {
		return img, fmt.Errorf("container: decoding %s payload: %w", header.Compression, decodeErr)
	}
	if len(raw) != int(header.Height)*(header.Stride()+1) {
		return img, fmt.Errorf("%w: decoded %d scanline bytes, expected %d",
			ErrPixelCount, len(raw), int(header.Height)*(header.Stride()+1))
	}
	return img, nil
}

func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Read(data)
}
