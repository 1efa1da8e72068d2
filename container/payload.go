package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how the filtered scanlines are packed into IDAT.
type Compression uint8

const (
	CompressionDeflate Compression = 0
	CompressionLZSS    Compression = 1
	CompressionZstd    Compression = 2
)

func (c Compression) valid() bool {
	return c <= CompressionZstd
}

func (c Compression) String() string {
	switch c {
	case CompressionDeflate:
		return "deflate"
	case CompressionLZSS:
		return "lzss"
	case CompressionZstd:
		return "zstd"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// ParseCompression accepts the names printed by String.
func ParseCompression(name string) (Compression, error) {
	for c := CompressionDeflate; c.valid(); c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCompression, name)
}

func compressPayload(raw []byte, method Compression, level int) ([]byte, error) {
	switch method {
	case CompressionDeflate:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(raw); err != nil {
			zw.Close()
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionLZSS:
		return lz.Compress(raw, nil), nil
	case CompressionZstd:
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		if err != nil {
			return nil, err
		}
		if _, err := enc.Write(raw); err != nil {
			enc.Close()
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, method)
}

// decompressPayload returns whatever it could decode even when it also
// returns an error, so a truncated stream still yields its leading rows.
func decompressPayload(payload []byte, method Compression) ([]byte, error) {
	switch method {
	case CompressionDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionLZSS:
		return lz.Decompress(payload)
	case CompressionZstd:
		dec, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		var out bytes.Buffer
		_, err = out.ReadFrom(dec)
		return out.Bytes(), err
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, method)
}
