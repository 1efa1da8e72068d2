package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lzhf"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

var Engines = [...]string{
	"lzss",
	"lzhf",
	"zlib",
	"zstd",
}

type newWriterFunc func(w io.Writer, cfg *Config) (io.WriteCloser, error)

type newReaderFunc func(r io.Reader) (io.ReadCloser, error)

var writers = map[string]newWriterFunc{
	"lzss": func(w io.Writer, cfg *Config) (io.WriteCloser, error) {
		return lz.NewWriter(w, cfg.LZ), nil
	},
	"lzhf": func(w io.Writer, cfg *Config) (io.WriteCloser, error) {
		return lzhf.NewWriter(w, cfg.LZ), nil
	},
	"zlib": func(w io.Writer, cfg *Config) (io.WriteCloser, error) {
		zw, err := zlib.NewWriterLevel(w, cfg.Level)
		if err != nil {
			return nil, err
		}
		return zw, nil
	},
	"zstd": func(w io.Writer, cfg *Config) (io.WriteCloser, error) {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(cfg.Level)))
		if err != nil {
			return nil, err
		}
		return enc, nil
	},
}

var readers = map[string]newReaderFunc{
	"lzss": lz.NewReader,
	"lzhf": lzhf.NewReader,
	"zlib": zlib.NewReader,
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
}

// ValidateAlgorithms checks every name against the registry.
func ValidateAlgorithms(names []string) error {
	for _, name := range names {
		if _, ok := writers[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}
	return nil
}
