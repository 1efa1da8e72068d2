package engine

import (
	"io"
	"os"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/FitrahHaque/Pixel-Compression-Engine/container"
)

type Config struct {
	// Algorithms are applied left to right when compressing and right to
	// left when decompressing.
	Algorithms      []string
	OutputExtension string
	DeleteInput     bool
	// Level is passed to zlib and zstd. Zero means 6.
	Level int
	LZ    *lz.Options

	// ImageCompression is the payload method for containers regenerated by
	// PackImage and for the container rows of Benchmark.
	ImageCompression container.Compression
	Verify           bool

	Output       io.Writer
	ShowProgress bool
}

func DefaultConfig() *Config {
	return &Config{
		Algorithms:       []string{"lzhf"},
		OutputExtension:  ".lzhf",
		Level:            6,
		LZ:               lz.DefaultOptions(),
		ImageCompression: container.CompressionDeflate,
		Verify:           true,
		Output:           os.Stdout,
		ShowProgress:     true,
	}
}

func (cfg *Config) normalized() *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	n := *cfg
	if len(n.Algorithms) == 0 {
		n.Algorithms = []string{"lzhf"}
	}
	if n.OutputExtension == "" {
		n.OutputExtension = ".lzhf"
	}
	if n.Level == 0 {
		n.Level = 6
	}
	if n.LZ == nil {
		n.LZ = lz.DefaultOptions()
	}
	if n.Output == nil {
		n.Output = io.Discard
	}
	return &n
}
