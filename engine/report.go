package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	headingColor = color.New(color.FgCyan, color.Bold)
)

func (cfg *Config) printf(format string, a ...any) {
	fmt.Fprintf(cfg.Output, format, a...)
}

func (cfg *Config) success(format string, a ...any) {
	successColor.Fprintf(cfg.Output, format, a...)
}

func (cfg *Config) failure(format string, a ...any) {
	failureColor.Fprintf(cfg.Output, format, a...)
}

func (cfg *Config) heading(format string, a ...any) {
	headingColor.Fprintf(cfg.Output, format, a...)
}

func (cfg *Config) printStats(stats Stats) {
	cfg.printf("Original size (in bytes): %v\n", stats.Original)
	cfg.printf("Compressed size (in bytes): %v\n", stats.Compressed)
	cfg.printf("Compression ratio: %.2f%%\n", stats.Ratio()*100)
	cfg.printf("Space savings: %.1f%%\n", stats.SpaceSavings())
}

// readInput loads a whole file, drawing a byte progress bar on the
// configured output while it does.
func (cfg *Config) readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !cfg.ShowProgress {
		return io.ReadAll(f)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	bar := pb.New64(info.Size())
	bar.Set(pb.Bytes, true)
	bar.SetWriter(cfg.Output)
	bar.Start()
	defer bar.Finish()
	return io.ReadAll(bar.NewProxyReader(f))
}
