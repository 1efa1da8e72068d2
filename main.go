package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/FitrahHaque/Pixel-Compression-Engine/container"
	"github.com/FitrahHaque/Pixel-Compression-Engine/engine"
	"github.com/urfave/cli/v2"
)

func main() {
	algorithmFlag := &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   "lzhf",
		Usage:   fmt.Sprintf("Which algorithm(s) to use, comma separated, choices include: %s", strings.Join(engine.Engines[:], ", ")),
	}
	levelFlag := &cli.IntFlag{
		Name:  "level",
		Value: 6,
		Usage: "zlib/zstd compression level",
	}
	lookaheadFlag := &cli.IntFlag{
		Name:  "lookahead",
		Value: lz.LookaheadSize,
		Usage: fmt.Sprintf("LZSS lookahead, at most %d", lz.MaxMatchLength),
	}
	quietFlag := &cli.BoolFlag{
		Name:  "quiet",
		Usage: "Do not draw progress bars",
	}

	app := cli.App{
		Name:  "pixelpack",
		Usage: "Compress raw pixel data with LZSS and Huffman coding",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress files",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					algorithmFlag, levelFlag, lookaheadFlag, quietFlag,
					&cli.BoolFlag{Name: "delete", Usage: "Delete file after compression"},
					&cli.StringFlag{Name: "outfileext", Value: ".lzhf", Usage: "File extension used for the result"},
				},
				Action: compressFiles,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress files produced by compress",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					algorithmFlag, quietFlag,
					&cli.BoolFlag{Name: "delete", Usage: "Delete file after decompression"},
					&cli.StringFlag{Name: "outfileext", Value: ".out", Usage: "File extension used for the result"},
				},
				Action: decompressFiles,
			},
			{
				Name:      "image",
				Usage:     "Pack the pixels of PNG-style images into LZHF archives",
				ArgsUsage: "FILE.png...",
				Flags: []cli.Flag{
					levelFlag, lookaheadFlag, quietFlag,
					&cli.BoolFlag{Name: "verify", Value: true, Usage: "Unpack and compare against the original pixels"},
					&cli.StringFlag{Name: "compression", Value: "deflate", Usage: "Payload method of the regenerated image: deflate, lzss or zstd"},
					&cli.StringFlag{Name: "outfileext", Value: ".lzhf", Usage: "File extension used for the archive"},
				},
				Action: packImages,
			},
			{
				Name:      "benchmark",
				Usage:     "Compare every algorithm on the given files",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					levelFlag, lookaheadFlag, quietFlag,
					&cli.StringFlag{Name: "report", Usage: "Write the results as CSV to this path"},
					&cli.StringFlag{Name: "chart", Usage: "Draw the overall ratios as an SVG bar chart at this path"},
				},
				Action: benchmark,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func configFromContext(context *cli.Context) (*engine.Config, error) {
	if context.NArg() == 0 {
		return nil, fmt.Errorf("no file provided")
	}
	cfg := engine.DefaultConfig()
	if names := context.String("algorithm"); names != "" {
		algorithms := strings.Split(names, ",")
		for i := range algorithms {
			algorithms[i] = strings.TrimSpace(algorithms[i])
		}
		if err := engine.ValidateAlgorithms(algorithms); err != nil {
			return nil, err
		}
		cfg.Algorithms = algorithms
	}
	if context.IsSet("level") {
		cfg.Level = context.Int("level")
	}
	if context.IsSet("lookahead") {
		cfg.LZ.Lookahead = context.Int("lookahead")
	}
	if ext := context.String("outfileext"); ext != "" {
		cfg.OutputExtension = ext
	}
	cfg.DeleteInput = context.Bool("delete")
	cfg.ShowProgress = !context.Bool("quiet")
	return cfg, nil
}

func compressFiles(context *cli.Context) error {
	cfg, err := configFromContext(context)
	if err != nil {
		return err
	}
	_, err = engine.CompressFiles(context.Args().Slice(), cfg)
	return err
}

func decompressFiles(context *cli.Context) error {
	cfg, err := configFromContext(context)
	if err != nil {
		return err
	}
	_, err = engine.DecompressFiles(context.Args().Slice(), cfg)
	return err
}

func packImages(context *cli.Context) error {
	cfg, err := configFromContext(context)
	if err != nil {
		return err
	}
	cfg.Verify = context.Bool("verify")
	if cfg.ImageCompression, err = container.ParseCompression(context.String("compression")); err != nil {
		return err
	}
	_, err = engine.PackImages(context.Args().Slice(), cfg)
	return err
}

func benchmark(context *cli.Context) error {
	cfg, err := configFromContext(context)
	if err != nil {
		return err
	}
	rows, benchErr := engine.Benchmark(context.Args().Slice(), cfg)
	if path := context.String("report"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := engine.WriteReport(f, rows); err != nil {
			return err
		}
	}
	if path := context.String("chart"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := engine.RenderChart(f, rows); err != nil {
			return err
		}
	}
	return benchErr
}
