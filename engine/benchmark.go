package engine

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/FitrahHaque/Pixel-Compression-Engine/container"
	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"
)

const totalRowName = "TOTAL"

type BenchmarkRow struct {
	File            string  `csv:"file"`
	Algorithm       string  `csv:"algorithm"`
	OriginalSize    int     `csv:"original_bytes"`
	CompressedSize  int     `csv:"compressed_bytes"`
	Ratio           float64 `csv:"ratio"`
	SpaceSavings    float64 `csv:"space_savings_pct"`
	CompressNanos   int64   `csv:"compress_ns"`
	DecompressNanos int64   `csv:"decompress_ns"`
	Verified        bool    `csv:"verified"`
	// IsTotal marks the per-algorithm summary rows.
	IsTotal bool `csv:"-"`
}

func newRow(file, algorithm string, stats Stats) *BenchmarkRow {
	return &BenchmarkRow{
		File:           file,
		Algorithm:      algorithm,
		OriginalSize:   stats.Original,
		CompressedSize: stats.Compressed,
		Ratio:          stats.Ratio(),
		SpaceSavings:   stats.SpaceSavings(),
	}
}

// Benchmark runs every registered algorithm over every file. Files that are
// containers also get one row per payload method, measured against the raw
// pixel size. A TOTAL row per algorithm closes the table.
func Benchmark(files []string, cfg *Config) ([]*BenchmarkRow, error) {
	cfg = cfg.normalized()
	var (
		rows   []*BenchmarkRow
		errs   *multierror.Error
		totals = make(map[string]*Stats)
		order  []string
	)
	record := func(row *BenchmarkRow) {
		rows = append(rows, row)
		total, ok := totals[row.Algorithm]
		if !ok {
			total = new(Stats)
			totals[row.Algorithm] = total
			order = append(order, row.Algorithm)
		}
		total.Add(Stats{Original: row.OriginalSize, Compressed: row.CompressedSize})
	}

	for _, file := range files {
		content, err := cfg.readInput(file)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		cfg.heading("Benchmarking %s (%d bytes)\n", file, len(content))
		for _, algorithm := range Engines {
			row, err := benchmarkAlgorithm(file, algorithm, content, cfg)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s with %s: %w", file, algorithm, err))
				continue
			}
			cfg.printRow(row)
			record(row)
		}
		img, err := container.Read(content)
		if err != nil {
			continue
		}
		for method := container.CompressionDeflate; method <= container.CompressionZstd; method++ {
			row, err := benchmarkContainer(file, img, method, cfg)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s as %s container: %w", file, method, err))
				continue
			}
			cfg.printRow(row)
			record(row)
		}
	}

	for _, algorithm := range order {
		row := newRow(totalRowName, algorithm, *totals[algorithm])
		row.IsTotal = true
		row.Verified = true
		for _, r := range rows {
			if r.Algorithm == algorithm && !r.IsTotal && !r.Verified {
				row.Verified = false
			}
		}
		rows = append(rows, row)
	}
	return rows, errs.ErrorOrNil()
}

func benchmarkAlgorithm(file, algorithm string, content []byte, cfg *Config) (*BenchmarkRow, error) {
	single := *cfg
	single.Algorithms = []string{algorithm}

	start := time.Now()
	compressed, err := Compress(content, &single)
	if err != nil {
		return nil, err
	}
	compressTime := time.Since(start)

	start = time.Now()
	decompressed, err := Decompress(compressed, &single)
	if err != nil {
		return nil, err
	}
	decompressTime := time.Since(start)

	row := newRow(file, algorithm, Stats{Original: len(content), Compressed: len(compressed)})
	row.CompressNanos = compressTime.Nanoseconds()
	row.DecompressNanos = decompressTime.Nanoseconds()
	row.Verified = bytes.Equal(content, decompressed)
	return row, nil
}

func benchmarkContainer(file string, img *container.Image, method container.Compression, cfg *Config) (*BenchmarkRow, error) {
	opts := container.DefaultOptions()
	opts.Compression = method
	opts.ColorType = img.Header.ColorType
	opts.BitDepth = int(img.Header.BitDepth)
	opts.Level = cfg.Level

	start := time.Now()
	encoded, err := container.Write(int(img.Header.Width), int(img.Header.Height), img.Pixels, opts)
	if err != nil {
		return nil, err
	}
	compressTime := time.Since(start)

	start = time.Now()
	decoded, err := container.Read(encoded)
	if err != nil {
		return nil, err
	}
	decompressTime := time.Since(start)

	row := newRow(file, "container/"+method.String(), Stats{Original: len(img.Pixels), Compressed: len(encoded)})
	row.CompressNanos = compressTime.Nanoseconds()
	row.DecompressNanos = decompressTime.Nanoseconds()
	row.Verified = bytes.Equal(img.Pixels, decoded.Pixels)
	return row, nil
}

func (cfg *Config) printRow(row *BenchmarkRow) {
	line := fmt.Sprintf("%-18s %10d -> %10d  ratio %.3f  savings %6.1f%%\n",
		row.Algorithm, row.OriginalSize, row.CompressedSize, row.Ratio, row.SpaceSavings)
	if row.Verified {
		cfg.success("%s", line)
	} else {
		cfg.failure("%s", line)
	}
}

// WriteReport writes rows as CSV with a header line.
func WriteReport(w io.Writer, rows []*BenchmarkRow) error {
	return gocsv.Marshal(rows, w)
}
