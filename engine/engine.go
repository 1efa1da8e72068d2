package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var ErrOutputIsInput = errors.New("engine: output path is the input path")

// checkOutputPath refuses to let a result overwrite the file it came from.
func checkOutputPath(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, output)
	}
	return nil
}

type compressor struct {
	compressionEngine string
	compressedContent []byte
}

func (c *compressor) write(content []byte, cfg *Config) (int, error) {
	newWriter, ok := writers[c.compressionEngine]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.compressionEngine)
	}
	var b bytes.Buffer
	w, err := newWriter(&b, cfg)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(content); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	c.compressedContent = b.Bytes()
	return len(c.compressedContent), nil
}

type decompressor struct {
	compressionEngine   string
	decompressedContent []byte
}

func (d *decompressor) read(content []byte) (int, error) {
	newReader, ok := readers[d.compressionEngine]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, d.compressionEngine)
	}
	r, err := newReader(bytes.NewReader(content))
	if err != nil {
		return 0, err
	}
	defer r.Close()
	if d.decompressedContent, err = io.ReadAll(r); err != nil {
		return 0, err
	}
	return len(d.decompressedContent), nil
}

// Compress feeds content through every configured algorithm in order.
func Compress(content []byte, cfg *Config) ([]byte, error) {
	cfg = cfg.normalized()
	for _, algorithm := range cfg.Algorithms {
		file := compressor{compressionEngine: algorithm}
		if _, err := file.write(content, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		content = file.compressedContent
	}
	return content, nil
}

// Decompress undoes Compress by applying the algorithms in reverse.
func Decompress(content []byte, cfg *Config) ([]byte, error) {
	cfg = cfg.normalized()
	for i := len(cfg.Algorithms) - 1; i >= 0; i-- {
		file := decompressor{compressionEngine: cfg.Algorithms[i]}
		if _, err := file.read(content); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Algorithms[i], err)
		}
		content = file.decompressedContent
	}
	return content, nil
}

type Result struct {
	Input  string
	Output string
	Stats
}

// CompressFiles writes <file><OutputExtension> for every file. A failing file
// is reported and skipped; all failures come back together.
func CompressFiles(files []string, cfg *Config) ([]Result, error) {
	cfg = cfg.normalized()
	if err := ValidateAlgorithms(cfg.Algorithms); err != nil {
		return nil, err
	}
	var (
		results []Result
		errs    *multierror.Error
	)
	for _, file := range files {
		result, err := compressFile(file, file+cfg.OutputExtension, cfg)
		if err != nil {
			cfg.failure("%s: %v\n", file, err)
			errs = multierror.Append(errs, fmt.Errorf("compressing %s: %w", file, err))
			continue
		}
		results = append(results, result)
	}
	return results, errs.ErrorOrNil()
}

func compressFile(filePath, outputFileName string, cfg *Config) (Result, error) {
	if err := checkOutputPath(filePath, outputFileName); err != nil {
		return Result{}, err
	}
	fileContent, err := cfg.readInput(filePath)
	if err != nil {
		return Result{}, err
	}
	cfg.printf("Compressing %s with %s...\n", filePath, strings.Join(cfg.Algorithms, ", "))
	compressed, err := Compress(fileContent, cfg)
	if err != nil {
		return Result{}, err
	}
	if err = os.WriteFile(outputFileName, compressed, 0644); err != nil {
		return Result{}, err
	}
	if cfg.DeleteInput {
		if err := os.Remove(filePath); err != nil {
			return Result{}, err
		}
	}

	result := Result{
		Input:  filePath,
		Output: outputFileName,
		Stats:  Stats{Original: len(fileContent), Compressed: len(compressed)},
	}
	cfg.printStats(result.Stats)
	cfg.success("Wrote %s\n", outputFileName)
	return result, nil
}

// DecompressFiles replaces the last extension of every file with
// OutputExtension, so "a.raw.lzhf" becomes "a.raw.out" with ".out".
func DecompressFiles(files []string, cfg *Config) ([]Result, error) {
	cfg = cfg.normalized()
	if err := ValidateAlgorithms(cfg.Algorithms); err != nil {
		return nil, err
	}
	var (
		results []Result
		errs    *multierror.Error
	)
	for _, file := range files {
		output := strings.TrimSuffix(file, filepath.Ext(file)) + cfg.OutputExtension
		result, err := decompressFile(file, output, cfg)
		if err != nil {
			cfg.failure("%s: %v\n", file, err)
			errs = multierror.Append(errs, fmt.Errorf("decompressing %s: %w", file, err))
			continue
		}
		results = append(results, result)
	}
	return results, errs.ErrorOrNil()
}

func decompressFile(filePath, outputFileName string, cfg *Config) (Result, error) {
	if err := checkOutputPath(filePath, outputFileName); err != nil {
		return Result{}, err
	}
	fileContent, err := cfg.readInput(filePath)
	if err != nil {
		return Result{}, err
	}
	cfg.printf("Decompressing %s...\n", filePath)
	decompressed, err := Decompress(fileContent, cfg)
	if err != nil {
		return Result{}, err
	}
	if err = os.WriteFile(outputFileName, decompressed, 0644); err != nil {
		return Result{}, err
	}
	if cfg.DeleteInput {
		if err := os.Remove(filePath); err != nil {
			return Result{}, err
		}
	}
	cfg.success("Wrote %s (%d bytes)\n", outputFileName, len(decompressed))
	return Result{
		Input:  filePath,
		Output: outputFileName,
		Stats:  Stats{Original: len(decompressed), Compressed: len(fileContent)},
	}, nil
}
