package engine

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lzhf"
	"github.com/FitrahHaque/Pixel-Compression-Engine/container"
	"github.com/hashicorp/go-multierror"
)

var ErrVerificationFailed = errors.New("engine: unpacked pixels differ from the original")

// ImageReport describes one run of the image pipeline: container pixels
// through LZSS and Huffman into an archive, and back when verifying.
type ImageReport struct {
	Path          string
	Output        string
	Width, Height int
	ColorType     container.ColorType
	ContainerSize int
	PixelBytes    int
	TokenBytes    int
	ArchiveBytes  int
	TableEntries  int
	Digest        string

	Verified        bool
	RegeneratedSize int
}

func (r *ImageReport) LZSS() Stats {
	return Stats{Original: r.PixelBytes, Compressed: r.TokenBytes}
}

func (r *ImageReport) Huffman() Stats {
	return Stats{Original: r.TokenBytes, Compressed: r.ArchiveBytes}
}

func (r *ImageReport) Overall() Stats {
	return Stats{Original: r.PixelBytes, Compressed: r.ArchiveBytes}
}

// PackImage extracts the pixels of a container file, packs them into an
// archive written next to it and, with Verify set, unpacks the archive and
// checks it against the original pixels by size and SHA-256.
func PackImage(path string, cfg *Config) (*ImageReport, error) {
	cfg = cfg.normalized()
	if err := checkOutputPath(path, path+cfg.OutputExtension); err != nil {
		return nil, err
	}
	data, err := cfg.readInput(path)
	if err != nil {
		return nil, err
	}
	img, err := container.Read(data)
	if err != nil {
		return nil, fmt.Errorf("reading container: %w", err)
	}

	report := &ImageReport{
		Path:          path,
		Output:        path + cfg.OutputExtension,
		Width:         int(img.Header.Width),
		Height:        int(img.Header.Height),
		ColorType:     img.Header.ColorType,
		ContainerSize: len(data),
		PixelBytes:    len(img.Pixels),
	}
	digest := sha256.Sum256(img.Pixels)
	report.Digest = hex.EncodeToString(digest[:])

	cfg.heading("Packing %s (%dx%d %s)\n", path, report.Width, report.Height, report.ColorType)
	tokens := lz.Compress(img.Pixels, cfg.LZ)
	report.TokenBytes = len(tokens)
	archive, err := lzhf.Encode(tokens)
	if err != nil {
		return nil, err
	}
	report.TableEntries = len(archive.Table)
	packed, err := archive.MarshalBinary()
	if err != nil {
		return nil, err
	}
	report.ArchiveBytes = len(packed)

	if err := os.WriteFile(report.Output, packed, 0644); err != nil {
		return nil, err
	}
	cfg.printf("LZSS: %d -> %d bytes (ratio %.3f)\n", report.PixelBytes, report.TokenBytes, report.LZSS().Ratio())
	cfg.printf("Huffman: %d -> %d bytes, %d codes (ratio %.3f)\n",
		report.TokenBytes, report.ArchiveBytes, report.TableEntries, report.Huffman().Ratio())
	cfg.printf("Overall: ratio %.3f, savings %.1f%%\n", report.Overall().Ratio(), report.Overall().SpaceSavings())

	if cfg.Verify {
		if err := verifyImage(report, img, packed, cfg); err != nil {
			cfg.failure("Verification failed: %v\n", err)
			return report, err
		}
		cfg.success("Verified %s (sha256 %s)\n", report.Output, report.Digest[:16])
	} else {
		cfg.success("Wrote %s\n", report.Output)
	}
	return report, nil
}

func verifyImage(report *ImageReport, img *container.Image, packed []byte, cfg *Config) error {
	unpacked, err := lzhf.Unpack(packed)
	if err != nil {
		return err
	}
	if len(unpacked) != len(img.Pixels) {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrVerificationFailed, len(unpacked), len(img.Pixels))
	}
	if sha256.Sum256(unpacked) != sha256.Sum256(img.Pixels) {
		return fmt.Errorf("%w: digest mismatch", ErrVerificationFailed)
	}

	opts := container.DefaultOptions()
	opts.Compression = cfg.ImageCompression
	opts.ColorType = img.Header.ColorType
	opts.BitDepth = int(img.Header.BitDepth)
	opts.Level = cfg.Level
	regenerated, err := container.Write(report.Width, report.Height, unpacked, opts)
	if err != nil {
		return fmt.Errorf("regenerating container: %w", err)
	}
	back, err := container.Read(regenerated)
	if err != nil {
		return fmt.Errorf("re-reading container: %w", err)
	}
	if !bytes.Equal(back.Pixels, img.Pixels) {
		return fmt.Errorf("%w: regenerated container", ErrVerificationFailed)
	}
	report.RegeneratedSize = len(regenerated)
	report.Verified = true
	return nil
}

// PackImages runs PackImage on every path and prints a totals line.
func PackImages(paths []string, cfg *Config) ([]*ImageReport, error) {
	cfg = cfg.normalized()
	var (
		reports []*ImageReport
		total   Stats
		errs    *multierror.Error
	)
	for _, path := range paths {
		report, err := PackImage(path, cfg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		reports = append(reports, report)
		total.Add(report.Overall())
	}
	if len(reports) > 1 {
		cfg.heading("TOTAL: %d -> %d bytes, ratio %.3f, savings %.1f%%\n",
			total.Original, total.Compressed, total.Ratio(), total.SpaceSavings())
	}
	return reports, errs.ErrorOrNil()
}
