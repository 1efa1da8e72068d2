package container

import (
	"errors"
	"fmt"
)

var (
	ErrBadSignature           = errors.New("container: bad signature")
	ErrMissingHeader          = errors.New("container: missing IHDR chunk")
	ErrInvalidHeader          = errors.New("container: invalid IHDR chunk")
	ErrInvalidDimensions      = errors.New("container: width and height must be positive")
	ErrPixelCount             = errors.New("container: pixel data does not match dimensions")
	ErrUnsupportedFilter      = errors.New("container: unsupported scanline filter")
	ErrUnsupportedCompression = errors.New("container: unsupported compression method")
	ErrChecksumMismatch       = errors.New("container: chunk checksum mismatch")
	ErrTruncated              = errors.New("container: truncated stream")
)

// ChecksumError reports the chunk whose stored CRC did not match its contents.
type ChecksumError struct {
	ChunkType string
	Stored    uint32
	Computed  uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("container: %s chunk checksum mismatch: stored 0x%08x, computed 0x%08x",
		e.ChunkType, e.Stored, e.Computed)
}

func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
