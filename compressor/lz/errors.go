package lz

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedStream = errors.New("lzss: token runs past end of stream")
	ErrInvalidOffset   = errors.New("lzss: match refers before start of output")
	ErrInvalidTag      = errors.New("lzss: unknown token tag")
)

func matchOffsetError(token Token, produced int) error {
	return fmt.Errorf("%w: offset %d with %d bytes produced", ErrInvalidOffset, token.Offset, produced)
}
