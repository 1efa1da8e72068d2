package lzhf

import "errors"

var (
	// ErrMalformedArchive covers a wrong magic tag and length fields that do
	// not fit the buffer. Unpack never attempts partial recovery from it.
	ErrMalformedArchive = errors.New("lzhf: malformed archive")
	ErrArchiveTooLarge  = errors.New("lzhf: encoded payload exceeds 32-bit bit length")
)
