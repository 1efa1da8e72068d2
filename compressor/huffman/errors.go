package huffman

import "errors"

var (
	ErrCodeTooLong     = errors.New("huffman: code longer than 64 bits")
	ErrZeroLengthCode  = errors.New("huffman: code of zero length")
	ErrTruncatedTable  = errors.New("huffman: code table truncated")
	ErrDuplicateSymbol = errors.New("huffman: symbol listed twice in code table")
	ErrTooManySymbols  = errors.New("huffman: more than 256 symbols in code table")
	ErrNotPrefixFree   = errors.New("huffman: code table is not prefix-free")
	ErrInvalidCode     = errors.New("huffman: bit sequence matches no code")
)
