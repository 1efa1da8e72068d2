package lz

import (
	"fmt"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
)

type TokenKind int

const (
	LiteralToken TokenKind = iota
	MatchToken
)

func (k TokenKind) String() string {
	switch k {
	case LiteralToken:
		return "literal"
	case MatchToken:
		return "match"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one decoded unit of the stream. Literal is only meaningful for
// literal tokens, Offset and Length only for matches.
type Token struct {
	Kind    TokenKind
	Literal byte
	Offset  int
	Length  int
}

// Size is the on-wire size of the token including its tag.
func (t Token) Size() int {
	if t.Kind == MatchToken {
		return matchTokenSize
	}
	return literalTokenSize
}

func AppendLiteral(dst []byte, b byte) []byte {
	return append(dst, LiteralTag, b)
}

// AppendMatch appends a match token. It reports false, leaving dst untouched,
// when offset or length do not fit the packed 16-bit field.
func AppendMatch(dst []byte, offset, length int) ([]byte, bool) {
	packed, ok := packMatch(offset, length)
	if !ok {
		return dst, false
	}
	dst = append(dst, MatchTag)
	return bitio.AppendUint16(dst, packed), true
}

func packMatch(offset, length int) (uint16, bool) {
	if offset < 1 || offset > MaxOffset || length < MinMatchLength || length > MaxMatchLength {
		return 0, false
	}
	encoded := offset<<4 | (length - MinMatchLength)
	if encoded > 0xFFFF {
		return 0, false
	}
	return uint16(encoded), true
}

func unpackMatch(packed uint16) (offset, length int) {
	return int(packed>>4) & 0x0FFF, int(packed&0x000F) + MinMatchLength
}

// readToken decodes the token starting at pos.
func readToken(stream []byte, pos int) (Token, error) {
	switch stream[pos] {
	case LiteralTag:
		if pos+literalTokenSize > len(stream) {
			return Token{}, fmt.Errorf("%w: literal at %d", ErrTruncatedStream, pos)
		}
		return Token{Kind: LiteralToken, Literal: stream[pos+1]}, nil
	case MatchTag:
		packed, err := bitio.Uint16(stream, pos+1)
		if err != nil {
			return Token{}, fmt.Errorf("%w: match at %d", ErrTruncatedStream, pos)
		}
		offset, length := unpackMatch(packed)
		return Token{Kind: MatchToken, Offset: offset, Length: length}, nil
	}
	return Token{}, fmt.Errorf("%w: 0x%02x at %d", ErrInvalidTag, stream[pos], pos)
}

// ParseTokens splits an encoded stream into tokens. On error the tokens
// decoded so far are returned with it.
func ParseTokens(stream []byte) ([]Token, error) {
	var tokens []Token
	for pos := 0; pos < len(stream); {
		token, err := readToken(stream, pos)
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		pos += token.Size()
	}
	return tokens, nil
}
