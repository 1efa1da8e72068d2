// Package lz implements the LZSS stage: a sliding-window match finder that
// emits tagged literal and match tokens, and the matching decoder.
package lz

// Compress encodes src as a token stream. A nil opts means DefaultOptions().
// Compress never fails: a match that does not fit the packed field is
// emitted as a literal instead.
func Compress(src []byte, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(src) == 0 {
		return []byte{}
	}

	window, lookahead := opts.window(), opts.lookahead()
	out := make([]byte, 0, len(src)*literalTokenSize)
	for pos := 0; pos < len(src); {
		offset, length := findLongestMatch(src, pos, window, lookahead)
		if length >= MinMatchLength {
			if encoded, ok := AppendMatch(out, offset, length); ok {
				out = encoded
				pos += length
				continue
			}
		}
		out = AppendLiteral(out, src[pos])
		pos++
	}
	return out
}

// findLongestMatch scans the window left to right and returns the backward
// offset and length of the longest run matching the bytes at pos. Matches
// shorter than MinMatchLength are reported as (0, 0). On equal lengths the
// earliest start, i.e. the largest offset, wins.
func findLongestMatch(src []byte, pos, window, lookahead int) (int, int) {
	maxLength := min(lookahead, len(src)-pos)
	if maxLength < MinMatchLength {
		return 0, 0
	}
	bestOffset, bestLength := 0, 0
	for i := max(0, pos-window); i < pos; i++ {
		if src[i] != src[pos] {
			continue
		}
		length := 0
		for length < maxLength && src[i+length] == src[pos+length] {
			length++
		}
		if length >= MinMatchLength && length > bestLength {
			bestOffset, bestLength = pos-i, length
			if bestLength == maxLength {
				break
			}
		}
	}
	return bestOffset, bestLength
}

// Decompress rebuilds the original bytes from a token stream. If the stream
// is damaged the bytes decoded up to that point are returned together with
// ErrTruncatedStream, ErrInvalidOffset or ErrInvalidTag.
func Decompress(stream []byte) ([]byte, error) {
	out := make([]byte, 0, len(stream))
	for pos := 0; pos < len(stream); {
		token, err := readToken(stream, pos)
		if err != nil {
			return out, err
		}
		switch token.Kind {
		case LiteralToken:
			out = append(out, token.Literal)
		case MatchToken:
			start := len(out) - token.Offset
			if token.Offset == 0 || start < 0 {
				return out, matchOffsetError(token, len(out))
			}
			// Byte by byte: with offset < length the source overlaps the
			// bytes this very match produces.
			for k := 0; k < token.Length; k++ {
				out = append(out, out[start+k])
			}
		}
		pos += token.Size()
	}
	return out, nil
}
