package lz_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incrementing(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func runRoundTrip(t *testing.T, original []byte, opts *lz.Options) []byte {
	compressed := lz.Compress(original, opts)
	decompressed, err := lz.Decompress(compressed)
	require.NoError(t, err, "unexpected error while decompressing")
	assert.Equal(t, len(original), len(decompressed), "decompressed data length is wrong")
	assert.True(t, bytes.Equal(original, decompressed), "decompressed data is wrong")
	t.Logf("compressed %d -> %d", len(original), len(compressed))
	return compressed
}

func TestRoundTrip(t *testing.T) {
	random := make([]byte, 9000)
	_, err := rand.Read(random)
	require.NoError(t, err)

	mixed := append(bytes.Repeat([]byte("pixel row "), 600), random[:3000]...)
	mixed = append(mixed, bytes.Repeat([]byte{0, 0, 0, 255, 255, 255}, 900)...)

	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{42}},
		{"two bytes", []byte{7, 7}},
		{"homogenous", bytes.Repeat([]byte{100}, 9174)},
		{"random past window", random},
		{"mixed past window", mixed},
		{"incrementing", incrementing(256)},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			runRoundTrip(t, test.Data, nil)
		})
	}
}

func TestEmptyBothWays(t *testing.T) {
	assert.Empty(t, lz.Compress(nil, nil))
	out, err := lz.Decompress(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRepeatedPatternShrinks(t *testing.T) {
	input := bytes.Repeat([]byte("ABCD"), 50)
	compressed := runRoundTrip(t, input, nil)
	assert.Less(t, len(compressed), len(input)/2)
}

func TestNoRepeatsExpandsByOneBytePerInput(t *testing.T) {
	input := incrementing(100)
	compressed := runRoundTrip(t, input, nil)
	require.Len(t, compressed, 200)
	for i := 0; i < 100; i++ {
		assert.EqualValues(t, lz.LiteralTag, compressed[2*i])
		assert.EqualValues(t, i, compressed[2*i+1])
	}
}

func TestOverlappingMatch(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 100)
	compressed := runRoundTrip(t, input, nil)

	tokens, err := lz.ParseTokens(compressed)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, lz.Token{Kind: lz.LiteralToken, Literal: 'a'}, tokens[0])
	assert.Equal(t, lz.Token{Kind: lz.MatchToken, Offset: 1, Length: lz.LookaheadSize}, tokens[1])
}

func TestTiesPreferEarliestStart(t *testing.T) {
	compressed := runRoundTrip(t, []byte("abcXabcYabc"), nil)
	tokens, err := lz.ParseTokens(compressed)
	require.NoError(t, err)

	expected := []lz.Token{
		{Kind: lz.LiteralToken, Literal: 'a'},
		{Kind: lz.LiteralToken, Literal: 'b'},
		{Kind: lz.LiteralToken, Literal: 'c'},
		{Kind: lz.LiteralToken, Literal: 'X'},
		{Kind: lz.MatchToken, Offset: 4, Length: 3},
		{Kind: lz.LiteralToken, Literal: 'Y'},
		{Kind: lz.MatchToken, Offset: 8, Length: 3},
	}
	assert.Equal(t, expected, tokens)
}

func TestOffsetPastFieldFallsBackToLiteral(t *testing.T) {
	input := make([]byte, 0, 4099)
	input = append(input, "xyz"...)
	for len(input) < lz.WindowSize {
		input = append(input, byte(len(input)%97))
	}
	input = append(input, "xyz"...)

	compressed := runRoundTrip(t, input, nil)
	tail := compressed[len(compressed)-6:]
	assert.Equal(t, []byte{lz.LiteralTag, 'x', lz.LiteralTag, 'y', lz.LiteralTag, 'z'}, tail)
}

func TestSmallWindowSeesNothing(t *testing.T) {
	compressed := runRoundTrip(t, []byte("abcabc"), &lz.Options{WindowSize: 2, Lookahead: 15})
	assert.Len(t, compressed, 12)
}

func TestLookaheadIsClamped(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 40)
	compressed := runRoundTrip(t, input, &lz.Options{WindowSize: lz.WindowSize, Lookahead: 100})

	tokens, err := lz.ParseTokens(compressed)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, lz.MaxMatchLength, tokens[1].Length)
	assert.Equal(t, lz.MaxMatchLength, tokens[2].Length)
	assert.Equal(t, 3, tokens[3].Length)
}

func TestZeroLookaheadEmitsLiteralsOnly(t *testing.T) {
	input := bytes.Repeat([]byte("ab"), 20)
	compressed := runRoundTrip(t, input, &lz.Options{WindowSize: lz.WindowSize})
	assert.Len(t, compressed, 2*len(input))
}

func TestAppendMatchRejectsOverflow(t *testing.T) {
	tests := []struct {
		Name           string
		Offset, Length int
	}{
		{"offset too far", lz.MaxOffset + 1, 3},
		{"zero offset", 0, 3},
		{"too long", 1, lz.MaxMatchLength + 1},
		{"too short", 1, lz.MinMatchLength - 1},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			out, ok := lz.AppendMatch([]byte{9}, test.Offset, test.Length)
			assert.False(t, ok)
			assert.Equal(t, []byte{9}, out)
		})
	}

	out, ok := lz.AppendMatch(nil, lz.MaxOffset, lz.MaxMatchLength)
	require.True(t, ok)
	assert.Equal(t, []byte{lz.MatchTag, 0xFF, 0xFF}, out)
}

func TestDecompressDamagedStreams(t *testing.T) {
	tests := []struct {
		Name     string
		Stream   []byte
		Partial  []byte
		Expected error
	}{
		{"literal cut short", []byte{lz.LiteralTag}, []byte{}, lz.ErrTruncatedStream},
		{"match cut short", []byte{lz.LiteralTag, 'a', lz.MatchTag, 0x00}, []byte("a"), lz.ErrTruncatedStream},
		{"match before start", []byte{lz.LiteralTag, 'a', lz.MatchTag, 0x00, 0x20}, []byte("a"), lz.ErrInvalidOffset},
		{"unknown tag", []byte{lz.LiteralTag, 'a', 0x07, 'b'}, []byte("a"), lz.ErrInvalidTag},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			out, err := lz.Decompress(test.Stream)
			assert.ErrorIs(t, err, test.Expected)
			assert.Equal(t, test.Partial, out)
		})
	}
}
