package huffman_test

import (
	"testing"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalLayout(t *testing.T) {
	table := huffman.CodeTable{
		'B': {Bits: 0b01, Length: 2},
		'A': {Bits: 0b1, Length: 1},
		'C': {Bits: 0b1_0000_0001, Length: 9},
	}
	serialized, err := table.MarshalBinary()
	require.NoError(t, err)

	expected := []byte{
		0x00, 0x03,
		'A', 1, 0b1000_0000,
		'B', 2, 0b0100_0000,
		'C', 9, 0b1000_0000, 0b1000_0000,
	}
	assert.Equal(t, expected, serialized)
}

func TestTableRoundTrip(t *testing.T) {
	_, table, err := huffman.Encode([]byte("a table with enough symbols to get codes of several lengths"))
	require.NoError(t, err)

	serialized, err := table.MarshalBinary()
	require.NoError(t, err)

	withTrailer := append(serialized, 0xDE, 0xAD)
	parsed, consumed, err := huffman.UnmarshalTable(withTrailer)
	require.NoError(t, err)
	assert.Equal(t, len(serialized), consumed)
	assert.Equal(t, table, parsed)
}

func TestEmptyTableSerialization(t *testing.T) {
	serialized, err := huffman.CodeTable{}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, serialized)

	parsed, consumed, err := huffman.UnmarshalTable(serialized)
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
	assert.Empty(t, parsed)
}

func TestUnmarshalStripsPadding(t *testing.T) {
	parsed, _, err := huffman.UnmarshalTable([]byte{0, 1, 'x', 3, 0b1011_1111})
	require.NoError(t, err)
	assert.Equal(t, "101", parsed['x'].String())
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		Name     string
		Data     []byte
		Expected error
	}{
		{"no count", []byte{0}, huffman.ErrTruncatedTable},
		{"missing entry", []byte{0, 2, 'a', 1, 0x00}, huffman.ErrTruncatedTable},
		{"missing code bits", []byte{0, 1, 'a', 9, 0x00}, huffman.ErrTruncatedTable},
		{"duplicate", []byte{0, 2, 'a', 1, 0x00, 'a', 1, 0x80}, huffman.ErrDuplicateSymbol},
		{"zero length", []byte{0, 1, 'a', 0}, huffman.ErrZeroLengthCode},
		{"too long", []byte{0, 1, 'a', 65}, huffman.ErrCodeTooLong},
		{"too many", []byte{0x01, 0x01}, huffman.ErrTooManySymbols},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, _, err := huffman.UnmarshalTable(test.Data)
			assert.ErrorIs(t, err, test.Expected)
		})
	}
}
