package lzhf_test

import (
	"bytes"
	"testing"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/huffman"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lzhf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i * 7 / 3)
	}
	return out
}

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x42}},
		{"ABCD x50", bytes.Repeat([]byte("ABCD"), 50)},
		{"sequence", gradient(100)},
		{"solid block", bytes.Repeat([]byte{0xFF, 0x00, 0x00}, 64*64)},
		{"past window", gradient(10000)},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			packed, err := lzhf.Pack(test.Data, nil)
			require.NoError(t, err)
			assert.Equal(t, []byte("LZHF"), packed[:4])

			unpacked, err := lzhf.Unpack(packed)
			require.NoError(t, err)
			assert.Equal(t, len(test.Data), len(unpacked))
			if len(test.Data) > 0 {
				assert.Equal(t, test.Data, unpacked)
			}
		})
	}
}

func TestPackShrinksRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("ABCD"), 50)
	packed, err := lzhf.Pack(data, nil)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(data))
}

func TestEmptyArchiveLayout(t *testing.T) {
	packed, err := lzhf.Pack(nil, nil)
	require.NoError(t, err)
	// magic, zero bits, a two byte table holding a zero count
	expected := []byte{'L', 'Z', 'H', 'F', 0, 0, 0, 0, 0, 0, 0, 2, 0, 0}
	assert.Equal(t, expected, packed)
}

func TestArchiveFields(t *testing.T) {
	data := bytes.Repeat([]byte("ABCD"), 50)
	packed, err := lzhf.Pack(data, nil)
	require.NoError(t, err)

	archive, err := lzhf.ParseArchive(packed)
	require.NoError(t, err)

	tokens := lz.Compress(data, nil)
	assert.EqualValues(t, huffman.EncodedLength(huffman.Frequencies(tokens), archive.Table), archive.BitLength)
	assert.Equal(t, (int(archive.BitLength)+7)/8, len(archive.Payload))

	again, err := archive.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, packed, again)
}

func TestUnpackMalformed(t *testing.T) {
	valid, err := lzhf.Pack(bytes.Repeat([]byte("ABCD"), 50), nil)
	require.NoError(t, err)

	corrupt := func(mutate func([]byte) []byte) []byte {
		return mutate(append([]byte(nil), valid...))
	}

	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", nil},
		{"bad magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b })},
		{"magic only", valid[:4]},
		{"no table length", valid[:10]},
		{"table length too large", corrupt(func(b []byte) []byte {
			copy(b[8:12], bitio.AppendUint32(nil, 0xFFFF))
			return b
		})},
		{"short payload", valid[:len(valid)-1]},
		{"bit length too large", corrupt(func(b []byte) []byte {
			copy(b[4:8], bitio.AppendUint32(nil, 0xFFFFFF))
			return b
		})},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := lzhf.Unpack(test.Data)
			assert.ErrorIs(t, err, lzhf.ErrMalformedArchive)
		})
	}
}

func TestUnpackTruncatedTokens(t *testing.T) {
	// A Huffman payload whose decoded token stream ends halfway through a
	// match token.
	tokens := lz.AppendLiteral(nil, 'A')
	tokens, ok := lz.AppendMatch(tokens, 1, 5)
	require.True(t, ok)
	tokens = tokens[:len(tokens)-1]

	bits, table, err := huffman.Encode(tokens)
	require.NoError(t, err)
	archive := &lzhf.Archive{BitLength: uint32(bits.Len()), Table: table, Payload: bits.Bytes()}
	packed, err := archive.MarshalBinary()
	require.NoError(t, err)

	out, err := lzhf.Unpack(packed)
	assert.ErrorIs(t, err, lz.ErrTruncatedStream)
	assert.Equal(t, []byte("A"), out)
}

func TestEncodeMatchesBuild(t *testing.T) {
	data := gradient(3000)
	built, err := lzhf.Build(data, nil)
	require.NoError(t, err)
	encoded, err := lzhf.Encode(lz.Compress(data, nil))
	require.NoError(t, err)
	assert.Equal(t, built, encoded)

	out, err := encoded.Expand()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
