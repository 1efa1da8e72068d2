package lzhf_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lzhf"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte{10, 20, 30, 10, 20, 30, 40}, 500)

	expected, err := lzhf.Pack(original, nil)
	require.NoError(t, err)

	sink := make([]byte, len(expected))
	w := lzhf.NewWriter(bytewriter.New(sink), nil)
	_, err = w.Write(original[:100])
	require.NoError(t, err)
	_, err = w.Write(original[100:])
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, expected, sink)

	r, err := lzhf.NewReader(bytes.NewReader(sink))
	require.NoError(t, err)
	defer r.Close()
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestStreamReaderRejectsBadMagic(t *testing.T) {
	_, err := lzhf.NewReader(bytes.NewReader([]byte("PNG?0000")))
	assert.ErrorIs(t, err, lzhf.ErrMalformedArchive)
}

func TestStreamWriteAfterClose(t *testing.T) {
	var sink bytes.Buffer
	w := lzhf.NewWriter(&sink, nil)
	require.NoError(t, w.Close())
	_, err := w.Write([]byte{1})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
