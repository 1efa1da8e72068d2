package lz

import (
	"bytes"
	"io"
	"sync"
)

type compressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         bytes.Buffer
	output              io.Writer
	opts                *Options
}

// CompressionWriter collects everything written to it and emits the token
// stream to the underlying writer on Close. LZSS needs the whole input to
// search the window, so nothing reaches the output before then.
type CompressionWriter struct {
	core *compressionCore
}

func NewWriter(w io.Writer, opts *Options) io.WriteCloser {
	return &CompressionWriter{
		core: &compressionCore{output: w, opts: opts},
	}
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return 0, io.ErrClosedPipe
	}
	return cw.core.inputBuffer.Write(data)
}

func (cw *CompressionWriter) Close() error {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return nil
	}
	cw.core.isInputBufferClosed = true
	compressed := Compress(cw.core.inputBuffer.Bytes(), cw.core.opts)
	cw.core.inputBuffer.Reset()
	_, err := cw.core.output.Write(compressed)
	return err
}

// DecompressionReader serves the bytes decoded from a complete token stream.
type DecompressionReader struct {
	lock   sync.Mutex
	output *bytes.Reader
}

// NewReader consumes r to EOF and decodes it. Damaged streams are rejected
// here rather than surfacing as a short read later.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	compressedData, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decompressedData, err := Decompress(compressedData)
	if err != nil {
		return nil, err
	}
	return &DecompressionReader{output: bytes.NewReader(decompressedData)}, nil
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.lock.Lock()
	defer dr.lock.Unlock()
	return dr.output.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.lock.Lock()
	defer dr.lock.Unlock()
	dr.output.Reset(nil)
	return nil
}
