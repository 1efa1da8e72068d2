package lzhf

import (
	"bytes"
	"io"
	"sync"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
)

// Writer buffers its input and writes one archive on Close.
type Writer struct {
	lock   sync.Mutex
	closed bool
	input  bytes.Buffer
	output io.Writer
	opts   *lz.Options
}

func NewWriter(w io.Writer, opts *lz.Options) io.WriteCloser {
	return &Writer{output: w, opts: opts}
}

func (w *Writer) Write(data []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.closed {
		return 0, io.ErrClosedPipe
	}
	return w.input.Write(data)
}

func (w *Writer) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	archive, err := Pack(w.input.Bytes(), w.opts)
	w.input.Reset()
	if err != nil {
		return err
	}
	_, err = w.output.Write(archive)
	return err
}

type Reader struct {
	lock   sync.Mutex
	output *bytes.Reader
}

// NewReader reads a whole archive from r and unpacks it up front.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	pixels, err := Unpack(data)
	if err != nil {
		return nil, err
	}
	return &Reader{output: bytes.NewReader(pixels)}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.output.Read(p)
}

func (r *Reader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.output.Reset(nil)
	return nil
}
