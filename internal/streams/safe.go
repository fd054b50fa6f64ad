package streams

import (
	"io"
	"sync"
)

// closeOnce passes only the first Close to the wrapped stream. Every later call succeeds without doing anything.
type closeOnce struct {
	closer io.Closer
	lock   sync.Mutex
	closed bool
}

func (c *closeOnce) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return LogClose(c.closer)
}

// Closed will return `true` if Close has been called at least once
func (c *closeOnce) Closed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.closed
}

// SafeReader is an io.ReadCloser which can be closed any number of times
type SafeReader struct {
	io.Reader
	*closeOnce
	wrapped io.ReadCloser
}

// NewSafeReader wraps the reader. It will not wrap a SafeReader twice.
func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if sr, ok := wrapped.(*SafeReader); ok {
		return sr
	}
	return &SafeReader{
		Reader:    wrapped,
		closeOnce: &closeOnce{closer: wrapped},
		wrapped:   wrapped,
	}
}

func (sr *SafeReader) WriteTo(w io.Writer) (n int64, err error) {
	if o, ok := sr.wrapped.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, sr.wrapped, make([]byte, BufferSize))
}

// Unwrap returns the wrapped io.ReadCloser
func (sr *SafeReader) Unwrap() io.ReadCloser {
	return sr.wrapped
}

// SafeWriter is an io.WriteCloser which can be closed any number of times
type SafeWriter struct {
	io.Writer
	*closeOnce
	wrapped io.WriteCloser
}

// NewSafeWriter wraps the writer. It will not wrap a SafeWriter twice.
func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if sw, ok := wrapped.(*SafeWriter); ok {
		return sw
	}
	return &SafeWriter{
		Writer:    wrapped,
		closeOnce: &closeOnce{closer: wrapped},
		wrapped:   wrapped,
	}
}

func (sw *SafeWriter) ReadFrom(r io.Reader) (n int64, err error) {
	if o, ok := sw.wrapped.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(sw.wrapped, r, make([]byte, BufferSize))
}

// Unwrap returns the wrapped io.WriteCloser
func (sw *SafeWriter) Unwrap() io.WriteCloser {
	return sw.wrapped
}
