package streams

import (
	"fmt"
	"io"
)

// NamedReader is a SafeReader which also implements fmt.Stringer. The name is what is shown in logs when the
// stream is printed with `%v`, e.g. the input file name or `stdin`.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (ns *NamedReader) WriteTo(w io.Writer) (n int64, err error) {
	if o, ok := ns.ReadCloserClosed.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, ns.ReadCloserClosed, make([]byte, BufferSize))
}

func (ns *NamedReader) String() string {
	return chainName(ns.name, ns.ReadCloserClosed)
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloserClosed
}

// -------------------------------------------------------

// NamedWriter is a SafeWriter which also implements fmt.Stringer.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) ReadFrom(r io.Reader) (n int64, err error) {
	if o, ok := ns.WriteCloserClosed.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(ns.WriteCloserClosed, r, make([]byte, BufferSize))
}

func (ns *NamedWriter) String() string {
	return chainName(ns.name, ns.WriteCloserClosed)
}

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloserClosed
}

// chainName walks the chain of wrapped streams and appends the name of the first one which has a name of
// its own, e.g. `demo->/tmp/file.bin`.
func chainName(name string, s interface{}) string {
	for {
		var next interface{}
		switch t := s.(type) {
		case UnwrappedReadCloser:
			next = t.Unwrap()
		case UnwrappedWriteCloser:
			next = t.Unwrap()
		default:
			return name
		}
		if v, ok := next.(fmt.Stringer); ok {
			return name + "->" + v.String()
		}
		s = next
	}
}
