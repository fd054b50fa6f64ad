package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// StandardIO is the file name which stands for stdin when reading and stdout when writing
const StandardIO = "-"

// noCloser keeps the process' standard streams open when the wrapping stream is closed
type noCloser struct {
	io.Writer
	name string
}

func (n *noCloser) Close() error {
	return nil
}

func (n *noCloser) String() string {
	return n.name
}

type noReadCloser struct {
	io.Reader
	name string
}

func (n *noReadCloser) Close() error {
	return nil
}

func (n *noReadCloser) String() string {
	return n.name
}

// OpenInput opens the named file for reading, or stdin for StandardIO.
func OpenInput(name string) (*NamedReader, error) {
	return OpenInputFrom(name, os.Stdin)
}

// OpenInputFrom is OpenInput with a replacement for stdin
func OpenInputFrom(name string, stdin io.Reader) (*NamedReader, error) {
	if IsStandardIO(name) {
		return NewNamedReader(&noReadCloser{Reader: stdin, name: "stdin"}, "input"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open file %v", name)
	}
	return NewNamedReader(f, name), nil
}

// ReadInput reads the whole input into memory. The stream is closed before returning.
func ReadInput(name string) ([]byte, error) {
	return ReadInputFrom(name, os.Stdin)
}

// ReadInputFrom is ReadInput with a replacement for stdin
func ReadInputFrom(name string, stdin io.Reader) ([]byte, error) {
	r, err := OpenInputFrom(name, stdin)
	if err != nil {
		return nil, err
	}
	defer TryClose(r)

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read from %v", r)
	}
	log.Debugf("Read %d bytes from %v", len(data), r)
	return data, nil
}

// OpenOutput opens the named file for writing, creating or truncating it, or stdout for StandardIO. Closing
// the returned writer never closes stdout.
func OpenOutput(name string) (*NamedWriter, error) {
	return OpenOutputTo(name, os.Stdout)
}

// OpenOutputTo is OpenOutput with a replacement for stdout
func OpenOutputTo(name string, stdout io.Writer) (*NamedWriter, error) {
	if IsStandardIO(name) {
		return NewNamedWriter(&noCloser{Writer: stdout, name: "stdout"}, "output"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create file %v", name)
	}
	return NewNamedWriter(f, name), nil
}

// WriteOutput writes all of the data to the named output and closes it.
func WriteOutput(name string, data []byte) error {
	return WriteOutputTo(name, data, os.Stdout)
}

func WriteOutputTo(name string, data []byte, stdout io.Writer) error {
	w, err := OpenOutputTo(name, stdout)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		TryClose(w)
		return errors.Wrapf(err, "Failed to write to %v", w)
	}
	log.Debugf("Wrote %d bytes to %v", len(data), w)
	return w.Close()
}

// IsStandardIO returns true if the name refers to stdin / stdout rather than a file
func IsStandardIO(name string) bool {
	return name == StandardIO || name == ""
}
