package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// TryClose closes the stream and only reports to log if it fails
func TryClose(closer io.Closer) {
	_ = LogClose(closer)
}

// LogClose closes the stream, logs and returns the error, if any. Streams which report that they are already
// closed are skipped.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	log.Tracef("%v successfully closed", closer)
	return nil
}
