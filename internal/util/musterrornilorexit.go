package util

import (
	"fmt"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

const (
	ErrUnknownEncoding = 64
	ErrCodec           = 65
	ErrGeneric         = 99
)

// ExitCode maps an error onto the process exit code. Errors from the flags package carry their own type,
// unknown encodings and malformed data have dedicated codes, everything else (mostly I/O) is generic.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		switch flagsError.Type {
		case flags.ErrHelp:
			return 0
		case flags.ErrUnknown:
			return ErrGeneric
		}
		return int(flagsError.Type)
	}

	var codecError *enc.Error
	if errors.As(err, &codecError) {
		if codecError.Kind == enc.KindUnknownEncoding {
			return ErrUnknownEncoding
		}
		return ErrCodec
	}

	return ErrGeneric
}

// HelpOutput receives the usage text when help is requested
var HelpOutput io.Writer = os.Stdout

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. Otherwise it logs
// the error once and exits with the code returned by ExitCode. The parser must not print errors itself. Help
// requests print the usage text to HelpOutput and exit with 0.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		var flagsError *flags.Error
		if errors.As(err, &flagsError) {
			_, _ = fmt.Fprintln(HelpOutput, flagsError.Message)
		}
		os.Exit(0)
		return
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	} else {
		log.StandardLogger().Logf(log.FatalLevel, "Error: %v", err)
	}
	log.Exit(code)
}
