package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no `-v` is given. Errors and warnings are always shown.
const DefaultLevel = log.WarnLevel

// SetVerbosity raises the log level by one for every `-v` flag, up to trace
func SetVerbosity(v []bool) {
	log.SetLevel(verbosityLevel(len(v)))
}

func verbosityLevel(count int) log.Level {
	level := DefaultLevel + log.Level(count)
	if level > log.TraceLevel {
		level = log.TraceLevel
	}
	return level
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
