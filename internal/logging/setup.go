package logging

import (
	"github.com/bokysan/transcode/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from args.General. Logs never go to stdout, as stdout
// carries the transcoded data.
func SetupLogging() error {
	SetVerbosity(args.General.Verbose)

	hooks := make(log.LevelHooks)
	if args.General.LogReportCaller {
		hooks.Add(&ContextHook{})
	}
	log.StandardLogger().ReplaceHooks(hooks)
	log.SetFormatter(newFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrapf(err, "Could not open log file %v", *args.General.LogFile)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	return nil
}

func newFormatter(format string, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}
