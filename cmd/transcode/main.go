package main

import (
	"fmt"
	"github.com/bokysan/transcode/internal/args"
	"github.com/bokysan/transcode/internal/commands/convert"
	"github.com/bokysan/transcode/internal/commands/list"
	"github.com/bokysan/transcode/internal/commands/version"
	tcFlags "github.com/bokysan/transcode/internal/flags"
	"github.com/bokysan/transcode/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Transcode is the main executable
type Transcode struct {
	parser *flags.Parser
}

// NewTranscode will create a new instance of Transcode and initialize the parser
func NewTranscode() *Transcode {
	executablePath := path.Base(os.Args[0])

	tc := &Transcode{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag),
	}

	tc.setupGeneral()
	tc.setupVersion()
	tc.setupList()
	tc.setupConvert()

	return tc
}

// setupGeneral will configure general options
func (tc *Transcode) setupGeneral() {
	if _, err := tc.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (tc *Transcode) setupVersion() {
	_, err := tc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		version.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupList adds the `list` command
func (tc *Transcode) setupList() {
	_, err := tc.parser.AddCommand(
		"list",
		"List encodings",
		"List every supported encoding with its aliases and a short description",
		list.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupConvert adds the `convert` command
func (tc *Transcode) setupConvert() {
	_, err := tc.parser.AddCommand(
		"convert",
		"Convert data between encodings",
		"Decode the input from IN-TYPE and encode it as OUT-TYPE. Reads stdin and writes stdout unless files are given.",
		convert.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// loadConfiguration is invoked by the parser as soon as it sees the `--config` option
func (tc *Transcode) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return tcFlags.NewYamlParser(tc.parser).ParseFile(file)
}

// main reads the configuration file, parses the command line and runs the selected command
func main() {
	transcode := NewTranscode()
	args.General.ConfigurationFile = transcode.loadConfiguration

	_, err := transcode.parser.Parse()
	util.MustErrorNilOrExit(err)
}
