package convert

import (
	"fmt"
	"github.com/bokysan/transcode/internal/logging"
	"github.com/bokysan/transcode/internal/output"
	"github.com/bokysan/transcode/internal/streams"
	"github.com/bokysan/transcode/internal/transcode"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// Types are the encodings given as positional arguments
type Types struct {
	In  string `positional-arg-name:"IN-TYPE"  description:"Encoding of the input"`
	Out string `positional-arg-name:"OUT-TYPE" description:"Encoding of the output"`
}

// Command reads the input, decodes it from one encoding, encodes it into another and writes the result.
type Command struct {
	In        string        `yaml:"in"         short:"i" long:"in"         env:"TRANSCODE_IN"         description:"Input file, '-' for stdin (default)"`
	Out       string        `yaml:"out"        short:"o" long:"out"        env:"TRANSCODE_OUT"        description:"Output file, '-' for stdout (default). Files are created or truncated."`
	InType    string        `yaml:"in-type"    short:"I" long:"in-type"    env:"TRANSCODE_IN_TYPE"    description:"Encoding of the input, instead of IN-TYPE"`
	OutType   string        `yaml:"out-type"   short:"O" long:"out-type"   env:"TRANSCODE_OUT_TYPE"   description:"Encoding of the output, instead of OUT-TYPE"`
	OutFormat output.Format `yaml:"out-format" short:"F" long:"out-format" env:"TRANSCODE_OUT_FORMAT" description:"How to print to stdout: raw bytes, or safe for terminals" choice:"raw" choice:"safe"`
	Types     Types         `yaml:"-"          positional-args:"yes"`

	stdin    io.Reader
	stdout   io.Writer
	terminal bool
}

func NewCommand() *Command {
	return &Command{
		stdin:    os.Stdin,
		stdout:   ansi.NewAnsiStdout(),
		terminal: output.IsTerminal(os.Stdout),
	}
}

func (c *Command) String() string {
	return fmt.Sprintf("convert %v -> %v", c.In, c.Out)
}

// Pipeline checks the arguments and returns the pipeline they describe. Encodings must be given either as two
// positional arguments or as both --in-type and --out-type, and must be known. Every problem found is reported.
func (c *Command) Pipeline(args []string) (*transcode.Pipeline, error) {
	var errs error

	if len(args) > 0 {
		errs = multierror.Append(errs, &flags.Error{
			Type:    flags.ErrUnknownCommand,
			Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " ")),
		})
	}

	positional := c.Types.In != "" || c.Types.Out != ""
	named := c.InType != "" || c.OutType != ""

	var in, out string
	switch {
	case positional && named:
		errs = multierror.Append(errs, &flags.Error{
			Type:    flags.ErrDuplicatedFlag,
			Message: "encodings must be given either as IN-TYPE OUT-TYPE or with --in-type and --out-type, not both",
		})
	case positional:
		in, out = c.Types.In, c.Types.Out
		if out == "" {
			errs = multierror.Append(errs, required("the required argument `OUT-TYPE` was not provided"))
		}
	default:
		in, out = c.InType, c.OutType
		if in == "" {
			errs = multierror.Append(errs, required("input encoding not specified: use IN-TYPE or --in-type"))
		}
		if out == "" {
			errs = multierror.Append(errs, required("output encoding not specified: use OUT-TYPE or --out-type"))
		}
	}

	source := parse(in, &errs)
	target := parse(out, &errs)

	if errs != nil {
		return nil, errs
	}
	return transcode.NewPipeline(source, target), nil
}

// parse resolves the encoding name. Empty names were already reported as missing.
func parse(name string, errs *error) enc.Encoding {
	if name == "" {
		return 0
	}
	e, err := enc.Parse(name)
	if err != nil {
		*errs = multierror.Append(*errs, err)
	}
	return e
}

func required(message string) error {
	return &flags.Error{
		Type:    flags.ErrRequired,
		Message: message,
	}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	pipeline, err := c.Pipeline(args)
	if err != nil {
		return err
	}

	data, err := streams.ReadInputFrom(c.In, c.stdin)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(data)
	if err != nil {
		return err
	}

	return c.write(result)
}

// write sends the result to the output. Only stdout is rendered; files always get the raw bytes.
func (c *Command) write(result []byte) error {
	if !streams.IsStandardIO(c.Out) {
		if c.OutFormat != "" && c.OutFormat != output.FormatRaw {
			log.Warnf("Output format '%v' only applies to stdout and is ignored when writing to %v", c.OutFormat, c.Out)
		}
		return streams.WriteOutputTo(c.Out, result, c.stdout)
	}

	renderer, err := output.NewRenderer(c.OutFormat, c.terminal)
	if err != nil {
		return err
	}

	w, err := streams.OpenOutputTo(c.Out, c.stdout)
	if err != nil {
		return err
	}
	if err := renderer.Render(w, result); err != nil {
		streams.TryClose(w)
		return errors.Wrapf(err, "Failed to write to %v", w)
	}
	log.Debugf("Rendered %d bytes to %v", len(result), w)
	return streams.LogClose(w)
}
