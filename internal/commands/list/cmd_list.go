package list

import (
	"fmt"
	"github.com/bokysan/transcode/internal/commands/version"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// Command prints the encodings the convert command accepts
type Command struct {
	Names bool `short:"n" long:"names" description:"Only print the accepted names, one per line"`

	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: ansi.NewAnsiStdout(),
	}
}

func (c *Command) String() string {
	return "List of encodings"
}

func (c *Command) Execute(args []string) error {
	if c.Names {
		for _, name := range enc.Names() {
			if _, err := fmt.Fprintln(c.stdout, name); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	return errors.WithStack(c.print())
}

func (c *Command) print() error {
	width := 0
	for _, d := range enc.All() {
		if len(d.Name) > width {
			width = len(d.Name)
		}
	}

	for _, d := range enc.All() {
		lossy := ""
		if !d.Lossless {
			lossy = version.DarkGray + " (text only)"
		}
		aliases := ""
		if len(d.Aliases) > 0 {
			aliases = version.DarkGray + " alias " + version.White + strings.Join(d.Aliases, ", ")
		}

		_, err := fmt.Fprintf(c.stdout, version.Bold+version.White+" %-*s "+version.Reset+
			version.DarkGray+"%-8v "+version.LightGray+"%s%s%s"+version.Reset+"\n",
			width, d.Name, d.Family, d.Description, lossy, aliases)
		if err != nil {
			return err
		}
	}
	return nil
}
