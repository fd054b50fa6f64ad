package version

import (
	"fmt"
	"github.com/bokysan/transcode/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details
type Command struct {
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion(i.stdout)
	fmt.Fprintf(i.stdout, DarkGray+" Author      "+White+"%+v"+Reset+"\n", "Bojan Cekrlic <github.com/bokysan>")
	details := []struct {
		label string
		value string
	}{
		{"Git tag   ", version.GitTag},
		{"Git branch", version.GitBranch},
		{"Git state ", version.GitState},
		{"Go version", version.GoVersion},
	}
	for _, d := range details {
		if d.value != "" {
			fmt.Fprintf(i.stdout, DarkGray+" %s  "+White+"%+v"+Reset+"\n", d.label, d.value)
		}
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" TRANSCODE - Convert between data encodings "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
