package convert

import (
	"bytes"
	"github.com/bokysan/transcode/internal/output"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func newTestCommand(stdin string) (*Command, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &Command{
		stdin:  bytes.NewBufferString(stdin),
		stdout: stdout,
	}, stdout
}

// run parses the command line the same way the executable does and executes the command
func run(t *testing.T, cmd *Command, args ...string) error {
	parser := flags.NewNamedParser("transcode", flags.HelpFlag)
	_, err := parser.AddCommand("convert", "Convert", "Convert between encodings", cmd)
	require.NoError(t, err)

	_, err = parser.ParseArgs(append([]string{"convert"}, args...))
	return err
}

func Test_Convert_Positional(t *testing.T) {
	cmd, stdout := newTestCommand("616c6c796f75726261736561726562656c6f6e67746f7573")
	require.NoError(t, run(t, cmd, "hex", "base32"))
	require.Equal(t, "MFWGY6LPOVZGEYLTMVQXEZLCMVWG63THORXXK4Y=", stdout.String())
}

func Test_Convert_NamedTypes(t *testing.T) {
	cmd, stdout := newTestCommand("YWxseW91cmJhc2VhcmViZWxvbmd0b3Vz")
	require.NoError(t, run(t, cmd, "-I", "base64", "--out-type", "hex"))
	require.Equal(t, "616c6c796f75726261736561726562656c6f6e67746f7573", stdout.String())
}

func Test_Convert_Aliases(t *testing.T) {
	cmd, stdout := newTestCommand("YWxseW91cmJhc2VhcmViZWxvbmd0b3VzIQ")
	require.NoError(t, run(t, cmd, "base64:standard|", "raw"))
	require.Equal(t, "allyourbasearebelongtous!", stdout.String())
}

func Test_Convert_UnknownEncoding(t *testing.T) {
	cmd, stdout := newTestCommand("abc")
	err := run(t, cmd, "base36", "hex")
	require.True(t, errors.Is(err, enc.ErrUnknownEncoding))
	require.Contains(t, err.Error(), "Unknown encoding: base36")
	require.Empty(t, stdout.Bytes())
}

func Test_Convert_DecodeError(t *testing.T) {
	cmd, stdout := newTestCommand("abc")
	err := run(t, cmd, "hex", "raw")
	require.True(t, errors.Is(err, enc.ErrMalformedHex))
	require.Empty(t, stdout.Bytes(), "Nothing should be written on error")
}

func Test_Convert_SafeOutput(t *testing.T) {
	cmd, stdout := newTestCommand("00010aff")
	require.NoError(t, run(t, cmd, "-F", "safe", "hex", "raw"))
	require.Equal(t, "␀␁␊\n\\xFF", stdout.String())
}

func Test_Convert_InvalidOutFormat(t *testing.T) {
	cmd, _ := newTestCommand("00")
	err := run(t, cmd, "-F", "pretty", "hex", "raw")

	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrInvalidChoice, flagsErr.Type)
}

func Test_Convert_Files(t *testing.T) {
	dir, err := ioutil.TempDir("", "test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.bin")
	require.NoError(t, ioutil.WriteFile(in, []byte("AAEC/w=="), 0600))
	require.NoError(t, ioutil.WriteFile(out, []byte("previous content which is longer"), 0600))

	cmd, stdout := newTestCommand("")
	require.NoError(t, run(t, cmd, "-i", in, "-o", out, "-F", "safe", "base64", "raw"))

	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 0xff}, data, "Files should get raw bytes and be truncated")
	require.Empty(t, stdout.Bytes())
}

func Test_Convert_MissingInputFile(t *testing.T) {
	cmd, _ := newTestCommand("")
	err := run(t, cmd, "-i", filepath.Join("does", "not", "exist"), "hex", "raw")
	require.Error(t, err)
}

func Test_Convert_Environment(t *testing.T) {
	require.NoError(t, os.Setenv("TRANSCODE_IN_TYPE", "raw"))
	require.NoError(t, os.Setenv("TRANSCODE_OUT_TYPE", "base32:crockford"))
	defer os.Unsetenv("TRANSCODE_IN_TYPE")
	defer os.Unsetenv("TRANSCODE_OUT_TYPE")

	cmd, stdout := newTestCommand("hi")
	require.NoError(t, run(t, cmd))
	require.Equal(t, "D1MG", stdout.String())
}

func Test_Pipeline_Validation(t *testing.T) {
	for _, c := range []struct {
		name     string
		cmd      Command
		args     []string
		problems int
	}{
		{"nothing", Command{}, nil, 2},
		{"only input", Command{InType: "hex"}, nil, 1},
		{"only output", Command{OutType: "hex"}, nil, 1},
		{"one positional", Command{Types: Types{In: "hex"}}, nil, 1},
		{"mixed", Command{InType: "hex", Types: Types{In: "raw", Out: "hex"}}, nil, 1},
		{"mixed with extra args", Command{OutType: "hex", Types: Types{In: "raw"}}, []string{"extra"}, 2},
		{"nothing with extra args", Command{}, []string{"extra"}, 3},
		{"both unknown", Command{Types: Types{In: "base36", Out: "rot13"}}, nil, 2},
		{"unknown and missing", Command{InType: "base36"}, nil, 2},
	} {
		_, err := c.cmd.Pipeline(c.args)
		require.Errorf(t, err, "Expected validation of '%s' to fail", c.name)

		var merr *multierror.Error
		require.Truef(t, errors.As(err, &merr), "Expected all problems of '%s' to be reported", c.name)
		require.Lenf(t, merr.Errors, c.problems, "Invalid number of problems reported for '%s'", c.name)
	}
}

func Test_Pipeline_Valid(t *testing.T) {
	cmd := Command{Types: Types{In: "hex", Out: "base91"}}
	p, err := cmd.Pipeline(nil)
	require.NoError(t, err)
	require.Equal(t, enc.Hex, p.Source)
	require.Equal(t, enc.Base91, p.Target)

	cmd = Command{InType: "raw", OutType: "base64:bcrypt", OutFormat: output.FormatSafe}
	p, err = cmd.Pipeline(nil)
	require.NoError(t, err)
	require.Equal(t, "raw->base64:bcrypt", p.String())
}
