package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type convertOptions struct {
	InType    string `short:"I" long:"in-type"    yaml:"in-type"`
	OutType   string `short:"O" long:"out-type"   yaml:"out-type"`
	Out       string `short:"o" long:"out"        yaml:"out"`
	OutFormat string `short:"F" long:"out-format" yaml:"out-format"`
}

func (c *convertOptions) Execute(args []string) error {
	return nil
}

type generalOptions struct {
	LogFormat string `long:"log-format" yaml:"log-format"`
}

func newTestParser(t *testing.T) (*flags.Parser, *convertOptions, *generalOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)

	general := &generalOptions{}
	_, err := parser.AddGroup("General", "General options", general)
	require.NoErrorf(t, err, "Could not add general group")

	convert := &convertOptions{}
	_, err = parser.AddCommand("convert", "Convert", "Convert options", convert)
	require.NoErrorf(t, err, "Could not add convert command")

	return parser, convert, general
}

func Test_YamlParser_Empty(t *testing.T) {
	file := "testdata/empty.yml"

	parser, convert, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.Equal(t, convertOptions{}, *convert)
}

func Test_YamlParser_Convert(t *testing.T) {
	file := "testdata/convert.yml"

	parser, convert, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "hex", convert.InType, "Invalid reading of string value")
	require.Equal(t, "base32:crockford", convert.OutType, "Invalid reading of string value")
	require.Equal(t, "result.txt", convert.Out, "Invalid reading of string value")
}

func Test_YamlParser_MultipleDocuments(t *testing.T) {
	file := "testdata/multiple.yml"

	parser, convert, general := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "hex", convert.InType)
	require.Equal(t, "base64:url|", convert.OutType, "Later documents should override earlier ones")
	require.Equal(t, "safe", convert.OutFormat)
	require.Equal(t, "json", general.LogFormat, "Option groups should be matched regardless of case")
}

func Test_YamlParser_CommandLineOverrides(t *testing.T) {
	parser, convert, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/convert.yml")
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"convert", "-O", "base64"})
	require.NoError(t, err)
	require.Equal(t, "hex", convert.InType)
	require.Equal(t, "base64", convert.OutType)
}

func Test_YamlParser_NotAMapping(t *testing.T) {
	file := "testdata/invalid_not_mapping.yml"

	parser, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_YamlParser_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)

	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrUnknownGroup, flagsErr.Type)
}

func Test_YamlParser_InvalidSyntax(t *testing.T) {
	parser, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/invalid_syntax.yml")
	require.Error(t, err)
}

func Test_YamlParser_MissingFile(t *testing.T) {
	parser, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does_not_exist.yml")
	require.Error(t, err)
}

func Test_YamlParser_Reader(t *testing.T) {
	parser, convert, _ := newTestParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader("convert:\n  out-type: base91\n"))
	require.NoError(t, err)
	require.Equal(t, "base91", convert.OutType)
}
