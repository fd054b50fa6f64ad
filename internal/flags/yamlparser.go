// Package flags loads go-flags options from YAML configuration files.
package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser feeds a go-flags parser from a YAML file. Every top-level key of a document names a command
// (e.g. `convert:`) or an option group (e.g. `General:`) and the value below it is unmarshalled straight into
// the struct backing that command or group.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from a yaml formatted file. Files may reference other files relative to their own
// directory.
func (y *YamlParser) ParseFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("Could not close %s: %v", filename, err)
		}
	}()

	log.Debugf("Reading configuration from %v", filename)
	return y.Parse(f, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads all YAML documents (separated by `---`) from the reader and applies them in order. Later
// documents override values set by earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for document := 1; ; document++ {
		segment := make(map[string]interface{})
		err := decoder.Decode(&segment)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode configuration document %v", document)
		}

		if err = y.apply(segment); err != nil {
			return errors.Wrapf(err, "Invalid configuration document %v", document)
		}
	}
}

func (y *YamlParser) apply(segment map[string]interface{}) error {
	for name, val := range segment {
		group := y.target(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find command or option group '%s'", name),
			})
		}

		data, err := groupData(group)
		if err != nil {
			return err
		}

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Could not apply configuration of '%s'", name)
		}
		log.Tracef("Applied configuration of '%s'", name)
	}
	return nil
}

// target finds the group backing a command first and falls back to top-level option groups, matched by their
// short description regardless of case.
func (y *YamlParser) target(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, g := range y.parser.Groups() {
		if strings.EqualFold(g.ShortDescription, name) {
			return g
		}
	}
	return nil
}

// groupData digs out the pointer to the struct the group was created with. go-flags keeps it in an unexported
// field and offers no accessor.
func groupData(group *flags.Group) (interface{}, error) {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	if !dataField.IsValid() {
		return nil, errors.Errorf("Option group '%s' has no data", group.ShortDescription)
	}
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	data := dataField.Elem()
	if data.Kind() != reflect.Ptr || data.IsNil() {
		return nil, errors.Errorf("Option group '%s' is not backed by a pointer", group.ShortDescription)
	}
	return data.Interface(), nil
}
