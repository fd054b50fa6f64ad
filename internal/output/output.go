// Package output prints the result of a transform. It treats the data as opaque bytes: the raw format writes
// them unchanged, the safe format makes every byte visible on a terminal.
package output

import (
	"fmt"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format selects how data is printed to stdout
type Format string

const (
	FormatRaw  Format = "raw"
	FormatSafe Format = "safe"
)

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
	fallbackLexer      = "plaintext"
)

// Renderer writes the data to the given stream
type Renderer interface {
	Render(w io.Writer, data []byte) error
}

// NewRenderer returns the renderer for the format. Highlighting only applies to the safe format and should
// only be enabled when writing to a terminal.
func NewRenderer(format Format, highlight bool) (Renderer, error) {
	switch format {
	case FormatRaw, "":
		return &RawRenderer{}, nil
	case FormatSafe:
		return &SafeRenderer{Highlight: highlight}, nil
	default:
		return nil, errors.Errorf("Unknown output format: %s", format)
	}
}

// IsTerminal returns true if the file is connected to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RawRenderer writes bytes as they are
type RawRenderer struct {
}

func (r *RawRenderer) Render(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return errors.WithStack(err)
}

// SafeRenderer reveals non-printable content and optionally syntax-highlights the result
type SafeRenderer struct {
	Highlight bool
}

func (r *SafeRenderer) Render(w io.Writer, data []byte) error {
	text := Reveal(data)
	if !r.Highlight {
		_, err := io.WriteString(w, text)
		return errors.WithStack(err)
	}

	lexer := fallbackLexer
	if l := lexers.Analyse(text); l != nil {
		lexer = l.Config().Name
	}
	return errors.WithStack(quick.Highlight(w, text, lexer, highlightFormatter, highlightStyle))
}

// Reveal replaces everything which would not show up on a terminal with a visible placeholder: invalid UTF-8
// as `\xNN`, C0 controls as control pictures (newlines are kept after their `␊`), DEL as `␡` and other
// non-printable code points as `\u{NNNN}`.
func Reveal(data []byte) string {
	sb := &strings.Builder{}
	sb.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		switch {
		case r == utf8.RuneError && size == 1:
			_, _ = fmt.Fprintf(sb, "\\x%02X", data[0])
		case r == '\n':
			sb.WriteString("␊\n")
		case r < 0x20:
			sb.WriteRune(0x2400 + r)
		case r == 0x7f:
			sb.WriteRune('␡')
		case r == ' ' || unicode.IsPrint(r):
			sb.WriteRune(r)
		default:
			_, _ = fmt.Fprintf(sb, "\\u{%04X}", r)
		}
		data = data[size:]
	}

	return sb.String()
}
