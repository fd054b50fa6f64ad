package enc

import (
	"fmt"
	"strings"
)

// Kind classifies errors produced by the encoders and the registry.
type Kind int

const (
	KindUnknownEncoding Kind = iota + 1
	KindNonAsciiInput
	KindNonAsciiOutput
	KindInvalidUtf8
	KindMalformedHex
	KindMalformedBase32
	KindMalformedBase64
	KindMalformedBase85
	KindMalformedBase91
	KindMalformedBase128
)

func (k Kind) String() string {
	switch k {
	case KindUnknownEncoding:
		return "unknown encoding"
	case KindNonAsciiInput:
		return "non-ASCII input"
	case KindNonAsciiOutput:
		return "non-ASCII output"
	case KindInvalidUtf8:
		return "invalid UTF-8"
	case KindMalformedHex:
		return "malformed hex"
	case KindMalformedBase32:
		return "malformed base32"
	case KindMalformedBase64:
		return "malformed base64"
	case KindMalformedBase85:
		return "malformed base85"
	case KindMalformedBase91:
		return "malformed base91"
	case KindMalformedBase128:
		return "malformed base128"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Parse and by every Encoder. Use errors.Is with one of the Err* sentinels to test for a
// specific kind, or errors.As to get at the encoding and the offset.
type Error struct {
	Kind     Kind
	Encoding Encoding // zero for KindUnknownEncoding
	Offset   int      // offset of the first offending byte, -1 if not known
	Value    string   // the rejected name for KindUnknownEncoding
	Err      error    // underlying library error, if any
}

var (
	ErrUnknownEncoding  = &Error{Kind: KindUnknownEncoding}
	ErrNonAsciiInput    = &Error{Kind: KindNonAsciiInput}
	ErrNonAsciiOutput   = &Error{Kind: KindNonAsciiOutput}
	ErrInvalidUtf8      = &Error{Kind: KindInvalidUtf8}
	ErrMalformedHex     = &Error{Kind: KindMalformedHex}
	ErrMalformedBase32  = &Error{Kind: KindMalformedBase32}
	ErrMalformedBase64  = &Error{Kind: KindMalformedBase64}
	ErrMalformedBase85  = &Error{Kind: KindMalformedBase85}
	ErrMalformedBase91  = &Error{Kind: KindMalformedBase91}
	ErrMalformedBase128 = &Error{Kind: KindMalformedBase128}
)

func newError(kind Kind, e Encoding, offset int, cause error) *Error {
	return &Error{
		Kind:     kind,
		Encoding: e,
		Offset:   offset,
		Err:      cause,
	}
}

func (e *Error) Error() string {
	if e.Kind == KindUnknownEncoding {
		return fmt.Sprintf("Unknown encoding: %s", e.Value)
	}

	sb := &strings.Builder{}
	if e.Encoding.Valid() {
		sb.WriteString(e.Encoding.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.Offset >= 0 {
		_, _ = fmt.Fprintf(sb, " at offset %d", e.Offset)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind. If the target has an encoding set, the encoding must match as well.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Encoding == 0 || t.Encoding == e.Encoding
}
