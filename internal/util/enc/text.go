package enc

import (
	"github.com/pkg/errors"
	"unicode/utf8"
)

// AsciiEncoder is an identity transform which only accepts bytes below 0x80.
type AsciiEncoder struct {
}

func (b *AsciiEncoder) Name() string {
	return "ASCII"
}

func (b *AsciiEncoder) Encode(data []byte) ([]byte, error) {
	if pos := firstNonAscii(data); pos >= 0 {
		return nil, errors.WithStack(newError(KindNonAsciiOutput, ASCII, pos, nil))
	}
	return clone(data), nil
}

func (b *AsciiEncoder) Decode(data []byte) ([]byte, error) {
	if pos := firstNonAscii(data); pos >= 0 {
		return nil, errors.WithStack(newError(KindNonAsciiInput, ASCII, pos, nil))
	}
	return clone(data), nil
}

func firstNonAscii(data []byte) int {
	for i, b := range data {
		if b >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// -------------------------------------------------------

// Utf8Encoder is an identity transform. Input is taken as-is, output must be valid UTF-8.
type Utf8Encoder struct {
}

func (b *Utf8Encoder) Name() string {
	return "UTF-8"
}

func (b *Utf8Encoder) Encode(data []byte) ([]byte, error) {
	if pos := firstInvalidUtf8(data); pos >= 0 {
		return nil, errors.WithStack(newError(KindInvalidUtf8, UTF8, pos, nil))
	}
	return clone(data), nil
}

// Decode does not validate. Whatever comes in is handed over as the raw form; validation happens when (and if)
// the bytes are encoded as UTF-8 again.
func (b *Utf8Encoder) Decode(data []byte) ([]byte, error) {
	return clone(data), nil
}

func firstInvalidUtf8(data []byte) int {
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
