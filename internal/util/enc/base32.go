package enc

import (
	"bytes"
	"encoding/base32"
	"github.com/pkg/errors"
)

// Base32Encoder encodes 5 bytes to 8 characters of the configured alphabet. Padded variants always produce a
// multiple of 8 characters and require it when decoding; unpadded variants never produce or accept `=`. Only
// canonical input decodes, so decoding and encoding again gives back the same characters.
type Base32Encoder struct {
	id       Encoding
	encoding *base32.Encoding
	// crockford enables Crockford's lenient decoding: lowercase letters are accepted, `O` reads as `0` and
	// `I`/`L` read as `1`.
	crockford bool
}

func NewBase32Encoder(id Encoding, encoding *base32.Encoding, crockford bool) *Base32Encoder {
	return &Base32Encoder{
		id:        id,
		encoding:  encoding,
		crockford: crockford,
	}
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, b.encoding.EncodedLen(len(data)))
	b.encoding.Encode(dst, data)
	return dst, nil
}

// Decode rejects everything Encode would not produce: truncated final groups of unpadded input, and non-zero
// trailing bits in the last character. Line breaks are skipped; offsets point into the original data.
func (b *Base32Encoder) Decode(data []byte) ([]byte, error) {
	src := data
	if b.crockford {
		src = normalizeCrockford(data)
	}
	src, positions := stripLineBreaks(src)
	offset := func(i int) int {
		if i < len(positions) {
			return positions[i]
		}
		return len(data)
	}

	// 1, 3 and 6 characters can't hold a whole byte; the standard library silently drops them
	if !b.padded() {
		switch rest := len(src) % 8; rest {
		case 1, 3, 6:
			return nil, errors.WithStack(newError(KindMalformedBase32, b.id, offset(len(src)-rest), nil))
		}
	}

	dst := make([]byte, b.encoding.DecodedLen(len(src)))
	n, err := b.encoding.Decode(dst, src)
	if err != nil {
		pos := -1
		var corrupt base32.CorruptInputError
		if errors.As(err, &corrupt) {
			pos = offset(int(corrupt))
		}
		return nil, errors.WithStack(newError(KindMalformedBase32, b.id, pos, err))
	}
	dst = dst[:n]

	if canonical, _ := b.Encode(dst); !bytes.Equal(canonical, src) {
		return nil, errors.WithStack(newError(KindMalformedBase32, b.id, offset(firstDifference(canonical, src)), nil))
	}
	return dst, nil
}

// padded is true if the encoding pads its output to full groups of 8 characters
func (b *Base32Encoder) padded() bool {
	return b.encoding.EncodedLen(1) == 8
}

// stripLineBreaks removes CR and LF and returns the offset of every remaining byte in the original data.
func stripLineBreaks(data []byte) ([]byte, []int) {
	res := make([]byte, 0, len(data))
	positions := make([]int, 0, len(data))
	for i, c := range data {
		if c == '\r' || c == '\n' {
			continue
		}
		res = append(res, c)
		positions = append(positions, i)
	}
	return res, positions
}

func firstDifference(a, b []byte) int {
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			return i
		}
	}
	return len(a)
}

// normalizeCrockford maps the alternative spellings allowed by Crockford's specification onto the canonical
// alphabet. The mapping is one to one, so error offsets still point into the original input.
func normalizeCrockford(data []byte) []byte {
	res := make([]byte, len(data))
	for i, c := range data {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'O':
			c = '0'
		case 'I', 'L':
			c = '1'
		}
		res[i] = c
	}
	return res
}
