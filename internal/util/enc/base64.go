package enc

import (
	"encoding/base64"
	"github.com/pkg/errors"
)

// Base64Encoder encodes 3 bytes to 4 characters of the configured alphabet. Decoding is strict: trailing bits
// of the last character must be zero, so every accepted input is the one Encode would produce.
type Base64Encoder struct {
	id       Encoding
	encoding *base64.Encoding
}

func NewBase64Encoder(id Encoding, encoding *base64.Encoding) *Base64Encoder {
	return &Base64Encoder{
		id:       id,
		encoding: encoding.Strict(),
	}
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, b.encoding.EncodedLen(len(data)))
	b.encoding.Encode(dst, data)
	return dst, nil
}

func (b *Base64Encoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, b.encoding.DecodedLen(len(data)))
	n, err := b.encoding.Decode(dst, data)
	if err != nil {
		offset := -1
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			offset = int(corrupt)
		}
		return nil, errors.WithStack(newError(KindMalformedBase64, b.id, offset, err))
	}
	return dst[:n], nil
}
