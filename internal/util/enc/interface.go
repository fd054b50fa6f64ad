package enc

import (
	"github.com/pkg/errors"
)

// Encoder transforms between the raw form (arbitrary bytes) and the encoded form of one Encoding. Every
// implementation is stateless and safe for concurrent use. Both methods always return a freshly allocated
// buffer and never modify their input.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string

	// Encode takes raw bytes and produces the encoded form
	Encode([]byte) ([]byte, error)

	// Decode is the reverse process of encoding
	Decode([]byte) ([]byte, error)
}

// Decode interprets data as the encoded form of e and returns the raw bytes.
func Decode(e Encoding, data []byte) ([]byte, error) {
	d := Lookup(e)
	if d == nil {
		return nil, errors.WithStack(&Error{Kind: KindUnknownEncoding, Offset: -1, Value: e.String()})
	}
	return d.encoder.Decode(data)
}

// Encode produces the encoded form of the raw bytes under e.
func Encode(e Encoding, data []byte) ([]byte, error) {
	d := Lookup(e)
	if d == nil {
		return nil, errors.WithStack(&Error{Kind: KindUnknownEncoding, Offset: -1, Value: e.String()})
	}
	return d.encoder.Encode(data)
}

// clone returns a copy of the data that never aliases the input and is never nil
func clone(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)
	return res
}
