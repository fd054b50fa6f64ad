package enc

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// Base128Encoder encodes 7 bytes to 8 octets, each carrying 7 bits. The output is plain 7-bit ASCII (control
// characters included) and keeps the sort order of the input.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, base128.EncodedLen(len(data)))
	base128.Encode(dst, data)
	return dst, nil
}

func (b *Base128Encoder) Decode(data []byte) ([]byte, error) {
	if pos := firstNonAscii(data); pos >= 0 {
		return nil, errors.WithStack(newError(KindMalformedBase128, Base128, pos, nil))
	}

	res, err := base128.DecodeString(string(data))
	if err != nil {
		return nil, errors.WithStack(newError(KindMalformedBase128, Base128, -1, err))
	}
	if res == nil {
		res = []byte{}
	}
	return res, nil
}
