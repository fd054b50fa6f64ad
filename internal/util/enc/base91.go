package enc

import (
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// Base91Encoder converts each group of 13 bits into 2 radix-91 digits.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) Encode(data []byte) ([]byte, error) {
	return []byte(base91Encoding.EncodeToString(data)), nil
}

func (b *Base91Encoder) Decode(data []byte) ([]byte, error) {
	// basE91 decoders traditionally skip unknown characters. Reject them up front instead.
	for i, c := range data {
		if strings.IndexByte(cb91, c) < 0 {
			return nil, errors.WithStack(newError(KindMalformedBase91, Base91, i, nil))
		}
	}

	res, err := base91Encoding.DecodeString(string(data))
	if err != nil {
		return nil, errors.WithStack(newError(KindMalformedBase91, Base91, -1, err))
	}
	if res == nil {
		res = []byte{}
	}
	return res, nil
}
