package enc

import (
	"encoding/ascii85"
	"github.com/pkg/errors"
)

// Base85Encoder encodes 4 bytes to 5 characters (ascii85, `!` through `u`, plus `z` for four zero bytes).
// The `<~` and `~>` delimiters are neither produced nor accepted.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return dst[:n], nil
}

func (b *Base85Encoder) Decode(data []byte) ([]byte, error) {
	// every `z` expands into four bytes
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		offset := -1
		var corrupt ascii85.CorruptInputError
		if errors.As(err, &corrupt) {
			offset = int(corrupt)
		}
		return nil, errors.WithStack(newError(KindMalformedBase85, Base85, offset, err))
	}
	return dst[:ndst], nil
}
