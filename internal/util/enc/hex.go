package enc

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

// HexEncoder encodes 1 byte to 2 lowercase hex digits. Decoding accepts both cases.
type HexEncoder struct {
}

func (b *HexEncoder) Name() string {
	return "Hex"
}

func (b *HexEncoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(dst, data)
	return dst, nil
}

func (b *HexEncoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(dst, data); err != nil {
		return nil, errors.WithStack(newError(KindMalformedHex, Hex, hexErrorOffset(data), err))
	}
	return dst, nil
}

// hexErrorOffset finds the first character which is not a hex digit. If there is none, the input was of odd
// length and the dangling last digit is reported.
func hexErrorOffset(data []byte) int {
	for i, c := range data {
		if !isHexDigit(c) {
			return i
		}
	}
	if len(data)%2 == 1 {
		return len(data) - 1
	}
	return -1
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
