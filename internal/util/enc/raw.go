package enc

// RawEncoder passes bytes through untouched, in both directions
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) Encode(data []byte) ([]byte, error) {
	return clone(data), nil
}

func (b *RawEncoder) Decode(data []byte) ([]byte, error) {
	return clone(data), nil
}
