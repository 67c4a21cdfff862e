package compress

// NoOpCodec passes payloads through untouched. It backs the default
// "none" compression setting and is handy as a baseline in benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying. The returned
// slice shares memory with the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying. The returned
// slice shares memory with the input.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
