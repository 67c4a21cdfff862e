package compress

// ZstdCodec compresses payloads with Zstandard, trading some speed for
// the best compression ratio of the built-in codecs.
//
// Two implementations exist behind the cgozstd build tag: the default
// pure-Go implementation (klauspost/compress/zstd) and a cgo binding to
// libzstd (valyala/gozstd) for builds that can afford cgo.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
