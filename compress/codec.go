// Package compress provides optional payload compression for the basex
// command-line tool: binary payloads can be compressed before being
// rendered as text, and decompressed again after decoding.
//
// The numeric codec itself never compresses anything; this package is a
// collaborator layered around it.
package compress

import "fmt"

// Type identifies a compression algorithm.
type Type uint8

const (
	// None passes payloads through unmodified.
	None Type = iota
	// Zstd is Zstandard compression, the best ratio of the set.
	Zstd
	// S2 is Snappy-compatible S2 compression, the fastest of the set.
	S2
	// LZ4 is LZ4 block compression.
	LZ4
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseType resolves an algorithm name as used in CLI flags.
func ParseType(name string) (Type, error) {
	switch name {
	case "none", "":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "s2":
		return S2, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("%q is not a known compression type", name)
	}
}

// Compressor compresses a payload into a newly allocated slice.
// The input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It validates
// the payload and returns an error if the data is corrupted or was
// produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
//
// All built-in codecs are stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
