package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 fingerprint of a symbol table.
func ID(symbols []byte) uint64 {
	return xxhash.Sum64(symbols)
}
