// Package basex converts byte sequences to and from textual
// representations in an arbitrary radix N (2 ≤ N ≤ 128, bounded by the
// 7-bit ASCII symbol space), using a
// caller-supplied bijective mapping between byte values and ASCII
// symbols.
//
// It is the primitive used to render binary identifiers — hashes, keys,
// addresses — as short, unambiguous text, and to turn that text back
// into the original bytes.
//
// # Core Features
//
//   - Big-integer base conversion with exact leading-zero handling
//   - Validated alphabets, static or runtime-configured (see the
//     alphabet subpackage), including Bitcoin/Monero/Ripple/Flickr
//     radix-58 constants
//   - A uniform output-target contract covering fixed buffers, growable
//     buffers, and in-place text buffers (see Target)
//   - Typed errors for invalid input and exhausted destinations (see the
//     errs subpackage)
//
// # Basic Usage
//
//	decoded, err := basex.Decode("he11owor1d", alphabet.Bitcoin).Bytes()
//	if err != nil {
//	    return err
//	}
//	encoded := basex.Encode(decoded, alphabet.Bitcoin).String()
//	// encoded == "he11owor1d"
//
// Changing the alphabet between decode and encode transliterates the
// value into another base's symbols:
//
//	decoded, _ := basex.Decode("he11owor1d", alphabet.Ripple).Bytes()
//	encoded := basex.Encode(decoded, alphabet.Flickr).String()
//	// encoded == "4DSSNaN1SC"
//
// Converting into an existing buffer avoids allocation:
//
//	var buf [16]byte
//	n, err := basex.Decode("he11owor1d", alphabet.Bitcoin).Into(basex.Slice(buf[:]))
//
// # Concurrency
//
// The package holds no mutable state between calls. Alphabets are
// immutable and freely shared; each conversion exclusively owns its
// destination for the duration of the call. Conversions on independent
// destinations may run concurrently without synchronization.
package basex

import "github.com/basex-go/basex/alphabet"

// EncodeToString encodes data into a new string using the given alphabet.
//
// It is shorthand for Encode(data, alpha).String().
func EncodeToString(data []byte, alpha alphabet.Alphabet) string {
	return Encode(data, alpha).String()
}

// DecodeString decodes the symbol string s into a new byte slice using
// the given alphabet.
//
// It is shorthand for Decode(s, alpha).Bytes().
func DecodeString(s string, alpha alphabet.Alphabet) ([]byte, error) {
	return Decode(s, alpha).Bytes()
}
