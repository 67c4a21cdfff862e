// Package errs defines the error values returned by basex and its
// subpackages.
//
// Every failure in the codec is reported as a returned error value; the
// core never retries, logs, or recovers internally. Errors carrying
// positional information are concrete value types so callers can extract
// the offending character or index via errors.As, while destination
// exhaustion is a plain sentinel checked with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall indicates the destination buffer ran out of room
// before the conversion finished.
//
// The error is detected incrementally while appending to the accumulator,
// not pre-computed, so the destination may contain partially written
// output when it is returned. Callers must treat the buffer contents as
// unspecified after this error.
var ErrBufferTooSmall = errors.New("destination buffer too small for converted output")

// NonASCIICharacterError reports a byte value of 128 or above, which can
// never be an alphabet symbol.
//
// It is returned both when constructing an alphabet from a symbol table
// containing such a byte and when decoding an input string containing one.
type NonASCIICharacterError struct {
	// Index is the byte offset at which the non-ASCII byte was seen.
	Index int
}

func (e NonASCIICharacterError) Error() string {
	return fmt.Sprintf("non-ascii character at index %d", e.Index)
}

// InvalidCharacterError reports an input character that is valid ASCII
// but not part of the alphabet used for decoding.
type InvalidCharacterError struct {
	// Character is the unexpected character.
	Character byte
	// Index is the byte offset in the input string.
	Index int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Character, e.Index)
}

// DuplicateCharacterError reports a symbol that appears at two positions
// of an alphabet's symbol table, which would make decoding ambiguous.
//
// First and Second are the first two occurrences scanning left to right.
type DuplicateCharacterError struct {
	// Character is the duplicated symbol.
	Character byte
	// First is the index of the first occurrence.
	First int
	// Second is the index of the second occurrence.
	Second int
}

func (e DuplicateCharacterError) Error() string {
	return fmt.Sprintf("duplicate character %q at indexes %d and %d", e.Character, e.First, e.Second)
}

// ErrRadixTooSmall indicates an alphabet with fewer than two symbols,
// which cannot represent any value.
var ErrRadixTooSmall = errors.New("alphabet must contain at least two symbols")
