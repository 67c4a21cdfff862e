// Package alphabet provides validated symbol tables for arbitrary-base
// conversion.
//
// An alphabet is a bijective mapping between digit values 0..N and single
// ASCII symbols. Validation happens exactly once, at construction: every
// symbol must be 7-bit ASCII and no symbol may appear twice. The encode
// and decode engines never re-validate, they only perform table lookups.
//
// Two concrete variants implement the Alphabet interface:
//
//   - Static owns a private copy of its symbol table. Use New or MustNew.
//   - Dynamic borrows an externally-owned symbol slice without copying,
//     useful for runtime-configured alphabets where the caller already
//     holds the table. Use NewDynamic.
//
// Pre-validated radix-58 constants (Bitcoin, Monero, Ripple, Flickr) are
// provided for the common short-identifier encodings.
package alphabet

import (
	"github.com/basex-go/basex/errs"
	"github.com/basex-go/basex/internal/hash"
)

// absent marks decode-table slots whose ASCII value is not an alphabet
// symbol. Digit values are always < 128, so 0xFF can never collide.
const absent = 0xFF

// Alphabet is a prepared, immutable digit↔symbol mapping.
//
// Implementations are safe for concurrent use by multiple goroutines:
// all methods are read-only after construction.
type Alphabet interface {
	// Radix returns the number of symbols, i.e. the numeric base.
	Radix() int

	// Symbol returns the symbol for the given digit value.
	// The digit must be < Radix(); passing a larger value is a
	// programming error and may panic.
	Symbol(digit byte) byte

	// Digit returns the digit value for the given symbol, and whether
	// the symbol belongs to the alphabet.
	Digit(symbol byte) (byte, bool)

	// ID returns the xxHash64 fingerprint of the symbol table. Two
	// alphabets with identical tables have identical IDs.
	ID() uint64
}

// table is the shared core of Static and Dynamic.
type table struct {
	symbols []byte
	inverse [128]byte
	id      uint64
}

// newTable validates symbols and builds the inverse lookup table.
// The caller decides whether symbols is owned or borrowed.
func newTable(symbols []byte) (table, error) {
	t := table{symbols: symbols}
	if len(symbols) < 2 {
		return t, errs.ErrRadixTooSmall
	}

	for i := range t.inverse {
		t.inverse[i] = absent
	}
	for i, c := range symbols {
		if c >= 128 {
			return t, errs.NonASCIICharacterError{Index: i}
		}
		if prev := t.inverse[c]; prev != absent {
			return t, errs.DuplicateCharacterError{Character: c, First: int(prev), Second: i}
		}
		t.inverse[c] = byte(i)
	}
	t.id = hash.ID(symbols)

	return t, nil
}

// Radix returns the number of symbols in the alphabet.
func (t *table) Radix() int {
	return len(t.symbols)
}

// Symbol returns the symbol for the given digit value.
func (t *table) Symbol(digit byte) byte {
	return t.symbols[digit]
}

// Digit returns the digit value for the given symbol, and whether the
// symbol belongs to the alphabet.
func (t *table) Digit(symbol byte) (byte, bool) {
	if symbol >= 128 {
		return 0, false
	}
	d := t.inverse[symbol]

	return d, d != absent
}

// ID returns the xxHash64 fingerprint of the symbol table.
func (t *table) ID() uint64 {
	return t.id
}

// String returns the symbol table in a debug-friendly form.
func (t *table) String() string {
	return "Alphabet(" + string(t.symbols) + ")"
}

// Static is an alphabet that owns a private copy of its symbol table.
//
// A Static is immutable after construction and may be freely shared
// across goroutines.
type Static struct {
	table
}

var _ Alphabet = (*Static)(nil)

// New creates a Static alphabet from the given symbols, copying them.
//
// It fails with errs.NonASCIICharacterError if any symbol is not 7-bit
// ASCII, with errs.DuplicateCharacterError if a symbol appears twice
// (reporting the first two occurrences), and with errs.ErrRadixTooSmall
// for tables of fewer than two symbols.
//
// Example:
//
//	symbolic, err := alphabet.New([]byte(" !\"#$%&'()*+,-./0123456789:;<=>?@"))
//	if err != nil {
//	    return err
//	}
//	text := basex.Encode(data, symbolic).String()
func New(symbols []byte) (*Static, error) {
	owned := make([]byte, len(symbols))
	copy(owned, symbols)

	t, err := newTable(owned)
	if err != nil {
		return nil, err
	}

	return &Static{table: t}, nil
}

// MustNew is like New but panics on invalid input.
//
// It is intended for alphabets built from compile-time-fixed literals,
// where an invalid table is a programming defect rather than a runtime
// condition. The package-level named alphabets are constructed this way.
func MustNew(symbols []byte) *Static {
	a, err := New(symbols)
	if err != nil {
		panic("alphabet: invalid symbol table: " + err.Error())
	}

	return a
}

// Dynamic is an alphabet that borrows an externally-owned symbol slice
// without copying it.
//
// The caller must not modify the slice after construction; the alphabet
// performs no defensive copy. Use Static when ownership is unclear.
type Dynamic struct {
	table
}

var _ Alphabet = (*Dynamic)(nil)

// NewDynamic creates a Dynamic alphabet backed by the given slice.
//
// Validation is identical to New; only the ownership of the symbol table
// differs.
func NewDynamic(symbols []byte) (*Dynamic, error) {
	t, err := newTable(symbols)
	if err != nil {
		return nil, err
	}

	return &Dynamic{table: t}, nil
}

// Named radix-58 alphabets, pre-validated at package initialization.
var (
	// Bitcoin is the alphabet of Bitcoin's Base58Check encoding.
	//
	// See https://en.bitcoin.it/wiki/Base58Check_encoding#Base58_symbol_chart
	Bitcoin = MustNew([]byte("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"))

	// Monero is the alphabet used by Monero addresses. The symbol table
	// matches Bitcoin's; Monero differs only in its block-wise encoding
	// layered above, which is out of scope here.
	Monero = MustNew([]byte("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"))

	// Ripple is the alphabet used by Ripple addresses.
	//
	// See https://wiki.ripple.com/Encodings
	Ripple = MustNew([]byte("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"))

	// Flickr is the alphabet Flickr uses for short photo URLs.
	Flickr = MustNew([]byte("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"))
)
