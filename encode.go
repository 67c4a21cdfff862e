package basex

import (
	"math/bits"

	"github.com/basex-go/basex/alphabet"
	"github.com/basex-go/basex/errs"
)

// EncodeBuilder converts a byte sequence into its textual representation
// in the alphabet's base. Obtain one with Encode, then finish with
// String, Bytes, or Into.
type EncodeBuilder struct {
	input []byte
	alpha alphabet.Alphabet
}

// Encode sets up an encode of input using the given alphabet.
//
// Example:
//
//	input := []byte{0x04, 0x30, 0x5e, 0x2b, 0x24, 0x73, 0xf0, 0x58}
//	encoded := basex.Encode(input, alphabet.Bitcoin).String()
//	// encoded == "he11owor1d"
func Encode(input []byte, alpha alphabet.Alphabet) EncodeBuilder {
	return EncodeBuilder{input: input, alpha: alpha}
}

// WithAlphabet returns a copy of the builder that encodes with the given
// alphabet instead.
func (b EncodeBuilder) WithAlphabet(alpha alphabet.Alphabet) EncodeBuilder {
	b.alpha = alpha

	return b
}

// String encodes into a newly allocated string.
//
// Encoding into a fresh destination sized by the capacity estimate cannot
// fail: the input is raw bytes, which need no validation.
func (b EncodeBuilder) String() string {
	var out string
	if _, err := b.Into(String(&out)); err != nil {
		panic("basex: encode into sized destination failed: " + err.Error())
	}

	return out
}

// Bytes encodes into a newly allocated byte slice holding the ASCII
// symbol text. Like String, it cannot fail.
func (b EncodeBuilder) Bytes() []byte {
	var out []byte
	if _, err := b.Into(Buffer(&out)); err != nil {
		panic("basex: encode into sized destination failed: " + err.Error())
	}

	return out
}

// Into encodes into the given target and returns the number of symbol
// bytes written.
//
// Growable targets are sized up front from the capacity estimate and
// cannot fail. Fixed-capacity targets fail with errs.ErrBufferTooSmall
// if the encoded form does not fit, and may contain partial output when
// that happens.
func (b EncodeBuilder) Into(target Target) (int, error) {
	return target.Fill(maxEncodedLen(len(b.input), b.alpha.Radix()), func(dst []byte) (int, error) {
		return encodeInto(b.input, dst, b.alpha)
	})
}

// maxEncodedLen over-estimates the number of base-radix digits needed to
// represent n bytes: n*8 bits divided by floor(log2(radix)) bits per
// digit, plus one. Exact for power-of-two radices; for all others the
// floor makes the per-digit bit count an under-estimate and therefore
// the digit count an over-estimate. Used only to size growable targets,
// never to reject input.
func maxEncodedLen(n, radix int) int {
	bitsPerDigit := bits.Len(uint(radix)) - 1

	return n*8/bitsPerDigit + 1
}

// encodeInto runs the repeated divide conversion from base 256 to base
// radix. The accumulator holds digit values least-significant first; the
// final pass maps digits to symbols and reverses in place.
func encodeInto(input []byte, output []byte, alpha alphabet.Alphabet) (int, error) {
	radix := alpha.Radix()
	index := 0

	for _, b := range input {
		// Fold the byte into the accumulator: acc = acc*256 + b.
		carry := int(b)
		for j := 0; j < index; j++ {
			carry += int(output[j]) << 8
			output[j] = byte(carry % radix)
			carry /= radix
		}
		for carry > 0 {
			if index == len(output) {
				return 0, errs.ErrBufferTooSmall
			}
			output[index] = byte(carry % radix)
			index++
			carry /= radix
		}
	}

	// Leading zero bytes become leading zero digits; the divide loop
	// never emits them, so count them off the raw input.
	for _, b := range input {
		if b != 0 {
			break
		}
		if index == len(output) {
			return 0, errs.ErrBufferTooSmall
		}
		output[index] = 0
		index++
	}

	for j := 0; j < index; j++ {
		output[j] = alpha.Symbol(output[j])
	}
	reverseBytes(output[:index])

	return index, nil
}
