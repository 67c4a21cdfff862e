package basex

import (
	"github.com/basex-go/basex/alphabet"
	"github.com/basex-go/basex/errs"
)

// DecodeBuilder converts a symbol string in the alphabet's base into the
// byte sequence it represents. Obtain one with Decode, then finish with
// Bytes or Into.
type DecodeBuilder struct {
	input string
	alpha alphabet.Alphabet
}

// Decode sets up a decode of input using the given alphabet.
//
// Example:
//
//	decoded, err := basex.Decode("he11owor1d", alphabet.Bitcoin).Bytes()
//	// decoded == []byte{0x04, 0x30, 0x5e, 0x2b, 0x24, 0x73, 0xf0, 0x58}
func Decode(input string, alpha alphabet.Alphabet) DecodeBuilder {
	return DecodeBuilder{input: input, alpha: alpha}
}

// WithAlphabet returns a copy of the builder that decodes with the given
// alphabet instead.
func (b DecodeBuilder) WithAlphabet(alpha alphabet.Alphabet) DecodeBuilder {
	b.alpha = alpha

	return b
}

// Bytes decodes into a newly allocated byte slice.
//
// The decoded length is never greater than the input length, so the
// result cannot fail with errs.ErrBufferTooSmall; the possible errors are
// errs.NonASCIICharacterError for input bytes ≥ 128 and
// errs.InvalidCharacterError for characters outside the alphabet.
func (b DecodeBuilder) Bytes() ([]byte, error) {
	out := make([]byte, 0, len(b.input))
	if _, err := b.Into(Buffer(&out)); err != nil {
		return nil, err
	}

	return out, nil
}

// Into decodes into the given target and returns the number of bytes
// written.
//
// Decoding builds the result incrementally, so when the target is a
// fixed-capacity destination that turns out to be too small the error is
// raised mid-conversion and the destination may contain partial output.
func (b DecodeBuilder) Into(target Target) (int, error) {
	return target.Fill(len(b.input), func(dst []byte) (int, error) {
		return decodeInto(b.input, dst, b.alpha)
	})
}

// decodeInto runs the repeated multiply-add conversion from base radix to
// base 256. The accumulator grows least-significant byte first and is
// reversed in place at the end.
func decodeInto(input string, output []byte, alpha alphabet.Alphabet) (int, error) {
	if len(input) == 0 {
		return 0, nil
	}

	radix := alpha.Radix()
	zero := alpha.Symbol(0)
	index := 0

	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= 128 {
			return 0, errs.NonASCIICharacterError{Index: i}
		}

		digit, ok := alpha.Digit(c)
		if !ok {
			return 0, errs.InvalidCharacterError{Character: c, Index: i}
		}

		// Fold the digit into the accumulator: acc = acc*radix + digit.
		val := int(digit)
		for j := 0; j < index; j++ {
			val += int(output[j]) * radix
			output[j] = byte(val)
			val >>= 8
		}
		for val > 0 {
			if index == len(output) {
				return 0, errs.ErrBufferTooSmall
			}
			output[index] = byte(val)
			index++
			val >>= 8
		}
	}

	// Leading zero symbols represent leading zero bytes that the
	// multiply-add loop never produces; count them off the raw input.
	for i := 0; i < len(input) && input[i] == zero; i++ {
		if index == len(output) {
			return 0, errs.ErrBufferTooSmall
		}
		output[index] = 0
		index++
	}

	reverseBytes(output[:index])

	return index, nil
}

func reverseBytes(data []byte) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
