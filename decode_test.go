package basex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basex-go/basex/alphabet"
	"github.com/basex-go/basex/errs"
)

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode("", alphabet.Bitcoin).Bytes()
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecode_SingleSymbolPair(t *testing.T) {
	decoded, err := Decode("2g", alphabet.Bitcoin).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x61}, decoded)
}

func TestDecode_AllZeroSymbols(t *testing.T) {
	decoded, err := Decode("1111111111", alphabet.Bitcoin).Bytes()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 10), decoded)
}

func TestDecode_IntoFixedBuffer(t *testing.T) {
	output := [10]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	n, err := Decode("he11owor1d", alphabet.Bitcoin).Into(Slice(output[:]))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t,
		[10]byte{0x04, 0x30, 0x5e, 0x2b, 0x24, 0x73, 0xf0, 0x58, 0xFF, 0xFF},
		output, "bytes past the decoded length must be untouched")
}

func TestDecode_BufferTooSmall(t *testing.T) {
	var output [2]byte
	_, err := Decode("a3gV", alphabet.Bitcoin).Into(Slice(output[:]))
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestDecode_InvalidCharacter(t *testing.T) {
	_, err := Decode("123456789abcd!efghij", alphabet.Bitcoin).Bytes()
	require.Error(t, err)

	var icErr errs.InvalidCharacterError
	require.ErrorAs(t, err, &icErr)
	require.Equal(t, errs.InvalidCharacterError{Character: '!', Index: 13}, icErr)
}

func TestDecode_NonASCIICharacter(t *testing.T) {
	_, err := Decode("he11o🇳🇿", alphabet.Bitcoin).Bytes()
	require.Error(t, err)

	var naErr errs.NonASCIICharacterError
	require.ErrorAs(t, err, &naErr)
	require.Equal(t, 5, naErr.Index)
}

func TestDecode_IntoGrowableBuffer(t *testing.T) {
	// The buffer's capacity is reused; no reallocation for inputs that
	// fit.
	out := make([]byte, 0, 32)
	n, err := Decode("he11owor1d", alphabet.Bitcoin).Into(Buffer(&out))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{0x04, 0x30, 0x5e, 0x2b, 0x24, 0x73, 0xf0, 0x58}, out)
}

func TestDecode_RippleVector(t *testing.T) {
	decoded, err := Decode("he11owor1d", alphabet.Ripple).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x65, 0xe7, 0x9b, 0xba, 0x2f, 0x78}, decoded)
}
