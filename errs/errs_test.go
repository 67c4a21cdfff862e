package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrBufferTooSmall_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("decode failed: %w", ErrBufferTooSmall)
	require.ErrorIs(t, wrapped, ErrBufferTooSmall)
}

func TestTypedErrors_Messages(t *testing.T) {
	require.Equal(t, "non-ascii character at index 5",
		NonASCIICharacterError{Index: 5}.Error())
	require.Equal(t, `invalid character '!' at index 13`,
		InvalidCharacterError{Character: '!', Index: 13}.Error())
	require.Equal(t, `duplicate character 'a' at indexes 0 and 1`,
		DuplicateCharacterError{Character: 'a', First: 0, Second: 1}.Error())
}

func TestTypedErrors_ErrorsAs(t *testing.T) {
	var err error = InvalidCharacterError{Character: 'x', Index: 2}
	wrapped := fmt.Errorf("decode failed: %w", err)

	var icErr InvalidCharacterError
	require.True(t, errors.As(wrapped, &icErr))
	require.Equal(t, byte('x'), icErr.Character)
	require.Equal(t, 2, icErr.Index)
}
