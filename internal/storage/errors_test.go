package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Categories(t *testing.T) {
	for _, err := range []error{ErrNotInteger, ErrNotFloat, ErrOverflow, ErrNaN} {
		assert.ErrorIs(t, err, ErrNotANumber, err.Error())
		assert.NotErrorIs(t, err, ErrInvalidArgument)
	}
	for _, err := range []error{ErrSyntax, ErrBitValue, ErrStringTooLong, ErrCountOutOfRange} {
		assert.ErrorIs(t, err, ErrInvalidArgument, err.Error())
	}

	// reply codes belong to the protocol layer
	assert.Equal(t, "operation against a key holding the wrong kind of value", ErrWrongType.Error())
	assert.False(t, errors.Is(ErrWrongType, ErrInvalidArgument))
}
