package storage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_AppendAndRange(t *testing.T) {
	s := NewString("Hello")
	assert.Equal(t, 11, s.Append(" World"))
	assert.Equal(t, "Hello World", s.Value())

	assert.Equal(t, "Hello", s.GetRange(0, 4))
	assert.Equal(t, "World", s.GetRange(-5, -1))
	assert.Equal(t, "Hello World", s.GetRange(0, 100))
	assert.Equal(t, "", s.GetRange(5, 2))
}

func TestString_SetRange(t *testing.T) {
	s := NewString("Hello World")
	n, err := s.SetRange(6, "Redis")
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "Hello Redis", s.Value())

	s = NewString("")
	n, err = s.SetRange(3, "ab")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "\x00\x00\x00ab", s.Value())

	_, err = s.SetRange(-1, "x")
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.SetRange(maxStringLength, "x")
	assert.ErrorIs(t, err, ErrStringTooLong)

	_, err = s.SetRange(math.MaxInt, "x")
	assert.ErrorIs(t, err, ErrStringTooLong)
	assert.Equal(t, "\x00\x00\x00ab", s.Value())
}

func TestString_GrowClearsReusedCapacity(t *testing.T) {
	s := NewString("abcdef")
	s.value = s.value[:2]

	_, err := s.SetRange(4, "z")
	require.NoError(t, err)
	assert.Equal(t, "ab\x00\x00z", s.Value())
}

func TestString_Bits(t *testing.T) {
	s := NewString("")

	old, err := s.SetBit(7, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, old)
	assert.Equal(t, "\x01", s.Value())

	old, err = s.SetBit(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, old)
	assert.Equal(t, "\x81", s.Value())

	old, err = s.SetBit(7, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, old)
	assert.Equal(t, "\x80", s.Value())

	assert.Equal(t, 1, s.GetBit(0))
	assert.Equal(t, 0, s.GetBit(1))
	assert.Equal(t, 0, s.GetBit(1000))

	_, err = s.SetBit(100, 1)
	require.NoError(t, err)
	assert.Equal(t, 13, s.Len())

	_, err = s.SetBit(1, 2)
	assert.ErrorIs(t, err, ErrBitValue)
	_, err = s.SetBit(-1, 1)
	assert.ErrorIs(t, err, ErrBitOffset)
}

func TestString_BitCount(t *testing.T) {
	s := NewString("foobar")
	assert.Equal(t, 26, s.BitCount(0, -1))
	assert.Equal(t, 4, s.BitCount(0, 0))
	assert.Equal(t, 6, s.BitCount(1, 1))
	assert.Equal(t, 0, s.BitCount(4, 2))
	assert.Equal(t, 0, NewString("").BitCount(0, -1))
}

func TestString_Increments(t *testing.T) {
	s := NewString("5")

	n, err := s.IncrBy(1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	v, err := s.IncrByFloat(0.5)
	require.NoError(t, err)
	assert.Equal(t, "6.5", v)
	assert.Equal(t, "6.5", s.Value())

	_, err = s.IncrBy(1)
	assert.ErrorIs(t, err, ErrNotInteger)
	assert.Equal(t, "6.5", s.Value())

	s = NewString("")
	n, err = s.IncrBy(-2)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), n)

	_, err = NewString("abc").IncrByFloat(1)
	assert.ErrorIs(t, err, ErrNotFloat)
}

func TestString_SetRangeEmptyValueDoesNotPad(t *testing.T) {
	s := NewString("ab")
	n, err := s.SetRange(10, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ab", s.Value())
}
