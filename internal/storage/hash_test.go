package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_SetGet(t *testing.T) {
	h := NewHash()

	assert.False(t, h.Set("f", "1"))
	assert.True(t, h.Set("f", "2"))

	v, ok := h.Get("f")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = h.Get("missing")
	assert.False(t, ok)

	assert.False(t, h.SetNX("f", "3"))
	assert.True(t, h.SetNX("g", "3"))
	assert.Equal(t, 2, h.Len())
}

func TestHash_Snapshots(t *testing.T) {
	h := NewHash()
	h.Set("a", "1")
	h.Set("b", "2")
	h.Set("c", "3")

	keys := h.Keys()
	vals := h.Values()
	require.Len(t, keys, 3)
	for i, k := range keys {
		v, _ := h.Get(k)
		assert.Equal(t, v, vals[i])
	}

	assert.ElementsMatch(t, []FieldValue{{"a", "1"}, {"b", "2"}, {"c", "3"}}, h.GetAll())
}

func TestHash_Del(t *testing.T) {
	h := NewHash()
	h.Set("a", "1")
	h.Set("b", "2")

	assert.Equal(t, 1, h.Del("a", "zz", "a"))
	assert.False(t, h.Exists("a"))
	assert.Equal(t, 1, h.Del("b"))
	assert.True(t, h.IsEmpty())
}

func TestHash_Increments(t *testing.T) {
	h := NewHash()

	n, err := h.IncrBy("n", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = h.IncrBy("n", -7)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), n)

	f, err := h.IncrByFloat("f", 10.5)
	require.NoError(t, err)
	assert.Equal(t, "10.5", f)

	h.Set("s", "abc")
	_, err = h.IncrBy("s", 1)
	assert.ErrorIs(t, err, ErrNotInteger)
	_, err = h.IncrByFloat("s", 1)
	assert.ErrorIs(t, err, ErrNotFloat)
}
