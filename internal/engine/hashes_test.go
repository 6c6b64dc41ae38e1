package engine

import (
	"testing"

	"github.com/eternalApril/nisekv/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fv(field, value string) storage.FieldValue {
	return storage.FieldValue{Field: field, Value: value}
}

func TestEngine_HSet(t *testing.T) {
	e, _, _ := newTestEngine()

	n, err := e.HSet("h", fv("a", "1"), fv("b", "2"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = e.HSet("h", fv("a", "10"), fv("c", "3"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, ok, err := e.HGet("h", "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "10", v)

	ok, err = e.HSetNX("h", "a", "x")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = e.HSetNX("h", "d", "4")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err = e.HLen("h")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestEngine_HashReads(t *testing.T) {
	e, _, _ := newTestEngine()
	e.HSet("h", fv("a", "1"), fv("b", "2"))

	all, err := e.HGetAll("h")
	require.NoError(t, err)
	assert.ElementsMatch(t, []storage.FieldValue{fv("a", "1"), fv("b", "2")}, all)

	keys, err := e.HKeys("h")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	vals, err := e.HVals("h")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, vals)

	got, err := e.HMGet("h", "a", "zz", "b")
	require.NoError(t, err)
	assert.Equal(t, []OptionalString{{"1", true}, {}, {"2", true}}, got)

	ok, err := e.HExists("h", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = e.HMGet("missing", "a")
	require.NoError(t, err)
	assert.Equal(t, []OptionalString{{}}, got)

	all, err = e.HGetAll("missing")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEngine_HDelRemovesEmptyHash(t *testing.T) {
	e, _, _ := newTestEngine()
	e.HSet("h", fv("a", "1"), fv("b", "2"))

	n, err := e.HDel("h", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, e.Exists("h"))

	n, err = e.HDel("h", "a")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEngine_HIncr(t *testing.T) {
	e, _, _ := newTestEngine()

	n, err := e.HIncrBy("h", "n", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	v, err := e.HIncrByFloat("h", "n", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "5.5", v)

	_, err = e.HIncrBy("h", "n", 1)
	assert.ErrorIs(t, err, storage.ErrNotInteger)

	_, err = e.HIncrBy("other", "f", 1)
	require.NoError(t, err)

	e.HSet("bad", fv("f", "x"))
	_, err = e.HIncrByFloat("bad", "f", 1)
	assert.ErrorIs(t, err, storage.ErrNotFloat)

	// a zero increment still creates the field
	_, err = e.HIncrByFloat("new", "f", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Exists("new"))
}

func TestEngine_HashWrongType(t *testing.T) {
	e, _, _ := newTestEngine()
	e.Set("s", "v", SetOptions{})

	_, err := e.HSet("s", fv("a", "1"))
	assert.ErrorIs(t, err, storage.ErrWrongType)
	_, _, err = e.HGet("s", "a")
	assert.ErrorIs(t, err, storage.ErrWrongType)
	_, err = e.HIncrBy("s", "a", 1)
	assert.ErrorIs(t, err, storage.ErrWrongType)
}
