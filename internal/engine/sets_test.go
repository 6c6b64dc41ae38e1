package engine

import (
	"testing"

	"github.com/eternalApril/nisekv/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_SAdd(t *testing.T) {
	e, _, _ := newTestEngine()

	n, err := e.SAdd("s", "a", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = e.SCard("s")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := e.SIsMember("s", "a")
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := e.SMembers("s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	n, err = e.SRem("s", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, e.Exists("s"))
}

func TestEngine_SetReadsOnMissingKey(t *testing.T) {
	e, _, _ := newTestEngine()

	n, err := e.SCard("s")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	ok, err := e.SIsMember("s", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	members, err := e.SMembers("s")
	require.NoError(t, err)
	assert.Empty(t, members)

	_, ok, err = e.SPop("s")
	require.NoError(t, err)
	assert.False(t, ok)

	members, err = e.SRandMember("s", 3)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestEngine_SPopAndRandMember(t *testing.T) {
	e, _, _ := newTestEngine()
	e.SAdd("s", "a", "b", "c")

	got, err := e.SRandMember("s", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])

	got, err = e.SRandMember("s", -5)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	n, _ := e.SCard("s")
	assert.Equal(t, 3, n)

	popped := map[string]bool{}
	for range 3 {
		m, ok, err := e.SPop("s")
		require.NoError(t, err)
		require.True(t, ok)
		popped[m] = true
	}
	assert.Len(t, popped, 3)
	assert.Equal(t, 0, e.Exists("s"))
}

func TestEngine_SetAlgebra(t *testing.T) {
	e, _, _ := newTestEngine()
	e.SAdd("a", "a", "b", "c", "d")
	e.SAdd("b", "c")
	e.SAdd("c", "a", "c", "e")

	got, err := e.SDiff("a", "b", "c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "d"}, got)

	got, err = e.SInter("a", "b", "c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c"}, got)

	got, err = e.SUnion("a", "b", "c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, got)

	got, err = e.SInter("a", "missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	e.Set("str", "x", SetOptions{})
	_, err = e.SUnion("a", "str")
	assert.ErrorIs(t, err, storage.ErrWrongType)
}

func TestEngine_SetStore(t *testing.T) {
	e, _, _ := newTestEngine()
	e.SAdd("a", "1", "2", "3")
	e.SAdd("b", "2", "3", "4")
	e.Set("dst", "old", SetOptions{})

	n, err := e.SInterStore("dst", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "set", e.Type("dst"))

	n, err = e.SUnionStore("dst", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = e.SDiffStore("dst", "a", "a")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, e.Exists("dst"))
}

func TestEngine_SMove(t *testing.T) {
	e, _, _ := newTestEngine()
	e.SAdd("src", "a", "b")

	ok, err := e.SMove("src", "dst", "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.SMove("src", "dst", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	isMember, _ := e.SIsMember("dst", "a")
	assert.True(t, isMember)

	ok, err = e.SMove("src", "src", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	n, _ := e.SCard("src")
	assert.Equal(t, 1, n)

	e.Set("str", "x", SetOptions{})
	_, err = e.SMove("src", "str", "b")
	assert.ErrorIs(t, err, storage.ErrWrongType)
}
