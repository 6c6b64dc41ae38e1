package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedSet_SharesLifecycle(t *testing.T) {
	db, _ := newTestDatabase()

	z, err := db.EnsureSortedSet("z")
	require.NoError(t, err)
	assert.Equal(t, TypeZSet, z.Type())
	assert.True(t, z.IsEmpty())
	assert.Empty(t, z.Members())

	// an empty sorted set is garbage like any other empty container
	assert.Equal(t, "none", db.Type("z"))

	db.CreateString("s", "v")
	_, _, err = db.GetSortedSet("s")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = db.EnsureSortedSet("s")
	assert.ErrorIs(t, err, ErrWrongType)
}
