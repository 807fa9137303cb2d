package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negentropy-go/negentropy/item"
	"github.com/negentropy-go/negentropy/store"
)

type rec item.Uint64

func (r rec) Item() item.Uint64 { return item.Uint64(r) }

func TestMemoryGetAndGetBatch(t *testing.T) {
	m := store.NewMemory[item.Uint64, rec]()
	m.Put(rec(1))
	m.Put(rec(2))

	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, rec(1), got)

	_, ok = m.Get(99)
	assert.False(t, ok)

	batch := m.GetBatch([]item.Uint64{1, 2, 99})
	assert.ElementsMatch(t, []rec{1, 2}, batch)
}

func TestLRUFallsThroughToBackingAndCaches(t *testing.T) {
	backing := store.NewMemory[item.Uint64, rec]()
	backing.Put(rec(1))
	backing.Put(rec(2))
	backing.Put(rec(3))

	cached, err := store.NewLRU[item.Uint64, rec](backing, 2)
	require.NoError(t, err)

	got, ok := cached.Get(1)
	require.True(t, ok)
	assert.Equal(t, rec(1), got)

	batch := cached.GetBatch([]item.Uint64{1, 2, 3, 404})
	assert.ElementsMatch(t, []rec{1, 2, 3}, batch)

	_, ok = cached.Get(404)
	assert.False(t, ok)
}
