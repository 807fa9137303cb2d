// Package store provides the object-store collaborator the reconciliation
// protocol hands items back to once it has decided an id is worth
// fetching: a reference in-memory implementation backed by a plain map,
// and an LRU-bounded wrapper for embedders whose object corpus is too
// large to keep entirely resident.
package store

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Object is anything an ObjectStore can hand back for an item id: a full
// record the embedder's application understands, keyed by its item.
type Object[I any] interface {
	// Item returns the id this object is stored under.
	Item() I
}

// ObjectStore looks up the full object behind an item id. The
// reconciliation driver only ever calls Get/GetBatch once it already
// knows, from a tree query, that the id is present locally; a miss is
// reported with ok == false rather than an error or a panic, since the
// embedder's backing store and the in-memory tree can legitimately fall
// out of sync (e.g. a compaction that dropped the object but not yet the
// index entry). reconcile.ErrObjectMissing is what the protocol driver
// turns a miss into once it decides that is a protocol-level problem
// rather than something to just skip over.
type ObjectStore[I comparable, O Object[I]] interface {
	Get(item I) (O, bool)
	GetBatch(items []I) []O
}

// Memory is the reference ObjectStore: a plain map, no eviction.
type Memory[I comparable, O Object[I]] struct {
	objects map[I]O
}

// NewMemory returns an empty in-memory object store.
func NewMemory[I comparable, O Object[I]]() *Memory[I, O] {
	return &Memory[I, O]{objects: make(map[I]O)}
}

// Put adds or replaces an object, keyed by its own Item().
func (m *Memory[I, O]) Put(obj O) {
	m.objects[obj.Item()] = obj
}

func (m *Memory[I, O]) Get(item I) (O, bool) {
	obj, ok := m.objects[item]
	return obj, ok
}

func (m *Memory[I, O]) GetBatch(items []I) []O {
	out := make([]O, 0, len(items))
	for _, it := range items {
		if obj, ok := m.Get(it); ok {
			out = append(out, obj)
		}
	}
	return out
}

// LRU wraps a backing ObjectStore with a bounded least-recently-used
// cache in front of it, for a store whose full object corpus would not
// fit resident in memory. A zero-size cache is invalid; use NewLRU.
type LRU[I comparable, O Object[I]] struct {
	backing ObjectStore[I, O]
	cache   *lru.Cache[I, O]
}

// NewLRU wraps backing with a cache holding up to size objects.
func NewLRU[I comparable, O Object[I]](backing ObjectStore[I, O], size int) (*LRU[I, O], error) {
	cache, err := lru.New[I, O](size)
	if err != nil {
		return nil, err
	}
	return &LRU[I, O]{backing: backing, cache: cache}, nil
}

func (l *LRU[I, O]) Get(item I) (O, bool) {
	if obj, ok := l.cache.Get(item); ok {
		return obj, true
	}
	obj, ok := l.backing.Get(item)
	if ok {
		l.cache.Add(item, obj)
	}
	return obj, ok
}

func (l *LRU[I, O]) GetBatch(items []I) []O {
	out := make([]O, 0, len(items))
	for _, it := range items {
		if obj, ok := l.Get(it); ok {
			out = append(out, obj)
		}
	}
	return out
}
