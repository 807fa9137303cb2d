package negentropy

// Tree is a persistent, monoid-augmented set of items. The zero value is
// the empty tree.
type Tree[I Item[I], M Monoid[I, M]] struct {
	root *node[I, M]
}

// New returns the empty tree. Spelled out mainly for symmetry with
// Tree.Insert; the zero value works just as well.
func New[I Item[I], M Monoid[I, M]]() Tree[I, M] {
	return Tree[I, M]{}
}

// Build returns a tree containing every item, inserted one at a time in
// the order given. Duplicate items (by Compare) keep their first
// occurrence.
func Build[I Item[I], M Monoid[I, M]](items ...I) Tree[I, M] {
	t := New[I, M]()
	for _, item := range items {
		t = t.Insert(item)
	}
	return t
}

// IsEmpty reports whether t holds any items.
func (t Tree[I, M]) IsEmpty() bool {
	return t.root == nil
}

// Count returns the number of items in t.
func (t Tree[I, M]) Count() int {
	return monoidOf[I, M](t.root).Count()
}

// Fingerprint returns the fold of every item in t under M.
func (t Tree[I, M]) Fingerprint() M {
	return monoidOf[I, M](t.root)
}

// Bounds reports the minimum and maximum item in t. ok is false for the
// empty tree, in which case mn and mx are the zero value of I.
func (t Tree[I, M]) Bounds() (mn, mx I, ok bool) {
	if t.root == nil {
		return mn, mx, false
	}
	mn, mx = t.root.bounds()
	return mn, mx, true
}

// FullRange returns the range covering every item currently in t, one past
// the maximum so the range is of the ordinary (non-wrapping) half-open
// form [min, max.Next()). For the empty tree it returns the full range,
// since there is no min/max to anchor a narrower one.
func (t Tree[I, M]) FullRange() Range[I] {
	mn, mx, ok := t.Bounds()
	if !ok {
		return FullRange[I]()
	}
	return NewRange(mn, mx.Next())
}

// Items returns every item of t in ascending order.
func (t Tree[I, M]) Items() []I {
	acc := NewItemsAccumulator[I, M]()
	t.Query(t.FullRange(), acc)
	return acc.Items()
}
