package negentropy

// ItemFilterAccumulator walks the range spanned by a sorted candidate item
// list -- typically the contents of a peer's ItemSet message part -- and
// reports which candidates the local tree does not already hold. It is
// the counterpart of SimpleAccumulator in reconcile.Respond: where Simple
// produces a fingerprint to compare, ItemFilter produces the actual diff
// (the reply's Wants) once the peer has sent concrete items instead of a
// hash.
type ItemFilterAccumulator[I Item[I], M Monoid[I, M]] struct {
	items []I
	isNew []bool
	cur   int
}

// NewItemFilterAccumulator returns an accumulator over items, which must
// already be sorted ascending and free of duplicates.
func NewItemFilterAccumulator[I Item[I], M Monoid[I, M]](items []I) *ItemFilterAccumulator[I, M] {
	return &ItemFilterAccumulator[I, M]{items: items, isNew: make([]bool, len(items))}
}

// QueryRange returns the range [items[0], items[len-1].Next()) that must
// be queried for this accumulator's verdicts to be meaningful. ok is
// false when items is empty.
func (a *ItemFilterAccumulator[I, M]) QueryRange() (r Range[I], ok bool) {
	if len(a.items) == 0 {
		return r, false
	}
	return NewRange(a.items[0], a.items[len(a.items)-1].Next()), true
}

func (a *ItemFilterAccumulator[I, M]) curItem() (item I, ok bool) {
	if a.cur >= len(a.items) {
		return item, false
	}
	return a.items[a.cur], true
}

func (a *ItemFilterAccumulator[I, M]) AddNode(n *node[I, M]) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		for _, item := range n.items {
			a.AddItem(item)
		}
		return
	}
	for i, item := range n.items {
		a.AddNode(n.child(i))
		a.AddItem(item)
	}
	a.AddNode(n.lastChild)
}

// AddItem advances past every candidate strictly less than item -- those
// were never found in the tree and are new -- then consumes item itself
// if it matches the current candidate.
func (a *ItemFilterAccumulator[I, M]) AddItem(item I) {
	for {
		cur, ok := a.curItem()
		if !ok || !less(cur, item) {
			break
		}
		a.isNew[a.cur] = true
		a.cur++
	}
	if cur, ok := a.curItem(); ok && equal(cur, item) {
		a.cur++
	}
}

// Finalize marks every remaining candidate, past the last item the
// traversal visited, as new.
func (a *ItemFilterAccumulator[I, M]) Finalize() {
	for a.cur < len(a.isNew) {
		a.isNew[a.cur] = true
		a.cur++
	}
}

// New returns the candidate items the tree did not already contain, in
// their original order.
func (a *ItemFilterAccumulator[I, M]) New() []I {
	var out []I
	for i, isNew := range a.isNew {
		if isNew {
			out = append(out, a.items[i])
		}
	}
	return out
}
