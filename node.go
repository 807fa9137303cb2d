package negentropy

// node is one level of the persistent 2-3 tree. A nil *node represents the
// empty tree and carries the neutral monoid value implicitly (see
// monoidOf). A non-nil node holds either one item with two children (a
// "2-node") or two items with three children (a "3-node"); Go has no const
// generics to make that distinction a separate type per size the way the
// tree this package's insert algorithm is grounded on distinguishes
// NodeData<1>/NodeData<2>, so
// both shapes share this struct and the invariant len(items) == len(down) is
// carried by construction instead of the type system.
//
// down holds the children strictly between and below each item; lastChild
// holds the subtree of everything greater than the final item. A leaf has
// lastChild == nil and every entry of down == nil. All children of a node
// are at the same depth, the 2-3 tree balance invariant.
type node[I Item[I], M Monoid[I, M]] struct {
	items     []I
	down      []*node[I, M]
	lastChild *node[I, M]

	total    M
	min, max I
}

// monoidOf returns the fold of m's subtree, or the neutral element (Go zero
// value of M) for the empty tree.
func monoidOf[I Item[I], M Monoid[I, M]](n *node[I, M]) M {
	if n == nil {
		var zero M
		return zero
	}
	return n.total
}

func (n *node[I, M]) isLeaf() bool {
	return n.lastChild == nil
}

// child returns the subtree at position idx, where idx in [0, len(items))
// selects down[idx] and idx == len(items) selects lastChild.
func (n *node[I, M]) child(idx int) *node[I, M] {
	if idx == len(n.items) {
		return n.lastChild
	}
	return n.down[idx]
}

// findChild returns the position of the child that item would descend
// into: the index of the first item strictly greater than item, or
// len(n.items) if item is greater than every item in n (the lastChild
// slot).
func (n *node[I, M]) findChild(item I) int {
	for i, it := range n.items {
		if less(item, it) {
			return i
		}
	}
	return len(n.items)
}

// bounds reports the minimum and maximum item in n's subtree.
func (n *node[I, M]) bounds() (mn, mx I) {
	return n.min, n.max
}

// leaf builds a new leaf node (no children) from sorted items.
func leaf[I Item[I], M Monoid[I, M]](items []I) *node[I, M] {
	down := make([]*node[I, M], len(items))
	return build(items, down, nil)
}

// build constructs a node from its parts, computing its cached total and
// bounds from the items and children given. Callers must supply items in
// ascending order and keep len(down) == len(items).
func build[I Item[I], M Monoid[I, M]](items []I, down []*node[I, M], lastChild *node[I, M]) *node[I, M] {
	n := &node[I, M]{items: items, down: down, lastChild: lastChild}

	var total M
	if len(down) > 0 && down[0] != nil {
		n.min, _ = down[0].bounds()
	} else {
		n.min = items[0]
	}
	for i, it := range items {
		total = total.Combine(monoidOf[I, M](down[i]))
		var liftRecv M
		total = total.Combine(liftRecv.Lift(it))
	}
	total = total.Combine(monoidOf[I, M](lastChild))
	n.total = total

	if lastChild != nil {
		_, n.max = lastChild.bounds()
	} else {
		n.max = items[len(items)-1]
	}
	return n
}

// insertAt returns copies of items/down with item and its associated child
// spliced in at pos, preserving sort order. child is the new nil leaf child
// when growing a leaf, or one half of a promoted split when absorbing one.
func insertAt[I Item[I], M Monoid[I, M]](items []I, down []*node[I, M], pos int, item I, child *node[I, M]) ([]I, []*node[I, M]) {
	newItems := make([]I, 0, len(items)+1)
	newItems = append(newItems, items[:pos]...)
	newItems = append(newItems, item)
	newItems = append(newItems, items[pos:]...)

	newDown := make([]*node[I, M], 0, len(down)+1)
	newDown = append(newDown, down[:pos]...)
	newDown = append(newDown, child)
	newDown = append(newDown, down[pos:]...)

	return newItems, newDown
}

// split breaks a 3-item overfull node into a promoted middle item and two
// balanced halves, mirroring NodeData<2>::split in the tree this package's
// insert algorithm is grounded on.
func split[I Item[I], M Monoid[I, M]](items []I, down []*node[I, M], lastChild *node[I, M]) (mid I, left, right *node[I, M]) {
	left = build(items[0:1], down[0:1], down[1])
	right = build(items[2:3], down[2:3], lastChild)
	mid = items[1]
	return mid, left, right
}

// replaceChild returns a copy of n with the child at idx replaced, and the
// cached total/bounds recomputed.
func (n *node[I, M]) replaceChild(idx int, newChild *node[I, M]) *node[I, M] {
	down := append([]*node[I, M](nil), n.down...)
	lastChild := n.lastChild
	if idx == len(n.items) {
		lastChild = newChild
	} else {
		down[idx] = newChild
	}
	return build(n.items, down, lastChild)
}

// absorbSplit returns a copy of n with the child at idx -- which has just
// split into (mid, left, right) -- replaced by that pair, one item richer.
// The result may itself be 3 items wide, in which case the caller must
// split it again.
func (n *node[I, M]) absorbSplit(idx int, mid I, left, right *node[I, M]) *node[I, M] {
	items, down := insertAt(n.items, n.down, idx, mid, left)
	lastChild := n.lastChild
	if idx == len(n.items) {
		lastChild = right
	} else {
		// the new right half takes over the slot the old child held,
		// one position after where mid and left were just inserted.
		down[idx+1] = right
	}
	return build(items, down, lastChild)
}
