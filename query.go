package negentropy

// Accumulator receives the output of a range query. A single traversal
// visits each subtree at most once: a subtree entirely inside the query
// range is handed to AddNode whole (so a fingerprint accumulator can fold
// its cached total without descending further), while an item that falls
// in range but whose neighboring subtrees only partially overlap is handed
// to AddItem one at a time. Implementations that need every individual
// item regardless (see ItemsAccumulator) simply recurse inside AddNode.
type Accumulator[I Item[I], M Monoid[I, M]] interface {
	AddNode(n *node[I, M])
	AddItem(item I)
}

// leq reports a <= b.
func leq[I Item[I]](a, b I) bool {
	return !less(b, a)
}

// boundsOverlap reports whether r shares at least one item with the
// inclusive bounds [mn, mx] -- the fast pre-check query uses before paying
// for the more expensive subrange classification.
func boundsOverlap[I Item[I]](r Range[I], mn, mx I) bool {
	if r.IsFull() {
		return true
	}
	if r.IsWrapping() {
		return less(mn, r.To) || leq(r.From, mx)
	}
	return less(mn, r.To) && leq(r.From, mx)
}

// queryRange walks the subtree rooted at n, feeding acc with whichever
// subtrees lie entirely in r and whichever individual items fall in r but
// whose enclosing subtree does not.
func queryRange[I Item[I], M Monoid[I, M]](n *node[I, M], r Range[I], acc Accumulator[I, M]) {
	if n == nil {
		return
	}

	mn, mx := n.bounds()
	if !boundsOverlap(r, mn, mx) {
		return
	}

	// r.covers always reports true for the full range (see Range.covers),
	// so a full query range falls straight out to AddNode here instead of
	// needing special-casing: capping it to n's own bounds first would
	// recreate the exact (zero, zero) range whenever n's minimum item is
	// itself the item order's zero value, recursing on the same (n, r)
	// pair forever.
	if r.covers(mn, mx) {
		acc.AddNode(n)
		return
	}

	if !r.IsWrapping() {
		for i, item := range n.items {
			queryRange(n.child(i), r, acc)
			if r.Contains(item) {
				acc.AddItem(item)
			}
		}
		queryRange(n.lastChild, r, acc)
		return
	}

	// Wrapping range: walk the upper arc [r.From, max] left to right,
	// then the lower arc [min, r.To) left to right.
	for i, item := range n.items {
		if leq(r.From, item) {
			if less(r.From, item) {
				queryRange(n.child(i), r.capRight(item), acc)
			}
			acc.AddItem(item)
		}
	}
	if leq(r.From, mx) {
		queryRange(n.lastChild, r.capRight(mx.Next()), acc)
	}

	for i, item := range n.items {
		if child := n.child(i); child != nil {
			childMin, _ := child.bounds()
			if less(childMin, r.To) {
				queryRange(child, r.capLeft(childMin), acc)
			}
		}
		if less(item, r.To) {
			acc.AddItem(item)
		}
	}
	if n.lastChild != nil {
		lastMin, _ := n.lastChild.bounds()
		if less(lastMin, r.To) {
			queryRange(n.lastChild, r.capLeft(lastMin), acc)
		}
	}
}

// Finalizer is implemented by accumulators that need a chance to settle
// state once a traversal is complete -- ItemFilterAccumulator uses this to
// mark every candidate item past the last one actually visited as new.
type Finalizer interface {
	Finalize()
}

// Query runs acc over every item of t that falls within r.
func (t Tree[I, M]) Query(r Range[I], acc Accumulator[I, M]) {
	queryRange(t.root, r, acc)
	if f, ok := any(acc).(Finalizer); ok {
		f.Finalize()
	}
}
