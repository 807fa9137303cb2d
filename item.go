package negentropy

// Item is the type constraint for items stored in the tree: totally
// ordered, and capable of advancing to the next representable value.
//
// Compare must return a negative number, zero, or a positive number as the
// receiver compares less than, equal to, or greater than other, consistent
// with a strict total order.
//
// Next must return the successor of the item. It is only required to be
// correct when the receiver is not the maximum representable item; the
// default instantiations in package item wrap at the top of their range
// (see item.Bytes32.Next and item.Uint64.Next), which is the behavior the reconciliation
// protocol's wrap-around ranges rely on.
//
// The zero value of T is used as the item order's designated "zero" --
// the identity item Range needs to express the full range as (zero, zero)
// and to build the first message when a tree is empty (see
// reconcile.FirstMessage). Implementations should make the zero value the
// least item in their order.
type Item[T any] interface {
	Compare(other T) int
	Next() T
}

// compare is a small convenience wrapper kept around because every caller
// in this package already has two items in hand and wants a plain
// three-way comparison.
func compare[T Item[T]](a, b T) int {
	return a.Compare(b)
}

// equal reports whether a and b compare equal.
func equal[T Item[T]](a, b T) bool {
	return compare(a, b) == 0
}

// less reports whether a compares less than b.
func less[T Item[T]](a, b T) bool {
	return compare(a, b) < 0
}
