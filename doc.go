// Package negentropy implements a monoid-augmented, persistent 2-3 tree and
// the range-query engine built on top of it.
//
// The tree stores items from a totally ordered [Item] type and caches, at
// every node, the fold of an associative [Monoid] over the items in its
// subtree (a "fingerprint") together with the subtree's min and max item.
// Range queries walk only the subtrees that overlap a requested (possibly
// wrap-around) range and dispatch whole subtrees or single items to a
// pluggable [Accumulator], so a range's fingerprint, its item list, or an
// N-way split can all be computed in one O(log n) traversal.
//
//	Insert()  O(log n)
//	Query()   O(log n + k), k = number of items/subtrees visited
//
// Immutability works the way the teacher package this repository grew from
// achieves it for its treap: Insert returns a new root and copies only the
// nodes on the path to the change, sharing the rest with the previous root.
// Concurrent readers may operate against an old root while a writer installs
// a new one with a single pointer swap; no lock is required.
//
// This package is the data-structure core of a set-reconciliation protocol.
// The wire protocol that drives two peers to convergence by exchanging
// fingerprints, item sets, wants and provides lives in the sibling package
// github.com/negentropy-go/negentropy/reconcile.
package negentropy
