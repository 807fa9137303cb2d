// Package monoid provides concrete negentropy.Monoid implementations: a
// running sum for numeric items, a SHA-256 xor-fold fingerprint for
// content-addressed items, and a timestamp-aware wrapper that defers to
// an inner monoid over the non-timestamp part of an item.Timestamped.
package monoid

import "github.com/negentropy-go/negentropy/item"

// Sum folds item.Uint64 values by addition, tracking both the running
// total and how many items contributed to it. Mostly useful for tests:
// it is easy to reason about by hand, unlike a hash fingerprint.
type Sum struct {
	total uint64
	n     int
}

// Total returns the sum of every item folded in so far.
func (s Sum) Total() uint64 {
	return s.total
}

func (Sum) Lift(it item.Uint64) Sum {
	return Sum{total: uint64(it), n: 1}
}

func (s Sum) Combine(other Sum) Sum {
	return Sum{total: s.total + other.total, n: s.n + other.n}
}

func (s Sum) Count() int {
	return s.n
}
