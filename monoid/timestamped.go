package monoid

import (
	"github.com/negentropy-go/negentropy"
	"github.com/negentropy-go/negentropy/item"
)

// Timestamped lifts an inner monoid M over the ID half of an
// item.Timestamped[TS, I], ignoring the timestamp itself when folding --
// the fingerprint only needs to summarize which events are present, not
// when they happened, since the tree's own structure already orders by
// (timestamp, id).
type Timestamped[TS negentropy.Item[TS], I negentropy.Item[I], M negentropy.Monoid[I, M]] struct {
	Inner M
}

func (Timestamped[TS, I, M]) Lift(it item.Timestamped[TS, I]) Timestamped[TS, I, M] {
	var innerZero M
	return Timestamped[TS, I, M]{Inner: innerZero.Lift(it.ID)}
}

func (t Timestamped[TS, I, M]) Combine(other Timestamped[TS, I, M]) Timestamped[TS, I, M] {
	return Timestamped[TS, I, M]{Inner: t.Inner.Combine(other.Inner)}
}

func (t Timestamped[TS, I, M]) Count() int {
	return t.Inner.Count()
}
