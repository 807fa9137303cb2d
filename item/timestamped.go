package item

import "github.com/negentropy-go/negentropy"

// Timestamped pairs an item with a timestamp, ordering first by TS and
// only falling back to ID to break ties -- the shape an event-sourced log
// reconciles under, where the natural key is (time, id) rather than a
// bare id. Supplements the core id/fingerprint model with the ordering an
// append-only log actually needs.
type Timestamped[TS negentropy.Item[TS], I negentropy.Item[I]] struct {
	TS TS
	ID I
}

// Compare orders first by TS, then by ID.
func (t Timestamped[TS, I]) Compare(other Timestamped[TS, I]) int {
	if c := t.TS.Compare(other.TS); c != 0 {
		return c
	}
	return t.ID.Compare(other.ID)
}

// Next returns the same timestamp with the next ID. This only makes
// sense as the exclusive upper bound of a range query; it is not a
// meaningful "next event" in general, since ID wrapping does not carry
// into TS the way a single-field item's would.
func (t Timestamped[TS, I]) Next() Timestamped[TS, I] {
	return Timestamped[TS, I]{TS: t.TS, ID: t.ID.Next()}
}
