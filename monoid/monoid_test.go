package monoid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negentropy-go/negentropy/item"
	"github.com/negentropy-go/negentropy/monoid"
)

func TestSumCombineIsAssociativeAndCounts(t *testing.T) {
	var zero monoid.Sum
	a := zero.Lift(3)
	b := zero.Lift(4)
	c := zero.Lift(5)

	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))
	assert.Equal(t, left, right)
	assert.Equal(t, uint64(12), left.Total())
	assert.Equal(t, 3, left.Count())

	assert.Equal(t, zero, zero.Combine(zero), "neutral element is its own identity")
	assert.Equal(t, a, zero.Combine(a))
}

func TestHashXorCombineIsCommutativeAndSelfInverse(t *testing.T) {
	var zero monoid.HashXor
	a := zero.Lift(item.Bytes32{1})
	b := zero.Lift(item.Bytes32{2})

	assert.Equal(t, a.Combine(b), b.Combine(a), "xor fold does not depend on visit order")
	assert.Equal(t, zero.Digest(), a.Combine(a).Digest(), "xor-ing a value with itself cancels out")
	assert.Equal(t, 2, a.Combine(a).Count(), "count still accumulates even though the digest cancels")
}

func TestTimestampedMonoidIgnoresTimestampInFingerprint(t *testing.T) {
	type tsMonoid = monoid.Timestamped[item.Uint64, item.Uint64, monoid.Sum]

	var zero tsMonoid
	early := item.Timestamped[item.Uint64, item.Uint64]{TS: 1, ID: 7}
	late := item.Timestamped[item.Uint64, item.Uint64]{TS: 100, ID: 7}

	assert.Equal(t, zero.Lift(early), zero.Lift(late), "fingerprint only folds the id, not the timestamp")
	assert.Equal(t, 1, zero.Lift(early).Count())
}
