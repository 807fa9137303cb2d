package negentropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negentropy-go/negentropy"
	"github.com/negentropy-go/negentropy/item"
)

func u(n uint64) item.Uint64 { return item.Uint64(n) }

func TestRangeFullContainsEverything(t *testing.T) {
	r := negentropy.FullRange[item.Uint64]()
	assert.True(t, r.IsFull())
	assert.True(t, r.Contains(u(0)))
	assert.True(t, r.Contains(u(1<<62)))
	assert.Equal(t, negentropy.Included, r.Compare(u(42)))
}

func TestRangeNonWrapping(t *testing.T) {
	r := negentropy.NewRange(u(5), u(10))
	assert.False(t, r.IsWrapping())
	assert.True(t, r.Contains(u(5)), "From is inclusive")
	assert.False(t, r.Contains(u(10)), "To is exclusive")
	assert.True(t, r.Contains(u(7)))
	assert.False(t, r.Contains(u(3)))

	assert.Equal(t, negentropy.IsLowerBound, r.Compare(u(5)))
	assert.Equal(t, negentropy.IsUpperBound, r.Compare(u(10)))
	assert.Equal(t, negentropy.Included, r.Compare(u(7)))
	assert.Equal(t, negentropy.Less, r.Compare(u(3)))
	assert.Equal(t, negentropy.Greater, r.Compare(u(11)))
}

func TestRangeWrapping(t *testing.T) {
	r := negentropy.NewRange(u(8), u(3))
	assert.True(t, r.IsWrapping())
	assert.True(t, r.Contains(u(8)))
	assert.True(t, r.Contains(u(100)))
	assert.True(t, r.Contains(u(0)))
	assert.False(t, r.Contains(u(3)), "To is exclusive even wrapping")
	assert.False(t, r.Contains(u(5)), "strictly between To and From falls in the dead zone")

	assert.Equal(t, negentropy.InBetween, r.Compare(u(5)))
	assert.Equal(t, negentropy.IsLowerBound, r.Compare(u(8)))
	assert.Equal(t, negentropy.IsUpperBound, r.Compare(u(3)))
}

func TestRangeReverse(t *testing.T) {
	r := negentropy.NewRange(u(5), u(10))
	rev := r.Reverse()
	assert.Equal(t, u(10), rev.From)
	assert.Equal(t, u(5), rev.To)
	assert.True(t, rev.IsWrapping())

	full := negentropy.FullRange[item.Uint64]()
	assert.Equal(t, full, full.Reverse())
}

func TestRangeHasOverlap(t *testing.T) {
	a := negentropy.NewRange(u(0), u(10))
	b := negentropy.NewRange(u(5), u(15))
	c := negentropy.NewRange(u(20), u(30))

	assert.True(t, a.HasOverlap(b))
	assert.True(t, b.HasOverlap(a))
	assert.False(t, a.HasOverlap(c))

	wrap := negentropy.NewRange(u(8), u(2))
	assert.True(t, wrap.HasOverlap(a), "wrapping range overlaps anything touching its low end")
}
