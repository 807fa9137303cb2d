package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negentropy-go/negentropy/item"
)

func TestBytes32Compare(t *testing.T) {
	var a, b item.Bytes32
	assert.Equal(t, 0, a.Compare(b))

	b[0] = 1
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))

	a[31] = 1
	assert.Equal(t, 1, a.Compare(b), "most significant byte (index 31) dominates")
}

func TestBytes32NextCarries(t *testing.T) {
	var a item.Bytes32
	a[0] = 0xff
	a[1] = 0xff

	next := a.Next()
	assert.Equal(t, byte(0x00), next[0])
	assert.Equal(t, byte(0x00), next[1])
	assert.Equal(t, byte(0x01), next[2])
}

func TestBytes32NextWrapsAtMax(t *testing.T) {
	var max item.Bytes32
	for i := range max {
		max[i] = 0xff
	}
	var zero item.Bytes32
	assert.Equal(t, zero, max.Next())
}

func TestUint64CompareAndNext(t *testing.T) {
	assert.Equal(t, -1, item.Uint64(1).Compare(2))
	assert.Equal(t, 1, item.Uint64(2).Compare(1))
	assert.Equal(t, 0, item.Uint64(5).Compare(5))
	assert.Equal(t, item.Uint64(6), item.Uint64(5).Next())
}

func TestUint64NextWraps(t *testing.T) {
	var max item.Uint64 = ^item.Uint64(0)
	assert.Equal(t, item.Uint64(0), max.Next())
}

func TestTimestampedOrdersByTimestampThenID(t *testing.T) {
	a := item.Timestamped[item.Uint64, item.Uint64]{TS: 1, ID: 5}
	b := item.Timestamped[item.Uint64, item.Uint64]{TS: 1, ID: 9}
	c := item.Timestamped[item.Uint64, item.Uint64]{TS: 2, ID: 0}

	assert.Negative(t, a.Compare(b), "same timestamp, lower id sorts first")
	assert.Negative(t, b.Compare(c), "earlier timestamp sorts first regardless of id")
	assert.Equal(t, item.Timestamped[item.Uint64, item.Uint64]{TS: 1, ID: 6}, a.Next())
}
