// Package item provides concrete negentropy.Item implementations: a
// fixed-width byte digest suitable for content-addressed identifiers, a
// plain uint64 counter, and a timestamp-ordered wrapper around either.
package item

// Bytes32 is a 32-byte item, interpreted as a little-endian unsigned
// integer: index 31 holds the most significant byte, index 0 the least --
// the natural shape for a content hash or object id packed as a
// little-endian integer key. The zero value, all-zero bytes, is the
// designated minimum item a full-range query anchors on.
type Bytes32 [32]byte

// Compare orders a and b numerically, comparing from the most significant
// byte (index 31) down toward the least (index 0).
func (a Bytes32) Compare(b Bytes32) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Next returns a+1 as a little-endian integer, incrementing from the
// least significant byte (index 0) with carry toward the most significant
// (index 31). Next of the all-0xff value wraps back to the zero value.
func (a Bytes32) Next() Bytes32 {
	next := a
	for i := range next {
		next[i]++
		if next[i] != 0 {
			break
		}
	}
	return next
}

// Uint64 is a plain unsigned integer item, useful for tests and for
// embedders reconciling small dense id spaces.
type Uint64 uint64

// Compare orders a and b numerically.
func (a Uint64) Compare(b Uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Next returns a+1, wrapping to 0 after the maximum uint64.
func (a Uint64) Next() Uint64 {
	return a + 1
}
