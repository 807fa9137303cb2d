package monoid

import (
	"crypto/sha256"

	"github.com/negentropy-go/negentropy/item"
)

// HashXor is a fingerprint monoid for item.Bytes32 items: each item is
// hashed with SHA-256, and a range's fingerprint is the xor of its items'
// digests together with how many items contributed. Xor is commutative
// and its own inverse, so the fold is insensitive to visit order.
//
// Collisions between distinct same-count item sets are possible in
// principle, as with any fixed-width fingerprint; 32 bytes of SHA-256
// output makes that astronomically unlikely for any realistic set size,
// which is why the protocol always accompanies a fingerprint mismatch
// with a count before deciding how to split further.
type HashXor struct {
	digest [32]byte
	n      int
}

// Digest returns the raw xor-folded digest.
func (h HashXor) Digest() [32]byte {
	return h.digest
}

func (HashXor) Lift(it item.Bytes32) HashXor {
	return HashXor{digest: sha256.Sum256(it[:]), n: 1}
}

func (h HashXor) Combine(other HashXor) HashXor {
	var out [32]byte
	for i := range out {
		out[i] = h.digest[i] ^ other.digest[i]
	}
	return HashXor{digest: out, n: h.n + other.n}
}

func (h HashXor) Count() int {
	return h.n
}
