// Package reconcile implements the wire protocol that drives two peers
// holding a negentropy.Tree each to set convergence: repeated exchange of
// Message values carrying fingerprints, item lists, wants and provides,
// until a response carries none of the four and the round terminates.
package reconcile

import "github.com/negentropy-go/negentropy"

// Fingerprint asks the peer to compare the summary of everything it has
// in Range against FP; a mismatch is the signal to recurse or ship items,
// handled entirely on the receiving end in Respond.
type Fingerprint[I negentropy.Item[I], M negentropy.Monoid[I, M]] struct {
	Range negentropy.Range[I] `cbor:"range"`
	FP    M                   `cbor:"fp"`
}

// ItemSet carries the sender's own items in Range (possibly none). With
// WantResponse true it also asks the receiver to answer with its own
// items in Range ("tell me what you have here"); an answer has
// WantResponse false.
type ItemSet[I negentropy.Item[I]] struct {
	Range        negentropy.Range[I] `cbor:"range"`
	Items        []I                 `cbor:"items"`
	WantResponse bool                `cbor:"want_response"`
}

// Message is one round trip's worth of protocol traffic in one direction.
// O is the embedder's object type, the concrete payload behind a Provide
// entry's item id.
type Message[I negentropy.Item[I], M negentropy.Monoid[I, M], O any] struct {
	Fingerprints []Fingerprint[I, M] `cbor:"fps"`
	ItemSets     []ItemSet[I]        `cbor:"item_sets"`
	Wants        []I                 `cbor:"wants"`
	Provide      []O                 `cbor:"provide"`
}

// IsEnd reports whether m carries nothing further to act on -- the
// termination condition the reconciliation loop checks after every round.
func (m Message[I, M, O]) IsEnd() bool {
	return len(m.Fingerprints) == 0 && len(m.ItemSets) == 0 && len(m.Wants) == 0 && len(m.Provide) == 0
}
