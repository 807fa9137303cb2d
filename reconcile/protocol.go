package reconcile

import (
	"fmt"

	"github.com/negentropy-go/negentropy"
	"github.com/negentropy-go/negentropy/store"
)

// FirstMessage builds the opening message a peer sends to begin
// reconciling t against whatever the other side holds. An empty tree has
// nothing to fingerprint, so it just asks outright for everything in the
// full range; a non-empty tree leads with a fingerprint over its own
// span and, in the reversed range, offers to learn about anything the
// peer holds outside that span.
func FirstMessage[I negentropy.Item[I], M negentropy.Monoid[I, M], O any](t negentropy.Tree[I, M]) Message[I, M, O] {
	if t.IsEmpty() {
		return Message[I, M, O]{
			ItemSets: []ItemSet[I]{{Range: negentropy.FullRange[I](), WantResponse: true}},
		}
	}
	full := t.FullRange()
	return Message[I, M, O]{
		Fingerprints: []Fingerprint[I, M]{{Range: full, FP: t.Fingerprint()}},
		ItemSets:     []ItemSet[I]{{Range: full.Reverse(), WantResponse: true}},
	}
}

// Respond processes one incoming message against t and objects, returning
// the reply to send back. The reply is empty (Message.IsEnd() true) once
// both sides agree on every range covered so far, which is the signal the
// reconciliation loop uses to stop.
//
// threshold is the item count below which a mismatched range is shipped
// as a flat item list instead of being split further; split decides how
// many buckets (and how large) a range over threshold divides into. A nil
// split falls back to DefaultSplit.
func Respond[I interface {
	negentropy.Item[I]
	comparable
}, M interface {
	negentropy.Monoid[I, M]
	comparable
}, O store.Object[I]](
	t negentropy.Tree[I, M],
	objects store.ObjectStore[I, O],
	msg Message[I, M, O],
	threshold int,
	split SplitFunc,
) (Message[I, M, O], error) {
	if split == nil {
		split = DefaultSplit
	}

	var reply Message[I, M, O]
	var wants []I

	for _, is := range msg.ItemSets {
		filter := negentropy.NewItemFilterAccumulator[I, M](is.Items)
		if qr, ok := filter.QueryRange(); ok {
			t.Query(qr, filter)
		}
		wants = append(wants, filter.New()...)

		if is.WantResponse {
			items := negentropy.NewItemsAccumulator[I, M]()
			t.Query(is.Range, items)
			reply.ItemSets = append(reply.ItemSets, ItemSet[I]{
				Range: is.Range,
				Items: items.Items(),
			})
		}
	}

	for _, fp := range msg.Fingerprints {
		local := negentropy.NewSimpleAccumulator[I, M]()
		t.Query(fp.Range, local)
		if local.Result() == fp.FP {
			continue
		}

		count := local.Result().Count()
		if count < threshold {
			items := negentropy.NewItemsAccumulator[I, M]()
			t.Query(fp.Range, items)
			reply.ItemSets = append(reply.ItemSets, ItemSet[I]{
				Range:        fp.Range,
				Items:        items.Items(),
				WantResponse: true,
			})
			continue
		}

		sizes := split(count)
		buckets := negentropy.NewSplitAccumulator[I, M](fp.Range, sizes)
		t.Query(fp.Range, buckets)
		results, ranges := buckets.Results(), buckets.Ranges()
		for i := range results {
			reply.Fingerprints = append(reply.Fingerprints, Fingerprint[I, M]{
				Range: ranges[i],
				FP:    results[i],
			})
		}
	}

	reply.Wants = wants
	for _, id := range msg.Wants {
		obj, ok := objects.Get(id)
		if !ok {
			return reply, fmt.Errorf("%w: %v", ErrObjectMissing, id)
		}
		reply.Provide = append(reply.Provide, obj)
	}
	return reply, nil
}
