package reconcile

import (
	"errors"
	"fmt"
)

// ErrObjectMissing is returned when a peer's Wants list names an item the
// local ObjectStore cannot produce, even though the local tree claims to
// hold it -- an index/store inconsistency the protocol driver surfaces
// rather than silently dropping from Provide.
var ErrObjectMissing = errors.New("reconcile: object store missing an item the tree reports present")

// EncodeError wraps a failure to marshal a Message to its wire form.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("reconcile: encode message: %v", e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to unmarshal a Message from its wire form.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("reconcile: decode message: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
