package reconcile

import (
	"github.com/fxamacker/cbor/v2"
)

// Encode marshals m to its wire form. Messages embed plain monoid values
// directly (no separate encode/decode trait to satisfy) since cbor
// reflects over exported struct fields on its own.
func Encode[I any, M any, O any](m Message[I, M, O]) ([]byte, error) {
	b, err := cbor.Marshal(m)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return b, nil
}

// Decode unmarshals b into a Message[I, M, O].
func Decode[I any, M any, O any](b []byte) (Message[I, M, O], error) {
	var m Message[I, M, O]
	if err := cbor.Unmarshal(b, &m); err != nil {
		return m, &DecodeError{Err: err}
	}
	return m, nil
}
