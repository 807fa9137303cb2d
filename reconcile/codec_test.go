package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negentropy-go/negentropy"
	"github.com/negentropy-go/negentropy/item"
	"github.com/negentropy-go/negentropy/monoid"
	"github.com/negentropy-go/negentropy/reconcile"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tr := negentropy.Build[item.Uint64, monoid.Sum](1, 2, 3, 4, 5)
	msg := reconcile.FirstMessage[item.Uint64, monoid.Sum, record](tr)
	msg.Wants = []item.Uint64{9, 10}
	msg.Provide = []record{record(9), record(10)}

	b, err := reconcile.Encode[item.Uint64, monoid.Sum, record](msg)
	require.NoError(t, err)

	got, err := reconcile.Decode[item.Uint64, monoid.Sum, record](b)
	require.NoError(t, err)

	assert.Equal(t, msg, got)
}

func TestDecodeInvalidBytesReturnsDecodeError(t *testing.T) {
	_, err := reconcile.Decode[item.Uint64, monoid.Sum, record]([]byte("not cbor"))
	require.Error(t, err)

	var decodeErr *reconcile.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
