package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

type textValue interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
	ToBase64() (string, error)
	FromBase64(string) error
}

func TestBase64_KnownValues(t *testing.T) {
	v := NewSCValU32(5)
	s, err := v.ToBase64()
	require.NoError(t, err)
	assert.Equal(t, "AAAAAwAAAAU=", s)

	vec := NewSCValVec()
	s, err = vec.ToBase64()
	require.NoError(t, err)
	assert.Equal(t, "AAAAEAAAAAEAAAAA", s)

	var a Asset
	require.NoError(t, a.FromBase64("AAAAAA=="))
	assert.Equal(t, AssetTypeNative, a.Type)
}

func TestBase64_RoundTrip(t *testing.T) {
	env := TransactionEnvelope{Type: EnvelopeTypeTx, V1: &TransactionV1Envelope{Tx: sampleTransaction(t)}}
	s, err := env.ToBase64()
	require.NoError(t, err)

	var got TransactionEnvelope
	require.NoError(t, got.FromBase64(s))
	again, err := got.ToBase64()
	require.NoError(t, err)
	assert.Equal(t, s, again)

	bin, err := got.MarshalBinary()
	require.NoError(t, err)
	var fromBin TransactionEnvelope
	require.NoError(t, fromBin.UnmarshalBinary(bin))
	assert.Equal(t, got.V1.Tx.Fee, fromBin.V1.Tx.Fee)
}

func TestFromBase64_Invalid(t *testing.T) {
	values := map[string]func() textValue{
		"TransactionEnvelope": func() textValue { return new(TransactionEnvelope) },
		"LedgerEntry":         func() textValue { return new(LedgerEntry) },
		"SCVal":               func() textValue { return new(SCVal) },
		"TransactionMeta":     func() textValue { return new(TransactionMeta) },
		"TransactionResult":   func() textValue { return new(TransactionResult) },
		"SCSpecEntry":         func() textValue { return new(SCSpecEntry) },
	}
	for name, mk := range values {
		t.Run(name, func(t *testing.T) {
			for _, in := range []string{"not-valid!!!@#$", "###invalid###", "bad base64 data"} {
				err := mk().FromBase64(in)
				require.Error(t, err, in)
				assert.True(t, errors.Is(err, xdr.ErrInvalidBase64), "%q: %v", in, err)
			}

			err := mk().FromBase64("AAAA")
			assert.ErrorIs(t, err, xdr.ErrBounds)
			assert.False(t, errors.Is(err, xdr.ErrInvalidBase64))
		})
	}
}

func TestUnmarshalBinary_TrailingData(t *testing.T) {
	var v SCVal
	err := v.UnmarshalBinary([]byte{0, 0, 0, 1, 0, 0, 0, 0})
	assert.ErrorIs(t, err, xdr.ErrTrailingData)

	var m Memo
	require.NoError(t, m.UnmarshalBinary([]byte{0, 0, 0, 0}))
	assert.ErrorIs(t, m.UnmarshalBinary([]byte{0, 0, 0, 0, 0}), xdr.ErrTrailingData)
}

func TestUnmarshalBinary_BadPadding(t *testing.T) {
	var v SCVal
	// string "a" with a non-zero pad byte
	err := v.UnmarshalBinary([]byte{0, 0, 0, 14, 0, 0, 0, 1, 'a', 0, 1, 0})
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)
}

func TestUnmarshalBinary_LengthBeyondBuffer(t *testing.T) {
	var v SCVal
	err := v.UnmarshalBinary([]byte{0, 0, 0, 13, 0xff, 0xff, 0xff, 0xf0})
	assert.ErrorIs(t, err, xdr.ErrBounds)
}
