package types

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

type codec[T any] interface {
	*T
	Encode(*bytes.Buffer) error
	Decode(*xdr.Cursor) error
}

// roundTrip encodes in, decodes the bytes into a fresh value, checks that
// the two values match and that re-encoding reproduces the same bytes.
func roundTrip[T any, P codec[T]](t *testing.T, in *T) (*T, []byte) {
	t.Helper()
	data, err := xdr.Marshal(P(in))
	require.NoError(t, err)
	require.Zero(t, len(data)%4, "encoding must be 4-byte aligned")

	out := new(T)
	require.NoError(t, xdr.Unmarshal(data, P(out)))
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}

	again, err := xdr.Marshal(P(out))
	require.NoError(t, err)
	assert.Equal(t, data, again, "re-encoding must be byte identical")
	return out, data
}

// armCount returns the number of non-nil pointer fields of a union value,
// ignoring the discriminant.
func armCount(t *testing.T, union any) int {
	t.Helper()
	v := reflect.Indirect(reflect.ValueOf(union))
	require.Equal(t, reflect.Struct, v.Kind())
	n := 0
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			n++
		}
	}
	return n
}

func key(b byte) [32]byte {
	var k [32]byte
	for i := range k {
		k[i] = b
	}
	return k
}

func account(b byte) AccountID {
	return NewAccountID(key(b))
}

func usd(t *testing.T) Asset {
	t.Helper()
	a, err := NewCreditAsset("USD", account(0xAA))
	require.NoError(t, err)
	return a
}

func ptr[T any](v T) *T {
	return &v
}
