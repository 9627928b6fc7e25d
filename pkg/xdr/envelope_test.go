package xdr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64_RoundTrip(t *testing.T) {
	in := &point{X: 7, Y: -7}
	s, err := MarshalBase64(in)
	require.NoError(t, err)
	assert.Equal(t, "AAAAB/////k=", s)

	var out point
	require.NoError(t, UnmarshalBase64(s, &out))
	assert.Equal(t, *in, out)
}

func TestUnmarshalBase64_InvalidInput(t *testing.T) {
	for _, s := range []string{"not-valid!!!@#$", "###invalid###", "bad base64 data", "AAAA~", "{}"} {
		var out point
		err := UnmarshalBase64(s, &out)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidBase64), "%q: %v", s, err)
		assert.False(t, errors.Is(err, ErrBounds), s)
	}
}

func TestUnmarshalBase64_ValidBase64BadPayload(t *testing.T) {
	var out point
	err := UnmarshalBase64("AAAA", &out)
	assert.ErrorIs(t, err, ErrBounds)
	assert.False(t, errors.Is(err, ErrInvalidBase64))
}

func TestUnmarshal_TrailingData(t *testing.T) {
	var out point
	err := Unmarshal([]byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 0}, &out)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestDecodeBase64(t *testing.T) {
	data, err := DecodeBase64("AAAAAQ==")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, data)

	_, err = DecodeBase64("AAAAAQ")
	assert.ErrorIs(t, err, ErrInvalidBase64)
}
