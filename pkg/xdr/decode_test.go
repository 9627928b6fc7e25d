package xdr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUint32_ShortBuffer(t *testing.T) {
	_, err := DecodeUint32(NewCursor([]byte{0, 0, 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBounds))

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, 0, xerr.Offset)
}

func TestDecode_FailedReadDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 7, 1, 2})
	v, err := DecodeUint32(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)

	_, err = DecodeUint64(c)
	assert.ErrorIs(t, err, ErrBounds)
	assert.Equal(t, 4, c.Offset())
	assert.Equal(t, 2, c.Remaining())
}

func TestDecodeBool_Strict(t *testing.T) {
	v, err := DecodeBool(NewCursor([]byte{0, 0, 0, 1}))
	require.NoError(t, err)
	assert.True(t, v)

	v, err = DecodeBool(NewCursor([]byte{0, 0, 0, 0}))
	require.NoError(t, err)
	assert.False(t, v)

	_, err = DecodeBool(NewCursor([]byte{0, 0, 0, 2}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeOpaque_LengthExceedsBuffer(t *testing.T) {
	// Claims 0xffffffff bytes but carries two.
	_, err := DecodeOpaque(NewCursor([]byte{0xff, 0xff, 0xff, 0xff, 1, 2}))
	assert.ErrorIs(t, err, ErrBounds)
}

func TestDecodeOpaque_MissingPadding(t *testing.T) {
	// Length 3, data present, padding byte missing.
	_, err := DecodeOpaque(NewCursor([]byte{0, 0, 0, 3, 1, 2, 3}))
	assert.ErrorIs(t, err, ErrBounds)
}

func TestDecodeOpaque_NonZeroPadding(t *testing.T) {
	_, err := DecodeOpaque(NewCursor([]byte{0, 0, 0, 3, 1, 2, 3, 9}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeOpaque_CopiesData(t *testing.T) {
	raw := []byte{0, 0, 0, 4, 1, 2, 3, 4}
	data, err := DecodeOpaque(NewCursor(raw))
	require.NoError(t, err)

	raw[4] = 0xee
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}

func TestDecodeString(t *testing.T) {
	s, err := DecodeString(NewCursor([]byte{0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', 0, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestDecodeFixedOpaqueInto(t *testing.T) {
	var code [4]byte
	c := NewCursor([]byte{'U', 'S', 'D', 0})
	require.NoError(t, DecodeFixedOpaqueInto(c, code[:]))
	assert.Equal(t, [4]byte{'U', 'S', 'D', 0}, code)
	assert.Zero(t, c.Remaining())
}

func TestError_Message(t *testing.T) {
	err := &Error{Code: ErrBounds, Offset: 12, Message: "need 4 bytes, 0 remaining"}
	assert.Equal(t, "xdr Bounds at offset 12: need 4 bytes, 0 remaining", err.Error())
	assert.Equal(t, "xdr: InvalidBase64", ErrInvalidBase64.Error())
	assert.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
}
