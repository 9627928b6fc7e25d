package xdr

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point is a minimal struct codec used to exercise the generic helpers.
type point struct {
	X int32
	Y int32
}

func (p *point) Encode(buf *bytes.Buffer) error {
	WriteInt32(buf, p.X)
	WriteInt32(buf, p.Y)
	return nil
}

func (p *point) Decode(c *Cursor) error {
	var err error
	if p.X, err = DecodeInt32(c); err != nil {
		return fmt.Errorf("decode point x: %w", err)
	}
	if p.Y, err = DecodeInt32(c); err != nil {
		return fmt.Errorf("decode point y: %w", err)
	}
	return nil
}

func TestOptional_Absent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeOptional[point](&buf, nil))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())

	got, err := DecodeOptional[point](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOptional_Present(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeOptional(&buf, &point{X: 1, Y: -1}))
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff}, buf.Bytes())

	got, err := DecodeOptional[point](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, point{X: 1, Y: -1}, *got)
}

func TestOptional_BadFlag(t *testing.T) {
	_, err := DecodeOptional[point](NewCursor([]byte{0, 0, 0, 7}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestOptionalFunc_Primitive(t *testing.T) {
	v := uint32(9)
	var buf bytes.Buffer
	EncodeOptionalFunc(&buf, &v, WriteUint32)
	EncodeOptionalFunc[uint32](&buf, nil, WriteUint32)

	c := NewCursor(buf.Bytes())
	got, err := DecodeOptionalFunc(c, DecodeUint32)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint32(9), *got)

	got, err = DecodeOptionalFunc(c, DecodeUint32)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArray_EmptyIsNotAbsent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeArray[point](&buf, nil))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())

	got, err := DecodeArray[point](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestArray_RoundTrip(t *testing.T) {
	in := []point{{1, 2}, {3, 4}, {-5, -6}}
	var buf bytes.Buffer
	require.NoError(t, EncodeArray(&buf, in))
	assert.Equal(t, 4+3*8, buf.Len())

	got, err := DecodeArray[point](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestArray_CountExceedsBuffer(t *testing.T) {
	_, err := DecodeArray[point](NewCursor([]byte{0x10, 0, 0, 0, 0, 0, 0, 1}))
	assert.ErrorIs(t, err, ErrBounds)
}

func TestFixedArray(t *testing.T) {
	in := []point{{1, 1}, {2, 2}}
	var buf bytes.Buffer
	require.NoError(t, EncodeFixedArray(&buf, in, 2))
	assert.Equal(t, 16, buf.Len())

	got, err := DecodeFixedArray[point](NewCursor(buf.Bytes()), 2)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	assert.ErrorIs(t, EncodeFixedArray(&buf, in, 3), ErrInvalidValue)
}

func TestArrayFunc_Uint64(t *testing.T) {
	in := []uint64{1, 2, 1 << 63}
	var buf bytes.Buffer
	EncodeArrayFunc(&buf, in, WriteUint64)

	got, err := DecodeArrayFunc(NewCursor(buf.Bytes()), DecodeUint64)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	empty, err := DecodeArrayFunc(NewCursor([]byte{0, 0, 0, 0}), DecodeUint64)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEncodeArm_NilArm(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeArm[point](&buf, nil, "Shape", 2)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "Shape")
}

func TestUnionDiscriminant(t *testing.T) {
	type kind int32
	var buf bytes.Buffer
	EncodeUnionDiscriminant(&buf, kind(3))
	got, err := DecodeUnionDiscriminant[kind](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, kind(3), got)

	_, err = DecodeUnionDiscriminant[kind](NewCursor(nil))
	assert.ErrorIs(t, err, ErrBounds)
}
