package xdr

import (
	"bytes"
	"math"
	"testing"

	rasky "github.com/rasky/go-xdr/xdr2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// primitiveSample mirrors the primitives this package writes so the
// reflection encoder from go-xdr can serve as an independent oracle.
type primitiveSample struct {
	U32   uint32
	I32   int32
	U64   uint64
	I64   int64
	Flag  bool
	Name  string
	Blob  []byte
	Fixed [5]byte
}

func TestPrimitives_MatchReferenceEncoder(t *testing.T) {
	samples := []primitiveSample{
		{},
		{U32: 1, I32: -1, U64: 2, I64: -2, Flag: true, Name: "a", Blob: []byte{1}, Fixed: [5]byte{1, 2, 3, 4, 5}},
		{U32: math.MaxUint32, I32: math.MinInt32, U64: math.MaxUint64, I64: math.MinInt64, Name: "test", Blob: []byte{1, 2, 3, 4, 5, 6}},
		{I32: math.MaxInt32, I64: math.MaxInt64, Name: "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"},
	}

	for _, s := range samples {
		var want bytes.Buffer
		_, err := rasky.Marshal(&want, &s)
		require.NoError(t, err)

		var got bytes.Buffer
		WriteUint32(&got, s.U32)
		WriteInt32(&got, s.I32)
		WriteUint64(&got, s.U64)
		WriteInt64(&got, s.I64)
		WriteBool(&got, s.Flag)
		WriteString(&got, s.Name)
		WriteOpaque(&got, s.Blob)
		WriteFixedOpaque(&got, s.Fixed[:])

		assert.Equal(t, want.Bytes(), got.Bytes())
	}
}

func TestPrimitives_DecodeReferenceEncoding(t *testing.T) {
	in := primitiveSample{
		U32: 0xdeadbeef, I32: -42, U64: 1 << 40, I64: -1 << 40,
		Flag: true, Name: "stellar", Blob: []byte{9, 8, 7}, Fixed: [5]byte{5, 4, 3, 2, 1},
	}
	var buf bytes.Buffer
	_, err := rasky.Marshal(&buf, &in)
	require.NoError(t, err)

	c := NewCursor(buf.Bytes())
	u32, err := DecodeUint32(c)
	require.NoError(t, err)
	i32, err := DecodeInt32(c)
	require.NoError(t, err)
	u64, err := DecodeUint64(c)
	require.NoError(t, err)
	i64, err := DecodeInt64(c)
	require.NoError(t, err)
	flag, err := DecodeBool(c)
	require.NoError(t, err)
	name, err := DecodeString(c)
	require.NoError(t, err)
	blob, err := DecodeOpaque(c)
	require.NoError(t, err)
	fixed, err := DecodeFixedOpaque(c, 5)
	require.NoError(t, err)

	assert.Equal(t, in.U32, u32)
	assert.Equal(t, in.I32, i32)
	assert.Equal(t, in.U64, u64)
	assert.Equal(t, in.I64, i64)
	assert.Equal(t, in.Flag, flag)
	assert.Equal(t, in.Name, name)
	assert.Equal(t, in.Blob, blob)
	assert.Equal(t, in.Fixed[:], fixed)
	assert.Zero(t, c.Remaining())
}

func TestWriteOpaque_Padding(t *testing.T) {
	for n := 0; n <= 9; n++ {
		data := bytes.Repeat([]byte{0xff}, n)

		var buf bytes.Buffer
		WriteOpaque(&buf, data)

		out := buf.Bytes()
		assert.Zero(t, len(out)%4, "length %d not aligned", n)
		assert.Equal(t, 4+n+Padding(n), len(out))
		for _, b := range out[4+n:] {
			assert.Zero(t, b, "padding must be zero for length %d", n)
		}
	}
}

func TestWriteString_Examples(t *testing.T) {
	var buf bytes.Buffer
	WriteString(&buf, "abc")
	assert.Equal(t, []byte{0, 0, 0, 3, 'a', 'b', 'c', 0}, buf.Bytes())

	buf.Reset()
	WriteString(&buf, "test")
	assert.Equal(t, []byte{0, 0, 0, 4, 't', 'e', 's', 't'}, buf.Bytes())
}

func TestWriteEnum_NegativeValue(t *testing.T) {
	type resultCode int32
	var buf bytes.Buffer
	WriteEnum(&buf, resultCode(-1))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf.Bytes())

	got, err := DecodeEnum[resultCode](NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, resultCode(-1), got)
}
