package xdr

import (
	"bytes"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUInt128_DecimalBoundaries(t *testing.T) {
	cases := []struct {
		dec  string
		want UInt128Parts
	}{
		{"0", UInt128Parts{}},
		{"1", UInt128Parts{Lo: 1}},
		{"18446744073709551615", UInt128Parts{Lo: math.MaxUint64}},
		{"18446744073709551616", UInt128Parts{Hi: 1}},
		{"340282366920938463463374607431768211455", UInt128Parts{Hi: math.MaxUint64, Lo: math.MaxUint64}},
	}
	for _, tc := range cases {
		t.Run(tc.dec, func(t *testing.T) {
			got, err := ParseUInt128(tc.dec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.dec, got.String())
		})
	}
}

func TestInt128_DecimalBoundaries(t *testing.T) {
	cases := []struct {
		dec  string
		want Int128Parts
	}{
		{"0", Int128Parts{}},
		{"1", Int128Parts{Lo: 1}},
		{"-1", Int128Parts{Hi: -1, Lo: math.MaxUint64}},
		{"9223372036854775807", Int128Parts{Lo: math.MaxInt64}},
		{"-9223372036854775808", Int128Parts{Hi: -1, Lo: 1 << 63}},
		{"18446744073709551615", Int128Parts{Lo: math.MaxUint64}},
		{"170141183460469231731687303715884105727", Int128Parts{Hi: math.MaxInt64, Lo: math.MaxUint64}},
		{"-170141183460469231731687303715884105728", Int128Parts{Hi: math.MinInt64}},
	}
	for _, tc := range cases {
		t.Run(tc.dec, func(t *testing.T) {
			got, err := ParseInt128(tc.dec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.dec, got.String())
		})
	}
}

func TestUInt256_AllParts(t *testing.T) {
	p := UInt256Parts{HiHi: 1, HiLo: 2, LoHi: 3, LoLo: 4}
	dec := p.String()

	back, err := ParseUInt256(dec)
	require.NoError(t, err)
	assert.Equal(t, p, back)

	top, err := ParseUInt256(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)).String())
	require.NoError(t, err)
	assert.Equal(t, UInt256Parts{HiHi: math.MaxUint64, HiLo: math.MaxUint64, LoHi: math.MaxUint64, LoLo: math.MaxUint64}, top)
}

func TestInt256_SignedBoundaries(t *testing.T) {
	for _, p := range []Int256Parts{
		{},
		{LoLo: 1},
		{HiHi: -1, HiLo: math.MaxUint64, LoHi: math.MaxUint64, LoLo: math.MaxUint64},
		{HiHi: math.MaxInt64, HiLo: math.MaxUint64, LoHi: math.MaxUint64, LoLo: math.MaxUint64},
		{HiHi: math.MinInt64},
		{HiHi: -5, HiLo: 7, LoHi: 11, LoLo: 13},
	} {
		back, err := ParseInt256(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}

	minusOne, err := ParseInt256("-1")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), minusOne.HiHi)
	assert.Equal(t, uint64(math.MaxUint64), minusOne.LoLo)
}

func TestWide_OutOfRange(t *testing.T) {
	_, err := ParseUInt128("-1")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseUInt128("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseInt128("170141183460469231731687303715884105728")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseInt256("not a number")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestWide_WireLayout(t *testing.T) {
	var buf bytes.Buffer
	p := Int128Parts{Hi: -1, Lo: 2}
	require.NoError(t, p.Encode(&buf))
	assert.Equal(t, []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 0, 0, 0, 0, 2,
	}, buf.Bytes())

	var back Int128Parts
	require.NoError(t, back.Decode(NewCursor(buf.Bytes())))
	assert.Equal(t, p, back)

	buf.Reset()
	u := UInt256Parts{HiHi: 1, HiLo: 2, LoHi: 3, LoLo: 4}
	require.NoError(t, u.Encode(&buf))
	assert.Equal(t, 32, buf.Len())
	assert.Equal(t, byte(1), buf.Bytes()[7])
	assert.Equal(t, byte(4), buf.Bytes()[31])

	var u2 UInt256Parts
	require.NoError(t, u2.Decode(NewCursor(buf.Bytes())))
	assert.Equal(t, u, u2)
}

func TestWide_TextRoundTrip(t *testing.T) {
	var u UInt128Parts
	require.NoError(t, u.UnmarshalText([]byte("340282366920938463463374607431768211455")))
	assert.Equal(t, UInt128Parts{Hi: math.MaxUint64, Lo: math.MaxUint64}, u)
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211455", string(b))

	var i Int256Parts
	require.NoError(t, i.UnmarshalText([]byte("-1")))
	b, err = i.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-1", string(b))

	var s Int128Parts
	assert.ErrorIs(t, s.UnmarshalText([]byte("170141183460469231731687303715884105728")), ErrInvalidValue)
	var w UInt256Parts
	assert.Error(t, w.UnmarshalText([]byte("twelve")))
}
