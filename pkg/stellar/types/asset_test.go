package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestAsset_AlphaNum4RoundTrip(t *testing.T) {
	issuer := account(0x11)
	in, err := NewCreditAsset("USD", issuer)
	require.NoError(t, err)

	out, data := roundTrip(t, &in)

	want := []byte{0, 0, 0, 1, 'U', 'S', 'D', 0, 0, 0, 0, 0}
	want = append(want, bytes.Repeat([]byte{0x11}, 32)...)
	assert.Equal(t, want, data)

	assert.Equal(t, AssetTypeCreditAlphanum4, out.Type)
	require.NotNil(t, out.AlphaNum4)
	assert.Nil(t, out.AlphaNum12)
	assert.Equal(t, "USD", out.AlphaNum4.AssetCode.String())
	assert.True(t, issuer.Equal(out.AlphaNum4.Issuer))
	assert.Equal(t, "USD", out.Code())
}

func TestAsset_AlphaNum12RoundTrip(t *testing.T) {
	in, err := NewCreditAsset("LONGERCODE", account(2))
	require.NoError(t, err)
	out, data := roundTrip(t, &in)
	assert.Len(t, data, 4+12+4+32)
	assert.Equal(t, AssetTypeCreditAlphanum12, out.Type)
	assert.Equal(t, "LONGERCODE", out.Code())
}

func TestAsset_Native(t *testing.T) {
	in := NewNativeAsset()
	out, data := roundTrip(t, &in)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
	assert.Equal(t, 0, armCount(t, out))
	assert.Equal(t, "native", out.String())
}

func TestNewCreditAsset_BadCode(t *testing.T) {
	for _, code := range []string{"", "THIRTEENCHARS"} {
		_, err := NewCreditAsset(code, account(1))
		assert.ErrorIs(t, err, xdr.ErrInvalidValue, code)
	}
}

func TestAsset_NilArm(t *testing.T) {
	a := Asset{Type: AssetTypeCreditAlphanum4}
	_, err := xdr.Marshal(&a)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestAsset_UnknownDiscriminant(t *testing.T) {
	data := []byte{0, 0, 0, 9}
	var a Asset
	require.NoError(t, xdr.Unmarshal(data, &a))
	assert.Equal(t, AssetType(9), a.Type)
	assert.False(t, a.Type.IsKnown())
	assert.Equal(t, "AssetType(9)", a.Type.String())
	assert.Equal(t, 0, armCount(t, &a))

	again, err := xdr.Marshal(&a)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestAsset_Conversions(t *testing.T) {
	a := usd(t)
	assetBytes, err := xdr.Marshal(&a)
	require.NoError(t, err)

	tl := a.ToTrustLineAsset()
	tlBytes, err := xdr.Marshal(&tl)
	require.NoError(t, err)
	assert.Equal(t, assetBytes, tlBytes)

	ct := a.ToChangeTrustAsset()
	ctBytes, err := xdr.Marshal(&ct)
	require.NoError(t, err)
	assert.Equal(t, assetBytes, ctBytes)

	native := NewNativeAsset()
	nt := native.ToTrustLineAsset()
	assert.Equal(t, AssetTypeNative, nt.Type)
	assert.Equal(t, 0, armCount(t, &nt))
}

func TestAsset_ConversionsOwnArms(t *testing.T) {
	a := usd(t)
	before, err := xdr.Marshal(&a)
	require.NoError(t, err)

	tl := a.ToTrustLineAsset()
	tl.AlphaNum4.AssetCode[0] = 'E'
	tl.AlphaNum4.Issuer.Ed25519[0] = 0x01
	ct := a.ToChangeTrustAsset()
	ct.AlphaNum4.AssetCode[1] = 'X'
	ct.AlphaNum4.Issuer.Ed25519[1] = 0x02

	after, err := xdr.Marshal(&a)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "USD", a.Code())
	assert.NotSame(t, a.AlphaNum4, tl.AlphaNum4)
	assert.NotSame(t, a.AlphaNum4.Issuer.Ed25519, ct.AlphaNum4.Issuer.Ed25519)

	long, err := NewCreditAsset("LONGCODE", account(0xBB))
	require.NoError(t, err)
	tl12 := long.ToTrustLineAsset()
	tl12.AlphaNum12.AssetCode[0] = 'X'
	assert.Equal(t, "LONGCODE", long.Code())
}

func TestTrustLineAsset_PoolShare(t *testing.T) {
	id := PoolID(key(7))
	in := TrustLineAsset{Type: AssetTypePoolShare, LiquidityPoolID: &id}
	out, data := roundTrip(t, &in)
	assert.Len(t, data, 36)
	assert.Equal(t, 1, armCount(t, out))
}

func TestChangeTrustAsset_PoolShare(t *testing.T) {
	in := ChangeTrustAsset{
		Type: AssetTypePoolShare,
		LiquidityPool: &LiquidityPoolParameters{
			Type: LiquidityPoolTypeConstantProduct,
			ConstantProduct: &LiquidityPoolConstantProductParameters{
				AssetA: NewNativeAsset(),
				AssetB: usd(t),
				Fee:    30,
			},
		},
	}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, int32(30), out.LiquidityPool.ConstantProduct.Fee)
}

func TestAssetCode_AllowTrust(t *testing.T) {
	code := AssetCode4{'E', 'U', 'R'}
	in := AssetCode{Type: AssetTypeCreditAlphanum4, AssetCode4: &code}
	out, data := roundTrip(t, &in)
	assert.Equal(t, []byte{0, 0, 0, 1, 'E', 'U', 'R', 0}, data)
	assert.Equal(t, "EUR", out.AssetCode4.String())
}

func TestPrice_String(t *testing.T) {
	p := Price{N: 3, D: 4}
	out, data := roundTrip(t, &p)
	assert.Equal(t, []byte{0, 0, 0, 3, 0, 0, 0, 4}, data)
	assert.Equal(t, "3/4", out.String())
}

func TestNewCreditAsset_CopiesIssuer(t *testing.T) {
	issuer := account(1)
	a, err := NewCreditAsset("USD", issuer)
	require.NoError(t, err)
	issuer.Ed25519[0] = 0xFF
	assert.Equal(t, account(1), a.AlphaNum4.Issuer)

	issuer = account(2)
	a, err = NewCreditAsset("LONGERCODE", issuer)
	require.NoError(t, err)
	issuer.Ed25519[0] = 0xFF
	assert.Equal(t, account(2), a.AlphaNum12.Issuer)
}
