package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestSCVal_U128Max(t *testing.T) {
	const max = "340282366920938463463374607431768211455"
	in, err := NewSCValU128FromString(max)
	require.NoError(t, err)

	out, data := roundTrip(t, &in)
	want := append([]byte{0, 0, 0, 9}, bytes.Repeat([]byte{0xff}, 16)...)
	assert.Equal(t, want, data)

	s, ok := out.BigString()
	require.True(t, ok)
	assert.Equal(t, max, s)
}

func TestSCVal_WideOverflow(t *testing.T) {
	_, err := NewSCValU128FromString("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)

	_, err = NewSCValI128FromString("-170141183460469231731687303715884105729")
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestSCVal_SignedWide(t *testing.T) {
	for _, s := range []string{"-1", "-170141183460469231731687303715884105728", "0"} {
		in, err := NewSCValI128FromString(s)
		require.NoError(t, err)
		out, _ := roundTrip(t, &in)
		got, ok := out.BigString()
		require.True(t, ok)
		assert.Equal(t, s, got)
	}

	in, err := NewSCValI256FromString("-57896044618658097711785492504343953926634992332820282019728792003956564819968")
	require.NoError(t, err)
	out, data := roundTrip(t, &in)
	assert.Len(t, data, 36)
	got, _ := out.BigString()
	assert.Equal(t, "-57896044618658097711785492504343953926634992332820282019728792003956564819968", got)
}

func TestSCVal_VecAbsentVersusEmpty(t *testing.T) {
	absent := SCVal{Type: SCValTypeVec}
	data, err := xdr.Marshal(&absent)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 16, 0, 0, 0, 0}, data)

	var got SCVal
	require.NoError(t, xdr.Unmarshal(data, &got))
	assert.Nil(t, got.Vec)

	empty := NewSCValVec()
	data, err = xdr.Marshal(&empty)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 16, 0, 0, 0, 1, 0, 0, 0, 0}, data)

	got = SCVal{}
	require.NoError(t, xdr.Unmarshal(data, &got))
	require.NotNil(t, got.Vec)
	assert.Empty(t, *got.Vec)
}

func TestSCVal_MapAbsent(t *testing.T) {
	absent := SCVal{Type: SCValTypeMap}
	data, err := xdr.Marshal(&absent)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 17, 0, 0, 0, 0}, data)
}

func TestSCVal_AllKinds(t *testing.T) {
	sym, err := NewSCValSymbol("balance")
	require.NoError(t, err)
	wasm := Hash(key(0x77))

	vals := []SCVal{
		NewSCValBool(false),
		NewSCValVoid(),
		{Type: SCValTypeError, Error: &SCError{Type: SCErrorTypeContract, ContractCode: ptr(uint32(12))}},
		{Type: SCValTypeError, Error: &SCError{Type: SCErrorTypeWasmVm, Code: ptr(SCErrorCodeIndexBounds)}},
		NewSCValU32(7),
		NewSCValI32(-7),
		NewSCValU64(1 << 63),
		NewSCValI64(-1 << 63),
		NewSCValTimepoint(1700000000),
		NewSCValDuration(60),
		NewSCValBytes([]byte{1, 2, 3}),
		NewSCValString("hello"),
		sym,
		NewSCValVec(NewSCValU32(1), NewSCValVec()),
		NewSCValMap(SCMapEntry{Key: sym, Val: NewSCValI64(100)}),
		NewSCValAddress(NewContractAddress(ContractID(key(4)))),
		NewSCValLedgerKeyContractInstance(),
		{Type: SCValTypeLedgerKeyNonce, NonceKey: &SCNonceKey{Nonce: -99}},
		{Type: SCValTypeContractInstance, Instance: &SCContractInstance{
			Executable: ContractExecutable{Type: ContractExecutableTypeWasm, WasmHash: &wasm},
		}},
		{Type: SCValTypeContractInstance, Instance: &SCContractInstance{
			Executable: ContractExecutable{Type: ContractExecutableTypeStellarAsset},
			Storage:    &SCMap{{Key: NewSCValU32(1), Val: NewSCValBool(true)}},
		}},
	}
	for _, v := range vals {
		t.Run(v.Type.String(), func(t *testing.T) {
			out, _ := roundTrip(t, &v)
			assert.Equal(t, v.Type, out.Type)
			assert.LessOrEqual(t, armCount(t, out), 1)
		})
	}
}

func TestSCVal_SymbolTooLong(t *testing.T) {
	_, err := NewSCValSymbol("this_symbol_is_longer_than_32_bytes")
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)

	_, err = NewSCValSymbol("exactly_thirty_two_bytes_long___")
	assert.NoError(t, err)
}

func TestSCVal_UnknownType(t *testing.T) {
	var v SCVal
	require.NoError(t, xdr.Unmarshal([]byte{0, 0, 0, 99}, &v))
	assert.False(t, v.Type.IsKnown())
	assert.Equal(t, 0, armCount(t, &v))
}

func TestSCVal_MissingArm(t *testing.T) {
	v := SCVal{Type: SCValTypeU64}
	_, err := xdr.Marshal(&v)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestSCAddress_Arms(t *testing.T) {
	tests := []struct {
		name string
		in   SCAddress
		size int
	}{
		{"account", NewAccountAddress(account(1)), 40},
		{"contract", NewContractAddress(ContractID(key(2))), 36},
		{"muxed", NewMuxedAddress(1234, key(3)), 44},
		{"claimable balance", NewClaimableBalanceAddress(Hash(key(4))), 40},
		{"liquidity pool", NewLiquidityPoolAddress(PoolID(key(5))), 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, data := roundTrip(t, &tt.in)
			assert.Len(t, data, tt.size)
			assert.Equal(t, 1, armCount(t, out))
		})
	}
}

func TestSCAddress_TruncatedMuxedAccount(t *testing.T) {
	in := NewMuxedAddress(7, key(3))
	data, err := xdr.Marshal(&in)
	require.NoError(t, err)

	var out SCAddress
	err = xdr.Unmarshal(data[:len(data)-4], &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrBounds)
	assert.Contains(t, err.Error(), "decode muxed ed25519 account ed25519")

	err = xdr.Unmarshal(data[:8], &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode muxed ed25519 account id")
}

func TestSCVal_ConstructorsCopyInputs(t *testing.T) {
	raw := []byte{1, 2, 3}
	b := NewSCValBytes(raw)
	raw[0] = 9
	assert.Equal(t, SCBytes{1, 2, 3}, *b.Bytes)

	items := []SCVal{NewSCValU32(1), NewSCValU32(2)}
	vec := NewSCValVec(items...)
	items[0] = NewSCValU32(99)
	assert.Equal(t, uint32(1), uint32(*(*vec.Vec)[0].U32))

	entries := []SCMapEntry{{Key: NewSCValU32(1), Val: NewSCValU32(2)}}
	m := NewSCValMap(entries...)
	entries[0].Val = NewSCValU32(99)
	assert.Equal(t, uint32(2), uint32(*(*m.Map)[0].Val.U32))

	id := account(1)
	addr := NewAccountAddress(id)
	id.Ed25519[0] = 0xFF
	assert.Equal(t, account(1), *addr.AccountID)
	assert.NotSame(t, id.Ed25519, addr.AccountID.Ed25519)
}
