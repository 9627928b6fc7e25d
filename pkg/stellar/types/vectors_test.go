package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// Reference encodings laid out field by field from the Stellar .x
// definitions. Hashes are SHA-256 over the signature payload bytes.
const (
	testnetNetworkID = "cee0302d59844d32bdca915c8203dd44b33fbb7edc19051ea37abedf28ecd472"
	publicNetworkID  = "7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979"

	// {sym "a": u32 1, sym "b": true}
	scMapHex = "0000001100000001000000020000000f00000001610000000000000300000001" +
		"0000000f00000001620000000000000000000001"

	// address credentials (account 0x11.., nonce 42, expiry 1000, void
	// signature) authorizing contract 0x22.. transfer(u32 7)
	authEntryHex = "0000000100000000000000001111111111111111111111111111111111111111" +
		"111111111111111111111111000000000000002a000003e80000000100000000" +
		"0000000122222222222222222222222222222222222222222222222222222222" +
		"22222222000000087472616e7366657200000001000000030000000700000000"

	// v3 with no changes and soroban meta returning true
	metaV3Hex = "0000000300000000000000000000000000000000000000010000000000000000" +
		"000000000000000100000000"

	// v4: one op emitting a contract "transfer" event with data i64 -5,
	// return value u32 9, one after-tx system event
	metaV4Hex = "0000000400000000000000000000000100000000000000000000000100000000" +
		"0000000133333333333333333333333333333333333333333333333333333333" +
		"333333330000000100000000000000010000000f000000087472616e73666572" +
		"00000006fffffffffffffffb0000000000000001000000000000000100000003" +
		"0000000900000001000000010000000000000000000000000000000000000000" +
		"0000000100000000"

	// sampleTransaction with one zero signature hinted 01020304
	envelopeHex = "0000000200000000010101010101010101010101010101010101010101010101" +
		"0101010101010101000000640000000100000001000000010000000000000000" +
		"000000006553f100000000010000000472656e74000000010000000000000001" +
		"0000000022222222222222222222222222222222222222222222222222222222" +
		"22222222000000015553440000000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa000000000ee6b2800000000000000001" +
		"0102030400000040000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000"

	envelopeTestnetHash = "be7d857227cc510c05f56e1c4fb2c8579089000ab561d45fee1182f428cd3f6b"
	envelopePublicHash  = "227a13d5ba13eeab3175b47294f1fed5de7471be81ec919ba40e576ab4fe6a46"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

func TestNetworkID_KnownValues(t *testing.T) {
	assert.Equal(t, testnetNetworkID, NetworkID(TestNetworkPassphrase).String())
	assert.Equal(t, publicNetworkID, NetworkID(PublicNetworkPassphrase).String())
}

func TestSCVal_MapReferenceBytes(t *testing.T) {
	want := fromHex(t, scMapHex)

	a, err := NewSCValSymbol("a")
	require.NoError(t, err)
	b, err := NewSCValSymbol("b")
	require.NoError(t, err)
	in := NewSCValMap(
		SCMapEntry{Key: a, Val: NewSCValU32(1)},
		SCMapEntry{Key: b, Val: NewSCValBool(true)},
	)
	got, err := xdr.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var out SCVal
	require.NoError(t, xdr.Unmarshal(want, &out))
	require.NotNil(t, out.Map)
	require.Len(t, *out.Map, 2)
	assert.Equal(t, SCSymbol("b"), *(*out.Map)[1].Key.Sym)
	assert.True(t, *(*out.Map)[1].Val.B)
}

func TestSorobanAuthorizationEntry_ReferenceBytes(t *testing.T) {
	want := fromHex(t, authEntryHex)

	signer := account(0x11)
	contract := ContractID(key(0x22))
	in := SorobanAuthorizationEntry{
		Credentials: SorobanCredentials{
			Type: SorobanCredentialsTypeAddress,
			Address: &SorobanAddressCredentials{
				Address:                   SCAddress{Type: SCAddressTypeAccount, AccountID: &signer},
				Nonce:                     42,
				SignatureExpirationLedger: 1000,
				Signature:                 NewSCValVoid(),
			},
		},
		RootInvocation: SorobanAuthorizedInvocation{
			Function: SorobanAuthorizedFunction{
				Type: SorobanAuthorizedFunctionTypeContractFn,
				ContractFn: &InvokeContractArgs{
					ContractAddress: SCAddress{Type: SCAddressTypeContract, ContractID: &contract},
					FunctionName:    "transfer",
					Args:            []SCVal{NewSCValU32(7)},
				},
			},
		},
	}
	got, err := xdr.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var out SorobanAuthorizationEntry
	require.NoError(t, xdr.Unmarshal(want, &out))
	require.NotNil(t, out.Credentials.Address)
	assert.Equal(t, int64(42), out.Credentials.Address.Nonce)
	assert.Equal(t, uint32(1000), out.Credentials.Address.SignatureExpirationLedger)
	require.NotNil(t, out.RootInvocation.Function.ContractFn)
	assert.Equal(t, SCSymbol("transfer"), out.RootInvocation.Function.ContractFn.FunctionName)
	assert.Empty(t, out.RootInvocation.SubInvocations)
}

func TestTransactionMeta_V3ReferenceBytes(t *testing.T) {
	want := fromHex(t, metaV3Hex)

	var out TransactionMeta
	require.NoError(t, xdr.Unmarshal(want, &out))
	assert.Equal(t, int32(3), out.V)
	require.NotNil(t, out.V3)
	require.NotNil(t, out.V3.SorobanMeta)
	assert.Equal(t, SCValTypeBool, out.V3.SorobanMeta.ReturnValue.Type)
	assert.True(t, *out.V3.SorobanMeta.ReturnValue.B)

	again, err := xdr.Marshal(&out)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestTransactionMeta_V4ReferenceBytes(t *testing.T) {
	want := fromHex(t, metaV4Hex)

	var out TransactionMeta
	require.NoError(t, xdr.Unmarshal(want, &out))
	require.NotNil(t, out.V4)
	require.Len(t, out.V4.Operations, 1)
	require.Len(t, out.V4.Operations[0].Events, 1)

	ev := out.V4.Operations[0].Events[0]
	assert.Equal(t, ContractEventTypeContract, ev.Type)
	require.NotNil(t, ev.ContractID)
	assert.Equal(t, ContractID(key(0x33)), *ev.ContractID)
	require.NotNil(t, ev.Body.V0)
	assert.Equal(t, SCSymbol("transfer"), *ev.Body.V0.Topics[0].Sym)
	assert.Equal(t, int64(-5), *ev.Body.V0.Data.I64)

	require.NotNil(t, out.V4.SorobanMeta)
	require.NotNil(t, out.V4.SorobanMeta.ReturnValue)
	assert.Equal(t, uint32(9), *out.V4.SorobanMeta.ReturnValue.U32)

	require.Len(t, out.V4.Events, 1)
	assert.Equal(t, TransactionEventStageAfterTx, out.V4.Events[0].Stage)
	assert.Equal(t, ContractEventTypeSystem, out.V4.Events[0].Event.Type)
	assert.Nil(t, out.V4.Events[0].Event.ContractID)
	assert.Empty(t, out.V4.DiagnosticEvents)

	again, err := xdr.Marshal(&out)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestTransactionEnvelope_ReferenceBytesAndHash(t *testing.T) {
	want := fromHex(t, envelopeHex)

	in := TransactionEnvelope{
		Type: EnvelopeTypeTx,
		V1: &TransactionV1Envelope{
			Tx: sampleTransaction(t),
			Signatures: []DecoratedSignature{{
				Hint:      SignatureHint{1, 2, 3, 4},
				Signature: Signature(make([]byte, 64)),
			}},
		},
	}
	got, err := xdr.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var out TransactionEnvelope
	require.NoError(t, xdr.Unmarshal(want, &out))
	require.NotNil(t, out.V1)
	assert.Equal(t, SequenceNumber(4294967297), out.V1.Tx.SeqNum)

	h, err := out.Hash(TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, envelopeTestnetHash, h.String())

	h, err = out.Hash(PublicNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, envelopePublicHash, h.String())
}
