package types

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func paymentOp(t *testing.T) Operation {
	t.Helper()
	return Operation{Body: OperationBody{
		Type: OperationTypePayment,
		PaymentOp: &PaymentOp{
			Destination: NewMuxedAccount(key(0x22)),
			Asset:       usd(t),
			Amount:      25_0000000,
		},
	}}
}

func sampleTransaction(t *testing.T) Transaction {
	t.Helper()
	memo, err := NewMemoText("rent")
	require.NoError(t, err)
	return Transaction{
		SourceAccount: NewMuxedAccount(key(0x01)),
		Fee:           100,
		SeqNum:        4294967297,
		Cond: Preconditions{
			Type:       PreconditionTypeTime,
			TimeBounds: &TimeBounds{MinTime: 0, MaxTime: 1700000000},
		},
		Memo:       memo,
		Operations: []Operation{paymentOp(t)},
	}
}

func TestTransactionEnvelope_V1RoundTrip(t *testing.T) {
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
	out, data := roundTrip(t, &in)
	assert.Equal(t, []byte{0, 0, 0, 2}, data[:4])
	assert.Equal(t, 1, armCount(t, out))
	assert.Equal(t, "rent", *out.V1.Tx.Memo.Text)
}

func TestTransactionEnvelope_Hash(t *testing.T) {
	tx := sampleTransaction(t)
	env := TransactionEnvelope{Type: EnvelopeTypeTx, V1: &TransactionV1Envelope{Tx: tx}}

	got, err := env.Hash(TestNetworkPassphrase)
	require.NoError(t, err)

	txBytes, err := xdr.Marshal(&tx)
	require.NoError(t, err)
	netID := sha256.Sum256([]byte(TestNetworkPassphrase))
	payload := append(append(netID[:], 0, 0, 0, 2), txBytes...)
	assert.Equal(t, Hash(sha256.Sum256(payload)), got)

	other, err := env.Hash(PublicNetworkPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}

func TestTransactionEnvelope_V0HashMatchesV1(t *testing.T) {
	v1 := sampleTransaction(t)
	v0 := TransactionV0{
		SourceAccountEd25519: Uint256(key(0x01)),
		Fee:                  v1.Fee,
		SeqNum:               v1.SeqNum,
		TimeBounds:           v1.Cond.TimeBounds,
		Memo:                 v1.Memo,
		Operations:           v1.Operations,
	}
	legacy := TransactionEnvelope{Type: EnvelopeTypeTxV0, V0: &TransactionV0Envelope{Tx: v0}}
	roundTrip(t, &legacy)

	current := TransactionEnvelope{Type: EnvelopeTypeTx, V1: &TransactionV1Envelope{Tx: v1}}

	h0, err := legacy.Hash(TestNetworkPassphrase)
	require.NoError(t, err)
	h1, err := current.Hash(TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, h1, h0)

	v0.TimeBounds = nil
	converted, err := v0.ToTransaction()
	require.NoError(t, err)
	assert.Equal(t, PreconditionTypeNone, converted.Cond.Type)
}

func TestTransactionV0_ToTransactionOwnsChildren(t *testing.T) {
	v1 := sampleTransaction(t)
	v0 := TransactionV0{
		SourceAccountEd25519: Uint256(key(0x01)),
		Fee:                  v1.Fee,
		SeqNum:               v1.SeqNum,
		TimeBounds:           &TimeBounds{MinTime: 1, MaxTime: 2},
		Memo:                 v1.Memo,
		Operations:           v1.Operations,
	}
	before, err := xdr.Marshal(&v0)
	require.NoError(t, err)

	tx, err := v0.ToTransaction()
	require.NoError(t, err)
	*tx.Memo.Text = "changed"
	tx.Operations[0].Body.PaymentOp.Amount = 1
	tx.Operations[0].Body.PaymentOp.Asset.AlphaNum4.AssetCode[0] = 'E'
	tx.Cond.TimeBounds.MaxTime = 99
	tx.SourceAccount.Ed25519[0] = 0xFF

	after, err := xdr.Marshal(&v0)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "rent", *v0.Memo.Text)

	_, err = TransactionV0{Memo: Memo{Type: MemoTypeText}}.ToTransaction()
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestTransactionEnvelope_FeeBump(t *testing.T) {
	inner := TransactionV1Envelope{Tx: sampleTransaction(t)}
	in := TransactionEnvelope{
		Type: EnvelopeTypeTxFeeBump,
		FeeBump: &FeeBumpTransactionEnvelope{Tx: FeeBumpTransaction{
			FeeSource: NewMuxedAccountWithID(key(0x09), 42),
			Fee:       400,
			InnerTx:   FeeBumpTransactionInnerTx{Type: EnvelopeTypeTx, V1: &inner},
		}},
	}
	out, data := roundTrip(t, &in)
	assert.Equal(t, []byte{0, 0, 0, 5}, data[:4])
	assert.Equal(t, uint64(42), out.FeeBump.Tx.FeeSource.Med25519.ID)

	p, err := in.SignaturePayload(TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, EnvelopeTypeTxFeeBump, p.TaggedTransaction.Type)

	h, err := in.Hash(TestNetworkPassphrase)
	require.NoError(t, err)
	innerHash, err := (&TransactionEnvelope{Type: EnvelopeTypeTx, V1: &inner}).Hash(TestNetworkPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, innerHash, h)
}

func TestTransactionEnvelope_HashMissingArm(t *testing.T) {
	env := TransactionEnvelope{Type: EnvelopeTypeTx}
	_, err := env.Hash(TestNetworkPassphrase)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestTransaction_SorobanExt(t *testing.T) {
	tx := sampleTransaction(t)
	tx.Ext = TransactionExt{
		V: 1,
		SorobanData: &SorobanTransactionData{
			Ext: SorobanTransactionDataExt{V: 1, ResourceExt: &SorobanResourcesExtV0{ArchivedSorobanEntries: []uint32{0, 3}}},
			Resources: SorobanResources{
				Footprint: LedgerFootprint{
					ReadOnly:  []LedgerKey{{Type: LedgerEntryTypeContractCode, ContractCode: &LedgerKeyContractCode{Hash: Hash(key(8))}}},
					ReadWrite: []LedgerKey{{Type: LedgerEntryTypeAccount, Account: &LedgerKeyAccount{AccountID: account(1)}}},
				},
				Instructions:  1_000_000,
				DiskReadBytes: 4096,
				WriteBytes:    1024,
			},
			ResourceFee: 50000,
		},
	}
	out, _ := roundTrip(t, &tx)
	assert.Equal(t, []uint32{0, 3}, out.Ext.SorobanData.Ext.ResourceExt.ArchivedSorobanEntries)
}

func TestPreconditionsV2_RoundTrip(t *testing.T) {
	minSeq := SequenceNumber(10)
	in := Preconditions{
		Type: PreconditionTypeV2,
		V2: &PreconditionsV2{
			LedgerBounds:    &LedgerBounds{MinLedger: 1, MaxLedger: 0},
			MinSeqNum:       &minSeq,
			MinSeqAge:       60,
			MinSeqLedgerGap: 2,
			ExtraSigners: []SignerKey{{
				Type: SignerKeyTypeEd25519SignedPayload,
				Ed25519SignedPayload: &SignerKeyEd25519SignedPayload{
					Ed25519: Uint256(key(5)),
					Payload: []byte{1, 2, 3, 4, 5},
				},
			}},
		},
	}
	out, _ := roundTrip(t, &in)
	assert.Nil(t, out.V2.TimeBounds)
	assert.Equal(t, SequenceNumber(10), *out.V2.MinSeqNum)
}

func TestMemo(t *testing.T) {
	_, err := NewMemoText("this memo text is longer than 28 bytes")
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)

	m := NewMemoID(7)
	out, data := roundTrip(t, &m)
	assert.Equal(t, []byte{0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 7}, data)
	assert.Equal(t, uint64(7), *out.ID)

	h := NewMemoHash(Hash(key(1)))
	_, data = roundTrip(t, &h)
	assert.Len(t, data, 36)

	none := Memo{Type: MemoTypeNone}
	_, data = roundTrip(t, &none)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
}

func TestNetworkID(t *testing.T) {
	id := NetworkID(PublicNetworkPassphrase)
	assert.Equal(t, "7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979", id.String())
}

func TestContractIDFromPreimage(t *testing.T) {
	pre := ContractIDPreimage{
		Type: ContractIDPreimageTypeFromAddress,
		FromAddress: &ContractIDPreimageFromAddress{
			Address: NewAccountAddress(account(1)),
			Salt:    Uint256(key(2)),
		},
	}
	a, err := ContractIDFromPreimage(TestNetworkPassphrase, pre)
	require.NoError(t, err)
	b, err := ContractIDFromPreimage(TestNetworkPassphrase, pre)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	native := NewNativeAsset()
	c, err := ContractIDFromPreimage(TestNetworkPassphrase, ContractIDPreimage{Type: ContractIDPreimageTypeFromAsset, FromAsset: &native})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
