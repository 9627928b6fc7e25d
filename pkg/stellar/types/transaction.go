package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// MemoType enumerates memo type values.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

var memoTypeNames = map[MemoType]string{
	MemoTypeNone:   "MEMO_NONE",
	MemoTypeText:   "MEMO_TEXT",
	MemoTypeID:     "MEMO_ID",
	MemoTypeHash:   "MEMO_HASH",
	MemoTypeReturn: "MEMO_RETURN",
}

func (v MemoType) String() string { return enumString(memoTypeNames, v, "MemoType") }

// MarshalText renders the protocol name of v.
func (v MemoType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v MemoType) IsKnown() bool {
	_, ok := memoTypeNames[v]
	return ok
}

// Memo is optional extra data attached to a transaction.
type Memo struct {
	Type    MemoType
	Text    *string
	ID      *uint64
	Hash    *Hash
	RetHash *Hash
}

// Encode writes a Memo in XDR format.
func (m *Memo) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, m.Type)
	switch m.Type {
	case MemoTypeText:
		return xdr.EncodeArmFunc(buf, m.Text, xdr.WriteString, "Memo", m.Type)
	case MemoTypeID:
		return xdr.EncodeArmFunc(buf, m.ID, xdr.WriteUint64, "Memo", m.Type)
	case MemoTypeHash:
		return xdr.EncodeArm(buf, m.Hash, "Memo", m.Type)
	case MemoTypeReturn:
		return xdr.EncodeArm(buf, m.RetHash, "Memo", m.Type)
	}
	return nil
}

// Decode reads a Memo from XDR format.
func (m *Memo) Decode(c *xdr.Cursor) error {
	*m = Memo{}
	var err error
	if m.Type, err = xdr.DecodeUnionDiscriminant[MemoType](c); err != nil {
		return fmt.Errorf("decode memo type: %w", err)
	}
	switch m.Type {
	case MemoTypeText:
		m.Text, err = xdr.DecodeArmFunc(c, xdr.DecodeString)
	case MemoTypeID:
		m.ID, err = xdr.DecodeArmFunc(c, xdr.DecodeUint64)
	case MemoTypeHash:
		m.Hash, err = xdr.DecodeArm[Hash](c)
	case MemoTypeReturn:
		m.RetHash, err = xdr.DecodeArm[Hash](c)
	}
	if err != nil {
		return fmt.Errorf("decode memo %v: %w", m.Type, err)
	}
	return nil
}

// MaxMemoTextLength is the largest MEMO_TEXT payload in bytes.
const MaxMemoTextLength = 28

// NewMemoText builds a text memo, rejecting text longer than 28 bytes.
func NewMemoText(text string) (Memo, error) {
	if len(text) > MaxMemoTextLength {
		return Memo{}, xdr.NewError(xdr.ErrInvalidValue, "memo text is %d bytes, limit %d", len(text), MaxMemoTextLength)
	}
	return Memo{Type: MemoTypeText, Text: &text}, nil
}

// NewMemoID builds an id memo.
func NewMemoID(id uint64) Memo {
	return Memo{Type: MemoTypeID, ID: &id}
}

// NewMemoHash builds a hash memo.
func NewMemoHash(h Hash) Memo {
	return Memo{Type: MemoTypeHash, Hash: &h}
}

// TimeBounds limits a transaction to a window of Unix times. A zero
// MaxTime means no upper bound.
type TimeBounds struct {
	MinTime TimePoint
	MaxTime TimePoint // 0 means no upper bound
}

// Encode writes a TimeBounds in XDR format.
func (tb *TimeBounds) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint64(buf, tb.MinTime)
	xdr.WriteUint64(buf, tb.MaxTime)
	return nil
}

// Decode reads a TimeBounds from XDR format.
func (tb *TimeBounds) Decode(c *xdr.Cursor) error {
	var err error
	if tb.MinTime, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode time bounds min time: %w", err)
	}
	if tb.MaxTime, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode time bounds max time: %w", err)
	}
	return nil
}

// LedgerBounds limits a transaction to a range of ledger sequences. A zero
// MaxLedger means no upper bound.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32 // 0 means no upper bound
}

// Encode writes a LedgerBounds in XDR format.
func (lb *LedgerBounds) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, lb.MinLedger)
	xdr.WriteUint32(buf, lb.MaxLedger)
	return nil
}

// Decode reads a LedgerBounds from XDR format.
func (lb *LedgerBounds) Decode(c *xdr.Cursor) error {
	var err error
	if lb.MinLedger, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode ledger bounds min ledger: %w", err)
	}
	if lb.MaxLedger, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode ledger bounds max ledger: %w", err)
	}
	return nil
}

// PreconditionsV2 are the extended validity conditions of a transaction.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *SequenceNumber
	MinSeqAge       Duration
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

// Encode writes a PreconditionsV2 in XDR format.
func (pv *PreconditionsV2) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeOptional(buf, pv.TimeBounds); err != nil {
		return fmt.Errorf("encode preconditions v2 time bounds: %w", err)
	}
	if err := xdr.EncodeOptional(buf, pv.LedgerBounds); err != nil {
		return fmt.Errorf("encode preconditions v2 ledger bounds: %w", err)
	}
	xdr.EncodeOptionalFunc(buf, pv.MinSeqNum, xdr.WriteInt64)
	xdr.WriteUint64(buf, pv.MinSeqAge)
	xdr.WriteUint32(buf, pv.MinSeqLedgerGap)
	if err := xdr.EncodeArray(buf, pv.ExtraSigners); err != nil {
		return fmt.Errorf("encode preconditions v2 extra signers: %w", err)
	}
	return nil
}

// Decode reads a PreconditionsV2 from XDR format.
func (pv *PreconditionsV2) Decode(c *xdr.Cursor) error {
	var err error
	if pv.TimeBounds, err = xdr.DecodeOptional[TimeBounds](c); err != nil {
		return fmt.Errorf("decode preconditions v2 time bounds: %w", err)
	}
	if pv.LedgerBounds, err = xdr.DecodeOptional[LedgerBounds](c); err != nil {
		return fmt.Errorf("decode preconditions v2 ledger bounds: %w", err)
	}
	if pv.MinSeqNum, err = xdr.DecodeOptionalFunc(c, xdr.DecodeInt64); err != nil {
		return fmt.Errorf("decode preconditions v2 min seq num: %w", err)
	}
	if pv.MinSeqAge, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode preconditions v2 min seq age: %w", err)
	}
	if pv.MinSeqLedgerGap, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode preconditions v2 min seq ledger gap: %w", err)
	}
	if pv.ExtraSigners, err = xdr.DecodeArray[SignerKey](c); err != nil {
		return fmt.Errorf("decode preconditions v2 extra signers: %w", err)
	}
	return nil
}

// PreconditionType enumerates precondition type values.
type PreconditionType int32

const (
	PreconditionTypeNone PreconditionType = 0
	PreconditionTypeTime PreconditionType = 1
	PreconditionTypeV2   PreconditionType = 2
)

var preconditionTypeNames = map[PreconditionType]string{
	PreconditionTypeNone: "PRECOND_NONE",
	PreconditionTypeTime: "PRECOND_TIME",
	PreconditionTypeV2:   "PRECOND_V2",
}

func (v PreconditionType) String() string { return enumString(preconditionTypeNames, v, "PreconditionType") }

// MarshalText renders the protocol name of v.
func (v PreconditionType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v PreconditionType) IsKnown() bool {
	_, ok := preconditionTypeNames[v]
	return ok
}

// Preconditions is none, time bounds only, or the full V2 set.
//
//	union Preconditions switch (PreconditionType type) {
//	case PRECOND_NONE:
//	    void;
//	case PRECOND_TIME:
//	    TimeBounds timeBounds;
//	case PRECOND_V2:
//	    PreconditionsV2 v2;
//	};
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

// Encode writes a Preconditions in XDR format.
func (p *Preconditions) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, p.Type)
	switch p.Type {
	case PreconditionTypeTime:
		return xdr.EncodeArm(buf, p.TimeBounds, "Preconditions", p.Type)
	case PreconditionTypeV2:
		return xdr.EncodeArm(buf, p.V2, "Preconditions", p.Type)
	}
	return nil
}

// Decode reads a Preconditions from XDR format.
func (p *Preconditions) Decode(c *xdr.Cursor) error {
	*p = Preconditions{}
	var err error
	if p.Type, err = xdr.DecodeUnionDiscriminant[PreconditionType](c); err != nil {
		return fmt.Errorf("decode preconditions type: %w", err)
	}
	switch p.Type {
	case PreconditionTypeTime:
		p.TimeBounds, err = xdr.DecodeArm[TimeBounds](c)
	case PreconditionTypeV2:
		p.V2, err = xdr.DecodeArm[PreconditionsV2](c)
	}
	if err != nil {
		return fmt.Errorf("decode preconditions %v: %w", p.Type, err)
	}
	return nil
}

// TransactionExt is the versioned extension of Transaction.
type TransactionExt struct {
	V           int32
	SorobanData *SorobanTransactionData
}

// Encode writes a TransactionExt in XDR format.
func (te *TransactionExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, te.V)
	switch te.V {
	case 1:
		return xdr.EncodeArm(buf, te.SorobanData, "TransactionExt", te.V)
	}
	return nil
}

// Decode reads a TransactionExt from XDR format.
func (te *TransactionExt) Decode(c *xdr.Cursor) error {
	*te = TransactionExt{}
	var err error
	if te.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode transaction ext v: %w", err)
	}
	switch te.V {
	case 1:
		te.SorobanData, err = xdr.DecodeArm[SorobanTransactionData](c)
	}
	if err != nil {
		return fmt.Errorf("decode transaction ext %v: %w", te.V, err)
	}
	return nil
}

// Transaction is a signed-for list of operations with its validity conditions.
//
//	struct Transaction {
//	    MuxedAccount sourceAccount;
//	    uint32 fee;
//	    SequenceNumber seqNum;
//	    Preconditions cond;
//	    Memo memo;
//	    Operation operations<MAX_OPS_PER_TX>;
//	    union switch (int v) {
//	    case 0:
//	        void;
//	    case 1:
//	        SorobanTransactionData sorobanData;
//	    } ext;
//	};
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        SequenceNumber
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

// Encode writes a Transaction in XDR format.
func (t *Transaction) Encode(buf *bytes.Buffer) error {
	if err := t.SourceAccount.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction source account: %w", err)
	}
	xdr.WriteUint32(buf, t.Fee)
	xdr.WriteInt64(buf, t.SeqNum)
	if err := t.Cond.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction cond: %w", err)
	}
	if err := t.Memo.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction memo: %w", err)
	}
	if err := xdr.EncodeArray(buf, t.Operations); err != nil {
		return fmt.Errorf("encode transaction operations: %w", err)
	}
	if err := t.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction ext: %w", err)
	}
	return nil
}

// Decode reads a Transaction from XDR format.
func (t *Transaction) Decode(c *xdr.Cursor) error {
	var err error
	if err = t.SourceAccount.Decode(c); err != nil {
		return fmt.Errorf("decode transaction source account: %w", err)
	}
	if t.Fee, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode transaction fee: %w", err)
	}
	if t.SeqNum, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode transaction seq num: %w", err)
	}
	if err = t.Cond.Decode(c); err != nil {
		return fmt.Errorf("decode transaction cond: %w", err)
	}
	if err = t.Memo.Decode(c); err != nil {
		return fmt.Errorf("decode transaction memo: %w", err)
	}
	if t.Operations, err = xdr.DecodeArray[Operation](c); err != nil {
		return fmt.Errorf("decode transaction operations: %w", err)
	}
	if err = t.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction ext: %w", err)
	}
	return nil
}

// TransactionV1Envelope is a transaction with its signatures.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

// Encode writes a TransactionV1Envelope in XDR format.
func (tve *TransactionV1Envelope) Encode(buf *bytes.Buffer) error {
	if err := tve.Tx.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction v1 envelope tx: %w", err)
	}
	if err := xdr.EncodeArray(buf, tve.Signatures); err != nil {
		return fmt.Errorf("encode transaction v1 envelope signatures: %w", err)
	}
	return nil
}

// Decode reads a TransactionV1Envelope from XDR format.
func (tve *TransactionV1Envelope) Decode(c *xdr.Cursor) error {
	var err error
	if err = tve.Tx.Decode(c); err != nil {
		return fmt.Errorf("decode transaction v1 envelope tx: %w", err)
	}
	if tve.Signatures, err = xdr.DecodeArray[DecoratedSignature](c); err != nil {
		return fmt.Errorf("decode transaction v1 envelope signatures: %w", err)
	}
	return nil
}

// TransactionV0 is the pre-protocol-13 transaction layout.
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  uint32
	SeqNum               SequenceNumber
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  ExtensionPoint
}

// Encode writes a TransactionV0 in XDR format.
func (tv *TransactionV0) Encode(buf *bytes.Buffer) error {
	if err := tv.SourceAccountEd25519.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction v0 source account ed25519: %w", err)
	}
	xdr.WriteUint32(buf, tv.Fee)
	xdr.WriteInt64(buf, tv.SeqNum)
	if err := xdr.EncodeOptional(buf, tv.TimeBounds); err != nil {
		return fmt.Errorf("encode transaction v0 time bounds: %w", err)
	}
	if err := tv.Memo.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction v0 memo: %w", err)
	}
	if err := xdr.EncodeArray(buf, tv.Operations); err != nil {
		return fmt.Errorf("encode transaction v0 operations: %w", err)
	}
	if err := tv.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction v0 ext: %w", err)
	}
	return nil
}

// Decode reads a TransactionV0 from XDR format.
func (tv *TransactionV0) Decode(c *xdr.Cursor) error {
	var err error
	if err = tv.SourceAccountEd25519.Decode(c); err != nil {
		return fmt.Errorf("decode transaction v0 source account ed25519: %w", err)
	}
	if tv.Fee, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode transaction v0 fee: %w", err)
	}
	if tv.SeqNum, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode transaction v0 seq num: %w", err)
	}
	if tv.TimeBounds, err = xdr.DecodeOptional[TimeBounds](c); err != nil {
		return fmt.Errorf("decode transaction v0 time bounds: %w", err)
	}
	if err = tv.Memo.Decode(c); err != nil {
		return fmt.Errorf("decode transaction v0 memo: %w", err)
	}
	if tv.Operations, err = xdr.DecodeArray[Operation](c); err != nil {
		return fmt.Errorf("decode transaction v0 operations: %w", err)
	}
	if err = tv.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction v0 ext: %w", err)
	}
	return nil
}

// TransactionV0Envelope is a legacy transaction with its signatures.
type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

// Encode writes a TransactionV0Envelope in XDR format.
func (tve *TransactionV0Envelope) Encode(buf *bytes.Buffer) error {
	if err := tve.Tx.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction v0 envelope tx: %w", err)
	}
	if err := xdr.EncodeArray(buf, tve.Signatures); err != nil {
		return fmt.Errorf("encode transaction v0 envelope signatures: %w", err)
	}
	return nil
}

// Decode reads a TransactionV0Envelope from XDR format.
func (tve *TransactionV0Envelope) Decode(c *xdr.Cursor) error {
	var err error
	if err = tve.Tx.Decode(c); err != nil {
		return fmt.Errorf("decode transaction v0 envelope tx: %w", err)
	}
	if tve.Signatures, err = xdr.DecodeArray[DecoratedSignature](c); err != nil {
		return fmt.Errorf("decode transaction v0 envelope signatures: %w", err)
	}
	return nil
}

// FeeBumpTransactionInnerTx is the wrapped transaction; only v1 envelopes
// can be fee bumped.
type FeeBumpTransactionInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

// Encode writes a FeeBumpTransactionInnerTx in XDR format.
func (fbt *FeeBumpTransactionInnerTx) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, fbt.Type)
	switch fbt.Type {
	case EnvelopeTypeTx:
		return xdr.EncodeArm(buf, fbt.V1, "FeeBumpTransactionInnerTx", fbt.Type)
	}
	return nil
}

// Decode reads a FeeBumpTransactionInnerTx from XDR format.
func (fbt *FeeBumpTransactionInnerTx) Decode(c *xdr.Cursor) error {
	*fbt = FeeBumpTransactionInnerTx{}
	var err error
	if fbt.Type, err = xdr.DecodeUnionDiscriminant[EnvelopeType](c); err != nil {
		return fmt.Errorf("decode fee bump transaction inner tx type: %w", err)
	}
	switch fbt.Type {
	case EnvelopeTypeTx:
		fbt.V1, err = xdr.DecodeArm[TransactionV1Envelope](c)
	}
	if err != nil {
		return fmt.Errorf("decode fee bump transaction inner tx %v: %w", fbt.Type, err)
	}
	return nil
}

// FeeBumpTransaction pays a new fee for an already signed inner transaction.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   FeeBumpTransactionInnerTx
	Ext       ExtensionPoint
}

// Encode writes a FeeBumpTransaction in XDR format.
func (fbt *FeeBumpTransaction) Encode(buf *bytes.Buffer) error {
	if err := fbt.FeeSource.Encode(buf); err != nil {
		return fmt.Errorf("encode fee bump transaction fee source: %w", err)
	}
	xdr.WriteInt64(buf, fbt.Fee)
	if err := fbt.InnerTx.Encode(buf); err != nil {
		return fmt.Errorf("encode fee bump transaction inner tx: %w", err)
	}
	if err := fbt.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode fee bump transaction ext: %w", err)
	}
	return nil
}

// Decode reads a FeeBumpTransaction from XDR format.
func (fbt *FeeBumpTransaction) Decode(c *xdr.Cursor) error {
	var err error
	if err = fbt.FeeSource.Decode(c); err != nil {
		return fmt.Errorf("decode fee bump transaction fee source: %w", err)
	}
	if fbt.Fee, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode fee bump transaction fee: %w", err)
	}
	if err = fbt.InnerTx.Decode(c); err != nil {
		return fmt.Errorf("decode fee bump transaction inner tx: %w", err)
	}
	if err = fbt.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode fee bump transaction ext: %w", err)
	}
	return nil
}

// FeeBumpTransactionEnvelope is a fee bump transaction with its signatures.
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

// Encode writes a FeeBumpTransactionEnvelope in XDR format.
func (fbt *FeeBumpTransactionEnvelope) Encode(buf *bytes.Buffer) error {
	if err := fbt.Tx.Encode(buf); err != nil {
		return fmt.Errorf("encode fee bump transaction envelope tx: %w", err)
	}
	if err := xdr.EncodeArray(buf, fbt.Signatures); err != nil {
		return fmt.Errorf("encode fee bump transaction envelope signatures: %w", err)
	}
	return nil
}

// Decode reads a FeeBumpTransactionEnvelope from XDR format.
func (fbt *FeeBumpTransactionEnvelope) Decode(c *xdr.Cursor) error {
	var err error
	if err = fbt.Tx.Decode(c); err != nil {
		return fmt.Errorf("decode fee bump transaction envelope tx: %w", err)
	}
	if fbt.Signatures, err = xdr.DecodeArray[DecoratedSignature](c); err != nil {
		return fmt.Errorf("decode fee bump transaction envelope signatures: %w", err)
	}
	return nil
}

// TransactionEnvelope is a transaction of any version with its signatures.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

// Encode writes a TransactionEnvelope in XDR format.
func (te *TransactionEnvelope) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, te.Type)
	switch te.Type {
	case EnvelopeTypeTxV0:
		return xdr.EncodeArm(buf, te.V0, "TransactionEnvelope", te.Type)
	case EnvelopeTypeTx:
		return xdr.EncodeArm(buf, te.V1, "TransactionEnvelope", te.Type)
	case EnvelopeTypeTxFeeBump:
		return xdr.EncodeArm(buf, te.FeeBump, "TransactionEnvelope", te.Type)
	}
	return nil
}

// Decode reads a TransactionEnvelope from XDR format.
func (te *TransactionEnvelope) Decode(c *xdr.Cursor) error {
	*te = TransactionEnvelope{}
	var err error
	if te.Type, err = xdr.DecodeUnionDiscriminant[EnvelopeType](c); err != nil {
		return fmt.Errorf("decode transaction envelope type: %w", err)
	}
	switch te.Type {
	case EnvelopeTypeTxV0:
		te.V0, err = xdr.DecodeArm[TransactionV0Envelope](c)
	case EnvelopeTypeTx:
		te.V1, err = xdr.DecodeArm[TransactionV1Envelope](c)
	case EnvelopeTypeTxFeeBump:
		te.FeeBump, err = xdr.DecodeArm[FeeBumpTransactionEnvelope](c)
	}
	if err != nil {
		return fmt.Errorf("decode transaction envelope %v: %w", te.Type, err)
	}
	return nil
}

// TransactionSignaturePayloadTaggedTransaction tags the signed
// transaction with its envelope type.
type TransactionSignaturePayloadTaggedTransaction struct {
	Type    EnvelopeType
	Tx      *Transaction
	FeeBump *FeeBumpTransaction
}

// Encode writes a TransactionSignaturePayloadTaggedTransaction in XDR format.
func (tsp *TransactionSignaturePayloadTaggedTransaction) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, tsp.Type)
	switch tsp.Type {
	case EnvelopeTypeTx:
		return xdr.EncodeArm(buf, tsp.Tx, "TransactionSignaturePayloadTaggedTransaction", tsp.Type)
	case EnvelopeTypeTxFeeBump:
		return xdr.EncodeArm(buf, tsp.FeeBump, "TransactionSignaturePayloadTaggedTransaction", tsp.Type)
	}
	return nil
}

// Decode reads a TransactionSignaturePayloadTaggedTransaction from XDR format.
func (tsp *TransactionSignaturePayloadTaggedTransaction) Decode(c *xdr.Cursor) error {
	*tsp = TransactionSignaturePayloadTaggedTransaction{}
	var err error
	if tsp.Type, err = xdr.DecodeUnionDiscriminant[EnvelopeType](c); err != nil {
		return fmt.Errorf("decode transaction signature payload tagged transaction type: %w", err)
	}
	switch tsp.Type {
	case EnvelopeTypeTx:
		tsp.Tx, err = xdr.DecodeArm[Transaction](c)
	case EnvelopeTypeTxFeeBump:
		tsp.FeeBump, err = xdr.DecodeArm[FeeBumpTransaction](c)
	}
	if err != nil {
		return fmt.Errorf("decode transaction signature payload tagged transaction %v: %w", tsp.Type, err)
	}
	return nil
}

// TransactionSignaturePayload is what signers sign. Its SHA-256 is the transaction hash.
type TransactionSignaturePayload struct {
	NetworkID         Hash
	TaggedTransaction TransactionSignaturePayloadTaggedTransaction
}

// Encode writes a TransactionSignaturePayload in XDR format.
func (tsp *TransactionSignaturePayload) Encode(buf *bytes.Buffer) error {
	if err := tsp.NetworkID.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction signature payload network id: %w", err)
	}
	if err := tsp.TaggedTransaction.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction signature payload tagged transaction: %w", err)
	}
	return nil
}

// Decode reads a TransactionSignaturePayload from XDR format.
func (tsp *TransactionSignaturePayload) Decode(c *xdr.Cursor) error {
	var err error
	if err = tsp.NetworkID.Decode(c); err != nil {
		return fmt.Errorf("decode transaction signature payload network id: %w", err)
	}
	if err = tsp.TaggedTransaction.Decode(c); err != nil {
		return fmt.Errorf("decode transaction signature payload tagged transaction: %w", err)
	}
	return nil
}
