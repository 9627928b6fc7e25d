package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// LedgerEntryChangeType enumerates ledger entry change type values.
type LedgerEntryChangeType int32

const (
	LedgerEntryChangeTypeCreated  LedgerEntryChangeType = 0
	LedgerEntryChangeTypeUpdated  LedgerEntryChangeType = 1
	LedgerEntryChangeTypeRemoved  LedgerEntryChangeType = 2
	LedgerEntryChangeTypeState    LedgerEntryChangeType = 3
	LedgerEntryChangeTypeRestored LedgerEntryChangeType = 4
)

var ledgerEntryChangeTypeNames = map[LedgerEntryChangeType]string{
	LedgerEntryChangeTypeCreated:  "LEDGER_ENTRY_CREATED",
	LedgerEntryChangeTypeUpdated:  "LEDGER_ENTRY_UPDATED",
	LedgerEntryChangeTypeRemoved:  "LEDGER_ENTRY_REMOVED",
	LedgerEntryChangeTypeState:    "LEDGER_ENTRY_STATE",
	LedgerEntryChangeTypeRestored: "LEDGER_ENTRY_RESTORED",
}

func (v LedgerEntryChangeType) String() string { return enumString(ledgerEntryChangeTypeNames, v, "LedgerEntryChangeType") }

// MarshalText renders the protocol name of v.
func (v LedgerEntryChangeType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v LedgerEntryChangeType) IsKnown() bool {
	_, ok := ledgerEntryChangeTypeNames[v]
	return ok
}

// LedgerEntryChange is one ledger state transition.
type LedgerEntryChange struct {
	Type     LedgerEntryChangeType
	Created  *LedgerEntry
	Updated  *LedgerEntry
	Removed  *LedgerKey
	State    *LedgerEntry
	Restored *LedgerEntry
}

// Encode writes a LedgerEntryChange in XDR format.
func (lec *LedgerEntryChange) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lec.Type)
	switch lec.Type {
	case LedgerEntryChangeTypeCreated:
		return xdr.EncodeArm(buf, lec.Created, "LedgerEntryChange", lec.Type)
	case LedgerEntryChangeTypeUpdated:
		return xdr.EncodeArm(buf, lec.Updated, "LedgerEntryChange", lec.Type)
	case LedgerEntryChangeTypeRemoved:
		return xdr.EncodeArm(buf, lec.Removed, "LedgerEntryChange", lec.Type)
	case LedgerEntryChangeTypeState:
		return xdr.EncodeArm(buf, lec.State, "LedgerEntryChange", lec.Type)
	case LedgerEntryChangeTypeRestored:
		return xdr.EncodeArm(buf, lec.Restored, "LedgerEntryChange", lec.Type)
	}
	return nil
}

// Decode reads a LedgerEntryChange from XDR format.
func (lec *LedgerEntryChange) Decode(c *xdr.Cursor) error {
	*lec = LedgerEntryChange{}
	var err error
	if lec.Type, err = xdr.DecodeUnionDiscriminant[LedgerEntryChangeType](c); err != nil {
		return fmt.Errorf("decode ledger entry change type: %w", err)
	}
	switch lec.Type {
	case LedgerEntryChangeTypeCreated:
		lec.Created, err = xdr.DecodeArm[LedgerEntry](c)
	case LedgerEntryChangeTypeUpdated:
		lec.Updated, err = xdr.DecodeArm[LedgerEntry](c)
	case LedgerEntryChangeTypeRemoved:
		lec.Removed, err = xdr.DecodeArm[LedgerKey](c)
	case LedgerEntryChangeTypeState:
		lec.State, err = xdr.DecodeArm[LedgerEntry](c)
	case LedgerEntryChangeTypeRestored:
		lec.Restored, err = xdr.DecodeArm[LedgerEntry](c)
	}
	if err != nil {
		return fmt.Errorf("decode ledger entry change %v: %w", lec.Type, err)
	}
	return nil
}

// LedgerEntryChanges is a variable-length list of LedgerEntryChange.
type LedgerEntryChanges []LedgerEntryChange

// Encode writes a LedgerEntryChanges in XDR format.
func (lec *LedgerEntryChanges) Encode(buf *bytes.Buffer) error {
	return xdr.EncodeArray(buf, []LedgerEntryChange(*lec))
}

// Decode reads a LedgerEntryChanges from XDR format.
func (lec *LedgerEntryChanges) Decode(c *xdr.Cursor) error {
	items, err := xdr.DecodeArray[LedgerEntryChange](c)
	if err != nil {
		return fmt.Errorf("decode ledger entry changes: %w", err)
	}
	*lec = items
	return nil
}

// OperationMeta lists the ledger changes made by one operation.
type OperationMeta struct {
	Changes LedgerEntryChanges
}

// Encode writes an OperationMeta in XDR format.
func (om *OperationMeta) Encode(buf *bytes.Buffer) error {
	if err := om.Changes.Encode(buf); err != nil {
		return fmt.Errorf("encode operation meta changes: %w", err)
	}
	return nil
}

// Decode reads an OperationMeta from XDR format.
func (om *OperationMeta) Decode(c *xdr.Cursor) error {
	var err error
	if err = om.Changes.Decode(c); err != nil {
		return fmt.Errorf("decode operation meta changes: %w", err)
	}
	return nil
}

// OperationMetaV2 is OperationMeta with the contract events the operation
// emitted.
type OperationMetaV2 struct {
	Ext     ExtensionPoint
	Changes LedgerEntryChanges
	Events  []ContractEvent
}

// Encode writes an OperationMetaV2 in XDR format.
func (omv *OperationMetaV2) Encode(buf *bytes.Buffer) error {
	if err := omv.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode operation meta v2 ext: %w", err)
	}
	if err := omv.Changes.Encode(buf); err != nil {
		return fmt.Errorf("encode operation meta v2 changes: %w", err)
	}
	if err := xdr.EncodeArray(buf, omv.Events); err != nil {
		return fmt.Errorf("encode operation meta v2 events: %w", err)
	}
	return nil
}

// Decode reads an OperationMetaV2 from XDR format.
func (omv *OperationMetaV2) Decode(c *xdr.Cursor) error {
	var err error
	if err = omv.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode operation meta v2 ext: %w", err)
	}
	if err = omv.Changes.Decode(c); err != nil {
		return fmt.Errorf("decode operation meta v2 changes: %w", err)
	}
	if omv.Events, err = xdr.DecodeArray[ContractEvent](c); err != nil {
		return fmt.Errorf("decode operation meta v2 events: %w", err)
	}
	return nil
}

// TransactionMetaV1 adds transaction-level changes before operations.
type TransactionMetaV1 struct {
	TxChanges  LedgerEntryChanges
	Operations []OperationMeta
}

// Encode writes a TransactionMetaV1 in XDR format.
func (tmv *TransactionMetaV1) Encode(buf *bytes.Buffer) error {
	if err := tmv.TxChanges.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v1 tx changes: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.Operations); err != nil {
		return fmt.Errorf("encode transaction meta v1 operations: %w", err)
	}
	return nil
}

// Decode reads a TransactionMetaV1 from XDR format.
func (tmv *TransactionMetaV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = tmv.TxChanges.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v1 tx changes: %w", err)
	}
	if tmv.Operations, err = xdr.DecodeArray[OperationMeta](c); err != nil {
		return fmt.Errorf("decode transaction meta v1 operations: %w", err)
	}
	return nil
}

// TransactionMetaV2 adds transaction-level changes after operations.
type TransactionMetaV2 struct {
	TxChangesBefore LedgerEntryChanges
	Operations      []OperationMeta
	TxChangesAfter  LedgerEntryChanges
}

// Encode writes a TransactionMetaV2 in XDR format.
func (tmv *TransactionMetaV2) Encode(buf *bytes.Buffer) error {
	if err := tmv.TxChangesBefore.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v2 tx changes before: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.Operations); err != nil {
		return fmt.Errorf("encode transaction meta v2 operations: %w", err)
	}
	if err := tmv.TxChangesAfter.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v2 tx changes after: %w", err)
	}
	return nil
}

// Decode reads a TransactionMetaV2 from XDR format.
func (tmv *TransactionMetaV2) Decode(c *xdr.Cursor) error {
	var err error
	if err = tmv.TxChangesBefore.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v2 tx changes before: %w", err)
	}
	if tmv.Operations, err = xdr.DecodeArray[OperationMeta](c); err != nil {
		return fmt.Errorf("decode transaction meta v2 operations: %w", err)
	}
	if err = tmv.TxChangesAfter.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v2 tx changes after: %w", err)
	}
	return nil
}

// ContractEventType classifies contract events.
type ContractEventType int32

const (
	ContractEventTypeSystem     ContractEventType = 0
	ContractEventTypeContract   ContractEventType = 1
	ContractEventTypeDiagnostic ContractEventType = 2
)

var contractEventTypeNames = map[ContractEventType]string{
	ContractEventTypeSystem:     "CONTRACT_EVENT_TYPE_SYSTEM",
	ContractEventTypeContract:   "CONTRACT_EVENT_TYPE_CONTRACT",
	ContractEventTypeDiagnostic: "CONTRACT_EVENT_TYPE_DIAGNOSTIC",
}

func (v ContractEventType) String() string { return enumString(contractEventTypeNames, v, "ContractEventType") }

// MarshalText renders the protocol name of v.
func (v ContractEventType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ContractEventType) IsKnown() bool {
	_, ok := contractEventTypeNames[v]
	return ok
}

// ContractEventV0 is an event's topics and data.
type ContractEventV0 struct {
	Topics []SCVal
	Data   SCVal
}

// Encode writes a ContractEventV0 in XDR format.
func (cev *ContractEventV0) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, cev.Topics); err != nil {
		return fmt.Errorf("encode contract event v0 topics: %w", err)
	}
	if err := cev.Data.Encode(buf); err != nil {
		return fmt.Errorf("encode contract event v0 data: %w", err)
	}
	return nil
}

// Decode reads a ContractEventV0 from XDR format.
func (cev *ContractEventV0) Decode(c *xdr.Cursor) error {
	var err error
	if cev.Topics, err = xdr.DecodeArray[SCVal](c); err != nil {
		return fmt.Errorf("decode contract event v0 topics: %w", err)
	}
	if err = cev.Data.Decode(c); err != nil {
		return fmt.Errorf("decode contract event v0 data: %w", err)
	}
	return nil
}

// ContractEventBody is versioned; only v0 exists.
type ContractEventBody struct {
	V  int32
	V0 *ContractEventV0
}

// Encode writes a ContractEventBody in XDR format.
func (ceb *ContractEventBody) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ceb.V)
	switch ceb.V {
	case 0:
		return xdr.EncodeArm(buf, ceb.V0, "ContractEventBody", ceb.V)
	}
	return nil
}

// Decode reads a ContractEventBody from XDR format.
func (ceb *ContractEventBody) Decode(c *xdr.Cursor) error {
	*ceb = ContractEventBody{}
	var err error
	if ceb.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode contract event body v: %w", err)
	}
	switch ceb.V {
	case 0:
		ceb.V0, err = xdr.DecodeArm[ContractEventV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode contract event body %v: %w", ceb.V, err)
	}
	return nil
}

// ContractEvent is an event emitted by a contract or the host.
type ContractEvent struct {
	Ext        ExtensionPoint
	ContractID *ContractID
	Type       ContractEventType
	Body       ContractEventBody
}

// Encode writes a ContractEvent in XDR format.
func (ce *ContractEvent) Encode(buf *bytes.Buffer) error {
	if err := ce.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract event ext: %w", err)
	}
	if err := xdr.EncodeOptional(buf, ce.ContractID); err != nil {
		return fmt.Errorf("encode contract event contract id: %w", err)
	}
	xdr.WriteEnum(buf, ce.Type)
	if err := ce.Body.Encode(buf); err != nil {
		return fmt.Errorf("encode contract event body: %w", err)
	}
	return nil
}

// Decode reads a ContractEvent from XDR format.
func (ce *ContractEvent) Decode(c *xdr.Cursor) error {
	var err error
	if err = ce.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract event ext: %w", err)
	}
	if ce.ContractID, err = xdr.DecodeOptional[ContractID](c); err != nil {
		return fmt.Errorf("decode contract event contract id: %w", err)
	}
	if ce.Type, err = xdr.DecodeEnum[ContractEventType](c); err != nil {
		return fmt.Errorf("decode contract event type: %w", err)
	}
	if err = ce.Body.Decode(c); err != nil {
		return fmt.Errorf("decode contract event body: %w", err)
	}
	return nil
}

// DiagnosticEvent is a debug event with whether it was raised inside a
// successful contract call.
type DiagnosticEvent struct {
	InSuccessfulContractCall bool
	Event                    ContractEvent
}

// Encode writes a DiagnosticEvent in XDR format.
func (de *DiagnosticEvent) Encode(buf *bytes.Buffer) error {
	xdr.WriteBool(buf, de.InSuccessfulContractCall)
	if err := de.Event.Encode(buf); err != nil {
		return fmt.Errorf("encode diagnostic event event: %w", err)
	}
	return nil
}

// Decode reads a DiagnosticEvent from XDR format.
func (de *DiagnosticEvent) Decode(c *xdr.Cursor) error {
	var err error
	if de.InSuccessfulContractCall, err = xdr.DecodeBool(c); err != nil {
		return fmt.Errorf("decode diagnostic event in successful contract call: %w", err)
	}
	if err = de.Event.Decode(c); err != nil {
		return fmt.Errorf("decode diagnostic event event: %w", err)
	}
	return nil
}

// SorobanTransactionMetaExtV1 breaks down the fees charged.
type SorobanTransactionMetaExtV1 struct {
	Ext                                  ExtensionPoint
	TotalNonRefundableResourceFeeCharged int64
	TotalRefundableResourceFeeCharged    int64
	RentFeeCharged                       int64
}

// Encode writes a SorobanTransactionMetaExtV1 in XDR format.
func (stm *SorobanTransactionMetaExtV1) Encode(buf *bytes.Buffer) error {
	if err := stm.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction meta ext v1 ext: %w", err)
	}
	xdr.WriteInt64(buf, stm.TotalNonRefundableResourceFeeCharged)
	xdr.WriteInt64(buf, stm.TotalRefundableResourceFeeCharged)
	xdr.WriteInt64(buf, stm.RentFeeCharged)
	return nil
}

// Decode reads a SorobanTransactionMetaExtV1 from XDR format.
func (stm *SorobanTransactionMetaExtV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = stm.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext v1 ext: %w", err)
	}
	if stm.TotalNonRefundableResourceFeeCharged, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext v1 total non refundable resource fee charged: %w", err)
	}
	if stm.TotalRefundableResourceFeeCharged, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext v1 total refundable resource fee charged: %w", err)
	}
	if stm.RentFeeCharged, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext v1 rent fee charged: %w", err)
	}
	return nil
}

// SorobanTransactionMetaExt is the versioned extension of SorobanTransactionMeta.
type SorobanTransactionMetaExt struct {
	V  int32
	V1 *SorobanTransactionMetaExtV1
}

// Encode writes a SorobanTransactionMetaExt in XDR format.
func (stm *SorobanTransactionMetaExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, stm.V)
	switch stm.V {
	case 1:
		return xdr.EncodeArm(buf, stm.V1, "SorobanTransactionMetaExt", stm.V)
	}
	return nil
}

// Decode reads a SorobanTransactionMetaExt from XDR format.
func (stm *SorobanTransactionMetaExt) Decode(c *xdr.Cursor) error {
	*stm = SorobanTransactionMetaExt{}
	var err error
	if stm.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext v: %w", err)
	}
	switch stm.V {
	case 1:
		stm.V1, err = xdr.DecodeArm[SorobanTransactionMetaExtV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode soroban transaction meta ext %v: %w", stm.V, err)
	}
	return nil
}

// SorobanTransactionMeta is the Soroban execution output in TransactionMetaV3.
type SorobanTransactionMeta struct {
	Ext              SorobanTransactionMetaExt
	Events           []ContractEvent
	ReturnValue      SCVal
	DiagnosticEvents []DiagnosticEvent
}

// Encode writes a SorobanTransactionMeta in XDR format.
func (stm *SorobanTransactionMeta) Encode(buf *bytes.Buffer) error {
	if err := stm.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction meta ext: %w", err)
	}
	if err := xdr.EncodeArray(buf, stm.Events); err != nil {
		return fmt.Errorf("encode soroban transaction meta events: %w", err)
	}
	if err := stm.ReturnValue.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction meta return value: %w", err)
	}
	if err := xdr.EncodeArray(buf, stm.DiagnosticEvents); err != nil {
		return fmt.Errorf("encode soroban transaction meta diagnostic events: %w", err)
	}
	return nil
}

// Decode reads a SorobanTransactionMeta from XDR format.
func (stm *SorobanTransactionMeta) Decode(c *xdr.Cursor) error {
	var err error
	if err = stm.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta ext: %w", err)
	}
	if stm.Events, err = xdr.DecodeArray[ContractEvent](c); err != nil {
		return fmt.Errorf("decode soroban transaction meta events: %w", err)
	}
	if err = stm.ReturnValue.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta return value: %w", err)
	}
	if stm.DiagnosticEvents, err = xdr.DecodeArray[DiagnosticEvent](c); err != nil {
		return fmt.Errorf("decode soroban transaction meta diagnostic events: %w", err)
	}
	return nil
}

// TransactionMetaV3 adds Soroban meta.
//
//	struct TransactionMetaV3 {
//	    ExtensionPoint ext;
//	    LedgerEntryChanges txChangesBefore;
//	    OperationMeta operations<>;
//	    LedgerEntryChanges txChangesAfter;
//	    SorobanTransactionMeta* sorobanMeta;
//	};
type TransactionMetaV3 struct {
	Ext             ExtensionPoint
	TxChangesBefore LedgerEntryChanges
	Operations      []OperationMeta
	TxChangesAfter  LedgerEntryChanges
	SorobanMeta     *SorobanTransactionMeta
}

// Encode writes a TransactionMetaV3 in XDR format.
func (tmv *TransactionMetaV3) Encode(buf *bytes.Buffer) error {
	if err := tmv.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v3 ext: %w", err)
	}
	if err := tmv.TxChangesBefore.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v3 tx changes before: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.Operations); err != nil {
		return fmt.Errorf("encode transaction meta v3 operations: %w", err)
	}
	if err := tmv.TxChangesAfter.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v3 tx changes after: %w", err)
	}
	if err := xdr.EncodeOptional(buf, tmv.SorobanMeta); err != nil {
		return fmt.Errorf("encode transaction meta v3 soroban meta: %w", err)
	}
	return nil
}

// Decode reads a TransactionMetaV3 from XDR format.
func (tmv *TransactionMetaV3) Decode(c *xdr.Cursor) error {
	var err error
	if err = tmv.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v3 ext: %w", err)
	}
	if err = tmv.TxChangesBefore.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v3 tx changes before: %w", err)
	}
	if tmv.Operations, err = xdr.DecodeArray[OperationMeta](c); err != nil {
		return fmt.Errorf("decode transaction meta v3 operations: %w", err)
	}
	if err = tmv.TxChangesAfter.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v3 tx changes after: %w", err)
	}
	if tmv.SorobanMeta, err = xdr.DecodeOptional[SorobanTransactionMeta](c); err != nil {
		return fmt.Errorf("decode transaction meta v3 soroban meta: %w", err)
	}
	return nil
}

// SorobanTransactionMetaV2 is the Soroban execution output in TransactionMetaV4.
type SorobanTransactionMetaV2 struct {
	Ext         SorobanTransactionMetaExt
	ReturnValue *SCVal
}

// Encode writes a SorobanTransactionMetaV2 in XDR format.
func (stm *SorobanTransactionMetaV2) Encode(buf *bytes.Buffer) error {
	if err := stm.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction meta v2 ext: %w", err)
	}
	if err := xdr.EncodeOptional(buf, stm.ReturnValue); err != nil {
		return fmt.Errorf("encode soroban transaction meta v2 return value: %w", err)
	}
	return nil
}

// Decode reads a SorobanTransactionMetaV2 from XDR format.
func (stm *SorobanTransactionMetaV2) Decode(c *xdr.Cursor) error {
	var err error
	if err = stm.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction meta v2 ext: %w", err)
	}
	if stm.ReturnValue, err = xdr.DecodeOptional[SCVal](c); err != nil {
		return fmt.Errorf("decode soroban transaction meta v2 return value: %w", err)
	}
	return nil
}

// TransactionEventStage enumerates transaction event stage values.
type TransactionEventStage int32

const (
	TransactionEventStageBeforeAllTxs TransactionEventStage = 0
	TransactionEventStageAfterTx      TransactionEventStage = 1
	TransactionEventStageAfterAllTxs  TransactionEventStage = 2
)

var transactionEventStageNames = map[TransactionEventStage]string{
	TransactionEventStageBeforeAllTxs: "TRANSACTION_EVENT_STAGE_BEFORE_ALL_TXS",
	TransactionEventStageAfterTx:      "TRANSACTION_EVENT_STAGE_AFTER_TX",
	TransactionEventStageAfterAllTxs:  "TRANSACTION_EVENT_STAGE_AFTER_ALL_TXS",
}

func (v TransactionEventStage) String() string { return enumString(transactionEventStageNames, v, "TransactionEventStage") }

// MarshalText renders the protocol name of v.
func (v TransactionEventStage) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v TransactionEventStage) IsKnown() bool {
	_, ok := transactionEventStageNames[v]
	return ok
}

// TransactionEvent is an event emitted outside any operation, such as a
// fee charge or refund.
type TransactionEvent struct {
	Stage TransactionEventStage
	Event ContractEvent
}

// Encode writes a TransactionEvent in XDR format.
func (te *TransactionEvent) Encode(buf *bytes.Buffer) error {
	xdr.WriteEnum(buf, te.Stage)
	if err := te.Event.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction event event: %w", err)
	}
	return nil
}

// Decode reads a TransactionEvent from XDR format.
func (te *TransactionEvent) Decode(c *xdr.Cursor) error {
	var err error
	if te.Stage, err = xdr.DecodeEnum[TransactionEventStage](c); err != nil {
		return fmt.Errorf("decode transaction event stage: %w", err)
	}
	if err = te.Event.Decode(c); err != nil {
		return fmt.Errorf("decode transaction event event: %w", err)
	}
	return nil
}

// TransactionMetaV4 moves events into per-operation meta and adds
// transaction-level events.
type TransactionMetaV4 struct {
	Ext              ExtensionPoint
	TxChangesBefore  LedgerEntryChanges
	Operations       []OperationMetaV2
	TxChangesAfter   LedgerEntryChanges
	SorobanMeta      *SorobanTransactionMetaV2
	Events           []TransactionEvent
	DiagnosticEvents []DiagnosticEvent
}

// Encode writes a TransactionMetaV4 in XDR format.
func (tmv *TransactionMetaV4) Encode(buf *bytes.Buffer) error {
	if err := tmv.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v4 ext: %w", err)
	}
	if err := tmv.TxChangesBefore.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v4 tx changes before: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.Operations); err != nil {
		return fmt.Errorf("encode transaction meta v4 operations: %w", err)
	}
	if err := tmv.TxChangesAfter.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction meta v4 tx changes after: %w", err)
	}
	if err := xdr.EncodeOptional(buf, tmv.SorobanMeta); err != nil {
		return fmt.Errorf("encode transaction meta v4 soroban meta: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.Events); err != nil {
		return fmt.Errorf("encode transaction meta v4 events: %w", err)
	}
	if err := xdr.EncodeArray(buf, tmv.DiagnosticEvents); err != nil {
		return fmt.Errorf("encode transaction meta v4 diagnostic events: %w", err)
	}
	return nil
}

// Decode reads a TransactionMetaV4 from XDR format.
func (tmv *TransactionMetaV4) Decode(c *xdr.Cursor) error {
	var err error
	if err = tmv.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v4 ext: %w", err)
	}
	if err = tmv.TxChangesBefore.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v4 tx changes before: %w", err)
	}
	if tmv.Operations, err = xdr.DecodeArray[OperationMetaV2](c); err != nil {
		return fmt.Errorf("decode transaction meta v4 operations: %w", err)
	}
	if err = tmv.TxChangesAfter.Decode(c); err != nil {
		return fmt.Errorf("decode transaction meta v4 tx changes after: %w", err)
	}
	if tmv.SorobanMeta, err = xdr.DecodeOptional[SorobanTransactionMetaV2](c); err != nil {
		return fmt.Errorf("decode transaction meta v4 soroban meta: %w", err)
	}
	if tmv.Events, err = xdr.DecodeArray[TransactionEvent](c); err != nil {
		return fmt.Errorf("decode transaction meta v4 events: %w", err)
	}
	if tmv.DiagnosticEvents, err = xdr.DecodeArray[DiagnosticEvent](c); err != nil {
		return fmt.Errorf("decode transaction meta v4 diagnostic events: %w", err)
	}
	return nil
}

// TransactionMeta records the ledger changes of an applied transaction.
// Each version is decoded as is; none is converted into another.
type TransactionMeta struct {
	V          int32
	Operations *[]OperationMeta
	V1         *TransactionMetaV1
	V2         *TransactionMetaV2
	V3         *TransactionMetaV3
	V4         *TransactionMetaV4
}

// Encode writes a TransactionMeta in XDR format.
func (tm *TransactionMeta) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, tm.V)
	switch tm.V {
	case 0:
		return xdr.EncodeArrayArm(buf, tm.Operations, "TransactionMeta", tm.V)
	case 1:
		return xdr.EncodeArm(buf, tm.V1, "TransactionMeta", tm.V)
	case 2:
		return xdr.EncodeArm(buf, tm.V2, "TransactionMeta", tm.V)
	case 3:
		return xdr.EncodeArm(buf, tm.V3, "TransactionMeta", tm.V)
	case 4:
		return xdr.EncodeArm(buf, tm.V4, "TransactionMeta", tm.V)
	}
	return nil
}

// Decode reads a TransactionMeta from XDR format.
func (tm *TransactionMeta) Decode(c *xdr.Cursor) error {
	*tm = TransactionMeta{}
	var err error
	if tm.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode transaction meta v: %w", err)
	}
	switch tm.V {
	case 0:
		tm.Operations, err = xdr.DecodeArrayArm[OperationMeta](c)
	case 1:
		tm.V1, err = xdr.DecodeArm[TransactionMetaV1](c)
	case 2:
		tm.V2, err = xdr.DecodeArm[TransactionMetaV2](c)
	case 3:
		tm.V3, err = xdr.DecodeArm[TransactionMetaV3](c)
	case 4:
		tm.V4, err = xdr.DecodeArm[TransactionMetaV4](c)
	}
	if err != nil {
		return fmt.Errorf("decode transaction meta %v: %w", tm.V, err)
	}
	return nil
}

// TransactionResultMeta is a result with its fee processing and meta, as
// stored in ledger close meta.
type TransactionResultMeta struct {
	Result            TransactionResultPair
	FeeProcessing     LedgerEntryChanges
	TxApplyProcessing TransactionMeta
}

// Encode writes a TransactionResultMeta in XDR format.
func (trm *TransactionResultMeta) Encode(buf *bytes.Buffer) error {
	if err := trm.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta result: %w", err)
	}
	if err := trm.FeeProcessing.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta fee processing: %w", err)
	}
	if err := trm.TxApplyProcessing.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta tx apply processing: %w", err)
	}
	return nil
}

// Decode reads a TransactionResultMeta from XDR format.
func (trm *TransactionResultMeta) Decode(c *xdr.Cursor) error {
	var err error
	if err = trm.Result.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta result: %w", err)
	}
	if err = trm.FeeProcessing.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta fee processing: %w", err)
	}
	if err = trm.TxApplyProcessing.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta tx apply processing: %w", err)
	}
	return nil
}

// TransactionResultMetaV1 adds post-apply fee processing.
type TransactionResultMetaV1 struct {
	Ext                      ExtensionPoint
	Result                   TransactionResultPair
	FeeProcessing            LedgerEntryChanges
	TxApplyProcessing        TransactionMeta
	PostTxApplyFeeProcessing LedgerEntryChanges
}

// Encode writes a TransactionResultMetaV1 in XDR format.
func (trm *TransactionResultMetaV1) Encode(buf *bytes.Buffer) error {
	if err := trm.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta v1 ext: %w", err)
	}
	if err := trm.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta v1 result: %w", err)
	}
	if err := trm.FeeProcessing.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta v1 fee processing: %w", err)
	}
	if err := trm.TxApplyProcessing.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta v1 tx apply processing: %w", err)
	}
	if err := trm.PostTxApplyFeeProcessing.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result meta v1 post tx apply fee processing: %w", err)
	}
	return nil
}

// Decode reads a TransactionResultMetaV1 from XDR format.
func (trm *TransactionResultMetaV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = trm.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta v1 ext: %w", err)
	}
	if err = trm.Result.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta v1 result: %w", err)
	}
	if err = trm.FeeProcessing.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta v1 fee processing: %w", err)
	}
	if err = trm.TxApplyProcessing.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta v1 tx apply processing: %w", err)
	}
	if err = trm.PostTxApplyFeeProcessing.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result meta v1 post tx apply fee processing: %w", err)
	}
	return nil
}

// InvokeHostFunctionSuccessPreImage is hashed into InvokeHostFunctionResult.Success.
type InvokeHostFunctionSuccessPreImage struct {
	ReturnValue SCVal
	Events      []ContractEvent
}

// Encode writes an InvokeHostFunctionSuccessPreImage in XDR format.
func (ihf *InvokeHostFunctionSuccessPreImage) Encode(buf *bytes.Buffer) error {
	if err := ihf.ReturnValue.Encode(buf); err != nil {
		return fmt.Errorf("encode invoke host function success pre image return value: %w", err)
	}
	if err := xdr.EncodeArray(buf, ihf.Events); err != nil {
		return fmt.Errorf("encode invoke host function success pre image events: %w", err)
	}
	return nil
}

// Decode reads an InvokeHostFunctionSuccessPreImage from XDR format.
func (ihf *InvokeHostFunctionSuccessPreImage) Decode(c *xdr.Cursor) error {
	var err error
	if err = ihf.ReturnValue.Decode(c); err != nil {
		return fmt.Errorf("decode invoke host function success pre image return value: %w", err)
	}
	if ihf.Events, err = xdr.DecodeArray[ContractEvent](c); err != nil {
		return fmt.Errorf("decode invoke host function success pre image events: %w", err)
	}
	return nil
}
