package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestTransactionMeta_Versions(t *testing.T) {
	tests := []struct {
		name string
		in   TransactionMeta
		size int
	}{
		{"v0", TransactionMeta{V: 0, Operations: &[]OperationMeta{}}, 8},
		{"v1", TransactionMeta{V: 1, V1: &TransactionMetaV1{}}, 12},
		{"v2", TransactionMeta{V: 2, V2: &TransactionMetaV2{}}, 16},
		{"v3", TransactionMeta{V: 3, V3: &TransactionMetaV3{}}, 24},
		{"v4", TransactionMeta{V: 4, V4: &TransactionMetaV4{}}, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, data := roundTrip(t, &tt.in)
			assert.Len(t, data, tt.size)
			assert.Equal(t, tt.in.V, out.V)
			assert.Equal(t, 1, armCount(t, out), "only the selected version may be set")
		})
	}
}

func TestTransactionMeta_UnknownVersion(t *testing.T) {
	var out TransactionMeta
	require.NoError(t, xdr.Unmarshal([]byte{0, 0, 0, 7}, &out))
	assert.Equal(t, int32(7), out.V)
	assert.Equal(t, 0, armCount(t, &out))
}

func TestTransactionMeta_MissingArm(t *testing.T) {
	in := TransactionMeta{V: 3}
	_, err := xdr.Marshal(&in)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func sampleEvent() ContractEvent {
	id := ContractID(key(0xC0))
	return ContractEvent{
		ContractID: &id,
		Type:       ContractEventTypeContract,
		Body: ContractEventBody{
			V: 0,
			V0: &ContractEventV0{
				Topics: []SCVal{NewSCValU32(1), NewSCValString("transfer")},
				Data:   NewSCValI64(-5),
			},
		},
	}
}

func TestTransactionMetaV3_SorobanMeta(t *testing.T) {
	entry := LedgerEntry{
		LastModifiedLedgerSeq: 42,
		Data: LedgerEntryData{
			Type: LedgerEntryTypeTTL,
			TTL:  &TTLEntry{KeyHash: Hash(key(1)), LiveUntilLedgerSeq: 100},
		},
	}
	in := TransactionMeta{
		V: 3,
		V3: &TransactionMetaV3{
			TxChangesBefore: LedgerEntryChanges{
				{Type: LedgerEntryChangeTypeState, State: &entry},
				{Type: LedgerEntryChangeTypeUpdated, Updated: &entry},
			},
			Operations: []OperationMeta{{Changes: LedgerEntryChanges{
				{Type: LedgerEntryChangeTypeCreated, Created: &entry},
			}}},
			SorobanMeta: &SorobanTransactionMeta{
				Ext: SorobanTransactionMetaExt{
					V: 1,
					V1: &SorobanTransactionMetaExtV1{
						TotalNonRefundableResourceFeeCharged: 100,
						TotalRefundableResourceFeeCharged:    200,
						RentFeeCharged:                       50,
					},
				},
				Events:      []ContractEvent{sampleEvent()},
				ReturnValue: NewSCValBool(true),
				DiagnosticEvents: []DiagnosticEvent{
					{InSuccessfulContractCall: true, Event: sampleEvent()},
				},
			},
		},
	}
	out, _ := roundTrip(t, &in)
	require.NotNil(t, out.V3.SorobanMeta)
	assert.Equal(t, int64(50), out.V3.SorobanMeta.Ext.V1.RentFeeCharged)
	require.NotNil(t, out.V3.SorobanMeta.ReturnValue.B)
	assert.True(t, *out.V3.SorobanMeta.ReturnValue.B)
}

func TestTransactionMetaV4_EventsAndRemoval(t *testing.T) {
	ret := NewSCValVoid()
	removed := LedgerKey{
		Type: LedgerEntryTypeTTL,
		TTL:  &LedgerKeyTTL{KeyHash: Hash(key(2))},
	}
	in := TransactionMeta{
		V: 4,
		V4: &TransactionMetaV4{
			TxChangesAfter: LedgerEntryChanges{
				{Type: LedgerEntryChangeTypeRemoved, Removed: &removed},
			},
			Operations: []OperationMetaV2{{Events: []ContractEvent{sampleEvent()}}},
			SorobanMeta: &SorobanTransactionMetaV2{ReturnValue: &ret},
			Events: []TransactionEvent{
				{Stage: TransactionEventStageAfterAllTxs, Event: sampleEvent()},
			},
		},
	}
	out, _ := roundTrip(t, &in)
	require.Len(t, out.V4.TxChangesAfter, 1)
	assert.Equal(t, LedgerEntryChangeTypeRemoved, out.V4.TxChangesAfter[0].Type)
	assert.Equal(t, 1, armCount(t, &out.V4.TxChangesAfter[0]))
	assert.Equal(t, SCValTypeVoid, out.V4.SorobanMeta.ReturnValue.Type)
}

func TestDiagnosticEvent_StrictBool(t *testing.T) {
	ev := DiagnosticEvent{Event: sampleEvent()}
	data, err := xdr.Marshal(&ev)
	require.NoError(t, err)
	data[3] = 2

	var out DiagnosticEvent
	assert.ErrorIs(t, xdr.Unmarshal(data, &out), xdr.ErrInvalidEncoding)
}
