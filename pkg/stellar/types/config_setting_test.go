package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestConfigSettingEntry_EmptyStateSizeWindow(t *testing.T) {
	in := ConfigSettingEntry{
		ConfigSettingID:            ConfigSettingIDLiveSorobanStateSizeWindow,
		LiveSorobanStateSizeWindow: &[]uint64{},
	}
	data, err := xdr.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 12, 0, 0, 0, 0}, data)

	var out ConfigSettingEntry
	require.NoError(t, xdr.Unmarshal(data, &out))
	require.NotNil(t, out.LiveSorobanStateSizeWindow)
	assert.Empty(t, *out.LiveSorobanStateSizeWindow)
	assert.Equal(t, 1, armCount(t, &out))
}

func TestConfigSettingEntry_StateSizeWindowValues(t *testing.T) {
	in := ConfigSettingEntry{
		ConfigSettingID:            ConfigSettingIDLiveSorobanStateSizeWindow,
		LiveSorobanStateSizeWindow: &[]uint64{1, 2, 1 << 40},
	}
	out, data := roundTrip(t, &in)
	assert.Len(t, data, 4+4+3*8)
	assert.Equal(t, []uint64{1, 2, 1 << 40}, *out.LiveSorobanStateSizeWindow)
}

func TestConfigSettingEntry_Arms(t *testing.T) {
	tests := []struct {
		name string
		in   ConfigSettingEntry
	}{
		{"max size", ConfigSettingEntry{ConfigSettingID: ConfigSettingIDContractMaxSizeBytes, ContractMaxSizeBytes: ptr(uint32(65536))}},
		{"bandwidth", ConfigSettingEntry{
			ConfigSettingID: ConfigSettingIDContractBandwidthV0,
			ContractBandwidth: &ConfigSettingContractBandwidthV0{
				LedgerMaxTxsSizeBytes: 1 << 20,
				TxMaxSizeBytes:        1 << 16,
				FeeTxSize1KB:          1624,
			},
		}},
		{"cpu cost params", ConfigSettingEntry{
			ConfigSettingID: ConfigSettingIDContractCostParamsCpuInstructions,
			ContractCostParamsCPUInsns: &ContractCostParams{
				{ConstTerm: 4, LinearTerm: 0},
				{ConstTerm: 434, LinearTerm: 16},
			},
		}},
		{"state archival", ConfigSettingEntry{
			ConfigSettingID: ConfigSettingIDStateArchival,
			StateArchivalSettings: &StateArchivalSettings{
				MaxEntryTTL:                   3110400,
				MinTemporaryTTL:               17280,
				MinPersistentTTL:              2073600,
				PersistentRentRateDenominator: 1215,
				TempRentRateDenominator:       2430,
				MaxEntriesToArchive:           1000,
				EvictionScanSize:              100000,
				StartingEvictionScanLevel:     7,
			},
		}},
		{"eviction iterator", ConfigSettingEntry{
			ConfigSettingID:  ConfigSettingIDEvictionIterator,
			EvictionIterator: &EvictionIterator{BucketListLevel: 6, IsCurrBucket: true, BucketFileOffset: 1 << 33},
		}},
		{"scp timing", ConfigSettingEntry{
			ConfigSettingID: ConfigSettingIDSCPTiming,
			ContractSCPTiming: &ConfigSettingSCPTiming{
				LedgerTargetCloseTimeMilliseconds:    5000,
				NominationTimeoutInitialMilliseconds: 1000,
				BallotTimeoutInitialMilliseconds:     1000,
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := roundTrip(t, &tt.in)
			assert.Equal(t, 1, armCount(t, out))
		})
	}
}

func TestConfigSettingEntry_MissingArm(t *testing.T) {
	in := ConfigSettingEntry{ConfigSettingID: ConfigSettingIDLiveSorobanStateSizeWindow}
	_, err := xdr.Marshal(&in)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestContractCostType_Names(t *testing.T) {
	assert.Equal(t, "WasmInsnExec", ContractCostTypeWasmInsnExec.String())
	assert.Equal(t, "Bls12381FrInv", ContractCostTypeBls12381FrInv.String())
	assert.True(t, ContractCostTypeBls12381FrInv.IsKnown())
	assert.False(t, ContractCostType(70).IsKnown())
}
