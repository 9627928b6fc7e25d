package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ConfigSettingContractExecutionLanesV0 limits Soroban transactions per ledger.
type ConfigSettingContractExecutionLanesV0 struct {
	LedgerMaxTxCount uint32
}

// Encode writes a ConfigSettingContractExecutionLanesV0 in XDR format.
func (csc *ConfigSettingContractExecutionLanesV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.LedgerMaxTxCount)
	return nil
}

// Decode reads a ConfigSettingContractExecutionLanesV0 from XDR format.
func (csc *ConfigSettingContractExecutionLanesV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.LedgerMaxTxCount, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract execution lanes v0 ledger max tx count: %w", err)
	}
	return nil
}

// ConfigSettingContractComputeV0 bounds and prices CPU instructions.
type ConfigSettingContractComputeV0 struct {
	LedgerMaxInstructions           int64
	TxMaxInstructions               int64
	FeeRatePerInstructionsIncrement int64
	TxMemoryLimit                   uint32
}

// Encode writes a ConfigSettingContractComputeV0 in XDR format.
func (csc *ConfigSettingContractComputeV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, csc.LedgerMaxInstructions)
	xdr.WriteInt64(buf, csc.TxMaxInstructions)
	xdr.WriteInt64(buf, csc.FeeRatePerInstructionsIncrement)
	xdr.WriteUint32(buf, csc.TxMemoryLimit)
	return nil
}

// Decode reads a ConfigSettingContractComputeV0 from XDR format.
func (csc *ConfigSettingContractComputeV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.LedgerMaxInstructions, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract compute v0 ledger max instructions: %w", err)
	}
	if csc.TxMaxInstructions, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract compute v0 tx max instructions: %w", err)
	}
	if csc.FeeRatePerInstructionsIncrement, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract compute v0 fee rate per instructions increment: %w", err)
	}
	if csc.TxMemoryLimit, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract compute v0 tx memory limit: %w", err)
	}
	return nil
}

// ConfigSettingContractParallelComputeV0 bounds the dependent transaction
// clusters applied in parallel.
type ConfigSettingContractParallelComputeV0 struct {
	LedgerMaxDependentTxClusters uint32
}

// Encode writes a ConfigSettingContractParallelComputeV0 in XDR format.
func (csc *ConfigSettingContractParallelComputeV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.LedgerMaxDependentTxClusters)
	return nil
}

// Decode reads a ConfigSettingContractParallelComputeV0 from XDR format.
func (csc *ConfigSettingContractParallelComputeV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.LedgerMaxDependentTxClusters, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract parallel compute v0 ledger max dependent tx clusters: %w", err)
	}
	return nil
}

// ConfigSettingContractLedgerCostV0 bounds and prices ledger access.
type ConfigSettingContractLedgerCostV0 struct {
	LedgerMaxDiskReadEntries        uint32
	LedgerMaxDiskReadBytes          uint32
	LedgerMaxWriteLedgerEntries     uint32
	LedgerMaxWriteBytes             uint32
	TxMaxDiskReadEntries            uint32
	TxMaxDiskReadBytes              uint32
	TxMaxWriteLedgerEntries         uint32
	TxMaxWriteBytes                 uint32
	FeeDiskReadLedgerEntry          int64
	FeeWriteLedgerEntry             int64
	FeeDiskRead1KB                  int64
	SorobanStateTargetSizeBytes     int64
	RentFee1KBSorobanStateSizeLow   int64
	RentFee1KBSorobanStateSizeHigh  int64
	SorobanStateRentFeeGrowthFactor uint32
}

// Encode writes a ConfigSettingContractLedgerCostV0 in XDR format.
func (csc *ConfigSettingContractLedgerCostV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.LedgerMaxDiskReadEntries)
	xdr.WriteUint32(buf, csc.LedgerMaxDiskReadBytes)
	xdr.WriteUint32(buf, csc.LedgerMaxWriteLedgerEntries)
	xdr.WriteUint32(buf, csc.LedgerMaxWriteBytes)
	xdr.WriteUint32(buf, csc.TxMaxDiskReadEntries)
	xdr.WriteUint32(buf, csc.TxMaxDiskReadBytes)
	xdr.WriteUint32(buf, csc.TxMaxWriteLedgerEntries)
	xdr.WriteUint32(buf, csc.TxMaxWriteBytes)
	xdr.WriteInt64(buf, csc.FeeDiskReadLedgerEntry)
	xdr.WriteInt64(buf, csc.FeeWriteLedgerEntry)
	xdr.WriteInt64(buf, csc.FeeDiskRead1KB)
	xdr.WriteInt64(buf, csc.SorobanStateTargetSizeBytes)
	xdr.WriteInt64(buf, csc.RentFee1KBSorobanStateSizeLow)
	xdr.WriteInt64(buf, csc.RentFee1KBSorobanStateSizeHigh)
	xdr.WriteUint32(buf, csc.SorobanStateRentFeeGrowthFactor)
	return nil
}

// Decode reads a ConfigSettingContractLedgerCostV0 from XDR format.
func (csc *ConfigSettingContractLedgerCostV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.LedgerMaxDiskReadEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 ledger max disk read entries: %w", err)
	}
	if csc.LedgerMaxDiskReadBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 ledger max disk read bytes: %w", err)
	}
	if csc.LedgerMaxWriteLedgerEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 ledger max write ledger entries: %w", err)
	}
	if csc.LedgerMaxWriteBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 ledger max write bytes: %w", err)
	}
	if csc.TxMaxDiskReadEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 tx max disk read entries: %w", err)
	}
	if csc.TxMaxDiskReadBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 tx max disk read bytes: %w", err)
	}
	if csc.TxMaxWriteLedgerEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 tx max write ledger entries: %w", err)
	}
	if csc.TxMaxWriteBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 tx max write bytes: %w", err)
	}
	if csc.FeeDiskReadLedgerEntry, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 fee disk read ledger entry: %w", err)
	}
	if csc.FeeWriteLedgerEntry, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 fee write ledger entry: %w", err)
	}
	if csc.FeeDiskRead1KB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 fee disk read 1kb: %w", err)
	}
	if csc.SorobanStateTargetSizeBytes, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 soroban state target size bytes: %w", err)
	}
	if csc.RentFee1KBSorobanStateSizeLow, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 rent fee 1kb soroban state size low: %w", err)
	}
	if csc.RentFee1KBSorobanStateSizeHigh, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 rent fee 1kb soroban state size high: %w", err)
	}
	if csc.SorobanStateRentFeeGrowthFactor, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost v0 soroban state rent fee growth factor: %w", err)
	}
	return nil
}

// ConfigSettingContractLedgerCostExtV0 extends ledger cost settings with
// the footprint entry limit and the write fee per 1KB.
type ConfigSettingContractLedgerCostExtV0 struct {
	TxMaxFootprintEntries uint32
	FeeWrite1KB           int64
}

// Encode writes a ConfigSettingContractLedgerCostExtV0 in XDR format.
func (csc *ConfigSettingContractLedgerCostExtV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.TxMaxFootprintEntries)
	xdr.WriteInt64(buf, csc.FeeWrite1KB)
	return nil
}

// Decode reads a ConfigSettingContractLedgerCostExtV0 from XDR format.
func (csc *ConfigSettingContractLedgerCostExtV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.TxMaxFootprintEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost ext v0 tx max footprint entries: %w", err)
	}
	if csc.FeeWrite1KB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract ledger cost ext v0 fee write 1kb: %w", err)
	}
	return nil
}

// ConfigSettingContractHistoricalDataV0 prices history archive storage.
type ConfigSettingContractHistoricalDataV0 struct {
	FeeHistorical1KB int64
}

// Encode writes a ConfigSettingContractHistoricalDataV0 in XDR format.
func (csc *ConfigSettingContractHistoricalDataV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, csc.FeeHistorical1KB)
	return nil
}

// Decode reads a ConfigSettingContractHistoricalDataV0 from XDR format.
func (csc *ConfigSettingContractHistoricalDataV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.FeeHistorical1KB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract historical data v0 fee historical 1kb: %w", err)
	}
	return nil
}

// ConfigSettingContractEventsV0 limits and prices contract events.
type ConfigSettingContractEventsV0 struct {
	TxMaxContractEventsSizeBytes uint32
	FeeContractEvents1KB         int64
}

// Encode writes a ConfigSettingContractEventsV0 in XDR format.
func (csc *ConfigSettingContractEventsV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.TxMaxContractEventsSizeBytes)
	xdr.WriteInt64(buf, csc.FeeContractEvents1KB)
	return nil
}

// Decode reads a ConfigSettingContractEventsV0 from XDR format.
func (csc *ConfigSettingContractEventsV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.TxMaxContractEventsSizeBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract events v0 tx max contract events size bytes: %w", err)
	}
	if csc.FeeContractEvents1KB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract events v0 fee contract events 1kb: %w", err)
	}
	return nil
}

// ConfigSettingContractBandwidthV0 limits and prices transaction size.
type ConfigSettingContractBandwidthV0 struct {
	LedgerMaxTxsSizeBytes uint32
	TxMaxSizeBytes        uint32
	FeeTxSize1KB          int64
}

// Encode writes a ConfigSettingContractBandwidthV0 in XDR format.
func (csc *ConfigSettingContractBandwidthV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, csc.LedgerMaxTxsSizeBytes)
	xdr.WriteUint32(buf, csc.TxMaxSizeBytes)
	xdr.WriteInt64(buf, csc.FeeTxSize1KB)
	return nil
}

// Decode reads a ConfigSettingContractBandwidthV0 from XDR format.
func (csc *ConfigSettingContractBandwidthV0) Decode(c *xdr.Cursor) error {
	var err error
	if csc.LedgerMaxTxsSizeBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract bandwidth v0 ledger max txs size bytes: %w", err)
	}
	if csc.TxMaxSizeBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting contract bandwidth v0 tx max size bytes: %w", err)
	}
	if csc.FeeTxSize1KB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode config setting contract bandwidth v0 fee tx size 1kb: %w", err)
	}
	return nil
}

// ContractCostType names a metered host operation.
type ContractCostType int32

const (
	ContractCostTypeWasmInsnExec                    ContractCostType = 0
	ContractCostTypeMemAlloc                        ContractCostType = 1
	ContractCostTypeMemCpy                          ContractCostType = 2
	ContractCostTypeMemCmp                          ContractCostType = 3
	ContractCostTypeDispatchHostFunction            ContractCostType = 4
	ContractCostTypeVisitObject                     ContractCostType = 5
	ContractCostTypeValSer                          ContractCostType = 6
	ContractCostTypeValDeser                        ContractCostType = 7
	ContractCostTypeComputeSha256Hash               ContractCostType = 8
	ContractCostTypeComputeEd25519PubKey            ContractCostType = 9
	ContractCostTypeVerifyEd25519Sig                ContractCostType = 10
	ContractCostTypeVmInstantiation                 ContractCostType = 11
	ContractCostTypeVmCachedInstantiation           ContractCostType = 12
	ContractCostTypeInvokeVmFunction                ContractCostType = 13
	ContractCostTypeComputeKeccak256Hash            ContractCostType = 14
	ContractCostTypeDecodeEcdsaCurve256Sig          ContractCostType = 15
	ContractCostTypeRecoverEcdsaSecp256k1Key        ContractCostType = 16
	ContractCostTypeInt256AddSub                    ContractCostType = 17
	ContractCostTypeInt256Mul                       ContractCostType = 18
	ContractCostTypeInt256Div                       ContractCostType = 19
	ContractCostTypeInt256Pow                       ContractCostType = 20
	ContractCostTypeInt256Shift                     ContractCostType = 21
	ContractCostTypeChaCha20DrawBytes               ContractCostType = 22
	ContractCostTypeParseWasmInstructions           ContractCostType = 23
	ContractCostTypeParseWasmFunctions              ContractCostType = 24
	ContractCostTypeParseWasmGlobals                ContractCostType = 25
	ContractCostTypeParseWasmTableEntries           ContractCostType = 26
	ContractCostTypeParseWasmTypes                  ContractCostType = 27
	ContractCostTypeParseWasmDataSegments           ContractCostType = 28
	ContractCostTypeParseWasmElemSegments           ContractCostType = 29
	ContractCostTypeParseWasmImports                ContractCostType = 30
	ContractCostTypeParseWasmExports                ContractCostType = 31
	ContractCostTypeParseWasmDataSegmentBytes       ContractCostType = 32
	ContractCostTypeInstantiateWasmInstructions     ContractCostType = 33
	ContractCostTypeInstantiateWasmFunctions        ContractCostType = 34
	ContractCostTypeInstantiateWasmGlobals          ContractCostType = 35
	ContractCostTypeInstantiateWasmTableEntries     ContractCostType = 36
	ContractCostTypeInstantiateWasmTypes            ContractCostType = 37
	ContractCostTypeInstantiateWasmDataSegments     ContractCostType = 38
	ContractCostTypeInstantiateWasmElemSegments     ContractCostType = 39
	ContractCostTypeInstantiateWasmImports          ContractCostType = 40
	ContractCostTypeInstantiateWasmExports          ContractCostType = 41
	ContractCostTypeInstantiateWasmDataSegmentBytes ContractCostType = 42
	ContractCostTypeSec1DecodePointUncompressed     ContractCostType = 43
	ContractCostTypeVerifyEcdsaSecp256r1Sig         ContractCostType = 44
	ContractCostTypeBls12381EncodeFp                ContractCostType = 45
	ContractCostTypeBls12381DecodeFp                ContractCostType = 46
	ContractCostTypeBls12381G1CheckPointOnCurve     ContractCostType = 47
	ContractCostTypeBls12381G1CheckPointInSubgroup  ContractCostType = 48
	ContractCostTypeBls12381G2CheckPointOnCurve     ContractCostType = 49
	ContractCostTypeBls12381G2CheckPointInSubgroup  ContractCostType = 50
	ContractCostTypeBls12381G1ProjectiveToAffine    ContractCostType = 51
	ContractCostTypeBls12381G2ProjectiveToAffine    ContractCostType = 52
	ContractCostTypeBls12381G1Add                   ContractCostType = 53
	ContractCostTypeBls12381G1Mul                   ContractCostType = 54
	ContractCostTypeBls12381G1Msm                   ContractCostType = 55
	ContractCostTypeBls12381MapFpToG1               ContractCostType = 56
	ContractCostTypeBls12381HashToG1                ContractCostType = 57
	ContractCostTypeBls12381G2Add                   ContractCostType = 58
	ContractCostTypeBls12381G2Mul                   ContractCostType = 59
	ContractCostTypeBls12381G2Msm                   ContractCostType = 60
	ContractCostTypeBls12381MapFp2ToG2              ContractCostType = 61
	ContractCostTypeBls12381HashToG2                ContractCostType = 62
	ContractCostTypeBls12381Pairing                 ContractCostType = 63
	ContractCostTypeBls12381FrFromU256              ContractCostType = 64
	ContractCostTypeBls12381FrToU256                ContractCostType = 65
	ContractCostTypeBls12381FrAddSub                ContractCostType = 66
	ContractCostTypeBls12381FrMul                   ContractCostType = 67
	ContractCostTypeBls12381FrPow                   ContractCostType = 68
	ContractCostTypeBls12381FrInv                   ContractCostType = 69
)

var contractCostTypeNames = map[ContractCostType]string{
	ContractCostTypeWasmInsnExec:                    "WasmInsnExec",
	ContractCostTypeMemAlloc:                        "MemAlloc",
	ContractCostTypeMemCpy:                          "MemCpy",
	ContractCostTypeMemCmp:                          "MemCmp",
	ContractCostTypeDispatchHostFunction:            "DispatchHostFunction",
	ContractCostTypeVisitObject:                     "VisitObject",
	ContractCostTypeValSer:                          "ValSer",
	ContractCostTypeValDeser:                        "ValDeser",
	ContractCostTypeComputeSha256Hash:               "ComputeSha256Hash",
	ContractCostTypeComputeEd25519PubKey:            "ComputeEd25519PubKey",
	ContractCostTypeVerifyEd25519Sig:                "VerifyEd25519Sig",
	ContractCostTypeVmInstantiation:                 "VmInstantiation",
	ContractCostTypeVmCachedInstantiation:           "VmCachedInstantiation",
	ContractCostTypeInvokeVmFunction:                "InvokeVmFunction",
	ContractCostTypeComputeKeccak256Hash:            "ComputeKeccak256Hash",
	ContractCostTypeDecodeEcdsaCurve256Sig:          "DecodeEcdsaCurve256Sig",
	ContractCostTypeRecoverEcdsaSecp256k1Key:        "RecoverEcdsaSecp256k1Key",
	ContractCostTypeInt256AddSub:                    "Int256AddSub",
	ContractCostTypeInt256Mul:                       "Int256Mul",
	ContractCostTypeInt256Div:                       "Int256Div",
	ContractCostTypeInt256Pow:                       "Int256Pow",
	ContractCostTypeInt256Shift:                     "Int256Shift",
	ContractCostTypeChaCha20DrawBytes:               "ChaCha20DrawBytes",
	ContractCostTypeParseWasmInstructions:           "ParseWasmInstructions",
	ContractCostTypeParseWasmFunctions:              "ParseWasmFunctions",
	ContractCostTypeParseWasmGlobals:                "ParseWasmGlobals",
	ContractCostTypeParseWasmTableEntries:           "ParseWasmTableEntries",
	ContractCostTypeParseWasmTypes:                  "ParseWasmTypes",
	ContractCostTypeParseWasmDataSegments:           "ParseWasmDataSegments",
	ContractCostTypeParseWasmElemSegments:           "ParseWasmElemSegments",
	ContractCostTypeParseWasmImports:                "ParseWasmImports",
	ContractCostTypeParseWasmExports:                "ParseWasmExports",
	ContractCostTypeParseWasmDataSegmentBytes:       "ParseWasmDataSegmentBytes",
	ContractCostTypeInstantiateWasmInstructions:     "InstantiateWasmInstructions",
	ContractCostTypeInstantiateWasmFunctions:        "InstantiateWasmFunctions",
	ContractCostTypeInstantiateWasmGlobals:          "InstantiateWasmGlobals",
	ContractCostTypeInstantiateWasmTableEntries:     "InstantiateWasmTableEntries",
	ContractCostTypeInstantiateWasmTypes:            "InstantiateWasmTypes",
	ContractCostTypeInstantiateWasmDataSegments:     "InstantiateWasmDataSegments",
	ContractCostTypeInstantiateWasmElemSegments:     "InstantiateWasmElemSegments",
	ContractCostTypeInstantiateWasmImports:          "InstantiateWasmImports",
	ContractCostTypeInstantiateWasmExports:          "InstantiateWasmExports",
	ContractCostTypeInstantiateWasmDataSegmentBytes: "InstantiateWasmDataSegmentBytes",
	ContractCostTypeSec1DecodePointUncompressed:     "Sec1DecodePointUncompressed",
	ContractCostTypeVerifyEcdsaSecp256r1Sig:         "VerifyEcdsaSecp256r1Sig",
	ContractCostTypeBls12381EncodeFp:                "Bls12381EncodeFp",
	ContractCostTypeBls12381DecodeFp:                "Bls12381DecodeFp",
	ContractCostTypeBls12381G1CheckPointOnCurve:     "Bls12381G1CheckPointOnCurve",
	ContractCostTypeBls12381G1CheckPointInSubgroup:  "Bls12381G1CheckPointInSubgroup",
	ContractCostTypeBls12381G2CheckPointOnCurve:     "Bls12381G2CheckPointOnCurve",
	ContractCostTypeBls12381G2CheckPointInSubgroup:  "Bls12381G2CheckPointInSubgroup",
	ContractCostTypeBls12381G1ProjectiveToAffine:    "Bls12381G1ProjectiveToAffine",
	ContractCostTypeBls12381G2ProjectiveToAffine:    "Bls12381G2ProjectiveToAffine",
	ContractCostTypeBls12381G1Add:                   "Bls12381G1Add",
	ContractCostTypeBls12381G1Mul:                   "Bls12381G1Mul",
	ContractCostTypeBls12381G1Msm:                   "Bls12381G1Msm",
	ContractCostTypeBls12381MapFpToG1:               "Bls12381MapFpToG1",
	ContractCostTypeBls12381HashToG1:                "Bls12381HashToG1",
	ContractCostTypeBls12381G2Add:                   "Bls12381G2Add",
	ContractCostTypeBls12381G2Mul:                   "Bls12381G2Mul",
	ContractCostTypeBls12381G2Msm:                   "Bls12381G2Msm",
	ContractCostTypeBls12381MapFp2ToG2:              "Bls12381MapFp2ToG2",
	ContractCostTypeBls12381HashToG2:                "Bls12381HashToG2",
	ContractCostTypeBls12381Pairing:                 "Bls12381Pairing",
	ContractCostTypeBls12381FrFromU256:              "Bls12381FrFromU256",
	ContractCostTypeBls12381FrToU256:                "Bls12381FrToU256",
	ContractCostTypeBls12381FrAddSub:                "Bls12381FrAddSub",
	ContractCostTypeBls12381FrMul:                   "Bls12381FrMul",
	ContractCostTypeBls12381FrPow:                   "Bls12381FrPow",
	ContractCostTypeBls12381FrInv:                   "Bls12381FrInv",
}

func (v ContractCostType) String() string { return enumString(contractCostTypeNames, v, "ContractCostType") }

// MarshalText renders the protocol name of v.
func (v ContractCostType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ContractCostType) IsKnown() bool {
	_, ok := contractCostTypeNames[v]
	return ok
}

// ContractCostParamEntry is a linear cost model: const + linear*input.
type ContractCostParamEntry struct {
	Ext        ExtensionPoint
	ConstTerm  int64
	LinearTerm int64
}

// Encode writes a ContractCostParamEntry in XDR format.
func (ccp *ContractCostParamEntry) Encode(buf *bytes.Buffer) error {
	if err := ccp.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract cost param entry ext: %w", err)
	}
	xdr.WriteInt64(buf, ccp.ConstTerm)
	xdr.WriteInt64(buf, ccp.LinearTerm)
	return nil
}

// Decode reads a ContractCostParamEntry from XDR format.
func (ccp *ContractCostParamEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = ccp.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract cost param entry ext: %w", err)
	}
	if ccp.ConstTerm, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode contract cost param entry const term: %w", err)
	}
	if ccp.LinearTerm, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode contract cost param entry linear term: %w", err)
	}
	return nil
}

// ContractCostParams holds one cost model per ContractCostType, indexed by type.
type ContractCostParams []ContractCostParamEntry

// Encode writes a ContractCostParams in XDR format.
func (ccp *ContractCostParams) Encode(buf *bytes.Buffer) error {
	return xdr.EncodeArray(buf, []ContractCostParamEntry(*ccp))
}

// Decode reads a ContractCostParams from XDR format.
func (ccp *ContractCostParams) Decode(c *xdr.Cursor) error {
	items, err := xdr.DecodeArray[ContractCostParamEntry](c)
	if err != nil {
		return fmt.Errorf("decode contract cost params: %w", err)
	}
	*ccp = items
	return nil
}

// StateArchivalSettings configures rent and eviction.
type StateArchivalSettings struct {
	MaxEntryTTL                            uint32
	MinTemporaryTTL                        uint32
	MinPersistentTTL                       uint32
	PersistentRentRateDenominator          int64
	TempRentRateDenominator                int64
	MaxEntriesToArchive                    uint32
	LiveSorobanStateSizeWindowSampleSize   uint32
	LiveSorobanStateSizeWindowSamplePeriod uint32
	EvictionScanSize                       uint32
	StartingEvictionScanLevel              uint32
}

// Encode writes a StateArchivalSettings in XDR format.
func (sas *StateArchivalSettings) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, sas.MaxEntryTTL)
	xdr.WriteUint32(buf, sas.MinTemporaryTTL)
	xdr.WriteUint32(buf, sas.MinPersistentTTL)
	xdr.WriteInt64(buf, sas.PersistentRentRateDenominator)
	xdr.WriteInt64(buf, sas.TempRentRateDenominator)
	xdr.WriteUint32(buf, sas.MaxEntriesToArchive)
	xdr.WriteUint32(buf, sas.LiveSorobanStateSizeWindowSampleSize)
	xdr.WriteUint32(buf, sas.LiveSorobanStateSizeWindowSamplePeriod)
	xdr.WriteUint32(buf, sas.EvictionScanSize)
	xdr.WriteUint32(buf, sas.StartingEvictionScanLevel)
	return nil
}

// Decode reads a StateArchivalSettings from XDR format.
func (sas *StateArchivalSettings) Decode(c *xdr.Cursor) error {
	var err error
	if sas.MaxEntryTTL, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings max entry ttl: %w", err)
	}
	if sas.MinTemporaryTTL, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings min temporary ttl: %w", err)
	}
	if sas.MinPersistentTTL, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings min persistent ttl: %w", err)
	}
	if sas.PersistentRentRateDenominator, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode state archival settings persistent rent rate denominator: %w", err)
	}
	if sas.TempRentRateDenominator, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode state archival settings temp rent rate denominator: %w", err)
	}
	if sas.MaxEntriesToArchive, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings max entries to archive: %w", err)
	}
	if sas.LiveSorobanStateSizeWindowSampleSize, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings live soroban state size window sample size: %w", err)
	}
	if sas.LiveSorobanStateSizeWindowSamplePeriod, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings live soroban state size window sample period: %w", err)
	}
	if sas.EvictionScanSize, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings eviction scan size: %w", err)
	}
	if sas.StartingEvictionScanLevel, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode state archival settings starting eviction scan level: %w", err)
	}
	return nil
}

// EvictionIterator is the position of the background eviction scan.
type EvictionIterator struct {
	BucketListLevel  uint32
	IsCurrBucket     bool
	BucketFileOffset uint64
}

// Encode writes an EvictionIterator in XDR format.
func (ei *EvictionIterator) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, ei.BucketListLevel)
	xdr.WriteBool(buf, ei.IsCurrBucket)
	xdr.WriteUint64(buf, ei.BucketFileOffset)
	return nil
}

// Decode reads an EvictionIterator from XDR format.
func (ei *EvictionIterator) Decode(c *xdr.Cursor) error {
	var err error
	if ei.BucketListLevel, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode eviction iterator bucket list level: %w", err)
	}
	if ei.IsCurrBucket, err = xdr.DecodeBool(c); err != nil {
		return fmt.Errorf("decode eviction iterator is curr bucket: %w", err)
	}
	if ei.BucketFileOffset, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode eviction iterator bucket file offset: %w", err)
	}
	return nil
}

// ConfigSettingSCPTiming holds consensus round timeouts in milliseconds.
type ConfigSettingSCPTiming struct {
	LedgerTargetCloseTimeMilliseconds      uint32
	NominationTimeoutInitialMilliseconds   uint32
	NominationTimeoutIncrementMilliseconds uint32
	BallotTimeoutInitialMilliseconds       uint32
	BallotTimeoutIncrementMilliseconds     uint32
}

// Encode writes a ConfigSettingSCPTiming in XDR format.
func (css *ConfigSettingSCPTiming) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, css.LedgerTargetCloseTimeMilliseconds)
	xdr.WriteUint32(buf, css.NominationTimeoutInitialMilliseconds)
	xdr.WriteUint32(buf, css.NominationTimeoutIncrementMilliseconds)
	xdr.WriteUint32(buf, css.BallotTimeoutInitialMilliseconds)
	xdr.WriteUint32(buf, css.BallotTimeoutIncrementMilliseconds)
	return nil
}

// Decode reads a ConfigSettingSCPTiming from XDR format.
func (css *ConfigSettingSCPTiming) Decode(c *xdr.Cursor) error {
	var err error
	if css.LedgerTargetCloseTimeMilliseconds, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting scp timing ledger target close time milliseconds: %w", err)
	}
	if css.NominationTimeoutInitialMilliseconds, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting scp timing nomination timeout initial milliseconds: %w", err)
	}
	if css.NominationTimeoutIncrementMilliseconds, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting scp timing nomination timeout increment milliseconds: %w", err)
	}
	if css.BallotTimeoutInitialMilliseconds, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting scp timing ballot timeout initial milliseconds: %w", err)
	}
	if css.BallotTimeoutIncrementMilliseconds, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode config setting scp timing ballot timeout increment milliseconds: %w", err)
	}
	return nil
}

// ConfigSettingID names a network configuration setting.
type ConfigSettingID int32

const (
	ConfigSettingIDContractMaxSizeBytes              ConfigSettingID = 0
	ConfigSettingIDContractComputeV0                 ConfigSettingID = 1
	ConfigSettingIDContractLedgerCostV0              ConfigSettingID = 2
	ConfigSettingIDContractHistoricalDataV0          ConfigSettingID = 3
	ConfigSettingIDContractEventsV0                  ConfigSettingID = 4
	ConfigSettingIDContractBandwidthV0               ConfigSettingID = 5
	ConfigSettingIDContractCostParamsCpuInstructions ConfigSettingID = 6
	ConfigSettingIDContractCostParamsMemoryBytes     ConfigSettingID = 7
	ConfigSettingIDContractDataKeySizeBytes          ConfigSettingID = 8
	ConfigSettingIDContractDataEntrySizeBytes        ConfigSettingID = 9
	ConfigSettingIDStateArchival                     ConfigSettingID = 10
	ConfigSettingIDContractExecutionLanes            ConfigSettingID = 11
	ConfigSettingIDLiveSorobanStateSizeWindow        ConfigSettingID = 12
	ConfigSettingIDEvictionIterator                  ConfigSettingID = 13
	ConfigSettingIDContractParallelComputeV0         ConfigSettingID = 14
	ConfigSettingIDContractLedgerCostExtV0           ConfigSettingID = 15
	ConfigSettingIDSCPTiming                         ConfigSettingID = 16
)

var configSettingIDNames = map[ConfigSettingID]string{
	ConfigSettingIDContractMaxSizeBytes:              "CONFIG_SETTING_CONTRACT_MAX_SIZE_BYTES",
	ConfigSettingIDContractComputeV0:                 "CONFIG_SETTING_CONTRACT_COMPUTE_V0",
	ConfigSettingIDContractLedgerCostV0:              "CONFIG_SETTING_CONTRACT_LEDGER_COST_V0",
	ConfigSettingIDContractHistoricalDataV0:          "CONFIG_SETTING_CONTRACT_HISTORICAL_DATA_V0",
	ConfigSettingIDContractEventsV0:                  "CONFIG_SETTING_CONTRACT_EVENTS_V0",
	ConfigSettingIDContractBandwidthV0:               "CONFIG_SETTING_CONTRACT_BANDWIDTH_V0",
	ConfigSettingIDContractCostParamsCpuInstructions: "CONFIG_SETTING_CONTRACT_COST_PARAMS_CPU_INSTRUCTIONS",
	ConfigSettingIDContractCostParamsMemoryBytes:     "CONFIG_SETTING_CONTRACT_COST_PARAMS_MEMORY_BYTES",
	ConfigSettingIDContractDataKeySizeBytes:          "CONFIG_SETTING_CONTRACT_DATA_KEY_SIZE_BYTES",
	ConfigSettingIDContractDataEntrySizeBytes:        "CONFIG_SETTING_CONTRACT_DATA_ENTRY_SIZE_BYTES",
	ConfigSettingIDStateArchival:                     "CONFIG_SETTING_STATE_ARCHIVAL",
	ConfigSettingIDContractExecutionLanes:            "CONFIG_SETTING_CONTRACT_EXECUTION_LANES",
	ConfigSettingIDLiveSorobanStateSizeWindow:        "CONFIG_SETTING_LIVE_SOROBAN_STATE_SIZE_WINDOW",
	ConfigSettingIDEvictionIterator:                  "CONFIG_SETTING_EVICTION_ITERATOR",
	ConfigSettingIDContractParallelComputeV0:         "CONFIG_SETTING_CONTRACT_PARALLEL_COMPUTE_V0",
	ConfigSettingIDContractLedgerCostExtV0:           "CONFIG_SETTING_CONTRACT_LEDGER_COST_EXT_V0",
	ConfigSettingIDSCPTiming:                         "CONFIG_SETTING_SCP_TIMING",
}

func (v ConfigSettingID) String() string { return enumString(configSettingIDNames, v, "ConfigSettingID") }

// MarshalText renders the protocol name of v.
func (v ConfigSettingID) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ConfigSettingID) IsKnown() bool {
	_, ok := configSettingIDNames[v]
	return ok
}

// ConfigSettingEntry is the value of one network configuration setting.
type ConfigSettingEntry struct {
	ConfigSettingID            ConfigSettingID
	ContractMaxSizeBytes       *uint32
	ContractCompute            *ConfigSettingContractComputeV0
	ContractLedgerCost         *ConfigSettingContractLedgerCostV0
	ContractHistoricalData     *ConfigSettingContractHistoricalDataV0
	ContractEvents             *ConfigSettingContractEventsV0
	ContractBandwidth          *ConfigSettingContractBandwidthV0
	ContractCostParamsCPUInsns *ContractCostParams
	ContractCostParamsMemBytes *ContractCostParams
	ContractDataKeySizeBytes   *uint32
	ContractDataEntrySizeBytes *uint32
	StateArchivalSettings      *StateArchivalSettings
	ContractExecutionLanes     *ConfigSettingContractExecutionLanesV0
	LiveSorobanStateSizeWindow *[]uint64
	EvictionIterator           *EvictionIterator
	ContractParallelCompute    *ConfigSettingContractParallelComputeV0
	ContractLedgerCostExt      *ConfigSettingContractLedgerCostExtV0
	ContractSCPTiming          *ConfigSettingSCPTiming
}

// Encode writes a ConfigSettingEntry in XDR format.
func (cse *ConfigSettingEntry) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cse.ConfigSettingID)
	switch cse.ConfigSettingID {
	case ConfigSettingIDContractMaxSizeBytes:
		return xdr.EncodeArmFunc(buf, cse.ContractMaxSizeBytes, xdr.WriteUint32, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractComputeV0:
		return xdr.EncodeArm(buf, cse.ContractCompute, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractLedgerCostV0:
		return xdr.EncodeArm(buf, cse.ContractLedgerCost, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractHistoricalDataV0:
		return xdr.EncodeArm(buf, cse.ContractHistoricalData, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractEventsV0:
		return xdr.EncodeArm(buf, cse.ContractEvents, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractBandwidthV0:
		return xdr.EncodeArm(buf, cse.ContractBandwidth, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractCostParamsCpuInstructions:
		return xdr.EncodeArm(buf, cse.ContractCostParamsCPUInsns, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractCostParamsMemoryBytes:
		return xdr.EncodeArm(buf, cse.ContractCostParamsMemBytes, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractDataKeySizeBytes:
		return xdr.EncodeArmFunc(buf, cse.ContractDataKeySizeBytes, xdr.WriteUint32, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractDataEntrySizeBytes:
		return xdr.EncodeArmFunc(buf, cse.ContractDataEntrySizeBytes, xdr.WriteUint32, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDStateArchival:
		return xdr.EncodeArm(buf, cse.StateArchivalSettings, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractExecutionLanes:
		return xdr.EncodeArm(buf, cse.ContractExecutionLanes, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDLiveSorobanStateSizeWindow:
		if cse.LiveSorobanStateSizeWindow == nil {
			return xdr.UnionArmError("ConfigSettingEntry", cse.ConfigSettingID)
		}
		xdr.EncodeArrayFunc(buf, *cse.LiveSorobanStateSizeWindow, xdr.WriteUint64)
	case ConfigSettingIDEvictionIterator:
		return xdr.EncodeArm(buf, cse.EvictionIterator, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractParallelComputeV0:
		return xdr.EncodeArm(buf, cse.ContractParallelCompute, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDContractLedgerCostExtV0:
		return xdr.EncodeArm(buf, cse.ContractLedgerCostExt, "ConfigSettingEntry", cse.ConfigSettingID)
	case ConfigSettingIDSCPTiming:
		return xdr.EncodeArm(buf, cse.ContractSCPTiming, "ConfigSettingEntry", cse.ConfigSettingID)
	}
	return nil
}

// Decode reads a ConfigSettingEntry from XDR format.
func (cse *ConfigSettingEntry) Decode(c *xdr.Cursor) error {
	*cse = ConfigSettingEntry{}
	var err error
	if cse.ConfigSettingID, err = xdr.DecodeUnionDiscriminant[ConfigSettingID](c); err != nil {
		return fmt.Errorf("decode config setting entry config setting id: %w", err)
	}
	switch cse.ConfigSettingID {
	case ConfigSettingIDContractMaxSizeBytes:
		cse.ContractMaxSizeBytes, err = xdr.DecodeArmFunc(c, xdr.DecodeUint32)
	case ConfigSettingIDContractComputeV0:
		cse.ContractCompute, err = xdr.DecodeArm[ConfigSettingContractComputeV0](c)
	case ConfigSettingIDContractLedgerCostV0:
		cse.ContractLedgerCost, err = xdr.DecodeArm[ConfigSettingContractLedgerCostV0](c)
	case ConfigSettingIDContractHistoricalDataV0:
		cse.ContractHistoricalData, err = xdr.DecodeArm[ConfigSettingContractHistoricalDataV0](c)
	case ConfigSettingIDContractEventsV0:
		cse.ContractEvents, err = xdr.DecodeArm[ConfigSettingContractEventsV0](c)
	case ConfigSettingIDContractBandwidthV0:
		cse.ContractBandwidth, err = xdr.DecodeArm[ConfigSettingContractBandwidthV0](c)
	case ConfigSettingIDContractCostParamsCpuInstructions:
		cse.ContractCostParamsCPUInsns, err = xdr.DecodeArm[ContractCostParams](c)
	case ConfigSettingIDContractCostParamsMemoryBytes:
		cse.ContractCostParamsMemBytes, err = xdr.DecodeArm[ContractCostParams](c)
	case ConfigSettingIDContractDataKeySizeBytes:
		cse.ContractDataKeySizeBytes, err = xdr.DecodeArmFunc(c, xdr.DecodeUint32)
	case ConfigSettingIDContractDataEntrySizeBytes:
		cse.ContractDataEntrySizeBytes, err = xdr.DecodeArmFunc(c, xdr.DecodeUint32)
	case ConfigSettingIDStateArchival:
		cse.StateArchivalSettings, err = xdr.DecodeArm[StateArchivalSettings](c)
	case ConfigSettingIDContractExecutionLanes:
		cse.ContractExecutionLanes, err = xdr.DecodeArm[ConfigSettingContractExecutionLanesV0](c)
	case ConfigSettingIDLiveSorobanStateSizeWindow:
		var items []uint64
		if items, err = xdr.DecodeArrayFunc(c, xdr.DecodeUint64); err == nil {
			cse.LiveSorobanStateSizeWindow = &items
		}
	case ConfigSettingIDEvictionIterator:
		cse.EvictionIterator, err = xdr.DecodeArm[EvictionIterator](c)
	case ConfigSettingIDContractParallelComputeV0:
		cse.ContractParallelCompute, err = xdr.DecodeArm[ConfigSettingContractParallelComputeV0](c)
	case ConfigSettingIDContractLedgerCostExtV0:
		cse.ContractLedgerCostExt, err = xdr.DecodeArm[ConfigSettingContractLedgerCostExtV0](c)
	case ConfigSettingIDSCPTiming:
		cse.ContractSCPTiming, err = xdr.DecodeArm[ConfigSettingSCPTiming](c)
	}
	if err != nil {
		return fmt.Errorf("decode config setting entry %v: %w", cse.ConfigSettingID, err)
	}
	return nil
}
