package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// LedgerFootprint lists the ledger keys a Soroban transaction may touch.
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

// Encode writes a LedgerFootprint in XDR format.
func (lf *LedgerFootprint) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, lf.ReadOnly); err != nil {
		return fmt.Errorf("encode ledger footprint read only: %w", err)
	}
	if err := xdr.EncodeArray(buf, lf.ReadWrite); err != nil {
		return fmt.Errorf("encode ledger footprint read write: %w", err)
	}
	return nil
}

// Decode reads a LedgerFootprint from XDR format.
func (lf *LedgerFootprint) Decode(c *xdr.Cursor) error {
	var err error
	if lf.ReadOnly, err = xdr.DecodeArray[LedgerKey](c); err != nil {
		return fmt.Errorf("decode ledger footprint read only: %w", err)
	}
	if lf.ReadWrite, err = xdr.DecodeArray[LedgerKey](c); err != nil {
		return fmt.Errorf("decode ledger footprint read write: %w", err)
	}
	return nil
}

// SorobanResources declares the footprint and the instruction and byte
// limits of a Soroban transaction.
type SorobanResources struct {
	Footprint     LedgerFootprint
	Instructions  uint32
	DiskReadBytes uint32
	WriteBytes    uint32
}

// Encode writes a SorobanResources in XDR format.
func (sr *SorobanResources) Encode(buf *bytes.Buffer) error {
	if err := sr.Footprint.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban resources footprint: %w", err)
	}
	xdr.WriteUint32(buf, sr.Instructions)
	xdr.WriteUint32(buf, sr.DiskReadBytes)
	xdr.WriteUint32(buf, sr.WriteBytes)
	return nil
}

// Decode reads a SorobanResources from XDR format.
func (sr *SorobanResources) Decode(c *xdr.Cursor) error {
	var err error
	if err = sr.Footprint.Decode(c); err != nil {
		return fmt.Errorf("decode soroban resources footprint: %w", err)
	}
	if sr.Instructions, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode soroban resources instructions: %w", err)
	}
	if sr.DiskReadBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode soroban resources disk read bytes: %w", err)
	}
	if sr.WriteBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode soroban resources write bytes: %w", err)
	}
	return nil
}

// SorobanResourcesExtV0 lists archived footprint entries to restore.
type SorobanResourcesExtV0 struct {
	ArchivedSorobanEntries []uint32 // indexes into Footprint.ReadWrite
}

// Encode writes a SorobanResourcesExtV0 in XDR format.
func (sre *SorobanResourcesExtV0) Encode(buf *bytes.Buffer) error {
	xdr.EncodeArrayFunc(buf, sre.ArchivedSorobanEntries, xdr.WriteUint32)
	return nil
}

// Decode reads a SorobanResourcesExtV0 from XDR format.
func (sre *SorobanResourcesExtV0) Decode(c *xdr.Cursor) error {
	var err error
	if sre.ArchivedSorobanEntries, err = xdr.DecodeArrayFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode soroban resources ext v0 archived soroban entries: %w", err)
	}
	return nil
}

// SorobanTransactionDataExt is the versioned extension of SorobanTransactionData.
type SorobanTransactionDataExt struct {
	V           int32
	ResourceExt *SorobanResourcesExtV0
}

// Encode writes a SorobanTransactionDataExt in XDR format.
func (std *SorobanTransactionDataExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, std.V)
	switch std.V {
	case 1:
		return xdr.EncodeArm(buf, std.ResourceExt, "SorobanTransactionDataExt", std.V)
	}
	return nil
}

// Decode reads a SorobanTransactionDataExt from XDR format.
func (std *SorobanTransactionDataExt) Decode(c *xdr.Cursor) error {
	*std = SorobanTransactionDataExt{}
	var err error
	if std.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode soroban transaction data ext v: %w", err)
	}
	switch std.V {
	case 1:
		std.ResourceExt, err = xdr.DecodeArm[SorobanResourcesExtV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode soroban transaction data ext %v: %w", std.V, err)
	}
	return nil
}

// SorobanTransactionData declares the resources and fee of a Soroban transaction.
type SorobanTransactionData struct {
	Ext         SorobanTransactionDataExt
	Resources   SorobanResources
	ResourceFee int64
}

// Encode writes a SorobanTransactionData in XDR format.
func (std *SorobanTransactionData) Encode(buf *bytes.Buffer) error {
	if err := std.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction data ext: %w", err)
	}
	if err := std.Resources.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban transaction data resources: %w", err)
	}
	xdr.WriteInt64(buf, std.ResourceFee)
	return nil
}

// Decode reads a SorobanTransactionData from XDR format.
func (std *SorobanTransactionData) Decode(c *xdr.Cursor) error {
	var err error
	if err = std.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction data ext: %w", err)
	}
	if err = std.Resources.Decode(c); err != nil {
		return fmt.Errorf("decode soroban transaction data resources: %w", err)
	}
	if std.ResourceFee, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode soroban transaction data resource fee: %w", err)
	}
	return nil
}
