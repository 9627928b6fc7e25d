package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ContractDataDurability selects the storage class of contract data.
type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

var contractDataDurabilityNames = map[ContractDataDurability]string{
	ContractDataDurabilityTemporary:  "TEMPORARY",
	ContractDataDurabilityPersistent: "PERSISTENT",
}

func (v ContractDataDurability) String() string { return enumString(contractDataDurabilityNames, v, "ContractDataDurability") }

// MarshalText renders the protocol name of v.
func (v ContractDataDurability) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ContractDataDurability) IsKnown() bool {
	_, ok := contractDataDurabilityNames[v]
	return ok
}

// ContractDataEntry is one key/value pair of contract storage.
type ContractDataEntry struct {
	Ext        ExtensionPoint
	Contract   SCAddress
	Key        SCVal
	Durability ContractDataDurability
	Val        SCVal
}

// Encode writes a ContractDataEntry in XDR format.
func (cde *ContractDataEntry) Encode(buf *bytes.Buffer) error {
	if err := cde.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract data entry ext: %w", err)
	}
	if err := cde.Contract.Encode(buf); err != nil {
		return fmt.Errorf("encode contract data entry contract: %w", err)
	}
	if err := cde.Key.Encode(buf); err != nil {
		return fmt.Errorf("encode contract data entry key: %w", err)
	}
	xdr.WriteEnum(buf, cde.Durability)
	if err := cde.Val.Encode(buf); err != nil {
		return fmt.Errorf("encode contract data entry val: %w", err)
	}
	return nil
}

// Decode reads a ContractDataEntry from XDR format.
func (cde *ContractDataEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = cde.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract data entry ext: %w", err)
	}
	if err = cde.Contract.Decode(c); err != nil {
		return fmt.Errorf("decode contract data entry contract: %w", err)
	}
	if err = cde.Key.Decode(c); err != nil {
		return fmt.Errorf("decode contract data entry key: %w", err)
	}
	if cde.Durability, err = xdr.DecodeEnum[ContractDataDurability](c); err != nil {
		return fmt.Errorf("decode contract data entry durability: %w", err)
	}
	if err = cde.Val.Decode(c); err != nil {
		return fmt.Errorf("decode contract data entry val: %w", err)
	}
	return nil
}

// ContractCodeCostInputs are the Wasm module statistics used to price instantiation.
type ContractCodeCostInputs struct {
	Ext               ExtensionPoint
	NInstructions     uint32
	NFunctions        uint32
	NGlobals          uint32
	NTableEntries     uint32
	NTypes            uint32
	NDataSegments     uint32
	NElemSegments     uint32
	NImports          uint32
	NExports          uint32
	NDataSegmentBytes uint32
}

// Encode writes a ContractCodeCostInputs in XDR format.
func (ccc *ContractCodeCostInputs) Encode(buf *bytes.Buffer) error {
	if err := ccc.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract code cost inputs ext: %w", err)
	}
	xdr.WriteUint32(buf, ccc.NInstructions)
	xdr.WriteUint32(buf, ccc.NFunctions)
	xdr.WriteUint32(buf, ccc.NGlobals)
	xdr.WriteUint32(buf, ccc.NTableEntries)
	xdr.WriteUint32(buf, ccc.NTypes)
	xdr.WriteUint32(buf, ccc.NDataSegments)
	xdr.WriteUint32(buf, ccc.NElemSegments)
	xdr.WriteUint32(buf, ccc.NImports)
	xdr.WriteUint32(buf, ccc.NExports)
	xdr.WriteUint32(buf, ccc.NDataSegmentBytes)
	return nil
}

// Decode reads a ContractCodeCostInputs from XDR format.
func (ccc *ContractCodeCostInputs) Decode(c *xdr.Cursor) error {
	var err error
	if err = ccc.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs ext: %w", err)
	}
	if ccc.NInstructions, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n instructions: %w", err)
	}
	if ccc.NFunctions, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n functions: %w", err)
	}
	if ccc.NGlobals, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n globals: %w", err)
	}
	if ccc.NTableEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n table entries: %w", err)
	}
	if ccc.NTypes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n types: %w", err)
	}
	if ccc.NDataSegments, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n data segments: %w", err)
	}
	if ccc.NElemSegments, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n elem segments: %w", err)
	}
	if ccc.NImports, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n imports: %w", err)
	}
	if ccc.NExports, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n exports: %w", err)
	}
	if ccc.NDataSegmentBytes, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode contract code cost inputs n data segment bytes: %w", err)
	}
	return nil
}

// ContractCodeEntryV1 adds parsed cost inputs to a code entry.
type ContractCodeEntryV1 struct {
	Ext        ExtensionPoint
	CostInputs ContractCodeCostInputs
}

// Encode writes a ContractCodeEntryV1 in XDR format.
func (cce *ContractCodeEntryV1) Encode(buf *bytes.Buffer) error {
	if err := cce.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract code entry v1 ext: %w", err)
	}
	if err := cce.CostInputs.Encode(buf); err != nil {
		return fmt.Errorf("encode contract code entry v1 cost inputs: %w", err)
	}
	return nil
}

// Decode reads a ContractCodeEntryV1 from XDR format.
func (cce *ContractCodeEntryV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = cce.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract code entry v1 ext: %w", err)
	}
	if err = cce.CostInputs.Decode(c); err != nil {
		return fmt.Errorf("decode contract code entry v1 cost inputs: %w", err)
	}
	return nil
}

// ContractCodeEntryExt is the versioned extension of ContractCodeEntry.
type ContractCodeEntryExt struct {
	V  int32
	V1 *ContractCodeEntryV1
}

// Encode writes a ContractCodeEntryExt in XDR format.
func (cce *ContractCodeEntryExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cce.V)
	switch cce.V {
	case 1:
		return xdr.EncodeArm(buf, cce.V1, "ContractCodeEntryExt", cce.V)
	}
	return nil
}

// Decode reads a ContractCodeEntryExt from XDR format.
func (cce *ContractCodeEntryExt) Decode(c *xdr.Cursor) error {
	*cce = ContractCodeEntryExt{}
	var err error
	if cce.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode contract code entry ext v: %w", err)
	}
	switch cce.V {
	case 1:
		cce.V1, err = xdr.DecodeArm[ContractCodeEntryV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode contract code entry ext %v: %w", cce.V, err)
	}
	return nil
}

// ContractCodeEntry stores uploaded Wasm by its hash.
type ContractCodeEntry struct {
	Ext  ContractCodeEntryExt
	Hash Hash
	Code []byte
}

// Encode writes a ContractCodeEntry in XDR format.
func (cce *ContractCodeEntry) Encode(buf *bytes.Buffer) error {
	if err := cce.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode contract code entry ext: %w", err)
	}
	if err := cce.Hash.Encode(buf); err != nil {
		return fmt.Errorf("encode contract code entry hash: %w", err)
	}
	xdr.WriteOpaque(buf, cce.Code)
	return nil
}

// Decode reads a ContractCodeEntry from XDR format.
func (cce *ContractCodeEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = cce.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode contract code entry ext: %w", err)
	}
	if err = cce.Hash.Decode(c); err != nil {
		return fmt.Errorf("decode contract code entry hash: %w", err)
	}
	if cce.Code, err = xdr.DecodeOpaque(c); err != nil {
		return fmt.Errorf("decode contract code entry code: %w", err)
	}
	return nil
}

// TTLEntry records how long a Soroban entry stays live.
type TTLEntry struct {
	KeyHash            Hash
	LiveUntilLedgerSeq uint32
}

// Encode writes an TTLEntry in XDR format.
func (ttl *TTLEntry) Encode(buf *bytes.Buffer) error {
	if err := ttl.KeyHash.Encode(buf); err != nil {
		return fmt.Errorf("encode ttl entry key hash: %w", err)
	}
	xdr.WriteUint32(buf, ttl.LiveUntilLedgerSeq)
	return nil
}

// Decode reads an TTLEntry from XDR format.
func (ttl *TTLEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = ttl.KeyHash.Decode(c); err != nil {
		return fmt.Errorf("decode ttl entry key hash: %w", err)
	}
	if ttl.LiveUntilLedgerSeq, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode ttl entry live until ledger seq: %w", err)
	}
	return nil
}
