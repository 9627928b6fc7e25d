package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// TrustLineFlags are the bits of TrustLineEntry.Flags.
type TrustLineFlags int32

const (
	TrustLineFlagsAuthorized                      TrustLineFlags = 1
	TrustLineFlagsAuthorizedToMaintainLiabilities TrustLineFlags = 2
	TrustLineFlagsClawbackEnabled                 TrustLineFlags = 4
)

var trustLineFlagsNames = map[TrustLineFlags]string{
	TrustLineFlagsAuthorized:                      "AUTHORIZED_FLAG",
	TrustLineFlagsAuthorizedToMaintainLiabilities: "AUTHORIZED_TO_MAINTAIN_LIABILITIES_FLAG",
	TrustLineFlagsClawbackEnabled:                 "TRUSTLINE_CLAWBACK_ENABLED_FLAG",
}

func (v TrustLineFlags) String() string { return enumString(trustLineFlagsNames, v, "TrustLineFlags") }

// MarshalText renders the protocol name of v.
func (v TrustLineFlags) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v TrustLineFlags) IsKnown() bool {
	_, ok := trustLineFlagsNames[v]
	return ok
}

// TrustLineEntryExtensionV2 counts the liquidity pools using the trust line.
type TrustLineEntryExtensionV2 struct {
	LiquidityPoolUseCount int32
	Ext                   ExtensionPoint
}

// Encode writes a TrustLineEntryExtensionV2 in XDR format.
func (tle *TrustLineEntryExtensionV2) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt32(buf, tle.LiquidityPoolUseCount)
	if err := tle.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry extension v2 ext: %w", err)
	}
	return nil
}

// Decode reads a TrustLineEntryExtensionV2 from XDR format.
func (tle *TrustLineEntryExtensionV2) Decode(c *xdr.Cursor) error {
	var err error
	if tle.LiquidityPoolUseCount, err = xdr.DecodeInt32(c); err != nil {
		return fmt.Errorf("decode trust line entry extension v2 liquidity pool use count: %w", err)
	}
	if err = tle.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry extension v2 ext: %w", err)
	}
	return nil
}

// TrustLineEntryV1Ext is the versioned extension of TrustLineEntryV1.
type TrustLineEntryV1Ext struct {
	V  int32
	V2 *TrustLineEntryExtensionV2
}

// Encode writes a TrustLineEntryV1Ext in XDR format.
func (tle *TrustLineEntryV1Ext) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, tle.V)
	switch tle.V {
	case 2:
		return xdr.EncodeArm(buf, tle.V2, "TrustLineEntryV1Ext", tle.V)
	}
	return nil
}

// Decode reads a TrustLineEntryV1Ext from XDR format.
func (tle *TrustLineEntryV1Ext) Decode(c *xdr.Cursor) error {
	*tle = TrustLineEntryV1Ext{}
	var err error
	if tle.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode trust line entry v1 ext v: %w", err)
	}
	switch tle.V {
	case 2:
		tle.V2, err = xdr.DecodeArm[TrustLineEntryExtensionV2](c)
	}
	if err != nil {
		return fmt.Errorf("decode trust line entry v1 ext %v: %w", tle.V, err)
	}
	return nil
}

// TrustLineEntryV1 adds liabilities to a trust line.
type TrustLineEntryV1 struct {
	Liabilities Liabilities
	Ext         TrustLineEntryV1Ext
}

// Encode writes a TrustLineEntryV1 in XDR format.
func (tle *TrustLineEntryV1) Encode(buf *bytes.Buffer) error {
	if err := tle.Liabilities.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry v1 liabilities: %w", err)
	}
	if err := tle.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry v1 ext: %w", err)
	}
	return nil
}

// Decode reads a TrustLineEntryV1 from XDR format.
func (tle *TrustLineEntryV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = tle.Liabilities.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry v1 liabilities: %w", err)
	}
	if err = tle.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry v1 ext: %w", err)
	}
	return nil
}

// TrustLineEntryExt is the versioned extension of TrustLineEntry.
type TrustLineEntryExt struct {
	V  int32
	V1 *TrustLineEntryV1
}

// Encode writes a TrustLineEntryExt in XDR format.
func (tle *TrustLineEntryExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, tle.V)
	switch tle.V {
	case 1:
		return xdr.EncodeArm(buf, tle.V1, "TrustLineEntryExt", tle.V)
	}
	return nil
}

// Decode reads a TrustLineEntryExt from XDR format.
func (tle *TrustLineEntryExt) Decode(c *xdr.Cursor) error {
	*tle = TrustLineEntryExt{}
	var err error
	if tle.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode trust line entry ext v: %w", err)
	}
	switch tle.V {
	case 1:
		tle.V1, err = xdr.DecodeArm[TrustLineEntryV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode trust line entry ext %v: %w", tle.V, err)
	}
	return nil
}

// TrustLineEntry is an account's holding of a non-native asset.
type TrustLineEntry struct {
	AccountID AccountID
	Asset     TrustLineAsset
	Balance   int64
	Limit     int64
	Flags     uint32
	Ext       TrustLineEntryExt
}

// Encode writes a TrustLineEntry in XDR format.
func (tle *TrustLineEntry) Encode(buf *bytes.Buffer) error {
	if err := tle.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry account id: %w", err)
	}
	if err := tle.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry asset: %w", err)
	}
	xdr.WriteInt64(buf, tle.Balance)
	xdr.WriteInt64(buf, tle.Limit)
	xdr.WriteUint32(buf, tle.Flags)
	if err := tle.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode trust line entry ext: %w", err)
	}
	return nil
}

// Decode reads a TrustLineEntry from XDR format.
func (tle *TrustLineEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = tle.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry account id: %w", err)
	}
	if err = tle.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry asset: %w", err)
	}
	if tle.Balance, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode trust line entry balance: %w", err)
	}
	if tle.Limit, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode trust line entry limit: %w", err)
	}
	if tle.Flags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode trust line entry flags: %w", err)
	}
	if err = tle.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode trust line entry ext: %w", err)
	}
	return nil
}
