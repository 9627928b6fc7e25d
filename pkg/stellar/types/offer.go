package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// OfferEntryFlags enumerates offer entry flags values.
type OfferEntryFlags int32

const (
	OfferEntryFlagsPassive OfferEntryFlags = 1
)

var offerEntryFlagsNames = map[OfferEntryFlags]string{
	OfferEntryFlagsPassive: "PASSIVE_FLAG",
}

func (v OfferEntryFlags) String() string { return enumString(offerEntryFlagsNames, v, "OfferEntryFlags") }

// MarshalText renders the protocol name of v.
func (v OfferEntryFlags) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v OfferEntryFlags) IsKnown() bool {
	_, ok := offerEntryFlagsNames[v]
	return ok
}

// OfferEntry is an order on the decentralized exchange.
type OfferEntry struct {
	SellerID AccountID
	OfferID  int64
	Selling  Asset
	Buying   Asset
	Amount   int64
	Price    Price
	Flags    uint32
	Ext      ExtensionPoint
}

// Encode writes an OfferEntry in XDR format.
func (oe *OfferEntry) Encode(buf *bytes.Buffer) error {
	if err := oe.SellerID.Encode(buf); err != nil {
		return fmt.Errorf("encode offer entry seller id: %w", err)
	}
	xdr.WriteInt64(buf, oe.OfferID)
	if err := oe.Selling.Encode(buf); err != nil {
		return fmt.Errorf("encode offer entry selling: %w", err)
	}
	if err := oe.Buying.Encode(buf); err != nil {
		return fmt.Errorf("encode offer entry buying: %w", err)
	}
	xdr.WriteInt64(buf, oe.Amount)
	if err := oe.Price.Encode(buf); err != nil {
		return fmt.Errorf("encode offer entry price: %w", err)
	}
	xdr.WriteUint32(buf, oe.Flags)
	if err := oe.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode offer entry ext: %w", err)
	}
	return nil
}

// Decode reads an OfferEntry from XDR format.
func (oe *OfferEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = oe.SellerID.Decode(c); err != nil {
		return fmt.Errorf("decode offer entry seller id: %w", err)
	}
	if oe.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode offer entry offer id: %w", err)
	}
	if err = oe.Selling.Decode(c); err != nil {
		return fmt.Errorf("decode offer entry selling: %w", err)
	}
	if err = oe.Buying.Decode(c); err != nil {
		return fmt.Errorf("decode offer entry buying: %w", err)
	}
	if oe.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode offer entry amount: %w", err)
	}
	if err = oe.Price.Decode(c); err != nil {
		return fmt.Errorf("decode offer entry price: %w", err)
	}
	if oe.Flags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode offer entry flags: %w", err)
	}
	if err = oe.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode offer entry ext: %w", err)
	}
	return nil
}

// DataEntry is a named value attached to an account.
type DataEntry struct {
	AccountID AccountID
	DataName  String64
	DataValue DataValue
	Ext       ExtensionPoint
}

// Encode writes a DataEntry in XDR format.
func (de *DataEntry) Encode(buf *bytes.Buffer) error {
	if err := de.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode data entry account id: %w", err)
	}
	if err := de.DataName.Encode(buf); err != nil {
		return fmt.Errorf("encode data entry data name: %w", err)
	}
	if err := de.DataValue.Encode(buf); err != nil {
		return fmt.Errorf("encode data entry data value: %w", err)
	}
	if err := de.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode data entry ext: %w", err)
	}
	return nil
}

// Decode reads a DataEntry from XDR format.
func (de *DataEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = de.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode data entry account id: %w", err)
	}
	if err = de.DataName.Decode(c); err != nil {
		return fmt.Errorf("decode data entry data name: %w", err)
	}
	if err = de.DataValue.Decode(c); err != nil {
		return fmt.Errorf("decode data entry data value: %w", err)
	}
	if err = de.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode data entry ext: %w", err)
	}
	return nil
}
