package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ClaimAtomType enumerates claim atom type values.
type ClaimAtomType int32

const (
	ClaimAtomTypeV0            ClaimAtomType = 0
	ClaimAtomTypeOrderBook     ClaimAtomType = 1
	ClaimAtomTypeLiquidityPool ClaimAtomType = 2
)

var claimAtomTypeNames = map[ClaimAtomType]string{
	ClaimAtomTypeV0:            "CLAIM_ATOM_TYPE_V0",
	ClaimAtomTypeOrderBook:     "CLAIM_ATOM_TYPE_ORDER_BOOK",
	ClaimAtomTypeLiquidityPool: "CLAIM_ATOM_TYPE_LIQUIDITY_POOL",
}

func (v ClaimAtomType) String() string { return enumString(claimAtomTypeNames, v, "ClaimAtomType") }

// MarshalText renders the protocol name of v.
func (v ClaimAtomType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimAtomType) IsKnown() bool {
	_, ok := claimAtomTypeNames[v]
	return ok
}

// ClaimOfferAtomV0 is ClaimOfferAtom for offers made by a raw Ed25519 seller.
type ClaimOfferAtomV0 struct {
	SellerEd25519 Uint256
	OfferID       int64
	AssetSold     Asset
	AmountSold    int64
	AssetBought   Asset
	AmountBought  int64
}

// Encode writes a ClaimOfferAtomV0 in XDR format.
func (coa *ClaimOfferAtomV0) Encode(buf *bytes.Buffer) error {
	if err := coa.SellerEd25519.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom v0 seller ed25519: %w", err)
	}
	xdr.WriteInt64(buf, coa.OfferID)
	if err := coa.AssetSold.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom v0 asset sold: %w", err)
	}
	xdr.WriteInt64(buf, coa.AmountSold)
	if err := coa.AssetBought.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom v0 asset bought: %w", err)
	}
	xdr.WriteInt64(buf, coa.AmountBought)
	return nil
}

// Decode reads a ClaimOfferAtomV0 from XDR format.
func (coa *ClaimOfferAtomV0) Decode(c *xdr.Cursor) error {
	var err error
	if err = coa.SellerEd25519.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 seller ed25519: %w", err)
	}
	if coa.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 offer id: %w", err)
	}
	if err = coa.AssetSold.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 asset sold: %w", err)
	}
	if coa.AmountSold, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 amount sold: %w", err)
	}
	if err = coa.AssetBought.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 asset bought: %w", err)
	}
	if coa.AmountBought, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom v0 amount bought: %w", err)
	}
	return nil
}

// ClaimOfferAtom records a trade against an order book offer.
type ClaimOfferAtom struct {
	SellerID     AccountID
	OfferID      int64
	AssetSold    Asset
	AmountSold   int64
	AssetBought  Asset
	AmountBought int64
}

// Encode writes a ClaimOfferAtom in XDR format.
func (coa *ClaimOfferAtom) Encode(buf *bytes.Buffer) error {
	if err := coa.SellerID.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom seller id: %w", err)
	}
	xdr.WriteInt64(buf, coa.OfferID)
	if err := coa.AssetSold.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom asset sold: %w", err)
	}
	xdr.WriteInt64(buf, coa.AmountSold)
	if err := coa.AssetBought.Encode(buf); err != nil {
		return fmt.Errorf("encode claim offer atom asset bought: %w", err)
	}
	xdr.WriteInt64(buf, coa.AmountBought)
	return nil
}

// Decode reads a ClaimOfferAtom from XDR format.
func (coa *ClaimOfferAtom) Decode(c *xdr.Cursor) error {
	var err error
	if err = coa.SellerID.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom seller id: %w", err)
	}
	if coa.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom offer id: %w", err)
	}
	if err = coa.AssetSold.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom asset sold: %w", err)
	}
	if coa.AmountSold, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom amount sold: %w", err)
	}
	if err = coa.AssetBought.Decode(c); err != nil {
		return fmt.Errorf("decode claim offer atom asset bought: %w", err)
	}
	if coa.AmountBought, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim offer atom amount bought: %w", err)
	}
	return nil
}

// ClaimLiquidityAtom records a trade against a liquidity pool.
type ClaimLiquidityAtom struct {
	LiquidityPoolID PoolID
	AssetSold       Asset
	AmountSold      int64
	AssetBought     Asset
	AmountBought    int64
}

// Encode writes a ClaimLiquidityAtom in XDR format.
func (cla *ClaimLiquidityAtom) Encode(buf *bytes.Buffer) error {
	if err := cla.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode claim liquidity atom liquidity pool id: %w", err)
	}
	if err := cla.AssetSold.Encode(buf); err != nil {
		return fmt.Errorf("encode claim liquidity atom asset sold: %w", err)
	}
	xdr.WriteInt64(buf, cla.AmountSold)
	if err := cla.AssetBought.Encode(buf); err != nil {
		return fmt.Errorf("encode claim liquidity atom asset bought: %w", err)
	}
	xdr.WriteInt64(buf, cla.AmountBought)
	return nil
}

// Decode reads a ClaimLiquidityAtom from XDR format.
func (cla *ClaimLiquidityAtom) Decode(c *xdr.Cursor) error {
	var err error
	if err = cla.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode claim liquidity atom liquidity pool id: %w", err)
	}
	if err = cla.AssetSold.Decode(c); err != nil {
		return fmt.Errorf("decode claim liquidity atom asset sold: %w", err)
	}
	if cla.AmountSold, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim liquidity atom amount sold: %w", err)
	}
	if err = cla.AssetBought.Decode(c); err != nil {
		return fmt.Errorf("decode claim liquidity atom asset bought: %w", err)
	}
	if cla.AmountBought, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claim liquidity atom amount bought: %w", err)
	}
	return nil
}

// ClaimAtom is one trade executed while crossing offers.
type ClaimAtom struct {
	Type          ClaimAtomType
	V0            *ClaimOfferAtomV0
	OrderBook     *ClaimOfferAtom
	LiquidityPool *ClaimLiquidityAtom
}

// Encode writes a ClaimAtom in XDR format.
func (ca *ClaimAtom) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ca.Type)
	switch ca.Type {
	case ClaimAtomTypeV0:
		return xdr.EncodeArm(buf, ca.V0, "ClaimAtom", ca.Type)
	case ClaimAtomTypeOrderBook:
		return xdr.EncodeArm(buf, ca.OrderBook, "ClaimAtom", ca.Type)
	case ClaimAtomTypeLiquidityPool:
		return xdr.EncodeArm(buf, ca.LiquidityPool, "ClaimAtom", ca.Type)
	}
	return nil
}

// Decode reads a ClaimAtom from XDR format.
func (ca *ClaimAtom) Decode(c *xdr.Cursor) error {
	*ca = ClaimAtom{}
	var err error
	if ca.Type, err = xdr.DecodeUnionDiscriminant[ClaimAtomType](c); err != nil {
		return fmt.Errorf("decode claim atom type: %w", err)
	}
	switch ca.Type {
	case ClaimAtomTypeV0:
		ca.V0, err = xdr.DecodeArm[ClaimOfferAtomV0](c)
	case ClaimAtomTypeOrderBook:
		ca.OrderBook, err = xdr.DecodeArm[ClaimOfferAtom](c)
	case ClaimAtomTypeLiquidityPool:
		ca.LiquidityPool, err = xdr.DecodeArm[ClaimLiquidityAtom](c)
	}
	if err != nil {
		return fmt.Errorf("decode claim atom %v: %w", ca.Type, err)
	}
	return nil
}

// SimplePaymentResult is the final hop of a path payment.
type SimplePaymentResult struct {
	Destination AccountID
	Asset       Asset
	Amount      int64
}

// Encode writes a SimplePaymentResult in XDR format.
func (spr *SimplePaymentResult) Encode(buf *bytes.Buffer) error {
	if err := spr.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode simple payment result destination: %w", err)
	}
	if err := spr.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode simple payment result asset: %w", err)
	}
	xdr.WriteInt64(buf, spr.Amount)
	return nil
}

// Decode reads a SimplePaymentResult from XDR format.
func (spr *SimplePaymentResult) Decode(c *xdr.Cursor) error {
	var err error
	if err = spr.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode simple payment result destination: %w", err)
	}
	if err = spr.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode simple payment result asset: %w", err)
	}
	if spr.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode simple payment result amount: %w", err)
	}
	return nil
}

// ManageOfferEffect enumerates manage offer effect values.
type ManageOfferEffect int32

const (
	ManageOfferEffectCreated ManageOfferEffect = 0
	ManageOfferEffectUpdated ManageOfferEffect = 1
	ManageOfferEffectDeleted ManageOfferEffect = 2
)

var manageOfferEffectNames = map[ManageOfferEffect]string{
	ManageOfferEffectCreated: "MANAGE_OFFER_CREATED",
	ManageOfferEffectUpdated: "MANAGE_OFFER_UPDATED",
	ManageOfferEffectDeleted: "MANAGE_OFFER_DELETED",
}

func (v ManageOfferEffect) String() string { return enumString(manageOfferEffectNames, v, "ManageOfferEffect") }

// MarshalText renders the protocol name of v.
func (v ManageOfferEffect) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ManageOfferEffect) IsKnown() bool {
	_, ok := manageOfferEffectNames[v]
	return ok
}

// ManageOfferSuccessResultOffer holds the offer left on the book, if any.
type ManageOfferSuccessResultOffer struct {
	Effect ManageOfferEffect
	Offer  *OfferEntry
}

// Encode writes a ManageOfferSuccessResultOffer in XDR format.
func (mos *ManageOfferSuccessResultOffer) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, mos.Effect)
	switch mos.Effect {
	case ManageOfferEffectCreated, ManageOfferEffectUpdated:
		return xdr.EncodeArm(buf, mos.Offer, "ManageOfferSuccessResultOffer", mos.Effect)
	}
	return nil
}

// Decode reads a ManageOfferSuccessResultOffer from XDR format.
func (mos *ManageOfferSuccessResultOffer) Decode(c *xdr.Cursor) error {
	*mos = ManageOfferSuccessResultOffer{}
	var err error
	if mos.Effect, err = xdr.DecodeUnionDiscriminant[ManageOfferEffect](c); err != nil {
		return fmt.Errorf("decode manage offer success result offer effect: %w", err)
	}
	switch mos.Effect {
	case ManageOfferEffectCreated, ManageOfferEffectUpdated:
		mos.Offer, err = xdr.DecodeArm[OfferEntry](c)
	}
	if err != nil {
		return fmt.Errorf("decode manage offer success result offer %v: %w", mos.Effect, err)
	}
	return nil
}

// ManageOfferSuccessResult lists the trades made and the resulting offer.
type ManageOfferSuccessResult struct {
	OffersClaimed []ClaimAtom
	Offer         ManageOfferSuccessResultOffer
}

// Encode writes a ManageOfferSuccessResult in XDR format.
func (mos *ManageOfferSuccessResult) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, mos.OffersClaimed); err != nil {
		return fmt.Errorf("encode manage offer success result offers claimed: %w", err)
	}
	if err := mos.Offer.Encode(buf); err != nil {
		return fmt.Errorf("encode manage offer success result offer: %w", err)
	}
	return nil
}

// Decode reads a ManageOfferSuccessResult from XDR format.
func (mos *ManageOfferSuccessResult) Decode(c *xdr.Cursor) error {
	var err error
	if mos.OffersClaimed, err = xdr.DecodeArray[ClaimAtom](c); err != nil {
		return fmt.Errorf("decode manage offer success result offers claimed: %w", err)
	}
	if err = mos.Offer.Decode(c); err != nil {
		return fmt.Errorf("decode manage offer success result offer: %w", err)
	}
	return nil
}

// InflationPayout is one destination credited by an inflation run.
type InflationPayout struct {
	Destination AccountID
	Amount      int64
}

// Encode writes an InflationPayout in XDR format.
func (ip *InflationPayout) Encode(buf *bytes.Buffer) error {
	if err := ip.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode inflation payout destination: %w", err)
	}
	xdr.WriteInt64(buf, ip.Amount)
	return nil
}

// Decode reads an InflationPayout from XDR format.
func (ip *InflationPayout) Decode(c *xdr.Cursor) error {
	var err error
	if err = ip.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode inflation payout destination: %w", err)
	}
	if ip.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode inflation payout amount: %w", err)
	}
	return nil
}
