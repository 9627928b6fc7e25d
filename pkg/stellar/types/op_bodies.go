package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// MaxOpsPerTx is the largest number of operations in one transaction.
const MaxOpsPerTx = 100

// CreateAccountOp funds a new account.
type CreateAccountOp struct {
	Destination     AccountID
	StartingBalance int64
}

// Encode writes a CreateAccountOp in XDR format.
func (cao *CreateAccountOp) Encode(buf *bytes.Buffer) error {
	if err := cao.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode create account op destination: %w", err)
	}
	xdr.WriteInt64(buf, cao.StartingBalance)
	return nil
}

// Decode reads a CreateAccountOp from XDR format.
func (cao *CreateAccountOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = cao.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode create account op destination: %w", err)
	}
	if cao.StartingBalance, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode create account op starting balance: %w", err)
	}
	return nil
}

// PaymentOp sends an amount of an asset to a destination.
type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

// Encode writes a PaymentOp in XDR format.
func (po *PaymentOp) Encode(buf *bytes.Buffer) error {
	if err := po.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode payment op destination: %w", err)
	}
	if err := po.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode payment op asset: %w", err)
	}
	xdr.WriteInt64(buf, po.Amount)
	return nil
}

// Decode reads a PaymentOp from XDR format.
func (po *PaymentOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = po.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode payment op destination: %w", err)
	}
	if err = po.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode payment op asset: %w", err)
	}
	if po.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode payment op amount: %w", err)
	}
	return nil
}

// PathPaymentStrictReceiveOp delivers an exact amount through a conversion path.
type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

// Encode writes a PathPaymentStrictReceiveOp in XDR format.
func (pps *PathPaymentStrictReceiveOp) Encode(buf *bytes.Buffer) error {
	if err := pps.SendAsset.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict receive op send asset: %w", err)
	}
	xdr.WriteInt64(buf, pps.SendMax)
	if err := pps.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict receive op destination: %w", err)
	}
	if err := pps.DestAsset.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict receive op dest asset: %w", err)
	}
	xdr.WriteInt64(buf, pps.DestAmount)
	if err := xdr.EncodeArray(buf, pps.Path); err != nil {
		return fmt.Errorf("encode path payment strict receive op path: %w", err)
	}
	return nil
}

// Decode reads a PathPaymentStrictReceiveOp from XDR format.
func (pps *PathPaymentStrictReceiveOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = pps.SendAsset.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict receive op send asset: %w", err)
	}
	if pps.SendMax, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode path payment strict receive op send max: %w", err)
	}
	if err = pps.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict receive op destination: %w", err)
	}
	if err = pps.DestAsset.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict receive op dest asset: %w", err)
	}
	if pps.DestAmount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode path payment strict receive op dest amount: %w", err)
	}
	if pps.Path, err = xdr.DecodeArray[Asset](c); err != nil {
		return fmt.Errorf("decode path payment strict receive op path: %w", err)
	}
	return nil
}

// PathPaymentStrictSendOp sends an exact amount through a conversion path.
type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     int64
	Path        []Asset
}

// Encode writes a PathPaymentStrictSendOp in XDR format.
func (pps *PathPaymentStrictSendOp) Encode(buf *bytes.Buffer) error {
	if err := pps.SendAsset.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict send op send asset: %w", err)
	}
	xdr.WriteInt64(buf, pps.SendAmount)
	if err := pps.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict send op destination: %w", err)
	}
	if err := pps.DestAsset.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict send op dest asset: %w", err)
	}
	xdr.WriteInt64(buf, pps.DestMin)
	if err := xdr.EncodeArray(buf, pps.Path); err != nil {
		return fmt.Errorf("encode path payment strict send op path: %w", err)
	}
	return nil
}

// Decode reads a PathPaymentStrictSendOp from XDR format.
func (pps *PathPaymentStrictSendOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = pps.SendAsset.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict send op send asset: %w", err)
	}
	if pps.SendAmount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode path payment strict send op send amount: %w", err)
	}
	if err = pps.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict send op destination: %w", err)
	}
	if err = pps.DestAsset.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict send op dest asset: %w", err)
	}
	if pps.DestMin, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode path payment strict send op dest min: %w", err)
	}
	if pps.Path, err = xdr.DecodeArray[Asset](c); err != nil {
		return fmt.Errorf("decode path payment strict send op path: %w", err)
	}
	return nil
}

// ManageSellOfferOp creates, updates or deletes an offer priced in selling units.
type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferID int64 // 0 creates a new offer
}

// Encode writes a ManageSellOfferOp in XDR format.
func (mso *ManageSellOfferOp) Encode(buf *bytes.Buffer) error {
	if err := mso.Selling.Encode(buf); err != nil {
		return fmt.Errorf("encode manage sell offer op selling: %w", err)
	}
	if err := mso.Buying.Encode(buf); err != nil {
		return fmt.Errorf("encode manage sell offer op buying: %w", err)
	}
	xdr.WriteInt64(buf, mso.Amount)
	if err := mso.Price.Encode(buf); err != nil {
		return fmt.Errorf("encode manage sell offer op price: %w", err)
	}
	xdr.WriteInt64(buf, mso.OfferID)
	return nil
}

// Decode reads a ManageSellOfferOp from XDR format.
func (mso *ManageSellOfferOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = mso.Selling.Decode(c); err != nil {
		return fmt.Errorf("decode manage sell offer op selling: %w", err)
	}
	if err = mso.Buying.Decode(c); err != nil {
		return fmt.Errorf("decode manage sell offer op buying: %w", err)
	}
	if mso.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode manage sell offer op amount: %w", err)
	}
	if err = mso.Price.Decode(c); err != nil {
		return fmt.Errorf("decode manage sell offer op price: %w", err)
	}
	if mso.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode manage sell offer op offer id: %w", err)
	}
	return nil
}

// ManageBuyOfferOp creates, updates or deletes an offer for a fixed buy amount.
type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount int64
	Price     Price
	OfferID   int64 // 0 creates a new offer
}

// Encode writes a ManageBuyOfferOp in XDR format.
func (mbo *ManageBuyOfferOp) Encode(buf *bytes.Buffer) error {
	if err := mbo.Selling.Encode(buf); err != nil {
		return fmt.Errorf("encode manage buy offer op selling: %w", err)
	}
	if err := mbo.Buying.Encode(buf); err != nil {
		return fmt.Errorf("encode manage buy offer op buying: %w", err)
	}
	xdr.WriteInt64(buf, mbo.BuyAmount)
	if err := mbo.Price.Encode(buf); err != nil {
		return fmt.Errorf("encode manage buy offer op price: %w", err)
	}
	xdr.WriteInt64(buf, mbo.OfferID)
	return nil
}

// Decode reads a ManageBuyOfferOp from XDR format.
func (mbo *ManageBuyOfferOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = mbo.Selling.Decode(c); err != nil {
		return fmt.Errorf("decode manage buy offer op selling: %w", err)
	}
	if err = mbo.Buying.Decode(c); err != nil {
		return fmt.Errorf("decode manage buy offer op buying: %w", err)
	}
	if mbo.BuyAmount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode manage buy offer op buy amount: %w", err)
	}
	if err = mbo.Price.Decode(c); err != nil {
		return fmt.Errorf("decode manage buy offer op price: %w", err)
	}
	if mbo.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode manage buy offer op offer id: %w", err)
	}
	return nil
}

// CreatePassiveSellOfferOp places an offer that does not cross offers at the same price.
type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

// Encode writes a CreatePassiveSellOfferOp in XDR format.
func (cps *CreatePassiveSellOfferOp) Encode(buf *bytes.Buffer) error {
	if err := cps.Selling.Encode(buf); err != nil {
		return fmt.Errorf("encode create passive sell offer op selling: %w", err)
	}
	if err := cps.Buying.Encode(buf); err != nil {
		return fmt.Errorf("encode create passive sell offer op buying: %w", err)
	}
	xdr.WriteInt64(buf, cps.Amount)
	if err := cps.Price.Encode(buf); err != nil {
		return fmt.Errorf("encode create passive sell offer op price: %w", err)
	}
	return nil
}

// Decode reads a CreatePassiveSellOfferOp from XDR format.
func (cps *CreatePassiveSellOfferOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = cps.Selling.Decode(c); err != nil {
		return fmt.Errorf("decode create passive sell offer op selling: %w", err)
	}
	if err = cps.Buying.Decode(c); err != nil {
		return fmt.Errorf("decode create passive sell offer op buying: %w", err)
	}
	if cps.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode create passive sell offer op amount: %w", err)
	}
	if err = cps.Price.Decode(c); err != nil {
		return fmt.Errorf("decode create passive sell offer op price: %w", err)
	}
	return nil
}

// SetOptionsOp changes account settings. Nil fields are left unchanged.
type SetOptionsOp struct {
	InflationDest *AccountID
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *String32
	Signer        *Signer
}

// Encode writes a SetOptionsOp in XDR format.
func (soo *SetOptionsOp) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeOptional(buf, soo.InflationDest); err != nil {
		return fmt.Errorf("encode set options op inflation dest: %w", err)
	}
	xdr.EncodeOptionalFunc(buf, soo.ClearFlags, xdr.WriteUint32)
	xdr.EncodeOptionalFunc(buf, soo.SetFlags, xdr.WriteUint32)
	xdr.EncodeOptionalFunc(buf, soo.MasterWeight, xdr.WriteUint32)
	xdr.EncodeOptionalFunc(buf, soo.LowThreshold, xdr.WriteUint32)
	xdr.EncodeOptionalFunc(buf, soo.MedThreshold, xdr.WriteUint32)
	xdr.EncodeOptionalFunc(buf, soo.HighThreshold, xdr.WriteUint32)
	if err := xdr.EncodeOptional(buf, soo.HomeDomain); err != nil {
		return fmt.Errorf("encode set options op home domain: %w", err)
	}
	if err := xdr.EncodeOptional(buf, soo.Signer); err != nil {
		return fmt.Errorf("encode set options op signer: %w", err)
	}
	return nil
}

// Decode reads a SetOptionsOp from XDR format.
func (soo *SetOptionsOp) Decode(c *xdr.Cursor) error {
	var err error
	if soo.InflationDest, err = xdr.DecodeOptional[AccountID](c); err != nil {
		return fmt.Errorf("decode set options op inflation dest: %w", err)
	}
	if soo.ClearFlags, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op clear flags: %w", err)
	}
	if soo.SetFlags, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op set flags: %w", err)
	}
	if soo.MasterWeight, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op master weight: %w", err)
	}
	if soo.LowThreshold, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op low threshold: %w", err)
	}
	if soo.MedThreshold, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op med threshold: %w", err)
	}
	if soo.HighThreshold, err = xdr.DecodeOptionalFunc(c, xdr.DecodeUint32); err != nil {
		return fmt.Errorf("decode set options op high threshold: %w", err)
	}
	if soo.HomeDomain, err = xdr.DecodeOptional[String32](c); err != nil {
		return fmt.Errorf("decode set options op home domain: %w", err)
	}
	if soo.Signer, err = xdr.DecodeOptional[Signer](c); err != nil {
		return fmt.Errorf("decode set options op signer: %w", err)
	}
	return nil
}

// ChangeTrustOp creates, updates or removes a trust line. A zero Limit removes it.
type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit int64 // 0 removes the trust line
}

// Encode writes a ChangeTrustOp in XDR format.
func (cto *ChangeTrustOp) Encode(buf *bytes.Buffer) error {
	if err := cto.Line.Encode(buf); err != nil {
		return fmt.Errorf("encode change trust op line: %w", err)
	}
	xdr.WriteInt64(buf, cto.Limit)
	return nil
}

// Decode reads a ChangeTrustOp from XDR format.
func (cto *ChangeTrustOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = cto.Line.Decode(c); err != nil {
		return fmt.Errorf("decode change trust op line: %w", err)
	}
	if cto.Limit, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode change trust op limit: %w", err)
	}
	return nil
}

// AllowTrustOp is the deprecated form of SetTrustLineFlagsOp.
type AllowTrustOp struct {
	Trustor   AccountID
	Asset     AssetCode
	Authorize uint32 // TrustLineFlags
}

// Encode writes an AllowTrustOp in XDR format.
func (ato *AllowTrustOp) Encode(buf *bytes.Buffer) error {
	if err := ato.Trustor.Encode(buf); err != nil {
		return fmt.Errorf("encode allow trust op trustor: %w", err)
	}
	if err := ato.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode allow trust op asset: %w", err)
	}
	xdr.WriteUint32(buf, ato.Authorize)
	return nil
}

// Decode reads an AllowTrustOp from XDR format.
func (ato *AllowTrustOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = ato.Trustor.Decode(c); err != nil {
		return fmt.Errorf("decode allow trust op trustor: %w", err)
	}
	if err = ato.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode allow trust op asset: %w", err)
	}
	if ato.Authorize, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode allow trust op authorize: %w", err)
	}
	return nil
}

// ManageDataOp sets or deletes a named data entry on the source account.
type ManageDataOp struct {
	DataName  String64
	DataValue *DataValue // nil deletes the entry
}

// Encode writes a ManageDataOp in XDR format.
func (mdo *ManageDataOp) Encode(buf *bytes.Buffer) error {
	if err := mdo.DataName.Encode(buf); err != nil {
		return fmt.Errorf("encode manage data op data name: %w", err)
	}
	if err := xdr.EncodeOptional(buf, mdo.DataValue); err != nil {
		return fmt.Errorf("encode manage data op data value: %w", err)
	}
	return nil
}

// Decode reads a ManageDataOp from XDR format.
func (mdo *ManageDataOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = mdo.DataName.Decode(c); err != nil {
		return fmt.Errorf("decode manage data op data name: %w", err)
	}
	if mdo.DataValue, err = xdr.DecodeOptional[DataValue](c); err != nil {
		return fmt.Errorf("decode manage data op data value: %w", err)
	}
	return nil
}

// BumpSequenceOp raises the source account's sequence number.
type BumpSequenceOp struct {
	BumpTo SequenceNumber
}

// Encode writes a BumpSequenceOp in XDR format.
func (bso *BumpSequenceOp) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, bso.BumpTo)
	return nil
}

// Decode reads a BumpSequenceOp from XDR format.
func (bso *BumpSequenceOp) Decode(c *xdr.Cursor) error {
	var err error
	if bso.BumpTo, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode bump sequence op bump to: %w", err)
	}
	return nil
}

// CreateClaimableBalanceOp locks an amount for a set of claimants.
type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    int64
	Claimants []Claimant
}

// Encode writes a CreateClaimableBalanceOp in XDR format.
func (ccb *CreateClaimableBalanceOp) Encode(buf *bytes.Buffer) error {
	if err := ccb.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode create claimable balance op asset: %w", err)
	}
	xdr.WriteInt64(buf, ccb.Amount)
	if err := xdr.EncodeArray(buf, ccb.Claimants); err != nil {
		return fmt.Errorf("encode create claimable balance op claimants: %w", err)
	}
	return nil
}

// Decode reads a CreateClaimableBalanceOp from XDR format.
func (ccb *CreateClaimableBalanceOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = ccb.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode create claimable balance op asset: %w", err)
	}
	if ccb.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode create claimable balance op amount: %w", err)
	}
	if ccb.Claimants, err = xdr.DecodeArray[Claimant](c); err != nil {
		return fmt.Errorf("decode create claimable balance op claimants: %w", err)
	}
	return nil
}

// ClaimClaimableBalanceOp claims a claimable balance by id.
type ClaimClaimableBalanceOp struct {
	BalanceID ClaimableBalanceID
}

// Encode writes a ClaimClaimableBalanceOp in XDR format.
func (ccb *ClaimClaimableBalanceOp) Encode(buf *bytes.Buffer) error {
	if err := ccb.BalanceID.Encode(buf); err != nil {
		return fmt.Errorf("encode claim claimable balance op balance id: %w", err)
	}
	return nil
}

// Decode reads a ClaimClaimableBalanceOp from XDR format.
func (ccb *ClaimClaimableBalanceOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = ccb.BalanceID.Decode(c); err != nil {
		return fmt.Errorf("decode claim claimable balance op balance id: %w", err)
	}
	return nil
}

// BeginSponsoringFutureReservesOp starts sponsoring reserves of SponsoredID.
type BeginSponsoringFutureReservesOp struct {
	SponsoredID AccountID
}

// Encode writes a BeginSponsoringFutureReservesOp in XDR format.
func (bsf *BeginSponsoringFutureReservesOp) Encode(buf *bytes.Buffer) error {
	if err := bsf.SponsoredID.Encode(buf); err != nil {
		return fmt.Errorf("encode begin sponsoring future reserves op sponsored id: %w", err)
	}
	return nil
}

// Decode reads a BeginSponsoringFutureReservesOp from XDR format.
func (bsf *BeginSponsoringFutureReservesOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = bsf.SponsoredID.Decode(c); err != nil {
		return fmt.Errorf("decode begin sponsoring future reserves op sponsored id: %w", err)
	}
	return nil
}

// RevokeSponsorshipType enumerates revoke sponsorship type values.
type RevokeSponsorshipType int32

const (
	RevokeSponsorshipTypeLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipTypeSigner      RevokeSponsorshipType = 1
)

var revokeSponsorshipTypeNames = map[RevokeSponsorshipType]string{
	RevokeSponsorshipTypeLedgerEntry: "REVOKE_SPONSORSHIP_LEDGER_ENTRY",
	RevokeSponsorshipTypeSigner:      "REVOKE_SPONSORSHIP_SIGNER",
}

func (v RevokeSponsorshipType) String() string { return enumString(revokeSponsorshipTypeNames, v, "RevokeSponsorshipType") }

// MarshalText renders the protocol name of v.
func (v RevokeSponsorshipType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v RevokeSponsorshipType) IsKnown() bool {
	_, ok := revokeSponsorshipTypeNames[v]
	return ok
}

// RevokeSponsorshipOpSigner names a sponsored signer of an account.
type RevokeSponsorshipOpSigner struct {
	AccountID AccountID
	SignerKey SignerKey
}

// Encode writes a RevokeSponsorshipOpSigner in XDR format.
func (rso *RevokeSponsorshipOpSigner) Encode(buf *bytes.Buffer) error {
	if err := rso.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode revoke sponsorship op signer account id: %w", err)
	}
	if err := rso.SignerKey.Encode(buf); err != nil {
		return fmt.Errorf("encode revoke sponsorship op signer signer key: %w", err)
	}
	return nil
}

// Decode reads a RevokeSponsorshipOpSigner from XDR format.
func (rso *RevokeSponsorshipOpSigner) Decode(c *xdr.Cursor) error {
	var err error
	if err = rso.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode revoke sponsorship op signer account id: %w", err)
	}
	if err = rso.SignerKey.Decode(c); err != nil {
		return fmt.Errorf("decode revoke sponsorship op signer signer key: %w", err)
	}
	return nil
}

// RevokeSponsorshipOp transfers or removes the sponsorship of a ledger entry or signer.
type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey *LedgerKey
	Signer    *RevokeSponsorshipOpSigner
}

// Encode writes a RevokeSponsorshipOp in XDR format.
func (rso *RevokeSponsorshipOp) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, rso.Type)
	switch rso.Type {
	case RevokeSponsorshipTypeLedgerEntry:
		return xdr.EncodeArm(buf, rso.LedgerKey, "RevokeSponsorshipOp", rso.Type)
	case RevokeSponsorshipTypeSigner:
		return xdr.EncodeArm(buf, rso.Signer, "RevokeSponsorshipOp", rso.Type)
	}
	return nil
}

// Decode reads a RevokeSponsorshipOp from XDR format.
func (rso *RevokeSponsorshipOp) Decode(c *xdr.Cursor) error {
	*rso = RevokeSponsorshipOp{}
	var err error
	if rso.Type, err = xdr.DecodeUnionDiscriminant[RevokeSponsorshipType](c); err != nil {
		return fmt.Errorf("decode revoke sponsorship op type: %w", err)
	}
	switch rso.Type {
	case RevokeSponsorshipTypeLedgerEntry:
		rso.LedgerKey, err = xdr.DecodeArm[LedgerKey](c)
	case RevokeSponsorshipTypeSigner:
		rso.Signer, err = xdr.DecodeArm[RevokeSponsorshipOpSigner](c)
	}
	if err != nil {
		return fmt.Errorf("decode revoke sponsorship op %v: %w", rso.Type, err)
	}
	return nil
}

// ClawbackOp burns an amount of an asset held by an account.
type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount int64
}

// Encode writes a ClawbackOp in XDR format.
func (co *ClawbackOp) Encode(buf *bytes.Buffer) error {
	if err := co.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode clawback op asset: %w", err)
	}
	if err := co.From.Encode(buf); err != nil {
		return fmt.Errorf("encode clawback op from: %w", err)
	}
	xdr.WriteInt64(buf, co.Amount)
	return nil
}

// Decode reads a ClawbackOp from XDR format.
func (co *ClawbackOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = co.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode clawback op asset: %w", err)
	}
	if err = co.From.Decode(c); err != nil {
		return fmt.Errorf("decode clawback op from: %w", err)
	}
	if co.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode clawback op amount: %w", err)
	}
	return nil
}

// ClawbackClaimableBalanceOp burns a claimable balance.
type ClawbackClaimableBalanceOp struct {
	BalanceID ClaimableBalanceID
}

// Encode writes a ClawbackClaimableBalanceOp in XDR format.
func (ccb *ClawbackClaimableBalanceOp) Encode(buf *bytes.Buffer) error {
	if err := ccb.BalanceID.Encode(buf); err != nil {
		return fmt.Errorf("encode clawback claimable balance op balance id: %w", err)
	}
	return nil
}

// Decode reads a ClawbackClaimableBalanceOp from XDR format.
func (ccb *ClawbackClaimableBalanceOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = ccb.BalanceID.Decode(c); err != nil {
		return fmt.Errorf("decode clawback claimable balance op balance id: %w", err)
	}
	return nil
}

// SetTrustLineFlagsOp sets and clears authorization flags on a trust line.
type SetTrustLineFlagsOp struct {
	Trustor    AccountID
	Asset      Asset
	ClearFlags uint32
	SetFlags   uint32
}

// Encode writes a SetTrustLineFlagsOp in XDR format.
func (stl *SetTrustLineFlagsOp) Encode(buf *bytes.Buffer) error {
	if err := stl.Trustor.Encode(buf); err != nil {
		return fmt.Errorf("encode set trust line flags op trustor: %w", err)
	}
	if err := stl.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode set trust line flags op asset: %w", err)
	}
	xdr.WriteUint32(buf, stl.ClearFlags)
	xdr.WriteUint32(buf, stl.SetFlags)
	return nil
}

// Decode reads a SetTrustLineFlagsOp from XDR format.
func (stl *SetTrustLineFlagsOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = stl.Trustor.Decode(c); err != nil {
		return fmt.Errorf("decode set trust line flags op trustor: %w", err)
	}
	if err = stl.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode set trust line flags op asset: %w", err)
	}
	if stl.ClearFlags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode set trust line flags op clear flags: %w", err)
	}
	if stl.SetFlags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode set trust line flags op set flags: %w", err)
	}
	return nil
}

// LiquidityPoolDepositOp deposits both assets into a pool within price bounds.
type LiquidityPoolDepositOp struct {
	LiquidityPoolID PoolID
	MaxAmountA      int64
	MaxAmountB      int64
	MinPrice        Price
	MaxPrice        Price
}

// Encode writes a LiquidityPoolDepositOp in XDR format.
func (lpd *LiquidityPoolDepositOp) Encode(buf *bytes.Buffer) error {
	if err := lpd.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool deposit op liquidity pool id: %w", err)
	}
	xdr.WriteInt64(buf, lpd.MaxAmountA)
	xdr.WriteInt64(buf, lpd.MaxAmountB)
	if err := lpd.MinPrice.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool deposit op min price: %w", err)
	}
	if err := lpd.MaxPrice.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool deposit op max price: %w", err)
	}
	return nil
}

// Decode reads a LiquidityPoolDepositOp from XDR format.
func (lpd *LiquidityPoolDepositOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = lpd.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit op liquidity pool id: %w", err)
	}
	if lpd.MaxAmountA, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit op max amount a: %w", err)
	}
	if lpd.MaxAmountB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit op max amount b: %w", err)
	}
	if err = lpd.MinPrice.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit op min price: %w", err)
	}
	if err = lpd.MaxPrice.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit op max price: %w", err)
	}
	return nil
}

// LiquidityPoolWithdrawOp redeems pool shares for at least the minimum amounts.
type LiquidityPoolWithdrawOp struct {
	LiquidityPoolID PoolID
	Amount          int64
	MinAmountA      int64
	MinAmountB      int64
}

// Encode writes a LiquidityPoolWithdrawOp in XDR format.
func (lpw *LiquidityPoolWithdrawOp) Encode(buf *bytes.Buffer) error {
	if err := lpw.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool withdraw op liquidity pool id: %w", err)
	}
	xdr.WriteInt64(buf, lpw.Amount)
	xdr.WriteInt64(buf, lpw.MinAmountA)
	xdr.WriteInt64(buf, lpw.MinAmountB)
	return nil
}

// Decode reads a LiquidityPoolWithdrawOp from XDR format.
func (lpw *LiquidityPoolWithdrawOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = lpw.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool withdraw op liquidity pool id: %w", err)
	}
	if lpw.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool withdraw op amount: %w", err)
	}
	if lpw.MinAmountA, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool withdraw op min amount a: %w", err)
	}
	if lpw.MinAmountB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool withdraw op min amount b: %w", err)
	}
	return nil
}

// InvokeHostFunctionOp runs a Soroban host function.
type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

// Encode writes an InvokeHostFunctionOp in XDR format.
func (ihf *InvokeHostFunctionOp) Encode(buf *bytes.Buffer) error {
	if err := ihf.HostFunction.Encode(buf); err != nil {
		return fmt.Errorf("encode invoke host function op host function: %w", err)
	}
	if err := xdr.EncodeArray(buf, ihf.Auth); err != nil {
		return fmt.Errorf("encode invoke host function op auth: %w", err)
	}
	return nil
}

// Decode reads an InvokeHostFunctionOp from XDR format.
func (ihf *InvokeHostFunctionOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = ihf.HostFunction.Decode(c); err != nil {
		return fmt.Errorf("decode invoke host function op host function: %w", err)
	}
	if ihf.Auth, err = xdr.DecodeArray[SorobanAuthorizationEntry](c); err != nil {
		return fmt.Errorf("decode invoke host function op auth: %w", err)
	}
	return nil
}

// ExtendFootprintTTLOp extends the TTL of the read-only footprint entries
// to at least ExtendTo ledgers.
type ExtendFootprintTTLOp struct {
	Ext      ExtensionPoint
	ExtendTo uint32
}

// Encode writes an ExtendFootprintTTLOp in XDR format.
func (eft *ExtendFootprintTTLOp) Encode(buf *bytes.Buffer) error {
	if err := eft.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode extend footprint ttl op ext: %w", err)
	}
	xdr.WriteUint32(buf, eft.ExtendTo)
	return nil
}

// Decode reads an ExtendFootprintTTLOp from XDR format.
func (eft *ExtendFootprintTTLOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = eft.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode extend footprint ttl op ext: %w", err)
	}
	if eft.ExtendTo, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode extend footprint ttl op extend to: %w", err)
	}
	return nil
}

// RestoreFootprintOp restores archived entries of the read-write footprint.
type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

// Encode writes a RestoreFootprintOp in XDR format.
func (rfo *RestoreFootprintOp) Encode(buf *bytes.Buffer) error {
	if err := rfo.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode restore footprint op ext: %w", err)
	}
	return nil
}

// Decode reads a RestoreFootprintOp from XDR format.
func (rfo *RestoreFootprintOp) Decode(c *xdr.Cursor) error {
	var err error
	if err = rfo.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode restore footprint op ext: %w", err)
	}
	return nil
}
