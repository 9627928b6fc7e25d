package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// OperationType selects the kind of an operation.
type OperationType int32

const (
	OperationTypeCreateAccount                 OperationType = 0
	OperationTypePayment                       OperationType = 1
	OperationTypePathPaymentStrictReceive      OperationType = 2
	OperationTypeManageSellOffer               OperationType = 3
	OperationTypeCreatePassiveSellOffer        OperationType = 4
	OperationTypeSetOptions                    OperationType = 5
	OperationTypeChangeTrust                   OperationType = 6
	OperationTypeAllowTrust                    OperationType = 7
	OperationTypeAccountMerge                  OperationType = 8
	OperationTypeInflation                     OperationType = 9
	OperationTypeManageData                    OperationType = 10
	OperationTypeBumpSequence                  OperationType = 11
	OperationTypeManageBuyOffer                OperationType = 12
	OperationTypePathPaymentStrictSend         OperationType = 13
	OperationTypeCreateClaimableBalance        OperationType = 14
	OperationTypeClaimClaimableBalance         OperationType = 15
	OperationTypeBeginSponsoringFutureReserves OperationType = 16
	OperationTypeEndSponsoringFutureReserves   OperationType = 17
	OperationTypeRevokeSponsorship             OperationType = 18
	OperationTypeClawback                      OperationType = 19
	OperationTypeClawbackClaimableBalance      OperationType = 20
	OperationTypeSetTrustLineFlags             OperationType = 21
	OperationTypeLiquidityPoolDeposit          OperationType = 22
	OperationTypeLiquidityPoolWithdraw         OperationType = 23
	OperationTypeInvokeHostFunction            OperationType = 24
	OperationTypeExtendFootprintTTL            OperationType = 25
	OperationTypeRestoreFootprint              OperationType = 26
)

var operationTypeNames = map[OperationType]string{
	OperationTypeCreateAccount:                 "CREATE_ACCOUNT",
	OperationTypePayment:                       "PAYMENT",
	OperationTypePathPaymentStrictReceive:      "PATH_PAYMENT_STRICT_RECEIVE",
	OperationTypeManageSellOffer:               "MANAGE_SELL_OFFER",
	OperationTypeCreatePassiveSellOffer:        "CREATE_PASSIVE_SELL_OFFER",
	OperationTypeSetOptions:                    "SET_OPTIONS",
	OperationTypeChangeTrust:                   "CHANGE_TRUST",
	OperationTypeAllowTrust:                    "ALLOW_TRUST",
	OperationTypeAccountMerge:                  "ACCOUNT_MERGE",
	OperationTypeInflation:                     "INFLATION",
	OperationTypeManageData:                    "MANAGE_DATA",
	OperationTypeBumpSequence:                  "BUMP_SEQUENCE",
	OperationTypeManageBuyOffer:                "MANAGE_BUY_OFFER",
	OperationTypePathPaymentStrictSend:         "PATH_PAYMENT_STRICT_SEND",
	OperationTypeCreateClaimableBalance:        "CREATE_CLAIMABLE_BALANCE",
	OperationTypeClaimClaimableBalance:         "CLAIM_CLAIMABLE_BALANCE",
	OperationTypeBeginSponsoringFutureReserves: "BEGIN_SPONSORING_FUTURE_RESERVES",
	OperationTypeEndSponsoringFutureReserves:   "END_SPONSORING_FUTURE_RESERVES",
	OperationTypeRevokeSponsorship:             "REVOKE_SPONSORSHIP",
	OperationTypeClawback:                      "CLAWBACK",
	OperationTypeClawbackClaimableBalance:      "CLAWBACK_CLAIMABLE_BALANCE",
	OperationTypeSetTrustLineFlags:             "SET_TRUST_LINE_FLAGS",
	OperationTypeLiquidityPoolDeposit:          "LIQUIDITY_POOL_DEPOSIT",
	OperationTypeLiquidityPoolWithdraw:         "LIQUIDITY_POOL_WITHDRAW",
	OperationTypeInvokeHostFunction:            "INVOKE_HOST_FUNCTION",
	OperationTypeExtendFootprintTTL:            "EXTEND_FOOTPRINT_TTL",
	OperationTypeRestoreFootprint:              "RESTORE_FOOTPRINT",
}

func (v OperationType) String() string { return enumString(operationTypeNames, v, "OperationType") }

// MarshalText renders the protocol name of v.
func (v OperationType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v OperationType) IsKnown() bool {
	_, ok := operationTypeNames[v]
	return ok
}

// OperationBody is the typed request of an operation.
type OperationBody struct {
	Type                            OperationType
	CreateAccountOp                 *CreateAccountOp
	PaymentOp                       *PaymentOp
	PathPaymentStrictReceiveOp      *PathPaymentStrictReceiveOp
	ManageSellOfferOp               *ManageSellOfferOp
	CreatePassiveSellOfferOp        *CreatePassiveSellOfferOp
	SetOptionsOp                    *SetOptionsOp
	ChangeTrustOp                   *ChangeTrustOp
	AllowTrustOp                    *AllowTrustOp
	Destination                     *MuxedAccount
	ManageDataOp                    *ManageDataOp
	BumpSequenceOp                  *BumpSequenceOp
	ManageBuyOfferOp                *ManageBuyOfferOp
	PathPaymentStrictSendOp         *PathPaymentStrictSendOp
	CreateClaimableBalanceOp        *CreateClaimableBalanceOp
	ClaimClaimableBalanceOp         *ClaimClaimableBalanceOp
	BeginSponsoringFutureReservesOp *BeginSponsoringFutureReservesOp
	RevokeSponsorshipOp             *RevokeSponsorshipOp
	ClawbackOp                      *ClawbackOp
	ClawbackClaimableBalanceOp      *ClawbackClaimableBalanceOp
	SetTrustLineFlagsOp             *SetTrustLineFlagsOp
	LiquidityPoolDepositOp          *LiquidityPoolDepositOp
	LiquidityPoolWithdrawOp         *LiquidityPoolWithdrawOp
	InvokeHostFunctionOp            *InvokeHostFunctionOp
	ExtendFootprintTTLOp            *ExtendFootprintTTLOp
	RestoreFootprintOp              *RestoreFootprintOp
}

// Encode writes an OperationBody in XDR format.
func (ob *OperationBody) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ob.Type)
	switch ob.Type {
	case OperationTypeCreateAccount:
		return xdr.EncodeArm(buf, ob.CreateAccountOp, "OperationBody", ob.Type)
	case OperationTypePayment:
		return xdr.EncodeArm(buf, ob.PaymentOp, "OperationBody", ob.Type)
	case OperationTypePathPaymentStrictReceive:
		return xdr.EncodeArm(buf, ob.PathPaymentStrictReceiveOp, "OperationBody", ob.Type)
	case OperationTypeManageSellOffer:
		return xdr.EncodeArm(buf, ob.ManageSellOfferOp, "OperationBody", ob.Type)
	case OperationTypeCreatePassiveSellOffer:
		return xdr.EncodeArm(buf, ob.CreatePassiveSellOfferOp, "OperationBody", ob.Type)
	case OperationTypeSetOptions:
		return xdr.EncodeArm(buf, ob.SetOptionsOp, "OperationBody", ob.Type)
	case OperationTypeChangeTrust:
		return xdr.EncodeArm(buf, ob.ChangeTrustOp, "OperationBody", ob.Type)
	case OperationTypeAllowTrust:
		return xdr.EncodeArm(buf, ob.AllowTrustOp, "OperationBody", ob.Type)
	case OperationTypeAccountMerge:
		return xdr.EncodeArm(buf, ob.Destination, "OperationBody", ob.Type)
	case OperationTypeManageData:
		return xdr.EncodeArm(buf, ob.ManageDataOp, "OperationBody", ob.Type)
	case OperationTypeBumpSequence:
		return xdr.EncodeArm(buf, ob.BumpSequenceOp, "OperationBody", ob.Type)
	case OperationTypeManageBuyOffer:
		return xdr.EncodeArm(buf, ob.ManageBuyOfferOp, "OperationBody", ob.Type)
	case OperationTypePathPaymentStrictSend:
		return xdr.EncodeArm(buf, ob.PathPaymentStrictSendOp, "OperationBody", ob.Type)
	case OperationTypeCreateClaimableBalance:
		return xdr.EncodeArm(buf, ob.CreateClaimableBalanceOp, "OperationBody", ob.Type)
	case OperationTypeClaimClaimableBalance:
		return xdr.EncodeArm(buf, ob.ClaimClaimableBalanceOp, "OperationBody", ob.Type)
	case OperationTypeBeginSponsoringFutureReserves:
		return xdr.EncodeArm(buf, ob.BeginSponsoringFutureReservesOp, "OperationBody", ob.Type)
	case OperationTypeRevokeSponsorship:
		return xdr.EncodeArm(buf, ob.RevokeSponsorshipOp, "OperationBody", ob.Type)
	case OperationTypeClawback:
		return xdr.EncodeArm(buf, ob.ClawbackOp, "OperationBody", ob.Type)
	case OperationTypeClawbackClaimableBalance:
		return xdr.EncodeArm(buf, ob.ClawbackClaimableBalanceOp, "OperationBody", ob.Type)
	case OperationTypeSetTrustLineFlags:
		return xdr.EncodeArm(buf, ob.SetTrustLineFlagsOp, "OperationBody", ob.Type)
	case OperationTypeLiquidityPoolDeposit:
		return xdr.EncodeArm(buf, ob.LiquidityPoolDepositOp, "OperationBody", ob.Type)
	case OperationTypeLiquidityPoolWithdraw:
		return xdr.EncodeArm(buf, ob.LiquidityPoolWithdrawOp, "OperationBody", ob.Type)
	case OperationTypeInvokeHostFunction:
		return xdr.EncodeArm(buf, ob.InvokeHostFunctionOp, "OperationBody", ob.Type)
	case OperationTypeExtendFootprintTTL:
		return xdr.EncodeArm(buf, ob.ExtendFootprintTTLOp, "OperationBody", ob.Type)
	case OperationTypeRestoreFootprint:
		return xdr.EncodeArm(buf, ob.RestoreFootprintOp, "OperationBody", ob.Type)
	}
	return nil
}

// Decode reads an OperationBody from XDR format.
func (ob *OperationBody) Decode(c *xdr.Cursor) error {
	*ob = OperationBody{}
	var err error
	if ob.Type, err = xdr.DecodeUnionDiscriminant[OperationType](c); err != nil {
		return fmt.Errorf("decode operation body type: %w", err)
	}
	switch ob.Type {
	case OperationTypeCreateAccount:
		ob.CreateAccountOp, err = xdr.DecodeArm[CreateAccountOp](c)
	case OperationTypePayment:
		ob.PaymentOp, err = xdr.DecodeArm[PaymentOp](c)
	case OperationTypePathPaymentStrictReceive:
		ob.PathPaymentStrictReceiveOp, err = xdr.DecodeArm[PathPaymentStrictReceiveOp](c)
	case OperationTypeManageSellOffer:
		ob.ManageSellOfferOp, err = xdr.DecodeArm[ManageSellOfferOp](c)
	case OperationTypeCreatePassiveSellOffer:
		ob.CreatePassiveSellOfferOp, err = xdr.DecodeArm[CreatePassiveSellOfferOp](c)
	case OperationTypeSetOptions:
		ob.SetOptionsOp, err = xdr.DecodeArm[SetOptionsOp](c)
	case OperationTypeChangeTrust:
		ob.ChangeTrustOp, err = xdr.DecodeArm[ChangeTrustOp](c)
	case OperationTypeAllowTrust:
		ob.AllowTrustOp, err = xdr.DecodeArm[AllowTrustOp](c)
	case OperationTypeAccountMerge:
		ob.Destination, err = xdr.DecodeArm[MuxedAccount](c)
	case OperationTypeManageData:
		ob.ManageDataOp, err = xdr.DecodeArm[ManageDataOp](c)
	case OperationTypeBumpSequence:
		ob.BumpSequenceOp, err = xdr.DecodeArm[BumpSequenceOp](c)
	case OperationTypeManageBuyOffer:
		ob.ManageBuyOfferOp, err = xdr.DecodeArm[ManageBuyOfferOp](c)
	case OperationTypePathPaymentStrictSend:
		ob.PathPaymentStrictSendOp, err = xdr.DecodeArm[PathPaymentStrictSendOp](c)
	case OperationTypeCreateClaimableBalance:
		ob.CreateClaimableBalanceOp, err = xdr.DecodeArm[CreateClaimableBalanceOp](c)
	case OperationTypeClaimClaimableBalance:
		ob.ClaimClaimableBalanceOp, err = xdr.DecodeArm[ClaimClaimableBalanceOp](c)
	case OperationTypeBeginSponsoringFutureReserves:
		ob.BeginSponsoringFutureReservesOp, err = xdr.DecodeArm[BeginSponsoringFutureReservesOp](c)
	case OperationTypeRevokeSponsorship:
		ob.RevokeSponsorshipOp, err = xdr.DecodeArm[RevokeSponsorshipOp](c)
	case OperationTypeClawback:
		ob.ClawbackOp, err = xdr.DecodeArm[ClawbackOp](c)
	case OperationTypeClawbackClaimableBalance:
		ob.ClawbackClaimableBalanceOp, err = xdr.DecodeArm[ClawbackClaimableBalanceOp](c)
	case OperationTypeSetTrustLineFlags:
		ob.SetTrustLineFlagsOp, err = xdr.DecodeArm[SetTrustLineFlagsOp](c)
	case OperationTypeLiquidityPoolDeposit:
		ob.LiquidityPoolDepositOp, err = xdr.DecodeArm[LiquidityPoolDepositOp](c)
	case OperationTypeLiquidityPoolWithdraw:
		ob.LiquidityPoolWithdrawOp, err = xdr.DecodeArm[LiquidityPoolWithdrawOp](c)
	case OperationTypeInvokeHostFunction:
		ob.InvokeHostFunctionOp, err = xdr.DecodeArm[InvokeHostFunctionOp](c)
	case OperationTypeExtendFootprintTTL:
		ob.ExtendFootprintTTLOp, err = xdr.DecodeArm[ExtendFootprintTTLOp](c)
	case OperationTypeRestoreFootprint:
		ob.RestoreFootprintOp, err = xdr.DecodeArm[RestoreFootprintOp](c)
	}
	if err != nil {
		return fmt.Errorf("decode operation body %v: %w", ob.Type, err)
	}
	return nil
}

// Operation is a single ledger-changing action of a transaction.
//
//	struct Operation {
//	    MuxedAccount* sourceAccount;
//	    union switch (OperationType type) { ... } body;
//	};
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

// Encode writes an Operation in XDR format.
func (o *Operation) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeOptional(buf, o.SourceAccount); err != nil {
		return fmt.Errorf("encode operation source account: %w", err)
	}
	if err := o.Body.Encode(buf); err != nil {
		return fmt.Errorf("encode operation body: %w", err)
	}
	return nil
}

// Decode reads an Operation from XDR format.
func (o *Operation) Decode(c *xdr.Cursor) error {
	var err error
	if o.SourceAccount, err = xdr.DecodeOptional[MuxedAccount](c); err != nil {
		return fmt.Errorf("decode operation source account: %w", err)
	}
	if err = o.Body.Decode(c); err != nil {
		return fmt.Errorf("decode operation body: %w", err)
	}
	return nil
}
