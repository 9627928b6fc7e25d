package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// OperationResultCode reports whether an operation ran at all.
type OperationResultCode int32

const (
	OperationResultCodeInner             OperationResultCode = 0
	OperationResultCodeBadAuth           OperationResultCode = -1
	OperationResultCodeNoAccount         OperationResultCode = -2
	OperationResultCodeNotSupported      OperationResultCode = -3
	OperationResultCodeTooManySubentries OperationResultCode = -4
	OperationResultCodeExceededWorkLimit OperationResultCode = -5
	OperationResultCodeTooManySponsoring OperationResultCode = -6
)

var operationResultCodeNames = map[OperationResultCode]string{
	OperationResultCodeInner:             "opINNER",
	OperationResultCodeBadAuth:           "opBAD_AUTH",
	OperationResultCodeNoAccount:         "opNO_ACCOUNT",
	OperationResultCodeNotSupported:      "opNOT_SUPPORTED",
	OperationResultCodeTooManySubentries: "opTOO_MANY_SUBENTRIES",
	OperationResultCodeExceededWorkLimit: "opEXCEEDED_WORK_LIMIT",
	OperationResultCodeTooManySponsoring: "opTOO_MANY_SPONSORING",
}

func (v OperationResultCode) String() string { return enumString(operationResultCodeNames, v, "OperationResultCode") }

// MarshalText renders the protocol name of v.
func (v OperationResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v OperationResultCode) IsKnown() bool {
	_, ok := operationResultCodeNames[v]
	return ok
}

// OperationResultTr is the typed result of an operation that ran.
type OperationResultTr struct {
	Type                                OperationType
	CreateAccountResult                 *CreateAccountResult
	PaymentResult                       *PaymentResult
	PathPaymentStrictReceiveResult      *PathPaymentStrictReceiveResult
	ManageSellOfferResult               *ManageSellOfferResult
	CreatePassiveSellOfferResult        *ManageSellOfferResult
	SetOptionsResult                    *SetOptionsResult
	ChangeTrustResult                   *ChangeTrustResult
	AllowTrustResult                    *AllowTrustResult
	AccountMergeResult                  *AccountMergeResult
	InflationResult                     *InflationResult
	ManageDataResult                    *ManageDataResult
	BumpSeqResult                       *BumpSequenceResult
	ManageBuyOfferResult                *ManageBuyOfferResult
	PathPaymentStrictSendResult         *PathPaymentStrictSendResult
	CreateClaimableBalanceResult        *CreateClaimableBalanceResult
	ClaimClaimableBalanceResult         *ClaimClaimableBalanceResult
	BeginSponsoringFutureReservesResult *BeginSponsoringFutureReservesResult
	EndSponsoringFutureReservesResult   *EndSponsoringFutureReservesResult
	RevokeSponsorshipResult             *RevokeSponsorshipResult
	ClawbackResult                      *ClawbackResult
	ClawbackClaimableBalanceResult      *ClawbackClaimableBalanceResult
	SetTrustLineFlagsResult             *SetTrustLineFlagsResult
	LiquidityPoolDepositResult          *LiquidityPoolDepositResult
	LiquidityPoolWithdrawResult         *LiquidityPoolWithdrawResult
	InvokeHostFunctionResult            *InvokeHostFunctionResult
	ExtendFootprintTTLResult            *ExtendFootprintTTLResult
	RestoreFootprintResult              *RestoreFootprintResult
}

// Encode writes an OperationResultTr in XDR format.
func (ort *OperationResultTr) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ort.Type)
	switch ort.Type {
	case OperationTypeCreateAccount:
		return xdr.EncodeArm(buf, ort.CreateAccountResult, "OperationResultTr", ort.Type)
	case OperationTypePayment:
		return xdr.EncodeArm(buf, ort.PaymentResult, "OperationResultTr", ort.Type)
	case OperationTypePathPaymentStrictReceive:
		return xdr.EncodeArm(buf, ort.PathPaymentStrictReceiveResult, "OperationResultTr", ort.Type)
	case OperationTypeManageSellOffer:
		return xdr.EncodeArm(buf, ort.ManageSellOfferResult, "OperationResultTr", ort.Type)
	case OperationTypeCreatePassiveSellOffer:
		return xdr.EncodeArm(buf, ort.CreatePassiveSellOfferResult, "OperationResultTr", ort.Type)
	case OperationTypeSetOptions:
		return xdr.EncodeArm(buf, ort.SetOptionsResult, "OperationResultTr", ort.Type)
	case OperationTypeChangeTrust:
		return xdr.EncodeArm(buf, ort.ChangeTrustResult, "OperationResultTr", ort.Type)
	case OperationTypeAllowTrust:
		return xdr.EncodeArm(buf, ort.AllowTrustResult, "OperationResultTr", ort.Type)
	case OperationTypeAccountMerge:
		return xdr.EncodeArm(buf, ort.AccountMergeResult, "OperationResultTr", ort.Type)
	case OperationTypeInflation:
		return xdr.EncodeArm(buf, ort.InflationResult, "OperationResultTr", ort.Type)
	case OperationTypeManageData:
		return xdr.EncodeArm(buf, ort.ManageDataResult, "OperationResultTr", ort.Type)
	case OperationTypeBumpSequence:
		return xdr.EncodeArm(buf, ort.BumpSeqResult, "OperationResultTr", ort.Type)
	case OperationTypeManageBuyOffer:
		return xdr.EncodeArm(buf, ort.ManageBuyOfferResult, "OperationResultTr", ort.Type)
	case OperationTypePathPaymentStrictSend:
		return xdr.EncodeArm(buf, ort.PathPaymentStrictSendResult, "OperationResultTr", ort.Type)
	case OperationTypeCreateClaimableBalance:
		return xdr.EncodeArm(buf, ort.CreateClaimableBalanceResult, "OperationResultTr", ort.Type)
	case OperationTypeClaimClaimableBalance:
		return xdr.EncodeArm(buf, ort.ClaimClaimableBalanceResult, "OperationResultTr", ort.Type)
	case OperationTypeBeginSponsoringFutureReserves:
		return xdr.EncodeArm(buf, ort.BeginSponsoringFutureReservesResult, "OperationResultTr", ort.Type)
	case OperationTypeEndSponsoringFutureReserves:
		return xdr.EncodeArm(buf, ort.EndSponsoringFutureReservesResult, "OperationResultTr", ort.Type)
	case OperationTypeRevokeSponsorship:
		return xdr.EncodeArm(buf, ort.RevokeSponsorshipResult, "OperationResultTr", ort.Type)
	case OperationTypeClawback:
		return xdr.EncodeArm(buf, ort.ClawbackResult, "OperationResultTr", ort.Type)
	case OperationTypeClawbackClaimableBalance:
		return xdr.EncodeArm(buf, ort.ClawbackClaimableBalanceResult, "OperationResultTr", ort.Type)
	case OperationTypeSetTrustLineFlags:
		return xdr.EncodeArm(buf, ort.SetTrustLineFlagsResult, "OperationResultTr", ort.Type)
	case OperationTypeLiquidityPoolDeposit:
		return xdr.EncodeArm(buf, ort.LiquidityPoolDepositResult, "OperationResultTr", ort.Type)
	case OperationTypeLiquidityPoolWithdraw:
		return xdr.EncodeArm(buf, ort.LiquidityPoolWithdrawResult, "OperationResultTr", ort.Type)
	case OperationTypeInvokeHostFunction:
		return xdr.EncodeArm(buf, ort.InvokeHostFunctionResult, "OperationResultTr", ort.Type)
	case OperationTypeExtendFootprintTTL:
		return xdr.EncodeArm(buf, ort.ExtendFootprintTTLResult, "OperationResultTr", ort.Type)
	case OperationTypeRestoreFootprint:
		return xdr.EncodeArm(buf, ort.RestoreFootprintResult, "OperationResultTr", ort.Type)
	}
	return nil
}

// Decode reads an OperationResultTr from XDR format.
func (ort *OperationResultTr) Decode(c *xdr.Cursor) error {
	*ort = OperationResultTr{}
	var err error
	if ort.Type, err = xdr.DecodeUnionDiscriminant[OperationType](c); err != nil {
		return fmt.Errorf("decode operation result tr type: %w", err)
	}
	switch ort.Type {
	case OperationTypeCreateAccount:
		ort.CreateAccountResult, err = xdr.DecodeArm[CreateAccountResult](c)
	case OperationTypePayment:
		ort.PaymentResult, err = xdr.DecodeArm[PaymentResult](c)
	case OperationTypePathPaymentStrictReceive:
		ort.PathPaymentStrictReceiveResult, err = xdr.DecodeArm[PathPaymentStrictReceiveResult](c)
	case OperationTypeManageSellOffer:
		ort.ManageSellOfferResult, err = xdr.DecodeArm[ManageSellOfferResult](c)
	case OperationTypeCreatePassiveSellOffer:
		ort.CreatePassiveSellOfferResult, err = xdr.DecodeArm[ManageSellOfferResult](c)
	case OperationTypeSetOptions:
		ort.SetOptionsResult, err = xdr.DecodeArm[SetOptionsResult](c)
	case OperationTypeChangeTrust:
		ort.ChangeTrustResult, err = xdr.DecodeArm[ChangeTrustResult](c)
	case OperationTypeAllowTrust:
		ort.AllowTrustResult, err = xdr.DecodeArm[AllowTrustResult](c)
	case OperationTypeAccountMerge:
		ort.AccountMergeResult, err = xdr.DecodeArm[AccountMergeResult](c)
	case OperationTypeInflation:
		ort.InflationResult, err = xdr.DecodeArm[InflationResult](c)
	case OperationTypeManageData:
		ort.ManageDataResult, err = xdr.DecodeArm[ManageDataResult](c)
	case OperationTypeBumpSequence:
		ort.BumpSeqResult, err = xdr.DecodeArm[BumpSequenceResult](c)
	case OperationTypeManageBuyOffer:
		ort.ManageBuyOfferResult, err = xdr.DecodeArm[ManageBuyOfferResult](c)
	case OperationTypePathPaymentStrictSend:
		ort.PathPaymentStrictSendResult, err = xdr.DecodeArm[PathPaymentStrictSendResult](c)
	case OperationTypeCreateClaimableBalance:
		ort.CreateClaimableBalanceResult, err = xdr.DecodeArm[CreateClaimableBalanceResult](c)
	case OperationTypeClaimClaimableBalance:
		ort.ClaimClaimableBalanceResult, err = xdr.DecodeArm[ClaimClaimableBalanceResult](c)
	case OperationTypeBeginSponsoringFutureReserves:
		ort.BeginSponsoringFutureReservesResult, err = xdr.DecodeArm[BeginSponsoringFutureReservesResult](c)
	case OperationTypeEndSponsoringFutureReserves:
		ort.EndSponsoringFutureReservesResult, err = xdr.DecodeArm[EndSponsoringFutureReservesResult](c)
	case OperationTypeRevokeSponsorship:
		ort.RevokeSponsorshipResult, err = xdr.DecodeArm[RevokeSponsorshipResult](c)
	case OperationTypeClawback:
		ort.ClawbackResult, err = xdr.DecodeArm[ClawbackResult](c)
	case OperationTypeClawbackClaimableBalance:
		ort.ClawbackClaimableBalanceResult, err = xdr.DecodeArm[ClawbackClaimableBalanceResult](c)
	case OperationTypeSetTrustLineFlags:
		ort.SetTrustLineFlagsResult, err = xdr.DecodeArm[SetTrustLineFlagsResult](c)
	case OperationTypeLiquidityPoolDeposit:
		ort.LiquidityPoolDepositResult, err = xdr.DecodeArm[LiquidityPoolDepositResult](c)
	case OperationTypeLiquidityPoolWithdraw:
		ort.LiquidityPoolWithdrawResult, err = xdr.DecodeArm[LiquidityPoolWithdrawResult](c)
	case OperationTypeInvokeHostFunction:
		ort.InvokeHostFunctionResult, err = xdr.DecodeArm[InvokeHostFunctionResult](c)
	case OperationTypeExtendFootprintTTL:
		ort.ExtendFootprintTTLResult, err = xdr.DecodeArm[ExtendFootprintTTLResult](c)
	case OperationTypeRestoreFootprint:
		ort.RestoreFootprintResult, err = xdr.DecodeArm[RestoreFootprintResult](c)
	}
	if err != nil {
		return fmt.Errorf("decode operation result tr %v: %w", ort.Type, err)
	}
	return nil
}

// OperationResult is the outcome of one operation.
type OperationResult struct {
	Code OperationResultCode
	Tr   *OperationResultTr
}

// Encode writes an OperationResult in XDR format.
func (or *OperationResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, or.Code)
	switch or.Code {
	case OperationResultCodeInner:
		return xdr.EncodeArm(buf, or.Tr, "OperationResult", or.Code)
	}
	return nil
}

// Decode reads an OperationResult from XDR format.
func (or *OperationResult) Decode(c *xdr.Cursor) error {
	*or = OperationResult{}
	var err error
	if or.Code, err = xdr.DecodeUnionDiscriminant[OperationResultCode](c); err != nil {
		return fmt.Errorf("decode operation result code: %w", err)
	}
	switch or.Code {
	case OperationResultCodeInner:
		or.Tr, err = xdr.DecodeArm[OperationResultTr](c)
	}
	if err != nil {
		return fmt.Errorf("decode operation result %v: %w", or.Code, err)
	}
	return nil
}

// Successful reports whether the operation ran and its typed result code is
// the success value. Every result code enum uses 0 for success.
func (or OperationResult) Successful() bool {
	if or.Code != OperationResultCodeInner || or.Tr == nil {
		return false
	}
	code, ok := or.Tr.code()
	return ok && code == 0
}

func (ort *OperationResultTr) code() (int32, bool) {
	switch ort.Type {
	case OperationTypeCreateAccount:
		return resultCode(ort.CreateAccountResult, func(r *CreateAccountResult) int32 { return int32(r.Code) })
	case OperationTypePayment:
		return resultCode(ort.PaymentResult, func(r *PaymentResult) int32 { return int32(r.Code) })
	case OperationTypePathPaymentStrictReceive:
		return resultCode(ort.PathPaymentStrictReceiveResult, func(r *PathPaymentStrictReceiveResult) int32 { return int32(r.Code) })
	case OperationTypeManageSellOffer:
		return resultCode(ort.ManageSellOfferResult, func(r *ManageSellOfferResult) int32 { return int32(r.Code) })
	case OperationTypeCreatePassiveSellOffer:
		return resultCode(ort.CreatePassiveSellOfferResult, func(r *ManageSellOfferResult) int32 { return int32(r.Code) })
	case OperationTypeSetOptions:
		return resultCode(ort.SetOptionsResult, func(r *SetOptionsResult) int32 { return int32(r.Code) })
	case OperationTypeChangeTrust:
		return resultCode(ort.ChangeTrustResult, func(r *ChangeTrustResult) int32 { return int32(r.Code) })
	case OperationTypeAllowTrust:
		return resultCode(ort.AllowTrustResult, func(r *AllowTrustResult) int32 { return int32(r.Code) })
	case OperationTypeAccountMerge:
		return resultCode(ort.AccountMergeResult, func(r *AccountMergeResult) int32 { return int32(r.Code) })
	case OperationTypeInflation:
		return resultCode(ort.InflationResult, func(r *InflationResult) int32 { return int32(r.Code) })
	case OperationTypeManageData:
		return resultCode(ort.ManageDataResult, func(r *ManageDataResult) int32 { return int32(r.Code) })
	case OperationTypeBumpSequence:
		return resultCode(ort.BumpSeqResult, func(r *BumpSequenceResult) int32 { return int32(r.Code) })
	case OperationTypeManageBuyOffer:
		return resultCode(ort.ManageBuyOfferResult, func(r *ManageBuyOfferResult) int32 { return int32(r.Code) })
	case OperationTypePathPaymentStrictSend:
		return resultCode(ort.PathPaymentStrictSendResult, func(r *PathPaymentStrictSendResult) int32 { return int32(r.Code) })
	case OperationTypeCreateClaimableBalance:
		return resultCode(ort.CreateClaimableBalanceResult, func(r *CreateClaimableBalanceResult) int32 { return int32(r.Code) })
	case OperationTypeClaimClaimableBalance:
		return resultCode(ort.ClaimClaimableBalanceResult, func(r *ClaimClaimableBalanceResult) int32 { return int32(r.Code) })
	case OperationTypeBeginSponsoringFutureReserves:
		return resultCode(ort.BeginSponsoringFutureReservesResult, func(r *BeginSponsoringFutureReservesResult) int32 { return int32(r.Code) })
	case OperationTypeEndSponsoringFutureReserves:
		return resultCode(ort.EndSponsoringFutureReservesResult, func(r *EndSponsoringFutureReservesResult) int32 { return int32(r.Code) })
	case OperationTypeRevokeSponsorship:
		return resultCode(ort.RevokeSponsorshipResult, func(r *RevokeSponsorshipResult) int32 { return int32(r.Code) })
	case OperationTypeClawback:
		return resultCode(ort.ClawbackResult, func(r *ClawbackResult) int32 { return int32(r.Code) })
	case OperationTypeClawbackClaimableBalance:
		return resultCode(ort.ClawbackClaimableBalanceResult, func(r *ClawbackClaimableBalanceResult) int32 { return int32(r.Code) })
	case OperationTypeSetTrustLineFlags:
		return resultCode(ort.SetTrustLineFlagsResult, func(r *SetTrustLineFlagsResult) int32 { return int32(r.Code) })
	case OperationTypeLiquidityPoolDeposit:
		return resultCode(ort.LiquidityPoolDepositResult, func(r *LiquidityPoolDepositResult) int32 { return int32(r.Code) })
	case OperationTypeLiquidityPoolWithdraw:
		return resultCode(ort.LiquidityPoolWithdrawResult, func(r *LiquidityPoolWithdrawResult) int32 { return int32(r.Code) })
	case OperationTypeInvokeHostFunction:
		return resultCode(ort.InvokeHostFunctionResult, func(r *InvokeHostFunctionResult) int32 { return int32(r.Code) })
	case OperationTypeExtendFootprintTTL:
		return resultCode(ort.ExtendFootprintTTLResult, func(r *ExtendFootprintTTLResult) int32 { return int32(r.Code) })
	case OperationTypeRestoreFootprint:
		return resultCode(ort.RestoreFootprintResult, func(r *RestoreFootprintResult) int32 { return int32(r.Code) })
	}
	return 0, false
}

func resultCode[R any](r *R, code func(*R) int32) (int32, bool) {
	if r == nil {
		return 0, false
	}
	return code(r), true
}
