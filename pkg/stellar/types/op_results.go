package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// CreateAccountResultCode enumerates create account result code values.
type CreateAccountResultCode int32

const (
	CreateAccountResultCodeSuccess      CreateAccountResultCode = 0
	CreateAccountResultCodeMalformed    CreateAccountResultCode = -1
	CreateAccountResultCodeUnderfunded  CreateAccountResultCode = -2
	CreateAccountResultCodeLowReserve   CreateAccountResultCode = -3
	CreateAccountResultCodeAlreadyExist CreateAccountResultCode = -4
)

var createAccountResultCodeNames = map[CreateAccountResultCode]string{
	CreateAccountResultCodeSuccess:      "CREATE_ACCOUNT_SUCCESS",
	CreateAccountResultCodeMalformed:    "CREATE_ACCOUNT_MALFORMED",
	CreateAccountResultCodeUnderfunded:  "CREATE_ACCOUNT_UNDERFUNDED",
	CreateAccountResultCodeLowReserve:   "CREATE_ACCOUNT_LOW_RESERVE",
	CreateAccountResultCodeAlreadyExist: "CREATE_ACCOUNT_ALREADY_EXIST",
}

func (v CreateAccountResultCode) String() string { return enumString(createAccountResultCodeNames, v, "CreateAccountResultCode") }

// MarshalText renders the protocol name of v.
func (v CreateAccountResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v CreateAccountResultCode) IsKnown() bool {
	_, ok := createAccountResultCodeNames[v]
	return ok
}

// CreateAccountResult is the outcome of the operation, switched on CreateAccountResultCode.
type CreateAccountResult struct {
	Code CreateAccountResultCode
}

// Encode writes a CreateAccountResult in XDR format.
func (car *CreateAccountResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, car.Code)
	return nil
}

// Decode reads a CreateAccountResult from XDR format.
func (car *CreateAccountResult) Decode(c *xdr.Cursor) error {
	*car = CreateAccountResult{}
	var err error
	if car.Code, err = xdr.DecodeUnionDiscriminant[CreateAccountResultCode](c); err != nil {
		return fmt.Errorf("decode create account result code: %w", err)
	}
	return nil
}

// PaymentResultCode enumerates payment result code values.
type PaymentResultCode int32

const (
	PaymentResultCodeSuccess          PaymentResultCode = 0
	PaymentResultCodeMalformed        PaymentResultCode = -1
	PaymentResultCodeUnderfunded      PaymentResultCode = -2
	PaymentResultCodeSrcNoTrust       PaymentResultCode = -3
	PaymentResultCodeSrcNotAuthorized PaymentResultCode = -4
	PaymentResultCodeNoDestination    PaymentResultCode = -5
	PaymentResultCodeNoTrust          PaymentResultCode = -6
	PaymentResultCodeNotAuthorized    PaymentResultCode = -7
	PaymentResultCodeLineFull         PaymentResultCode = -8
	PaymentResultCodeNoIssuer         PaymentResultCode = -9
)

var paymentResultCodeNames = map[PaymentResultCode]string{
	PaymentResultCodeSuccess:          "PAYMENT_SUCCESS",
	PaymentResultCodeMalformed:        "PAYMENT_MALFORMED",
	PaymentResultCodeUnderfunded:      "PAYMENT_UNDERFUNDED",
	PaymentResultCodeSrcNoTrust:       "PAYMENT_SRC_NO_TRUST",
	PaymentResultCodeSrcNotAuthorized: "PAYMENT_SRC_NOT_AUTHORIZED",
	PaymentResultCodeNoDestination:    "PAYMENT_NO_DESTINATION",
	PaymentResultCodeNoTrust:          "PAYMENT_NO_TRUST",
	PaymentResultCodeNotAuthorized:    "PAYMENT_NOT_AUTHORIZED",
	PaymentResultCodeLineFull:         "PAYMENT_LINE_FULL",
	PaymentResultCodeNoIssuer:         "PAYMENT_NO_ISSUER",
}

func (v PaymentResultCode) String() string { return enumString(paymentResultCodeNames, v, "PaymentResultCode") }

// MarshalText renders the protocol name of v.
func (v PaymentResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v PaymentResultCode) IsKnown() bool {
	_, ok := paymentResultCodeNames[v]
	return ok
}

// PaymentResult is the outcome of the operation, switched on PaymentResultCode.
type PaymentResult struct {
	Code PaymentResultCode
}

// Encode writes a PaymentResult in XDR format.
func (pr *PaymentResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, pr.Code)
	return nil
}

// Decode reads a PaymentResult from XDR format.
func (pr *PaymentResult) Decode(c *xdr.Cursor) error {
	*pr = PaymentResult{}
	var err error
	if pr.Code, err = xdr.DecodeUnionDiscriminant[PaymentResultCode](c); err != nil {
		return fmt.Errorf("decode payment result code: %w", err)
	}
	return nil
}

// PathPaymentStrictReceiveResultSuccess lists the offers crossed and the
// final payment.
type PathPaymentStrictReceiveResultSuccess struct {
	Offers []ClaimAtom
	Last   SimplePaymentResult
}

// Encode writes a PathPaymentStrictReceiveResultSuccess in XDR format.
func (pps *PathPaymentStrictReceiveResultSuccess) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, pps.Offers); err != nil {
		return fmt.Errorf("encode path payment strict receive result success offers: %w", err)
	}
	if err := pps.Last.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict receive result success last: %w", err)
	}
	return nil
}

// Decode reads a PathPaymentStrictReceiveResultSuccess from XDR format.
func (pps *PathPaymentStrictReceiveResultSuccess) Decode(c *xdr.Cursor) error {
	var err error
	if pps.Offers, err = xdr.DecodeArray[ClaimAtom](c); err != nil {
		return fmt.Errorf("decode path payment strict receive result success offers: %w", err)
	}
	if err = pps.Last.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict receive result success last: %w", err)
	}
	return nil
}

// PathPaymentStrictReceiveResultCode enumerates path payment strict receive result code values.
type PathPaymentStrictReceiveResultCode int32

const (
	PathPaymentStrictReceiveResultCodeSuccess          PathPaymentStrictReceiveResultCode = 0
	PathPaymentStrictReceiveResultCodeMalformed        PathPaymentStrictReceiveResultCode = -1
	PathPaymentStrictReceiveResultCodeUnderfunded      PathPaymentStrictReceiveResultCode = -2
	PathPaymentStrictReceiveResultCodeSrcNoTrust       PathPaymentStrictReceiveResultCode = -3
	PathPaymentStrictReceiveResultCodeSrcNotAuthorized PathPaymentStrictReceiveResultCode = -4
	PathPaymentStrictReceiveResultCodeNoDestination    PathPaymentStrictReceiveResultCode = -5
	PathPaymentStrictReceiveResultCodeNoTrust          PathPaymentStrictReceiveResultCode = -6
	PathPaymentStrictReceiveResultCodeNotAuthorized    PathPaymentStrictReceiveResultCode = -7
	PathPaymentStrictReceiveResultCodeLineFull         PathPaymentStrictReceiveResultCode = -8
	PathPaymentStrictReceiveResultCodeNoIssuer         PathPaymentStrictReceiveResultCode = -9
	PathPaymentStrictReceiveResultCodeTooFewOffers     PathPaymentStrictReceiveResultCode = -10
	PathPaymentStrictReceiveResultCodeOfferCrossSelf   PathPaymentStrictReceiveResultCode = -11
	PathPaymentStrictReceiveResultCodeOverSendmax      PathPaymentStrictReceiveResultCode = -12
)

var pathPaymentStrictReceiveResultCodeNames = map[PathPaymentStrictReceiveResultCode]string{
	PathPaymentStrictReceiveResultCodeSuccess:          "PATH_PAYMENT_STRICT_RECEIVE_SUCCESS",
	PathPaymentStrictReceiveResultCodeMalformed:        "PATH_PAYMENT_STRICT_RECEIVE_MALFORMED",
	PathPaymentStrictReceiveResultCodeUnderfunded:      "PATH_PAYMENT_STRICT_RECEIVE_UNDERFUNDED",
	PathPaymentStrictReceiveResultCodeSrcNoTrust:       "PATH_PAYMENT_STRICT_RECEIVE_SRC_NO_TRUST",
	PathPaymentStrictReceiveResultCodeSrcNotAuthorized: "PATH_PAYMENT_STRICT_RECEIVE_SRC_NOT_AUTHORIZED",
	PathPaymentStrictReceiveResultCodeNoDestination:    "PATH_PAYMENT_STRICT_RECEIVE_NO_DESTINATION",
	PathPaymentStrictReceiveResultCodeNoTrust:          "PATH_PAYMENT_STRICT_RECEIVE_NO_TRUST",
	PathPaymentStrictReceiveResultCodeNotAuthorized:    "PATH_PAYMENT_STRICT_RECEIVE_NOT_AUTHORIZED",
	PathPaymentStrictReceiveResultCodeLineFull:         "PATH_PAYMENT_STRICT_RECEIVE_LINE_FULL",
	PathPaymentStrictReceiveResultCodeNoIssuer:         "PATH_PAYMENT_STRICT_RECEIVE_NO_ISSUER",
	PathPaymentStrictReceiveResultCodeTooFewOffers:     "PATH_PAYMENT_STRICT_RECEIVE_TOO_FEW_OFFERS",
	PathPaymentStrictReceiveResultCodeOfferCrossSelf:   "PATH_PAYMENT_STRICT_RECEIVE_OFFER_CROSS_SELF",
	PathPaymentStrictReceiveResultCodeOverSendmax:      "PATH_PAYMENT_STRICT_RECEIVE_OVER_SENDMAX",
}

func (v PathPaymentStrictReceiveResultCode) String() string { return enumString(pathPaymentStrictReceiveResultCodeNames, v, "PathPaymentStrictReceiveResultCode") }

// MarshalText renders the protocol name of v.
func (v PathPaymentStrictReceiveResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v PathPaymentStrictReceiveResultCode) IsKnown() bool {
	_, ok := pathPaymentStrictReceiveResultCodeNames[v]
	return ok
}

// PathPaymentStrictReceiveResult is the outcome of the operation, switched on PathPaymentStrictReceiveResultCode.
type PathPaymentStrictReceiveResult struct {
	Code     PathPaymentStrictReceiveResultCode
	Success  *PathPaymentStrictReceiveResultSuccess
	NoIssuer *Asset
}

// Encode writes a PathPaymentStrictReceiveResult in XDR format.
func (pps *PathPaymentStrictReceiveResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, pps.Code)
	switch pps.Code {
	case PathPaymentStrictReceiveResultCodeSuccess:
		return xdr.EncodeArm(buf, pps.Success, "PathPaymentStrictReceiveResult", pps.Code)
	case PathPaymentStrictReceiveResultCodeNoIssuer:
		return xdr.EncodeArm(buf, pps.NoIssuer, "PathPaymentStrictReceiveResult", pps.Code)
	}
	return nil
}

// Decode reads a PathPaymentStrictReceiveResult from XDR format.
func (pps *PathPaymentStrictReceiveResult) Decode(c *xdr.Cursor) error {
	*pps = PathPaymentStrictReceiveResult{}
	var err error
	if pps.Code, err = xdr.DecodeUnionDiscriminant[PathPaymentStrictReceiveResultCode](c); err != nil {
		return fmt.Errorf("decode path payment strict receive result code: %w", err)
	}
	switch pps.Code {
	case PathPaymentStrictReceiveResultCodeSuccess:
		pps.Success, err = xdr.DecodeArm[PathPaymentStrictReceiveResultSuccess](c)
	case PathPaymentStrictReceiveResultCodeNoIssuer:
		pps.NoIssuer, err = xdr.DecodeArm[Asset](c)
	}
	if err != nil {
		return fmt.Errorf("decode path payment strict receive result %v: %w", pps.Code, err)
	}
	return nil
}

// PathPaymentStrictSendResultSuccess lists the offers crossed and the
// final payment.
type PathPaymentStrictSendResultSuccess struct {
	Offers []ClaimAtom
	Last   SimplePaymentResult
}

// Encode writes a PathPaymentStrictSendResultSuccess in XDR format.
func (pps *PathPaymentStrictSendResultSuccess) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, pps.Offers); err != nil {
		return fmt.Errorf("encode path payment strict send result success offers: %w", err)
	}
	if err := pps.Last.Encode(buf); err != nil {
		return fmt.Errorf("encode path payment strict send result success last: %w", err)
	}
	return nil
}

// Decode reads a PathPaymentStrictSendResultSuccess from XDR format.
func (pps *PathPaymentStrictSendResultSuccess) Decode(c *xdr.Cursor) error {
	var err error
	if pps.Offers, err = xdr.DecodeArray[ClaimAtom](c); err != nil {
		return fmt.Errorf("decode path payment strict send result success offers: %w", err)
	}
	if err = pps.Last.Decode(c); err != nil {
		return fmt.Errorf("decode path payment strict send result success last: %w", err)
	}
	return nil
}

// PathPaymentStrictSendResultCode enumerates path payment strict send result code values.
type PathPaymentStrictSendResultCode int32

const (
	PathPaymentStrictSendResultCodeSuccess          PathPaymentStrictSendResultCode = 0
	PathPaymentStrictSendResultCodeMalformed        PathPaymentStrictSendResultCode = -1
	PathPaymentStrictSendResultCodeUnderfunded      PathPaymentStrictSendResultCode = -2
	PathPaymentStrictSendResultCodeSrcNoTrust       PathPaymentStrictSendResultCode = -3
	PathPaymentStrictSendResultCodeSrcNotAuthorized PathPaymentStrictSendResultCode = -4
	PathPaymentStrictSendResultCodeNoDestination    PathPaymentStrictSendResultCode = -5
	PathPaymentStrictSendResultCodeNoTrust          PathPaymentStrictSendResultCode = -6
	PathPaymentStrictSendResultCodeNotAuthorized    PathPaymentStrictSendResultCode = -7
	PathPaymentStrictSendResultCodeLineFull         PathPaymentStrictSendResultCode = -8
	PathPaymentStrictSendResultCodeNoIssuer         PathPaymentStrictSendResultCode = -9
	PathPaymentStrictSendResultCodeTooFewOffers     PathPaymentStrictSendResultCode = -10
	PathPaymentStrictSendResultCodeOfferCrossSelf   PathPaymentStrictSendResultCode = -11
	PathPaymentStrictSendResultCodeUnderDestmin     PathPaymentStrictSendResultCode = -12
)

var pathPaymentStrictSendResultCodeNames = map[PathPaymentStrictSendResultCode]string{
	PathPaymentStrictSendResultCodeSuccess:          "PATH_PAYMENT_STRICT_SEND_SUCCESS",
	PathPaymentStrictSendResultCodeMalformed:        "PATH_PAYMENT_STRICT_SEND_MALFORMED",
	PathPaymentStrictSendResultCodeUnderfunded:      "PATH_PAYMENT_STRICT_SEND_UNDERFUNDED",
	PathPaymentStrictSendResultCodeSrcNoTrust:       "PATH_PAYMENT_STRICT_SEND_SRC_NO_TRUST",
	PathPaymentStrictSendResultCodeSrcNotAuthorized: "PATH_PAYMENT_STRICT_SEND_SRC_NOT_AUTHORIZED",
	PathPaymentStrictSendResultCodeNoDestination:    "PATH_PAYMENT_STRICT_SEND_NO_DESTINATION",
	PathPaymentStrictSendResultCodeNoTrust:          "PATH_PAYMENT_STRICT_SEND_NO_TRUST",
	PathPaymentStrictSendResultCodeNotAuthorized:    "PATH_PAYMENT_STRICT_SEND_NOT_AUTHORIZED",
	PathPaymentStrictSendResultCodeLineFull:         "PATH_PAYMENT_STRICT_SEND_LINE_FULL",
	PathPaymentStrictSendResultCodeNoIssuer:         "PATH_PAYMENT_STRICT_SEND_NO_ISSUER",
	PathPaymentStrictSendResultCodeTooFewOffers:     "PATH_PAYMENT_STRICT_SEND_TOO_FEW_OFFERS",
	PathPaymentStrictSendResultCodeOfferCrossSelf:   "PATH_PAYMENT_STRICT_SEND_OFFER_CROSS_SELF",
	PathPaymentStrictSendResultCodeUnderDestmin:     "PATH_PAYMENT_STRICT_SEND_UNDER_DESTMIN",
}

func (v PathPaymentStrictSendResultCode) String() string { return enumString(pathPaymentStrictSendResultCodeNames, v, "PathPaymentStrictSendResultCode") }

// MarshalText renders the protocol name of v.
func (v PathPaymentStrictSendResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v PathPaymentStrictSendResultCode) IsKnown() bool {
	_, ok := pathPaymentStrictSendResultCodeNames[v]
	return ok
}

// PathPaymentStrictSendResult is the outcome of the operation, switched on PathPaymentStrictSendResultCode.
type PathPaymentStrictSendResult struct {
	Code     PathPaymentStrictSendResultCode
	Success  *PathPaymentStrictSendResultSuccess
	NoIssuer *Asset
}

// Encode writes a PathPaymentStrictSendResult in XDR format.
func (pps *PathPaymentStrictSendResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, pps.Code)
	switch pps.Code {
	case PathPaymentStrictSendResultCodeSuccess:
		return xdr.EncodeArm(buf, pps.Success, "PathPaymentStrictSendResult", pps.Code)
	case PathPaymentStrictSendResultCodeNoIssuer:
		return xdr.EncodeArm(buf, pps.NoIssuer, "PathPaymentStrictSendResult", pps.Code)
	}
	return nil
}

// Decode reads a PathPaymentStrictSendResult from XDR format.
func (pps *PathPaymentStrictSendResult) Decode(c *xdr.Cursor) error {
	*pps = PathPaymentStrictSendResult{}
	var err error
	if pps.Code, err = xdr.DecodeUnionDiscriminant[PathPaymentStrictSendResultCode](c); err != nil {
		return fmt.Errorf("decode path payment strict send result code: %w", err)
	}
	switch pps.Code {
	case PathPaymentStrictSendResultCodeSuccess:
		pps.Success, err = xdr.DecodeArm[PathPaymentStrictSendResultSuccess](c)
	case PathPaymentStrictSendResultCodeNoIssuer:
		pps.NoIssuer, err = xdr.DecodeArm[Asset](c)
	}
	if err != nil {
		return fmt.Errorf("decode path payment strict send result %v: %w", pps.Code, err)
	}
	return nil
}

// ManageSellOfferResultCode enumerates manage sell offer result code values.
type ManageSellOfferResultCode int32

const (
	ManageSellOfferResultCodeSuccess           ManageSellOfferResultCode = 0
	ManageSellOfferResultCodeMalformed         ManageSellOfferResultCode = -1
	ManageSellOfferResultCodeSellNoTrust       ManageSellOfferResultCode = -2
	ManageSellOfferResultCodeBuyNoTrust        ManageSellOfferResultCode = -3
	ManageSellOfferResultCodeSellNotAuthorized ManageSellOfferResultCode = -4
	ManageSellOfferResultCodeBuyNotAuthorized  ManageSellOfferResultCode = -5
	ManageSellOfferResultCodeLineFull          ManageSellOfferResultCode = -6
	ManageSellOfferResultCodeUnderfunded       ManageSellOfferResultCode = -7
	ManageSellOfferResultCodeCrossSelf         ManageSellOfferResultCode = -8
	ManageSellOfferResultCodeSellNoIssuer      ManageSellOfferResultCode = -9
	ManageSellOfferResultCodeBuyNoIssuer       ManageSellOfferResultCode = -10
	ManageSellOfferResultCodeNotFound          ManageSellOfferResultCode = -11
	ManageSellOfferResultCodeLowReserve        ManageSellOfferResultCode = -12
)

var manageSellOfferResultCodeNames = map[ManageSellOfferResultCode]string{
	ManageSellOfferResultCodeSuccess:           "MANAGE_SELL_OFFER_SUCCESS",
	ManageSellOfferResultCodeMalformed:         "MANAGE_SELL_OFFER_MALFORMED",
	ManageSellOfferResultCodeSellNoTrust:       "MANAGE_SELL_OFFER_SELL_NO_TRUST",
	ManageSellOfferResultCodeBuyNoTrust:        "MANAGE_SELL_OFFER_BUY_NO_TRUST",
	ManageSellOfferResultCodeSellNotAuthorized: "MANAGE_SELL_OFFER_SELL_NOT_AUTHORIZED",
	ManageSellOfferResultCodeBuyNotAuthorized:  "MANAGE_SELL_OFFER_BUY_NOT_AUTHORIZED",
	ManageSellOfferResultCodeLineFull:          "MANAGE_SELL_OFFER_LINE_FULL",
	ManageSellOfferResultCodeUnderfunded:       "MANAGE_SELL_OFFER_UNDERFUNDED",
	ManageSellOfferResultCodeCrossSelf:         "MANAGE_SELL_OFFER_CROSS_SELF",
	ManageSellOfferResultCodeSellNoIssuer:      "MANAGE_SELL_OFFER_SELL_NO_ISSUER",
	ManageSellOfferResultCodeBuyNoIssuer:       "MANAGE_SELL_OFFER_BUY_NO_ISSUER",
	ManageSellOfferResultCodeNotFound:          "MANAGE_SELL_OFFER_NOT_FOUND",
	ManageSellOfferResultCodeLowReserve:        "MANAGE_SELL_OFFER_LOW_RESERVE",
}

func (v ManageSellOfferResultCode) String() string { return enumString(manageSellOfferResultCodeNames, v, "ManageSellOfferResultCode") }

// MarshalText renders the protocol name of v.
func (v ManageSellOfferResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ManageSellOfferResultCode) IsKnown() bool {
	_, ok := manageSellOfferResultCodeNames[v]
	return ok
}

// ManageSellOfferResult is the result of ManageSellOfferOp and CreatePassiveSellOfferOp.
type ManageSellOfferResult struct {
	Code    ManageSellOfferResultCode
	Success *ManageOfferSuccessResult
}

// Encode writes a ManageSellOfferResult in XDR format.
func (mso *ManageSellOfferResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, mso.Code)
	switch mso.Code {
	case ManageSellOfferResultCodeSuccess:
		return xdr.EncodeArm(buf, mso.Success, "ManageSellOfferResult", mso.Code)
	}
	return nil
}

// Decode reads a ManageSellOfferResult from XDR format.
func (mso *ManageSellOfferResult) Decode(c *xdr.Cursor) error {
	*mso = ManageSellOfferResult{}
	var err error
	if mso.Code, err = xdr.DecodeUnionDiscriminant[ManageSellOfferResultCode](c); err != nil {
		return fmt.Errorf("decode manage sell offer result code: %w", err)
	}
	switch mso.Code {
	case ManageSellOfferResultCodeSuccess:
		mso.Success, err = xdr.DecodeArm[ManageOfferSuccessResult](c)
	}
	if err != nil {
		return fmt.Errorf("decode manage sell offer result %v: %w", mso.Code, err)
	}
	return nil
}

// ManageBuyOfferResultCode enumerates manage buy offer result code values.
type ManageBuyOfferResultCode int32

const (
	ManageBuyOfferResultCodeSuccess           ManageBuyOfferResultCode = 0
	ManageBuyOfferResultCodeMalformed         ManageBuyOfferResultCode = -1
	ManageBuyOfferResultCodeSellNoTrust       ManageBuyOfferResultCode = -2
	ManageBuyOfferResultCodeBuyNoTrust        ManageBuyOfferResultCode = -3
	ManageBuyOfferResultCodeSellNotAuthorized ManageBuyOfferResultCode = -4
	ManageBuyOfferResultCodeBuyNotAuthorized  ManageBuyOfferResultCode = -5
	ManageBuyOfferResultCodeLineFull          ManageBuyOfferResultCode = -6
	ManageBuyOfferResultCodeUnderfunded       ManageBuyOfferResultCode = -7
	ManageBuyOfferResultCodeCrossSelf         ManageBuyOfferResultCode = -8
	ManageBuyOfferResultCodeSellNoIssuer      ManageBuyOfferResultCode = -9
	ManageBuyOfferResultCodeBuyNoIssuer       ManageBuyOfferResultCode = -10
	ManageBuyOfferResultCodeNotFound          ManageBuyOfferResultCode = -11
	ManageBuyOfferResultCodeLowReserve        ManageBuyOfferResultCode = -12
)

var manageBuyOfferResultCodeNames = map[ManageBuyOfferResultCode]string{
	ManageBuyOfferResultCodeSuccess:           "MANAGE_BUY_OFFER_SUCCESS",
	ManageBuyOfferResultCodeMalformed:         "MANAGE_BUY_OFFER_MALFORMED",
	ManageBuyOfferResultCodeSellNoTrust:       "MANAGE_BUY_OFFER_SELL_NO_TRUST",
	ManageBuyOfferResultCodeBuyNoTrust:        "MANAGE_BUY_OFFER_BUY_NO_TRUST",
	ManageBuyOfferResultCodeSellNotAuthorized: "MANAGE_BUY_OFFER_SELL_NOT_AUTHORIZED",
	ManageBuyOfferResultCodeBuyNotAuthorized:  "MANAGE_BUY_OFFER_BUY_NOT_AUTHORIZED",
	ManageBuyOfferResultCodeLineFull:          "MANAGE_BUY_OFFER_LINE_FULL",
	ManageBuyOfferResultCodeUnderfunded:       "MANAGE_BUY_OFFER_UNDERFUNDED",
	ManageBuyOfferResultCodeCrossSelf:         "MANAGE_BUY_OFFER_CROSS_SELF",
	ManageBuyOfferResultCodeSellNoIssuer:      "MANAGE_BUY_OFFER_SELL_NO_ISSUER",
	ManageBuyOfferResultCodeBuyNoIssuer:       "MANAGE_BUY_OFFER_BUY_NO_ISSUER",
	ManageBuyOfferResultCodeNotFound:          "MANAGE_BUY_OFFER_NOT_FOUND",
	ManageBuyOfferResultCodeLowReserve:        "MANAGE_BUY_OFFER_LOW_RESERVE",
}

func (v ManageBuyOfferResultCode) String() string { return enumString(manageBuyOfferResultCodeNames, v, "ManageBuyOfferResultCode") }

// MarshalText renders the protocol name of v.
func (v ManageBuyOfferResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ManageBuyOfferResultCode) IsKnown() bool {
	_, ok := manageBuyOfferResultCodeNames[v]
	return ok
}

// ManageBuyOfferResult is the outcome of the operation, switched on ManageBuyOfferResultCode.
type ManageBuyOfferResult struct {
	Code    ManageBuyOfferResultCode
	Success *ManageOfferSuccessResult
}

// Encode writes a ManageBuyOfferResult in XDR format.
func (mbo *ManageBuyOfferResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, mbo.Code)
	switch mbo.Code {
	case ManageBuyOfferResultCodeSuccess:
		return xdr.EncodeArm(buf, mbo.Success, "ManageBuyOfferResult", mbo.Code)
	}
	return nil
}

// Decode reads a ManageBuyOfferResult from XDR format.
func (mbo *ManageBuyOfferResult) Decode(c *xdr.Cursor) error {
	*mbo = ManageBuyOfferResult{}
	var err error
	if mbo.Code, err = xdr.DecodeUnionDiscriminant[ManageBuyOfferResultCode](c); err != nil {
		return fmt.Errorf("decode manage buy offer result code: %w", err)
	}
	switch mbo.Code {
	case ManageBuyOfferResultCodeSuccess:
		mbo.Success, err = xdr.DecodeArm[ManageOfferSuccessResult](c)
	}
	if err != nil {
		return fmt.Errorf("decode manage buy offer result %v: %w", mbo.Code, err)
	}
	return nil
}

// SetOptionsResultCode enumerates set options result code values.
type SetOptionsResultCode int32

const (
	SetOptionsResultCodeSuccess               SetOptionsResultCode = 0
	SetOptionsResultCodeLowReserve            SetOptionsResultCode = -1
	SetOptionsResultCodeTooManySigners        SetOptionsResultCode = -2
	SetOptionsResultCodeBadFlags              SetOptionsResultCode = -3
	SetOptionsResultCodeInvalidInflation      SetOptionsResultCode = -4
	SetOptionsResultCodeCantChange            SetOptionsResultCode = -5
	SetOptionsResultCodeUnknownFlag           SetOptionsResultCode = -6
	SetOptionsResultCodeThresholdOutOfRange   SetOptionsResultCode = -7
	SetOptionsResultCodeBadSigner             SetOptionsResultCode = -8
	SetOptionsResultCodeInvalidHomeDomain     SetOptionsResultCode = -9
	SetOptionsResultCodeAuthRevocableRequired SetOptionsResultCode = -10
)

var setOptionsResultCodeNames = map[SetOptionsResultCode]string{
	SetOptionsResultCodeSuccess:               "SET_OPTIONS_SUCCESS",
	SetOptionsResultCodeLowReserve:            "SET_OPTIONS_LOW_RESERVE",
	SetOptionsResultCodeTooManySigners:        "SET_OPTIONS_TOO_MANY_SIGNERS",
	SetOptionsResultCodeBadFlags:              "SET_OPTIONS_BAD_FLAGS",
	SetOptionsResultCodeInvalidInflation:      "SET_OPTIONS_INVALID_INFLATION",
	SetOptionsResultCodeCantChange:            "SET_OPTIONS_CANT_CHANGE",
	SetOptionsResultCodeUnknownFlag:           "SET_OPTIONS_UNKNOWN_FLAG",
	SetOptionsResultCodeThresholdOutOfRange:   "SET_OPTIONS_THRESHOLD_OUT_OF_RANGE",
	SetOptionsResultCodeBadSigner:             "SET_OPTIONS_BAD_SIGNER",
	SetOptionsResultCodeInvalidHomeDomain:     "SET_OPTIONS_INVALID_HOME_DOMAIN",
	SetOptionsResultCodeAuthRevocableRequired: "SET_OPTIONS_AUTH_REVOCABLE_REQUIRED",
}

func (v SetOptionsResultCode) String() string { return enumString(setOptionsResultCodeNames, v, "SetOptionsResultCode") }

// MarshalText renders the protocol name of v.
func (v SetOptionsResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SetOptionsResultCode) IsKnown() bool {
	_, ok := setOptionsResultCodeNames[v]
	return ok
}

// SetOptionsResult is the outcome of the operation, switched on SetOptionsResultCode.
type SetOptionsResult struct {
	Code SetOptionsResultCode
}

// Encode writes a SetOptionsResult in XDR format.
func (sor *SetOptionsResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, sor.Code)
	return nil
}

// Decode reads a SetOptionsResult from XDR format.
func (sor *SetOptionsResult) Decode(c *xdr.Cursor) error {
	*sor = SetOptionsResult{}
	var err error
	if sor.Code, err = xdr.DecodeUnionDiscriminant[SetOptionsResultCode](c); err != nil {
		return fmt.Errorf("decode set options result code: %w", err)
	}
	return nil
}

// ChangeTrustResultCode enumerates change trust result code values.
type ChangeTrustResultCode int32

const (
	ChangeTrustResultCodeSuccess                    ChangeTrustResultCode = 0
	ChangeTrustResultCodeMalformed                  ChangeTrustResultCode = -1
	ChangeTrustResultCodeNoIssuer                   ChangeTrustResultCode = -2
	ChangeTrustResultCodeInvalidLimit               ChangeTrustResultCode = -3
	ChangeTrustResultCodeLowReserve                 ChangeTrustResultCode = -4
	ChangeTrustResultCodeSelfNotAllowed             ChangeTrustResultCode = -5
	ChangeTrustResultCodeTrustLineMissing           ChangeTrustResultCode = -6
	ChangeTrustResultCodeCannotDelete               ChangeTrustResultCode = -7
	ChangeTrustResultCodeNotAuthMaintainLiabilities ChangeTrustResultCode = -8
)

var changeTrustResultCodeNames = map[ChangeTrustResultCode]string{
	ChangeTrustResultCodeSuccess:                    "CHANGE_TRUST_SUCCESS",
	ChangeTrustResultCodeMalformed:                  "CHANGE_TRUST_MALFORMED",
	ChangeTrustResultCodeNoIssuer:                   "CHANGE_TRUST_NO_ISSUER",
	ChangeTrustResultCodeInvalidLimit:               "CHANGE_TRUST_INVALID_LIMIT",
	ChangeTrustResultCodeLowReserve:                 "CHANGE_TRUST_LOW_RESERVE",
	ChangeTrustResultCodeSelfNotAllowed:             "CHANGE_TRUST_SELF_NOT_ALLOWED",
	ChangeTrustResultCodeTrustLineMissing:           "CHANGE_TRUST_TRUST_LINE_MISSING",
	ChangeTrustResultCodeCannotDelete:               "CHANGE_TRUST_CANNOT_DELETE",
	ChangeTrustResultCodeNotAuthMaintainLiabilities: "CHANGE_TRUST_NOT_AUTH_MAINTAIN_LIABILITIES",
}

func (v ChangeTrustResultCode) String() string { return enumString(changeTrustResultCodeNames, v, "ChangeTrustResultCode") }

// MarshalText renders the protocol name of v.
func (v ChangeTrustResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ChangeTrustResultCode) IsKnown() bool {
	_, ok := changeTrustResultCodeNames[v]
	return ok
}

// ChangeTrustResult is the outcome of the operation, switched on ChangeTrustResultCode.
type ChangeTrustResult struct {
	Code ChangeTrustResultCode
}

// Encode writes a ChangeTrustResult in XDR format.
func (ctr *ChangeTrustResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ctr.Code)
	return nil
}

// Decode reads a ChangeTrustResult from XDR format.
func (ctr *ChangeTrustResult) Decode(c *xdr.Cursor) error {
	*ctr = ChangeTrustResult{}
	var err error
	if ctr.Code, err = xdr.DecodeUnionDiscriminant[ChangeTrustResultCode](c); err != nil {
		return fmt.Errorf("decode change trust result code: %w", err)
	}
	return nil
}

// AllowTrustResultCode enumerates allow trust result code values.
type AllowTrustResultCode int32

const (
	AllowTrustResultCodeSuccess          AllowTrustResultCode = 0
	AllowTrustResultCodeMalformed        AllowTrustResultCode = -1
	AllowTrustResultCodeNoTrustLine      AllowTrustResultCode = -2
	AllowTrustResultCodeTrustNotRequired AllowTrustResultCode = -3
	AllowTrustResultCodeCantRevoke       AllowTrustResultCode = -4
	AllowTrustResultCodeSelfNotAllowed   AllowTrustResultCode = -5
	AllowTrustResultCodeLowReserve       AllowTrustResultCode = -6
)

var allowTrustResultCodeNames = map[AllowTrustResultCode]string{
	AllowTrustResultCodeSuccess:          "ALLOW_TRUST_SUCCESS",
	AllowTrustResultCodeMalformed:        "ALLOW_TRUST_MALFORMED",
	AllowTrustResultCodeNoTrustLine:      "ALLOW_TRUST_NO_TRUST_LINE",
	AllowTrustResultCodeTrustNotRequired: "ALLOW_TRUST_TRUST_NOT_REQUIRED",
	AllowTrustResultCodeCantRevoke:       "ALLOW_TRUST_CANT_REVOKE",
	AllowTrustResultCodeSelfNotAllowed:   "ALLOW_TRUST_SELF_NOT_ALLOWED",
	AllowTrustResultCodeLowReserve:       "ALLOW_TRUST_LOW_RESERVE",
}

func (v AllowTrustResultCode) String() string { return enumString(allowTrustResultCodeNames, v, "AllowTrustResultCode") }

// MarshalText renders the protocol name of v.
func (v AllowTrustResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v AllowTrustResultCode) IsKnown() bool {
	_, ok := allowTrustResultCodeNames[v]
	return ok
}

// AllowTrustResult is the outcome of the operation, switched on AllowTrustResultCode.
type AllowTrustResult struct {
	Code AllowTrustResultCode
}

// Encode writes an AllowTrustResult in XDR format.
func (atr *AllowTrustResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, atr.Code)
	return nil
}

// Decode reads an AllowTrustResult from XDR format.
func (atr *AllowTrustResult) Decode(c *xdr.Cursor) error {
	*atr = AllowTrustResult{}
	var err error
	if atr.Code, err = xdr.DecodeUnionDiscriminant[AllowTrustResultCode](c); err != nil {
		return fmt.Errorf("decode allow trust result code: %w", err)
	}
	return nil
}

// AccountMergeResultCode enumerates account merge result code values.
type AccountMergeResultCode int32

const (
	AccountMergeResultCodeSuccess       AccountMergeResultCode = 0
	AccountMergeResultCodeMalformed     AccountMergeResultCode = -1
	AccountMergeResultCodeNoAccount     AccountMergeResultCode = -2
	AccountMergeResultCodeImmutableSet  AccountMergeResultCode = -3
	AccountMergeResultCodeHasSubEntries AccountMergeResultCode = -4
	AccountMergeResultCodeSeqnumTooFar  AccountMergeResultCode = -5
	AccountMergeResultCodeDestFull      AccountMergeResultCode = -6
	AccountMergeResultCodeIsSponsor     AccountMergeResultCode = -7
)

var accountMergeResultCodeNames = map[AccountMergeResultCode]string{
	AccountMergeResultCodeSuccess:       "ACCOUNT_MERGE_SUCCESS",
	AccountMergeResultCodeMalformed:     "ACCOUNT_MERGE_MALFORMED",
	AccountMergeResultCodeNoAccount:     "ACCOUNT_MERGE_NO_ACCOUNT",
	AccountMergeResultCodeImmutableSet:  "ACCOUNT_MERGE_IMMUTABLE_SET",
	AccountMergeResultCodeHasSubEntries: "ACCOUNT_MERGE_HAS_SUB_ENTRIES",
	AccountMergeResultCodeSeqnumTooFar:  "ACCOUNT_MERGE_SEQNUM_TOO_FAR",
	AccountMergeResultCodeDestFull:      "ACCOUNT_MERGE_DEST_FULL",
	AccountMergeResultCodeIsSponsor:     "ACCOUNT_MERGE_IS_SPONSOR",
}

func (v AccountMergeResultCode) String() string { return enumString(accountMergeResultCodeNames, v, "AccountMergeResultCode") }

// MarshalText renders the protocol name of v.
func (v AccountMergeResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v AccountMergeResultCode) IsKnown() bool {
	_, ok := accountMergeResultCodeNames[v]
	return ok
}

// AccountMergeResult is the outcome of the operation, switched on AccountMergeResultCode.
type AccountMergeResult struct {
	Code                 AccountMergeResultCode
	SourceAccountBalance *int64
}

// Encode writes an AccountMergeResult in XDR format.
func (amr *AccountMergeResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, amr.Code)
	switch amr.Code {
	case AccountMergeResultCodeSuccess:
		return xdr.EncodeArmFunc(buf, amr.SourceAccountBalance, xdr.WriteInt64, "AccountMergeResult", amr.Code)
	}
	return nil
}

// Decode reads an AccountMergeResult from XDR format.
func (amr *AccountMergeResult) Decode(c *xdr.Cursor) error {
	*amr = AccountMergeResult{}
	var err error
	if amr.Code, err = xdr.DecodeUnionDiscriminant[AccountMergeResultCode](c); err != nil {
		return fmt.Errorf("decode account merge result code: %w", err)
	}
	switch amr.Code {
	case AccountMergeResultCodeSuccess:
		amr.SourceAccountBalance, err = xdr.DecodeArmFunc(c, xdr.DecodeInt64)
	}
	if err != nil {
		return fmt.Errorf("decode account merge result %v: %w", amr.Code, err)
	}
	return nil
}

// InflationResultCode enumerates inflation result code values.
type InflationResultCode int32

const (
	InflationResultCodeSuccess InflationResultCode = 0
	InflationResultCodeNotTime InflationResultCode = -1
)

var inflationResultCodeNames = map[InflationResultCode]string{
	InflationResultCodeSuccess: "INFLATION_SUCCESS",
	InflationResultCodeNotTime: "INFLATION_NOT_TIME",
}

func (v InflationResultCode) String() string { return enumString(inflationResultCodeNames, v, "InflationResultCode") }

// MarshalText renders the protocol name of v.
func (v InflationResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v InflationResultCode) IsKnown() bool {
	_, ok := inflationResultCodeNames[v]
	return ok
}

// InflationResult is the outcome of the operation, switched on InflationResultCode.
type InflationResult struct {
	Code    InflationResultCode
	Payouts *[]InflationPayout
}

// Encode writes an InflationResult in XDR format.
func (ir *InflationResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ir.Code)
	switch ir.Code {
	case InflationResultCodeSuccess:
		return xdr.EncodeArrayArm(buf, ir.Payouts, "InflationResult", ir.Code)
	}
	return nil
}

// Decode reads an InflationResult from XDR format.
func (ir *InflationResult) Decode(c *xdr.Cursor) error {
	*ir = InflationResult{}
	var err error
	if ir.Code, err = xdr.DecodeUnionDiscriminant[InflationResultCode](c); err != nil {
		return fmt.Errorf("decode inflation result code: %w", err)
	}
	switch ir.Code {
	case InflationResultCodeSuccess:
		ir.Payouts, err = xdr.DecodeArrayArm[InflationPayout](c)
	}
	if err != nil {
		return fmt.Errorf("decode inflation result %v: %w", ir.Code, err)
	}
	return nil
}

// ManageDataResultCode enumerates manage data result code values.
type ManageDataResultCode int32

const (
	ManageDataResultCodeSuccess         ManageDataResultCode = 0
	ManageDataResultCodeNotSupportedYet ManageDataResultCode = -1
	ManageDataResultCodeNameNotFound    ManageDataResultCode = -2
	ManageDataResultCodeLowReserve      ManageDataResultCode = -3
	ManageDataResultCodeInvalidName     ManageDataResultCode = -4
)

var manageDataResultCodeNames = map[ManageDataResultCode]string{
	ManageDataResultCodeSuccess:         "MANAGE_DATA_SUCCESS",
	ManageDataResultCodeNotSupportedYet: "MANAGE_DATA_NOT_SUPPORTED_YET",
	ManageDataResultCodeNameNotFound:    "MANAGE_DATA_NAME_NOT_FOUND",
	ManageDataResultCodeLowReserve:      "MANAGE_DATA_LOW_RESERVE",
	ManageDataResultCodeInvalidName:     "MANAGE_DATA_INVALID_NAME",
}

func (v ManageDataResultCode) String() string { return enumString(manageDataResultCodeNames, v, "ManageDataResultCode") }

// MarshalText renders the protocol name of v.
func (v ManageDataResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ManageDataResultCode) IsKnown() bool {
	_, ok := manageDataResultCodeNames[v]
	return ok
}

// ManageDataResult is the outcome of the operation, switched on ManageDataResultCode.
type ManageDataResult struct {
	Code ManageDataResultCode
}

// Encode writes a ManageDataResult in XDR format.
func (mdr *ManageDataResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, mdr.Code)
	return nil
}

// Decode reads a ManageDataResult from XDR format.
func (mdr *ManageDataResult) Decode(c *xdr.Cursor) error {
	*mdr = ManageDataResult{}
	var err error
	if mdr.Code, err = xdr.DecodeUnionDiscriminant[ManageDataResultCode](c); err != nil {
		return fmt.Errorf("decode manage data result code: %w", err)
	}
	return nil
}

// BumpSequenceResultCode enumerates bump sequence result code values.
type BumpSequenceResultCode int32

const (
	BumpSequenceResultCodeSuccess BumpSequenceResultCode = 0
	BumpSequenceResultCodeBadSeq  BumpSequenceResultCode = -1
)

var bumpSequenceResultCodeNames = map[BumpSequenceResultCode]string{
	BumpSequenceResultCodeSuccess: "BUMP_SEQUENCE_SUCCESS",
	BumpSequenceResultCodeBadSeq:  "BUMP_SEQUENCE_BAD_SEQ",
}

func (v BumpSequenceResultCode) String() string { return enumString(bumpSequenceResultCodeNames, v, "BumpSequenceResultCode") }

// MarshalText renders the protocol name of v.
func (v BumpSequenceResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v BumpSequenceResultCode) IsKnown() bool {
	_, ok := bumpSequenceResultCodeNames[v]
	return ok
}

// BumpSequenceResult is the outcome of the operation, switched on BumpSequenceResultCode.
type BumpSequenceResult struct {
	Code BumpSequenceResultCode
}

// Encode writes a BumpSequenceResult in XDR format.
func (bsr *BumpSequenceResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, bsr.Code)
	return nil
}

// Decode reads a BumpSequenceResult from XDR format.
func (bsr *BumpSequenceResult) Decode(c *xdr.Cursor) error {
	*bsr = BumpSequenceResult{}
	var err error
	if bsr.Code, err = xdr.DecodeUnionDiscriminant[BumpSequenceResultCode](c); err != nil {
		return fmt.Errorf("decode bump sequence result code: %w", err)
	}
	return nil
}

// CreateClaimableBalanceResultCode enumerates create claimable balance result code values.
type CreateClaimableBalanceResultCode int32

const (
	CreateClaimableBalanceResultCodeSuccess       CreateClaimableBalanceResultCode = 0
	CreateClaimableBalanceResultCodeMalformed     CreateClaimableBalanceResultCode = -1
	CreateClaimableBalanceResultCodeLowReserve    CreateClaimableBalanceResultCode = -2
	CreateClaimableBalanceResultCodeNoTrust       CreateClaimableBalanceResultCode = -3
	CreateClaimableBalanceResultCodeNotAuthorized CreateClaimableBalanceResultCode = -4
	CreateClaimableBalanceResultCodeUnderfunded   CreateClaimableBalanceResultCode = -5
)

var createClaimableBalanceResultCodeNames = map[CreateClaimableBalanceResultCode]string{
	CreateClaimableBalanceResultCodeSuccess:       "CREATE_CLAIMABLE_BALANCE_SUCCESS",
	CreateClaimableBalanceResultCodeMalformed:     "CREATE_CLAIMABLE_BALANCE_MALFORMED",
	CreateClaimableBalanceResultCodeLowReserve:    "CREATE_CLAIMABLE_BALANCE_LOW_RESERVE",
	CreateClaimableBalanceResultCodeNoTrust:       "CREATE_CLAIMABLE_BALANCE_NO_TRUST",
	CreateClaimableBalanceResultCodeNotAuthorized: "CREATE_CLAIMABLE_BALANCE_NOT_AUTHORIZED",
	CreateClaimableBalanceResultCodeUnderfunded:   "CREATE_CLAIMABLE_BALANCE_UNDERFUNDED",
}

func (v CreateClaimableBalanceResultCode) String() string { return enumString(createClaimableBalanceResultCodeNames, v, "CreateClaimableBalanceResultCode") }

// MarshalText renders the protocol name of v.
func (v CreateClaimableBalanceResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v CreateClaimableBalanceResultCode) IsKnown() bool {
	_, ok := createClaimableBalanceResultCodeNames[v]
	return ok
}

// CreateClaimableBalanceResult is the outcome of the operation, switched on CreateClaimableBalanceResultCode.
type CreateClaimableBalanceResult struct {
	Code      CreateClaimableBalanceResultCode
	BalanceID *ClaimableBalanceID
}

// Encode writes a CreateClaimableBalanceResult in XDR format.
func (ccb *CreateClaimableBalanceResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ccb.Code)
	switch ccb.Code {
	case CreateClaimableBalanceResultCodeSuccess:
		return xdr.EncodeArm(buf, ccb.BalanceID, "CreateClaimableBalanceResult", ccb.Code)
	}
	return nil
}

// Decode reads a CreateClaimableBalanceResult from XDR format.
func (ccb *CreateClaimableBalanceResult) Decode(c *xdr.Cursor) error {
	*ccb = CreateClaimableBalanceResult{}
	var err error
	if ccb.Code, err = xdr.DecodeUnionDiscriminant[CreateClaimableBalanceResultCode](c); err != nil {
		return fmt.Errorf("decode create claimable balance result code: %w", err)
	}
	switch ccb.Code {
	case CreateClaimableBalanceResultCodeSuccess:
		ccb.BalanceID, err = xdr.DecodeArm[ClaimableBalanceID](c)
	}
	if err != nil {
		return fmt.Errorf("decode create claimable balance result %v: %w", ccb.Code, err)
	}
	return nil
}

// ClaimClaimableBalanceResultCode enumerates claim claimable balance result code values.
type ClaimClaimableBalanceResultCode int32

const (
	ClaimClaimableBalanceResultCodeSuccess       ClaimClaimableBalanceResultCode = 0
	ClaimClaimableBalanceResultCodeDoesNotExist  ClaimClaimableBalanceResultCode = -1
	ClaimClaimableBalanceResultCodeCannotClaim   ClaimClaimableBalanceResultCode = -2
	ClaimClaimableBalanceResultCodeLineFull      ClaimClaimableBalanceResultCode = -3
	ClaimClaimableBalanceResultCodeNoTrust       ClaimClaimableBalanceResultCode = -4
	ClaimClaimableBalanceResultCodeNotAuthorized ClaimClaimableBalanceResultCode = -5
)

var claimClaimableBalanceResultCodeNames = map[ClaimClaimableBalanceResultCode]string{
	ClaimClaimableBalanceResultCodeSuccess:       "CLAIM_CLAIMABLE_BALANCE_SUCCESS",
	ClaimClaimableBalanceResultCodeDoesNotExist:  "CLAIM_CLAIMABLE_BALANCE_DOES_NOT_EXIST",
	ClaimClaimableBalanceResultCodeCannotClaim:   "CLAIM_CLAIMABLE_BALANCE_CANNOT_CLAIM",
	ClaimClaimableBalanceResultCodeLineFull:      "CLAIM_CLAIMABLE_BALANCE_LINE_FULL",
	ClaimClaimableBalanceResultCodeNoTrust:       "CLAIM_CLAIMABLE_BALANCE_NO_TRUST",
	ClaimClaimableBalanceResultCodeNotAuthorized: "CLAIM_CLAIMABLE_BALANCE_NOT_AUTHORIZED",
}

func (v ClaimClaimableBalanceResultCode) String() string { return enumString(claimClaimableBalanceResultCodeNames, v, "ClaimClaimableBalanceResultCode") }

// MarshalText renders the protocol name of v.
func (v ClaimClaimableBalanceResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimClaimableBalanceResultCode) IsKnown() bool {
	_, ok := claimClaimableBalanceResultCodeNames[v]
	return ok
}

// ClaimClaimableBalanceResult is the outcome of the operation, switched on ClaimClaimableBalanceResultCode.
type ClaimClaimableBalanceResult struct {
	Code ClaimClaimableBalanceResultCode
}

// Encode writes a ClaimClaimableBalanceResult in XDR format.
func (ccb *ClaimClaimableBalanceResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ccb.Code)
	return nil
}

// Decode reads a ClaimClaimableBalanceResult from XDR format.
func (ccb *ClaimClaimableBalanceResult) Decode(c *xdr.Cursor) error {
	*ccb = ClaimClaimableBalanceResult{}
	var err error
	if ccb.Code, err = xdr.DecodeUnionDiscriminant[ClaimClaimableBalanceResultCode](c); err != nil {
		return fmt.Errorf("decode claim claimable balance result code: %w", err)
	}
	return nil
}

// BeginSponsoringFutureReservesResultCode enumerates begin sponsoring future reserves result code values.
type BeginSponsoringFutureReservesResultCode int32

const (
	BeginSponsoringFutureReservesResultCodeSuccess          BeginSponsoringFutureReservesResultCode = 0
	BeginSponsoringFutureReservesResultCodeMalformed        BeginSponsoringFutureReservesResultCode = -1
	BeginSponsoringFutureReservesResultCodeAlreadySponsored BeginSponsoringFutureReservesResultCode = -2
	BeginSponsoringFutureReservesResultCodeRecursive        BeginSponsoringFutureReservesResultCode = -3
)

var beginSponsoringFutureReservesResultCodeNames = map[BeginSponsoringFutureReservesResultCode]string{
	BeginSponsoringFutureReservesResultCodeSuccess:          "BEGIN_SPONSORING_FUTURE_RESERVES_SUCCESS",
	BeginSponsoringFutureReservesResultCodeMalformed:        "BEGIN_SPONSORING_FUTURE_RESERVES_MALFORMED",
	BeginSponsoringFutureReservesResultCodeAlreadySponsored: "BEGIN_SPONSORING_FUTURE_RESERVES_ALREADY_SPONSORED",
	BeginSponsoringFutureReservesResultCodeRecursive:        "BEGIN_SPONSORING_FUTURE_RESERVES_RECURSIVE",
}

func (v BeginSponsoringFutureReservesResultCode) String() string { return enumString(beginSponsoringFutureReservesResultCodeNames, v, "BeginSponsoringFutureReservesResultCode") }

// MarshalText renders the protocol name of v.
func (v BeginSponsoringFutureReservesResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v BeginSponsoringFutureReservesResultCode) IsKnown() bool {
	_, ok := beginSponsoringFutureReservesResultCodeNames[v]
	return ok
}

// BeginSponsoringFutureReservesResult is the outcome of the operation, switched on BeginSponsoringFutureReservesResultCode.
type BeginSponsoringFutureReservesResult struct {
	Code BeginSponsoringFutureReservesResultCode
}

// Encode writes a BeginSponsoringFutureReservesResult in XDR format.
func (bsf *BeginSponsoringFutureReservesResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, bsf.Code)
	return nil
}

// Decode reads a BeginSponsoringFutureReservesResult from XDR format.
func (bsf *BeginSponsoringFutureReservesResult) Decode(c *xdr.Cursor) error {
	*bsf = BeginSponsoringFutureReservesResult{}
	var err error
	if bsf.Code, err = xdr.DecodeUnionDiscriminant[BeginSponsoringFutureReservesResultCode](c); err != nil {
		return fmt.Errorf("decode begin sponsoring future reserves result code: %w", err)
	}
	return nil
}

// EndSponsoringFutureReservesResultCode enumerates end sponsoring future reserves result code values.
type EndSponsoringFutureReservesResultCode int32

const (
	EndSponsoringFutureReservesResultCodeSuccess      EndSponsoringFutureReservesResultCode = 0
	EndSponsoringFutureReservesResultCodeNotSponsored EndSponsoringFutureReservesResultCode = -1
)

var endSponsoringFutureReservesResultCodeNames = map[EndSponsoringFutureReservesResultCode]string{
	EndSponsoringFutureReservesResultCodeSuccess:      "END_SPONSORING_FUTURE_RESERVES_SUCCESS",
	EndSponsoringFutureReservesResultCodeNotSponsored: "END_SPONSORING_FUTURE_RESERVES_NOT_SPONSORED",
}

func (v EndSponsoringFutureReservesResultCode) String() string { return enumString(endSponsoringFutureReservesResultCodeNames, v, "EndSponsoringFutureReservesResultCode") }

// MarshalText renders the protocol name of v.
func (v EndSponsoringFutureReservesResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v EndSponsoringFutureReservesResultCode) IsKnown() bool {
	_, ok := endSponsoringFutureReservesResultCodeNames[v]
	return ok
}

// EndSponsoringFutureReservesResult is the outcome of the operation, switched on EndSponsoringFutureReservesResultCode.
type EndSponsoringFutureReservesResult struct {
	Code EndSponsoringFutureReservesResultCode
}

// Encode writes an EndSponsoringFutureReservesResult in XDR format.
func (esf *EndSponsoringFutureReservesResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, esf.Code)
	return nil
}

// Decode reads an EndSponsoringFutureReservesResult from XDR format.
func (esf *EndSponsoringFutureReservesResult) Decode(c *xdr.Cursor) error {
	*esf = EndSponsoringFutureReservesResult{}
	var err error
	if esf.Code, err = xdr.DecodeUnionDiscriminant[EndSponsoringFutureReservesResultCode](c); err != nil {
		return fmt.Errorf("decode end sponsoring future reserves result code: %w", err)
	}
	return nil
}

// RevokeSponsorshipResultCode enumerates revoke sponsorship result code values.
type RevokeSponsorshipResultCode int32

const (
	RevokeSponsorshipResultCodeSuccess          RevokeSponsorshipResultCode = 0
	RevokeSponsorshipResultCodeDoesNotExist     RevokeSponsorshipResultCode = -1
	RevokeSponsorshipResultCodeNotSponsor       RevokeSponsorshipResultCode = -2
	RevokeSponsorshipResultCodeLowReserve       RevokeSponsorshipResultCode = -3
	RevokeSponsorshipResultCodeOnlyTransferable RevokeSponsorshipResultCode = -4
	RevokeSponsorshipResultCodeMalformed        RevokeSponsorshipResultCode = -5
)

var revokeSponsorshipResultCodeNames = map[RevokeSponsorshipResultCode]string{
	RevokeSponsorshipResultCodeSuccess:          "REVOKE_SPONSORSHIP_SUCCESS",
	RevokeSponsorshipResultCodeDoesNotExist:     "REVOKE_SPONSORSHIP_DOES_NOT_EXIST",
	RevokeSponsorshipResultCodeNotSponsor:       "REVOKE_SPONSORSHIP_NOT_SPONSOR",
	RevokeSponsorshipResultCodeLowReserve:       "REVOKE_SPONSORSHIP_LOW_RESERVE",
	RevokeSponsorshipResultCodeOnlyTransferable: "REVOKE_SPONSORSHIP_ONLY_TRANSFERABLE",
	RevokeSponsorshipResultCodeMalformed:        "REVOKE_SPONSORSHIP_MALFORMED",
}

func (v RevokeSponsorshipResultCode) String() string { return enumString(revokeSponsorshipResultCodeNames, v, "RevokeSponsorshipResultCode") }

// MarshalText renders the protocol name of v.
func (v RevokeSponsorshipResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v RevokeSponsorshipResultCode) IsKnown() bool {
	_, ok := revokeSponsorshipResultCodeNames[v]
	return ok
}

// RevokeSponsorshipResult is the outcome of the operation, switched on RevokeSponsorshipResultCode.
type RevokeSponsorshipResult struct {
	Code RevokeSponsorshipResultCode
}

// Encode writes a RevokeSponsorshipResult in XDR format.
func (rsr *RevokeSponsorshipResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, rsr.Code)
	return nil
}

// Decode reads a RevokeSponsorshipResult from XDR format.
func (rsr *RevokeSponsorshipResult) Decode(c *xdr.Cursor) error {
	*rsr = RevokeSponsorshipResult{}
	var err error
	if rsr.Code, err = xdr.DecodeUnionDiscriminant[RevokeSponsorshipResultCode](c); err != nil {
		return fmt.Errorf("decode revoke sponsorship result code: %w", err)
	}
	return nil
}

// ClawbackResultCode enumerates clawback result code values.
type ClawbackResultCode int32

const (
	ClawbackResultCodeSuccess            ClawbackResultCode = 0
	ClawbackResultCodeMalformed          ClawbackResultCode = -1
	ClawbackResultCodeNotClawbackEnabled ClawbackResultCode = -2
	ClawbackResultCodeNoTrust            ClawbackResultCode = -3
	ClawbackResultCodeUnderfunded        ClawbackResultCode = -4
)

var clawbackResultCodeNames = map[ClawbackResultCode]string{
	ClawbackResultCodeSuccess:            "CLAWBACK_SUCCESS",
	ClawbackResultCodeMalformed:          "CLAWBACK_MALFORMED",
	ClawbackResultCodeNotClawbackEnabled: "CLAWBACK_NOT_CLAWBACK_ENABLED",
	ClawbackResultCodeNoTrust:            "CLAWBACK_NO_TRUST",
	ClawbackResultCodeUnderfunded:        "CLAWBACK_UNDERFUNDED",
}

func (v ClawbackResultCode) String() string { return enumString(clawbackResultCodeNames, v, "ClawbackResultCode") }

// MarshalText renders the protocol name of v.
func (v ClawbackResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClawbackResultCode) IsKnown() bool {
	_, ok := clawbackResultCodeNames[v]
	return ok
}

// ClawbackResult is the outcome of the operation, switched on ClawbackResultCode.
type ClawbackResult struct {
	Code ClawbackResultCode
}

// Encode writes a ClawbackResult in XDR format.
func (cr *ClawbackResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cr.Code)
	return nil
}

// Decode reads a ClawbackResult from XDR format.
func (cr *ClawbackResult) Decode(c *xdr.Cursor) error {
	*cr = ClawbackResult{}
	var err error
	if cr.Code, err = xdr.DecodeUnionDiscriminant[ClawbackResultCode](c); err != nil {
		return fmt.Errorf("decode clawback result code: %w", err)
	}
	return nil
}

// ClawbackClaimableBalanceResultCode enumerates clawback claimable balance result code values.
type ClawbackClaimableBalanceResultCode int32

const (
	ClawbackClaimableBalanceResultCodeSuccess            ClawbackClaimableBalanceResultCode = 0
	ClawbackClaimableBalanceResultCodeDoesNotExist       ClawbackClaimableBalanceResultCode = -1
	ClawbackClaimableBalanceResultCodeNotIssuer          ClawbackClaimableBalanceResultCode = -2
	ClawbackClaimableBalanceResultCodeNotClawbackEnabled ClawbackClaimableBalanceResultCode = -3
)

var clawbackClaimableBalanceResultCodeNames = map[ClawbackClaimableBalanceResultCode]string{
	ClawbackClaimableBalanceResultCodeSuccess:            "CLAWBACK_CLAIMABLE_BALANCE_SUCCESS",
	ClawbackClaimableBalanceResultCodeDoesNotExist:       "CLAWBACK_CLAIMABLE_BALANCE_DOES_NOT_EXIST",
	ClawbackClaimableBalanceResultCodeNotIssuer:          "CLAWBACK_CLAIMABLE_BALANCE_NOT_ISSUER",
	ClawbackClaimableBalanceResultCodeNotClawbackEnabled: "CLAWBACK_CLAIMABLE_BALANCE_NOT_CLAWBACK_ENABLED",
}

func (v ClawbackClaimableBalanceResultCode) String() string { return enumString(clawbackClaimableBalanceResultCodeNames, v, "ClawbackClaimableBalanceResultCode") }

// MarshalText renders the protocol name of v.
func (v ClawbackClaimableBalanceResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClawbackClaimableBalanceResultCode) IsKnown() bool {
	_, ok := clawbackClaimableBalanceResultCodeNames[v]
	return ok
}

// ClawbackClaimableBalanceResult is the outcome of the operation, switched on ClawbackClaimableBalanceResultCode.
type ClawbackClaimableBalanceResult struct {
	Code ClawbackClaimableBalanceResultCode
}

// Encode writes a ClawbackClaimableBalanceResult in XDR format.
func (ccb *ClawbackClaimableBalanceResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ccb.Code)
	return nil
}

// Decode reads a ClawbackClaimableBalanceResult from XDR format.
func (ccb *ClawbackClaimableBalanceResult) Decode(c *xdr.Cursor) error {
	*ccb = ClawbackClaimableBalanceResult{}
	var err error
	if ccb.Code, err = xdr.DecodeUnionDiscriminant[ClawbackClaimableBalanceResultCode](c); err != nil {
		return fmt.Errorf("decode clawback claimable balance result code: %w", err)
	}
	return nil
}

// SetTrustLineFlagsResultCode enumerates set trust line flags result code values.
type SetTrustLineFlagsResultCode int32

const (
	SetTrustLineFlagsResultCodeSuccess      SetTrustLineFlagsResultCode = 0
	SetTrustLineFlagsResultCodeMalformed    SetTrustLineFlagsResultCode = -1
	SetTrustLineFlagsResultCodeNoTrustLine  SetTrustLineFlagsResultCode = -2
	SetTrustLineFlagsResultCodeCantRevoke   SetTrustLineFlagsResultCode = -3
	SetTrustLineFlagsResultCodeInvalidState SetTrustLineFlagsResultCode = -4
	SetTrustLineFlagsResultCodeLowReserve   SetTrustLineFlagsResultCode = -5
)

var setTrustLineFlagsResultCodeNames = map[SetTrustLineFlagsResultCode]string{
	SetTrustLineFlagsResultCodeSuccess:      "SET_TRUST_LINE_FLAGS_SUCCESS",
	SetTrustLineFlagsResultCodeMalformed:    "SET_TRUST_LINE_FLAGS_MALFORMED",
	SetTrustLineFlagsResultCodeNoTrustLine:  "SET_TRUST_LINE_FLAGS_NO_TRUST_LINE",
	SetTrustLineFlagsResultCodeCantRevoke:   "SET_TRUST_LINE_FLAGS_CANT_REVOKE",
	SetTrustLineFlagsResultCodeInvalidState: "SET_TRUST_LINE_FLAGS_INVALID_STATE",
	SetTrustLineFlagsResultCodeLowReserve:   "SET_TRUST_LINE_FLAGS_LOW_RESERVE",
}

func (v SetTrustLineFlagsResultCode) String() string { return enumString(setTrustLineFlagsResultCodeNames, v, "SetTrustLineFlagsResultCode") }

// MarshalText renders the protocol name of v.
func (v SetTrustLineFlagsResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SetTrustLineFlagsResultCode) IsKnown() bool {
	_, ok := setTrustLineFlagsResultCodeNames[v]
	return ok
}

// SetTrustLineFlagsResult is the outcome of the operation, switched on SetTrustLineFlagsResultCode.
type SetTrustLineFlagsResult struct {
	Code SetTrustLineFlagsResultCode
}

// Encode writes a SetTrustLineFlagsResult in XDR format.
func (stl *SetTrustLineFlagsResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, stl.Code)
	return nil
}

// Decode reads a SetTrustLineFlagsResult from XDR format.
func (stl *SetTrustLineFlagsResult) Decode(c *xdr.Cursor) error {
	*stl = SetTrustLineFlagsResult{}
	var err error
	if stl.Code, err = xdr.DecodeUnionDiscriminant[SetTrustLineFlagsResultCode](c); err != nil {
		return fmt.Errorf("decode set trust line flags result code: %w", err)
	}
	return nil
}

// LiquidityPoolDepositResultCode enumerates liquidity pool deposit result code values.
type LiquidityPoolDepositResultCode int32

const (
	LiquidityPoolDepositResultCodeSuccess       LiquidityPoolDepositResultCode = 0
	LiquidityPoolDepositResultCodeMalformed     LiquidityPoolDepositResultCode = -1
	LiquidityPoolDepositResultCodeNoTrust       LiquidityPoolDepositResultCode = -2
	LiquidityPoolDepositResultCodeNotAuthorized LiquidityPoolDepositResultCode = -3
	LiquidityPoolDepositResultCodeUnderfunded   LiquidityPoolDepositResultCode = -4
	LiquidityPoolDepositResultCodeLineFull      LiquidityPoolDepositResultCode = -5
	LiquidityPoolDepositResultCodeBadPrice      LiquidityPoolDepositResultCode = -6
	LiquidityPoolDepositResultCodePoolFull      LiquidityPoolDepositResultCode = -7
)

var liquidityPoolDepositResultCodeNames = map[LiquidityPoolDepositResultCode]string{
	LiquidityPoolDepositResultCodeSuccess:       "LIQUIDITY_POOL_DEPOSIT_SUCCESS",
	LiquidityPoolDepositResultCodeMalformed:     "LIQUIDITY_POOL_DEPOSIT_MALFORMED",
	LiquidityPoolDepositResultCodeNoTrust:       "LIQUIDITY_POOL_DEPOSIT_NO_TRUST",
	LiquidityPoolDepositResultCodeNotAuthorized: "LIQUIDITY_POOL_DEPOSIT_NOT_AUTHORIZED",
	LiquidityPoolDepositResultCodeUnderfunded:   "LIQUIDITY_POOL_DEPOSIT_UNDERFUNDED",
	LiquidityPoolDepositResultCodeLineFull:      "LIQUIDITY_POOL_DEPOSIT_LINE_FULL",
	LiquidityPoolDepositResultCodeBadPrice:      "LIQUIDITY_POOL_DEPOSIT_BAD_PRICE",
	LiquidityPoolDepositResultCodePoolFull:      "LIQUIDITY_POOL_DEPOSIT_POOL_FULL",
}

func (v LiquidityPoolDepositResultCode) String() string { return enumString(liquidityPoolDepositResultCodeNames, v, "LiquidityPoolDepositResultCode") }

// MarshalText renders the protocol name of v.
func (v LiquidityPoolDepositResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v LiquidityPoolDepositResultCode) IsKnown() bool {
	_, ok := liquidityPoolDepositResultCodeNames[v]
	return ok
}

// LiquidityPoolDepositResult is the outcome of the operation, switched on LiquidityPoolDepositResultCode.
type LiquidityPoolDepositResult struct {
	Code LiquidityPoolDepositResultCode
}

// Encode writes a LiquidityPoolDepositResult in XDR format.
func (lpd *LiquidityPoolDepositResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lpd.Code)
	return nil
}

// Decode reads a LiquidityPoolDepositResult from XDR format.
func (lpd *LiquidityPoolDepositResult) Decode(c *xdr.Cursor) error {
	*lpd = LiquidityPoolDepositResult{}
	var err error
	if lpd.Code, err = xdr.DecodeUnionDiscriminant[LiquidityPoolDepositResultCode](c); err != nil {
		return fmt.Errorf("decode liquidity pool deposit result code: %w", err)
	}
	return nil
}

// LiquidityPoolWithdrawResultCode enumerates liquidity pool withdraw result code values.
type LiquidityPoolWithdrawResultCode int32

const (
	LiquidityPoolWithdrawResultCodeSuccess      LiquidityPoolWithdrawResultCode = 0
	LiquidityPoolWithdrawResultCodeMalformed    LiquidityPoolWithdrawResultCode = -1
	LiquidityPoolWithdrawResultCodeNoTrust      LiquidityPoolWithdrawResultCode = -2
	LiquidityPoolWithdrawResultCodeUnderfunded  LiquidityPoolWithdrawResultCode = -3
	LiquidityPoolWithdrawResultCodeLineFull     LiquidityPoolWithdrawResultCode = -4
	LiquidityPoolWithdrawResultCodeUnderMinimum LiquidityPoolWithdrawResultCode = -5
)

var liquidityPoolWithdrawResultCodeNames = map[LiquidityPoolWithdrawResultCode]string{
	LiquidityPoolWithdrawResultCodeSuccess:      "LIQUIDITY_POOL_WITHDRAW_SUCCESS",
	LiquidityPoolWithdrawResultCodeMalformed:    "LIQUIDITY_POOL_WITHDRAW_MALFORMED",
	LiquidityPoolWithdrawResultCodeNoTrust:      "LIQUIDITY_POOL_WITHDRAW_NO_TRUST",
	LiquidityPoolWithdrawResultCodeUnderfunded:  "LIQUIDITY_POOL_WITHDRAW_UNDERFUNDED",
	LiquidityPoolWithdrawResultCodeLineFull:     "LIQUIDITY_POOL_WITHDRAW_LINE_FULL",
	LiquidityPoolWithdrawResultCodeUnderMinimum: "LIQUIDITY_POOL_WITHDRAW_UNDER_MINIMUM",
}

func (v LiquidityPoolWithdrawResultCode) String() string { return enumString(liquidityPoolWithdrawResultCodeNames, v, "LiquidityPoolWithdrawResultCode") }

// MarshalText renders the protocol name of v.
func (v LiquidityPoolWithdrawResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v LiquidityPoolWithdrawResultCode) IsKnown() bool {
	_, ok := liquidityPoolWithdrawResultCodeNames[v]
	return ok
}

// LiquidityPoolWithdrawResult is the outcome of the operation, switched on LiquidityPoolWithdrawResultCode.
type LiquidityPoolWithdrawResult struct {
	Code LiquidityPoolWithdrawResultCode
}

// Encode writes a LiquidityPoolWithdrawResult in XDR format.
func (lpw *LiquidityPoolWithdrawResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lpw.Code)
	return nil
}

// Decode reads a LiquidityPoolWithdrawResult from XDR format.
func (lpw *LiquidityPoolWithdrawResult) Decode(c *xdr.Cursor) error {
	*lpw = LiquidityPoolWithdrawResult{}
	var err error
	if lpw.Code, err = xdr.DecodeUnionDiscriminant[LiquidityPoolWithdrawResultCode](c); err != nil {
		return fmt.Errorf("decode liquidity pool withdraw result code: %w", err)
	}
	return nil
}

// InvokeHostFunctionResultCode enumerates invoke host function result code values.
type InvokeHostFunctionResultCode int32

const (
	InvokeHostFunctionResultCodeSuccess                   InvokeHostFunctionResultCode = 0
	InvokeHostFunctionResultCodeMalformed                 InvokeHostFunctionResultCode = -1
	InvokeHostFunctionResultCodeTrapped                   InvokeHostFunctionResultCode = -2
	InvokeHostFunctionResultCodeResourceLimitExceeded     InvokeHostFunctionResultCode = -3
	InvokeHostFunctionResultCodeEntryArchived             InvokeHostFunctionResultCode = -4
	InvokeHostFunctionResultCodeInsufficientRefundableFee InvokeHostFunctionResultCode = -5
)

var invokeHostFunctionResultCodeNames = map[InvokeHostFunctionResultCode]string{
	InvokeHostFunctionResultCodeSuccess:                   "INVOKE_HOST_FUNCTION_SUCCESS",
	InvokeHostFunctionResultCodeMalformed:                 "INVOKE_HOST_FUNCTION_MALFORMED",
	InvokeHostFunctionResultCodeTrapped:                   "INVOKE_HOST_FUNCTION_TRAPPED",
	InvokeHostFunctionResultCodeResourceLimitExceeded:     "INVOKE_HOST_FUNCTION_RESOURCE_LIMIT_EXCEEDED",
	InvokeHostFunctionResultCodeEntryArchived:             "INVOKE_HOST_FUNCTION_ENTRY_ARCHIVED",
	InvokeHostFunctionResultCodeInsufficientRefundableFee: "INVOKE_HOST_FUNCTION_INSUFFICIENT_REFUNDABLE_FEE",
}

func (v InvokeHostFunctionResultCode) String() string { return enumString(invokeHostFunctionResultCodeNames, v, "InvokeHostFunctionResultCode") }

// MarshalText renders the protocol name of v.
func (v InvokeHostFunctionResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v InvokeHostFunctionResultCode) IsKnown() bool {
	_, ok := invokeHostFunctionResultCodeNames[v]
	return ok
}

// InvokeHostFunctionResult carries the hash of InvokeHostFunctionSuccessPreImage on success.
type InvokeHostFunctionResult struct {
	Code    InvokeHostFunctionResultCode
	Success *Hash
}

// Encode writes an InvokeHostFunctionResult in XDR format.
func (ihf *InvokeHostFunctionResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ihf.Code)
	switch ihf.Code {
	case InvokeHostFunctionResultCodeSuccess:
		return xdr.EncodeArm(buf, ihf.Success, "InvokeHostFunctionResult", ihf.Code)
	}
	return nil
}

// Decode reads an InvokeHostFunctionResult from XDR format.
func (ihf *InvokeHostFunctionResult) Decode(c *xdr.Cursor) error {
	*ihf = InvokeHostFunctionResult{}
	var err error
	if ihf.Code, err = xdr.DecodeUnionDiscriminant[InvokeHostFunctionResultCode](c); err != nil {
		return fmt.Errorf("decode invoke host function result code: %w", err)
	}
	switch ihf.Code {
	case InvokeHostFunctionResultCodeSuccess:
		ihf.Success, err = xdr.DecodeArm[Hash](c)
	}
	if err != nil {
		return fmt.Errorf("decode invoke host function result %v: %w", ihf.Code, err)
	}
	return nil
}

// ExtendFootprintTTLResultCode enumerates extend footprint ttl result code values.
type ExtendFootprintTTLResultCode int32

const (
	ExtendFootprintTTLResultCodeSuccess                   ExtendFootprintTTLResultCode = 0
	ExtendFootprintTTLResultCodeMalformed                 ExtendFootprintTTLResultCode = -1
	ExtendFootprintTTLResultCodeResourceLimitExceeded     ExtendFootprintTTLResultCode = -2
	ExtendFootprintTTLResultCodeInsufficientRefundableFee ExtendFootprintTTLResultCode = -3
)

var extendFootprintTTLResultCodeNames = map[ExtendFootprintTTLResultCode]string{
	ExtendFootprintTTLResultCodeSuccess:                   "EXTEND_FOOTPRINT_TTL_SUCCESS",
	ExtendFootprintTTLResultCodeMalformed:                 "EXTEND_FOOTPRINT_TTL_MALFORMED",
	ExtendFootprintTTLResultCodeResourceLimitExceeded:     "EXTEND_FOOTPRINT_TTL_RESOURCE_LIMIT_EXCEEDED",
	ExtendFootprintTTLResultCodeInsufficientRefundableFee: "EXTEND_FOOTPRINT_TTL_INSUFFICIENT_REFUNDABLE_FEE",
}

func (v ExtendFootprintTTLResultCode) String() string { return enumString(extendFootprintTTLResultCodeNames, v, "ExtendFootprintTTLResultCode") }

// MarshalText renders the protocol name of v.
func (v ExtendFootprintTTLResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ExtendFootprintTTLResultCode) IsKnown() bool {
	_, ok := extendFootprintTTLResultCodeNames[v]
	return ok
}

// ExtendFootprintTTLResult is the outcome of the operation, switched on ExtendFootprintTTLResultCode.
type ExtendFootprintTTLResult struct {
	Code ExtendFootprintTTLResultCode
}

// Encode writes an ExtendFootprintTTLResult in XDR format.
func (eft *ExtendFootprintTTLResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, eft.Code)
	return nil
}

// Decode reads an ExtendFootprintTTLResult from XDR format.
func (eft *ExtendFootprintTTLResult) Decode(c *xdr.Cursor) error {
	*eft = ExtendFootprintTTLResult{}
	var err error
	if eft.Code, err = xdr.DecodeUnionDiscriminant[ExtendFootprintTTLResultCode](c); err != nil {
		return fmt.Errorf("decode extend footprint ttl result code: %w", err)
	}
	return nil
}

// RestoreFootprintResultCode enumerates restore footprint result code values.
type RestoreFootprintResultCode int32

const (
	RestoreFootprintResultCodeSuccess                   RestoreFootprintResultCode = 0
	RestoreFootprintResultCodeMalformed                 RestoreFootprintResultCode = -1
	RestoreFootprintResultCodeResourceLimitExceeded     RestoreFootprintResultCode = -2
	RestoreFootprintResultCodeInsufficientRefundableFee RestoreFootprintResultCode = -3
)

var restoreFootprintResultCodeNames = map[RestoreFootprintResultCode]string{
	RestoreFootprintResultCodeSuccess:                   "RESTORE_FOOTPRINT_SUCCESS",
	RestoreFootprintResultCodeMalformed:                 "RESTORE_FOOTPRINT_MALFORMED",
	RestoreFootprintResultCodeResourceLimitExceeded:     "RESTORE_FOOTPRINT_RESOURCE_LIMIT_EXCEEDED",
	RestoreFootprintResultCodeInsufficientRefundableFee: "RESTORE_FOOTPRINT_INSUFFICIENT_REFUNDABLE_FEE",
}

func (v RestoreFootprintResultCode) String() string { return enumString(restoreFootprintResultCodeNames, v, "RestoreFootprintResultCode") }

// MarshalText renders the protocol name of v.
func (v RestoreFootprintResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v RestoreFootprintResultCode) IsKnown() bool {
	_, ok := restoreFootprintResultCodeNames[v]
	return ok
}

// RestoreFootprintResult is the outcome of the operation, switched on RestoreFootprintResultCode.
type RestoreFootprintResult struct {
	Code RestoreFootprintResultCode
}

// Encode writes a RestoreFootprintResult in XDR format.
func (rfr *RestoreFootprintResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, rfr.Code)
	return nil
}

// Decode reads a RestoreFootprintResult from XDR format.
func (rfr *RestoreFootprintResult) Decode(c *xdr.Cursor) error {
	*rfr = RestoreFootprintResult{}
	var err error
	if rfr.Code, err = xdr.DecodeUnionDiscriminant[RestoreFootprintResultCode](c); err != nil {
		return fmt.Errorf("decode restore footprint result code: %w", err)
	}
	return nil
}
