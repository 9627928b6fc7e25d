package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// TransactionResultCode is the overall outcome of a transaction.
type TransactionResultCode int32

const (
	TransactionResultCodeFeeBumpInnerSuccess TransactionResultCode = 1
	TransactionResultCodeSuccess             TransactionResultCode = 0
	TransactionResultCodeFailed              TransactionResultCode = -1
	TransactionResultCodeTooEarly            TransactionResultCode = -2
	TransactionResultCodeTooLate             TransactionResultCode = -3
	TransactionResultCodeMissingOperation    TransactionResultCode = -4
	TransactionResultCodeBadSeq              TransactionResultCode = -5
	TransactionResultCodeBadAuth             TransactionResultCode = -6
	TransactionResultCodeInsufficientBalance TransactionResultCode = -7
	TransactionResultCodeNoAccount           TransactionResultCode = -8
	TransactionResultCodeInsufficientFee     TransactionResultCode = -9
	TransactionResultCodeBadAuthExtra        TransactionResultCode = -10
	TransactionResultCodeInternalError       TransactionResultCode = -11
	TransactionResultCodeNotSupported        TransactionResultCode = -12
	TransactionResultCodeFeeBumpInnerFailed  TransactionResultCode = -13
	TransactionResultCodeBadSponsorship      TransactionResultCode = -14
	TransactionResultCodeBadMinSeqAgeOrGap   TransactionResultCode = -15
	TransactionResultCodeMalformed           TransactionResultCode = -16
	TransactionResultCodeSorobanInvalid      TransactionResultCode = -17
)

var transactionResultCodeNames = map[TransactionResultCode]string{
	TransactionResultCodeFeeBumpInnerSuccess: "txFEE_BUMP_INNER_SUCCESS",
	TransactionResultCodeSuccess:             "txSUCCESS",
	TransactionResultCodeFailed:              "txFAILED",
	TransactionResultCodeTooEarly:            "txTOO_EARLY",
	TransactionResultCodeTooLate:             "txTOO_LATE",
	TransactionResultCodeMissingOperation:    "txMISSING_OPERATION",
	TransactionResultCodeBadSeq:              "txBAD_SEQ",
	TransactionResultCodeBadAuth:             "txBAD_AUTH",
	TransactionResultCodeInsufficientBalance: "txINSUFFICIENT_BALANCE",
	TransactionResultCodeNoAccount:           "txNO_ACCOUNT",
	TransactionResultCodeInsufficientFee:     "txINSUFFICIENT_FEE",
	TransactionResultCodeBadAuthExtra:        "txBAD_AUTH_EXTRA",
	TransactionResultCodeInternalError:       "txINTERNAL_ERROR",
	TransactionResultCodeNotSupported:        "txNOT_SUPPORTED",
	TransactionResultCodeFeeBumpInnerFailed:  "txFEE_BUMP_INNER_FAILED",
	TransactionResultCodeBadSponsorship:      "txBAD_SPONSORSHIP",
	TransactionResultCodeBadMinSeqAgeOrGap:   "txBAD_MIN_SEQ_AGE_OR_GAP",
	TransactionResultCodeMalformed:           "txMALFORMED",
	TransactionResultCodeSorobanInvalid:      "txSOROBAN_INVALID",
}

func (v TransactionResultCode) String() string { return enumString(transactionResultCodeNames, v, "TransactionResultCode") }

// MarshalText renders the protocol name of v.
func (v TransactionResultCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v TransactionResultCode) IsKnown() bool {
	_, ok := transactionResultCodeNames[v]
	return ok
}

// InnerTransactionResultResult is switched on the inner transaction's
// result code.
type InnerTransactionResultResult struct {
	Code    TransactionResultCode
	Results *[]OperationResult
}

// Encode writes an InnerTransactionResultResult in XDR format.
func (itr *InnerTransactionResultResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, itr.Code)
	switch itr.Code {
	case TransactionResultCodeSuccess, TransactionResultCodeFailed:
		return xdr.EncodeArrayArm(buf, itr.Results, "InnerTransactionResultResult", itr.Code)
	}
	return nil
}

// Decode reads an InnerTransactionResultResult from XDR format.
func (itr *InnerTransactionResultResult) Decode(c *xdr.Cursor) error {
	*itr = InnerTransactionResultResult{}
	var err error
	if itr.Code, err = xdr.DecodeUnionDiscriminant[TransactionResultCode](c); err != nil {
		return fmt.Errorf("decode inner transaction result result code: %w", err)
	}
	switch itr.Code {
	case TransactionResultCodeSuccess, TransactionResultCodeFailed:
		itr.Results, err = xdr.DecodeArrayArm[OperationResult](c)
	}
	if err != nil {
		return fmt.Errorf("decode inner transaction result result %v: %w", itr.Code, err)
	}
	return nil
}

// InnerTransactionResult is the result of the transaction wrapped by a fee bump.
type InnerTransactionResult struct {
	FeeCharged int64
	Result     InnerTransactionResultResult
	Ext        ExtensionPoint
}

// Encode writes an InnerTransactionResult in XDR format.
func (itr *InnerTransactionResult) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, itr.FeeCharged)
	if err := itr.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode inner transaction result result: %w", err)
	}
	if err := itr.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode inner transaction result ext: %w", err)
	}
	return nil
}

// Decode reads an InnerTransactionResult from XDR format.
func (itr *InnerTransactionResult) Decode(c *xdr.Cursor) error {
	var err error
	if itr.FeeCharged, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode inner transaction result fee charged: %w", err)
	}
	if err = itr.Result.Decode(c); err != nil {
		return fmt.Errorf("decode inner transaction result result: %w", err)
	}
	if err = itr.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode inner transaction result ext: %w", err)
	}
	return nil
}

// InnerTransactionResultPair is the result of a fee-bumped inner
// transaction with its hash.
type InnerTransactionResultPair struct {
	TransactionHash Hash
	Result          InnerTransactionResult
}

// Encode writes an InnerTransactionResultPair in XDR format.
func (itr *InnerTransactionResultPair) Encode(buf *bytes.Buffer) error {
	if err := itr.TransactionHash.Encode(buf); err != nil {
		return fmt.Errorf("encode inner transaction result pair transaction hash: %w", err)
	}
	if err := itr.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode inner transaction result pair result: %w", err)
	}
	return nil
}

// Decode reads an InnerTransactionResultPair from XDR format.
func (itr *InnerTransactionResultPair) Decode(c *xdr.Cursor) error {
	var err error
	if err = itr.TransactionHash.Decode(c); err != nil {
		return fmt.Errorf("decode inner transaction result pair transaction hash: %w", err)
	}
	if err = itr.Result.Decode(c); err != nil {
		return fmt.Errorf("decode inner transaction result pair result: %w", err)
	}
	return nil
}

// TransactionResultResult is switched on TransactionResultCode.
type TransactionResultResult struct {
	Code            TransactionResultCode
	InnerResultPair *InnerTransactionResultPair
	Results         *[]OperationResult
}

// Encode writes a TransactionResultResult in XDR format.
func (trr *TransactionResultResult) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, trr.Code)
	switch trr.Code {
	case TransactionResultCodeFeeBumpInnerSuccess, TransactionResultCodeFeeBumpInnerFailed:
		return xdr.EncodeArm(buf, trr.InnerResultPair, "TransactionResultResult", trr.Code)
	case TransactionResultCodeSuccess, TransactionResultCodeFailed:
		return xdr.EncodeArrayArm(buf, trr.Results, "TransactionResultResult", trr.Code)
	}
	return nil
}

// Decode reads a TransactionResultResult from XDR format.
func (trr *TransactionResultResult) Decode(c *xdr.Cursor) error {
	*trr = TransactionResultResult{}
	var err error
	if trr.Code, err = xdr.DecodeUnionDiscriminant[TransactionResultCode](c); err != nil {
		return fmt.Errorf("decode transaction result result code: %w", err)
	}
	switch trr.Code {
	case TransactionResultCodeFeeBumpInnerSuccess, TransactionResultCodeFeeBumpInnerFailed:
		trr.InnerResultPair, err = xdr.DecodeArm[InnerTransactionResultPair](c)
	case TransactionResultCodeSuccess, TransactionResultCodeFailed:
		trr.Results, err = xdr.DecodeArrayArm[OperationResult](c)
	}
	if err != nil {
		return fmt.Errorf("decode transaction result result %v: %w", trr.Code, err)
	}
	return nil
}

// TransactionResult is the outcome of applying a transaction.
type TransactionResult struct {
	FeeCharged int64
	Result     TransactionResultResult
	Ext        ExtensionPoint
}

// Encode writes a TransactionResult in XDR format.
func (tr *TransactionResult) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, tr.FeeCharged)
	if err := tr.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result result: %w", err)
	}
	if err := tr.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result ext: %w", err)
	}
	return nil
}

// Decode reads a TransactionResult from XDR format.
func (tr *TransactionResult) Decode(c *xdr.Cursor) error {
	var err error
	if tr.FeeCharged, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode transaction result fee charged: %w", err)
	}
	if err = tr.Result.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result result: %w", err)
	}
	if err = tr.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result ext: %w", err)
	}
	return nil
}

// Successful reports whether the transaction, or the inner transaction of a
// fee bump, succeeded.
func (tr TransactionResult) Successful() bool {
	switch tr.Result.Code {
	case TransactionResultCodeSuccess, TransactionResultCodeFeeBumpInnerSuccess:
		return true
	}
	return false
}

// OperationResults returns the per-operation results, looking through a fee
// bump to the inner transaction.
func (tr TransactionResult) OperationResults() ([]OperationResult, bool) {
	if tr.Result.Results != nil {
		return *tr.Result.Results, true
	}
	if p := tr.Result.InnerResultPair; p != nil && p.Result.Result.Results != nil {
		return *p.Result.Result.Results, true
	}
	return nil, false
}

// TransactionResultPair is a result with the hash of its transaction.
type TransactionResultPair struct {
	TransactionHash Hash
	Result          TransactionResult
}

// Encode writes a TransactionResultPair in XDR format.
func (trp *TransactionResultPair) Encode(buf *bytes.Buffer) error {
	if err := trp.TransactionHash.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result pair transaction hash: %w", err)
	}
	if err := trp.Result.Encode(buf); err != nil {
		return fmt.Errorf("encode transaction result pair result: %w", err)
	}
	return nil
}

// Decode reads a TransactionResultPair from XDR format.
func (trp *TransactionResultPair) Decode(c *xdr.Cursor) error {
	var err error
	if err = trp.TransactionHash.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result pair transaction hash: %w", err)
	}
	if err = trp.Result.Decode(c); err != nil {
		return fmt.Errorf("decode transaction result pair result: %w", err)
	}
	return nil
}
