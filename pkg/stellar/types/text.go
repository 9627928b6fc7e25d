package types

import (
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// The types below are the top-level values exchanged as text: each has a
// binary form (MarshalBinary / UnmarshalBinary) and a standard base64 form
// (ToBase64 / FromBase64). Unmarshalling requires the input to hold exactly
// one value. FromBase64 reports malformed base64 as xdr.ErrInvalidBase64,
// before any binary decoding is attempted.

// MarshalBinary returns the XDR encoding of v.
func (v *TransactionEnvelope) MarshalBinary() ([]byte, error) { return xdr.Marshal(v) }

// UnmarshalBinary decodes an XDR encoded TransactionEnvelope into v.
func (v *TransactionEnvelope) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }

// ToBase64 returns the base64 text form of v.
func (v *TransactionEnvelope) ToBase64() (string, error) { return xdr.MarshalBase64(v) }

// FromBase64 decodes the base64 text form of a TransactionEnvelope into v.
func (v *TransactionEnvelope) FromBase64(s string) error { return xdr.UnmarshalBase64(s, v) }

func (v *Transaction) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *Transaction) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *Transaction) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *Transaction) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *FeeBumpTransaction) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *FeeBumpTransaction) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *FeeBumpTransaction) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *FeeBumpTransaction) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *LedgerEntry) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *LedgerEntry) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *LedgerEntry) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *LedgerEntry) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *LedgerEntryData) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *LedgerEntryData) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *LedgerEntryData) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *LedgerEntryData) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *LedgerKey) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *LedgerKey) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *LedgerKey) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *LedgerKey) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SCVal) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SCVal) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SCVal) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SCVal) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SCAddress) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SCAddress) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SCAddress) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SCAddress) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *TransactionMeta) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *TransactionMeta) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *TransactionMeta) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *TransactionMeta) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *TransactionResult) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *TransactionResult) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *TransactionResult) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *TransactionResult) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *TransactionResultMeta) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *TransactionResultMeta) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *TransactionResultMeta) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *TransactionResultMeta) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SorobanTransactionData) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SorobanTransactionData) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SorobanTransactionData) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SorobanTransactionData) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SorobanAuthorizationEntry) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SorobanAuthorizationEntry) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SorobanAuthorizationEntry) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SorobanAuthorizationEntry) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SorobanAuthorizedInvocation) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SorobanAuthorizedInvocation) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SorobanAuthorizedInvocation) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SorobanAuthorizedInvocation) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *SCSpecEntry) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *SCSpecEntry) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *SCSpecEntry) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *SCSpecEntry) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *ContractEvent) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *ContractEvent) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *ContractEvent) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *ContractEvent) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *DiagnosticEvent) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *DiagnosticEvent) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *DiagnosticEvent) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *DiagnosticEvent) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *OperationResult) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *OperationResult) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *OperationResult) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *OperationResult) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *Operation) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *Operation) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *Operation) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *Operation) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *Asset) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *Asset) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *Asset) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *Asset) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *ClaimPredicate) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *ClaimPredicate) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *ClaimPredicate) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *ClaimPredicate) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *ConfigSettingEntry) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *ConfigSettingEntry) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *ConfigSettingEntry) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *ConfigSettingEntry) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *LedgerFootprint) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *LedgerFootprint) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *LedgerFootprint) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *LedgerFootprint) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *HostFunction) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *HostFunction) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *HostFunction) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *HostFunction) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }

func (v *Memo) MarshalBinary() ([]byte, error)    { return xdr.Marshal(v) }
func (v *Memo) UnmarshalBinary(data []byte) error { return xdr.Unmarshal(data, v) }
func (v *Memo) ToBase64() (string, error)         { return xdr.MarshalBase64(v) }
func (v *Memo) FromBase64(s string) error         { return xdr.UnmarshalBase64(s, v) }
