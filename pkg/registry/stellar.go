package registry

import (
	"sync"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
)

// Type families.
const (
	FamilyAccounts     = "accounts"
	FamilyLedger       = "ledger"
	FamilyOperations   = "operations"
	FamilyTransactions = "transactions"
	FamilySoroban      = "soroban"
)

var stellarTypes = []struct {
	name   string
	family string
	f      Factory
}{
	{"Asset", FamilyAccounts, func() Value { return new(types.Asset) }},
	{"ClaimPredicate", FamilyAccounts, func() Value { return new(types.ClaimPredicate) }},

	{"LedgerEntry", FamilyLedger, func() Value { return new(types.LedgerEntry) }},
	{"LedgerEntryData", FamilyLedger, func() Value { return new(types.LedgerEntryData) }},
	{"LedgerKey", FamilyLedger, func() Value { return new(types.LedgerKey) }},
	{"ConfigSettingEntry", FamilyLedger, func() Value { return new(types.ConfigSettingEntry) }},

	{"Operation", FamilyOperations, func() Value { return new(types.Operation) }},
	{"OperationResult", FamilyOperations, func() Value { return new(types.OperationResult) }},

	{"TransactionEnvelope", FamilyTransactions, func() Value { return new(types.TransactionEnvelope) }},
	{"Transaction", FamilyTransactions, func() Value { return new(types.Transaction) }},
	{"FeeBumpTransaction", FamilyTransactions, func() Value { return new(types.FeeBumpTransaction) }},
	{"TransactionMeta", FamilyTransactions, func() Value { return new(types.TransactionMeta) }},
	{"TransactionResult", FamilyTransactions, func() Value { return new(types.TransactionResult) }},
	{"TransactionResultMeta", FamilyTransactions, func() Value { return new(types.TransactionResultMeta) }},
	{"Memo", FamilyTransactions, func() Value { return new(types.Memo) }},

	{"SCVal", FamilySoroban, func() Value { return new(types.SCVal) }},
	{"SCAddress", FamilySoroban, func() Value { return new(types.SCAddress) }},
	{"SCSpecEntry", FamilySoroban, func() Value { return new(types.SCSpecEntry) }},
	{"SorobanTransactionData", FamilySoroban, func() Value { return new(types.SorobanTransactionData) }},
	{"SorobanAuthorizationEntry", FamilySoroban, func() Value { return new(types.SorobanAuthorizationEntry) }},
	{"SorobanAuthorizedInvocation", FamilySoroban, func() Value { return new(types.SorobanAuthorizedInvocation) }},
	{"ContractEvent", FamilySoroban, func() Value { return new(types.ContractEvent) }},
	{"DiagnosticEvent", FamilySoroban, func() Value { return new(types.DiagnosticEvent) }},
	{"LedgerFootprint", FamilySoroban, func() Value { return new(types.LedgerFootprint) }},
	{"HostFunction", FamilySoroban, func() Value { return new(types.HostFunction) }},
}

var stellarAliases = map[string]string{
	"envelope":  "TransactionEnvelope",
	"tx":        "Transaction",
	"feebump":   "FeeBumpTransaction",
	"meta":      "TransactionMeta",
	"result":    "TransactionResult",
	"scv":       "SCVal",
	"address":   "SCAddress",
	"auth":      "SorobanAuthorizationEntry",
	"footprint": "LedgerFootprint",
}

// NewStellarRegistry returns a registry holding every protocol type that
// has a text form, plus short aliases such as "tx" and "envelope".
func NewStellarRegistry() *Registry {
	r := NewRegistry()
	for _, t := range stellarTypes {
		if err := r.Register(t.name, t.family, t.f); err != nil {
			panic(err)
		}
	}
	for alias, name := range stellarAliases {
		if err := r.RegisterAlias(alias, name); err != nil {
			panic(err)
		}
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns a shared registry built by NewStellarRegistry.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = NewStellarRegistry() })
	return defaultReg
}
