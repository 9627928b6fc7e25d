// Package types implements the Stellar protocol type graph on top of the
// XDR primitives in pkg/xdr.
//
// Every type has Encode(*bytes.Buffer) error and Decode(*xdr.Cursor) error
// methods that reproduce the reference wire layout byte for byte. The types
// fall into five families, each kept in its own group of files:
//
//   - Accounts, assets and ledger entries/keys (asset.go, account.go,
//     trustline.go, offer.go, claimable_balance.go, liquidity_pool.go,
//     contract_entries.go, config_setting.go, ledger_entry.go)
//   - Operations and their results (operation.go, op_bodies.go,
//     op_results.go, operation_result.go, claim_atom.go)
//   - Transactions, envelopes and meta (transaction.go, hash.go,
//     hash_preimage.go, soroban_data.go, transaction_result.go,
//     transaction_meta.go)
//   - Soroban values and authorization (scval.go, scaddress.go,
//     host_function.go, auth.go, contract_spec.go, contract_meta.go)
//   - Text envelopes (text.go)
//
// Unions are structs holding the discriminant plus one pointer per arm.
// Exactly the arm selected by the discriminant is non-nil after Decode.
// Discriminant values unknown to this package decode as void arms so that
// newer protocol data still parses; every enum reports recognition through
// IsKnown.
package types
