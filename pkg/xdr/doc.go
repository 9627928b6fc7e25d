// Package xdr provides generic XDR (External Data Representation) encoding and
// decoding utilities per RFC 4506.
//
// XDR is the wire format used by every Stellar ledger, transaction and
// Soroban structure. This package holds the protocol-agnostic building blocks
// that the concrete type graph in pkg/stellar/types is assembled from.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte integers
//   - 4-byte alignment for all data types
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are padded to 4-byte boundaries
//
// Encoding appends to a caller-owned bytes.Buffer; decoding reads through a
// Cursor scoped to a single decode call. Neither side keeps package-level
// mutable state, so independent buffers can be processed concurrently.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
