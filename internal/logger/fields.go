package logger

import (
	"log/slog"
)

// Standard field keys. Use these consistently so that log lines from
// different commands can be filtered the same way.
const (
	KeyRunID      = "run_id"
	KeyCommand    = "command"
	KeyType       = "type"        // protocol type name, e.g. TransactionEnvelope
	KeySource     = "source"      // arg, stdin or a file path
	KeyBytes      = "bytes"       // decoded payload length
	KeyOffset     = "offset"      // cursor offset of a decode failure
	KeyErrorCode  = "error_code"  // xdr.ErrorCode name
	KeyError      = "error"       // Error message
	KeyCanonical  = "canonical"   // re-encoding reproduced the input
	KeyMatches    = "matches"     // number of types that decode an input
	KeyNetwork    = "network"     // network passphrase
	KeyHash       = "hash"        // transaction hash (hex)
	KeyPath       = "path"        // watched or config file path
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
)

// RunID returns a slog.Attr for the invocation id
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

// Command returns a slog.Attr for the subcommand name
func Command(name string) slog.Attr {
	return slog.String(KeyCommand, name)
}

// Type returns a slog.Attr for a protocol type name
func Type(name string) slog.Attr {
	return slog.String(KeyType, name)
}

func Source(s string) slog.Attr {
	return slog.String(KeySource, s)
}

// Bytes returns a slog.Attr for a payload length
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

func Offset(off int) slog.Attr {
	return slog.Int(KeyOffset, off)
}

// ErrorCode returns a slog.Attr for a codec failure class
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}

// Err returns a slog.Attr for an error. A nil error yields an empty attr,
// which handlers drop.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

func Canonical(ok bool) slog.Attr {
	return slog.Bool(KeyCanonical, ok)
}

func Matches(n int) slog.Attr {
	return slog.Int(KeyMatches, n)
}

// Network returns a slog.Attr for a network passphrase
func Network(passphrase string) slog.Attr {
	return slog.String(KeyNetwork, passphrase)
}

func Hash(hex string) slog.Attr {
	return slog.String(KeyHash, hex)
}

func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}
