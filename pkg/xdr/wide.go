package xdr

import (
	"bytes"
	"fmt"
	"math/big"
)

// ============================================================================
// Wide integers as 64-bit part groups
// ============================================================================
//
// 128-bit values travel as (hi, lo) and 256-bit values as
// (hi_hi, hi_lo, lo_hi, lo_lo), most significant part first. Signed variants
// are two's complement across the full width with the sign in the top part.
// math/big is only used to convert to and from decimal strings; the codec
// itself never needs arbitrary precision.

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	two256 = new(big.Int).Lsh(big.NewInt(1), 256)

	maxInt128 = new(big.Int).Sub(new(big.Int).Rsh(two128, 1), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Rsh(two128, 1))
	maxInt256 = new(big.Int).Sub(new(big.Int).Rsh(two256, 1), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Rsh(two256, 1))
)

// UInt128Parts is an unsigned 128-bit integer.
//
//	struct UInt128Parts {
//	    uint64 hi;
//	    uint64 lo;
//	};
type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

// Int128Parts is a signed 128-bit integer.
//
//	struct Int128Parts {
//	    int64 hi;
//	    uint64 lo;
//	};
type Int128Parts struct {
	Hi int64
	Lo uint64
}

// UInt256Parts is an unsigned 256-bit integer.
type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// Int256Parts is a signed 256-bit integer.
//
//	struct Int256Parts {
//	    int64 hi_hi;
//	    uint64 hi_lo;
//	    uint64 lo_hi;
//	    uint64 lo_lo;
//	};
type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// Encode writes the parts, most significant first.
func (p *UInt128Parts) Encode(buf *bytes.Buffer) error {
	WriteUint64(buf, p.Hi)
	WriteUint64(buf, p.Lo)
	return nil
}

// Decode reads the parts, most significant first.
func (p *UInt128Parts) Decode(c *Cursor) error {
	var err error
	if p.Hi, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u128 hi: %w", err)
	}
	if p.Lo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u128 lo: %w", err)
	}
	return nil
}

// Encode writes the parts, most significant first.
func (p *Int128Parts) Encode(buf *bytes.Buffer) error {
	WriteInt64(buf, p.Hi)
	WriteUint64(buf, p.Lo)
	return nil
}

// Decode reads the parts, most significant first.
func (p *Int128Parts) Decode(c *Cursor) error {
	var err error
	if p.Hi, err = DecodeInt64(c); err != nil {
		return fmt.Errorf("decode i128 hi: %w", err)
	}
	if p.Lo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode i128 lo: %w", err)
	}
	return nil
}

// Encode writes the parts, most significant first.
func (p *UInt256Parts) Encode(buf *bytes.Buffer) error {
	WriteUint64(buf, p.HiHi)
	WriteUint64(buf, p.HiLo)
	WriteUint64(buf, p.LoHi)
	WriteUint64(buf, p.LoLo)
	return nil
}

// Decode reads the parts, most significant first.
func (p *UInt256Parts) Decode(c *Cursor) error {
	var err error
	if p.HiHi, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u256 hi_hi: %w", err)
	}
	if p.HiLo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u256 hi_lo: %w", err)
	}
	if p.LoHi, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u256 lo_hi: %w", err)
	}
	if p.LoLo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode u256 lo_lo: %w", err)
	}
	return nil
}

// Encode writes the parts, most significant first.
func (p *Int256Parts) Encode(buf *bytes.Buffer) error {
	WriteInt64(buf, p.HiHi)
	WriteUint64(buf, p.HiLo)
	WriteUint64(buf, p.LoHi)
	WriteUint64(buf, p.LoLo)
	return nil
}

// Decode reads the parts, most significant first.
func (p *Int256Parts) Decode(c *Cursor) error {
	var err error
	if p.HiHi, err = DecodeInt64(c); err != nil {
		return fmt.Errorf("decode i256 hi_hi: %w", err)
	}
	if p.HiLo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode i256 hi_lo: %w", err)
	}
	if p.LoHi, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode i256 lo_hi: %w", err)
	}
	if p.LoLo, err = DecodeUint64(c); err != nil {
		return fmt.Errorf("decode i256 lo_lo: %w", err)
	}
	return nil
}

// ============================================================================
// Conversions
// ============================================================================

// joinParts combines 64-bit parts (most significant first) into an
// unsigned big.Int.
func joinParts(parts ...uint64) *big.Int {
	v := new(big.Int)
	for _, p := range parts {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(p))
	}
	return v
}

// splitParts splits a non-negative v into n 64-bit parts, most significant first.
func splitParts(v *big.Int, n int) []uint64 {
	parts := make([]uint64, n)
	rest := new(big.Int).Set(v)
	mask := new(big.Int).Sub(two64, big.NewInt(1))
	for i := n - 1; i >= 0; i-- {
		parts[i] = new(big.Int).And(rest, mask).Uint64()
		rest.Rsh(rest, 64)
	}
	return parts
}

// BigInt returns the value as a big.Int.
func (p UInt128Parts) BigInt() *big.Int {
	return joinParts(p.Hi, p.Lo)
}

// String returns the decimal representation.
func (p UInt128Parts) String() string {
	return p.BigInt().String()
}

// BigInt returns the value as a big.Int.
func (p Int128Parts) BigInt() *big.Int {
	v := joinParts(uint64(p.Hi), p.Lo)
	if p.Hi < 0 {
		v.Sub(v, two128)
	}
	return v
}

// String returns the decimal representation.
func (p Int128Parts) String() string {
	return p.BigInt().String()
}

// BigInt returns the value as a big.Int.
func (p UInt256Parts) BigInt() *big.Int {
	return joinParts(p.HiHi, p.HiLo, p.LoHi, p.LoLo)
}

// String returns the decimal representation.
func (p UInt256Parts) String() string {
	return p.BigInt().String()
}

// BigInt returns the value as a big.Int.
func (p Int256Parts) BigInt() *big.Int {
	v := joinParts(uint64(p.HiHi), p.HiLo, p.LoHi, p.LoLo)
	if p.HiHi < 0 {
		v.Sub(v, two256)
	}
	return v
}

// String returns the decimal representation.
func (p Int256Parts) String() string {
	return p.BigInt().String()
}

// NewUInt128PartsFromBig converts v, failing if it is outside [0, 2^128).
func NewUInt128PartsFromBig(v *big.Int) (UInt128Parts, error) {
	if v.Sign() < 0 || v.Cmp(two128) >= 0 {
		return UInt128Parts{}, NewError(ErrInvalidValue, "%s out of range for u128", v)
	}
	parts := splitParts(v, 2)
	return UInt128Parts{Hi: parts[0], Lo: parts[1]}, nil
}

// NewInt128PartsFromBig converts v, failing if it is outside [-2^127, 2^127).
func NewInt128PartsFromBig(v *big.Int) (Int128Parts, error) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128Parts{}, NewError(ErrInvalidValue, "%s out of range for i128", v)
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	parts := splitParts(u, 2)
	return Int128Parts{Hi: int64(parts[0]), Lo: parts[1]}, nil
}

// NewUInt256PartsFromBig converts v, failing if it is outside [0, 2^256).
func NewUInt256PartsFromBig(v *big.Int) (UInt256Parts, error) {
	if v.Sign() < 0 || v.Cmp(two256) >= 0 {
		return UInt256Parts{}, NewError(ErrInvalidValue, "%s out of range for u256", v)
	}
	parts := splitParts(v, 4)
	return UInt256Parts{HiHi: parts[0], HiLo: parts[1], LoHi: parts[2], LoLo: parts[3]}, nil
}

// NewInt256PartsFromBig converts v, failing if it is outside [-2^255, 2^255).
func NewInt256PartsFromBig(v *big.Int) (Int256Parts, error) {
	if v.Cmp(minInt256) < 0 || v.Cmp(maxInt256) > 0 {
		return Int256Parts{}, NewError(ErrInvalidValue, "%s out of range for i256", v)
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two256)
	}
	parts := splitParts(u, 4)
	return Int256Parts{HiHi: int64(parts[0]), HiLo: parts[1], LoHi: parts[2], LoLo: parts[3]}, nil
}

func parseDecimal(s, kind string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, NewError(ErrInvalidValue, "%q is not a decimal %s", s, kind)
	}
	return v, nil
}

// ParseUInt128 parses a decimal string into an unsigned 128-bit value.
func ParseUInt128(s string) (UInt128Parts, error) {
	v, err := parseDecimal(s, "u128")
	if err != nil {
		return UInt128Parts{}, err
	}
	return NewUInt128PartsFromBig(v)
}

// ParseInt128 parses a decimal string into a signed 128-bit value.
func ParseInt128(s string) (Int128Parts, error) {
	v, err := parseDecimal(s, "i128")
	if err != nil {
		return Int128Parts{}, err
	}
	return NewInt128PartsFromBig(v)
}

// ParseUInt256 parses a decimal string into an unsigned 256-bit value.
func ParseUInt256(s string) (UInt256Parts, error) {
	v, err := parseDecimal(s, "u256")
	if err != nil {
		return UInt256Parts{}, err
	}
	return NewUInt256PartsFromBig(v)
}

// ParseInt256 parses a decimal string into a signed 256-bit value.
func ParseInt256(s string) (Int256Parts, error) {
	v, err := parseDecimal(s, "i256")
	if err != nil {
		return Int256Parts{}, err
	}
	return NewInt256PartsFromBig(v)
}

// MarshalText implements encoding.TextMarshaler with the decimal form.
func (p UInt128Parts) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseUInt128.
func (p *UInt128Parts) UnmarshalText(b []byte) error {
	v, err := ParseUInt128(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Int128Parts) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Int128Parts) UnmarshalText(b []byte) error {
	v, err := ParseInt128(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p UInt256Parts) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *UInt256Parts) UnmarshalText(b []byte) error {
	v, err := ParseUInt256(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Int256Parts) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Int256Parts) UnmarshalText(b []byte) error {
	v, err := ParseInt256(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
