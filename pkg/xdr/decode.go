package xdr

import (
	"encoding/binary"
	"fmt"
)

// ============================================================================
// XDR Decoding Helpers - Wire Format → Go Types
// ============================================================================

// DecodeUint32 decodes a 32-bit unsigned integer in big-endian byte order.
func DecodeUint32(c *Cursor) (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeInt32 decodes a 32-bit signed integer (two's complement).
func DecodeInt32(c *Cursor) (int32, error) {
	v, err := DecodeUint32(c)
	return int32(v), err
}

// DecodeUint64 decodes an unsigned hyper integer.
func DecodeUint64(c *Cursor) (uint64, error) {
	b, err := c.Next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeInt64 decodes a hyper integer (two's complement).
func DecodeInt64(c *Cursor) (int64, error) {
	v, err := DecodeUint64(c)
	return int64(v), err
}

// DecodeBool decodes an XDR boolean.
//
// RFC 4506 only defines 0 and 1. Any other value is rejected with
// ErrInvalidEncoding instead of being read as true.
func DecodeBool(c *Cursor) (bool, error) {
	off := c.Offset()
	v, err := DecodeUint32(c)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &Error{
			Code:    ErrInvalidEncoding,
			Offset:  off,
			Message: fmt.Sprintf("bool value %d is not 0 or 1", v),
		}
	}
}

// DecodeEnum decodes an enumeration or union discriminant.
//
// Membership in the known value set is not checked so that values added by
// later protocol versions still decode.
func DecodeEnum[E ~int32](c *Cursor) (E, error) {
	v, err := DecodeInt32(c)
	return E(v), err
}

// skipPadding consumes the pad bytes after dataLen bytes of data and
// rejects non-zero padding.
func skipPadding(c *Cursor, dataLen int) error {
	pad := Padding(dataLen)
	if pad == 0 {
		return nil
	}
	off := c.Offset()
	b, err := c.Next(pad)
	if err != nil {
		return err
	}
	for _, p := range b {
		if p != 0 {
			return &Error{
				Code:    ErrInvalidEncoding,
				Offset:  off,
				Message: "non-zero padding byte",
			}
		}
	}
	return nil
}

// DecodeFixedOpaqueInto fills dst with len(dst) bytes of fixed-length opaque
// data and consumes the trailing padding.
func DecodeFixedOpaqueInto(c *Cursor, dst []byte) error {
	b, err := c.Next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return skipPadding(c, len(dst))
}

// DecodeFixedOpaque decodes n bytes of fixed-length opaque data into a new slice.
func DecodeFixedOpaque(c *Cursor, n int) ([]byte, error) {
	out := make([]byte, n)
	if err := DecodeFixedOpaqueInto(c, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeOpaque decodes variable-length opaque data.
//
// Per RFC 4506 Section 4.10:
// Format: [length:uint32][data:length bytes][padding:0-3 bytes]
//
// A length larger than the remaining buffer fails with ErrBounds before
// anything is allocated.
func DecodeOpaque(c *Cursor) ([]byte, error) {
	length, err := DecodeUint32(c)
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	if err := c.Require(uint64(length) + uint64((4-length%4)%4)); err != nil {
		return nil, err
	}
	data, err := DecodeFixedOpaque(c, int(length))
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return data, nil
}

// DecodeString decodes an XDR string (variable-length opaque holding UTF-8).
//
// The bytes are not validated as UTF-8; Stellar strings such as home
// domains are byte strings on the wire.
func DecodeString(c *Cursor) (string, error) {
	data, err := DecodeOpaque(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
