package xdr

import (
	"bytes"
	"fmt"
)

// ============================================================================
// XDR Codec Interfaces
// ============================================================================

// XdrEncoder is implemented by types that can encode themselves to XDR format.
type XdrEncoder interface {
	Encode(buf *bytes.Buffer) error
}

// XdrDecoder is implemented by types that can decode themselves from XDR format.
type XdrDecoder interface {
	Decode(c *Cursor) error
}

// Codec is implemented by types that round-trip through XDR.
type Codec interface {
	XdrEncoder
	XdrDecoder
}

// PtrEncoder constrains *T to implement XdrEncoder. It lets generic helpers
// work on []T and *T without requiring callers to spell out the pointer type.
type PtrEncoder[T any] interface {
	*T
	XdrEncoder
}

// PtrDecoder constrains *T to implement XdrDecoder.
type PtrDecoder[T any] interface {
	*T
	XdrDecoder
}

// ============================================================================
// XDR Discriminated Union Helpers
// ============================================================================

// EncodeUnionDiscriminant writes the discriminant of an XDR union.
//
// Per RFC 4506 Section 4.15 (Discriminated Unions):
// The discriminant is encoded with its own primitive rule (int or enum,
// both 4 bytes) before the arm data.
func EncodeUnionDiscriminant[E ~int32](buf *bytes.Buffer, disc E) {
	WriteEnum(buf, disc)
}

// DecodeUnionDiscriminant reads the discriminant of an XDR union.
func DecodeUnionDiscriminant[E ~int32](c *Cursor) (E, error) {
	disc, err := DecodeEnum[E](c)
	if err != nil {
		return disc, fmt.Errorf("read discriminant: %w", err)
	}
	return disc, nil
}

// EncodeArm encodes the payload of a union arm, failing with ErrInvalidValue
// when the arm selected by the discriminant is nil.
func EncodeArm[T any, P PtrEncoder[T]](buf *bytes.Buffer, arm *T, union string, disc any) error {
	if arm == nil {
		return UnionArmError(union, disc)
	}
	return P(arm).Encode(buf)
}

// DecodeArm allocates and decodes a union arm payload.
func DecodeArm[T any, P PtrDecoder[T]](c *Cursor) (*T, error) {
	v := new(T)
	if err := P(v).Decode(c); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeArmFunc is EncodeArm for arms encoded by a plain function, such as
// primitives and enums.
func EncodeArmFunc[T any](buf *bytes.Buffer, arm *T, enc func(*bytes.Buffer, T), union string, disc any) error {
	if arm == nil {
		return UnionArmError(union, disc)
	}
	enc(buf, *arm)
	return nil
}

// DecodeArmFunc is DecodeArm for arms decoded by a plain function.
func DecodeArmFunc[T any](c *Cursor, dec func(*Cursor) (T, error)) (*T, error) {
	v, err := dec(c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeArrayArm encodes a union arm holding a variable-length array.
func EncodeArrayArm[T any, P PtrEncoder[T]](buf *bytes.Buffer, arm *[]T, union string, disc any) error {
	if arm == nil {
		return UnionArmError(union, disc)
	}
	return EncodeArray[T, P](buf, *arm)
}

// DecodeArrayArm decodes a union arm holding a variable-length array.
func DecodeArrayArm[T any, P PtrDecoder[T]](c *Cursor) (*[]T, error) {
	items, err := DecodeArray[T, P](c)
	if err != nil {
		return nil, err
	}
	return &items, nil
}
