package xdr

import (
	"bytes"
	"fmt"
)

// ============================================================================
// Optional-of-T (RFC 4506 Section 4.19)
// ============================================================================

// EncodeOptional writes a presence flag followed by v when v is non-nil.
func EncodeOptional[T any, P PtrEncoder[T]](buf *bytes.Buffer, v *T) error {
	if v == nil {
		WriteBool(buf, false)
		return nil
	}
	WriteBool(buf, true)
	return P(v).Encode(buf)
}

// DecodeOptional reads a presence flag and, if set, a T.
// An absent value decodes as nil, never as a zero T.
func DecodeOptional[T any, P PtrDecoder[T]](c *Cursor) (*T, error) {
	present, err := DecodeBool(c)
	if err != nil {
		return nil, fmt.Errorf("read presence flag: %w", err)
	}
	if !present {
		return nil, nil
	}
	return DecodeArm[T, P](c)
}

// EncodeOptionalFunc is EncodeOptional for payloads encoded by a plain
// function, such as primitives.
func EncodeOptionalFunc[T any](buf *bytes.Buffer, v *T, enc func(*bytes.Buffer, T)) {
	if v == nil {
		WriteBool(buf, false)
		return
	}
	WriteBool(buf, true)
	enc(buf, *v)
}

// DecodeOptionalFunc is DecodeOptional for payloads decoded by a plain function.
func DecodeOptionalFunc[T any](c *Cursor, dec func(*Cursor) (T, error)) (*T, error) {
	present, err := DecodeBool(c)
	if err != nil {
		return nil, fmt.Errorf("read presence flag: %w", err)
	}
	if !present {
		return nil, nil
	}
	v, err := dec(c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ============================================================================
// Arrays (RFC 4506 Sections 4.12 and 4.13)
// ============================================================================

// minElementSize is the smallest encoding of any array element in the
// schema. It bounds the element count a length prefix may claim.
const minElementSize = 4

// readCount reads a variable-array count and rejects counts that cannot fit
// in the remaining buffer.
func readCount(c *Cursor) (int, error) {
	n, err := DecodeUint32(c)
	if err != nil {
		return 0, fmt.Errorf("read array length: %w", err)
	}
	if err := c.Require(uint64(n) * minElementSize); err != nil {
		return 0, fmt.Errorf("array length %d: %w", n, err)
	}
	return int(n), nil
}

// EncodeArray writes a uint32 count followed by each element.
func EncodeArray[T any, P PtrEncoder[T]](buf *bytes.Buffer, items []T) error {
	WriteUint32(buf, uint32(len(items)))
	for i := range items {
		if err := P(&items[i]).Encode(buf); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// DecodeArray reads a counted array. An empty array decodes as a non-nil,
// zero-length slice so it stays distinguishable from an absent optional.
func DecodeArray[T any, P PtrDecoder[T]](c *Cursor) ([]T, error) {
	n, err := readCount(c)
	if err != nil {
		return nil, err
	}
	return decodeElements[T, P](c, n)
}

// EncodeFixedArray writes exactly n elements with no count prefix.
func EncodeFixedArray[T any, P PtrEncoder[T]](buf *bytes.Buffer, items []T, n int) error {
	if len(items) != n {
		return NewError(ErrInvalidValue, "fixed array needs %d elements, has %d", n, len(items))
	}
	for i := range items {
		if err := P(&items[i]).Encode(buf); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// DecodeFixedArray reads exactly n elements.
func DecodeFixedArray[T any, P PtrDecoder[T]](c *Cursor, n int) ([]T, error) {
	return decodeElements[T, P](c, n)
}

func decodeElements[T any, P PtrDecoder[T]](c *Cursor, n int) ([]T, error) {
	items := make([]T, n)
	for i := range items {
		if err := P(&items[i]).Decode(c); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return items, nil
}

// EncodeArrayFunc writes a counted array whose elements are encoded by enc.
func EncodeArrayFunc[T any](buf *bytes.Buffer, items []T, enc func(*bytes.Buffer, T)) {
	WriteUint32(buf, uint32(len(items)))
	for _, it := range items {
		enc(buf, it)
	}
}

// DecodeArrayFunc reads a counted array whose elements are decoded by dec.
func DecodeArrayFunc[T any](c *Cursor, dec func(*Cursor) (T, error)) ([]T, error) {
	n, err := readCount(c)
	if err != nil {
		return nil, err
	}
	items := make([]T, n)
	for i := range items {
		if items[i], err = dec(c); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return items, nil
}
