package xdr

import (
	"bytes"
	"encoding/binary"
)

// ============================================================================
// XDR Encoding Helpers - Go Types → Wire Format
// ============================================================================
//
// Writers append to a caller-owned bytes.Buffer. Appending to a bytes.Buffer
// cannot fail, so primitive writers have no error result; only composite
// encoders that can meet an unencodable in-memory value return errors.

// WriteUint32 encodes a 32-bit unsigned integer in big-endian byte order.
//
// Per RFC 4506 Section 4.2 (Unsigned Integer).
func WriteUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// WriteInt32 encodes a 32-bit signed integer in big-endian two's complement.
//
// Per RFC 4506 Section 4.1 (Integer).
func WriteInt32(buf *bytes.Buffer, v int32) {
	WriteUint32(buf, uint32(v))
}

// WriteUint64 encodes an unsigned hyper integer in big-endian byte order.
//
// Per RFC 4506 Section 4.5 (Hyper Integer).
func WriteUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// WriteInt64 encodes a hyper integer in big-endian two's complement.
func WriteInt64(buf *bytes.Buffer, v int64) {
	WriteUint64(buf, uint64(v))
}

// WriteBool encodes a boolean as a uint32 holding 0 or 1.
//
// Per RFC 4506 Section 4.4 (Boolean).
func WriteBool(buf *bytes.Buffer, v bool) {
	var val uint32
	if v {
		val = 1
	}
	WriteUint32(buf, val)
}

// WriteEnum encodes an enumeration value as a signed 32-bit integer.
//
// Per RFC 4506 Section 4.3 (Enumeration). Union discriminants use the same rule.
func WriteEnum[E ~int32](buf *bytes.Buffer, v E) {
	WriteInt32(buf, int32(v))
}

// WritePadding writes zero bytes to align dataLen to a 4-byte boundary.
//
// Padding calculation: (4 - (dataLen % 4)) % 4
//
//	dataLen=3 → writes 1 padding byte
//	dataLen=4 → writes 0 padding bytes
//	dataLen=5 → writes 3 padding bytes
func WritePadding(buf *bytes.Buffer, dataLen int) {
	var zero [3]byte
	if pad := Padding(dataLen); pad > 0 {
		buf.Write(zero[:pad])
	}
}

// Padding returns the number of pad bytes that follow dataLen bytes of data.
func Padding(dataLen int) int {
	return (4 - dataLen%4) % 4
}

// WriteFixedOpaque encodes fixed-length opaque data: the raw bytes followed
// by zero padding. The length is implied by the schema and not written.
//
// Per RFC 4506 Section 4.9 (Fixed-Length Opaque Data).
func WriteFixedOpaque(buf *bytes.Buffer, data []byte) {
	buf.Write(data)
	WritePadding(buf, len(data))
}

// WriteOpaque encodes variable-length opaque data: length + data + padding.
//
// Per RFC 4506 Section 4.10 (Variable-Length Opaque Data):
// Format: [length:uint32][data:length bytes][padding:0-3 bytes]
//
// Example:
//
//	[]byte{0x01, 0x02, 0x03} → [00 00 00 03][01 02 03][00] (8 bytes total)
func WriteOpaque(buf *bytes.Buffer, data []byte) {
	WriteUint32(buf, uint32(len(data)))
	buf.Write(data)
	WritePadding(buf, len(data))
}

// WriteString encodes a string with the variable-length opaque rule.
//
// Per RFC 4506 Section 4.11 (String):
//
//	"abc" (3 bytes) → [00 00 00 03][61 62 63][00] (8 bytes total)
//	"test" (4 bytes) → [00 00 00 04][74 65 73 74] (8 bytes total)
func WriteString(buf *bytes.Buffer, s string) {
	WriteUint32(buf, uint32(len(s)))
	buf.WriteString(s)
	WritePadding(buf, len(s))
}
