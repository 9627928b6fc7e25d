package xdr

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// ============================================================================
// Binary and text envelopes
// ============================================================================

// Marshal returns the canonical XDR encoding of v.
func Marshal(v XdrEncoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v. The whole buffer must be consumed;
// leftover bytes fail with ErrTrailingData.
func Unmarshal(data []byte, v XdrDecoder) error {
	c := NewCursor(data)
	if err := v.Decode(c); err != nil {
		return err
	}
	if c.Remaining() != 0 {
		return &Error{
			Code:    ErrTrailingData,
			Offset:  c.Offset(),
			Message: fmt.Sprintf("%d bytes left after decode", c.Remaining()),
		}
	}
	return nil
}

// MarshalBase64 returns the standard base64 encoding of v's XDR bytes.
func MarshalBase64(v XdrEncoder) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 base64-decodes s and then decodes the bytes into v.
//
// Input that is not valid standard base64 fails with ErrInvalidBase64 and no
// binary decoding is attempted, so callers can tell a malformed transport
// string from a malformed payload.
func UnmarshalBase64(s string, v XdrDecoder) error {
	data, err := DecodeBase64(s)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}

// DecodeBase64 decodes standard base64 text, reporting failures as
// ErrInvalidBase64.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &Error{Code: ErrInvalidBase64, Offset: -1, Message: "decode base64", Err: err}
	}
	return data, nil
}
