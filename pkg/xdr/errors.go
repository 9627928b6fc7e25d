package xdr

import "fmt"

// ErrorCode classifies codec failures.
//
// ErrorCode implements error so callers can match a failure class anywhere in
// a wrapped chain:
//
//	if errors.Is(err, xdr.ErrBounds) { ... }
type ErrorCode int

const (
	// ErrBounds indicates a read past the end of the buffer, including a
	// length prefix that claims more bytes than remain.
	ErrBounds ErrorCode = iota + 1

	// ErrInvalidEncoding indicates bytes that violate an XDR rule, such as a
	// bool outside {0,1} or non-zero padding.
	ErrInvalidEncoding

	// ErrInvalidBase64 indicates text-envelope input that is not valid
	// standard base64. Binary decoding is never attempted in that case.
	ErrInvalidBase64

	// ErrInvalidValue indicates an in-memory value that cannot be encoded,
	// e.g. a union whose selected arm is nil.
	ErrInvalidValue

	// ErrTrailingData indicates bytes left over after a top-level decode.
	ErrTrailingData
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrBounds:
		return "Bounds"
	case ErrInvalidEncoding:
		return "InvalidEncoding"
	case ErrInvalidBase64:
		return "InvalidBase64"
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrTrailingData:
		return "TrailingData"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error implements error.
func (c ErrorCode) Error() string {
	return "xdr: " + c.String()
}

// Error is the typed failure returned by every decoder in this package.
type Error struct {
	Code    ErrorCode
	Offset  int    // cursor offset where the failure was detected, -1 if not applicable
	Message string // detail
	Err     error  // underlying cause, if any
}

// Error implements error.
func (e *Error) Error() string {
	msg := "xdr " + e.Code.String()
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of this error.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// NewError creates an Error with no offset information.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// UnionArmError reports a union whose discriminant selects an arm that was
// left nil by the caller.
func UnionArmError(union string, disc any) error {
	return NewError(ErrInvalidValue, "%s: arm for discriminant %v is not set", union, disc)
}
