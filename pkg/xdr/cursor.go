package xdr

import "fmt"

// Cursor is a read-only view over a byte buffer with a movable offset.
//
// A Cursor belongs to a single decode call. The buffer it reads must not be
// mutated while decoding, and slices returned by Next alias it; decoders in
// this package copy before handing data to callers.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a Cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Len returns the total size of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Next returns the next n bytes and advances the cursor.
// It fails with ErrBounds without moving if fewer than n bytes remain.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &Error{
			Code:    ErrBounds,
			Offset:  c.off,
			Message: boundsMessage(n, c.Remaining()),
		}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.Next(n)
	return err
}

// Require fails with ErrBounds unless at least n bytes remain.
// Used to reject length prefixes before allocating.
func (c *Cursor) Require(n uint64) error {
	if n > uint64(c.Remaining()) {
		return &Error{
			Code:    ErrBounds,
			Offset:  c.off,
			Message: boundsMessageU(n, c.Remaining()),
		}
	}
	return nil
}

func boundsMessage(need, have int) string {
	return fmt.Sprintf("need %d bytes, %d remaining", need, have)
}

func boundsMessageU(need uint64, have int) string {
	return fmt.Sprintf("need %d bytes, %d remaining", need, have)
}
