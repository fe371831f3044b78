package util

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reader is a positioned cursor over a byte image. The first failure is
// sticky: subsequent reads return zero values and Err reports the failure.
// Record decoders read their fields in wire order and check Err once at the
// record boundary.
type Reader struct {
	buffer   []byte
	position int
	err      error
}

func NewReader(buffer []byte) *Reader {
	return &Reader{buffer: buffer}
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Err reports the first failure encountered by the cursor, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Read() uint8 {
	if r.err != nil {
		return 0
	}
	if len(r.buffer) <= r.position {
		r.fail(errors.Wrapf(ErrTruncated, "read at offset 0x%X", r.position))
		return 0
	}
	b := r.buffer[r.position]
	r.position++
	return b
}

func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buffer) < r.position+n {
		r.fail(errors.Wrapf(ErrTruncated, "read of %d bytes at offset 0x%X", n, r.position))
		return nil
	}
	bs := r.buffer[r.position : r.position+n]
	r.position += n
	return bs
}

func (r *Reader) ReadBool() bool {
	return r.Read() == 1
}

// ReadString consumes n bytes and returns the text up to the first 0x00 or
// 0xFF. A field with no terminator is a name filling its whole slot. The
// bytes before the terminator must be valid UTF-8. The terminator scan is
// over raw bytes; 0xFF never occurs in valid UTF-8, so it cannot be part of
// the text.
func (r *Reader) ReadString(n int) string {
	start := r.position
	b := r.ReadBytes(n)
	if b == nil {
		return ""
	}
	end := bytes.IndexByte(b, 0x00)
	if ff := bytes.IndexByte(b, 0xFF); ff >= 0 && (end < 0 || ff < end) {
		end = ff
	}
	if end < 0 {
		end = n
	}
	if !utf8.Valid(b[:end]) {
		r.fail(errors.Wrapf(ErrMalformedString, "string at offset 0x%X: %s", start, Hex(b[:end])))
		return ""
	}
	return string(b[:end])
}

func (r *Reader) Pos() int {
	return r.position
}

// SetPos seeks to an absolute offset. Seeking backwards is legal; variants
// with on-disk gaps realign the cursor after their last field.
func (r *Reader) SetPos(n int) {
	r.position = n
}

// Len reports the total image size.
func (r *Reader) Len() int {
	return len(r.buffer)
}
