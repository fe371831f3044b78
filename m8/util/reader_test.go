package util

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestReaderSequential(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if got := r.Read(); got != 0x01 {
		t.Errorf("Read() = 0x%02X, want 0x01", got)
	}
	if got := r.ReadBytes(2); !bytes.Equal(got, []byte{0x02, 0x03}) {
		t.Errorf("ReadBytes(2) = % X, want 02 03", got)
	}
	if got := r.Pos(); got != 3 {
		t.Errorf("Pos() = %d, want 3", got)
	}
	if got := r.Read(); got != 0x04 {
		t.Errorf("Read() = 0x%02X, want 0x04", got)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.Read()
	if got := r.Read(); got != 0 {
		t.Errorf("Read() past end = 0x%02X, want 0", got)
	}
	first := r.Err()
	if errors.Cause(first) != ErrTruncated {
		t.Fatalf("Err() cause = %v, want ErrTruncated", first)
	}

	// Further reads keep returning zero values and do not replace the
	// first failure.
	r.SetPos(0)
	if got := r.Read(); got != 0 {
		t.Errorf("Read() after failure = 0x%02X, want 0", got)
	}
	if got := r.ReadBytes(1); got != nil {
		t.Errorf("ReadBytes() after failure = % X, want nil", got)
	}
	if r.Err() != first {
		t.Errorf("Err() = %v, want the first failure to stick", r.Err())
	}
}

func TestReaderSeek(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB, 0xCC})
	r.Read()
	r.Read()
	r.SetPos(0)
	if got := r.Read(); got != 0xAA {
		t.Errorf("Read() after SetPos(0) = 0x%02X, want 0xAA", got)
	}
	if got := r.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestReaderBool(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0x02})
	if r.ReadBool() {
		t.Error("ReadBool() of 0x00 = true, want false")
	}
	if !r.ReadBool() {
		t.Error("ReadBool() of 0x01 = false, want true")
	}
	if r.ReadBool() {
		t.Error("ReadBool() of 0x02 = true, want false")
	}
}

func TestReadString(t *testing.T) {
	for _, tc := range []struct {
		name  string
		data  []byte
		n     int
		want  string
		cause error
	}{
		{"zero terminated", []byte{'A', 'B', 'C', 0x00, 0x00}, 5, "ABC", nil},
		{"ff terminated", []byte{'A', 'B', 0xFF, 0xFF, 0xFF}, 5, "AB", nil},
		{"ff padded tail", []byte{'K', 'I', 'C', 'K', 0xFF, 0xFF, 0xFF, 0xFF}, 8, "KICK", nil},
		{"ff before zero", []byte{'A', 0xFF, 0x00, 0x42}, 4, "A", nil},
		{"full width", []byte{'A', 'B', 'C', 'D', 'E'}, 5, "ABCDE", nil},
		{"empty", []byte{0x00, 0x00, 0x00}, 3, "", nil},
		{"multibyte", []byte{0xC3, 0xA9, 0x00, 0x00}, 4, "é", nil},
		{"invalid utf8", []byte{0xC3, 0x28, 0x00, 0x00}, 4, "", ErrMalformedString},
		{"truncated", []byte{'A', 'B'}, 5, "", ErrTruncated},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.data)
			got := r.ReadString(tc.n)
			if got != tc.want {
				t.Errorf("ReadString(%d) = %q, want %q", tc.n, got, tc.want)
			}
			if tc.cause == nil {
				if err := r.Err(); err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				if r.Pos() != tc.n {
					t.Errorf("Pos() = %d, want %d", r.Pos(), tc.n)
				}
			} else if errors.Cause(r.Err()) != tc.cause {
				t.Errorf("Err() cause = %v, want %v", r.Err(), tc.cause)
			}
		})
	}
}
