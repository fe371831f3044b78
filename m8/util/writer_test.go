package util

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.Write(0x01)
	w.WriteBytes([]byte{0x02, 0x03})
	w.WriteBool(true)
	w.WriteBool(false)
	if got := w.Pos(); got != 5 {
		t.Errorf("Pos() = %d, want 5", got)
	}
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x01, 0x02, 0x03, 0x01, 0x00}) {
		t.Errorf("Bytes() = % X", got)
	}
}

func TestWriteString(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    string
		n    int
		want []byte
	}{
		{"padded", "AB", 4, []byte{'A', 'B', 0x00, 0x00}},
		{"exact", "ABCD", 4, []byte{'A', 'B', 'C', 'D'}},
		{"truncated", "ABCDEF", 4, []byte{'A', 'B', 'C', 'D'}},
		{"empty", "", 3, []byte{0x00, 0x00, 0x00}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteString(tc.s, tc.n)
			if got := w.Bytes(); !bytes.Equal(got, tc.want) {
				t.Errorf("WriteString(%q, %d) = % X, want % X", tc.s, tc.n, got, tc.want)
			}
		})
	}
}

func TestFillTill(t *testing.T) {
	w := NewWriter()
	w.Write(0x01)
	w.FillTill(0xFF, 4)
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x01, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("Bytes() = % X", got)
	}

	// Filling up to a position already reached writes nothing.
	w.FillTill(0xAA, 2)
	if got := w.Pos(); got != 4 {
		t.Errorf("Pos() after no-op fill = %d, want 4", got)
	}
}
