package util

// Writer is the encoding mirror of Reader: an append-only byte buffer whose
// length is the cursor position. Encoding cannot fail on a well-formed model,
// so no error channel exists.
type Writer struct {
	buffer []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(v uint8) {
	w.buffer = append(w.buffer, v)
}

func (w *Writer) WriteBytes(bs []byte) {
	w.buffer = append(w.buffer, bs...)
}

func (w *Writer) WriteBool(b bool) {
	w.Write(BoolToByte(b, 1))
}

// WriteString emits the UTF-8 bytes of s, truncated at n, then zero-pads the
// field to exactly n bytes.
func (w *Writer) WriteString(s string, n int) {
	b := []byte(s)
	if n < len(b) {
		b = b[:n]
	}
	w.buffer = append(w.buffer, b...)
	for i := len(b); i < n; i++ {
		w.buffer = append(w.buffer, 0x00)
	}
}

func (w *Writer) Pos() int {
	return len(w.buffer)
}

// FillTill pads with v up to the absolute offset until. This is the only way
// to finalize a slot whose variant writes fewer bytes than the slot holds.
func (w *Writer) FillTill(v uint8, until int) {
	for len(w.buffer) < until {
		w.buffer = append(w.buffer, v)
	}
}

func (w *Writer) Bytes() []byte {
	return w.buffer
}

func BoolToByte(b bool, v byte) byte {
	if b {
		return v
	}
	return 0
}
