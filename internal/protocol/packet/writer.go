package packet

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding"
)

// Writer accumulates a payload. Strings that do not fit their length prefix
// are truncated; characters outside the code page are replaced.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the payload length so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Write appends raw bytes.
func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteUint8 appends one byte.
func (w *Writer) WriteUint8(b byte) {
	w.buf = append(w.buf, b)
}

// WriteBool appends 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
		return
	}
	w.WriteUint8(0)
}

// WriteUint16 appends a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteInt16 appends a big-endian int16.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 appends a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteInt32 appends a big-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteString8 appends s with a one-byte length prefix.
func (w *Writer) WriteString8(s string) {
	b := encodeString(s, math.MaxUint8)
	w.WriteUint8(byte(len(b)))
	w.Write(b)
}

// WriteString16 appends s with a two-byte length prefix.
func (w *Writer) WriteString16(s string) {
	b := encodeString(s, math.MaxUint16)
	w.WriteUint16(uint16(len(b)))
	w.Write(b)
}

func encodeString(s string, limit int) []byte {
	b, err := encoding.ReplaceUnsupported(codePage.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		b = []byte(s)
	}
	if len(b) > limit {
		b = b[:boundary(b, limit)]
	}
	return b
}

// boundary returns the largest cut of b at or below limit that does not
// split a character. Any byte from 0x80 up leads a two-byte character in
// the code page; trail bytes may fall in the ASCII range, so b is walked
// from the start.
func boundary(b []byte, limit int) int {
	end := 0
	for end < len(b) {
		n := 1
		if b[end] >= 0x80 {
			n = 2
		}
		if end+n > limit {
			break
		}
		end += n
	}
	return end
}
