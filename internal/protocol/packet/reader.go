package packet

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
)

// codePage is the client's legacy string encoding (code page 949).
var codePage encoding.Encoding = korean.EUCKR

// Reader consumes typed values from a payload. Every method fails with
// ErrBufferUnderrun instead of reading past the end.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, underrun(n, r.pos, len(r.data))
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Read returns the next n bytes as a copy.
func (r *Reader) Read(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// ReadByte returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads one byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt16 reads a big-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt32 reads a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadString8 reads a string with a one-byte length prefix.
func (r *Reader) ReadString8() (string, error) {
	n, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	return r.readString(int(n))
}

// ReadString16 reads a string with a two-byte length prefix.
func (r *Reader) ReadString16() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	return r.readString(int(n))
}

func (r *Reader) readString(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	s, err := codePage.NewDecoder().Bytes(b)
	if err != nil {
		return "", malformed("decode string: %v", err)
	}
	return string(s), nil
}

// ReadDialogHeader returns the six-byte dialog header.
func (r *Reader) ReadDialogHeader() ([]byte, error) {
	return r.Read(DialogHeaderLength)
}
