package packet

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

const (
	// Marker opens every frame.
	Marker byte = 0xAA

	headerLength  = 3 // marker + length
	trailerLength = 3

	// MaxFrameLength bounds a single frame, including its header.
	MaxFrameLength = headerLength + 0xFFFF
)

// Frame is one decoded protocol message.
type Frame struct {
	Opcode  byte
	Ordinal byte
	Payload []byte
	// TransmitDelay asks the send loop to hold the frame back before writing
	// it. It never appears on the wire.
	TransmitDelay time.Duration
}

// Rand is the source of the trailer values. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Encode serializes f for direction dir. Encrypted opcodes draw their trailer
// values from rng; server frames gain their footer before encryption.
func Encode(dir Direction, f Frame, ctx *CipherContext, rng Rand) ([]byte, error) {
	method := MethodFor(dir, f.Opcode)
	if method == EncryptNone {
		body := 1 + len(f.Payload)
		if body > 0xFFFF {
			return nil, fmt.Errorf("frame 0x%02X payload of %d bytes exceeds frame limit", f.Opcode, len(f.Payload))
		}
		buf := make([]byte, headerLength, headerLength+body)
		buf[0] = Marker
		binary.BigEndian.PutUint16(buf[1:], uint16(body))
		buf = append(buf, f.Opcode)
		return append(buf, f.Payload...), nil
	}

	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	footer := footerLength(dir, method)
	body := 2 + len(f.Payload) + footer + trailerLength
	if body > 0xFFFF {
		return nil, fmt.Errorf("frame 0x%02X payload of %d bytes exceeds frame limit", f.Opcode, len(f.Payload))
	}

	buf := make([]byte, headerLength+body)
	buf[0] = Marker
	binary.BigEndian.PutUint16(buf[1:], uint16(body))
	buf[3] = f.Opcode
	buf[4] = f.Ordinal
	data := buf[5 : len(buf)-trailerLength]
	copy(data, f.Payload)
	// The footer opens with 0x00; derived-key frames repeat the opcode.
	if footer == 2 {
		data[len(f.Payload)+1] = f.Opcode
	}

	bRand := uint16(rng.IntN(spanBRand) + minBRand)
	sRand := byte(rng.IntN(spanSRand) + minSRand)
	key, err := ctx.keyFor(method, bRand, sRand)
	if err != nil {
		return nil, err
	}
	crypt(data, key, ctx.Seed, f.Ordinal)
	writeTrailer(dir, buf[len(buf)-trailerLength:], bRand, sRand)
	return buf, nil
}

// Decode parses a complete frame produced in direction dir.
func Decode(dir Direction, buf []byte, ctx *CipherContext) (Frame, error) {
	if len(buf) < headerLength+1 {
		return Frame{}, malformed("frame of %d bytes is shorter than its header", len(buf))
	}
	if buf[0] != Marker {
		return Frame{}, malformed("frame marker 0x%02X", buf[0])
	}
	if declared := int(binary.BigEndian.Uint16(buf[1:])); declared != len(buf)-headerLength {
		return Frame{}, malformed("length prefix %d disagrees with %d byte body", declared, len(buf)-headerLength)
	}

	f := Frame{Opcode: buf[3]}
	method := MethodFor(dir, f.Opcode)
	if method == EncryptNone {
		f.Payload = append([]byte(nil), buf[4:]...)
		return f, nil
	}

	footer := footerLength(dir, method)
	if len(buf) < headerLength+2+footer+trailerLength {
		return Frame{}, malformed("encrypted frame 0x%02X truncated at %d bytes", f.Opcode, len(buf))
	}
	if err := ctx.Validate(); err != nil {
		return Frame{}, err
	}
	f.Ordinal = buf[4]
	data := append([]byte(nil), buf[5:len(buf)-trailerLength]...)
	bRand, sRand := readTrailer(dir, buf[len(buf)-trailerLength:])
	key, err := ctx.keyFor(method, bRand, sRand)
	if err != nil {
		return Frame{}, err
	}
	crypt(data, key, ctx.Seed, f.Ordinal)
	f.Payload = data[:len(data)-footer]
	return f, nil
}

// footerLength is the number of bytes the server appends to an encrypted
// payload before the cipher runs. Client frames are decoded verbatim.
func footerLength(dir Direction, method EncryptMethod) int {
	if dir == ClientToServer {
		return 0
	}
	switch method {
	case EncryptNormal:
		return 1
	case EncryptMD5Key:
		return 2
	default:
		return 0
	}
}

// ReadFrame reads the next complete frame from r without decoding it.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	var header [headerLength]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	if header[0] != Marker {
		return nil, malformed("frame marker 0x%02X", header[0])
	}
	body := int(binary.BigEndian.Uint16(header[1:]))
	if body == 0 {
		return nil, malformed("empty frame")
	}
	buf := make([]byte, headerLength+body)
	copy(buf, header[:])
	if _, err := io.ReadFull(r, buf[headerLength:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
