package packet

import "encoding/binary"

// DialogHeaderLength is the size of the header that opens client dialog
// payloads: two random bytes, the obfuscated length and the CRC.
const DialogHeaderLength = 6

// DialogCRC computes the checksum stored in a dialog header over body.
func DialogCRC(body []byte) uint16 {
	var crc uint16
	for _, b := range body {
		crc = uint16(b) ^ (crc << 8) ^ dialogCRCTable[crc>>8]
	}
	return crc
}

// GenerateDialogHeader fills the first six bytes of data, which must already
// hold the dialog body from offset six, with r0, r1, the length and the CRC.
// The length covers everything after the length field itself.
func GenerateDialogHeader(data []byte, r0, r1 byte) error {
	if len(data) < DialogHeaderLength {
		return underrun(DialogHeaderLength, 0, len(data))
	}
	crc := DialogCRC(data[DialogHeaderLength:])
	data[0] = r0
	data[1] = r1
	binary.BigEndian.PutUint16(data[2:], uint16(len(data)-4))
	binary.BigEndian.PutUint16(data[4:], crc)
	return nil
}

// dialogMasks derives the length mask and the running body mask from the two
// random header bytes.
func dialogMasks(data []byte) (y, z byte) {
	xPrime := data[0] - 0x2D
	x := data[1] ^ xPrime
	return x + 0x72, x + 0x28
}

// EncryptDialog obfuscates a header produced by GenerateDialogHeader along
// with the CRC and body that follow the length field.
func EncryptDialog(data []byte) error {
	if len(data) < DialogHeaderLength {
		return underrun(DialogHeaderLength, 0, len(data))
	}
	length := int(binary.BigEndian.Uint16(data[2:]))
	if 4+length > len(data) {
		return malformed("dialog length %d exceeds %d byte payload", length, len(data))
	}
	y, z := dialogMasks(data)
	data[2] ^= y
	data[3] ^= y + 1
	maskBody(data[4:4+length], z)
	return nil
}

// DecryptDialog reverses EncryptDialog in place and verifies the CRC. On
// error data is left as it was passed in.
func DecryptDialog(data []byte) error {
	if len(data) < DialogHeaderLength {
		return underrun(DialogHeaderLength, 0, len(data))
	}
	y, z := dialogMasks(data)
	data[2] ^= y
	data[3] ^= y + 1
	length := int(binary.BigEndian.Uint16(data[2:]))
	if length < 2 || 4+length > len(data) {
		data[2] ^= y
		data[3] ^= y + 1
		return malformed("dialog length %d does not fit %d byte payload", length, len(data))
	}
	maskBody(data[4:4+length], z)
	body := data[DialogHeaderLength : 4+length]
	if got, want := DialogCRC(body), binary.BigEndian.Uint16(data[4:]); got != want {
		maskBody(data[4:4+length], z)
		data[2] ^= y
		data[3] ^= y + 1
		return malformed("dialog crc 0x%04X, header says 0x%04X", got, want)
	}
	return nil
}

// maskBody applies the running mask starting at z. Applying it twice
// restores b.
func maskBody(b []byte, z byte) {
	for i := range b {
		b[i] ^= z + byte(i)
	}
}
