// Package packet implements the wire codec spoken with the game client.
//
// A frame is laid out as
//
//	0xAA | length (u16, big endian, frame length - 3) | opcode | ordinal | payload | trailer
//
// where the ordinal and the three-byte trailer are present only for opcodes
// in an encrypted class. The encrypted class of an opcode depends on the
// direction of travel: some opcodes use the connection's default key, the
// rest derive a fresh nine-byte key per frame from two random values hidden
// in the trailer and a key table computed from the player's name.
//
// The payload is obfuscated with a positional XOR stream: each byte is mixed
// with the key, with one of ten fixed salt tables selected by the connection
// seed, and with the salt entry for the frame ordinal. The transform is its
// own inverse, so the same routine encrypts and decrypts.
//
// Dialog packets sent by the client (0x39 and 0x3A) additionally carry a
// six-byte header with its own length obfuscation and a CRC-16 over the
// dialog body; see GenerateDialogHeader, EncryptDialog and DecryptDialog.
//
// Typed payload access goes through Reader and Writer. Strings use the
// legacy Korean code page (949) the client renders with.
package packet
