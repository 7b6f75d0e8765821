package packet

import "fmt"

// SaltTableCount is the number of salt tables a connection seed can select.
const SaltTableCount = len(saltTables)

// DerivedKeyLength is the length of keys produced by DeriveKey.
const DerivedKeyLength = 9

// Bounds of the random values embedded in an encrypted frame's trailer.
const (
	minBRand  = 256
	spanBRand = 65277
	minSRand  = 100
	spanSRand = 155
)

// CipherContext holds the per-connection cipher parameters. It is shared
// read-only between the codec and the transport once a connection is
// established; the ordinal travels with each Frame instead.
type CipherContext struct {
	// Seed selects one of the ten salt tables.
	Seed byte
	// Key is the connection's default key, used by EncryptNormal opcodes.
	Key []byte
	// KeyTable is the 1024-byte table derived from the player name. It is
	// required only for EncryptMD5Key opcodes.
	KeyTable []byte
}

// Validate reports whether the context can be used for encryption.
func (c *CipherContext) Validate() error {
	if c == nil {
		return fmt.Errorf("cipher context is required")
	}
	if int(c.Seed) >= SaltTableCount {
		return fmt.Errorf("cipher seed %d out of range [0,%d)", c.Seed, SaltTableCount)
	}
	if len(c.Key) == 0 {
		return fmt.Errorf("cipher default key is empty")
	}
	return nil
}

// DeriveKey computes the per-frame key from the trailer values.
func (c *CipherContext) DeriveKey(bRand uint16, sRand byte) ([]byte, error) {
	if len(c.KeyTable) != KeyTableLength {
		return nil, fmt.Errorf("key table has %d bytes, want %d", len(c.KeyTable), KeyTableLength)
	}
	return deriveKey(c.KeyTable, bRand, sRand), nil
}

func deriveKey(table []byte, bRand uint16, sRand byte) []byte {
	key := make([]byte, DerivedKeyLength)
	s := int(sRand)
	for i := range key {
		key[i] = table[(i*(9*i+s*s)+int(bRand))%KeyTableLength]
	}
	return key
}

func (c *CipherContext) keyFor(method EncryptMethod, bRand uint16, sRand byte) ([]byte, error) {
	if method == EncryptNormal {
		return c.Key, nil
	}
	return c.DeriveKey(bRand, sRand)
}

// crypt applies the positional XOR stream in place. It is an involution.
func crypt(data, key []byte, seed, ordinal byte) {
	salt := &saltTables[seed]
	kl := len(key)
	for i := range data {
		idx := (i / kl) % len(salt)
		data[i] ^= key[i%kl]
		data[i] ^= salt[idx]
		if idx != int(ordinal) {
			data[i] ^= salt[ordinal]
		}
	}
}

// trailer masks differ per direction: the server hides bRand's low byte
// behind 0x74, the client behind 0x70.
func writeTrailer(dir Direction, t []byte, bRand uint16, sRand byte) {
	if dir == ClientToServer {
		t[0] = byte(bRand) ^ 0x70
		t[1] = sRand ^ 0x23
		t[2] = byte(bRand>>8) ^ 0x74
		return
	}
	t[0] = byte(bRand) ^ 0x74
	t[1] = sRand ^ 0x24
	t[2] = byte(bRand>>8) ^ 0x64
}

func readTrailer(dir Direction, t []byte) (uint16, byte) {
	if dir == ClientToServer {
		return (uint16(t[2])<<8 | uint16(t[0])) ^ 0x7470, t[1] ^ 0x23
	}
	return uint16(t[2]^0x64)<<8 | uint16(t[0]^0x74), t[1] ^ 0x24
}
