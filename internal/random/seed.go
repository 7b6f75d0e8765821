// Package random provides the randomness sources used by the packet cipher.
//
// Seeds come from crypto/rand; each connection then owns a PCG generator so
// the per-frame key-derivation bytes are cheap to draw and never shared
// between goroutines.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG-backed generator seeded from crypto/rand.
func NewSource() (*rand.Rand, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}

// Bytes returns n bytes drawn from crypto/rand.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("random byte count %d is negative", n)
	}
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
