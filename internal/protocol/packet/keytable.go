package packet

import (
	"crypto/md5"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// KeyTableLength is the size of a name-derived key table.
const KeyTableLength = 1024

// GenerateKeyTable derives the key table for a player name: the lowercase hex
// MD5 of the hex MD5 of the name, extended 31 times with the hex MD5 of the
// table so far.
func GenerateKeyTable(name string) []byte {
	table := md5Hex([]byte(name))
	table = md5Hex(table)
	for range 31 {
		table = append(table, md5Hex(table)...)
	}
	return table
}

func md5Hex(b []byte) []byte {
	sum := md5.Sum(b)
	out := make([]byte, hex.EncodedLen(len(sum)), KeyTableLength)
	hex.Encode(out, sum[:])
	return out
}

// KeyTables memoizes key tables by player name. Reconnects and name lookups
// for async dialogs hit the cache instead of recomputing 33 digests.
type KeyTables struct {
	cache *lru.Cache[string, []byte]
}

// NewKeyTables builds a cache holding up to size tables.
func NewKeyTables(size int) (*KeyTables, error) {
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &KeyTables{cache: cache}, nil
}

// Get returns the table for name, computing it on a miss. Callers must not
// modify the returned slice.
func (k *KeyTables) Get(name string) []byte {
	if table, ok := k.cache.Get(name); ok {
		return table
	}
	table := GenerateKeyTable(name)
	k.cache.Add(name, table)
	return table
}

// Len returns the number of cached tables.
func (k *KeyTables) Len() int {
	return k.cache.Len()
}
