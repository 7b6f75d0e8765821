package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyTable(t *testing.T) {
	table := GenerateKeyTable("Nadia")
	require.Len(t, table, KeyTableLength)
	assert.Equal(t, "03a66b8634142db0f78a6e634314c9b2", string(table[:32]))
	for _, b := range table {
		assert.Contains(t, "0123456789abcdef", string(b))
	}
}

func TestDeriveKey(t *testing.T) {
	ctx := testContext(0)
	key, err := ctx.DeriveKey(300, 120)
	require.NoError(t, err)
	assert.Equal(t, []byte("a09eb046d"), key)

	_, err = (&CipherContext{Key: []byte{1}}).DeriveKey(300, 120)
	assert.Error(t, err)
}

func TestKeyTablesCachesByName(t *testing.T) {
	tables, err := NewKeyTables(2)
	require.NoError(t, err)

	first := tables.Get("Nadia")
	second := tables.Get("Nadia")
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, 1, tables.Len())

	tables.Get("Riona")
	tables.Get("Elara")
	assert.Equal(t, 2, tables.Len())
}
