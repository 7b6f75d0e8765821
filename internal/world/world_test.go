package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/platform/i18n/catalog"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

type conn struct {
	mu      sync.Mutex
	frames  []packet.Frame
	stopped bool
}

func (c *conn) Send(f packet.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, f)
}

func (c *conn) Post(fn func()) bool {
	if c.stopped {
		return false
	}
	fn()
	return true
}

func (c *conn) last(t *testing.T) packet.Frame {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.frames)
	return c.frames[len(c.frames)-1]
}

type script struct {
	results map[string]bool
}

func (s script) Execute(expr string, _, _ dialog.Entity) (bool, error) {
	ok, found := s.results[expr]
	return ok || !found, nil
}
func (s script) ExecuteAndReturn(string, dialog.Entity) (any, error) { return nil, nil }
func (s script) SetGlobalValue(string, any) error                    { return nil }

var registerOnce sync.Once

func newEnv(t *testing.T, results map[string]bool) *dialog.Env {
	t.Helper()
	registerOnce.Do(func() {
		bundle, err := catalog.LoadEmbedded()
		require.NoError(t, err)
		require.NoError(t, bundle.Register())
	})
	log := zaptest.NewLogger(t)
	env := dialog.NewEnv(dialog.NewCatalog(0, log), script{results: results})
	env.Log = log
	return env
}

type menu struct {
	objectID uint32
	sprite   uint16
	name     string
	greeting string
	items    []dialog.MenuItem
}

func decodeMenu(t *testing.T, f packet.Frame) menu {
	t.Helper()
	require.Equal(t, packet.OpMerchantMenu, f.Opcode)
	r := packet.NewReader(f.Payload)
	var m menu
	var err error
	_, err = r.ReadByte()
	require.NoError(t, err)
	_, err = r.ReadByte()
	require.NoError(t, err)
	m.objectID, err = r.ReadUint32()
	require.NoError(t, err)
	require.NoError(t, r.Skip(1))
	m.sprite, err = r.ReadUint16()
	require.NoError(t, err)
	require.NoError(t, r.Skip(6))
	m.name, err = r.ReadString8()
	require.NoError(t, err)
	m.greeting, err = r.ReadString16()
	require.NoError(t, err)
	n, err := r.ReadByte()
	require.NoError(t, err)
	for i := 0; i < int(n); i++ {
		label, err := r.ReadString8()
		require.NoError(t, err)
		id, err := r.ReadUint16()
		require.NoError(t, err)
		m.items = append(m.items, dialog.MenuItem{ID: id, Label: label})
	}
	return m
}

func systemMessage(t *testing.T, f packet.Frame) string {
	t.Helper()
	require.Equal(t, packet.OpSystemMessage, f.Opcode)
	r := packet.NewReader(f.Payload)
	require.NoError(t, r.Skip(1))
	text, err := r.ReadString16()
	require.NoError(t, err)
	return text
}
