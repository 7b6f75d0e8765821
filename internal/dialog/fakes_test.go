package dialog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/louisbranch/pursuit/internal/platform/i18n/catalog"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

type fakeEntity struct {
	id        uint32
	name      string
	sprite    uint16
	mapID     uint16
	ephemeral map[string]any
	local     *LocalCatalog
}

func newEntity(id uint32, name string) *fakeEntity {
	return &fakeEntity{id: id, name: name, ephemeral: map[string]any{}, local: NewLocalCatalog()}
}

func (e *fakeEntity) ID() uint32               { return e.id }
func (e *fakeEntity) Name() string             { return e.name }
func (e *fakeEntity) DialogSprite() uint16     { return e.sprite }
func (e *fakeEntity) Sequences() *LocalCatalog { return e.local }
func (e *fakeEntity) MapID() uint16            { return e.mapID }

func (e *fakeEntity) TryGetEphemeral(key string) (any, bool) {
	v, ok := e.ephemeral[key]
	return v, ok
}

// fakeMerchant adds a main menu to fakeEntity.
type fakeMerchant struct {
	*fakeEntity
	env      *Env
	greeting string
	items    []MenuItem
	handled  []uint16
}

func (m *fakeMerchant) Greeting() string             { return m.greeting }
func (m *fakeMerchant) MenuItems(User) []MenuItem    { return m.items }
func (m *fakeMerchant) DisplayPursuits(u User) error { return m.env.DisplayPursuits(u, m) }

func (m *fakeMerchant) HandleMenuItem(_ User, item uint16) error {
	m.handled = append(m.handled, item)
	return nil
}

type fakeUser struct {
	*fakeEntity
	state    *State
	inDialog bool
	sent     []packet.Frame
	messages []string
}

func newUser(id uint32, name string) *fakeUser {
	u := &fakeUser{fakeEntity: newEntity(id, name)}
	u.state = NewState(u)
	return u
}

func (u *fakeUser) DialogState() *State        { return u.state }
func (u *fakeUser) Send(f packet.Frame)        { u.sent = append(u.sent, f) }
func (u *fakeUser) SendSystemMessage(s string) { u.messages = append(u.messages, s) }
func (u *fakeUser) SetInDialog(v bool)         { u.inDialog = v }

func (u *fakeUser) last(t *testing.T) packet.Frame {
	t.Helper()
	require.NotEmpty(t, u.sent, "no frames sent")
	return u.sent[len(u.sent)-1]
}

type scriptCall struct {
	expr   string
	actor  Entity
	source Entity
	values map[string]any
}

type scriptResult struct {
	ok  bool
	err error
}

// fakeScript succeeds unless a result is configured for the expression.
type fakeScript struct {
	mu      sync.Mutex
	results map[string]scriptResult
	pending map[string]any
	calls   []scriptCall
}

func newScript() *fakeScript {
	return &fakeScript{results: map[string]scriptResult{}, pending: map[string]any{}}
}

func (s *fakeScript) Execute(expr string, actor, source Entity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, scriptCall{expr: expr, actor: actor, source: source, values: s.pending})
	s.pending = map[string]any{}
	if r, ok := s.results[expr]; ok {
		return r.ok, r.err
	}
	return true, nil
}

func (s *fakeScript) ExecuteAndReturn(expr string, actor Entity) (any, error) {
	ok, err := s.Execute(expr, actor, nil)
	return ok, err
}

func (s *fakeScript) SetGlobalValue(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[name] = value
	return nil
}

func (s *fakeScript) exprs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.expr
	}
	return out
}

type fakeSessions struct {
	names   map[uint32]string
	closed  []uint32
	invoked []uint32
}

func (f *fakeSessions) CounterpartName(id uint32) (string, bool) {
	n, ok := f.names[id]
	return n, ok
}

func (f *fakeSessions) CloseSide(id uint32)    { f.closed = append(f.closed, id) }
func (f *fakeSessions) CloseInvoker(id uint32) { f.invoked = append(f.invoked, id) }

var registerOnce sync.Once

func newTestEnv(t *testing.T) (*Env, *fakeScript) {
	t.Helper()
	registerOnce.Do(func() {
		bundle, err := catalog.LoadEmbedded()
		require.NoError(t, err)
		require.NoError(t, bundle.Register())
	})
	script := newScript()
	env := NewEnv(NewCatalog(SharedThreshold, zaptest.NewLogger(t)), script)
	env.Log = zaptest.NewLogger(t)
	return env, script
}

// decodedDialog is the parsed header of a 0x30 frame.
type decodedDialog struct {
	kind       byte
	objectType byte
	objectID   uint32
	sprite     uint16
	color      byte
	pursuitID  uint16
	index      uint16
	hasPrev    bool
	hasNext    bool
	name       string
	text       string
	rest       *packet.Reader
}

func decodeDialog(t *testing.T, f packet.Frame) decodedDialog {
	t.Helper()
	require.Equal(t, packet.OpDialog, f.Opcode)
	r := packet.NewReader(f.Payload)
	var d decodedDialog
	var err error
	must := func(e error) {
		t.Helper()
		require.NoError(t, e)
	}
	d.kind, err = r.ReadByte()
	must(err)
	d.objectType, err = r.ReadByte()
	must(err)
	d.objectID, err = r.ReadUint32()
	must(err)
	must(r.Skip(1))
	d.sprite, err = r.ReadUint16()
	must(err)
	d.color, err = r.ReadByte()
	must(err)
	must(r.Skip(4))
	d.pursuitID, err = r.ReadUint16()
	must(err)
	d.index, err = r.ReadUint16()
	must(err)
	d.hasPrev, err = r.ReadBool()
	must(err)
	d.hasNext, err = r.ReadBool()
	must(err)
	must(r.Skip(1))
	d.name, err = r.ReadString8()
	must(err)
	d.text, err = r.ReadString16()
	must(err)
	d.rest = r
	return d
}
