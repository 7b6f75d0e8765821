package async

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/platform/i18n/catalog"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

type npc struct {
	id    uint32
	name  string
	mapID uint16
	x, y  int
	cond  Condition
	local *dialog.LocalCatalog
}

func newNPC(id uint32, name string) *npc {
	return &npc{id: id, name: name, local: dialog.NewLocalCatalog()}
}

func (n *npc) ID() uint32                         { return n.id }
func (n *npc) Name() string                       { return n.name }
func (n *npc) DialogSprite() uint16               { return 0 }
func (n *npc) TryGetEphemeral(string) (any, bool) { return nil, false }
func (n *npc) Sequences() *dialog.LocalCatalog    { return n.local }
func (n *npc) Condition() Condition               { return n.cond }
func (n *npc) MapID() uint16                      { return n.mapID }
func (n *npc) Position() (int, int)               { return n.x, n.y }

type player struct {
	*npc
	state    *dialog.State
	inDialog atomic.Bool
	stopped  bool

	mu       sync.Mutex
	sent     []packet.Frame
	messages []string
	// queue holds posted work when deferred is set; otherwise Post runs
	// inline.
	deferred bool
	queue    []func()
}

func newPlayer(id uint32, name string) *player {
	p := &player{npc: newNPC(id, name)}
	p.state = dialog.NewState(p)
	return p
}

func (p *player) DialogState() *dialog.State { return p.state }
func (p *player) SetInDialog(v bool)         { p.inDialog.Store(v) }

func (p *player) Condition() Condition {
	c := p.cond
	c.InDialog = p.inDialog.Load()
	return c
}

func (p *player) Send(f packet.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, f)
}

func (p *player) SendSystemMessage(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, s)
}

func (p *player) Post(fn func()) bool {
	if p.stopped {
		return false
	}
	if p.deferred {
		p.mu.Lock()
		p.queue = append(p.queue, fn)
		p.mu.Unlock()
		return true
	}
	fn()
	return true
}

func (p *player) drain() {
	p.mu.Lock()
	q := p.queue
	p.queue = nil
	p.mu.Unlock()
	for _, fn := range q {
		fn()
	}
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

type okScript struct{}

func (okScript) Execute(string, dialog.Entity, dialog.Entity) (bool, error) { return true, nil }
func (okScript) ExecuteAndReturn(string, dialog.Entity) (any, error)        { return true, nil }
func (okScript) SetGlobalValue(string, any) error                           { return nil }

var registerOnce sync.Once

type fixture struct {
	coord *Coordinator
	env   *dialog.Env
	rec   *recorder
	greet *dialog.Sequence
	shop  *dialog.Sequence
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	registerOnce.Do(func() {
		bundle, err := catalog.LoadEmbedded()
		require.NoError(t, err)
		require.NoError(t, bundle.Register())
	})
	log := zaptest.NewLogger(t)
	cat := dialog.NewCatalog(0, log)
	greet := dialog.NewSequence("greet", dialog.NewSimple("Hello, {{invoker}}."), dialog.NewSimple("Bye."))
	shop := dialog.NewSequence("shop", dialog.NewSimple("Buy something."))
	require.NoError(t, cat.Register(greet))
	require.NoError(t, cat.Register(shop))

	env := dialog.NewEnv(cat, okScript{})
	env.Log = log
	rec := &recorder{}
	coord := NewCoordinator(NewRegistry(), env, cfg, WithLogger(log), WithRecorder(rec))
	return fixture{coord: coord, env: env, rec: rec, greet: greet, shop: shop}
}
