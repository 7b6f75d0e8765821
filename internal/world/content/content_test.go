package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
	"github.com/louisbranch/pursuit/internal/scripting"
	"github.com/louisbranch/pursuit/internal/world"
)

type fixture struct {
	engine *scripting.Engine
	env    *dialog.Env
	dir    *world.Directory
	coord  *async.Coordinator
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := zaptest.NewLogger(t)
	engine := scripting.New()
	env := dialog.NewEnv(dialog.NewCatalog(0, log), engine)
	dir := world.NewDirectory()
	coord := async.NewCoordinator(async.NewRegistry(), env, async.Config{}, async.WithLogger(log))
	require.NoError(t, NewLoader(env, dir, log, WithCoordinator(coord)).Bind(engine))
	return fixture{engine: engine, env: env, dir: dir, coord: coord}
}

func TestRegisterGlobalSequence(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	err := f.engine.LoadString("greeting.lua", `
register_global_sequence{
  name = "greeting",
  display = "Say hello",
  close_on_end = true,
  sprite = 12,
  menu_check = "level >= 1",
  nodes = {
    {text = "Hello, {{target}}.", sprite = 3},
    {kind = "options", text = "Pick one", handler = "chosen()", options = {
      {label = "Again", jump = "greeting"},
      {label = "Other", callback = "other()"},
    }},
    {kind = "text", text = "Name?", top = "Your name", max = 12, handler = "named()"},
    {kind = "function", expression = "reward()"},
    {kind = "jump", target = "farewell"},
  },
}`)
	require.NoError(t, err)

	seq, ok := f.env.Catalog.ByName("greeting")
	require.True(t, ok)
	assert.NotZero(t, seq.ID())
	assert.Equal(t, "Say hello", seq.DisplayName)
	assert.True(t, seq.CloseOnEnd)
	assert.Equal(t, uint16(12), seq.Sprite)
	assert.Equal(t, "level >= 1", seq.MenuCheck)
	require.Equal(t, 5, seq.Len())

	kinds := make([]dialog.Kind, 0, seq.Len())
	for _, d := range seq.Dialogs() {
		kinds = append(kinds, d.Kind())
	}
	assert.Equal(t, []dialog.Kind{dialog.KindSimple, dialog.KindOptions, dialog.KindText, dialog.KindFunction, dialog.KindJump}, kinds)

	simple := seq.Dialogs()[0].(*dialog.SimpleDialog)
	assert.Equal(t, uint16(3), simple.Sprite)
	opts := seq.Dialogs()[1].(*dialog.OptionsDialog)
	assert.Equal(t, "chosen()", opts.Handler)
	require.Len(t, opts.Options, 2)
	assert.NotNil(t, opts.Options[0].Jump)
	assert.Equal(t, "other()", opts.Options[1].Callback)
	text := seq.Dialogs()[2].(*dialog.TextDialog)
	assert.Equal(t, byte(12), text.MaxLength)
}

func TestSpawnMerchant(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	err := f.engine.LoadString("deoch.lua", `
spawn_merchant{
  id = 300, name = "Deoch", sprite = 40, greeting = "Well met.",
  map = 1, x = 4, y = 7,
  jobs = {"vend", "Repair"},
  pursuits = {{name = "rumors", nodes = {{text = "They say..."}}}},
  sequences = {{name = "gossip", nodes = {{text = "Psst."}}}},
}`)
	require.NoError(t, err)

	ent, ok := f.dir.Get(300)
	require.True(t, ok)
	m, ok := ent.(*world.Merchant)
	require.True(t, ok)
	assert.Equal(t, "Deoch", m.Name())
	assert.Equal(t, "Well met.", m.Greeting())
	assert.Equal(t, world.JobVend|world.JobRepair, m.Jobs())
	assert.Equal(t, uint16(1), m.MapID())
	x, y := m.Position()
	assert.Equal(t, [2]int{4, 7}, [2]int{x, y})
	require.Len(t, m.Sequences().Pursuits(), 1)
	_, ok = m.Sequences().ByName("gossip")
	assert.True(t, ok)
}

func TestSpawnReactor(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	err := f.engine.LoadString("altar.lua", `
spawn_reactor{id = 500, name = "Altar", map = 2, x = 1, y = 1, sequence = "pray",
  sequences = {{name = "pray", nodes = {{text = "You kneel."}}}}}`)
	require.NoError(t, err)

	ent, ok := f.dir.Get(500)
	require.True(t, ok)
	r, ok := ent.(*world.Reactor)
	require.True(t, ok)
	assert.Equal(t, uint16(2), r.MapID())
	_, ok = r.Sequences().ByName("pray")
	assert.True(t, ok)
}

func TestContentErrorsFailTheLoad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing name", `register_global_sequence{nodes = {{text = "x"}}}`, "name is required"},
		{"no nodes", `register_global_sequence{name = "empty"}`, "has no nodes"},
		{"unknown kind", `register_global_sequence{name = "k", nodes = {{kind = "dance"}}}`, "unknown node kind"},
		{"text without handler", `register_global_sequence{name = "t", nodes = {{kind = "text", text = "?"}}}`, "needs a handler"},
		{"bad job", `spawn_merchant{id = 1, name = "M", jobs = {"juggle"}}`, "unknown merchant job"},
		{"bad id", `spawn_reactor{id = -4, name = "R"}`, "id out of range"},
		{"not a table", `spawn_reactor("altar")`, "want a table"},
		{"two args", `spawn_reactor({}, {})`, "want one table argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			err := f.engine.LoadString("bad.lua", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDuplicateObjectIsRejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	require.NoError(t, f.engine.LoadString("a.lua", `spawn_reactor{id = 9, name = "A"}`))
	assert.Error(t, f.engine.LoadString("b.lua", `spawn_reactor{id = 9, name = "B"}`))
}
