package dialog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

func optionArgs(sel byte) *packet.Reader {
	return packet.NewReader([]byte{1, sel})
}

func textArgs(s string) *packet.Reader {
	w := packet.NewWriter()
	w.WriteUint8(byte(len(s) + 1))
	w.WriteString8(s)
	return packet.NewReader(w.Bytes())
}

func TestReadResponse(t *testing.T) {
	t.Parallel()
	r, err := ReadResponse(KindOptions, optionArgs(2))
	require.NoError(t, err)
	assert.Equal(t, Response{Selection: 2}, r)

	r, err = ReadResponse(KindText, textArgs("Nadia"))
	require.NoError(t, err)
	assert.Equal(t, Response{Text: "Nadia"}, r)

	_, err = ReadResponse(KindOptions, packet.NewReader([]byte{1}))
	assert.True(t, errors.Is(err, packet.ErrBufferUnderrun))
	_, err = ReadResponse(KindText, nil)
	assert.True(t, errors.Is(err, packet.ErrBufferUnderrun))
}

func TestNavigateNextAndPrev(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	seq := registered(t, env.Catalog, "story", NewSimple("one"), NewSimple("two"), NewSimple("three"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))
	assert.Equal(t, "one", decodeDialog(t, u.last(t)).text)

	pid := uint16(seq.ID())
	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: pid, Index: 1}))
	assert.Equal(t, "two", decodeDialog(t, u.last(t)).text)
	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: pid, Index: 2}))
	assert.Equal(t, "three", decodeDialog(t, u.last(t)).text)
	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: pid, Index: 1}))
	got := decodeDialog(t, u.last(t))
	assert.Equal(t, "two", got.text)
	assert.True(t, got.hasPrev)
	assert.Equal(t, 1, u.state.Index())
}

func TestNavigateEchoCloses(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	seq := registered(t, env.Catalog, "story", NewSimple("one"), NewSimple("two"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))

	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: uint16(seq.ID()), Index: 0}))
	assert.False(t, u.state.InDialog())
	assert.Equal(t, CloseDialogFrame(), u.last(t))
}

func TestNavigateRejectsJumps(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	seq := registered(t, env.Catalog, "story", NewSimple("one"), NewSimple("two"), NewSimple("three"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))
	sent := len(u.sent)

	err := env.Navigate(u, Use{Target: npc, PursuitID: uint16(seq.ID()), Index: 2})
	assert.True(t, errors.Is(err, ErrInvalidNavigation))
	assert.True(t, u.state.InDialog())
	assert.Len(t, u.sent, sent)
}

func TestNavigateWrongTargetCloses(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	seq := registered(t, env.Catalog, "story", NewSimple("one"), NewSimple("two"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))

	err := env.Navigate(u, Use{Target: newEntity(6, "Impostor"), PursuitID: uint16(seq.ID()), Index: 1})
	assert.True(t, errors.Is(err, ErrStaleSession))
	assert.False(t, u.state.InDialog())
	assert.Equal(t, CloseDialogFrame(), u.last(t))
}

func TestNavigateIdle(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	u := newUser(1, "Nadia")
	err := env.Navigate(u, Use{Target: newEntity(5, "Deoch"), PursuitID: 1, Index: 1})
	assert.True(t, errors.Is(err, ErrNotInDialog))
	assert.Equal(t, CloseDialogFrame(), u.last(t))
}

func TestNavigateEndOfSequenceShowsMainMenu(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	merchant := &fakeMerchant{fakeEntity: newEntity(5, "Riona"), env: env, greeting: "Welcome"}
	quest := NewSequence("Quest", NewSimple("Go forth."))
	require.NoError(t, merchant.local.AddPursuit(quest))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, merchant, uint16(quest.ID())))

	require.NoError(t, env.Navigate(u, Use{Target: merchant, PursuitID: uint16(quest.ID()), Index: 1}))
	assert.False(t, u.state.InDialog())
	assert.Equal(t, packet.OpMerchantMenu, u.last(t).Opcode)
}

func TestNavigateEndOfSequenceCloseOnEnd(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	merchant := &fakeMerchant{fakeEntity: newEntity(5, "Riona"), env: env}
	seq := registered(t, env.Catalog, "brief", NewSimple("Bye."))
	seq.CloseOnEnd = true
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, merchant, uint16(seq.ID())))

	require.NoError(t, env.Navigate(u, Use{Target: merchant, PursuitID: uint16(seq.ID()), Index: 1}))
	assert.False(t, u.state.InDialog())
	assert.Equal(t, CloseDialogFrame(), u.last(t))
}

func TestNavigateOptionsResponse(t *testing.T) {
	t.Parallel()
	env, script := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	opts := NewOptions("Trade?", Option{Label: "Buy"}, Option{Label: "Sell"})
	opts.Handler = "trade()"
	seq := registered(t, env.Catalog, "trade", opts, NewSimple("Thanks."))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))

	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: uint16(seq.ID()), Index: 1, Args: optionArgs(2)}))
	require.Len(t, script.calls, 1)
	assert.Equal(t, "Sell", script.calls[0].values[ValuePlayerResponse])
	assert.Equal(t, "Thanks.", decodeDialog(t, u.last(t)).text)
	assert.Equal(t, 1, u.state.Index())
}

func TestNavigateTruncatedResponseResets(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	opts := NewOptions("?", Option{Label: "a"})
	seq := registered(t, env.Catalog, "menu", opts, NewSimple("after"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))

	err := env.Navigate(u, Use{Target: npc, PursuitID: uint16(seq.ID()), Index: 1})
	assert.True(t, errors.Is(err, packet.ErrBufferUnderrun))
	assert.False(t, u.state.InDialog())
}

func TestNavigateAfterOptionTransition(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	npc := newEntity(5, "Deoch")
	branch := registered(t, env.Catalog, "branch", NewSimple("b0"), NewSimple("b1"))
	opts := NewOptions("?", Option{Label: "go", Sequence: branch})
	seq := registered(t, env.Catalog, "root", opts, NewSimple("unused"))
	u := newUser(1, "Nadia")
	require.NoError(t, env.SelectPursuit(u, npc, uint16(seq.ID())))

	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: uint16(seq.ID()), Index: 1, Args: optionArgs(1)}))
	assert.Same(t, branch, u.state.Sequence())
	assert.Equal(t, "b0", decodeDialog(t, u.last(t)).text)

	require.NoError(t, env.Navigate(u, Use{Target: npc, PursuitID: uint16(branch.ID()), Index: 1}))
	assert.Equal(t, "b1", decodeDialog(t, u.last(t)).text)
}

func TestSelectPursuit(t *testing.T) {
	t.Parallel()
	env, _ := newTestEnv(t)
	merchant := &fakeMerchant{fakeEntity: newEntity(5, "Riona"), env: env}
	local := NewSequence("Local", NewSimple("local hello"))
	require.NoError(t, merchant.local.AddPursuit(local))
	u := newUser(1, "Nadia")

	require.NoError(t, env.SelectPursuit(u, merchant, uint16(local.ID())))
	assert.Same(t, local, u.state.Sequence())
	assert.Same(t, merchant, u.state.Associate())

	require.NoError(t, env.SelectPursuit(u, merchant, 0xFF01))
	assert.Equal(t, []uint16{0xFF01}, merchant.handled)

	err := env.SelectPursuit(u, merchant, 42)
	assert.True(t, errors.Is(err, ErrUnknownSequence))
	err = env.SelectPursuit(u, merchant, uint16(SharedThreshold+7))
	assert.True(t, errors.Is(err, ErrUnknownSequence))
	err = env.SelectPursuit(u, newEntity(6, "Rock"), 0xFF01)
	assert.True(t, errors.Is(err, ErrInvalidNavigation))
}

func TestDisplayPursuitsAppliesMenuChecks(t *testing.T) {
	t.Parallel()
	env, script := newTestEnv(t)
	script.results["hidden()"] = scriptResult{ok: false}
	script.results["broken()"] = scriptResult{err: errors.New("boom")}
	merchant := &fakeMerchant{
		fakeEntity: newEntity(5, "Riona"),
		env:        env,
		greeting:   "Welcome",
		items:      []MenuItem{{ID: 0xFF01, Label: "Buy"}},
	}
	shown := NewSequence("Shown", NewSimple("x"))
	hidden := NewSequence("Hidden", NewSimple("x"))
	hidden.MenuCheck = "hidden()"
	broken := NewSequence("Broken", NewSimple("x"))
	broken.MenuCheck = "broken()"
	for _, s := range []*Sequence{shown, hidden, broken} {
		require.NoError(t, merchant.local.AddPursuit(s))
	}
	u := newUser(1, "Nadia")

	require.NoError(t, merchant.DisplayPursuits(u))
	want := MainMenuFrame(merchant, "Welcome", []MenuItem{
		{ID: 0xFF01, Label: "Buy"},
		{ID: uint16(shown.ID()), Label: "Shown"},
	})
	assert.Equal(t, want, u.last(t))
}
