package dialog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registered(t *testing.T, c *Catalog, name string, nodes ...Dialog) *Sequence {
	t.Helper()
	seq := NewSequence(name, nodes...)
	require.NoError(t, c.Register(seq))
	return seq
}

func TestStateLifecycle(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	seq := registered(t, c, "greet", NewSimple("a"), NewSimple("b"), NewSimple("c"))
	npc := newEntity(7, "Deoch")
	u := newUser(1, "Nadia")
	st := u.DialogState()

	assert.False(t, st.InDialog())
	assert.Nil(t, st.ActiveDialog())
	assert.Zero(t, st.CurrentPursuitID())

	require.NoError(t, st.StartDialog(npc, seq))
	assert.True(t, st.InDialog())
	assert.True(t, u.inDialog)
	assert.Equal(t, seq.ID(), st.CurrentPursuitID())
	assert.Equal(t, uint32(7), st.CurrentMerchantID())
	assert.Equal(t, 0, st.Index())

	err := st.StartDialog(npc, seq)
	assert.True(t, errors.Is(err, ErrAlreadyInDialog))

	require.NoError(t, st.SetDialogIndex(npc, seq.ID(), 1))
	require.NoError(t, st.SetDialogIndex(npc, seq.ID(), 2))
	require.NoError(t, st.SetDialogIndex(npc, seq.ID(), 1))
	d := st.ActiveDialog()
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Index())

	st.EndDialog()
	assert.False(t, st.InDialog())
	assert.False(t, u.inDialog)
	assert.Nil(t, st.Associate())
}

func TestStateStartValidation(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	npc := newEntity(7, "Deoch")
	st := newUser(1, "Nadia").DialogState()

	assert.True(t, errors.Is(st.StartDialog(npc, nil), ErrUnknownSequence))
	assert.True(t, errors.Is(st.StartDialog(npc, NewSequence("loose", NewSimple("x"))), ErrUnassignedSequence))
	assert.True(t, errors.Is(st.StartDialog(npc, registered(t, c, "empty")), ErrUnknownSequence))

	local := NewSequence("local", NewSimple("x"))
	require.NoError(t, npc.local.AddPursuit(local))
	assert.True(t, errors.Is(st.StartDialog(nil, local), ErrStaleSession))
	assert.False(t, st.InDialog())

	global := registered(t, c, "global", NewSimple("x"))
	require.NoError(t, st.StartDialog(nil, global))
	assert.True(t, st.InDialog())
}

func TestSetDialogIndexRejectsInvalidMoves(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	seq := registered(t, c, "greet", NewSimple("a"), NewSimple("b"), NewSimple("c"))
	npc := newEntity(7, "Deoch")
	other := newEntity(8, "Aisling")
	far := newEntity(7, "Deoch")
	far.mapID = 3

	cases := []struct {
		name   string
		target Entity
		pid    uint32
		index  int
		want   error
	}{
		{"skip ahead", npc, seq.ID(), 2, ErrInvalidNavigation},
		{"before start", npc, seq.ID(), -1, ErrInvalidNavigation},
		{"same index", npc, seq.ID(), 0, ErrInvalidNavigation},
		{"other entity", other, seq.ID(), 1, ErrStaleSession},
		{"other pursuit", npc, seq.ID() + 1, 1, ErrStaleSession},
		{"other map", far, seq.ID(), 1, ErrStaleSession},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newUser(1, "Nadia").DialogState()
			require.NoError(t, st.StartDialog(npc, seq))
			err := st.SetDialogIndex(tc.target, tc.pid, tc.index)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, 0, st.Index())
		})
	}

	t.Run("past the end", func(t *testing.T) {
		st := newUser(1, "Nadia").DialogState()
		require.NoError(t, st.StartDialog(npc, seq))
		require.NoError(t, st.SetDialogIndex(npc, seq.ID(), 1))
		require.NoError(t, st.SetDialogIndex(npc, seq.ID(), 2))
		assert.True(t, errors.Is(st.SetDialogIndex(npc, seq.ID(), 3), ErrInvalidNavigation))
	})

	t.Run("idle", func(t *testing.T) {
		st := newUser(1, "Nadia").DialogState()
		assert.True(t, errors.Is(st.SetDialogIndex(npc, seq.ID(), 1), ErrNotInDialog))
	})
}

func TestSetDialogIndexStaysInBounds(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	npc := newEntity(7, "Deoch")
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		nodes := make([]Dialog, 1+rng.IntN(8))
		for i := range nodes {
			nodes[i] = NewSimple("n")
		}
		seq := registered(t, c, fmt.Sprintf("walk-%d", round), nodes...)
		st := newUser(1, "Nadia").DialogState()
		require.NoError(t, st.StartDialog(npc, seq))

		for step := 0; step < 100; step++ {
			before := st.Index()
			idx := before + rng.IntN(5) - 2
			err := st.SetDialogIndex(npc, seq.ID(), idx)
			after := st.Index()
			if err != nil {
				assert.Equal(t, before, after)
				continue
			}
			assert.Equal(t, 1, abs(after-before), "round %d step %d", round, step)
			assert.GreaterOrEqual(t, after, 0)
			assert.Less(t, after, seq.Len())
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestAsyncStateProjectsSentinels(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	seq := registered(t, c, "greet", NewSimple("a"), NewSimple("b"))
	invoker := newEntity(9, "Tavish")
	invoker.mapID = 4
	st := newUser(1, "Nadia").DialogState()

	require.NoError(t, st.StartAsyncDialog(invoker, seq))
	assert.True(t, st.Async())
	assert.Equal(t, AsyncPursuitID, st.CurrentPursuitID())
	assert.Equal(t, AsyncMerchantID, st.CurrentMerchantID())

	// Async dialogs skip the map check.
	require.NoError(t, st.SetDialogIndex(invoker, AsyncPursuitID, 1))
	assert.True(t, errors.Is(st.SetDialogIndex(invoker, seq.ID(), 0), ErrStaleSession))

	st.EndDialog()
	assert.False(t, st.Async())
}

func TestTransitionDialogRemembersPreviousPursuit(t *testing.T) {
	t.Parallel()
	c := NewCatalog(0, nil)
	first := registered(t, c, "first", NewSimple("a"))
	second := registered(t, c, "second", NewSimple("b"), NewSimple("c"))
	npc := newEntity(7, "Deoch")
	st := newUser(1, "Nadia").DialogState()

	assert.True(t, errors.Is(st.TransitionDialog(npc, second), ErrNotInDialog))

	require.NoError(t, st.StartDialog(npc, first))
	require.NoError(t, st.TransitionDialog(npc, second))
	prev, ok := st.PreviousPursuitID()
	require.True(t, ok)
	assert.Equal(t, first.ID(), prev)
	assert.Same(t, second, st.Sequence())
	assert.Equal(t, 0, st.Index())

	st.ClearPreviousPursuit()
	_, ok = st.PreviousPursuitID()
	assert.False(t, ok)
}

func TestHasPrevHasNext(t *testing.T) {
	t.Parallel()
	opts := NewOptions("pick", Option{Label: "a"})
	seq := NewSequence("mixed",
		NewSimple("0"),
		NewSimple("1"),
		opts,
		NewSimple("3"),
		NewSimple("4"),
	)
	want := []struct{ prev, next bool }{
		{false, true},
		{true, true},
		{true, false},
		{false, true},
		{true, false},
	}
	for i, d := range seq.Dialogs() {
		assert.Equal(t, want[i].prev, HasPrev(d), "HasPrev(%d)", i)
		assert.Equal(t, want[i].next, HasNext(d), "HasNext(%d)", i)
	}

	single := NewSequence("single", NewSimple("only"))
	only, _ := single.Dialog(0)
	assert.False(t, HasPrev(only))
	assert.False(t, HasNext(only))
}
