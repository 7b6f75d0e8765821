package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
)

func newSimpleSequence(name, text string) *dialog.Sequence {
	return dialog.NewSequence(name, dialog.NewSimple(text))
}

func TestDirectoryLogin(t *testing.T) {
	t.Parallel()
	d := NewDirectory()
	nadia, err := d.Login("Nadia", &conn{})
	require.NoError(t, err)
	assert.Equal(t, uint32(firstUserID), nadia.ID())

	_, err = d.Login("nadia", &conn{})
	assert.Error(t, err, "names are unique case-insensitively")
	_, err = d.Login("  ", &conn{})
	assert.Error(t, err)

	tavish, err := d.Login("Tavish", &conn{})
	require.NoError(t, err)
	assert.Equal(t, nadia.ID()+1, tavish.ID())
	assert.Equal(t, 2, d.Users())

	got, ok := d.UserByName("NADIA")
	require.True(t, ok)
	assert.Same(t, nadia, got)
	ent, ok := d.Get(tavish.ID())
	require.True(t, ok)
	assert.Same(t, tavish, ent)

	d.Remove(nadia.ID())
	_, ok = d.UserByName("Nadia")
	assert.False(t, ok)
	_, err = d.Login("Nadia", &conn{})
	assert.NoError(t, err)
}

func TestDirectoryObjects(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	d := NewDirectory()
	m := NewMerchant(MerchantConfig{ID: 300, Name: "Deoch"}, env)
	require.NoError(t, d.Add(m))
	assert.Error(t, d.Add(NewReactor(300, "Altar", 0, "", env)))

	ent, ok := d.Get(300)
	require.True(t, ok)
	_, interactive := ent.(Interactive)
	assert.False(t, interactive)

	require.NoError(t, d.Add(NewReactor(301, "Altar", 0, "", env)))
	ent, _ = d.Get(301)
	_, interactive = ent.(Interactive)
	assert.True(t, interactive)

	d.Remove(300)
	_, ok = d.Get(300)
	assert.False(t, ok)
}

func TestMerchantPushesAsyncDialog(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	coord := async.NewCoordinator(async.NewRegistry(), env, async.Config{})
	m := NewMerchant(MerchantConfig{ID: 300, Name: "Deoch"}, env)
	m.Place(1, 0, 0)
	require.NoError(t, m.Sequences().AddSequence(newSimpleSequence("summons", "Come here, {{invoker}}... I mean, {{target}}.")))

	c := &conn{}
	u := NewUser(1, "Nadia", c)
	u.Place(1, 3, 4)
	require.NoError(t, coord.Start(coord.NewRequest(m, u, "summons", true)))

	st := u.DialogState()
	require.True(t, st.Async())
	assert.Same(t, m, st.Associate())

	m2 := NewMerchant(MerchantConfig{ID: 301, Name: "Far"}, env)
	require.NoError(t, m2.Sequences().AddSequence(newSimpleSequence("summons", "x")))
	other := NewUser(2, "Tavish", &conn{})
	other.Place(9, 0, 0)
	assert.ErrorIs(t, coord.Start(coord.NewRequest(m2, other, "summons", true)), async.ErrNotLocal)
}
