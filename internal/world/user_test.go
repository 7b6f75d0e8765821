package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
)

func TestUserConditionTracksDialog(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	seq := dialog.NewSequence("hello", dialog.NewSimple("Hello."))
	require.NoError(t, env.Catalog.Register(seq))
	u := NewUser(1, "Nadia", &conn{})

	assert.Equal(t, async.Condition{}, u.Condition())
	require.NoError(t, u.DialogState().StartDialog(nil, seq))
	assert.True(t, u.Condition().InDialog)
	assert.False(t, u.Condition().Ready(true))

	u.DialogState().EndDialog()
	u.SetCasting(true)
	assert.Equal(t, async.Condition{Casting: true}, u.Condition())
}

func TestUserSendsThroughConn(t *testing.T) {
	t.Parallel()
	c := &conn{}
	u := NewUser(1, "Nadia", c)
	u.SendSystemMessage("Welcome.")
	assert.Equal(t, "Welcome.", systemMessage(t, c.last(t)))

	ran := false
	assert.True(t, u.Post(func() { ran = true }))
	assert.True(t, ran)
	c.stopped = true
	assert.False(t, u.Post(func() {}))
}

func TestUserPlacement(t *testing.T) {
	t.Parallel()
	u := NewUser(1, "Nadia", &conn{})
	u.Place(3, 10, 12)
	x, y := u.Position()
	assert.Equal(t, uint16(3), u.MapID())
	assert.Equal(t, []int{10, 12}, []int{x, y})

	u.Ephemeral().Set("quest", "started")
	v, ok := u.TryGetEphemeral("quest")
	require.True(t, ok)
	assert.Equal(t, "started", v)
	u.Ephemeral().Delete("quest")
	_, ok = u.TryGetEphemeral("quest")
	assert.False(t, ok)
}

func TestReactorInteract(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	r := NewReactor(500, "Altar", 77, "pray", env)
	seq := dialog.NewSequence("pray", dialog.NewSimple("You kneel."))
	require.NoError(t, r.Sequences().AddSequence(seq))
	c := &conn{}
	u := NewUser(1, "Nadia", c)

	require.NoError(t, r.Interact(u))
	assert.Same(t, seq, u.DialogState().Sequence())
	f := c.last(t)
	assert.Equal(t, byte(dialog.ObjectReactor), f.Payload[1])

	empty := NewReactor(501, "Rock", 0, "", env)
	err := empty.Interact(u)
	assert.True(t, errors.Is(err, dialog.ErrUnknownSequence))
	assert.Equal(t, "Nothing happens.", systemMessage(t, c.last(t)))
	assert.Same(t, seq, u.DialogState().Sequence(), "the open dialog is untouched")
}

func TestItemPortrait(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	read := dialog.NewSequence("read-scroll", dialog.NewSimple("The scroll crumbles."))
	require.NoError(t, env.Catalog.Register(read))
	it := NewItem(900, "Scroll", 5, 3, "read-scroll", env)
	assert.Equal(t, uint16(0x8005), it.DialogSprite())
	assert.Equal(t, byte(3), it.DialogColor())

	c := &conn{}
	u := NewUser(1, "Nadia", c)
	require.NoError(t, it.Interact(u))
	f := c.last(t)
	assert.Equal(t, byte(dialog.ObjectItem), f.Payload[1])
}

func TestInteractDoesNotDisplaceAsyncDialog(t *testing.T) {
	t.Parallel()
	env := newEnv(t, nil)
	seq := dialog.NewSequence("pray", dialog.NewSimple("You kneel."))
	require.NoError(t, env.Catalog.Register(seq))
	u := NewUser(1, "Nadia", &conn{})
	require.NoError(t, u.DialogState().StartAsyncDialog(NewUser(2, "Tavish", &conn{}), seq))

	err := NewReactor(500, "Altar", 0, "pray", env).Interact(u)
	assert.True(t, errors.Is(err, dialog.ErrAlreadyInDialog))
	assert.True(t, u.DialogState().Async())
}
