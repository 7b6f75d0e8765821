package world

import (
	"github.com/louisbranch/pursuit/internal/dialog"
)

// itemSpriteOffset marks an item sprite for the client.
const itemSpriteOffset = 0x8000

// Reactor is a map tile that opens a dialog when a user steps on or clicks
// it.
type Reactor struct {
	Object

	sequence string
	env      *dialog.Env
}

// NewReactor returns a reactor that opens the sequence named sequence. The
// name is resolved against the reactor's own sequences first.
func NewReactor(id uint32, name string, sprite uint16, sequence string, env *dialog.Env) *Reactor {
	r := &Reactor{sequence: sequence, env: env}
	r.Object.init(id, name)
	r.SetSprite(sprite)
	return r
}

var _ dialog.Portrayed = (*Reactor)(nil)

func (r *Reactor) DialogSprite() uint16                { return r.sprite }
func (r *Reactor) DialogObjectType() dialog.ObjectType { return dialog.ObjectReactor }
func (r *Reactor) DialogColor() byte                   { return 0 }

// Interact opens the reactor's dialog for u.
func (r *Reactor) Interact(u dialog.User) error {
	return interact(r.env, u, r, r.sequence)
}

// Item is a usable inventory object with a dialog.
type Item struct {
	Object

	color    byte
	sequence string
	env      *dialog.Env
}

// NewItem returns an item that opens the sequence named sequence when used.
func NewItem(id uint32, name string, sprite uint16, color byte, sequence string, env *dialog.Env) *Item {
	it := &Item{color: color, sequence: sequence, env: env}
	it.Object.init(id, name)
	it.SetSprite(sprite)
	return it
}

var _ dialog.Portrayed = (*Item)(nil)

func (it *Item) DialogSprite() uint16 {
	if it.sprite == 0 {
		return 0
	}
	return itemSpriteOffset + it.sprite
}

func (it *Item) DialogObjectType() dialog.ObjectType { return dialog.ObjectItem }
func (it *Item) DialogColor() byte                   { return it.color }

// Interact opens the item's dialog for u.
func (it *Item) Interact(u dialog.User) error {
	return interact(it.env, u, it, it.sequence)
}

func interact(env *dialog.Env, u dialog.User, origin dialog.Entity, name string) error {
	seq, ok := dialog.Resolve(name, origin, env.Catalog)
	if !ok {
		u.SendSystemMessage(env.Text("world.reactor.nothing"))
		return dialog.ErrUnknownSequence
	}
	return env.Begin(u, origin, seq)
}
