package dialog

import "github.com/louisbranch/pursuit/internal/protocol/packet"

// Entity is a world object that can front a dialog: an NPC, a reactor, an
// item or another player.
type Entity interface {
	ID() uint32
	Name() string
	// DialogSprite is the portrait sprite configured for this entity, or 0.
	DialogSprite() uint16
	// TryGetEphemeral reads the entity's transient key/value store.
	TryGetEphemeral(key string) (any, bool)
	// Sequences returns the entity's local registry, or nil.
	Sequences() *LocalCatalog
}

// User is a connected player that dialogs are rendered to.
type User interface {
	Entity
	DialogState() *State
	// Send queues a frame on the user's connection. It must not block.
	Send(f packet.Frame)
	SendSystemMessage(text string)
}

// Script is the scripting collaborator. Faults are returned as errors and
// never panic through dialog code.
type Script interface {
	// Execute runs expression with actor and source bound and reports
	// whether it succeeded. A nil result counts as success.
	Execute(expression string, actor, source Entity) (bool, error)
	// ExecuteAndReturn runs expression and returns its value.
	ExecuteAndReturn(expression string, actor Entity) (any, error)
	// SetGlobalValue exposes a named value to the next execution.
	SetGlobalValue(name string, value any) error
}

// Scripted entities carry their own script, used when a sequence has none.
type Scripted interface {
	Script() Script
}

// SessionDirectory is the view of the active async-dialog registry that
// dialog logic needs.
type SessionDirectory interface {
	// CounterpartName returns the name of the other party of the async
	// session userID takes part in.
	CounterpartName(userID uint32) (string, bool)
	// CloseSide marks userID's side of its async sessions closed.
	CloseSide(userID uint32)
	// CloseInvoker marks userID's side closed only in the sessions it
	// invoked.
	CloseInvoker(userID uint32)
}

// Pursuitable entities show a main menu of pursuits.
type Pursuitable interface {
	Entity
	DisplayPursuits(u User) error
}

// MenuItem is one line of a main menu: a pursuit or a built-in merchant
// action.
type MenuItem struct {
	ID    uint16
	Label string
}

// MenuOwner supplies the parts of a main menu beyond its pursuits.
type MenuOwner interface {
	Entity
	Greeting() string
	MenuItems(u User) []MenuItem
}

// MerchantMenu entities handle built-in menu actions at or above
// HardcodedThreshold.
type MerchantMenu interface {
	HandleMenuItem(u User, item uint16) error
}

// Located entities are placed on a map.
type Located interface {
	MapID() uint16
}

// Portrayed entities choose how the client draws their portrait. Entities
// that do not implement it render as creatures with no color.
type Portrayed interface {
	DialogObjectType() ObjectType
	DialogColor() byte
}
