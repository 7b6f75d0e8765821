// Package world holds the entities dialogs are shown to and fronted by:
// connected users, merchants, reactors and items, plus the directory the
// transport resolves clicked objects through.
//
// Entity fields read by other users' workers (position, conditions, the
// ephemeral store) are safe for concurrent use. Dialog state is owned by the
// user's worker.
package world

import (
	"sync"

	"github.com/louisbranch/pursuit/internal/dialog"
)

// Object is the part every world entity shares.
type Object struct {
	id     uint32
	name   string
	sprite uint16

	mu    sync.RWMutex
	mapID uint16
	x, y  int

	ephemeral *Ephemeral
	sequences *dialog.LocalCatalog
}

func (o *Object) init(id uint32, name string) {
	o.id, o.name = id, name
	o.ephemeral = NewEphemeral()
	o.sequences = dialog.NewLocalCatalog()
}

func (o *Object) ID() uint32                      { return o.id }
func (o *Object) Name() string                    { return o.name }
func (o *Object) Sequences() *dialog.LocalCatalog { return o.sequences }
func (o *Object) Ephemeral() *Ephemeral           { return o.ephemeral }
func (o *Object) TryGetEphemeral(key string) (any, bool) {
	return o.ephemeral.Get(key)
}

// MapID returns the map the object is on.
func (o *Object) MapID() uint16 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.mapID
}

// Position returns the object's tile.
func (o *Object) Position() (int, int) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.x, o.y
}

// Place moves the object to a tile on a map.
func (o *Object) Place(mapID uint16, x, y int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mapID, o.x, o.y = mapID, x, y
}

// SetSprite sets the raw sprite number; each entity kind encodes it for the
// client.
func (o *Object) SetSprite(sprite uint16) {
	o.sprite = sprite
}

// Ephemeral is an entity's transient key/value store. Dialog tokens read it;
// scripts and merchant handlers write it.
type Ephemeral struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewEphemeral returns an empty store.
func NewEphemeral() *Ephemeral {
	return &Ephemeral{values: map[string]any{}}
}

func (e *Ephemeral) Get(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.values[key]
	return v, ok
}

func (e *Ephemeral) Set(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[key] = value
}

func (e *Ephemeral) Delete(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.values, key)
}
