package world

import (
	"sync/atomic"

	"github.com/louisbranch/pursuit/internal/dialog/async"
)

// Conditions are the flags that keep an entity out of dialogs. They are set
// on the entity's own worker and read from others.
type Conditions struct {
	comatose   atomic.Bool
	casting    atomic.Bool
	inExchange atomic.Bool
	inBoard    atomic.Bool
}

func (c *Conditions) SetComatose(v bool)   { c.comatose.Store(v) }
func (c *Conditions) SetCasting(v bool)    { c.casting.Store(v) }
func (c *Conditions) SetInExchange(v bool) { c.inExchange.Store(v) }
func (c *Conditions) SetInBoard(v bool)    { c.inBoard.Store(v) }

func (c *Conditions) snapshot() async.Condition {
	return async.Condition{
		Comatose:   c.comatose.Load(),
		Casting:    c.casting.Load(),
		InExchange: c.inExchange.Load(),
		InBoard:    c.inBoard.Load(),
	}
}
