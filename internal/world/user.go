package world

import (
	"sync/atomic"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

// Conn is the connection side of a user: an outbound queue and the ordered
// worker that runs the user's packet handlers.
type Conn interface {
	// Send queues f for delivery without blocking.
	Send(f packet.Frame)
	// Post runs fn on the connection's worker. It reports false once the
	// worker has stopped.
	Post(fn func()) bool
}

// User is a connected player.
type User struct {
	Object
	Conditions

	conn     Conn
	state    *dialog.State
	inDialog atomic.Bool
}

// NewUser binds a player named name to conn.
func NewUser(id uint32, name string, conn Conn) *User {
	u := &User{conn: conn}
	u.Object.init(id, name)
	u.state = dialog.NewState(u)
	return u
}

var (
	_ dialog.User    = (*User)(nil)
	_ dialog.Located = (*User)(nil)
	_ async.Player   = (*User)(nil)
	_ async.Placed   = (*User)(nil)
)

// DialogSprite is 0: players have no configured portrait.
func (u *User) DialogSprite() uint16 { return 0 }

// DialogState returns the user's dialog state. Only the user's worker may
// use it.
func (u *User) DialogState() *dialog.State { return u.state }

// SetInDialog mirrors the dialog state for readers on other workers.
func (u *User) SetInDialog(v bool) { u.inDialog.Store(v) }

// Condition implements async.Actor.
func (u *User) Condition() async.Condition {
	c := u.Conditions.snapshot()
	c.InDialog = u.inDialog.Load()
	return c
}

func (u *User) Send(f packet.Frame) { u.conn.Send(f) }

func (u *User) SendSystemMessage(text string) {
	u.conn.Send(dialog.SystemMessageFrame(text))
}

func (u *User) Post(fn func()) bool { return u.conn.Post(fn) }
