package async

import "github.com/louisbranch/pursuit/internal/dialog"

// Condition is a snapshot of the states that keep an actor from taking part
// in a dialog.
type Condition struct {
	Comatose   bool
	Casting    bool
	InExchange bool
	InBoard    bool
	// InDialog is only consulted for players.
	InDialog bool
}

// Ready reports whether an actor in this condition can take part in a
// dialog. player selects whether InDialog counts.
func (c Condition) Ready(player bool) bool {
	if c.Comatose || c.Casting || c.InExchange || c.InBoard {
		return false
	}
	return !player || !c.InDialog
}

// Actor is either side of an async dialog.
type Actor interface {
	dialog.Entity
	// Condition is read from other actors' workers and must be safe for
	// concurrent use.
	Condition() Condition
}

// Player is an actor with a connection and an ordered packet worker.
type Player interface {
	Actor
	dialog.User
	// Post runs fn on the player's packet worker. It reports false when the
	// worker has stopped and fn will never run.
	Post(fn func()) bool
}

// Placed actors have a map position. Implementations must be safe for
// concurrent use.
type Placed interface {
	MapID() uint16
	Position() (x, y int)
}

// Distance is the Manhattan distance between two positions.
func Distance(a, b Placed) int {
	ax, ay := a.Position()
	bx, by := b.Position()
	return abs(ax-bx) + abs(ay-by)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
