package content

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog/async"
)

// errAsyncDisabled is raised when scripts push dialogs on a loader that has
// no coordinator.
var errAsyncDisabled = errors.New("async dialogs are not enabled")

// requestAsync pushes a sequence from an entity onto an online player:
//
//	request_async_dialog{invoker = 300, invokee = "Nadia", sequence = "summon", local = true}
//
// It returns true once the request is under way. A request the actors are
// not ready for returns false; the invoker has been told why.
func (l *Loader) requestAsync(t table) (any, error) {
	if l.coord == nil {
		return nil, errAsyncDisabled
	}
	invokerID, err := t.uint32("invoker")
	if err != nil {
		return nil, err
	}
	invokeeName, err := t.requiredString("invokee")
	if err != nil {
		return nil, err
	}
	name, err := t.requiredString("sequence")
	if err != nil {
		return nil, err
	}
	local := true
	if v, ok := t["local"].(bool); ok {
		local = v
	}

	ent, ok := l.dir.Get(invokerID)
	if !ok {
		return nil, fmt.Errorf("invoker %d not found", invokerID)
	}
	invoker, ok := ent.(async.Actor)
	if !ok {
		return nil, fmt.Errorf("%s cannot start dialogs", ent.Name())
	}
	invokee, ok := l.dir.UserByName(invokeeName)
	if !ok {
		return false, nil
	}
	if invokee.ID() == invokerID {
		return nil, errors.New("invoker and invokee are the same player")
	}

	req := l.coord.NewRequest(invoker, invokee, name, local)
	fields := []zap.Field{
		zap.String("request_id", req.ID.String()),
		zap.Uint32("invoker_id", invokerID),
		zap.String("invokee", invokee.Name()),
		zap.String("sequence", name),
	}
	// A player invoker checks and registers on its own worker.
	if p, ok := invoker.(async.Player); ok {
		posted := p.Post(func() {
			if err := l.coord.Start(req); err != nil {
				l.log.Debug("async dialog not started", append(fields, zap.Error(err))...)
			}
		})
		return posted, nil
	}
	if err := l.coord.Start(req); err != nil {
		l.log.Debug("async dialog not started", append(fields, zap.Error(err))...)
		return false, nil
	}
	return true, nil
}
