package async

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// Request is one async dialog: Invoker pushes a sequence onto Invokee.
//
// Each side's closed flag is written by that side's own worker; both are
// re-read on every completeness check.
type Request struct {
	ID           uuid.UUID
	Invoker      Actor
	Invokee      Player
	SequenceName string
	RequireLocal bool

	sequence      *dialog.Sequence
	invokerClosed atomic.Bool
	invokeeClosed atomic.Bool
	ended         atomic.Bool

	c *Coordinator
}

// Key returns the registry key of the request.
func (r *Request) Key() Key {
	return Key{Invoker: r.Invoker.ID(), Invokee: r.Invokee.ID()}
}

// Sequence returns the resolved sequence, or nil before CheckRequest.
func (r *Request) Sequence() *dialog.Sequence {
	return r.sequence
}

func (r *Request) invokerIsPlayer() bool {
	_, ok := r.Invoker.(Player)
	return ok
}

// Complete reports whether both required sides have closed. The invoker's
// side only counts when the invoker is a player.
func (r *Request) Complete() bool {
	if !r.invokeeClosed.Load() {
		return false
	}
	return !r.invokerIsPlayer() || r.invokerClosed.Load()
}

// CheckRequest resolves the sequence and checks both actors. It changes
// nothing but the resolved sequence and may be retried.
func (r *Request) CheckRequest() error {
	if r.sequence == nil {
		seq, ok := dialog.Resolve(r.SequenceName, r.Invoker, r.c.env.Catalog)
		if !ok {
			r.invokerError("dialog.async.sequence_missing")
			return ErrSequenceMissing
		}
		r.sequence = seq
	}
	if err := r.checkReady(); err != nil {
		return err
	}
	if r.RequireLocal && !r.c.local(r.Invoker, r.Invokee) {
		r.invokerError("dialog.async.too_far")
		return ErrNotLocal
	}
	return nil
}

func (r *Request) checkReady() error {
	if !r.Invokee.Condition().Ready(true) {
		r.invokerError("dialog.async.invokee_busy")
		return ErrInvokeeNotReady
	}
	if !r.Invoker.Condition().Ready(r.invokerIsPlayer()) {
		r.invokerError("dialog.async.invoker_busy")
		return ErrInvokerNotReady
	}
	return nil
}

// ShowTo starts the dialog on the invokee and renders its first node. It
// must run on the invokee's worker. Readiness is checked again first.
func (r *Request) ShowTo() error {
	if r.sequence == nil {
		return ErrSequenceMissing
	}
	if err := r.checkReady(); err != nil {
		return err
	}
	st := r.Invokee.DialogState()
	if err := st.StartAsyncDialog(r.Invoker, r.sequence); err != nil {
		return err
	}
	return r.c.env.ShowSequence(r.sequence, dialog.Invocation{Origin: r.Invoker, Target: r.Invokee})
}

// Close marks actorID's side closed and unregisters the request once it is
// complete. Ids that are not a player side are ignored.
func (r *Request) Close(actorID uint32) {
	closed := false
	if actorID == r.Invoker.ID() && r.invokerIsPlayer() {
		closed = !r.invokerClosed.Swap(true)
	}
	if actorID == r.Invokee.ID() {
		closed = !r.invokeeClosed.Swap(true) || closed
	}
	if !closed {
		return
	}
	r.c.record(r, EventClosed, actorID, "")
	if r.Complete() {
		r.c.finish(r, EventCompleted)
	}
}

// End tears the request down regardless of either side: both sides are
// closed, the request is unregistered and both actors' dialogs are cleared
// on their own workers.
func (r *Request) End() {
	if r.ended.Swap(true) {
		return
	}
	r.invokerClosed.Store(true)
	r.invokeeClosed.Store(true)
	r.c.finish(r, EventEnded)
	r.clear(r.Invokee)
	if p, ok := r.Invoker.(Player); ok {
		r.clear(p)
	}
}

// clear resets p's dialog if it still belongs to this request.
func (r *Request) clear(p Player) {
	p.Post(func() {
		st := p.DialogState()
		if !st.InDialog() || !r.owns(p, st) {
			return
		}
		r.c.env.Reset(p, nil)
	})
}

func (r *Request) owns(p Player, st *dialog.State) bool {
	a := st.Associate()
	if a == nil {
		return false
	}
	if p.ID() == r.Invokee.ID() {
		return st.Async() && a.ID() == r.Invoker.ID()
	}
	return a.ID() == r.Invokee.ID()
}

// invokerError tells a player invoker why the request failed and clears its
// dialog.
func (r *Request) invokerError(key string) {
	p, ok := r.Invoker.(Player)
	if !ok {
		return
	}
	p.SendSystemMessage(r.c.env.Text(key))
	p.Post(func() {
		if p.DialogState().InDialog() {
			r.c.env.Reset(p, nil)
		}
	})
}

func (r *Request) fields(extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("request_id", r.ID.String()),
		zap.Uint32("invoker_id", r.Invoker.ID()),
		zap.Uint32("invokee_id", r.Invokee.ID()),
		zap.String("sequence", r.SequenceName),
	}, extra...)
}

func codeOf(err error) string {
	return string(apperrors.GetCode(err))
}
