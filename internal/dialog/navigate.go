package dialog

import (
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

// Use is a decoded dialog-use request: the client pressed Prev, Next or
// Close, or answered an input node.
type Use struct {
	// Target is the entity the client addressed. For async dialogs it is the
	// state's associate.
	Target    Entity
	PursuitID uint16
	Index     uint16
	// Args holds the response bytes, if any.
	Args *packet.Reader
}

// ReadResponse decodes the response arguments the client sends for an input
// node of kind k.
func ReadResponse(k Kind, r *packet.Reader) (Response, error) {
	if r == nil {
		return Response{}, fmt.Errorf("read %s response: %w", k, packet.ErrBufferUnderrun)
	}
	if _, err := r.ReadByte(); err != nil {
		return Response{}, fmt.Errorf("read %s response length: %w", k, err)
	}
	switch k {
	case KindOptions:
		sel, err := r.ReadByte()
		if err != nil {
			return Response{}, fmt.Errorf("read selection: %w", err)
		}
		return Response{Selection: int(sel)}, nil
	case KindText:
		text, err := r.ReadString8()
		if err != nil {
			return Response{}, fmt.Errorf("read text response: %w", err)
		}
		return Response{Text: text}, nil
	default:
		return Response{}, nil
	}
}

// Navigate applies a dialog-use request to u's state. Every path that
// leaves the state inconsistent resets it before returning.
func (e *Env) Navigate(u User, use Use) error {
	st := u.DialogState()
	if !st.InDialog() {
		u.Send(CloseDialogFrame())
		return ErrNotInDialog
	}
	inv := Invocation{Origin: use.Target, Target: u}
	pid, idx := uint32(use.PursuitID), int(use.Index)

	// Echoing the current position closes the dialog.
	if pid == st.CurrentPursuitID() && idx == st.Index() {
		e.Reset(u, nil)
		return nil
	}
	if idx > st.Index()+1 || idx < st.Index()-1 {
		return errorf(apperrors.CodeInvalidNavigation, "index %d is not adjacent to %d", idx, st.Index())
	}
	if idx == st.Index()-1 {
		if err := st.SetDialogIndex(use.Target, pid, idx); err == nil {
			return e.ShowTo(st.ActiveDialog(), inv)
		}
	}

	seq, index, merchant := st.Sequence(), st.Index(), st.CurrentMerchantID()
	moved := func() bool {
		return st.Sequence() != seq || st.Index() != index || st.CurrentMerchantID() != merchant
	}
	if d := st.ActiveDialog(); d != nil && (d.Kind() == KindOptions || d.Kind() == KindText) {
		r, err := ReadResponse(d.Kind(), use.Args)
		if err != nil {
			e.Reset(u, err)
			return err
		}
		if err := e.HandleResponse(d, inv, r); err != nil {
			return err
		}
		if moved() {
			return nil
		}
	}
	if !st.InDialog() || st.ActiveDialog() == nil {
		e.Reset(u, nil)
		return nil
	}

	if idx == st.Sequence().Len() {
		return e.finish(u, inv)
	}

	if prev, ok := st.PreviousPursuitID(); ok && prev == pid {
		st.ClearPreviousPursuit()
		return e.ShowTo(st.ActiveDialog(), inv)
	}
	if st.CurrentPursuitID() != pid {
		return errorf(apperrors.CodeStaleSession, "pursuit %d is no longer active", pid)
	}
	if err := st.SetDialogIndex(use.Target, pid, idx); err != nil {
		e.Reset(u, err)
		return err
	}
	e.Logger().Debug("dialog advanced",
		zap.Uint32("user_id", u.ID()),
		zap.Uint32("pursuit_id", pid),
		zap.Int("index", idx),
	)
	return e.ShowTo(st.ActiveDialog(), inv)
}

// finish handles Next on the last node of a sequence.
func (e *Env) finish(u User, inv Invocation) error {
	st := u.DialogState()
	switch d := st.ActiveDialog().(type) {
	case *JumpDialog:
		return e.ShowTo(d, inv)
	case *FunctionDialog:
		return e.ShowTo(d, inv)
	}
	if st.Sequence().CloseOnEnd || st.Async() {
		e.Reset(u, nil)
		return nil
	}
	st.EndDialog()
	e.release(u, false)
	if p, ok := inv.Origin.(Pursuitable); ok {
		return p.DisplayPursuits(u)
	}
	return nil
}

// SelectPursuit starts the pursuit u picked from target's main menu. Ids at
// or above HardcodedThreshold are merchant actions.
func (e *Env) SelectPursuit(u User, target Entity, pursuitID uint16) error {
	id := uint32(pursuitID)
	var seq *Sequence
	switch {
	case id < SharedThreshold:
		s, ok := e.Catalog.ByID(id)
		if !ok {
			return errorf(apperrors.CodeUnknownSequence, "%s: pursuit %d is not in the global catalog", target.Name(), id)
		}
		seq = s
	case id >= HardcodedThreshold:
		m, ok := target.(MerchantMenu)
		if !ok {
			return errorf(apperrors.CodeInvalidNavigation, "%s: menu item %#x used on a non-merchant", target.Name(), id)
		}
		return m.HandleMenuItem(u, pursuitID)
	default:
		s, ok := target.Sequences().Pursuit(id)
		if !ok {
			return errorf(apperrors.CodeUnknownSequence, "%s: local pursuit %d does not exist", target.Name(), id)
		}
		seq = s
	}

	return e.Begin(u, target, seq)
}

// Begin starts seq on u with origin as the associate and shows its first
// node. A dialog u already has open is ended first unless it is async,
// which is never displaced.
func (e *Env) Begin(u User, origin Entity, seq *Sequence) error {
	st := u.DialogState()
	if st.InDialog() {
		if st.Async() {
			return ErrAlreadyInDialog
		}
		st.EndDialog()
	}
	if err := st.StartDialog(origin, seq); err != nil {
		return err
	}
	e.Logger().Debug("dialog started",
		zap.Uint32("user_id", u.ID()),
		zap.String("origin", entityName(origin)),
		zap.String("sequence", seq.Name),
		zap.Uint32("pursuit_id", seq.ID()),
	)
	return e.ShowSequence(seq, Invocation{Origin: origin, Target: u})
}

// DisplayPursuits sends owner's main menu to u: built-in items first, then
// each pursuit whose menu check passes for u.
func (e *Env) DisplayPursuits(u User, owner MenuOwner) error {
	items := append([]MenuItem(nil), owner.MenuItems(u)...)
	inv := Invocation{Origin: owner, Target: u}
	for _, seq := range owner.Sequences().Pursuits() {
		if seq.MenuCheck != "" {
			ok, err := e.run(seq, inv, seq.MenuCheck, nil)
			if err != nil {
				e.Logger().Warn("menu check failed",
					zap.String("sequence", seq.Name),
					zap.String("owner", owner.Name()),
					zap.Error(err),
				)
				continue
			}
			if !ok {
				continue
			}
		}
		label := seq.DisplayName
		if label == "" {
			label = seq.Name
		}
		items = append(items, MenuItem{ID: uint16(seq.ID()), Label: label})
	}
	u.Send(MainMenuFrame(owner, owner.Greeting(), items))
	return nil
}
