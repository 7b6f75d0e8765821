package dialog

import (
	"go.uber.org/zap"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// ShowSequence shows seq's first node once its pre-display check passes. A
// failing check ends the dialog.
func (e *Env) ShowSequence(seq *Sequence, inv Invocation) error {
	d, ok := seq.Dialog(0)
	if !ok {
		return errorf(apperrors.CodeUnknownSequence, "sequence %q has no dialogs", seq.Name)
	}
	if seq.PreDisplayCheck != "" {
		ok, err := e.run(seq, inv, seq.PreDisplayCheck, nil)
		if err != nil || !ok {
			e.Logger().Debug("pre-display check failed",
				zap.String("sequence", seq.Name),
				zap.Uint32("user_id", inv.Target.ID()),
				zap.Error(err),
			)
			e.Reset(inv.Target, err)
			return err
		}
	}
	return e.ShowTo(d, inv)
}

// ShowTo renders d to inv.Target, or runs it for the variants the client
// never sees.
func (e *Env) ShowTo(d Dialog, inv Invocation) error {
	switch d := d.(type) {
	case *SimpleDialog:
		inv.Target.Send(SimpleFrame(d, inv, e.Substitute(d.Text, d.seq, inv)))
		return e.callback(d, inv)
	case *OptionsDialog:
		if len(d.Options) == 0 {
			e.Logger().Warn("options dialog without options",
				zap.String("sequence", sequenceName(d.seq)),
				zap.Int("index", d.index),
			)
			return nil
		}
		labels := make([]string, len(d.Options))
		for i, o := range d.Options {
			labels[i] = o.Label
		}
		inv.Target.Send(OptionsFrame(d, inv, e.Substitute(d.Text, d.seq, inv), labels))
		return e.callback(d, inv)
	case *TextDialog:
		inv.Target.Send(TextFrame(d, inv, e.Substitute(d.Text, d.seq, inv)))
		return e.callback(d, inv)
	case *JumpDialog:
		return e.jump(d, inv)
	case *FunctionDialog:
		return e.function(d, inv)
	default:
		return errorf(apperrors.CodeInvalidNavigation, "unknown dialog kind %T", d)
	}
}

// callback runs a rendered node's callback. Faults are logged; the node is
// already on screen.
func (e *Env) callback(d Dialog, inv Invocation) error {
	expr := d.base().Callback
	if expr == "" {
		return nil
	}
	if _, err := e.run(d.Sequence(), inv, expr, nil); err != nil {
		e.Logger().Error("dialog callback failed",
			zap.String("sequence", sequenceName(d.Sequence())),
			zap.Int("index", d.Index()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// jump moves the dialog to d's target. An async dialog stays async across
// the jump, and ends outright where a local one would fall back to the main
// menu.
func (e *Env) jump(d *JumpDialog, inv Invocation) error {
	if d.Callback != "" {
		if _, err := e.run(d.seq, inv, d.Callback, nil); err != nil {
			e.Logger().Error("jump callback failed", zap.String("target", d.Target), zap.Error(err))
		}
	}
	st := inv.Target.DialogState()
	async := st.Async()
	if normalizeName(d.Target) == MainMenuTarget {
		if async {
			e.Reset(inv.Target, nil)
			return nil
		}
		st.EndDialog()
		e.release(inv.Target, false)
		if p, ok := inv.Origin.(Pursuitable); ok {
			return p.DisplayPursuits(inv.Target)
		}
		return nil
	}
	seq, ok := Resolve(d.Target, inv.Origin, e.Catalog)
	if !ok {
		err := errorf(apperrors.CodeUnknownSequence, "jump target %q not found", d.Target)
		if async {
			e.Reset(inv.Target, err)
		} else {
			st.EndDialog()
			e.release(inv.Target, false)
		}
		inv.Target.SendSystemMessage(e.Text("dialog.jump.unresolved", entityName(inv.Origin)))
		e.Logger().Error("jump target not found",
			zap.String("target", d.Target),
			zap.String("sequence", sequenceName(d.seq)),
		)
		return err
	}
	st.EndDialog()
	start := st.StartDialog
	if async {
		start = st.StartAsyncDialog
	}
	if err := start(inv.Origin, seq); err != nil {
		e.release(inv.Target, async)
		return err
	}
	return e.ShowSequence(seq, inv)
}

func (e *Env) function(d *FunctionDialog, inv Invocation) error {
	if _, err := e.run(d.seq, inv, d.Expression, nil); err != nil {
		e.Logger().Error("function dialog failed",
			zap.String("sequence", sequenceName(d.seq)),
			zap.Int("index", d.index),
			zap.Error(err),
		)
		e.Reset(inv.Target, err)
		return err
	}
	st := inv.Target.DialogState()
	next, ok := d.seq.Dialog(d.index + 1)
	if !ok {
		if st.Sequence() == d.seq {
			e.Reset(inv.Target, nil)
		}
		return nil
	}
	st.advance(d.seq, d.index)
	return e.ShowTo(next, inv)
}
