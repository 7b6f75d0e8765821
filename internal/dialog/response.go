package dialog

import (
	"strconv"

	"go.uber.org/zap"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// Response is what the client answered to an input node. Selection is
// 1-based and only meaningful for options nodes.
type Response struct {
	Selection int
	Text      string
}

// HandleResponse dispatches the client's answer to d. A handler that returns
// false, or faults, resets the dialog and the corresponding error is
// returned.
func (e *Env) HandleResponse(d Dialog, inv Invocation, r Response) error {
	var err error
	switch d := d.(type) {
	case *OptionsDialog:
		err = e.handleOption(d, inv, r.Selection)
	case *TextDialog:
		err = e.handleText(d, inv, r.Text)
	default:
		return errorf(apperrors.CodeInvalidNavigation, "%s dialogs take no response", d.Kind())
	}
	if err != nil && apperrors.GetCode(err).Reset() {
		e.Reset(inv.Target, err)
	}
	return err
}

func (e *Env) handleOption(d *OptionsDialog, inv Invocation, selection int) error {
	if selection < 1 || selection > len(d.Options) {
		return errorf(apperrors.CodeInvalidNavigation, "selection %d out of range [1, %d]", selection, len(d.Options))
	}
	opt := d.Options[selection-1]
	switch {
	case opt.Jump != nil:
		return e.jump(opt.Jump, inv)
	case opt.Sequence != nil:
		if err := inv.Target.DialogState().TransitionDialog(inv.Origin, opt.Sequence); err != nil {
			return err
		}
		return e.ShowSequence(opt.Sequence, inv)
	}
	expr := opt.Callback
	if expr == "" {
		expr = d.Handler
	}
	values := map[string]string{
		ValuePlayerSelection: strconv.Itoa(selection),
		ValuePlayerResponse:  opt.Label,
	}
	return e.respond(d, inv, expr, values)
}

func (e *Env) handleText(d *TextDialog, inv Invocation, text string) error {
	if d.Handler == "" {
		return errorf(apperrors.CodeResponseRejected, "text dialog %q has no handler", sequenceName(d.seq))
	}
	return e.respond(d, inv, d.Handler, map[string]string{ValuePlayerResponse: text})
}

func (e *Env) respond(d Dialog, inv Invocation, expr string, values map[string]string) error {
	ok, err := e.run(d.Sequence(), inv, expr, values)
	if err != nil {
		e.Logger().Error("dialog response handler failed",
			zap.String("sequence", sequenceName(d.Sequence())),
			zap.Int("index", d.Index()),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		return errorf(apperrors.CodeResponseRejected, "handler %q rejected the response", expr)
	}
	return nil
}
