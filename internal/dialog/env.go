package dialog

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// Env carries the collaborators dialogs run against.
type Env struct {
	// Catalog is the global sequence catalog.
	Catalog *Catalog
	// Sessions is the async-dialog registry; nil when async dialogs are off.
	Sessions SessionDirectory
	// Script runs expressions when neither the sequence nor the associate
	// binds a script of its own.
	Script Script
	// Messages formats user-visible text.
	Messages *message.Printer
	Log      *zap.Logger
}

// NewEnv returns an Env with a no-op logger and an en-US printer.
func NewEnv(catalog *Catalog, script Script) *Env {
	return &Env{
		Catalog:  catalog,
		Script:   script,
		Messages: message.NewPrinter(language.AmericanEnglish),
		Log:      zap.NewNop(),
	}
}

// Invocation is one pass of a dialog for a user.
type Invocation struct {
	// Origin fronts the dialog: the clicked entity, or the invoker of an
	// async dialog.
	Origin Entity
	// Target receives the dialog.
	Target User
}

// Logger returns the environment logger, never nil.
func (e *Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Text formats the catalog message key for the user.
func (e *Env) Text(key string, args ...any) string {
	if e.Messages == nil {
		return key
	}
	return e.Messages.Sprintf(key, args...)
}

// scriptFor picks the sequence's script, then the associate's, then the
// environment default.
func (e *Env) scriptFor(seq *Sequence, origin Entity) Script {
	if seq != nil && seq.Script != nil {
		return seq.Script
	}
	if s, ok := origin.(Scripted); ok && s.Script() != nil {
		return s.Script()
	}
	return e.Script
}

// run executes expression and reports its success. An empty expression
// succeeds without touching the script.
func (e *Env) run(seq *Sequence, inv Invocation, expression string, values map[string]string) (bool, error) {
	if strings.TrimSpace(expression) == "" {
		return true, nil
	}
	script := e.scriptFor(seq, inv.Origin)
	if script == nil {
		return false, scriptFault(expression, errors.New("no script bound"))
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := script.SetGlobalValue(name, values[name]); err != nil {
			return false, scriptFault(expression, err)
		}
	}
	ok, err := script.Execute(expression, inv.Target, inv.Origin)
	if err != nil {
		return false, scriptFault(expression, err)
	}
	return ok, nil
}

// Reset forces u back to idle, dismisses the client dialog and releases the
// user's side of any async session. cause is logged.
func (e *Env) Reset(u User, cause error) {
	st := u.DialogState()
	fields := []zap.Field{
		zap.Uint32("user_id", u.ID()),
		zap.String("user", u.Name()),
		zap.Uint32("pursuit_id", st.CurrentPursuitID()),
		zap.Int("index", st.Index()),
	}
	if cause != nil {
		fields = append(fields, zap.String("code", string(apperrors.GetCode(cause))), zap.Error(cause))
		e.Logger().Warn("dialog reset", fields...)
	} else {
		e.Logger().Debug("dialog closed", fields...)
	}
	async := st.Async()
	st.EndDialog()
	u.Send(CloseDialogFrame())
	e.release(u, async)
}

// release closes u's side of its async sessions once u's dialog is over. A
// user always releases the sessions it invoked; the sessions it receives
// only when the dialog that ended was one of them.
func (e *Env) release(u User, invokee bool) {
	if e.Sessions == nil {
		return
	}
	if invokee {
		e.Sessions.CloseSide(u.ID())
		return
	}
	e.Sessions.CloseInvoker(u.ID())
}
