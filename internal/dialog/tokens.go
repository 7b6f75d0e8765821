package dialog

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)\}\}`)

const (
	tokenInvoker = "invoker"
	tokenTarget  = "target"
	tokenOrigin  = "origin"
)

// Substitute replaces {{name}} placeholders in text. Names resolve against
// the associate's ephemeral store; unresolved names are logged and left as
// written. {{invoker}} is only honoured for global sequences and names the
// other party of the target's async session.
func (e *Env) Substitute(text string, seq *Sequence, inv Invocation) string {
	if !tokenPattern.MatchString(text) {
		return text
	}
	associate := associateFor(seq, inv)
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		if v, ok := e.token(name, seq, inv, associate); ok {
			return v
		}
		e.Logger().Warn("unresolved dialog token",
			zap.String("token", name),
			zap.String("sequence", sequenceName(seq)),
			zap.String("associate", entityName(associate)),
		)
		return match
	})
}

func (e *Env) token(name string, seq *Sequence, inv Invocation, associate Entity) (string, bool) {
	switch name {
	case tokenInvoker:
		if seq == nil || !seq.Global() {
			break
		}
		if e.Sessions != nil && inv.Target != nil {
			if n, ok := e.Sessions.CounterpartName(inv.Target.ID()); ok {
				return n, true
			}
		}
		return e.Text("dialog.invoker.system"), true
	case tokenTarget:
		if inv.Target != nil {
			return inv.Target.Name(), true
		}
	case tokenOrigin:
		if inv.Origin != nil {
			return inv.Origin.Name(), true
		}
	}
	if associate == nil {
		return "", false
	}
	v, ok := associate.TryGetEphemeral(name)
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}

// associateFor is the entity supplying token values: the sequence's bound
// associate, else whoever fronts the dialog.
func associateFor(seq *Sequence, inv Invocation) Entity {
	if seq != nil && seq.Associate != nil {
		return seq.Associate
	}
	return inv.Origin
}

func sequenceName(seq *Sequence) string {
	if seq == nil {
		return ""
	}
	return seq.Name
}

func entityName(e Entity) string {
	if e == nil {
		return ""
	}
	return e.Name()
}
