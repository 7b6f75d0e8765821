// Package scripting runs dialog expressions on an embedded Lua VM.
//
// One Engine owns one Lua state. Calls are serialized; every entry point
// recovers Go panics raised by host functions and returns them as script
// faults.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// Globals bound while an expression runs.
const (
	GlobalActor  = "actor"
	GlobalSource = "source"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// HostFunc is a Go function callable from scripts. Arguments and the result
// are converted with the same rules as SetGlobalValue and ExecuteAndReturn.
type HostFunc func(args []any) (any, error)

// Engine implements dialog.Script on a single Lua state.
type Engine struct {
	mu      sync.Mutex
	state   *lua.State
	log     *zap.Logger
	pending map[string]any
	// bound holds names set by the previous execution so they can be
	// cleared before the next one.
	bound []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger, also used by the script-side log
// function.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an engine with the Lua standard libraries open.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:   lua.NewState(),
		log:     zap.NewNop(),
		pending: map[string]any{},
	}
	for _, opt := range opts {
		opt(e)
	}
	lua.OpenLibraries(e.state)
	e.state.Register("log", e.luaLog)
	return e
}

var _ dialog.Script = (*Engine)(nil)

// Register exposes fn to scripts as the global name.
func (e *Engine) Register(name string, fn HostFunc) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("invalid script function name %q", name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Register(name, func(l *lua.State) int {
		n := l.Top()
		args := make([]any, n)
		for i := 1; i <= n; i++ {
			args[i-1] = toGo(l, i)
		}
		out, err := fn(args)
		if err != nil {
			lua.Errorf(l, "%s: %s", name, err.Error())
			return 0
		}
		if err := push(l, out); err != nil {
			lua.Errorf(l, "%s: %s", name, err.Error())
			return 0
		}
		return 1
	})
	return nil
}

// LoadString runs src once, typically to define functions.
func (e *Engine) LoadString(name, src string) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverFault(name, &err)
	defer e.state.SetTop(0)

	if err := lua.LoadBuffer(e.state, src, name, "t"); err != nil {
		return fault(name, e.popError(err))
	}
	if err := e.state.ProtectedCall(0, 0, 0); err != nil {
		return fault(name, e.popError(err))
	}
	return nil
}

// LoadDir runs every .lua file in dir in name order. A missing directory is
// not an error.
func (e *Engine) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read script dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return 0, fmt.Errorf("read script %s: %w", name, err)
		}
		if err := e.LoadString(name, string(src)); err != nil {
			return 0, err
		}
	}
	e.log.Info("scripts loaded", zap.String("dir", dir), zap.Int("count", len(names)))
	return len(names), nil
}

// SetGlobalValue exposes value as name to the next execution only.
func (e *Engine) SetGlobalValue(name string, value any) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("invalid script global %q", name)
	}
	if _, err := convertible(value); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending[name] = value
	return nil
}

// Execute evaluates expression with actor and source bound. Only a false
// result fails; nil and every other value succeed.
func (e *Engine) Execute(expression string, actor, source dialog.Entity) (bool, error) {
	v, err := e.eval(expression, actor, source)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return true, nil
}

// ExecuteAndReturn evaluates expression and returns its value converted to
// Go: nil, bool, int, float64, string, []any or map[string]any.
func (e *Engine) ExecuteAndReturn(expression string, actor dialog.Entity) (any, error) {
	return e.eval(expression, actor, nil)
}

func (e *Engine) eval(expression string, actor, source dialog.Entity) (out any, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverFault(expression, &err)
	defer e.state.SetTop(0)

	e.bind(actor, source)
	if err := e.compile(expression); err != nil {
		return nil, fault(expression, err)
	}
	if err := e.state.ProtectedCall(0, 1, 0); err != nil {
		err = e.popError(err)
		e.log.Warn("script failed", zap.String("expression", expression), zap.Error(err))
		return nil, fault(expression, err)
	}
	return toGo(e.state, -1), nil
}

// compile pushes expression as a chunk, first as a returned expression and
// then as a statement.
func (e *Engine) compile(expression string) error {
	if strings.TrimSpace(expression) == "" {
		return fmt.Errorf("empty expression")
	}
	if err := lua.LoadBuffer(e.state, "return "+expression, "=expression", "t"); err == nil {
		return nil
	}
	e.state.SetTop(0)
	if err := lua.LoadBuffer(e.state, expression, "=expression", "t"); err != nil {
		return e.popError(err)
	}
	return nil
}

// bind clears the previous execution's globals and sets this one's.
func (e *Engine) bind(actor, source dialog.Entity) {
	l := e.state
	for _, name := range e.bound {
		l.PushNil()
		l.SetGlobal(name)
	}
	e.bound = e.bound[:0]

	names := make([]string, 0, len(e.pending))
	for name := range e.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		// Values were checked by SetGlobalValue.
		_ = push(l, e.pending[name])
		l.SetGlobal(name)
		e.bound = append(e.bound, name)
	}
	clear(e.pending)

	pushEntity(l, actor)
	l.SetGlobal(GlobalActor)
	pushEntity(l, source)
	l.SetGlobal(GlobalSource)
}

func (e *Engine) luaLog(l *lua.State) int {
	msg := lua.CheckString(l, 1)
	e.log.Info("script log", zap.String("message", msg))
	return 0
}

// popError replaces a generic load or call error with the message Lua left
// on the stack.
func (e *Engine) popError(err error) error {
	if msg, ok := e.state.ToString(-1); ok && msg != "" {
		e.state.Pop(1)
		return fmt.Errorf("%s", msg)
	}
	return err
}

func (e *Engine) recoverFault(what string, err *error) {
	if r := recover(); r != nil {
		e.log.Error("script panicked", zap.String("expression", what), zap.Any("panic", r))
		*err = fault(what, fmt.Errorf("panic: %v", r))
	}
}

func fault(expression string, cause error) error {
	return apperrors.Wrap(apperrors.CodeScriptFault, fmt.Sprintf("script %q", expression), cause)
}
