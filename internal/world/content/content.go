// Package content exposes the world-building functions scripts call while
// they load: global sequences, merchants and reactors are declared as Lua
// tables and turned into dialog and world objects here.
//
//	register_global_sequence{name = "greeting", nodes = {{text = "Hello, {{target}}."}}}
//	spawn_merchant{id = 300, name = "Deoch", map = 1, x = 4, y = 7,
//	    jobs = {"vend", "repair"}, pursuits = {{name = "rumors", nodes = {...}}}}
//	spawn_reactor{id = 500, name = "Altar", map = 1, sequence = "pray", sequences = {...}}
//
// Once the world is running, request_async_dialog pushes a sequence from a
// spawned entity onto an online player.
package content

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
	"github.com/louisbranch/pursuit/internal/scripting"
	"github.com/louisbranch/pursuit/internal/world"
)

// Registrar accepts host functions; *scripting.Engine implements it.
type Registrar interface {
	Register(name string, fn scripting.HostFunc) error
}

// Loader builds content into a dialog environment and a world directory.
type Loader struct {
	env   *dialog.Env
	dir   *world.Directory
	log   *zap.Logger
	coord *async.Coordinator
}

// Option configures a Loader.
type Option func(*Loader)

// WithCoordinator lets scripts start async dialogs through c.
func WithCoordinator(c *async.Coordinator) Option {
	return func(l *Loader) {
		l.coord = c
	}
}

// NewLoader returns a loader writing into env and dir.
func NewLoader(env *dialog.Env, dir *world.Directory, log *zap.Logger, opts ...Option) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{env: env, dir: dir, log: log}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Bind registers the content functions on r.
func (l *Loader) Bind(r Registrar) error {
	fns := []struct {
		name string
		fn   func(table) (any, error)
	}{
		{"register_global_sequence", noResult(l.globalSequence)},
		{"spawn_merchant", noResult(l.merchant)},
		{"spawn_reactor", noResult(l.reactor)},
		{"request_async_dialog", l.requestAsync},
	}
	for _, f := range fns {
		fn := f.fn
		if err := r.Register(f.name, func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("want one table argument, got %d arguments", len(args))
			}
			t, err := asTable(args[0])
			if err != nil {
				return nil, err
			}
			return fn(t)
		}); err != nil {
			return fmt.Errorf("register %s: %w", f.name, err)
		}
	}
	return nil
}

func noResult(fn func(table) error) func(table) (any, error) {
	return func(t table) (any, error) {
		return nil, fn(t)
	}
}

func (l *Loader) globalSequence(t table) error {
	seq, err := sequence(t)
	if err != nil {
		return err
	}
	if err := l.env.Catalog.Register(seq); err != nil {
		return err
	}
	l.log.Debug("global sequence registered", zap.String("sequence", seq.Name), zap.Uint32("pursuit_id", seq.ID()))
	return nil
}

func (l *Loader) merchant(t table) error {
	id, err := t.uint32("id")
	if err != nil {
		return err
	}
	name, err := t.requiredString("name")
	if err != nil {
		return err
	}
	jobs, err := t.jobs()
	if err != nil {
		return err
	}
	sprite, err := t.uint16("sprite")
	if err != nil {
		return err
	}
	m := world.NewMerchant(world.MerchantConfig{
		ID:       id,
		Name:     name,
		Sprite:   sprite,
		Greeting: t.string("greeting"),
		Jobs:     jobs,
	}, l.env)
	if err := place(&m.Object, t); err != nil {
		return err
	}
	if err := addSequences(t, "pursuits", m.Sequences().AddPursuit); err != nil {
		return err
	}
	if err := addSequences(t, "sequences", m.Sequences().AddSequence); err != nil {
		return err
	}
	if err := l.dir.Add(m); err != nil {
		return err
	}
	l.log.Debug("merchant spawned", zap.Uint32("id", id), zap.String("name", name))
	return nil
}

func (l *Loader) reactor(t table) error {
	id, err := t.uint32("id")
	if err != nil {
		return err
	}
	name, err := t.requiredString("name")
	if err != nil {
		return err
	}
	sprite, err := t.uint16("sprite")
	if err != nil {
		return err
	}
	r := world.NewReactor(id, name, sprite, t.string("sequence"), l.env)
	if err := place(&r.Object, t); err != nil {
		return err
	}
	if err := addSequences(t, "sequences", r.Sequences().AddSequence); err != nil {
		return err
	}
	if err := l.dir.Add(r); err != nil {
		return err
	}
	l.log.Debug("reactor spawned", zap.Uint32("id", id), zap.String("name", name))
	return nil
}

func place(o *world.Object, t table) error {
	mapID, err := t.uint16("map")
	if err != nil {
		return err
	}
	x, err := t.int("x")
	if err != nil {
		return err
	}
	y, err := t.int("y")
	if err != nil {
		return err
	}
	o.Place(mapID, x, y)
	return nil
}

func addSequences(t table, key string, add func(*dialog.Sequence) error) error {
	items, err := t.list(key)
	if err != nil {
		return err
	}
	for i, item := range items {
		st, err := asTable(item)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i+1, err)
		}
		seq, err := sequence(st)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i+1, err)
		}
		if err := add(seq); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i+1, err)
		}
	}
	return nil
}

// sequence builds an unregistered sequence from its table form.
func sequence(t table) (*dialog.Sequence, error) {
	name, err := t.requiredString("name")
	if err != nil {
		return nil, err
	}
	nodes, err := t.list("nodes")
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("sequence %q has no nodes", name)
	}

	seq := dialog.NewSequence(name)
	if display := t.string("display"); display != "" {
		seq.DisplayName = display
	}
	seq.CloseOnEnd = t.bool("close_on_end")
	seq.PreDisplayCheck = t.string("pre_display_check")
	seq.MenuCheck = t.string("menu_check")
	if seq.Sprite, err = t.uint16("sprite"); err != nil {
		return nil, err
	}
	for i, raw := range nodes {
		nt, err := asTable(raw)
		if err != nil {
			return nil, fmt.Errorf("sequence %q node %d: %w", name, i+1, err)
		}
		d, err := node(nt)
		if err != nil {
			return nil, fmt.Errorf("sequence %q node %d: %w", name, i+1, err)
		}
		seq.AddDialog(d)
	}
	return seq, nil
}

func node(t table) (dialog.Dialog, error) {
	kind := strings.ToLower(t.string("kind"))
	text := t.string("text")
	sprite, err := t.uint16("sprite")
	if err != nil {
		return nil, err
	}
	callback := t.string("callback")

	switch kind {
	case "", "simple":
		d := dialog.NewSimple(text)
		d.Callback, d.Sprite = callback, sprite
		return d, nil
	case "options":
		items, err := t.list("options")
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.New("options node has no options")
		}
		opts := make([]dialog.Option, 0, len(items))
		for i, item := range items {
			ot, err := asTable(item)
			if err != nil {
				return nil, fmt.Errorf("option %d: %w", i+1, err)
			}
			opt := dialog.Option{Label: ot.string("label"), Callback: ot.string("callback")}
			if target := ot.string("jump"); target != "" {
				opt.Jump = dialog.NewJump(target)
			}
			opts = append(opts, opt)
		}
		d := dialog.NewOptions(text, opts...)
		d.Handler = t.string("handler")
		d.Callback, d.Sprite = callback, sprite
		return d, nil
	case "text":
		maxLength, err := t.int("max")
		if err != nil {
			return nil, err
		}
		if maxLength <= 0 || maxLength > 0xFF {
			maxLength = 0xFE
		}
		handler := t.string("handler")
		if strings.TrimSpace(handler) == "" {
			return nil, errors.New("text node needs a handler")
		}
		d := dialog.NewText(text, t.string("top"), t.string("bottom"), byte(maxLength), handler)
		d.Callback, d.Sprite = callback, sprite
		return d, nil
	case "jump":
		target, err := t.requiredString("target")
		if err != nil {
			return nil, err
		}
		return dialog.NewJump(target), nil
	case "function":
		expr, err := t.requiredString("expression")
		if err != nil {
			return nil, err
		}
		return dialog.NewFunction(expr), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
}
