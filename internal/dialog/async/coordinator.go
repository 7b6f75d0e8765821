package async

import (
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/platform/metrics"
)

// DefaultMaxDistance is the default locality range between invoker and
// invokee.
const DefaultMaxDistance = 10

// Config controls the locality requirement.
type Config struct {
	// MaxDistance is the largest Manhattan distance a local request spans.
	MaxDistance int
	// AllowCrossMap lets local requests span maps; distance is then ignored.
	AllowCrossMap bool
}

// Coordinator creates, registers and shows async requests.
type Coordinator struct {
	registry *Registry
	env      *dialog.Env
	cfg      Config
	log      *zap.Logger
	journal  Recorder
	metrics  *metrics.World
	clock    clock.Clock
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRecorder journals lifecycle events to rec.
func WithRecorder(rec Recorder) Option {
	return func(c *Coordinator) {
		if rec != nil {
			c.journal = rec
		}
	}
}

// WithMetrics reports session counts and outcomes to m.
func WithMetrics(m *metrics.World) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clk clock.Clock) Option {
	return func(c *Coordinator) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// NewCoordinator returns a coordinator over registry. It installs registry
// as env's session directory.
func NewCoordinator(registry *Registry, env *dialog.Env, cfg Config, opts ...Option) *Coordinator {
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultMaxDistance
	}
	c := &Coordinator{
		registry: registry,
		env:      env,
		cfg:      cfg,
		log:      zap.NewNop(),
		journal:  nopRecorder{},
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	registry.observe = c.metrics.AsyncSessions
	env.Sessions = registry
	return c
}

// Registry returns the coordinator's session registry.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// NewRequest prepares a request for the sequence named name. Nothing is
// checked or registered until Start.
func (c *Coordinator) NewRequest(invoker Actor, invokee Player, name string, requireLocal bool) *Request {
	return &Request{
		ID:           uuid.New(),
		Invoker:      invoker,
		Invokee:      invokee,
		SequenceName: name,
		RequireLocal: requireLocal,
		c:            c,
	}
}

// NewRequestFor is NewRequest for an already resolved sequence.
func (c *Coordinator) NewRequestFor(invoker Actor, invokee Player, seq *dialog.Sequence, requireLocal bool) *Request {
	r := c.NewRequest(invoker, invokee, seq.Name, requireLocal)
	r.sequence = seq
	return r
}

// Start checks req, registers it and schedules ShowTo on the invokee's
// worker. It runs on the invoker's worker and never waits for the invokee.
func (c *Coordinator) Start(req *Request) error {
	if err := req.CheckRequest(); err != nil {
		c.log.Info("async dialog rejected", req.fields(zap.String("code", codeOf(err)), zap.Error(err))...)
		c.record(req, EventRejected, 0, codeOf(err))
		c.metrics.AsyncRequest("rejected")
		return err
	}
	if !c.registry.TryAdd(req) {
		c.log.Warn("async dialog registration race", req.fields()...)
		c.record(req, EventRace, 0, "")
		c.metrics.AsyncRequest("race")
		if p, ok := req.Invoker.(Player); ok {
			p.SendSystemMessage(c.env.Text("dialog.async.race"))
		}
		return ErrRegistrationRace
	}
	c.record(req, EventRequested, 0, "")

	posted := req.Invokee.Post(func() {
		if err := req.ShowTo(); err != nil {
			c.log.Info("async dialog not shown", req.fields(zap.Error(err))...)
			c.fail(req, codeOf(err))
			return
		}
		c.log.Debug("async dialog shown", req.fields()...)
		c.record(req, EventShown, 0, "")
		c.metrics.AsyncRequest("shown")
	})
	if !posted {
		c.fail(req, codeOf(ErrInvokeeGone))
		return ErrInvokeeGone
	}
	return nil
}

// EndUser ends every request id takes part in. The transport calls it when
// a connection drops.
func (c *Coordinator) EndUser(id uint32) int {
	reqs := c.registry.ForUser(id)
	for _, req := range reqs {
		req.End()
	}
	return len(reqs)
}

func (c *Coordinator) fail(req *Request, detail string) {
	c.record(req, EventFailed, 0, detail)
	c.metrics.AsyncRequest("failed")
	req.invokerClosed.Store(true)
	req.invokeeClosed.Store(true)
	c.registry.TryRemove(req)
}

// finish unregisters a complete or ended request.
func (c *Coordinator) finish(req *Request, kind EventKind) {
	if !c.registry.TryRemove(req) {
		c.log.Error("async dialog could not be unregistered", req.fields(zap.String("event", string(kind)))...)
		return
	}
	c.record(req, kind, 0, "")
}

// local reports whether invoker and invokee satisfy the locality rule.
// Actors without a position are always local.
func (c *Coordinator) local(invoker, invokee Actor) bool {
	a, ok := invoker.(Placed)
	if !ok {
		return true
	}
	b, ok := invokee.(Placed)
	if !ok {
		return true
	}
	if a.MapID() != b.MapID() {
		return c.cfg.AllowCrossMap
	}
	return Distance(a, b) <= c.cfg.MaxDistance
}

func (c *Coordinator) record(req *Request, kind EventKind, actorID uint32, detail string) {
	c.journal.Record(Event{
		RequestID: req.ID,
		Kind:      kind,
		InvokerID: req.Invoker.ID(),
		InvokeeID: req.Invokee.ID(),
		Sequence:  req.SequenceName,
		ActorID:   actorID,
		Detail:    detail,
		At:        c.clock.Now(),
	})
}
