package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
	"github.com/louisbranch/pursuit/internal/platform/metrics"
	"github.com/louisbranch/pursuit/internal/platform/timeouts"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
	"github.com/louisbranch/pursuit/internal/world"
)

// RandomSeed asks for a fresh cipher seed per connection.
const RandomSeed = -1

// DefaultKeyLength is the length of the per-connection default key.
const DefaultKeyLength = 9

// Config controls the client listener.
type Config struct {
	// Addr is the client listen address.
	Addr string
	// AdminAddr serves health and metrics. Empty disables the admin listener.
	AdminAddr string
	// MaxConns caps concurrent client connections; 0 is unlimited.
	MaxConns int
	// Seed selects the salt table for every connection, or RandomSeed.
	Seed int
	// KeyLength is the default key length; 0 means DefaultKeyLength.
	KeyLength int
	// MaxTransmitDelay caps the delay a frame may ask the send loop for; 0
	// leaves frame delays uncapped.
	MaxTransmitDelay time.Duration
	// IdleTimeout closes connections that send nothing for this long; 0
	// disables the read deadline.
	IdleTimeout time.Duration
	// StartMap is the map users are placed on when they join.
	StartMap uint16
}

// ResetRecorder journals dialog resets forced by handler errors.
type ResetRecorder interface {
	RecordReset(userID uint32, pursuitID uint32, code string)
}

// Deps are the collaborators the listener dispatches into.
type Deps struct {
	Env         *dialog.Env
	Coordinator *async.Coordinator
	Directory   *world.Directory
	Keys        *packet.KeyTables
	// Metrics may be nil.
	Metrics *metrics.World
	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
	// Resets may be nil.
	Resets ResetRecorder
	// Closers are closed after every session has ended, in order.
	Closers []io.Closer
	Log     *zap.Logger
	Clock   clock.Clock
	Tracer  trace.Tracer
}

// Server accepts client connections and runs one session per connection.
type Server struct {
	cfg      Config
	deps     Deps
	log      *zap.Logger
	listener net.Listener
	admin    *admin

	mu       sync.Mutex
	sessions map[uint64]*session
	nextID   uint64
	closed   bool
	wg       sync.WaitGroup

	closeOnce sync.Once
	closeErr  error
}

// New validates deps and opens the client and admin listeners.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Env == nil || deps.Coordinator == nil || deps.Directory == nil {
		return nil, errors.New("dialog env, coordinator and directory are required")
	}
	if cfg.Seed != RandomSeed && (cfg.Seed < 0 || cfg.Seed >= packet.SaltTableCount) {
		return nil, fmt.Errorf("cipher seed %d out of range [0,%d)", cfg.Seed, packet.SaltTableCount)
	}
	if cfg.KeyLength <= 0 {
		cfg.KeyLength = DefaultKeyLength
	}
	if cfg.KeyLength > 0xFF {
		return nil, fmt.Errorf("key length %d exceeds 255", cfg.KeyLength)
	}
	if deps.Keys == nil {
		keys, err := packet.NewKeyTables(0)
		if err != nil {
			return nil, fmt.Errorf("key table cache: %w", err)
		}
		deps.Keys = keys
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer("github.com/louisbranch/pursuit/internal/services/world/app")
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	if cfg.MaxConns > 0 {
		listener = netutil.LimitListener(listener, cfg.MaxConns)
	}
	adm, err := newAdmin(cfg.AdminAddr, deps.Gatherer)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	return &Server{
		cfg:      cfg,
		deps:     deps,
		log:      deps.Log,
		listener: listener,
		admin:    adm,
		sessions: map[uint64]*session{},
	}, nil
}

// Addr returns the client listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// AdminAddr returns the admin listener address, or "" when disabled.
func (s *Server) AdminAddr() string {
	if s == nil {
		return ""
	}
	return s.admin.addr()
}

// Sessions returns the number of open connections.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Serve accepts connections until ctx ends or a listener fails, then closes
// the server.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.log.Info("world server listening", zap.String("addr", s.Addr()), zap.String("admin_addr", s.AdminAddr()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.accept(ctx) })
	g.Go(func() error { return s.admin.serve() })
	g.Go(func() error {
		<-ctx.Done()
		return s.Close()
	})
	return g.Wait()
}

func (s *Server) accept(ctx context.Context) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.isClosed() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			_ = conn.Close()
			return nil
		}
		s.nextID++
		sess, err := newSession(s, s.nextID, conn)
		if err != nil {
			s.mu.Unlock()
			s.log.Error("open session", zap.Error(err))
			_ = conn.Close()
			continue
		}
		s.sessions[sess.id] = sess
		s.wg.Add(1)
		s.mu.Unlock()

		s.deps.Metrics.ConnectionOpened()
		go func() {
			defer s.wg.Done()
			defer s.deps.Metrics.ConnectionClosed()
			defer s.forget(sess.id)
			sess.run(ctx)
		}()
	}
}

func (s *Server) forget(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close stops accepting, disconnects every session, waits for their
// teardown and then closes Deps.Closers. Errors from each step are
// combined.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		open := make([]*session, 0, len(s.sessions))
		for _, sess := range s.sessions {
			open = append(open, sess)
		}
		s.mu.Unlock()

		var err error
		if lerr := s.listener.Close(); lerr != nil && !errors.Is(lerr, net.ErrClosed) {
			err = multierr.Append(err, fmt.Errorf("close listener: %w", lerr))
		}
		err = multierr.Append(err, s.admin.close())
		for _, sess := range open {
			err = multierr.Append(err, sess.close())
		}

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(timeouts.Shutdown):
			err = multierr.Append(err, errors.New("sessions did not stop before the shutdown timeout"))
		}

		for _, c := range s.deps.Closers {
			err = multierr.Append(err, c.Close())
		}
		s.closeErr = err
	})
	return s.closeErr
}
