// Package worldd parses world server flags and assembles the runtime.
package worldd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
	entrypoint "github.com/louisbranch/pursuit/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/pursuit/internal/platform/grpc"
	"github.com/louisbranch/pursuit/internal/platform/i18n/catalog"
	"github.com/louisbranch/pursuit/internal/platform/metrics"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
	"github.com/louisbranch/pursuit/internal/scripting"
	server "github.com/louisbranch/pursuit/internal/services/world/app"
	"github.com/louisbranch/pursuit/internal/services/world/storage/sqlite"
	"github.com/louisbranch/pursuit/internal/world"
	"github.com/louisbranch/pursuit/internal/world/content"
)

// Config holds world server configuration. Every field reads WORLD_<tag>.
type Config struct {
	Addr             string        `env:"ADDR" envDefault:":2611"`
	AdminAddr        string        `env:"ADMIN_ADDR" envDefault:":2612"`
	MaxConns         int           `env:"MAX_CONNS"`
	Seed             int           `env:"SEED" envDefault:"-1"`
	KeyLength        int           `env:"KEY_LENGTH" envDefault:"9"`
	MaxTransmitDelay time.Duration `env:"MAX_TRANSMIT_DELAY" envDefault:"1s"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT" envDefault:"5m"`
	StartMap         uint          `env:"START_MAP" envDefault:"1"`

	AsyncDistance int    `env:"ASYNC_DISTANCE" envDefault:"10"`
	AsyncCrossMap bool   `env:"ASYNC_CROSS_MAP"`
	GlobalLimit   uint   `env:"GLOBAL_LIMIT" envDefault:"5000"`
	JournalDB     string `env:"JOURNAL_DB"`
	ScriptDir     string `env:"SCRIPT_DIR" envDefault:"scripts"`
	KeyTableCache int    `env:"KEY_TABLE_CACHE" envDefault:"1024"`
	Locale        string `env:"LOCALE" envDefault:"en-US"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	HealthCheck   bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The client listen address")
	fs.StringVar(&cfg.AdminAddr, "admin-addr", cfg.AdminAddr, "The health and metrics listen address (empty disables it)")
	fs.IntVar(&cfg.MaxConns, "max-conns", cfg.MaxConns, "Maximum concurrent client connections (0 is unlimited)")
	fs.IntVar(&cfg.Seed, "seed", cfg.Seed, "Cipher seed sent to clients (-1 picks one per connection)")
	fs.StringVar(&cfg.JournalDB, "journal-db", cfg.JournalDB, "SQLite path for the dialog journal (empty disables it)")
	fs.StringVar(&cfg.ScriptDir, "script-dir", cfg.ScriptDir, "Directory of Lua content scripts")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.HealthCheck, "healthcheck", false, "Probe the admin listener of a running server and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.StartMap > 0xFFFF {
		return Config{}, fmt.Errorf("start map %d out of range", cfg.StartMap)
	}
	return cfg, nil
}

// Run starts the world server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.HealthCheck {
		return probe(ctx, cfg)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorld, func(ctx context.Context) error {
		log, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		srv, err := build(cfg, log)
		if err != nil {
			return err
		}
		log.Info("world server listening",
			zap.String("addr", srv.Addr()),
			zap.String("admin_addr", srv.AdminAddr()))
		return srv.Serve(ctx)
	})
}

func probe(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.AdminAddr) == "" {
		return errors.New("healthcheck needs an admin address")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return platformgrpc.Probe(ctx, cfg.AdminAddr, server.HealthService, nil)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build(zap.Fields(zap.String("service", entrypoint.ServiceWorld)))
}

// build assembles the server from cfg. Resources opened before a failure are
// released.
func build(cfg Config, log *zap.Logger) (_ *server.Server, err error) {
	var closers []io.Closer
	defer func() {
		if err != nil {
			for _, c := range closers {
				err = multierr.Append(err, c.Close())
			}
		}
	}()

	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if err := bundle.Register(); err != nil {
		return nil, fmt.Errorf("register messages: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	engine := scripting.New(scripting.WithLogger(log.Named("script")))
	env := dialog.NewEnv(dialog.NewCatalog(uint32(cfg.GlobalLimit), log), engine)
	env.Messages = bundle.Printer(cfg.Locale)
	env.Log = log

	opts := []async.Option{async.WithLogger(log.Named("async")), async.WithMetrics(m)}
	var resets server.ResetRecorder
	if strings.TrimSpace(cfg.JournalDB) != "" {
		journal, err := sqlite.Open(cfg.JournalDB, sqlite.WithLogger(log.Named("journal")))
		if err != nil {
			return nil, err
		}
		closers = append(closers, journal)
		opts = append(opts, async.WithRecorder(journal))
		resets = journal
	}
	coord := async.NewCoordinator(async.NewRegistry(), env, async.Config{
		MaxDistance:   cfg.AsyncDistance,
		AllowCrossMap: cfg.AsyncCrossMap,
	}, opts...)

	dir := world.NewDirectory()
	if err := content.NewLoader(env, dir, log.Named("content"), content.WithCoordinator(coord)).Bind(engine); err != nil {
		return nil, err
	}
	n, err := engine.LoadDir(cfg.ScriptDir)
	if err != nil {
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	log.Info("content loaded",
		zap.Int("scripts", n),
		zap.Int("global_sequences", env.Catalog.Len()))

	keys, err := packet.NewKeyTables(cfg.KeyTableCache)
	if err != nil {
		return nil, err
	}
	return server.New(server.Config{
		Addr:             cfg.Addr,
		AdminAddr:        cfg.AdminAddr,
		MaxConns:         cfg.MaxConns,
		Seed:             cfg.Seed,
		KeyLength:        cfg.KeyLength,
		MaxTransmitDelay: cfg.MaxTransmitDelay,
		IdleTimeout:      cfg.IdleTimeout,
		StartMap:         uint16(cfg.StartMap),
	}, server.Deps{
		Env:         env,
		Coordinator: coord,
		Directory:   dir,
		Keys:        keys,
		Metrics:     m,
		Gatherer:    reg,
		Resets:      resets,
		Closers:     closers,
		Log:         log,
	})
}
