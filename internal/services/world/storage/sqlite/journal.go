package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/pursuit/internal/dialog/async"
	"github.com/louisbranch/pursuit/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/pursuit/internal/platform/timeouts"
	"github.com/louisbranch/pursuit/internal/services/world/storage/sqlite/migrations"
)

const (
	// queueSize bounds the entries waiting for the writer. Entries beyond it
	// are dropped and counted.
	queueSize = 4096
	// batchSize bounds the entries written in one transaction.
	batchSize = 256
)

const insertEventSQL = `
INSERT INTO async_dialog_events
    (request_id, kind, invoker_id, invokee_id, sequence, actor_id, detail, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertResetSQL = `
INSERT INTO dialog_resets (user_id, pursuit_id, code, recorded_at)
VALUES (?, ?, ?, ?)`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Reset is one journaled dialog reset.
type Reset struct {
	UserID    uint32
	PursuitID uint32
	Code      string
	At        time.Time
}

type entry struct {
	event *async.Event
	reset *Reset
}

// Journal persists dialog events. Record and RecordReset never block.
type Journal struct {
	sqlDB   *sql.DB
	log     *zap.Logger
	clock   clock.Clock
	entries chan entry
	quit    chan struct{}
	done    chan struct{}
	dropped atomic.Uint64

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Journal.
type Option func(*Journal)

// WithLogger sets the journal logger.
func WithLogger(log *zap.Logger) Option {
	return func(j *Journal) {
		if log != nil {
			j.log = log
		}
	}
}

// WithClock sets the clock that timestamps resets.
func WithClock(clk clock.Clock) Option {
	return func(j *Journal) {
		if clk != nil {
			j.clock = clk
		}
	}
}

// Open opens the journal database at path, applies the bundled migrations
// and starts the writer.
func Open(path string, opts ...Option) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	j := &Journal{
		sqlDB:   sqlDB,
		log:     zap.NewNop(),
		clock:   clock.New(),
		entries: make(chan entry, queueSize),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(j)
	}
	go j.run()
	return j, nil
}

var _ async.Recorder = (*Journal)(nil)

// Record queues an async lifecycle event.
func (j *Journal) Record(ev async.Event) {
	j.enqueue(entry{event: &ev})
}

// RecordReset queues a dialog reset.
func (j *Journal) RecordReset(userID, pursuitID uint32, code string) {
	j.enqueue(entry{reset: &Reset{UserID: userID, PursuitID: pursuitID, Code: code, At: j.clock.Now()}})
}

// Dropped returns the number of entries discarded because the queue was
// full or the journal was closed.
func (j *Journal) Dropped() uint64 {
	return j.dropped.Load()
}

func (j *Journal) enqueue(e entry) {
	select {
	case <-j.quit:
		j.dropped.Add(1)
		return
	default:
	}
	select {
	case j.entries <- e:
	default:
		if j.dropped.Add(1) == 1 {
			j.log.Warn("dialog journal queue full, dropping entries")
		}
	}
}

// Close flushes the queued entries and closes the database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.closeOnce.Do(func() {
		close(j.quit)
		<-j.done
		j.closeErr = j.sqlDB.Close()
	})
	return j.closeErr
}

func (j *Journal) run() {
	defer close(j.done)
	batch := make([]entry, 0, batchSize)
	for {
		select {
		case e := <-j.entries:
			batch = append(batch[:0], e)
		case <-j.quit:
			j.drain(batch[:0])
			return
		}
	fill:
		for len(batch) < batchSize {
			select {
			case e := <-j.entries:
				batch = append(batch, e)
			default:
				break fill
			}
		}
		j.write(batch)
	}
}

// drain writes everything still queued at close.
func (j *Journal) drain(batch []entry) {
	for {
		select {
		case e := <-j.entries:
			batch = append(batch, e)
			if len(batch) == batchSize {
				j.write(batch)
				batch = batch[:0]
			}
		default:
			if len(batch) > 0 {
				j.write(batch)
			}
			return
		}
	}
}

func (j *Journal) write(batch []entry) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.JournalFlush)
	defer cancel()
	if err := j.writeBatch(ctx, batch); err != nil {
		j.dropped.Add(uint64(len(batch)))
		j.log.Error("write dialog journal", zap.Int("entries", len(batch)), zap.Error(err))
	}
}

func (j *Journal) writeBatch(ctx context.Context, batch []entry) error {
	tx, err := j.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin journal batch: %w", err)
	}
	for _, e := range batch {
		switch {
		case e.event != nil:
			ev := e.event
			_, err = tx.ExecContext(ctx, insertEventSQL,
				ev.RequestID.String(), string(ev.Kind), ev.InvokerID, ev.InvokeeID,
				ev.Sequence, ev.ActorID, ev.Detail, toMillis(ev.At),
			)
		case e.reset != nil:
			r := e.reset
			_, err = tx.ExecContext(ctx, insertResetSQL, r.UserID, r.PursuitID, r.Code, toMillis(r.At))
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert journal entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal batch: %w", err)
	}
	return nil
}

// Events returns the journaled lifecycle of one request, oldest first.
func (j *Journal) Events(ctx context.Context, requestID uuid.UUID) ([]async.Event, error) {
	rows, err := j.sqlDB.QueryContext(ctx, `
SELECT request_id, kind, invoker_id, invokee_id, sequence, actor_id, detail, recorded_at
FROM async_dialog_events
WHERE request_id = ?
ORDER BY id`, requestID.String())
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []async.Event
	for rows.Next() {
		var (
			ev       async.Event
			id, kind string
			at       int64
		)
		if err := rows.Scan(&id, &kind, &ev.InvokerID, &ev.InvokeeID, &ev.Sequence, &ev.ActorID, &ev.Detail, &at); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if ev.RequestID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse request id %q: %w", id, err)
		}
		ev.Kind = async.EventKind(kind)
		ev.At = fromMillis(at)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Resets returns the journaled resets of userID, oldest first.
func (j *Journal) Resets(ctx context.Context, userID uint32) ([]Reset, error) {
	rows, err := j.sqlDB.QueryContext(ctx, `
SELECT user_id, pursuit_id, code, recorded_at
FROM dialog_resets
WHERE user_id = ?
ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query resets: %w", err)
	}
	defer rows.Close()

	var resets []Reset
	for rows.Next() {
		var (
			r  Reset
			at int64
		)
		if err := rows.Scan(&r.UserID, &r.PursuitID, &r.Code, &at); err != nil {
			return nil, fmt.Errorf("scan reset: %w", err)
		}
		r.At = fromMillis(at)
		resets = append(resets, r)
	}
	return resets, rows.Err()
}
