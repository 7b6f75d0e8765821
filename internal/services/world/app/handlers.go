package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
	"github.com/louisbranch/pursuit/internal/world"
)

// clickEntity is the click subtype that targets an object by id.
const clickEntity byte = 1

var (
	errNoSuchObject = errors.New("no such object")
	errNotJoined    = errors.New("frame before join")
	errBadJoin      = errors.New("join does not match the connection cipher")
)

type handlerFunc func(s *session, f packet.Frame) error

var handlers = map[byte]handlerFunc{
	packet.OpMainMenuUse: (*session).handleMainMenuUse,
	packet.OpDialogUse:   (*session).handleDialogUse,
	packet.OpClientClick: (*session).handleClick,
	packet.OpClientPing:  func(*session, packet.Frame) error { return nil },
}

// join binds the connection to a player. It runs on the reader so the key
// table is installed before the next frame is decoded; the directory login
// happens on the worker.
func (s *session) join(ctx context.Context, f packet.Frame) {
	if s.joined {
		s.log.Warn("repeated join ignored")
		return
	}
	name, err := s.readJoin(f)
	if err != nil {
		s.srv.deps.Metrics.MalformedFrame()
		s.log.Warn("rejected join", zap.Error(err))
		_ = s.close()
		return
	}
	s.joined = true

	current := s.cipher.Load()
	s.cipher.Store(&packet.CipherContext{
		Seed:     current.Seed,
		Key:      current.Key,
		KeyTable: s.srv.deps.Keys.Get(name),
	})

	s.worker.Post(func() {
		_, span := s.srv.deps.Tracer.Start(ctx, "world.join")
		defer span.End()
		u, err := s.srv.deps.Directory.Login(name, s)
		if err != nil {
			span.RecordError(err)
			s.log.Info("login refused", zap.String("user", name), zap.Error(err))
			s.Send(dialog.SystemMessageFrame(s.srv.deps.Env.Text("world.login.refused")))
			s.hangup()
			return
		}
		u.Place(s.srv.cfg.StartMap, 0, 0)
		s.user = u
		s.log = s.log.With(zap.Uint32("user_id", u.ID()))
		s.log.Info("user joined", zap.String("user", u.Name()))
	})
}

// readJoin parses the join payload: seed, key length, key, name and a
// client id the server does not use.
func (s *session) readJoin(f packet.Frame) (string, error) {
	r := packet.NewReader(f.Payload)
	seed, err := r.ReadByte()
	if err != nil {
		return "", fmt.Errorf("read join seed: %w", err)
	}
	n, err := r.ReadByte()
	if err != nil {
		return "", fmt.Errorf("read join key length: %w", err)
	}
	key, err := r.Read(int(n))
	if err != nil {
		return "", fmt.Errorf("read join key: %w", err)
	}
	name, err := r.ReadString8()
	if err != nil {
		return "", fmt.Errorf("read join name: %w", err)
	}
	current := s.cipher.Load()
	if seed != current.Seed || string(key) != string(current.Key) {
		return "", errBadJoin
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("join name is empty: %w", packet.ErrMalformedPacket)
	}
	return name, nil
}

// dispatch runs the handler for f on the worker. Handler errors are logged
// and, when their code calls for it, reset the user's dialog; they never end
// the connection.
func (s *session) dispatch(ctx context.Context, f packet.Frame) {
	h, ok := handlers[f.Opcode]
	if !ok {
		s.log.Debug("unhandled opcode", zap.Uint8("opcode", f.Opcode), zap.String("code", string(apperrors.CodeUnknownOpcode)))
		return
	}
	_, span := s.srv.deps.Tracer.Start(ctx, "world.packet", trace.WithAttributes(
		attribute.Int("world.opcode", int(f.Opcode)),
		attribute.Int64("world.session", int64(s.id)),
	))
	defer span.End()

	start := s.srv.deps.Clock.Now()
	err := errNotJoined
	if s.user != nil {
		err = h(s, f)
	}
	s.srv.deps.Metrics.ObserveHandle(f.Opcode, s.srv.deps.Clock.Since(start).Seconds())
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	s.fail(f.Opcode, err)
}

func (s *session) fail(opcode byte, err error) {
	code := apperrors.GetCode(err)
	fields := []zap.Field{zap.Uint8("opcode", opcode), zap.String("code", string(code)), zap.Error(err)}
	if s.user == nil {
		s.log.Debug("handler failed", fields...)
		return
	}
	st := s.user.DialogState()
	if !code.Reset() || !st.InDialog() {
		s.log.Debug("handler failed", fields...)
		return
	}
	pursuitID := st.CurrentPursuitID()
	s.srv.deps.Env.Reset(s.user, err)
	s.srv.deps.Metrics.DialogReset(string(code))
	if s.srv.deps.Resets != nil {
		s.srv.deps.Resets.RecordReset(s.user.ID(), pursuitID, string(code))
	}
}

// dialogReader decrypts the dialog sub-header of a 0x39/0x3A payload and
// returns a reader positioned after it.
func dialogReader(f packet.Frame) (*packet.Reader, error) {
	if err := packet.DecryptDialog(f.Payload); err != nil {
		return nil, fmt.Errorf("dialog header of 0x%02X: %w", f.Opcode, err)
	}
	r := packet.NewReader(f.Payload)
	if _, err := r.ReadDialogHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *session) handleMainMenuUse(f packet.Frame) error {
	r, err := dialogReader(f)
	if err != nil {
		return err
	}
	if _, err := r.ReadByte(); err != nil {
		return fmt.Errorf("read object type: %w", err)
	}
	objectID, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("read object id: %w", err)
	}
	pursuitID, err := r.ReadUint16()
	if err != nil {
		return fmt.Errorf("read pursuit id: %w", err)
	}
	target, ok := s.srv.deps.Directory.Get(objectID)
	if !ok {
		return fmt.Errorf("main menu use on %d: %w", objectID, errNoSuchObject)
	}
	return s.srv.deps.Env.SelectPursuit(s.user, target, pursuitID)
}

func (s *session) handleDialogUse(f packet.Frame) error {
	r, err := dialogReader(f)
	if err != nil {
		return err
	}
	objectType, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("read object type: %w", err)
	}
	objectID, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("read object id: %w", err)
	}
	pursuitID, err := r.ReadUint16()
	if err != nil {
		return fmt.Errorf("read pursuit id: %w", err)
	}
	index, err := r.ReadUint16()
	if err != nil {
		return fmt.Errorf("read dialog index: %w", err)
	}

	st := s.user.DialogState()
	var target dialog.Entity
	if dialog.ObjectType(objectType) == dialog.ObjectAsync {
		target = st.Associate()
	} else {
		ent, ok := s.srv.deps.Directory.Get(objectID)
		if !ok {
			return fmt.Errorf("dialog use on %d: %w", objectID, dialog.ErrStaleSession)
		}
		target = ent
	}
	return s.srv.deps.Env.Navigate(s.user, dialog.Use{
		Target:    target,
		PursuitID: pursuitID,
		Index:     index,
		Args:      r,
	})
}

// handleClick opens the main menu of a clicked NPC, or interacts with a
// clicked reactor.
func (s *session) handleClick(f packet.Frame) error {
	r := packet.NewReader(f.Payload)
	kind, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("read click type: %w", err)
	}
	if kind != clickEntity {
		return nil
	}
	objectID, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("read clicked id: %w", err)
	}
	ent, ok := s.srv.deps.Directory.Get(objectID)
	if !ok {
		return fmt.Errorf("click on %d: %w", objectID, errNoSuchObject)
	}
	switch target := ent.(type) {
	case dialog.Pursuitable:
		return target.DisplayPursuits(s.user)
	case world.Interactive:
		return target.Interact(s.user)
	default:
		return nil
	}
}
