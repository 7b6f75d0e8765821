package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/platform/timeouts"
	"github.com/louisbranch/pursuit/internal/protocol/packet"
	"github.com/louisbranch/pursuit/internal/random"
	"github.com/louisbranch/pursuit/internal/world"
)

const (
	// maxCoalesce bounds the bytes gathered into one socket write.
	maxCoalesce = 0xFFFF
	// sendQueue is the outbound frame buffer per connection. A client that
	// falls this far behind is disconnected.
	sendQueue = 1024
)

// outbound is one entry of the send queue: a frame, or a request to hang up
// once everything queued before it is written.
type outbound struct {
	frame  packet.Frame
	hangup bool
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// session is one client connection. The reader goroutine decodes frames and
// posts them to the worker; handlers run only on the worker, which owns
// user and the user's dialog state.
type session struct {
	srv  *Server
	id   uint64
	conn net.Conn
	log  *zap.Logger

	// cipher is replaced, never mutated, when the join installs a key table.
	cipher atomic.Pointer[packet.CipherContext]
	worker *worker
	out    chan outbound
	done   chan struct{}
	rng    *rand.Rand

	// joined is set by the reader on the first valid join.
	joined bool
	// user is owned by the worker.
	user *world.User

	closeOnce sync.Once
}

func newSession(srv *Server, id uint64, conn net.Conn) (*session, error) {
	rng, err := random.NewSource()
	if err != nil {
		return nil, err
	}
	seed := srv.cfg.Seed
	if seed == RandomSeed {
		seed = rng.IntN(packet.SaltTableCount)
	}
	key := make([]byte, srv.cfg.KeyLength)
	for i := range key {
		key[i] = keyAlphabet[rng.IntN(len(keyAlphabet))]
	}

	s := &session{
		srv:    srv,
		id:     id,
		conn:   conn,
		log:    srv.log.With(zap.Uint64("session", id), zap.String("remote", conn.RemoteAddr().String())),
		worker: newWorker(),
		out:    make(chan outbound, sendQueue),
		done:   make(chan struct{}),
		rng:    rng,
	}
	s.cipher.Store(&packet.CipherContext{Seed: byte(seed), Key: key})
	return s, nil
}

// Send queues f for the send loop. It never blocks.
func (s *session) Send(f packet.Frame) {
	s.enqueue(outbound{frame: f})
}

// hangup closes the connection after the frames already queued are written.
func (s *session) hangup() {
	s.enqueue(outbound{hangup: true})
}

func (s *session) enqueue(o outbound) {
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.out <- o:
	default:
		s.log.Warn("send queue full, disconnecting", zap.Int("queued", len(s.out)))
		_ = s.close()
	}
}

// Post runs fn on the session worker.
func (s *session) Post(fn func()) bool {
	return s.worker.Post(fn)
}

func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, func() { _ = s.close() })
	defer stop()

	sent := make(chan struct{})
	go s.worker.run()
	go func() {
		defer close(sent)
		s.sendLoop()
	}()

	s.Send(connectionInfoFrame(s.cipher.Load()))
	err := s.readLoop(ctx)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
		s.log.Debug("client disconnected")
	default:
		s.log.Info("client connection ended", zap.Error(err))
	}

	s.worker.Stop(s.teardown)
	<-s.worker.Done()
	_ = s.close()
	<-sent
}

// close shuts the connection and stops the send loop. It is safe to call
// from any goroutine.
func (s *session) close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if cerr := s.conn.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = fmt.Errorf("close session %d: %w", s.id, cerr)
		}
	})
	return err
}

func (s *session) readLoop(ctx context.Context) error {
	br := bufio.NewReader(s.conn)
	for {
		if idle := s.srv.cfg.IdleTimeout; idle > 0 {
			if err := s.conn.SetReadDeadline(time.Now().Add(idle)); err != nil {
				return err
			}
		}
		buf, err := packet.ReadFrame(br)
		if err != nil {
			if errors.Is(err, packet.ErrMalformedPacket) {
				// The stream has lost frame alignment; nothing after this
				// point can be trusted.
				s.srv.deps.Metrics.MalformedFrame()
			}
			return err
		}
		f, err := packet.Decode(packet.ClientToServer, buf, s.cipher.Load())
		if err != nil {
			s.srv.deps.Metrics.MalformedFrame()
			s.log.Debug("dropped client frame", zap.Uint8("opcode", buf[3]), zap.Error(err))
			continue
		}
		s.srv.deps.Metrics.PacketDecoded(f.Opcode)

		if f.Opcode == packet.OpClientJoin {
			s.join(ctx, f)
			continue
		}
		s.worker.Post(func() { s.dispatch(ctx, f) })
	}
}

// sendLoop encodes queued frames and writes them, gathering consecutive
// frames into one write. A frame with a transmit delay flushes what is
// pending and waits before it is encoded.
func (s *session) sendLoop() {
	var (
		ordinal byte
		batch   []byte
	)
	flush := func() bool {
		if len(batch) == 0 {
			return true
		}
		_ = s.conn.SetWriteDeadline(time.Now().Add(timeouts.Write))
		_, err := s.conn.Write(batch)
		batch = batch[:0]
		if err != nil {
			s.log.Debug("write failed", zap.Error(err))
			_ = s.close()
			return false
		}
		return true
	}

	for {
		var next outbound
		select {
		case <-s.done:
			return
		case next = <-s.out:
		}
		for {
			if next.hangup {
				flush()
				_ = s.close()
				return
			}
			f := next.frame
			if delay := s.transmitDelay(f); delay > 0 {
				if !flush() {
					return
				}
				t := s.srv.deps.Clock.Timer(delay)
				select {
				case <-t.C:
				case <-s.done:
					t.Stop()
					return
				}
			}
			if packet.MethodFor(packet.ServerToClient, f.Opcode) != packet.EncryptNone {
				f.Ordinal = ordinal
				ordinal++
			}
			buf, err := packet.Encode(packet.ServerToClient, f, s.cipher.Load(), s.rng)
			if err != nil {
				s.log.Error("encode frame", zap.Uint8("opcode", f.Opcode), zap.Error(err))
			} else {
				s.srv.deps.Metrics.PacketEncoded(f.Opcode)
				if len(batch)+len(buf) > maxCoalesce && !flush() {
					return
				}
				batch = append(batch, buf...)
			}

			pending := false
			select {
			case next = <-s.out:
				pending = true
			default:
			}
			if !pending {
				break
			}
		}
		if !flush() {
			return
		}
	}
}

func (s *session) transmitDelay(f packet.Frame) time.Duration {
	if limit := s.srv.cfg.MaxTransmitDelay; limit > 0 && f.TransmitDelay > limit {
		return limit
	}
	return f.TransmitDelay
}

// teardown runs last on the worker: it ends the user's async requests,
// clears the dialog state and frees the user's name.
func (s *session) teardown() {
	if s.user == nil {
		return
	}
	u := s.user
	ended := s.srv.deps.Coordinator.EndUser(u.ID())
	if st := u.DialogState(); st.InDialog() {
		st.EndDialog()
	}
	s.srv.deps.Directory.Remove(u.ID())
	s.log.Info("user left", zap.Uint32("user_id", u.ID()), zap.String("user", u.Name()), zap.Int("async_ended", ended))
	s.user = nil
}

func connectionInfoFrame(c *packet.CipherContext) packet.Frame {
	w := packet.NewWriter()
	w.WriteUint8(0)
	w.WriteUint32(0) // server table crc
	w.WriteUint8(c.Seed)
	w.WriteUint8(byte(len(c.Key)))
	w.Write(c.Key)
	return packet.Frame{Opcode: packet.OpConnectionInfo, Payload: w.Bytes()}
}
