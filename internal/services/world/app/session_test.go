package server

import (
	"bufio"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

func pipeSession(t *testing.T, clk clock.Clock) (*session, net.Conn) {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	t.Cleanup(func() { _ = clientSide.Close() })
	srv := &Server{
		cfg:  Config{Seed: 2, KeyLength: DefaultKeyLength},
		log:  zaptest.NewLogger(t),
		deps: Deps{Clock: clk},
	}
	sess, err := newSession(srv, 1, serverSide)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.close() })
	return sess, clientSide
}

func TestSendLoopCoalescesQueuedFrames(t *testing.T) {
	t.Parallel()
	sess, conn := pipeSession(t, clock.New())
	frames := []packet.Frame{
		{Opcode: 0x03, Payload: []byte{1}},
		{Opcode: 0x03, Payload: []byte{2, 2}},
		{Opcode: 0x40, Payload: []byte{3, 3, 3}},
	}
	want := 0
	for _, f := range frames {
		sess.Send(f)
		want += 4 + len(f.Payload)
	}
	go sess.sendLoop()

	buf := make([]byte, maxCoalesce)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, want, n, "one write carries every queued frame")
}

func TestSendLoopAssignsOrdinals(t *testing.T) {
	t.Parallel()
	sess, conn := pipeSession(t, clock.New())
	go sess.sendLoop()
	sess.Send(packet.Frame{Opcode: packet.OpSystemMessage, Payload: []byte{0, 0, 1, 'a'}})
	sess.Send(packet.Frame{Opcode: 0x03})
	sess.Send(packet.Frame{Opcode: packet.OpSystemMessage, Payload: []byte{0, 0, 1, 'b'}})

	br := bufio.NewReader(conn)
	var ordinals []byte
	for range 3 {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		raw, err := packet.ReadFrame(br)
		require.NoError(t, err)
		f, err := packet.Decode(packet.ServerToClient, raw, sess.cipher.Load())
		require.NoError(t, err)
		ordinals = append(ordinals, f.Ordinal)
	}
	assert.Equal(t, []byte{0, 0, 1}, ordinals, "unencrypted frames take no ordinal")
}

func TestSendLoopHonoursTransmitDelay(t *testing.T) {
	t.Parallel()
	mock := clock.NewMock()
	sess, conn := pipeSession(t, mock)
	go sess.sendLoop()

	sess.Send(packet.Frame{Opcode: 0x03, Payload: []byte{1}, TransmitDelay: 250 * time.Millisecond})
	buf := make([]byte, 64)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
	_, err := conn.Read(buf)
	require.True(t, errors.Is(err, os.ErrDeadlineExceeded), "nothing is written before the delay: %v", err)

	var n int
	require.Eventually(t, func() bool {
		mock.Add(250 * time.Millisecond)
		_ = conn.SetReadDeadline(time.Now().Add(20 * time.Millisecond))
		n, err = conn.Read(buf)
		return err == nil
	}, 5*time.Second, time.Millisecond)
	assert.Equal(t, 5, n)
}

func TestTransmitDelayIsCapped(t *testing.T) {
	t.Parallel()
	sess, _ := pipeSession(t, clock.New())
	sess.srv.cfg.MaxTransmitDelay = time.Second
	assert.Equal(t, time.Second, sess.transmitDelay(packet.Frame{TransmitDelay: time.Minute}))
	assert.Equal(t, time.Millisecond, sess.transmitDelay(packet.Frame{TransmitDelay: time.Millisecond}))
}

func TestHangupFlushesFirst(t *testing.T) {
	t.Parallel()
	sess, conn := pipeSession(t, clock.New())
	sess.Send(packet.Frame{Opcode: 0x03, Payload: []byte{9}})
	sess.hangup()
	go sess.sendLoop()

	br := bufio.NewReader(conn)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	raw, err := packet.ReadFrame(br)
	require.NoError(t, err)
	assert.Equal(t, []byte{packet.Marker, 0, 2, 0x03, 9}, raw)
	_, err = packet.ReadFrame(br)
	assert.Error(t, err)
	sess.Send(packet.Frame{Opcode: 0x03})
}

func TestConnectionInfoFrame(t *testing.T) {
	t.Parallel()
	f := connectionInfoFrame(&packet.CipherContext{Seed: 4, Key: []byte("UrkcnItnI")})
	assert.Equal(t, packet.OpConnectionInfo, f.Opcode)
	assert.Equal(t, append([]byte{0, 0, 0, 0, 0, 4, 9}, "UrkcnItnI"...), f.Payload)
}
