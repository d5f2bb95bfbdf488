package listener_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/handler"
	"github.com/mpapenbr/f1tel/pkg/listener"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func TestUDPListener(t *testing.T) {
	var mu sync.Mutex
	received := []packet.ID{}
	d := handler.NewDispatcher(handler.Func(func(_ context.Context, p packet.Packet) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, p.Header().PacketID)
		return nil
	}))

	l := listener.NewUDPListener("127.0.0.1:0", d, listener.WithReadBuffer(1<<20))
	require.NoError(t, l.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Serve(ctx) }()

	conn, err := net.Dial("udp", l.LocalAddr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write(basedata.SampleDatagram(enums.Year25, packet.IDParticipants))
	require.NoError(t, err)
	_, err = conn.Write([]byte{1, 2, 3}) // garbage
	require.NoError(t, err)
	_, err = conn.Write(basedata.SampleDatagram(enums.Year25, packet.IDCarTelemetry))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []packet.ID{packet.IDParticipants, packet.IDCarTelemetry}, received)
	assert.Equal(t, map[string]int64{handler.ErrKindLength: 1}, d.Stats().Snapshot().Errors)
}

func TestServeWithoutListen(t *testing.T) {
	l := listener.NewUDPListener("127.0.0.1:0", handler.NewDispatcher(nil))
	require.Error(t, l.Serve(context.Background()))
	assert.Nil(t, l.LocalAddr())
}

func TestListenInvalidAddress(t *testing.T) {
	l := listener.NewUDPListener("not-an-address", handler.NewDispatcher(nil))
	require.Error(t, l.Listen())
}
