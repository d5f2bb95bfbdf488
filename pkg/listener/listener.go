// Package listener receives telemetry datagrams from the game via UDP.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/mpapenbr/f1tel/log"
)

// maxDatagramSize covers the largest packet (participants 24, 1350 bytes)
const maxDatagramSize = 2048

// Dispatcher consumes the received datagrams. The datagram buffer is reused
// after Dispatch returns.
type Dispatcher interface {
	Dispatch(ctx context.Context, b []byte) error
}

type UDPListener struct {
	addr          string
	readBuffer    int
	readTimeout   time.Duration
	statsInterval time.Duration
	logStats      func()
	dispatcher    Dispatcher
	conn          *net.UDPConn
	l             *log.Logger
}

type Option func(*UDPListener)

func WithReadBuffer(size int) Option {
	return func(u *UDPListener) {
		u.readBuffer = size
	}
}

// WithStatsLogging calls fn every interval while the listener is running.
func WithStatsLogging(interval time.Duration, fn func()) Option {
	return func(u *UDPListener) {
		u.statsInterval = interval
		u.logStats = fn
	}
}

func WithLogger(l *log.Logger) Option {
	return func(u *UDPListener) {
		u.l = l
	}
}

func NewUDPListener(addr string, d Dispatcher, opts ...Option) *UDPListener {
	ret := &UDPListener{
		addr:        addr,
		dispatcher:  d,
		readTimeout: 100 * time.Millisecond,
		l:           log.Default().Named("listener"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Listen opens the socket. Use LocalAddr to get the actual address when
// listening on port 0.
func (u *UDPListener) Listen() error {
	addr, err := net.ResolveUDPAddr("udp", u.addr)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", u.addr, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", u.addr, err)
	}
	if u.readBuffer > 0 {
		if err := conn.SetReadBuffer(u.readBuffer); err != nil {
			u.l.Warn("could not set read buffer",
				log.Int("size", u.readBuffer), log.ErrorField(err))
		}
	}
	u.conn = conn
	u.l.Info("listening", log.String("addr", conn.LocalAddr().String()))
	return nil
}

func (u *UDPListener) LocalAddr() net.Addr {
	if u.conn == nil {
		return nil
	}
	return u.conn.LocalAddr()
}

// Serve reads datagrams until ctx is done. The socket is closed on return.
func (u *UDPListener) Serve(ctx context.Context) error {
	if u.conn == nil {
		return errors.New("listener not started")
	}
	defer u.conn.Close()
	if u.logStats != nil && u.statsInterval > 0 {
		go u.runStatsLogging(ctx)
	}

	buf := make([]byte, maxDatagramSize)
	for {
		if ctx.Err() != nil {
			u.l.Info("listener stopped")
			return nil
		}
		//nolint:errcheck // a failing deadline shows up as read error
		u.conn.SetReadDeadline(time.Now().Add(u.readTimeout))
		n, _, err := u.conn.ReadFromUDP(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		// failures are logged and counted by the dispatcher
		_ = u.dispatcher.Dispatch(ctx, buf[:n])
	}
}

// Start combines Listen and Serve.
func (u *UDPListener) Start(ctx context.Context) error {
	if err := u.Listen(); err != nil {
		return err
	}
	return u.Serve(ctx)
}

func (u *UDPListener) runStatsLogging(ctx context.Context) {
	ticker := time.NewTicker(u.statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			u.logStats()
			return
		case <-ticker.C:
			u.logStats()
		}
	}
}
