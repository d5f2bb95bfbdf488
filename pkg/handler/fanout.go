package handler

import (
	"context"
	"sync"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/utils/broadcast"
)

// Fanout delivers every packet to all handlers. Each handler runs in its own
// goroutine, a handler that falls behind misses packets instead of blocking
// the others.
type Fanout struct {
	source chan packet.Packet
	bcst   broadcast.BroadcastServer[packet.Packet]
	wg     sync.WaitGroup
	l      *log.Logger
}

//nolint:whitespace // false positive
func NewFanout(
	ctx context.Context,
	name string,
	handlers []Handler,
	opts ...broadcast.Option[packet.Packet],
) *Fanout {
	f := &Fanout{
		source: make(chan packet.Packet),
		l:      log.Default().Named("fanout"),
	}
	f.bcst = broadcast.NewBroadcastServer(name, f.source, opts...)
	for _, h := range handlers {
		ch := f.bcst.Subscribe()
		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			for p := range ch {
				if err := h.Handle(ctx, p); err != nil {
					f.l.Error("handler failed",
						log.String("packet", p.Header().PacketID.String()),
						log.ErrorField(err))
				}
			}
		}()
	}
	return f
}

func (f *Fanout) Handle(ctx context.Context, p packet.Packet) error {
	select {
	case f.source <- p:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close waits for the handlers to finish the packets already delivered.
func (f *Fanout) Close() {
	f.bcst.Close()
	f.wg.Wait()
}

func (f *Fanout) Stats() broadcast.Stats {
	return f.bcst.Stats()
}
