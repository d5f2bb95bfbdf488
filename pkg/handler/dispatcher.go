package handler

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/projection"
)

// Dispatcher decodes datagrams and passes the packets to a Handler.
type Dispatcher struct {
	handler      Handler
	stats        *Stats
	l            *log.Logger
	accept       map[packet.ID]bool
	printMessage bool
}

type DispatcherOption func(*Dispatcher)

func WithStats(s *Stats) DispatcherOption {
	return func(d *Dispatcher) {
		d.stats = s
	}
}

func WithLogger(l *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.l = l
	}
}

// WithPackets restricts the dispatcher to the given packet ids.
// Other datagrams are counted as skipped without decoding the payload.
func WithPackets(ids ...packet.ID) DispatcherOption {
	return func(d *Dispatcher) {
		if len(ids) == 0 {
			return
		}
		d.accept = make(map[packet.ID]bool, len(ids))
		for _, id := range ids {
			d.accept[id] = true
		}
	}
}

// WithPrintMessage logs the projection of every packet on debug level.
func WithPrintMessage(enabled bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.printMessage = enabled
	}
}

func NewDispatcher(h Handler, opts ...DispatcherOption) *Dispatcher {
	ret := &Dispatcher{
		handler: h,
		stats:   NewStats(),
		l:       log.Default().Named("dispatch"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (d *Dispatcher) Stats() *Stats { return d.stats }

// Dispatch decodes b and hands the packet to the handler.
// Failures are logged and counted, the returned error is informational.
func (d *Dispatcher) Dispatch(ctx context.Context, b []byte) error {
	if d.accept != nil && len(b) >= packet.HeaderSize {
		if h, err := packet.ParseHeader(b[:packet.HeaderSize]); err == nil && !d.accept[h.PacketID] {
			d.stats.AddSkipped()
			return nil
		}
	}
	p, err := packet.DecodeDatagram(b)
	if err != nil {
		kind := ErrorKind(err)
		d.stats.AddError(kind)
		d.l.Warn("could not decode datagram",
			log.String("kind", kind), log.Int("size", len(b)), log.ErrorField(err))
		return err
	}
	d.stats.AddPacket(p.Header().PacketID, len(b))
	if d.printMessage {
		d.l.Debug("packet", log.String("json", projection.JSON(p.Fields(), 0)))
	}
	if err := d.handler.Handle(ctx, p); err != nil {
		d.stats.AddError(ErrKindHandler)
		d.l.Error("could not handle packet",
			log.String("packet", p.Header().PacketID.String()), log.ErrorField(err))
		return fmt.Errorf("handle %s: %w", p.Header().PacketID, err)
	}
	return nil
}
