package broadcast

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1tel/log"
)

//nolint:lll // by design
// see https://betterprogramming.pub/how-to-broadcast-messages-in-go-using-channels-b68f42bdf32e

type BroadcastServer[T any] interface {
	Subscribe() <-chan T
	CancelSubscription(<-chan T)
	Close()
	Stats() Stats
}

type Stats struct {
	Received  int64
	Sent      int64
	Skipped   int64
	Listeners int64
}

type broadcastServer[T any] struct {
	name           string
	source         <-chan T
	listeners      []chan T
	addListener    chan chan T
	removeListener chan (<-chan T)
	ctx            context.Context
	cancel         context.CancelFunc
	done           chan struct{}
	sendTimeout    time.Duration
	telemetry      bool
	numRcv         atomic.Int64
	numSnd         atomic.Int64
	numSkip        atomic.Int64
	numListeners   atomic.Int64
	l              *log.Logger
}

type Option[T any] func(*broadcastServer[T])

// WithTelemetry registers observable gauges for the server counters.
func WithTelemetry[T any]() Option[T] {
	return func(b *broadcastServer[T]) {
		b.telemetry = true
	}
}

// WithSendTimeout sets the duration a slow listener may block a message
// before it is skipped for this listener.
func WithSendTimeout[T any](d time.Duration) Option[T] {
	return func(b *broadcastServer[T]) {
		b.sendTimeout = d
	}
}

func WithLogger[T any](l *log.Logger) Option[T] {
	return func(b *broadcastServer[T]) {
		b.l = l
	}
}

// Subscribe returns a closed channel once the server is closed.
func (b *broadcastServer[T]) Subscribe() <-chan T {
	ch := make(chan T)
	select {
	case b.addListener <- ch:
	case <-b.done:
		close(ch)
	}
	return ch
}

func (b *broadcastServer[T]) CancelSubscription(ch <-chan T) {
	select {
	case b.removeListener <- ch:
	case <-b.done:
	}
}

// Close stops the server and closes all listener channels.
// It returns after the listeners are closed.
func (b *broadcastServer[T]) Close() {
	b.cancel()
	<-b.done
	s := b.Stats()
	b.l.Info("Closed broadcast server",
		log.String("name", b.name),
		log.Int64("rcv", s.Received), log.Int64("snd", s.Sent), log.Int64("skip", s.Skipped))
}

func (b *broadcastServer[T]) Stats() Stats {
	return Stats{
		Received:  b.numRcv.Load(),
		Sent:      b.numSnd.Load(),
		Skipped:   b.numSkip.Load(),
		Listeners: b.numListeners.Load(),
	}
}

//nolint:whitespace // false positive
func NewBroadcastServer[T any](
	name string,
	source <-chan T,
	opts ...Option[T],
) BroadcastServer[T] {
	ctx, cancel := context.WithCancel(context.Background())
	b := &broadcastServer[T]{
		name:           name,
		source:         source,
		addListener:    make(chan chan T),
		removeListener: make(chan (<-chan T)),
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
		sendTimeout:    50 * time.Millisecond,
		l:              log.Default().Named("broadcast"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.telemetry {
		b.setupMetrics()
	}
	go b.serve()
	return b
}

//nolint:lll,funlen // readability
func (b *broadcastServer[T]) setupMetrics() {
	b.l.Debug("Setting up metrics", log.String("name", b.name))
	meter := otel.GetMeterProvider().Meter("f1tel.broadcast." + b.name)
	register := func(metricName, desc string, value *atomic.Int64) {
		if _, err := meter.Int64ObservableGauge(
			metricName,
			metric.WithDescription(desc),
			metric.WithUnit("{count}"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(value.Load(),
					metric.WithAttributes(attribute.String("name", b.name)),
				)
				return nil
			})); err != nil {
			b.l.Error("failed to register metric",
				log.String("metric", metricName),
				log.ErrorField(err))
		}
	}
	type data struct {
		name  string
		desc  string
		value *atomic.Int64
	}
	for _, d := range []*data{
		{"f1tel.broadcast.rcv", "Number of received messages", &b.numRcv},
		{"f1tel.broadcast.snd", "Number of sent messages", &b.numSnd},
		{"f1tel.broadcast.skip", "Number of skipped messages", &b.numSkip},
		{"f1tel.broadcast.listener", "Number of listeners", &b.numListeners},
	} {
		register(d.name, d.desc, d.value)
	}
}

//nolint:cyclop // by design
func (b *broadcastServer[T]) serve() {
	defer func() {
		b.l.Debug("Closing listeners", log.String("name", b.name))
		for _, listener := range b.listeners {
			close(listener)
		}
		b.listeners = nil
		b.numListeners.Store(0)
		close(b.done)
	}()
	for {
		select {
		case <-b.ctx.Done():
			return
		case ch := <-b.addListener:
			b.listeners = append(b.listeners, ch)
			b.numListeners.Store(int64(len(b.listeners)))
		case ch := <-b.removeListener:
			for i, listener := range b.listeners {
				if listener == ch {
					b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
					b.numListeners.Store(int64(len(b.listeners)))
					close(listener)
					break
				}
			}
			b.l.Debug("removed listener",
				log.String("name", b.name), log.Int("len", len(b.listeners)))
		case msg, ok := <-b.source:
			if !ok {
				b.l.Debug("source closed", log.String("name", b.name))
				return
			}
			b.numRcv.Add(1)
			b.deliver(msg)
		}
	}
}

// deliver sends msg to all listeners. Listeners not ready within the send
// timeout miss this message.
func (b *broadcastServer[T]) deliver(msg T) {
	for _, listener := range b.listeners {
		timer := time.NewTimer(b.sendTimeout)
		select {
		case listener <- msg:
			b.numSnd.Add(1)
		case <-timer.C:
			b.numSkip.Add(1)
		}
		timer.Stop()
	}
}
