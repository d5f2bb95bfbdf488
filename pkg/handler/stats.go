package handler

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/packet"
)

// error kinds used by Stats
const (
	ErrKindLength       = "invalid-length"
	ErrKindPacketID     = "unknown-packet-id"
	ErrKindEventCode    = "unknown-event-code"
	ErrKindFormat       = "unsupported-format"
	ErrKindHandler      = "handler"
	ErrKindUnclassified = "other"
)

// Stats counts processed datagrams per packet and failures per error kind.
// It is safe for concurrent use.
type Stats struct {
	mu      sync.Mutex
	packets map[string]int64
	errors  map[string]int64
	skipped int64
	bytes   int64
}

type StatsSnapshot struct {
	Packets map[string]int64
	Errors  map[string]int64
	Skipped int64
	Bytes   int64
}

func NewStats() *Stats {
	return &Stats{packets: map[string]int64{}, errors: map[string]int64{}}
}

func (s *Stats) AddPacket(id packet.ID, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packets[id.String()]++
	s.bytes += int64(size)
}

func (s *Stats) AddSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

func (s *Stats) AddError(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[kind]++
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := StatsSnapshot{
		Packets: make(map[string]int64, len(s.packets)),
		Errors:  make(map[string]int64, len(s.errors)),
		Skipped: s.skipped,
		Bytes:   s.bytes,
	}
	for k, v := range s.packets {
		ret.Packets[k] = v
	}
	for k, v := range s.errors {
		ret.Errors[k] = v
	}
	return ret
}

func (s *Stats) Log(l *log.Logger) {
	snap := s.Snapshot()
	l.Info("packet stats",
		log.Any("packets", snap.Packets),
		log.Any("errors", snap.Errors),
		log.Int64("skipped", snap.Skipped),
		log.Int64("bytes", snap.Bytes))
}

// RegisterMetrics exposes the counters as observable gauges with the
// packet name or error kind as attribute.
//
//nolint:lll // readability
func (s *Stats) RegisterMetrics(name string) error {
	meter := otel.GetMeterProvider().Meter("f1tel.handler." + name)
	observe := func(metricName, desc, attrKey string, values func(StatsSnapshot) map[string]int64) error {
		_, err := meter.Int64ObservableGauge(
			metricName,
			metric.WithDescription(desc),
			metric.WithUnit("{count}"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				for k, v := range values(s.Snapshot()) {
					o.Observe(v, metric.WithAttributes(
						attribute.String("source", name),
						attribute.String(attrKey, k)))
				}
				return nil
			}))
		return err
	}
	return errors.Join(
		observe("f1tel.packets", "Number of decoded packets", "packet",
			func(snap StatsSnapshot) map[string]int64 { return snap.Packets }),
		observe("f1tel.errors", "Number of failed datagrams", "kind",
			func(snap StatsSnapshot) map[string]int64 { return snap.Errors }),
	)
}

// ErrorKind classifies errors returned by the packet decoder.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, packet.ErrInvalidLength):
		return ErrKindLength
	case errors.Is(err, packet.ErrUnknownPacketID):
		return ErrKindPacketID
	case errors.Is(err, packet.ErrUnknownEventCode):
		return ErrKindEventCode
	case errors.Is(err, packet.ErrUnsupportedFormat):
		return ErrKindFormat
	default:
		return ErrKindUnclassified
	}
}
