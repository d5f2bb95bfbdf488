// Package publish sends packet projections to NATS.
package publish

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/projection"
)

const (
	HeaderSourceID   = "F1tel-Source-Id"
	HeaderSessionUID = "F1tel-Session-Uid"
	HeaderFrame      = "F1tel-Frame"
)

// Conn is the part of *nats.Conn used by the publisher.
type Conn interface {
	PublishMsg(m *nats.Msg) error
}

type Publisher struct {
	conn     Conn
	prefix   string
	sourceID string
	l        *log.Logger
}

type Option func(*Publisher)

func WithSubjectPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithSourceID sets the id sent with every message. A random id is used by default.
func WithSourceID(id string) Option {
	return func(p *Publisher) {
		if id != "" {
			p.sourceID = id
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Publisher) {
		p.l = l
	}
}

func NewPublisher(conn Conn, opts ...Option) *Publisher {
	ret := &Publisher{
		conn:     conn,
		prefix:   "f1tel",
		sourceID: uuid.New().String(),
		l:        log.Default().Named("publish"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Connect opens a NATS connection which reconnects forever.
func Connect(url string) (*nats.Conn, error) {
	l := log.Default().Named("nats")
	return nats.Connect(url,
		nats.Name("f1tel"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				l.Warn("disconnected", log.ErrorField(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			l.Info("reconnected", log.String("url", c.ConnectedUrl()))
		}),
	)
}

// Subject returns <prefix>.<year>.<packet-name> for the header.
func Subject(prefix string, h packet.Header) string {
	return fmt.Sprintf("%s.%d.%s", prefix, h.Year(), h.PacketID)
}

func (p *Publisher) SourceID() string { return p.sourceID }

func (p *Publisher) Handle(_ context.Context, pkt packet.Packet) error {
	h := pkt.Header()
	msg := nats.NewMsg(Subject(p.prefix, h))
	msg.Data = []byte(projection.JSON(pkt.Fields(), 0))
	msg.Header.Set(HeaderSourceID, p.sourceID)
	msg.Header.Set(HeaderSessionUID, strconv.FormatUint(h.SessionUID, 10))
	msg.Header.Set(HeaderFrame, strconv.FormatUint(uint64(h.OverallFrameIdentifier), 10))
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	return nil
}
