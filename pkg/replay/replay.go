// Package replay feeds telemetry datagrams recorded in pcap or pcapng
// captures to a dispatcher.
package replay

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/listener"
)

// pcapng files start with the section header block type
var pcapngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

type Replay struct {
	dispatcher  listener.Dispatcher
	port        int
	speed       int
	fastForward time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	l           *log.Logger
}

// Result summarizes a replay run.
type Result struct {
	Frames    int // all frames of the capture
	Datagrams int // UDP datagrams passed to the dispatcher
	Duration  time.Duration
}

type Option func(*Replay)

// WithPort restricts the replay to UDP datagrams sent to port.
func WithPort(port int) Option {
	return func(r *Replay) {
		r.port = port
	}
}

// WithSpeed replays with the given speed factor. Speed 0 replays as fast as
// possible.
func WithSpeed(speed int) Option {
	return func(r *Replay) {
		r.speed = speed
	}
}

// WithFastForward replays the first d of the capture as fast as possible.
func WithFastForward(d time.Duration) Option {
	return func(r *Replay) {
		r.fastForward = d
	}
}

func WithLogger(l *log.Logger) Option {
	return func(r *Replay) {
		r.l = l
	}
}

func NewReplay(d listener.Dispatcher, opts ...Option) *Replay {
	ret := &Replay{
		dispatcher: d,
		speed:      1,
		sleep:      sleepCtx,
		l:          log.Default().Named("replay"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (r *Replay) ReplayFile(ctx context.Context, name string) (Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return r.ReplayReader(ctx, f)
}

// ReplayReader detects the capture format (pcap or pcapng) and replays it.
func (r *Replay) ReplayReader(ctx context.Context, in io.Reader) (Result, error) {
	br := bufio.NewReader(in)
	magic, err := br.Peek(len(pcapngMagic))
	if err != nil {
		return Result{}, fmt.Errorf("read capture header: %w", err)
	}
	var src gopacket.PacketDataSource
	var linkType layers.LinkType
	if bytes.Equal(magic, pcapngMagic) {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return Result{}, fmt.Errorf("open pcapng: %w", err)
		}
		src, linkType = ng, ng.LinkType()
	} else {
		pr, err := pcapgo.NewReader(br)
		if err != nil {
			return Result{}, fmt.Errorf("open pcap: %w", err)
		}
		src, linkType = pr, pr.LinkType()
	}
	return r.replay(ctx, gopacket.NewPacketSource(src, linkType))
}

//nolint:cyclop // by design
func (r *Replay) replay(ctx context.Context, ps *gopacket.PacketSource) (Result, error) {
	ret := Result{}
	var first, last time.Time
	start := time.Now()
	for {
		p, err := ps.NextPacket()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ret, fmt.Errorf("read frame %d: %w", ret.Frames+1, err)
		}
		ret.Frames++
		udp, ok := p.Layer(layers.LayerTypeUDP).(*layers.UDP)
		if !ok || len(udp.Payload) == 0 {
			continue
		}
		if r.port > 0 && int(udp.DstPort) != r.port {
			continue
		}

		ts := p.Metadata().Timestamp
		if first.IsZero() {
			first = ts
		}
		if !last.IsZero() && r.speed > 0 && ts.Sub(first) > r.fastForward {
			if delta := ts.Sub(last); delta > 0 {
				if err := r.sleep(ctx, delta/time.Duration(r.speed)); err != nil {
					return ret, err
				}
			}
		}
		last = ts

		// failures are logged and counted by the dispatcher
		_ = r.dispatcher.Dispatch(ctx, udp.Payload)
		ret.Datagrams++
		if ctx.Err() != nil {
			return ret, ctx.Err()
		}
	}
	ret.Duration = time.Since(start)
	r.l.Info("replay done",
		log.Int("frames", ret.Frames),
		log.Int("datagrams", ret.Datagrams),
		log.Duration("capture", last.Sub(first)),
		log.Duration("duration", ret.Duration))
	return ret, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
