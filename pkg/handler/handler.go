// Package handler connects datagram sources (listener, replay) with the
// consumers of decoded packets.
package handler

import (
	"context"

	"github.com/mpapenbr/f1tel/pkg/packet"
)

// Handler processes decoded packets.
type Handler interface {
	Handle(ctx context.Context, p packet.Packet) error
}

type Func func(ctx context.Context, p packet.Packet) error

func (f Func) Handle(ctx context.Context, p packet.Packet) error {
	return f(ctx, p)
}
