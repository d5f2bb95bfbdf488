// Package sink writes packet projections as JSON lines.
package sink

import (
	"context"
	"io"
	"sync"

	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/projection"
)

// JSONL writes one projection per line. It is safe for concurrent use.
type JSONL struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONL(w io.Writer) *JSONL {
	return &JSONL{w: w}
}

func (s *JSONL) Handle(_ context.Context, p packet.Packet) error {
	line := projection.JSON(p.Fields(), 0) + "\n"
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}
