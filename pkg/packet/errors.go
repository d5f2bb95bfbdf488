package packet

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength     = errors.New("invalid length")
	ErrUnknownPacketID   = errors.New("unknown packet id")
	ErrUnknownEventCode  = errors.New("unknown event code")
	ErrUnsupportedFormat = errors.New("unsupported packet format")
)

// LengthError is returned when a buffer does not have the exact size
// required by the packet layout. It matches ErrInvalidLength with errors.Is.
type LengthError struct {
	Packet string
	Want   int
	Got    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: invalid length: want %d bytes, got %d", e.Packet, e.Want, e.Got)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }
