// Package packet decodes and encodes the packets of the F1 UDP telemetry format.
//
// Every packet starts with a 29 byte Header followed by a payload whose size is
// determined by the header's format year and packet id. The Decode functions
// expect the payload split off the header, DecodeDatagram accepts a complete
// datagram. All functions are pure: they never log and hold no shared state.
package packet

import (
	"fmt"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

// Packet is implemented by all decoded packets.
type Packet interface {
	Header() Header
	// MarshalBinary returns the payload bytes (without header)
	MarshalBinary() ([]byte, error)
	// Fields returns the projection of the packet using stable hyphenated keys
	Fields() map[string]any
}

type decodeFunc func(h Header, payload []byte) (Packet, error)

func register[P Packet](fn func(Header, []byte) (P, error)) decodeFunc {
	return func(h Header, payload []byte) (Packet, error) {
		p, err := fn(h, payload)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

var decoders = map[ID]decodeFunc{
	IDMotion:              register(DecodeMotion),
	IDSession:             register(DecodeSession),
	IDLapData:             register(DecodeLapData),
	IDEvent:               register(DecodeEvent),
	IDParticipants:        register(DecodeParticipants),
	IDCarSetups:           register(DecodeCarSetups),
	IDCarTelemetry:        register(DecodeCarTelemetry),
	IDCarStatus:           register(DecodeCarStatus),
	IDFinalClassification: register(DecodeFinalClassification),
	IDLobbyInfo:           register(DecodeLobbyInfo),
	IDCarDamage:           register(DecodeCarDamage),
	IDSessionHistory:      register(DecodeSessionHistory),
	IDTyreSets:            register(DecodeTyreSets),
	IDMotionEx:            register(DecodeMotionEx),
	IDTimeTrial:           register(DecodeTimeTrial),
	IDLapPositions:        register(DecodeLapPositions),
}

// Decode decodes the payload of the packet described by h.
func Decode(h Header, payload []byte) (Packet, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	dec, ok := decoders[h.PacketID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPacketID, uint8(h.PacketID))
	}
	return dec(h, payload)
}

// DecodeDatagram decodes a complete datagram (header and payload).
func DecodeDatagram(b []byte) (Packet, error) {
	if len(b) < HeaderSize {
		return nil, &LengthError{Packet: "header", Want: HeaderSize, Got: len(b)}
	}
	h, err := ParseHeader(b[:HeaderSize])
	if err != nil {
		return nil, err
	}
	return Decode(h, b[HeaderSize:])
}

// Encode returns the complete datagram of p.
func Encode(p Packet) ([]byte, error) {
	payload, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(p.Header().Bytes(), payload...), nil
}

var payloadSizes = map[ID][3]int{
	IDMotion:              {1320, 1320, 1320},
	IDSession:             {615, 724, 724},
	IDLapData:             {1102, 1256, 1256},
	IDEvent:               {16, 16, 16},
	IDParticipants:        {1277, 1321, 1255},
	IDCarSetups:           {1078, 1104, 1104},
	IDCarTelemetry:        {1323, 1323, 1323},
	IDCarStatus:           {1210, 1210, 1210},
	IDFinalClassification: {991, 991, 1013},
	IDLobbyInfo:           {1189, 1277, 925},
	IDCarDamage:           {924, 924, 1012},
	IDSessionHistory:      {1431, 1431, 1431},
	IDTyreSets:            {202, 202, 202},
	IDMotionEx:            {188, 208, 244},
	IDTimeTrial:           {0, 72, 72},
	IDLapPositions:        {0, 0, 1102},
}

// PayloadSize returns the payload size of a packet in the given year.
func PayloadSize(year enums.Year, id ID) (int, bool) {
	if !id.ValidFor(year) || year < enums.Year23 || year > enums.Year25 {
		return 0, false
	}
	return payloadSizes[id][year-enums.Year23], true
}
