package packet

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

const HeaderSize = 29

// Header is the common prefix of every packet.
type Header struct {
	PacketFormat            uint16
	GameYear                uint8
	GameMajorVersion        uint8
	GameMinorVersion        uint8
	PacketVersion           uint8
	PacketID                ID
	SessionUID              uint64
	SessionTime             float32
	FrameIdentifier         uint32
	OverallFrameIdentifier  uint32
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex uint8
}

// NewHeader returns a header for the given format year and packet id.
// The remaining fields are zero, except the secondary player index which
// is 255 (no secondary player).
func NewHeader(year enums.Year, id ID) Header {
	return Header{
		PacketFormat:            year.PacketFormat(),
		GameYear:                uint8(year),
		PacketVersion:           1,
		PacketID:                id,
		SecondaryPlayerCarIndex: 255,
	}
}

// ParseHeader decodes the 29 header bytes. It fails for unsupported packet
// formats and for packet ids not defined in the header's format year.
func ParseHeader(b []byte) (Header, error) {
	var h Header
	if err := decodeWire("header", b, &h); err != nil {
		return Header{}, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) Validate() error {
	year, ok := enums.YearFromPacketFormat(h.PacketFormat)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, h.PacketFormat)
	}
	if !h.PacketID.ValidFor(year) {
		return fmt.Errorf("%w: %d (%s)", ErrUnknownPacketID, uint8(h.PacketID), year)
	}
	return nil
}

// Year returns the format year of the header, 0 for unsupported formats.
func (h Header) Year() enums.Year {
	year, _ := enums.YearFromPacketFormat(h.PacketFormat)
	return year
}

// Bytes returns the wire representation of the header.
func (h Header) Bytes() []byte {
	le := binary.LittleEndian
	b := make([]byte, 0, HeaderSize)
	b = le.AppendUint16(b, h.PacketFormat)
	b = append(b, h.GameYear, h.GameMajorVersion, h.GameMinorVersion, h.PacketVersion, uint8(h.PacketID))
	b = le.AppendUint64(b, h.SessionUID)
	b = le.AppendUint32(b, math.Float32bits(h.SessionTime))
	b = le.AppendUint32(b, h.FrameIdentifier)
	b = le.AppendUint32(b, h.OverallFrameIdentifier)
	return append(b, h.PlayerCarIndex, h.SecondaryPlayerCarIndex)
}

func (h Header) Fields() map[string]any {
	return map[string]any{
		"packet-format":              h.PacketFormat,
		"game-year":                  h.GameYear,
		"game-major-version":         h.GameMajorVersion,
		"game-minor-version":         h.GameMinorVersion,
		"packet-version":             h.PacketVersion,
		"packet-id":                  h.PacketID.String(),
		"session-uid":                h.SessionUID,
		"session-time":               h.SessionTime,
		"frame-identifier":           h.FrameIdentifier,
		"overall-frame-identifier":   h.OverallFrameIdentifier,
		"player-car-index":           h.PlayerCarIndex,
		"secondary-player-car-index": h.SecondaryPlayerCarIndex,
	}
}
