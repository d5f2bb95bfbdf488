//nolint:funlen // ok for tests
package packet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func TestParseHeader(t *testing.T) {
	raw := []byte{
		0xe8, 0x07, // 2024
		24, 1, 5, 1,
		2, // lap data
		0xf0, 0xde, 0xbc, 0x9a, 0x78, 0x56, 0x34, 0x12,
		0x00, 0x00, 0xf7, 0x42, // 123.5
		0x67, 0x12, 0x00, 0x00,
		0x68, 0x12, 0x00, 0x00,
		3, 255,
	}
	require.Len(t, raw, packet.HeaderSize)

	h, err := packet.ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, basedata.SampleHeader(enums.Year24, packet.IDLapData), h)
	assert.Equal(t, enums.Year24, h.Year())
	assert.Equal(t, raw, h.Bytes())
}

func TestParseHeaderErrors(t *testing.T) {
	valid := basedata.SampleHeader(enums.Year25, packet.IDLapPositions).Bytes()

	tests := []struct {
		name    string
		input   func() []byte
		wantErr error
	}{
		{"too short", func() []byte { return valid[:28] }, packet.ErrInvalidLength},
		{"too long", func() []byte { return append(append([]byte{}, valid...), 0) }, packet.ErrInvalidLength},
		{"unsupported format", func() []byte {
			b := append([]byte{}, valid...)
			b[0], b[1] = 0xe6, 0x07
			return b
		}, packet.ErrUnsupportedFormat},
		{"unknown packet id", func() []byte {
			b := append([]byte{}, valid...)
			b[6] = 200
			return b
		}, packet.ErrUnknownPacketID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := packet.ParseHeader(tt.input())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHeaderFields(t *testing.T) {
	f := basedata.SampleHeader(enums.Year23, packet.IDCarStatus).Fields()
	assert.Equal(t, uint16(2023), f["packet-format"])
	assert.Equal(t, "car-status", f["packet-id"])
	assert.Equal(t, uint64(basedata.SampleSessionUID), f["session-uid"])
	assert.Equal(t, uint8(255), f["secondary-player-car-index"])
}
