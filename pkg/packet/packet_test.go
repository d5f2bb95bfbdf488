//nolint:funlen,lll,gocritic // ok for tests
package packet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

type packetCase struct {
	year enums.Year
	id   packet.ID
}

func (c packetCase) String() string { return fmt.Sprintf("%d/%s", c.year, c.id) }

func allPackets() []packetCase {
	ret := []packetCase{}
	for _, year := range enums.SupportedYears {
		for _, id := range packet.IDs(year) {
			ret = append(ret, packetCase{year, id})
		}
	}
	return ret
}

func TestIDs(t *testing.T) {
	assert.Len(t, packet.IDs(enums.Year23), 14)
	assert.Len(t, packet.IDs(enums.Year24), 15)
	assert.Len(t, packet.IDs(enums.Year25), 16)
	assert.Equal(t, "lap-data", packet.IDLapData.String())
	assert.Equal(t, "UNKNOWN(16)", packet.ID(16).String())
}

func TestDecodeZeroPayloads(t *testing.T) {
	for _, tc := range allPackets() {
		t.Run(tc.String(), func(t *testing.T) {
			payload := basedata.ZeroPayload(tc.year, tc.id)
			h := basedata.SampleHeader(tc.year, tc.id)
			p, err := packet.Decode(h, payload)
			require.NoError(t, err)
			assert.Equal(t, h, p.Header())

			b, err := p.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, payload, b)
			assert.NotEmpty(t, p.Fields())
		})
	}
}

func TestPayloadLengthMismatch(t *testing.T) {
	for _, tc := range allPackets() {
		t.Run(tc.String(), func(t *testing.T) {
			payload := basedata.ZeroPayload(tc.year, tc.id)
			h := basedata.SampleHeader(tc.year, tc.id)
			for _, b := range [][]byte{payload[:len(payload)-1], append(payload, 0), {}} {
				p, err := packet.Decode(h, b)
				assert.Nil(t, p)
				require.ErrorIs(t, err, packet.ErrInvalidLength)
				var lenErr *packet.LengthError
				require.ErrorAs(t, err, &lenErr)
				assert.Equal(t, len(payload), lenErr.Want)
				assert.Equal(t, len(b), lenErr.Got)
			}
		})
	}
}

func TestPayloadSize(t *testing.T) {
	tests := []struct {
		year   enums.Year
		id     packet.ID
		want   int
		wantOk bool
	}{
		{enums.Year23, packet.IDSession, 615, true},
		{enums.Year24, packet.IDSession, 724, true},
		{enums.Year25, packet.IDParticipants, 1255, true},
		{enums.Year25, packet.IDLobbyInfo, 925, true},
		{enums.Year23, packet.IDTimeTrial, 0, false},
		{enums.Year24, packet.IDLapPositions, 0, false},
		{enums.Year25, packet.ID(16), 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", tt.year, tt.id), func(t *testing.T) {
			got, ok := packet.PayloadSize(tt.year, tt.id)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeDatagram(t *testing.T) {
	for _, tc := range allPackets() {
		t.Run(tc.String(), func(t *testing.T) {
			b := basedata.SampleDatagram(tc.year, tc.id)
			p, err := packet.DecodeDatagram(b)
			require.NoError(t, err)
			assert.Equal(t, tc.id, p.Header().PacketID)
			assert.Equal(t, tc.year, p.Header().Year())

			enc, err := packet.Encode(p)
			require.NoError(t, err)
			assert.Equal(t, b, enc)
		})
	}
}

func TestDecodeDatagramErrors(t *testing.T) {
	valid := basedata.SampleDatagram(enums.Year24, packet.IDCarDamage)

	_, err := packet.DecodeDatagram(valid[:10])
	require.ErrorIs(t, err, packet.ErrInvalidLength)

	_, err = packet.DecodeDatagram(valid[:len(valid)-1])
	require.ErrorIs(t, err, packet.ErrInvalidLength)

	unknownID := append([]byte{}, valid...)
	unknownID[6] = 16
	_, err = packet.DecodeDatagram(unknownID)
	require.ErrorIs(t, err, packet.ErrUnknownPacketID)

	unsupported := append([]byte{}, valid...)
	unsupported[0], unsupported[1] = 0xe6, 0x07 // 2022
	_, err = packet.DecodeDatagram(unsupported)
	require.ErrorIs(t, err, packet.ErrUnsupportedFormat)
}

func TestDecodeRejectsPacketsOfLaterYears(t *testing.T) {
	h := basedata.SampleHeader(enums.Year23, packet.IDTimeTrial)
	_, err := packet.Decode(h, make([]byte, 72))
	require.ErrorIs(t, err, packet.ErrUnknownPacketID)

	h = basedata.SampleHeader(enums.Year24, packet.IDLapPositions)
	_, err = packet.Decode(h, make([]byte, 1102))
	require.ErrorIs(t, err, packet.ErrUnknownPacketID)
}

func TestEncodeErrorsAreNotLengthErrors(t *testing.T) {
	// decode errors of unknown event codes must not be mistaken for length errors
	h := basedata.SampleHeader(enums.Year24, packet.IDEvent)
	_, err := packet.Decode(h, basedata.EventPayload("XXXX"))
	require.ErrorIs(t, err, packet.ErrUnknownEventCode)
	assert.False(t, errors.Is(err, packet.ErrInvalidLength))
}

func TestIDFromName(t *testing.T) {
	for _, id := range packet.IDs(enums.Year25) {
		got, ok := packet.IDFromName(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := packet.IDFromName("telemetry")
	assert.False(t, ok)
}
