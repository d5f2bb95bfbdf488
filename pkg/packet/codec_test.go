//nolint:funlen,lll // ok for tests
package packet_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func decodeAs[P packet.Packet](t *testing.T, year enums.Year, id packet.ID, payload []byte) P {
	t.Helper()
	p, err := packet.Decode(basedata.SampleHeader(year, id), payload)
	require.NoError(t, err)
	ret, ok := p.(P)
	require.True(t, ok, "unexpected packet type %T", p)
	return ret
}

func TestCarDamageZeroed(t *testing.T) {
	for _, year := range enums.SupportedYears {
		t.Run(year.String(), func(t *testing.T) {
			p := decodeAs[*packet.CarDamage](t, year, packet.IDCarDamage, basedata.ZeroPayload(year, packet.IDCarDamage))
			cars, ok := p.Fields()["car-damage-data"].([]map[string]any)
			require.True(t, ok)
			require.Len(t, cars, packet.NumCars)
			for _, c := range cars {
				assert.Equal(t, [4]float32{}, c["tyres-wear"])
				assert.Equal(t, false, c["engine-blown"])
				assert.Equal(t, false, c["engine-seized"])
				_, hasBlisters := c["tyre-blisters"]
				assert.Equal(t, year >= enums.Year25, hasBlisters)
			}
		})
	}
}

func TestButtonEvent(t *testing.T) {
	p := decodeAs[*packet.Event](t, enums.Year24, packet.IDEvent,
		basedata.EventPayload(enums.EventButtons, 0x00, 0x00, 0x10, 0x00))
	assert.Equal(t, enums.EventButtons, p.Code)
	d, ok := p.Detail.(packet.Buttons)
	require.True(t, ok)
	assert.Equal(t, enums.ButtonFlags(0x00100000), d.ButtonStatus)
	assert.True(t, d.ButtonStatus.ActionPressed(1))
	assert.False(t, d.ButtonStatus.ActionPressed(2))
	assert.Empty(t, d.ButtonStatus.Buttons())

	f := p.Fields()
	assert.Equal(t, "BUTN", f["event-string-code"])
	assert.Equal(t, "Button Status", f["event-name"])
	assert.Equal(t, map[string]any{
		"button-status": uint32(0x00100000),
		"buttons":       []string{},
		"udp-actions":   []int{1},
	}, f["event-details"])
}

func TestEventCodes(t *testing.T) {
	tests := []struct {
		name    string
		year    enums.Year
		payload []byte
		want    packet.EventDetail
		wantErr error
	}{
		{"session started", enums.Year23, basedata.EventPayload(enums.EventSessionStarted), nil, nil},
		{"drs disabled has no detail", enums.Year25, basedata.EventPayload(enums.EventDRSDisabled, 1, 2, 3), nil, nil},
		{"fastest lap", enums.Year23, basedata.EventPayload(enums.EventFastestLap, 4, 0x00, 0x00, 0xb4, 0x42), packet.FastestLap{VehicleIdx: 4, LapTime: 90}, nil},
		{"retirement 24", enums.Year24, basedata.EventPayload(enums.EventRetirement, 7, 3), packet.Retirement{VehicleIdx: 7}, nil},
		{"overtake", enums.Year24, basedata.EventPayload(enums.EventOvertake, 1, 2), packet.Overtake{OvertakingVehicleIdx: 1, BeingOvertakenVehicleIdx: 2}, nil},
		{"collision 24", enums.Year24, basedata.EventPayload(enums.EventCollision, 5, 6), packet.Collision{Vehicle1Idx: 5, Vehicle2Idx: 6}, nil},
		{"collision 23", enums.Year23, basedata.EventPayload(enums.EventCollision, 5, 6), nil, packet.ErrUnknownEventCode},
		{"safety car 23", enums.Year23, basedata.EventPayload(enums.EventSafetyCar), nil, packet.ErrUnknownEventCode},
		{"unknown tag", enums.Year25, basedata.EventPayload("ABCD"), nil, packet.ErrUnknownEventCode},
		{"lower case tag", enums.Year25, basedata.EventPayload("ssta"), nil, packet.ErrUnknownEventCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := packet.DecodeEvent(basedata.SampleHeader(tt.year, packet.IDEvent), tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Detail)
		})
	}
}

func TestRetirementReason(t *testing.T) {
	p := decodeAs[*packet.Event](t, enums.Year25, packet.IDEvent,
		basedata.EventPayload(enums.EventRetirement, 7, 3))
	d, ok := p.Detail.(packet.Retirement)
	require.True(t, ok)
	reason, ok := d.Reason.Get()
	require.True(t, ok)
	assert.Equal(t, enums.ResultReason(3), reason)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, basedata.EventPayload(enums.EventRetirement, 7, 3), b)
}

func TestLapDataStatus(t *testing.T) {
	const recordSize = 57
	payload := basedata.ZeroPayload(enums.Year24, packet.IDLapData)
	payload[34] = 1
	payload[44] = 4
	payload[recordSize+34] = 7 // not defined (yet)
	payload[recordSize+44] = 2

	p := decodeAs[*packet.LapData](t, enums.Year24, packet.IDLapData, payload)
	assert.Equal(t, enums.PitStatusPitting, p.Cars[0].PitStatus)
	assert.Equal(t, enums.DriverStatusOnTrack, p.Cars[0].DriverStatus)

	cars, ok := p.Fields()["lap-data"].([]map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PITTING", cars[0]["pit-status"])
	assert.Equal(t, "ON_TRACK", cars[0]["driver-status"])
	assert.Equal(t, "UNKNOWN(7)", cars[1]["pit-status"])
	assert.Equal(t, "IN_LAP", cars[1]["driver-status"])
	assert.False(t, p.Cars[1].PitStatus.Known())

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, payload, b, "unknown codes are kept")
}

func TestLapDataMinutesParts(t *testing.T) {
	p := &packet.LapData{PacketHeader: basedata.SampleHeader(enums.Year23, packet.IDLapData)}
	p.Cars[0].Sector1TimeMinutesPart = 1
	p.Cars[0].Sector1TimeMSPart = 2_345
	assert.Equal(t, uint32(62_345), p.Cars[0].Sector1TimeInMS())

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	p2 := decodeAs[*packet.LapData](t, enums.Year23, packet.IDLapData, b)
	_, ok := p2.Cars[0].DeltaToRaceLeaderMinutesPart.Get()
	assert.False(t, ok)
	_, ok = p2.Cars[0].SpeedTrapFastestSpeed.Get()
	assert.False(t, ok)
	assert.NotContains(t, p2.Cars[0].Fields(), "speed-trap-fastest-speed")

	p3 := decodeAs[*packet.LapData](t, enums.Year24, packet.IDLapData, basedata.ZeroPayload(enums.Year24, packet.IDLapData))
	_, ok = p3.Cars[0].DeltaToRaceLeaderMinutesPart.Get()
	assert.True(t, ok)
	assert.Contains(t, p3.Cars[0].Fields(), "speed-trap-fastest-speed")
}

func TestSessionHistory(t *testing.T) {
	for _, year := range enums.SupportedYears {
		t.Run(year.String(), func(t *testing.T) {
			src := basedata.SampleSessionHistory(year, 5, 2)
			b, err := src.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, uint8(5), b[1])
			assert.Equal(t, uint8(2), b[2])

			p := decodeAs[*packet.SessionHistory](t, year, packet.IDSessionHistory, b)
			assert.Len(t, p.LapHistoryData, 5)
			assert.Len(t, p.TyreStintsHistory, 2)
			if diff := cmp.Diff(src, p); diff != "" {
				t.Errorf("SessionHistory mismatch (-want +got):\n%s", diff)
			}

			f := p.Fields()
			assert.Equal(t, 5, f["num-laps"])
			laps, ok := f["lap-history-data"].([]map[string]any)
			require.True(t, ok)
			assert.Equal(t, uint32(30_400), laps[4]["sector-3-time-in-ms"])
			assert.Equal(t, true, laps[4]["sector-3-valid"])
		})
	}
}

func TestSessionHistoryClampsCounts(t *testing.T) {
	payload := basedata.ZeroPayload(enums.Year25, packet.IDSessionHistory)
	payload[1] = 200 // num laps
	payload[2] = 9   // num tyre stints

	p := decodeAs[*packet.SessionHistory](t, enums.Year25, packet.IDSessionHistory, payload)
	assert.Len(t, p.LapHistoryData, 100)
	assert.Len(t, p.TyreStintsHistory, 8)
}

func TestParticipants(t *testing.T) {
	tests := []struct {
		year          enums.Year
		wantTechLevel bool
		wantColours   bool
		wantTeam      string
	}{
		{enums.Year23, false, false, "Mercedes"},
		{enums.Year24, true, false, "Mercedes"},
		{enums.Year25, true, true, "Mercedes"},
	}
	for _, tt := range tests {
		t.Run(tt.year.String(), func(t *testing.T) {
			src := basedata.SampleParticipants(tt.year)
			b, err := src.MarshalBinary()
			require.NoError(t, err)
			size, _ := packet.PayloadSize(tt.year, packet.IDParticipants)
			require.Len(t, b, size)

			p := decodeAs[*packet.Participants](t, tt.year, packet.IDParticipants, b)
			if diff := cmp.Diff(src, p, exportAll); diff != "" {
				t.Errorf("Participants mismatch (-want +got):\n%s", diff)
			}
			assert.Len(t, p.Active(), 2)

			techLevel, ok := p.Participants[0].TechLevel.Get()
			assert.Equal(t, tt.wantTechLevel, ok)
			if ok {
				assert.Equal(t, uint16(1520), techLevel)
			}

			f := p.Participants[0].Fields()
			assert.Equal(t, "HAMILTON", f["name"])
			assert.Equal(t, "British", f["nationality"])
			assert.Equal(t, tt.wantTeam, f["team-id"])
			assert.Equal(t, tt.wantTechLevel, f["tech-level"] != nil)
			assert.Equal(t, tt.wantColours, f["livery-colours"] != nil)
		})
	}
}

func TestParticipantNameFullWidth(t *testing.T) {
	src := basedata.SampleParticipants(enums.Year25)
	src.Participants[0].Name = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345" // 32 bytes, no terminator
	src.Participants[1].Name = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b, err := src.MarshalBinary()
	require.NoError(t, err)

	p := decodeAs[*packet.Participants](t, enums.Year25, packet.IDParticipants, b)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345", p.Participants[0].Name)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345", p.Participants[1].Name, "names are cut to the field width")
}

func TestLobbyInfoTruncated(t *testing.T) {
	for _, year := range enums.SupportedYears {
		t.Run(year.String(), func(t *testing.T) {
			payload := basedata.ZeroPayload(year, packet.IDLobbyInfo)
			payload[0] = 3
			p := decodeAs[*packet.LobbyInfo](t, year, packet.IDLobbyInfo, payload)
			assert.Len(t, p.Players, 3)
			assert.Equal(t, 3, p.Fields()["num-players"])

			b, err := p.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, payload, b)
		})
	}
}

func TestLapPositions(t *testing.T) {
	payload := basedata.ZeroPayload(enums.Year25, packet.IDLapPositions)
	payload[0] = 3  // num laps
	payload[1] = 10 // lap start
	payload[2+packet.NumCars+5] = 7

	p := decodeAs[*packet.LapPositions](t, enums.Year25, packet.IDLapPositions, payload)
	require.Len(t, p.Positions, 3)
	assert.Equal(t, uint8(10), p.LapStart)
	assert.Equal(t, uint8(7), p.Positions[1][5])

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestTyreSetsFitted(t *testing.T) {
	payload := basedata.ZeroPayload(enums.Year24, packet.IDTyreSets)
	const setSize = 10
	payload[1+2*setSize] = uint8(enums.ActualTyreC4)
	payload[len(payload)-1] = 2

	p := decodeAs[*packet.TyreSets](t, enums.Year24, packet.IDTyreSets, payload)
	fitted, ok := p.Fitted()
	require.True(t, ok)
	assert.Equal(t, enums.ActualTyreC4, fitted.ActualTyreCompound)

	p.FittedIdx = 255
	_, ok = p.Fitted()
	assert.False(t, ok)
}

func TestCarStatusERS(t *testing.T) {
	p := &packet.CarStatus{PacketHeader: basedata.SampleHeader(enums.Year24, packet.IDCarStatus)}
	p.Cars[0].ERSStoreEnergy = packet.MaxERSStoreEnergy / 4
	assert.InDelta(t, 25.0, p.Cars[0].ERSStorePercent(), 0.001)

	cars, ok := p.Fields()["car-status-data"].([]map[string]any)
	require.True(t, ok)
	assert.Equal(t, packet.MaxERSStoreEnergy, cars[0]["ers-max-capacity"])
}

func TestSessionWeekendStructure(t *testing.T) {
	payload := basedata.ZeroPayload(enums.Year24, packet.IDSession)
	// num sessions in weekend, followed by 12 session types and 2 floats
	off := len(payload) - 8 - 12 - 1
	payload[off] = 2
	payload[off+1] = 1
	payload[off+2] = 15
	binary.LittleEndian.PutUint32(payload[len(payload)-4:], 0x447a0000) // 1000.0

	p := decodeAs[*packet.Session](t, enums.Year24, packet.IDSession, payload)
	weekend, ok := p.WeekendStructure.Get()
	require.True(t, ok)
	require.Len(t, weekend, 2)
	assert.Equal(t, "Practice 1", weekend[0].String())
	assert.True(t, weekend[1].IsRace())
	s3, _ := p.Sector3LapDistanceStart.Get()
	assert.InDelta(t, 1000.0, s3, 0.001)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, payload, b)

	p23 := decodeAs[*packet.Session](t, enums.Year23, packet.IDSession, basedata.ZeroPayload(enums.Year23, packet.IDSession))
	_, ok = p23.WeekendStructure.Get()
	assert.False(t, ok)
	assert.NotContains(t, p23.Fields(), "weekend-structure")
}
