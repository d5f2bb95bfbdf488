// Package basedata provides sample packets and datagrams for tests.
package basedata

import (
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
)

const SampleSessionUID = 0x1234_5678_9abc_def0

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

// SampleHeader returns a header of a running session.
func SampleHeader(year enums.Year, id packet.ID) packet.Header {
	h := packet.NewHeader(year, id)
	h.GameMajorVersion = 1
	h.GameMinorVersion = 5
	h.SessionUID = SampleSessionUID
	h.SessionTime = 123.5
	h.FrameIdentifier = 4711
	h.OverallFrameIdentifier = 4712
	h.PlayerCarIndex = 3
	return h
}

// ZeroPayload returns an all zero payload of the packet, which is valid for all
// packet types except events. Events get the SSTA tag.
func ZeroPayload(year enums.Year, id packet.ID) []byte {
	size, ok := packet.PayloadSize(year, id)
	if !ok {
		return nil
	}
	b := make([]byte, size)
	if id == packet.IDEvent {
		copy(b, enums.EventSessionStarted)
	}
	return b
}

// SampleDatagram returns header and zero payload of a packet.
func SampleDatagram(year enums.Year, id packet.ID) []byte {
	return append(SampleHeader(year, id).Bytes(), ZeroPayload(year, id)...)
}

// EventPayload returns the payload of an event packet with the given detail bytes.
func EventPayload(code enums.EventCode, detail ...byte) []byte {
	b := make([]byte, 16)
	copy(b, code)
	copy(b[4:], detail)
	return b
}

func SampleParticipants(year enums.Year) *packet.Participants {
	p := &packet.Participants{
		PacketHeader:  SampleHeader(year, packet.IDParticipants),
		NumActiveCars: 2,
	}
	p.Participants[0] = packet.ParticipantData{
		DriverID:        9,
		NetworkID:       0,
		Team:            enums.TeamFrom(year, 0),
		MyTeam:          false,
		RaceNumber:      44,
		Nationality:     10,
		Name:            "HAMILTON",
		YourTelemetry:   enums.TelemetryPublic,
		ShowOnlineNames: true,
		Platform:        enums.PlatformSteam,
	}
	p.Participants[1] = packet.ParticipantData{
		AIControlled:  true,
		DriverID:      0,
		Team:          enums.TeamFrom(year, 1),
		RaceNumber:    16,
		Nationality:   53,
		Name:          "LECLERC",
		YourTelemetry: enums.TelemetryRestricted,
		Platform:      enums.PlatformUnknown,
	}
	for i := 2; i < packet.NumCars; i++ {
		p.Participants[i].Team = enums.TeamFrom(year, 0)
	}
	if year >= enums.Year24 {
		for i := range p.Participants {
			p.Participants[i].TechLevel = omit.From(uint16(0))
		}
		p.Participants[0].TechLevel = omit.From(uint16(1520))
	}
	if year >= enums.Year25 {
		for i := range p.Participants {
			p.Participants[i].LiveryColours = omit.From([]packet.LiveryColour{})
		}
		p.Participants[0].LiveryColours = omit.From([]packet.LiveryColour{{Red: 0, Green: 210, Blue: 190}})
	}
	return p
}

// SampleSessionHistory returns the history of car 3 with the given number
// of laps and stints.
func SampleSessionHistory(year enums.Year, numLaps, numStints int) *packet.SessionHistory {
	p := &packet.SessionHistory{
		PacketHeader:      SampleHeader(year, packet.IDSessionHistory),
		CarIdx:            3,
		BestLapTimeLapNum: 2,
		BestSector1LapNum: 1,
		BestSector2LapNum: 2,
		BestSector3LapNum: 2,
		LapHistoryData:    make([]packet.LapHistoryData, numLaps),
		TyreStintsHistory: make([]packet.TyreStint, numStints),
	}
	for i := range p.LapHistoryData {
		p.LapHistoryData[i] = packet.LapHistoryData{
			LapTimeInMS:       uint32(90_000 + i*100),
			Sector1TimeMSPart: 30_000,
			Sector2TimeMSPart: 30_000,
			Sector3TimeMSPart: uint16(30_000 + i*100),
			LapValidBitFlags:  packet.LapValid | packet.Sector1Valid | packet.Sector2Valid | packet.Sector3Valid,
		}
	}
	for i := range p.TyreStintsHistory {
		p.TyreStintsHistory[i] = packet.TyreStint{
			EndLap:             uint8(10 * (i + 1)),
			TyreActualCompound: enums.ActualTyreC3,
			TyreVisualCompound: enums.VisualTyreMedium,
		}
	}
	if numStints > 0 {
		p.TyreStintsHistory[numStints-1].EndLap = 255
	}
	return p
}
