package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

const (
	nameSize23      = 48
	nameSize25      = 32
	maxLiveryColour = 4
)

type LiveryColour struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c LiveryColour) Fields() map[string]any {
	return map[string]any{"red": c.Red, "green": c.Green, "blue": c.Blue}
}

type ParticipantData struct {
	AIControlled    bool
	DriverID        uint8 // 255 for network humans
	NetworkID       uint8
	Team            enums.Team
	MyTeam          bool
	RaceNumber      uint8
	Nationality     enums.Nationality
	Name            string
	YourTelemetry   enums.TelemetrySetting
	ShowOnlineNames bool
	TechLevel       omit.Val[uint16] // since F1 24
	Platform        enums.Platform
	LiveryColours   omit.Val[[]LiveryColour] // since F1 25
}

func (d ParticipantData) Fields() map[string]any {
	ret := map[string]any{
		"ai-controlled":     d.AIControlled,
		"driver-id":         d.DriverID,
		"network-id":        d.NetworkID,
		"team-id":           enumString(d.Team),
		"my-team":           d.MyTeam,
		"race-number":       d.RaceNumber,
		"nationality":       d.Nationality.String(),
		"name":              d.Name,
		"your-telemetry":    d.YourTelemetry.String(),
		"show-online-names": d.ShowOnlineNames,
		"platform":          d.Platform.String(),
	}
	setOpt(ret, "tech-level", d.TechLevel)
	if c, ok := d.LiveryColours.Get(); ok {
		ret["num-colours"] = len(c)
		ret["livery-colours"] = fieldsOf(c)
	}
	return ret
}

type participantHeadWire struct {
	AIControlled bool
	DriverID     uint8
	NetworkID    uint8
	TeamID       uint8
	MyTeam       bool
	RaceNumber   uint8
	Nationality  enums.Nationality
}

type (
	participant23 struct {
		Head            participantHeadWire
		Name            [nameSize23]byte
		YourTelemetry   enums.TelemetrySetting
		ShowOnlineNames bool
		Platform        enums.Platform
	}
	participant24 struct {
		Head            participantHeadWire
		Name            [nameSize23]byte
		YourTelemetry   enums.TelemetrySetting
		ShowOnlineNames bool
		TechLevel       uint16
		Platform        enums.Platform
	}
	participant25 struct {
		Head            participantHeadWire
		Name            [nameSize25]byte
		YourTelemetry   enums.TelemetrySetting
		ShowOnlineNames bool
		TechLevel       uint16
		Platform        enums.Platform
		NumColours      uint8
		LiveryColours   [maxLiveryColour]LiveryColour
	}
)

func (w *participantHeadWire) value(year enums.Year) ParticipantData {
	return ParticipantData{
		AIControlled: w.AIControlled,
		DriverID:     w.DriverID,
		NetworkID:    w.NetworkID,
		Team:         enums.TeamFrom(year, w.TeamID),
		MyTeam:       w.MyTeam,
		RaceNumber:   w.RaceNumber,
		Nationality:  w.Nationality,
	}
}

func (d *ParticipantData) headWire() participantHeadWire {
	w := participantHeadWire{
		AIControlled: d.AIControlled,
		DriverID:     d.DriverID,
		NetworkID:    d.NetworkID,
		MyTeam:       d.MyTeam,
		RaceNumber:   d.RaceNumber,
		Nationality:  d.Nationality,
	}
	if d.Team != nil {
		w.TeamID = d.Team.Code()
	}
	return w
}

func (w *participant23) value() ParticipantData {
	d := w.Head.value(enums.Year23)
	d.Name = cString(w.Name[:])
	d.YourTelemetry = w.YourTelemetry
	d.ShowOnlineNames = w.ShowOnlineNames
	d.Platform = w.Platform
	return d
}

func (w *participant24) value() ParticipantData {
	d := w.Head.value(enums.Year24)
	d.Name = cString(w.Name[:])
	d.YourTelemetry = w.YourTelemetry
	d.ShowOnlineNames = w.ShowOnlineNames
	d.TechLevel = omit.From(w.TechLevel)
	d.Platform = w.Platform
	return d
}

func (w *participant25) value() ParticipantData {
	d := w.Head.value(enums.Year25)
	d.Name = cString(w.Name[:])
	d.YourTelemetry = w.YourTelemetry
	d.ShowOnlineNames = w.ShowOnlineNames
	d.TechLevel = omit.From(w.TechLevel)
	d.Platform = w.Platform
	d.LiveryColours = omit.From(append([]LiveryColour{}, prefix(w.LiveryColours[:], int(w.NumColours))...))
	return d
}

func (d *ParticipantData) wire23() participant23 {
	w := participant23{
		Head:            d.headWire(),
		YourTelemetry:   d.YourTelemetry,
		ShowOnlineNames: d.ShowOnlineNames,
		Platform:        d.Platform,
	}
	putCString(w.Name[:], d.Name)
	return w
}

func (d *ParticipantData) wire24() participant24 {
	w := participant24{
		Head:            d.headWire(),
		YourTelemetry:   d.YourTelemetry,
		ShowOnlineNames: d.ShowOnlineNames,
		TechLevel:       orZero(d.TechLevel),
		Platform:        d.Platform,
	}
	putCString(w.Name[:], d.Name)
	return w
}

func (d *ParticipantData) wire25() participant25 {
	colours := orZero(d.LiveryColours)
	w := participant25{
		Head:            d.headWire(),
		YourTelemetry:   d.YourTelemetry,
		ShowOnlineNames: d.ShowOnlineNames,
		TechLevel:       orZero(d.TechLevel),
		Platform:        d.Platform,
		NumColours:      count(colours, maxLiveryColour),
	}
	putCString(w.Name[:], d.Name)
	fill(w.LiveryColours[:], colours)
	return w
}

// Participants lists the participants of the session. All 22 slots are
// returned as they are addressed by car index, NumActiveCars tells how many
// of them are in use.
type Participants struct {
	PacketHeader  Header
	NumActiveCars uint8
	Participants  [NumCars]ParticipantData
}

type (
	participants23 struct {
		NumActiveCars uint8
		Participants  [NumCars]participant23
	}
	participants24 struct {
		NumActiveCars uint8
		Participants  [NumCars]participant24
	}
	participants25 struct {
		NumActiveCars uint8
		Participants  [NumCars]participant25
	}
)

func DecodeParticipants(h Header, payload []byte) (*Participants, error) {
	p := &Participants{PacketHeader: h}
	name := IDParticipants.String()
	switch h.Year() {
	case enums.Year23:
		var w participants23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.NumActiveCars = w.NumActiveCars
		for i := range w.Participants {
			p.Participants[i] = w.Participants[i].value()
		}
	case enums.Year24:
		var w participants24
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.NumActiveCars = w.NumActiveCars
		for i := range w.Participants {
			p.Participants[i] = w.Participants[i].value()
		}
	default:
		var w participants25
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.NumActiveCars = w.NumActiveCars
		for i := range w.Participants {
			p.Participants[i] = w.Participants[i].value()
		}
	}
	return p, nil
}

func (p *Participants) Header() Header { return p.PacketHeader }

func (p *Participants) MarshalBinary() ([]byte, error) {
	switch p.PacketHeader.Year() {
	case enums.Year23:
		w := participants23{NumActiveCars: p.NumActiveCars}
		for i := range p.Participants {
			w.Participants[i] = p.Participants[i].wire23()
		}
		return encodeWire(&w)
	case enums.Year24:
		w := participants24{NumActiveCars: p.NumActiveCars}
		for i := range p.Participants {
			w.Participants[i] = p.Participants[i].wire24()
		}
		return encodeWire(&w)
	default:
		w := participants25{NumActiveCars: p.NumActiveCars}
		for i := range p.Participants {
			w.Participants[i] = p.Participants[i].wire25()
		}
		return encodeWire(&w)
	}
}

// Active returns the participants in use.
func (p *Participants) Active() []ParticipantData {
	return prefix(p.Participants[:], int(p.NumActiveCars))
}

func (p *Participants) Fields() map[string]any {
	return map[string]any{
		"header":          p.PacketHeader.Fields(),
		"num-active-cars": p.NumActiveCars,
		"participants":    fieldsOf(p.Participants[:]),
	}
}
