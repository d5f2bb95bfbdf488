package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

type LobbyInfoData struct {
	AIControlled    bool
	Team            enums.Team
	Nationality     enums.Nationality
	Platform        enums.Platform
	Name            string
	CarNumber       uint8
	YourTelemetry   omit.Val[enums.TelemetrySetting] // since F1 24
	ShowOnlineNames omit.Val[bool]                   // since F1 24
	TechLevel       omit.Val[uint16]                 // since F1 24
	ReadyStatus     enums.ReadyStatus
}

func (d LobbyInfoData) Fields() map[string]any {
	ret := map[string]any{
		"ai-controlled": d.AIControlled,
		"team-id":       enumString(d.Team),
		"nationality":   d.Nationality.String(),
		"platform":      d.Platform.String(),
		"name":          d.Name,
		"car-number":    d.CarNumber,
		"ready-status":  d.ReadyStatus.String(),
	}
	setOptWith(ret, "your-telemetry", d.YourTelemetry, enums.TelemetrySetting.String)
	setOpt(ret, "show-online-names", d.ShowOnlineNames)
	setOpt(ret, "tech-level", d.TechLevel)
	return ret
}

type lobbyHeadWire struct {
	AIControlled bool
	TeamID       uint8
	Nationality  enums.Nationality
	Platform     enums.Platform
}

type lobbyExtraWire struct {
	YourTelemetry   enums.TelemetrySetting
	ShowOnlineNames bool
	TechLevel       uint16
}

type (
	lobbyPlayer23 struct {
		Head        lobbyHeadWire
		Name        [nameSize23]byte
		CarNumber   uint8
		ReadyStatus enums.ReadyStatus
	}
	lobbyPlayer24 struct {
		Head        lobbyHeadWire
		Name        [nameSize23]byte
		CarNumber   uint8
		Extra       lobbyExtraWire
		ReadyStatus enums.ReadyStatus
	}
	lobbyPlayer25 struct {
		Head        lobbyHeadWire
		Name        [nameSize25]byte
		CarNumber   uint8
		Extra       lobbyExtraWire
		ReadyStatus enums.ReadyStatus
	}
)

func newLobbyInfoData(year enums.Year, h *lobbyHeadWire, name []byte, carNumber uint8, ready enums.ReadyStatus) LobbyInfoData {
	return LobbyInfoData{
		AIControlled: h.AIControlled,
		Team:         enums.TeamFrom(year, h.TeamID),
		Nationality:  h.Nationality,
		Platform:     h.Platform,
		Name:         cString(name),
		CarNumber:    carNumber,
		ReadyStatus:  ready,
	}
}

func (d *LobbyInfoData) setExtra(e *lobbyExtraWire) {
	d.YourTelemetry = omit.From(e.YourTelemetry)
	d.ShowOnlineNames = omit.From(e.ShowOnlineNames)
	d.TechLevel = omit.From(e.TechLevel)
}

func (d *LobbyInfoData) headWire() lobbyHeadWire {
	w := lobbyHeadWire{AIControlled: d.AIControlled, Nationality: d.Nationality, Platform: d.Platform}
	if d.Team != nil {
		w.TeamID = d.Team.Code()
	}
	return w
}

func (d *LobbyInfoData) extraWire() lobbyExtraWire {
	return lobbyExtraWire{
		YourTelemetry:   orZero(d.YourTelemetry),
		ShowOnlineNames: orZero(d.ShowOnlineNames),
		TechLevel:       orZero(d.TechLevel),
	}
}

// LobbyInfo lists the players of a multiplayer lobby, truncated to the number of players.
type LobbyInfo struct {
	PacketHeader Header
	Players      []LobbyInfoData
}

type (
	lobbyInfo23 struct {
		NumPlayers uint8
		Players    [NumCars]lobbyPlayer23
	}
	lobbyInfo24 struct {
		NumPlayers uint8
		Players    [NumCars]lobbyPlayer24
	}
	lobbyInfo25 struct {
		NumPlayers uint8
		Players    [NumCars]lobbyPlayer25
	}
)

func DecodeLobbyInfo(h Header, payload []byte) (*LobbyInfo, error) {
	p := &LobbyInfo{PacketHeader: h}
	name := IDLobbyInfo.String()
	year := h.Year()
	switch year {
	case enums.Year23:
		var w lobbyInfo23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.Players = mapSlice(prefix(w.Players[:], int(w.NumPlayers)), func(l lobbyPlayer23) LobbyInfoData {
			return newLobbyInfoData(year, &l.Head, l.Name[:], l.CarNumber, l.ReadyStatus)
		})
	case enums.Year24:
		var w lobbyInfo24
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.Players = mapSlice(prefix(w.Players[:], int(w.NumPlayers)), func(l lobbyPlayer24) LobbyInfoData {
			d := newLobbyInfoData(year, &l.Head, l.Name[:], l.CarNumber, l.ReadyStatus)
			d.setExtra(&l.Extra)
			return d
		})
	default:
		var w lobbyInfo25
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.Players = mapSlice(prefix(w.Players[:], int(w.NumPlayers)), func(l lobbyPlayer25) LobbyInfoData {
			d := newLobbyInfoData(year, &l.Head, l.Name[:], l.CarNumber, l.ReadyStatus)
			d.setExtra(&l.Extra)
			return d
		})
	}
	return p, nil
}

func (p *LobbyInfo) Header() Header { return p.PacketHeader }

func (p *LobbyInfo) MarshalBinary() ([]byte, error) {
	players := prefix(p.Players, NumCars)
	numPlayers := count(p.Players, NumCars)
	switch p.PacketHeader.Year() {
	case enums.Year23:
		w := lobbyInfo23{NumPlayers: numPlayers}
		for i := range players {
			d := &players[i]
			w.Players[i] = lobbyPlayer23{Head: d.headWire(), CarNumber: d.CarNumber, ReadyStatus: d.ReadyStatus}
			putCString(w.Players[i].Name[:], d.Name)
		}
		return encodeWire(&w)
	case enums.Year24:
		w := lobbyInfo24{NumPlayers: numPlayers}
		for i := range players {
			d := &players[i]
			w.Players[i] = lobbyPlayer24{
				Head:        d.headWire(),
				CarNumber:   d.CarNumber,
				Extra:       d.extraWire(),
				ReadyStatus: d.ReadyStatus,
			}
			putCString(w.Players[i].Name[:], d.Name)
		}
		return encodeWire(&w)
	default:
		w := lobbyInfo25{NumPlayers: numPlayers}
		for i := range players {
			d := &players[i]
			w.Players[i] = lobbyPlayer25{
				Head:        d.headWire(),
				CarNumber:   d.CarNumber,
				Extra:       d.extraWire(),
				ReadyStatus: d.ReadyStatus,
			}
			putCString(w.Players[i].Name[:], d.Name)
		}
		return encodeWire(&w)
	}
}

func (p *LobbyInfo) Fields() map[string]any {
	return map[string]any{
		"header":        p.PacketHeader.Fields(),
		"num-players":   len(p.Players),
		"lobby-players": fieldsOf(p.Players),
	}
}
