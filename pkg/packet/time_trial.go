package packet

import "github.com/mpapenbr/f1tel/pkg/enums"

type TimeTrialDataSet struct {
	CarIdx              uint8
	Team                enums.Team
	LapTimeInMS         uint32
	Sector1TimeInMS     uint32
	Sector2TimeInMS     uint32
	Sector3TimeInMS     uint32
	TractionControl     enums.TractionControl
	GearboxAssist       uint8 // 1 = manual, 2 = manual & suggested gear, 3 = auto
	AntiLockBrakes      bool
	EqualCarPerformance bool
	CustomSetup         bool
	Valid               bool
}

func (d TimeTrialDataSet) Fields() map[string]any {
	return map[string]any{
		"car-idx":               d.CarIdx,
		"team-id":               enumString(d.Team),
		"lap-time-in-ms":        d.LapTimeInMS,
		"sector-1-time-in-ms":   d.Sector1TimeInMS,
		"sector-2-time-in-ms":   d.Sector2TimeInMS,
		"sector-3-time-in-ms":   d.Sector3TimeInMS,
		"traction-control":      d.TractionControl.String(),
		"gearbox-assist":        d.GearboxAssist,
		"anti-lock-brakes":      d.AntiLockBrakes,
		"equal-car-performance": d.EqualCarPerformance,
		"custom-setup":          d.CustomSetup,
		"valid":                 d.Valid,
	}
}

type timeTrialDataSetWire struct {
	CarIdx              uint8
	TeamID              uint8
	LapTimeInMS         uint32
	Sector1TimeInMS     uint32
	Sector2TimeInMS     uint32
	Sector3TimeInMS     uint32
	TractionControl     enums.TractionControl
	GearboxAssist       uint8
	AntiLockBrakes      bool
	EqualCarPerformance bool
	CustomSetup         bool
	Valid               bool
}

func (w *timeTrialDataSetWire) value(year enums.Year) TimeTrialDataSet {
	return TimeTrialDataSet{
		CarIdx:              w.CarIdx,
		Team:                enums.TeamFrom(year, w.TeamID),
		LapTimeInMS:         w.LapTimeInMS,
		Sector1TimeInMS:     w.Sector1TimeInMS,
		Sector2TimeInMS:     w.Sector2TimeInMS,
		Sector3TimeInMS:     w.Sector3TimeInMS,
		TractionControl:     w.TractionControl,
		GearboxAssist:       w.GearboxAssist,
		AntiLockBrakes:      w.AntiLockBrakes,
		EqualCarPerformance: w.EqualCarPerformance,
		CustomSetup:         w.CustomSetup,
		Valid:               w.Valid,
	}
}

func (d *TimeTrialDataSet) wire() timeTrialDataSetWire {
	w := timeTrialDataSetWire{
		CarIdx:              d.CarIdx,
		LapTimeInMS:         d.LapTimeInMS,
		Sector1TimeInMS:     d.Sector1TimeInMS,
		Sector2TimeInMS:     d.Sector2TimeInMS,
		Sector3TimeInMS:     d.Sector3TimeInMS,
		TractionControl:     d.TractionControl,
		GearboxAssist:       d.GearboxAssist,
		AntiLockBrakes:      d.AntiLockBrakes,
		EqualCarPerformance: d.EqualCarPerformance,
		CustomSetup:         d.CustomSetup,
		Valid:               d.Valid,
	}
	if d.Team != nil {
		w.TeamID = d.Team.Code()
	}
	return w
}

// TimeTrial is sent in time trial sessions from F1 24 onwards.
type TimeTrial struct {
	PacketHeader      Header
	PlayerSessionBest TimeTrialDataSet
	PersonalBest      TimeTrialDataSet
	Rival             TimeTrialDataSet
}

type timeTrialWire struct {
	PlayerSessionBest timeTrialDataSetWire
	PersonalBest      timeTrialDataSetWire
	Rival             timeTrialDataSetWire
}

func DecodeTimeTrial(h Header, payload []byte) (*TimeTrial, error) {
	var w timeTrialWire
	if err := decodeWire(IDTimeTrial.String(), payload, &w); err != nil {
		return nil, err
	}
	year := h.Year()
	return &TimeTrial{
		PacketHeader:      h,
		PlayerSessionBest: w.PlayerSessionBest.value(year),
		PersonalBest:      w.PersonalBest.value(year),
		Rival:             w.Rival.value(year),
	}, nil
}

func (p *TimeTrial) Header() Header { return p.PacketHeader }

func (p *TimeTrial) MarshalBinary() ([]byte, error) {
	return encodeWire(&timeTrialWire{
		PlayerSessionBest: p.PlayerSessionBest.wire(),
		PersonalBest:      p.PersonalBest.wire(),
		Rival:             p.Rival.wire(),
	})
}

func (p *TimeTrial) Fields() map[string]any {
	return map[string]any{
		"header":                       p.PacketHeader.Fields(),
		"player-session-best-data-set": p.PlayerSessionBest.Fields(),
		"personal-best-data-set":       p.PersonalBest.Fields(),
		"rival-data-set":               p.Rival.Fields(),
	}
}
