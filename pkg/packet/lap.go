package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

// CarLapData is the lap record of one car.
// Sector and delta times are split into a milliseconds and a minutes part on the wire.
type CarLapData struct {
	LastLapTimeInMS              uint32
	CurrentLapTimeInMS           uint32
	Sector1TimeMSPart            uint16
	Sector1TimeMinutesPart       uint8
	Sector2TimeMSPart            uint16
	Sector2TimeMinutesPart       uint8
	DeltaToCarInFrontMSPart      uint16
	DeltaToCarInFrontMinutesPart omit.Val[uint8] // since F1 24
	DeltaToRaceLeaderMSPart      uint16
	DeltaToRaceLeaderMinutesPart omit.Val[uint8] // since F1 24
	LapDistance                  float32         // metres, may be negative before crossing the line
	TotalDistance                float32
	SafetyCarDelta               float32 // seconds
	CarPosition                  uint8
	CurrentLapNum                uint8
	PitStatus                    enums.PitStatus
	NumPitStops                  uint8
	Sector                       enums.Sector
	CurrentLapInvalid            bool
	Penalties                    uint8 // accumulated time penalties in seconds
	TotalWarnings                uint8
	CornerCuttingWarnings        uint8
	NumUnservedDriveThroughPens  uint8
	NumUnservedStopGoPens        uint8
	GridPosition                 uint8
	DriverStatus                 enums.DriverStatus
	ResultStatus                 enums.ResultStatus
	PitLaneTimerActive           bool
	PitLaneTimeInLaneInMS        uint16
	PitStopTimerInMS             uint16
	PitStopShouldServePen        bool
	SpeedTrapFastestSpeed        omit.Val[float32] // since F1 24, km/h
	SpeedTrapFastestLap          omit.Val[uint8]   // since F1 24, 255 = not set
}

func msTime(minutes uint8, ms uint16) uint32 {
	return uint32(minutes)*60_000 + uint32(ms)
}

func (c CarLapData) Sector1TimeInMS() uint32 {
	return msTime(c.Sector1TimeMinutesPart, c.Sector1TimeMSPart)
}

func (c CarLapData) Sector2TimeInMS() uint32 {
	return msTime(c.Sector2TimeMinutesPart, c.Sector2TimeMSPart)
}

func (c CarLapData) DeltaToCarInFrontInMS() uint32 {
	return msTime(orZero(c.DeltaToCarInFrontMinutesPart), c.DeltaToCarInFrontMSPart)
}

func (c CarLapData) DeltaToRaceLeaderInMS() uint32 {
	return msTime(orZero(c.DeltaToRaceLeaderMinutesPart), c.DeltaToRaceLeaderMSPart)
}

func (c CarLapData) Fields() map[string]any {
	ret := map[string]any{
		"last-lap-time-in-ms":             c.LastLapTimeInMS,
		"current-lap-time-in-ms":          c.CurrentLapTimeInMS,
		"sector-1-time-in-ms":             c.Sector1TimeInMS(),
		"sector-1-time-ms-part":           c.Sector1TimeMSPart,
		"sector-1-time-minutes-part":      c.Sector1TimeMinutesPart,
		"sector-2-time-in-ms":             c.Sector2TimeInMS(),
		"sector-2-time-ms-part":           c.Sector2TimeMSPart,
		"sector-2-time-minutes-part":      c.Sector2TimeMinutesPart,
		"delta-to-car-in-front-in-ms":     c.DeltaToCarInFrontInMS(),
		"delta-to-car-in-front-ms-part":   c.DeltaToCarInFrontMSPart,
		"delta-to-race-leader-in-ms":      c.DeltaToRaceLeaderInMS(),
		"delta-to-race-leader-ms-part":    c.DeltaToRaceLeaderMSPart,
		"lap-distance":                    c.LapDistance,
		"total-distance":                  c.TotalDistance,
		"safety-car-delta":                c.SafetyCarDelta,
		"car-position":                    c.CarPosition,
		"current-lap-num":                 c.CurrentLapNum,
		"pit-status":                      c.PitStatus.String(),
		"num-pit-stops":                   c.NumPitStops,
		"sector":                          c.Sector.String(),
		"current-lap-invalid":             c.CurrentLapInvalid,
		"penalties":                       c.Penalties,
		"total-warnings":                  c.TotalWarnings,
		"corner-cutting-warnings":         c.CornerCuttingWarnings,
		"num-unserved-drive-through-pens": c.NumUnservedDriveThroughPens,
		"num-unserved-stop-go-pens":       c.NumUnservedStopGoPens,
		"grid-position":                   c.GridPosition,
		"driver-status":                   c.DriverStatus.String(),
		"result-status":                   c.ResultStatus.String(),
		"pit-lane-timer-active":           c.PitLaneTimerActive,
		"pit-lane-time-in-lane-in-ms":     c.PitLaneTimeInLaneInMS,
		"pit-stop-timer-in-ms":            c.PitStopTimerInMS,
		"pit-stop-should-serve-pen":       c.PitStopShouldServePen,
	}
	setOpt(ret, "delta-to-car-in-front-minutes-part", c.DeltaToCarInFrontMinutesPart)
	setOpt(ret, "delta-to-race-leader-minutes-part", c.DeltaToRaceLeaderMinutesPart)
	setOpt(ret, "speed-trap-fastest-speed", c.SpeedTrapFastestSpeed)
	setOpt(ret, "speed-trap-fastest-lap", c.SpeedTrapFastestLap)
	return ret
}

// lapStateWire is the part of the lap record following the distances.
// It is identical in all years.
type lapStateWire struct {
	LapDistance                 float32
	TotalDistance               float32
	SafetyCarDelta              float32
	CarPosition                 uint8
	CurrentLapNum               uint8
	PitStatus                   enums.PitStatus
	NumPitStops                 uint8
	Sector                      enums.Sector
	CurrentLapInvalid           bool
	Penalties                   uint8
	TotalWarnings               uint8
	CornerCuttingWarnings       uint8
	NumUnservedDriveThroughPens uint8
	NumUnservedStopGoPens       uint8
	GridPosition                uint8
	DriverStatus                enums.DriverStatus
	ResultStatus                enums.ResultStatus
	PitLaneTimerActive          bool
	PitLaneTimeInLaneInMS       uint16
	PitStopTimerInMS            uint16
	PitStopShouldServePen       bool
}

type lapTimesWire struct {
	LastLapTimeInMS        uint32
	CurrentLapTimeInMS     uint32
	Sector1TimeMSPart      uint16
	Sector1TimeMinutesPart uint8
	Sector2TimeMSPart      uint16
	Sector2TimeMinutesPart uint8
}

type (
	carLap23 struct {
		Times                   lapTimesWire
		DeltaToCarInFrontMSPart uint16
		DeltaToRaceLeaderMSPart uint16
		State                   lapStateWire
	}
	carLap24 struct {
		Times                        lapTimesWire
		DeltaToCarInFrontMSPart      uint16
		DeltaToCarInFrontMinutesPart uint8
		DeltaToRaceLeaderMSPart      uint16
		DeltaToRaceLeaderMinutesPart uint8
		State                        lapStateWire
		SpeedTrapFastestSpeed        float32
		SpeedTrapFastestLap          uint8
	}
)

func newCarLapData(t *lapTimesWire, s *lapStateWire) CarLapData {
	return CarLapData{
		LastLapTimeInMS:             t.LastLapTimeInMS,
		CurrentLapTimeInMS:          t.CurrentLapTimeInMS,
		Sector1TimeMSPart:           t.Sector1TimeMSPart,
		Sector1TimeMinutesPart:      t.Sector1TimeMinutesPart,
		Sector2TimeMSPart:           t.Sector2TimeMSPart,
		Sector2TimeMinutesPart:      t.Sector2TimeMinutesPart,
		LapDistance:                 s.LapDistance,
		TotalDistance:               s.TotalDistance,
		SafetyCarDelta:              s.SafetyCarDelta,
		CarPosition:                 s.CarPosition,
		CurrentLapNum:               s.CurrentLapNum,
		PitStatus:                   s.PitStatus,
		NumPitStops:                 s.NumPitStops,
		Sector:                      s.Sector,
		CurrentLapInvalid:           s.CurrentLapInvalid,
		Penalties:                   s.Penalties,
		TotalWarnings:               s.TotalWarnings,
		CornerCuttingWarnings:       s.CornerCuttingWarnings,
		NumUnservedDriveThroughPens: s.NumUnservedDriveThroughPens,
		NumUnservedStopGoPens:       s.NumUnservedStopGoPens,
		GridPosition:                s.GridPosition,
		DriverStatus:                s.DriverStatus,
		ResultStatus:                s.ResultStatus,
		PitLaneTimerActive:          s.PitLaneTimerActive,
		PitLaneTimeInLaneInMS:       s.PitLaneTimeInLaneInMS,
		PitStopTimerInMS:            s.PitStopTimerInMS,
		PitStopShouldServePen:       s.PitStopShouldServePen,
	}
}

func (c *CarLapData) timesWire() lapTimesWire {
	return lapTimesWire{
		LastLapTimeInMS:        c.LastLapTimeInMS,
		CurrentLapTimeInMS:     c.CurrentLapTimeInMS,
		Sector1TimeMSPart:      c.Sector1TimeMSPart,
		Sector1TimeMinutesPart: c.Sector1TimeMinutesPart,
		Sector2TimeMSPart:      c.Sector2TimeMSPart,
		Sector2TimeMinutesPart: c.Sector2TimeMinutesPart,
	}
}

func (c *CarLapData) stateWire() lapStateWire {
	return lapStateWire{
		LapDistance:                 c.LapDistance,
		TotalDistance:               c.TotalDistance,
		SafetyCarDelta:              c.SafetyCarDelta,
		CarPosition:                 c.CarPosition,
		CurrentLapNum:               c.CurrentLapNum,
		PitStatus:                   c.PitStatus,
		NumPitStops:                 c.NumPitStops,
		Sector:                      c.Sector,
		CurrentLapInvalid:           c.CurrentLapInvalid,
		Penalties:                   c.Penalties,
		TotalWarnings:               c.TotalWarnings,
		CornerCuttingWarnings:       c.CornerCuttingWarnings,
		NumUnservedDriveThroughPens: c.NumUnservedDriveThroughPens,
		NumUnservedStopGoPens:       c.NumUnservedStopGoPens,
		GridPosition:                c.GridPosition,
		DriverStatus:                c.DriverStatus,
		ResultStatus:                c.ResultStatus,
		PitLaneTimerActive:          c.PitLaneTimerActive,
		PitLaneTimeInLaneInMS:       c.PitLaneTimeInLaneInMS,
		PitStopTimerInMS:            c.PitStopTimerInMS,
		PitStopShouldServePen:       c.PitStopShouldServePen,
	}
}

func (w *carLap23) value() CarLapData {
	c := newCarLapData(&w.Times, &w.State)
	c.DeltaToCarInFrontMSPart = w.DeltaToCarInFrontMSPart
	c.DeltaToRaceLeaderMSPart = w.DeltaToRaceLeaderMSPart
	return c
}

func (w *carLap24) value() CarLapData {
	c := newCarLapData(&w.Times, &w.State)
	c.DeltaToCarInFrontMSPart = w.DeltaToCarInFrontMSPart
	c.DeltaToCarInFrontMinutesPart = omit.From(w.DeltaToCarInFrontMinutesPart)
	c.DeltaToRaceLeaderMSPart = w.DeltaToRaceLeaderMSPart
	c.DeltaToRaceLeaderMinutesPart = omit.From(w.DeltaToRaceLeaderMinutesPart)
	c.SpeedTrapFastestSpeed = omit.From(w.SpeedTrapFastestSpeed)
	c.SpeedTrapFastestLap = omit.From(w.SpeedTrapFastestLap)
	return c
}

func (c *CarLapData) wire23() carLap23 {
	return carLap23{
		Times:                   c.timesWire(),
		DeltaToCarInFrontMSPart: c.DeltaToCarInFrontMSPart,
		DeltaToRaceLeaderMSPart: c.DeltaToRaceLeaderMSPart,
		State:                   c.stateWire(),
	}
}

func (c *CarLapData) wire24() carLap24 {
	return carLap24{
		Times:                        c.timesWire(),
		DeltaToCarInFrontMSPart:      c.DeltaToCarInFrontMSPart,
		DeltaToCarInFrontMinutesPart: orZero(c.DeltaToCarInFrontMinutesPart),
		DeltaToRaceLeaderMSPart:      c.DeltaToRaceLeaderMSPart,
		DeltaToRaceLeaderMinutesPart: orZero(c.DeltaToRaceLeaderMinutesPart),
		State:                        c.stateWire(),
		SpeedTrapFastestSpeed:        orZero(c.SpeedTrapFastestSpeed),
		SpeedTrapFastestLap:          orZero(c.SpeedTrapFastestLap),
	}
}

type LapData struct {
	PacketHeader         Header
	Cars                 [NumCars]CarLapData
	TimeTrialPBCarIdx    uint8 // 255 if invalid
	TimeTrialRivalCarIdx uint8 // 255 if invalid
}

type (
	lapData23 struct {
		Cars                 [NumCars]carLap23
		TimeTrialPBCarIdx    uint8
		TimeTrialRivalCarIdx uint8
	}
	lapData24 struct {
		Cars                 [NumCars]carLap24
		TimeTrialPBCarIdx    uint8
		TimeTrialRivalCarIdx uint8
	}
)

func DecodeLapData(h Header, payload []byte) (*LapData, error) {
	p := &LapData{PacketHeader: h}
	name := IDLapData.String()
	if h.Year() == enums.Year23 {
		var w lapData23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		for i := range w.Cars {
			p.Cars[i] = w.Cars[i].value()
		}
		p.TimeTrialPBCarIdx, p.TimeTrialRivalCarIdx = w.TimeTrialPBCarIdx, w.TimeTrialRivalCarIdx
		return p, nil
	}
	var w lapData24
	if err := decodeWire(name, payload, &w); err != nil {
		return nil, err
	}
	for i := range w.Cars {
		p.Cars[i] = w.Cars[i].value()
	}
	p.TimeTrialPBCarIdx, p.TimeTrialRivalCarIdx = w.TimeTrialPBCarIdx, w.TimeTrialRivalCarIdx
	return p, nil
}

func (p *LapData) Header() Header { return p.PacketHeader }

func (p *LapData) MarshalBinary() ([]byte, error) {
	if p.PacketHeader.Year() == enums.Year23 {
		w := lapData23{TimeTrialPBCarIdx: p.TimeTrialPBCarIdx, TimeTrialRivalCarIdx: p.TimeTrialRivalCarIdx}
		for i := range p.Cars {
			w.Cars[i] = p.Cars[i].wire23()
		}
		return encodeWire(&w)
	}
	w := lapData24{TimeTrialPBCarIdx: p.TimeTrialPBCarIdx, TimeTrialRivalCarIdx: p.TimeTrialRivalCarIdx}
	for i := range p.Cars {
		w.Cars[i] = p.Cars[i].wire24()
	}
	return encodeWire(&w)
}

func (p *LapData) Fields() map[string]any {
	return map[string]any{
		"header":                   p.PacketHeader.Fields(),
		"lap-data":                 fieldsOf(p.Cars[:]),
		"time-trial-pb-car-idx":    p.TimeTrialPBCarIdx,
		"time-trial-rival-car-idx": p.TimeTrialRivalCarIdx,
	}
}
