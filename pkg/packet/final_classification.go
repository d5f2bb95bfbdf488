package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

const maxTyreStints = 8

// TyreStint is a completed or ongoing stint of a car.
// The field order matches the session history layout.
type TyreStint struct {
	EndLap             uint8 // 255 for the current stint
	TyreActualCompound enums.ActualTyreCompound
	TyreVisualCompound enums.VisualTyreCompound
}

func (s TyreStint) Fields() map[string]any {
	return map[string]any{
		"end-lap":              s.EndLap,
		"tyre-actual-compound": s.TyreActualCompound.String(),
		"tyre-visual-compound": s.TyreVisualCompound.String(),
	}
}

type FinalClassificationData struct {
	Position        uint8
	NumLaps         uint8
	GridPosition    uint8
	Points          uint8
	NumPitStops     uint8
	ResultStatus    enums.ResultStatus
	ResultReason    omit.Val[enums.ResultReason] // since F1 25
	BestLapTimeInMS uint32
	TotalRaceTime   float64 // seconds, without penalties
	PenaltiesTime   uint8   // seconds
	NumPenalties    uint8
	TyreStints      []TyreStint
}

func (d FinalClassificationData) Fields() map[string]any {
	ret := map[string]any{
		"position":            d.Position,
		"num-laps":            d.NumLaps,
		"grid-position":       d.GridPosition,
		"points":              d.Points,
		"num-pit-stops":       d.NumPitStops,
		"result-status":       d.ResultStatus.String(),
		"best-lap-time-in-ms": d.BestLapTimeInMS,
		"total-race-time":     d.TotalRaceTime,
		"penalties-time":      d.PenaltiesTime,
		"num-penalties":       d.NumPenalties,
		"num-tyre-stints":     len(d.TyreStints),
		"tyre-stints":         fieldsOf(d.TyreStints),
	}
	setOptWith(ret, "result-reason", d.ResultReason, enums.ResultReason.String)
	return ret
}

type classificationTailWire struct {
	BestLapTimeInMS   uint32
	TotalRaceTime     float64
	PenaltiesTime     uint8
	NumPenalties      uint8
	NumTyreStints     uint8
	TyreStintsActual  [maxTyreStints]enums.ActualTyreCompound
	TyreStintsVisual  [maxTyreStints]enums.VisualTyreCompound
	TyreStintsEndLaps [maxTyreStints]uint8
}

type classificationHeadWire struct {
	Position     uint8
	NumLaps      uint8
	GridPosition uint8
	Points       uint8
	NumPitStops  uint8
	ResultStatus enums.ResultStatus
}

type (
	classification23 struct {
		Head classificationHeadWire
		Tail classificationTailWire
	}
	classification25 struct {
		Head         classificationHeadWire
		ResultReason enums.ResultReason
		Tail         classificationTailWire
	}
)

func newFinalClassificationData(h *classificationHeadWire, t *classificationTailWire) FinalClassificationData {
	n := min(int(t.NumTyreStints), maxTyreStints)
	stints := make([]TyreStint, n)
	for i := range stints {
		stints[i] = TyreStint{
			EndLap:             t.TyreStintsEndLaps[i],
			TyreActualCompound: t.TyreStintsActual[i],
			TyreVisualCompound: t.TyreStintsVisual[i],
		}
	}
	return FinalClassificationData{
		Position:        h.Position,
		NumLaps:         h.NumLaps,
		GridPosition:    h.GridPosition,
		Points:          h.Points,
		NumPitStops:     h.NumPitStops,
		ResultStatus:    h.ResultStatus,
		BestLapTimeInMS: t.BestLapTimeInMS,
		TotalRaceTime:   t.TotalRaceTime,
		PenaltiesTime:   t.PenaltiesTime,
		NumPenalties:    t.NumPenalties,
		TyreStints:      stints,
	}
}

func (d *FinalClassificationData) headWire() classificationHeadWire {
	return classificationHeadWire{
		Position:     d.Position,
		NumLaps:      d.NumLaps,
		GridPosition: d.GridPosition,
		Points:       d.Points,
		NumPitStops:  d.NumPitStops,
		ResultStatus: d.ResultStatus,
	}
}

func (d *FinalClassificationData) tailWire() classificationTailWire {
	w := classificationTailWire{
		BestLapTimeInMS: d.BestLapTimeInMS,
		TotalRaceTime:   d.TotalRaceTime,
		PenaltiesTime:   d.PenaltiesTime,
		NumPenalties:    d.NumPenalties,
		NumTyreStints:   count(d.TyreStints, maxTyreStints),
	}
	for i, s := range prefix(d.TyreStints, maxTyreStints) {
		w.TyreStintsActual[i] = s.TyreActualCompound
		w.TyreStintsVisual[i] = s.TyreVisualCompound
		w.TyreStintsEndLaps[i] = s.EndLap
	}
	return w
}

// FinalClassification is sent at the end of a race. All 22 slots are kept
// as they are addressed by car index, NumCars tells how many are in use.
type FinalClassification struct {
	PacketHeader       Header
	NumCars            uint8
	ClassificationData [NumCars]FinalClassificationData
}

type (
	finalClassification23 struct {
		NumCars uint8
		Cars    [NumCars]classification23
	}
	finalClassification25 struct {
		NumCars uint8
		Cars    [NumCars]classification25
	}
)

func DecodeFinalClassification(h Header, payload []byte) (*FinalClassification, error) {
	p := &FinalClassification{PacketHeader: h}
	name := IDFinalClassification.String()
	if h.Year() < enums.Year25 {
		var w finalClassification23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.NumCars = w.NumCars
		for i := range w.Cars {
			p.ClassificationData[i] = newFinalClassificationData(&w.Cars[i].Head, &w.Cars[i].Tail)
		}
		return p, nil
	}
	var w finalClassification25
	if err := decodeWire(name, payload, &w); err != nil {
		return nil, err
	}
	p.NumCars = w.NumCars
	for i := range w.Cars {
		p.ClassificationData[i] = newFinalClassificationData(&w.Cars[i].Head, &w.Cars[i].Tail)
		p.ClassificationData[i].ResultReason = omit.From(w.Cars[i].ResultReason)
	}
	return p, nil
}

func (p *FinalClassification) Header() Header { return p.PacketHeader }

func (p *FinalClassification) MarshalBinary() ([]byte, error) {
	if p.PacketHeader.Year() < enums.Year25 {
		w := finalClassification23{NumCars: p.NumCars}
		for i := range p.ClassificationData {
			d := &p.ClassificationData[i]
			w.Cars[i] = classification23{Head: d.headWire(), Tail: d.tailWire()}
		}
		return encodeWire(&w)
	}
	w := finalClassification25{NumCars: p.NumCars}
	for i := range p.ClassificationData {
		d := &p.ClassificationData[i]
		w.Cars[i] = classification25{
			Head:         d.headWire(),
			ResultReason: orZero(d.ResultReason),
			Tail:         d.tailWire(),
		}
	}
	return encodeWire(&w)
}

func (p *FinalClassification) Fields() map[string]any {
	return map[string]any{
		"header":              p.PacketHeader.Fields(),
		"num-cars":            p.NumCars,
		"classification-data": fieldsOf(p.ClassificationData[:]),
	}
}
