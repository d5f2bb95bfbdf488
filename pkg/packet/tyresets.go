package packet

import "github.com/mpapenbr/f1tel/pkg/enums"

const numTyreSets = 20 // 13 dry + 7 wet

type TyreSetData struct {
	ActualTyreCompound enums.ActualTyreCompound
	VisualTyreCompound enums.VisualTyreCompound
	Wear               uint8 // percentage
	Available          bool
	RecommendedSession uint8 // session type, see RecommendedSessionType
	LifeSpan           uint8 // laps left
	UsableLife         uint8 // max number of laps recommended
	LapDeltaTime       int16 // ms, relative to the fitted set
	Fitted             bool
}

// RecommendedSessionType decodes RecommendedSession using the session types of the year.
func (d TyreSetData) RecommendedSessionType(year enums.Year) enums.SessionType {
	return enums.SessionTypeFrom(year, d.RecommendedSession)
}

func (d TyreSetData) fields(year enums.Year) map[string]any {
	return map[string]any{
		"actual-tyre-compound": d.ActualTyreCompound.String(),
		"visual-tyre-compound": d.VisualTyreCompound.String(),
		"wear":                 d.Wear,
		"available":            d.Available,
		"recommended-session":  d.RecommendedSessionType(year).String(),
		"life-span":            d.LifeSpan,
		"usable-life":          d.UsableLife,
		"lap-delta-time":       d.LapDeltaTime,
		"fitted":               d.Fitted,
	}
}

// TyreSets lists the tyre sets of one car. The packet carries no count,
// all 20 sets are always present.
type TyreSets struct {
	PacketHeader Header
	CarIdx       uint8
	TyreSetData  [numTyreSets]TyreSetData
	FittedIdx    uint8
}

type tyreSetsWire struct {
	CarIdx      uint8
	TyreSetData [numTyreSets]TyreSetData
	FittedIdx   uint8
}

func DecodeTyreSets(h Header, payload []byte) (*TyreSets, error) {
	var w tyreSetsWire
	if err := decodeWire(IDTyreSets.String(), payload, &w); err != nil {
		return nil, err
	}
	return &TyreSets{PacketHeader: h, CarIdx: w.CarIdx, TyreSetData: w.TyreSetData, FittedIdx: w.FittedIdx}, nil
}

func (p *TyreSets) Header() Header { return p.PacketHeader }

func (p *TyreSets) MarshalBinary() ([]byte, error) {
	return encodeWire(&tyreSetsWire{CarIdx: p.CarIdx, TyreSetData: p.TyreSetData, FittedIdx: p.FittedIdx})
}

// Fitted returns the currently fitted tyre set.
func (p *TyreSets) Fitted() (TyreSetData, bool) {
	if int(p.FittedIdx) >= numTyreSets {
		return TyreSetData{}, false
	}
	return p.TyreSetData[p.FittedIdx], true
}

func (p *TyreSets) Fields() map[string]any {
	year := p.PacketHeader.Year()
	return map[string]any{
		"header":        p.PacketHeader.Fields(),
		"car-idx":       p.CarIdx,
		"tyre-set-data": mapSlice(p.TyreSetData[:], func(d TyreSetData) map[string]any { return d.fields(year) }),
		"fitted-idx":    p.FittedIdx,
	}
}
