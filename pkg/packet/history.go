package packet

const maxLapHistory = 100

// Lap valid bit flags of LapHistoryData
const (
	LapValid     uint8 = 0x01
	Sector1Valid uint8 = 0x02
	Sector2Valid uint8 = 0x04
	Sector3Valid uint8 = 0x08
)

type LapHistoryData struct {
	LapTimeInMS            uint32
	Sector1TimeMSPart      uint16
	Sector1TimeMinutesPart uint8
	Sector2TimeMSPart      uint16
	Sector2TimeMinutesPart uint8
	Sector3TimeMSPart      uint16
	Sector3TimeMinutesPart uint8
	LapValidBitFlags       uint8
}

func (d LapHistoryData) Sector1TimeInMS() uint32 {
	return msTime(d.Sector1TimeMinutesPart, d.Sector1TimeMSPart)
}

func (d LapHistoryData) Sector2TimeInMS() uint32 {
	return msTime(d.Sector2TimeMinutesPart, d.Sector2TimeMSPart)
}

func (d LapHistoryData) Sector3TimeInMS() uint32 {
	return msTime(d.Sector3TimeMinutesPart, d.Sector3TimeMSPart)
}

func (d LapHistoryData) valid(flag uint8) bool { return d.LapValidBitFlags&flag != 0 }

func (d LapHistoryData) Fields() map[string]any {
	return map[string]any{
		"lap-time-in-ms":             d.LapTimeInMS,
		"sector-1-time-in-ms":        d.Sector1TimeInMS(),
		"sector-1-time-ms-part":      d.Sector1TimeMSPart,
		"sector-1-time-minutes-part": d.Sector1TimeMinutesPart,
		"sector-2-time-in-ms":        d.Sector2TimeInMS(),
		"sector-2-time-ms-part":      d.Sector2TimeMSPart,
		"sector-2-time-minutes-part": d.Sector2TimeMinutesPart,
		"sector-3-time-in-ms":        d.Sector3TimeInMS(),
		"sector-3-time-ms-part":      d.Sector3TimeMSPart,
		"sector-3-time-minutes-part": d.Sector3TimeMinutesPart,
		"lap-valid-bit-flags":        d.LapValidBitFlags,
		"lap-valid":                  d.valid(LapValid),
		"sector-1-valid":             d.valid(Sector1Valid),
		"sector-2-valid":             d.valid(Sector2Valid),
		"sector-3-valid":             d.valid(Sector3Valid),
	}
}

// SessionHistory is the lap and tyre stint history of one car.
// Laps and stints are truncated to the counts sent with the packet.
type SessionHistory struct {
	PacketHeader      Header
	CarIdx            uint8
	BestLapTimeLapNum uint8
	BestSector1LapNum uint8
	BestSector2LapNum uint8
	BestSector3LapNum uint8
	LapHistoryData    []LapHistoryData
	TyreStintsHistory []TyreStint
}

type sessionHistoryWire struct {
	CarIdx            uint8
	NumLaps           uint8
	NumTyreStints     uint8
	BestLapTimeLapNum uint8
	BestSector1LapNum uint8
	BestSector2LapNum uint8
	BestSector3LapNum uint8
	LapHistoryData    [maxLapHistory]LapHistoryData
	TyreStintsHistory [maxTyreStints]TyreStint
}

func DecodeSessionHistory(h Header, payload []byte) (*SessionHistory, error) {
	var w sessionHistoryWire
	if err := decodeWire(IDSessionHistory.String(), payload, &w); err != nil {
		return nil, err
	}
	return &SessionHistory{
		PacketHeader:      h,
		CarIdx:            w.CarIdx,
		BestLapTimeLapNum: w.BestLapTimeLapNum,
		BestSector1LapNum: w.BestSector1LapNum,
		BestSector2LapNum: w.BestSector2LapNum,
		BestSector3LapNum: w.BestSector3LapNum,
		LapHistoryData:    append([]LapHistoryData{}, prefix(w.LapHistoryData[:], int(w.NumLaps))...),
		TyreStintsHistory: append([]TyreStint{}, prefix(w.TyreStintsHistory[:], int(w.NumTyreStints))...),
	}, nil
}

func (p *SessionHistory) Header() Header { return p.PacketHeader }

func (p *SessionHistory) MarshalBinary() ([]byte, error) {
	w := sessionHistoryWire{
		CarIdx:            p.CarIdx,
		NumLaps:           count(p.LapHistoryData, maxLapHistory),
		NumTyreStints:     count(p.TyreStintsHistory, maxTyreStints),
		BestLapTimeLapNum: p.BestLapTimeLapNum,
		BestSector1LapNum: p.BestSector1LapNum,
		BestSector2LapNum: p.BestSector2LapNum,
		BestSector3LapNum: p.BestSector3LapNum,
	}
	fill(w.LapHistoryData[:], p.LapHistoryData)
	fill(w.TyreStintsHistory[:], p.TyreStintsHistory)
	return encodeWire(&w)
}

func (p *SessionHistory) Fields() map[string]any {
	return map[string]any{
		"header":                p.PacketHeader.Fields(),
		"car-idx":               p.CarIdx,
		"num-laps":              len(p.LapHistoryData),
		"num-tyre-stints":       len(p.TyreStintsHistory),
		"best-lap-time-lap-num": p.BestLapTimeLapNum,
		"best-sector-1-lap-num": p.BestSector1LapNum,
		"best-sector-2-lap-num": p.BestSector2LapNum,
		"best-sector-3-lap-num": p.BestSector3LapNum,
		"lap-history-data":      fieldsOf(p.LapHistoryData),
		"tyre-stints-history":   fieldsOf(p.TyreStintsHistory),
	}
}

