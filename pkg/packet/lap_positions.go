package packet

const maxLapPositions = 50

// LapPositions holds the position of every car at the start of each lap,
// from F1 25 onwards. Positions are truncated to the number of laps sent.
type LapPositions struct {
	PacketHeader Header
	LapStart     uint8 // index of the first lap in this packet, 0 based
	// Positions[lap][carIdx], 0 = no record
	Positions [][NumCars]uint8
}

type lapPositionsWire struct {
	NumLaps               uint8
	LapStart              uint8
	PositionForVehicleIdx [maxLapPositions][NumCars]uint8
}

func DecodeLapPositions(h Header, payload []byte) (*LapPositions, error) {
	var w lapPositionsWire
	if err := decodeWire(IDLapPositions.String(), payload, &w); err != nil {
		return nil, err
	}
	return &LapPositions{
		PacketHeader: h,
		LapStart:     w.LapStart,
		Positions:    append([][NumCars]uint8{}, prefix(w.PositionForVehicleIdx[:], int(w.NumLaps))...),
	}, nil
}

func (p *LapPositions) Header() Header { return p.PacketHeader }

func (p *LapPositions) MarshalBinary() ([]byte, error) {
	w := lapPositionsWire{NumLaps: count(p.Positions, maxLapPositions), LapStart: p.LapStart}
	fill(w.PositionForVehicleIdx[:], p.Positions)
	return encodeWire(&w)
}

func (p *LapPositions) Fields() map[string]any {
	return map[string]any{
		"header":                   p.PacketHeader.Fields(),
		"num-laps":                 len(p.Positions),
		"lap-start":                p.LapStart,
		"position-for-vehicle-idx": p.Positions,
	}
}
