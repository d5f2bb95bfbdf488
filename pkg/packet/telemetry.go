package packet

import "github.com/mpapenbr/f1tel/pkg/enums"

// CarTelemetryData is the telemetry record of one car. Wheel arrays are
// ordered RL, RR, FL, FR.
type CarTelemetryData struct {
	Speed                   uint16 // km/h
	Throttle                float32
	Steer                   float32 // -1.0 (full left) to 1.0 (full right)
	Brake                   float32
	Clutch                  uint8
	Gear                    int8 // -1 = R, 0 = N
	EngineRPM               uint16
	DRS                     bool
	RevLightsPercent        uint8
	RevLightsBitValue       uint16 // bit 0 = leftmost LED
	BrakesTemperature       [4]uint16
	TyresSurfaceTemperature [4]uint8
	TyresInnerTemperature   [4]uint8
	EngineTemperature       uint16
	TyresPressure           [4]float32
	SurfaceType             [4]enums.SurfaceType
}

func (d CarTelemetryData) Fields() map[string]any {
	return map[string]any{
		"speed":                     d.Speed,
		"throttle":                  d.Throttle,
		"steer":                     d.Steer,
		"brake":                     d.Brake,
		"clutch":                    d.Clutch,
		"gear":                      d.Gear,
		"engine-rpm":                d.EngineRPM,
		"drs":                       d.DRS,
		"rev-lights-percent":        d.RevLightsPercent,
		"rev-lights-bit-value":      d.RevLightsBitValue,
		"brakes-temperature":        d.BrakesTemperature,
		"tyres-surface-temperature": d.TyresSurfaceTemperature,
		"tyres-inner-temperature":   d.TyresInnerTemperature,
		"engine-temperature":        d.EngineTemperature,
		"tyres-pressure":            d.TyresPressure,
		"surface-type":              mapSlice(d.SurfaceType[:], enums.SurfaceType.String),
	}
}

type CarTelemetry struct {
	PacketHeader                 Header
	Cars                         [NumCars]CarTelemetryData
	MFDPanelIndex                uint8 // 255 = closed
	MFDPanelIndexSecondaryPlayer uint8
	SuggestedGear                int8 // 0 if no gear suggested
}

type carTelemetryWire struct {
	Cars                         [NumCars]CarTelemetryData
	MFDPanelIndex                uint8
	MFDPanelIndexSecondaryPlayer uint8
	SuggestedGear                int8
}

func DecodeCarTelemetry(h Header, payload []byte) (*CarTelemetry, error) {
	var w carTelemetryWire
	if err := decodeWire(IDCarTelemetry.String(), payload, &w); err != nil {
		return nil, err
	}
	return &CarTelemetry{
		PacketHeader:                 h,
		Cars:                         w.Cars,
		MFDPanelIndex:                w.MFDPanelIndex,
		MFDPanelIndexSecondaryPlayer: w.MFDPanelIndexSecondaryPlayer,
		SuggestedGear:                w.SuggestedGear,
	}, nil
}

func (p *CarTelemetry) Header() Header { return p.PacketHeader }

func (p *CarTelemetry) MarshalBinary() ([]byte, error) {
	return encodeWire(&carTelemetryWire{
		Cars:                         p.Cars,
		MFDPanelIndex:                p.MFDPanelIndex,
		MFDPanelIndexSecondaryPlayer: p.MFDPanelIndexSecondaryPlayer,
		SuggestedGear:                p.SuggestedGear,
	})
}

func (p *CarTelemetry) Fields() map[string]any {
	return map[string]any{
		"header":                           p.PacketHeader.Fields(),
		"car-telemetry-data":               fieldsOf(p.Cars[:]),
		"mfd-panel-index":                  p.MFDPanelIndex,
		"mfd-panel-index-secondary-player": p.MFDPanelIndexSecondaryPlayer,
		"suggested-gear":                   p.SuggestedGear,
	}
}
