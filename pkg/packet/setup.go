package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

type CarSetupData struct {
	FrontWing              uint8
	RearWing               uint8
	OnThrottle             uint8 // differential adjustment on throttle (percentage)
	OffThrottle            uint8
	FrontCamber            float32
	RearCamber             float32
	FrontToe               float32
	RearToe                float32
	FrontSuspension        uint8
	RearSuspension         uint8
	FrontAntiRollBar       uint8
	RearAntiRollBar        uint8
	FrontSuspensionHeight  uint8
	RearSuspensionHeight   uint8
	BrakePressure          uint8           // percentage
	BrakeBias              uint8           // percentage
	EngineBraking          omit.Val[uint8] // since F1 24, percentage
	RearLeftTyrePressure   float32         // PSI
	RearRightTyrePressure  float32
	FrontLeftTyrePressure  float32
	FrontRightTyrePressure float32
	Ballast                uint8
	FuelLoad               float32
}

func (d CarSetupData) Fields() map[string]any {
	ret := map[string]any{
		"front-wing":                d.FrontWing,
		"rear-wing":                 d.RearWing,
		"on-throttle":               d.OnThrottle,
		"off-throttle":              d.OffThrottle,
		"front-camber":              d.FrontCamber,
		"rear-camber":               d.RearCamber,
		"front-toe":                 d.FrontToe,
		"rear-toe":                  d.RearToe,
		"front-suspension":          d.FrontSuspension,
		"rear-suspension":           d.RearSuspension,
		"front-anti-roll-bar":       d.FrontAntiRollBar,
		"rear-anti-roll-bar":        d.RearAntiRollBar,
		"front-suspension-height":   d.FrontSuspensionHeight,
		"rear-suspension-height":    d.RearSuspensionHeight,
		"brake-pressure":            d.BrakePressure,
		"brake-bias":                d.BrakeBias,
		"rear-left-tyre-pressure":   d.RearLeftTyrePressure,
		"rear-right-tyre-pressure":  d.RearRightTyrePressure,
		"front-left-tyre-pressure":  d.FrontLeftTyrePressure,
		"front-right-tyre-pressure": d.FrontRightTyrePressure,
		"ballast":                   d.Ballast,
		"fuel-load":                 d.FuelLoad,
	}
	setOpt(ret, "engine-braking", d.EngineBraking)
	return ret
}

type setupHeadWire struct {
	FrontWing             uint8
	RearWing              uint8
	OnThrottle            uint8
	OffThrottle           uint8
	FrontCamber           float32
	RearCamber            float32
	FrontToe              float32
	RearToe               float32
	FrontSuspension       uint8
	RearSuspension        uint8
	FrontAntiRollBar      uint8
	RearAntiRollBar       uint8
	FrontSuspensionHeight uint8
	RearSuspensionHeight  uint8
	BrakePressure         uint8
	BrakeBias             uint8
}

type setupTailWire struct {
	RearLeftTyrePressure   float32
	RearRightTyrePressure  float32
	FrontLeftTyrePressure  float32
	FrontRightTyrePressure float32
	Ballast                uint8
	FuelLoad               float32
}

type (
	carSetup23 struct {
		Head setupHeadWire
		Tail setupTailWire
	}
	carSetup24 struct {
		Head          setupHeadWire
		EngineBraking uint8
		Tail          setupTailWire
	}
)

func newCarSetupData(h *setupHeadWire, t *setupTailWire) CarSetupData {
	return CarSetupData{
		FrontWing:              h.FrontWing,
		RearWing:               h.RearWing,
		OnThrottle:             h.OnThrottle,
		OffThrottle:            h.OffThrottle,
		FrontCamber:            h.FrontCamber,
		RearCamber:             h.RearCamber,
		FrontToe:               h.FrontToe,
		RearToe:                h.RearToe,
		FrontSuspension:        h.FrontSuspension,
		RearSuspension:         h.RearSuspension,
		FrontAntiRollBar:       h.FrontAntiRollBar,
		RearAntiRollBar:        h.RearAntiRollBar,
		FrontSuspensionHeight:  h.FrontSuspensionHeight,
		RearSuspensionHeight:   h.RearSuspensionHeight,
		BrakePressure:          h.BrakePressure,
		BrakeBias:              h.BrakeBias,
		RearLeftTyrePressure:   t.RearLeftTyrePressure,
		RearRightTyrePressure:  t.RearRightTyrePressure,
		FrontLeftTyrePressure:  t.FrontLeftTyrePressure,
		FrontRightTyrePressure: t.FrontRightTyrePressure,
		Ballast:                t.Ballast,
		FuelLoad:               t.FuelLoad,
	}
}

func (d *CarSetupData) headWire() setupHeadWire {
	return setupHeadWire{
		FrontWing:             d.FrontWing,
		RearWing:              d.RearWing,
		OnThrottle:            d.OnThrottle,
		OffThrottle:           d.OffThrottle,
		FrontCamber:           d.FrontCamber,
		RearCamber:            d.RearCamber,
		FrontToe:              d.FrontToe,
		RearToe:               d.RearToe,
		FrontSuspension:       d.FrontSuspension,
		RearSuspension:        d.RearSuspension,
		FrontAntiRollBar:      d.FrontAntiRollBar,
		RearAntiRollBar:       d.RearAntiRollBar,
		FrontSuspensionHeight: d.FrontSuspensionHeight,
		RearSuspensionHeight:  d.RearSuspensionHeight,
		BrakePressure:         d.BrakePressure,
		BrakeBias:             d.BrakeBias,
	}
}

func (d *CarSetupData) tailWire() setupTailWire {
	return setupTailWire{
		RearLeftTyrePressure:   d.RearLeftTyrePressure,
		RearRightTyrePressure:  d.RearRightTyrePressure,
		FrontLeftTyrePressure:  d.FrontLeftTyrePressure,
		FrontRightTyrePressure: d.FrontRightTyrePressure,
		Ballast:                d.Ballast,
		FuelLoad:               d.FuelLoad,
	}
}

type CarSetups struct {
	PacketHeader       Header
	Cars               [NumCars]CarSetupData
	NextFrontWingValue omit.Val[float32] // since F1 24
}

type (
	carSetups23 struct {
		Cars [NumCars]carSetup23
	}
	carSetups24 struct {
		Cars               [NumCars]carSetup24
		NextFrontWingValue float32
	}
)

func DecodeCarSetups(h Header, payload []byte) (*CarSetups, error) {
	p := &CarSetups{PacketHeader: h}
	name := IDCarSetups.String()
	if h.Year() == enums.Year23 {
		var w carSetups23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		for i := range w.Cars {
			p.Cars[i] = newCarSetupData(&w.Cars[i].Head, &w.Cars[i].Tail)
		}
		return p, nil
	}
	var w carSetups24
	if err := decodeWire(name, payload, &w); err != nil {
		return nil, err
	}
	for i := range w.Cars {
		p.Cars[i] = newCarSetupData(&w.Cars[i].Head, &w.Cars[i].Tail)
		p.Cars[i].EngineBraking = omit.From(w.Cars[i].EngineBraking)
	}
	p.NextFrontWingValue = omit.From(w.NextFrontWingValue)
	return p, nil
}

func (p *CarSetups) Header() Header { return p.PacketHeader }

func (p *CarSetups) MarshalBinary() ([]byte, error) {
	if p.PacketHeader.Year() == enums.Year23 {
		var w carSetups23
		for i := range p.Cars {
			w.Cars[i] = carSetup23{Head: p.Cars[i].headWire(), Tail: p.Cars[i].tailWire()}
		}
		return encodeWire(&w)
	}
	w := carSetups24{NextFrontWingValue: orZero(p.NextFrontWingValue)}
	for i := range p.Cars {
		w.Cars[i] = carSetup24{
			Head:          p.Cars[i].headWire(),
			EngineBraking: orZero(p.Cars[i].EngineBraking),
			Tail:          p.Cars[i].tailWire(),
		}
	}
	return encodeWire(&w)
}

func (p *CarSetups) Fields() map[string]any {
	ret := map[string]any{
		"header":         p.PacketHeader.Fields(),
		"car-setup-data": fieldsOf(p.Cars[:]),
	}
	setOpt(ret, "next-front-wing-value", p.NextFrontWingValue)
	return ret
}
