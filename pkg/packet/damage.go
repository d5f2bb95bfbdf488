package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

// CarDamageData is the damage record of one car. All wheel arrays are ordered
// RL, RR, FL, FR. Wear and damage values are percentages.
type CarDamageData struct {
	TyresWear            [4]float32
	TyresDamage          [4]uint8
	BrakesDamage         [4]uint8
	TyreBlisters         omit.Val[[4]uint8] // since F1 25
	FrontLeftWingDamage  uint8
	FrontRightWingDamage uint8
	RearWingDamage       uint8
	FloorDamage          uint8
	DiffuserDamage       uint8
	SidepodDamage        uint8
	DRSFault             bool
	ERSFault             bool
	GearBoxDamage        uint8
	EngineDamage         uint8
	EngineMGUHWear       uint8
	EngineESWear         uint8
	EngineCEWear         uint8
	EngineICEWear        uint8
	EngineMGUKWear       uint8
	EngineTCWear         uint8
	EngineBlown          bool
	EngineSeized         bool
}

func (d CarDamageData) Fields() map[string]any {
	ret := map[string]any{
		"tyres-wear":              d.TyresWear,
		"tyres-damage":            d.TyresDamage,
		"brakes-damage":           d.BrakesDamage,
		"front-left-wing-damage":  d.FrontLeftWingDamage,
		"front-right-wing-damage": d.FrontRightWingDamage,
		"rear-wing-damage":        d.RearWingDamage,
		"floor-damage":            d.FloorDamage,
		"diffuser-damage":         d.DiffuserDamage,
		"sidepod-damage":          d.SidepodDamage,
		"drs-fault":               d.DRSFault,
		"ers-fault":               d.ERSFault,
		"gear-box-damage":         d.GearBoxDamage,
		"engine-damage":           d.EngineDamage,
		"engine-mguh-wear":        d.EngineMGUHWear,
		"engine-es-wear":          d.EngineESWear,
		"engine-ce-wear":          d.EngineCEWear,
		"engine-ice-wear":         d.EngineICEWear,
		"engine-mguk-wear":        d.EngineMGUKWear,
		"engine-tc-wear":          d.EngineTCWear,
		"engine-blown":            d.EngineBlown,
		"engine-seized":           d.EngineSeized,
	}
	setOpt(ret, "tyre-blisters", d.TyreBlisters)
	return ret
}

type damageBodyWire struct {
	FrontLeftWingDamage  uint8
	FrontRightWingDamage uint8
	RearWingDamage       uint8
	FloorDamage          uint8
	DiffuserDamage       uint8
	SidepodDamage        uint8
	DRSFault             bool
	ERSFault             bool
	GearBoxDamage        uint8
	EngineDamage         uint8
	EngineMGUHWear       uint8
	EngineESWear         uint8
	EngineCEWear         uint8
	EngineICEWear        uint8
	EngineMGUKWear       uint8
	EngineTCWear         uint8
	EngineBlown          bool
	EngineSeized         bool
}

type (
	carDamage23 struct {
		TyresWear    [4]float32
		TyresDamage  [4]uint8
		BrakesDamage [4]uint8
		Body         damageBodyWire
	}
	carDamage25 struct {
		TyresWear    [4]float32
		TyresDamage  [4]uint8
		BrakesDamage [4]uint8
		TyreBlisters [4]uint8
		Body         damageBodyWire
	}
)

func newCarDamageData(wear [4]float32, tyres, brakes [4]uint8, b *damageBodyWire) CarDamageData {
	return CarDamageData{
		TyresWear:            wear,
		TyresDamage:          tyres,
		BrakesDamage:         brakes,
		FrontLeftWingDamage:  b.FrontLeftWingDamage,
		FrontRightWingDamage: b.FrontRightWingDamage,
		RearWingDamage:       b.RearWingDamage,
		FloorDamage:          b.FloorDamage,
		DiffuserDamage:       b.DiffuserDamage,
		SidepodDamage:        b.SidepodDamage,
		DRSFault:             b.DRSFault,
		ERSFault:             b.ERSFault,
		GearBoxDamage:        b.GearBoxDamage,
		EngineDamage:         b.EngineDamage,
		EngineMGUHWear:       b.EngineMGUHWear,
		EngineESWear:         b.EngineESWear,
		EngineCEWear:         b.EngineCEWear,
		EngineICEWear:        b.EngineICEWear,
		EngineMGUKWear:       b.EngineMGUKWear,
		EngineTCWear:         b.EngineTCWear,
		EngineBlown:          b.EngineBlown,
		EngineSeized:         b.EngineSeized,
	}
}

func (d *CarDamageData) bodyWire() damageBodyWire {
	return damageBodyWire{
		FrontLeftWingDamage:  d.FrontLeftWingDamage,
		FrontRightWingDamage: d.FrontRightWingDamage,
		RearWingDamage:       d.RearWingDamage,
		FloorDamage:          d.FloorDamage,
		DiffuserDamage:       d.DiffuserDamage,
		SidepodDamage:        d.SidepodDamage,
		DRSFault:             d.DRSFault,
		ERSFault:             d.ERSFault,
		GearBoxDamage:        d.GearBoxDamage,
		EngineDamage:         d.EngineDamage,
		EngineMGUHWear:       d.EngineMGUHWear,
		EngineESWear:         d.EngineESWear,
		EngineCEWear:         d.EngineCEWear,
		EngineICEWear:        d.EngineICEWear,
		EngineMGUKWear:       d.EngineMGUKWear,
		EngineTCWear:         d.EngineTCWear,
		EngineBlown:          d.EngineBlown,
		EngineSeized:         d.EngineSeized,
	}
}

type CarDamage struct {
	PacketHeader Header
	Cars         [NumCars]CarDamageData
}

func DecodeCarDamage(h Header, payload []byte) (*CarDamage, error) {
	p := &CarDamage{PacketHeader: h}
	name := IDCarDamage.String()
	if h.Year() < enums.Year25 {
		var w [NumCars]carDamage23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		for i := range w {
			p.Cars[i] = newCarDamageData(w[i].TyresWear, w[i].TyresDamage, w[i].BrakesDamage, &w[i].Body)
		}
		return p, nil
	}
	var w [NumCars]carDamage25
	if err := decodeWire(name, payload, &w); err != nil {
		return nil, err
	}
	for i := range w {
		p.Cars[i] = newCarDamageData(w[i].TyresWear, w[i].TyresDamage, w[i].BrakesDamage, &w[i].Body)
		p.Cars[i].TyreBlisters = omit.From(w[i].TyreBlisters)
	}
	return p, nil
}

func (p *CarDamage) Header() Header { return p.PacketHeader }

func (p *CarDamage) MarshalBinary() ([]byte, error) {
	if p.PacketHeader.Year() < enums.Year25 {
		var w [NumCars]carDamage23
		for i, d := range p.Cars {
			w[i] = carDamage23{
				TyresWear:    d.TyresWear,
				TyresDamage:  d.TyresDamage,
				BrakesDamage: d.BrakesDamage,
				Body:         d.bodyWire(),
			}
		}
		return encodeWire(&w)
	}
	var w [NumCars]carDamage25
	for i, d := range p.Cars {
		w[i] = carDamage25{
			TyresWear:    d.TyresWear,
			TyresDamage:  d.TyresDamage,
			BrakesDamage: d.BrakesDamage,
			TyreBlisters: orZero(d.TyreBlisters),
			Body:         d.bodyWire(),
		}
	}
	return encodeWire(&w)
}

func (p *CarDamage) Fields() map[string]any {
	return map[string]any{
		"header":          p.PacketHeader.Fields(),
		"car-damage-data": fieldsOf(p.Cars[:]),
	}
}
