package packet

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

// MotionExData holds the extended motion fields of the player car known in all years.
// Wheel arrays are ordered RL, RR, FL, FR.
type MotionExData struct {
	SuspensionPosition     [4]float32
	SuspensionVelocity     [4]float32
	SuspensionAcceleration [4]float32
	WheelSpeed             [4]float32
	WheelSlipRatio         [4]float32
	WheelSlipAngle         [4]float32
	WheelLatForce          [4]float32
	WheelLongForce         [4]float32
	HeightOfCOGAboveGround float32
	LocalVelocityX         float32
	LocalVelocityY         float32
	LocalVelocityZ         float32
	AngularVelocityX       float32
	AngularVelocityY       float32
	AngularVelocityZ       float32
	AngularAccelerationX   float32
	AngularAccelerationY   float32
	AngularAccelerationZ   float32
	FrontWheelsAngle       float32
	WheelVertForce         [4]float32
}

// MotionEx is the extended motion data of the player car.
type MotionEx struct {
	PacketHeader Header
	MotionExData

	// since F1 24
	FrontAeroHeight omit.Val[float32]
	RearAeroHeight  omit.Val[float32]
	FrontRollAngle  omit.Val[float32]
	RearRollAngle   omit.Val[float32]
	ChassisYaw      omit.Val[float32]

	// since F1 25
	ChassisPitch    omit.Val[float32]
	WheelCamber     omit.Val[[4]float32]
	WheelCamberGain omit.Val[[4]float32]
}

type motionEx24Extra struct {
	FrontAeroHeight float32
	RearAeroHeight  float32
	FrontRollAngle  float32
	RearRollAngle   float32
	ChassisYaw      float32
}

type motionEx25Extra struct {
	ChassisPitch    float32
	WheelCamber     [4]float32
	WheelCamberGain [4]float32
}

type (
	motionEx23 struct {
		Data MotionExData
	}
	motionEx24 struct {
		Data    MotionExData
		Extra24 motionEx24Extra
	}
	motionEx25 struct {
		Data    MotionExData
		Extra24 motionEx24Extra
		Extra25 motionEx25Extra
	}
)

func DecodeMotionEx(h Header, payload []byte) (*MotionEx, error) {
	p := &MotionEx{PacketHeader: h}
	name := IDMotionEx.String()
	switch h.Year() {
	case enums.Year23:
		var w motionEx23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.MotionExData = w.Data
	case enums.Year24:
		var w motionEx24
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.MotionExData = w.Data
		p.set24(w.Extra24)
	default:
		var w motionEx25
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.MotionExData = w.Data
		p.set24(w.Extra24)
		p.ChassisPitch = omit.From(w.Extra25.ChassisPitch)
		p.WheelCamber = omit.From(w.Extra25.WheelCamber)
		p.WheelCamberGain = omit.From(w.Extra25.WheelCamberGain)
	}
	return p, nil
}

func (p *MotionEx) set24(e motionEx24Extra) {
	p.FrontAeroHeight = omit.From(e.FrontAeroHeight)
	p.RearAeroHeight = omit.From(e.RearAeroHeight)
	p.FrontRollAngle = omit.From(e.FrontRollAngle)
	p.RearRollAngle = omit.From(e.RearRollAngle)
	p.ChassisYaw = omit.From(e.ChassisYaw)
}

func (p *MotionEx) extra24() motionEx24Extra {
	return motionEx24Extra{
		FrontAeroHeight: orZero(p.FrontAeroHeight),
		RearAeroHeight:  orZero(p.RearAeroHeight),
		FrontRollAngle:  orZero(p.FrontRollAngle),
		RearRollAngle:   orZero(p.RearRollAngle),
		ChassisYaw:      orZero(p.ChassisYaw),
	}
}

func (p *MotionEx) Header() Header { return p.PacketHeader }

func (p *MotionEx) MarshalBinary() ([]byte, error) {
	switch p.PacketHeader.Year() {
	case enums.Year23:
		return encodeWire(&motionEx23{Data: p.MotionExData})
	case enums.Year24:
		return encodeWire(&motionEx24{Data: p.MotionExData, Extra24: p.extra24()})
	default:
		return encodeWire(&motionEx25{
			Data:    p.MotionExData,
			Extra24: p.extra24(),
			Extra25: motionEx25Extra{
				ChassisPitch:    orZero(p.ChassisPitch),
				WheelCamber:     orZero(p.WheelCamber),
				WheelCamberGain: orZero(p.WheelCamberGain),
			},
		})
	}
}

func (p *MotionEx) Fields() map[string]any {
	ret := map[string]any{
		"header":                     p.PacketHeader.Fields(),
		"suspension-position":        p.SuspensionPosition,
		"suspension-velocity":        p.SuspensionVelocity,
		"suspension-acceleration":    p.SuspensionAcceleration,
		"wheel-speed":                p.WheelSpeed,
		"wheel-slip-ratio":           p.WheelSlipRatio,
		"wheel-slip-angle":           p.WheelSlipAngle,
		"wheel-lat-force":            p.WheelLatForce,
		"wheel-long-force":           p.WheelLongForce,
		"height-of-cog-above-ground": p.HeightOfCOGAboveGround,
		"local-velocity-x":           p.LocalVelocityX,
		"local-velocity-y":           p.LocalVelocityY,
		"local-velocity-z":           p.LocalVelocityZ,
		"angular-velocity-x":         p.AngularVelocityX,
		"angular-velocity-y":         p.AngularVelocityY,
		"angular-velocity-z":         p.AngularVelocityZ,
		"angular-acceleration-x":     p.AngularAccelerationX,
		"angular-acceleration-y":     p.AngularAccelerationY,
		"angular-acceleration-z":     p.AngularAccelerationZ,
		"front-wheels-angle":         p.FrontWheelsAngle,
		"wheel-vert-force":           p.WheelVertForce,
	}
	setOpt(ret, "front-aero-height", p.FrontAeroHeight)
	setOpt(ret, "rear-aero-height", p.RearAeroHeight)
	setOpt(ret, "front-roll-angle", p.FrontRollAngle)
	setOpt(ret, "rear-roll-angle", p.RearRollAngle)
	setOpt(ret, "chassis-yaw", p.ChassisYaw)
	setOpt(ret, "chassis-pitch", p.ChassisPitch)
	setOpt(ret, "wheel-camber", p.WheelCamber)
	setOpt(ret, "wheel-camber-gain", p.WheelCamberGain)
	return ret
}
