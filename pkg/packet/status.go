package packet

import "github.com/mpapenbr/f1tel/pkg/enums"

// MaxERSStoreEnergy is the capacity of the ERS store in Joules.
const MaxERSStoreEnergy = 4_000_000

type CarStatusData struct {
	TractionControl         enums.TractionControl
	AntiLockBrakes          bool
	FuelMix                 enums.FuelMix
	FrontBrakeBias          uint8 // percentage
	PitLimiterStatus        bool
	FuelInTank              float32
	FuelCapacity            float32
	FuelRemainingLaps       float32 // value on MFD
	MaxRPM                  uint16
	IdleRPM                 uint16
	MaxGears                uint8
	DRSAllowed              enums.DRSAllowed
	DRSActivationDistance   uint16 // metres, 0 = not available
	ActualTyreCompound      enums.ActualTyreCompound
	VisualTyreCompound      enums.VisualTyreCompound
	TyresAgeLaps            uint8
	VehicleFIAFlags         enums.FIAFlag
	EnginePowerICE          float32 // W
	EnginePowerMGUK         float32 // W
	ERSStoreEnergy          float32 // J
	ERSDeployMode           enums.ERSDeployMode
	ERSHarvestedThisLapMGUK float32
	ERSHarvestedThisLapMGUH float32
	ERSDeployedThisLap      float32
	NetworkPaused           bool
}

// ERSStorePercent returns the ERS store energy relative to MaxERSStoreEnergy.
func (d CarStatusData) ERSStorePercent() float64 {
	return float64(d.ERSStoreEnergy) / MaxERSStoreEnergy * 100
}

func (d CarStatusData) Fields() map[string]any {
	return map[string]any{
		"traction-control":            d.TractionControl.String(),
		"anti-lock-brakes":            d.AntiLockBrakes,
		"fuel-mix":                    d.FuelMix.String(),
		"front-brake-bias":            d.FrontBrakeBias,
		"pit-limiter-status":          d.PitLimiterStatus,
		"fuel-in-tank":                d.FuelInTank,
		"fuel-capacity":               d.FuelCapacity,
		"fuel-remaining-laps":         d.FuelRemainingLaps,
		"max-rpm":                     d.MaxRPM,
		"idle-rpm":                    d.IdleRPM,
		"max-gears":                   d.MaxGears,
		"drs-allowed":                 d.DRSAllowed.String(),
		"drs-activation-distance":     d.DRSActivationDistance,
		"actual-tyre-compound":        d.ActualTyreCompound.String(),
		"visual-tyre-compound":        d.VisualTyreCompound.String(),
		"tyres-age-laps":              d.TyresAgeLaps,
		"vehicle-fia-flags":           d.VehicleFIAFlags.String(),
		"engine-power-ice":            d.EnginePowerICE,
		"engine-power-mguk":           d.EnginePowerMGUK,
		"ers-store-energy":            d.ERSStoreEnergy,
		"ers-max-capacity":            MaxERSStoreEnergy,
		"ers-deploy-mode":             d.ERSDeployMode.String(),
		"ers-harvested-this-lap-mguk": d.ERSHarvestedThisLapMGUK,
		"ers-harvested-this-lap-mguh": d.ERSHarvestedThisLapMGUH,
		"ers-deployed-this-lap":       d.ERSDeployedThisLap,
		"network-paused":              d.NetworkPaused,
	}
}

type CarStatus struct {
	PacketHeader Header
	Cars         [NumCars]CarStatusData
}

func DecodeCarStatus(h Header, payload []byte) (*CarStatus, error) {
	p := &CarStatus{PacketHeader: h}
	if err := decodeWire(IDCarStatus.String(), payload, &p.Cars); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *CarStatus) Header() Header { return p.PacketHeader }

func (p *CarStatus) MarshalBinary() ([]byte, error) {
	return encodeWire(&p.Cars)
}

func (p *CarStatus) Fields() map[string]any {
	return map[string]any{
		"header":          p.PacketHeader.Fields(),
		"car-status-data": fieldsOf(p.Cars[:]),
	}
}
