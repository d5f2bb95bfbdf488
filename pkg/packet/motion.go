package packet

// CarMotion is the motion record of one car. The layout is the same in all years.
type CarMotion struct {
	WorldPositionX     float32
	WorldPositionY     float32
	WorldPositionZ     float32
	WorldVelocityX     float32
	WorldVelocityY     float32
	WorldVelocityZ     float32
	WorldForwardDirX   int16 // normalised, divide by 32767.0
	WorldForwardDirY   int16
	WorldForwardDirZ   int16
	WorldRightDirX     int16
	WorldRightDirY     int16
	WorldRightDirZ     int16
	GForceLateral      float32
	GForceLongitudinal float32
	GForceVertical     float32
	Yaw                float32
	Pitch              float32
	Roll               float32
}

func (c CarMotion) Fields() map[string]any {
	return map[string]any{
		"world-position-x":     c.WorldPositionX,
		"world-position-y":     c.WorldPositionY,
		"world-position-z":     c.WorldPositionZ,
		"world-velocity-x":     c.WorldVelocityX,
		"world-velocity-y":     c.WorldVelocityY,
		"world-velocity-z":     c.WorldVelocityZ,
		"world-forward-dir-x":  c.WorldForwardDirX,
		"world-forward-dir-y":  c.WorldForwardDirY,
		"world-forward-dir-z":  c.WorldForwardDirZ,
		"world-right-dir-x":    c.WorldRightDirX,
		"world-right-dir-y":    c.WorldRightDirY,
		"world-right-dir-z":    c.WorldRightDirZ,
		"g-force-lateral":      c.GForceLateral,
		"g-force-longitudinal": c.GForceLongitudinal,
		"g-force-vertical":     c.GForceVertical,
		"yaw":                  c.Yaw,
		"pitch":                c.Pitch,
		"roll":                 c.Roll,
	}
}

type Motion struct {
	PacketHeader  Header
	CarMotionData [NumCars]CarMotion
}

func DecodeMotion(h Header, payload []byte) (*Motion, error) {
	p := &Motion{PacketHeader: h}
	if err := decodeWire(IDMotion.String(), payload, &p.CarMotionData); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Motion) Header() Header { return p.PacketHeader }

func (p *Motion) MarshalBinary() ([]byte, error) {
	return encodeWire(&p.CarMotionData)
}

func (p *Motion) Fields() map[string]any {
	return map[string]any{
		"header":          p.PacketHeader.Fields(),
		"car-motion-data": fieldsOf(p.CarMotionData[:]),
	}
}
