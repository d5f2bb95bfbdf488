package packet

import (
	"encoding/binary"
	"fmt"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

const eventDetailSize = 12

// EventDetail is the tag specific body of an event.
// Events without a body (session start, lights out, ...) have a nil detail.
type EventDetail interface {
	Fields() map[string]any
	// wire returns the value written to the detail area for the given year
	wire(year enums.Year) any
}

type FastestLap struct {
	VehicleIdx uint8
	LapTime    float32 // seconds
}

type Retirement struct {
	VehicleIdx uint8
	Reason     omit.Val[enums.ResultReason] // since F1 25
}

type TeamMateInPits struct {
	VehicleIdx uint8
}

type RaceWinner struct {
	VehicleIdx uint8
}

type Penalty struct {
	PenaltyType      enums.PenaltyType
	InfringementType enums.InfringementType
	VehicleIdx       uint8
	OtherVehicleIdx  uint8
	Time             uint8 // seconds
	LapNum           uint8
	PlacesGained     uint8
}

type SpeedTrap struct {
	VehicleIdx                 uint8
	Speed                      float32
	IsOverallFastestInSession  bool
	IsDriverFastestInSession   bool
	FastestVehicleIdxInSession uint8
	FastestSpeedInSession      float32
}

type StartLights struct {
	NumLights uint8
}

type DriveThroughPenaltyServed struct {
	VehicleIdx uint8
}

type StopGoPenaltyServed struct {
	VehicleIdx uint8
	StopTime   omit.Val[float32] // since F1 25
}

type Flashback struct {
	FlashbackFrameIdentifier uint32
	FlashbackSessionTime     float32
}

type Buttons struct {
	ButtonStatus enums.ButtonFlags
}

type Overtake struct {
	OvertakingVehicleIdx     uint8
	BeingOvertakenVehicleIdx uint8
}

type SafetyCar struct {
	SafetyCarType enums.SafetyCarStatus
	EventType     enums.SafetyCarEventType
}

type Collision struct {
	Vehicle1Idx uint8
	Vehicle2Idx uint8
}

type (
	vehicleIdxWire struct {
		VehicleIdx uint8
	}
	retirement25 struct {
		VehicleIdx uint8
		Reason     enums.ResultReason
	}
	stopGoPenaltyServed25 struct {
		VehicleIdx uint8
		StopTime   float32
	}
)

func (d FastestLap) wire(enums.Year) any                { return &d }
func (d TeamMateInPits) wire(enums.Year) any            { return &d }
func (d RaceWinner) wire(enums.Year) any                { return &d }
func (d Penalty) wire(enums.Year) any                   { return &d }
func (d SpeedTrap) wire(enums.Year) any                 { return &d }
func (d StartLights) wire(enums.Year) any               { return &d }
func (d DriveThroughPenaltyServed) wire(enums.Year) any { return &d }
func (d Flashback) wire(enums.Year) any                 { return &d }
func (d Buttons) wire(enums.Year) any                   { return &d }
func (d Overtake) wire(enums.Year) any                  { return &d }
func (d SafetyCar) wire(enums.Year) any                 { return &d }
func (d Collision) wire(enums.Year) any                 { return &d }

func (d Retirement) wire(year enums.Year) any {
	if year < enums.Year25 {
		return &vehicleIdxWire{VehicleIdx: d.VehicleIdx}
	}
	return &retirement25{VehicleIdx: d.VehicleIdx, Reason: orZero(d.Reason)}
}

func (d StopGoPenaltyServed) wire(year enums.Year) any {
	if year < enums.Year25 {
		return &vehicleIdxWire{VehicleIdx: d.VehicleIdx}
	}
	return &stopGoPenaltyServed25{VehicleIdx: d.VehicleIdx, StopTime: orZero(d.StopTime)}
}

func (d FastestLap) Fields() map[string]any {
	return map[string]any{"vehicle-idx": d.VehicleIdx, "lap-time": d.LapTime}
}

func (d Retirement) Fields() map[string]any {
	ret := map[string]any{"vehicle-idx": d.VehicleIdx}
	setOptWith(ret, "reason", d.Reason, enums.ResultReason.String)
	return ret
}

func (d TeamMateInPits) Fields() map[string]any {
	return map[string]any{"vehicle-idx": d.VehicleIdx}
}

func (d RaceWinner) Fields() map[string]any {
	return map[string]any{"vehicle-idx": d.VehicleIdx}
}

func (d Penalty) Fields() map[string]any {
	return map[string]any{
		"penalty-type":      d.PenaltyType.String(),
		"infringement-type": d.InfringementType.String(),
		"vehicle-idx":       d.VehicleIdx,
		"other-vehicle-idx": d.OtherVehicleIdx,
		"time":              d.Time,
		"lap-num":           d.LapNum,
		"places-gained":     d.PlacesGained,
	}
}

func (d SpeedTrap) Fields() map[string]any {
	return map[string]any{
		"vehicle-idx":                    d.VehicleIdx,
		"speed":                          d.Speed,
		"is-overall-fastest-in-session":  d.IsOverallFastestInSession,
		"is-driver-fastest-in-session":   d.IsDriverFastestInSession,
		"fastest-vehicle-idx-in-session": d.FastestVehicleIdxInSession,
		"fastest-speed-in-session":       d.FastestSpeedInSession,
	}
}

func (d StartLights) Fields() map[string]any {
	return map[string]any{"num-lights": d.NumLights}
}

func (d DriveThroughPenaltyServed) Fields() map[string]any {
	return map[string]any{"vehicle-idx": d.VehicleIdx}
}

func (d StopGoPenaltyServed) Fields() map[string]any {
	ret := map[string]any{"vehicle-idx": d.VehicleIdx}
	setOpt(ret, "stop-time", d.StopTime)
	return ret
}

func (d Flashback) Fields() map[string]any {
	return map[string]any{
		"flashback-frame-identifier": d.FlashbackFrameIdentifier,
		"flashback-session-time":     d.FlashbackSessionTime,
	}
}

func (d Buttons) Fields() map[string]any {
	return map[string]any{
		"button-status": uint32(d.ButtonStatus),
		"buttons":       d.ButtonStatus.Buttons(),
		"udp-actions":   d.ButtonStatus.Actions(),
	}
}

func (d Overtake) Fields() map[string]any {
	return map[string]any{
		"overtaking-vehicle-idx":      d.OvertakingVehicleIdx,
		"being-overtaken-vehicle-idx": d.BeingOvertakenVehicleIdx,
	}
}

func (d SafetyCar) Fields() map[string]any {
	return map[string]any{
		"safety-car-type": d.SafetyCarType.String(),
		"event-type":      d.EventType.String(),
	}
}

func (d Collision) Fields() map[string]any {
	return map[string]any{"vehicle-1-idx": d.Vehicle1Idx, "vehicle-2-idx": d.Vehicle2Idx}
}

type detailDecoder func(year enums.Year, b []byte) (EventDetail, error)

func plainDetail[T EventDetail]() detailDecoder {
	return func(_ enums.Year, b []byte) (EventDetail, error) {
		var v T
		if _, err := binary.Decode(b, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// events without detail are mapped to nil
var eventDetails = map[enums.EventCode]detailDecoder{
	enums.EventSessionStarted:     nil,
	enums.EventSessionEnded:       nil,
	enums.EventFastestLap:         plainDetail[FastestLap](),
	enums.EventRetirement:         decodeRetirement,
	enums.EventDRSEnabled:         nil,
	enums.EventDRSDisabled:        nil,
	enums.EventTeamMateInPits:     plainDetail[TeamMateInPits](),
	enums.EventChequeredFlag:      nil,
	enums.EventRaceWinner:         plainDetail[RaceWinner](),
	enums.EventPenalty:            plainDetail[Penalty](),
	enums.EventSpeedTrap:          plainDetail[SpeedTrap](),
	enums.EventStartLights:        plainDetail[StartLights](),
	enums.EventLightsOut:          nil,
	enums.EventDriveThroughServed: plainDetail[DriveThroughPenaltyServed](),
	enums.EventStopGoServed:       decodeStopGoServed,
	enums.EventFlashback:          plainDetail[Flashback](),
	enums.EventButtons:            plainDetail[Buttons](),
	enums.EventRedFlag:            nil,
	enums.EventOvertake:           plainDetail[Overtake](),
	enums.EventSafetyCar:          plainDetail[SafetyCar](),
	enums.EventCollision:          plainDetail[Collision](),
}

func decodeRetirement(year enums.Year, b []byte) (EventDetail, error) {
	if year < enums.Year25 {
		return Retirement{VehicleIdx: b[0]}, nil
	}
	var w retirement25
	if _, err := binary.Decode(b, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	return Retirement{VehicleIdx: w.VehicleIdx, Reason: omit.From(w.Reason)}, nil
}

func decodeStopGoServed(year enums.Year, b []byte) (EventDetail, error) {
	if year < enums.Year25 {
		return StopGoPenaltyServed{VehicleIdx: b[0]}, nil
	}
	var w stopGoPenaltyServed25
	if _, err := binary.Decode(b, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	return StopGoPenaltyServed{VehicleIdx: w.VehicleIdx, StopTime: omit.From(w.StopTime)}, nil
}

type Event struct {
	PacketHeader Header
	Code         enums.EventCode
	Detail       EventDetail
}

type eventWire struct {
	Code   [4]byte
	Detail [eventDetailSize]byte
}

// DecodeEvent decodes an event packet. Unknown tags (or tags not defined in
// the header's year) fail with ErrUnknownEventCode.
func DecodeEvent(h Header, payload []byte) (*Event, error) {
	var w eventWire
	if err := decodeWire(IDEvent.String(), payload, &w); err != nil {
		return nil, err
	}
	year := h.Year()
	code, ok := enums.EventCodeFrom(year, w.Code)
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownEventCode, string(w.Code[:]), year)
	}
	p := &Event{PacketHeader: h, Code: code}
	if dec := eventDetails[code]; dec != nil {
		d, err := dec(year, w.Detail[:])
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", code, err)
		}
		p.Detail = d
	}
	return p, nil
}

func (p *Event) Header() Header { return p.PacketHeader }

func (p *Event) MarshalBinary() ([]byte, error) {
	w := eventWire{Code: p.Code.Bytes()}
	if p.Detail != nil {
		b, err := encodeWire(p.Detail.wire(p.PacketHeader.Year()))
		if err != nil {
			return nil, err
		}
		if len(b) > eventDetailSize {
			return nil, &LengthError{Packet: "event " + p.Code.String(), Want: eventDetailSize, Got: len(b)}
		}
		copy(w.Detail[:], b)
	}
	return encodeWire(&w)
}

func (p *Event) Fields() map[string]any {
	ret := map[string]any{
		"header":            p.PacketHeader.Fields(),
		"event-string-code": p.Code.String(),
		"event-name":        p.Code.Name(),
	}
	if p.Detail != nil {
		ret["event-details"] = p.Detail.Fields()
	}
	return ret
}
