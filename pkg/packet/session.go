package packet

import (
	"maps"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

const (
	maxMarshalZones      = 21
	maxForecastSamples23 = 56
	maxForecastSamples24 = 64
	maxWeekendSessions   = 12
)

type MarshalZone struct {
	ZoneStart float32 // fraction (0..1) of the way through the lap
	ZoneFlag  enums.ZoneFlag
}

func (m MarshalZone) Fields() map[string]any {
	return map[string]any{
		"zone-start": m.ZoneStart,
		"zone-flag":  m.ZoneFlag.String(),
	}
}

type WeatherForecastSample struct {
	SessionType            enums.SessionType
	TimeOffset             uint8 // minutes
	Weather                enums.Weather
	TrackTemperature       int8
	TrackTemperatureChange int8 // 0 = up, 1 = down, 2 = no change
	AirTemperature         int8
	AirTemperatureChange   int8
	RainPercentage         uint8
}

func (w WeatherForecastSample) Fields() map[string]any {
	return map[string]any{
		"session-type":             w.SessionType.String(),
		"time-offset":              w.TimeOffset,
		"weather":                  w.Weather.String(),
		"track-temperature":        w.TrackTemperature,
		"track-temperature-change": w.TrackTemperatureChange,
		"air-temperature":          w.AirTemperature,
		"air-temperature-change":   w.AirTemperatureChange,
		"rain-percentage":          w.RainPercentage,
	}
}

// Assists are the driving aids of the session (0 = off).
type Assists struct {
	SteeringAssist        uint8
	BrakingAssist         uint8 // 0 = off, 1 = low, 2 = medium, 3 = high
	GearboxAssist         uint8 // 1 = manual, 2 = manual & suggested gear, 3 = auto
	PitAssist             uint8
	PitReleaseAssist      uint8
	ERSAssist             uint8
	DRSAssist             uint8
	DynamicRacingLine     uint8 // 0 = off, 1 = corners only, 2 = full
	DynamicRacingLineType uint8 // 0 = 2D, 1 = 3D
}

func (a Assists) Fields() map[string]any {
	return map[string]any{
		"steering-assist":          a.SteeringAssist,
		"braking-assist":           a.BrakingAssist,
		"gearbox-assist":           a.GearboxAssist,
		"pit-assist":               a.PitAssist,
		"pit-release-assist":       a.PitReleaseAssist,
		"ers-assist":               a.ERSAssist,
		"drs-assist":               a.DRSAssist,
		"dynamic-racing-line":      a.DynamicRacingLine,
		"dynamic-racing-line-type": a.DynamicRacingLineType,
	}
}

type Units struct {
	SpeedUnitsLeadPlayer            enums.SpeedUnit
	TemperatureUnitsLeadPlayer      enums.TemperatureUnit
	SpeedUnitsSecondaryPlayer       enums.SpeedUnit
	TemperatureUnitsSecondaryPlayer enums.TemperatureUnit
}

func (u Units) Fields() map[string]any {
	return map[string]any{
		"speed-units-lead-player":            u.SpeedUnitsLeadPlayer.String(),
		"temperature-units-lead-player":      u.TemperatureUnitsLeadPlayer.String(),
		"speed-units-secondary-player":       u.SpeedUnitsSecondaryPlayer.String(),
		"temperature-units-secondary-player": u.TemperatureUnitsSecondaryPlayer.String(),
	}
}

// SessionSettings are the session options reported since F1 24.
type SessionSettings struct {
	EqualCarPerformance          uint8
	RecoveryMode                 uint8
	FlashbackLimit               uint8
	SurfaceType                  uint8 // 0 = simplified, 1 = realistic
	LowFuelMode                  uint8
	RaceStarts                   uint8
	TyreTemperature              uint8
	PitLaneTyreSim               uint8
	CarDamage                    uint8
	CarDamageRate                uint8
	Collisions                   uint8
	CollisionsOffForFirstLapOnly uint8
	MPUnsafePitRelease           uint8
	MPOffForGriefing             uint8
	CornerCuttingStringency      uint8
	ParcFermeRules               uint8
	PitStopExperience            uint8
	SafetyCar                    uint8
	SafetyCarExperience          uint8
	FormationLap                 uint8
	FormationLapExperience       uint8
	RedFlags                     uint8
	AffectsLicenceLevelSolo      uint8
	AffectsLicenceLevelMP        uint8
}

func (s SessionSettings) Fields() map[string]any {
	return map[string]any{
		"equal-car-performance":             s.EqualCarPerformance,
		"recovery-mode":                     s.RecoveryMode,
		"flashback-limit":                   s.FlashbackLimit,
		"surface-type":                      s.SurfaceType,
		"low-fuel-mode":                     s.LowFuelMode,
		"race-starts":                       s.RaceStarts,
		"tyre-temperature":                  s.TyreTemperature,
		"pit-lane-tyre-sim":                 s.PitLaneTyreSim,
		"car-damage":                        s.CarDamage,
		"car-damage-rate":                   s.CarDamageRate,
		"collisions":                        s.Collisions,
		"collisions-off-for-first-lap-only": s.CollisionsOffForFirstLapOnly,
		"mp-unsafe-pit-release":             s.MPUnsafePitRelease,
		"mp-off-for-griefing":               s.MPOffForGriefing,
		"corner-cutting-stringency":         s.CornerCuttingStringency,
		"parc-ferme-rules":                  s.ParcFermeRules,
		"pit-stop-experience":               s.PitStopExperience,
		"safety-car":                        s.SafetyCar,
		"safety-car-experience":             s.SafetyCarExperience,
		"formation-lap":                     s.FormationLap,
		"formation-lap-experience":          s.FormationLapExperience,
		"red-flags":                         s.RedFlags,
		"affects-licence-level-solo":        s.AffectsLicenceLevelSolo,
		"affects-licence-level-mp":          s.AffectsLicenceLevelMP,
	}
}

type Session struct {
	PacketHeader               Header
	Weather                    enums.Weather
	TrackTemperature           int8 // celsius
	AirTemperature             int8 // celsius
	TotalLaps                  uint8
	TrackLength                uint16 // metres
	SessionType                enums.SessionType
	TrackID                    enums.Track
	Formula                    enums.Formula
	SessionTimeLeft            uint16 // seconds
	SessionDuration            uint16 // seconds
	PitSpeedLimit              uint8  // km/h
	GamePaused                 bool
	IsSpectating               bool
	SpectatorCarIndex          uint8
	SliProNativeSupport        bool
	MarshalZones               []MarshalZone
	SafetyCarStatus            enums.SafetyCarStatus
	NetworkGame                bool
	WeatherForecastSamples     []WeatherForecastSample
	ForecastAccuracy           uint8 // 0 = perfect, 1 = approximate
	AIDifficulty               uint8
	SeasonLinkIdentifier       uint32
	WeekendLinkIdentifier      uint32
	SessionLinkIdentifier      uint32
	PitStopWindowIdealLap      uint8
	PitStopWindowLatestLap     uint8
	PitStopRejoinPosition      uint8
	Assists                    Assists
	GameMode                   enums.GameMode
	RuleSet                    enums.RuleSet
	TimeOfDay                  uint32 // minutes since midnight
	SessionLength              enums.SessionLength
	Units                      Units
	NumSafetyCarPeriods        uint8
	NumVirtualSafetyCarPeriods uint8
	NumRedFlagPeriods          uint8

	// since F1 24
	Settings                omit.Val[SessionSettings]
	WeekendStructure        omit.Val[[]enums.SessionType]
	Sector2LapDistanceStart omit.Val[float32]
	Sector3LapDistanceStart omit.Val[float32]
}

type forecastSampleWire struct {
	SessionType            uint8
	TimeOffset             uint8
	Weather                enums.Weather
	TrackTemperature       int8
	TrackTemperatureChange int8
	AirTemperature         int8
	AirTemperatureChange   int8
	RainPercentage         uint8
}

type sessionHeadWire struct {
	Weather                   enums.Weather
	TrackTemperature          int8
	AirTemperature            int8
	TotalLaps                 uint8
	TrackLength               uint16
	SessionType               uint8
	TrackID                   enums.Track
	Formula                   enums.Formula
	SessionTimeLeft           uint16
	SessionDuration           uint16
	PitSpeedLimit             uint8
	GamePaused                bool
	IsSpectating              bool
	SpectatorCarIndex         uint8
	SliProNativeSupport       bool
	NumMarshalZones           uint8
	MarshalZones              [maxMarshalZones]MarshalZone
	SafetyCarStatus           enums.SafetyCarStatus
	NetworkGame               bool
	NumWeatherForecastSamples uint8
}

type sessionTailWire struct {
	ForecastAccuracy           uint8
	AIDifficulty               uint8
	SeasonLinkIdentifier       uint32
	WeekendLinkIdentifier      uint32
	SessionLinkIdentifier      uint32
	PitStopWindowIdealLap      uint8
	PitStopWindowLatestLap     uint8
	PitStopRejoinPosition      uint8
	Assists                    Assists
	GameMode                   enums.GameMode
	RuleSet                    enums.RuleSet
	TimeOfDay                  uint32
	SessionLength              enums.SessionLength
	Units                      Units
	NumSafetyCarPeriods        uint8
	NumVirtualSafetyCarPeriods uint8
	NumRedFlagPeriods          uint8
}

type sessionWeekendWire struct {
	NumSessionsInWeekend    uint8
	WeekendStructure        [maxWeekendSessions]uint8
	Sector2LapDistanceStart float32
	Sector3LapDistanceStart float32
}

type (
	session23 struct {
		Head     sessionHeadWire
		Forecast [maxForecastSamples23]forecastSampleWire
		Tail     sessionTailWire
	}
	session24 struct {
		Head     sessionHeadWire
		Forecast [maxForecastSamples24]forecastSampleWire
		Tail     sessionTailWire
		Settings SessionSettings
		Weekend  sessionWeekendWire
	}
)

func DecodeSession(h Header, payload []byte) (*Session, error) {
	p := &Session{PacketHeader: h}
	year := h.Year()
	name := IDSession.String()
	if year == enums.Year23 {
		var w session23
		if err := decodeWire(name, payload, &w); err != nil {
			return nil, err
		}
		p.setCommon(year, &w.Head, w.Forecast[:], &w.Tail)
		return p, nil
	}
	var w session24
	if err := decodeWire(name, payload, &w); err != nil {
		return nil, err
	}
	p.setCommon(year, &w.Head, w.Forecast[:], &w.Tail)
	p.Settings = omit.From(w.Settings)
	p.WeekendStructure = omit.From(mapSlice(
		prefix(w.Weekend.WeekendStructure[:], int(w.Weekend.NumSessionsInWeekend)),
		func(raw uint8) enums.SessionType { return enums.SessionTypeFrom(year, raw) }))
	p.Sector2LapDistanceStart = omit.From(w.Weekend.Sector2LapDistanceStart)
	p.Sector3LapDistanceStart = omit.From(w.Weekend.Sector3LapDistanceStart)
	return p, nil
}

func (p *Session) setCommon(
	year enums.Year,
	head *sessionHeadWire,
	forecast []forecastSampleWire,
	tail *sessionTailWire,
) {
	p.Weather = head.Weather
	p.TrackTemperature = head.TrackTemperature
	p.AirTemperature = head.AirTemperature
	p.TotalLaps = head.TotalLaps
	p.TrackLength = head.TrackLength
	p.SessionType = enums.SessionTypeFrom(year, head.SessionType)
	p.TrackID = head.TrackID
	p.Formula = head.Formula
	p.SessionTimeLeft = head.SessionTimeLeft
	p.SessionDuration = head.SessionDuration
	p.PitSpeedLimit = head.PitSpeedLimit
	p.GamePaused = head.GamePaused
	p.IsSpectating = head.IsSpectating
	p.SpectatorCarIndex = head.SpectatorCarIndex
	p.SliProNativeSupport = head.SliProNativeSupport
	p.MarshalZones = append([]MarshalZone{}, prefix(head.MarshalZones[:], int(head.NumMarshalZones))...)
	p.SafetyCarStatus = head.SafetyCarStatus
	p.NetworkGame = head.NetworkGame
	p.WeatherForecastSamples = mapSlice(prefix(forecast, int(head.NumWeatherForecastSamples)),
		func(w forecastSampleWire) WeatherForecastSample {
			return WeatherForecastSample{
				SessionType:            enums.SessionTypeFrom(year, w.SessionType),
				TimeOffset:             w.TimeOffset,
				Weather:                w.Weather,
				TrackTemperature:       w.TrackTemperature,
				TrackTemperatureChange: w.TrackTemperatureChange,
				AirTemperature:         w.AirTemperature,
				AirTemperatureChange:   w.AirTemperatureChange,
				RainPercentage:         w.RainPercentage,
			}
		})
	p.ForecastAccuracy = tail.ForecastAccuracy
	p.AIDifficulty = tail.AIDifficulty
	p.SeasonLinkIdentifier = tail.SeasonLinkIdentifier
	p.WeekendLinkIdentifier = tail.WeekendLinkIdentifier
	p.SessionLinkIdentifier = tail.SessionLinkIdentifier
	p.PitStopWindowIdealLap = tail.PitStopWindowIdealLap
	p.PitStopWindowLatestLap = tail.PitStopWindowLatestLap
	p.PitStopRejoinPosition = tail.PitStopRejoinPosition
	p.Assists = tail.Assists
	p.GameMode = tail.GameMode
	p.RuleSet = tail.RuleSet
	p.TimeOfDay = tail.TimeOfDay
	p.SessionLength = tail.SessionLength
	p.Units = tail.Units
	p.NumSafetyCarPeriods = tail.NumSafetyCarPeriods
	p.NumVirtualSafetyCarPeriods = tail.NumVirtualSafetyCarPeriods
	p.NumRedFlagPeriods = tail.NumRedFlagPeriods
}

func (p *Session) headWire() sessionHeadWire {
	w := sessionHeadWire{
		Weather:             p.Weather,
		TrackTemperature:    p.TrackTemperature,
		AirTemperature:      p.AirTemperature,
		TotalLaps:           p.TotalLaps,
		TrackLength:         p.TrackLength,
		SessionType:         sessionTypeCode(p.SessionType),
		TrackID:             p.TrackID,
		Formula:             p.Formula,
		SessionTimeLeft:     p.SessionTimeLeft,
		SessionDuration:     p.SessionDuration,
		PitSpeedLimit:       p.PitSpeedLimit,
		GamePaused:          p.GamePaused,
		IsSpectating:        p.IsSpectating,
		SpectatorCarIndex:   p.SpectatorCarIndex,
		SliProNativeSupport: p.SliProNativeSupport,
		NumMarshalZones:     count(p.MarshalZones, maxMarshalZones),
		SafetyCarStatus:     p.SafetyCarStatus,
		NetworkGame:         p.NetworkGame,
	}
	fill(w.MarshalZones[:], p.MarshalZones)
	return w
}

func (p *Session) forecastWire(dst []forecastSampleWire) {
	fill(dst, mapSlice(p.WeatherForecastSamples, func(s WeatherForecastSample) forecastSampleWire {
		return forecastSampleWire{
			SessionType:            sessionTypeCode(s.SessionType),
			TimeOffset:             s.TimeOffset,
			Weather:                s.Weather,
			TrackTemperature:       s.TrackTemperature,
			TrackTemperatureChange: s.TrackTemperatureChange,
			AirTemperature:         s.AirTemperature,
			AirTemperatureChange:   s.AirTemperatureChange,
			RainPercentage:         s.RainPercentage,
		}
	}))
}

func (p *Session) tailWire() sessionTailWire {
	return sessionTailWire{
		ForecastAccuracy:           p.ForecastAccuracy,
		AIDifficulty:               p.AIDifficulty,
		SeasonLinkIdentifier:       p.SeasonLinkIdentifier,
		WeekendLinkIdentifier:      p.WeekendLinkIdentifier,
		SessionLinkIdentifier:      p.SessionLinkIdentifier,
		PitStopWindowIdealLap:      p.PitStopWindowIdealLap,
		PitStopWindowLatestLap:     p.PitStopWindowLatestLap,
		PitStopRejoinPosition:      p.PitStopRejoinPosition,
		Assists:                    p.Assists,
		GameMode:                   p.GameMode,
		RuleSet:                    p.RuleSet,
		TimeOfDay:                  p.TimeOfDay,
		SessionLength:              p.SessionLength,
		Units:                      p.Units,
		NumSafetyCarPeriods:        p.NumSafetyCarPeriods,
		NumVirtualSafetyCarPeriods: p.NumVirtualSafetyCarPeriods,
		NumRedFlagPeriods:          p.NumRedFlagPeriods,
	}
}

func (p *Session) Header() Header { return p.PacketHeader }

func (p *Session) MarshalBinary() ([]byte, error) {
	if p.PacketHeader.Year() == enums.Year23 {
		w := session23{Head: p.headWire(), Tail: p.tailWire()}
		w.Head.NumWeatherForecastSamples = count(p.WeatherForecastSamples, maxForecastSamples23)
		p.forecastWire(w.Forecast[:])
		return encodeWire(&w)
	}
	w := session24{
		Head:     p.headWire(),
		Tail:     p.tailWire(),
		Settings: orZero(p.Settings),
		Weekend: sessionWeekendWire{
			Sector2LapDistanceStart: orZero(p.Sector2LapDistanceStart),
			Sector3LapDistanceStart: orZero(p.Sector3LapDistanceStart),
		},
	}
	w.Head.NumWeatherForecastSamples = count(p.WeatherForecastSamples, maxForecastSamples24)
	p.forecastWire(w.Forecast[:])
	weekend := orZero(p.WeekendStructure)
	w.Weekend.NumSessionsInWeekend = count(weekend, maxWeekendSessions)
	fill(w.Weekend.WeekendStructure[:], mapSlice(weekend, sessionTypeCode))
	return encodeWire(&w)
}

func sessionTypeCode(s enums.SessionType) uint8 {
	if s == nil {
		return 0
	}
	return s.Code()
}

func (p *Session) Fields() map[string]any {
	ret := map[string]any{
		"header":                         p.PacketHeader.Fields(),
		"weather":                        p.Weather.String(),
		"track-temperature":              p.TrackTemperature,
		"air-temperature":                p.AirTemperature,
		"total-laps":                     p.TotalLaps,
		"track-length":                   p.TrackLength,
		"session-type":                   enumString(p.SessionType),
		"track-id":                       p.TrackID.String(),
		"formula":                        p.Formula.String(),
		"session-time-left":              p.SessionTimeLeft,
		"session-duration":               p.SessionDuration,
		"pit-speed-limit":                p.PitSpeedLimit,
		"game-paused":                    p.GamePaused,
		"is-spectating":                  p.IsSpectating,
		"spectator-car-index":            p.SpectatorCarIndex,
		"sli-pro-native-support":         p.SliProNativeSupport,
		"num-marshal-zones":              len(p.MarshalZones),
		"marshal-zones":                  fieldsOf(p.MarshalZones),
		"safety-car-status":              p.SafetyCarStatus.String(),
		"network-game":                   p.NetworkGame,
		"num-weather-forecast-samples":   len(p.WeatherForecastSamples),
		"weather-forecast-samples":       fieldsOf(p.WeatherForecastSamples),
		"forecast-accuracy":              p.ForecastAccuracy,
		"ai-difficulty":                  p.AIDifficulty,
		"season-link-identifier":         p.SeasonLinkIdentifier,
		"weekend-link-identifier":        p.WeekendLinkIdentifier,
		"session-link-identifier":        p.SessionLinkIdentifier,
		"pit-stop-window-ideal-lap":      p.PitStopWindowIdealLap,
		"pit-stop-window-latest-lap":     p.PitStopWindowLatestLap,
		"pit-stop-rejoin-position":       p.PitStopRejoinPosition,
		"game-mode":                      p.GameMode.String(),
		"rule-set":                       p.RuleSet.String(),
		"time-of-day":                    p.TimeOfDay,
		"session-length":                 p.SessionLength.String(),
		"num-safety-car-periods":         p.NumSafetyCarPeriods,
		"num-virtual-safety-car-periods": p.NumVirtualSafetyCarPeriods,
		"num-red-flag-periods":           p.NumRedFlagPeriods,
	}
	maps.Copy(ret, p.Assists.Fields())
	maps.Copy(ret, p.Units.Fields())
	if s, ok := p.Settings.Get(); ok {
		maps.Copy(ret, s.Fields())
	}
	if w, ok := p.WeekendStructure.Get(); ok {
		ret["num-sessions-in-weekend"] = len(w)
		ret["weekend-structure"] = mapSlice(w, enumString[enums.SessionType])
	}
	setOpt(ret, "sector-2-lap-distance-start", p.Sector2LapDistanceStart)
	setOpt(ret, "sector-3-lap-distance-start", p.Sector3LapDistanceStart)
	return ret
}
