package enums

import "fmt"

// SessionType depends on the format year: F1 24 introduced the sprint
// shootout sessions and renumbered the races.
type SessionType interface {
	fmt.Stringer
	Code() uint8
	Known() bool
	IsRace() bool
}

type (
	SessionType23 uint8
	SessionType24 uint8
)

func SessionTypeFrom(year Year, raw uint8) SessionType {
	if year == Year23 {
		return SessionType23(raw)
	}
	return SessionType24(raw)
}

var sessionType23Names = map[SessionType23]string{
	0:  "Unknown",
	1:  "Practice 1",
	2:  "Practice 2",
	3:  "Practice 3",
	4:  "Short Practice",
	5:  "Qualifying 1",
	6:  "Qualifying 2",
	7:  "Qualifying 3",
	8:  "Short Qualifying",
	9:  "One-Shot Qualifying",
	10: "Race",
	11: "Race 2",
	12: "Race 3",
	13: "Time Trial",
}

func (s SessionType23) Code() uint8    { return uint8(s) }
func (s SessionType23) Known() bool    { return known(sessionType23Names, s) }
func (s SessionType23) String() string { return lookup(sessionType23Names, s) }
func (s SessionType23) IsRace() bool   { return s >= 10 && s <= 12 }

var sessionType24Names = map[SessionType24]string{
	0:  "Unknown",
	1:  "Practice 1",
	2:  "Practice 2",
	3:  "Practice 3",
	4:  "Short Practice",
	5:  "Qualifying 1",
	6:  "Qualifying 2",
	7:  "Qualifying 3",
	8:  "Short Qualifying",
	9:  "One-Shot Qualifying",
	10: "Sprint Shootout 1",
	11: "Sprint Shootout 2",
	12: "Sprint Shootout 3",
	13: "Short Sprint Shootout",
	14: "One-Shot Sprint Shootout",
	15: "Race",
	16: "Race 2",
	17: "Race 3",
	18: "Time Trial",
}

func (s SessionType24) Code() uint8    { return uint8(s) }
func (s SessionType24) Known() bool    { return known(sessionType24Names, s) }
func (s SessionType24) String() string { return lookup(sessionType24Names, s) }
func (s SessionType24) IsRace() bool   { return s >= 15 && s <= 17 }

type Weather uint8

const (
	WeatherClear      Weather = 0
	WeatherLightCloud Weather = 1
	WeatherOvercast   Weather = 2
	WeatherLightRain  Weather = 3
	WeatherHeavyRain  Weather = 4
	WeatherStorm      Weather = 5
)

var weatherNames = map[Weather]string{
	WeatherClear:      "Clear",
	WeatherLightCloud: "Light Cloud",
	WeatherOvercast:   "Overcast",
	WeatherLightRain:  "Light Rain",
	WeatherHeavyRain:  "Heavy Rain",
	WeatherStorm:      "Storm",
}

func (w Weather) Known() bool    { return known(weatherNames, w) }
func (w Weather) String() string { return lookup(weatherNames, w) }

type Formula uint8

var formulaNames = map[Formula]string{
	0: "F1 Modern",
	1: "F1 Classic",
	2: "F2",
	3: "F1 Generic",
	4: "Beta",
	5: "Supercars",
	6: "Esports",
	7: "F2 2021",
	8: "F1 World",
	9: "F1 Elimination",
}

func (f Formula) Known() bool    { return known(formulaNames, f) }
func (f Formula) String() string { return lookup(formulaNames, f) }

type SafetyCarStatus uint8

const (
	SafetyCarNone         SafetyCarStatus = 0
	SafetyCarFull         SafetyCarStatus = 1
	SafetyCarVirtual      SafetyCarStatus = 2
	SafetyCarFormationLap SafetyCarStatus = 3
)

var safetyCarStatusNames = map[SafetyCarStatus]string{
	SafetyCarNone:         "NO_SAFETY_CAR",
	SafetyCarFull:         "FULL_SAFETY_CAR",
	SafetyCarVirtual:      "VIRTUAL_SAFETY_CAR",
	SafetyCarFormationLap: "FORMATION_LAP",
}

func (s SafetyCarStatus) Known() bool    { return known(safetyCarStatusNames, s) }
func (s SafetyCarStatus) String() string { return lookup(safetyCarStatusNames, s) }

// SafetyCarEventType is used by the SCAR event
type SafetyCarEventType uint8

var safetyCarEventTypeNames = map[SafetyCarEventType]string{
	0: "DEPLOYED",
	1: "RETURNING",
	2: "RETURNED",
	3: "RESUME_RACE",
}

func (s SafetyCarEventType) Known() bool    { return known(safetyCarEventTypeNames, s) }
func (s SafetyCarEventType) String() string { return lookup(safetyCarEventTypeNames, s) }

// ZoneFlag is the flag shown in a marshal zone, -1 means invalid/unknown
type ZoneFlag int8

var zoneFlagNames = map[ZoneFlag]string{
	-1: "INVALID_UNKNOWN",
	0:  "NONE",
	1:  "GREEN_FLAG",
	2:  "BLUE_FLAG",
	3:  "YELLOW_FLAG",
	4:  "RED_FLAG",
}

func (z ZoneFlag) Known() bool    { return known(zoneFlagNames, z) }
func (z ZoneFlag) String() string { return lookup(zoneFlagNames, z) }

type GameMode uint8

var gameModeNames = map[GameMode]string{
	0:   "Event Mode",
	3:   "Grand Prix",
	4:   "Grand Prix '23",
	5:   "Time Trial",
	6:   "Splitscreen",
	7:   "Online Custom",
	8:   "Online League",
	11:  "Career Invitational",
	12:  "Championship Invitational",
	13:  "Championship",
	14:  "Online Championship",
	15:  "Online Weekly Event",
	17:  "Story Mode",
	19:  "Career '22",
	20:  "Career '22 Online",
	21:  "Career '23",
	22:  "Career '23 Online",
	23:  "Driver Career '24",
	24:  "Career '24 Online",
	25:  "My Team Career '24",
	26:  "Curated Career '24",
	27:  "My Team Career '25",
	28:  "Driver Career '25",
	29:  "Career '25 Online",
	30:  "Challenge Career '25",
	75:  "Story Mode (APXGP)",
	127: "Benchmark",
}

func (g GameMode) Known() bool    { return known(gameModeNames, g) }
func (g GameMode) String() string { return lookup(gameModeNames, g) }

type RuleSet uint8

var ruleSetNames = map[RuleSet]string{
	0:  "Practice & Qualifying",
	1:  "Race",
	2:  "Time Trial",
	4:  "Time Attack",
	6:  "Checkpoint Challenge",
	8:  "Autocross",
	9:  "Drift",
	10: "Average Speed Zone",
	11: "Rival Duel",
	12: "Elimination",
}

func (r RuleSet) Known() bool    { return known(ruleSetNames, r) }
func (r RuleSet) String() string { return lookup(ruleSetNames, r) }

type SessionLength uint8

var sessionLengthNames = map[SessionLength]string{
	0: "None",
	2: "Very Short",
	3: "Short",
	4: "Medium",
	5: "Medium Long",
	6: "Long",
	7: "Full",
}

func (s SessionLength) Known() bool    { return known(sessionLengthNames, s) }
func (s SessionLength) String() string { return lookup(sessionLengthNames, s) }

type SpeedUnit uint8

var speedUnitNames = map[SpeedUnit]string{
	0: "MPH",
	1: "KPH",
}

func (s SpeedUnit) Known() bool    { return known(speedUnitNames, s) }
func (s SpeedUnit) String() string { return lookup(speedUnitNames, s) }

type TemperatureUnit uint8

var temperatureUnitNames = map[TemperatureUnit]string{
	0: "CELSIUS",
	1: "FAHRENHEIT",
}

func (t TemperatureUnit) Known() bool    { return known(temperatureUnitNames, t) }
func (t TemperatureUnit) String() string { return lookup(temperatureUnitNames, t) }
