package enums

// EventCode is the 4 byte ASCII tag of an event packet. Unlike the other
// enumerations the set is closed: EventCodeFrom rejects unknown tags.
type EventCode string

const (
	EventSessionStarted     EventCode = "SSTA"
	EventSessionEnded       EventCode = "SEND"
	EventFastestLap         EventCode = "FTLP"
	EventRetirement         EventCode = "RTMT"
	EventDRSEnabled         EventCode = "DRSE"
	EventDRSDisabled        EventCode = "DRSD"
	EventTeamMateInPits     EventCode = "TMPT"
	EventChequeredFlag      EventCode = "CHQF"
	EventRaceWinner         EventCode = "RCWN"
	EventPenalty            EventCode = "PENA"
	EventSpeedTrap          EventCode = "SPTP"
	EventStartLights        EventCode = "STLG"
	EventLightsOut          EventCode = "LGOT"
	EventDriveThroughServed EventCode = "DTSV"
	EventStopGoServed       EventCode = "SGSV"
	EventFlashback          EventCode = "FLBK"
	EventButtons            EventCode = "BUTN"
	EventRedFlag            EventCode = "RDFL"
	EventOvertake           EventCode = "OVTK"
	EventSafetyCar          EventCode = "SCAR"
	EventCollision          EventCode = "COLL"
)

type eventCodeInfo struct {
	name  string
	since Year
}

var eventCodes = map[EventCode]eventCodeInfo{
	EventSessionStarted:     {"Session Started", Year23},
	EventSessionEnded:       {"Session Ended", Year23},
	EventFastestLap:         {"Fastest Lap", Year23},
	EventRetirement:         {"Retirement", Year23},
	EventDRSEnabled:         {"DRS Enabled", Year23},
	EventDRSDisabled:        {"DRS Disabled", Year23},
	EventTeamMateInPits:     {"Team Mate In Pits", Year23},
	EventChequeredFlag:      {"Chequered Flag", Year23},
	EventRaceWinner:         {"Race Winner", Year23},
	EventPenalty:            {"Penalty Issued", Year23},
	EventSpeedTrap:          {"Speed Trap Triggered", Year23},
	EventStartLights:        {"Start Lights", Year23},
	EventLightsOut:          {"Lights Out", Year23},
	EventDriveThroughServed: {"Drive Through Served", Year23},
	EventStopGoServed:       {"Stop Go Served", Year23},
	EventFlashback:          {"Flashback", Year23},
	EventButtons:            {"Button Status", Year23},
	EventRedFlag:            {"Red Flag", Year23},
	EventOvertake:           {"Overtake", Year23},
	EventSafetyCar:          {"Safety Car", Year24},
	EventCollision:          {"Collision", Year24},
}

// EventCodeFrom validates a raw tag against the tags defined for the given year.
func EventCodeFrom(year Year, raw [4]byte) (EventCode, bool) {
	c := EventCode(raw[:])
	info, ok := eventCodes[c]
	if !ok || year < info.since {
		return c, false
	}
	return c, true
}

func (c EventCode) Known() bool {
	_, ok := eventCodes[c]
	return ok
}

// Since returns the first format year defining the tag.
func (c EventCode) Since() Year { return eventCodes[c].since }

// Name is the display name of the event, the raw tag for unknown codes.
func (c EventCode) Name() string {
	if info, ok := eventCodes[c]; ok {
		return info.name
	}
	return string(c)
}

func (c EventCode) String() string { return string(c) }

// Bytes returns the wire form of the tag.
func (c EventCode) Bytes() [4]byte {
	var b [4]byte
	copy(b[:], c)
	return b
}
