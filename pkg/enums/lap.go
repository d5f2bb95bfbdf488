package enums

type PitStatus uint8

const (
	PitStatusNone      PitStatus = 0
	PitStatusPitting   PitStatus = 1
	PitStatusInPitArea PitStatus = 2
)

var pitStatusNames = map[PitStatus]string{
	PitStatusNone:      "NONE",
	PitStatusPitting:   "PITTING",
	PitStatusInPitArea: "IN_PIT_AREA",
}

func (p PitStatus) Known() bool    { return known(pitStatusNames, p) }
func (p PitStatus) String() string { return lookup(pitStatusNames, p) }

// Sector is zero based on the wire
type Sector uint8

const (
	Sector1 Sector = 0
	Sector2 Sector = 1
	Sector3 Sector = 2
)

var sectorNames = map[Sector]string{
	Sector1: "SECTOR1",
	Sector2: "SECTOR2",
	Sector3: "SECTOR3",
}

func (s Sector) Known() bool    { return known(sectorNames, s) }
func (s Sector) String() string { return lookup(sectorNames, s) }

type DriverStatus uint8

const (
	DriverStatusInGarage  DriverStatus = 0
	DriverStatusFlyingLap DriverStatus = 1
	DriverStatusInLap     DriverStatus = 2
	DriverStatusOutLap    DriverStatus = 3
	DriverStatusOnTrack   DriverStatus = 4
)

var driverStatusNames = map[DriverStatus]string{
	DriverStatusInGarage:  "IN_GARAGE",
	DriverStatusFlyingLap: "FLYING_LAP",
	DriverStatusInLap:     "IN_LAP",
	DriverStatusOutLap:    "OUT_LAP",
	DriverStatusOnTrack:   "ON_TRACK",
}

func (d DriverStatus) Known() bool    { return known(driverStatusNames, d) }
func (d DriverStatus) String() string { return lookup(driverStatusNames, d) }

type ResultStatus uint8

const (
	ResultStatusInvalid       ResultStatus = 0
	ResultStatusInactive      ResultStatus = 1
	ResultStatusActive        ResultStatus = 2
	ResultStatusFinished      ResultStatus = 3
	ResultStatusDNF           ResultStatus = 4
	ResultStatusDisqualified  ResultStatus = 5
	ResultStatusNotClassified ResultStatus = 6
	ResultStatusRetired       ResultStatus = 7
)

var resultStatusNames = map[ResultStatus]string{
	ResultStatusInvalid:       "INVALID",
	ResultStatusInactive:      "INACTIVE",
	ResultStatusActive:        "ACTIVE",
	ResultStatusFinished:      "FINISHED",
	ResultStatusDNF:           "DID_NOT_FINISH",
	ResultStatusDisqualified:  "DISQUALIFIED",
	ResultStatusNotClassified: "NOT_CLASSIFIED",
	ResultStatusRetired:       "RETIRED",
}

func (r ResultStatus) Known() bool    { return known(resultStatusNames, r) }
func (r ResultStatus) String() string { return lookup(resultStatusNames, r) }

// ResultReason is reported from F1 25 onwards
type ResultReason uint8

const (
	ResultReasonInvalid           ResultReason = 0
	ResultReasonRetired           ResultReason = 1
	ResultReasonFinished          ResultReason = 2
	ResultReasonTerminalDamage    ResultReason = 3
	ResultReasonInactive          ResultReason = 4
	ResultReasonNotEnoughLaps     ResultReason = 5
	ResultReasonBlackFlagged      ResultReason = 6
	ResultReasonRedFlagged        ResultReason = 7
	ResultReasonMechanicalFailure ResultReason = 8
	ResultReasonSessionSkipped    ResultReason = 9
	ResultReasonSessionSimulated  ResultReason = 10
)

var resultReasonNames = map[ResultReason]string{
	ResultReasonInvalid:           "INVALID",
	ResultReasonRetired:           "RETIRED",
	ResultReasonFinished:          "FINISHED",
	ResultReasonTerminalDamage:    "TERMINAL_DAMAGE",
	ResultReasonInactive:          "INACTIVE",
	ResultReasonNotEnoughLaps:     "NOT_ENOUGH_LAPS_COMPLETED",
	ResultReasonBlackFlagged:      "BLACK_FLAGGED",
	ResultReasonRedFlagged:        "RED_FLAGGED",
	ResultReasonMechanicalFailure: "MECHANICAL_FAILURE",
	ResultReasonSessionSkipped:    "SESSION_SKIPPED",
	ResultReasonSessionSimulated:  "SESSION_SIMULATED",
}

func (r ResultReason) Known() bool    { return known(resultReasonNames, r) }
func (r ResultReason) String() string { return lookup(resultReasonNames, r) }
