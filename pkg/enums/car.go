package enums

// FIAFlag is the flag currently shown to a car, -1 means invalid/unknown.
type FIAFlag int8

const (
	FIAFlagInvalid FIAFlag = -1
	FIAFlagNone    FIAFlag = 0
	FIAFlagGreen   FIAFlag = 1
	FIAFlagBlue    FIAFlag = 2
	FIAFlagYellow  FIAFlag = 3
	FIAFlagRed     FIAFlag = 4
)

var fiaFlagNames = map[FIAFlag]string{
	FIAFlagInvalid: "INVALID_UNKNOWN",
	FIAFlagNone:    "NONE",
	FIAFlagGreen:   "GREEN",
	FIAFlagBlue:    "BLUE",
	FIAFlagYellow:  "YELLOW",
	FIAFlagRed:     "RED",
}

func (f FIAFlag) Known() bool    { return known(fiaFlagNames, f) }
func (f FIAFlag) String() string { return lookup(fiaFlagNames, f) }

type ERSDeployMode uint8

const (
	ERSDeployModeNone     ERSDeployMode = 0
	ERSDeployModeMedium   ERSDeployMode = 1
	ERSDeployModeHotlap   ERSDeployMode = 2
	ERSDeployModeOvertake ERSDeployMode = 3
)

var ersDeployModeNames = map[ERSDeployMode]string{
	ERSDeployModeNone:     "NONE",
	ERSDeployModeMedium:   "MEDIUM",
	ERSDeployModeHotlap:   "HOTLAP",
	ERSDeployModeOvertake: "OVERTAKE",
}

func (e ERSDeployMode) Known() bool    { return known(ersDeployModeNames, e) }
func (e ERSDeployMode) String() string { return lookup(ersDeployModeNames, e) }

type TractionControl uint8

var tractionControlNames = map[TractionControl]string{
	0: "OFF",
	1: "MEDIUM",
	2: "FULL",
}

func (t TractionControl) Known() bool    { return known(tractionControlNames, t) }
func (t TractionControl) String() string { return lookup(tractionControlNames, t) }

type FuelMix uint8

var fuelMixNames = map[FuelMix]string{
	0: "LEAN",
	1: "STANDARD",
	2: "RICH",
	3: "MAX",
}

func (f FuelMix) Known() bool    { return known(fuelMixNames, f) }
func (f FuelMix) String() string { return lookup(fuelMixNames, f) }

type DRSAllowed uint8

var drsAllowedNames = map[DRSAllowed]string{
	0: "NOT_ALLOWED",
	1: "ALLOWED",
}

func (d DRSAllowed) Known() bool    { return known(drsAllowedNames, d) }
func (d DRSAllowed) String() string { return lookup(drsAllowedNames, d) }

// SurfaceType is the surface under a wheel.
type SurfaceType uint8

var surfaceTypeNames = map[SurfaceType]string{
	0:  "Tarmac",
	1:  "Rumble strip",
	2:  "Concrete",
	3:  "Rock",
	4:  "Gravel",
	5:  "Mud",
	6:  "Sand",
	7:  "Grass",
	8:  "Water",
	9:  "Cobblestone",
	10: "Metal",
	11: "Ridged",
}

func (s SurfaceType) Known() bool    { return known(surfaceTypeNames, s) }
func (s SurfaceType) String() string { return lookup(surfaceTypeNames, s) }
