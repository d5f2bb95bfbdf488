package enums

// ActualTyreCompound is the physical compound fitted to the car.
type ActualTyreCompound uint8

const (
	ActualTyreC6          ActualTyreCompound = 22
	ActualTyreC5          ActualTyreCompound = 16
	ActualTyreC4          ActualTyreCompound = 17
	ActualTyreC3          ActualTyreCompound = 18
	ActualTyreC2          ActualTyreCompound = 19
	ActualTyreC1          ActualTyreCompound = 20
	ActualTyreC0          ActualTyreCompound = 21
	ActualTyreInter       ActualTyreCompound = 7
	ActualTyreWet         ActualTyreCompound = 8
	ActualTyreClassicDry  ActualTyreCompound = 9
	ActualTyreClassicWet  ActualTyreCompound = 10
	ActualTyreF2SuperSoft ActualTyreCompound = 11
	ActualTyreF2Soft      ActualTyreCompound = 12
	ActualTyreF2Medium    ActualTyreCompound = 13
	ActualTyreF2Hard      ActualTyreCompound = 14
	ActualTyreF2Wet       ActualTyreCompound = 15
)

var actualTyreCompoundNames = map[ActualTyreCompound]string{
	ActualTyreC6:          "C6",
	ActualTyreC5:          "C5",
	ActualTyreC4:          "C4",
	ActualTyreC3:          "C3",
	ActualTyreC2:          "C2",
	ActualTyreC1:          "C1",
	ActualTyreC0:          "C0",
	ActualTyreInter:       "Inter",
	ActualTyreWet:         "Wet",
	ActualTyreClassicDry:  "Dry (Classic)",
	ActualTyreClassicWet:  "Wet (Classic)",
	ActualTyreF2SuperSoft: "Super Soft (F2)",
	ActualTyreF2Soft:      "Soft (F2)",
	ActualTyreF2Medium:    "Medium (F2)",
	ActualTyreF2Hard:      "Hard (F2)",
	ActualTyreF2Wet:       "Wet (F2)",
}

func (a ActualTyreCompound) Known() bool    { return known(actualTyreCompoundNames, a) }
func (a ActualTyreCompound) String() string { return lookup(actualTyreCompoundNames, a) }

// VisualTyreCompound is the compound as shown to the player.
// Modern and classic wets share the code 8.
type VisualTyreCompound uint8

const (
	VisualTyreSoft        VisualTyreCompound = 16
	VisualTyreMedium      VisualTyreCompound = 17
	VisualTyreHard        VisualTyreCompound = 18
	VisualTyreInter       VisualTyreCompound = 7
	VisualTyreWet         VisualTyreCompound = 8
	VisualTyreClassicWet  VisualTyreCompound = 8
	VisualTyreF2Wet       VisualTyreCompound = 15
	VisualTyreF2SuperSoft VisualTyreCompound = 19
	VisualTyreF2Soft      VisualTyreCompound = 20
	VisualTyreF2Medium    VisualTyreCompound = 21
	VisualTyreF2Hard      VisualTyreCompound = 22
)

var visualTyreCompoundNames = map[VisualTyreCompound]string{
	VisualTyreSoft:        "Soft",
	VisualTyreMedium:      "Medium",
	VisualTyreHard:        "Hard",
	VisualTyreInter:       "Inter",
	VisualTyreWet:         "Wet",
	VisualTyreF2Wet:       "Wet (F2)",
	VisualTyreF2SuperSoft: "Super Soft (F2)",
	VisualTyreF2Soft:      "Soft (F2)",
	VisualTyreF2Medium:    "Medium (F2)",
	VisualTyreF2Hard:      "Hard (F2)",
}

func (v VisualTyreCompound) Known() bool    { return known(visualTyreCompoundNames, v) }
func (v VisualTyreCompound) String() string { return lookup(visualTyreCompoundNames, v) }
