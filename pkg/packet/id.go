package packet

import (
	"fmt"

	"github.com/mpapenbr/f1tel/pkg/enums"
)

// ID is the packet type id carried in the header.
type ID uint8

const (
	IDMotion ID = iota
	IDSession
	IDLapData
	IDEvent
	IDParticipants
	IDCarSetups
	IDCarTelemetry
	IDCarStatus
	IDFinalClassification
	IDLobbyInfo
	IDCarDamage
	IDSessionHistory
	IDTyreSets
	IDMotionEx
	IDTimeTrial
	IDLapPositions
)

var ids = []struct {
	name  string
	since enums.Year
}{
	IDMotion:              {"motion", enums.Year23},
	IDSession:             {"session", enums.Year23},
	IDLapData:             {"lap-data", enums.Year23},
	IDEvent:               {"event", enums.Year23},
	IDParticipants:        {"participants", enums.Year23},
	IDCarSetups:           {"car-setups", enums.Year23},
	IDCarTelemetry:        {"car-telemetry", enums.Year23},
	IDCarStatus:           {"car-status", enums.Year23},
	IDFinalClassification: {"final-classification", enums.Year23},
	IDLobbyInfo:           {"lobby-info", enums.Year23},
	IDCarDamage:           {"car-damage", enums.Year23},
	IDSessionHistory:      {"session-history", enums.Year23},
	IDTyreSets:            {"tyre-sets", enums.Year23},
	IDMotionEx:            {"motion-ex", enums.Year23},
	IDTimeTrial:           {"time-trial", enums.Year24},
	IDLapPositions:        {"lap-positions", enums.Year25},
}

// IDs returns all packet ids defined for the year.
func IDs(year enums.Year) []ID {
	ret := []ID{}
	for i := range ids {
		if ID(i).ValidFor(year) {
			ret = append(ret, ID(i))
		}
	}
	return ret
}

func (id ID) Known() bool { return int(id) < len(ids) }

// ValidFor reports whether the id is defined in the given format year.
func (id ID) ValidFor(year enums.Year) bool {
	return id.Known() && year >= ids[id].since
}

func (id ID) String() string {
	if !id.Known() {
		return fmt.Sprintf("UNKNOWN(%d)", uint8(id))
	}
	return ids[id].name
}

// IDFromName resolves the name returned by String.
func IDFromName(name string) (ID, bool) {
	for i := range ids {
		if ids[i].name == name {
			return ID(i), true
		}
	}
	return 0, false
}
