// Package enums contains the enumerations used by the F1 UDP telemetry format.
//
// Every enumeration is a named integer type. Converting a raw wire value into
// the type never fails: codes outside the documented set are kept as they are,
// Known reports whether a value belongs to the documented set and String renders
// such values as "UNKNOWN(<code>)".
package enums

import (
	"fmt"
)

type code interface {
	~uint8 | ~int8 | ~uint16
}

func lookup[T code](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", v)
}

func known[T code](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}

// Year identifies the revision of the wire format.
type Year uint8

const (
	Year23 Year = 23
	Year24 Year = 24
	Year25 Year = 25
)

var SupportedYears = []Year{Year23, Year24, Year25}

// YearFromPacketFormat maps the packetFormat header field (e.g. 2024) to a Year.
func YearFromPacketFormat(format uint16) (Year, bool) {
	switch format {
	case 2023:
		return Year23, true
	case 2024:
		return Year24, true
	case 2025:
		return Year25, true
	}
	return 0, false
}

func (y Year) PacketFormat() uint16 {
	return 2000 + uint16(y)
}

func (y Year) String() string {
	return fmt.Sprintf("F1 %d", y)
}
