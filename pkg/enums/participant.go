package enums

type Platform uint8

const (
	PlatformSteam       Platform = 1
	PlatformPlayStation Platform = 3
	PlatformXbox        Platform = 4
	PlatformOrigin      Platform = 6
	PlatformUnknown     Platform = 255
)

var platformNames = map[Platform]string{
	PlatformSteam:       "Steam",
	PlatformPlayStation: "PlayStation",
	PlatformXbox:        "Xbox",
	PlatformOrigin:      "Origin",
	PlatformUnknown:     "Unknown",
}

func (p Platform) Known() bool    { return known(platformNames, p) }
func (p Platform) String() string { return lookup(platformNames, p) }

// ReadyStatus of a player in a multiplayer lobby
type ReadyStatus uint8

var readyStatusNames = map[ReadyStatus]string{
	0: "NOT_READY",
	1: "READY",
	2: "SPECTATING",
}

func (r ReadyStatus) Known() bool    { return known(readyStatusNames, r) }
func (r ReadyStatus) String() string { return lookup(readyStatusNames, r) }

// TelemetrySetting is the "your telemetry" UDP setting of a player.
type TelemetrySetting uint8

const (
	TelemetryRestricted TelemetrySetting = 0
	TelemetryPublic     TelemetrySetting = 1
)

var telemetrySettingNames = map[TelemetrySetting]string{
	TelemetryRestricted: "RESTRICTED",
	TelemetryPublic:     "PUBLIC",
}

func (t TelemetrySetting) Known() bool    { return known(telemetrySettingNames, t) }
func (t TelemetrySetting) String() string { return lookup(telemetrySettingNames, t) }
