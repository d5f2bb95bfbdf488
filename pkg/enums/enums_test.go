//nolint:funlen,lll // ok for tests
package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearFromPacketFormat(t *testing.T) {
	tests := []struct {
		name   string
		format uint16
		want   Year
		wantOk bool
	}{
		{"2023", 2023, Year23, true},
		{"2024", 2024, Year24, true},
		{"2025", 2025, Year25, true},
		{"2022", 2022, 0, false},
		{"zero", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := YearFromPacketFormat(tt.format)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.format, got.PacketFormat())
			}
		})
	}
}

func TestTeamFrom(t *testing.T) {
	tests := []struct {
		name string
		year Year
		raw  uint8
		want string
	}{
		{"alpha tauri in 23", Year23, 6, "Alpha Tauri"},
		{"rb in 24", Year24, 6, "RB"},
		{"rb in 25", Year25, 6, "RB"},
		{"alfa romeo in 23", Year23, 9, "Alfa Romeo"},
		{"sauber in 24", Year24, 9, "Sauber"},
		{"custom team", Year23, 104, "F1 Custom Team"},
		{"unknown in 24", Year24, 250, "UNKNOWN(250)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := TeamFrom(tt.year, tt.raw)
			assert.Equal(t, tt.want, team.String())
			assert.Equal(t, tt.raw, team.Code())
			assert.Equal(t, tt.year, team.Year())
		})
	}
}

func TestSessionTypeFrom(t *testing.T) {
	assert.Equal(t, "Race", SessionTypeFrom(Year23, 10).String())
	assert.True(t, SessionTypeFrom(Year23, 10).IsRace())
	assert.Equal(t, "Sprint Shootout 1", SessionTypeFrom(Year24, 10).String())
	assert.False(t, SessionTypeFrom(Year24, 10).IsRace())
	assert.Equal(t, "Race", SessionTypeFrom(Year25, 15).String())
	assert.Equal(t, "UNKNOWN(14)", SessionTypeFrom(Year23, 14).String())
}

func TestUnknownCodesArePreserved(t *testing.T) {
	type enum interface {
		Known() bool
		String() string
	}
	tests := []struct {
		name string
		v    enum
		want string
	}{
		{"weather", Weather(6), "UNKNOWN(6)"},
		{"track", Track(100), "UNKNOWN(100)"},
		{"formula", Formula(200), "UNKNOWN(200)"},
		{"pit status", PitStatus(3), "UNKNOWN(3)"},
		{"driver status", DriverStatus(5), "UNKNOWN(5)"},
		{"actual tyre", ActualTyreCompound(23), "UNKNOWN(23)"},
		{"visual tyre", VisualTyreCompound(0), "UNKNOWN(0)"},
		{"fia flag", FIAFlag(-2), "UNKNOWN(-2)"},
		{"nationality", Nationality(255), "UNKNOWN(255)"},
		{"penalty", PenaltyType(18), "UNKNOWN(18)"},
		{"infringement", InfringementType(55), "UNKNOWN(55)"},
		{"surface", SurfaceType(12), "UNKNOWN(12)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.v.Known())
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestKnownCodes(t *testing.T) {
	assert.Equal(t, "PITTING", PitStatus(1).String())
	assert.Equal(t, "ON_TRACK", DriverStatus(4).String())
	assert.Equal(t, "INVALID_UNKNOWN", FIAFlag(-1).String())
	assert.Equal(t, "Unknown", Track(-1).String())
	assert.Equal(t, "C5", ActualTyreCompound(16).String())
	assert.Equal(t, "Monegasque", Nationality(53).String())
	assert.Equal(t, "Steam", Platform(1).String())
	assert.True(t, Platform(255).Known())
}

func TestVisualWetAliases(t *testing.T) {
	assert.Equal(t, VisualTyreWet, VisualTyreClassicWet)
	assert.Equal(t, "Wet", VisualTyreClassicWet.String())
	assert.Equal(t, VisualTyreWet, VisualTyreCompound(8))
}

func TestEventCodeFrom(t *testing.T) {
	tests := []struct {
		name   string
		year   Year
		raw    string
		wantOk bool
	}{
		{"session start", Year23, "SSTA", true},
		{"buttons", Year25, "BUTN", true},
		{"safety car in 23", Year23, "SCAR", false},
		{"safety car in 24", Year24, "SCAR", true},
		{"collision in 25", Year25, "COLL", true},
		{"unknown tag", Year24, "XXXX", false},
		{"lower case", Year24, "ssta", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw [4]byte
			copy(raw[:], tt.raw)
			code, ok := EventCodeFrom(tt.year, raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.raw, code.String())
			assert.Equal(t, raw, code.Bytes())
		})
	}
	assert.Equal(t, "Button Status", EventButtons.Name())
	assert.Equal(t, "XXXX", EventCode("XXXX").Name())
}

func TestButtonFlags(t *testing.T) {
	require.Equal(t, ButtonFlags(0x00100000), UDPAction(1))
	require.Equal(t, ButtonFlags(0x80000000), UDPAction(12))
	assert.Equal(t, ButtonFlags(0), UDPAction(0))
	assert.Equal(t, ButtonFlags(0), UDPAction(13))

	b := ButtonFlags(0x00100000)
	assert.True(t, b.ActionPressed(1))
	assert.False(t, b.ActionPressed(2))
	assert.Empty(t, b.Buttons())
	assert.Equal(t, []int{1}, b.Actions())
	assert.Equal(t, "UDP_ACTION_1", b.String())

	b = ButtonCrossOrA | ButtonSpecial | UDPAction(3)
	assert.Equal(t, []string{"CROSS_OR_A", "SPECIAL"}, b.Buttons())
	assert.Equal(t, "CROSS_OR_A|SPECIAL|UDP_ACTION_3", b.String())
	assert.Equal(t, ButtonCrossOrA|ButtonSpecial, b&ControllerButtons)
}
