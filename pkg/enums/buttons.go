package enums

import (
	"strconv"
	"strings"
)

// ButtonFlags is the bitmask reported by the BUTN event.
// Bits 0 to 19 are controller buttons, bits 20 to 31 are the UDP actions 1 to 12.
type ButtonFlags uint32

const (
	ButtonCrossOrA        ButtonFlags = 0x00000001
	ButtonTriangleOrY     ButtonFlags = 0x00000002
	ButtonCircleOrB       ButtonFlags = 0x00000004
	ButtonSquareOrX       ButtonFlags = 0x00000008
	ButtonDPadLeft        ButtonFlags = 0x00000010
	ButtonDPadRight       ButtonFlags = 0x00000020
	ButtonDPadUp          ButtonFlags = 0x00000040
	ButtonDPadDown        ButtonFlags = 0x00000080
	ButtonOptionsOrMenu   ButtonFlags = 0x00000100
	ButtonL1OrLB          ButtonFlags = 0x00000200
	ButtonR1OrRB          ButtonFlags = 0x00000400
	ButtonL2OrLT          ButtonFlags = 0x00000800
	ButtonR2OrRT          ButtonFlags = 0x00001000
	ButtonLeftStickClick  ButtonFlags = 0x00002000
	ButtonRightStickClick ButtonFlags = 0x00004000
	ButtonRightStickLeft  ButtonFlags = 0x00008000
	ButtonRightStickRight ButtonFlags = 0x00010000
	ButtonRightStickUp    ButtonFlags = 0x00020000
	ButtonRightStickDown  ButtonFlags = 0x00040000
	ButtonSpecial         ButtonFlags = 0x00080000

	// mask of all controller buttons
	ControllerButtons ButtonFlags = 0x000fffff

	NumUDPActions = 12
)

var buttonNames = []struct {
	flag ButtonFlags
	name string
}{
	{ButtonCrossOrA, "CROSS_OR_A"},
	{ButtonTriangleOrY, "TRIANGLE_OR_Y"},
	{ButtonCircleOrB, "CIRCLE_OR_B"},
	{ButtonSquareOrX, "SQUARE_OR_X"},
	{ButtonDPadLeft, "DPAD_LEFT"},
	{ButtonDPadRight, "DPAD_RIGHT"},
	{ButtonDPadUp, "DPAD_UP"},
	{ButtonDPadDown, "DPAD_DOWN"},
	{ButtonOptionsOrMenu, "OPTIONS_OR_MENU"},
	{ButtonL1OrLB, "L1_OR_LB"},
	{ButtonR1OrRB, "R1_OR_RB"},
	{ButtonL2OrLT, "L2_OR_LT"},
	{ButtonR2OrRT, "R2_OR_RT"},
	{ButtonLeftStickClick, "LEFT_STICK_CLICK"},
	{ButtonRightStickClick, "RIGHT_STICK_CLICK"},
	{ButtonRightStickLeft, "RIGHT_STICK_LEFT"},
	{ButtonRightStickRight, "RIGHT_STICK_RIGHT"},
	{ButtonRightStickUp, "RIGHT_STICK_UP"},
	{ButtonRightStickDown, "RIGHT_STICK_DOWN"},
	{ButtonSpecial, "SPECIAL"},
}

// UDPAction returns the bit of the 1-based UDP action i.
// Returns 0 for indexes outside 1..12.
func UDPAction(i int) ButtonFlags {
	if i < 1 || i > NumUDPActions {
		return 0
	}
	return 1 << (i + 19)
}

func (b ButtonFlags) Pressed(flag ButtonFlags) bool {
	return flag != 0 && b&flag == flag
}

func (b ButtonFlags) ActionPressed(i int) bool {
	return b.Pressed(UDPAction(i))
}

// Buttons lists the names of the pressed controller buttons.
func (b ButtonFlags) Buttons() []string {
	ret := []string{}
	for _, n := range buttonNames {
		if b.Pressed(n.flag) {
			ret = append(ret, n.name)
		}
	}
	return ret
}

// Actions lists the pressed UDP actions (1-based).
func (b ButtonFlags) Actions() []int {
	ret := []int{}
	for i := 1; i <= NumUDPActions; i++ {
		if b.ActionPressed(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

func (b ButtonFlags) String() string {
	parts := b.Buttons()
	for _, a := range b.Actions() {
		parts = append(parts, "UDP_ACTION_"+strconv.Itoa(a))
	}
	return strings.Join(parts, "|")
}
