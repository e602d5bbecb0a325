// This file is part of Gopherpad.
//
// Gopherpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpad.  If not, see <https://www.gnu.org/licenses/>.

package userinput

// GamepadButton identifies a button on a gamepad. Values are the same as
// those used by SDL2 game controllers.
type GamepadButton int

// List of valid GamepadButton values. The face buttons are named by position.
// South is the "A" button on an XBox style controller.
const (
	GamepadButtonInvalid GamepadButton = iota - 1
	GamepadButtonSouth
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

// canonical names for buttons. the guide button has no name and so it cannot
// be bound to an action.
var buttonNames = map[GamepadButton]string{
	GamepadButtonDPadUp:        "button_dpad_up",
	GamepadButtonDPadDown:      "button_dpad_down",
	GamepadButtonDPadLeft:      "button_dpad_left",
	GamepadButtonDPadRight:     "button_dpad_right",
	GamepadButtonNorth:         "button_north",
	GamepadButtonSouth:         "button_south",
	GamepadButtonEast:          "button_east",
	GamepadButtonWest:          "button_west",
	GamepadButtonLeftShoulder:  "button_left_shoulder",
	GamepadButtonRightShoulder: "button_right_shoulder",
	GamepadButtonLeftStick:     "button_l3",
	GamepadButtonRightStick:    "button_r3",
	GamepadButtonStart:         "button_start",
	GamepadButtonBack:          "button_back",
}

// alternative names accepted by ParseButton()
var buttonAliases = map[string]GamepadButton{
	"y":                  GamepadButtonNorth,
	"a":                  GamepadButtonSouth,
	"b":                  GamepadButtonEast,
	"x":                  GamepadButtonWest,
	"lb":                 GamepadButtonLeftShoulder,
	"l1":                 GamepadButtonLeftShoulder,
	"rb":                 GamepadButtonRightShoulder,
	"r1":                 GamepadButtonRightShoulder,
	"button_L3":          GamepadButtonLeftStick,
	"L3":                 GamepadButtonLeftStick,
	"l3":                 GamepadButtonLeftStick,
	"button_left_stick":  GamepadButtonLeftStick,
	"button_R3":          GamepadButtonRightStick,
	"R3":                 GamepadButtonRightStick,
	"r3":                 GamepadButtonRightStick,
	"button_right_stick": GamepadButtonRightStick,
	"select":             GamepadButtonBack,
}

func (b GamepadButton) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return "button_invalid"
}

// ParseButton returns the GamepadButton with the given name. Names are case
// sensitive.
func ParseButton(s string) (GamepadButton, bool) {
	for b, n := range buttonNames {
		if n == s {
			return b, true
		}
	}
	if b, ok := buttonAliases[s]; ok {
		return b, true
	}
	return GamepadButtonInvalid, false
}

// GamepadAxis identifies an analog input on a gamepad. Values are the same as
// those used by SDL2 game controllers.
type GamepadAxis int

// List of valid GamepadAxis values.
const (
	GamepadAxisInvalid GamepadAxis = iota - 1
	GamepadAxisLeftX
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

var axisNames = map[GamepadAxis]string{
	GamepadAxisLeftTrigger:  "axis_left_trigger",
	GamepadAxisRightTrigger: "axis_right_trigger",
	GamepadAxisLeftX:        "axis_leftx",
	GamepadAxisLeftY:        "axis_lefty",
	GamepadAxisRightX:       "axis_rightx",
	GamepadAxisRightY:       "axis_righty",
}

// alternative names accepted by ParseAxis()
var axisAliases = map[string]GamepadAxis{
	"lt":            GamepadAxisLeftTrigger,
	"l2":            GamepadAxisLeftTrigger,
	"rt":            GamepadAxisRightTrigger,
	"r2":            GamepadAxisRightTrigger,
	"left_stick_x":  GamepadAxisLeftX,
	"left_stick_y":  GamepadAxisLeftY,
	"right_stick_x": GamepadAxisRightX,
	"right_stick_y": GamepadAxisRightY,
}

func (a GamepadAxis) String() string {
	if s, ok := axisNames[a]; ok {
		return s
	}
	return "axis_invalid"
}

// ParseAxis returns the GamepadAxis with the given name. Names are case
// sensitive.
func ParseAxis(s string) (GamepadAxis, bool) {
	for a, n := range axisNames {
		if n == s {
			return a, true
		}
	}
	if a, ok := axisAliases[s]; ok {
		return a, true
	}
	return GamepadAxisInvalid, false
}
