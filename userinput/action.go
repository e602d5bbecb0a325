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

// Action is an abstract, device independent game input.
type Action int

// List of valid Action values. The order is significant: when more than one
// Action is bound to the same physical input, the Action that appears first
// in this list is the one that is used.
const (
	ActionDPadUp Action = iota
	ActionDPadDown
	ActionDPadLeft
	ActionDPadRight
	ActionNorth
	ActionSouth
	ActionEast
	ActionWest
	ActionLeftShoulder
	ActionRightShoulder
	ActionLeftTrigger
	ActionRightTrigger
	ActionL3
	ActionR3
	ActionStart
	ActionBack

	// NumActions is the number of valid Action values. It is not itself a
	// valid Action.
	NumActions
)

// names are used as keys in the gamepad and keyboard sections.
var actionNames = [NumActions]string{
	"dpad_up",
	"dpad_down",
	"dpad_left",
	"dpad_right",
	"north",
	"south",
	"east",
	"west",
	"left_shoulder",
	"right_shoulder",
	"left_trigger",
	"right_trigger",
	"l3",
	"r3",
	"start",
	"back",
}

// alternative names accepted by ParseAction()
var actionAliases = map[string]Action{
	"L3":          ActionL3,
	"left_stick":  ActionL3,
	"R3":          ActionR3,
	"right_stick": ActionR3,
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// IsTrigger returns true if the action represents an analog trigger.
func (a Action) IsTrigger() bool {
	return a == ActionLeftTrigger || a == ActionRightTrigger
}

// ParseAction returns the Action with the given name. Names are case
// sensitive.
func ParseAction(s string) (Action, bool) {
	for a := Action(0); a < NumActions; a++ {
		if actionNames[a] == s {
			return a, true
		}
	}
	if a, ok := actionAliases[s]; ok {
		return a, true
	}
	return NumActions, false
}
