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

import (
	"fmt"
	"math"
	"strings"
)

// ButtonState is the last known state of every action for a single player.
type ButtonState struct {
	DPadUp        bool
	DPadDown      bool
	DPadLeft      bool
	DPadRight     bool
	North         bool
	South         bool
	East          bool
	West          bool
	LeftShoulder  bool
	RightShoulder bool
	LeftTrigger   int16
	RightTrigger  int16
	L3            bool
	R3            bool
	Start         bool
	Back          bool

	// raw stick values. these are not affected by the action mapping
	LeftStickX  int16
	LeftStickY  int16
	RightStickX int16
	RightStickY int16
}

// set the state for the action. trigger actions use the value and other
// actions use the pressed flag.
func (s *ButtonState) set(a Action, pressed bool, value int16) {
	switch a {
	case ActionDPadUp:
		s.DPadUp = pressed
	case ActionDPadDown:
		s.DPadDown = pressed
	case ActionDPadLeft:
		s.DPadLeft = pressed
	case ActionDPadRight:
		s.DPadRight = pressed
	case ActionNorth:
		s.North = pressed
	case ActionSouth:
		s.South = pressed
	case ActionEast:
		s.East = pressed
	case ActionWest:
		s.West = pressed
	case ActionLeftShoulder:
		s.LeftShoulder = pressed
	case ActionRightShoulder:
		s.RightShoulder = pressed
	case ActionLeftTrigger:
		s.LeftTrigger = value
	case ActionRightTrigger:
		s.RightTrigger = value
	case ActionL3:
		s.L3 = pressed
	case ActionR3:
		s.R3 = pressed
	case ActionStart:
		s.Start = pressed
	case ActionBack:
		s.Back = pressed
	}
}

// Pressed returns true if the action is active. A trigger is active if its
// value is greater than zero.
func (s ButtonState) Pressed(a Action) bool {
	switch a {
	case ActionDPadUp:
		return s.DPadUp
	case ActionDPadDown:
		return s.DPadDown
	case ActionDPadLeft:
		return s.DPadLeft
	case ActionDPadRight:
		return s.DPadRight
	case ActionNorth:
		return s.North
	case ActionSouth:
		return s.South
	case ActionEast:
		return s.East
	case ActionWest:
		return s.West
	case ActionLeftShoulder:
		return s.LeftShoulder
	case ActionRightShoulder:
		return s.RightShoulder
	case ActionLeftTrigger:
		return s.LeftTrigger > 0
	case ActionRightTrigger:
		return s.RightTrigger > 0
	case ActionL3:
		return s.L3
	case ActionR3:
		return s.R3
	case ActionStart:
		return s.Start
	case ActionBack:
		return s.Back
	}
	return false
}

// String lists the active actions followed by the trigger and stick values.
func (s ButtonState) String() string {
	var b strings.Builder
	for a := Action(0); a < NumActions; a++ {
		if s.Pressed(a) && !a.IsTrigger() {
			b.WriteString(a.String())
			b.WriteString(" ")
		}
	}
	b.WriteString(fmt.Sprintf("lt=%d rt=%d ls=%d,%d rs=%d,%d",
		s.LeftTrigger, s.RightTrigger,
		s.LeftStickX, s.LeftStickY,
		s.RightStickX, s.RightStickY))
	return b.String()
}

// the value given to a trigger action when it is bound to a button or key
const triggerPressed = math.MaxInt16
