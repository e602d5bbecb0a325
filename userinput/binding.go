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

// GamepadBinding is the physical gamepad input bound to an Action. It is
// either a ButtonBinding or an AxisBinding.
type GamepadBinding interface {
	String() string

	// unexported method prevents implementations outside of the package
	isGamepadBinding()
}

// ButtonBinding binds an Action to a gamepad button.
type ButtonBinding struct {
	Button GamepadButton
}

func (b ButtonBinding) String() string {
	return b.Button.String()
}

func (b ButtonBinding) isGamepadBinding() {}

// AxisBinding binds an Action to a gamepad axis.
type AxisBinding struct {
	Axis GamepadAxis
}

func (b AxisBinding) String() string {
	return b.Axis.String()
}

func (b AxisBinding) isGamepadBinding() {}

// ParseGamepadBinding interprets the string as a button name and then as an
// axis name. The second return value is false if the string is neither.
func ParseGamepadBinding(s string) (GamepadBinding, bool) {
	if b, ok := ParseButton(s); ok {
		return ButtonBinding{Button: b}, true
	}
	if a, ok := ParseAxis(s); ok {
		return AxisBinding{Axis: a}, true
	}
	return nil, false
}
