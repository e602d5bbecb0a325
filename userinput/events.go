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

// Event represents all the different types of input event handled by the
// Router. The platform layer converts its own events into one of the Event
// types below.
type Event interface{}

// DeviceID identifies an opened gamepad for as long as it stays connected. It
// is the same as the SDL2 joystick instance ID.
type DeviceID int32

// EventQuit is sent when the user has asked to quit the application. The
// Router ignores it.
type EventQuit struct{}

// EventGamepadAdded is sent when a gamepad is connected. The Index is the
// platform's device index and is only meaningful when opening the device.
type EventGamepadAdded struct {
	Index int
}

// EventGamepadRemoved is sent when a gamepad is disconnected.
type EventGamepadRemoved struct {
	ID DeviceID
}

// EventGamepadButton is sent when a gamepad button is pressed or released.
type EventGamepadButton struct {
	ID     DeviceID
	Button GamepadButton
	Down   bool
}

// EventGamepadAxis is sent when an analog input on a gamepad changes. Stick
// values range from -32768 to 32767. Trigger values range from 0 to 32767.
type EventGamepadAxis struct {
	ID    DeviceID
	Axis  GamepadAxis
	Value int16
}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Scancode Scancode
	Down     bool

	// key is being held down and the event has been generated by the
	// platform's key repeat
	Repeat bool
}
