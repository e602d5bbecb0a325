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

package sdlpad

import (
	"time"

	"github.com/jetsetilly/gopherpad/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Translate converts an SDL event into the equivalent userinput event. Events
// that have no equivalent return nil.
//
// SDL gamepad buttons, gamepad axes and scancodes use the same numbering as
// the userinput package.
func Translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for added devices the Which field is the device index
			return userinput.EventGamepadAdded{Index: int(ev.Which)}
		case sdl.CONTROLLERDEVICEREMOVED:
			return userinput.EventGamepadRemoved{ID: userinput.DeviceID(ev.Which)}
		}

	case *sdl.ControllerButtonEvent:
		return userinput.EventGamepadButton{
			ID:     userinput.DeviceID(ev.Which),
			Button: userinput.GamepadButton(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}

	case *sdl.ControllerAxisEvent:
		return userinput.EventGamepadAxis{
			ID:    userinput.DeviceID(ev.Which),
			Axis:  userinput.GamepadAxis(ev.Axis),
			Value: ev.Value,
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Scancode: userinput.Scancode(ev.Keysym.Scancode),
			Down:     ev.Type == sdl.KEYDOWN,
			Repeat:   ev.Repeat != 0,
		}
	}

	return nil
}

// Poll waits for the next SDL event and returns the translated event. Returns
// nil if the timeout expires or if the event has no userinput equivalent.
func Poll(timeout time.Duration) userinput.Event {
	ev := sdl.WaitEventTimeout(int(timeout.Milliseconds()))
	if ev == nil {
		return nil
	}
	return Translate(ev)
}

// ScancodeName returns the name SDL uses for the scancode. It should be the
// same as the String() function of userinput.Scancode for all scancodes known
// to that package.
func ScancodeName(sc userinput.Scancode) string {
	return sdl.GetScancodeName(sdl.Scancode(sc))
}
