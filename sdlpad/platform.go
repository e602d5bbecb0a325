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
	"fmt"
	"time"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/logger"
	"github.com/jetsetilly/gopherpad/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform implements the userinput.Platform interface.
type Platform struct {
	window *sdl.Window
}

// NewPlatform initialises the SDL game controller and event subsystems.
// Destroy() should be called when the Platform is no longer required.
func NewPlatform() (*Platform, error) {
	err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	logger.Logf(logger.Allow, "sdlpad", "%d joysticks attached", sdl.NumJoysticks())

	return &Platform{}, nil
}

// OpenWindow creates a window so that the platform can receive keyboard
// events. The window is centered on the screen.
func (plt *Platform) OpenWindow(title string, width int, height int, fullscreen bool) error {
	if plt.window != nil {
		return curated.Errorf("sdlpad: window already open")
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), flags)
	if err != nil {
		return curated.Errorf("sdlpad: %v", err)
	}

	return nil
}

// SetTitle changes the title of the window. Does nothing if the window is
// not open.
func (plt *Platform) SetTitle(title string) {
	if plt.window != nil {
		plt.window.SetTitle(title)
	}
}

// Destroy closes the window if it is open and shuts down SDL.
func (plt *Platform) Destroy() {
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}

// NumGamepads implements the userinput.Platform interface. The number
// includes joysticks that are not recognised by SDL as game controllers.
// These joysticks will fail to open.
func (plt *Platform) NumGamepads() int {
	return sdl.NumJoysticks()
}

// OpenGamepad implements the userinput.Platform interface.
func (plt *Platform) OpenGamepad(index int) (userinput.Gamepad, error) {
	if !sdl.IsGameController(index) {
		return nil, curated.Errorf("sdlpad: device %d is not a game controller", index)
	}

	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		return nil, curated.Errorf("sdlpad: %v", sdl.GetError())
	}

	gp := &gamepad{
		ctrl: ctrl,
		id:   userinput.DeviceID(ctrl.Joystick().InstanceID()),
		name: ctrl.Name(),
	}

	logger.Logf(logger.Allow, "sdlpad", "opened %s", gp)

	return gp, nil
}

// gamepad implements the userinput.Gamepad interface.
type gamepad struct {
	ctrl *sdl.GameController
	id   userinput.DeviceID
	name string
}

func (gp *gamepad) String() string {
	return fmt.Sprintf("%s (%d)", gp.name, gp.id)
}

func (gp *gamepad) ID() userinput.DeviceID {
	return gp.id
}

func (gp *gamepad) Rumble(low uint16, high uint16, duration time.Duration) error {
	err := gp.ctrl.Rumble(low, high, uint32(duration.Milliseconds()))
	if err != nil {
		return curated.Errorf("sdlpad: %v", err)
	}
	return nil
}

func (gp *gamepad) Close() {
	logger.Logf(logger.Allow, "sdlpad", "closing %s", gp)
	gp.ctrl.Close()
}
