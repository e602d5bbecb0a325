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
	"time"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/logger"
)

// Deadzone is the magnitude the left stick must exceed before it is treated
// as a D-Pad direction.
const Deadzone = 8000

// Gamepad is an opened gamepad device.
type Gamepad interface {
	ID() DeviceID
	Rumble(low uint16, high uint16, duration time.Duration) error
	Close()
}

// Platform gives the Router access to the physical gamepads.
type Platform interface {
	// NumGamepads returns the number of gamepads currently attached. Gamepads
	// are identified by an index between zero and NumGamepads()-1.
	NumGamepads() int

	// OpenGamepad opens the gamepad with the index.
	OpenGamepad(index int) (Gamepad, error)
}

// Source indicates what kind of device is assigned to a player slot.
type Source int

// List of valid Source values.
const (
	SourceAbsent Source = iota
	SourceKeyboard
	SourceGamepad
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceGamepad:
		return "gamepad"
	}
	return "absent"
}

type slot struct {
	source  Source
	gamepad Gamepad
	state   ButtonState
}

// Router assigns devices to player slots and maintains the ButtonState for
// each slot.
//
// The Router is not safe for concurrent use. All events should be handled by
// the same goroutine that reads the state.
type Router struct {
	cfg      Config
	platform Platform

	slots [NumPlayers]slot

	// gamepads that have been opened but which are not assigned to a slot
	unassigned []Gamepad

	// number of connected input sources. includes the keyboard when it is
	// assigned at startup and any unassigned gamepads
	connected int
}

// NewRouter is the preferred method of initialisation for the Router type. The
// Config is copied and later changes to it will not affect the Router.
//
// Slots are assigned according to the number of gamepads attached. With no
// gamepads the keyboard is assigned to the first slot. With one gamepad the
// gamepad is assigned to the first slot and the keyboard to the second. With
// two or more gamepads the first two gamepads are assigned to the slots.
func NewRouter(cfg *Config, platform Platform) *Router {
	r := &Router{
		cfg:      *cfg,
		platform: platform,
	}

	n := platform.NumGamepads()

	switch {
	case n == 0:
		r.slots[0].source = SourceKeyboard
		r.connected = 1

	case n == 1:
		if !r.assign(0, 0) {
			r.slots[0].source = SourceKeyboard
		}
		r.slots[1].source = SourceKeyboard
		r.connected = 2

	default:
		for i := range r.slots {
			if r.assign(i, i) {
				r.connected++
			}
		}
	}

	for i := range r.slots {
		logger.Logf(logger.Allow, "userinput", "player %d: %s", i+1, r.slots[i].source)
	}

	return r
}

// assign the gamepad with the index to the slot. returns false if the gamepad
// could not be opened
func (r *Router) assign(slot int, index int) bool {
	gp, err := r.platform.OpenGamepad(index)
	if err != nil {
		logger.Log(logger.Allow, "userinput", err)
		return false
	}
	r.slots[slot].source = SourceGamepad
	r.slots[slot].gamepad = gp
	return true
}

// Close all opened gamepads. Every slot becomes absent.
func (r *Router) Close() {
	for i := range r.slots {
		if r.slots[i].gamepad != nil {
			r.slots[i].gamepad.Close()
		}
		r.slots[i] = slot{}
	}
	for _, gp := range r.unassigned {
		gp.Close()
	}
	r.unassigned = r.unassigned[:0]
	r.connected = 0
}

// slotFromID returns the index of the slot the gamepad is assigned to or -1.
func (r *Router) slotFromID(id DeviceID) int {
	for i := range r.slots {
		if r.slots[i].source == SourceGamepad && r.slots[i].gamepad.ID() == id {
			return i
		}
	}
	return -1
}

// holds returns true if the gamepad is assigned to a slot or is unassigned but
// open.
func (r *Router) holds(id DeviceID) bool {
	if r.slotFromID(id) >= 0 {
		return true
	}
	for _, gp := range r.unassigned {
		if gp.ID() == id {
			return true
		}
	}
	return false
}

// HandleUserInput updates the Router with the event. Events for devices that
// are not assigned to a slot are ignored.
//
// An error is only returned if a newly connected gamepad cannot be opened.
func (r *Router) HandleUserInput(ev Event) error {
	switch ev := ev.(type) {
	case EventGamepadAdded:
		return r.gamepadAdded(ev)
	case EventGamepadRemoved:
		r.gamepadRemoved(ev)
	case EventGamepadButton:
		r.gamepadButton(ev)
	case EventGamepadAxis:
		r.gamepadAxis(ev)
	case EventKeyboard:
		r.keyboard(ev)
	default:
	}
	return nil
}

func (r *Router) gamepadAdded(ev EventGamepadAdded) error {
	gp, err := r.platform.OpenGamepad(ev.Index)
	if err != nil {
		return curated.Errorf("userinput: %v", err)
	}

	// SDL reports devices that were attached before the router was created.
	// these are already held
	if r.holds(gp.ID()) {
		gp.Close()
		return nil
	}

	r.connected++

	for i := range r.slots {
		if r.slots[i].source == SourceAbsent {
			r.slots[i].source = SourceGamepad
			r.slots[i].gamepad = gp
			logger.Logf(logger.Allow, "userinput", "player %d: gamepad %d added", i+1, gp.ID())
			return nil
		}
	}

	r.unassigned = append(r.unassigned, gp)
	logger.Logf(logger.Allow, "userinput", "gamepad %d added but no free player", gp.ID())

	return nil
}

func (r *Router) gamepadRemoved(ev EventGamepadRemoved) {
	if i := r.slotFromID(ev.ID); i >= 0 {
		r.slots[i].gamepad.Close()
		r.slots[i] = slot{}
		r.connected--
		logger.Logf(logger.Allow, "userinput", "player %d: gamepad %d removed", i+1, ev.ID)
		return
	}

	for i, gp := range r.unassigned {
		if gp.ID() == ev.ID {
			gp.Close()
			r.unassigned = append(r.unassigned[:i], r.unassigned[i+1:]...)
			r.connected--
			logger.Logf(logger.Allow, "userinput", "gamepad %d removed", ev.ID)
			return
		}
	}
}

func (r *Router) gamepadButton(ev EventGamepadButton) {
	i := r.slotFromID(ev.ID)
	if i < 0 {
		return
	}

	m := &r.cfg.Players[i]
	if a, ok := m.ActionForButton(ev.Button); ok {
		r.slots[i].state.set(a, ev.Down, pressedValue(ev.Down))
	}
}

func (r *Router) gamepadAxis(ev EventGamepadAxis) {
	i := r.slotFromID(ev.ID)
	if i < 0 {
		return
	}

	s := &r.slots[i].state

	// the left stick always drives the D-Pad. an action bound to the same axis
	// is applied afterwards
	switch ev.Axis {
	case GamepadAxisLeftX:
		s.LeftStickX = ev.Value
		s.DPadLeft = ev.Value < -Deadzone
		s.DPadRight = ev.Value > Deadzone
	case GamepadAxisLeftY:
		s.LeftStickY = ev.Value
		s.DPadUp = ev.Value < -Deadzone
		s.DPadDown = ev.Value > Deadzone
	case GamepadAxisRightX:
		s.RightStickX = ev.Value
	case GamepadAxisRightY:
		s.RightStickY = ev.Value
	}

	m := &r.cfg.Players[i]
	if a, ok := m.ActionForAxis(ev.Axis); ok {
		s.set(a, ev.Value > 0, ev.Value)
	}
}

// keyboard events are applied to every slot using the keyboard. the first
// player's keyboard bindings are used for every slot
func (r *Router) keyboard(ev EventKeyboard) {
	a, ok := r.cfg.Players[0].ActionForScancode(ev.Scancode)
	if !ok {
		return
	}

	for i := range r.slots {
		if r.slots[i].source == SourceKeyboard {
			r.slots[i].state.set(a, ev.Down, pressedValue(ev.Down))
		}
	}
}

func pressedValue(down bool) int16 {
	if down {
		return triggerPressed
	}
	return 0
}

// ReadState returns a copy of the current state for the slot. The zero state
// is returned for a slot number that is out of range.
func (r *Router) ReadState(slot int) ButtonState {
	if slot < 0 || slot >= NumPlayers {
		return ButtonState{}
	}
	return r.slots[slot].state
}

// Source returns the type of device assigned to the slot.
func (r *Router) Source(slot int) Source {
	if slot < 0 || slot >= NumPlayers {
		return SourceAbsent
	}
	return r.slots[slot].source
}

// Connected returns true if a device is assigned to the slot.
func (r *Router) Connected(slot int) bool {
	return r.Source(slot) != SourceAbsent
}

// ConnectedCount returns the number of connected input sources.
func (r *Router) ConnectedCount() int {
	return r.connected
}

// Config returns the mapping used by the Router.
func (r *Router) Config() Config {
	return r.cfg
}

// Rumble sends a vibration request to the gamepad assigned to the slot. The
// request is ignored if the slot does not have a gamepad.
//
// The low frequency motor runs at full strength if sustained is true. The
// high frequency motor runs at the intensity, scaled to the range of the
// motor.
func (r *Router) Rumble(slot int, sustained bool, intensity uint8) error {
	if r.Source(slot) != SourceGamepad {
		return nil
	}

	var low uint16
	if sustained {
		low = 0xffff
	}

	// 255 * 257 == 65535
	high := uint16(intensity) * 257

	duration := 200 * time.Millisecond
	if high > 0 {
		duration = 500 * time.Millisecond
	}

	err := r.slots[slot].gamepad.Rumble(low, high, duration)
	if err != nil {
		return curated.Errorf("userinput: rumble: %v", err)
	}
	return nil
}
