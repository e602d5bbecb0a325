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

package userinput_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopherpad/test"
	"github.com/jetsetilly/gopherpad/userinput"
)

type rumble struct {
	low      uint16
	high     uint16
	duration time.Duration
}

type mockGamepad struct {
	id      userinput.DeviceID
	closed  bool
	rumbles []rumble
}

func (gp *mockGamepad) ID() userinput.DeviceID {
	return gp.id
}

func (gp *mockGamepad) Rumble(low uint16, high uint16, duration time.Duration) error {
	gp.rumbles = append(gp.rumbles, rumble{low: low, high: high, duration: duration})
	return nil
}

func (gp *mockGamepad) Close() {
	gp.closed = true
}

// mockPlatform opens a new mockGamepad for every call to OpenGamepad(). the ID
// of the gamepad is the index plus 100
type mockPlatform struct {
	attached int
	fail     bool
	opened   map[userinput.DeviceID]*mockGamepad
}

func newMockPlatform(attached int) *mockPlatform {
	return &mockPlatform{
		attached: attached,
		opened:   make(map[userinput.DeviceID]*mockGamepad),
	}
}

func (p *mockPlatform) NumGamepads() int {
	return p.attached
}

func (p *mockPlatform) OpenGamepad(index int) (userinput.Gamepad, error) {
	if p.fail {
		return nil, errors.New("cannot open gamepad")
	}
	gp := &mockGamepad{id: userinput.DeviceID(index + 100)}
	p.opened[gp.id] = gp
	return gp, nil
}

func TestInitialAssignment(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(0))
	test.ExpectEquality(t, r.Source(0), userinput.SourceKeyboard)
	test.ExpectEquality(t, r.Source(1), userinput.SourceAbsent)
	test.ExpectEquality(t, r.ConnectedCount(), 1)

	r = userinput.NewRouter(userinput.NewConfig(), newMockPlatform(1))
	test.ExpectEquality(t, r.Source(0), userinput.SourceGamepad)
	test.ExpectEquality(t, r.Source(1), userinput.SourceKeyboard)
	test.ExpectEquality(t, r.ConnectedCount(), 2)

	p := newMockPlatform(3)
	r = userinput.NewRouter(userinput.NewConfig(), p)
	test.ExpectEquality(t, r.Source(0), userinput.SourceGamepad)
	test.ExpectEquality(t, r.Source(1), userinput.SourceGamepad)
	test.ExpectEquality(t, r.ConnectedCount(), 2)

	// extra gamepads are not opened
	test.ExpectEquality(t, len(p.opened), 2)

	// a single gamepad that cannot be opened falls back to the keyboard
	p = newMockPlatform(1)
	p.fail = true
	r = userinput.NewRouter(userinput.NewConfig(), p)
	test.ExpectEquality(t, r.Source(0), userinput.SourceKeyboard)
	test.ExpectEquality(t, r.Source(1), userinput.SourceKeyboard)
}

func TestOutOfRange(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(0))
	test.ExpectFailure(t, r.Connected(-1))
	test.ExpectFailure(t, r.Connected(2))
	test.ExpectEquality(t, r.ReadState(5), userinput.ButtonState{})
	test.ExpectSuccess(t, r.Rumble(5, true, 255))
}

func TestHotPlug(t *testing.T) {
	p := newMockPlatform(0)
	r := userinput.NewRouter(userinput.NewConfig(), p)
	test.ExpectFailure(t, r.Connected(1))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 0}))
	test.ExpectEquality(t, r.Source(1), userinput.SourceGamepad)
	test.ExpectEquality(t, r.ConnectedCount(), 2)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonSouth, Down: true}))
	test.ExpectSuccess(t, r.ReadState(1).South)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadRemoved{ID: 100}))
	test.ExpectEquality(t, r.Source(1), userinput.SourceAbsent)
	test.ExpectEquality(t, r.ReadState(1), userinput.ButtonState{})
	test.ExpectEquality(t, r.ConnectedCount(), 1)
	test.ExpectSuccess(t, p.opened[100].closed)

	// keyboard slot is not affected
	test.ExpectEquality(t, r.Source(0), userinput.SourceKeyboard)

	// removing an unknown device changes nothing
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadRemoved{ID: 999}))
	test.ExpectEquality(t, r.ConnectedCount(), 1)
}

func TestHotPlugNoFreeSlot(t *testing.T) {
	p := newMockPlatform(2)
	r := userinput.NewRouter(userinput.NewConfig(), p)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 5}))
	test.ExpectEquality(t, r.ConnectedCount(), 3)
	test.ExpectFailure(t, p.opened[105].closed)

	// events from the unassigned gamepad are ignored
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadButton{ID: 105, Button: userinput.GamepadButtonSouth, Down: true}))
	test.ExpectFailure(t, r.ReadState(0).South)
	test.ExpectFailure(t, r.ReadState(1).South)

	// removing the first gamepad does not promote the unassigned gamepad
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadRemoved{ID: 100}))
	test.ExpectEquality(t, r.Source(0), userinput.SourceAbsent)
	test.ExpectEquality(t, r.ConnectedCount(), 2)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadRemoved{ID: 105}))
	test.ExpectSuccess(t, p.opened[105].closed)
	test.ExpectEquality(t, r.ConnectedCount(), 1)

	// a new gamepad claims the free slot
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 7}))
	test.ExpectEquality(t, r.Source(0), userinput.SourceGamepad)

	r.Close()
	test.ExpectSuccess(t, p.opened[101].closed)
	test.ExpectSuccess(t, p.opened[107].closed)
	test.ExpectFailure(t, r.Connected(0))
	test.ExpectFailure(t, r.Connected(1))
}

func TestAddedForHeldGamepad(t *testing.T) {
	p := newMockPlatform(1)
	r := userinput.NewRouter(userinput.NewConfig(), p)
	held := p.opened[100]
	test.ExpectEquality(t, r.ConnectedCount(), 2)

	// an added event for the gamepad opened by NewRouter
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 0}))
	test.ExpectEquality(t, r.ConnectedCount(), 2)
	test.ExpectSuccess(t, p.opened[100].closed)
	test.ExpectFailure(t, held.closed)
	test.ExpectEquality(t, r.Source(0), userinput.SourceGamepad)
	test.ExpectEquality(t, r.Source(1), userinput.SourceKeyboard)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadRemoved{ID: 100}))
	test.ExpectEquality(t, r.ConnectedCount(), 1)
	test.ExpectSuccess(t, held.closed)
	test.ExpectEquality(t, r.Source(0), userinput.SourceAbsent)

	// same for a gamepad that is open but not assigned to a slot
	p = newMockPlatform(2)
	r = userinput.NewRouter(userinput.NewConfig(), p)
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 5}))
	unassigned := p.opened[105]
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 5}))
	test.ExpectEquality(t, r.ConnectedCount(), 3)
	test.ExpectFailure(t, unassigned.closed)
}

func TestHotPlugFailure(t *testing.T) {
	p := newMockPlatform(0)
	r := userinput.NewRouter(userinput.NewConfig(), p)
	p.fail = true

	test.ExpectFailure(t, r.HandleUserInput(userinput.EventGamepadAdded{Index: 0}))
	test.ExpectEquality(t, r.Source(1), userinput.SourceAbsent)
	test.ExpectEquality(t, r.ConnectedCount(), 1)
}

func TestGamepadButton(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(2))

	up := userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonDPadUp, Down: true}
	test.ExpectSuccess(t, r.HandleUserInput(up))
	test.ExpectSuccess(t, r.HandleUserInput(up))
	test.ExpectSuccess(t, r.ReadState(0).DPadUp)
	test.ExpectEquality(t, r.ReadState(1), userinput.ButtonState{})

	up.Down = false
	test.ExpectSuccess(t, r.HandleUserInput(up))
	test.ExpectFailure(t, r.ReadState(0).DPadUp)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadButton{ID: 101, Button: userinput.GamepadButtonStart, Down: true}))
	test.ExpectSuccess(t, r.ReadState(1).Start)
	test.ExpectFailure(t, r.ReadState(0).Start)
}

func TestTriggerBoundToButton(t *testing.T) {
	cfg := userinput.NewConfig()
	cfg.Players[0].BindGamepad(userinput.ActionLeftTrigger, userinput.ButtonBinding{Button: userinput.GamepadButtonGuide})
	r := userinput.NewRouter(cfg, newMockPlatform(1))

	ev := userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonGuide, Down: true}
	test.ExpectSuccess(t, r.HandleUserInput(ev))
	test.ExpectEquality(t, r.ReadState(0).LeftTrigger, int16(32767))

	ev.Down = false
	test.ExpectSuccess(t, r.HandleUserInput(ev))
	test.ExpectEquality(t, r.ReadState(0).LeftTrigger, int16(0))

	// the left trigger axis is no longer bound to an action
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: userinput.GamepadAxisLeftTrigger, Value: 100}))
	test.ExpectEquality(t, r.ReadState(0).LeftTrigger, int16(0))
}

func TestDuplicateBinding(t *testing.T) {
	cfg := userinput.NewConfig()
	cfg.Players[0].BindGamepad(userinput.ActionBack, userinput.ButtonBinding{Button: userinput.GamepadButtonDPadUp})
	r := userinput.NewRouter(cfg, newMockPlatform(1))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonDPadUp, Down: true}))
	test.ExpectSuccess(t, r.ReadState(0).DPadUp)
	test.ExpectFailure(t, r.ReadState(0).Back)
}

func TestGamepadTrigger(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(1))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: userinput.GamepadAxisRightTrigger, Value: 12345}))
	test.ExpectEquality(t, r.ReadState(0).RightTrigger, int16(12345))
	test.ExpectSuccess(t, r.ReadState(0).Pressed(userinput.ActionRightTrigger))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: userinput.GamepadAxisRightTrigger, Value: 0}))
	test.ExpectFailure(t, r.ReadState(0).Pressed(userinput.ActionRightTrigger))
}

func TestAxisBoundToButtonAction(t *testing.T) {
	cfg := userinput.NewConfig()
	cfg.Players[0].BindGamepad(userinput.ActionSouth, userinput.AxisBinding{Axis: userinput.GamepadAxisRightX})
	r := userinput.NewRouter(cfg, newMockPlatform(1))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: userinput.GamepadAxisRightX, Value: 1}))
	test.ExpectSuccess(t, r.ReadState(0).South)
	test.ExpectEquality(t, r.ReadState(0).RightStickX, int16(1))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: userinput.GamepadAxisRightX, Value: -20000}))
	test.ExpectFailure(t, r.ReadState(0).South)
	test.ExpectEquality(t, r.ReadState(0).RightStickX, int16(-20000))
}

func TestDeadzone(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(1))

	axis := func(axis userinput.GamepadAxis, v int16) userinput.ButtonState {
		test.ExpectSuccess(t, r.HandleUserInput(userinput.EventGamepadAxis{ID: 100, Axis: axis, Value: v}))
		return r.ReadState(0)
	}

	s := axis(userinput.GamepadAxisLeftX, 8000)
	test.ExpectFailure(t, s.DPadRight)
	test.ExpectFailure(t, s.DPadLeft)
	test.ExpectEquality(t, s.LeftStickX, int16(8000))

	s = axis(userinput.GamepadAxisLeftX, 8001)
	test.ExpectSuccess(t, s.DPadRight)
	test.ExpectFailure(t, s.DPadLeft)

	s = axis(userinput.GamepadAxisLeftX, -8000)
	test.ExpectFailure(t, s.DPadRight)
	test.ExpectFailure(t, s.DPadLeft)

	s = axis(userinput.GamepadAxisLeftX, -8001)
	test.ExpectFailure(t, s.DPadRight)
	test.ExpectSuccess(t, s.DPadLeft)

	s = axis(userinput.GamepadAxisLeftY, -8001)
	test.ExpectSuccess(t, s.DPadUp)
	test.ExpectFailure(t, s.DPadDown)

	s = axis(userinput.GamepadAxisLeftY, 8001)
	test.ExpectFailure(t, s.DPadUp)
	test.ExpectSuccess(t, s.DPadDown)

	s = axis(userinput.GamepadAxisLeftY, 0)
	test.ExpectFailure(t, s.DPadUp)
	test.ExpectFailure(t, s.DPadDown)

	// the right stick does not affect the D-Pad
	s = axis(userinput.GamepadAxisRightX, -32768)
	test.ExpectFailure(t, s.DPadLeft)
	test.ExpectEquality(t, s.RightStickX, int16(-32768))
}

func TestKeyboard(t *testing.T) {
	r := userinput.NewRouter(userinput.NewConfig(), newMockPlatform(0))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeW, Down: true}))
	test.ExpectSuccess(t, r.ReadState(0).DPadUp)
	test.ExpectEquality(t, r.ReadState(1), userinput.ButtonState{})

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeP, Down: true}))
	test.ExpectEquality(t, r.ReadState(0).LeftTrigger, int16(32767))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeW, Down: false}))
	test.ExpectFailure(t, r.ReadState(0).DPadUp)

	// unbound keys are ignored
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.Scancode(44), Down: true}))
	test.ExpectEquality(t, r.ReadState(0).String(), "lt=32767 rt=0 ls=0,0 rs=0,0")
}

func TestKeyboardUsesFirstPlayer(t *testing.T) {
	cfg := userinput.NewConfig()
	cfg.Players[1].BindKeyboard(userinput.ActionSouth, userinput.ScancodeL)

	// one gamepad means the keyboard is assigned to the second player
	r := userinput.NewRouter(cfg, newMockPlatform(1))
	test.ExpectEquality(t, r.Source(1), userinput.SourceKeyboard)

	// the first player's keyboard bindings are used
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeL, Down: true}))
	test.ExpectFailure(t, r.ReadState(1).South)
	test.ExpectEquality(t, r.ReadState(1).RightTrigger, int16(32767))

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeJ, Down: true}))
	test.ExpectSuccess(t, r.ReadState(1).South)

	// keyboard events do not reach the gamepad slot
	test.ExpectFailure(t, r.ReadState(0).South)
}

func TestKeyboardBothSlots(t *testing.T) {
	p := newMockPlatform(1)
	p.fail = true
	r := userinput.NewRouter(userinput.NewConfig(), p)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeReturn, Down: true}))
	test.ExpectSuccess(t, r.ReadState(0).Start)
	test.ExpectSuccess(t, r.ReadState(1).Start)
}

func TestRouterConfigCopied(t *testing.T) {
	cfg := userinput.NewConfig()
	r := userinput.NewRouter(cfg, newMockPlatform(0))
	cfg.Players[0].BindKeyboard(userinput.ActionStart, userinput.ScancodeW)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Scancode: userinput.ScancodeW, Down: true}))
	test.ExpectSuccess(t, r.ReadState(0).DPadUp)
	test.ExpectFailure(t, r.ReadState(0).Start)
}

func TestRumble(t *testing.T) {
	p := newMockPlatform(1)
	r := userinput.NewRouter(userinput.NewConfig(), p)

	// keyboard slot is ignored
	test.ExpectSuccess(t, r.Rumble(1, true, 255))

	test.ExpectSuccess(t, r.Rumble(0, true, 255))
	test.ExpectSuccess(t, r.Rumble(0, false, 0))
	test.ExpectSuccess(t, r.Rumble(0, false, 1))

	gp := p.opened[100]
	test.DemandEquality(t, len(gp.rumbles), 3)
	test.ExpectEquality(t, gp.rumbles[0], rumble{low: 65535, high: 65535, duration: 500 * time.Millisecond})
	test.ExpectEquality(t, gp.rumbles[1], rumble{low: 0, high: 0, duration: 200 * time.Millisecond})
	test.ExpectEquality(t, gp.rumbles[2], rumble{low: 0, high: 257, duration: 500 * time.Millisecond})
}
