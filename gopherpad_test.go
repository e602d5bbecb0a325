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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherpad/prefs"
	"github.com/jetsetilly/gopherpad/settings"
	"github.com/jetsetilly/gopherpad/test"
	"github.com/jetsetilly/gopherpad/userinput"
)

func tmpConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.ini")
}

func readConfig(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func loadConfig(t *testing.T, fn string) *settings.Settings {
	t.Helper()
	set, err := settings.NewSettings(fn)
	test.DemandSuccess(t, err)
	_, err = set.Load()
	test.DemandSuccess(t, err)
	return set
}

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, run(nil, []string{"version"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Gopherpad "))
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, run(nil, []string{"-help"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("available sub-modes: SHOW, DEFAULTS, SET, BIND, EXPORT, TEST, VERSION"))
}

func TestShowMode(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "show"}, tw), 0)
	s := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, fn+"\n"))
	test.ExpectSuccess(t, strings.Contains(s, "video.window_width :: 640\n"))
	test.ExpectSuccess(t, strings.Contains(s, "dpad_up"))

	// path, settings and a line for every action
	lines := tw.Lines()
	test.ExpectEquality(t, len(lines), 25)
	test.ExpectEquality(t, lines[len(lines)-1], "back            button_back          button_back          Backspace")

	// the file is created by the first load
	test.ExpectSuccess(t, strings.HasPrefix(readConfig(t, fn), "[video]\n"))

	tw.Clear()
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "show", "extra"}, tw), 20)
}

func TestShowWithOverrides(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "-prefs", "video.window_width::1024", "show"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("video.window_width :: 1024\n"))
	test.ExpectSuccess(t, strings.Contains(readConfig(t, fn), "window_width=640\n"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestDefaultsMode(t *testing.T) {
	fn := tmpConfig(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[video]\nwindow_width=1000\n\n[extra]\nkeep=1\n"), 0o600))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "defaults"}, tw), 0)

	s := readConfig(t, fn)
	test.ExpectSuccess(t, strings.Contains(s, "window_width=640\n"))
	test.ExpectSuccess(t, strings.Contains(s, "[extra]\nkeep=1\n"))
}

func TestSetMode(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "video.window_width", "800"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "video.window_width set to 800\n")
	test.ExpectEquality(t, loadConfig(t, fn).Video.WindowWidth.Get().(int), 800)

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "video.window_width", "wide"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "video.unknown", "1"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "video.window_width"}, tw), 20)
	test.ExpectEquality(t, loadConfig(t, fn).Video.WindowWidth.Get().(int), 800)
}

func TestSetBinding(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "gamepad_p1.south", "button_north"}, tw), 20)
	test.ExpectEquality(t, tw.String(), "* error in SET mode: gamepad_p1.south is a binding: use BIND mode\n")

	tw.Clear()
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "set", "video.window_width", "0"}, tw), 20)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error in SET mode: prefs: video.window_width: settings: window width must be positive (0)\n"))
}

func TestUnreadableSettings(t *testing.T) {
	// a directory cannot be read as a settings file
	dir := t.TempDir()
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", dir, "show"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("video.window_width :: 640\n"))

	// saving fails and the log explains why the defaults were used
	tw.Clear()
	test.ExpectEquality(t, run(nil, []string{"-config", dir, "set", "video.window_width", "800"}, tw), 20)
	test.ExpectSuccess(t, tw.Contains("gopherpad: using default settings: "))

	fi, err := os.Stat(dir)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}

func TestBindMode(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "-player", "2", "south", "y"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "p2 south bound to button_north\n")

	tw.Clear()
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "L3", "axis_lefty"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "p1 l3 bound to axis_lefty\n")

	set := loadConfig(t, fn)
	test.ExpectEquality(t, set.Input.Players[1].Gamepad(userinput.ActionSouth).String(), "button_north")
	test.ExpectEquality(t, set.Input.Players[0].Gamepad(userinput.ActionSouth).String(), "button_south")
	test.ExpectEquality(t, set.Input.Players[0].Gamepad(userinput.ActionL3).String(), "axis_lefty")
}

func TestBindKeyboard(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "-keyboard", "start", "space"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "p1 start bound to Space\n")
	test.ExpectSuccess(t, strings.Contains(readConfig(t, fn), "start=Space\n"))

	// keyboard bindings are shared
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "-keyboard", "-player", "2", "start", "Return"}, tw), 20)
}

func TestBindErrors(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "jump", "button_south"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "south", "button_z"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "-keyboard", "south", "NoSuchKey"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "-player", "3", "south", "button_south"}, tw), 20)
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "bind", "south"}, tw), 20)
}

func TestExportMode(t *testing.T) {
	fn := tmpConfig(t)
	tw := &test.CompareWriter{}

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "-prefs", "video.window_width::1024", "export"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("  window_width: 1024\n"))

	tw.Clear()
	test.ExpectEquality(t, run(nil, []string{"-config", fn, "export", "-format", "toml"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("window_width = 640"))

	test.ExpectEquality(t, run(nil, []string{"-config", fn, "export", "-format", "json"}, tw), 20)
}

// mockGamepad and mockPlatform stand in for the SDL platform
type mockGamepad struct {
	id      userinput.DeviceID
	rumbles int
}

func (gp *mockGamepad) ID() userinput.DeviceID {
	return gp.id
}

func (gp *mockGamepad) Rumble(low uint16, high uint16, duration time.Duration) error {
	gp.rumbles++
	return nil
}

func (gp *mockGamepad) Close() {
}

type mockPlatform struct {
	attached int
	opened   []*mockGamepad
}

func (p *mockPlatform) NumGamepads() int {
	return p.attached
}

func (p *mockPlatform) OpenGamepad(index int) (userinput.Gamepad, error) {
	gp := &mockGamepad{id: userinput.DeviceID(index + 100)}
	p.opened = append(p.opened, gp)
	return gp, nil
}

func TestInputMonitor(t *testing.T) {
	plt := &mockPlatform{attached: 1}
	rtr := userinput.NewRouter(userinput.NewConfig(), plt)
	defer rtr.Close()

	tw := &test.CompareWriter{}
	mon := newInputMonitor(rtr, tw, true, false)
	test.ExpectEquality(t, tw.String(), "p1: gamepad\np2: keyboard\n")

	tw.Clear()
	quit := mon.handle(userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonSouth, Down: true})
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, tw.String(), "p1: south lt=0 rt=0 ls=0,0 rs=0,0\n")
	test.ExpectEquality(t, plt.opened[0].rumbles, 1)

	// holding the button does not rumble again
	tw.Clear()
	mon.handle(userinput.EventGamepadButton{ID: 100, Button: userinput.GamepadButtonSouth, Down: true})
	test.ExpectEquality(t, tw.String(), "")
	test.ExpectEquality(t, plt.opened[0].rumbles, 1)

	tw.Clear()
	mon.handle(userinput.EventKeyboard{Scancode: userinput.ScancodeW, Down: true})
	test.ExpectEquality(t, tw.String(), "p2: dpad_up lt=0 rt=0 ls=0,0 rs=0,0\n")

	tw.Clear()
	mon.handle(userinput.EventGamepadRemoved{ID: 100})
	test.ExpectEquality(t, tw.String(), "p1: absent\np1: lt=0 rt=0 ls=0,0 rs=0,0\n")

	test.ExpectEquality(t, mon.handle(userinput.EventQuit{}), true)
}

func TestInputMonitorQuiet(t *testing.T) {
	plt := &mockPlatform{}
	rtr := userinput.NewRouter(userinput.NewConfig(), plt)
	defer rtr.Close()

	tw := &test.CompareWriter{}
	mon := newInputMonitor(rtr, tw, false, true)
	test.ExpectEquality(t, tw.String(), "\r\033[Kp1: keyboard\n\r\033[Kp2: absent\n")

	tw.Clear()
	mon.handle(userinput.EventKeyboard{Scancode: userinput.ScancodeW, Down: true})
	test.ExpectEquality(t, tw.String(), "")

	// hot-plugged gamepad is assigned to the empty slot
	plt.attached = 1
	mon.handle(userinput.EventGamepadAdded{Index: 0})
	test.ExpectEquality(t, tw.String(), "\r\033[Kp2: gamepad\n")
}
