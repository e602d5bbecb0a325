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

// Package settings collects every persisted setting of the application: the
// video and debug options and the input bindings for each player.
//
// Settings are bound to a single file. Load() reads the file and immediately
// writes it back, which adds any settings missing from an older file. Save()
// merges the current values into the existing file so that sections and keys
// unknown to this package are preserved.
//
// The file looks like this (abbreviated):
//
//	[video]
//	fullscreen=false
//	window_width=640
//	window_height=480
//
//	[gamepad_p1]
//	dpad_up=button_dpad_up
//	...
//
//	[gamepad_p2]
//	dpad_up=button_dpad_up
//	...
//
//	[keyboard]
//	dpad_up=W
//	...
//
//	[debug]
//	show_fps=false
//	show_inputs=false
package settings
