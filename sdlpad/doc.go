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

// Package sdlpad connects the userinput package to real hardware using SDL2.
//
// The Platform type implements the userinput.Platform interface. It opens SDL
// game controllers and delivers rumble requests to them. The Translate()
// function converts SDL events into userinput events, ready for the
// userinput.Router.
//
// Keyboard events are only delivered by SDL to a focused window. The
// OpenWindow() function creates a simple window for that purpose.
package sdlpad
