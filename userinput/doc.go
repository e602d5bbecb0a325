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

// Package userinput translates input from real hardware into the abstract
// actions used by the rest of the application.
//
// The Mapping type binds each Action to one gamepad input and one keyboard
// scancode. Config holds a Mapping for each player and can be loaded from and
// saved to a prefs.Document.
//
// The Router owns the two player slots. It tracks which physical device is
// assigned to each slot and maintains a ButtonState for each slot by
// dispatching Events through the Config.
//
// The hardware identifiers (gamepad buttons, gamepad axes and keyboard
// scancodes) use the same numbering as SDL2. This allows the platform layer
// to convert SDL events with simple type conversions. However, nothing in this
// package depends on SDL and the Router is driven through the Platform
// interface.
package userinput
