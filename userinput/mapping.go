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
	"fmt"

	"github.com/jetsetilly/gopherpad/prefs"
)

// NumPlayers is the number of players supported by Config and by the Router.
const NumPlayers = 2

// KeyboardSection is the name of the document section used for keyboard
// bindings. There is only one keyboard section and it is shared by all
// players.
const KeyboardSection = "keyboard"

// GamepadSection returns the name of the document section used for the gamepad
// bindings of the player. Players are numbered from zero.
func GamepadSection(player int) string {
	return fmt.Sprintf("gamepad_p%d", player+1)
}

// Mapping binds every Action to exactly one gamepad input and exactly one
// keyboard scancode.
//
// The zero value is not valid because it has no gamepad bindings. Use
// DefaultMapping().
type Mapping struct {
	gamepad  [NumActions]GamepadBinding
	keyboard [NumActions]Scancode
}

// DefaultMapping returns the standard layout. The layout is the same for every
// player.
func DefaultMapping() Mapping {
	return Mapping{
		gamepad: [NumActions]GamepadBinding{
			ActionDPadUp:        ButtonBinding{GamepadButtonDPadUp},
			ActionDPadDown:      ButtonBinding{GamepadButtonDPadDown},
			ActionDPadLeft:      ButtonBinding{GamepadButtonDPadLeft},
			ActionDPadRight:     ButtonBinding{GamepadButtonDPadRight},
			ActionNorth:         ButtonBinding{GamepadButtonNorth},
			ActionSouth:         ButtonBinding{GamepadButtonSouth},
			ActionEast:          ButtonBinding{GamepadButtonEast},
			ActionWest:          ButtonBinding{GamepadButtonWest},
			ActionLeftShoulder:  ButtonBinding{GamepadButtonLeftShoulder},
			ActionRightShoulder: ButtonBinding{GamepadButtonRightShoulder},
			ActionLeftTrigger:   AxisBinding{GamepadAxisLeftTrigger},
			ActionRightTrigger:  AxisBinding{GamepadAxisRightTrigger},
			ActionL3:            ButtonBinding{GamepadButtonLeftStick},
			ActionR3:            ButtonBinding{GamepadButtonRightStick},
			ActionStart:         ButtonBinding{GamepadButtonStart},
			ActionBack:          ButtonBinding{GamepadButtonBack},
		},
		keyboard: [NumActions]Scancode{
			ActionDPadUp:        ScancodeW,
			ActionDPadDown:      ScancodeS,
			ActionDPadLeft:      ScancodeA,
			ActionDPadRight:     ScancodeD,
			ActionNorth:         ScancodeI,
			ActionSouth:         ScancodeJ,
			ActionEast:          ScancodeK,
			ActionWest:          ScancodeU,
			ActionLeftShoulder:  ScancodeSemicolon,
			ActionRightShoulder: ScancodeO,
			ActionLeftTrigger:   ScancodeP,
			ActionRightTrigger:  ScancodeL,
			ActionL3:            Scancode9,
			ActionR3:            Scancode0,
			ActionStart:         ScancodeReturn,
			ActionBack:          ScancodeBackspace,
		},
	}
}

// Gamepad returns the gamepad binding for the action.
func (m *Mapping) Gamepad(a Action) GamepadBinding {
	return m.gamepad[a]
}

// Keyboard returns the keyboard binding for the action.
func (m *Mapping) Keyboard(a Action) Scancode {
	return m.keyboard[a]
}

// BindGamepad changes the gamepad binding for the action. A nil binding is
// ignored.
func (m *Mapping) BindGamepad(a Action, b GamepadBinding) {
	if b == nil {
		return
	}
	m.gamepad[a] = b
}

// BindKeyboard changes the keyboard binding for the action. ScancodeUnknown is
// ignored.
func (m *Mapping) BindKeyboard(a Action, sc Scancode) {
	if sc == ScancodeUnknown {
		return
	}
	m.keyboard[a] = sc
}

// ActionForButton returns the first Action bound to the gamepad button.
func (m *Mapping) ActionForButton(button GamepadButton) (Action, bool) {
	for a := Action(0); a < NumActions; a++ {
		if b, ok := m.gamepad[a].(ButtonBinding); ok && b.Button == button {
			return a, true
		}
	}
	return NumActions, false
}

// ActionForAxis returns the first Action bound to the gamepad axis.
func (m *Mapping) ActionForAxis(axis GamepadAxis) (Action, bool) {
	for a := Action(0); a < NumActions; a++ {
		if b, ok := m.gamepad[a].(AxisBinding); ok && b.Axis == axis {
			return a, true
		}
	}
	return NumActions, false
}

// ActionForScancode returns the first Action bound to the scancode.
func (m *Mapping) ActionForScancode(sc Scancode) (Action, bool) {
	for a := Action(0); a < NumActions; a++ {
		if m.keyboard[a] == sc {
			return a, true
		}
	}
	return NumActions, false
}

// Load bindings from the named sections of the document. Only recognised
// values change a binding. Missing keys and unrecognised values leave the
// current binding in place.
func (m *Mapping) Load(doc *prefs.Document, gamepadSection string, keyboardSection string) {
	for a := Action(0); a < NumActions; a++ {
		if v, ok := doc.Lookup(gamepadSection, a.String()); ok {
			if b, ok := ParseGamepadBinding(v); ok {
				m.gamepad[a] = b
			}
		}

		if v, ok := doc.Lookup(keyboardSection, a.String()); ok {
			if sc, ok := ParseScancode(v); ok {
				m.keyboard[a] = sc
			}
		}
	}
}

// Save bindings to the named sections of the document. Every action is
// written to both sections.
func (m *Mapping) Save(doc *prefs.Document, gamepadSection string, keyboardSection string) {
	m.saveGamepad(doc, gamepadSection)
	m.saveKeyboard(doc, keyboardSection)
}

func (m *Mapping) saveGamepad(doc *prefs.Document, section string) {
	for a := Action(0); a < NumActions; a++ {
		doc.SetString(section, a.String(), m.gamepad[a].String())
	}
}

func (m *Mapping) saveKeyboard(doc *prefs.Document, section string) {
	for a := Action(0); a < NumActions; a++ {
		doc.SetString(section, a.String(), m.keyboard[a].String())
	}
}

// Config is the Mapping for each player. It implements the prefs.Serialiser
// interface.
//
// Only the keyboard bindings for the first player are saved. Every player
// loads keyboard bindings from the same section.
type Config struct {
	Players [NumPlayers]Mapping
}

// NewConfig is the preferred method of initialisation for the Config type.
// Every player is given the default mapping.
func NewConfig() *Config {
	cfg := &Config{}
	for i := range cfg.Players {
		cfg.Players[i] = DefaultMapping()
	}
	return cfg
}

// LoadFromDocument implements the prefs.Serialiser interface.
func (cfg *Config) LoadFromDocument(doc *prefs.Document) {
	for i := range cfg.Players {
		cfg.Players[i].Load(doc, GamepadSection(i), KeyboardSection)
	}
}

// SaveToDocument implements the prefs.Serialiser interface.
func (cfg *Config) SaveToDocument(doc *prefs.Document) {
	for i := range cfg.Players {
		cfg.Players[i].saveGamepad(doc, GamepadSection(i))
	}
	cfg.Players[0].saveKeyboard(doc, KeyboardSection)
}
