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

package settings

import (
	"io"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/userinput"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

// mapping node with the keys in the order given. kv is a list of key/value
// pairs
func mapping(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: kv}
}

func bindings(m *userinput.Mapping, keyboard bool) *yaml.Node {
	n := mapping()
	for a := userinput.Action(0); a < userinput.NumActions; a++ {
		v := m.Gamepad(a).String()
		if keyboard {
			v = m.Keyboard(a).String()
		}
		n.Content = append(n.Content, scalar(a.String()), scalar(v))
	}
	return n
}

// ExportYAML writes every setting to io.Writer as a YAML document. The
// document is for information only and cannot be loaded.
//
// Keys appear in the same order as they do in the settings file. The
// keyboard bindings are those of the first player.
func (set *Settings) ExportYAML(w io.Writer) error {
	doc := mapping(
		scalar("video"), mapping(
			scalar("fullscreen"), scalar(set.Video.Fullscreen.String()),
			scalar("window_width"), scalar(set.Video.WindowWidth.String()),
			scalar("window_height"), scalar(set.Video.WindowHeight.String()),
		),
	)

	for i := range set.Input.Players {
		doc.Content = append(doc.Content,
			scalar(userinput.GamepadSection(i)), bindings(&set.Input.Players[i], false))
	}

	doc.Content = append(doc.Content,
		scalar(userinput.KeyboardSection), bindings(&set.Input.Players[0], true),
		scalar("debug"), mapping(
			scalar("show_fps"), scalar(set.Debug.ShowFPS.String()),
			scalar("show_inputs"), scalar(set.Debug.ShowInputs.String()),
		),
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(doc)
	if err != nil {
		return curated.Errorf("settings: yaml: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("settings: yaml: %v", err)
	}

	return nil
}

type tomlVideo struct {
	Fullscreen   bool `toml:"fullscreen"`
	WindowWidth  int  `toml:"window_width"`
	WindowHeight int  `toml:"window_height"`
}

type tomlDebug struct {
	ShowFPS    bool `toml:"show_fps"`
	ShowInputs bool `toml:"show_inputs"`
}

type tomlExport struct {
	Video     tomlVideo         `toml:"video"`
	GamepadP1 map[string]string `toml:"gamepad_p1"`
	GamepadP2 map[string]string `toml:"gamepad_p2"`
	Keyboard  map[string]string `toml:"keyboard"`
	Debug     tomlDebug         `toml:"debug"`
}

func bindingsMap(m *userinput.Mapping, keyboard bool) map[string]string {
	b := make(map[string]string, userinput.NumActions)
	for a := userinput.Action(0); a < userinput.NumActions; a++ {
		if keyboard {
			b[a.String()] = m.Keyboard(a).String()
		} else {
			b[a.String()] = m.Gamepad(a).String()
		}
	}
	return b
}

// ExportTOML writes every setting to io.Writer as a TOML document. Like
// ExportYAML the document is for information only.
//
// Sections appear in the same order as they do in the settings file but the
// bindings within a section are sorted by action name.
func (set *Settings) ExportTOML(w io.Writer) error {
	exp := tomlExport{
		Video: tomlVideo{
			Fullscreen:   set.Video.Fullscreen.Get().(bool),
			WindowWidth:  set.Video.WindowWidth.Get().(int),
			WindowHeight: set.Video.WindowHeight.Get().(int),
		},
		GamepadP1: bindingsMap(&set.Input.Players[0], false),
		GamepadP2: bindingsMap(&set.Input.Players[1], false),
		Keyboard:  bindingsMap(&set.Input.Players[0], true),
		Debug: tomlDebug{
			ShowFPS:    set.Debug.ShowFPS.Get().(bool),
			ShowInputs: set.Debug.ShowInputs.Get().(bool),
		},
	}

	err := toml.NewEncoder(w).Order(toml.OrderPreserve).Indentation("").Encode(exp)
	if err != nil {
		return curated.Errorf("settings: toml: %v", err)
	}

	return nil
}
