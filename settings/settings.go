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
	"errors"
	"os"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/logger"
	"github.com/jetsetilly/gopherpad/prefs"
	"github.com/jetsetilly/gopherpad/userinput"
)

// default values for the video settings
const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// Video settings.
type Video struct {
	Fullscreen   prefs.Bool
	WindowWidth  prefs.Int
	WindowHeight prefs.Int
}

// SetDefaults reverts the video settings to the default values.
func (v *Video) SetDefaults() {
	_ = v.Fullscreen.Set(false)
	_ = v.WindowWidth.Set(DefaultWindowWidth)
	_ = v.WindowHeight.Set(DefaultWindowHeight)
}

// positive returns a prefs hook that rejects values less than one.
func positive(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("settings: %s must be positive (%d)", name, v)
		}
		return nil
	}
}

// Debug settings.
type Debug struct {
	ShowFPS    prefs.Bool
	ShowInputs prefs.Bool
}

// SetDefaults reverts the debug settings to the default values.
func (d *Debug) SetDefaults() {
	_ = d.ShowFPS.Set(false)
	_ = d.ShowInputs.Set(false)
}

// Settings is the collection of all persisted settings.
type Settings struct {
	Video Video
	Input *userinput.Config
	Debug Debug

	dsk *prefs.Disk
}

// NewSettings is the preferred method of initialisation for the Settings type.
// All settings have their default values. The file is not read until Load()
// is called.
func NewSettings(path string) (*Settings, error) {
	set := &Settings{
		Input: userinput.NewConfig(),
	}
	set.SetDefaults()

	set.Video.WindowWidth.SetHookPre(positive("window width"))
	set.Video.WindowHeight.SetHookPre(positive("window height"))

	var err error

	set.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// the order in which values are added is the order in which sections
	// appear in a new file
	err = set.dsk.Add("video.fullscreen", &set.Video.Fullscreen)
	if err != nil {
		return nil, err
	}
	err = set.dsk.Add("video.window_width", &set.Video.WindowWidth)
	if err != nil {
		return nil, err
	}
	err = set.dsk.Add("video.window_height", &set.Video.WindowHeight)
	if err != nil {
		return nil, err
	}

	set.dsk.AddSerialiser(set.Input)

	err = set.dsk.Add("debug.show_fps", &set.Debug.ShowFPS)
	if err != nil {
		return nil, err
	}
	err = set.dsk.Add("debug.show_inputs", &set.Debug.ShowInputs)
	if err != nil {
		return nil, err
	}

	return set, nil
}

// SetDefaults reverts every setting to the default value.
func (set *Settings) SetDefaults() {
	set.Video.SetDefaults()
	set.Debug.SetDefaults()
	*set.Input = *userinput.NewConfig()
}

// Path returns the path of the settings file.
func (set *Settings) Path() string {
	return set.dsk.Path()
}

// Load settings from the file. Settings missing from the file have their
// default value. The file is then saved so that it contains every setting.
//
// Any values on the command line stack (see prefs.PushCommandLineStack()) are
// applied after the file has been saved. These values are not written to the
// file unless Save() is called.
//
// Returns true if the file existed. An error is returned if the file exists
// but could not be read. In that case the settings have their default values.
func (set *Settings) Load() (bool, error) {
	set.SetDefaults()

	ok, err := set.dsk.Load()
	if err != nil {
		set.SetDefaults()
		return false, err
	}

	if !ok {
		logger.Logf(logger.Allow, "settings", "creating %s with default values", set.dsk.Path())
	}

	err = set.dsk.Save()
	if err != nil {
		logger.Log(logger.Allow, "settings", err)
	}

	set.dsk.ApplyCommandLine()

	return ok, nil
}

// Save settings to the file. The existing contents of the file are preserved
// except for the values being saved.
func (set *Settings) Save() error {
	return set.dsk.Save()
}

// Set the video or debug setting with the key "section.key" from a string.
// Bindings are changed through the Input field.
func (set *Settings) Set(key string, value string) error {
	return set.dsk.Set(key, value)
}

// Exists returns true if the settings file exists.
func (set *Settings) Exists() bool {
	_, err := os.Stat(set.dsk.Path())
	return !errors.Is(err, os.ErrNotExist)
}

func (set *Settings) String() string {
	return set.dsk.String()
}
