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

package prefs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/logger"
)

// Serialiser is implemented by types that read and write more than a single
// value from a Document. For example, a table of input bindings that occupies
// several sections.
type Serialiser interface {
	// LoadFromDocument should treat missing or invalid values as a reason to
	// keep the current value rather than as an error.
	LoadFromDocument(doc *Document)
	SaveToDocument(doc *Document)
}

// a single registration with the Disk. exactly one of p or s is non-nil.
type diskEntry struct {
	section string
	key     string
	p       pref
	s       Serialiser
}

// Disk binds preference values to a file on disk.
//
// The order in which values are added with Add() and AddSerialiser() is the
// order in which they are written to a new file.
type Disk struct {
	path    string
	entries []diskEntry
	keys    map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, curated.Errorf("prefs: no path for disk")
	}

	return &Disk{
		path: path,
		keys: make(map[string]bool),
	}, nil
}

// Path returns the path of the file used by the disk.
func (dsk *Disk) Path() string {
	return dsk.path
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, e := range dsk.entries {
		if e.p != nil {
			s.WriteString(fmt.Sprintf("%s.%s :: %s\n", e.section, e.key, e.p))
		}
	}
	return s.String()
}

// splitKey divides a key of the form "section.key" at the first period.
func splitKey(key string) (string, string, error) {
	section, k, ok := strings.Cut(key, ".")
	if !ok || section == "" || k == "" {
		return "", "", curated.Errorf("prefs: key must be of the form section.key (%s)", key)
	}
	return section, k, nil
}

// Add preference value to the disk. The key must be of the form
// "section.key". It is an error to add the same key more than once.
func (dsk *Disk) Add(key string, p pref) error {
	section, k, err := splitKey(key)
	if err != nil {
		return err
	}

	if dsk.keys[key] {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.keys[key] = true

	dsk.entries = append(dsk.entries, diskEntry{section: section, key: k, p: p})

	return nil
}

// AddSerialiser adds a Serialiser to the disk.
func (dsk *Disk) AddSerialiser(s Serialiser) {
	dsk.entries = append(dsk.entries, diskEntry{s: s})
}

// Load values from the file. Values that are missing from the file are left
// untouched, as are values that cannot be converted to the type of the
// preference.
//
// The boolean return value is false if the file does not exist. This is not
// an error. Other I/O errors are returned.
func (dsk *Disk) Load() (bool, error) {
	doc, err := ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "prefs", "%s does not exist", dsk.path)
			return false, nil
		}
		return false, err
	}

	for _, e := range dsk.entries {
		if e.s != nil {
			e.s.LoadFromDocument(doc)
			continue
		}

		v, ok := doc.Lookup(e.section, e.key)
		if !ok {
			continue
		}

		err = e.p.Set(v)
		if err != nil {
			logger.Logf(logger.Allow, "prefs", "%s.%s: %v", e.section, e.key, err)
		}
	}

	return true, nil
}

// ApplyCommandLine sets preference values from the current command line group.
// See PushCommandLineStack(). Values used are removed from the group.
//
// Command line values are not written to disk unless Save() is called
// afterwards.
func (dsk *Disk) ApplyCommandLine() {
	for _, e := range dsk.entries {
		if e.p == nil {
			continue
		}

		key := fmt.Sprintf("%s.%s", e.section, e.key)
		if ok, v := GetCommandLinePref(key); ok {
			if err := e.p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "command line: %s: %v", key, err)
			}
		}
	}
}

// UnknownKey is the pattern of the error returned by Set() when the key has
// not been added to the disk.
const UnknownKey = "prefs: unknown key (%s)"

// Set the value of the preference with the key "section.key". The value is
// coerced in the same way as a value read from the file.
func (dsk *Disk) Set(key string, value string) error {
	section, k, err := splitKey(key)
	if err != nil {
		return err
	}

	for _, e := range dsk.entries {
		if e.p != nil && e.section == section && e.key == k {
			if err := e.p.Set(value); err != nil {
				return curated.Errorf("prefs: %s: %v", key, err)
			}
			return nil
		}
	}

	return curated.Errorf(UnknownKey, key)
}

// Save current values to the file. The existing content of the file is read
// first and the current values are merged into it. Sections and keys that the
// disk does not know about are preserved.
func (dsk *Disk) Save() error {
	doc, err := ReadFile(dsk.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		doc = NewDocument()
	}

	for _, e := range dsk.entries {
		if e.s != nil {
			e.s.SaveToDocument(doc)
			continue
		}
		doc.SetString(e.section, e.key, e.p.String())
	}

	return doc.WriteFile(dsk.path)
}
