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
	"strconv"
	"strings"
)

// only this many characters of a boolean value are considered when parsing.
const boolMaxLen = 15

// ParseBool interprets the string as a boolean. The values true, yes and 1 are
// true and the values false, no and 0 are false. The comparison is case
// insensitive. The second return value is false if the string is none of
// these.
func ParseBool(s string) (bool, bool) {
	if len(s) > boolMaxLen {
		s = s[:boolMaxLen]
	}

	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	}

	return false, false
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseInt interprets the string as a base 10 integer with an optional sign.
// The second return value is false if the string contains anything else,
// including trailing characters, or if it is empty.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetString returns the value of the key in the named section. The default
// value is returned if either the section or the key does not exist.
func (doc *Document) GetString(section string, key string, def string) string {
	if v, ok := doc.Lookup(section, key); ok {
		return v
	}
	return def
}

// GetInt is like GetString() but the value is interpreted with ParseInt(). The
// default value is also returned if the value is not a valid integer.
func (doc *Document) GetInt(section string, key string, def int) int {
	v, ok := doc.Lookup(section, key)
	if !ok {
		return def
	}
	if n, ok := ParseInt(v); ok {
		return n
	}
	return def
}

// GetBool is like GetString() but the value is interpreted with ParseBool().
// The default value is also returned if the value is not a valid boolean.
func (doc *Document) GetBool(section string, key string, def bool) bool {
	v, ok := doc.Lookup(section, key)
	if !ok {
		return def
	}
	if b, ok := ParseBool(v); ok {
		return b
	}
	return def
}

// SetString updates or creates the key in the named section. A new section is
// added to the end of the document and a new key is added to the end of the
// section. An existing key keeps its position.
func (doc *Document) SetString(section string, key string, value string) {
	doc.section(section).set(key, value)
}

// SetInt is like SetString() for integer values.
func (doc *Document) SetInt(section string, key string, value int) {
	doc.SetString(section, key, strconv.Itoa(value))
}

// SetBool is like SetString() for boolean values. Values are stored as "true"
// or "false".
func (doc *Document) SetBool(section string, key string, value bool) {
	doc.SetString(section, key, FormatBool(value))
}
