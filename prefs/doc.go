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

// Package prefs stores and persists configuration values.
//
// The Document type is the in-memory model of a configuration file. A
// Document is an ordered list of named sections and each section is an
// ordered list of key/value entries. Values are always stored as text. Typed
// access is provided by the GetInt(), GetBool(), SetInt() and SetBool()
// functions, which convert at the point of access.
//
// The text format of a Document is INI-like:
//
//	# comment
//	; also a comment
//	[video]
//	fullscreen=false
//	window_width=640
//
// Parsing never fails because of the content of the text. Lines that cannot
// be classified are skipped. Comments and blank lines are not preserved.
//
// The Disk type binds preference values (the Bool, Int and String types) and
// Serialiser implementations to a file on disk. Saving a Disk merges the
// current values with whatever the file already contains, so sections and
// keys that the program does not know about survive a load/save cycle.
//
// Preference values can also be overridden from the command line. See the
// PushCommandLineStack() function.
package prefs
