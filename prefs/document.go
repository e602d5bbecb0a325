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

// Entry is a single key/value pair in a Section.
type Entry struct {
	Key   string
	Value string
}

// Section is a named and ordered collection of entries. Keys are unique
// within a section.
type Section struct {
	Name string

	entries []Entry

	// index into entries slice for each key
	index map[string]int
}

func newSection(name string) *Section {
	return &Section{
		Name:  name,
		index: make(map[string]int),
	}
}

// Len returns the number of entries in the section.
func (s *Section) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in the section, in insertion order.
func (s *Section) Entries() []Entry {
	e := make([]Entry, len(s.entries))
	copy(e, s.entries)
	return e
}

// Lookup returns the value for key and whether the key exists.
func (s *Section) Lookup(key string) (string, bool) {
	if i, ok := s.index[key]; ok {
		return s.entries[i].Value, true
	}
	return "", false
}

// set updates an existing entry in place or appends a new entry.
func (s *Section) set(key string, value string) {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

// Document is an ordered collection of sections. Section names are unique
// within a document.
//
// The zero value is not ready for use. Use NewDocument() or one of the Parse
// functions.
type Document struct {
	sections []*Section
	index    map[string]int
}

// NewDocument is the preferred method of initialisation for the Document type.
func NewDocument() *Document {
	return &Document{
		index: make(map[string]int),
	}
}

// Sections returns the names of all sections in the document, in insertion
// order.
func (doc *Document) Sections() []string {
	n := make([]string, 0, len(doc.sections))
	for _, s := range doc.sections {
		n = append(n, s.Name)
	}
	return n
}

// Section returns the named section and whether it exists.
func (doc *Document) Section(name string) (*Section, bool) {
	if i, ok := doc.index[name]; ok {
		return doc.sections[i], true
	}
	return nil, false
}

// section returns the named section, creating it at the end of the document
// if necessary.
func (doc *Document) section(name string) *Section {
	if i, ok := doc.index[name]; ok {
		return doc.sections[i]
	}
	s := newSection(name)
	doc.index[name] = len(doc.sections)
	doc.sections = append(doc.sections, s)
	return s
}

// Lookup returns the value for the key in the named section and whether it
// exists.
func (doc *Document) Lookup(section string, key string) (string, bool) {
	s, ok := doc.Section(section)
	if !ok {
		return "", false
	}
	return s.Lookup(key)
}
