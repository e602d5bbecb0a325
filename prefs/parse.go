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
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherpad/curated"
)

// trim removes leading spaces and tabs, and trailing spaces, tabs, carriage
// returns and newlines.
func trim(s string) string {
	return strings.TrimRight(strings.TrimLeft(s, " \t"), " \t\r\n")
}

// Parse text from io.Reader into a new Document. An error is only returned if
// the reader fails.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	err := doc.Merge(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString is like Parse() but for text already in memory.
func ParseString(s string) *Document {
	doc := NewDocument()
	_ = doc.Merge(strings.NewReader(s))
	return doc
}

// ReadFile parses the named file into a new Document. The returned error will
// satisfy errors.Is(err, os.ErrNotExist) if the file does not exist.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return doc, nil
}

// Merge text from io.Reader into the document. Values in the text overwrite
// existing values with the same section and key. Everything else is appended.
func (doc *Document) Merge(r io.Reader) error {
	br := bufio.NewReader(r)

	// entries are recorded into the most recently seen section. entries before
	// any section header are dropped
	var current *Section

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if len(line) > 0 {
			current = doc.mergeLine(current, trim(line))
		}

		if err != nil {
			return nil
		}
	}
}

// mergeLine classifies a single trimmed line. returns the section that should
// be used as the current section for the next line.
func (doc *Document) mergeLine(current *Section, line string) *Section {
	if len(line) == 0 || line[0] == '#' || line[0] == ';' {
		return current
	}

	if line[0] == '[' {
		if end := strings.IndexByte(line, ']'); end > 0 {
			return doc.section(trim(line[1:end]))
		}

		// unterminated section header
		return current
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 || current == nil {
		return current
	}

	current.set(trim(line[:eq]), trim(line[eq+1:]))

	return current
}

// Write the document to io.Writer. Each section is written as a header
// followed by one key=value line per entry and a blank line. No escaping is
// performed.
func (doc *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range doc.sections {
		bw.WriteString("[")
		bw.WriteString(s.Name)
		bw.WriteString("]\n")
		for _, e := range s.entries {
			bw.WriteString(e.Key)
			bw.WriteString("=")
			bw.WriteString(e.Value)
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// String returns the document in its text format.
func (doc *Document) String() string {
	s := &strings.Builder{}
	_ = doc.Write(s)
	return s.String()
}

// WriteFile writes the document to the named file, creating or truncating it.
func (doc *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	err = doc.Write(f)
	if err != nil {
		_ = f.Close()
		return curated.Errorf("prefs: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
