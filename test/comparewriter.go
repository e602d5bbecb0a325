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

package test

import "strings"

// CompareWriter captures everything written to it so that it can be compared
// with expected output. It implements the io.Writer interface.
type CompareWriter struct {
	b strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.b.Write(p)
}

// Clear the captured output.
func (tw *CompareWriter) Clear() {
	tw.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}

// Contains returns true if s occurs anywhere in the captured output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.b.String(), s)
}

// Lines returns the captured output as a list of lines. The newline ending
// the output does not start another line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.b.String()
}
