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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("prefs: %v", err)
//
//	if curated.Is(e, "prefs: %v") {
//		fmt.Println("true")
//	}
//
// IsAny() reports whether an error is a curated error at all.
//
// The Error() function normalises the error chain so that duplicate adjacent
// parts are removed. This means that a package can safely prefix every error
// it returns with the package name, even if the error originated in the same
// package:
//
//	prefs: prefs: file not found
//
// is shown as:
//
//	prefs: file not found
//
// Curated errors also implement Unwrap(), returning the first error value
// given to Errorf(). This means errors.Is() from the standard library can be
// used to find, for example, os.ErrNotExist in a curated chain.
package curated
