// This file is part of Plumbing.
//
// Plumbing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Plumbing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Plumbing.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that raise curated
// errors export their patterns as const strings and callers test for them
// with the Is() function:
//
//	const UnknownEvent = "blueprint: line %d: unknown event (%s)"
//
//	err := curated.Errorf(UnknownEvent, 3, "P9_UP")
//
//	if curated.Is(err, UnknownEvent) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("inputconfig: %s: %v", "pad.cfg", err)
//
//	if curated.Has(f, UnknownEvent) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being the difference between expected and unexpected
// errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. Chains are thought of as being composed of parts
// separated by the sub-string ': '.
//
// Curated errors that wrap another error value also implement Unwrap() so
// that errors.Is() and errors.As() from the standard library see through
// them.
package curated
