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

// Package inputconfig stores the networks of input devices in a directory
// of text files.
//
// Each file starts with a header naming the device, optionally followed by
// the ordinal of the device among devices with the same name. The remainder
// of the file is a blueprint. For example:
//
//	# arcade stick
//	[Generic USB Joystick#1]
//	A- = LEFT P2_LEFT
//	A+ = RIGHT P2_RIGHT
//	0 = P2_BUTTON0
//
// A header without an ordinal is used for every device with that name that
// has no entry of its own.
//
// Files that cannot be read or parsed are logged and skipped. The Store is
// an implementation of the userinput.Store interface.
package inputconfig
