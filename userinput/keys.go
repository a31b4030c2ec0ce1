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

package userinput

// keyboard keys as USB HID usage IDs. sources that are not SDL based
// translate into these values.
const (
	KeyA         = 4
	KeyD         = 7
	KeyQ         = 20
	KeyS         = 22
	KeyW         = 26
	Key1         = 30
	Key0         = 39
	KeyReturn    = 40
	KeyEscape    = 41
	KeyBackspace = 42
	KeyTab       = 43
	KeySpace     = 44
	KeyF1        = 58
	KeyF2        = 59
	KeyF11       = 68
	KeyPrint     = 70
	KeyInsert    = 73
	KeyPageUp    = 75
	KeyPageDown  = 78
	KeyRight     = 79
	KeyLeft      = 80
	KeyDown      = 81
	KeyUp        = 82
)

// KeyboardDevice is the device ID of the keyboard.
const KeyboardDevice = -2

// KeyboardName is the name used to find the keyboard network in the Store.
const KeyboardName = "keyboard"
