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

// Package termkeys is a userinput.Source that reads the keyboard of a
// terminal.
//
// The terminal is put into raw mode. Terminals do not report key releases
// so every key is reported as a press followed immediately by a release.
// Letters, digits, the cursor keys, page up, page down, insert, return,
// escape, tab, backspace and space are recognised. Ctrl-C is reported as a
// quit event.
package termkeys
