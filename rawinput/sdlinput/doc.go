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

// Package sdlinput is a userinput.Source that uses SDL for keyboard and
// joystick input.
//
// SDL only delivers keyboard events to a focused window so a small window
// is opened by NewSource(). Joysticks that are present when the source is
// created are reported with EventDeviceAttached in the first batch.
//
// SDL scancodes are USB HID usage IDs and are forwarded to userinput without
// translation.
package sdlinput
