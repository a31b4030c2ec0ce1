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

package sdlinput

import (
	"github.com/jetsetilly/plumbing/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// translate SDL events that do not need any state to be kept.
func translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.KeyboardEvent:
		// key repeat is handled by userinput
		if ev.Repeat != 0 {
			return nil, false
		}
		return userinput.EventKeyboard{
			Key:  int(ev.Keysym.Scancode),
			Down: ev.Type == sdl.KEYDOWN,
		}, true

	case *sdl.JoyButtonEvent:
		return userinput.EventJoyButton{
			Device: int(ev.Which),
			Button: int(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}, true

	case *sdl.JoyHatEvent:
		x, y := hatPosition(ev.Value)
		return userinput.EventJoyHat{
			Device: int(ev.Which),
			Hat:    int(ev.Hat),
			X:      x,
			Y:      y,
		}, true

	case *sdl.JoyAxisEvent:
		return userinput.EventJoyAxis{
			Device: int(ev.Which),
			Axis:   int(ev.Axis),
			Value:  axisValue(ev.Value),
		}, true
	}

	return nil, false
}

// hatPosition converts the SDL hat bitmask to a position. Negative X is
// left and negative Y is up.
func hatPosition(v uint8) (int, int) {
	var x, y int
	if v&sdl.HAT_LEFT != 0 {
		x--
	}
	if v&sdl.HAT_RIGHT != 0 {
		x++
	}
	if v&sdl.HAT_UP != 0 {
		y--
	}
	if v&sdl.HAT_DOWN != 0 {
		y++
	}
	return x, y
}

// axisValue scales an SDL axis value to the range -1 to 1.
func axisValue(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}
