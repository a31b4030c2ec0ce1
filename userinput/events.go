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

// Event represents all the different type of raw events that can be handled
// by HandleUserInput().
type Event interface{}

// EventQuit is sent when the source wants the program to end.
type EventQuit struct{}

// EventKeyboard is sent on key press or release. Key is a USB HID usage ID,
// which is the same as an SDL scancode.
type EventKeyboard struct {
	Key  int
	Down bool
}

// EventJoyButton is sent when a joystick button is pressed or released.
type EventJoyButton struct {
	Device int
	Button int
	Down   bool
}

// EventJoyHat is sent when a joystick hat changes position. X and Y are each
// one of -1, 0 or 1. A negative X is left and a negative Y is up.
type EventJoyHat struct {
	Device int
	Hat    int
	X      int
	Y      int
}

// EventJoyAxis is sent when a joystick axis moves. Value is in the range
// -1.0 to +1.0.
type EventJoyAxis struct {
	Device int
	Axis   int
	Value  float32
}

// EventDeviceAttached is sent when a joystick is connected. The Device field
// is used to identify the joystick in subsequent events.
type EventDeviceAttached struct {
	Device  int
	Name    string
	Buttons int
	Axes    int
	Hats    int
}

// EventDeviceDetached is sent when a joystick is disconnected.
type EventDeviceDetached struct {
	Device int
}

// Source is implemented by anything that produces raw events. Poll() should
// not block and should return an empty batch if nothing has happened.
type Source interface {
	Poll() []Event
}
