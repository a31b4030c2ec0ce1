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

import (
	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
)

// LearningStats are the counters kept for a generic button while its meaning
// is being learned. The first value is the number of isolated presses. The
// remaining values count the isolated presses that were accompanied by each
// of semantic.Directions.
type LearningStats [5]int

// Total number of isolated presses.
func (s LearningStats) Total() int {
	return s[0]
}

// Correlated returns the number of isolated presses that happened with the
// direction. The direction must be one of semantic.Directions.
func (s LearningStats) Correlated(dir semantic.Kind) int {
	for i, d := range semantic.Directions {
		if d == dir {
			return s[i+1]
		}
	}
	return 0
}

// DeviceState is the runtime state of an attached input device.
type DeviceState struct {
	id      int
	name    string
	ordinal int
	player  int

	// number of axes reported by the device. hats are mapped to the first
	// virtual axes and the real axes follow
	axes int
	hats int

	buttons [plumbing.MaxButtons]bool
	pressed int

	// virtual buttons derived from axes and hats. there are three for every
	// axis, indexed by axis*3+state. grows as required
	virtual []bool

	network *plumbing.Network

	learning map[semantic.Kind]*LearningStats

	// events produced by this device during the current batch
	batch []semantic.Event
}

// NewDeviceState is the preferred method of initialisation for the
// DeviceState type.
func NewDeviceState(id int, name string, ordinal int, axes int, hats int, net *plumbing.Network) *DeviceState {
	return &DeviceState{
		id:       id,
		name:     name,
		ordinal:  ordinal,
		axes:     axes,
		hats:     hats,
		network:  net,
		learning: make(map[semantic.Kind]*LearningStats),
	}
}

// ID of the device as reported by the source.
func (d *DeviceState) ID() int {
	return d.id
}

// Name of the device as reported by the source.
func (d *DeviceState) Name() string {
	return d.name
}

// Ordinal distinguishes devices with the same name. The first device with a
// name has ordinal zero.
func (d *DeviceState) Ordinal() int {
	return d.ordinal
}

// Player slot assigned to the device.
func (d *DeviceState) Player() int {
	return d.player
}

// Network returns the network driven by the device.
func (d *DeviceState) Network() *plumbing.Network {
	return d.network
}

// Pressed returns the number of buttons currently held.
func (d *DeviceState) Pressed() int {
	return d.pressed
}

// Learning returns the learning statistics for the generic button kind.
// Returns false if the button is not being learned.
func (d *DeviceState) Learning(k semantic.Kind) (LearningStats, bool) {
	s, ok := d.learning[k]
	if !ok {
		return LearningStats{}, false
	}
	return *s, true
}

// Button forwards a button edge to the network. Edges that don't change the
// state of the button are ignored.
func (d *DeviceState) Button(button int, down bool) {
	if button < 0 || button >= len(d.buttons) {
		return
	}
	if d.buttons[button] == down {
		return
	}
	d.buttons[button] = down

	if down {
		d.pressed++
		d.network.Raise(button)
	} else {
		d.pressed--
		d.network.Lower(button)
	}
}

// Axis changes the virtual buttons for the axis. Only virtual buttons that
// have changed state are forwarded to the network. Changes are forwarded in
// index order.
func (d *DeviceState) Axis(axis int, value float32) {
	if axis < 0 {
		return
	}
	d.virtualAxis(d.AxisIndex(axis), value)
}

// AxisIndex returns the virtual axis for the axis. Virtual axes derived from
// hats come first so the real axes follow them.
func (d *DeviceState) AxisIndex(axis int) int {
	return d.hats*2 + axis
}

// HatAxis returns the virtual axis for the X direction of the hat. The Y
// direction is the following axis.
func (d *DeviceState) HatAxis(hat int) int {
	return hat * 2
}

// Hat changes the virtual buttons for the hat. The X component is processed
// before the Y component. Hats that the device did not report when it was
// attached are ignored.
func (d *DeviceState) Hat(hat int, x int, y int) {
	if hat < 0 || hat >= d.hats {
		return
	}
	d.virtualAxis(d.HatAxis(hat), float32(x))
	d.virtualAxis(d.HatAxis(hat)+1, float32(y))
}

func (d *DeviceState) virtualAxis(axis int, value float32) {
	if axis < 0 || axis >= plumbing.MaxAxes {
		return
	}

	base := axis * 3
	if len(d.virtual) < base+3 {
		d.virtual = append(d.virtual, make([]bool, base+3-len(d.virtual))...)
	}

	bucket := plumbing.AxisBucket(value)
	for s := plumbing.AxisNegative; s <= plumbing.AxisPositive; s++ {
		on := s == bucket
		if d.virtual[base+int(s)] == on {
			continue
		}
		d.virtual[base+int(s)] = on

		if on {
			d.network.Raise(plumbing.AxisIndex(axis, s))
		} else {
			d.network.Lower(plumbing.AxisIndex(axis, s))
		}
	}
}

// Release every button, axis and hat. Events are emitted for everything that
// was held.
func (d *DeviceState) Release() {
	for b := range d.buttons {
		d.Button(b, false)
	}
	for a := 0; a*3 < len(d.virtual); a++ {
		for s := 0; s < 3; s++ {
			if d.virtual[a*3+s] {
				d.virtual[a*3+s] = false
				d.network.Lower(plumbing.AxisIndex(a, plumbing.AxisState(s)))
			}
		}
	}
}

// record stimulates the device with f and keeps the events it produced.
func (d *DeviceState) record(f func()) {
	q := d.network.Queue()
	mark := q.Mark()
	f()
	d.batch = append(d.batch, q.Since(mark)...)
}
