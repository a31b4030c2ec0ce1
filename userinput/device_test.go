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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
	"github.com/jetsetilly/plumbing/test"
	"github.com/jetsetilly/plumbing/userinput"
)

const hatBlueprint = `A- = LEFT
A+ = RIGHT
B- = UP
B+ = DOWN
A0 = UPLEFT
B0 = UPRIGHT
A0 B0 = CENTER
`

func TestHatCircle(t *testing.T) {
	net, err := plumbing.Parse(reg, nil, hatBlueprint)
	test.DemandSuccess(t, err)

	d := userinput.NewDeviceState(0, "hat", 0, 0, 1, net)

	circle := [][2]int{
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {0, 0},
	}
	for _, v := range circle {
		d.Hat(0, v[0], v[1])
	}

	expected := "LEFT+ UPRIGHT+ UP+ UPRIGHT- LEFT- UPLEFT+ UPLEFT- RIGHT+ UP- " +
		"UPRIGHT+ UPRIGHT- DOWN+ UPLEFT+ RIGHT- LEFT+ UPLEFT- LEFT- UPLEFT+ " +
		"UPRIGHT+ CENTER+ DOWN-"
	test.ExpectEquality(t, drain(net.Queue()), expected)

	// the same position again changes nothing
	d.Hat(0, 0, 0)
	test.ExpectEquality(t, net.Queue().Len(), 0)
}

func TestHatBeforeAxes(t *testing.T) {
	net, err := plumbing.Parse(reg, nil, "A- = LEFT\nB+ = DOWN\nC+ = RIGHT")
	test.DemandSuccess(t, err)

	d := userinput.NewDeviceState(0, "pad", 0, 2, 1, net)
	test.ExpectEquality(t, d.HatAxis(0), 0)
	test.ExpectEquality(t, d.AxisIndex(0), 2)

	d.Hat(0, -1, 1)
	d.Axis(0, 0.9)
	test.ExpectEquality(t, drain(net.Queue()), "LEFT+ DOWN+ RIGHT+")

	// the device has one hat
	d.Hat(1, 1, 1)
	test.ExpectEquality(t, drain(net.Queue()), "")
}

func TestDebounce(t *testing.T) {
	net, err := plumbing.Parse(reg, nil, "3 = CONFIRM")
	test.DemandSuccess(t, err)

	d := userinput.NewDeviceState(0, "pad", 0, 0, 0, net)
	d.Button(3, true)
	d.Button(3, true)
	test.ExpectEquality(t, d.Pressed(), 1)
	test.ExpectEquality(t, drain(net.Queue()), "CONFIRM+")

	g, ok := net.Gate(semantic.Menu(semantic.Confirm))
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, g.Pressure, 1)

	d.Button(3, false)
	d.Button(3, false)
	test.ExpectEquality(t, d.Pressed(), 0)
	test.ExpectEquality(t, drain(net.Queue()), "CONFIRM-")

	// out of range buttons are ignored
	d.Button(-1, true)
	d.Button(plumbing.MaxButtons, true)
	test.ExpectEquality(t, d.Pressed(), 0)
}

func TestAxisBuckets(t *testing.T) {
	net, err := plumbing.Parse(reg, nil, "A- = LEFT\nA0 = CENTER\nA+ = RIGHT")
	test.DemandSuccess(t, err)

	d := userinput.NewDeviceState(0, "pad", 0, 1, 0, net)

	d.Axis(0, 0.1)
	test.ExpectEquality(t, drain(net.Queue()), "CENTER+")
	d.Axis(0, 0.3)
	test.ExpectEquality(t, drain(net.Queue()), "")
	d.Axis(0, 0.7)
	test.ExpectEquality(t, drain(net.Queue()), "CENTER- RIGHT+")
	d.Axis(0, -0.7)
	test.ExpectEquality(t, drain(net.Queue()), "LEFT+ RIGHT-")
	d.Axis(0, -0.5)
	test.ExpectEquality(t, drain(net.Queue()), "LEFT- CENTER+")

	// axis presses are not counted as button presses
	test.ExpectEquality(t, d.Pressed(), 0)
}

func TestRelease(t *testing.T) {
	net, err := plumbing.Parse(reg, nil, "0 = CONFIRM\nA+ = RIGHT")
	test.DemandSuccess(t, err)

	d := userinput.NewDeviceState(0, "pad", 0, 1, 0, net)
	d.Button(0, true)
	d.Axis(0, 1.0)
	drain(net.Queue())

	d.Release()
	test.ExpectEquality(t, drain(net.Queue()), "CONFIRM- RIGHT-")
	test.ExpectEquality(t, d.Pressed(), 0)
}
