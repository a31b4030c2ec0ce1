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

package plumbing_test

import (
	"testing"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
	"github.com/jetsetilly/plumbing/test"
)

func TestOrCombination(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "1 = UP\n2 = UP")
	test.DemandSuccess(t, err)
	q := n.Queue()

	n.Raise(1)
	n.Raise(2)
	test.ExpectEquality(t, drain(q), "UP+")
	n.Lower(1)
	test.ExpectEquality(t, drain(q), "")
	n.Lower(2)
	test.ExpectEquality(t, drain(q), "UP-")
}

func TestAddConnectionDedupe(t *testing.T) {
	n := plumbing.NewNetwork(reg, nil)
	test.ExpectSuccess(t, n.AddConnection([]int{1}, "UP"))
	test.ExpectSuccess(t, n.AddConnection([]int{1}, "up"))

	n.Raise(1)
	g, ok := n.Gate(semantic.Menu(semantic.Up))
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, g.Pressure, 1)
	test.ExpectEquality(t, drain(n.Queue()), "UP+")

	// AND nodes over the same inputs are shared regardless of input order
	test.ExpectSuccess(t, n.AddConnection([]int{3, 4}, "QUIT"))
	test.ExpectSuccess(t, n.AddConnection([]int{4, 3}, "START"))
	test.ExpectSuccess(t, n.AddConnection([]int{3, 4}, "QUIT"))
	test.ExpectEquality(t, n.Serialize(), "1 = UP\n3 4 = QUIT START\n")

	n.Raise(3)
	n.Raise(4)
	test.ExpectEquality(t, drain(n.Queue()), "QUIT+ START+")
}

func TestAddConnectionErrors(t *testing.T) {
	n := plumbing.NewNetwork(reg, nil)
	err := n.AddConnection([]int{1}, "SIDEWAYS")
	test.ExpectEquality(t, curated.Is(err, plumbing.UnknownBinding), true)
	err = n.AddConnection([]int{plumbing.MaxInputs}, "UP")
	test.ExpectEquality(t, curated.Is(err, plumbing.InvalidInput), true)
	err = n.AddConnection([]int{}, "UP")
	test.ExpectEquality(t, curated.Is(err, plumbing.InvalidInput), true)
}

func TestOutOfRangeInputs(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = UP")
	test.DemandSuccess(t, err)

	n.Raise(-1)
	n.Raise(plumbing.MaxInputs)
	n.Lower(plumbing.MaxInputs + 100)
	test.ExpectEquality(t, n.Queue().Len(), 0)
	test.ExpectEquality(t, n.Drives(0), true)
	test.ExpectEquality(t, n.Drives(-1), false)
}

func TestTranspose(t *testing.T) {
	const bp = "0 = P1_UP\n1 = P4_DOWN\n2 = UP\n"

	n, err := plumbing.Parse(reg, nil, bp)
	test.DemandSuccess(t, err)

	n.Transpose(1)
	test.ExpectEquality(t, n.Serialize(), "0 = P2_UP\n1 = P1_DOWN\n2 = UP\n")

	n.Transpose(3)
	test.ExpectEquality(t, n.Serialize(), bp)

	n.Transpose(-1)
	test.ExpectEquality(t, n.Serialize(), "0 = P4_UP\n1 = P3_DOWN\n2 = UP\n")

	n.Transpose(semantic.MaxPlayers + 1)
	test.ExpectEquality(t, n.Serialize(), bp)

	n.Raise(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_UP+")
}

func TestTagDevice(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON0\n1 = P1_UP")
	test.DemandSuccess(t, err)

	n.TagDevice(3)
	n.Raise(0)
	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "P1_BUTTON0@3+ P1_UP+")

	n.Transpose(1)
	n.Lower(0)
	test.ExpectEquality(t, drain(n.Queue()), "P2_BUTTON0@3-")

	// device tags are not part of the blueprint
	test.ExpectEquality(t, n.Serialize(), "0 = P2_BUTTON0\n1 = P2_UP\n")
}

func TestTagDeviceMerge(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON0")
	test.DemandSuccess(t, err)
	n.TagDevice(1)

	// the untagged binding is a different gate
	test.DemandSuccess(t, n.Extend("1 = P1_BUTTON0"))
	test.ExpectEquality(t, len(n.Gates()), 2)

	n.Raise(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_BUTTON0@1+")

	// tagging again leaves one gate driven by both inputs
	n.TagDevice(2)
	test.DemandEquality(t, len(n.Gates()), 1)
	g, ok := n.Gate(semantic.Binding{Player: 0, Device: 2, Kind: semantic.GenericButton})
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, g.Pressure, 1)

	n.Raise(1)
	n.Lower(0)
	test.ExpectEquality(t, drain(n.Queue()), "")
	n.Lower(1)
	test.ExpectEquality(t, drain(n.Queue()), "P1_BUTTON0@2-")
}

func TestClone(t *testing.T) {
	tmpl, err := plumbing.Parse(reg, nil, "1 2 = QUIT\n1 = UP")
	test.DemandSuccess(t, err)

	q := plumbing.NewQueue()
	c := tmpl.Clone(q)
	test.ExpectEquality(t, c.Queue() == q, true)

	c.Raise(1)
	c.Raise(2)
	test.ExpectEquality(t, drain(q), "UP+ QUIT+")
	test.ExpectEquality(t, tmpl.Queue().Len(), 0)

	g, _ := tmpl.Gate(semantic.Menu(semantic.Up))
	test.ExpectEquality(t, g.Pressure, 0)

	// the template still works and is unaffected by the state of the clone
	tmpl.Raise(2)
	test.ExpectEquality(t, drain(tmpl.Queue()), "")
	tmpl.Raise(1)
	test.ExpectEquality(t, drain(tmpl.Queue()), "QUIT+ UP+")

	// structural changes are independent too
	c.Transpose(2)
	test.ExpectEquality(t, tmpl.Serialize(), "1 2 = QUIT\n1 = UP\n")
}

func TestReset(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "1 2 = QUIT\n1 = UP")
	test.DemandSuccess(t, err)

	n.Raise(1)
	n.Raise(2)
	drain(n.Queue())
	n.Reset()
	test.ExpectEquality(t, n.Queue().Len(), 0)

	n.Raise(2)
	test.ExpectEquality(t, drain(n.Queue()), "")
	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "QUIT+ UP+")
}

func TestReplace(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON3\n5 = P1_BUTTON3\n0 6 = P1_BUTTON3")
	test.DemandSuccess(t, err)

	n.Raise(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_BUTTON3+")

	ok := n.Replace(semantic.Generic(0, 3), semantic.Player(0, semantic.Left))
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, drain(n.Queue()), "P1_LEFT+")

	g, _ := n.Gate(semantic.Player(0, semantic.Left))
	test.ExpectEquality(t, g.Pressure, 1)
	_, ok = n.Gate(semantic.Generic(0, 3))
	test.ExpectEquality(t, ok, false)

	n.Lower(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_LEFT-")

	test.ExpectEquality(t, n.Serialize(), "0 = P1_LEFT\n5 = P1_LEFT\n0 6 = P1_LEFT\n")

	// replacing something that isn't there
	ok = n.Replace(semantic.Generic(0, 3), semantic.Player(0, semantic.Right))
	test.ExpectEquality(t, ok, false)
}

func TestReplaceExisting(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON0 P1_LEFT\n1 = P1_LEFT")
	test.DemandSuccess(t, err)

	n.Raise(1)
	n.Raise(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_LEFT+ P1_BUTTON0+")

	// pressure is merged but the replacement is already open
	n.Replace(semantic.Generic(0, 0), semantic.Player(0, semantic.Left))
	test.ExpectEquality(t, drain(n.Queue()), "")
	test.ExpectEquality(t, n.Serialize(), "0 = P1_LEFT\n1 = P1_LEFT\n")

	g, _ := n.Gate(semantic.Player(0, semantic.Left))
	test.ExpectEquality(t, g.Pressure, 3)
}

func TestReplaceMenuDisabled(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON0")
	test.DemandSuccess(t, err)
	n.SetMenuEnabled(false)

	n.Raise(0)
	test.ExpectEquality(t, drain(n.Queue()), "P1_BUTTON0+")

	// the new menu gate is created disabled so nothing is emitted
	test.ExpectEquality(t, n.Replace(semantic.Generic(0, 0), semantic.Menu(semantic.Confirm)), true)
	test.ExpectEquality(t, drain(n.Queue()), "")

	g, ok := n.Gate(semantic.Menu(semantic.Confirm))
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, g.Enabled, false)
	test.ExpectEquality(t, g.Pressure, 1)

	n.Lower(0)
	test.ExpectEquality(t, drain(n.Queue()), "")

	// connections made while the menu is disabled are also disabled
	test.ExpectSuccess(t, n.AddConnection([]int{1}, "CANCEL"))
	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "")
	n.Lower(1)

	n.SetMenuEnabled(true)
	test.ExpectEquality(t, drain(n.Queue()), "")
	n.Raise(0)
	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "CONFIRM+ CANCEL+")
}

func TestSetMenuEnabled(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "1 = UP P1_UP")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.MenuEnabled(), true)

	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "UP+ P1_UP+")

	n.SetMenuEnabled(false)
	test.ExpectEquality(t, drain(n.Queue()), "UP-")
	test.ExpectEquality(t, n.MenuEnabled(), false)

	n.Lower(1)
	n.Raise(1)
	test.ExpectEquality(t, drain(n.Queue()), "P1_UP- P1_UP+")

	n.SetMenuEnabled(true)
	test.ExpectEquality(t, drain(n.Queue()), "UP+")

	n.Lower(1)
	test.ExpectEquality(t, drain(n.Queue()), "UP- P1_UP-")
}

func TestMenuDisabledMarker(t *testing.T) {
	tmpl, err := plumbing.Parse(reg, nil, "1 = !UP\n2 = CONFIRM\n3 = P1_START")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tmpl.MenuEnabled(), false)

	c := tmpl.Clone(nil)
	c.Raise(1)
	c.Raise(2)
	c.Raise(3)
	test.ExpectEquality(t, drain(c.Queue()), "P1_START+")

	c.SetMenuEnabled(true)
	test.ExpectEquality(t, drain(c.Queue()), "UP+ CONFIRM+")

	test.ExpectEquality(t, tmpl.Serialize(), "1 = !UP\n2 = !CONFIRM\n3 = P1_START\n")
}

func TestVisit(t *testing.T) {
	n, err := plumbing.Parse(reg, nil, "A0 = UP P1_UP\n1 2 = QUIT")
	test.DemandSuccess(t, err)

	var visits []string
	n.Visit(func(inputs []int, outputs []plumbing.Gate) {
		s := ""
		for _, i := range inputs {
			s += plumbing.InputName(i) + " "
		}
		s += "="
		for _, g := range outputs {
			s += " " + g.Binding.Name()
		}
		visits = append(visits, s)
	})

	test.DemandEquality(t, len(visits), 3)
	test.ExpectEquality(t, visits[0], "1 2 = QUIT")
	test.ExpectEquality(t, visits[1], "A0 = UP")
	test.ExpectEquality(t, visits[2], "A0 = P1_UP")
}

func TestQueue(t *testing.T) {
	q := plumbing.NewQueue()
	_, ok := q.Pop()
	test.ExpectEquality(t, ok, false)

	m := q.Mark()
	test.ExpectEquality(t, q.Head(), m)
	q.Push(semantic.Menu(semantic.Up).Open())
	q.Push(semantic.Menu(semantic.Up).Closed())
	test.ExpectEquality(t, q.Len(), 2)
	test.ExpectEquality(t, len(q.Since(m)), 2)

	ev, ok := q.Pop()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.String(), "UP+")
	test.ExpectEquality(t, q.Head(), m+1)

	m = q.Mark()
	test.ExpectEquality(t, len(q.Since(m)), 0)
	q.Push(semantic.Menu(semantic.Down).Open())
	since := q.Since(m)
	test.DemandEquality(t, len(since), 1)
	test.ExpectEquality(t, since[0].String(), "DOWN+")

	for i := 0; i < 1000; i++ {
		q.Push(semantic.Menu(semantic.Left).Open())
		q.Pop()
	}
	test.ExpectEquality(t, q.Len(), 2)

	q.Clear()
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.Head(), q.Mark())
}
