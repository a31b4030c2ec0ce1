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
	"fmt"

	"github.com/jetsetilly/plumbing/semantic"
)

// Reclassification describes a generic button that has been rewired.
type Reclassification struct {
	Device *DeviceState
	From   semantic.Binding
	To     semantic.Binding
}

func (r Reclassification) String() string {
	return fmt.Sprintf("%s on %s#%d is now %s", r.From.Name(), r.Device.name, r.Device.ordinal, r.To.Name())
}

// Classifier learns the meaning of generic buttons from the events produced
// by a device.
type Classifier struct {
	prefs *Preferences
}

// NewClassifier is the preferred method of initialisation for the Classifier
// type.
func NewClassifier(prefs *Preferences) *Classifier {
	return &Classifier{prefs: prefs}
}

// Observe the events produced by the device in the most recent batch. Only
// generic buttons that were pressed in isolation are counted. A button is
// isolated if it is the only button held on the device. A press is correlated
// with a direction if the same player's direction was asserted in the batch.
//
// Returns the list of buttons that have been rewired. The events produced by
// the device are cleared.
func (c *Classifier) Observe(d *DeviceState) []Reclassification {
	defer func() {
		d.batch = d.batch[:0]
	}()

	if len(d.batch) == 0 || d.pressed != 1 {
		return nil
	}

	// asserted directions for each player
	type direction struct {
		player int
		idx    int
	}
	active := make(map[direction]bool)
	for _, ev := range d.batch {
		if !ev.Asserted || ev.IsMenu() {
			continue
		}
		for i, k := range semantic.Directions {
			if ev.Kind == k {
				active[direction{player: ev.Player, idx: i}] = true
			}
		}
	}

	var recs []Reclassification

	for _, ev := range d.batch {
		if !ev.Asserted || !ev.Kind.IsGeneric() {
			continue
		}

		// the button may have been rewired earlier in the batch
		if _, ok := d.network.Gate(ev.Binding); !ok {
			continue
		}

		s, ok := d.learning[ev.Kind]
		if !ok {
			s = &LearningStats{}
			d.learning[ev.Kind] = s
		}

		s[0]++
		for i := range semantic.Directions {
			if active[direction{player: ev.Player, idx: i}] {
				s[i+1]++
			}
		}

		to, ok := c.decide(ev.Binding, *s)
		if !ok {
			continue
		}

		if d.network.Replace(ev.Binding, to) {
			delete(d.learning, ev.Kind)
			recs = append(recs, Reclassification{
				Device: d,
				From:   ev.Binding,
				To:     to,
			})
		}
	}

	return recs
}

// decide whether the statistics are conclusive. returns the new binding for
// the generic button.
func (c *Classifier) decide(b semantic.Binding, s LearningStats) (semantic.Binding, bool) {
	if s.Total() <= c.prefs.MinSamples.Get().(int) {
		return semantic.Binding{}, false
	}

	high := c.prefs.High.Get().(float64)
	low := c.prefs.Low.Get().(float64)

	independent := true
	for i, k := range semantic.Directions {
		r := float64(s[i+1]) / float64(s.Total())
		if r > high {
			return semantic.Player(b.Player, k), true
		}
		if r >= low {
			independent = false
		}
	}

	if !independent {
		return semantic.Binding{}, false
	}

	return semantic.Menu(menuKind(c.prefs.Policy.String(), b.Kind)), true
}

// menuKind returns the menu kind used for a generic button. With the
// alternate policy even numbered buttons confirm and odd numbered buttons
// cancel.
func menuKind(policy string, k semantic.Kind) semantic.Kind {
	switch policy {
	case PolicyConfirm:
		return semantic.Confirm
	case PolicyCancel:
		return semantic.Cancel
	}
	if (k-semantic.GenericButton)&1 == 1 {
		return semantic.Cancel
	}
	return semantic.Confirm
}
