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
	"time"

	"github.com/jetsetilly/plumbing/semantic"
)

// repeater decides when held bindings are repeated. Repeating starts once
// there has been no change to the output for the delay period and then
// happens every interval.
type repeater struct {
	// time of the most recent batch that produced output
	lastChange time.Time

	// earliest time of the next repeat
	next time.Time
}

// repeatable returns true for the menu directions.
func repeatable(b semantic.Binding) bool {
	if !b.IsMenu() {
		return false
	}
	switch b.Kind {
	case semantic.Up, semantic.Down, semantic.Left, semantic.Right:
		return true
	}
	return false
}

// changed records that the output has changed.
func (r *repeater) changed(now time.Time) {
	r.lastChange = now
}

// due returns true if held bindings should be repeated. The next repeat will
// not be due until interval has passed.
func (r *repeater) due(now time.Time, delay time.Duration, interval time.Duration) bool {
	if now.Before(r.lastChange.Add(delay)) || now.Before(r.next) {
		return false
	}
	r.next = now.Add(interval)
	return true
}

// held returns the repeatable bindings that are open in any of the networks.
// Each binding is listed once, in network order.
func held(devices []*DeviceState) []semantic.Binding {
	var l []semantic.Binding
	seen := make(map[semantic.Binding]bool)
	for _, d := range devices {
		for _, g := range d.network.Gates() {
			if !g.Enabled || g.Pressure <= 0 || !repeatable(g.Binding) || seen[g.Binding] {
				continue
			}
			seen[g.Binding] = true
			l = append(l, g.Binding)
		}
	}
	return l
}
