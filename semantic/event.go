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

package semantic

// Event is a Binding together with its polarity.
type Event struct {
	Binding
	Asserted bool
}

// NoEvent is returned by polling functions when there is nothing to report.
var NoEvent = Event{Binding: Binding{Player: MenuPlayer, Device: NoDevice, Kind: None}}

// IsNone returns true if the event is the NoEvent sentinel.
func (e Event) IsNone() bool {
	return e.Kind == None
}

// Open returns the asserted event for the binding.
func (b Binding) Open() Event {
	return Event{Binding: b, Asserted: true}
}

// Closed returns the de-asserted event for the binding.
func (b Binding) Closed() Event {
	return Event{Binding: b}
}

func (e Event) String() string {
	if e.IsNone() {
		return "NONE"
	}
	if e.Asserted {
		return e.Binding.String() + "+"
	}
	return e.Binding.String() + "-"
}
