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

// Package plumbing compiles a textual blueprint into a network of gates that
// turns raw input transitions into semantic events.
//
// A blueprint is a list of lines of the form:
//
//	<input>+ = <output>+
//
// Inputs are raw button indices (decimal integers) or axis tokens. An axis
// token is a letter naming the axis followed by one of the characters '-',
// '0' or '+' meaning "below -0.5", "between -0.5 and +0.5" and "above +0.5"
// respectively. Outputs are symbolic event names as understood by the
// semantic package. An output prefixed with '!' is disabled. A '#' begins a
// comment.
//
//	# start button and select together quit
//	9 8 = QUIT
//	A- = LEFT P1_LEFT
//	A+ = RIGHT P1_RIGHT
//	0 = P1_BUTTON0
//
// Every output name is backed by a leaf gate. A line with a single input
// connects the leaf directly to that input. A line with several inputs
// creates an AND node that opens only when every input is raised and which
// then raises each of its leaves. Several lines that name the same output
// share the same leaf, which is how OR combinations are expressed.
//
// Gates count "pressure". A gate emits its open event when pressure moves
// from zero to one and its close event when pressure returns to zero. AND
// nodes start with a negative pressure so that they cross zero only when
// every input has been raised.
//
// The emitted events are pushed onto a Queue which is shared by reference.
// A Network is usually built once from a blueprint and used as a template.
// Each runtime user takes its own copy with Clone(), providing the queue
// that the copy should push to.
package plumbing
