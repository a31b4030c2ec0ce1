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

package plumbing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/plumbing/semantic"
)

// MaxButtons is the number of raw button indices. Button inputs occupy the
// indices 0 to MaxButtons-1.
const MaxButtons = 512

// MaxAxes is the number of axes that can be named in a blueprint. Axes are
// named with the letters 'A' to 'Z'.
const MaxAxes = 26

// AxisState is one of the three buckets of an axis value.
type AxisState int

// List of valid AxisState values.
const (
	AxisNegative AxisState = iota
	AxisCentre
	AxisPositive
	numAxisStates
)

// MaxInputs is the number of input indices in a network. Indices from
// MaxButtons upwards are virtual buttons derived from axis states.
const MaxInputs = MaxButtons + MaxAxes*int(numAxisStates)

var axisStateSymbols = [numAxisStates]byte{'-', '0', '+'}

// AxisIndex returns the virtual button index for the axis and state.
func AxisIndex(axis int, state AxisState) int {
	return MaxButtons + axis*int(numAxisStates) + int(state)
}

// AxisBucket returns the AxisState for an axis value in the range -1.0 to
// +1.0.
func AxisBucket(v float32) AxisState {
	switch {
	case v < -0.5:
		return AxisNegative
	case v > 0.5:
		return AxisPositive
	}
	return AxisCentre
}

// InputName returns the blueprint token for an input index.
func InputName(idx int) string {
	if idx < MaxButtons {
		return strconv.Itoa(idx)
	}
	idx -= MaxButtons
	axis := idx / int(numAxisStates)
	state := idx % int(numAxisStates)
	return fmt.Sprintf("%c%c", 'A'+axis, axisStateSymbols[state])
}

// parseInput is the inverse of InputName(). The error is one of the curated
// patterns MalformedInput or InputOutOfRange with the line details left for
// the caller to fill in.
func parseInput(tok string) (int, string) {
	if len(tok) == 2 {
		c := strings.ToUpper(tok[:1])[0]
		if c >= 'A' && c <= 'Z' {
			for s, sym := range axisStateSymbols {
				if tok[1] == sym {
					return AxisIndex(int(c-'A'), AxisState(s)), ""
				}
			}
			return 0, MalformedInput
		}
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, MalformedInput
	}
	if n < 0 || n >= MaxButtons {
		return 0, InputOutOfRange
	}
	return n, ""
}

// NodeID addresses a node in the arena of a Network.
type NodeID int

type nodeKind int

const (
	gateNode nodeKind = iota
	compositeNode
)

// node is either a leaf gate or an AND composite. The fields that are used
// depend on kind.
//
// Composite nodes start with a pressure of -(n-1) where n is the number of
// inputs. The composite crosses zero, and therefore propagates to its
// downstream nodes, only when every input is raised.
type node struct {
	kind          nodeKind
	pressure      int
	startPressure int

	// leaf gates only
	binding semantic.Binding
	enabled bool

	// composite nodes only
	downstream []NodeID

	// a leaf that has been replaced by another leaf. retired nodes are
	// unreachable
	retired bool
}

// Gate is a read-only view of a leaf gate.
type Gate struct {
	Binding  semantic.Binding
	Enabled  bool
	Pressure int
}

func (n *Network) view(id NodeID) Gate {
	nd := &n.nodes[id]
	return Gate{
		Binding:  nd.binding,
		Enabled:  nd.enabled,
		Pressure: nd.pressure,
	}
}

// raise the pressure of node. an enabled leaf gate emits its open event when
// pressure leaves zero. a composite raises its downstream nodes.
func (n *Network) raise(id NodeID) {
	nd := &n.nodes[id]
	if nd.pressure == 0 {
		switch nd.kind {
		case gateNode:
			if nd.enabled {
				n.queue.Push(nd.binding.Open())
			}
		case compositeNode:
			for _, d := range nd.downstream {
				n.raise(d)
			}
		}
	}
	nd.pressure++
}

// lower is the inverse of raise().
func (n *Network) lower(id NodeID) {
	nd := &n.nodes[id]
	nd.pressure--
	if nd.pressure == 0 {
		switch nd.kind {
		case gateNode:
			if nd.enabled {
				n.queue.Push(nd.binding.Closed())
			}
		case compositeNode:
			for _, d := range nd.downstream {
				n.lower(d)
			}
		}
	}
}
