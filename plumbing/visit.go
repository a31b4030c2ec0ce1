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

// Visitor is called by Visit() for each connection in the network.
type Visitor func(inputs []int, outputs []Gate)

// item is a single connection found by walk(). for a leaf connection the
// node is the leaf itself, for an AND connection it is the composite node.
type item struct {
	node    NodeID
	inputs  []int
	outputs []NodeID
	and     bool
}

// walk the network in ascending input order. leaf connections are reported
// when they are first met. an AND connection is reported when the last of
// its inputs is met.
func (n *Network) walk(f func(it item)) {
	counts := make(map[NodeID]int)
	collected := make(map[NodeID][]int)

	for idx := range n.inputs {
		for _, id := range n.inputs[idx] {
			nd := &n.nodes[id]
			switch nd.kind {
			case gateNode:
				f(item{
					node:    id,
					inputs:  []int{idx},
					outputs: []NodeID{id},
				})
			case compositeNode:
				counts[id]++
				collected[id] = append(collected[id], idx)
				if counts[id] == 1-nd.startPressure {
					outputs := make([]NodeID, 0, len(nd.downstream))
					for _, d := range nd.downstream {
						if n.nodes[d].kind == gateNode {
							outputs = append(outputs, d)
						}
					}
					f(item{
						node:    id,
						inputs:  collected[id],
						outputs: outputs,
						and:     true,
					})
				}
			}
		}
	}
}

// Visit every connection in the network. The order of visits is
// deterministic.
//
// Connections from a single input are visited when that input is reached in
// ascending index order. Connections through an AND node are visited once,
// when the last of the node's inputs is reached.
func (n *Network) Visit(v Visitor) {
	n.walk(func(it item) {
		outputs := make([]Gate, len(it.outputs))
		for i, id := range it.outputs {
			outputs[i] = n.view(id)
		}
		v(it.inputs, outputs)
	})
}
