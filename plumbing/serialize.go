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
	"container/heap"
	"strings"
)

// Serialize returns the network as blueprint text. Parsing the output
// produces a network with the same behaviour. In particular, the order in
// which gates are reached from each input is preserved.
func (n *Network) Serialize() string {
	var items []item
	order := make(map[NodeID]int)
	leafAt := make(map[[2]int]int)

	n.walk(func(it item) {
		if it.and {
			order[it.node] = len(items)
		} else {
			leafAt[[2]int{it.inputs[0], int(it.node)}] = len(items)
		}
		items = append(items, it)
	})

	// each input list constrains the order of the lines that mention it
	succ := make([][]int, len(items))
	indegree := make([]int, len(items))
	for idx := range n.inputs {
		prev := -1
		for _, id := range n.inputs[idx] {
			var cur int
			var ok bool
			if n.nodes[id].kind == compositeNode {
				cur, ok = order[id]
			} else {
				cur, ok = leafAt[[2]int{idx, int(id)}]
			}
			if !ok {
				continue
			}
			if prev >= 0 {
				succ[prev] = append(succ[prev], cur)
				indegree[cur]++
			}
			prev = cur
		}
	}

	// topological sort, preferring walk order when there is a choice
	sorted := make([]int, 0, len(items))
	done := make([]bool, len(items))
	ready := &intHeap{}
	for i := range items {
		if indegree[i] == 0 {
			heap.Push(ready, i)
		}
	}
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		sorted = append(sorted, i)
		done[i] = true
		for _, s := range succ[i] {
			indegree[s]--
			if indegree[s] == 0 {
				heap.Push(ready, s)
			}
		}
	}

	// a cycle is not possible for a network built by the blueprint parser
	// but fall back to walk order for anything left over
	for i := range items {
		if !done[i] {
			sorted = append(sorted, i)
		}
	}

	s := strings.Builder{}
	var pending *item
	flush := func() {
		if pending != nil && len(pending.outputs) > 0 {
			n.writeLine(&s, pending)
		}
		pending = nil
	}

	for _, i := range sorted {
		it := items[i]
		if pending != nil && !pending.and && !it.and && pending.inputs[0] == it.inputs[0] {
			pending.outputs = append(pending.outputs, it.outputs...)
			continue
		}
		flush()
		pending = &it
	}
	flush()

	return s.String()
}

func (n *Network) writeLine(s *strings.Builder, it *item) {
	for i, idx := range it.inputs {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(InputName(idx))
	}
	s.WriteString(" =")
	for _, id := range it.outputs {
		s.WriteRune(' ')
		if !n.nodes[id].enabled {
			s.WriteString(disabledMarker)
		}
		s.WriteString(n.nodes[id].binding.Name())
	}
	s.WriteRune('\n')
}

type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *intHeap) Push(x interface{}) {
	*h = append(*h, x.(int))
}

func (h *intHeap) Pop() interface{} {
	old := *h
	v := old[len(old)-1]
	*h = old[:len(old)-1]
	return v
}
