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
	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/semantic"
)

// Sentinal error patterns returned by the Network type.
const (
	UnknownBinding = "plumbing: unknown event (%s)"
	InvalidInput   = "plumbing: input out of range (%d)"
)

// Network is a compiled blueprint. It maps raw input indices to the gates
// that they drive.
//
// The network is an arena of nodes. Each input index holds an ordered list
// of the nodes it drives. There is exactly one leaf gate for every binding
// named in the network.
type Network struct {
	registry *Registry
	queue    *Queue

	nodes  []node
	inputs [MaxInputs][]NodeID
	leaves map[semantic.Binding]NodeID

	// non-player gates were disabled in the blueprint with the '!' prefix.
	// clones honour the marker
	menuDisabled bool

	// Header and Filename are metadata for the persistence layer. The network
	// itself makes no use of them.
	Header   string
	Filename string
}

// NewNetwork is the preferred method of initialisation for the Network type.
// The returned network is empty.
func NewNetwork(reg *Registry, q *Queue) *Network {
	if q == nil {
		q = NewQueue()
	}
	return &Network{
		registry: reg,
		queue:    q,
		leaves:   make(map[semantic.Binding]NodeID),
	}
}

// Queue returns the queue that the network pushes events to.
func (n *Network) Queue() *Queue {
	return n.queue
}

// Registry returns the registry the network was created with.
func (n *Network) Registry() *Registry {
	return n.registry
}

// leaf returns the leaf gate for the binding, creating it from the registry
// prototype if it doesn't exist. A new menu gate starts disabled if the
// network has the menu disabled.
func (n *Network) leaf(b semantic.Binding) (NodeID, bool) {
	if id, ok := n.leaves[b]; ok {
		return id, true
	}

	p, ok := n.registry.prototype(b)
	if !ok {
		return 0, false
	}
	if n.menuDisabled && b.IsMenu() {
		p.enabled = false
	}

	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, p)
	n.leaves[b] = id
	return id, true
}

// AddConnection connects the named event to the list of inputs. A single
// input drives the leaf gate directly. Multiple inputs drive the leaf through
// an AND node, which is shared with any existing connection over exactly the
// same inputs.
//
// Adding a connection that already exists has no effect.
func (n *Network) AddConnection(inputs []int, name string) error {
	b, ok := n.registry.Lookup(name)
	if !ok {
		return curated.Errorf(UnknownBinding, name)
	}
	return n.Connect(inputs, b)
}

// Connect is the same as AddConnection() but with the binding already
// resolved.
func (n *Network) Connect(inputs []int, b semantic.Binding) error {
	return n.connect(inputs, b, true)
}

func (n *Network) connect(inputs []int, b semantic.Binding, enabled bool) error {
	inputs = normaliseInputs(inputs)
	if len(inputs) == 0 {
		return curated.Errorf(InvalidInput, -1)
	}
	for _, i := range inputs {
		if i < 0 || i >= MaxInputs {
			return curated.Errorf(InvalidInput, i)
		}
	}

	leaf, ok := n.leaf(b)
	if !ok {
		return curated.Errorf(UnknownBinding, b.Name())
	}
	if !enabled {
		n.nodes[leaf].enabled = false
	}

	if len(inputs) == 1 {
		i := inputs[0]
		for _, id := range n.inputs[i] {
			if id == leaf {
				return nil
			}
		}
		n.inputs[i] = append(n.inputs[i], leaf)
		return nil
	}

	bias := -(len(inputs) - 1)

	if c, ok := n.findComposite(inputs, bias); ok {
		for _, d := range n.nodes[c].downstream {
			if d == leaf {
				return nil
			}
		}
		n.nodes[c].downstream = append(n.nodes[c].downstream, leaf)
		return nil
	}

	c := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node{
		kind:          compositeNode,
		pressure:      bias,
		startPressure: bias,
		downstream:    []NodeID{leaf},
	})
	for _, i := range inputs {
		n.inputs[i] = append(n.inputs[i], c)
	}

	return nil
}

// findComposite looks for a composite node driven by exactly the list of
// inputs. the bias check excludes composites over a superset of the inputs.
func (n *Network) findComposite(inputs []int, bias int) (NodeID, bool) {
	for _, c := range n.inputs[inputs[0]] {
		nd := &n.nodes[c]
		if nd.kind != compositeNode || nd.startPressure != bias {
			continue
		}

		found := true
		for _, i := range inputs[1:] {
			if !contains(n.inputs[i], c) {
				found = false
				break
			}
		}
		if found {
			return c, true
		}
	}
	return 0, false
}

func contains(l []NodeID, id NodeID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// normaliseInputs removes duplicate inputs. the order of first appearance is
// preserved.
func normaliseInputs(inputs []int) []int {
	out := make([]int, 0, len(inputs))
	for _, i := range inputs {
		dup := false
		for _, o := range out {
			if o == i {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, i)
		}
	}
	return out
}

// Raise input index. Gates reached from the input are raised in the order
// they were connected. Out of range indices are ignored.
func (n *Network) Raise(idx int) {
	if idx < 0 || idx >= MaxInputs {
		return
	}
	for _, id := range n.inputs[idx] {
		n.raise(id)
	}
}

// Lower input index. Out of range indices are ignored.
func (n *Network) Lower(idx int) {
	if idx < 0 || idx >= MaxInputs {
		return
	}
	for _, id := range n.inputs[idx] {
		n.lower(id)
	}
}

// Reset every gate in the network to its starting pressure. No events are
// emitted.
func (n *Network) Reset() {
	for i := range n.nodes {
		n.nodes[i].pressure = n.nodes[i].startPressure
	}
}

// Clone returns a deep copy of the network with gates that push to the
// supplied queue. If the queue is nil a new queue is created.
//
// Sharing of nodes between input lists is preserved in the copy. If the
// network has the menu disabled marker the copy starts with non-player gates
// disabled.
func (n *Network) Clone(q *Queue) *Network {
	if q == nil {
		q = NewQueue()
	}

	c := &Network{
		registry:     n.registry,
		queue:        q,
		nodes:        make([]node, len(n.nodes)),
		leaves:       make(map[semantic.Binding]NodeID, len(n.leaves)),
		menuDisabled: n.menuDisabled,
		Header:       n.Header,
		Filename:     n.Filename,
	}

	copy(c.nodes, n.nodes)
	for i := range c.nodes {
		if c.nodes[i].downstream != nil {
			c.nodes[i].downstream = append([]NodeID(nil), c.nodes[i].downstream...)
		}
	}
	if c.menuDisabled {
		c.disableMenu()
	}

	for i := range n.inputs {
		if len(n.inputs[i]) > 0 {
			c.inputs[i] = append([]NodeID(nil), n.inputs[i]...)
		}
	}

	for b, id := range n.leaves {
		c.leaves[b] = id
	}

	return c
}

// rekey rebuilds the leaf lookup after bindings have been changed in place.
func (n *Network) rekey() {
	n.leaves = make(map[semantic.Binding]NodeID, len(n.leaves))
	for i := range n.nodes {
		nd := &n.nodes[i]
		if nd.kind == gateNode && !nd.retired {
			n.leaves[nd.binding] = NodeID(i)
		}
	}
}

// Transpose moves every player scoped gate delta player slots, wrapping
// around semantic.MaxPlayers. Menu gates are unaffected. Transpose(a)
// followed by Transpose(b) is the same as Transpose(a+b).
func (n *Network) Transpose(delta int) {
	for i := range n.nodes {
		nd := &n.nodes[i]
		if nd.kind == gateNode {
			nd.binding = nd.binding.Transpose(delta)
		}
	}
	n.rekey()
}

// TagDevice sets the device tag of every generic button gate in the network.
// Generic gates that differed only by their tag are merged into the gate
// created first, in the same way as Replace().
func (n *Network) TagDevice(device int) {
	leaves := make(map[semantic.Binding]NodeID, len(n.leaves))
	for i := range n.nodes {
		nd := &n.nodes[i]
		if nd.kind != gateNode || nd.retired {
			continue
		}
		if nd.binding.Kind.IsGeneric() {
			nd.binding.Device = device
		}
		if id, ok := leaves[nd.binding]; ok {
			n.redirect(NodeID(i), id)
			continue
		}
		leaves[nd.binding] = NodeID(i)
	}
	n.leaves = leaves
}

// Replace the leaf gate for binding old with the leaf gate for binding
// replacement. Every reference to the old gate, whether directly from an
// input or from an AND node, is redirected.
//
// The current pressure of the old gate is added to the replacement. If the
// replacement is enabled and its pressure moves away from zero its open event
// is emitted. The old gate is discarded without emitting anything.
//
// Returns false if old is not in the network or replacement is not a valid
// binding.
func (n *Network) Replace(old, replacement semantic.Binding) bool {
	oldID, ok := n.leaves[old]
	if !ok {
		return false
	}
	newID, ok := n.leaf(replacement)
	if !ok {
		return false
	}
	if oldID == newID {
		return true
	}

	n.redirect(oldID, newID)
	delete(n.leaves, old)

	return true
}

// redirect every reference to the old gate to the new gate and retire the old
// gate. the pressure of the old gate is merged into the new gate.
func (n *Network) redirect(oldID, newID NodeID) {
	merged := false
	swap := func(l []NodeID) []NodeID {
		if !contains(l, oldID) {
			return l
		}
		out := make([]NodeID, 0, len(l))
		seen := false
		for _, id := range l {
			if id == oldID {
				if !merged {
					n.mergePressure(oldID, newID)
					merged = true
				}
				id = newID
			}
			if id == newID {
				if seen {
					continue
				}
				seen = true
			}
			out = append(out, id)
		}
		return out
	}

	for i := range n.inputs {
		n.inputs[i] = swap(n.inputs[i])
	}
	for i := range n.nodes {
		if n.nodes[i].kind == compositeNode {
			n.nodes[i].downstream = swap(n.nodes[i].downstream)
		}
	}

	n.nodes[oldID].retired = true
}

func (n *Network) mergePressure(from, to NodeID) {
	src := &n.nodes[from]
	dst := &n.nodes[to]

	before := dst.pressure
	dst.pressure += src.pressure
	if before == 0 && dst.pressure > 0 && dst.enabled {
		n.queue.Push(dst.binding.Open())
	}
}

// SetMenuEnabled enables or disables every non-player gate. A gate that is
// currently held emits its close event when it is disabled and its open
// event when it is enabled, so that the events for a binding always
// alternate.
func (n *Network) SetMenuEnabled(enabled bool) {
	for i := range n.nodes {
		nd := &n.nodes[i]
		if nd.kind != gateNode || nd.retired || !nd.binding.IsMenu() {
			continue
		}
		if nd.enabled == enabled {
			continue
		}
		if nd.pressure > 0 {
			if enabled {
				n.queue.Push(nd.binding.Open())
			} else {
				n.queue.Push(nd.binding.Closed())
			}
		}
		nd.enabled = enabled
	}
	n.menuDisabled = !enabled
}

// MenuEnabled returns false if non-player gates have been disabled.
func (n *Network) MenuEnabled() bool {
	return !n.menuDisabled
}

// Gate returns the view of the leaf gate for the binding.
func (n *Network) Gate(b semantic.Binding) (Gate, bool) {
	id, ok := n.leaves[b]
	if !ok {
		return Gate{}, false
	}
	return n.view(id), true
}

// Gates returns the view of every leaf gate in the network, in the order
// they were created.
func (n *Network) Gates() []Gate {
	g := make([]Gate, 0, len(n.leaves))
	for i := range n.nodes {
		if n.nodes[i].kind == gateNode && !n.nodes[i].retired {
			g = append(g, n.view(NodeID(i)))
		}
	}
	return g
}

// Bindings returns the binding of every leaf gate in the network.
func (n *Network) Bindings() []semantic.Binding {
	g := n.Gates()
	b := make([]semantic.Binding, len(g))
	for i := range g {
		b[i] = g[i].Binding
	}
	return b
}

// Drives returns true if the input index drives at least one gate.
func (n *Network) Drives(idx int) bool {
	if idx < 0 || idx >= MaxInputs {
		return false
	}
	return len(n.inputs[idx]) > 0
}

func (n *Network) String() string {
	return n.Serialize()
}
