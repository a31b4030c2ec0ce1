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
	"github.com/jetsetilly/plumbing/semantic"
)

// Registry holds one prototype gate for every possible semantic binding.
// Gates in a Network are always created by copying a prototype. The Registry
// is read-only once created and can be shared by any number of networks.
type Registry struct {
	prototypes map[semantic.Binding]node
	order      []semantic.Binding
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	r := &Registry{
		prototypes: make(map[semantic.Binding]node),
	}

	add := func(b semantic.Binding) {
		r.prototypes[b] = node{
			kind:    gateNode,
			binding: b,
			enabled: true,
		}
		r.order = append(r.order, b)
	}

	for p := semantic.MenuPlayer; p < semantic.MaxPlayers; p++ {
		for _, k := range semantic.Kinds() {
			add(semantic.Player(p, k))
		}
		for g := 0; g < semantic.MaxGenericButtons; g++ {
			add(semantic.Generic(p, g))
		}
	}

	return r
}

// Lookup a symbolic event name. Names are case-insensitive.
func (r *Registry) Lookup(name string) (semantic.Binding, bool) {
	b, ok := semantic.ParseName(name)
	if !ok {
		return semantic.Binding{}, false
	}
	if _, ok := r.prototypes[b]; !ok {
		return semantic.Binding{}, false
	}
	return b, true
}

// Bindings returns every binding known to the registry, in a fixed order.
func (r *Registry) Bindings() []semantic.Binding {
	b := make([]semantic.Binding, len(r.order))
	copy(b, r.order)
	return b
}

// prototype returns a fresh copy of the prototype gate for the binding. The
// device tag of the binding is carried into the copy.
func (r *Registry) prototype(b semantic.Binding) (node, bool) {
	p, ok := r.prototypes[b.Untagged()]
	if !ok {
		return node{}, false
	}
	p.binding = b
	return p, true
}
