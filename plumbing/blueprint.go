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
	"strings"

	"github.com/jetsetilly/plumbing/curated"
)

// Sentinal error patterns returned by Parse(). Each records the line number
// and the text of the offending line.
const (
	MissingSeparator = "blueprint: line %d: missing '=' (%s)"
	EmptyInputs      = "blueprint: line %d: no inputs (%s)"
	MissingOutputs   = "blueprint: line %d: no outputs (%s)"
	UnknownEvent     = "blueprint: line %d: unknown event %s (%s)"
	MalformedInput   = "blueprint: line %d: malformed input %s (%s)"
	InputOutOfRange  = "blueprint: line %d: input out of range %s (%s)"
)

const (
	commentMarker  = '#'
	separator      = '='
	disabledMarker = "!"
)

// Parse blueprint text into a new network. Events are pushed to the supplied
// queue. If the queue is nil a new queue is created.
//
// Parsing stops at the first error.
func Parse(reg *Registry, q *Queue, text string) (*Network, error) {
	n := NewNetwork(reg, q)
	if err := n.Extend(text); err != nil {
		return nil, err
	}
	return n, nil
}

// Extend the network with more blueprint text. Line numbers in any returned
// error are relative to the start of text.
func (n *Network) Extend(text string) error {
	for i, line := range strings.Split(text, "\n") {
		num := i + 1

		if c := strings.IndexByte(line, commentMarker); c >= 0 {
			line = line[:c]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sep := strings.IndexByte(line, separator)
		if sep < 0 {
			return curated.Errorf(MissingSeparator, num, line)
		}

		lhs := strings.Fields(line[:sep])
		rhs := strings.Fields(line[sep+1:])
		if len(lhs) == 0 {
			return curated.Errorf(EmptyInputs, num, line)
		}
		if len(rhs) == 0 {
			return curated.Errorf(MissingOutputs, num, line)
		}

		inputs := make([]int, 0, len(lhs))
		for _, tok := range lhs {
			idx, problem := parseInput(tok)
			if problem != "" {
				return curated.Errorf(problem, num, tok, line)
			}
			inputs = append(inputs, idx)
		}

		for _, tok := range rhs {
			enabled := true
			if strings.HasPrefix(tok, disabledMarker) {
				enabled = false
				tok = tok[len(disabledMarker):]
			}

			b, ok := n.registry.Lookup(tok)
			if !ok {
				return curated.Errorf(UnknownEvent, num, tok, line)
			}

			if err := n.connect(inputs, b, enabled); err != nil {
				return curated.Errorf(UnknownEvent, num, tok, line)
			}

			if !enabled && b.IsMenu() {
				n.menuDisabled = true
			}
		}
	}

	if n.menuDisabled {
		n.disableMenu()
	}

	return nil
}

// disableMenu without emitting events.
func (n *Network) disableMenu() {
	for i := range n.nodes {
		if n.nodes[i].kind == gateNode && n.nodes[i].binding.IsMenu() {
			n.nodes[i].enabled = false
		}
	}
}
