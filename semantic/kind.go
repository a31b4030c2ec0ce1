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

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of semantic meanings a binding can have.
type Kind int

// List of valid Kind values. The four cardinal directions are the only kinds
// that generic buttons can be learned as (see IsLearnableDirection()).
const (
	None Kind = iota - 1
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	Center
	Confirm
	Cancel
	Options
	Start
	Select
	Random
	Screenshot
	PageUp
	PageDown
	Fullscreen
	Sort
	Quit
	numKinds
)

// GenericButton is the first of a reserved range of kinds used for buttons
// whose meaning is not yet known. GenericButton+n is the n'th button of a
// device.
const GenericButton Kind = 64

// MaxGenericButtons is the size of the reserved generic range.
const MaxGenericButtons = 32

var kindNames = [...]string{
	"UP", "DOWN", "LEFT", "RIGHT",
	"UPLEFT", "UPRIGHT", "DOWNLEFT", "DOWNRIGHT",
	"CENTER", "CONFIRM", "CANCEL", "OPTIONS",
	"START", "SELECT", "RANDOM", "SCREENSHOT",
	"PGUP", "PGDN", "FULLSCREEN", "SORT",
	"QUIT",
}

const genericPrefix = "BUTTON"

func (k Kind) String() string {
	if k.IsGeneric() {
		return fmt.Sprintf("%s%d", genericPrefix, k-GenericButton)
	}
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return "NONE"
}

// Valid returns true if the kind is a named kind or is in the generic range.
func (k Kind) Valid() bool {
	return (k >= 0 && k < numKinds) || k.IsGeneric()
}

// IsGeneric returns true if kind is in the generic button range.
func (k Kind) IsGeneric() bool {
	return k >= GenericButton && k < GenericButton+MaxGenericButtons
}

// IsLearnableDirection returns true for UP, DOWN, LEFT and RIGHT.
func (k Kind) IsLearnableDirection() bool {
	return k == Up || k == Down || k == Left || k == Right
}

// Directions in the order used by the learning statistics.
var Directions = [4]Kind{Left, Right, Up, Down}

// Kinds returns every named (non-generic) kind.
func Kinds() []Kind {
	k := make([]Kind, 0, numKinds)
	for i := Kind(0); i < numKinds; i++ {
		k = append(k, i)
	}
	return k
}

func parseKind(s string) (Kind, bool) {
	if strings.HasPrefix(s, genericPrefix) {
		n, err := strconv.Atoi(s[len(genericPrefix):])
		if err != nil || n < 0 || n >= MaxGenericButtons {
			return None, false
		}
		return GenericButton + Kind(n), true
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return None, false
}
