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

// MaxPlayers is the number of player slots.
const MaxPlayers = 4

// MenuPlayer is the owner of bindings that are not scoped to a player.
const MenuPlayer = -1

// NoDevice is the device tag of bindings that do not carry device origin.
const NoDevice = -1

// Binding identifies a semantic event without its polarity.
type Binding struct {
	// MenuPlayer or a value in the range 0 to MaxPlayers-1
	Player int

	// index of the originating device for generic buttons. NoDevice
	// otherwise
	Device int

	Kind Kind
}

// Menu returns the menu owned binding for the kind.
func Menu(k Kind) Binding {
	return Binding{Player: MenuPlayer, Device: NoDevice, Kind: k}
}

// Player returns the binding of kind for player slot p.
func Player(p int, k Kind) Binding {
	return Binding{Player: p, Device: NoDevice, Kind: k}
}

// Generic returns the binding for generic button n of player slot p. The
// binding is untagged.
func Generic(p int, n int) Binding {
	return Binding{Player: p, Device: NoDevice, Kind: GenericButton + Kind(n)}
}

// IsMenu returns true if the binding is not scoped to a player.
func (b Binding) IsMenu() bool {
	return b.Player == MenuPlayer
}

// Untagged returns the binding with the device tag removed.
func (b Binding) Untagged() Binding {
	b.Device = NoDevice
	return b
}

// Transpose moves a player binding delta slots, wrapping around MaxPlayers.
// Menu bindings and the device tag are unaffected.
func (b Binding) Transpose(delta int) Binding {
	if b.Player < 0 {
		return b
	}
	p := (b.Player + delta) % MaxPlayers
	if p < 0 {
		p += MaxPlayers
	}
	b.Player = p
	return b
}

// Name is the symbolic name of the binding as used by the blueprint
// language. The device tag is not part of the name.
func (b Binding) Name() string {
	if b.Player < 0 {
		return b.Kind.String()
	}
	return fmt.Sprintf("P%d_%s", b.Player+1, b.Kind)
}

func (b Binding) String() string {
	if b.Device != NoDevice {
		return fmt.Sprintf("%s@%d", b.Name(), b.Device)
	}
	return b.Name()
}

// ParseName is the inverse of Name(). The result is untagged.
func ParseName(s string) (Binding, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))

	player := MenuPlayer
	if len(s) > 3 && s[0] == 'P' {
		if i := strings.IndexByte(s, '_'); i > 1 {
			n, err := strconv.Atoi(s[1:i])
			if err == nil {
				if n < 1 || n > MaxPlayers {
					return Binding{}, false
				}
				player = n - 1
				s = s[i+1:]
			}
		}
	}

	k, ok := parseKind(s)
	if !ok {
		return Binding{}, false
	}

	return Binding{Player: player, Device: NoDevice, Kind: k}, true
}
