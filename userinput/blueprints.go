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

package userinput

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
)

// DefaultKeyboardBlueprint is used when the Store has no keyboard network.
const DefaultKeyboardBlueprint = `# menu and first player
80 = LEFT P1_LEFT
79 = RIGHT P1_RIGHT
82 = UP P1_UP
81 = DOWN P1_DOWN
40 = CONFIRM P1_START
41 = CANCEL
43 = OPTIONS
42 = SELECT P1_SELECT
41 43 = QUIT
58 = OPTIONS
59 = RANDOM
68 = FULLSCREEN
70 = SCREENSHOT
73 = SORT
75 = PGUP
78 = PGDN

# second player
4 = P2_LEFT
7 = P2_RIGHT
26 = P2_UP
22 = P2_DOWN
44 = P2_START
`

// DefaultJoystickBlueprint returns the blueprint for a joystick with no
// stored network. The first hat and the first two axes are directions for the
// menu and the first player. Every button is a generic button for the first
// player. The network should be transposed for other players.
func DefaultJoystickBlueprint(buttons int, axes int, hats int) string {
	s := strings.Builder{}

	// virtual axes of the first hat come before the real axes
	sticks := make([]int, 0, 2)
	if hats >= 1 {
		sticks = append(sticks, 0)
	}
	if axes >= 2 {
		sticks = append(sticks, hats*2)
	}

	for _, x := range sticks {
		if x+1 >= plumbing.MaxAxes {
			break
		}
		left := plumbing.InputName(plumbing.AxisIndex(x, plumbing.AxisNegative))
		right := plumbing.InputName(plumbing.AxisIndex(x, plumbing.AxisPositive))
		up := plumbing.InputName(plumbing.AxisIndex(x+1, plumbing.AxisNegative))
		down := plumbing.InputName(plumbing.AxisIndex(x+1, plumbing.AxisPositive))
		fmt.Fprintf(&s, "%s = LEFT P1_LEFT\n", left)
		fmt.Fprintf(&s, "%s = RIGHT P1_RIGHT\n", right)
		fmt.Fprintf(&s, "%s = UP P1_UP\n", up)
		fmt.Fprintf(&s, "%s = DOWN P1_DOWN\n", down)
	}

	if buttons > semantic.MaxGenericButtons {
		buttons = semantic.MaxGenericButtons
	}
	for b := 0; b < buttons; b++ {
		fmt.Fprintf(&s, "%d = P1_BUTTON%d\n", b, b)
	}

	return s.String()
}
