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

package termkeys

import (
	"github.com/jetsetilly/plumbing/userinput"
)

// ASCII codes with special meaning.
const (
	keyInterrupt = 3
	keyBackspace = 8
	keyTab       = 9
	keyLineFeed  = 10
	keyReturn    = 13
	keyEsc       = 27
	keyDelete    = 127
)

// characters that can follow keyEsc and escCursor.
const (
	escCursor      = '['
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	tildeInsert    = '2'
	tildePageUp    = '5'
	tildePageDown  = '6'
	tilde          = '~'
)

// decode terminal input into a list of raw events.
func decode(input []byte) []userinput.Event {
	var events []userinput.Event

	press := func(key int) {
		events = append(events,
			userinput.EventKeyboard{Key: key, Down: true},
			userinput.EventKeyboard{Key: key, Down: false},
		)
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case c == keyInterrupt:
			events = append(events, userinput.EventQuit{})

		case c == keyEsc:
			if i+2 < len(input) && input[i+1] == escCursor {
				switch input[i+2] {
				case cursorUp:
					press(userinput.KeyUp)
				case cursorDown:
					press(userinput.KeyDown)
				case cursorForward:
					press(userinput.KeyRight)
				case cursorBackward:
					press(userinput.KeyLeft)
				case tildeInsert, tildePageUp, tildePageDown:
					if i+3 < len(input) && input[i+3] == tilde {
						switch input[i+2] {
						case tildeInsert:
							press(userinput.KeyInsert)
						case tildePageUp:
							press(userinput.KeyPageUp)
						case tildePageDown:
							press(userinput.KeyPageDown)
						}
						i++
					}
				}
				i += 2
				continue
			}
			press(userinput.KeyEscape)

		case c == keyReturn || c == keyLineFeed:
			press(userinput.KeyReturn)

		case c == keyTab:
			press(userinput.KeyTab)

		case c == keyBackspace || c == keyDelete:
			press(userinput.KeyBackspace)

		case c == ' ':
			press(userinput.KeySpace)

		case c >= 'a' && c <= 'z':
			press(userinput.KeyA + int(c-'a'))

		case c >= 'A' && c <= 'Z':
			press(userinput.KeyA + int(c-'A'))

		case c >= '1' && c <= '9':
			press(userinput.Key1 + int(c-'1'))

		case c == '0':
			press(userinput.Key0)
		}
	}

	return events
}
