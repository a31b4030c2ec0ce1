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
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/plumbing/test"
	"github.com/jetsetilly/plumbing/userinput"
)

// list the key downs in the decoded input.
func downs(events []userinput.Event) string {
	s := strings.Builder{}
	for _, ev := range events {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			if ev.Down {
				fmt.Fprintf(&s, "%d ", ev.Key)
			}
		case userinput.EventQuit:
			s.WriteString("quit ")
		}
	}
	return strings.TrimSpace(s.String())
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "a", expected: "4"},
		{input: "wasd", expected: "26 4 22 7"},
		{input: "Q", expected: "20"},
		{input: "\x1b[A\x1b[B\x1b[C\x1b[D", expected: "82 81 79 80"},
		{input: "\x1b[5~\x1b[6~\x1b[2~", expected: "75 78 73"},
		{input: "\x1b[5a", expected: "4"},
		{input: "\x1b", expected: "41"},
		{input: "\x1bx", expected: "41 27"},
		{input: "\r\n\t \x7f", expected: "40 40 43 44 42"},
		{input: "10", expected: "30 39"},
		{input: "a\x03", expected: "4 quit"},
		{input: "~", expected: ""},
	} {
		test.ExpectEquality(t, downs(decode([]byte(tc.input))), tc.expected, fmt.Sprintf("%q", tc.input))
	}
}

func TestDecodeRelease(t *testing.T) {
	events := decode([]byte("a"))
	test.DemandEquality(t, len(events), 2)
	test.ExpectEquality(t, events[0].(userinput.EventKeyboard), userinput.EventKeyboard{Key: userinput.KeyA, Down: true})
	test.ExpectEquality(t, events[1].(userinput.EventKeyboard), userinput.EventKeyboard{Key: userinput.KeyA, Down: false})
}
