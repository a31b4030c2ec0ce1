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

package plumbing_test

import (
	"strings"

	"github.com/jetsetilly/plumbing/plumbing"
)

// drain every event in the queue into a space separated string.
func drain(q *plumbing.Queue) string {
	s := strings.Builder{}
	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(ev.String())
	}
	return s.String()
}

var reg = plumbing.NewRegistry()
