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

package userinput_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
	"github.com/jetsetilly/plumbing/userinput"
)

var reg = plumbing.NewRegistry()

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

// poll every event from the controllers into a space separated string.
func poll(c *userinput.Controllers, f func() semantic.Event) string {
	s := strings.Builder{}
	for {
		ev := f()
		if ev.IsNone() {
			break
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(ev.String())
	}
	return s.String()
}

type fakeStore struct {
	templates map[string]string
	persisted []string
}

func (s *fakeStore) Template(name string, ordinal int) (*plumbing.Network, bool) {
	bp, ok := s.templates[fmt.Sprintf("%s#%d", name, ordinal)]
	if !ok {
		return nil, false
	}
	n, err := plumbing.Parse(reg, nil, bp)
	if err != nil {
		return nil, false
	}
	return n, true
}

func (s *fakeStore) Persist(name string, ordinal int, net *plumbing.Network) error {
	s.persisted = append(s.persisted, fmt.Sprintf("%s#%d\n%s", name, ordinal, net.Serialize()))
	return nil
}

type fakeClock struct {
	t      time.Time
	sleeps int
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps++
	c.t = c.t.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// source returns each batch in turn and then empty batches.
type fakeSource struct {
	batches [][]userinput.Event
}

func (s *fakeSource) Poll() []userinput.Event {
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}
