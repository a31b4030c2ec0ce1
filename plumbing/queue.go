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

import "github.com/jetsetilly/plumbing/semantic"

// Queue is the FIFO of semantic events emitted by a network. A queue is
// shared by reference: every gate of a network, and of any network cloned
// with the same queue, pushes to it.
type Queue struct {
	events []semantic.Event
	head   int

	// total number of events ever pushed
	pushed int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		events: make([]semantic.Event, 0, 64),
	}
}

// Push an event to the end of the queue.
func (q *Queue) Push(ev semantic.Event) {
	q.events = append(q.events, ev)
	q.pushed++
}

// Pop the event at the front of the queue. Returns false if queue is empty.
func (q *Queue) Pop() (semantic.Event, bool) {
	if q.head >= len(q.events) {
		return semantic.NoEvent, false
	}

	ev := q.events[q.head]
	q.head++

	// compact once the consumed portion dominates the buffer
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	} else if q.head > 64 && q.head > len(q.events)/2 {
		n := copy(q.events, q.events[q.head:])
		q.events = q.events[:n]
		q.head = 0
	}

	return ev, true
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	return len(q.events) - q.head
}

// Mark returns a value that can be given to Since(). It is the sequence
// number that the next pushed event will have.
func (q *Queue) Mark() int {
	return q.pushed
}

// Head returns the sequence number of the event at the front of the queue.
// Every pushed event is numbered, starting from zero.
func (q *Queue) Head() int {
	return q.pushed - q.Len()
}

// Since returns the events pushed since mark that are still waiting in the
// queue. The returned slice must not be modified.
func (q *Queue) Since(mark int) []semantic.Event {
	n := q.pushed - mark
	if n <= 0 {
		return nil
	}
	if n > q.Len() {
		n = q.Len()
	}
	return q.events[len(q.events)-n:]
}

// Clear removes every waiting event.
func (q *Queue) Clear() {
	q.events = q.events[:0]
	q.head = 0
}
