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
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/semantic"
)

// HandleUserInput processes a batch of raw events. The resulting semantic
// events are pushed to the queue and then the learning pass is run over the
// events produced by each device.
//
// A quit event pushes the menu QUIT event to the queue. Returns true if the
// batch contained a quit event.
func (c *Controllers) HandleUserInput(batch []Event) bool {
	var quit bool

	mark := c.queue.Mark()

	for _, ev := range batch {
		switch ev := ev.(type) {
		case EventQuit:
			quit = true
			c.queue.Push(semantic.Menu(semantic.Quit).Open())

		case EventKeyboard:
			d := c.keyboard
			d.record(func() { d.Button(ev.Key, ev.Down) })

		case EventJoyButton:
			if d, ok := c.devices[ev.Device]; ok {
				d.record(func() { d.Button(ev.Button, ev.Down) })
			}

		case EventJoyHat:
			if d, ok := c.devices[ev.Device]; ok {
				d.record(func() { d.Hat(ev.Hat, ev.X, ev.Y) })
			}

		case EventJoyAxis:
			if d, ok := c.devices[ev.Device]; ok {
				d.record(func() { d.Axis(ev.Axis, ev.Value) })
			}

		case EventDeviceAttached:
			c.attach(ev)

		case EventDeviceDetached:
			c.detach(ev.Device)

		default:
			logger.Logf(logger.Allow, "userinput", "unhandled event type (%T)", ev)
		}
	}

	c.learn()
	c.shadow(mark)

	if c.queue.Mark() != mark {
		c.repeat.changed(c.now())
	}

	return quit
}
