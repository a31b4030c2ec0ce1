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
	"sort"
	"time"

	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
)

// Store provides template networks for devices and persists networks that
// have been changed by learning. Implemented by inputconfig.Store.
type Store interface {
	// Template returns the network for the device name and ordinal. The
	// returned network is a template and will be cloned before use.
	Template(name string, ordinal int) (*plumbing.Network, bool)

	// Persist the network for the device name and ordinal.
	Persist(name string, ordinal int, net *plumbing.Network) error
}

// how often WaitEvent() and Clear() check for new input.
const waitPollInterval = 10 * time.Millisecond

// devices are identified by name and ordinal for the purposes of reusing a
// network when a device is reattached.
type deviceKey struct {
	name    string
	ordinal int
}

// Controllers routes raw events to attached devices and presents the
// resulting semantic events.
type Controllers struct {
	registry   *plumbing.Registry
	prefs      *Preferences
	store      Store
	classifier *Classifier

	// every device pushes to the same queue
	queue *plumbing.Queue

	keyboard *DeviceState
	devices  map[int]*DeviceState

	// detached devices. the network is reused if the device is reattached
	cache map[deviceKey]*DeviceState

	repeat        repeater
	repeatEnabled bool

	// ranges of the queue in which generic button events are not presented
	shadows []shadow

	now   func() time.Time
	sleep func(time.Duration)
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The store can be nil, in which case default networks are
// used and nothing is persisted.
func NewControllers(reg *plumbing.Registry, prefs *Preferences, store Store) (*Controllers, error) {
	if prefs == nil {
		prefs = DefaultPreferences()
	}

	c := &Controllers{
		registry:      reg,
		prefs:         prefs,
		store:         store,
		classifier:    NewClassifier(prefs),
		queue:         plumbing.NewQueue(),
		devices:       make(map[int]*DeviceState),
		cache:         make(map[deviceKey]*DeviceState),
		repeatEnabled: true,
		now:           time.Now,
		sleep:         time.Sleep,
	}

	var net *plumbing.Network
	if tmpl, ok := c.template(KeyboardName, 0); ok {
		net = tmpl.Clone(c.queue)
	} else {
		var err error
		net, err = plumbing.Parse(reg, c.queue, DefaultKeyboardBlueprint)
		if err != nil {
			return nil, err
		}
	}
	net.TagDevice(KeyboardDevice)
	c.keyboard = NewDeviceState(KeyboardDevice, KeyboardName, 0, 0, 0, net)

	return c, nil
}

func (c *Controllers) template(name string, ordinal int) (*plumbing.Network, bool) {
	if c.store == nil {
		return nil, false
	}
	return c.store.Template(name, ordinal)
}

// SetClock replaces the functions used to measure and wait for time.
func (c *Controllers) SetClock(now func() time.Time, sleep func(time.Duration)) {
	c.now = now
	c.sleep = sleep
}

// SetRepeat enables or disables auto-repeat in Poll(). Callers that are
// interested in every state transition should disable it.
func (c *Controllers) SetRepeat(enabled bool) {
	c.repeatEnabled = enabled
}

// Queue returns the queue that every device network pushes to.
func (c *Controllers) Queue() *plumbing.Queue {
	return c.queue
}

// Keyboard returns the state of the keyboard.
func (c *Controllers) Keyboard() *DeviceState {
	return c.keyboard
}

// Device returns the state of the attached device with the ID.
func (c *Controllers) Device(id int) (*DeviceState, bool) {
	d, ok := c.devices[id]
	return d, ok
}

// Devices returns the attached devices in ID order. The keyboard is not
// included.
func (c *Controllers) Devices() []*DeviceState {
	l := make([]*DeviceState, 0, len(c.devices))
	for _, d := range c.devices {
		l = append(l, d)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].id < l[j].id
	})
	return l
}

// all devices including the keyboard
func (c *Controllers) all() []*DeviceState {
	return append([]*DeviceState{c.keyboard}, c.Devices()...)
}

// SetMenuEnabled enables or disables the menu gates of every device.
func (c *Controllers) SetMenuEnabled(enabled bool) {
	mark := c.queue.Mark()
	for _, d := range c.all() {
		d.network.SetMenuEnabled(enabled)
	}
	if c.queue.Mark() != mark {
		c.repeat.changed(c.now())
	}
}

// OpenGates returns the number of enabled gates that are currently open.
func (c *Controllers) OpenGates() int {
	n := 0
	for _, d := range c.all() {
		for _, g := range d.network.Gates() {
			if g.Enabled && g.Pressure > 0 {
				n++
			}
		}
	}
	return n
}

func (c *Controllers) attach(ev EventDeviceAttached) {
	if _, ok := c.devices[ev.Device]; ok {
		c.detach(ev.Device)
	}

	// the lowest ordinal not held by an attached device with the same name.
	// a device that is detached and reattached gets its old ordinal back
	ordinals := make(map[int]bool)
	slots := make(map[int]bool)
	for _, d := range c.devices {
		if d.name == ev.Name {
			ordinals[d.ordinal] = true
		}
		slots[d.player] = true
	}

	ordinal := 0
	for ordinals[ordinal] {
		ordinal++
	}

	player := 0
	for slots[player] && player < semantic.MaxPlayers-1 {
		player++
	}

	key := deviceKey{name: ev.Name, ordinal: ordinal}

	var net *plumbing.Network
	var learning map[semantic.Kind]*LearningStats
	if old, ok := c.cache[key]; ok {
		delete(c.cache, key)
		net = old.network
		learning = old.learning
		net.Reset()
		if old.player != player {
			net.Transpose(player - old.player)
		}
		logger.Logf(logger.Allow, "userinput", "reusing network for %s#%d", ev.Name, ordinal)
	} else if tmpl, ok := c.template(ev.Name, ordinal); ok {
		net = tmpl.Clone(c.queue)
	} else {
		var err error
		net, err = plumbing.Parse(c.registry, c.queue, DefaultJoystickBlueprint(ev.Buttons, ev.Axes, ev.Hats))
		if err != nil {
			logger.Log(logger.Allow, "userinput", err)
			return
		}
		net.Transpose(player)
	}
	net.TagDevice(ev.Device)

	d := NewDeviceState(ev.Device, ev.Name, ordinal, ev.Axes, ev.Hats, net)
	d.player = player
	if learning != nil {
		d.learning = learning
	}
	c.devices[ev.Device] = d

	logger.Logf(logger.Allow, "userinput", "attached %s#%d as player %d", ev.Name, ordinal, player+1)
}

func (c *Controllers) detach(id int) {
	d, ok := c.devices[id]
	if !ok {
		return
	}

	// held inputs are released so that every open edge has a close edge
	d.Release()

	delete(c.devices, id)
	c.cache[deviceKey{name: d.name, ordinal: d.ordinal}] = d

	logger.Logf(logger.Allow, "userinput", "detached %s#%d", d.name, d.ordinal)
}

// learn runs the classifier for every device that produced events in the
// batch.
func (c *Controllers) learn() {
	for _, d := range c.all() {
		for _, r := range c.classifier.Observe(d) {
			logger.Log(logger.Allow, "learning", r)
			if c.store == nil {
				continue
			}
			if err := c.store.Persist(d.name, d.ordinal, d.network); err != nil {
				logger.Log(logger.Allow, "learning", err)
			}
		}
	}
}

// a range of queue sequence numbers. see plumbing.Queue.Head()
type shadow struct {
	from int
	to   int
}

// shadow the batch of events pushed since mark if it contains both generic
// button events and named events. generic buttons in the range are not
// presented by Poll(), which protects against devices that report a button
// alongside a direction.
func (c *Controllers) shadow(mark int) {
	var generic, named bool
	for _, ev := range c.queue.Since(mark) {
		if ev.Kind.IsGeneric() {
			generic = true
		} else {
			named = true
		}
	}
	if generic && named {
		c.shadows = append(c.shadows, shadow{from: mark, to: c.queue.Mark()})
	}
}

// shadowed returns true if the sequence number is in a shadowed range.
// sequence numbers must be given in increasing order.
func (c *Controllers) shadowed(seq int) bool {
	for len(c.shadows) > 0 && c.shadows[0].to <= seq {
		c.shadows = c.shadows[1:]
	}
	return len(c.shadows) > 0 && c.shadows[0].from <= seq
}

// Poll returns the next semantic event. Returns semantic.NoEvent if there is
// nothing to report.
//
// Generic buttons that have not been learned are presented as menu CONFIRM or
// CANCEL events, according to the learning policy, unless the batch that
// produced them also produced a named event.
//
// If auto-repeat is enabled then held menu directions are reported again once
// the output has not changed for the repeat delay.
func (c *Controllers) Poll() semantic.Event {
	for {
		seq := c.queue.Head()
		ev, ok := c.queue.Pop()
		if !ok {
			break
		}
		if ev.Kind.IsGeneric() {
			if c.shadowed(seq) {
				continue
			}
			return semantic.Event{
				Binding:  semantic.Menu(menuKind(c.prefs.Policy.String(), ev.Kind)),
				Asserted: ev.Asserted,
			}
		}
		return ev
	}

	if c.repeatEnabled && c.prefs.RepeatEnabled.Get().(bool) {
		delay := c.prefs.RepeatDelay.Get().(time.Duration)
		interval := c.prefs.RepeatInterval.Get().(time.Duration)
		if c.repeat.due(c.now(), delay, interval) {
			for _, b := range held(c.all()) {
				c.queue.Push(b.Open())
			}
			if ev, ok := c.queue.Pop(); ok {
				return ev
			}
		}
	}

	return semantic.NoEvent
}

// PollDance is the same as Poll() except that generic button events are
// discarded and there is no auto-repeat.
func (c *Controllers) PollDance() semantic.Event {
	for {
		ev, ok := c.queue.Pop()
		if !ok {
			return semantic.NoEvent
		}
		if ev.Kind.IsGeneric() {
			continue
		}
		return ev
	}
}

// WaitEvent polls the source until an event is available or the timeout
// has elapsed. A negative timeout waits forever. Returns true if the source
// sent a quit event.
func (c *Controllers) WaitEvent(src Source, timeout time.Duration) (semantic.Event, bool) {
	deadline := c.now().Add(timeout)

	for {
		if ev := c.Poll(); !ev.IsNone() {
			return ev, false
		}

		if src != nil {
			if batch := src.Poll(); len(batch) > 0 {
				if c.HandleUserInput(batch) {
					return semantic.NoEvent, true
				}
				continue
			}
		}

		if timeout >= 0 && !c.now().Before(deadline) {
			return semantic.NoEvent, false
		}

		c.sleep(waitPollInterval)
	}
}

// Clear discards every waiting event and then waits for every gate to close,
// for a maximum of maxWait.
func (c *Controllers) Clear(src Source, maxWait time.Duration) {
	deadline := c.now().Add(maxWait)

	for {
		c.queue.Clear()
		c.shadows = c.shadows[:0]

		if src != nil {
			if batch := src.Poll(); len(batch) > 0 {
				c.HandleUserInput(batch)
				continue
			}
		}

		if c.OpenGates() == 0 || !c.now().Before(deadline) {
			return
		}

		c.sleep(waitPollInterval)
	}
}
