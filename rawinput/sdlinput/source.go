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

package sdlinput

import (
	"github.com/jetsetilly/plumbing/assert"
	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/userinput"
	"github.com/jetsetilly/plumbing/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Source of raw input events from SDL.
type Source struct {
	owner  assert.Owner
	window *sdl.Window

	// open joysticks indexed by instance ID
	joysticks map[sdl.JoystickID]*sdl.Joystick
}

// NewSource is the preferred method of initialisation for the Source type.
// Must be called from the main thread, as must every other function in this
// package.
func NewSource() (*Source, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, curated.Errorf("sdlinput: %v", err)
	}

	src := &Source{
		owner:     assert.NewOwner(),
		joysticks: make(map[sdl.JoystickID]*sdl.Joystick),
	}

	src.window, err = sdl.CreateWindow(version.Title(), sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 320, 200, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlinput: %v", err)
	}

	// joysticks already present are announced by SDL with JoyDeviceAddedEvent
	// so there is no need to open them here
	logger.Logf(logger.Allow, "sdlinput", "%d joysticks found", sdl.NumJoysticks())

	return src, nil
}

// Destroy closes every joystick and the window.
func (src *Source) Destroy() {
	src.owner.Check("sdlinput")
	for id, joy := range src.joysticks {
		joy.Close()
		delete(src.joysticks, id)
	}
	if src.window != nil {
		_ = src.window.Destroy()
	}
	sdl.Quit()
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() []userinput.Event {
	src.owner.Check("sdlinput")

	var batch []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.JoyDeviceAddedEvent:
			if e, ok := src.open(int(ev.Which)); ok {
				batch = append(batch, e)
			}

		case *sdl.JoyDeviceRemovedEvent:
			if joy, ok := src.joysticks[ev.Which]; ok {
				joy.Close()
				delete(src.joysticks, ev.Which)
				batch = append(batch, userinput.EventDeviceDetached{Device: int(ev.Which)})
			}

		default:
			if e, ok := translate(ev); ok {
				batch = append(batch, e)
			}
		}
	}

	return batch
}

// open the joystick with the device index.
func (src *Source) open(index int) (userinput.Event, bool) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		logger.Logf(logger.Allow, "sdlinput", "cannot open joystick %d: %v", index, sdl.GetError())
		return nil, false
	}

	id := joy.InstanceID()
	if _, ok := src.joysticks[id]; ok {
		joy.Close()
		return nil, false
	}
	src.joysticks[id] = joy

	logger.Logf(logger.Allow, "sdlinput", "joystick: %s", joy.Name())

	return userinput.EventDeviceAttached{
		Device:  int(id),
		Name:    joy.Name(),
		Buttons: joy.NumButtons(),
		Axes:    joy.NumAxes(),
		Hats:    joy.NumHats(),
	}, true
}
