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
	"time"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/paths"
	"github.com/jetsetilly/plumbing/prefs"
)

// List of valid values for the learning.policy preference.
const (
	PolicyConfirm   = "confirm"
	PolicyCancel    = "cancel"
	PolicyAlternate = "alternate"
)

// Preferences for the userinput package.
type Preferences struct {
	dsk *prefs.Disk

	// a generic button must be pressed in isolation more than this number of
	// times before it is considered for rewiring
	MinSamples prefs.Int

	// proportion of presses that must be correlated with a direction for the
	// button to become that direction
	High prefs.Float

	// every direction must be correlated with less than this proportion of
	// presses for the button to become a menu control
	Low prefs.Float

	// how buttons that are independent of the directions are rewired. one of
	// the Policy values
	Policy prefs.String

	// auto-repeat of held menu directions. repeating starts when the output
	// has not changed for the delay
	RepeatEnabled  prefs.Bool
	RepeatDelay    prefs.Duration
	RepeatInterval prefs.Duration
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// DefaultPreferences returns an instance of Preferences with default values
// that is not backed by a file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.Policy.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case PolicyConfirm, PolicyCancel, PolicyAlternate:
			return nil
		}
		return fmt.Errorf("unknown learning policy (%v)", v)
	})
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but with a
// specific preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := DefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, v := range map[string]interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}{
		"learning.minsamples": &p.MinSamples,
		"learning.high":       &p.High,
		"learning.low":        &p.Low,
		"learning.policy":     &p.Policy,
		"repeat.enabled":      &p.RepeatEnabled,
		"repeat.delay":        &p.RepeatDelay,
		"repeat.interval":     &p.RepeatInterval,
	} {
		if err := p.dsk.Add(key, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.MinSamples.Set(5)
	_ = p.High.Set(0.85)
	_ = p.Low.Set(0.5)
	_ = p.Policy.Set(PolicyAlternate)
	_ = p.RepeatEnabled.Set(true)
	_ = p.RepeatDelay.Set(250 * time.Millisecond)
	_ = p.RepeatInterval.Set(33 * time.Millisecond)
}

// Load preferences from disk. Does nothing if the preferences are not backed
// by a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk. Does nothing if the preferences are not backed by
// a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
