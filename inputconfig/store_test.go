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

package inputconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/inputconfig"
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/semantic"
	"github.com/jetsetilly/plumbing/test"
)

var reg = plumbing.NewRegistry()

func write(t *testing.T, dir string, name string, data string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600)
	test.DemandSuccess(t, err)
}

func countLog(tag string) int {
	n := 0
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag {
				n++
			}
		}
	})
	return n
}

func TestHeader(t *testing.T) {
	for _, tc := range []struct {
		data    string
		name    string
		ordinal int
	}{
		{data: "[pad]\n", name: "pad", ordinal: inputconfig.NoOrdinal},
		{data: "[pad#2]\n", name: "pad", ordinal: 2},
		{data: "  [ Arcade Stick #0 ]  \n", name: "Arcade Stick", ordinal: 0},
		{data: "[Stick #A]\n", name: "Stick #A", ordinal: inputconfig.NoOrdinal},
		{data: "# comment\n\n[pad#1]\n0 = CONFIRM\n", name: "pad", ordinal: 1},
	} {
		name, ordinal, net, err := inputconfig.Parse(reg, "test", tc.data)
		if test.ExpectSuccess(t, err, tc.data) {
			test.ExpectEquality(t, name, tc.name)
			test.ExpectEquality(t, ordinal, tc.ordinal)
			test.ExpectInequality(t, net, nil)
		}
	}

	for _, data := range []string{
		"",
		"# only a comment\n",
		"0 = CONFIRM\n",
		"[]\n0 = CONFIRM\n",
		"[#1]\n",
		"[pad\n",
	} {
		_, _, _, err := inputconfig.Parse(reg, "test", data)
		test.ExpectEquality(t, curated.Is(err, inputconfig.MalformedHeader), true, data)
	}
}

func TestBodyError(t *testing.T) {
	_, _, _, err := inputconfig.Parse(reg, "pad.cfg", "# comment\n[pad]\n0 = CONFIRM\n1 = FOO\n")
	test.ExpectEquality(t, curated.Is(err, inputconfig.MalformedBody), true)
	test.ExpectEquality(t, curated.Has(err, plumbing.UnknownEvent), true)

	// line numbers count from the start of the file
	test.ExpectEquality(t, strings.Contains(err.Error(), "line 4"), true, err)
}

func TestFilename(t *testing.T) {
	test.ExpectEquality(t, inputconfig.Filename("Generic USB Joystick", 0), "generic_usb_joystick_0.cfg")
	test.ExpectEquality(t, inputconfig.Filename("pad/../x", inputconfig.NoOrdinal), "pad____x.cfg")
	test.ExpectEquality(t, inputconfig.Filename("Pad-Ü", 3), "pad-__3.cfg")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.cfg", "[pad]\n0 = CONFIRM\n")
	write(t, dir, "b.cfg", "[pad#1]\n0 = CANCEL\n")
	write(t, dir, "c.cfg", "no header\n")
	write(t, dir, "d.cfg", "[broken]\n0 CONFIRM\n")
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	logger.Clear()
	s, err := inputconfig.Load(dir, reg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, countLog("inputconfig"), 2)

	test.ExpectEquality(t, strings.Join(s.List(), " "), "[pad#1] [pad]")

	for _, tc := range []struct {
		ordinal  int
		expected string
	}{
		{ordinal: 0, expected: "0 = CONFIRM\n"},
		{ordinal: 1, expected: "0 = CANCEL\n"},
		{ordinal: 2, expected: "0 = CONFIRM\n"},
	} {
		net, ok := s.Template("pad", tc.ordinal)
		if test.ExpectEquality(t, ok, true, tc.ordinal) {
			test.ExpectEquality(t, net.Serialize(), tc.expected, tc.ordinal)
		}
	}

	_, ok := s.Template("broken", 0)
	test.ExpectEquality(t, ok, false)
	_, ok = s.Template("other", 0)
	test.ExpectEquality(t, ok, false)
}

func TestLoadMissingDir(t *testing.T) {
	logger.Clear()
	s, err := inputconfig.Load(filepath.Join(t.TempDir(), "missing"), reg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.List()), 0)
	test.ExpectEquality(t, countLog("inputconfig"), 1)

	err = s.Load()
	test.ExpectEquality(t, curated.Is(err, inputconfig.NoConfigDir), true)
}

func TestPersist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "inputs")
	s := inputconfig.NewStore(dir, reg)

	net, err := plumbing.Parse(reg, nil, "A- = LEFT P1_LEFT\n0 = P1_BUTTON0\n")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, net.Replace(net.Bindings()[2], net.Bindings()[1]), true)

	test.DemandSuccess(t, s.Persist("My Pad", 1, net))
	test.ExpectEquality(t, net.Filename, filepath.Join(dir, "my_pad_1.cfg"))
	test.ExpectEquality(t, net.Header, "[My Pad#1]")

	data, err := os.ReadFile(net.Filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "[My Pad#1]\n0 = P1_LEFT\nA- = LEFT P1_LEFT\n")

	// the stored copy is not affected by later changes to the network
	net.Raise(0)
	tmpl, ok := s.Template("My Pad", 1)
	test.DemandEquality(t, ok, true)
	g, _ := tmpl.Gate(net.Bindings()[1])
	test.ExpectEquality(t, g.Pressure, 0)

	// a new store sees the same network
	r, err := inputconfig.Load(dir, reg)
	test.DemandSuccess(t, err)
	tmpl, ok = r.Template("My Pad", 1)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, tmpl.Serialize(), net.Serialize())
}

func TestPersistHeld(t *testing.T) {
	s := inputconfig.NewStore(t.TempDir(), reg)

	// the button is rewired while it is held, as happens during learning
	net, err := plumbing.Parse(reg, nil, "0 = P1_BUTTON0\n")
	test.DemandSuccess(t, err)
	net.Raise(0)
	test.DemandEquality(t, net.Replace(semantic.Generic(0, 0), semantic.Menu(semantic.Confirm)), true)
	test.DemandSuccess(t, s.Persist("pad", 0, net))

	// the live network is unchanged
	g, _ := net.Gate(semantic.Menu(semantic.Confirm))
	test.ExpectEquality(t, g.Pressure, 1)

	tmpl, ok := s.Template("pad", 0)
	test.DemandEquality(t, ok, true)
	g, _ = tmpl.Gate(semantic.Menu(semantic.Confirm))
	test.ExpectEquality(t, g.Pressure, 0)

	// a network built from the template responds to the button
	c := tmpl.Clone(nil)
	c.Raise(0)
	c.Lower(0)
	events := make([]string, 0, 2)
	for {
		ev, ok := c.Queue().Pop()
		if !ok {
			break
		}
		events = append(events, ev.String())
	}
	test.ExpectEquality(t, strings.Join(events, " "), "CONFIRM+ CONFIRM-")
}

func TestPersistOverwrite(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "handmade.cfg", "[pad#0]\n0 = P1_BUTTON0\n")

	s, err := inputconfig.Load(dir, reg)
	test.DemandSuccess(t, err)

	tmpl, ok := s.Template("pad", 0)
	test.DemandEquality(t, ok, true)

	net := tmpl.Clone(nil)
	test.DemandSuccess(t, net.AddConnection([]int{1}, "CANCEL"))
	test.DemandSuccess(t, s.Persist("pad", 0, net))

	// the original file is overwritten and no new file is created
	files, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(files), 1)
	test.ExpectEquality(t, files[0].Name(), "handmade.cfg")

	data, err := os.ReadFile(filepath.Join(dir, "handmade.cfg"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "[pad#0]\n0 = P1_BUTTON0\n1 = CANCEL\n")
}
