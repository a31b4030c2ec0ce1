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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/plumbing/prefs"
	"github.com/jetsetilly/plumbing/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	for _, tc := range []struct {
		arg      string
		expected string
	}{
		{arg: "learning.policy::confirm", expected: "learning.policy::confirm"},
		{arg: "  learning.high :: 0.9 ", expected: "learning.high::0.9"},
		{arg: "repeat.delay::250ms; learning.low::0.4", expected: "learning.low::0.4; repeat.delay::250ms"},
		{arg: "repeat.enabled", expected: ""},
		{arg: "repeat.enabled;learning.minsamples::8", expected: "learning.minsamples::8"},
		{arg: "a::b::c", expected: ""},
		{arg: "", expected: ""},
	} {
		prefs.PushCommandLineStack(tc.arg)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), tc.expected, tc.arg)
	}
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("learning.policy::cancel; repeat.enabled::false")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("learning.policy")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "cancel")

	// values are consumed when they are read
	ok, _ = prefs.GetCommandLinePref("learning.policy")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("learning.high")
	test.ExpectFailure(t, ok)
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("learning.high::0.9")
	prefs.PushCommandLineStack("learning.low::0.1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is visible
	ok, _ := prefs.GetCommandLinePref("learning.high")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "learning.low::0.1")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "learning.high::0.9")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
