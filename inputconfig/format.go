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

package inputconfig

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/plumbing"
)

// Sentinal error patterns.
const (
	MalformedHeader = "inputconfig: %s: malformed header (%s)"
	MalformedBody   = "inputconfig: %s: %v"
	NoConfigDir     = "inputconfig: no config directory (%s)"
)

// Extension of files written by Persist().
const Extension = ".cfg"

// NoOrdinal is the ordinal of entries that apply to every device with the
// same name.
const NoOrdinal = -1

const (
	headerOpen    = '['
	headerClose   = ']'
	ordinalMarker = "#"
)

// Header returns the header line for a device.
func Header(name string, ordinal int) string {
	if ordinal == NoOrdinal {
		return fmt.Sprintf("%c%s%c", headerOpen, name, headerClose)
	}
	return fmt.Sprintf("%c%s%s%d%c", headerOpen, name, ordinalMarker, ordinal, headerClose)
}

// parseHeader returns the device name and ordinal from a header line. If the
// text following the last ordinal marker is not a number then it is
// considered to be part of the name.
func parseHeader(line string) (string, int, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 3 || line[0] != headerOpen || line[len(line)-1] != headerClose {
		return "", 0, false
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return "", 0, false
	}

	ordinal := NoOrdinal
	if i := strings.LastIndex(name, ordinalMarker); i >= 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil && n >= 0 {
			ordinal = n
			name = strings.TrimSpace(name[:i])
		}
	}
	if name == "" {
		return "", 0, false
	}

	return name, ordinal, true
}

// Parse the contents of a file. The origin is used in error messages.
// Blueprint errors report line numbers from the start of the file.
func Parse(reg *plumbing.Registry, origin string, data string) (string, int, *plumbing.Network, error) {
	lines := strings.Split(data, "\n")

	for i, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}

		name, ordinal, ok := parseHeader(t)
		if !ok {
			return "", 0, nil, curated.Errorf(MalformedHeader, origin, t)
		}

		// preceding lines are replaced with empty lines so that line
		// numbers in blueprint errors are correct
		body := strings.Repeat("\n", i+1) + strings.Join(lines[i+1:], "\n")

		net, err := plumbing.Parse(reg, nil, body)
		if err != nil {
			return "", 0, nil, curated.Errorf(MalformedBody, origin, err)
		}

		return name, ordinal, net, nil
	}

	return "", 0, nil, curated.Errorf(MalformedHeader, origin, "missing")
}

// Format returns the file contents for the network.
func Format(name string, ordinal int, net *plumbing.Network) string {
	s := strings.Builder{}
	s.WriteString(Header(name, ordinal))
	s.WriteString("\n")
	s.WriteString(net.Serialize())
	return s.String()
}

// Filename returns the name of the file that Persist() will use for the
// device. Characters that are unsuitable for a filename are replaced.
func Filename(name string, ordinal int) string {
	n := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-') {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.TrimSpace(name))

	if ordinal == NoOrdinal {
		return n + Extension
	}
	return fmt.Sprintf("%s_%d%s", n, ordinal, Extension)
}
