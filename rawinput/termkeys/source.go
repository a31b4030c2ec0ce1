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

package termkeys

import (
	"os"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Source of raw input events from a terminal.
type Source struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// chunks of input read by the read loop
	chunks chan []byte
}

// NewSource is the preferred method of initialisation for the Source type.
// The terminal remains in raw mode until CleanUp() is called.
func NewSource(input *os.File) (*Source, error) {
	if input == nil {
		return nil, curated.Errorf("termkeys: no input file")
	}

	src := &Source{
		input:  input,
		chunks: make(chan []byte, 64),
	}

	if err := termios.Tcgetattr(input.Fd(), &src.canAttr); err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}
	src.rawAttr = src.canAttr
	termios.Cfmakeraw(&src.rawAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCSANOW, &src.rawAttr); err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	go src.readLoop()

	return src, nil
}

// CleanUp restores the terminal to the mode it was in before NewSource().
func (src *Source) CleanUp() {
	if err := termios.Tcsetattr(src.input.Fd(), termios.TCSANOW, &src.canAttr); err != nil {
		logger.Log(logger.Allow, "termkeys", err)
	}
}

func (src *Source) readLoop() {
	for {
		b := make([]byte, 32)
		n, err := src.input.Read(b)
		if err != nil {
			logger.Log(logger.Allow, "termkeys", err)
			close(src.chunks)
			return
		}
		src.chunks <- b[:n]
	}
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() []userinput.Event {
	var input []byte

	for {
		select {
		case b, ok := <-src.chunks:
			if !ok {
				// the terminal has gone so the program should end
				return append(decode(input), userinput.EventQuit{})
			}
			input = append(input, b...)
			continue
		default:
		}
		break
	}

	return decode(input)
}
