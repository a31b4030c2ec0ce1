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

// Package assert contains checks that should never fail in a correctly
// written program.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only be used for assertions.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner is the goroutine that created a resource which must only be used by
// that goroutine.
type Owner uint64

// NewOwner returns the Owner for the current goroutine.
func NewOwner() Owner {
	return Owner(GoroutineID())
}

// Check panics if the current goroutine is not the owner. The resource
// argument names the resource in the panic message.
func (o Owner) Check(resource string) {
	if id := GoroutineID(); id != uint64(o) {
		panic(fmt.Sprintf("%s: used by goroutine %d but owned by goroutine %d", resource, id, o))
	}
}
