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

// Package test contains helper functions for package tests. The Expect*()
// functions report a failure and let the test continue. The Demand*()
// functions stop the test immediately.
//
// The optional tags arguments are prepended to failure messages and help to
// identify which of several similar expectations failed. For example:
//
//	for i, ev := range events {
//		test.ExpectEquality(t, ev.String(), want[i], i)
//	}
package test
