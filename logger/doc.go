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

// Package logger is the central log for the application. Entries are made
// with Log() and Logf() and are identified by a tag, usually the name of the
// package or the device making the entry:
//
//	logger.Logf(logger.Allow, "inputconfig", "skipping %s: %v", fn, err)
//
// Adjacent entries with identical tag and detail are collapsed into a single
// entry with a repeat count.
//
// Whether an entry is made at all is decided by the Permission argument.
// Allow is a Permission that always allows logging.
//
// The central log can be echoed to an io.Writer as entries are made. See
// SetEcho().
package logger
