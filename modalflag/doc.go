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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are supplied with NewArgs() and then parsed in layers with
// Parse(). Before each call to Parse() the flags and sub-modes for that layer
// are added. For example, the plumbing command has three modes, with RUN the
// default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK", "GRAPH")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "CHECK":
//		md.NewMode()
//		verbose := md.AddBool("v", false, "print every connection")
//		md.Parse()
//		...
//	}
//
// Mode names are case insensitive. If the first non-flag argument is not one
// of the sub-modes then the default sub-mode is selected and the argument is
// left for the next layer. The series of modes that have been selected is
// returned by Path().
//
// Help is printed to Output whenever the -help flag is encountered. The help
// message lists the flags and sub-modes of the current layer.
package modalflag
