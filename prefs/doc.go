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

// Package prefs stores preference values on disk. The type of a preference
// is one of the types in this package (Bool, Int, Float, String or
// Duration). Preference values are associated with a key and added to a Disk
// instance.
//
//	dsk, err := prefs.NewDisk(pth)
//	...
//	var minSamples prefs.Int
//	dsk.Add("learning.minsamples", &minSamples)
//	...
//	err = dsk.Load(true)
//
// The file format is a list of "key :: value" lines, preceded by
// WarningBoilerPlate. Many Disk instances can share a file.
//
// Values can also be supplied on the command line with a string of the form
// "key::value; key::value". See PushCommandLineStack(). Command line values
// take priority over values loaded from disk but are never saved unless the
// program explicitly calls Save().
package prefs
