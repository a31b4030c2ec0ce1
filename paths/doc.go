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

// Package paths contains functions to prepare paths to plumbing resources.
//
// The ResourcePath() function returns the path to a resource in the
// appropriate config directory. For example, the following will return the
// path to the directory of per-device input configuration files.
//
//	d, err := paths.ResourcePath("inputconfig", "")
//
// In development builds the base path is ".plumbing" in the current directory.
// In release builds (built with the release tag) the base path is "plumbing"
// in the directory returned by os.UserConfigDir(). On a modern Linux system
// the example above will return:
//
//	/home/user/.config/plumbing/inputconfig
//
// The directory part of the path is created if it does not exist.
package paths
