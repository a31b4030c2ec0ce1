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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/plumbing/paths"
	"github.com/jetsetilly/plumbing/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".plumbing", "foo", "bar", "baz"))

	// the directory part has been created
	info, err := os.Stat(filepath.Join(".plumbing", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.IsDir(), true)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".plumbing", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".plumbing", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".plumbing")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("graph", "keyboard")
	test.ExpectEquality(t, strings.HasPrefix(fn, "graph_keyboard_"), true)

	fn = paths.UniqueFilename("graph", " ")
	test.ExpectEquality(t, strings.HasPrefix(fn, "graph_2"), true)
}
