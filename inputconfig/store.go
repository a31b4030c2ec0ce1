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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jetsetilly/plumbing/curated"
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/plumbing"
)

type key struct {
	name    string
	ordinal int
}

// Store of device networks backed by a directory.
type Store struct {
	crit sync.Mutex

	dir      string
	registry *plumbing.Registry
	entries  map[key]*plumbing.Network
}

// NewStore is the preferred method of initialisation for the Store type. The
// store is empty until Load() is called.
func NewStore(dir string, reg *plumbing.Registry) *Store {
	return &Store{
		dir:      dir,
		registry: reg,
		entries:  make(map[key]*plumbing.Network),
	}
}

// Load creates a new store and reads every file in the directory. A missing
// directory is not an error, the store will be empty.
func Load(dir string, reg *plumbing.Registry) (*Store, error) {
	s := NewStore(dir, reg)
	if err := s.Load(); err != nil {
		if !curated.Is(err, NoConfigDir) {
			return nil, err
		}
		logger.Log(logger.Allow, "inputconfig", err)
	}
	return s, nil
}

// Load every regular file in the store's directory. Files that fail are
// logged and skipped. Entries that have already been loaded are replaced
// by entries with the same name and ordinal.
func (s *Store) Load() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	files, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NoConfigDir, s.dir)
		}
		return curated.Errorf("inputconfig: %v", err)
	}

	for _, f := range files {
		if !f.Type().IsRegular() {
			continue
		}
		pth := filepath.Join(s.dir, f.Name())
		if err := s.read(pth); err != nil {
			logger.Log(logger.Allow, "inputconfig", err)
		}
	}

	return nil
}

// ReadFile adds a single file to the store.
func (s *Store) ReadFile(pth string) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.read(pth)
}

func (s *Store) read(pth string) error {
	data, err := os.ReadFile(pth)
	if err != nil {
		return curated.Errorf("inputconfig: %v", err)
	}

	name, ordinal, net, err := Parse(s.registry, pth, string(data))
	if err != nil {
		return err
	}

	net.Header = Header(name, ordinal)
	net.Filename = pth

	k := key{name: name, ordinal: ordinal}
	if e, ok := s.entries[k]; ok {
		logger.Logf(logger.Allow, "inputconfig", "%s replaces %s", pth, e.Filename)
	}
	s.entries[k] = net

	return nil
}

// Template returns the network for the device. An entry for the exact
// ordinal is preferred over an entry with no ordinal.
//
// The returned network must not be modified. Clone it before use.
func (s *Store) Template(name string, ordinal int) (*plumbing.Network, bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if n, ok := s.entries[key{name: name, ordinal: ordinal}]; ok {
		return n, true
	}
	if n, ok := s.entries[key{name: name, ordinal: NoOrdinal}]; ok {
		return n, true
	}
	return nil, false
}

// Persist writes the network for the device to the store's directory. The
// directory is created if required. A copy of the network, with every gate
// reset, replaces any entry for the device.
//
// If there is already an entry for the device then the file it was read
// from is overwritten.
func (s *Store) Persist(name string, ordinal int, net *plumbing.Network) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return curated.Errorf("inputconfig: %v", err)
	}

	k := key{name: name, ordinal: ordinal}
	pth := filepath.Join(s.dir, Filename(name, ordinal))
	if n, ok := s.entries[k]; ok {
		pth = n.Filename
	}

	// replace the file atomically
	tmp := pth + ".tmp"
	if err := os.WriteFile(tmp, []byte(Format(name, ordinal, net)), 0o600); err != nil {
		return curated.Errorf("inputconfig: %v", err)
	}
	if err := os.Rename(tmp, pth); err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf("inputconfig: %v", err)
	}

	net.Header = Header(name, ordinal)
	net.Filename = pth

	// the entry is a template. gates held in the live network start at rest
	tmpl := net.Clone(nil)
	tmpl.Reset()
	s.entries[k] = tmpl

	return nil
}

// List returns the header of every entry in the store, sorted.
func (s *Store) List() []string {
	s.crit.Lock()
	defer s.crit.Unlock()

	l := make([]string, 0, len(s.entries))
	for k := range s.entries {
		l = append(l, Header(k.name, k.ordinal))
	}
	sort.Strings(l)
	return l
}

func (s *Store) String() string {
	return fmt.Sprintf("%s (%d entries)", s.dir, len(s.List()))
}
