// This file is part of vinput.
//
// vinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vinput.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/vinput/curated"
)

// UnknownKey is returned by Set.Get() and Set.SetValue() when the key has not
// been added to the Set.
const UnknownKey = "prefs: unknown key (%s)"

// Set is a collection of named preference values. Values are added to the Set
// and can then be changed by name from a configuration file or the command
// line.
type Set struct {
	entries map[string]pref
}

// NewSet is the preferred method of initialisation for the Set type.
func NewSet() *Set {
	return &Set{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the Set. The key is the name used to refer to the
// value in configuration files and on the command line.
func (s *Set) Add(key string, p pref) {
	s.entries[strings.ToLower(key)] = p
}

// Keys returns the sorted list of keys in the Set.
func (s *Set) Keys() []string {
	k := make([]string, 0, len(s.entries))
	for key := range s.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// SetValue sets the named preference value.
func (s *Set) SetValue(key string, v Value) error {
	p, ok := s.entries[strings.ToLower(key)]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %s: %v", key, err)
	}
	return nil
}

// Get returns the named preference value.
func (s *Set) Get(key string) (Value, error) {
	p, ok := s.entries[strings.ToLower(key)]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Apply sets every value in the Set that has an entry in the map. Entries in
// the map that do not belong to the Set are ignored.
//
// All entries are applied even if one fails. The first error is returned.
func (s *Set) Apply(values map[string]string) error {
	var first error
	for _, key := range s.Keys() {
		for k, v := range values {
			if strings.EqualFold(k, key) {
				if err := s.SetValue(key, v); err != nil && first == nil {
					first = err
				}
			}
		}
	}
	return first
}

// SetFromCommandLine sets every value in the Set that has an entry in the
// current command line group. See PushCommandLineStack().
func (s *Set) SetFromCommandLine() error {
	for _, key := range s.Keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := s.SetValue(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset all values in the Set.
func (s *Set) Reset() error {
	for _, key := range s.Keys() {
		if err := s.entries[key].Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) String() string {
	b := strings.Builder{}
	for _, key := range s.Keys() {
		b.WriteString(fmt.Sprintf("%s::%s\n", key, s.entries[key]))
	}
	return b.String()
}
