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

package bindings

import (
	"github.com/jetsetilly/vinput/keys"
)

// Table maps every Action to the keys it drives.
type Table struct {
	bindings [NumActions]keys.Dual
}

// NewTable returns a table with the default bindings.
func NewTable() *Table {
	t := &Table{}
	t.Apply(nil)
	return t
}

// Apply rebuilds the entire table from the configuration. The configuration
// maps action configuration names to mapping strings. Missing, empty and
// unresolvable mappings fall back to the default key for the action.
//
// Apply never merges with the previous state of the table. Applying the same
// configuration twice produces the same table.
//
// The names of actions whose non-empty mapping contained no usable keyboard
// token are returned.
func (t *Table) Apply(cfg map[string]string) []string {
	var unresolved []string

	var resolved [NumActions]keys.Key
	for a := Action(0); a < NumActions; a++ {
		resolved[a] = a.Default()

		mapping := cfg[a.ConfigName()]
		if mapping == "" {
			continue
		}

		if k := ParseFirstKey(mapping); k != keys.None {
			resolved[a] = k
		} else {
			unresolved = append(unresolved, a.ConfigName())
		}
	}

	for a := Action(0); a < NumActions; a++ {
		t.bindings[a] = keys.Single(resolved[a])
	}

	// the horizontal directions drive both the joystick and steering keys if
	// they are configured differently. menus are navigated with the joystick
	// keys and driving uses the steering keys
	t.bindings[JoyLeft] = pair(resolved[JoyLeft], resolved[SteerLeft])
	t.bindings[JoyRight] = pair(resolved[JoyRight], resolved[SteerRight])
	t.bindings[SteerLeft] = pair(resolved[SteerLeft], resolved[JoyLeft])
	t.bindings[SteerRight] = pair(resolved[SteerRight], resolved[JoyRight])

	return unresolved
}

func pair(primary keys.Key, secondary keys.Key) keys.Dual {
	if primary == secondary {
		return keys.Single(primary)
	}
	return keys.Dual{Primary: primary, Secondary: secondary}
}

// Binding returns the keys bound to the action. Returns the zero Dual for
// invalid actions.
func (t *Table) Binding(a Action) keys.Dual {
	if a < 0 || a >= NumActions {
		return keys.Dual{}
	}
	return t.bindings[a]
}

// SetBinding replaces the keys bound to a single action. The binding is lost
// on the next call to Apply().
func (t *Table) SetBinding(a Action, d keys.Dual) {
	if a < 0 || a >= NumActions {
		return
	}
	t.bindings[a] = d
}
