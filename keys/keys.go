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

package keys

import (
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Key is a logical key. Values are taken from the SDL scancode space, which
// is the code space expected by the simulation core.
type Key int

// None is the sentinel value for "no key". It is never pressed.
const None = Key(sdl.SCANCODE_UNKNOWN)

// NumKeys is the size of the logical key code space.
const NumKeys = int(sdl.NUM_SCANCODES)

// List of keys used by the default bindings.
const (
	Up        = Key(sdl.SCANCODE_UP)
	Down      = Key(sdl.SCANCODE_DOWN)
	Left      = Key(sdl.SCANCODE_LEFT)
	Right     = Key(sdl.SCANCODE_RIGHT)
	Return    = Key(sdl.SCANCODE_RETURN)
	Escape    = Key(sdl.SCANCODE_ESCAPE)
	Space     = Key(sdl.SCANCODE_SPACE)
	Backspace = Key(sdl.SCANCODE_BACKSPACE)
	Tab       = Key(sdl.SCANCODE_TAB)

	A = Key(sdl.SCANCODE_A)
	D = Key(sdl.SCANCODE_D)
	F = Key(sdl.SCANCODE_F)
	I = Key(sdl.SCANCODE_I)
	K = Key(sdl.SCANCODE_K)
	Q = Key(sdl.SCANCODE_Q)
	S = Key(sdl.SCANCODE_S)
	T = Key(sdl.SCANCODE_T)
	W = Key(sdl.SCANCODE_W)
	X = Key(sdl.SCANCODE_X)
	Z = Key(sdl.SCANCODE_Z)

	Num0 = Key(sdl.SCANCODE_0)
	Num1 = Key(sdl.SCANCODE_1)
	Num5 = Key(sdl.SCANCODE_5)
	Num6 = Key(sdl.SCANCODE_6)
	Num7 = Key(sdl.SCANCODE_7)
	Num8 = Key(sdl.SCANCODE_8)
	Num9 = Key(sdl.SCANCODE_9)

	F1 = Key(sdl.SCANCODE_F1)
	F2 = Key(sdl.SCANCODE_F2)
)

// Valid returns true if the key is inside the logical code space and is not
// the None sentinel.
func (k Key) Valid() bool {
	return k > None && int(k) < NumKeys
}

// String returns the SDL name of the key. Invalid keys return the empty string.
func (k Key) String() string {
	if !k.Valid() {
		return ""
	}
	return sdl.GetScancodeName(sdl.Scancode(k))
}

// names that are commonly used in configuration files. the SDL name lookup is
// used for anything not in this table
var names map[string]Key

func init() {
	names = map[string]Key{
		"UP":        Up,
		"DOWN":      Down,
		"LEFT":      Left,
		"RIGHT":     Right,
		"RETURN":    Return,
		"ENTER":     Return,
		"ESCAPE":    Escape,
		"SPACE":     Space,
		"BACKSPACE": Backspace,
		"TAB":       Tab,

		// modifier and navigation names that SDL spells differently
		"SHIFT":      Key(sdl.SCANCODE_LSHIFT),
		"LEFTSHIFT":  Key(sdl.SCANCODE_LSHIFT),
		"RIGHTSHIFT": Key(sdl.SCANCODE_RSHIFT),
		"CTRL":       Key(sdl.SCANCODE_LCTRL),
		"LEFTCTRL":   Key(sdl.SCANCODE_LCTRL),
		"RIGHTCTRL":  Key(sdl.SCANCODE_RCTRL),
		"ALT":        Key(sdl.SCANCODE_LALT),
		"LEFTALT":    Key(sdl.SCANCODE_LALT),
		"RIGHTALT":   Key(sdl.SCANCODE_RALT),
		"PGUP":       Key(sdl.SCANCODE_PAGEUP),
		"PGDN":       Key(sdl.SCANCODE_PAGEDOWN),
		"INS":        Key(sdl.SCANCODE_INSERT),
		"DEL":        Key(sdl.SCANCODE_DELETE),
		"HOME":       Key(sdl.SCANCODE_HOME),
		"END":        Key(sdl.SCANCODE_END),
	}

	// letters, digits and function keys are contiguous in the scancode space
	for i := 0; i < 26; i++ {
		names[string(rune('A'+i))] = Key(sdl.SCANCODE_A) + Key(i)
	}
	for i := 1; i <= 9; i++ {
		names[string(rune('0'+i))] = Key(sdl.SCANCODE_1) + Key(i-1)
	}
	names["0"] = Num0
	for i := 0; i < 12; i++ {
		names["F"+strconv.Itoa(i+1)] = Key(sdl.SCANCODE_F1) + Key(i)
	}
}

// Lookup returns the key for the name. The name is the part of a keyboard
// binding token after the "KEY_" prefix. For example, "F2" or "RIGHT".
//
// Common names are resolved without regard to letter case. All other names
// are resolved with SDL's own name lookup. Returns None if the name is not
// recognised.
func Lookup(name string) Key {
	if name == "" {
		return None
	}

	if k, ok := names[strings.ToUpper(name)]; ok {
		return k
	}

	k := Key(sdl.GetScancodeFromName(name))
	if !k.Valid() {
		return None
	}
	return k
}

// Index returns the numeric index of the named key, or -1 if the name is not
// recognised.
func Index(name string) int {
	k := Lookup(name)
	if k == None {
		return -1
	}
	return int(k)
}
