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
	"strings"

	"github.com/jetsetilly/vinput/keys"
)

// the prefix of tokens in a mapping string that refer to the keyboard. other
// tokens, JOY1_XAXIS or MOUSE_LEFT_BUTTON for example, belong to other input
// systems and are skipped over
const keyboardPrefix = "KEY_"

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == '+'
}

// ParseFirstKey returns the first keyboard key in a mapping string. For
// example, the mapping "JOY1_BUTTON1,KEY_A+KEY_B" returns keys.A.
//
// Tokens may be prefixed with a '!' negation marker, which is ignored. Only
// the first keyboard token is considered. Returns keys.None if there is no
// keyboard token or if the first one does not name a key.
func ParseFirstKey(mapping string) keys.Key {
	for _, tok := range strings.FieldsFunc(mapping, isSeparator) {
		tok = strings.TrimPrefix(tok, "!")
		if len(tok) > len(keyboardPrefix) && strings.HasPrefix(tok, keyboardPrefix) {
			return keys.Lookup(tok[len(keyboardPrefix):])
		}
	}
	return keys.None
}
