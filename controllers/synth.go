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

package controllers

import (
	"github.com/jetsetilly/vinput/bindings"
	"github.com/jetsetilly/vinput/keys"
)

// Synthesize presses keys in response to a small set of controller buttons,
// so that the cabinet buttons and menus can be operated from a controller
// without any JOY mappings in the configuration.
//
// Start, Back and Guide pulse the start, coin and service keys when pressed.
// Nothing happens when they are released and the pulse runs to completion.
// The d-pad buttons hold the joystick direction keys for as long as they are
// pressed.
//
// Returns false if the button has no synthesised key.
func Synthesize(state *keys.State, tbl *bindings.Table, button Button, down bool) bool {
	switch button {
	case ButtonStart:
		pulse(state, tbl.Binding(bindings.Start), down)
	case ButtonBack:
		pulse(state, tbl.Binding(bindings.Coin), down)
	case ButtonGuide:
		pulse(state, tbl.Binding(bindings.Service), down)
	case ButtonDPadUp:
		state.SetDual(tbl.Binding(bindings.JoyUp), down)
	case ButtonDPadDown:
		state.SetDual(tbl.Binding(bindings.JoyDown), down)
	case ButtonDPadLeft:
		state.SetDual(tbl.Binding(bindings.JoyLeft), down)
	case ButtonDPadRight:
		state.SetDual(tbl.Binding(bindings.JoyRight), down)
	default:
		return false
	}
	return true
}

func pulse(state *keys.State, d keys.Dual, down bool) {
	if down {
		state.PulseDual(d, keys.PulseDuration)
	}
}
