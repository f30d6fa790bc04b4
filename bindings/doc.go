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

// Package bindings maps named actions to the logical keys they drive.
//
// Bindings are taken from configuration mapping strings of the form used by
// the simulation core's own input system. For example:
//
//	InputCoin1 = "KEY_5,JOY1_BUTTON9"
//
// Only the keyboard tokens of a mapping are meaningful here. The first
// keyboard token that names a real key is used and everything else is ignored.
//
// The four horizontal direction actions are bound as dual keys. When the
// joystick-left and steering-left keys are configured differently, pressing
// either action presses both keys.
package bindings
