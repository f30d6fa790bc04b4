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

// Package touch interprets contacts on a multi-touch surface as key presses,
// steering, light gun aiming and gear changes.
//
// Each contact is given a category when it first touches the surface. The
// category is chosen by checking the following in order, with the first
// match winning:
//
//	action button   reserved contact IDs bound to a single action
//	stick           the reserved stick contact. eight directions
//	shifter         the reserved shifter contact, if a shifter mode is set
//	wheel           the reserved wheel contact, if the virtual wheel is in use
//	tap             the four corner zones. coin, start, service and test
//	reload          the reserved reload contact, if gun mode is on
//	gun             any other contact, if gun mode is on
//	pedal           the throttle and brake zone on the right
//	dpad            the four direction zone on the left
//
// Contacts matching none of these are ignored. The category is kept for the
// life of the contact, so a finger that slides from the pedal zone into the
// d-pad zone is still a pedal contact (and holds nothing while it is outside
// the pedal zone).
//
// Positions are normalised, with (0,0) the top-left corner of the surface and
// (1,1) the bottom-right. Reserved contacts are drawn by the host and their
// positions are relative to the control rather than the surface.
//
// Momentary actions are pulsed with keys.PulseDuration so that the simulation
// core sees a clean press and release.
package touch
