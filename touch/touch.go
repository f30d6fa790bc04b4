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

package touch

import (
	"github.com/jetsetilly/vinput/bindings"
)

// ContactID identifies a single touch contact from down to up.
type ContactID int64

// Reserved contact IDs. On-screen controls drawn by the host send their
// touches with these IDs rather than the ID given by the touch surface.
const (
	ContactWheel   ContactID = 1107
	ContactShifter ContactID = 1108
	ContactReload  ContactID = 1109
	ContactStick   ContactID = 1114
)

// reserved contact IDs bound directly to an action
var actionContacts = map[ContactID]bindings.Action{
	1110: bindings.Punch,
	1111: bindings.Kick,
	1112: bindings.Guard,
	1113: bindings.Escape,

	1115: bindings.SpikeShift,
	1116: bindings.SpikeBeat,
	1117: bindings.SpikeCharge,
	1118: bindings.SpikeJump,

	1120: bindings.FishingCast,
	1121: bindings.FishingSelect,
	1122: bindings.FishingReel,
	1123: bindings.FishingTension,

	1130: bindings.MagicalPedal1,
	1131: bindings.MagicalPedal2,

	1140: bindings.SkiPollLeft,
	1141: bindings.SkiPollRight,
	1142: bindings.SkiSelect1,
	1143: bindings.SkiSelect2,
}

// ActionContact returns the action bound to a reserved contact ID.
func ActionContact(id ContactID) (bindings.Action, bool) {
	a, ok := actionContacts[id]
	return a, ok
}

// Category is the interpretation given to a contact when it first touches
// the surface. The category does not change until the contact is lifted.
type Category int

// List of valid Category values in priority order.
const (
	CategoryNone Category = iota
	CategoryActionButton
	CategoryStick
	CategoryShifter
	CategoryWheel
	CategoryTap
	CategoryReload
	CategoryGun
	CategoryPedal
	CategoryDPad
)

var categoryNames = [...]string{
	"none", "action button", "stick", "shifter", "wheel", "tap", "reload",
	"gun", "pedal", "dpad",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown category"
	}
	return categoryNames[c]
}

// ShifterMode selects the behaviour of the shifter contact.
type ShifterMode int

// List of valid ShifterMode values.
const (
	ShifterNone ShifterMode = iota

	// H-pattern gearbox with four gears and neutral
	Shifter4

	// touching the upper or lower half shifts up or down
	ShifterUpDown
)

func (m ShifterMode) String() string {
	switch m {
	case Shifter4:
		return "4GEAR"
	case ShifterUpDown:
		return "UPDOWN"
	}
	return "NONE"
}

// ShifterModeFromString is the inverse of ShifterMode.String(). The second
// return value is false if the string is not recognised.
func ShifterModeFromString(s string) (ShifterMode, bool) {
	switch s {
	case "NONE":
		return ShifterNone, true
	case "4GEAR":
		return Shifter4, true
	case "UPDOWN":
		return ShifterUpDown, true
	}
	return ShifterNone, false
}
