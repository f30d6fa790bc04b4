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
	"github.com/jetsetilly/vinput/axis"
	"github.com/jetsetilly/vinput/bindings"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/pointer"
)

// Pulse durations, in milliseconds, for the pointer buttons pressed by the
// reload contact.
const (
	ReloadPulse  = 140
	TriggerPulse = 80
)

// Controllers reports the number of physical controllers. The virtual wheel is
// only used when there are no physical controllers.
type Controllers interface {
	Count() int
}

// Outputs are the state tables written to by the Classifier.
type Outputs struct {
	Keys        *keys.State
	Bindings    *bindings.Table
	Axis        *axis.State
	Pointer     *pointer.State
	Clock       keys.Clock
	Controllers Controllers
}

// the one or two directions held by a stick or d-pad contact
type heldDir struct {
	primary   keys.Dual
	secondary keys.Dual
}

// Classifier interprets touch contacts and drives the key, axis and pointer
// state accordingly.
//
// The category of a contact is decided when it first touches the surface and
// is kept until it is lifted. Motion and up events are routed by that
// category.
type Classifier struct {
	out Outputs

	// modes are set by the host and gate which categories are reachable
	gunTouch     bool
	analogGun    bool
	virtualWheel bool
	shifter      ShifterMode

	// category of every live contact. contacts that do not need motion or up
	// events (taps, reload and the up/down shifter) are not recorded
	categories map[ContactID]Category

	// keys held by stick and d-pad contacts
	dirs map[ContactID]heldDir

	// keys held by pedal contacts
	pedals map[ContactID]keys.Dual

	// the wheel and the gun can each be claimed by one contact at a time
	wheelActive  bool
	wheelContact ContactID
	gunActive    bool
	gunContact   ContactID

	// the most recently selected gear of the 4-gear shifter. zero is neutral
	lastGear int
}

// NewClassifier is the preferred method of initialisation for the Classifier
// type.
func NewClassifier(out Outputs) *Classifier {
	return &Classifier{
		out:        out,
		categories: make(map[ContactID]Category),
		dirs:       make(map[ContactID]heldDir),
		pedals:     make(map[ContactID]keys.Dual),
	}
}

// Reset forgets all contacts and claims. Keys held by contacts are not
// released. Modes are unchanged.
func (c *Classifier) Reset() {
	clear(c.categories)
	clear(c.dirs)
	clear(c.pedals)
	c.wheelActive = false
	c.wheelContact = 0
	c.gunActive = false
	c.gunContact = 0
	c.lastGear = 0
}

// Category returns the category of a live contact.
func (c *Classifier) Category(id ContactID) (Category, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

// NumContacts returns the number of live contacts.
func (c *Classifier) NumContacts() int {
	return len(c.categories)
}

// Down handles a contact touching the surface at the normalised position.
func (c *Classifier) Down(id ContactID, x, y float32) {
	// the host may send a second down event for a live contact
	if cat, ok := c.categories[id]; ok {
		c.redown(id, cat, x, y)
		return
	}

	cat := c.classify(id, x, y)
	switch cat {
	case CategoryNone, CategoryTap, CategoryReload:
		return
	case CategoryShifter:
		if c.shifter != Shifter4 {
			return
		}
	}
	c.categories[id] = cat
}

// classify decides the category of a new contact and performs its down
// action. The checks are in priority order.
func (c *Classifier) classify(id ContactID, x, y float32) Category {
	if a, ok := actionContacts[id]; ok {
		c.out.Keys.SetDual(c.binding(a), true)
		return CategoryActionButton
	}

	if id == ContactStick {
		c.stick(id, x, y)
		return CategoryStick
	}

	if id == ContactShifter && c.shifter != ShifterNone {
		c.shifterDown(x, y)
		return CategoryShifter
	}

	if id == ContactWheel && c.UseVirtualWheel() {
		c.wheelActive = true
		c.wheelContact = id
		c.out.Axis.SetSteer(x)
		return CategoryWheel
	}

	if a, ok := tapZone(x, y); ok {
		c.out.Keys.PulseDual(c.binding(a), keys.PulseDuration)
		return CategoryTap
	}

	if c.gunTouch {
		if id == ContactReload {
			now := c.out.Clock.Ticks()
			c.out.Pointer.PulseButton(pointer.ButtonRight, ReloadPulse, now)
			if !c.gunActive {
				c.out.Pointer.PulseButton(pointer.ButtonLeft, TriggerPulse, now)
			}
			return CategoryReload
		}

		// while gun mode is on every other contact is a potential aiming
		// contact. only the first is used and the rest are ignored
		if c.gunActive {
			return CategoryNone
		}
		c.gunActive = true
		c.gunContact = id
		c.aim(x, y)
		c.out.Pointer.SetButton(pointer.ButtonLeft, true)
		return CategoryGun
	}

	if inPedalZone(x, y) {
		c.pedal(id, x, y)
		return CategoryPedal
	}

	if inDPadZone(x, y) {
		c.dpad(id, x, y)
		return CategoryDPad
	}

	return CategoryNone
}

// redown handles a down event for a contact that is already live
func (c *Classifier) redown(id ContactID, cat Category, x, y float32) {
	switch cat {
	case CategoryActionButton:
		c.out.Keys.SetDual(c.binding(actionContacts[id]), true)
	case CategoryStick:
		c.stick(id, x, y)
	case CategoryShifter:
		if c.shifter == Shifter4 {
			c.shifterDown(x, y)
		}
	case CategoryPedal:
		c.pedal(id, x, y)
	case CategoryDPad:
		c.dpad(id, x, y)
	}

	// a second down on a claimed wheel or gun contact is ignored
}

// Motion handles movement of a live contact. Motion of contacts that were
// never classified is ignored.
func (c *Classifier) Motion(id ContactID, x, y float32) {
	cat, ok := c.categories[id]
	if !ok {
		return
	}

	switch cat {
	case CategoryStick:
		c.stick(id, x, y)

	case CategoryShifter:
		if c.shifter == Shifter4 {
			c.shifterMotion(x, y)
		}

	case CategoryWheel:
		if c.wheelActive && c.wheelContact == id {
			c.out.Axis.SetSteer(x)
		}

	case CategoryGun:
		if c.gunActive && c.gunContact == id {
			c.aim(x, y)
		}

	case CategoryPedal:
		c.pedal(id, x, y)

	case CategoryDPad:
		c.dpad(id, x, y)
	}
}

// Up handles a contact leaving the surface. The contact is forgotten.
func (c *Classifier) Up(id ContactID) {
	cat, ok := c.categories[id]
	if !ok {
		return
	}
	delete(c.categories, id)

	switch cat {
	case CategoryActionButton:
		c.out.Keys.SetDual(c.binding(actionContacts[id]), false)

	case CategoryStick, CategoryDPad:
		c.releaseDir(id)

	case CategoryPedal:
		c.releasePedal(id)

	case CategoryWheel:
		if c.wheelActive && c.wheelContact == id {
			c.out.Axis.SetSteer(0.5)
			c.wheelActive = false
			c.wheelContact = 0
		}

	case CategoryGun:
		if c.gunActive && c.gunContact == id {
			c.out.Pointer.SetButton(pointer.ButtonLeft, false)
			c.gunActive = false
			c.gunContact = 0
		}
	}
}

func (c *Classifier) binding(a bindings.Action) keys.Dual {
	return c.out.Bindings.Binding(a)
}

func (c *Classifier) releaseDir(id ContactID) {
	if h, ok := c.dirs[id]; ok {
		c.out.Keys.SetDual(h.primary, false)
		c.out.Keys.SetDual(h.secondary, false)
		delete(c.dirs, id)
	}
}

func (c *Classifier) holdDir(id ContactID, h heldDir) {
	c.out.Keys.SetDual(h.primary, true)
	c.out.Keys.SetDual(h.secondary, true)
	c.dirs[id] = h
}

func (c *Classifier) releasePedal(id ContactID) {
	if d, ok := c.pedals[id]; ok {
		c.out.Keys.SetDual(d, false)
		delete(c.pedals, id)
	}
}

// stick always releases the held directions before holding the new ones, even
// if they are the same
func (c *Classifier) stick(id ContactID, x, y float32) {
	c.releaseDir(id)

	dirs, ok := stickDirection(x, y)
	if !ok {
		return
	}

	var h heldDir
	h.primary = c.binding(dirs[0])
	if dirs[1] != bindings.NumActions {
		h.secondary = c.binding(dirs[1])
	}
	c.holdDir(id, h)
}

func (c *Classifier) dpad(id ContactID, x, y float32) {
	c.releaseDir(id)
	if !inDPadZone(x, y) {
		return
	}
	c.holdDir(id, heldDir{primary: c.binding(dpadAt(x, y))})
}

func (c *Classifier) pedal(id ContactID, x, y float32) {
	c.releasePedal(id)
	if !inPedalZone(x, y) {
		return
	}
	d := c.binding(pedalAt(y))
	c.out.Keys.SetDual(d, true)
	c.pedals[id] = d
}

func (c *Classifier) shifterDown(x, y float32) {
	switch c.shifter {
	case Shifter4:
		c.selectGear(gearAt(x, y))
	case ShifterUpDown:
		if y < 0.5 {
			c.out.Keys.PulseDual(c.binding(bindings.ShiftUp), keys.PulseDuration)
		} else {
			c.out.Keys.PulseDual(c.binding(bindings.ShiftDown), keys.PulseDuration)
		}
	}
}

// motion through the neutral zone does not select neutral. a fast sweep from
// one gear to another would otherwise shift into neutral on the way
func (c *Classifier) shifterMotion(x, y float32) {
	gear := gearAt(x, y)
	if gear == 0 {
		return
	}
	c.selectGear(gear)
}

// selectGear pulses the key for the gear only if the gear has changed
func (c *Classifier) selectGear(gear int) {
	if gear == c.lastGear {
		return
	}
	c.out.Keys.PulseDual(c.binding(gears[gear]), keys.PulseDuration)
	c.lastGear = gear
}

// LastGear returns the most recently selected gear of the 4-gear shifter.
// Zero is neutral.
func (c *Classifier) LastGear() int {
	return c.lastGear
}

func (c *Classifier) aim(x, y float32) {
	c.out.Pointer.SetPositionFromNormalized(x, y)
	if c.analogGun {
		c.out.Axis.SetJoy(x, y)
	}
}
