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

// forget removes every live contact of the category
func (c *Classifier) forget(cat Category) {
	for id, v := range c.categories {
		if v == cat {
			delete(c.categories, id)
		}
	}
}

// SetGunTouch enables or disables the use of the touch surface as a light
// gun. Changing the mode releases the gun claim and resets the pointer.
func (c *Classifier) SetGunTouch(enabled bool) {
	if c.gunTouch == enabled {
		return
	}
	c.gunTouch = enabled
	c.gunActive = false
	c.gunContact = 0
	c.forget(CategoryGun)
	c.out.Pointer.Reset()
}

// GunTouch returns true if the touch surface is being used as a light gun.
func (c *Classifier) GunTouch() bool {
	return c.gunTouch
}

// SetAnalogGun enables or disables mirroring of the gun position into the
// virtual joystick. Changing the mode resets the virtual joystick.
func (c *Classifier) SetAnalogGun(enabled bool) {
	if c.analogGun == enabled {
		return
	}
	c.analogGun = enabled
	c.out.Axis.Reset()
}

// AnalogGun returns true if the gun position is mirrored into the virtual
// joystick.
func (c *Classifier) AnalogGun() bool {
	return c.analogGun
}

// SetVirtualWheel enables or disables the touch steering wheel. Changing the
// mode releases the wheel claim and resets the virtual joystick.
func (c *Classifier) SetVirtualWheel(enabled bool) {
	if c.virtualWheel == enabled {
		return
	}
	c.virtualWheel = enabled
	c.wheelActive = false
	c.wheelContact = 0
	c.forget(CategoryWheel)
	c.out.Axis.Reset()
}

// VirtualWheel returns true if the touch steering wheel is enabled. The wheel
// is only used if UseVirtualWheel() is also true.
func (c *Classifier) VirtualWheel() bool {
	return c.virtualWheel
}

// SetShifterMode sets the behaviour of the shifter contact. Changing the mode
// returns the shifter to neutral.
func (c *Classifier) SetShifterMode(mode ShifterMode) {
	if c.shifter == mode {
		return
	}
	c.shifter = mode
	c.lastGear = 0
}

// Shifter returns the current shifter mode.
func (c *Classifier) Shifter() ShifterMode {
	return c.shifter
}

// UseVirtualWheel returns true if the wheel contact steers. Physical
// controllers take precedence over the touch wheel.
func (c *Classifier) UseVirtualWheel() bool {
	return c.virtualWheel && !c.controllersConnected()
}

// UseVirtualJoystick returns true if the virtual joystick should be reported to
// the simulation core in place of physical controllers.
func (c *Classifier) UseVirtualJoystick() bool {
	return !c.controllersConnected() && (c.virtualWheel || c.analogGun)
}

// AimActive returns true if a contact is currently aiming the gun.
func (c *Classifier) AimActive() bool {
	return c.gunActive
}

func (c *Classifier) controllersConnected() bool {
	return c.out.Controllers != nil && c.out.Controllers.Count() > 0
}
