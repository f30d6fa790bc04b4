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

package userinput

import (
	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/pointer"
)

// Any selects every device when passed as the device index to a query.
const Any = controllers.Any

// IsKeyPressed returns true if the key is down. Invalid keys are never down.
func (sys *System) IsKeyPressed(k keys.Key) bool {
	return sys.keys.IsPressed(k)
}

// PressedKeys returns every key that is down, in key order.
func (sys *System) PressedKeys() []keys.Key {
	return sys.keys.Pressed()
}

// KeyIndex returns the key for the name, as used in configuration files,
// without the KEY_ prefix. Returns -1 if the name is not recognised.
func (sys *System) KeyIndex(name string) int {
	return keys.Index(name)
}

// KeyName returns the name of the key. Returns the empty string for invalid
// keys.
func (sys *System) KeyName(k keys.Key) string {
	return k.String()
}

// MouseDetails describes the pointing device.
type MouseDetails struct {
	Name       string
	IsAbsolute bool
}

// NumMice returns the number of pointing devices. There is a pointing device
// only when the touch surface is being used as a light gun.
func (sys *System) NumMice() int {
	if sys.touch.GunTouch() {
		return 1
	}
	return 0
}

// MouseDetails returns the description of the pointing device.
func (sys *System) MouseDetails(which int) (MouseDetails, bool) {
	if !sys.mouse(which) {
		return MouseDetails{}, false
	}
	return MouseDetails{Name: "Touchscreen", IsAbsolute: true}, true
}

// mouse returns true if which selects the pointing device and the device
// exists
func (sys *System) mouse(which int) bool {
	return sys.touch.GunTouch() && (which == Any || which == 0)
}

// PointerPosition returns the position of the pointing device in the pointer
// coordinate space. In analog gun mode the position is always the centre of
// the space, so that the gun is read from the joystick instead.
func (sys *System) PointerPosition(which int) (int, int) {
	if !sys.mouse(which) {
		return 0, 0
	}
	if sys.touch.AnalogGun() {
		return pointer.Width / 2, pointer.Height / 2
	}
	return sys.pointer.Position()
}

// PointerButton returns true if the pointer button is down.
func (sys *System) PointerButton(which int, button int) bool {
	if !sys.mouse(which) {
		return false
	}
	return sys.pointer.Button(button)
}

// PointerWheelDir returns the direction of the most recent wheel movement.
func (sys *System) PointerWheelDir(which int) int {
	if !sys.mouse(which) {
		return 0
	}
	return sys.pointer.WheelDir()
}

// NumJoysticks returns the number of joysticks. When no controller is
// connected and the virtual wheel or analog gun is enabled there is a single
// virtual joystick.
func (sys *System) NumJoysticks() int {
	if sys.touch.UseVirtualJoystick() {
		return 1
	}
	return sys.controllers.Count()
}

// JoyDetails returns the description of the joystick.
func (sys *System) JoyDetails(which int) (controllers.Snapshot, bool) {
	if sys.touch.UseVirtualJoystick() {
		if which != Any && which != 0 {
			return controllers.Snapshot{}, false
		}
		return sys.virtualJoystick(), true
	}
	if which == Any {
		which = 0
	}
	return sys.controllers.Snapshot(which)
}

func (sys *System) virtualJoystick() controllers.Snapshot {
	snap := controllers.Snapshot{Name: "Touch Controls"}
	switch {
	case sys.touch.VirtualWheel() && !sys.touch.AnalogGun():
		snap.Name = "Touch Wheel"
	case sys.touch.AnalogGun() && !sys.touch.VirtualWheel():
		snap.Name = "Touch Gun"
	}
	snap.HasAxis[controllers.AxisX] = true
	snap.HasAxis[controllers.AxisY] = sys.touch.AnalogGun()
	return snap
}

// JoyAxis returns the value of the joystick axis. For the virtual joystick,
// only the X axis is reported unless analog gun mode is enabled.
func (sys *System) JoyAxis(which int, axis controllers.Axis) int16 {
	if sys.touch.UseVirtualJoystick() {
		if which != Any && which != 0 {
			return 0
		}
		switch axis {
		case controllers.AxisX:
			return sys.axis.X
		case controllers.AxisY:
			if sys.touch.AnalogGun() {
				return sys.axis.Y
			}
		}
		return 0
	}
	return sys.controllers.Axis(which, axis)
}

// JoyButton returns true if the joystick button is down. The virtual joystick
// has no buttons.
func (sys *System) JoyButton(which int, button controllers.Button) bool {
	return sys.controllers.Button(which, button)
}

// JoyPOV returns true if the joystick POV hat is in the direction. The virtual
// joystick has no POV hat.
func (sys *System) JoyPOV(which int, dir controllers.POV) bool {
	return sys.controllers.POV(which, dir)
}
