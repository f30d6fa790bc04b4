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
	"strings"

	"github.com/jetsetilly/vinput/axis"
	"github.com/jetsetilly/vinput/bindings"
	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/pointer"
	"github.com/jetsetilly/vinput/touch"
)

// System is the input system as seen by the simulation core. Events are sent
// to the System with HandleEvent() and the state is read once per frame,
// after a call to Poll().
//
// System is not safe for concurrent use. Events, Poll() and queries must all
// happen on the same goroutine.
type System struct {
	clock keys.Clock

	keys        *keys.State
	bindings    *bindings.Table
	axis        axis.State
	pointer     pointer.State
	controllers *controllers.Registry
	touch       *touch.Classifier

	// Prefs can be used to change the touch modes by name
	Prefs *Preferences

	// is true if last event was a quit event
	Quit bool
}

// NewSystem is the preferred method of initialisation for the System type.
// The enumerator is used to open controllers and may be nil if there are no
// controllers on the platform.
//
// The System should be initialised with Initialise() before use.
func NewSystem(clock keys.Clock, enum controllers.Enumerator) *System {
	sys := &System{
		clock:       clock,
		keys:        keys.NewState(clock),
		bindings:    bindings.NewTable(),
		controllers: controllers.NewRegistry(enum),
	}

	sys.touch = touch.NewClassifier(touch.Outputs{
		Keys:        sys.keys,
		Bindings:    sys.bindings,
		Axis:        &sys.axis,
		Pointer:     &sys.pointer,
		Clock:       clock,
		Controllers: sys.controllers,
	})

	sys.Prefs = newPreferences(sys)

	return sys
}

// Initialise releases all keys and buttons, forgets all touch contacts and
// opens the connected controllers. Modes and bindings are unchanged.
func (sys *System) Initialise() {
	sys.keys.Reset()
	sys.touch.Reset()
	sys.pointer.Reset()
	sys.axis.Reset()
	sys.controllers.Refresh()
}

// Close the controllers.
func (sys *System) Close() {
	sys.controllers.Close()
}

// ApplyConfig rebuilds the binding table from the configuration. The
// configuration maps action names (eg. "InputCoin1") to mapping strings (eg.
// "KEY_5,JOY1_BUTTON9"). Bindings not in the configuration return to their
// defaults.
func (sys *System) ApplyConfig(cfg map[string]string) {
	unresolved := sys.bindings.Apply(cfg)
	if len(unresolved) > 0 {
		logger.Logf(logger.Allow, "bindings", "no keyboard key for: %s", strings.Join(unresolved, ", "))
	}
}

// Binding returns the keys currently bound to the action.
func (sys *System) Binding(a bindings.Action) keys.Dual {
	return sys.bindings.Binding(a)
}

// HandleEvent deciphers the Event and updates the input state.
func (sys *System) HandleEvent(ev Event) {
	sys.Quit = false

	switch ev := ev.(type) {
	case EventQuit:
		sys.Quit = true
	case EventTouch:
		sys.handleTouch(ev)
	case EventControllerDevice:
		sys.controllers.Refresh()
	case EventControllerButton:
		controllers.Synthesize(sys.keys, sys.bindings, ev.Button, ev.Down)
	case EventKeyboard:
		sys.keys.Set(ev.Key, ev.Down)
	default:
	}
}

func (sys *System) handleTouch(ev EventTouch) {
	switch ev.Phase {
	case TouchDown:
		sys.touch.Down(ev.Contact, ev.X, ev.Y)
	case TouchMotion:
		sys.touch.Motion(ev.Contact, ev.X, ev.Y)
	case TouchUp:
		sys.touch.Up(ev.Contact)
	}
}

// Poll releases keys and pointer buttons whose pulse has expired. Should be
// called once per frame, before the state is queried.
func (sys *System) Poll() {
	now := sys.clock.Ticks()
	sys.keys.Poll(now)
	sys.pointer.Poll(now)
}

// SetGunTouch sets whether the touch surface is used as a light gun.
func (sys *System) SetGunTouch(enabled bool) {
	sys.touch.SetGunTouch(enabled)
}

// SetAnalogGun sets whether the light gun position is also reported as a
// joystick.
func (sys *System) SetAnalogGun(enabled bool) {
	sys.touch.SetAnalogGun(enabled)
}

// SetVirtualWheel sets whether the wheel contact steers the virtual joystick.
func (sys *System) SetVirtualWheel(enabled bool) {
	sys.touch.SetVirtualWheel(enabled)
}

// SetShifterMode sets the behaviour of the shifter contact.
func (sys *System) SetShifterMode(mode touch.ShifterMode) {
	sys.touch.SetShifterMode(mode)
}

// Touch returns the touch classifier. Useful for inspecting the state of
// contacts.
func (sys *System) Touch() *touch.Classifier {
	return sys.touch
}
