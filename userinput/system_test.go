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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/vinput/bindings"
	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/pointer"
	"github.com/jetsetilly/vinput/test"
	"github.com/jetsetilly/vinput/touch"
	"github.com/jetsetilly/vinput/userinput"
)

type pad struct {
	axes [controllers.NumAxes]int16
}

func (p *pad) Name() string                     { return "" }
func (p *pad) Axis(a controllers.Axis) int16    { return p.axes[a] }
func (p *pad) Button(b controllers.Button) bool { return b == controllers.ButtonA }
func (p *pad) Close()                           {}

type enum struct {
	pads []*pad
}

func (e *enum) NumDevices() int {
	return len(e.pads)
}

func (e *enum) OpenDevice(idx int) (controllers.Device, error) {
	return e.pads[idx], nil
}

func newSystem(pads ...*pad) (*userinput.System, *keys.ManualClock) {
	clk := &keys.ManualClock{}
	sys := userinput.NewSystem(clk, &enum{pads: pads})
	sys.Initialise()
	return sys, clk
}

func touchEvent(phase userinput.TouchPhase, id touch.ContactID, x, y float32) userinput.Event {
	return userinput.EventTouch{Phase: phase, Contact: id, X: x, Y: y}
}

func TestKeyboard(t *testing.T) {
	sys, _ := newSystem()
	sys.HandleEvent(userinput.EventKeyboard{Key: keys.Q, Down: true})
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Q))
	sys.HandleEvent(userinput.EventKeyboard{Key: keys.Q, Down: false})
	test.ExpectFailure(t, sys.IsKeyPressed(keys.Q))
	test.ExpectFailure(t, sys.IsKeyPressed(keys.None))
}

func TestQuit(t *testing.T) {
	sys, _ := newSystem()
	sys.HandleEvent(userinput.EventQuit{})
	test.ExpectSuccess(t, sys.Quit)
	sys.HandleEvent(userinput.EventKeyboard{Key: keys.Q, Down: true})
	test.ExpectFailure(t, sys.Quit)
}

func TestTapPulse(t *testing.T) {
	sys, clk := newSystem()
	clk.Set(1000)

	// coin tap zone
	sys.HandleEvent(touchEvent(userinput.TouchDown, 1, 0.1, 0.9))
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Num5))

	// the up event does not end a pulse
	sys.HandleEvent(touchEvent(userinput.TouchUp, 1, 0.1, 0.9))
	sys.Poll()
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Num5))

	clk.Advance(keys.PulseDuration - 1)
	sys.Poll()
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Num5))

	clk.Advance(1)
	sys.Poll()
	test.ExpectFailure(t, sys.IsKeyPressed(keys.Num5))
}

func TestApplyConfig(t *testing.T) {
	sys, _ := newSystem()
	sys.ApplyConfig(map[string]string{
		"InputCoin1":  "KEY_C,JOY1_BUTTON9",
		"InputStart1": "JOY1_BUTTON10",
	})
	test.ExpectEquality(t, sys.Binding(bindings.Coin), keys.Single(keys.Lookup("C")))
	test.ExpectEquality(t, sys.Binding(bindings.Start), keys.Single(keys.Num1))

	sys.HandleEvent(touchEvent(userinput.TouchDown, 1110, 0.5, 0.5))
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.A))
}

func TestControllerButtons(t *testing.T) {
	sys, clk := newSystem(&pad{})

	sys.HandleEvent(userinput.EventControllerButton{Button: controllers.ButtonBack, Down: true})
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Num5))
	sys.HandleEvent(userinput.EventControllerButton{Button: controllers.ButtonBack, Down: false})
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Num5))
	clk.Advance(keys.PulseDuration)
	sys.Poll()
	test.ExpectFailure(t, sys.IsKeyPressed(keys.Num5))

	sys.HandleEvent(userinput.EventControllerButton{Button: controllers.ButtonDPadUp, Down: true})
	test.ExpectSuccess(t, sys.IsKeyPressed(keys.Up))
	sys.HandleEvent(userinput.EventControllerButton{Button: controllers.ButtonDPadUp, Down: false})
	test.ExpectFailure(t, sys.IsKeyPressed(keys.Up))
}

func TestControllerQueries(t *testing.T) {
	a := &pad{}
	a.axes[controllers.AxisX] = -100
	b := &pad{}
	b.axes[controllers.AxisX] = 2000
	sys, _ := newSystem(a, b)

	test.ExpectEquality(t, sys.NumJoysticks(), 2)
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisX), int16(2000))
	test.ExpectEquality(t, sys.JoyAxis(0, controllers.AxisX), int16(-100))
	test.ExpectSuccess(t, sys.JoyButton(userinput.Any, controllers.ButtonA))
	test.ExpectFailure(t, sys.JoyButton(userinput.Any, controllers.ButtonB))

	snap, ok := sys.JoyDetails(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, snap.Name, "GameController")

	// virtual wheel is not used while controllers are connected
	sys.SetVirtualWheel(true)
	test.ExpectEquality(t, sys.NumJoysticks(), 2)
}

func TestVirtualJoystick(t *testing.T) {
	sys, _ := newSystem()
	test.ExpectEquality(t, sys.NumJoysticks(), 0)

	sys.SetVirtualWheel(true)
	test.ExpectEquality(t, sys.NumJoysticks(), 1)
	snap, ok := sys.JoyDetails(userinput.Any)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, snap.Name, "Touch Wheel")
	test.ExpectSuccess(t, snap.HasAxis[controllers.AxisX])
	test.ExpectFailure(t, snap.HasAxis[controllers.AxisY])
	_, ok = sys.JoyDetails(1)
	test.ExpectFailure(t, ok)

	sys.HandleEvent(touchEvent(userinput.TouchDown, touch.ContactWheel, 1.0, 0.5))
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisX), int16(32767))
	test.ExpectEquality(t, sys.JoyAxis(1, controllers.AxisX), int16(0))
	sys.HandleEvent(touchEvent(userinput.TouchUp, touch.ContactWheel, 1.0, 0.5))
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisX), int16(0))

	sys.SetAnalogGun(true)
	snap, _ = sys.JoyDetails(0)
	test.ExpectEquality(t, snap.Name, "Touch Controls")
	test.ExpectSuccess(t, snap.HasAxis[controllers.AxisY])

	sys.SetVirtualWheel(false)
	snap, _ = sys.JoyDetails(0)
	test.ExpectEquality(t, snap.Name, "Touch Gun")
}

func TestGun(t *testing.T) {
	sys, clk := newSystem()
	test.ExpectEquality(t, sys.NumMice(), 0)
	_, ok := sys.MouseDetails(userinput.Any)
	test.ExpectFailure(t, ok)

	sys.SetGunTouch(true)
	test.ExpectEquality(t, sys.NumMice(), 1)
	details, ok := sys.MouseDetails(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, details.Name, "Touchscreen")
	test.ExpectSuccess(t, details.IsAbsolute)

	sys.HandleEvent(touchEvent(userinput.TouchDown, 1, 0.5, 0.5))
	x, y := sys.PointerPosition(userinput.Any)
	test.ExpectEquality(t, x, 248)
	test.ExpectEquality(t, y, 192)
	test.ExpectSuccess(t, sys.PointerButton(0, pointer.ButtonLeft))
	test.ExpectFailure(t, sys.PointerButton(1, pointer.ButtonLeft))

	sys.HandleEvent(touchEvent(userinput.TouchMotion, 1, 0.0, 1.0))
	x, y = sys.PointerPosition(userinput.Any)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, pointer.Height-1)

	sys.HandleEvent(touchEvent(userinput.TouchUp, 1, 0.0, 1.0))
	test.ExpectFailure(t, sys.PointerButton(0, pointer.ButtonLeft))

	// reload without an active gun contact also pulls the trigger
	sys.HandleEvent(touchEvent(userinput.TouchDown, touch.ContactReload, 0.5, 0.5))
	test.ExpectSuccess(t, sys.PointerButton(0, pointer.ButtonRight))
	test.ExpectSuccess(t, sys.PointerButton(0, pointer.ButtonLeft))
	clk.Advance(touch.ReloadPulse)
	sys.Poll()
	test.ExpectFailure(t, sys.PointerButton(0, pointer.ButtonRight))
	test.ExpectFailure(t, sys.PointerButton(0, pointer.ButtonLeft))
}

func TestAnalogGunPointer(t *testing.T) {
	sys, _ := newSystem()
	sys.SetGunTouch(true)
	sys.SetAnalogGun(true)

	sys.HandleEvent(touchEvent(userinput.TouchDown, 1, 0.0, 0.5))
	x, y := sys.PointerPosition(userinput.Any)
	test.ExpectEquality(t, x, pointer.Width/2)
	test.ExpectEquality(t, y, pointer.Height/2)
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisX), int16(-32767))
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisY), int16(0))

	sys.HandleEvent(touchEvent(userinput.TouchMotion, 1, 1.0, 1.0))
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisX), int16(32767))
	test.ExpectEquality(t, sys.JoyAxis(userinput.Any, controllers.AxisY), int16(32767))
}

func TestPreferences(t *testing.T) {
	sys, _ := newSystem()

	err := sys.Prefs.Apply(map[string]string{
		"userinput.GunTouch": "true",
		"userinput.shifter":  "4GEAR",
		"unrelated":          "value",
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sys.Touch().GunTouch())
	test.ExpectEquality(t, sys.Touch().Shifter(), touch.Shifter4)

	err = sys.Prefs.Apply(map[string]string{"userinput.shifter": "5GEAR"})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, sys.Touch().Shifter(), touch.Shifter4)

	test.ExpectSuccess(t, sys.Prefs.SetDefaults())
	test.ExpectFailure(t, sys.Touch().GunTouch())
	test.ExpectEquality(t, sys.Touch().Shifter(), touch.ShifterNone)
}

func TestKeyNames(t *testing.T) {
	sys, _ := newSystem()
	test.ExpectEquality(t, sys.KeyIndex("RIGHT"), int(keys.Right))
	test.ExpectEquality(t, sys.KeyIndex("nothing"), -1)
	test.ExpectEquality(t, sys.KeyName(keys.None), "")

	sys.HandleEvent(userinput.EventKeyboard{Key: keys.W, Down: true})
	sys.HandleEvent(userinput.EventKeyboard{Key: keys.A, Down: true})
	test.ExpectEquality(t, len(sys.PressedKeys()), 2)
	test.ExpectEquality(t, sys.PressedKeys()[0], keys.A)
}
