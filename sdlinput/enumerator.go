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

package sdlinput

import (
	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/curated"
	"github.com/veandco/go-sdl2/sdl"
)

// CannotOpen is returned by OpenDevice() when SDL fails to open a game
// controller.
const CannotOpen = "sdlinput: cannot open controller %d: %v"

// Enumerator implements the controllers.Enumerator interface for SDL game
// controllers. Joysticks that SDL does not recognise as game controllers are
// skipped.
type Enumerator struct{}

// NumDevices implements the controllers.Enumerator interface.
func (Enumerator) NumDevices() int {
	return sdl.NumJoysticks()
}

// OpenDevice implements the controllers.Enumerator interface.
func (Enumerator) OpenDevice(idx int) (controllers.Device, error) {
	if !sdl.IsGameController(idx) {
		return nil, nil
	}

	gc := sdl.GameControllerOpen(idx)
	if gc == nil || !gc.Attached() {
		return nil, curated.Errorf(CannotOpen, idx, sdl.GetError())
	}

	return &pad{gc: gc}, nil
}

var axes = [controllers.NumAxes]sdl.GameControllerAxis{
	controllers.AxisX:  sdl.CONTROLLER_AXIS_LEFTX,
	controllers.AxisY:  sdl.CONTROLLER_AXIS_LEFTY,
	controllers.AxisZ:  sdl.CONTROLLER_AXIS_TRIGGERLEFT,
	controllers.AxisRX: sdl.CONTROLLER_AXIS_RIGHTX,
	controllers.AxisRY: sdl.CONTROLLER_AXIS_RIGHTY,
	controllers.AxisRZ: sdl.CONTROLLER_AXIS_TRIGGERRIGHT,
}

// buttons maps controller ordinals to SDL buttons and back. the d-pad buttons
// come after the ordinals
var buttons = map[controllers.Button]sdl.GameControllerButton{
	controllers.ButtonA:             sdl.CONTROLLER_BUTTON_A,
	controllers.ButtonB:             sdl.CONTROLLER_BUTTON_B,
	controllers.ButtonX:             sdl.CONTROLLER_BUTTON_X,
	controllers.ButtonY:             sdl.CONTROLLER_BUTTON_Y,
	controllers.ButtonLeftShoulder:  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	controllers.ButtonRightShoulder: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	controllers.ButtonBack:          sdl.CONTROLLER_BUTTON_BACK,
	controllers.ButtonStart:         sdl.CONTROLLER_BUTTON_START,
	controllers.ButtonLeftStick:     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	controllers.ButtonRightStick:    sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	controllers.ButtonPaddle1:       sdl.CONTROLLER_BUTTON_PADDLE1,
	controllers.ButtonPaddle2:       sdl.CONTROLLER_BUTTON_PADDLE2,
	controllers.ButtonGuide:         sdl.CONTROLLER_BUTTON_GUIDE,
	controllers.ButtonPaddle3:       sdl.CONTROLLER_BUTTON_PADDLE3,
	controllers.ButtonPaddle4:       sdl.CONTROLLER_BUTTON_PADDLE4,
	controllers.ButtonMisc1:         sdl.CONTROLLER_BUTTON_MISC1,
	controllers.ButtonTouchpad:      sdl.CONTROLLER_BUTTON_TOUCHPAD,
	controllers.ButtonDPadUp:        sdl.CONTROLLER_BUTTON_DPAD_UP,
	controllers.ButtonDPadDown:      sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	controllers.ButtonDPadLeft:      sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	controllers.ButtonDPadRight:     sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
}

var fromSDL map[sdl.GameControllerButton]controllers.Button

func init() {
	fromSDL = make(map[sdl.GameControllerButton]controllers.Button, len(buttons))
	for b, s := range buttons {
		fromSDL[s] = b
	}
}

// pad implements the controllers.Device interface
type pad struct {
	gc *sdl.GameController
}

func (p *pad) Name() string {
	return p.gc.Name()
}

func (p *pad) Axis(a controllers.Axis) int16 {
	if a < 0 || a >= controllers.NumAxes {
		return 0
	}
	return p.gc.Axis(axes[a])
}

func (p *pad) Button(b controllers.Button) bool {
	s, ok := buttons[b]
	if !ok {
		return false
	}
	return p.gc.Button(s) == sdl.PRESSED
}

func (p *pad) Close() {
	p.gc.Close()
}
