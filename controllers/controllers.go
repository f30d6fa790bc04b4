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

// Axis identifies one of the six analog axes of a controller.
type Axis int

// List of valid Axis values. The names follow the joystick convention of the
// simulation core. The comment shows the game controller input read for each
// axis.
const (
	AxisX  Axis = iota // left stick horizontal
	AxisY              // left stick vertical
	AxisZ              // left trigger
	AxisRX             // right stick horizontal
	AxisRY             // right stick vertical
	AxisRZ             // right trigger
	NumAxes
)

var axisNames = [NumAxes]string{"X", "Y", "Z", "RX", "RY", "RZ"}

func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return "unknown axis"
	}
	return axisNames[a]
}

// Button identifies a controller button by its ordinal. The ordinals are the
// button numbers seen by the simulation core.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonBack
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonPaddle1
	ButtonPaddle2
	ButtonGuide
	ButtonPaddle3
	ButtonPaddle4
	ButtonMisc1
	ButtonTouchpad

	// NumButtons is the number of buttons with an ordinal
	NumButtons
)

// The d-pad buttons are not visible to the simulation core as buttons. They
// are read as POV directions and can be sent as button events to synthesise
// key presses.
const (
	ButtonDPadUp Button = NumButtons + iota
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = [...]string{
	"A", "B", "X", "Y", "LeftShoulder", "RightShoulder", "Back", "Start",
	"LeftStick", "RightStick", "Paddle1", "Paddle2", "Guide", "Paddle3",
	"Paddle4", "Misc1", "Touchpad", "DPadUp", "DPadDown", "DPadLeft",
	"DPadRight",
}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown button"
	}
	return buttonNames[b]
}

// POV is a direction of the point-of-view hat. Controllers report the d-pad
// as the POV hat.
type POV int

// List of valid POV values.
const (
	POVUp POV = iota
	POVDown
	POVLeft
	POVRight
	NumPOVs
)

// Button returns the d-pad button for the POV direction.
func (p POV) Button() Button {
	return ButtonDPadUp + Button(p)
}

// Any selects every connected controller when passed as the controller index
// to a Registry query.
const Any = -1

// Device is a single connected controller.
type Device interface {
	// Name of the controller as reported by the device.
	Name() string

	// Axis returns the current value of the axis. The range is the full range
	// of int16.
	Axis(Axis) int16

	// Button returns true if the button is down. Includes the d-pad buttons.
	Button(Button) bool

	// Close releases the device. The Device will not be used again.
	Close()
}

// Enumerator opens the controllers currently connected to the system.
type Enumerator interface {
	// NumDevices returns the number of devices that OpenDevice() may be
	// called for.
	NumDevices() int

	// OpenDevice opens the device at the index. A nil Device and nil error
	// indicates that the device at the index is not a controller and should
	// be skipped.
	OpenDevice(idx int) (Device, error)
}

// Snapshot describes a connected controller.
type Snapshot struct {
	ID         int
	Name       string
	HasAxis    [NumAxes]bool
	NumButtons int
	NumPOVs    int
}
