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
	"github.com/jetsetilly/vinput/touch"
)

// Event represents all the different types of input event that can be handled
// by the System.
type Event interface{}

// EventQuit is sent when the host wants to stop.
type EventQuit struct{}

// TouchPhase is the stage of a contact's life.
type TouchPhase int

// List of valid TouchPhase values.
const (
	TouchDown TouchPhase = iota
	TouchMotion
	TouchUp
)

func (p TouchPhase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchMotion:
		return "motion"
	case TouchUp:
		return "up"
	}
	return "unknown"
}

// EventTouch is sent for every change to a contact on the touch surface. The
// X and Y coordinates are normalised to the range 0.0 to 1.0.
type EventTouch struct {
	Phase   TouchPhase
	Contact touch.ContactID
	X       float32
	Y       float32
}

// DeviceChange is the type of change to the list of controllers.
type DeviceChange int

// List of valid DeviceChange values.
const (
	DeviceAdded DeviceChange = iota
	DeviceRemoved
	DeviceRemapped
)

// EventControllerDevice is sent when a controller is connected, disconnected
// or has its mapping changed.
type EventControllerDevice struct {
	Change DeviceChange
}

// EventControllerButton is sent when a controller button changes state.
type EventControllerButton struct {
	Button controllers.Button
	Down   bool
}

// EventKeyboard is sent when a physical key changes state. Repeated key events
// should not be sent.
type EventKeyboard struct {
	Key  keys.Key
	Down bool
}
