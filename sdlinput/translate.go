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
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/touch"
	"github.com/jetsetilly/vinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Translate converts an SDL event to a userinput event. Returns false if the
// SDL event has no meaning to the input system.
//
// Repeated key events are dropped.
func Translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.TouchFingerEvent:
		var phase userinput.TouchPhase
		switch ev.Type {
		case sdl.FINGERDOWN:
			phase = userinput.TouchDown
		case sdl.FINGERMOTION:
			phase = userinput.TouchMotion
		case sdl.FINGERUP:
			phase = userinput.TouchUp
		default:
			return nil, false
		}
		return userinput.EventTouch{
			Phase:   phase,
			Contact: touch.ContactID(ev.FingerID),
			X:       ev.X,
			Y:       ev.Y,
		}, true

	case *sdl.ControllerDeviceEvent:
		var change userinput.DeviceChange
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			change = userinput.DeviceAdded
		case sdl.CONTROLLERDEVICEREMOVED:
			change = userinput.DeviceRemoved
		case sdl.CONTROLLERDEVICEREMAPPED:
			change = userinput.DeviceRemapped
		default:
			return nil, false
		}
		return userinput.EventControllerDevice{Change: change}, true

	case *sdl.ControllerButtonEvent:
		b, ok := fromSDL[sdl.GameControllerButton(ev.Button)]
		if !ok {
			return nil, false
		}
		return userinput.EventControllerButton{
			Button: b,
			Down:   ev.State == sdl.PRESSED,
		}, true

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil, false
		}
		return userinput.EventKeyboard{
			Key:  keys.Key(ev.Keysym.Scancode),
			Down: ev.State == sdl.PRESSED,
		}, true
	}

	return nil, false
}
