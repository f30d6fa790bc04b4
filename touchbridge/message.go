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

package touchbridge

import (
	"strings"

	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/touch"
	"github.com/jetsetilly/vinput/userinput"
	jsoniter "github.com/json-iterator/go"
)

// BadMessage is returned by Decode() for messages that do not describe an
// event.
const BadMessage = "touchbridge: bad message: %s"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message is the description of a single event. The same vocabulary is used
// on the wire and in macro scripts. Fields not used by a message type are
// ignored.
type Message struct {
	Type   string  `json:"type" yaml:"type"`
	Phase  string  `json:"phase,omitempty" yaml:"phase,omitempty"`
	ID     int64   `json:"id,omitempty" yaml:"id,omitempty"`
	X      float32 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float32 `json:"y,omitempty" yaml:"y,omitempty"`
	Key    string  `json:"key,omitempty" yaml:"key,omitempty"`
	Button string  `json:"button,omitempty" yaml:"button,omitempty"`
	Change string  `json:"change,omitempty" yaml:"change,omitempty"`
	Down   bool    `json:"down,omitempty" yaml:"down,omitempty"`
}

// reply is sent to the remote device when a message could not be decoded
type reply struct {
	Error string `json:"error"`
}

var buttons map[string]controllers.Button

func init() {
	buttons = make(map[string]controllers.Button)
	for b := controllers.ButtonA; b <= controllers.ButtonDPadRight; b++ {
		buttons[strings.ToLower(b.String())] = b
	}
}

// Decode a single JSON message.
func Decode(data []byte) (userinput.Event, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, curated.Errorf(BadMessage, err)
	}
	return msg.Event()
}

// Event returns the input event described by the message.
func (msg Message) Event() (userinput.Event, error) {
	switch strings.ToLower(msg.Type) {
	case "touch":
		ev := userinput.EventTouch{
			Contact: touch.ContactID(msg.ID),
			X:       msg.X,
			Y:       msg.Y,
		}
		switch strings.ToLower(msg.Phase) {
		case "down":
			ev.Phase = userinput.TouchDown
		case "motion", "move":
			ev.Phase = userinput.TouchMotion
		case "up":
			ev.Phase = userinput.TouchUp
		default:
			return nil, curated.Errorf(BadMessage, "unknown touch phase: "+msg.Phase)
		}
		return ev, nil

	case "key":
		k := keys.Lookup(strings.TrimPrefix(msg.Key, "KEY_"))
		if k == keys.None {
			return nil, curated.Errorf(BadMessage, "unknown key: "+msg.Key)
		}
		return userinput.EventKeyboard{Key: k, Down: msg.Down}, nil

	case "button":
		b, ok := buttons[strings.ToLower(msg.Button)]
		if !ok {
			return nil, curated.Errorf(BadMessage, "unknown button: "+msg.Button)
		}
		return userinput.EventControllerButton{Button: b, Down: msg.Down}, nil

	case "device":
		ev := userinput.EventControllerDevice{}
		switch strings.ToLower(msg.Change) {
		case "added":
			ev.Change = userinput.DeviceAdded
		case "removed":
			ev.Change = userinput.DeviceRemoved
		case "remapped":
			ev.Change = userinput.DeviceRemapped
		default:
			return nil, curated.Errorf(BadMessage, "unknown device change: "+msg.Change)
		}
		return ev, nil
	}

	return nil, curated.Errorf(BadMessage, "unknown type: "+msg.Type)
}
