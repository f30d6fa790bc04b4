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

// Package touchbridge is a source of input events for hosts without a touch
// surface of their own. A remote device (for example a phone running a web
// page that draws the touch overlay) connects over a websocket and sends one
// JSON message per event:
//
//	{"type": "touch", "phase": "down", "id": 1110, "x": 0.5, "y": 0.5}
//	{"type": "key", "key": "F2", "down": true}
//	{"type": "button", "button": "Start", "down": true}
//	{"type": "device", "change": "added"}
//
// Decoded events are delivered on the Events() channel. Messages that cannot
// be decoded are answered with an error message and otherwise ignored.
//
// When a connection closes, an up event is sent for every contact that the
// connection left on the surface.
package touchbridge
