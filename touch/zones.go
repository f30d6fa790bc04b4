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

import (
	"math"

	"github.com/jetsetilly/vinput/bindings"
)

// stick deadzone as a fraction of the half-width of the stick
const stickDeadzone = 0.25

// half-width of the square neutral zone of the 4-gear shifter
const shifterNeutral = 0.18

// the eight octants of the stick, anticlockwise from right. diagonals hold
// two directions. bindings.NumActions means no direction
var octants = [8][2]bindings.Action{
	{bindings.JoyRight, bindings.NumActions},
	{bindings.JoyRight, bindings.JoyUp},
	{bindings.JoyUp, bindings.NumActions},
	{bindings.JoyLeft, bindings.JoyUp},
	{bindings.JoyLeft, bindings.NumActions},
	{bindings.JoyLeft, bindings.JoyDown},
	{bindings.JoyDown, bindings.NumActions},
	{bindings.JoyRight, bindings.JoyDown},
}

func signed(v float32) float64 {
	return math.Max(-1, math.Min(1, (float64(v)-0.5)*2))
}

// stickDirection returns the directions held by the stick at the normalised
// position. The second return value is false if the stick is in the
// deadzone.
func stickDirection(x, y float32) ([2]bindings.Action, bool) {
	sx := signed(x)
	sy := signed(y)
	if math.Abs(sx) < stickDeadzone && math.Abs(sy) < stickDeadzone {
		return [2]bindings.Action{}, false
	}

	// touch coordinates grow downwards
	angle := math.Atan2(-sy, sx)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	oct := int(math.Floor((angle+math.Pi/8)/(math.Pi/4))) & 7
	return octants[oct], true
}

// gearAt returns the gear selected by the 4-gear shifter at the normalised
// position. Gear zero is neutral.
//
//	1   3
//	  N
//	2   4
func gearAt(x, y float32) int {
	dx := float64(x) - 0.5
	dy := float64(y) - 0.5
	if math.Abs(dx) < shifterNeutral && math.Abs(dy) < shifterNeutral {
		return 0
	}

	left := dx < 0
	upper := dy < 0
	switch {
	case left && upper:
		return 1
	case left:
		return 2
	case upper:
		return 3
	}
	return 4
}

var gears = [5]bindings.Action{
	bindings.ShiftNeutral,
	bindings.Shift1,
	bindings.Shift2,
	bindings.Shift3,
	bindings.Shift4,
}

// tapZone returns the action for the tap zone at the normalised position. The
// second return value is false if the position is not in a tap zone.
func tapZone(x, y float32) (bindings.Action, bool) {
	switch {
	case x < 0.25 && y > 0.75:
		return bindings.Coin, true
	case x > 0.40 && x < 0.60 && y > 0.75:
		return bindings.Start, true
	case x < 0.25 && y < 0.25:
		return bindings.Service, true
	case x > 0.75 && y < 0.25:
		return bindings.Test, true
	}
	return bindings.NumActions, false
}

func inPedalZone(x, y float32) bool {
	return x > 0.55 && y >= 0.25 && y <= 0.90
}

// pedalAt returns the pedal for a position inside the pedal zone. The upper
// part of the zone is the throttle.
func pedalAt(y float32) bindings.Action {
	if y < 0.575 {
		return bindings.Throttle
	}
	return bindings.Brake
}

func inDPadZone(x, y float32) bool {
	return x < 0.45 && y >= 0.35 && y <= 0.75
}

// centre of the d-pad zone
const (
	dpadX = 0.225
	dpadY = 0.55
)

// dpadAt returns the direction for a position inside the d-pad zone. Only the
// dominant axis is used so there are no diagonals.
func dpadAt(x, y float32) bindings.Action {
	dx := float64(x) - dpadX
	dy := float64(y) - dpadY
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			return bindings.JoyLeft
		}
		return bindings.JoyRight
	}
	if dy < 0 {
		return bindings.JoyUp
	}
	return bindings.JoyDown
}
