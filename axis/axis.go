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

// Package axis encodes normalised touch coordinates as signed 16-bit joystick
// axis values. The State type holds the virtual joystick written to by the
// touch wheel and the analog gun.
package axis

import "math"

// Maximum magnitude of an axis value.
const Max = 32767

// SteerDeadzone is the region around the centre of the wheel that is reported
// as exactly zero. It is expressed as a fraction of the half-width of the
// wheel.
const SteerDeadzone = 0.08

// centre the normalised value on zero and double the range to [-1, 1]
func signed(v float32) float64 {
	return clamp((float64(v)-0.5)*2.0, -1.0, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func scale(v float64) int16 {
	return int16(math.Round(clamp(v, -1.0, 1.0) * Max))
}

// EncodeSteer maps the normalised x position of a steering wheel control to an
// axis value. A value of 0.5 is the centre of the wheel.
//
// Positions inside the deadzone return zero. Positions outside the deadzone
// are rescaled so that the axis value rises smoothly from zero at the edge of
// the deadzone to the maximum at the edge of the wheel.
func EncodeSteer(x float32) int16 {
	s := signed(x)
	if math.Abs(s) < SteerDeadzone {
		return 0
	}
	v := (math.Abs(s) - SteerDeadzone) / (1.0 - SteerDeadzone)
	return scale(math.Copysign(v, s))
}

// EncodeJoy maps a normalised position to a pair of axis values. There is no
// deadzone.
func EncodeJoy(x, y float32) (int16, int16) {
	return scale(signed(x)), scale(signed(y))
}

// State of the virtual joystick.
type State struct {
	X int16
	Y int16
}

// SetSteer sets the X axis from a normalised wheel position. The Y axis is
// unchanged.
func (s *State) SetSteer(x float32) {
	s.X = EncodeSteer(x)
}

// SetJoy sets both axes from a normalised position.
func (s *State) SetJoy(x, y float32) {
	s.X, s.Y = EncodeJoy(x, y)
}

// Reset both axes to zero.
func (s *State) Reset() {
	s.X = 0
	s.Y = 0
}
