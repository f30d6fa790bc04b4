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

// Package pointer holds the state of the absolute pointing device used by light
// gun games. Position is in the fixed coordinate space of the simulation
// core's display and does not depend on the size of the touch surface.
package pointer

import "math"

// The extent of the pointer coordinate space.
const (
	Width  = 496
	Height = 384
)

// NumButtons is the number of pointer buttons.
const NumButtons = 5

// List of pointer buttons.
const (
	ButtonLeft = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// State of the pointer. The zero value is a pointer at the origin with no
// buttons pressed.
type State struct {
	x int
	y int

	buttons [NumButtons]bool

	// expiry time of pulsed buttons. zero if the button is not pulsed
	pulseUntil [NumButtons]uint64

	wheelDir int
}

// SetPositionFromNormalized sets the pointer position from coordinates in the
// range [0,1]. Coordinates outside the range are clamped.
func (s *State) SetPositionFromNormalized(x, y float32) {
	s.x = toExtent(x, Width)
	s.y = toExtent(y, Height)
}

func toExtent(v float32, extent int) int {
	c := math.Max(0, math.Min(1, float64(v)))
	p := int(math.Round(c * float64(extent-1)))
	return max(0, min(extent-1, p))
}

// Position returns the pointer position.
func (s *State) Position() (int, int) {
	return s.x, s.y
}

// SetButton holds or releases a button. Any pending pulse of the button is
// forgotten so that a held button is never released by an earlier pulse.
func (s *State) SetButton(button int, down bool) {
	if button < 0 || button >= NumButtons {
		return
	}
	s.buttons[button] = down
	s.pulseUntil[button] = 0
}

// PulseButton presses the button until durationMs after now.
func (s *State) PulseButton(button int, durationMs uint64, now uint64) {
	if button < 0 || button >= NumButtons {
		return
	}
	s.buttons[button] = true
	s.pulseUntil[button] = now + durationMs
}

// Poll releases pulsed buttons that have expired.
func (s *State) Poll(now uint64) {
	for i := range s.pulseUntil {
		if s.pulseUntil[i] != 0 && s.pulseUntil[i] <= now {
			s.buttons[i] = false
			s.pulseUntil[i] = 0
		}
	}
}

// Button returns true if the button is pressed. Returns false for buttons out
// of range.
func (s *State) Button(button int) bool {
	if button < 0 || button >= NumButtons {
		return false
	}
	return s.buttons[button]
}

// WheelDir returns the direction of the most recent wheel movement. Negative
// values are towards the user.
func (s *State) WheelDir() int {
	return s.wheelDir
}

// SetWheelDir sets the wheel direction.
func (s *State) SetWheelDir(dir int) {
	s.wheelDir = dir
}

// Reset the pointer to the zero state.
func (s *State) Reset() {
	*s = State{}
}
