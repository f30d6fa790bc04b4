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

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/pointer"
	"github.com/jetsetilly/vinput/userinput"
)

// snapshot of the state seen by the simulation core
type snapshot struct {
	pressed  []keys.Key
	x, y     int
	buttons  [pointer.NumButtons]bool
	axisX    int16
	axisY    int16
	numJoys  int
	numMouse int
}

func takeSnapshot(sys *userinput.System) snapshot {
	s := snapshot{
		pressed:  sys.PressedKeys(),
		numJoys:  sys.NumJoysticks(),
		numMouse: sys.NumMice(),
	}
	s.x, s.y = sys.PointerPosition(userinput.Any)
	for b := range s.buttons {
		s.buttons[b] = sys.PointerButton(userinput.Any, b)
	}
	s.axisX = sys.JoyAxis(userinput.Any, controllers.AxisX)
	s.axisY = sys.JoyAxis(userinput.Any, controllers.AxisY)
	return s
}

func (s snapshot) equal(o snapshot) bool {
	return slices.Equal(s.pressed, o.pressed) &&
		s.x == o.x && s.y == o.y &&
		s.buttons == o.buttons &&
		s.axisX == o.axisX && s.axisY == o.axisY &&
		s.numJoys == o.numJoys && s.numMouse == o.numMouse
}

func (s snapshot) String() string {
	names := make([]string, 0, len(s.pressed))
	for _, k := range s.pressed {
		names = append(names, k.String())
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "keys [%s]", strings.Join(names, " "))
	if s.numMouse > 0 {
		fmt.Fprintf(&b, " pointer (%d,%d) %v", s.x, s.y, s.buttons)
	}
	if s.numJoys > 0 {
		fmt.Fprintf(&b, " joy %d (%d,%d)", s.numJoys, s.axisX, s.axisY)
	}
	return b.String()
}

// monitor prints the state of the System whenever it changes
type monitor struct {
	output io.Writer
	prev   snapshot
	first  bool
}

func newMonitor(output io.Writer) *monitor {
	return &monitor{output: output, first: true}
}

func (m *monitor) update(sys *userinput.System) {
	s := takeSnapshot(sys)
	if !m.first && s.equal(m.prev) {
		return
	}
	m.first = false
	m.prev = s
	fmt.Fprintln(m.output, s)
}
