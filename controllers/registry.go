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

import (
	"github.com/jetsetilly/vinput/logger"
)

// name used for controllers that do not report a name
const defaultName = "GameController"

type entry struct {
	dev  Device
	snap Snapshot
}

// Registry is the list of connected controllers.
//
// The list is rebuilt wholesale by Refresh(). Refresh() must not be called at
// the same time as any other Registry function.
type Registry struct {
	enum    Enumerator
	devices []entry
}

// NewRegistry is the preferred method of initialisation for the Registry type.
// The registry is empty until Refresh() is called.
func NewRegistry(enum Enumerator) *Registry {
	return &Registry{
		enum: enum,
	}
}

// Refresh closes all controllers and opens whatever is connected now. A device
// that fails to open is logged and skipped.
func (r *Registry) Refresh() {
	r.Close()

	if r.enum == nil {
		return
	}

	n := r.enum.NumDevices()
	for i := 0; i < n; i++ {
		dev, err := r.enum.OpenDevice(i)
		if err != nil {
			logger.Log(logger.Allow, "controllers", err)
			continue
		}
		if dev == nil {
			continue
		}

		snap := Snapshot{
			ID:         len(r.devices),
			Name:       dev.Name(),
			NumButtons: int(NumButtons),
			NumPOVs:    int(NumPOVs),
		}
		if snap.Name == "" {
			snap.Name = defaultName
		}
		for a := range snap.HasAxis {
			snap.HasAxis[a] = true
		}

		logger.Logf(logger.Allow, "controllers", "gamepad: %s", snap.Name)
		r.devices = append(r.devices, entry{dev: dev, snap: snap})
	}

	if len(r.devices) == 0 {
		logger.Log(logger.Allow, "controllers", "no gamepads found")
	}
}

// Close all controllers. The registry is empty afterwards.
func (r *Registry) Close() {
	for _, e := range r.devices {
		e.dev.Close()
	}
	r.devices = nil
}

// Count returns the number of connected controllers.
func (r *Registry) Count() int {
	return len(r.devices)
}

// Snapshot returns the description of the controller. Returns false if there
// is no controller at the index.
func (r *Registry) Snapshot(which int) (Snapshot, bool) {
	if which < 0 || which >= len(r.devices) {
		return Snapshot{}, false
	}
	return r.devices[which].snap, true
}

// Axis returns the value of the axis for the controller. If which is Any then
// the value with the largest magnitude across all controllers is returned.
func (r *Registry) Axis(which int, axis Axis) int16 {
	if axis < 0 || axis >= NumAxes {
		return 0
	}

	if which == Any {
		var best int16
		for _, e := range r.devices {
			v := e.dev.Axis(axis)
			if magnitude(v) > magnitude(best) {
				best = v
			}
		}
		return best
	}

	if which < 0 || which >= len(r.devices) {
		return 0
	}
	return r.devices[which].dev.Axis(axis)
}

// int16 can not represent the magnitude of its most negative value
func magnitude(v int16) int32 {
	if v < 0 {
		return -int32(v)
	}
	return int32(v)
}

// Button returns true if the button is down on the controller. If which is Any
// then the result is true if the button is down on any controller.
func (r *Registry) Button(which int, button Button) bool {
	if button < 0 || button >= NumButtons {
		return false
	}
	return r.anyButton(which, button)
}

// POV returns true if the d-pad is held in the direction on the controller. If
// which is Any then the result is true if any controller is held in the
// direction.
func (r *Registry) POV(which int, dir POV) bool {
	if dir < 0 || dir >= NumPOVs {
		return false
	}
	return r.anyButton(which, dir.Button())
}

func (r *Registry) anyButton(which int, button Button) bool {
	if which == Any {
		for _, e := range r.devices {
			if e.dev.Button(button) {
				return true
			}
		}
		return false
	}

	if which < 0 || which >= len(r.devices) {
		return false
	}
	return r.devices[which].dev.Button(button)
}
