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

package keys

import "sort"

// PulseDuration is the length of time in milliseconds a momentary key press
// remains down. The simulation core needs to see the key down for at least
// one of its own polls for the press to register.
const PulseDuration = 120

// State is the table of every logical key and whether it is currently down.
// It also holds the pending expiry time for pulsed keys.
//
// State is not safe for concurrent use. Input events and the once-per-frame
// Poll() must happen on the same goroutine.
type State struct {
	clock Clock
	down  [NumKeys]bool

	// pending expiry, in clock milliseconds, for keys that have been pulsed.
	// at most one expiry per key
	pulses map[Key]uint64
}

// NewState is the preferred method of initialisation for the State type.
func NewState(clock Clock) *State {
	return &State{
		clock:  clock,
		pulses: make(map[Key]uint64),
	}
}

// Reset releases all keys and forgets all pending pulses.
func (s *State) Reset() {
	s.down = [NumKeys]bool{}
	clear(s.pulses)
}

// Set the key up or down. Releasing a key removes any pending pulse for that
// key. Invalid keys are ignored.
func (s *State) Set(k Key, down bool) {
	if !k.Valid() {
		return
	}
	s.down[k] = down
	if !down {
		delete(s.pulses, k)
	}
}

// Pulse sets the key down and schedules it to be released after durationMs.
// An earlier pulse of the same key is replaced. Invalid keys are ignored.
func (s *State) Pulse(k Key, durationMs uint64) {
	if !k.Valid() {
		return
	}
	s.down[k] = true
	s.pulses[k] = s.clock.Ticks() + durationMs
}

// SetDual sets both keys of the Dual up or down.
func (s *State) SetDual(d Dual, down bool) {
	if d.Primary != None {
		s.Set(d.Primary, down)
	}
	if d.Secondary != None {
		s.Set(d.Secondary, down)
	}
}

// PulseDual pulses both keys of the Dual.
func (s *State) PulseDual(d Dual, durationMs uint64) {
	if d.Primary != None {
		s.Pulse(d.Primary, durationMs)
	}
	if d.Secondary != None {
		s.Pulse(d.Secondary, durationMs)
	}
}

// Poll releases every pulsed key whose expiry time is at or before now. Should
// be called once per frame before the simulation core reads the key state.
func (s *State) Poll(now uint64) {
	for k, expiry := range s.pulses {
		if expiry <= now {
			s.down[k] = false
			delete(s.pulses, k)
		}
	}
}

// IsPressed returns true if the key is down. Invalid keys are never pressed.
func (s *State) IsPressed(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.down[k]
}

// Pending returns the expiry time of the pending pulse for the key.
func (s *State) Pending(k Key) (uint64, bool) {
	expiry, ok := s.pulses[k]
	return expiry, ok
}

// NumPending returns the number of keys with a pending pulse.
func (s *State) NumPending() int {
	return len(s.pulses)
}

// Pressed returns a sorted list of all keys that are down.
func (s *State) Pressed() []Key {
	var p []Key
	for k := range s.down {
		if s.down[k] {
			p = append(p, Key(k))
		}
	}
	sort.Slice(p, func(i, j int) bool { return p[i] < p[j] })
	return p
}
