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

// Clock is the millisecond time source used for pulse expiry.
type Clock interface {
	Ticks() uint64
}

// ManualClock is a Clock that only moves when told to. Used when replaying
// recorded input and for testing.
type ManualClock struct {
	ms uint64
}

// Ticks implements the Clock interface.
func (c *ManualClock) Ticks() uint64 {
	return c.ms
}

// Advance moves the clock forward by the number of milliseconds.
func (c *ManualClock) Advance(ms uint64) {
	c.ms += ms
}

// Set the clock to an absolute time. The clock is allowed to go backwards.
func (c *ManualClock) Set(ms uint64) {
	c.ms = ms
}
