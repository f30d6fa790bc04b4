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

import "github.com/veandco/go-sdl2/sdl"

// Clock reads the number of milliseconds since SDL was initialised.
type Clock struct{}

// Ticks implements the keys.Clock interface.
func (Clock) Ticks() uint64 {
	return uint64(sdl.GetTicks())
}
