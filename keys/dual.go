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

import "fmt"

// Dual is a pair of keys driven together by a single logical action. The
// secondary key allows one action to satisfy two different interpretations in
// the simulation core at the same time. For example, a touch "left" that must
// also drive a separately configured "steer left".
//
// Either key may be None.
type Dual struct {
	Primary   Key
	Secondary Key
}

// Single returns a Dual with only the primary key set.
func Single(k Key) Dual {
	return Dual{Primary: k, Secondary: None}
}

// IsNone returns true if neither key in the Dual is set.
func (d Dual) IsNone() bool {
	return d.Primary == None && d.Secondary == None
}

func (d Dual) String() string {
	if d.Secondary == None {
		return d.Primary.String()
	}
	return fmt.Sprintf("%s+%s", d.Primary, d.Secondary)
}
