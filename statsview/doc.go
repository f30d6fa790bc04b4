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

// Package statsview runs a local HTTP server that shows runtime statistics for
// the vinput process. It is useful when checking that the input loop does not
// allocate on every frame.
//
// The server is only available when the program is built with the statsview
// build tag. Without the tag, Available() returns false and Launch() does
// nothing.
//
// When launched, graphical statistics are served at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is the address used when Launch() is given an empty address.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"
