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

// Package controllers presents connected game controllers to the simulation
// core as joysticks with six axes, seventeen buttons and a POV hat.
//
// The Registry owns the list of devices. Devices themselves are opened by an
// Enumerator, which hides the details of the platform's controller API. The
// sdlinput package provides an Enumerator for SDL game controllers.
//
// Queries can be made against a single controller or against the Any
// pseudo-controller. For Any, axis queries return the reading with the largest
// magnitude and button queries return true if any controller has the button
// down.
package controllers
