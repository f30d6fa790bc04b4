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

// Package sdlinput connects the userinput package to SDL. It provides the
// controller Enumerator, the conversion of SDL events to userinput events and
// a Clock that reads the SDL millisecond counter.
//
// SDL must be initialised with the GAMECONTROLLER and EVENTS subsystems before
// any function in this package is used.
package sdlinput
