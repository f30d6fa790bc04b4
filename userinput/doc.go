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

// Package userinput is the input system presented to the simulation core. It
// takes events from the host (touch contacts, controllers and the keyboard)
// and turns them into the fixed input vocabulary of the core: logical keys, an
// absolute pointer, joystick axes, buttons and POV directions.
//
// Events are sent to HandleEvent(), which is the single entry point for all
// event types. Once per frame the host calls Poll() to release expired pulses
// and then the core reads the state with the query functions.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. The sdlinput package translates SDL events
// to userinput events.
package userinput
