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

// Package macro runs input scripts against a userinput.System. A script is a
// YAML document made of a list of steps. Each step moves the clock, sends an
// event or checks the input state as seen by the simulation core.
//
//	name: 4-gear shifter
//	prefs:
//	  userinput.shifter: 4GEAR
//	bindings:
//	  InputGearShift1: KEY_7
//	steps:
//	  - event: {type: touch, phase: down, id: 1108, x: 0.1, y: 0.1}
//	  - expect: {pressed: ["7"], gear: 1}
//	  - wait: 120
//	  - expect: {pressed: []}
//
// The "at" field sets the clock to an absolute time in milliseconds and the
// "wait" field advances the clock. Poll() is called on the System every time
// the clock moves, in the same way that a host calls Poll() once per frame.
//
// Events use the same vocabulary as the touchbridge package. Expectations can
// check the pressed keys, the pointer position and buttons, the virtual
// joystick axes and the most recent shifter gear.
//
// Scripts are run with a keys.ManualClock so that pulse timing is exact and
// repeatable. Any failed expectation stops the script with an error.
package macro
