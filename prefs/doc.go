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

// Package prefs provides typed preference values that call hook functions when
// they change. Values are collected into a Set so that they can be changed by
// name, from a configuration file or from the command line.
//
// The hooks are how changes to a preference are acted upon. For example, the
// userinput package uses a hook to switch gun mode on or off when the
// corresponding Bool is set:
//
//	p.GunTouch.SetHookPost(func(v prefs.Value) error {
//		sys.SetGunTouch(v.(bool))
//		return nil
//	})
//
// A hookPre function can reject a value by returning an error, in which case
// the value is not stored and the hookPost function is not called.
package prefs
