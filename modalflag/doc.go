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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags. The vinput command
// uses it to select between its RUN, REPLAY and BRIDGE modes:
//
//	vinput [-log] [-prefs ...] [RUN|REPLAY|BRIDGE] [mode flags] [arguments]
//
// Arguments are given with NewArgs() and then flags are added and Parse()
// called for each layer of the command line:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "REPLAY", "BRIDGE")
//	logging := md.AddBool("log", false, "echo log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "REPLAY":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-mode names are case insensitive.
//
// A -help flag prints the flags and sub-modes available at the current layer
// and causes Parse() to return ParseHelp.
package modalflag
