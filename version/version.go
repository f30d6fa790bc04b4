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

// Package version reports the version of the vinput program. The version
// number is set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/vinput/version.number=v0.1.0"
//
// Without a version number the build information recorded by the Go toolchain
// is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "vinput"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// The version string is "unreleased" if the program was built from a
// repository without a version number and "local" if there is no version
// control information at all (for example, when using "go run").
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line description of the version, suitable for the
// -version flag.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = describe(number, readSettings())
}

func readSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// describe the build from the version number and the build settings
func describe(number string, settings map[string]string) (string, string) {
	revision := settings["vcs.revision"]
	if revision == "" {
		revision = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case settings["vcs"] != "":
		return "unreleased", revision
	}
	return "local", revision
}
