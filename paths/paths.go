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

// Package paths locates the files used by vinput. Binding configurations are
// found in the Config directory of the resource directory, in the same way as
// Supermodel:
//
//	<resource directory>/Config/Supermodel.ini
//
// The resource directory is .vinput in the current directory if that exists.
// Otherwise it is the vinput directory of the user's configuration directory.
package paths

import (
	"os"
	"path/filepath"
)

const localBase = ".vinput"

// ResourcePath returns the path of the resource inside the resource directory.
// The existence of the resource is not checked.
func ResourcePath(resource ...string) string {
	return join(basePath(), resource...)
}

// ConfigPath returns the path of the named file in the Config directory.
func ConfigPath(name string) string {
	return ResourcePath("Config", name)
}

func basePath() string {
	if _, err := os.Stat(localBase); err == nil {
		return localBase
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return localBase
	}
	return filepath.Join(cnf, localBase[1:])
}

func join(base string, resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)
	return filepath.Join(p...)
}
