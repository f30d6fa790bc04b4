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

package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/vinput/test"
)

func TestJoin(t *testing.T) {
	test.ExpectEquality(t, join(".vinput", "Config", "Supermodel.ini"), filepath.Join(".vinput", "Config", "Supermodel.ini"))
	test.ExpectEquality(t, join(".vinput", "foo/bar", ""), filepath.Join(".vinput", "foo", "bar"))
	test.ExpectEquality(t, join(".vinput"), ".vinput")
}

func TestConfigPath(t *testing.T) {
	pth := ConfigPath("Supermodel.ini")
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("Config", "Supermodel.ini")))
	test.ExpectSuccess(t, strings.Contains(pth, "vinput"))
}
