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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/test"
	"github.com/jetsetilly/vinput/userinput"
)

func TestReplayMode(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"REPLAY", "../../macro/testdata/shifter.yaml"}), exitOK)
	test.ExpectEquality(t, launch([]string{"replay"}), exitFailure)
	test.ExpectEquality(t, launch([]string{"REPLAY", "missing.yaml"}), exitFailure)
}

func TestArgs(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"-version"}), exitOK)
	test.ExpectEquality(t, launch([]string{"-help"}), exitOK)
}

func TestConfigurationErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	// all of these fail before the bridge starts listening
	test.ExpectEquality(t, launch([]string{"BRIDGE", "-watch=false",
		"-config", write("bindings.xml", "")}), exitArgs)
	test.ExpectEquality(t, launch([]string{"BRIDGE", "-watch=false",
		"-config", write("shifter.ini", "userinput.shifter = 5GEAR\n")}), exitArgs)
	test.ExpectEquality(t, launch([]string{"-prefs", "limiter.fps::0", "BRIDGE", "-watch=false",
		"-config", write("empty.ini", "")}), exitArgs)
}

func TestMonitor(t *testing.T) {
	clk := &keys.ManualClock{}
	sys := userinput.NewSystem(clk, nil)
	sys.Initialise()

	var w strings.Builder
	mon := newMonitor(&w)

	// the first update is always printed
	mon.update(sys)
	test.ExpectEquality(t, w.String(), "keys []\n")

	// no change, no output
	mon.update(sys)
	test.ExpectEquality(t, w.String(), "keys []\n")

	sys.HandleEvent(userinput.EventKeyboard{Key: keys.A, Down: true})
	mon.update(sys)
	test.ExpectEquality(t, w.String(), "keys []\nkeys [A]\n")

	sys.SetVirtualWheel(true)
	mon.update(sys)
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "keys [A] joy 1 (0,0)\n"))
}
