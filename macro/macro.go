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

package macro

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/pointer"
	"github.com/jetsetilly/vinput/touchbridge"
	"github.com/jetsetilly/vinput/userinput"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	NotAMacro   = "macro: %s: not a macro file: %v"
	StepError   = "macro: step %d: %v"
	ExpectError = "macro: step %d: %s is %v, expected %v"
)

// Expect is the state that is checked by an expect step. Fields that are not
// specified are not checked.
type Expect struct {
	// names of keys as used in configuration files, without the KEY_ prefix.
	// an empty list means that no key is pressed
	Pressed *[]string `yaml:"pressed"`

	Pointer      *[2]int `yaml:"pointer"`
	PointerLeft  *bool   `yaml:"pointerLeft"`
	PointerRight *bool   `yaml:"pointerRight"`

	AxisX *int16 `yaml:"axisX"`
	AxisY *int16 `yaml:"axisY"`

	Gear *int `yaml:"gear"`
}

// Step is a single instruction in a macro script.
type Step struct {
	At     *uint64              `yaml:"at"`
	Wait   uint64               `yaml:"wait"`
	Event  *touchbridge.Message `yaml:"event"`
	Expect *Expect              `yaml:"expect"`
}

// Macro is a parsed macro script.
type Macro struct {
	Name     string            `yaml:"name"`
	Prefs    map[string]string `yaml:"prefs"`
	Bindings map[string]string `yaml:"bindings"`
	Steps    []Step            `yaml:"steps"`
}

// NewMacro is the preferred method of initialisation for the Macro type.
func NewMacro(filename string) (*Macro, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(NotAMacro, filename, err)
	}
	defer f.Close()

	mcr, err := Parse(f)
	if err != nil {
		return nil, curated.Errorf(NotAMacro, filename, err)
	}
	if mcr.Name == "" {
		mcr.Name = filename
	}
	return mcr, nil
}

// Parse a macro script.
func Parse(r io.Reader) (*Macro, error) {
	mcr := &Macro{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(mcr); err != nil {
		return nil, err
	}
	return mcr, nil
}

// Run the macro to completion. The System is initialised, the bindings and
// preferences in the macro are applied, and then the steps are run in order.
func (mcr *Macro) Run(sys *userinput.System, clk *keys.ManualClock) error {
	clk.Set(0)
	sys.Initialise()
	sys.ApplyConfig(mcr.Bindings)
	if err := sys.Prefs.SetDefaults(); err != nil {
		return err
	}
	if err := sys.Prefs.Apply(mcr.Prefs); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "macro", "%s: %d steps", mcr.Name, len(mcr.Steps))

	for i, st := range mcr.Steps {
		if st.At != nil || st.Wait > 0 {
			if st.At != nil {
				clk.Set(*st.At)
			}
			clk.Advance(st.Wait)
			sys.Poll()
		}

		if st.Event != nil {
			ev, err := st.Event.Event()
			if err != nil {
				return curated.Errorf(StepError, i, err)
			}
			sys.HandleEvent(ev)
		}

		if st.Expect != nil {
			if err := st.Expect.check(i, sys); err != nil {
				return err
			}
		}
	}

	return nil
}

func (exp *Expect) check(step int, sys *userinput.System) error {
	if exp.Pressed != nil {
		var want []keys.Key
		for _, n := range *exp.Pressed {
			k := keys.Lookup(strings.TrimPrefix(n, "KEY_"))
			if k == keys.None {
				return curated.Errorf(StepError, step, fmt.Sprintf("unknown key: %s", n))
			}
			want = append(want, k)
		}
		slices.Sort(want)
		want = slices.Compact(want)

		got := sys.PressedKeys()
		if !slices.Equal(got, want) {
			return curated.Errorf(ExpectError, step, "pressed", keyNames(got), keyNames(want))
		}
	}

	if exp.Pointer != nil {
		x, y := sys.PointerPosition(userinput.Any)
		if x != exp.Pointer[0] || y != exp.Pointer[1] {
			return curated.Errorf(ExpectError, step, "pointer", [2]int{x, y}, *exp.Pointer)
		}
	}
	if exp.PointerLeft != nil {
		if v := sys.PointerButton(userinput.Any, pointer.ButtonLeft); v != *exp.PointerLeft {
			return curated.Errorf(ExpectError, step, "left button", v, *exp.PointerLeft)
		}
	}
	if exp.PointerRight != nil {
		if v := sys.PointerButton(userinput.Any, pointer.ButtonRight); v != *exp.PointerRight {
			return curated.Errorf(ExpectError, step, "right button", v, *exp.PointerRight)
		}
	}

	if exp.AxisX != nil {
		if v := sys.JoyAxis(userinput.Any, controllers.AxisX); v != *exp.AxisX {
			return curated.Errorf(ExpectError, step, "axis X", v, *exp.AxisX)
		}
	}
	if exp.AxisY != nil {
		if v := sys.JoyAxis(userinput.Any, controllers.AxisY); v != *exp.AxisY {
			return curated.Errorf(ExpectError, step, "axis Y", v, *exp.AxisY)
		}
	}

	if exp.Gear != nil {
		if v := sys.Touch().LastGear(); v != *exp.Gear {
			return curated.Errorf(ExpectError, step, "gear", v, *exp.Gear)
		}
	}

	return nil
}

func keyNames(ks []keys.Key) []string {
	n := make([]string, 0, len(ks))
	for _, k := range ks {
		n = append(n, k.String())
	}
	return n
}
