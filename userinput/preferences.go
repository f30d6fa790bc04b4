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

package userinput

import (
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/prefs"
	"github.com/jetsetilly/vinput/touch"
)

// UnknownShifterMode is returned when the shifter preference is set to an
// unrecognised value.
const UnknownShifterMode = "userinput: unknown shifter mode (%s)"

// Preferences for the touch modes of the System. Setting a preference value
// changes the mode immediately.
type Preferences struct {
	sys *System
	set *prefs.Set

	GunTouch     prefs.Bool
	AnalogGun    prefs.Bool
	VirtualWheel prefs.Bool

	// one of NONE, 4GEAR or UPDOWN
	Shifter prefs.String
}

func newPreferences(sys *System) *Preferences {
	p := &Preferences{
		sys: sys,
		set: prefs.NewSet(),
	}

	p.GunTouch.SetHookPost(func(v prefs.Value) error {
		p.sys.SetGunTouch(v.(bool))
		return nil
	})
	p.AnalogGun.SetHookPost(func(v prefs.Value) error {
		p.sys.SetAnalogGun(v.(bool))
		return nil
	})
	p.VirtualWheel.SetHookPost(func(v prefs.Value) error {
		p.sys.SetVirtualWheel(v.(bool))
		return nil
	})

	p.Shifter.SetHookPre(func(v prefs.Value) error {
		if _, ok := touch.ShifterModeFromString(v.(string)); !ok {
			return curated.Errorf(UnknownShifterMode, v)
		}
		return nil
	})
	p.Shifter.SetHookPost(func(v prefs.Value) error {
		m, _ := touch.ShifterModeFromString(v.(string))
		p.sys.SetShifterMode(m)
		return nil
	})

	p.set.Add("userinput.guntouch", &p.GunTouch)
	p.set.Add("userinput.analoggun", &p.AnalogGun)
	p.set.Add("userinput.virtualwheel", &p.VirtualWheel)
	p.set.Add("userinput.shifter", &p.Shifter)

	return p
}

// Apply preference values from a configuration. Keys that are not touch mode
// preferences are ignored.
func (p *Preferences) Apply(cfg map[string]string) error {
	return p.set.Apply(cfg)
}

// SetFromCommandLine sets preference values from the current command line
// group. See prefs.PushCommandLineStack().
func (p *Preferences) SetFromCommandLine() error {
	return p.set.SetFromCommandLine()
}

// SetDefaults turns off all touch modes.
func (p *Preferences) SetDefaults() error {
	for _, b := range []*prefs.Bool{&p.GunTouch, &p.AnalogGun, &p.VirtualWheel} {
		if err := b.Set(false); err != nil {
			return err
		}
	}
	return p.Shifter.Set(touch.ShifterNone.String())
}

func (p *Preferences) String() string {
	return p.set.String()
}
