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

package limiter

import (
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/prefs"
)

// BadRate is returned when the frame rate preference is not a positive
// number.
const BadRate = "limiter: frame rate must be positive (%v)"

// Preferences for the FpsLimiter.
type Preferences struct {
	set *prefs.Set

	FPS prefs.Int
}

func newPreferences(lim *FpsLimiter) *Preferences {
	p := &Preferences{
		set: prefs.NewSet(),
	}

	// the initial value is the rate the limiter was created with
	_ = p.FPS.Set(lim.framesPerSecond)

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadRate, v)
		}
		return nil
	})
	p.FPS.SetHookPost(func(v prefs.Value) error {
		lim.SetLimit(v.(int))
		return nil
	})

	p.set.Add("limiter.fps", &p.FPS)

	return p
}

// Apply preference values from a configuration. Keys that are not limiter
// preferences are ignored.
func (p *Preferences) Apply(cfg map[string]string) error {
	return p.set.Apply(cfg)
}

// SetFromCommandLine sets preference values from the current command line
// group. See prefs.PushCommandLineStack().
func (p *Preferences) SetFromCommandLine() error {
	return p.set.SetFromCommandLine()
}

func (p *Preferences) String() string {
	return p.set.String()
}
