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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/limiter"
	"github.com/jetsetilly/vinput/prefs"
	"github.com/jetsetilly/vinput/test"
)

func TestLimit(t *testing.T) {
	lim := limiter.NewFPSLimiter(0)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Limit(), limiter.DefaultFPS)

	lim.SetLimit(100)
	test.ExpectEquality(t, lim.Limit(), 100)
}

func TestWait(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	test.ExpectFailure(t, lim.HasWaited())

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five frames at 100fps should take at least 40ms. allow for the first
	// tick arriving early
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}

func TestPreferences(t *testing.T) {
	lim := limiter.NewFPSLimiter(50)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Prefs.FPS.Get(), prefs.Value(50))

	test.ExpectSuccess(t, lim.Prefs.Apply(map[string]string{
		"Limiter.FPS":       "30",
		"userinput.shifter": "4GEAR",
	}))
	test.ExpectEquality(t, lim.Limit(), 30)

	err := lim.Prefs.Apply(map[string]string{"limiter.fps": "0"})
	test.ExpectSuccess(t, curated.Has(err, limiter.BadRate))
	test.ExpectEquality(t, lim.Limit(), 30)

	prefs.PushCommandLineStack("limiter.fps::120")
	defer prefs.PopCommandLineStack()
	test.ExpectSuccess(t, lim.Prefs.SetFromCommandLine())
	test.ExpectEquality(t, lim.Limit(), 120)
}
