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

// Package limiter paces the host loop at a fixed number of frames per second.
// The input system is polled once per frame and so the frame rate is also the
// resolution of the pulse timing seen by the simulation core.
//
//	lim := limiter.NewFPSLimiter(60)
//	defer lim.Stop()
//	for {
//		lim.Wait()
//		sys.Poll()
//	}
package limiter

import (
	"time"
)

// DefaultFPS is the frame rate of the simulation core.
const DefaultFPS = 60

// FpsLimiter triggers a fixed number of times per second.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker

	// Prefs can be used to change the frame rate by name
	Prefs *Preferences
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// A rate of zero or less selects DefaultFPS.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.ticker = time.NewTicker(period(lim.setRate(framesPerSecond)))
	lim.Prefs = newPreferences(lim)
	return lim
}

func (lim *FpsLimiter) setRate(framesPerSecond int) int {
	if framesPerSecond <= 0 {
		framesPerSecond = DefaultFPS
	}
	lim.framesPerSecond = framesPerSecond
	return framesPerSecond
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the frame rate.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	lim.ticker.Reset(period(lim.setRate(framesPerSecond)))
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait blocks until the next frame.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the next frame has arrived. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Tick returns the channel on which frames are delivered. Useful when waiting
// for a frame in a select statement alongside other channels.
func (lim *FpsLimiter) Tick() <-chan time.Time {
	return lim.ticker.C
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
