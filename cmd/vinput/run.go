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
	"fmt"
	"os"

	"github.com/jetsetilly/vinput/limiter"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/modalflag"
	"github.com/jetsetilly/vinput/sdlinput"
	"github.com/jetsetilly/vinput/userinput"
	"github.com/jetsetilly/vinput/version"
	"github.com/veandco/go-sdl2/sdl"
)

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	c := addCommon(md)
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer sdl.Quit()

	// touch events from the mouse are not wanted. the mouse is not part of the
	// input vocabulary
	sdl.SetHint(sdl.HINT_MOUSE_TOUCH_EVENTS, "0")
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	window, err := sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(*width), int32(*height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer window.Destroy()

	sys := userinput.NewSystem(sdlinput.Clock{}, sdlinput.Enumerator{})
	sys.Initialise()
	defer sys.Close()

	lim := limiter.NewFPSLimiter(*c.fps)
	defer lim.Stop()

	w, err := c.configure(sys, lim)
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
	}

	mon := newMonitor(os.Stdout)

	for {
		select {
		case <-intChan:
			return nil
		case cfg := <-changes(w):
			reconfigure(sys, lim, cfg)
		case err := <-watchErrors(w):
			logger.Log(logger.Allow, "config", err)
		default:
		}

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if uev, ok := sdlinput.Translate(ev); ok {
				sys.HandleEvent(uev)
				if sys.Quit {
					return nil
				}
			}
		}

		sys.Poll()
		mon.update(sys)
		lim.Wait()
	}
}
