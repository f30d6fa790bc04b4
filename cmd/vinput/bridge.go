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
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/limiter"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/modalflag"
	"github.com/jetsetilly/vinput/touchbridge"
	"github.com/jetsetilly/vinput/userinput"
)

// clock for the bridge mode. there is no SDL timer in this mode
type wallClock struct {
	start time.Time
}

func (c wallClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

var _ keys.Clock = wallClock{}

func bridge(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	c := addCommon(md)
	addr := md.AddString("addr", "localhost:12700", "address to listen on")
	queue := md.AddInt("queue", 256, "length of event queue")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	sys := userinput.NewSystem(wallClock{start: time.Now()}, nil)
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

	srv := touchbridge.NewServer(*queue)
	mux := http.NewServeMux()
	mux.Handle("/touch", srv)
	hs := &http.Server{Addr: *addr, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = hs.Shutdown(ctx)
	}()

	fmt.Printf("touch bridge listening at ws://%s/touch\n", *addr)
	logger.Logf(logger.Allow, "touchbridge", "listening on %s", *addr)

	mon := newMonitor(os.Stdout)

	for {
		select {
		case <-intChan:
			return nil
		case err := <-serveErr:
			return err
		case cfg := <-changes(w):
			reconfigure(sys, lim, cfg)
		case err := <-watchErrors(w):
			logger.Log(logger.Allow, "config", err)
		case <-lim.Tick():
			sys.Poll()
			mon.update(sys)
		case ev := <-srv.Events():
			sys.HandleEvent(ev)
			if sys.Quit {
				return nil
			}
		}
	}
}
