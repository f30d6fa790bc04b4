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

// vinput is the host program for the input system. It has three modes:
//
//	RUN     open an SDL window and drive the input system from SDL events
//	REPLAY  run macro scripts against the input system and report the result
//	BRIDGE  accept touch events from a remote device over a websocket
//
// In the RUN and BRIDGE modes the state seen by the simulation core is
// printed whenever it changes.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/vinput/config"
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/limiter"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/modalflag"
	"github.com/jetsetilly/vinput/prefs"
	"github.com/jetsetilly/vinput/statsview"
	"github.com/jetsetilly/vinput/userinput"
	"github.com/jetsetilly/vinput/version"
)

// exit values
const (
	exitOK      = 0
	exitArgs    = 10
	exitFailure = 20
)

func init() {
	// SDL requires that events are serviced on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "REPLAY", "BRIDGE")

	echo := md.AddBool("log", false, "echo log to stdout")
	prefsString := md.AddString("prefs", "", "preferences: key::value; key::value")
	showVersion := md.AddBool("version", false, "print version and exit")
	stats := md.AddBool("statsview", false, "launch statistics server (if available)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitArgs
	}

	if *showVersion {
		fmt.Println(version.String())
		return exitOK
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout, "")
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "vinput", "unused preferences: %s", unused)
		}
	}()

	// interrupt ends the RUN and BRIDGE loops
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)
	case "REPLAY":
		err = replay(md)
	case "BRIDGE":
		err = bridge(md, intChan)
	}

	if err != nil {
		// curated errors carry their own context. errors from outside of
		// vinput are given the mode they happened in
		if curated.IsAny(err) {
			fmt.Printf("* %s\n", err)
		} else {
			fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		}

		// the end of the log usually explains the error. there is no need to
		// show it if the log has been echoed
		if !*echo {
			logger.Tail(os.Stdout, logTail)
		}

		return failure(err)
	}

	return exitOK
}

// number of log entries shown when a mode fails
const logTail = 10

// errors caused by the configuration file or the command line
var argErrors = []string{
	config.UnsupportedFormat,
	config.DecodeError,
	userinput.UnknownShifterMode,
	limiter.BadRate,
}

// failure returns the exit value for the error
func failure(err error) int {
	for _, p := range argErrors {
		if curated.Has(err, p) {
			return exitArgs
		}
	}
	return exitFailure
}
