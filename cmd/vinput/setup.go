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
	"github.com/jetsetilly/vinput/config"
	"github.com/jetsetilly/vinput/limiter"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/modalflag"
	"github.com/jetsetilly/vinput/paths"
	"github.com/jetsetilly/vinput/userinput"
)

// flags shared by the RUN and BRIDGE modes
type common struct {
	config  *string
	section *string
	fps     *int
	watch   *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		config:  md.AddString("config", paths.ConfigPath("Supermodel.ini"), "binding configuration file (.ini, .toml or .yaml)"),
		section: md.AddString("section", "", "game section of the configuration file"),
		fps:     md.AddInt("fps", 60, "frame rate of the input loop"),
		watch:   md.AddBool("watch", true, "reload the configuration file when it changes"),
	}
}

// configure the System and the limiter from the configuration file and the
// command line preferences. returns a Watcher if one was requested
func (c common) configure(sys *userinput.System, lim *limiter.FpsLimiter) (*config.Watcher, error) {
	cfg, err := config.Load(*c.config, *c.section)
	if err != nil {
		return nil, err
	}
	sys.ApplyConfig(cfg)

	if err := sys.Prefs.Apply(cfg); err != nil {
		return nil, err
	}
	if err := lim.Prefs.Apply(cfg); err != nil {
		return nil, err
	}
	if err := sys.Prefs.SetFromCommandLine(); err != nil {
		return nil, err
	}
	if err := lim.Prefs.SetFromCommandLine(); err != nil {
		return nil, err
	}

	if !*c.watch {
		return nil, nil
	}

	w, err := config.NewWatcher(*c.config, *c.section)
	if err != nil {
		// carry on without reloading
		logger.Log(logger.Allow, "config", err)
		return nil, nil
	}
	return w, nil
}

// changes returns the channel of configuration changes. a nil Watcher returns
// a nil channel, which is never ready
func changes(w *config.Watcher) <-chan map[string]string {
	if w == nil {
		return nil
	}
	return w.Changes()
}

func watchErrors(w *config.Watcher) <-chan error {
	if w == nil {
		return nil
	}
	return w.Errors()
}

// reconfigure applies a reloaded configuration
func reconfigure(sys *userinput.System, lim *limiter.FpsLimiter, cfg map[string]string) {
	sys.ApplyConfig(cfg)
	if err := sys.Prefs.Apply(cfg); err != nil {
		logger.Log(logger.Allow, "config", err)
	}
	if err := lim.Prefs.Apply(cfg); err != nil {
		logger.Log(logger.Allow, "config", err)
	}
}
