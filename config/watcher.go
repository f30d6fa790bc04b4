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

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/logger"
)

// WatchError is the pattern for errors sent on the Errors() channel.
const WatchError = "config: watch: %v"

// debounce period. editors often write a file in several steps
const debounceDelay = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk. The
// reloaded configuration is sent on the Changes() channel. It is the
// responsibility of the receiver to apply the configuration on the input
// thread.
type Watcher struct {
	path    string
	section string

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	changes chan map[string]string
	errors  chan error
}

// NewWatcher starts watching the configuration file. The directory containing
// the file is watched, so the file does not need to exist when the Watcher is
// created.
func NewWatcher(path string, section string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, curated.Errorf(WatchError, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    path,
		section: section,
		watcher: fw,
		ctx:     ctx,
		cancel:  cancel,
		changes: make(chan map[string]string, 1),
		errors:  make(chan error, 1),
	}

	go w.loop()

	return w, nil
}

// Changes returns the channel on which reloaded configurations are sent.
func (w *Watcher) Changes() <-chan map[string]string {
	return w.changes
}

// Errors returns the channel on which watch and reload errors are sent.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the Watcher.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(curated.Errorf(WatchError, err))
		}
	}
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}

	cfg, err := Load(w.path, w.section)
	if err != nil {
		w.sendError(err)
		return
	}

	logger.Logf(logger.Allow, "config", "reloaded %s", filepath.Base(w.path))

	// replace any configuration that has not been collected yet
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	default:
		logger.Log(logger.Allow, "config", "dropped configuration change")
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		logger.Log(logger.Allow, "config", err)
	}
}
