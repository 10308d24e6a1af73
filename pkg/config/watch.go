// Open DCS Launcher
// Copyright (c) 2026 The Open DCS Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Open DCS Launcher.
//
// Open DCS Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Open DCS Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Open DCS Launcher.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the settings whenever the settings file is written by
// something else, e.g. a text editor. Reloads that fail to parse are logged
// and the current settings are kept. The returned stop function blocks
// until the watcher has shut down.
func (c *Instance) Watch(ctx context.Context) (stop func(), err error) {
	dir := filepath.Dir(c.cfgPath)
	if err := c.fs.MkdirAll(dir, 0o750); err != nil {
		return nil, &IOError{Op: "create directory", Path: dir, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings watcher: %w", err)
	}

	// watch the directory, editors often replace the file instead of
	// writing to it
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	target := filepath.Clean(c.cfgPath)

	go func() {
		defer close(done)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				log.Debug().Str("event", event.String()).Msg("settings file changed")
				c.reload()
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(watchErr).Msg("settings watcher error")
			}
		}
	}()

	log.Info().Str("dir", dir).Msg("watching settings file")

	return func() {
		cancel()
		<-done
	}, nil
}

func (c *Instance) reload() {
	snapshot, err := c.load(true)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring settings file change")
		return
	}
	if snapshot != nil {
		c.notify(*snapshot)
	}
}
