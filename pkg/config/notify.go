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

import "slices"

type listener struct {
	fn func(Settings)
	id int
}

// OnChange registers fn to be called with a snapshot of the settings after
// every successful Load or Save. Listeners run synchronously, in the order
// they were registered, after the store lock is released. The returned
// function removes the listener.
func (c *Instance) OnChange(fn func(Settings)) (unsubscribe func()) {
	c.listenMu.Lock()
	defer c.listenMu.Unlock()

	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})

	return func() {
		c.listenMu.Lock()
		defer c.listenMu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

func (c *Instance) notify(snapshot Settings) {
	c.listenMu.Lock()
	ls := slices.Clone(c.listeners)
	c.listenMu.Unlock()

	for _, l := range ls {
		l.fn(snapshot.clone())
	}
}
