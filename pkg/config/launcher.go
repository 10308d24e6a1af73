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

const (
	DefaultGameExecutable    = "DCS.exe"
	DefaultUpdaterExecutable = "DCS_updater.exe"
)

var (
	DefaultUpdateArgs  = []string{"update"}
	DefaultRepairArgs  = []string{"repair"}
	DefaultCleanupArgs = []string{"cleanup"}
)

// Launcher holds the executable names and updater arguments. Every field is
// optional and empty values fall back to the defaults above.
type Launcher struct {
	GameExecutable    string   `toml:"gameExecutable,omitempty"`
	UpdaterExecutable string   `toml:"updaterExecutable,omitempty"`
	UpdateArgs        []string `toml:"updateArgs,omitempty"`
	RepairArgs        []string `toml:"repairArgs,omitempty"`
	CleanupArgs       []string `toml:"cleanupArgs,omitempty"`
	// Runner is a command the game and updater are started through, e.g.
	// ["wine"]. Empty means the platform default.
	Runner []string `toml:"runner,omitempty"`
	// WinePrefix is passed to the runner as WINEPREFIX. Empty means the
	// prefix is taken from the install directory, if it is inside one.
	WinePrefix string `toml:"winePrefix,omitempty"`
}

// WithDefaults returns a copy with every empty field filled in.
func (l Launcher) WithDefaults() Launcher {
	if l.GameExecutable == "" {
		l.GameExecutable = DefaultGameExecutable
	}
	if l.UpdaterExecutable == "" {
		l.UpdaterExecutable = DefaultUpdaterExecutable
	}
	l.UpdateArgs = orDefault(l.UpdateArgs, DefaultUpdateArgs)
	l.RepairArgs = orDefault(l.RepairArgs, DefaultRepairArgs)
	l.CleanupArgs = orDefault(l.CleanupArgs, DefaultCleanupArgs)
	l.Runner = slices.Clone(l.Runner)
	return l
}

func (l Launcher) clone() Launcher {
	l.UpdateArgs = slices.Clone(l.UpdateArgs)
	l.RepairArgs = slices.Clone(l.RepairArgs)
	l.CleanupArgs = slices.Clone(l.CleanupArgs)
	l.Runner = slices.Clone(l.Runner)
	return l
}

func orDefault(args, def []string) []string {
	if len(args) == 0 {
		return slices.Clone(def)
	}
	return slices.Clone(args)
}

// Launcher returns the launcher settings with defaults applied.
func (c *Instance) Launcher() Launcher {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.WithDefaults()
}
