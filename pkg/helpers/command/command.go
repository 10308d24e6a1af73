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

// Package command starts external programs behind an interface so launch
// code can be tested without spawning anything.
package command

import "context"

// StartOptions configures how a program is started.
type StartOptions struct {
	// Dir is the working directory of the new process. Empty means the
	// launcher's own working directory.
	Dir string
	// Env holds extra KEY=value pairs added to the launcher's own
	// environment. Ignored on Windows, where ShellExecute always passes the
	// user's environment.
	Env []string
}

// Executor starts programs.
type Executor interface {
	// Start starts a program without waiting for it (fire-and-forget).
	// It returns an error only if the program could not be started.
	Start(ctx context.Context, name string, args ...string) error

	// StartWithOptions is Start with a working directory and
	// platform-specific options.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor starts real processes. On Windows it uses ShellExecute, so
// programs that ask for elevation (like the DCS updater) get a UAC prompt
// instead of failing. Elsewhere the child is put in its own session so it
// outlives the launcher.
type RealExecutor struct{}

// Start is StartWithOptions with default options.
func (e *RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return e.StartWithOptions(ctx, StartOptions{}, name, args...)
}
