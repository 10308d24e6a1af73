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

//go:build windows

package command

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

const swShowNormal = 1

// StartWithOptions hands the program to ShellExecuteW with the "open" verb,
// the same as double-clicking it in Explorer. The process inherits the
// user's desktop session and is not tracked afterwards.
func (*RealExecutor) StartWithOptions(
	_ context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return fmt.Errorf("invalid verb: %w", err)
	}
	file, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("invalid executable path %q: %w", name, err)
	}

	var params *uint16
	if len(args) > 0 {
		escaped := make([]string, len(args))
		for i, a := range args {
			escaped[i] = windows.EscapeArg(a)
		}
		params, err = windows.UTF16PtrFromString(strings.Join(escaped, " "))
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}

	var dir *uint16
	if opts.Dir != "" {
		dir, err = windows.UTF16PtrFromString(opts.Dir)
		if err != nil {
			return fmt.Errorf("invalid working directory %q: %w", opts.Dir, err)
		}
	}

	if err := windows.ShellExecute(0, verb, file, params, dir, swShowNormal); err != nil {
		return fmt.Errorf("shell execute %s: %w", name, err)
	}
	return nil
}
