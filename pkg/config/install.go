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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrInstallDirMissing = errors.New("install directory does not exist")
	ErrGameExeMissing    = errors.New("game executable not found")
)

// NormalizeInstallDir turns whatever the user picked into an install root.
// Picking the game executable itself, e.g. <root>/bin/DCS.exe, is accepted
// and resolves to <root>.
func NormalizeInstallDir(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}
	p = filepath.Clean(p)

	if !strings.EqualFold(filepath.Ext(p), ".exe") {
		return p
	}

	parent := filepath.Dir(p)
	switch strings.ToLower(filepath.Base(parent)) {
	case binDirName, binMtDirName:
		return filepath.Dir(parent)
	default:
		return parent
	}
}

// ValidateInstallDir checks that dir looks like a DCS World install, i.e.
// it holds bin/<gameExe>.
func ValidateInstallDir(fsys afero.Fs, dir, gameExe string) error {
	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInstallDirMissing, dir)
	}

	exe := filepath.Join(dir, binDirName, gameExe)
	if _, err := fsys.Stat(exe); err != nil {
		return fmt.Errorf("%w: %s", ErrGameExeMissing, exe)
	}

	return nil
}

// ValidateInstallDir checks dir against the store's filesystem and the
// configured game executable.
func (c *Instance) ValidateInstallDir(dir string) error {
	return ValidateInstallDir(c.fs, dir, c.Launcher().GameExecutable)
}
