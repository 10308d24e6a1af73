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

//go:build linux

// Package linux supports running the launcher against a Wine install of
// DCS World.
package linux

import (
	"path/filepath"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

// DefaultRunner is what DCS World's Windows executables are started
// through.
var DefaultRunner = []string{"wine"}

type Platform struct {
	// Fs is used to check detected directories. Nil means the OS.
	Fs afero.Fs
}

func (*Platform) ID() string {
	return platforms.PlatformIDLinux
}

func (*Platform) Settings() platforms.Settings {
	return platforms.Settings{
		DataDir:   filepath.Join(xdg.DataHome, config.AppName),
		ConfigDir: filepath.Join(xdg.DataHome, config.AppName),
		LogDir:    filepath.Join(xdg.StateHome, config.AppName),
	}
}

// DetectInstalls checks the installer's default locations inside the
// default Wine prefix. There's no registry to read.
func (p *Platform) DetectInstalls() []config.BranchInfo {
	fsys := p.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return platforms.DetectInstalls(fsys, InstallSources(xdg.Home), nil)
}

func InstallSources(home string) []platforms.InstallSource {
	eagle := filepath.Join(home, ".wine", "drive_c", "Program Files", "Eagle Dynamics")
	return []platforms.InstallSource{
		{Branch: config.BranchStable, Fallbacks: []string{filepath.Join(eagle, "DCS World")}},
		{Branch: config.BranchBeta, Fallbacks: []string{filepath.Join(eagle, "DCS World OpenBeta")}},
	}
}
