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

package windows

import (
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
)

const (
	stableRegistryKey = `Software\Eagle Dynamics\DCS World`
	betaRegistryKey   = `Software\Eagle Dynamics\DCS World OpenBeta`
	installPathValue  = "Path"
)

// InstallSources lists where the DCS World installer records each branch,
// under HKEY_CURRENT_USER, plus the installer's default locations.
func InstallSources(programFiles string) []platforms.InstallSource {
	return []platforms.InstallSource{
		{
			Branch:    config.BranchStable,
			Key:       stableRegistryKey,
			Fallbacks: []string{programFiles + `\Eagle Dynamics\DCS World`},
		},
		{
			Branch:    config.BranchBeta,
			Key:       betaRegistryKey,
			Fallbacks: []string{programFiles + `\Eagle Dynamics\DCS World OpenBeta`},
		},
	}
}
