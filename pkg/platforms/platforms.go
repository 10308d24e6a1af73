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

package platforms

import (
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms/ids"
)

const (
	PlatformIDLinux   = ids.Linux
	PlatformIDWindows = ids.Windows
)

// Settings defines all simple settings/configuration values available for a
// platform.
type Settings struct {
	// DataDir is the per-user local application data folder.
	DataDir string
	// ConfigDir is where the settings file is stored. WARNING: This value
	// should be accessed using the ConfigDir function in the helpers package,
	// which honours a portable user dir.
	ConfigDir string
	// LogDir is where the rotating log file is written.
	LogDir string
}

// Platform is everything the launcher needs to know about the OS it's
// running on.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns all simple platform-specific settings such as paths.
	Settings() Settings
	// DetectInstalls returns DCS World installs found on this machine, in
	// branch order. Only branches with an existing directory are returned.
	DetectInstalls() []config.BranchInfo
}
