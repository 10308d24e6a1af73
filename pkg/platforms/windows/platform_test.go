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

package windows

import (
	"path/filepath"
	"testing"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_Settings(t *testing.T) {
	t.Parallel()

	p := &Platform{}
	settings := p.Settings()

	assert.Equal(t, platforms.PlatformIDWindows, p.ID())
	assert.Equal(t, config.AppName, filepath.Base(settings.ConfigDir))
	assert.Equal(t, settings.DataDir, settings.ConfigDir)
	require.NotEmpty(t, settings.LogDir)
}

func TestReadInstallPath_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := readInstallPath(`Software\Open DCS Launcher Tests\Missing`)
	require.Error(t, err)
}
