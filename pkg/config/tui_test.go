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
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TUI config is process-global, so these tests don't run in parallel.

func TestTUIConfig_MissingFileUsesDefaults(t *testing.T) {
	SetTUIConfig(TUIConfig{Theme: "other"})

	require.NoError(t, LoadTUIConfig(afero.NewMemMapFs(), testConfigDir))
	assert.Equal(t, DefaultTUIConfig(), GetTUIConfig())
}

func TestTUIConfig_SaveAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	SetTUIConfig(TUIConfig{Theme: "default", Mouse: false})
	require.NoError(t, SaveTUIConfig(fsys, testConfigDir))

	exists, err := afero.Exists(fsys, filepath.Join(testConfigDir, TUIFile))
	require.NoError(t, err)
	assert.True(t, exists)

	SetTUIConfig(DefaultTUIConfig())
	require.NoError(t, LoadTUIConfig(fsys, testConfigDir))
	assert.False(t, GetTUIConfig().Mouse)
}

func TestTUIConfig_Malformed(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(testConfigDir, TUIFile), []byte("mouse = "), 0o600))

	require.Error(t, LoadTUIConfig(fsys, testConfigDir))
}
