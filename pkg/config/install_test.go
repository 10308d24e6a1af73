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

func TestNormalizeInstallDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace", in: "   ", want: ""},
		{name: "root dir", in: "/games/DCS World", want: "/games/DCS World"},
		{name: "trailing separator", in: "/games/DCS World/", want: "/games/DCS World"},
		{name: "game exe in bin", in: "/games/DCS World/bin/DCS.exe", want: "/games/DCS World"},
		{name: "game exe in bin-mt", in: "/games/DCS World/bin-mt/DCS.exe", want: "/games/DCS World"},
		{name: "upper case names", in: "/games/DCS World/BIN/dcs.EXE", want: "/games/DCS World"},
		{name: "exe elsewhere", in: "/games/DCS World/DCS.exe", want: "/games/DCS World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, filepath.FromSlash(tt.want), NormalizeInstallDir(filepath.FromSlash(tt.in)))
		})
	}
}

func TestValidateInstallDir(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	root := "/games/dcs"
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "bin"), 0o750))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "bin", "DCS.exe"), nil, 0o600))
	require.NoError(t, fsys.MkdirAll("/games/empty", 0o750))
	require.NoError(t, afero.WriteFile(fsys, "/games/file", nil, 0o600))

	require.NoError(t, ValidateInstallDir(fsys, root, "DCS.exe"))
	require.ErrorIs(t, ValidateInstallDir(fsys, "/games/missing", "DCS.exe"), ErrInstallDirMissing)
	require.ErrorIs(t, ValidateInstallDir(fsys, "/games/file", "DCS.exe"), ErrInstallDirMissing)
	require.ErrorIs(t, ValidateInstallDir(fsys, "/games/empty", "DCS.exe"), ErrGameExeMissing)
	require.ErrorIs(t, ValidateInstallDir(fsys, root, "Other.exe"), ErrGameExeMissing)
}

func TestInstance_ValidateInstallDir(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeSettings(t, fsys, "[launcher]\ngameExecutable = \"Game.exe\"\n")
	require.NoError(t, fsys.MkdirAll("/games/dcs/bin", 0o750))
	require.NoError(t, afero.WriteFile(fsys, "/games/dcs/bin/Game.exe", nil, 0o600))

	cfg := newTestConfig(t, fsys)
	require.NoError(t, cfg.Load())

	require.NoError(t, cfg.ValidateInstallDir("/games/dcs"))
}
