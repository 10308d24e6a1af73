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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows/registry"
)

type Platform struct {
	// Fs is used to check detected directories. Nil means the OS.
	Fs afero.Fs
}

func (*Platform) ID() string {
	return platforms.PlatformIDWindows
}

// Settings puts everything under %LOCALAPPDATA%.
func (*Platform) Settings() platforms.Settings {
	dataDir := filepath.Join(xdg.DataHome, config.AppName)
	return platforms.Settings{
		DataDir:   dataDir,
		ConfigDir: dataDir,
		LogDir:    filepath.Join(dataDir, "logs"),
	}
}

func (p *Platform) DetectInstalls() []config.BranchInfo {
	fsys := p.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}

	return platforms.DetectInstalls(fsys, InstallSources(programFiles), readInstallPath)
}

func readInstallPath(keyPath string) (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, keyPath, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", fs.ErrNotExist
	} else if err != nil {
		return "", fmt.Errorf("failed to open registry key %s: %w", keyPath, err)
	}
	defer func() {
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
	}()

	path, _, err := key.GetStringValue(installPathValue)
	if errors.Is(err, registry.ErrNotExist) {
		return "", fs.ErrNotExist
	} else if err != nil {
		return "", fmt.Errorf("failed to read %s\\%s: %w", keyPath, installPathValue, err)
	}

	return path, nil
}
