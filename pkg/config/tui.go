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
	"io/fs"
	"path/filepath"
	"sync/atomic"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// TUIConfig holds preferences for the terminal UI. They live in their own
// file so the branch settings stay exactly as the user wrote them.
type TUIConfig struct {
	Theme string `toml:"theme"`
	Mouse bool   `toml:"mouse"`
}

var tuiCfg atomic.Value

func DefaultTUIConfig() TUIConfig {
	return TUIConfig{
		Theme: "default",
		Mouse: true,
	}
}

func GetTUIConfig() TUIConfig {
	val := tuiCfg.Load()
	if val == nil {
		return DefaultTUIConfig()
	}
	cfg, ok := val.(TUIConfig)
	if !ok {
		return DefaultTUIConfig()
	}
	return cfg
}

func SetTUIConfig(cfg TUIConfig) {
	tuiCfg.Store(cfg)
}

// LoadTUIConfig reads the TUI preferences from configDir. A missing file
// leaves the defaults in place and is not an error.
func LoadTUIConfig(fsys afero.Fs, configDir string) error {
	tuiPath := filepath.Join(configDir, TUIFile)

	data, err := afero.ReadFile(fsys, tuiPath)
	if errors.Is(err, fs.ErrNotExist) {
		tuiCfg.Store(DefaultTUIConfig())
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read TUI config: %w", err)
	}

	cfg := DefaultTUIConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal TUI config: %w", err)
	}

	log.Debug().Str("path", tuiPath).Msg("loaded TUI config")
	tuiCfg.Store(cfg)
	return nil
}

func SaveTUIConfig(fsys afero.Fs, configDir string) error {
	data, err := toml.Marshal(GetTUIConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal TUI config: %w", err)
	}

	if err := fsys.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fsys, filepath.Join(configDir, TUIFile), data, 0o600); err != nil {
		return fmt.Errorf("failed to write TUI config: %w", err)
	}

	return nil
}
