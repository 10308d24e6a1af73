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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Settings is everything persisted in the settings file. Branch order is
// significant: it drives the default selection and display order.
type Settings struct {
	Launcher     Launcher     `toml:"launcher,omitempty"`
	Branches     []BranchInfo `toml:"branch,omitempty" validate:"unique=Name,dive"`
	DebugLogging bool         `toml:"debugLogging,omitempty"`
}

func (s *Settings) clone() Settings {
	c := Settings{
		Launcher:     s.Launcher.clone(),
		DebugLogging: s.DebugLogging,
	}
	if s.Branches != nil {
		c.Branches = make([]BranchInfo, len(s.Branches))
		for i := range s.Branches {
			c.Branches[i] = s.Branches[i].clone()
		}
	}
	return c
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Instance is the settings store. It owns the one live copy of the
// settings for the lifetime of the process.
type Instance struct {
	fs        afero.Fs
	cfgPath   string
	lastData  []byte
	listeners []listener
	vals      Settings
	nextID    int
	mu        syncutil.RWMutex
	listenMu  syncutil.Mutex
}

// NewConfig returns a store for the settings file in configDir. The
// OPENDCS_SETTINGS environment variable overrides the full file path.
// Nothing is read until Load is called.
func NewConfig(configDir string, fsys afero.Fs) (*Instance, error) {
	cfgPath := os.Getenv(SettingsEnv)
	log.Debug().Msgf("env settings path: %s", cfgPath)

	if cfgPath == "" {
		if configDir == "" {
			return nil, errors.New("config directory not set")
		}
		cfgPath = filepath.Join(configDir, SettingsFile)
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &Instance{
		fs:      fsys,
		cfgPath: cfgPath,
	}, nil
}

// Path is the absolute location of the settings file.
func (c *Instance) Path() string {
	return c.cfgPath
}

// Load replaces the in-memory settings with the contents of the settings
// file. A missing file gives empty settings. A malformed file returns a
// *ParseError and leaves the current settings untouched, so a later Save
// can't clobber a file the user may still be able to fix.
func (c *Instance) Load() error {
	snapshot, err := c.load(false)
	if err != nil {
		return err
	}
	if snapshot != nil {
		c.notify(*snapshot)
	}
	return nil
}

func (c *Instance) load(onlyIfChanged bool) (*Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if onlyIfChanged {
			return nil, nil //nolint:nilnil // nothing to reload
		}
		log.Info().Str("path", c.cfgPath).Msg("no settings file found, using empty settings")
		c.vals = Settings{}
		c.lastData = nil
		snapshot := c.vals.clone()
		return &snapshot, nil
	case err != nil:
		return nil, &IOError{Op: "read", Path: c.cfgPath, Err: err}
	}

	if onlyIfChanged {
		// an empty file is usually an editor halfway through a save
		if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(data, c.lastData) {
			return nil, nil //nolint:nilnil // nothing to reload
		}
	}

	newVals, err := decodeSettings(data)
	if err != nil {
		return nil, newParseError(c.cfgPath, err)
	}

	c.vals = newVals
	c.lastData = data

	setLogLevel(c.vals.DebugLogging)

	log.Info().
		Str("path", c.cfgPath).
		Int("branches", len(c.vals.Branches)).
		Msg("loaded settings")

	snapshot := c.vals.clone()
	return &snapshot, nil
}

func decodeSettings(data []byte) (Settings, error) {
	var vals Settings
	if err := toml.Unmarshal(data, &vals); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settingsValidator.Struct(&vals); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return vals, nil
}

// Save writes the in-memory settings over the settings file, creating the
// settings directory if needed. Settings that Load would reject are not
// written and ErrInvalid is returned. On a write failure an *IOError is
// returned. Either way the in-memory settings stay as they were.
func (c *Instance) Save() error {
	snapshot, err := c.save()
	if err != nil {
		return err
	}
	c.notify(snapshot)
	return nil
}

func (c *Instance) save() (Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := settingsValidator.Struct(&c.vals); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(c.cfgPath)
	if err := c.fs.MkdirAll(dir, 0o750); err != nil {
		return Settings{}, &IOError{Op: "create directory", Path: dir, Err: err}
	}

	// write then rename so a failed write never truncates the old file
	tmpPath := c.cfgPath + ".tmp"
	if err := afero.WriteFile(c.fs, tmpPath, data, 0o600); err != nil {
		_ = c.fs.Remove(tmpPath)
		return Settings{}, &IOError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := c.fs.Rename(tmpPath, c.cfgPath); err != nil {
		_ = c.fs.Remove(tmpPath)
		return Settings{}, &IOError{Op: "replace", Path: c.cfgPath, Err: err}
	}

	c.lastData = data
	log.Info().Str("path", c.cfgPath).Msg("saved settings")

	return c.vals.clone(), nil
}

// Settings returns a deep copy of the current settings.
func (c *Instance) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.clone()
}

// Branches returns a copy of the branches in registry order.
func (c *Instance) Branches() []BranchInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.clone().Branches
}

func (c *Instance) Branch(name string) (BranchInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Branch(name)
}

func (c *Instance) CreateOrUpdateBranch(name, directoryPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.CreateOrUpdateBranch(name, directoryPath)
}

func (c *Instance) RemoveBranch(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.RemoveBranch(name)
}

func (c *Instance) SetBranchMultiThreaded(name string, enabled bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vals.SetBranchMultiThreaded(name, enabled)
}

func (c *Instance) ShouldPromptForSettings() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ShouldPromptForSettings()
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	setLogLevel(enabled)
}

func setLogLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
