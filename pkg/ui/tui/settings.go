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

package tui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
)

const pickInstallMessage = "You must pick a DCS.exe file or DCS World folder to continue."

// BranchEdit is one row of the settings page.
type BranchEdit struct {
	Name          string
	Path          string
	MultiThreaded bool
}

// BranchStore is the part of the settings store the settings page edits.
type BranchStore interface {
	Branches() []config.BranchInfo
	Branch(name string) (config.BranchInfo, bool)
	CreateOrUpdateBranch(name, directoryPath string)
	RemoveBranch(name string)
	SetBranchMultiThreaded(name string, enabled bool) bool
	ValidateInstallDir(dir string) error
	Save() error
}

// branchNames lists Stable and Beta first, then any other branches from the
// settings file in registry order.
func branchNames(branches []config.BranchInfo) []string {
	names := []string{config.BranchStable, config.BranchBeta}
	for _, b := range branches {
		if !slices.Contains(names, b.Name) {
			names = append(names, b.Name)
		}
	}
	return names
}

// editsFromStore returns the initial settings rows.
func editsFromStore(store BranchStore) []BranchEdit {
	names := branchNames(store.Branches())
	edits := make([]BranchEdit, len(names))
	for i, name := range names {
		b, ok := store.Branch(name)
		if !ok {
			b = config.BranchInfo{Name: name}
		}
		edits[i] = BranchEdit{
			Name:          name,
			Path:          b.DirectoryPath,
			MultiThreaded: b.SupportsMultiThreading(),
		}
	}
	return edits
}

// ApplyBranchEdits validates every non-empty path, then writes all rows to
// the store and saves. Clearing a path removes the branch. A branch that
// had no path to begin with is kept, along with its other settings.
// Nothing is changed if any path is invalid.
func ApplyBranchEdits(store BranchStore, edits []BranchEdit) error {
	dirs := make([]string, len(edits))
	for i, e := range edits {
		dirs[i] = config.NormalizeInstallDir(e.Path)
		if dirs[i] == "" {
			continue
		}
		if err := store.ValidateInstallDir(dirs[i]); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
	}

	for i, e := range edits {
		if dirs[i] == "" {
			existing, ok := store.Branch(e.Name)
			switch {
			case !ok:
			case existing.HasDirectory():
				store.RemoveBranch(e.Name)
			case e.MultiThreaded != existing.SupportsMultiThreading():
				store.SetBranchMultiThreaded(e.Name, e.MultiThreaded)
			}
			continue
		}
		store.CreateOrUpdateBranch(e.Name, dirs[i])

		// only write the attribute when it differs from what the file
		// would imply without it
		existing, _ := store.Branch(e.Name)
		implied := config.BranchInfo{Name: e.Name}.SupportsMultiThreading()
		if existing.MultiThreaded != nil || e.MultiThreaded != implied {
			store.SetBranchMultiThreaded(e.Name, e.MultiThreaded)
		}
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// settingsErrorMessage is what the settings page shows for err.
func settingsErrorMessage(err error) string {
	if errors.Is(err, config.ErrInstallDirMissing) || errors.Is(err, config.ErrGameExeMissing) {
		return err.Error() + ". " + pickInstallMessage
	}
	return err.Error()
}

// fillDetected copies detected install directories into rows with an
// empty path. It returns how many rows it filled.
func fillDetected(edits []BranchEdit, detected []config.BranchInfo) int {
	filled := 0
	for _, d := range detected {
		for i := range edits {
			if edits[i].Name == d.Name && edits[i].Path == "" {
				edits[i].Path = d.DirectoryPath
				filled++
			}
		}
	}
	return filled
}
