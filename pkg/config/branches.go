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
	"slices"
	"strings"
)

const (
	BranchStable = "Stable"
	BranchBeta   = "Beta"

	// legacyMultiThreadedBranch is the only branch offered a multi-threaded
	// launch when the settings file predates the multiThreaded key.
	legacyMultiThreadedBranch = BranchBeta

	binDirName   = "bin"
	binMtDirName = "bin-mt"
)

// BranchInfo is one installed copy of DCS World.
type BranchInfo struct {
	MultiThreaded *bool  `toml:"multiThreaded,omitempty"`
	Name          string `toml:"name" validate:"required"`
	DirectoryPath string `toml:"directoryPath,omitempty"`
}

// BinPath is the directory holding the single-threaded game and the updater.
func (b BranchInfo) BinPath() string {
	return filepath.Join(b.DirectoryPath, binDirName)
}

// BinMtPath is the directory holding the multi-threaded game binary.
func (b BranchInfo) BinMtPath() string {
	return filepath.Join(b.DirectoryPath, binMtDirName)
}

// HasDirectory reports whether an install directory has been configured.
func (b BranchInfo) HasDirectory() bool {
	return strings.TrimSpace(b.DirectoryPath) != ""
}

// SupportsMultiThreading reports whether the branch gets a multi-threaded
// launch option. An explicit multiThreaded value always wins.
func (b BranchInfo) SupportsMultiThreading() bool {
	if b.MultiThreaded != nil {
		return *b.MultiThreaded
	}
	return b.Name == legacyMultiThreadedBranch
}

func (b BranchInfo) String() string {
	return b.Name
}

func (b BranchInfo) clone() BranchInfo {
	c := b
	if b.MultiThreaded != nil {
		mt := *b.MultiThreaded
		c.MultiThreaded = &mt
	}
	return c
}

// CreateOrUpdateBranch sets the directory of the named branch, appending a
// new branch when none exists. Existing branches keep their position.
func (s *Settings) CreateOrUpdateBranch(name, directoryPath string) {
	if i := s.branchIndex(name); i >= 0 {
		s.Branches[i].DirectoryPath = directoryPath
		return
	}
	s.Branches = append(s.Branches, BranchInfo{
		Name:          name,
		DirectoryPath: directoryPath,
	})
}

// Branch returns a copy of the named branch.
func (s *Settings) Branch(name string) (BranchInfo, bool) {
	i := s.branchIndex(name)
	if i < 0 {
		return BranchInfo{}, false
	}
	return s.Branches[i].clone(), true
}

// RemoveBranch deletes the named branch. Unknown names are ignored.
func (s *Settings) RemoveBranch(name string) {
	if i := s.branchIndex(name); i >= 0 {
		s.Branches = slices.Delete(s.Branches, i, i+1)
	}
}

// SetBranchMultiThreaded stores an explicit multi-threading choice for the
// named branch. It returns false if the branch doesn't exist.
func (s *Settings) SetBranchMultiThreaded(name string, enabled bool) bool {
	i := s.branchIndex(name)
	if i < 0 {
		return false
	}
	s.Branches[i].MultiThreaded = &enabled
	return true
}

// ShouldPromptForSettings is true on first run, before any branch is known.
func (s *Settings) ShouldPromptForSettings() bool {
	return len(s.Branches) < 1
}

func (s *Settings) branchIndex(name string) int {
	return slices.IndexFunc(s.Branches, func(b BranchInfo) bool {
		return b.Name == name
	})
}
