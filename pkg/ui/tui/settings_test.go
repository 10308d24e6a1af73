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
	"path/filepath"
	"testing"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigDir = "/home/pilot/.local/share/Open DCS Launcher"

var (
	stableRoot = filepath.Join("/", "games", "DCS World")
	betaRoot   = filepath.Join("/", "games", "DCS World OpenBeta")
)

func newInstallFs(t *testing.T, roots ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, root := range roots {
		exe := filepath.Join(root, "bin", config.DefaultGameExecutable)
		require.NoError(t, fs.MkdirAll(filepath.Dir(exe), 0o750))
		require.NoError(t, afero.WriteFile(fs, exe, []byte("MZ"), 0o600))
	}
	return fs
}

func newTestStore(t *testing.T, fs afero.Fs) *config.Instance {
	t.Helper()
	store, err := config.NewConfig(testConfigDir, fs)
	require.NoError(t, err)
	require.NoError(t, store.Load())
	return store
}

func TestBranchNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Stable", "Beta"}, branchNames(nil))
	assert.Equal(t, []string{"Stable", "Beta", "Server"}, branchNames([]config.BranchInfo{
		{Name: "Beta"}, {Name: "Server"}, {Name: "Stable"},
	}))
}

func TestEditsFromStore(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newInstallFs(t))
	store.CreateOrUpdateBranch("Beta", betaRoot)
	store.CreateOrUpdateBranch("Server", "/srv/dcs")

	edits := editsFromStore(store)

	assert.Equal(t, []BranchEdit{
		{Name: "Stable"},
		{Name: "Beta", Path: betaRoot, MultiThreaded: true},
		{Name: "Server", Path: "/srv/dcs"},
	}, edits)
}

func TestApplyBranchEdits(t *testing.T) {
	t.Parallel()

	fs := newInstallFs(t, stableRoot, betaRoot)
	store := newTestStore(t, fs)

	err := ApplyBranchEdits(store, []BranchEdit{
		{Name: "Stable", Path: filepath.Join(stableRoot, "bin", "DCS.exe")},
		{Name: "Beta", Path: betaRoot, MultiThreaded: true},
	})
	require.NoError(t, err)

	branches := store.Branches()
	require.Len(t, branches, 2)
	assert.Equal(t, config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot}, branches[0])
	// matches the legacy default so no explicit attribute is written
	assert.Equal(t, config.BranchInfo{Name: "Beta", DirectoryPath: betaRoot}, branches[1])

	exists, err := afero.Exists(fs, store.Path())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApplyBranchEdits_ExplicitMultiThreading(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newInstallFs(t, stableRoot, betaRoot))

	require.NoError(t, ApplyBranchEdits(store, []BranchEdit{
		{Name: "Stable", Path: stableRoot, MultiThreaded: true},
		{Name: "Beta", Path: betaRoot, MultiThreaded: false},
	}))

	stable, _ := store.Branch("Stable")
	beta, _ := store.Branch("Beta")
	require.NotNil(t, stable.MultiThreaded)
	require.NotNil(t, beta.MultiThreaded)
	assert.True(t, *stable.MultiThreaded)
	assert.False(t, *beta.MultiThreaded)
}

func TestApplyBranchEdits_EmptyPathRemoves(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newInstallFs(t, betaRoot))
	store.CreateOrUpdateBranch("Stable", stableRoot)
	store.CreateOrUpdateBranch("Beta", betaRoot)

	require.NoError(t, ApplyBranchEdits(store, []BranchEdit{
		{Name: "Stable", Path: "  "},
		{Name: "Beta", Path: betaRoot, MultiThreaded: true},
	}))

	_, ok := store.Branch("Stable")
	assert.False(t, ok)
	_, ok = store.Branch("Beta")
	assert.True(t, ok)
}

func TestApplyBranchEdits_KeepsBranchWithoutPath(t *testing.T) {
	t.Parallel()

	fs := newInstallFs(t, stableRoot)
	require.NoError(t, fs.MkdirAll(testConfigDir, 0o750))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testConfigDir, config.SettingsFile), []byte(`
[[branch]]
name = "Stable"
directoryPath = '/games/DCS World'

[[branch]]
name = "Nightly"
multiThreaded = true
`), 0o600))
	store := newTestStore(t, fs)
	before := store.Branches()
	require.Len(t, before, 2)

	require.NoError(t, ApplyBranchEdits(store, editsFromStore(store)))

	assert.Equal(t, before, store.Branches())

	reloaded := newTestStore(t, fs)
	nightly, ok := reloaded.Branch("Nightly")
	require.True(t, ok)
	require.NotNil(t, nightly.MultiThreaded)
	assert.True(t, *nightly.MultiThreaded)
}

func TestApplyBranchEdits_PathlessBranchMultiThreading(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newInstallFs(t))
	store.CreateOrUpdateBranch("Nightly", "")

	require.NoError(t, ApplyBranchEdits(store, []BranchEdit{
		{Name: "Nightly", MultiThreaded: true},
	}))

	nightly, ok := store.Branch("Nightly")
	require.True(t, ok)
	assert.True(t, nightly.SupportsMultiThreading())
}

func TestApplyBranchEdits_InvalidLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	fs := newInstallFs(t, stableRoot)
	store := newTestStore(t, fs)
	store.CreateOrUpdateBranch("Stable", stableRoot)

	saved := 0
	unsubscribe := store.OnChange(func(config.Settings) { saved++ })
	t.Cleanup(unsubscribe)

	err := ApplyBranchEdits(store, []BranchEdit{
		{Name: "Stable", Path: ""},
		{Name: "Beta", Path: "/nowhere"},
	})

	require.ErrorIs(t, err, config.ErrInstallDirMissing)
	assert.Contains(t, err.Error(), "Beta: ")
	assert.Equal(t, []config.BranchInfo{{Name: "Stable", DirectoryPath: stableRoot}}, store.Branches())
	assert.Zero(t, saved)
}

func TestApplyBranchEdits_MissingExecutable(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(stableRoot, 0o750))
	store := newTestStore(t, fs)

	err := ApplyBranchEdits(store, []BranchEdit{{Name: "Stable", Path: stableRoot}})

	require.ErrorIs(t, err, config.ErrGameExeMissing)
	assert.Contains(t, settingsErrorMessage(err), pickInstallMessage)
}

func TestApplyBranchEdits_SaveError(t *testing.T) {
	t.Parallel()

	fs := newInstallFs(t, stableRoot)
	store := newTestStore(t, afero.NewReadOnlyFs(fs))

	err := ApplyBranchEdits(store, []BranchEdit{{Name: "Stable", Path: stableRoot}})

	require.ErrorIs(t, err, config.ErrIO)
	assert.NotContains(t, settingsErrorMessage(err), pickInstallMessage)
}

func TestFillDetected(t *testing.T) {
	t.Parallel()

	edits := []BranchEdit{
		{Name: "Stable", Path: "/mine"},
		{Name: "Beta"},
	}
	filled := fillDetected(edits, []config.BranchInfo{
		{Name: "Stable", DirectoryPath: stableRoot},
		{Name: "Beta", DirectoryPath: betaRoot},
		{Name: "Server", DirectoryPath: "/srv"},
	})

	assert.Equal(t, 1, filled)
	assert.Equal(t, "/mine", edits[0].Path)
	assert.Equal(t, betaRoot, edits[1].Path)
}

func TestSettingsErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disk full", settingsErrorMessage(errors.New("disk full")))
}
