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
	"context"
	"path/filepath"
	"testing"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/command"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The App tests are not parallel: the theme and TUI preferences are global.

type fakeFinder struct {
	procs []launcher.ProcessInfo
}

func (f fakeFinder) Processes(context.Context) ([]launcher.ProcessInfo, error) {
	return f.procs, nil
}

type appFixture struct {
	app      *App
	store    *config.Instance
	cmd      *mocks.MockCommandExecutor
	platform *mocks.MockPlatform
	fs       afero.Fs
}

func newTestApp(t *testing.T, fs afero.Fs, branches ...config.BranchInfo) *appFixture {
	t.Helper()

	store := newTestStore(t, fs)
	for _, b := range branches {
		store.CreateOrUpdateBranch(b.Name, b.DirectoryPath)
	}

	f := &appFixture{
		store:    store,
		cmd:      &mocks.MockCommandExecutor{},
		platform: mocks.NewMockPlatform(),
		fs:       fs,
	}
	f.app = New(Options{
		Store:     store,
		Launcher:  launcher.New(store, f.cmd),
		Platform:  f.platform,
		Finder:    fakeFinder{},
		Fs:        fs,
		ConfigDir: testConfigDir,
	})
	f.app.queue = func(fn func()) { fn() }

	t.Cleanup(func() {
		f.app.Close()
		f.cmd.AssertExpectations(t)
		f.platform.AssertExpectations(t)
		config.SetTUIConfig(config.DefaultTUIConfig())
		SetCurrentTheme("default")
	})
	return f
}

func (f *appFixture) options() []string {
	dd := f.app.main.dropdown
	current, _ := dd.GetCurrentOption()
	opts := make([]string, dd.GetOptionCount())
	for i := range opts {
		dd.SetCurrentOption(i)
		_, opts[i] = dd.GetCurrentOption()
	}
	if current >= 0 {
		dd.SetCurrentOption(current)
	}
	return opts
}

func (f *appFixture) frontPage() string {
	name, _ := f.app.pages.GetFrontPage()
	return name
}

func TestApp_MainPageListsSelections(t *testing.T) {
	f := newTestApp(t, newInstallFs(t),
		config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot},
		config.BranchInfo{Name: "Beta", DirectoryPath: betaRoot},
	)

	f.app.ShowMain()

	assert.Equal(t, pageMain, f.frontPage())
	assert.Equal(t, []string{"Stable", "Beta (Multi-threaded)", "Beta"}, f.options())
	_, text := f.app.main.dropdown.GetCurrentOption()
	assert.Equal(t, "Stable", text)
}

func TestApp_NoBranchesStatus(t *testing.T) {
	f := newTestApp(t, newInstallFs(t))

	f.app.ShowMain()

	assert.Empty(t, f.options())
	assert.Equal(t, noBranchesStatus, f.app.main.status.GetText(true))

	f.app.runAction(f.app.model.Launch)
	assert.Equal(t, "no branch selected", f.app.main.status.GetText(true))
	assert.False(t, f.app.Exited())
}

func TestApp_RebuildsOnSave(t *testing.T) {
	f := newTestApp(t, newInstallFs(t), config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot})
	f.app.ShowMain()

	f.store.CreateOrUpdateBranch("Beta", betaRoot)
	require.NoError(t, f.store.Save())

	assert.Equal(t, []string{"Stable", "Beta (Multi-threaded)", "Beta"}, f.options())
}

func TestApp_DropDownSetsCurrent(t *testing.T) {
	f := newTestApp(t, newInstallFs(t), config.BranchInfo{Name: "Beta", DirectoryPath: betaRoot})
	f.app.ShowMain()

	f.app.main.dropdown.SetCurrentOption(1)

	sel, _, ok := f.app.model.Current()
	require.True(t, ok)
	assert.Equal(t, "Beta", sel.String())
}

func TestApp_LaunchExits(t *testing.T) {
	f := newTestApp(t, newInstallFs(t), config.BranchInfo{Name: "Beta", DirectoryPath: betaRoot})
	f.app.ShowMain()

	binMt := filepath.Join(betaRoot, "bin-mt")
	f.cmd.On("StartWithOptions", mock.Anything, command.StartOptions{Dir: binMt},
		filepath.Join(binMt, "DCS.exe"), []string(nil)).Return(nil).Once()

	f.app.runAction(f.app.model.Launch)

	assert.True(t, f.app.Exited())
	assert.Equal(t, "Launching Beta (Multi-threaded)", f.app.main.status.GetText(true))
}

func TestApp_UpdateShowsResult(t *testing.T) {
	f := newTestApp(t, newInstallFs(t), config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot})
	f.app.ShowMain()

	bin := filepath.Join(stableRoot, "bin")
	f.cmd.On("StartWithOptions", mock.Anything, command.StartOptions{Dir: bin},
		filepath.Join(bin, "DCS_updater.exe"), []string{"update"}).Return(nil).Once()

	f.app.runAction(f.app.model.Update)

	assert.False(t, f.app.Exited())
	assert.Equal(t, "Updating Stable", f.app.main.status.GetText(true))
}

func TestApp_SettingsSave(t *testing.T) {
	f := newTestApp(t, newInstallFs(t, stableRoot))

	f.app.ShowSettings()
	require.Equal(t, pageSettings, f.frontPage())
	require.Len(t, f.app.settings.rows, 2)

	f.app.settings.rows[0].path.SetText(filepath.Join(stableRoot, "bin", "DCS.exe"))
	f.app.saveSettings(f.app.settings)

	assert.Equal(t, pageMain, f.frontPage())
	b, ok := f.store.Branch("Stable")
	require.True(t, ok)
	assert.Equal(t, stableRoot, b.DirectoryPath)
	assert.Equal(t, []string{"Stable"}, f.options())
}

func TestApp_SettingsInvalidPath(t *testing.T) {
	f := newTestApp(t, newInstallFs(t))

	f.app.ShowSettings()
	f.app.settings.rows[1].path.SetText("/nowhere")
	f.app.saveSettings(f.app.settings)

	assert.Equal(t, pageSettings, f.frontPage())
	assert.Contains(t, f.app.settings.errLine.GetText(true), pickInstallMessage)
	assert.True(t, f.store.ShouldPromptForSettings())
}

func TestApp_SettingsDetect(t *testing.T) {
	f := newTestApp(t, newInstallFs(t))
	f.platform.On("DetectInstalls").Return([]config.BranchInfo{
		{Name: "Beta", DirectoryPath: betaRoot},
	}).Once()

	f.app.ShowSettings()
	f.app.detectInstalls(f.app.settings)

	assert.Empty(t, f.app.settings.rows[0].path.GetText())
	assert.Equal(t, betaRoot, f.app.settings.rows[1].path.GetText())
	assert.Contains(t, f.app.settings.errLine.GetText(true), "Found 1 install(s)")
}

func TestApp_SettingsTheme(t *testing.T) {
	f := newTestApp(t, newInstallFs(t, stableRoot), config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot})

	f.app.ShowSettings()
	f.app.settings.theme.SetCurrentOption(2)
	f.app.saveSettings(f.app.settings)

	assert.Equal(t, "night", config.GetTUIConfig().Theme)
	assert.Equal(t, "night", CurrentTheme().Name)
	exists, err := afero.Exists(f.fs, filepath.Join(testConfigDir, config.TUIFile))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApp_RunningStatus(t *testing.T) {
	f := newTestApp(t, newInstallFs(t),
		config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot},
		config.BranchInfo{Name: "Beta", DirectoryPath: betaRoot},
	)

	assert.Contains(t, f.app.runningStatus(context.Background()), "DCS World is not running")

	f.app.finder = fakeFinder{procs: []launcher.ProcessInfo{
		{PID: 77, Exe: filepath.Join(betaRoot, "bin-mt", "DCS.exe")},
	}}
	assert.Contains(t, f.app.runningStatus(context.Background()), "DCS World Beta is running (pid 77)")
}

func TestApp_MainPageDraws(t *testing.T) {
	f := newTestApp(t, newInstallFs(t), config.BranchInfo{Name: "Stable", DirectoryPath: stableRoot})
	f.app.ShowMain()

	text := drawText(t, f.app.main.frame, 100, 14)

	assert.Contains(t, text, config.AppName+" v"+config.AppVersion)
	assert.Contains(t, text, "Branch: Stable")
	for _, label := range []string{"Launch", "Update", "Repair", "Cleanup", "Settings", "Quit"} {
		assert.Contains(t, text, label)
	}
}
