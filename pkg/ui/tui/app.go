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

// Package tui is the terminal front end: a main page to pick a branch and
// run an action, and a settings page to set install directories.
package tui

import (
	"fmt"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/syncutil"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/ui/selection"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	pageMain     = "main"
	pageSettings = "settings"
)

type Options struct {
	Store    *config.Instance
	Launcher *launcher.Launcher
	Platform platforms.Platform
	// Finder lists processes for the running-game status. Nil means the
	// real process table.
	Finder launcher.ProcessFinder
	// Fs and ConfigDir locate the TUI preferences file.
	Fs        afero.Fs
	ConfigDir string
}

// App is the terminal UI. It is the selection model's presenter.
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	model     *selection.Model
	store     *config.Instance
	runner    *launcher.Launcher
	platform  platforms.Platform
	finder    launcher.ProcessFinder
	fs        afero.Fs
	main      *mainPage
	settings  *settingsPage
	queue     func(func())
	configDir string
	exited    bool
	mu        syncutil.Mutex
}

// New builds the UI without starting it. Call Run to take over the
// terminal, and Close once it returns.
func New(opts Options) *App {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		store:     opts.Store,
		runner:    opts.Launcher,
		platform:  opts.Platform,
		finder:    opts.Finder,
		fs:        fsys,
		configDir: opts.ConfigDir,
	}
	a.queue = func(f func()) {
		a.app.QueueUpdateDraw(f)
	}

	if err := config.LoadTUIConfig(fsys, opts.ConfigDir); err != nil {
		log.Warn().Err(err).Msg("using default TUI settings")
	}
	if !SetCurrentTheme(config.GetTUIConfig().Theme) {
		ApplyTheme(CurrentTheme())
	}

	a.model = selection.NewModel(opts.Store, opts.Launcher, a)
	a.main = a.buildMainPage()
	a.pages.AddPage(pageMain, a.main.frame, true, true)
	a.model.OnRebuild(func() {
		a.queue(a.refreshSelections)
	})

	a.app.SetRoot(a.pages, true).
		EnableMouse(config.GetTUIConfig().Mouse)

	return a
}

// Run shows the settings page on first run, otherwise the main page, and
// blocks until the user quits or a launch hands off to the game.
func (a *App) Run() error {
	if a.store.ShouldPromptForSettings() {
		a.ShowSettings()
	} else {
		a.ShowMain()
	}

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}

// Close detaches the UI from the settings store.
func (a *App) Close() {
	a.model.Close()
}

func (a *App) ShowMain() {
	a.refreshSelections()
	a.pages.SwitchToPage(pageMain)
	a.app.SetFocus(a.main.frame)
	a.checkRunning()
}

func (a *App) ShowSettings() {
	a.settings = a.buildSettingsPage()
	a.pages.AddAndSwitchToPage(pageSettings, a.settings.frame, true)
	a.app.SetFocus(a.settings.frame)
}

// Exit stops the UI. The process exits once Run returns.
func (a *App) Exit() {
	a.mu.Lock()
	a.exited = true
	a.mu.Unlock()
	a.app.Stop()
}

// Exited reports whether Exit has been called.
func (a *App) Exited() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exited
}

// Model exposes the selection model the UI is showing.
func (a *App) Model() *selection.Model {
	return a.model
}
