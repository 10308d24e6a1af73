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
	"fmt"
	"slices"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const settingsHints = "Tab: Next | Space: Toggle | Enter: Select | ESC: Cancel"

type branchRow struct {
	path  *tview.InputField
	multi *tview.Checkbox
	name  string
}

type settingsPage struct {
	frame   *PageFrame
	form    *tview.Form
	theme   *tview.DropDown
	errLine *tview.TextView
	rows    []branchRow
}

func (a *App) buildSettingsPage() *settingsPage {
	sp := &settingsPage{
		frame:   NewPageFrame(a.app),
		form:    tview.NewForm(),
		errLine: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
	}

	for _, e := range editsFromStore(a.store) {
		row := branchRow{
			name: e.Name,
			path: setupInputFieldFocus(tview.NewInputField().
				SetLabel(e.Name + " directory").
				SetText(e.Path).
				SetPlaceholder(`e.g. C:\Program Files\Eagle Dynamics\DCS World`)),
			multi: tview.NewCheckbox().
				SetLabel(e.Name + " multi-threaded").
				SetChecked(e.MultiThreaded),
		}
		sp.rows = append(sp.rows, row)
		sp.form.AddFormItem(row.path)
		sp.form.AddFormItem(row.multi)
	}

	current := config.GetTUIConfig().Theme
	themeIndex := max(slices.Index(ThemeNames, current), 0)
	themeLabels := make([]string, len(ThemeNames))
	for i, name := range ThemeNames {
		themeLabels[i] = AvailableThemes[name].DisplayName
	}
	sp.theme = tview.NewDropDown().
		SetLabel("Theme").
		SetOptions(themeLabels, nil).
		SetCurrentOption(themeIndex)
	sp.form.AddFormItem(sp.theme)

	sp.form.
		AddButton("Detect", func() { a.detectInstalls(sp) }).
		AddButton("Save", func() { a.saveSettings(sp) }).
		AddButton("Cancel", a.ShowMain).
		SetCancelFunc(a.ShowMain)

	content := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(sp.form, 0, 1, true).
		AddItem(sp.errLine, 2, 0, false)

	sp.frame.
		SetTitle(config.AppName, "Settings").
		SetContent(content).
		SetHints(settingsHints).
		SetHelpText(labelText("Pick the folder DCS World is installed in, or its bin\\DCS.exe")).
		SetOnEscape(a.ShowMain)

	return sp
}

func (sp *settingsPage) edits() []BranchEdit {
	edits := make([]BranchEdit, len(sp.rows))
	for i, r := range sp.rows {
		edits[i] = BranchEdit{
			Name:          r.name,
			Path:          r.path.GetText(),
			MultiThreaded: r.multi.IsChecked(),
		}
	}
	return edits
}

func (a *App) detectInstalls(sp *settingsPage) {
	if a.platform == nil {
		return
	}

	edits := sp.edits()
	filled := fillDetected(edits, a.platform.DetectInstalls())
	for i, e := range edits {
		sp.rows[i].path.SetText(e.Path)
	}

	if filled == 0 {
		sp.errLine.SetText(labelText("No new DCS World installs found."))
		return
	}
	sp.errLine.SetText(successText(fmt.Sprintf("Found %d install(s). Review and Save.", filled)))
}

func (a *App) saveSettings(sp *settingsPage) {
	if err := ApplyBranchEdits(a.store, sp.edits()); err != nil {
		log.Warn().Err(err).Msg("settings not saved")
		sp.errLine.SetText(errorText(settingsErrorMessage(err)))
		return
	}

	if idx, _ := sp.theme.GetCurrentOption(); idx >= 0 && idx < len(ThemeNames) {
		a.saveTheme(ThemeNames[idx])
	}

	a.ShowMain()
}

func (a *App) saveTheme(name string) {
	cfg := config.GetTUIConfig()
	if cfg.Theme == name {
		return
	}
	cfg.Theme = name
	config.SetTUIConfig(cfg)
	SetCurrentTheme(name)
	if err := config.SaveTUIConfig(a.fs, a.configDir); err != nil {
		log.Warn().Err(err).Msg("failed to save TUI settings")
	}
}
