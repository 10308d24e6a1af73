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
	"fmt"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	mainHints        = "←→: Buttons | Tab: Branch | Enter: Select | ESC: Quit"
	noBranchesStatus = "No DCS World install configured. Open Settings to add one."
)

type mainPage struct {
	frame    *PageFrame
	dropdown *tview.DropDown
	running  *tview.TextView
	status   *tview.TextView
	buttons  *ButtonBar
}

func (a *App) buildMainPage() *mainPage {
	mp := &mainPage{
		frame:    NewPageFrame(a.app),
		dropdown: tview.NewDropDown().SetLabel("Branch: "),
		running:  tview.NewTextView().SetDynamicColors(true),
		status:   tview.NewTextView().SetDynamicColors(true).SetWrap(true),
	}

	mp.dropdown.SetFieldBackgroundColor(CurrentTheme().FieldUnfocusedBg)
	mp.dropdown.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			mp.frame.FocusButtonBar()
			return nil
		case tcell.KeyEscape:
			a.app.Stop()
			return nil
		default:
			return event
		}
	})

	mp.buttons = NewButtonBar().
		AddButton("Launch", "Start DCS World", func() {
			a.runAction(a.model.Launch)
		}).
		AddButton("Update", "Run the DCS updater", func() {
			a.runAction(a.model.Update)
		}).
		AddButton("Repair", "Verify and repair game files", func() {
			a.runAction(a.model.Repair)
		}).
		AddButton("Cleanup", "Remove unused files", func() {
			a.runAction(a.model.Cleanup)
		}).
		AddButton("Settings", "Set install directories", a.model.OpenSettings).
		AddButton("Quit", "Exit without launching", a.app.Stop)

	content := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 1, 0, false).
		AddItem(mp.dropdown, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(mp.running, 1, 0, false).
		AddItem(mp.status, 0, 1, false)

	mp.frame.
		SetTitle(config.AppName + " v" + config.AppVersion).
		SetContent(content).
		SetButtonBar(mp.buttons).
		SetHints(mainHints).
		SetOnEscape(a.app.Stop)

	return mp
}

// refreshSelections repopulates the drop-down from the model. Must run on
// the UI goroutine.
func (a *App) refreshSelections() {
	sels := a.model.Selections()
	options := make([]string, len(sels))
	for i, s := range sels {
		options[i] = s.String()
	}

	a.main.dropdown.SetOptions(options, func(_ string, index int) {
		if err := a.model.SetCurrent(index); err != nil {
			log.Warn().Err(err).Msg("invalid selection")
		}
	})

	if _, i, ok := a.model.Current(); ok {
		a.main.dropdown.SetCurrentOption(i)
		a.main.status.SetText("")
	} else {
		a.main.status.SetText(labelText(noBranchesStatus))
	}
}

func (a *App) runAction(action func(context.Context) (bool, string)) {
	ok, msg := action(context.Background())
	if ok {
		a.main.status.SetText(successText(msg))
	} else {
		a.main.status.SetText(errorText(msg))
	}
}

func (a *App) checkRunning() {
	go func() {
		ctx, cancel := runningCheckContext()
		defer cancel()
		text := a.runningStatus(ctx)
		a.queue(func() {
			a.main.running.SetText(text)
		})
	}()
}

func (a *App) runningStatus(ctx context.Context) string {
	for _, b := range a.store.Branches() {
		p, found, err := launcher.RunningGame(ctx, b, a.finder)
		if err != nil {
			log.Debug().Err(err).Msg("running game check failed")
			return ""
		}
		if found {
			return colored(CurrentTheme().AccentColorName,
				fmt.Sprintf("DCS World %s is running (pid %d)", b.Name, p.PID))
		}
	}
	return labelText("DCS World is not running")
}
