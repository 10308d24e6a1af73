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
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonBar_Navigation(t *testing.T) {
	t.Parallel()

	var help []string
	bar := NewButtonBar().
		AddButton("Launch", "Start DCS World", nil).
		AddButton("Update", "Run the DCS updater", nil).
		AddButton("Quit", "Exit", nil).
		SetHelpCallback(func(s string) { help = append(help, s) })

	assert.Equal(t, "Launch", bar.FocusedLabel())

	press(bar, tcell.KeyRight)
	assert.Equal(t, "Update", bar.FocusedLabel())

	press(bar, tcell.KeyTab)
	assert.Equal(t, "Quit", bar.FocusedLabel())

	// wraps around
	press(bar, tcell.KeyRight)
	assert.Equal(t, "Launch", bar.FocusedLabel())

	press(bar, tcell.KeyLeft)
	assert.Equal(t, "Quit", bar.FocusedLabel())

	assert.Equal(t, []string{"Run the DCS updater", "Exit", "Start DCS World", "Exit"}, help)
}

func TestButtonBar_EnterRunsAction(t *testing.T) {
	t.Parallel()

	var pressed []string
	bar := NewButtonBar().
		AddButton("Launch", "", func() { pressed = append(pressed, "launch") }).
		AddButton("Repair", "", func() { pressed = append(pressed, "repair") })

	press(bar, tcell.KeyEnter)
	press(bar, tcell.KeyRight)
	press(bar, tcell.KeyEnter)

	assert.Equal(t, []string{"launch", "repair"}, pressed)
}

func TestButtonBar_UpAndEscape(t *testing.T) {
	t.Parallel()

	ups, escapes := 0, 0
	bar := NewButtonBar().
		AddButton("Launch", "", nil).
		SetOnUp(func() { ups++ }).
		SetOnEscape(func() { escapes++ })

	press(bar, tcell.KeyUp)
	press(bar, tcell.KeyDown)
	press(bar, tcell.KeyEscape)

	assert.Equal(t, 2, ups)
	assert.Equal(t, 1, escapes)
}

func TestButtonBar_Empty(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar()
	require.NotPanics(t, func() {
		press(bar, tcell.KeyEnter)
		press(bar, tcell.KeyRight)
	})
	assert.Empty(t, bar.FocusedLabel())
}

func TestButtonBar_Draw(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar().
		AddButton("Launch", "", nil).
		AddButton("Settings", "", nil)

	text := drawText(t, bar, 40, 1)

	assert.Contains(t, text, "Launch")
	assert.Contains(t, text, "Settings")
}

func TestPageFrame_Draw(t *testing.T) {
	t.Parallel()

	app := tview.NewApplication()
	frame := NewPageFrame(app).
		SetTitle("Open DCS Launcher", "Settings").
		SetContent(tview.NewTextView().SetText("Stable directory")).
		SetButtonBar(NewButtonBar().AddButton("Save", "", nil)).
		SetHelpText("pick a folder").
		SetHints("ESC: Cancel")

	text := drawText(t, frame, 60, 10)

	assert.Contains(t, text, " Open DCS Launcher > Settings ")
	assert.Contains(t, text, "Stable directory")
	assert.Contains(t, text, "pick a folder")
	assert.Contains(t, text, "Save")
	assert.Contains(t, text, "ESC: Cancel")
	assert.Equal(t, "pick a folder", frame.HelpText())
}

func TestPageFrame_ButtonHelpUpdatesHelpText(t *testing.T) {
	t.Parallel()

	frame := NewPageFrame(tview.NewApplication())
	bar := NewButtonBar().
		AddButton("Launch", "Start DCS World", nil).
		AddButton("Quit", "Exit without launching", nil)
	frame.SetButtonBar(bar)

	press(bar, tcell.KeyRight)

	assert.Equal(t, "Exit without launching", frame.HelpText())
}

func TestPageFrame_Escape(t *testing.T) {
	t.Parallel()

	escaped := 0
	bar := NewButtonBar().AddButton("Save", "", nil)
	frame := NewPageFrame(tview.NewApplication()).
		SetButtonBar(bar).
		SetOnEscape(func() { escaped++ })

	press(frame, tcell.KeyEscape)
	press(bar, tcell.KeyEscape)

	assert.Equal(t, 2, escaped)
}
