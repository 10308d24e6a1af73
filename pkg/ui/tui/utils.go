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
	"time"

	"github.com/rivo/tview"
)

// RunningCheckTimeout bounds the running-game check.
const RunningCheckTimeout = 3 * time.Second

func runningCheckContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), RunningCheckTimeout)
}

// colored wraps text in a tview color tag. The text is escaped so paths
// with square brackets render as-is.
func colored(colorName, text string) string {
	return fmt.Sprintf("[%s]%s[-]", colorName, tview.Escape(text))
}

func errorText(text string) string {
	return colored(CurrentTheme().ErrorColorName, text)
}

func successText(text string) string {
	return colored(CurrentTheme().SuccessColorName, text)
}

func labelText(text string) string {
	return colored(CurrentTheme().LabelColorName, text)
}

func setupInputFieldFocus(field *tview.InputField) *tview.InputField {
	field.SetFieldBackgroundColor(CurrentTheme().FieldUnfocusedBg)
	field.SetFocusFunc(func() {
		field.SetFieldBackgroundColor(CurrentTheme().FieldFocusedBg)
	})
	field.SetBlurFunc(func() {
		field.SetFieldBackgroundColor(CurrentTheme().FieldUnfocusedBg)
	})
	return field
}
