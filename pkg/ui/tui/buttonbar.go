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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ButtonBar is a horizontal row of buttons navigated with the arrow keys.
type ButtonBar struct {
	*tview.Box
	onEscape     func()
	onUp         func()
	helpCallback func(string)
	buttons      []*tview.Button
	helpTexts    []string
	focusedIndex int
}

func NewButtonBar() *ButtonBar {
	return &ButtonBar{
		Box: tview.NewBox(),
	}
}

// AddButton adds a button with the help text shown while it's focused.
func (bb *ButtonBar) AddButton(label, helpText string, action func()) *ButtonBar {
	bb.buttons = append(bb.buttons, tview.NewButton(label).SetSelectedFunc(action))
	bb.helpTexts = append(bb.helpTexts, helpText)
	return bb
}

// SetHelpCallback sets the callback for when button focus changes.
func (bb *ButtonBar) SetHelpCallback(fn func(string)) *ButtonBar {
	bb.helpCallback = fn
	return bb
}

func (bb *ButtonBar) SetOnEscape(fn func()) *ButtonBar {
	bb.onEscape = fn
	return bb
}

// SetOnUp sets the callback for Up and Down, normally moving focus back to
// the page content.
func (bb *ButtonBar) SetOnUp(fn func()) *ButtonBar {
	bb.onUp = fn
	return bb
}

func (bb *ButtonBar) triggerHelp() {
	if bb.helpCallback != nil && bb.focusedIndex < len(bb.helpTexts) {
		bb.helpCallback(bb.helpTexts[bb.focusedIndex])
	}
}

// FocusedLabel returns the label of the highlighted button.
func (bb *ButtonBar) FocusedLabel() string {
	if bb.focusedIndex < len(bb.buttons) {
		return bb.buttons[bb.focusedIndex].GetLabel()
	}
	return ""
}

// Draw renders the button bar.
func (bb *ButtonBar) Draw(screen tcell.Screen) {
	bb.DrawForSubclass(screen, bb)

	x, y, width, _ := bb.GetInnerRect()
	if len(bb.buttons) == 0 || width <= 0 {
		return
	}

	spacing := 1
	buttonWidth := (width - spacing*(len(bb.buttons)-1)) / len(bb.buttons)
	buttonWidth = max(buttonWidth, 6)

	hasFocus := bb.HasFocus()
	currentX := x
	for i, btn := range bb.buttons {
		btnWidth := min(buttonWidth, x+width-currentX)
		if btnWidth <= 0 {
			break
		}

		btn.SetRect(currentX, y, btnWidth, 1)
		if hasFocus && i == bb.focusedIndex {
			btn.Focus(func(_ tview.Primitive) {})
		} else {
			btn.Blur()
		}

		btn.Draw(screen)
		currentX += btnWidth + spacing
	}
}

// InputHandler handles keyboard input for the button bar.
func (bb *ButtonBar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return bb.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if len(bb.buttons) == 0 {
			return
		}

		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyBacktab:
			bb.focusedIndex = (bb.focusedIndex - 1 + len(bb.buttons)) % len(bb.buttons)
			bb.triggerHelp()
		case tcell.KeyRight, tcell.KeyTab:
			bb.focusedIndex = (bb.focusedIndex + 1) % len(bb.buttons)
			bb.triggerHelp()
		case tcell.KeyUp, tcell.KeyDown:
			if bb.onUp != nil {
				bb.onUp()
			}
		case tcell.KeyEnter:
			if handler := bb.buttons[bb.focusedIndex].InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		case tcell.KeyEscape:
			if bb.onEscape != nil {
				bb.onEscape()
			}
		default:
		}
	})
}

// MouseHandler handles mouse input for the button bar.
func (bb *ButtonBar) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return bb.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick {
			return false, nil
		}
		for i, btn := range bb.buttons {
			if !btn.InRect(event.Position()) {
				continue
			}
			bb.focusedIndex = i
			bb.triggerHelp()
			setFocus(bb)
			if handler := btn.MouseHandler(); handler != nil {
				return handler(action, event, setFocus)
			}
			return true, nil
		}
		return false, nil
	})
}

// Focus is called when the button bar receives focus.
func (bb *ButtonBar) Focus(delegate func(p tview.Primitive)) {
	if len(bb.buttons) > 0 {
		bb.Box.Focus(delegate)
		bb.triggerHelp()
	}
}
