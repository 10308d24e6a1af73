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
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/syncutil"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme defines all colors used in the TUI.
type Theme struct {
	Name                     string
	DisplayName              string
	AccentColorName          string
	ErrorColorName           string
	SuccessColorName         string
	LabelColorName           string
	PrimitiveBackgroundColor tcell.Color
	ContrastBackgroundColor  tcell.Color
	BorderColor              tcell.Color
	PrimaryTextColor         tcell.Color
	SecondaryTextColor       tcell.Color
	InverseTextColor         tcell.Color
	FieldFocusedBg           tcell.Color
	FieldUnfocusedBg         tcell.Color
}

// ThemeDefault is a dark cockpit grey with amber highlights.
var ThemeDefault = Theme{
	Name:        "default",
	DisplayName: "Cockpit",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x1C1F22),
	ContrastBackgroundColor:  tcell.NewHexColor(0x2E3338),
	BorderColor:              tcell.NewHexColor(0xF5A623),
	PrimaryTextColor:         tcell.NewHexColor(0xE6E6E6),
	SecondaryTextColor:       tcell.NewHexColor(0x8A9199),
	InverseTextColor:         tcell.NewHexColor(0x1C1F22),

	AccentColorName:  "#f5a623",
	ErrorColorName:   "#ff5c5c",
	SuccessColorName: "#7ed321",
	LabelColorName:   "#8a9199",

	FieldFocusedBg:   tcell.NewHexColor(0x3D444B),
	FieldUnfocusedBg: tcell.NewHexColor(0x2E3338),
}

// ThemeHighContrast uses true black background with bright yellow for accessibility.
var ThemeHighContrast = Theme{
	Name:        "high_contrast",
	DisplayName: "High Contrast",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x000000),
	ContrastBackgroundColor:  tcell.NewHexColor(0x000000),
	BorderColor:              tcell.ColorYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorWhite,
	InverseTextColor:         tcell.NewHexColor(0x000000),

	AccentColorName:  "yellow",
	ErrorColorName:   "red",
	SuccessColorName: "lime",
	LabelColorName:   "white",

	FieldFocusedBg:   tcell.ColorYellow,
	FieldUnfocusedBg: tcell.NewHexColor(0x000000),
}

// ThemeNight is a dim red-on-black scheme for night flying.
var ThemeNight = Theme{
	Name:        "night",
	DisplayName: "Night (NVG safe)",

	PrimitiveBackgroundColor: tcell.ColorBlack,
	ContrastBackgroundColor:  tcell.NewHexColor(0x1A0000),
	BorderColor:              tcell.NewHexColor(0xB22222),
	PrimaryTextColor:         tcell.NewHexColor(0xCC4444),
	SecondaryTextColor:       tcell.NewHexColor(0x802020),
	InverseTextColor:         tcell.ColorBlack,

	AccentColorName:  "#b22222",
	ErrorColorName:   "#ff3030",
	SuccessColorName: "#cc4444",
	LabelColorName:   "#802020",

	FieldFocusedBg:   tcell.NewHexColor(0x330000),
	FieldUnfocusedBg: tcell.NewHexColor(0x1A0000),
}

// AvailableThemes maps theme names to theme definitions.
var AvailableThemes = map[string]*Theme{
	"default":       &ThemeDefault,
	"high_contrast": &ThemeHighContrast,
	"night":         &ThemeNight,
}

// ThemeNames returns the list of available theme names in display order.
var ThemeNames = []string{
	"default",
	"high_contrast",
	"night",
}

var (
	currentTheme = &ThemeDefault
	themeMu      syncutil.RWMutex
)

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the current theme by name.
// Returns false if the theme name is not found.
func SetCurrentTheme(name string) bool {
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	ApplyTheme(theme)
	return true
}

// ApplyTheme applies the given theme to tview's global styles.
func ApplyTheme(theme *Theme) {
	tview.Styles.PrimitiveBackgroundColor = theme.PrimitiveBackgroundColor
	tview.Styles.ContrastBackgroundColor = theme.ContrastBackgroundColor
	tview.Styles.BorderColor = theme.BorderColor
	tview.Styles.TitleColor = theme.BorderColor
	tview.Styles.PrimaryTextColor = theme.PrimaryTextColor
	tview.Styles.SecondaryTextColor = theme.SecondaryTextColor
	tview.Styles.InverseTextColor = theme.InverseTextColor
}
