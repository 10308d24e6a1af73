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

// Package selection turns the branch registry into the list of launch
// choices shown to the user and runs actions against the current choice.
package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/syncutil"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/rs/zerolog/log"
)

const noSelectionMessage = "no branch selected"

// ErrOutOfRange is returned by SetCurrent for an index outside the list.
var ErrOutOfRange = errors.New("selection index out of range")

type Selection = launcher.Selection

// Store is the part of the settings store the model reads.
type Store interface {
	Branches() []config.BranchInfo
	OnChange(fn func(config.Settings)) (unsubscribe func())
}

// Runner starts programs for a selection.
type Runner interface {
	Launch(ctx context.Context, sel Selection) bool
	LaunchUpdater(ctx context.Context, sel Selection) bool
	LaunchRepair(ctx context.Context, sel Selection) bool
	LaunchCleanup(ctx context.Context, sel Selection) bool
	LastErrorMessage() string
}

// Presenter is implemented by whatever is showing the model.
type Presenter interface {
	ShowSettings()
	// Exit is called after the game has been handed off.
	Exit()
}

// Derive lists the launch choices for branches in registry order. A branch
// offering multi-threading gets its multi-threaded choice first.
func Derive(branches []config.BranchInfo) []Selection {
	sels := make([]Selection, 0, len(branches))
	for _, b := range branches {
		if b.SupportsMultiThreading() {
			sels = append(sels, Selection{Branch: b, UseMultiThreading: true})
		}
		sels = append(sels, Selection{Branch: b})
	}
	return sels
}

// Model holds the current list of choices. It rebuilds the list from
// scratch on every settings change and resets the current choice to the
// first entry.
type Model struct {
	runner      Runner
	presenter   Presenter
	unsubscribe func()
	selections  []Selection
	onRebuild   []func()
	current     int
	mu          syncutil.Mutex
}

func NewModel(store Store, runner Runner, presenter Presenter) *Model {
	m := &Model{
		runner:    runner,
		presenter: presenter,
	}
	m.unsubscribe = store.OnChange(func(s config.Settings) {
		m.rebuild(s.Branches)
		m.mu.Lock()
		fns := append([]func(){}, m.onRebuild...)
		m.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
	})
	m.rebuild(store.Branches())
	return m
}

func (m *Model) rebuild(branches []config.BranchInfo) {
	sels := Derive(branches)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.selections = sels
	m.current = -1
	if len(sels) > 0 {
		m.current = 0
	}
	log.Debug().Int("selections", len(sels)).Msg("rebuilt selections")
}

// Close stops following settings changes.
func (m *Model) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// OnRebuild registers fn to run after each rebuild caused by a settings
// change. It runs on the goroutine that changed the settings.
func (m *Model) OnRebuild(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRebuild = append(m.onRebuild, fn)
}

// Selections returns a copy of the current list.
func (m *Model) Selections() []Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Selection(nil), m.selections...)
}

// Current returns the current choice and its index, or false if the list is
// empty.
func (m *Model) Current() (Selection, int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current < 0 {
		return Selection{}, -1, false
	}
	return m.selections[m.current], m.current, true
}

func (m *Model) SetCurrent(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.selections) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	m.current = i
	return nil
}

// SetCurrentByName picks the choice whose display text is name.
func (m *Model) SetCurrentByName(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.selections {
		if s.String() == name {
			m.current = i
			return true
		}
	}
	return false
}

// Launch starts the game for the current choice and, if that worked,
// asks the presenter to exit.
func (m *Model) Launch(ctx context.Context) (bool, string) {
	ok, msg := m.run(ctx, m.runner.Launch, "Launching")
	if ok && m.presenter != nil {
		m.presenter.Exit()
	}
	return ok, msg
}

func (m *Model) Update(ctx context.Context) (bool, string) {
	return m.run(ctx, m.runner.LaunchUpdater, "Updating")
}

func (m *Model) Repair(ctx context.Context) (bool, string) {
	return m.run(ctx, m.runner.LaunchRepair, "Repairing")
}

func (m *Model) Cleanup(ctx context.Context) (bool, string) {
	return m.run(ctx, m.runner.LaunchCleanup, "Cleaning up")
}

func (m *Model) OpenSettings() {
	if m.presenter != nil {
		m.presenter.ShowSettings()
	}
}

func (m *Model) run(
	ctx context.Context,
	op func(context.Context, Selection) bool,
	verb string,
) (bool, string) {
	sel, _, ok := m.Current()
	if !ok {
		return false, noSelectionMessage
	}
	if !op(ctx, sel) {
		return false, m.runner.LastErrorMessage()
	}
	return true, fmt.Sprintf("%s %s", verb, sel)
}
