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

// Package launcher starts DCS World and its updater for a chosen branch.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/command"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// ErrNotConfigured is returned when a branch has no install directory.
var ErrNotConfigured = errors.New("install directory not configured")

// Action is one of the things the launcher can start.
type Action string

const (
	ActionLaunch  Action = "launch"
	ActionUpdate  Action = "update"
	ActionRepair  Action = "repair"
	ActionCleanup Action = "cleanup"
)

// Selection is a branch plus whether to start its multi-threaded binary.
type Selection struct {
	Branch            config.BranchInfo
	UseMultiThreading bool
}

// String is the text shown in pickers and accepted by --launch.
func (s Selection) String() string {
	name := s.Branch.Name
	if name == "" {
		name = "Unknown"
	}
	if s.UseMultiThreading {
		name += " (Multi-threaded)"
	}
	return name
}

// Target is a fully resolved program start.
type Target struct {
	Dir        string
	Executable string
	Args       []string
	// Env is extra KEY=value pairs for the child, e.g. WINEPREFIX.
	Env []string
}

// SettingsProvider supplies executable names and updater arguments.
// *config.Instance satisfies it.
type SettingsProvider interface {
	Launcher() config.Launcher
}

// Launcher starts programs for a selection. Every operation makes exactly
// one attempt and reports failure through its result and LastErrorMessage.
type Launcher struct {
	cfg           SettingsProvider
	exec          command.Executor
	lastErr       string
	defaultRunner []string
	mu            syncutil.Mutex
}

type Option func(*Launcher)

// WithDefaultRunner starts every program through runner unless the
// settings name their own. Linux uses it to run DCS World under Wine.
func WithDefaultRunner(runner ...string) Option {
	return func(l *Launcher) {
		l.defaultRunner = slices.Clone(runner)
	}
}

func New(cfg SettingsProvider, exec command.Executor, opts ...Option) *Launcher {
	if exec == nil {
		exec = &command.RealExecutor{}
	}
	l := &Launcher{
		cfg:  cfg,
		exec: exec,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LastErrorMessage describes the most recent failure, or is empty if the
// most recent operation succeeded.
func (l *Launcher) LastErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// ResolveGame returns what Launch would start for sel.
func (l *Launcher) ResolveGame(sel Selection) (Target, error) {
	if !sel.Branch.HasDirectory() {
		return Target{}, fmt.Errorf("%w for branch %q", ErrNotConfigured, sel.Branch.Name)
	}
	settings := l.cfg.Launcher().WithDefaults()
	dir := sel.Branch.BinPath()
	if sel.UseMultiThreading {
		dir = sel.Branch.BinMtPath()
	}
	return l.wrap(settings, Target{
		Dir:        dir,
		Executable: filepath.Join(dir, settings.GameExecutable),
	}), nil
}

// ResolveUpdater returns what the updater would be started with for the
// given action. The updater always runs from the single-threaded bin dir.
func (l *Launcher) ResolveUpdater(sel Selection, action Action) (Target, error) {
	if !sel.Branch.HasDirectory() {
		return Target{}, fmt.Errorf("%w for branch %q", ErrNotConfigured, sel.Branch.Name)
	}

	settings := l.cfg.Launcher().WithDefaults()
	var args []string
	switch action {
	case ActionUpdate:
		args = settings.UpdateArgs
	case ActionRepair:
		args = settings.RepairArgs
	case ActionCleanup:
		args = settings.CleanupArgs
	case ActionLaunch:
		return Target{}, errors.New("launch is not an updater action")
	default:
		return Target{}, fmt.Errorf("unknown updater action: %s", action)
	}

	dir := sel.Branch.BinPath()
	return l.wrap(settings, Target{
		Dir:        dir,
		Executable: filepath.Join(dir, settings.UpdaterExecutable),
		Args:       args,
	}), nil
}

// wrap puts the runner, if any, in front of t.
func (l *Launcher) wrap(settings config.Launcher, t Target) Target {
	runner := settings.Runner
	if len(runner) == 0 {
		runner = l.defaultRunner
	}
	if len(runner) == 0 || runner[0] == "" {
		return t
	}

	args := make([]string, 0, len(runner)+len(t.Args))
	args = append(args, runner[1:]...)
	args = append(args, t.Executable)
	args = append(args, t.Args...)
	wrapped := Target{
		Dir:        t.Dir,
		Executable: runner[0],
		Args:       args,
	}

	prefix := settings.WinePrefix
	if prefix == "" {
		prefix = WinePrefix(t.Executable)
	}
	if prefix != "" {
		wrapped.Env = []string{"WINEPREFIX=" + prefix}
	}
	return wrapped
}

// WinePrefix returns the Wine prefix path is in, i.e. the parent of its
// drive_c directory, or "" if it isn't in one.
func WinePrefix(path string) string {
	dir := filepath.Clean(path)
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		if strings.EqualFold(filepath.Base(dir), "drive_c") {
			return parent
		}
		dir = parent
	}
}

// Launch starts the game for sel.
func (l *Launcher) Launch(ctx context.Context, sel Selection) bool {
	target, err := l.ResolveGame(sel)
	return l.start(ctx, ActionLaunch, target, err)
}

// LaunchUpdater starts the updater in update mode.
func (l *Launcher) LaunchUpdater(ctx context.Context, sel Selection) bool {
	return l.runUpdater(ctx, sel, ActionUpdate)
}

// LaunchRepair starts the updater in repair mode.
func (l *Launcher) LaunchRepair(ctx context.Context, sel Selection) bool {
	return l.runUpdater(ctx, sel, ActionRepair)
}

// LaunchCleanup starts the updater in cleanup mode.
func (l *Launcher) LaunchCleanup(ctx context.Context, sel Selection) bool {
	return l.runUpdater(ctx, sel, ActionCleanup)
}

// Run dispatches to the operation for action.
func (l *Launcher) Run(ctx context.Context, action Action, sel Selection) bool {
	switch action {
	case ActionLaunch:
		return l.Launch(ctx, sel)
	case ActionUpdate:
		return l.LaunchUpdater(ctx, sel)
	case ActionRepair:
		return l.LaunchRepair(ctx, sel)
	case ActionCleanup:
		return l.LaunchCleanup(ctx, sel)
	default:
		l.setLastError(action, fmt.Errorf("unknown action: %s", action))
		return false
	}
}

func (l *Launcher) runUpdater(ctx context.Context, sel Selection, action Action) bool {
	target, err := l.ResolveUpdater(sel, action)
	return l.start(ctx, action, target, err)
}

func (l *Launcher) start(ctx context.Context, action Action, target Target, resolveErr error) bool {
	if resolveErr != nil {
		log.Warn().Err(resolveErr).Str("action", string(action)).Msg("cannot start")
		l.setLastError(action, resolveErr)
		return false
	}

	log.Info().
		Str("action", string(action)).
		Str("exe", target.Executable).
		Str("dir", target.Dir).
		Strs("args", target.Args).
		Strs("env", target.Env).
		Msg("starting")

	opts := command.StartOptions{Dir: target.Dir, Env: target.Env}
	if err := l.exec.StartWithOptions(ctx, opts, target.Executable, target.Args...); err != nil {
		log.Error().Err(err).Str("action", string(action)).Msg("failed to start")
		l.setLastError(action, err)
		return false
	}

	l.mu.Lock()
	l.lastErr = ""
	l.mu.Unlock()
	return true
}

func (l *Launcher) setLastError(action Action, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = fmt.Sprintf("%s: %v", action, err)
}
