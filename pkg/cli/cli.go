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


// Package cli holds the command line handling shared by every platform
// binary: flag parsing, startup and the non-interactive actions.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/helpers"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

var (
	ErrConflictingActions = errors.New("only one of --launch, --update, --repair or --cleanup may be given")
	ErrUnknownSelection   = errors.New("no such branch or selection")
	ErrUnknownBranch      = errors.New("unknown branch")
	ErrInvalidFlagValue   = errors.New("invalid flag value")
)

type Flags struct {
	set           *flag.FlagSet
	Version       *bool
	List          *bool
	DryRun        *bool
	Debug         *bool
	Launch        *string
	Update        *string
	Repair        *string
	Cleanup       *string
	SetBranch     *[]string
	RemoveBranch  *[]string
	MultiThreaded *[]string
}

// NewFlags defines all CLI flags on a new flag set called name.
func NewFlags(name string) *Flags {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	return &Flags{
		set: set,
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
		List: set.BoolP(
			"list",
			"l",
			false,
			"list configured branches and launch choices",
		),
		DryRun: set.Bool(
			"dry-run",
			false,
			"print what would be started or saved without doing it",
		),
		Debug: set.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Launch: set.String(
			"launch",
			"",
			`start the game for a choice, e.g. "Beta (Multi-threaded)"`,
		),
		Update: set.String(
			"update",
			"",
			"run the updater for a branch",
		),
		Repair: set.String(
			"repair",
			"",
			"run the updater in repair mode for a branch",
		),
		Cleanup: set.String(
			"cleanup",
			"",
			"run the updater in cleanup mode for a branch",
		),
		SetBranch: set.StringArray(
			"set-branch",
			nil,
			"set a branch install directory, as name=path (repeatable)",
		),
		RemoveBranch: set.StringArray(
			"remove-branch",
			nil,
			"remove a branch by name (repeatable)",
		),
		MultiThreaded: set.StringArray(
			"multi-threaded",
			nil,
			"set whether a branch offers a multi-threaded launch, as name=true|false (repeatable)",
		),
	}
}

// Parse parses args, which should not include the program name.
func (f *Flags) Parse(args []string) error {
	if err := f.set.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}

func (f *Flags) isPassed(name string) bool {
	return f.set.Changed(name)
}

// Pre actions any flags that don't need the environment set up. It returns
// true if the program should exit.
func (f *Flags) Pre(pl platforms.Platform, out io.Writer) bool {
	if *f.Version {
		_, _ = fmt.Fprintf(out, "%s v%s (%s)\n", config.AppName, config.AppVersion, pl.ID())
		return true
	}
	return false
}

// LogWriters returns the extra log writers the flags ask for.
func (f *Flags) LogWriters(console io.Writer) []io.Writer {
	if *f.Debug {
		return []io.Writer{zerolog.ConsoleWriter{Out: console}}
	}
	return nil
}

// Env is what Setup builds for the rest of the program.
type Env struct {
	Store     *config.Instance
	Fs        afero.Fs
	lock      *helpers.InstanceLock
	ConfigDir string
}

// Close releases the single-instance lock.
func (e *Env) Close() {
	if err := e.lock.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release instance lock")
	}
}

// Setup creates the app directories, initializes logging, takes the
// single-instance lock and loads the settings. A settings file that can't
// be read or parsed is an error, and the file is left as it is.
func Setup(pl platforms.Platform, writers []io.Writer) (*Env, error) {
	if err := helpers.EnsureDirectories(pl); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(pl, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	configDir := helpers.ConfigDir(pl)
	lock, err := helpers.AcquireInstanceLock(configDir)
	if err != nil {
		return nil, fmt.Errorf("error starting launcher: %w", err)
	}

	fsys := afero.NewOsFs()
	store, err := config.NewConfig(configDir, fsys)
	if err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("error loading settings: %w", err)
	}
	if err := store.Load(); err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("error loading settings: %w", err)
	}

	if store.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().Msgf("%s v%s started (%s)", config.AppName, config.AppVersion, pl.ID())
	log.Info().Msgf("settings file: %s", store.Path())

	return &Env{
		Store:     store,
		Fs:        fsys,
		lock:      lock,
		ConfigDir: configDir,
	}, nil
}

// Post actions the flags that need the environment: settings edits, the
// branch list and a single launcher action. It returns true if any of them
// was given, in which case the TUI should not start.
func (f *Flags) Post(
	ctx context.Context,
	env *Env,
	runner *launcher.Launcher,
	out io.Writer,
) (bool, error) {
	if *f.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	handled := false

	edits, err := f.settingsEdits()
	if err != nil {
		return true, err
	}
	if len(edits) > 0 {
		handled = true
		if err := applySettingsEdits(env.Store, edits, *f.DryRun, out); err != nil {
			return true, err
		}
	}

	if *f.List {
		handled = true
		printList(out, env.Store)
	}

	action, name, ok, err := f.action()
	if err != nil {
		return true, err
	}
	if !ok {
		return handled, nil
	}

	return true, runAction(ctx, env.Store, runner, action, name, *f.DryRun, out)
}

func (f *Flags) action() (launcher.Action, string, bool, error) {
	candidates := []struct {
		value  *string
		flag   string
		action launcher.Action
	}{
		{f.Launch, "launch", launcher.ActionLaunch},
		{f.Update, "update", launcher.ActionUpdate},
		{f.Repair, "repair", launcher.ActionRepair},
		{f.Cleanup, "cleanup", launcher.ActionCleanup},
	}

	var (
		action launcher.Action
		name   string
		found  bool
	)
	for _, c := range candidates {
		if !f.isPassed(c.flag) {
			continue
		}
		if found {
			return "", "", false, ErrConflictingActions
		}
		if *c.value == "" {
			return "", "", false, fmt.Errorf("%w: --%s requires a value", ErrInvalidFlagValue, c.flag)
		}
		action, name, found = c.action, *c.value, true
	}

	return action, name, found, nil
}
