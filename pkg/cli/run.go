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


package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/ui/selection"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/ui/tui"
	"github.com/rs/zerolog/log"
)

type editKind int

const (
	editSetPath editKind = iota
	editRemove
	editMultiThreaded
)

type settingsEdit struct {
	name    string
	path    string
	kind    editKind
	enabled bool
}

func splitPair(flagName, value string) (string, string, error) {
	name, rest, ok := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: --%s expects name=value, got %q", ErrInvalidFlagValue, flagName, value)
	}
	return name, strings.TrimSpace(rest), nil
}

// settingsEdits parses the settings flags without touching the store.
func (f *Flags) settingsEdits() ([]settingsEdit, error) {
	var edits []settingsEdit

	for _, v := range *f.SetBranch {
		name, path, err := splitPair("set-branch", v)
		if err != nil {
			return nil, err
		}
		path = config.NormalizeInstallDir(path)
		if path == "" {
			return nil, fmt.Errorf("%w: --set-branch %s needs a path", ErrInvalidFlagValue, name)
		}
		edits = append(edits, settingsEdit{kind: editSetPath, name: name, path: path})
	}

	for _, name := range *f.RemoveBranch {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: --remove-branch needs a name", ErrInvalidFlagValue)
		}
		edits = append(edits, settingsEdit{kind: editRemove, name: name})
	}

	for _, v := range *f.MultiThreaded {
		name, raw, err := splitPair("multi-threaded", v)
		if err != nil {
			return nil, err
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: --multi-threaded %s: %q is not true or false",
				ErrInvalidFlagValue, name, raw)
		}
		edits = append(edits, settingsEdit{kind: editMultiThreaded, name: name, enabled: enabled})
	}

	return edits, nil
}

// applySettingsEdits checks every edit, then applies them all and saves
// once. Nothing is changed if any edit is invalid.
func applySettingsEdits(store *config.Instance, edits []settingsEdit, dryRun bool, out io.Writer) error {
	known := make(map[string]bool)
	for _, b := range store.Branches() {
		known[b.Name] = true
	}

	for _, e := range edits {
		switch e.kind {
		case editSetPath:
			if err := store.ValidateInstallDir(e.path); err != nil {
				return fmt.Errorf("branch %s: %w", e.name, err)
			}
			known[e.name] = true
		case editRemove, editMultiThreaded:
			if !known[e.name] {
				return fmt.Errorf("%w: %s", ErrUnknownBranch, e.name)
			}
			if e.kind == editRemove {
				known[e.name] = false
			}
		}
	}

	if dryRun {
		for _, e := range edits {
			_, _ = fmt.Fprintf(out, "would %s\n", e)
		}
		return nil
	}

	for _, e := range edits {
		switch e.kind {
		case editSetPath:
			store.CreateOrUpdateBranch(e.name, e.path)
		case editRemove:
			store.RemoveBranch(e.name)
		case editMultiThreaded:
			store.SetBranchMultiThreaded(e.name, e.enabled)
		}
		log.Info().Msgf("settings: %s", e)
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Saved %s\n", store.Path())
	return nil
}

func (e settingsEdit) String() string {
	switch e.kind {
	case editSetPath:
		return fmt.Sprintf("set %s directory to %s", e.name, e.path)
	case editRemove:
		return "remove " + e.name
	default:
		return fmt.Sprintf("set %s multi-threaded to %t", e.name, e.enabled)
	}
}

func printList(out io.Writer, store *config.Instance) {
	branches := store.Branches()
	if len(branches) == 0 {
		_, _ = fmt.Fprintln(out, "No branches configured. Use --set-branch or run without flags to open settings.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BRANCH\tDIRECTORY\tMULTI-THREADED")
	for _, b := range branches {
		dir := b.DirectoryPath
		if dir == "" {
			dir = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\n", b.Name, dir, b.SupportsMultiThreading())
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintln(out, "\nLaunch choices:")
	for _, s := range selection.Derive(branches) {
		_, _ = fmt.Fprintf(out, "  %s\n", s)
	}
}

func runAction(
	ctx context.Context,
	store *config.Instance,
	runner *launcher.Launcher,
	action launcher.Action,
	name string,
	dryRun bool,
	out io.Writer,
) error {
	model := selection.NewModel(store, runner, nil)
	defer model.Close()

	if !model.SetCurrentByName(name) {
		return fmt.Errorf("%w: %q", ErrUnknownSelection, name)
	}
	sel, _, _ := model.Current()

	if dryRun {
		return printTarget(out, runner, action, sel)
	}

	var op func(context.Context) (bool, string)
	switch action {
	case launcher.ActionLaunch:
		op = model.Launch
	case launcher.ActionUpdate:
		op = model.Update
	case launcher.ActionRepair:
		op = model.Repair
	case launcher.ActionCleanup:
		op = model.Cleanup
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	ok, msg := op(ctx)
	if !ok {
		return errors.New(msg)
	}
	_, _ = fmt.Fprintln(out, msg)
	return nil
}

func printTarget(out io.Writer, runner *launcher.Launcher, action launcher.Action, sel selection.Selection) error {
	var (
		target launcher.Target
		err    error
	)
	if action == launcher.ActionLaunch {
		target, err = runner.ResolveGame(sel)
	} else {
		target, err = runner.ResolveUpdater(sel, action)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	_, _ = fmt.Fprintf(out, "would %s %s\n", action, sel)
	_, _ = fmt.Fprintf(out, "  dir:  %s\n", target.Dir)
	_, _ = fmt.Fprintf(out, "  exe:  %s\n", target.Executable)
	_, _ = fmt.Fprintf(out, "  args: %s\n", strings.Join(target.Args, " "))
	if len(target.Env) > 0 {
		_, _ = fmt.Fprintf(out, "  env:  %s\n", strings.Join(target.Env, " "))
	}
	return nil
}

// RunTUI runs the terminal UI until the user quits or a launch hands off
// to the game. Changes made to the settings file while it runs are picked
// up and shown.
func RunTUI(ctx context.Context, env *Env, pl platforms.Platform, runner *launcher.Launcher) error {
	stopWatch, err := env.Store.Watch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("settings file watcher disabled")
	} else {
		defer stopWatch()
	}

	app := tui.New(tui.Options{
		Store:     env.Store,
		Launcher:  runner,
		Platform:  pl,
		Finder:    launcher.SystemProcesses{},
		Fs:        env.Fs,
		ConfigDir: env.ConfigDir,
	})
	defer app.Close()

	return app.Run()
}
