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

//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/cli"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/launcher"
	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/platforms/linux"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	pl := &linux.Platform{}
	flags := cli.NewFlags(filepath.Base(os.Args[0]))
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Pre(pl, os.Stdout) {
		return nil
	}

	if os.Geteuid() == 0 {
		return errors.New("the launcher cannot be run as root")
	}

	env, err := cli.Setup(pl, flags.LogWriters(os.Stderr))
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := launcher.New(env.Store, nil, launcher.WithDefaultRunner(linux.DefaultRunner...))

	handled, err := flags.Post(ctx, env, runner, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	if handled {
		return nil
	}

	if err := cli.RunTUI(ctx, env, pl, runner); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return fmt.Errorf("error running UI: %w", err)
	}

	return nil
}
