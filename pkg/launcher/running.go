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

package launcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo is the subset of a running process the running-game check looks at.
type ProcessInfo struct {
	Exe string
	PID int32
}

// ProcessFinder lists running processes.
type ProcessFinder interface {
	Processes(ctx context.Context) ([]ProcessInfo, error)
}

// SystemProcesses lists processes of the running system via gopsutil.
type SystemProcesses struct{}

func (SystemProcesses) Processes(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		// access denied for system processes is normal
		exe, err := p.ExeWithContext(ctx)
		if err != nil || exe == "" {
			continue
		}
		infos = append(infos, ProcessInfo{PID: p.Pid, Exe: exe})
	}
	return infos, nil
}

// RunningGame looks for a process whose executable lives under the branch's
// install directory. It's informational only and never gates a launch.
func RunningGame(
	ctx context.Context,
	branch config.BranchInfo,
	finder ProcessFinder,
) (ProcessInfo, bool, error) {
	if !branch.HasDirectory() {
		return ProcessInfo{}, false, nil
	}
	if finder == nil {
		finder = SystemProcesses{}
	}

	procs, err := finder.Processes(ctx)
	if err != nil {
		return ProcessInfo{}, false, err
	}

	root := filepath.Clean(branch.DirectoryPath)
	for _, p := range procs {
		if isUnder(root, p.Exe) {
			log.Debug().
				Str("branch", branch.Name).
				Int32("pid", p.PID).
				Str("exe", p.Exe).
				Msg("found running game process")
			return p, true, nil
		}
	}
	return ProcessInfo{}, false, nil
}

// isUnder compares case-insensitively since install paths come from
// Windows, where case doesn't matter.
func isUnder(root, path string) bool {
	rel, err := filepath.Rel(strings.ToLower(root), strings.ToLower(filepath.Clean(path)))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
