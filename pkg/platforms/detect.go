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

package platforms

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InstallSource is where to look for one branch's install directory.
type InstallSource struct {
	// Branch is the registry name the install is saved under.
	Branch string
	// Key is passed to the lookup function, e.g. a registry key path.
	Key string
	// Fallbacks are default install locations tried when the lookup fails.
	Fallbacks []string
}

// LookupFunc resolves a source key to a directory. It returns
// fs.ErrNotExist when the key is absent.
type LookupFunc func(key string) (string, error)

// DetectInstalls resolves each source in order and keeps the ones whose
// directory exists. Each branch is reported at most once.
func DetectInstalls(fsys afero.Fs, sources []InstallSource, lookup LookupFunc) []config.BranchInfo {
	var found []config.BranchInfo
	seen := make(map[string]bool, len(sources))

	for _, src := range sources {
		if seen[src.Branch] {
			continue
		}

		var candidates []string
		if lookup != nil && src.Key != "" {
			dir, err := lookup(src.Key)
			switch {
			case err == nil && strings.TrimSpace(dir) != "":
				candidates = append(candidates, dir)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				log.Warn().Err(err).Str("key", src.Key).Msg("error looking up install")
			}
		}
		candidates = append(candidates, src.Fallbacks...)

		for _, c := range candidates {
			dir := config.NormalizeInstallDir(c)
			if ok, _ := afero.DirExists(fsys, dir); !ok {
				continue
			}
			log.Info().Str("branch", src.Branch).Str("dir", dir).Msg("detected install")
			found = append(found, config.BranchInfo{Name: src.Branch, DirectoryPath: dir})
			seen[src.Branch] = true
			break
		}
	}

	return found
}
