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

package helpers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenDCSLauncher/open-dcs-launcher/pkg/config"
	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when another launcher holds the lock.
var ErrAlreadyRunning = errors.New("another launcher instance is already running")

// InstanceLock is held for the lifetime of the process so only one launcher
// edits the settings file at a time.
type InstanceLock struct {
	fl *flock.Flock
}

// AcquireInstanceLock takes an exclusive lock on the lock file in dir
// without blocking.
func AcquireInstanceLock(dir string) (*InstanceLock, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fl := flock.New(filepath.Join(dir, config.LockFile))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}

	return &InstanceLock{fl: fl}, nil
}

func (l *InstanceLock) Path() string {
	return l.fl.Path()
}

// Release unlocks. The lock file is left behind.
func (l *InstanceLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}
