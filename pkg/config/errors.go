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

package config

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

var (
	// ErrParse matches any *ParseError.
	ErrParse = errors.New("settings file is malformed")
	// ErrIO matches any *IOError.
	ErrIO = errors.New("settings file could not be accessed")
	// ErrInvalid is returned by Save when the settings would not load back,
	// e.g. a branch with no name.
	ErrInvalid = errors.New("settings are invalid")
)

// ParseError means the settings file exists but could not be decoded or
// failed validation. Line and Column are zero when unknown.
type ParseError struct {
	Err    error
	Path   string
	Line   int
	Column int
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("settings file %s is malformed (line %d, column %d): %v",
			e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("settings file %s is malformed: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// IOError means the settings file or its directory could not be read or
// written.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
