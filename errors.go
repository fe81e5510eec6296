// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"errors"
	"fmt"
)

// ErrorSilent - Indicates help or version text has been written.
// The caller should stop without printing anything else.
var ErrorSilent = fmt.Errorf("help called")

// The parse errors below are empty on purpose, they are wrapped with the
// user facing text so the error message reads cleanly while errors.Is keeps working.

// ErrorBadParameter - The parser was called with invalid input.
var ErrorBadParameter = errors.New("")

// ErrorUnrecognizedOption - Unknown long option.
var ErrorUnrecognizedOption = errors.New("")

// ErrorUnregisteredShort - Short option missing from the short option string.
var ErrorUnregisteredShort = errors.New("")

// ErrorShortNoLong - Short option in the short option string without a descriptor.
var ErrorShortNoLong = errors.New("")

// ErrorMissingArgument - Option requiring an argument called without one.
var ErrorMissingArgument = errors.New("")

// ErrorUnexpectedArgument - Argument given to an option that takes none.
var ErrorUnexpectedArgument = errors.New("")

// ErrorStore - The Accumulator failed to store an option.
var ErrorStore = errors.New("")

// Termination - How a parse ended.
type Termination int

// Terminations
const (
	Success Termination = iota
	Silent
	BadParameter
	UnrecognizedLongOption
	UnregisteredShortOption
	ShortOptionMissingDescriptor
	MissingArgument
	UnexpectedArgument
	StoreFailed
	Unknown
)

var terminationNames = map[Termination]string{
	Success:                      "success",
	Silent:                       "silent",
	BadParameter:                 "bad parameter",
	UnrecognizedLongOption:       "unrecognized long option",
	UnregisteredShortOption:      "unregistered short option",
	ShortOptionMissingDescriptor: "short option missing descriptor",
	MissingArgument:              "missing argument",
	UnexpectedArgument:           "unexpected argument",
	StoreFailed:                  "store failed",
	Unknown:                      "unknown",
}

func (t Termination) String() string {
	if s, ok := terminationNames[t]; ok {
		return s
	}
	return terminationNames[Unknown]
}

// Kind - Returns the Termination matching the error returned by Parse.
func Kind(err error) Termination {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrorSilent):
		return Silent
	case errors.Is(err, ErrorBadParameter):
		return BadParameter
	case errors.Is(err, ErrorUnrecognizedOption):
		return UnrecognizedLongOption
	case errors.Is(err, ErrorUnregisteredShort):
		return UnregisteredShortOption
	case errors.Is(err, ErrorShortNoLong):
		return ShortOptionMissingDescriptor
	case errors.Is(err, ErrorMissingArgument):
		return MissingArgument
	case errors.Is(err, ErrorUnexpectedArgument):
		return UnexpectedArgument
	case errors.Is(err, ErrorStore):
		return StoreFailed
	}
	return Unknown
}

// ExitCode - Process exit status for the error returned by Parse.
// Both success and help requests exit cleanly.
func ExitCode(err error) int {
	switch Kind(err) {
	case Success, Silent:
		return 0
	}
	return 1
}
