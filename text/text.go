// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Topic names are the keys looked up in help files.
// The remaining strings are fallbacks used when a help file doesn't provide the topic.
package text

// HelpCLIFile - Name of the built-in help file.
var HelpCLIFile = "help-cli"

// Topics
var (
	TopicUsage              = "usage"
	TopicVersion            = "version"
	TopicHelp               = "help"
	TopicUnknownOption      = "unknown-option"
	TopicUnrecognizedOption = "unrecognized-option"
	TopicShortNoLong        = "short-no-long"
	TopicUnregisteredOption = "unregistered-option"
	TopicMissingArgument    = "missing-argument"
	TopicUnexpectedArgument = "unexpected-argument"
	TopicStoreFailed        = "store-failed"
	TopicBadParameter       = "bad-parameter"
	TopicVerbose            = "verbose"
)

// ErrorBadParameter - Invalid call to the parser.
// It has a string placeholder '%s' for the reason.
var ErrorBadParameter = "Bad parameter: %s"

// ErrorUnrecognizedOption holds the text for an unknown long option.
// It has a string placeholder '%s' for the option as given.
var ErrorUnrecognizedOption = "Unrecognized option: '%s'"

// ErrorUnregisteredShort holds the text for a short option missing from the short option string.
// It has a string placeholder '%s' for the option as given.
var ErrorUnregisteredShort = "Unregistered short option: '%s'"

// ErrorShortNoLong holds the text for a short option without a matching long option.
// It has a string placeholder '%s' for the option as given.
var ErrorShortNoLong = "Short option '%s' has no long option registered"

// ErrorMissingArgument holds the text for missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorUnexpectedArgument holds the text for an argument given to an option that takes none.
// It has a string placeholder '%s' for the name of the option.
var ErrorUnexpectedArgument = "Option '%s' doesn't allow an argument!"

// ErrorStoreFailed holds the text for a failure while storing an option.
// It has string placeholders for the name of the option and the value.
var ErrorStoreFailed = "Unable to store option '%s' with value '%s': "

// MessageNoHelp - Shown when the help file has no entry for a requested option.
var MessageNoHelp = "No help is available for option '--%s'\n"

// MessageUsage - Shown when the help file has no usage topic.
// It has a string placeholder '%s' for the program name.
var MessageUsage = "Usage: %s [OPTIONS] [ARGS]\n"

// MessageVersion - Shown when the help file has no version topic.
// It has string placeholders for the program name and the version.
var MessageVersion = "%s %s\n"
