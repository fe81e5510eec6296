// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-cmdline/internal/scanner"
	"github.com/DavidGamba/go-cmdline/text"
)

// isHelpWord - Values that, given as an option argument, request help on the option.
func isHelpWord(s string) bool {
	switch s {
	case "help", "--help", "-help", "h", "-h":
		return true
	}
	return false
}

// isTrailingHelpWord - Same as isHelpWord for the element following an option that took no argument.
// A bare "h" is left alone there, it is a likely positional.
func isTrailingHelpWord(s string) bool {
	return s != "h" && isHelpWord(s)
}

// help - Handles -h and --help.
// The help target is the attached argument or, if there is none, the next element.
func (p *Parser) help(st *scanner.State, arg string, hasArg bool) error {
	target, present := arg, hasArg
	if !present {
		target, present = st.Peek()
	}
	target = strings.TrimLeft(target, "-")
	if target == "" {
		// --help= and a trailing "--" ask for nothing in particular.
		present = false
	}
	Logger.Printf("help requested: target=%q present=%v", target, present)

	switch {
	case present && (target == versionName || target == string(versionChar)):
		return p.version()
	case !present:
		if !p.show(p.helpFile, text.TopicUsage, false,
			p.program.Name, p.program.Package, p.program.Version, p.program.Name, p.program.BugReport) {
			fmt.Fprint(p.out, p.usage())
		}
		return ErrorSilent
	case target == helpName || target == string(helpShort):
		if !p.show(text.HelpCLIFile, text.TopicHelp, false, p.program.Name) {
			fmt.Fprint(p.out, p.usage())
		}
		return ErrorSilent
	}

	if d, ok := p.table.Lookup(target); ok {
		return p.optionHelp(d)
	}
	if c, size := utf8.DecodeRuneInString(target); size == len(target) {
		if d, ok := p.table.LookupShort(c); ok {
			return p.optionHelp(d)
		}
	}
	if target == text.TopicVerbose || target == "v" {
		if p.show(p.helpFile, text.TopicVerbose, false) || p.show(text.HelpCLIFile, text.TopicVerbose, false) {
			return ErrorSilent
		}
	}
	if s, ok := p.provider.Lookup(text.HelpCLIFile, text.TopicUnknownOption, true, target, p.program.Name); ok {
		fmt.Fprint(p.errOut, s)
	} else {
		fmt.Fprintf(p.errOut, "ERROR: "+text.ErrorUnrecognizedOption+"\n", target)
	}
	return ErrorSilent
}

// version - Handles -V and --version.
func (p *Parser) version() error {
	args := []interface{}{p.program.Name, p.program.Package, p.program.Version, p.program.BugReport}
	if !p.show(p.helpFile, text.TopicVersion, false, args...) &&
		!p.show(text.HelpCLIFile, text.TopicVersion, false, args...) {
		fmt.Fprintf(p.out, text.MessageVersion, p.program.Name, p.program.Version)
	}
	return ErrorSilent
}

// optionHelp - Writes the help topic of a single option.
func (p *Parser) optionHelp(d Descriptor) error {
	Logger.Printf("help requested for option %s", d.Name)
	if !p.show(p.helpFile, d.Name, false) && !p.show(text.HelpCLIFile, d.Name, false) {
		if d.Description != "" {
			fmt.Fprintf(p.out, "%s\n", optionLine(d))
		} else {
			fmt.Fprintf(p.out, text.MessageNoHelp, d.Name)
		}
	}
	return ErrorSilent
}

// show - Writes a topic to the output, returns false if the topic doesn't exist.
func (p *Parser) show(file, topic string, isError bool, args ...interface{}) bool {
	s, ok := p.provider.Lookup(file, topic, isError, args...)
	if !ok {
		return false
	}
	fmt.Fprint(p.out, s)
	return true
}
