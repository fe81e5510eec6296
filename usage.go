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
	"strconv"
	"strings"
)

// Generated help, used when the help file has no usage topic.

// HelpSynopsisHeader and HelpOptionsHeader - Section titles of the generated usage.
var (
	HelpSynopsisHeader = "SYNOPSIS"
	HelpOptionsHeader  = "OPTIONS"
)

func argName(d Descriptor) string {
	if d.ArgName != "" {
		return d.ArgName
	}
	return "arg"
}

func aliasString(d Descriptor) string {
	s := "--" + d.Name
	if d.Short != 0 {
		s += "|-" + string(d.Short)
	}
	return s
}

// optionSynopsis - --name|-n <arg>
func optionSynopsis(d Descriptor) string {
	s := aliasString(d)
	switch {
	case d.Namespaced:
		s += " <key> <value>"
	case d.Arg == RequiredArgument:
		s += " <" + argName(d) + ">"
	case d.Arg == OptionalArgument:
		s += "[=<" + argName(d) + ">]"
	}
	return s
}

// optionLine - synopsis followed by the description.
func optionLine(d Descriptor) string {
	return strings.TrimRight(fmt.Sprintf("    %s    %s", optionSynopsis(d), d.Description), " ")
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// usage - Returns a synopsis and the option list built from the table.
func (p *Parser) usage() string {
	entries := p.table.entries()

	scriptName := "    " + p.program.Name
	line := scriptName
	out := ""
	for _, d := range entries {
		syn := "[" + optionSynopsis(d) + "]"
		if len(line)+len(syn) > 80 {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += " " + syn
		}
	}
	if syn := "[<args>]"; len(line)+len(syn) > 80 {
		out += line + "\n"
		line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
	} else {
		line += " " + syn
	}
	out += line
	usage := fmt.Sprintf("%s:\n%s\n", HelpSynopsisHeader, out)

	if len(entries) == 0 {
		return usage
	}
	factor := 0
	for _, d := range entries {
		if l := len(optionSynopsis(d)); l > factor {
			factor = l
		}
	}
	usage += fmt.Sprintf("\n%s:\n", HelpOptionsHeader)
	for _, d := range entries {
		usage += strings.TrimRight(fmt.Sprintf("    %s    %s", pad(optionSynopsis(d), factor), d.Description), " ") + "\n"
	}
	return usage
}
