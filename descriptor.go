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
	"unicode"

	"github.com/DavidGamba/go-cmdline/internal/scanner"
)

// ArgPolicy - Indicates whether an option takes an argument.
type ArgPolicy int

// Argument policies
const (
	NoArgument ArgPolicy = iota
	RequiredArgument
	OptionalArgument
)

func (a ArgPolicy) String() string {
	return scanner.HasArg(a).String()
}

func (a ArgPolicy) hasArg() scanner.HasArg {
	return scanner.HasArg(a)
}

// Descriptor - Describes one recognized option.
type Descriptor struct {
	Name  string    // Canonical name, the long option without dashes
	Short rune      // Short flag character, 0 when the option has no short form
	Arg   ArgPolicy // Argument policy of the long form

	// Namespaced options take a key argument followed by a value and are
	// stored as a single "key=value" string.
	// This lets one descriptor carry an open ended set of parameters.
	Namespaced bool

	// Optional text used when the help file has no topic for the option.
	Description string
	// Optional argument name used in generated help, defaults to "arg".
	ArgName string
}

// Table - Ordered list of descriptors.
// A descriptor with an empty name ends the table, anything after it is ignored.
type Table []Descriptor

// Reserved option names handled by the help interceptor.
const (
	helpName    = "help"
	versionName = "version"
	helpShort   = 'h'
	versionChar = 'V'
)

// entries - Descriptors up to the sentinel.
func (t Table) entries() []Descriptor {
	for i, d := range t {
		if d.Name == "" {
			return t[:i]
		}
	}
	return t
}

// Lookup - Returns the descriptor with the given canonical name.
func (t Table) Lookup(name string) (Descriptor, bool) {
	for _, d := range t.entries() {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// LookupShort - Returns the descriptor with the given short flag.
func (t Table) LookupShort(c rune) (Descriptor, bool) {
	if c == 0 {
		return Descriptor{}, false
	}
	for _, d := range t.entries() {
		if d.Short == c {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Validate - Checks the table for definition errors.
func (t Table) Validate() error {
	if t == nil {
		return fmt.Errorf("nil option table")
	}
	names := map[string]bool{}
	shorts := map[rune]string{}
	for _, d := range t.entries() {
		if names[d.Name] {
			return fmt.Errorf("option '%s' is already defined", d.Name)
		}
		names[d.Name] = true
		if d.Arg < NoArgument || d.Arg > OptionalArgument {
			return fmt.Errorf("option '%s' has an invalid argument policy", d.Name)
		}
		if d.Namespaced && d.Arg != RequiredArgument {
			return fmt.Errorf("namespaced option '%s' must require an argument", d.Name)
		}
		if d.Short != 0 {
			if !unicode.IsLetter(d.Short) && !unicode.IsDigit(d.Short) {
				return fmt.Errorf("option '%s' has an invalid short flag '%c'", d.Name, d.Short)
			}
			if v, ok := shorts[d.Short]; ok {
				return fmt.Errorf("short flag '%c' of option '%s' is already used by option '%s'", d.Short, d.Name, v)
			}
			shorts[d.Short] = d.Name
		}
	}
	return nil
}

// checkShorts - The short option string must agree with the table on which short flags take an argument.
// REQUIRED and namespaced options need 'x:', options without argument need a plain 'x'.
// Short flags missing from the string and the help and version entries are not checked.
func (t Table) checkShorts(shorts []scanner.Short) error {
	for _, d := range t.entries() {
		if d.Short == 0 || d.Name == helpName || d.Name == versionName {
			continue
		}
		for _, sh := range shorts {
			if sh.Char != d.Short {
				continue
			}
			switch {
			case d.Arg == RequiredArgument && sh.HasArg != scanner.RequiredArgument:
				return fmt.Errorf("short flag '%c' of option '%s' must be given as '%c:'", d.Short, d.Name, d.Short)
			case d.Arg == NoArgument && sh.HasArg != scanner.NoArgument:
				return fmt.Errorf("short flag '%c' of option '%s' takes no argument, it must be given as '%c'", d.Short, d.Name, d.Short)
			}
		}
	}
	return nil
}

// longs - Scanner long options: the table plus the built-in help and version options when the table doesn't define them.
func (t Table) longs() []scanner.Long {
	entries := t.entries()
	longs := make([]scanner.Long, 0, len(entries)+2)
	for _, d := range entries {
		longs = append(longs, scanner.Long{Name: d.Name, HasArg: d.Arg.hasArg()})
	}
	if _, ok := t.Lookup(helpName); !ok {
		longs = append(longs, scanner.Long{Name: helpName, HasArg: scanner.OptionalArgument})
	}
	if _, ok := t.Lookup(versionName); !ok {
		longs = append(longs, scanner.Long{Name: versionName, HasArg: scanner.NoArgument})
	}
	return longs
}
