// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdline - getopt_long style command line parser for runtime tools.

It turns an argument vector into an ordered set of option instances, each
carrying the text values it was called with, plus the positional tail.
Requests for help and version are answered inline and end the parse.

	table := cmdline.Table{
		{Name: "np", Short: 'n', Arg: cmdline.RequiredArgument},
		{Name: "verbose", Short: 'v', Arg: cmdline.NoArgument},
		{Name: "prtemca", Arg: cmdline.RequiredArgument, Namespaced: true},
	}
	parser := cmdline.New("h::Vn:v", table, cmdline.HelpFile("help-prterun"))
	result, err := parser.Parse(os.Args[1:])
	if errors.Is(err, cmdline.ErrorSilent) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1) // The diagnostic has already been written.
	}

Short options are described with a POSIX getopt string: a letter takes no
argument, 'x:' requires one and 'x::' takes an optional argument that must be
attached, as in -xvalue.
Every short option must have a Descriptor with the same Short flag except for
'h' and 'V', which request help and version unless the table assigns them to
another option.

Long options are matched by their full name, --name, with arguments given as
--name=value or, when required, as the next element.

Options and positional arguments can be interleaved: all options are
processed and the positional arguments are returned in Result.Tail in their
original order. Everything after "--" is positional.

Help can be requested for any option with "--name help" or "-h name".
*/
package cmdline

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-cmdline/help"
	"github.com/DavidGamba/go-cmdline/internal/scanner"
	"github.com/DavidGamba/go-cmdline/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer diagnostics are written to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// Program - Identifies the running tool in help and version text.
type Program struct {
	Name      string
	Package   string
	Version   string
	BugReport string
}

// Parser - Immutable parser configuration.
// A Parser can be used for any number of Parse calls, including concurrent ones.
type Parser struct {
	shorts   string
	table    Table
	helpFile string
	provider help.Provider
	store    Accumulator
	out      io.Writer
	errOut   io.Writer
	program  Program

	params scanner.Params
	err    error
}

// ModifyFn - Function signature for functions that modify the parser.
type ModifyFn func(p *Parser)

// HelpFile - Help file used for usage, version and option topics.
func HelpFile(name string) ModifyFn {
	return func(p *Parser) {
		if name != "" {
			p.helpFile = name
		}
	}
}

// TextProvider - Replaces the default help catalog.
func TextProvider(provider help.Provider) ModifyFn {
	return func(p *Parser) {
		p.provider = provider
	}
}

// Store - Replaces the default Accumulator.
func Store(a Accumulator) ModifyFn {
	return func(p *Parser) {
		if a != nil {
			p.store = a
		}
	}
}

// Output - Writer for help and version text. Defaults to os.Stdout.
func Output(w io.Writer) ModifyFn {
	return func(p *Parser) {
		p.out = w
	}
}

// ErrorOutput - Writer for diagnostics. Defaults to Writer.
func ErrorOutput(w io.Writer) ModifyFn {
	return func(p *Parser) {
		p.errOut = w
	}
}

// Self - Sets the program details shown in help and version text.
// Empty fields keep their defaults.
func Self(prog Program) ModifyFn {
	return func(p *Parser) {
		if prog.Name != "" {
			p.program.Name = prog.Name
		}
		if prog.Package != "" {
			p.program.Package = prog.Package
		}
		if prog.Version != "" {
			p.program.Version = prog.Version
		}
		if prog.BugReport != "" {
			p.program.BugReport = prog.BugReport
		}
	}
}

// New - Returns a Parser for the given short option string and descriptor table.
// Definition errors, including a short option string that disagrees with the table on
// which flags take an argument, are reported by Parse as ErrorBadParameter.
func New(shorts string, table Table, fns ...ModifyFn) *Parser {
	p := &Parser{
		shorts:   shorts,
		table:    table,
		helpFile: text.HelpCLIFile,
		store:    DefaultStore,
		out:      os.Stdout,
		errOut:   Writer,
		program: Program{
			Name:    filepath.Base(os.Args[0]),
			Package: filepath.Base(os.Args[0]),
			Version: "unknown",
		},
	}
	for _, fn := range fns {
		fn(p)
	}
	if p.provider == nil {
		p.provider = help.Default()
	}

	if err := table.Validate(); err != nil {
		p.err = fmt.Errorf(text.ErrorBadParameter+"%w", err.Error(), ErrorBadParameter)
		return p
	}
	shortOpts, err := scanner.ParseShorts(shorts)
	if err != nil {
		p.err = fmt.Errorf(text.ErrorBadParameter+"%w", fmt.Sprintf("%s '%s'", err, shorts), ErrorBadParameter)
		return p
	}
	if err := table.checkShorts(shortOpts); err != nil {
		p.err = fmt.Errorf(text.ErrorBadParameter+"%w", err.Error(), ErrorBadParameter)
		return p
	}
	p.params = scanner.Params{Shorts: shortOpts, Longs: table.longs()}
	return p
}

// Parse - Convenience wrapper: builds a Parser and parses argv.
// A nil store uses DefaultStore.
func Parse(argv []string, shorts string, table Table, store Accumulator, helpFile string) (*Result, error) {
	return New(shorts, table, Store(store), HelpFile(helpFile)).Parse(argv)
}

// Table - Returns the descriptor table.
func (p *Parser) Table() Table {
	return p.table
}
