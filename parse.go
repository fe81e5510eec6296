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

	"github.com/DavidGamba/go-cmdline/internal/argv"
	"github.com/DavidGamba/go-cmdline/internal/scanner"
	"github.com/DavidGamba/go-cmdline/text"
)

// Parse - Parses args, os.Args[1:] for example.
//
// On success it returns the populated Result.
// When help or version text was requested it is written to the output and ErrorSilent is returned.
// Any other error has already been explained on the error output, the caller only needs to pick an exit status.
// args is never modified.
func (p *Parser) Parse(args []string) (*Result, error) {
	if p.err != nil {
		return nil, p.fail(text.TopicBadParameter, p.err, p.program.Name, p.err.Error())
	}
	if args == nil {
		err := fmt.Errorf(text.ErrorBadParameter+"%w", "nil argument vector", ErrorBadParameter)
		return nil, p.fail(text.TopicBadParameter, err, p.program.Name, err.Error())
	}

	// The scanner reorders its input, work on a copy.
	st := scanner.New(argv.CopyStrip(args))
	result := NewResult()

	for {
		r, err := st.Next(p.params)
		if errors.Is(err, scanner.ErrDone) {
			break
		}
		if err != nil {
			return nil, p.scanError(r, err)
		}
		Logger.Printf("scanned %s arg=%q hasArg=%v", r.Flag(), r.Arg, r.HasArg)

		switch r.Kind {
		case scanner.KindLong:
			err = p.handleLong(st, result, r)
		case scanner.KindShort:
			err = p.handleShort(st, result, r)
		}
		if err != nil {
			return nil, err
		}
	}

	if tail := st.Remaining(); len(tail) > 0 {
		result.Tail = append([]string{}, tail...)
	}
	return result, nil
}

func (p *Parser) handleLong(st *scanner.State, result *Result, r scanner.Result) error {
	switch r.Name {
	case helpName:
		return p.help(st, r.Arg, r.HasArg)
	case versionName:
		return p.version()
	}
	d, _ := p.table.Lookup(r.Name)
	return p.dispatch(st, result, d, r)
}

func (p *Parser) handleShort(st *scanner.State, result *Result, r scanner.Result) error {
	d, ok := p.table.LookupShort(r.Char)
	if ok && d.Name != helpName && d.Name != versionName {
		return p.dispatch(st, result, d, r)
	}
	switch r.Char {
	case helpShort:
		return p.help(st, r.Arg, r.HasArg)
	case versionChar:
		return p.version()
	}
	if ok {
		// A table entry named help or version with some other short flag.
		switch d.Name {
		case helpName:
			return p.help(st, r.Arg, r.HasArg)
		case versionName:
			return p.version()
		}
	}
	return p.fail(text.TopicShortNoLong, fmt.Errorf(text.ErrorShortNoLong+"%w", r.Flag(), ErrorShortNoLong),
		p.program.Name, r.Flag())
}

// dispatch - Stores a matched option, unless the option is followed by a help request.
func (p *Parser) dispatch(st *scanner.State, result *Result, d Descriptor, r scanner.Result) error {
	if r.HasArg && isHelpWord(r.Arg) {
		return p.optionHelp(d)
	}
	if !r.HasArg && r.Last {
		if next, ok := st.Peek(); ok && isTrailingHelpWord(next) {
			return p.optionHelp(d)
		}
	}

	value, present := r.Arg, r.HasArg
	if d.Namespaced {
		v, ok := st.Take()
		if !ok {
			return p.fail(text.TopicMissingArgument, fmt.Errorf(text.ErrorMissingArgument+"%w", r.Flag(), ErrorMissingArgument),
				p.program.Name, r.Flag()+" "+r.Arg)
		}
		value = r.Arg + "=" + v
	}

	if err := p.store.Store(result, d.Name, value, present); err != nil {
		return p.fail(text.TopicStoreFailed, fmt.Errorf(text.ErrorStoreFailed+"%w%w", d.Name, value, ErrorStore, err),
			p.program.Name, d.Name, value, err)
	}
	return nil
}

// scanError - Explains a scanner error and maps it to the package errors.
func (p *Parser) scanError(r scanner.Result, err error) error {
	flag := r.Flag()
	switch {
	case errors.Is(err, scanner.ErrUnknownLong):
		return p.fail(text.TopicUnrecognizedOption, fmt.Errorf(text.ErrorUnrecognizedOption+"%w", r.Token, ErrorUnrecognizedOption),
			p.program.Name, r.Token)
	case errors.Is(err, scanner.ErrUnknownShort):
		return p.fail(text.TopicUnregisteredOption, fmt.Errorf(text.ErrorUnregisteredShort+"%w", flag, ErrorUnregisteredShort),
			p.program.Name, flag, p.program.Name)
	case errors.Is(err, scanner.ErrMissingArg):
		return p.fail(text.TopicMissingArgument, fmt.Errorf(text.ErrorMissingArgument+"%w", flag, ErrorMissingArgument),
			p.program.Name, flag)
	case errors.Is(err, scanner.ErrIllegalArg):
		return p.fail(text.TopicUnexpectedArgument, fmt.Errorf(text.ErrorUnexpectedArgument+"%w", flag, ErrorUnexpectedArgument),
			p.program.Name, r.Token)
	}
	return err
}

// fail - Writes the diagnostic for err and returns err.
// When the help catalog has no topic the error message itself is written.
func (p *Parser) fail(topic string, err error, args ...interface{}) error {
	Logger.Printf("parse error: %s", err)
	if s, ok := p.provider.Lookup(text.HelpCLIFile, topic, true, args...); ok {
		fmt.Fprint(p.errOut, s)
		return err
	}
	fmt.Fprintf(p.errOut, "ERROR: %s\n", err)
	return err
}
