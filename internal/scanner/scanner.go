// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package scanner - getopt_long style token scanner.

The scanner walks an argument vector and returns one option at a time.
Arguments that are not options are skipped and moved behind the options
already processed so that, once scanning is done, Remaining returns the
positional arguments in their original relative order followed by whatever
came after a "--" terminator.

All cursor data lives in State, a new State must be used for every vector.
*/
package scanner

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors returned by Next.
var (
	ErrDone          = errors.New("done")
	ErrUnknownLong   = errors.New("unrecognized option")
	ErrUnknownShort  = errors.New("unregistered short option")
	ErrMissingArg    = errors.New("option requires an argument")
	ErrIllegalArg    = errors.New("option doesn't allow an argument")
	ErrInvalidShorts = errors.New("invalid short option string")
)

// HasArg - Argument policy of an option.
type HasArg int

// Argument policies
const (
	NoArgument HasArg = iota
	RequiredArgument
	OptionalArgument
)

func (h HasArg) String() string {
	switch h {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// Short - short option as described by the short option string.
type Short struct {
	Char   rune
	HasArg HasArg
}

// Long - long option.
type Long struct {
	Name   string
	HasArg HasArg
}

// Params - options known to the scanner.
type Params struct {
	Shorts []Short
	Longs  []Long
}

// ParseShorts - Parses a POSIX getopt short option string.
// A letter alone takes no argument, followed by ':' it requires one and followed by '::' the argument is optional.
// A leading ':' or '+' or '-' (getopt mode markers) is rejected, as is a repeated character.
func ParseShorts(spec string) ([]Short, error) {
	shorts := []Short{}
	seen := map[rune]bool{}
	i := 0
	for i < len(spec) {
		char, size := utf8.DecodeRuneInString(spec[i:])
		if char == utf8.RuneError || char == ':' || char == '-' || char == '+' || char == ' ' {
			return nil, ErrInvalidShorts
		}
		if seen[char] {
			return nil, ErrInvalidShorts
		}
		seen[char] = true
		i += size

		hasArg := NoArgument
		if i < len(spec) && spec[i] == ':' {
			hasArg = RequiredArgument
			i++
			if i < len(spec) && spec[i] == ':' {
				hasArg = OptionalArgument
				i++
			}
		}
		shorts = append(shorts, Short{Char: char, HasArg: hasArg})
	}
	return shorts, nil
}

// Kind - what kind of option Next returned.
type Kind int

// Kinds
const (
	KindLong Kind = iota
	KindShort
)

// Result - a single scanned option.
type Result struct {
	Kind Kind

	// Index into Params.Longs for KindLong.
	Index int
	// Long option name, without the leading dashes.
	Name string
	// Short option character for KindShort.
	Char rune

	Arg    string
	HasArg bool

	// Token the option was read from, verbatim.
	Token string
	// Last indicates there are no more short options pending in the token.
	// Always true for long options.
	Last bool
}

// Flag - Returns the bare flag form: --name or -c.
func (r Result) Flag() string {
	if r.Kind == KindLong {
		return "--" + r.Name
	}
	return "-" + string(r.Char)
}

// State - the scanner cursor.
type State struct {
	args []string

	optInd int // next element to process
	argInd int // next byte to process inside a short option cluster, 0 when not inside a cluster

	// [first, last) holds the non-options already skipped.
	first int
	last  int

	done bool
}

// New - Returns a State over args.
// The scanner reorders args in place, pass a copy if the original order matters.
func New(args []string) *State {
	return &State{args: args}
}

// Args - The, possibly reordered, argument vector.
func (s *State) Args() []string {
	return s.args
}

// OptInd - Index of the next element to process.
func (s *State) OptInd() int {
	return s.optInd
}

func isNonOption(arg string) bool {
	return len(arg) < 2 || arg[0] != '-'
}

// exchange - moves the options processed since the last skip, [last, optInd), in front of the skipped non-options [first, last).
func (s *State) exchange() {
	nonOpts := append([]string{}, s.args[s.first:s.last]...)
	n := copy(s.args[s.first:], s.args[s.last:s.optInd])
	copy(s.args[s.first+n:], nonOpts)
	s.first += n
	s.last = s.optInd
}

// Next - Returns the next option.
// ErrDone is returned once there are no more options, Remaining holds the rest.
func (s *State) Next(p Params) (Result, error) {
	if s.done {
		return Result{}, ErrDone
	}
	if s.argInd == 0 {
		if s.first != s.last && s.last != s.optInd {
			s.exchange()
		} else if s.last != s.optInd {
			s.first = s.optInd
		}

		for s.optInd < len(s.args) && isNonOption(s.args[s.optInd]) {
			s.optInd++
		}
		s.last = s.optInd

		if s.optInd < len(s.args) && s.args[s.optInd] == "--" {
			s.optInd++
			if s.first != s.last && s.last != s.optInd {
				s.exchange()
			} else if s.first == s.last {
				s.first = s.optInd
			}
			s.last = len(s.args)
			s.optInd = len(s.args)
		}

		if s.optInd >= len(s.args) {
			if s.first != s.last {
				s.optInd = s.first
			}
			s.done = true
			return Result{}, ErrDone
		}
	}
	return s.readOpt(p)
}

func (s *State) readOpt(p Params) (Result, error) {
	arg := s.args[s.optInd]
	if s.argInd == 0 && strings.HasPrefix(arg, "--") {
		return s.readLong(arg, p)
	}
	return s.readShort(arg, p)
}

func (s *State) readLong(arg string, p Params) (Result, error) {
	name, inline, foundInline := strings.Cut(arg[2:], "=")
	res := Result{Kind: KindLong, Name: name, Token: arg, Last: true, Index: -1}
	s.optInd++

	for i, l := range p.Longs {
		if l.Name == name {
			res.Index = i
			break
		}
	}
	if res.Index < 0 {
		return res, ErrUnknownLong
	}

	switch p.Longs[res.Index].HasArg {
	case NoArgument:
		if foundInline {
			return res, ErrIllegalArg
		}
	case RequiredArgument:
		if foundInline {
			res.Arg, res.HasArg = inline, true
		} else if s.optInd < len(s.args) {
			res.Arg, res.HasArg = s.args[s.optInd], true
			s.optInd++
		} else {
			return res, ErrMissingArg
		}
	case OptionalArgument:
		if foundInline {
			res.Arg, res.HasArg = inline, true
		}
	}
	return res, nil
}

func (s *State) readShort(arg string, p Params) (Result, error) {
	if s.argInd == 0 {
		s.argInd = 1
	}
	char, size := utf8.DecodeRuneInString(arg[s.argInd:])
	s.argInd += size
	rest := arg[s.argInd:]
	res := Result{Kind: KindShort, Char: char, Token: arg}

	endToken := func() {
		s.optInd++
		s.argInd = 0
		res.Last = true
	}

	hasArg := NoArgument
	found := false
	for _, sh := range p.Shorts {
		if sh.Char == char {
			hasArg, found = sh.HasArg, true
			break
		}
	}
	if !found {
		if rest == "" {
			endToken()
		}
		return res, ErrUnknownShort
	}

	switch hasArg {
	case NoArgument:
		if rest == "" {
			endToken()
		}
	case RequiredArgument:
		endToken()
		if rest != "" {
			res.Arg, res.HasArg = rest, true
		} else if s.optInd < len(s.args) {
			res.Arg, res.HasArg = s.args[s.optInd], true
			s.optInd++
		} else {
			return res, ErrMissingArg
		}
	case OptionalArgument:
		// Only an attached argument counts, a separate one can't be told apart from a positional.
		endToken()
		if rest != "" {
			res.Arg, res.HasArg = rest, true
		}
	}
	return res, nil
}

// Peek - Returns the next element without consuming it.
// It is only valid between tokens, inside a short option cluster it returns false.
func (s *State) Peek() (string, bool) {
	if s.done || s.argInd != 0 || s.optInd >= len(s.args) {
		return "", false
	}
	return s.args[s.optInd], true
}

// Take - Consumes the next element as an option argument.
func (s *State) Take() (string, bool) {
	v, ok := s.Peek()
	if ok {
		s.optInd++
	}
	return v, ok
}

// Remaining - Elements left after scanning finished.
// Before Next returned ErrDone it returns nil.
func (s *State) Remaining() []string {
	if !s.done || s.optInd >= len(s.args) {
		return nil
	}
	return s.args[s.optInd:]
}
