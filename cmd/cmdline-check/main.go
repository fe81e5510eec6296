// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// cmdline-check - Parses an argument vector against a sample launcher table and prints the outcome.
//
//	cmdline-check [--debug] [--no-color] [--help-file <file>] -- <args>...
//	cmdline-check [--debug] [--no-color] -c '<command line>'
package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-cmdline"
	"github.com/DavidGamba/go-cmdline/help"
	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

//go:embed help-prun.yaml
var helpFiles embed.FS

// Logger instance set to `io.Discard` by default, `--debug` sends it to stderr.
var Logger = log.New(io.Discard, "", log.LstdFlags)

// sampleTable - Options of a parallel job launcher.
var sampleTable = cmdline.Table{
	{Name: "np", Short: 'n', Arg: cmdline.RequiredArgument, ArgName: "count", Description: "Number of processes to run"},
	{Name: "verbose", Short: 'v', Arg: cmdline.NoArgument, Description: "Be verbose"},
	{Name: "output", Short: 'z', Arg: cmdline.OptionalArgument, ArgName: "dir", Description: "Redirect output"},
	{Name: "host", Arg: cmdline.RequiredArgument, ArgName: "list", Description: "Comma separated list of hosts"},
	{Name: "prtemca", Arg: cmdline.RequiredArgument, Namespaced: true, Description: "Set a runtime parameter"},
	{Name: "display", Arg: cmdline.NoArgument, Description: "Display the process map"},
}

const sampleShorts = "h::Vn:vz::"

var sampleProgram = cmdline.Program{Name: "prun", Package: "PRRTE", Version: "4.0.0", BugReport: "https://github.com/openpmix/prrte/issues"}

// selfTable - Options of cmdline-check itself.
var selfTable = cmdline.Table{
	{Name: "debug", Arg: cmdline.NoArgument, Description: "Print debug logs to stderr"},
	{Name: "no-color", Arg: cmdline.NoArgument, Description: "Disable colored diagnostics"},
	{Name: "command", Short: 'c', Arg: cmdline.RequiredArgument, ArgName: "line", Description: "Shell-like line to split and parse"},
	{Name: "help-file", Arg: cmdline.RequiredArgument, ArgName: "file", Description: "Extra YAML or TOML help file for the sample table"},
}

// Report - Outcome of checking one vector.
type Report struct {
	Args        []string            `yaml:"args"`
	Termination string              `yaml:"termination"`
	ExitCode    int                 `yaml:"exit_code"`
	Error       string              `yaml:"error,omitempty"`
	Instances   []*cmdline.Instance `yaml:"instances,omitempty"`
	Tail        []string            `yaml:"tail,omitempty"`
}

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	self := cmdline.New("h::Vc:", selfTable,
		cmdline.Output(stdout),
		cmdline.ErrorOutput(stderr),
		cmdline.Self(cmdline.Program{Name: "cmdline-check", Version: "0.1.0"}),
	)
	opts, err := self.Parse(args[1:])
	if err != nil {
		return cmdline.ExitCode(err)
	}
	if opts.Called("debug") {
		Logger.SetOutput(stderr)
		cmdline.Logger.SetOutput(stderr)
		help.Logger.SetOutput(stderr)
	}

	catalog, err := newCatalog(opts)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	catalog.SetColor(useColor(opts, stderr))

	vector := opts.Tail
	if line, ok := opts.Value("command"); ok {
		vector, err = shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: failed to split '%s': %s\n", line, err)
			return 1
		}
	}
	if vector == nil {
		vector = []string{}
	}
	Logger.Printf("checking %q", vector)

	report, code := check(catalog, vector, stdout, stderr)
	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	fmt.Fprint(stdout, string(out))
	return code
}

func newCatalog(opts *cmdline.Result) (*help.Catalog, error) {
	catalog := help.Default()
	if err := catalog.LoadFS(helpFiles); err != nil {
		return nil, err
	}
	for _, f := range opts.Values("help-file") {
		if err := catalog.LoadFile(f); err != nil {
			return nil, err
		}
		// Extra files extend the sample help file.
		name := help.FileName(f)
		for _, topic := range catalog.Topics(name) {
			if s, ok := catalog.Lookup(name, topic, false); ok {
				catalog.Add("help-prun", topic, s)
			}
		}
	}
	return catalog, nil
}

// useColor - Colored diagnostics only when writing to a terminal.
func useColor(opts *cmdline.Result, w io.Writer) bool {
	if opts.Called("no-color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func check(catalog help.Provider, vector []string, stdout, stderr io.Writer) (Report, int) {
	parser := cmdline.New(sampleShorts, sampleTable,
		cmdline.HelpFile("help-prun"),
		cmdline.TextProvider(catalog),
		cmdline.Output(stdout),
		cmdline.ErrorOutput(stderr),
		cmdline.Self(sampleProgram),
	)
	result, err := parser.Parse(vector)
	report := Report{
		Args:        vector,
		Termination: cmdline.Kind(err).String(),
		ExitCode:    cmdline.ExitCode(err),
	}
	if err != nil && !errors.Is(err, cmdline.ErrorSilent) {
		report.Error = err.Error()
	}
	if result != nil {
		report.Instances = result.Instances()
		report.Tail = result.Tail
	}
	return report, report.ExitCode
}
