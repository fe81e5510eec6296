// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package scanner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scanned struct {
	Flag   string
	Arg    string
	HasArg bool
}

var testParams = Params{
	Shorts: []Short{
		{'v', NoArgument},
		{'x', NoArgument},
		{'n', RequiredArgument},
		{'z', OptionalArgument},
	},
	Longs: []Long{
		{"verbose", NoArgument},
		{"np", RequiredArgument},
		{"output", OptionalArgument},
	},
}

func scanAll(args []string) ([]scanned, []string, error) {
	s := New(args)
	out := []scanned{}
	for {
		r, err := s.Next(testParams)
		if errors.Is(err, ErrDone) {
			return out, s.Remaining(), nil
		}
		if err != nil {
			return out, nil, err
		}
		out = append(out, scanned{Flag: r.Flag(), Arg: r.Arg, HasArg: r.HasArg})
	}
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		options   []scanned
		remaining []string
		err       error
	}{
		{"empty", []string{}, []scanned{}, nil, nil},
		{"only text", []string{"a", "b"}, []scanned{}, []string{"a", "b"}, nil},
		{"long", []string{"--verbose"}, []scanned{{"--verbose", "", false}}, nil, nil},
		{"long required next", []string{"--np", "4", "a"}, []scanned{{"--np", "4", true}}, []string{"a"}, nil},
		{"long required attached", []string{"--np=4"}, []scanned{{"--np", "4", true}}, nil, nil},
		{"long required empty attached", []string{"--np="}, []scanned{{"--np", "", true}}, nil, nil},
		{"long required takes dash arg", []string{"--np", "-4"}, []scanned{{"--np", "-4", true}}, nil, nil},
		{"long optional attached", []string{"--output=file"}, []scanned{{"--output", "file", true}}, nil, nil},
		{"long optional not attached", []string{"--output", "file"}, []scanned{{"--output", "", false}}, []string{"file"}, nil},
		{"cluster", []string{"-vx"}, []scanned{{"-v", "", false}, {"-x", "", false}}, nil, nil},
		{"cluster ending in required", []string{"-vn4"}, []scanned{{"-v", "", false}, {"-n", "4", true}}, nil, nil},
		{"cluster ending in required next", []string{"-vn", "4"}, []scanned{{"-v", "", false}, {"-n", "4", true}}, nil, nil},
		{"short optional attached", []string{"-zfoo"}, []scanned{{"-z", "foo", true}}, nil, nil},
		{"short optional separate", []string{"-z", "foo"}, []scanned{{"-z", "", false}}, []string{"foo"}, nil},
		{"permutation", []string{"a", "-v", "b", "--np", "2", "c", "-x"},
			[]scanned{{"-v", "", false}, {"--np", "2", true}, {"-x", "", false}},
			[]string{"a", "b", "c"}, nil},
		{"permutation with cluster", []string{"a", "-vx", "b"},
			[]scanned{{"-v", "", false}, {"-x", "", false}},
			[]string{"a", "b"}, nil},
		{"terminator", []string{"-v", "--", "-x", "a"}, []scanned{{"-v", "", false}}, []string{"-x", "a"}, nil},
		{"terminator after text", []string{"a", "-v", "b", "--", "-x"}, []scanned{{"-v", "", false}}, []string{"a", "b", "-x"}, nil},
		{"terminator last", []string{"-v", "--"}, []scanned{{"-v", "", false}}, nil, nil},
		{"lonesome dash and empty", []string{"-", "", "-v"}, []scanned{{"-v", "", false}}, []string{"-", ""}, nil},
		{"unknown long", []string{"--nope"}, []scanned{}, nil, ErrUnknownLong},
		{"abbreviation is unknown", []string{"--verb"}, []scanned{}, nil, ErrUnknownLong},
		{"unknown short", []string{"-q"}, []scanned{}, nil, ErrUnknownShort},
		{"unknown short in cluster", []string{"-vq"}, []scanned{{"-v", "", false}}, nil, ErrUnknownShort},
		{"missing long argument", []string{"--np"}, []scanned{}, nil, ErrMissingArg},
		{"missing short argument", []string{"a", "-n"}, []scanned{}, nil, ErrMissingArg},
		{"illegal argument", []string{"--verbose=yes"}, []scanned{}, nil, ErrIllegalArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, remaining, err := scanAll(append([]string{}, tt.args...))
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.err)
			}
			if diff := cmp.Diff(tt.options, options); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
			if tt.err == nil {
				if diff := cmp.Diff(tt.remaining, remaining); diff != "" {
					t.Errorf("remaining mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestScannerRemainingIsSuffix(t *testing.T) {
	args := []string{"a", "--np", "2", "b", "-v", "c"}
	s := New(args)
	for {
		_, err := s.Next(testParams)
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	expected := []string{"--np", "2", "-v", "a", "b", "c"}
	if diff := cmp.Diff(expected, s.Args()); diff != "" {
		t.Errorf("permuted args mismatch (-want +got):\n%s", diff)
	}
	if s.OptInd() != 3 {
		t.Errorf("unexpected optind: %d", s.OptInd())
	}
	// Done stays done.
	if _, err := s.Next(testParams); !errors.Is(err, ErrDone) {
		t.Errorf("expected ErrDone, got %v", err)
	}
}

func TestPeekTake(t *testing.T) {
	s := New([]string{"a", "-v", "b", "c"})
	r, err := s.Next(testParams)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Flag() != "-v" || !r.Last {
		t.Errorf("unexpected result: %+v", r)
	}
	v, ok := s.Peek()
	if !ok || v != "b" {
		t.Errorf("unexpected peek: %q %v", v, ok)
	}
	v, ok = s.Take()
	if !ok || v != "b" {
		t.Errorf("unexpected take: %q %v", v, ok)
	}
	if _, err := s.Next(testParams); !errors.Is(err, ErrDone) {
		t.Fatalf("expected ErrDone, got %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, s.Remaining()); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Peek(); ok {
		t.Errorf("peek after done should fail")
	}
}

func TestPeekInsideCluster(t *testing.T) {
	s := New([]string{"-vx", "b"})
	r, err := s.Next(testParams)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Last {
		t.Errorf("-v is not the last option of the cluster")
	}
	if _, ok := s.Peek(); ok {
		t.Errorf("peek inside a cluster should fail")
	}
}

func TestParseShorts(t *testing.T) {
	tests := []struct {
		spec     string
		expected []Short
		err      error
	}{
		{"", []Short{}, nil},
		{"hV", []Short{{'h', NoArgument}, {'V', NoArgument}}, nil},
		{"h::n:v", []Short{{'h', OptionalArgument}, {'n', RequiredArgument}, {'v', NoArgument}}, nil},
		{":h", nil, ErrInvalidShorts},
		{"+h", nil, ErrInvalidShorts},
		{"hh", nil, ErrInvalidShorts},
		{"a:::", nil, ErrInvalidShorts},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseShorts(tt.spec)
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
