// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argv - helpers to work on argument vectors without touching the caller's copy.
package argv

// CopyStrip - Returns a copy of args where every element wrapped in a matching
// pair of double or single quotes has that pair removed.
// A nil input returns nil.
func CopyStrip(args []string) []string {
	if args == nil {
		return nil
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = Strip(a)
	}
	return out
}

// Strip - Removes one matching pair of surrounding quotes.
func Strip(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
