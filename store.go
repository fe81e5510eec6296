// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

// Accumulator - Records a matched option into the result.
//
// name is the canonical option name, present is false for options called without a value.
// Custom accumulators can redirect values elsewhere, for example converting them into typed
// fields, but callers relying on the Result expect the DefaultStore presence and multiplicity rules.
type Accumulator interface {
	Store(r *Result, name string, value string, present bool) error
}

// StoreFunc - Adapter to use an ordinary function as an Accumulator.
type StoreFunc func(r *Result, name string, value string, present bool) error

// Store - Calls f.
func (f StoreFunc) Store(r *Result, name string, value string, present bool) error {
	return f(r, name, value, present)
}

// DefaultStore - Appends values to the option instance, creating it on first use.
var DefaultStore Accumulator = StoreFunc(func(r *Result, name string, value string, present bool) error {
	Logger.Printf("store %s present=%v value=%q", name, present, value)
	r.Add(name, value, present)
	return nil
})
