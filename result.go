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
)

// Instance - One recognized option and the values it was called with, in order.
// An instance without values is a boolean flag, its presence means true.
type Instance struct {
	Key    string   `yaml:"key" json:"key"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// Result - Parse outcome.
// Instances keep the order in which each option was first seen.
type Result struct {
	instances []*Instance
	index     map[string]int

	// Tail holds the positional arguments left after the options, nil if there were none.
	Tail []string
}

// NewResult - Returns an empty Result.
func NewResult() *Result {
	return &Result{index: map[string]int{}}
}

// Add - Records name with an optional value.
// Repeated names append the value to the existing instance, a repeated name without value is a no-op.
func (r *Result) Add(name string, value string, present bool) {
	if r.index == nil {
		r.index = map[string]int{}
	}
	if i, ok := r.index[name]; ok {
		if present {
			r.instances[i].Values = append(r.instances[i].Values, value)
		}
		return
	}
	inst := &Instance{Key: name}
	if present {
		inst.Values = []string{value}
	}
	r.index[name] = len(r.instances)
	r.instances = append(r.instances, inst)
}

// Instances - Returns the recorded options in first seen order.
func (r *Result) Instances() []*Instance {
	return r.instances
}

// Len - Number of distinct options recorded.
func (r *Result) Len() int {
	return len(r.instances)
}

// Keys - Names of the recorded options in first seen order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.instances))
	for _, inst := range r.instances {
		keys = append(keys, inst.Key)
	}
	return keys
}

// Lookup - Returns the instance for name.
func (r *Result) Lookup(name string) (*Instance, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.instances[i], true
}

// Called - Indicates if the option was passed on the command line.
func (r *Result) Called(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Values - Returns all values given to name.
func (r *Result) Values(name string) []string {
	inst, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	return inst.Values
}

// Value - Returns the last value given to name.
func (r *Result) Value(name string) (string, bool) {
	values := r.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func (r *Result) String() string {
	var b strings.Builder
	for _, inst := range r.instances {
		fmt.Fprintf(&b, "%s: %v\n", inst.Key, inst.Values)
	}
	if len(r.Tail) > 0 {
		fmt.Fprintf(&b, "tail: %v\n", r.Tail)
	}
	return b.String()
}
