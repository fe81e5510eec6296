// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package help - Topic based help and diagnostic text.

Help files hold a set of named topics, each topic a printf style template.
A Catalog keeps the loaded files and renders topics on request:

	c := help.Default()
	err := c.LoadFile("help-prterun.yaml")
	txt, ok := c.Lookup("help-prterun", "usage", false, "prterun", "PRRTE", "4.0.0")

Error topics are framed with dashed lines, colored when color output is enabled.
*/
package help

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// FrameWidth - Width of the dashed lines around error topics.
var FrameWidth = 74

// Provider - Source of all user visible text.
// Lookup returns the rendered topic or false when the file or topic doesn't exist.
type Provider interface {
	Lookup(file, topic string, isError bool, args ...interface{}) (string, bool)
}

// Catalog - In memory set of help files.
type Catalog struct {
	mu    sync.RWMutex
	files map[string]map[string]string
	color *bool
}

// New - Returns an empty Catalog.
func New() *Catalog {
	return &Catalog{files: map[string]map[string]string{}}
}

// FileName - Normalizes a help file reference: "dir/help-cli.yaml" and "help-cli" are the same file.
func FileName(name string) string {
	base := filepath.Base(name)
	switch ext := filepath.Ext(base); ext {
	case ".yaml", ".yml", ".toml", ".txt":
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// Add - Adds or replaces a topic.
func (c *Catalog) Add(file, topic, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	file = FileName(file)
	if _, ok := c.files[file]; !ok {
		c.files[file] = map[string]string{}
	}
	c.files[file][topic] = text
}

// AddFile - Adds all topics of a file, replacing existing ones.
func (c *Catalog) AddFile(file string, topics map[string]string) {
	for topic, text := range topics {
		c.Add(file, topic, text)
	}
}

// Files - Returns the loaded file names, sorted.
func (c *Catalog) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.files))
	for k := range c.files {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Topics - Returns the topic names of a file, sorted.
func (c *Catalog) Topics(file string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	topics := []string{}
	for k := range c.files[FileName(file)] {
		topics = append(topics, k)
	}
	sort.Strings(topics)
	return topics
}

// SetColor - Forces color output on or off.
// By default it follows color.NoColor.
func (c *Catalog) SetColor(enabled bool) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = &enabled
	return c
}

// Lookup - Renders a topic with the given arguments.
func (c *Catalog) Lookup(file, topic string, isError bool, args ...interface{}) (string, bool) {
	c.mu.RLock()
	tmpl, ok := c.files[FileName(file)][topic]
	forced := c.color
	c.mu.RUnlock()
	if !ok {
		Logger.Printf("no topic '%s' in help file '%s'", topic, file)
		return "", false
	}

	out := tmpl
	if len(args) > 0 {
		out = fmt.Sprintf(tmpl, args...)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if isError {
		out = frame(out, forced)
	}
	return out, true
}

func frame(s string, forced *bool) string {
	c := color.New(color.FgRed)
	if forced != nil {
		if *forced {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	line := c.Sprint(strings.Repeat("-", FrameWidth))
	return line + "\n" + s + line + "\n"
}
