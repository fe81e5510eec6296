// This file is part of go-cmdline.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed help-cli.yaml
var builtin embed.FS

// ErrorUnknownFormat - Help file extension is not one of .yaml, .yml or .toml.
var ErrorUnknownFormat = errors.New("unknown help file format")

// Decode - Decodes the topics of a help file.
// The format is chosen from the file extension.
func Decode(name string, data []byte) (map[string]string, error) {
	topics := map[string]string{}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &topics); err != nil {
			return nil, fmt.Errorf("failed to decode '%s': %w", name, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &topics); err != nil {
			return nil, fmt.Errorf("failed to decode '%s': %w", name, err)
		}
	default:
		return nil, fmt.Errorf("'%s': %w", name, ErrorUnknownFormat)
	}
	return topics, nil
}

// LoadFile - Loads a help file from disk.
func (c *Catalog) LoadFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read help file: %w", err)
	}
	topics, err := Decode(name, data)
	if err != nil {
		return err
	}
	Logger.Printf("loaded %d topics from %s", len(topics), name)
	c.AddFile(name, topics)
	return nil
}

// LoadFS - Loads every help file in fsys matching the given glob patterns.
// With no patterns it loads every .yaml, .yml and .toml file at the root of fsys.
func (c *Catalog) LoadFS(fsys fs.FS, patterns ...string) error {
	if len(patterns) == 0 {
		patterns = []string{"*.yaml", "*.yml", "*.toml"}
	}
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern '%s': %w", pattern, err)
		}
		for _, m := range matches {
			data, err := fs.ReadFile(fsys, m)
			if err != nil {
				return fmt.Errorf("failed to read help file: %w", err)
			}
			topics, err := Decode(path.Base(m), data)
			if err != nil {
				return err
			}
			Logger.Printf("loaded %d topics from %s", len(topics), m)
			c.AddFile(m, topics)
		}
	}
	return nil
}

// Default - Returns a Catalog with the built-in help-cli topics loaded.
func Default() *Catalog {
	c := New()
	if err := c.LoadFS(builtin, "help-cli.yaml"); err != nil {
		// The embedded file is part of the build, failing to read it is a programming error.
		panic(err)
	}
	return c
}
