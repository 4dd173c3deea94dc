// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings persists the user-facing preferences of the paint
// domain as a TOML file: the scalar attribute plotted on hue wheels
// and the directory paint collections are loaded from.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/paintbox/paintbox/wheel"
)

// Settings are the persisted preferences.
type Settings struct {

	// WheelAttribute is the scalar attribute plotted on hue wheels.
	WheelAttribute wheel.Attribute `toml:"wheel-attribute"`

	// CollectionDir is the directory paint collection files are
	// loaded from and saved to.
	CollectionDir string `toml:"collection-dir"`
}

// Defaults returns the default settings: wheels plot paints by value,
// and collections live in the working directory.
func Defaults() Settings {
	return Settings{WheelAttribute: wheel.Value, CollectionDir: "."}
}

// Load reads settings from the TOML file at the given path. A missing
// file is not an error: the defaults are returned.
func Load(path string) (Settings, error) {
	s := Defaults()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no settings file, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: load %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return Defaults(), fmt.Errorf("settings: load %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to the TOML file at the given path.
func (s Settings) Save(path string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o664); err != nil {
		return fmt.Errorf("settings: save %s: %w", path, err)
	}
	return nil
}
