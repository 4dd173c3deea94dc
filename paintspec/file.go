// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintspec

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads and parses the collection file at the given path.
// The file is read as a single buffer; collections are small.
func Load(path string) (*CollectionSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("paintspec: load %s: %w", path, err)
	}
	c, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("paintspec: load %s: %w", path, err)
	}
	slog.Debug("loaded paint collection", "path", path, "id", c.ID, "paints", c.Len())
	return c, nil
}

// Save writes the collection to the given path. The text is written
// to a temporary file in the same directory and renamed into place,
// so a failure leaves any existing file untouched.
func (c *CollectionSpec) Save(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("paintspec: save %s: %w", path, err)
	}
	tmp := f.Name()
	_, err = f.WriteString(c.String())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("paintspec: save %s: %w", path, err)
	}
	slog.Debug("saved paint collection", "path", path, "id", c.ID, "paints", c.Len())
	return nil
}
