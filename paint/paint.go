// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint implements the paint domain objects: series paints
// drawn from named collections, mixed paints produced by combining
// other paints in proportional parts, and the collections that own
// them. Paints are immutable after construction and freely shareable;
// edits replace rather than mutate.
package paint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paintbox/paintbox/characteristics"
	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/paintspec"
)

// Paint is the interface shared by series and mixed paints.
type Paint interface {
	// Colour returns the colour of the paint.
	Colour() colour.Colour

	// Name returns the display name of the paint.
	Name() string

	// Notes returns the free-form notes attached to the paint.
	Notes() string

	// Characteristics returns the characteristic values of the paint.
	Characteristics() characteristics.Characteristics
}

// NotFoundError is returned when a paint is absent where its presence
// was assumed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("paint: %q not found", e.Name)
}

// Series is a paint drawn from an external collection. Its identity
// and ordering key is the (collection id, name) pair.
type Series struct {
	colour     colour.Colour
	name       string
	notes      string
	chars      characteristics.Characteristics
	collection paintspec.CollectionID
}

// NewSeries returns the series paint for the given spec within the
// given collection.
func NewSeries(id paintspec.CollectionID, spec paintspec.BasicPaintSpec) *Series {
	return &Series{
		colour:     spec.RGB,
		name:       spec.Name,
		notes:      spec.Notes,
		chars:      spec.Characteristics,
		collection: id,
	}
}

// Colour returns the colour of the paint.
func (s *Series) Colour() colour.Colour { return s.colour }

// Name returns the name of the paint within its collection.
func (s *Series) Name() string { return s.name }

// Notes returns the notes attached to the paint.
func (s *Series) Notes() string { return s.notes }

// Characteristics returns the characteristic values of the paint.
func (s *Series) Characteristics() characteristics.Characteristics { return s.chars }

// CollectionID returns the id of the collection the paint belongs to.
func (s *Series) CollectionID() paintspec.CollectionID { return s.collection }

// Spec returns the paint spec the series paint round-trips to.
func (s *Series) Spec() paintspec.BasicPaintSpec {
	return paintspec.BasicPaintSpec{
		RGB:             s.colour,
		Name:            s.name,
		Notes:           s.notes,
		Characteristics: s.chars,
	}
}

func (s *Series) String() string {
	return s.collection.String() + ": " + s.name
}

// CompareSeries orders series paints by collection id and then name.
func CompareSeries(a, b *Series) int {
	if c := a.collection.Compare(b.collection); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

// Component is one contribution to a mixture: a paint and the
// non-negative number of parts of it.
type Component struct {
	Paint Paint
	Parts uint
}

// Mixed is a paint produced by mixing other paints in proportional
// parts. Its identity and ordering key is its auto-assigned name.
type Mixed struct {
	colour     colour.Colour
	name       string
	notes      string
	chars      characteristics.Characteristics
	target     *colour.Colour
	components []Component
}

// Colour returns the computed colour of the mixture.
func (m *Mixed) Colour() colour.Colour { return m.colour }

// Name returns the auto-assigned "Mix #NNN" name of the mixture.
func (m *Mixed) Name() string { return m.name }

// Notes returns the notes attached to the mixture.
func (m *Mixed) Notes() string { return m.notes }

// Characteristics returns the characteristic values of the mixture.
func (m *Mixed) Characteristics() characteristics.Characteristics { return m.chars }

// Target returns the colour the mixture was matched against, if any.
func (m *Mixed) Target() (colour.Colour, bool) {
	if m.target == nil {
		return colour.Colour{}, false
	}
	return *m.target, true
}

// Components returns a copy of the mixture's ordered components.
func (m *Mixed) Components() []Component {
	return slices.Clone(m.components)
}

func (m *Mixed) String() string {
	return m.name
}

// CompareMixed orders mixed paints by name.
func CompareMixed(a, b *Mixed) int {
	return strings.Compare(a.name, b.name)
}
