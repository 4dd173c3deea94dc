// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paintspec implements the line-oriented textual format for
// paints and paint collections: a two-line name/owner header followed
// by one paint record per line. Parsing and serialization are exact
// inverses of each other.
package paintspec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paintbox/paintbox/characteristics"
	"github.com/paintbox/paintbox/colour"
)

// The fixed header labels of a collection file.
const (
	nameLabel  = "Collection Name"
	ownerLabel = "Collection Owner"
)

// MalformedError is returned when text does not match the paint spec
// grammar, or cannot be serialized in it. It retains the offending
// fragment.
type MalformedError struct {
	Fragment string
	Err      error
}

func (e *MalformedError) Error() string {
	middle := ""
	if e.Err != nil {
		middle = ": " + e.Err.Error()
	}
	return fmt.Sprintf("paintspec: malformed text%s: %q", middle, e.Fragment)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// AlreadyExistsError is returned when a paint name occurs more than
// once in a collection, or a collection id is loaded twice.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("paintspec: %q already exists", e.Name)
}

// errLiteralQuote reports the format's lack of an escape sequence for
// a literal double quote inside a quoted field.
var errLiteralQuote = fmt.Errorf("literal double quote cannot be represented")

// errLineBreak reports a line break inside a single-line field.
var errLineBreak = fmt.Errorf("line break cannot be represented")

// CollectionID identifies a paint collection by its name and the
// owner (manufacturer or artist) the collection is attributed to.
type CollectionID struct {
	Name  string
	Owner string
}

func (id CollectionID) String() string {
	return id.Name + " (" + id.Owner + ")"
}

// Compare orders collection ids by name and then owner.
func (id CollectionID) Compare(other CollectionID) int {
	if c := strings.Compare(id.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(id.Owner, other.Owner)
}

func (id CollectionID) validate() error {
	for _, f := range [...]string{id.Name, id.Owner} {
		if strings.ContainsRune(f, '\n') {
			return &MalformedError{Fragment: f, Err: errLineBreak}
		}
	}
	return nil
}

// BasicPaintSpec is the result of parsing one paint record line:
// the colour, name, notes, and characteristics of a single paint.
type BasicPaintSpec struct {
	RGB             colour.Colour
	Name            string
	Notes           string
	Characteristics characteristics.Characteristics
}

// String returns the record line for the spec, the exact textual
// inverse of [ParseRecord].
func (s BasicPaintSpec) String() string {
	return fmt.Sprintf(`PaintSpec(name="%s", rgb=%s, %s, notes="%s")`,
		s.Name, s.RGB, s.Characteristics, s.Notes)
}

func (s BasicPaintSpec) validate() error {
	if s.Name == "" {
		return &MalformedError{Fragment: s.String()}
	}
	for _, f := range [...]string{s.Name, s.Notes} {
		if strings.ContainsRune(f, '"') {
			return &MalformedError{Fragment: f, Err: errLiteralQuote}
		}
		if strings.ContainsRune(f, '\n') {
			return &MalformedError{Fragment: f, Err: errLineBreak}
		}
	}
	return nil
}

// CollectionSpec is a parsed paint collection: an identified,
// owner-attributed set of paint specs ordered by name, with no
// duplicate names.
type CollectionSpec struct {
	ID     CollectionID
	Paints []BasicPaintSpec
}

// New returns a collection spec for the given id and paints, sorted
// by name. A duplicate paint name fails with an [AlreadyExistsError]
// and no partial result. Fields that the format cannot represent
// (embedded double quotes or line breaks) fail with a
// [MalformedError].
func New(id CollectionID, paints []BasicPaintSpec) (*CollectionSpec, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}
	ps := slices.Clone(paints)
	slices.SortStableFunc(ps, func(a, b BasicPaintSpec) int {
		return strings.Compare(a.Name, b.Name)
	})
	for i := range ps {
		if err := ps[i].validate(); err != nil {
			return nil, err
		}
		if i > 0 && ps[i-1].Name == ps[i].Name {
			return nil, &AlreadyExistsError{Name: ps[i].Name}
		}
	}
	return &CollectionSpec{ID: id, Paints: ps}, nil
}

// Len returns the number of paints in the collection.
func (c *CollectionSpec) Len() int { return len(c.Paints) }

// Paint returns the spec with the given name, using binary search
// over the name-ordered paints.
func (c *CollectionSpec) Paint(name string) (BasicPaintSpec, bool) {
	i, ok := slices.BinarySearchFunc(c.Paints, name, func(p BasicPaintSpec, n string) int {
		return strings.Compare(p.Name, n)
	})
	if !ok {
		return BasicPaintSpec{}, false
	}
	return c.Paints[i], true
}

// String returns the collection text: the two header lines followed
// by one record line per paint in name order. It is the exact textual
// inverse of [Parse].
func (c *CollectionSpec) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", nameLabel, c.ID.Name)
	fmt.Fprintf(&b, "%s: %s\n", ownerLabel, c.ID.Owner)
	for i := range c.Paints {
		b.WriteString(c.Paints[i].String())
		b.WriteByte('\n')
	}
	return b.String()
}
