// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"slices"

	"github.com/paintbox/paintbox/characteristics"
	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/paintspec"
)

// Collection is a named, owner-attributed set of series paints,
// ordered by name with no duplicates, with a map from name to index
// to support fast lookup. It is built from a parsed
// [paintspec.CollectionSpec], which already guarantees the ordering
// and uniqueness.
type Collection struct {
	id      paintspec.CollectionID
	paints  []*Series
	indexes map[string]int
}

// NewCollection returns the collection for the given parsed spec.
func NewCollection(spec *paintspec.CollectionSpec) *Collection {
	c := &Collection{
		id:      spec.ID,
		paints:  make([]*Series, len(spec.Paints)),
		indexes: make(map[string]int, len(spec.Paints)),
	}
	for i := range spec.Paints {
		c.paints[i] = NewSeries(spec.ID, spec.Paints[i])
		c.indexes[spec.Paints[i].Name] = i
	}
	return c
}

// ID returns the collection's id.
func (c *Collection) ID() paintspec.CollectionID { return c.id }

// Len returns the number of paints in the collection.
func (c *Collection) Len() int { return len(c.paints) }

// Paint returns the paint with the given name, with false returned
// for a missing name.
func (c *Collection) Paint(name string) (*Series, bool) {
	i, ok := c.indexes[name]
	if !ok {
		return nil, false
	}
	return c.paints[i], true
}

// Paints returns the paints in name order.
func (c *Collection) Paints() []*Series {
	return slices.Clone(c.paints)
}

// Spec returns the collection spec the collection round-trips to.
func (c *Collection) Spec() *paintspec.CollectionSpec {
	ps := make([]paintspec.BasicPaintSpec, len(c.paints))
	for i, p := range c.paints {
		ps[i] = p.Spec()
	}
	return &paintspec.CollectionSpec{ID: c.id, Paints: ps}
}

// MixedCollection is an ordered set of mixed paints. It owns the
// strictly increasing counter that "Mix #NNN" names are assigned from.
type MixedCollection struct {
	paints  []*Mixed
	indexes map[string]int
	counter int
}

// NewMixedCollection returns a new empty mixed paint collection.
func NewMixedCollection() *MixedCollection {
	return &MixedCollection{indexes: map[string]int{}}
}

// Len returns the number of mixed paints in the collection.
func (mc *MixedCollection) Len() int { return len(mc.paints) }

// Paint returns the mixed paint with the given name, with false
// returned for a missing name.
func (mc *MixedCollection) Paint(name string) (*Mixed, bool) {
	i, ok := mc.indexes[name]
	if !ok {
		return nil, false
	}
	return mc.paints[i], true
}

// Paints returns the mixed paints in name order.
func (mc *MixedCollection) Paints() []*Mixed {
	return slices.Clone(mc.paints)
}

// Mix creates a new mixed paint from the given components, computing
// its colour as their parts-weighted mean and assigning it the next
// "Mix #NNN" name. The target is the colour the mixture was matched
// against, if any. A zero total parts count fails with
// [mixer.ErrNoSubstantiveComponents] and consumes no name.
func (mc *MixedCollection) Mix(notes string, target *colour.Colour, chars characteristics.Characteristics, components []Component) (*Mixed, error) {
	col, err := Mix(components)
	if err != nil {
		return nil, err
	}
	mc.counter++
	m := &Mixed{
		colour:     col,
		name:       fmt.Sprintf("Mix #%03d", mc.counter),
		notes:      notes,
		chars:      chars,
		components: slices.Clone(components),
	}
	if target != nil {
		t := *target
		m.target = &t
	}
	i, _ := slices.BinarySearchFunc(mc.paints, m, CompareMixed)
	mc.paints = slices.Insert(mc.paints, i, m)
	for j := i; j < len(mc.paints); j++ {
		mc.indexes[mc.paints[j].name] = j
	}
	return m, nil
}

// Delete removes the mixed paint with the given name, returning a
// [NotFoundError] if it is absent.
func (mc *MixedCollection) Delete(name string) error {
	i, ok := mc.indexes[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	delete(mc.indexes, name)
	mc.paints = slices.Delete(mc.paints, i, i+1)
	for j := i; j < len(mc.paints); j++ {
		mc.indexes[mc.paints[j].name] = j
	}
	return nil
}

// Collections is an ordered registry of loaded series paint
// collections, keyed by collection id.
type Collections struct {
	colls   []*Collection
	indexes map[paintspec.CollectionID]int
}

// NewCollections returns a new empty collection registry.
func NewCollections() *Collections {
	return &Collections{indexes: map[paintspec.CollectionID]int{}}
}

// Len returns the number of registered collections.
func (cs *Collections) Len() int { return len(cs.colls) }

// Add registers the given collection, failing with an
// [paintspec.AlreadyExistsError] if its id is already registered.
func (cs *Collections) Add(c *Collection) error {
	if _, ok := cs.indexes[c.id]; ok {
		return &paintspec.AlreadyExistsError{Name: c.id.String()}
	}
	i, _ := slices.BinarySearchFunc(cs.colls, c, func(a, b *Collection) int {
		return a.id.Compare(b.id)
	})
	cs.colls = slices.Insert(cs.colls, i, c)
	for j := i; j < len(cs.colls); j++ {
		cs.indexes[cs.colls[j].id] = j
	}
	return nil
}

// Load reads, parses, and registers the collection file at the given
// path. Nothing is registered if loading fails.
func (cs *Collections) Load(path string) (*Collection, error) {
	spec, err := paintspec.Load(path)
	if err != nil {
		return nil, err
	}
	c := NewCollection(spec)
	if err := cs.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Collection returns the registered collection with the given id,
// with false returned for a missing id.
func (cs *Collections) Collection(id paintspec.CollectionID) (*Collection, bool) {
	i, ok := cs.indexes[id]
	if !ok {
		return nil, false
	}
	return cs.colls[i], true
}

// All returns the registered collections in id order.
func (cs *Collections) All() []*Collection {
	return slices.Clone(cs.colls)
}

// Remove unregisters the collection with the given id, returning a
// [NotFoundError] if it is absent.
func (cs *Collections) Remove(id paintspec.CollectionID) error {
	i, ok := cs.indexes[id]
	if !ok {
		return &NotFoundError{Name: id.String()}
	}
	delete(cs.indexes, id)
	cs.colls = slices.Delete(cs.colls, i, i+1)
	for j := i; j < len(cs.colls); j++ {
		cs.indexes[cs.colls[j].id] = j
	}
	return nil
}
