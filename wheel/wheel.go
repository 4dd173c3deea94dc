// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wheel implements the spatial index behind hue-wheel paint
// selection: paints are projected onto a 2-D plane by hue angle and a
// chosen scalar attribute, and the index answers nearest-enclosing-
// shape queries for pointer positions on the wheel.
package wheel

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/paint"
)

// Point is a position on the wheel plane. The chromatic paints lie
// within the unit circle; achromatic paints lie on a fixed axis
// outside it.
type Point struct {
	X, Y float32
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Length returns the euclidean length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// Shape is the kind of fixed-size enclosure drawn around a paint's
// point: squares for series paints and circles for mixed paints.
type Shape int32

const (
	// Square is the enclosure shape of series paints.
	Square Shape = iota

	// Circle is the enclosure shape of mixed paints.
	Circle
)

// HalfWidth is the fixed half-width of every enclosure shape,
// in wheel units.
const HalfWidth = 0.05

// encloses reports whether a shape centred at the origin encloses the
// given offset.
func (s Shape) encloses(d Point) bool {
	if s == Circle {
		return d.Length() <= HalfWidth
	}
	return math32.Abs(d.X) <= HalfWidth && math32.Abs(d.Y) <= HalfWidth
}

// achromaticOffset is where the off-circle axis for achromatic paints
// begins: straight down, just outside the unit circle, with paints
// ordered along it by value.
const achromaticOffset = 1.1

// Project returns the wheel point for the given colour: the polar
// projection (cos, sin) of the hue angle scaled by the attribute
// value, or a point on the fixed off-circle axis for achromatic
// colours, which have no hue to place them by.
func Project(c colour.Colour, attr Attribute) Point {
	h, ok := c.Hue()
	if !ok {
		return Point{X: 0, Y: -(achromaticOffset + c.Value())}
	}
	r := attr.Scalar(c)
	return Point{X: r * h.Cos(), Y: r * h.Sin()}
}

// entry is one indexed paint with its cached projection and
// insertion sequence number.
type entry[P paint.Paint] struct {
	paint P
	point Point
	seq   int
}

// Index maintains paints ordered by their own total order, with a
// cached wheel point per paint, supporting O(log n) membership and
// nearest-enclosing-shape queries. The index is not safe for
// concurrent use; callers serialize access externally.
type Index[P paint.Paint] struct {
	attr    Attribute
	shape   Shape
	compare func(P, P) int
	entries []entry[P]
	seq     int
}

// NewIndex returns an empty index plotting the given scalar attribute,
// drawing the given enclosure shape around every paint, and ordering
// paints with the given comparison, typically [paint.CompareSeries]
// or [paint.CompareMixed].
func NewIndex[P paint.Paint](attr Attribute, shape Shape, compare func(P, P) int) *Index[P] {
	return &Index[P]{attr: attr, shape: shape, compare: compare}
}

// Len returns the number of paints in the index.
func (ix *Index[P]) Len() int { return len(ix.entries) }

// Attribute returns the scalar attribute the index plots.
func (ix *Index[P]) Attribute() Attribute { return ix.attr }

// search returns the position of the paint in the ordered entries and
// whether it is present.
func (ix *Index[P]) search(p P) (int, bool) {
	return slices.BinarySearchFunc(ix.entries, p, func(e entry[P], q P) int {
		return ix.compare(e.paint, q)
	})
}

// Contains reports whether an equal paint is already in the index.
func (ix *Index[P]) Contains(p P) bool {
	_, ok := ix.search(p)
	return ok
}

// Add inserts the paint, caching its projection. Adding a paint equal
// to one already present is a no-op.
func (ix *Index[P]) Add(p P) {
	i, ok := ix.search(p)
	if ok {
		return
	}
	e := entry[P]{paint: p, point: Project(p.Colour(), ix.attr), seq: ix.seq}
	ix.seq++
	ix.entries = slices.Insert(ix.entries, i, e)
}

// Remove removes the paint, returning a [paint.NotFoundError] if no
// equal paint is present.
func (ix *Index[P]) Remove(p P) error {
	i, ok := ix.search(p)
	if !ok {
		return &paint.NotFoundError{Name: p.Name()}
	}
	ix.entries = slices.Delete(ix.entries, i, i+1)
	return nil
}

// Paints returns the indexed paints in their order.
func (ix *Index[P]) Paints() []P {
	ps := make([]P, len(ix.entries))
	for i := range ix.entries {
		ps[i] = ix.entries[i].paint
	}
	return ps
}

// Point returns the cached wheel point of the paint, with false
// returned if it is not in the index.
func (ix *Index[P]) Point(p P) (Point, bool) {
	i, ok := ix.search(p)
	if !ok {
		return Point{}, false
	}
	return ix.entries[i].point, true
}

// QueryNear returns, among the paints whose enclosure shape contains
// the given point, the one whose centre is nearest to it, along with
// that distance. Distance ties are broken in favour of the earlier
// inserted paint. The third return value is false if no shape
// encloses the point.
func (ix *Index[P]) QueryNear(pt Point) (P, float32, bool) {
	var best *entry[P]
	var bestDist float32
	for i := range ix.entries {
		e := &ix.entries[i]
		d := pt.Sub(e.point)
		if !ix.shape.encloses(d) {
			continue
		}
		dist := d.Length()
		switch {
		case best == nil, dist < bestDist,
			dist == bestDist && e.seq < best.seq:
			best, bestDist = e, dist
		}
	}
	if best == nil {
		var zero P
		return zero, 0, false
	}
	return best.paint, bestDist, true
}
