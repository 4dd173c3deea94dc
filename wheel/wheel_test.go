// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintbox/paintbox/base/tolassert"
	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/paint"
	"github.com/paintbox/paintbox/paintspec"
)

var testID = paintspec.CollectionID{Name: "Warpaints", Owner: "Acme Paint Co"}

func testPaint(name string, c colour.Colour) *paint.Series {
	return paint.NewSeries(testID, paintspec.BasicPaintSpec{RGB: c, Name: name})
}

func grey(name string, v float32) *paint.Series {
	return testPaint(name, colour.MustRGB(v, v, v))
}

func TestAttribute(t *testing.T) {
	assert.Equal(t, "chroma", Chroma.String())
	assert.Equal(t, "greyness", Greyness.String())
	assert.True(t, Warmth.IsValid())
	assert.False(t, Attribute(9).IsValid())
	assert.Equal(t, "9", Attribute(9).String())

	var a Attribute
	require.NoError(t, a.SetString("Value"))
	assert.Equal(t, Value, a)
	require.NoError(t, a.SetString(" warmth "))
	assert.Equal(t, Warmth, a)

	var uerr *UnknownAttributeError
	assert.ErrorAs(t, a.SetString("hue"), &uerr)

	for _, v := range a.Values() {
		text, err := v.MarshalText()
		require.NoError(t, err)
		var back Attribute
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, v, back)
	}
}

func TestAttributeScalar(t *testing.T) {
	c := colour.MustRGB(1, 0.5, 0.5)
	tolassert.Equal(t, c.Chroma(), Chroma.Scalar(c))
	tolassert.Equal(t, c.Value(), Value.Scalar(c))
	tolassert.Equal(t, c.Warmth(), Warmth.Scalar(c))
	tolassert.Equal(t, c.Greyness(), Greyness.Scalar(c))
}

func TestProjectChromatic(t *testing.T) {
	// pure red sits at full chroma on the positive x axis
	p := Project(colour.Red, Chroma)
	assert.Equal(t, Point{1, 0}, p)

	// pure yellow sits at 60 degrees
	p = Project(colour.Yellow, Chroma)
	tolassert.Equal(t, 0.5, p.X)
	tolassert.Equal(t, 0.8660254, p.Y)

	// the radius follows the plotted attribute
	p = Project(colour.Red, Value)
	tolassert.Equal(t, 1.0/3, p.X)
	tolassert.Equal(t, 0, p.Y)
}

func TestProjectAchromatic(t *testing.T) {
	// achromatic paints land on the fixed axis below the circle,
	// ordered by value, regardless of the plotted attribute
	for _, attr := range []Attribute{Chroma, Value, Warmth, Greyness} {
		black := Project(colour.Black, attr)
		mid := Project(colour.MustRGB(0.5, 0.5, 0.5), attr)
		white := Project(colour.White, attr)

		assert.Equal(t, float32(0), black.X)
		tolassert.Equal(t, -1.1, black.Y)
		tolassert.Equal(t, -1.6, mid.Y)
		tolassert.Equal(t, -2.1, white.Y)
		assert.Greater(t, black.Y, mid.Y)
		assert.Greater(t, mid.Y, white.Y)
	}
}

func TestShapeEnclosure(t *testing.T) {
	// a corner offset inside the square but outside the circle
	corner := Point{0.04, 0.04}
	assert.True(t, Square.encloses(corner))
	assert.False(t, Circle.encloses(corner))

	inside := Point{0.03, 0}
	assert.True(t, Square.encloses(inside))
	assert.True(t, Circle.encloses(inside))

	outside := Point{0.06, 0}
	assert.False(t, Square.encloses(outside))
	assert.False(t, Circle.encloses(outside))
}

func TestIndexAddRemove(t *testing.T) {
	ix := NewIndex(Chroma, Square, paint.CompareSeries)
	b := grey("Basalt", 0.25)
	a := grey("Ash", 0.75)

	ix.Add(b)
	ix.Add(a)
	assert.Equal(t, 2, ix.Len())
	assert.True(t, ix.Contains(a))

	// insertion order does not matter; paints come back in their order
	names := []string{}
	for _, p := range ix.Paints() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Ash", "Basalt"}, names)

	// re-adding an equal paint is a no-op
	ix.Add(a)
	assert.Equal(t, 2, ix.Len())

	pt, ok := ix.Point(a)
	require.True(t, ok)
	tolassert.Equal(t, -1.85, pt.Y)

	require.NoError(t, ix.Remove(a))
	assert.False(t, ix.Contains(a))
	_, ok = ix.Point(a)
	assert.False(t, ok)

	var nerr *paint.NotFoundError
	assert.ErrorAs(t, ix.Remove(a), &nerr)
	assert.Equal(t, 1, ix.Len())
}

func TestQueryNear(t *testing.T) {
	ix := NewIndex(Value, Square, paint.CompareSeries)
	near := grey("Near", 0.53125)
	far := grey("Far", 0.5)
	ix.Add(near)
	ix.Add(far)

	// querying exactly at a centre picks that paint at distance 0,
	// even though the other's enclosure also contains the point
	centre, ok := ix.Point(near)
	require.True(t, ok)
	got, dist, found := ix.QueryNear(centre)
	require.True(t, found)
	assert.Same(t, near, got)
	assert.Equal(t, float32(0), dist)

	// a point outside every enclosure finds nothing
	_, _, found = ix.QueryNear(Point{0, 0})
	assert.False(t, found)
	_, _, found = ix.QueryNear(Point{0, -3})
	assert.False(t, found)
}

func TestQueryNearTie(t *testing.T) {
	ix := NewIndex(Value, Square, paint.CompareSeries)

	// two distinct paints with the same colour project to the same
	// point; the earlier inserted one wins the tie even though it
	// sorts after the other
	second := grey("Zinc Grey", 0.5)
	first := grey("Ash Grey", 0.5)
	ix.Add(second)
	ix.Add(first)

	centre, ok := ix.Point(first)
	require.True(t, ok)
	got, _, found := ix.QueryNear(centre)
	require.True(t, found)
	assert.Same(t, second, got)
}

func TestQueryNearShape(t *testing.T) {
	// the corner of a would-be square falls outside a circle enclosure
	ix := NewIndex(Value, Circle, paint.CompareSeries)
	p := grey("Lead", 0.5)
	ix.Add(p)

	centre, ok := ix.Point(p)
	require.True(t, ok)
	corner := Point{centre.X + 0.04, centre.Y + 0.04}
	_, _, found := ix.QueryNear(corner)
	assert.False(t, found)

	edge := Point{centre.X + 0.04, centre.Y}
	got, dist, found := ix.QueryNear(edge)
	require.True(t, found)
	assert.Same(t, p, got)
	tolassert.Equal(t, 0.04, dist)
}
