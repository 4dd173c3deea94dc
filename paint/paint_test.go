// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintbox/paintbox/characteristics"
	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/mixer"
	"github.com/paintbox/paintbox/paintspec"
)

var acmeID = paintspec.CollectionID{Name: "Warpaints", Owner: "Acme Paint Co"}

func series(t *testing.T, name string, c colour.Colour) *Series {
	t.Helper()
	return NewSeries(acmeID, paintspec.BasicPaintSpec{
		RGB:  c,
		Name: name,
		Characteristics: characteristics.Characteristics{
			Finish:       characteristics.FinishFlat,
			Transparency: characteristics.TransparencyOpaque,
			Fluorescence: characteristics.FluorescenceNonfluorescent,
			Metallic:     characteristics.MetallicNonmetallic,
			Permanence:   characteristics.PermanencePermanent,
		},
	})
}

func TestSeries(t *testing.T) {
	p := series(t, "Blood Red", colour.Red)
	assert.Equal(t, colour.Red, p.Colour())
	assert.Equal(t, "Blood Red", p.Name())
	assert.Equal(t, acmeID, p.CollectionID())
	assert.Equal(t, characteristics.FinishFlat, p.Characteristics().Finish)
	assert.Equal(t, "Warpaints (Acme Paint Co): Blood Red", p.String())

	spec := p.Spec()
	assert.Equal(t, "Blood Red", spec.Name)
	assert.Equal(t, colour.Red, spec.RGB)
}

func TestCompareSeries(t *testing.T) {
	a := series(t, "Azure", colour.Blue)
	b := series(t, "Blood Red", colour.Red)
	assert.Negative(t, CompareSeries(a, b))
	assert.Positive(t, CompareSeries(b, a))
	assert.Zero(t, CompareSeries(a, a))

	// collection id orders before name
	other := NewSeries(paintspec.CollectionID{Name: "Zinc Range", Owner: "Acme Paint Co"},
		paintspec.BasicPaintSpec{RGB: colour.Blue, Name: "Aaa"})
	assert.Negative(t, CompareSeries(a, other))
}

func TestCollection(t *testing.T) {
	spec, err := paintspec.New(acmeID, []paintspec.BasicPaintSpec{
		{RGB: colour.Red, Name: "Blood Red"},
		{RGB: colour.Blue, Name: "Azure"},
	})
	require.NoError(t, err)
	c := NewCollection(spec)
	assert.Equal(t, acmeID, c.ID())
	assert.Equal(t, 2, c.Len())

	names := []string{}
	for _, p := range c.Paints() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Azure", "Blood Red"}, names)

	p, ok := c.Paint("Azure")
	require.True(t, ok)
	assert.Equal(t, colour.Blue, p.Colour())
	_, ok = c.Paint("Mauve")
	assert.False(t, ok)

	// the collection round-trips to its spec
	assert.Equal(t, spec, c.Spec())
}

func TestMixColour(t *testing.T) {
	red := series(t, "Blood Red", colour.Red)
	white := series(t, "Snow White", colour.White)

	got, err := Mix([]Component{{red, 1}, {white, 1}})
	require.NoError(t, err)
	assert.Equal(t, colour.MustRGB(1, 0.5, 0.5), got)

	_, err = Mix([]Component{{red, 0}})
	assert.ErrorIs(t, err, mixer.ErrNoSubstantiveComponents)
}

func TestSimplify(t *testing.T) {
	p1 := series(t, "One", colour.Red)
	p2 := series(t, "Two", colour.White)

	comps := []Component{{p1, 4}, {p2, 6}}
	simple := Simplify(comps)
	assert.Equal(t, []Component{{p1, 2}, {p2, 3}}, simple)

	// simplification never changes the mixed colour
	before, err := Mix(comps)
	require.NoError(t, err)
	after, err := Mix(simple)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// an all-zero set is returned unchanged
	zeros := []Component{{p1, 0}, {p2, 0}}
	assert.Equal(t, zeros, Simplify(zeros))

	// already coprime parts are untouched
	coprime := []Component{{p1, 3}, {p2, 7}}
	assert.Equal(t, coprime, Simplify(coprime))
}

func TestMixedCollection(t *testing.T) {
	mc := NewMixedCollection()
	red := series(t, "Blood Red", colour.Red)
	white := series(t, "Snow White", colour.White)

	m1, err := mc.Mix("warm pink", nil, red.Characteristics(),
		[]Component{{red, 1}, {white, 1}})
	require.NoError(t, err)
	assert.Equal(t, "Mix #001", m1.Name())
	assert.Equal(t, colour.MustRGB(1, 0.5, 0.5), m1.Colour())
	assert.Equal(t, "warm pink", m1.Notes())
	_, hasTarget := m1.Target()
	assert.False(t, hasTarget)

	target := colour.MustRGB(0.9, 0.1, 0.1)
	m2, err := mc.Mix("", &target, red.Characteristics(),
		[]Component{{red, 3}, {white, 1}})
	require.NoError(t, err)
	assert.Equal(t, "Mix #002", m2.Name())
	got, hasTarget := m2.Target()
	assert.True(t, hasTarget)
	assert.Equal(t, target, got)

	// a failed mix consumes no name
	_, err = mc.Mix("", nil, red.Characteristics(), nil)
	assert.ErrorIs(t, err, mixer.ErrNoSubstantiveComponents)
	m3, err := mc.Mix("", nil, red.Characteristics(), []Component{{red, 2}})
	require.NoError(t, err)
	assert.Equal(t, "Mix #003", m3.Name())

	assert.Equal(t, 3, mc.Len())
	p, ok := mc.Paint("Mix #002")
	require.True(t, ok)
	assert.Same(t, m2, p)

	// components of an existing mix can appear in later mixes
	m4, err := mc.Mix("", nil, red.Characteristics(),
		[]Component{{m1, 1}, {red, 1}})
	require.NoError(t, err)
	assert.Equal(t, colour.MustRGB(1, 0.25, 0.25), m4.Colour())
	comps := m4.Components()
	require.Len(t, comps, 2)
	assert.Same(t, m1, comps[0].Paint)

	require.NoError(t, mc.Delete("Mix #003"))
	_, ok = mc.Paint("Mix #003")
	assert.False(t, ok)
	var nerr *NotFoundError
	assert.ErrorAs(t, mc.Delete("Mix #003"), &nerr)

	// names keep increasing after deletions
	m5, err := mc.Mix("", nil, red.Characteristics(), []Component{{white, 1}})
	require.NoError(t, err)
	assert.Equal(t, "Mix #005", m5.Name())
}

func TestCompareMixed(t *testing.T) {
	mc := NewMixedCollection()
	red := series(t, "Blood Red", colour.Red)
	a, err := mc.Mix("", nil, characteristics.Characteristics{}, []Component{{red, 1}})
	require.NoError(t, err)
	b, err := mc.Mix("", nil, characteristics.Characteristics{}, []Component{{red, 2}})
	require.NoError(t, err)
	assert.Negative(t, CompareMixed(a, b))
	assert.Zero(t, CompareMixed(a, a))
}

func TestCollections(t *testing.T) {
	cs := NewCollections()
	specA, err := paintspec.New(acmeID, nil)
	require.NoError(t, err)
	require.NoError(t, cs.Add(NewCollection(specA)))

	// a second collection with the same id is rejected
	dup, err := paintspec.New(acmeID, nil)
	require.NoError(t, err)
	var aerr *paintspec.AlreadyExistsError
	assert.ErrorAs(t, cs.Add(NewCollection(dup)), &aerr)

	otherID := paintspec.CollectionID{Name: "Oils", Owner: "Beta Brushworks"}
	specB, err := paintspec.New(otherID, nil)
	require.NoError(t, err)
	require.NoError(t, cs.Add(NewCollection(specB)))
	assert.Equal(t, 2, cs.Len())

	// ordered by id
	all := cs.All()
	assert.Equal(t, otherID, all[0].ID())
	assert.Equal(t, acmeID, all[1].ID())

	got, ok := cs.Collection(otherID)
	require.True(t, ok)
	assert.Equal(t, otherID, got.ID())

	require.NoError(t, cs.Remove(otherID))
	_, ok = cs.Collection(otherID)
	assert.False(t, ok)
	var nerr *NotFoundError
	assert.ErrorAs(t, cs.Remove(otherID), &nerr)
}

func TestCollectionsLoad(t *testing.T) {
	dir := t.TempDir()
	spec, err := paintspec.New(acmeID, []paintspec.BasicPaintSpec{
		{RGB: colour.Red, Name: "Blood Red"},
	})
	require.NoError(t, err)
	path := dir + "/warpaints.psc"
	require.NoError(t, spec.Save(path))

	cs := NewCollections()
	c, err := cs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, acmeID, c.ID())
	assert.Equal(t, 1, c.Len())

	// loading the same file again collides on the collection id
	_, err = cs.Load(path)
	var aerr *paintspec.AlreadyExistsError
	assert.ErrorAs(t, err, &aerr)
	assert.Equal(t, 1, cs.Len())
}
