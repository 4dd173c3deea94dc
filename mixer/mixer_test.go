// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintbox/paintbox/colour"
)

func TestIdentity(t *testing.T) {
	var m Mixer
	m.Add(colour.Red, 1)
	got, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, colour.Red, got)
}

func TestMean(t *testing.T) {
	var m Mixer
	m.Add(colour.Red, 1)
	m.Add(colour.White, 1)
	got, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, colour.MustRGB(1, 0.5, 0.5), got)
}

func TestWeighting(t *testing.T) {
	var m Mixer
	m.Add(colour.Black, 3)
	m.Add(colour.White, 1)
	got, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, colour.MustRGB(0.25, 0.25, 0.25), got)
}

func TestNoSubstantiveComponents(t *testing.T) {
	var m Mixer
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrNoSubstantiveComponents)

	// zero-parts contributions are legal no-ops
	m.Add(colour.Red, 0)
	m.Add(colour.White, 0)
	assert.Equal(t, uint64(0), m.TotalParts())
	_, err = m.Result()
	assert.ErrorIs(t, err, ErrNoSubstantiveComponents)
}

func TestOrderIndependence(t *testing.T) {
	contribs := []struct {
		c     colour.Colour
		parts uint
	}{
		{colour.Red, 3},
		{colour.MustRGB(0.25, 0.5, 0.75), 2},
		{colour.White, 5},
		{colour.MustRGB(0, 0.125, 1), 1},
		{colour.Black, 4},
	}

	mix := func(order []int) colour.Colour {
		var m Mixer
		for _, i := range order {
			m.Add(contribs[i].c, contribs[i].parts)
		}
		got, err := m.Result()
		require.NoError(t, err)
		return got
	}

	want := mix([]int{0, 1, 2, 3, 4})
	perms := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
		{3, 2, 1, 4, 0},
	}
	for _, p := range perms {
		assert.Equal(t, want, mix(p), p)
	}
}

func TestReset(t *testing.T) {
	var m Mixer
	m.Add(colour.Red, 2)
	m.Reset()
	assert.Equal(t, uint64(0), m.TotalParts())
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrNoSubstantiveComponents)
}

func TestGCD(t *testing.T) {
	assert.Equal(t, uint(2), GCD(4, 6))
	assert.Equal(t, uint(3), GCD(3, 9, 6))
	assert.Equal(t, uint(1), GCD(7, 9))
	assert.Equal(t, uint(5), GCD(5))
	assert.Equal(t, uint(4), GCD(0, 4, 8))

	// an all-zero set has a GCD of 1 so dividing is a no-op
	assert.Equal(t, uint(1), GCD(0, 0))
	assert.Equal(t, uint(1), GCD())
}
