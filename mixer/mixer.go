// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mixer accumulates (colour, parts) contributions into a
// parts-weighted mean colour.
package mixer

import (
	"errors"

	"github.com/paintbox/paintbox/colour"
)

// ErrNoSubstantiveComponents is returned by [Mixer.Result] when the
// total number of parts contributed is zero.
var ErrNoSubstantiveComponents = errors.New("mixer: no substantive components")

// Mixer is a transient accumulator of (colour, parts) contributions.
// The zero value is ready to use. The result depends only on the
// multiset of contributions, not the order they are added in: the
// per-channel sums are kept in float64 and divided once at the end.
type Mixer struct {
	r, g, b float64
	parts   uint64
}

// Add accumulates the given number of parts of the given colour.
// Zero parts is a legal no-op.
func (m *Mixer) Add(c colour.Colour, parts uint) {
	if parts == 0 {
		return
	}
	p := float64(parts)
	r, g, b := c.RGB()
	m.r += p * float64(r)
	m.g += p * float64(g)
	m.b += p * float64(b)
	m.parts += uint64(parts)
}

// TotalParts returns the total number of parts contributed so far.
func (m *Mixer) TotalParts() uint64 { return m.parts }

// Reset returns the mixer to its initial empty state.
func (m *Mixer) Reset() { *m = Mixer{} }

// Result returns the parts-weighted mean of the contributed colours,
// or [ErrNoSubstantiveComponents] if the total parts is zero.
func (m *Mixer) Result() (colour.Colour, error) {
	if m.parts == 0 {
		return colour.Colour{}, ErrNoSubstantiveComponents
	}
	p := float64(m.parts)
	return colour.FromRGB(
		float32(m.r/p),
		float32(m.g/p),
		float32(m.b/p),
	)
}

// GCD returns the greatest common divisor of the given parts counts,
// ignoring zeros. If every count is zero the GCD is taken to be 1, so
// dividing by it is a no-op.
func GCD(parts ...uint) uint {
	g := uint(0)
	for _, p := range parts {
		g = gcd2(g, p)
	}
	if g == 0 {
		return 1
	}
	return g
}

func gcd2(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
