// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/paintbox/paintbox/colour"
	"github.com/paintbox/paintbox/mixer"
)

// Mix returns the parts-weighted mean colour of the given components,
// or [mixer.ErrNoSubstantiveComponents] if their total parts is zero.
func Mix(components []Component) (colour.Colour, error) {
	var mx mixer.Mixer
	for _, c := range components {
		mx.Add(c.Paint.Colour(), c.Parts)
	}
	return mx.Result()
}

// Simplify returns the components with every parts count divided by
// the greatest common divisor of all of them, preserving order. An
// all-zero set is returned unchanged. Simplification never changes
// the colour the components mix to.
func Simplify(components []Component) []Component {
	parts := make([]uint, len(components))
	for i, c := range components {
		parts[i] = c.Parts
	}
	g := mixer.GCD(parts...)
	out := make([]Component, len(components))
	for i, c := range components {
		out[i] = Component{Paint: c.Paint, Parts: c.Parts / g}
	}
	return out
}
