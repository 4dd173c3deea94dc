// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"strconv"

	"github.com/chewxy/math32"
)

// HueAngle is the angular identity of a chromatic colour, in radians
// in the range (-Pi, Pi]. Red is at 0, with green at +2*Pi/3 and
// blue at -2*Pi/3; yellow, cyan, and magenta fall between them.
type HueAngle float32

const (
	// sin120 is the sine of 120 degrees, the angular spacing of the
	// green and blue axes from the red axis in the hue plane.
	sin120 = 0.8660254037844386

	// third is 120 degrees in radians.
	third = math32.Pi * 2 / 3

	// sixth is 60 degrees in radians.
	sixth = math32.Pi / 3
)

// Radians returns the hue angle in radians in the range (-Pi, Pi].
func (h HueAngle) Radians() float32 { return float32(h) }

// Degrees returns the hue angle in degrees in the range (-180, 180].
func (h HueAngle) Degrees() float32 { return float32(h) * 180 / math32.Pi }

// Cos returns the cosine of the hue angle.
func (h HueAngle) Cos() float32 { return math32.Cos(float32(h)) }

// Sin returns the sine of the hue angle.
func (h HueAngle) Sin() float32 { return math32.Sin(float32(h)) }

// sortKey maps the angle to the range [0, 2*Pi) so that sorting
// starts at red and proceeds through yellow, green, and blue.
func (h HueAngle) sortKey() float32 {
	if h < 0 {
		return float32(h) + 2*math32.Pi
	}
	return float32(h)
}

// MaxChromaRGB returns the most saturated colour with this hue:
// one RGB component is 1, one is 0, and the remaining component is
// determined by the angle within its 60-degree sector.
func (h HueAngle) MaxChromaRGB() Colour {
	a := float32(h)
	neg := a < 0
	if neg {
		a = -a
	}
	var c Colour
	switch {
	case a <= sixth:
		// between red and yellow: (1, f, 0)
		t := math32.Tan(a)
		f := 2 * t / (sqrt3 + t)
		c = Colour{1, clamp01(f), 0}
	case a <= third:
		// between yellow and green: (f, 1, 0); the cotangent form
		// stays finite through 90 degrees
		f := 0.5 + sqrt3/2*(math32.Cos(a)/math32.Sin(a))
		c = Colour{clamp01(f), 1, 0}
	default:
		// between green and cyan: (0, 1, f)
		t := math32.Tan(a)
		f := (sqrt3 + t) / (sqrt3 - t)
		c = Colour{0, 1, clamp01(f)}
	}
	if neg {
		// negative angles mirror the positive ones with green
		// and blue exchanged
		c.g, c.b = c.b, c.g
	}
	return c
}

const sqrt3 = 1.7320508075688772

// formatComponent renders an RGB component with the fewest digits
// that parse back to the identical float32.
func formatComponent(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
