// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colour implements the additive RGB colour value used throughout
// paintbox, along with the perceptual attributes derived from it:
// hue angle, chroma, value, greyness, and warmth.
package colour

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Colour is an immutable RGB colour with each component normalized to
// the range 0 to 1. Equality is defined solely by the RGB components;
// every other property is a pure function of them.
type Colour struct {
	r, g, b float32
}

// RangeError is returned when an RGB component is outside the range 0 to 1.
type RangeError struct {
	Component string
	Value     float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("colour: %s component %v is outside the range 0 to 1", e.Component, e.Value)
}

// FromRGB returns the colour with the given red, green, and blue
// components, each of which must be in the range 0 to 1.
// Out-of-range components are a caller error and are rejected
// with a [RangeError], never silently clamped.
func FromRGB(r, g, b float32) (Colour, error) {
	for _, c := range [...]struct {
		name string
		val  float32
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if c.val < 0 || c.val > 1 || math32.IsNaN(c.val) {
			return Colour{}, &RangeError{Component: c.name, Value: c.val}
		}
	}
	return Colour{r, g, b}, nil
}

// MustRGB is like [FromRGB] but panics on out-of-range components.
// It is intended for constants and tests with known-good values.
func MustRGB(r, g, b float32) Colour {
	c, err := FromRGB(r, g, b)
	if err != nil {
		panic("colour.MustRGB: " + err.Error())
	}
	return c
}

// FromColor returns the Colour for the given [color.Color],
// un-premultiplying the alpha channel. A fully transparent
// colour maps to black.
func FromColor(ci color.Color) Colour {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return Colour{}
	}
	fa := float32(a)
	return Colour{float32(r) / fa, float32(g) / fa, float32(b) / fa}
}

// Commonly used anchor colours.
var (
	Black   = Colour{0, 0, 0}
	White   = Colour{1, 1, 1}
	Red     = Colour{1, 0, 0}
	Green   = Colour{0, 1, 0}
	Blue    = Colour{0, 0, 1}
	Yellow  = Colour{1, 1, 0}
	Cyan    = Colour{0, 1, 1}
	Magenta = Colour{1, 0, 1}
)

// R returns the red component.
func (c Colour) R() float32 { return c.r }

// G returns the green component.
func (c Colour) G() float32 { return c.g }

// B returns the blue component.
func (c Colour) B() float32 { return c.b }

// RGB returns all three components.
func (c Colour) RGB() (r, g, b float32) { return c.r, c.g, c.b }

// RGBA implements the [color.Color] interface. The colour is opaque.
func (c Colour) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r*65535 + 0.5)
	g = uint32(c.g*65535 + 0.5)
	b = uint32(c.b*65535 + 0.5)
	a = 65535
	return
}

// AsRGBA returns the colour as a standard 8-bit [color.RGBA] value.
func (c Colour) AsRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.r*255 + 0.5),
		G: uint8(c.g*255 + 0.5),
		B: uint8(c.b*255 + 0.5),
		A: 255,
	}
}

// Equal reports whether the two colours have identical RGB components.
// Equality is defined solely by RGB.
func (c Colour) Equal(o Colour) bool { return c == o }

func (c Colour) String() string {
	return fmt.Sprintf("RGB(%s, %s, %s)", formatComponent(c.r), formatComponent(c.g), formatComponent(c.b))
}

// hueXY returns the cartesian hue-plane coordinates of the colour:
// the red axis at angle 0 and the green and blue axes at +120 and
// -120 degrees respectively. Both coordinates are 0 exactly when
// the colour is achromatic.
func (c Colour) hueXY() (x, y float32) {
	x = c.r - (c.g+c.b)/2
	y = (c.g - c.b) * sin120
	return
}

// Hue returns the hue angle of the colour. The second return value
// is false iff the colour is achromatic (zero chroma), in which case
// the hue is undefined.
func (c Colour) Hue() (HueAngle, bool) {
	x, y := c.hueXY()
	if x == 0 && y == 0 {
		return 0, false
	}
	return HueAngle(math32.Atan2(y, x)), true
}

// Value returns the lightness of the colour: the mean of its RGB
// components, in the range 0 to 1.
func (c Colour) Value() float32 {
	return (c.r + c.g + c.b) / 3
}

// Chroma returns the colourfulness of the colour in the range 0 to 1,
// where 0 is achromatic grey and 1 is the most saturated colour
// achievable at this hue.
func (c Colour) Chroma() float32 {
	x, y := c.hueXY()
	hyp := math32.Hypot(x, y)
	if hyp == 0 {
		return 0
	}
	h := HueAngle(math32.Atan2(y, x))
	mx, my := h.MaxChromaRGB().hueXY()
	return clamp01(hyp / math32.Hypot(mx, my))
}

// Greyness returns how close the colour is to being achromatic,
// in the range 0 to 1. It is the complement of [Colour.Chroma].
func (c Colour) Greyness() float32 {
	return 1 - c.Chroma()
}

// Warmth returns the warmth of the colour in the range 0 to 1,
// where pure red is the warmest (1) and pure cyan the coolest (0).
// Achromatic colours have the neutral warmth 0.5.
func (c Colour) Warmth() float32 {
	x, _ := c.hueXY()
	return (x + 1) / 2
}

// MonochromeRGB returns the achromatic grey with the same value
// as this colour.
func (c Colour) MonochromeRGB() Colour {
	v := c.Value()
	return Colour{v, v, v}
}

// MaxChromaRGB returns the most saturated colour with the same hue
// as this colour. For an achromatic colour the hue is undefined and
// the monochrome equivalent is returned instead.
func (c Colour) MaxChromaRGB() Colour {
	h, ok := c.Hue()
	if !ok {
		return c.MonochromeRGB()
	}
	return h.MaxChromaRGB()
}

// WarmthRGB returns a red-to-blue rendering of the warmth of this
// colour: pure red for the warmest, pure blue for the coolest, and
// mid grey for neutral.
func (c Colour) WarmthRGB() Colour {
	x, _ := c.hueXY()
	if x >= 0 {
		return Colour{(1 + x) / 2, (1 - x) / 2, (1 - x) / 2}
	}
	return Colour{(1 + x) / 2, (1 + x) / 2, (1 - x) / 2}
}

// BestForeground returns the anchor colour (black or white) with the
// greatest contrast against this colour, judged by comparing its value
// to the 0.5 mid point.
func (c Colour) BestForeground() Colour {
	if c.Value() > 0.5 {
		return Black
	}
	return White
}

// Less reports whether this colour sorts before the other in the
// display order: achromatic colours first, ordered by value, then
// chromatic colours by hue angle starting at red and proceeding
// through yellow and green, tie-broken by value.
func (c Colour) Less(o Colour) bool {
	ch, cok := c.Hue()
	oh, ook := o.Hue()
	switch {
	case !cok && !ook:
		return c.Value() < o.Value()
	case !cok:
		return true
	case !ook:
		return false
	}
	cd, od := ch.sortKey(), oh.sortKey()
	if cd != od {
		return cd < od
	}
	return c.Value() < o.Value()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
