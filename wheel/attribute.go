// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wheel

import (
	"strconv"
	"strings"

	"github.com/paintbox/paintbox/colour"
)

// Attribute selects the scalar colour attribute used as the radial
// axis of a hue wheel.
type Attribute int32

const (
	// Chroma plots paints by colourfulness.
	Chroma Attribute = iota

	// Value plots paints by lightness.
	Value

	// Warmth plots paints by warmth.
	Warmth

	// Greyness plots paints by closeness to grey.
	Greyness
)

var _AttributeValues = []Attribute{Chroma, Value, Warmth, Greyness}

var _AttributeNames = []string{"chroma", "value", "warmth", "greyness"}

// IsValid returns whether the value is a valid option for its type.
func (i Attribute) IsValid() bool { return i >= 0 && int(i) < len(_AttributeValues) }

// String returns the name of the attribute.
func (i Attribute) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _AttributeNames[i]
}

// Values returns all possible values of the type.
func (i Attribute) Values() []Attribute {
	return append([]Attribute{}, _AttributeValues...)
}

// SetString sets the attribute from its name, case-insensitively.
func (i *Attribute) SetString(s string) error {
	for idx, n := range _AttributeNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			*i = _AttributeValues[idx]
			return nil
		}
	}
	return &UnknownAttributeError{Text: s}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Attribute) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Attribute) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Scalar returns the selected attribute value of the given colour,
// in the range 0 to 1.
func (i Attribute) Scalar(c colour.Colour) float32 {
	switch i {
	case Value:
		return c.Value()
	case Warmth:
		return c.Warmth()
	case Greyness:
		return c.Greyness()
	default:
		return c.Chroma()
	}
}

// UnknownAttributeError is returned when text names no attribute.
type UnknownAttributeError struct {
	Text string
}

func (e *UnknownAttributeError) Error() string {
	return "wheel: " + strconv.Quote(e.Text) + " is not a valid attribute"
}
