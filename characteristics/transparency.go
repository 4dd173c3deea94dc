// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristics

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Transparency is how much of the surface below shows through
// a paint film.
type Transparency int32

const (
	// TransparencyOpaque completely hides the surface below.
	TransparencyOpaque Transparency = iota

	// TransparencySemiOpaque hides most of the surface below.
	TransparencySemiOpaque

	// TransparencySemiTransparent lets most of the surface
	// below show through.
	TransparencySemiTransparent

	// TransparencyTransparent lets the surface below show
	// through, tinted.
	TransparencyTransparent

	// TransparencyClear leaves the surface below fully visible.
	TransparencyClear
)

var _TransparencyValues = []Transparency{
	TransparencyOpaque, TransparencySemiOpaque, TransparencySemiTransparent,
	TransparencyTransparent, TransparencyClear,
}

var _TransparencyAbbrevs = []string{"O", "SO", "ST", "T", "Cl"}

var _TransparencyDescs = []string{"Opaque", "Semi-opaque", "Semi-transparent", "Transparent", "Clear"}

// String returns the abbreviation of the value.
func (i Transparency) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _TransparencyAbbrevs[i]
}

// Abbrev returns the abbreviation of the value; it is the same
// as [Transparency.String].
func (i Transparency) Abbrev() string { return i.String() }

// Desc returns the description of the value.
func (i Transparency) Desc() string {
	if !i.IsValid() {
		return i.String()
	}
	return _TransparencyDescs[i]
}

// IsValid returns whether the value is a valid option for its type.
func (i Transparency) IsValid() bool { return i >= 0 && int(i) < len(_TransparencyValues) }

// Int64 returns the value as an int64.
func (i Transparency) Int64() int64 { return int64(i) }

// SetInt64 sets the value from an int64.
func (i *Transparency) SetInt64(in int64) { *i = Transparency(in) }

// Ordinal returns the 1-based ordinal of the value.
func (i Transparency) Ordinal() float64 { return float64(i) + 1 }

// TransparencyFromOrdinal returns the value with the given rounded
// 1-based ordinal, or an [OrdinalError] if it is out of range.
func TransparencyFromOrdinal(n float64) (Transparency, error) {
	return fromOrdinal[Transparency](n, "Transparency", len(_TransparencyValues))
}

// Values returns all possible values of the type.
func (i Transparency) Values() []Characteristic {
	vs := make([]Characteristic, len(_TransparencyValues))
	for idx, v := range _TransparencyValues {
		vs[idx] = v
	}
	return vs
}

// SetString sets the value from its text representation: either a
// transparency="value" marker anywhere in the text, or the whole
// trimmed text, matching the abbreviation or the description.
func (i *Transparency) SetString(s string) error {
	return setFromText(i, s, "transparency", "Transparency", _TransparencyAbbrevs, _TransparencyDescs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Transparency) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Transparency) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MarshalYAML implements the [yaml.Marshaler] interface.
func (i Transparency) MarshalYAML() (any, error) { return i.String(), nil }

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (i *Transparency) UnmarshalYAML(n *yaml.Node) error { return i.SetString(n.Value) }

// Value implements the [driver.Valuer] interface.
func (i Transparency) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements the [sql.Scanner] interface.
func (i *Transparency) Scan(value any) error {
	s, err := scanValue(value, "Transparency")
	if err != nil {
		return err
	}
	return i.SetString(s)
}
