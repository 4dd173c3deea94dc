// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristics

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Metallic is the metallic quality of a dried paint film.
type Metallic int32

const (
	// MetallicMetal contains real metal particles.
	MetallicMetal Metallic = iota

	// MetallicMetallic has a metallic appearance.
	MetallicMetallic

	// MetallicSemiMetallic has a partially metallic appearance.
	MetallicSemiMetallic

	// MetallicNonmetallic has no metallic appearance.
	MetallicNonmetallic
)

var _MetallicValues = []Metallic{
	MetallicMetal, MetallicMetallic, MetallicSemiMetallic, MetallicNonmetallic,
}

var _MetallicAbbrevs = []string{"Mt", "Mc", "SM", "NM"}

var _MetallicDescs = []string{"Metal", "Metallic", "Semi-metallic", "Nonmetallic"}

// String returns the abbreviation of the value.
func (i Metallic) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _MetallicAbbrevs[i]
}

// Abbrev returns the abbreviation of the value; it is the same
// as [Metallic.String].
func (i Metallic) Abbrev() string { return i.String() }

// Desc returns the description of the value.
func (i Metallic) Desc() string {
	if !i.IsValid() {
		return i.String()
	}
	return _MetallicDescs[i]
}

// IsValid returns whether the value is a valid option for its type.
func (i Metallic) IsValid() bool { return i >= 0 && int(i) < len(_MetallicValues) }

// Int64 returns the value as an int64.
func (i Metallic) Int64() int64 { return int64(i) }

// SetInt64 sets the value from an int64.
func (i *Metallic) SetInt64(in int64) { *i = Metallic(in) }

// Ordinal returns the 1-based ordinal of the value.
func (i Metallic) Ordinal() float64 { return float64(i) + 1 }

// MetallicFromOrdinal returns the value with the given rounded
// 1-based ordinal, or an [OrdinalError] if it is out of range.
func MetallicFromOrdinal(n float64) (Metallic, error) {
	return fromOrdinal[Metallic](n, "Metallic", len(_MetallicValues))
}

// Values returns all possible values of the type.
func (i Metallic) Values() []Characteristic {
	vs := make([]Characteristic, len(_MetallicValues))
	for idx, v := range _MetallicValues {
		vs[idx] = v
	}
	return vs
}

// SetString sets the value from its text representation: either a
// metallic="value" marker anywhere in the text, or the whole trimmed
// text, matching the abbreviation or the description.
func (i *Metallic) SetString(s string) error {
	return setFromText(i, s, "metallic", "Metallic", _MetallicAbbrevs, _MetallicDescs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Metallic) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Metallic) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MarshalYAML implements the [yaml.Marshaler] interface.
func (i Metallic) MarshalYAML() (any, error) { return i.String(), nil }

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (i *Metallic) UnmarshalYAML(n *yaml.Node) error { return i.SetString(n.Value) }

// Value implements the [driver.Valuer] interface.
func (i Metallic) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements the [sql.Scanner] interface.
func (i *Metallic) Scan(value any) error {
	s, err := scanValue(value, "Metallic")
	if err != nil {
		return err
	}
	return i.SetString(s)
}
