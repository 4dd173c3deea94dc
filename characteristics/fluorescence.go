// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristics

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Fluorescence is how strongly a paint re-emits absorbed light.
type Fluorescence int32

const (
	// FluorescenceFluorescent is a fully fluorescent paint.
	FluorescenceFluorescent Fluorescence = iota

	// FluorescenceSemiFluorescent is a partially fluorescent paint.
	FluorescenceSemiFluorescent

	// FluorescenceNonfluorescent is a paint with no fluorescence.
	FluorescenceNonfluorescent
)

var _FluorescenceValues = []Fluorescence{
	FluorescenceFluorescent, FluorescenceSemiFluorescent, FluorescenceNonfluorescent,
}

var _FluorescenceAbbrevs = []string{"Fl", "SF", "NF"}

var _FluorescenceDescs = []string{"Fluorescent", "Semi-fluorescent", "Nonfluorescent"}

// String returns the abbreviation of the value.
func (i Fluorescence) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _FluorescenceAbbrevs[i]
}

// Abbrev returns the abbreviation of the value; it is the same
// as [Fluorescence.String].
func (i Fluorescence) Abbrev() string { return i.String() }

// Desc returns the description of the value.
func (i Fluorescence) Desc() string {
	if !i.IsValid() {
		return i.String()
	}
	return _FluorescenceDescs[i]
}

// IsValid returns whether the value is a valid option for its type.
func (i Fluorescence) IsValid() bool { return i >= 0 && int(i) < len(_FluorescenceValues) }

// Int64 returns the value as an int64.
func (i Fluorescence) Int64() int64 { return int64(i) }

// SetInt64 sets the value from an int64.
func (i *Fluorescence) SetInt64(in int64) { *i = Fluorescence(in) }

// Ordinal returns the 1-based ordinal of the value.
func (i Fluorescence) Ordinal() float64 { return float64(i) + 1 }

// FluorescenceFromOrdinal returns the value with the given rounded
// 1-based ordinal, or an [OrdinalError] if it is out of range.
func FluorescenceFromOrdinal(n float64) (Fluorescence, error) {
	return fromOrdinal[Fluorescence](n, "Fluorescence", len(_FluorescenceValues))
}

// Values returns all possible values of the type.
func (i Fluorescence) Values() []Characteristic {
	vs := make([]Characteristic, len(_FluorescenceValues))
	for idx, v := range _FluorescenceValues {
		vs[idx] = v
	}
	return vs
}

// SetString sets the value from its text representation: either a
// fluorescence="value" marker anywhere in the text, or the whole
// trimmed text, matching the abbreviation or the description.
func (i *Fluorescence) SetString(s string) error {
	return setFromText(i, s, "fluorescence", "Fluorescence", _FluorescenceAbbrevs, _FluorescenceDescs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Fluorescence) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Fluorescence) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MarshalYAML implements the [yaml.Marshaler] interface.
func (i Fluorescence) MarshalYAML() (any, error) { return i.String(), nil }

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (i *Fluorescence) UnmarshalYAML(n *yaml.Node) error { return i.SetString(n.Value) }

// Value implements the [driver.Valuer] interface.
func (i Fluorescence) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements the [sql.Scanner] interface.
func (i *Fluorescence) Scan(value any) error {
	s, err := scanValue(value, "Fluorescence")
	if err != nil {
		return err
	}
	return i.SetString(s)
}
