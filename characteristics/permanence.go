// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristics

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Permanence is the lightfastness rating of a paint's pigment.
type Permanence int32

const (
	// PermanenceExtremelyPermanent pigments do not fade.
	PermanenceExtremelyPermanent Permanence = iota

	// PermanencePermanent pigments resist fading well.
	PermanencePermanent

	// PermanenceModeratelyDurable pigments fade slowly.
	PermanenceModeratelyDurable

	// PermanenceFugitive pigments fade quickly.
	PermanenceFugitive
)

var _PermanenceValues = []Permanence{
	PermanenceExtremelyPermanent, PermanencePermanent,
	PermanenceModeratelyDurable, PermanenceFugitive,
}

var _PermanenceAbbrevs = []string{"AA", "A", "B", "C"}

var _PermanenceDescs = []string{"Extremely Permanent", "Permanent", "Moderately Durable", "Fugitive"}

// String returns the abbreviation of the value.
func (i Permanence) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _PermanenceAbbrevs[i]
}

// Abbrev returns the abbreviation of the value; it is the same
// as [Permanence.String].
func (i Permanence) Abbrev() string { return i.String() }

// Desc returns the description of the value.
func (i Permanence) Desc() string {
	if !i.IsValid() {
		return i.String()
	}
	return _PermanenceDescs[i]
}

// IsValid returns whether the value is a valid option for its type.
func (i Permanence) IsValid() bool { return i >= 0 && int(i) < len(_PermanenceValues) }

// Int64 returns the value as an int64.
func (i Permanence) Int64() int64 { return int64(i) }

// SetInt64 sets the value from an int64.
func (i *Permanence) SetInt64(in int64) { *i = Permanence(in) }

// Ordinal returns the 1-based ordinal of the value.
func (i Permanence) Ordinal() float64 { return float64(i) + 1 }

// PermanenceFromOrdinal returns the value with the given rounded
// 1-based ordinal, or an [OrdinalError] if it is out of range.
func PermanenceFromOrdinal(n float64) (Permanence, error) {
	return fromOrdinal[Permanence](n, "Permanence", len(_PermanenceValues))
}

// Values returns all possible values of the type.
func (i Permanence) Values() []Characteristic {
	vs := make([]Characteristic, len(_PermanenceValues))
	for idx, v := range _PermanenceValues {
		vs[idx] = v
	}
	return vs
}

// SetString sets the value from its text representation: either a
// permanence="value" marker anywhere in the text, or the whole
// trimmed text, matching the abbreviation or the description.
func (i *Permanence) SetString(s string) error {
	return setFromText(i, s, "permanence", "Permanence", _PermanenceAbbrevs, _PermanenceDescs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Permanence) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Permanence) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MarshalYAML implements the [yaml.Marshaler] interface.
func (i Permanence) MarshalYAML() (any, error) { return i.String(), nil }

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (i *Permanence) UnmarshalYAML(n *yaml.Node) error { return i.SetString(n.Value) }

// Value implements the [driver.Valuer] interface.
func (i Permanence) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements the [sql.Scanner] interface.
func (i *Permanence) Scan(value any) error {
	s, err := scanValue(value, "Permanence")
	if err != nil {
		return err
	}
	return i.SetString(s)
}
