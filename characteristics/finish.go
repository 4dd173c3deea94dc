// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristics

import (
	"database/sql/driver"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Finish is the sheen of a dried paint film.
type Finish int32

const (
	// FinishGloss is a fully glossy finish.
	FinishGloss Finish = iota

	// FinishSemiGloss is a finish between glossy and flat,
	// closer to glossy.
	FinishSemiGloss

	// FinishSemiFlat is a finish between glossy and flat,
	// closer to flat.
	FinishSemiFlat

	// FinishFlat is a fully matt finish.
	FinishFlat
)

var _FinishValues = []Finish{FinishGloss, FinishSemiGloss, FinishSemiFlat, FinishFlat}

var _FinishAbbrevs = []string{"G", "SG", "SF", "F"}

var _FinishDescs = []string{"Gloss", "Semi-gloss", "Semi-flat", "Flat"}

// String returns the abbreviation of the value.
func (i Finish) String() string {
	if !i.IsValid() {
		return strconv.FormatInt(int64(i), 10)
	}
	return _FinishAbbrevs[i]
}

// Abbrev returns the abbreviation of the value; it is the same
// as [Finish.String].
func (i Finish) Abbrev() string { return i.String() }

// Desc returns the description of the value.
func (i Finish) Desc() string {
	if !i.IsValid() {
		return i.String()
	}
	return _FinishDescs[i]
}

// IsValid returns whether the value is a valid option for its type.
func (i Finish) IsValid() bool { return i >= 0 && int(i) < len(_FinishValues) }

// Int64 returns the value as an int64.
func (i Finish) Int64() int64 { return int64(i) }

// SetInt64 sets the value from an int64.
func (i *Finish) SetInt64(in int64) { *i = Finish(in) }

// Ordinal returns the 1-based ordinal of the value.
func (i Finish) Ordinal() float64 { return float64(i) + 1 }

// FinishFromOrdinal returns the value with the given rounded 1-based
// ordinal, or an [OrdinalError] if it is out of range.
func FinishFromOrdinal(n float64) (Finish, error) {
	return fromOrdinal[Finish](n, "Finish", len(_FinishValues))
}

// Values returns all possible values of the type.
func (i Finish) Values() []Characteristic {
	vs := make([]Characteristic, len(_FinishValues))
	for idx, v := range _FinishValues {
		vs[idx] = v
	}
	return vs
}

// SetString sets the value from its text representation: either a
// finish="value" marker anywhere in the text, or the whole trimmed
// text, matching the abbreviation or the description.
func (i *Finish) SetString(s string) error {
	return setFromText(i, s, "finish", "Finish", _FinishAbbrevs, _FinishDescs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Finish) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Finish) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MarshalYAML implements the [yaml.Marshaler] interface.
func (i Finish) MarshalYAML() (any, error) { return i.String(), nil }

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (i *Finish) UnmarshalYAML(n *yaml.Node) error { return i.SetString(n.Value) }

// Value implements the [driver.Valuer] interface.
func (i Finish) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements the [sql.Scanner] interface.
func (i *Finish) Scan(value any) error {
	s, err := scanValue(value, "Finish")
	if err != nil {
		return err
	}
	return i.SetString(s)
}
