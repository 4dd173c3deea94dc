// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package characteristics defines the closed enumerations that classify
// a paint: finish, transparency, fluorescence, metallic quality, and
// permanence. Each enumeration has an abbreviation, a description, and
// a 1-based ordinal, and parses flexibly from free text or from a
// key="value" marker embedded in a larger record.
package characteristics

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Characteristic is the interface satisfied by all of the paint
// characteristic enumeration types.
type Characteristic interface {
	fmt.Stringer

	// Desc returns the full description of the value.
	Desc() string

	// Ordinal returns the 1-based position of the value within
	// its type, as used by numeric reference data.
	Ordinal() float64

	// Int64 returns the value as an int64.
	Int64() int64

	// IsValid returns whether the value is a valid option
	// for its type.
	IsValid() bool

	// Values returns all possible values of the type.
	Values() []Characteristic
}

// MalformedError is returned when text cannot be parsed as a value of
// a characteristic type. It retains the original input text.
type MalformedError struct {
	Text string
	Type string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("characteristics: %q is not a valid %s", e.Text, e.Type)
}

// OrdinalError is returned when a numeric ordinal does not round to any
// value of a characteristic type.
type OrdinalError struct {
	Ordinal float64
	Type    string
}

func (e *OrdinalError) Error() string {
	return fmt.Sprintf("characteristics: ordinal %v is out of range for %s", e.Ordinal, e.Type)
}

var markerRegexps = map[string]*regexp.Regexp{}

// markerRegexp returns the (cached) regular expression matching a
// key="value" marker for the given key.
func markerRegexp(key string) *regexp.Regexp {
	if re, ok := markerRegexps[key]; ok {
		return re
	}
	re := regexp.MustCompile(`\b` + key + `\s*=\s*"([^"]*)"`)
	markerRegexps[key] = re
	return re
}

// ExtractMarkerOrRaw returns the value of the first key="value" marker
// found anywhere in the given text, or, if there is no such marker,
// the whole text with surrounding space trimmed.
func ExtractMarkerOrRaw(text, key string) string {
	if m := markerRegexp(key).FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// setFromText parses text as a value of the characteristic type with
// the given marker key, abbreviation table, and description table.
// Either the abbreviation or the description matches, with an
// ASCII-case-insensitive fallback.
func setFromText[T ~int32](i *T, text, key, typeName string, abbrevs, descs []string) error {
	s := ExtractMarkerOrRaw(text, key)
	for idx := range abbrevs {
		if s == abbrevs[idx] || s == descs[idx] {
			*i = T(idx)
			return nil
		}
	}
	for idx := range abbrevs {
		if strings.EqualFold(s, abbrevs[idx]) || strings.EqualFold(s, descs[idx]) {
			*i = T(idx)
			return nil
		}
	}
	return &MalformedError{Text: text, Type: typeName}
}

// fromOrdinal maps a rounded 1-based ordinal to a value of the
// characteristic type with the given number of values.
func fromOrdinal[T ~int32](n float64, typeName string, count int) (T, error) {
	r := math.Round(n)
	if math.IsNaN(r) || r < 1 || r > float64(count) {
		return 0, &OrdinalError{Ordinal: n, Type: typeName}
	}
	return T(r - 1), nil
}

// scanValue converts a database value to the string form used by the
// characteristic SetString methods.
func scanValue(value any, typeName string) (string, error) {
	switch v := value.(type) {
	case []byte:
		return string(v), nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("characteristics: invalid value for type %s: %T(%v)", typeName, value, value)
	}
}

// Characteristics aggregates one value of each characteristic type,
// as carried by every paint.
type Characteristics struct {
	Finish       Finish
	Transparency Transparency
	Fluorescence Fluorescence
	Metallic     Metallic
	Permanence   Permanence
}

// SetString parses all five characteristic values from their markers
// in the given text, typically a whole paint record line. A missing or
// unmatchable marker fails that characteristic's parse.
func (ch *Characteristics) SetString(text string) error {
	if err := ch.Finish.SetString(text); err != nil {
		return err
	}
	if err := ch.Transparency.SetString(text); err != nil {
		return err
	}
	if err := ch.Fluorescence.SetString(text); err != nil {
		return err
	}
	if err := ch.Metallic.SetString(text); err != nil {
		return err
	}
	return ch.Permanence.SetString(text)
}

// String returns the five values as comma-separated key="abbrev"
// markers in the fixed serialization order.
func (ch Characteristics) String() string {
	return fmt.Sprintf(`finish="%s", transparency="%s", fluorescence="%s", metallic="%s", permanence="%s"`,
		ch.Finish, ch.Transparency, ch.Fluorescence, ch.Metallic, ch.Permanence)
}
