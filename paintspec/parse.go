// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintspec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paintbox/paintbox/colour"
)

var (
	nameRe   = regexp.MustCompile(`\bname\s*=\s*"([^"]*)"`)
	quotedRe = regexp.MustCompile(`"([^"]*)"`)
	notesRe  = regexp.MustCompile(`\bnotes\s*=\s*"([^"]*)"`)
	rgbRe    = regexp.MustCompile(`\brgb\s*=\s*(RGB(?:16)?\([^)]*\))`)

	rgbLitRe = regexp.MustCompile(
		`^RGB\(\s*([^,\s)]+)\s*,\s*([^,\s)]+)\s*,\s*([^,\s)]+)\s*\)$`)
	rgb16LitRe = regexp.MustCompile(
		`^RGB16\(\s*red\s*=\s*0[xX]([0-9a-fA-F]{1,4})\s*,\s*green\s*=\s*0[xX]([0-9a-fA-F]{1,4})\s*,\s*blue\s*=\s*0[xX]([0-9a-fA-F]{1,4})\s*\)$`)
)

// ParseRecord parses one paint record line. The leading type tag is
// ignored for backward format compatibility; the name is taken from a
// name="..." field or the first bare quoted string; the colour from
// the rgb= literal; the characteristics from their key="value"
// markers; and the notes from an optional notes="..." field.
// Unknown keys are ignored.
func ParseRecord(line string) (BasicPaintSpec, error) {
	var s BasicPaintSpec

	if m := nameRe.FindStringSubmatch(line); m != nil {
		s.Name = m[1]
	} else if m := quotedRe.FindStringSubmatch(line); m != nil {
		s.Name = m[1]
	} else {
		return BasicPaintSpec{}, &MalformedError{Fragment: line}
	}

	m := rgbRe.FindStringSubmatch(line)
	if m == nil {
		return BasicPaintSpec{}, &MalformedError{Fragment: line}
	}
	rgb, err := ParseRGBLiteral(m[1])
	if err != nil {
		return BasicPaintSpec{}, err
	}
	s.RGB = rgb

	if err := s.Characteristics.SetString(line); err != nil {
		return BasicPaintSpec{}, &MalformedError{Fragment: line, Err: err}
	}

	if m := notesRe.FindStringSubmatch(line); m != nil {
		s.Notes = m[1]
	}
	return s, nil
}

// ParseRGBLiteral parses an RGB colour literal in either of the two
// accepted forms: RGB(r, g, b) with already-normalized components, or
// RGB16(red=0xHHHH, green=0xHHHH, blue=0xHHHH) with 16-bit hex
// channels that are divided by 65535 to normalize them.
func ParseRGBLiteral(lit string) (colour.Colour, error) {
	if m := rgbLitRe.FindStringSubmatch(lit); m != nil {
		var comps [3]float32
		for i, f := range m[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return colour.Colour{}, &MalformedError{Fragment: lit, Err: err}
			}
			comps[i] = float32(v)
		}
		c, err := colour.FromRGB(comps[0], comps[1], comps[2])
		if err != nil {
			return colour.Colour{}, &MalformedError{Fragment: lit, Err: err}
		}
		return c, nil
	}
	if m := rgb16LitRe.FindStringSubmatch(lit); m != nil {
		var comps [3]float32
		for i, f := range m[1:] {
			v, err := strconv.ParseUint(f, 16, 16)
			if err != nil {
				return colour.Colour{}, &MalformedError{Fragment: lit, Err: err}
			}
			comps[i] = float32(v) / 65535
		}
		c, err := colour.FromRGB(comps[0], comps[1], comps[2])
		if err != nil {
			return colour.Colour{}, &MalformedError{Fragment: lit, Err: err}
		}
		return c, nil
	}
	return colour.Colour{}, &MalformedError{Fragment: lit}
}

// Parse parses a whole collection text: the two header lines followed
// by zero or more record lines. A duplicate paint name fails with an
// [AlreadyExistsError] and no partial result is returned.
func Parse(text string) (*CollectionSpec, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, &MalformedError{Fragment: text}
	}
	name, err := parseHeader(lines[0], nameLabel)
	if err != nil {
		return nil, err
	}
	owner, err := parseHeader(lines[1], ownerLabel)
	if err != nil {
		return nil, err
	}
	var paints []BasicPaintSpec
	for _, ln := range lines[2:] {
		ln = strings.TrimSuffix(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		p, err := ParseRecord(ln)
		if err != nil {
			return nil, err
		}
		paints = append(paints, p)
	}
	return New(CollectionID{Name: name, Owner: owner}, paints)
}

// parseHeader extracts the value of a "<label>: <value>" header line.
func parseHeader(line, label string) (string, error) {
	line = strings.TrimSuffix(line, "\r")
	rest, ok := strings.CutPrefix(line, label+":")
	if !ok {
		return "", &MalformedError{Fragment: line}
	}
	return strings.TrimPrefix(rest, " "), nil
}
