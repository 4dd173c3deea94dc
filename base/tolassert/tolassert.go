// Copyright (c) 2025, The Paintbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides assert functions for comparing
// floating-point numbers with reasonable tolerances.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks that the two given numbers are equal within a
// tolerance of 0.001 times the expected value.
func Equal(t *testing.T, expected, actual float32, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol checks that the two given numbers are equal within the
// given relative tolerance, scaled by the magnitude of the expected
// value for expected values above 1.
func EqualTol(t *testing.T, expected, actual, tol float32, msgAndArgs ...any) bool {
	t.Helper()
	if expected > 1 || expected < -1 {
		tol *= expected
		if tol < 0 {
			tol = -tol
		}
	}
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}
