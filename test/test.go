// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test collects small helpers shared by the test suites of every
// other package in the module. It never imports anything from those
// packages, so it can be imported freely without risk of import cycles.
package test

import (
	"fmt"
	"testing"
)

// success is satisfied by a bool, a nil error/interface, or any value whose
// zero value means "no failure occurred".
func success(v interface{}) bool {
	switch o := v.(type) {
	case bool:
		return o
	case error:
		return o == nil
	case nil:
		return true
	default:
		return true
	}
}

// ExpectSuccess fails the test unless v indicates success.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !success(v) {
		t.Errorf("expected success but got %v", v)
	}
}

// ExpectFailure fails the test unless v indicates failure.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if success(v) {
		t.Errorf("expected failure but got %v", v)
	}
}

// ExpectEquality fails the test unless got and want compare equal via
// fmt.Sprint (adequate for the value types this module compares in tests).
func ExpectEquality(t *testing.T, got interface{}, want interface{}) {
	t.Helper()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

// ExpectInequality fails the test if got and want compare equal.
func ExpectInequality(t *testing.T, got interface{}, want interface{}) {
	t.Helper()
	if fmt.Sprint(got) == fmt.Sprint(want) {
		t.Errorf("expected inequality but both are %v", got)
	}
}

// ExpectApproximate fails the test unless got is within tolerance (expressed
// as a fraction of want) of want.
func ExpectApproximate(t *testing.T, want float64, got float64, tolerance float64) {
	t.Helper()
	d := want - got
	if d < 0 {
		d = -d
	}
	limit := want * tolerance
	if limit < 0 {
		limit = -limit
	}
	if d > limit {
		t.Errorf("expected %v to be within %v%% of %v but got a difference of %v", got, tolerance*100, want, d)
	}
}

// Equate is a lenient, fmt.Sprint-based equality check kept for parity with
// the ring/capped-writer tests, which compare strings and errors alike.
func Equate(t *testing.T, got interface{}, want interface{}) {
	t.Helper()
	ExpectEquality(t, got, want)
}
