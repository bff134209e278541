// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

import (
	"maps"
	"slices"

	"cloudeng.io/datepicker/dates"
)

// Bounds represents the constraints that determine whether a day is
// disabled. Min and Max are optional, a zero value means unset.
type Bounds struct {
	Min      dates.CalendarDate
	Max      dates.CalendarDate
	Disabled []Matcher
}

// IsDisabled returns true if day is strictly before Min, strictly after Max
// or matches any of the Disabled matchers.
func IsDisabled(day dates.CalendarDate, b Bounds) bool {
	if !b.Min.IsZero() && day < b.Min {
		return true
	}
	if !b.Max.IsZero() && day > b.Max {
		return true
	}
	return Any(b.Disabled).Match(day)
}

// IsDisabled is a convenience method for IsDisabled(day, b).
func (b Bounds) IsDisabled(day dates.CalendarDate) bool {
	return IsDisabled(day, b)
}

// With returns a copy of b with the additional disabled matchers appended.
func (b Bounds) With(disabled ...Matcher) Bounds {
	b.Disabled = append(slices.Clip(b.Disabled), disabled...)
	return b
}

// Modifiers associates names with matchers, for example "booked" or
// "holiday", so that each day can be annotated with the names of the
// matchers it satisfies.
type Modifiers map[string]Matcher

// Evaluate returns the sorted names of all modifiers that match day.
func (m Modifiers) Evaluate(day dates.CalendarDate) []string {
	var names []string
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if mt := m[name]; mt != nil && mt.Match(day) {
			names = append(names, name)
		}
	}
	return names
}
