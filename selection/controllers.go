// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package selection

import (
	"slices"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
)

func refuse[S Value](prev S) Result[S] {
	return Result[S]{Selection: prev, Accepted: false}
}

func accept[S Value](next S) Result[S] {
	return Result[S]{Selection: next, Accepted: true}
}

// Single selects one day at a time, clicking any enabled day replaces
// the current selection.
type Single struct{}

// Next returns the selection that results from clicking day.
func (s Single) Next(prev SingleValue, day dates.CalendarDate, bounds matcher.Bounds) Result[SingleValue] {
	if day.IsZero() || bounds.IsDisabled(day) {
		return refuse(prev)
	}
	return accept(SingleValue{Day: day})
}

func (Single) Mode() Mode { return ModeSingle }
func (Single) Empty() Value { return SingleValue{} }

func (Single) Disabled(Value, dates.CalendarDate) bool { return false }

func (s Single) Select(prev Value, day dates.CalendarDate, bounds matcher.Bounds) (Value, bool) {
	p, _ := prev.(SingleValue)
	r := s.Next(p, day, bounds)
	return r.Selection, r.Accepted
}

// Range selects a contiguous range of days. The first click sets the
// start of the range. A subsequent click on an earlier day replaces the
// start, whereas a click on the same or a later day completes the range.
// Once a range is complete the next click starts a new range.
//
// Min and Max, if non-zero, are the minimum and maximum number of days,
// inclusive of both ends, that a complete range may contain. If
// ExcludeDisabled is set a complete range may not contain a disabled day.
// A click that would complete a range that violates any of these
// constraints starts a new range at the clicked day instead.
type Range struct {
	Min             int
	Max             int
	ExcludeDisabled bool
}

// Next returns the selection that results from clicking day.
func (r Range) Next(prev RangeValue, day dates.CalendarDate, bounds matcher.Bounds) Result[RangeValue] {
	if day.IsZero() || bounds.IsDisabled(day) {
		return refuse(prev)
	}
	start := RangeValue{dates.Range{From: day}}
	from := prev.From
	if from.IsZero() {
		from = prev.To
	}
	if from.IsZero() || prev.IsComplete() || day < from {
		return accept(start)
	}
	candidate := RangeValue{dates.Range{From: from, To: day}}
	if !r.allowed(candidate.Range, bounds) {
		return accept(start)
	}
	return accept(candidate)
}

func (r Range) allowed(candidate dates.Range, bounds matcher.Bounds) bool {
	n := candidate.Len()
	if r.Min > 0 && n < r.Min {
		return false
	}
	if r.Max > 0 && n > r.Max {
		return false
	}
	if r.ExcludeDisabled {
		for d := range candidate.Days() {
			if bounds.IsDisabled(d) {
				return false
			}
		}
	}
	return true
}

func (Range) Mode() Mode { return ModeRange }
func (Range) Empty() Value { return RangeValue{} }

func (Range) Disabled(Value, dates.CalendarDate) bool { return false }

func (r Range) Select(prev Value, day dates.CalendarDate, bounds matcher.Bounds) (Value, bool) {
	p, _ := prev.(RangeValue)
	res := r.Next(p, day, bounds)
	return res.Selection, res.Accepted
}

// Multiple selects any number of days, each click toggles the clicked
// day. Removal is refused if Required is set and only one day is
// selected, or if Min is non-zero and no more than Min days are
// selected. Additions are refused once Max days are selected, at which
// point all unselected days are reported as disabled.
type Multiple struct {
	Min      int
	Max      int
	Required bool
}

// Next returns the selection that results from clicking day.
func (m Multiple) Next(prev MultipleValue, day dates.CalendarDate, bounds matcher.Bounds) Result[MultipleValue] {
	if day.IsZero() || bounds.IsDisabled(day) {
		return refuse(prev)
	}
	if idx := slices.Index(prev, day); idx >= 0 {
		if m.Required && len(prev) == 1 {
			return refuse(prev)
		}
		if m.Min > 0 && len(prev) <= m.Min {
			return refuse(prev)
		}
		return accept(slices.Delete(slices.Clone(prev), idx, idx+1))
	}
	if m.Disabled(prev, day) {
		return refuse(prev)
	}
	return accept(append(slices.Clip(prev), day))
}

func (Multiple) Mode() Mode { return ModeMultiple }
func (Multiple) Empty() Value { return MultipleValue{} }

// Disabled returns true for every unselected day once Max days are
// selected.
func (m Multiple) Disabled(current Value, day dates.CalendarDate) bool {
	cur, _ := current.(MultipleValue)
	return m.Max > 0 && len(cur) >= m.Max && !cur.Contains(day)
}

func (m Multiple) Select(prev Value, day dates.CalendarDate, bounds matcher.Bounds) (Value, bool) {
	p, _ := prev.(MultipleValue)
	r := m.Next(p, day, bounds)
	return r.Selection, r.Accepted
}
