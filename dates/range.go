// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents a range of calendar days, inclusive of both From and
// To. Either bound may be zero to indicate that it is not set.
type Range struct {
	From CalendarDate
	To   CalendarDate
}

// NewRange returns a Range with from and to swapped if necessary so that
// From is never later than To.
func NewRange(from, to CalendarDate) Range {
	return Range{From: from, To: to}.Normalize()
}

// Normalize returns a new Range with From and To swapped if both are set
// and From is later than To.
func (r Range) Normalize() Range {
	if !r.From.IsZero() && !r.To.IsZero() && r.From > r.To {
		r.From, r.To = r.To, r.From
	}
	return r
}

// IsZero returns true if neither bound is set.
func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// IsComplete returns true if both bounds are set.
func (r Range) IsComplete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains returns true if day is within the range. A range with only
// one bound set contains only that day.
func (r Range) Contains(day CalendarDate) bool {
	switch {
	case r.IsComplete():
		n := r.Normalize()
		return day >= n.From && day <= n.To
	case !r.From.IsZero():
		return day == r.From
	case !r.To.IsZero():
		return day == r.To
	}
	return false
}

// Len returns the number of days in the range, including both bounds,
// or zero if the range is not complete.
func (r Range) Len() int {
	if !r.IsComplete() {
		return 0
	}
	n := r.Normalize()
	return n.From.DaysUntil(n.To) + 1
}

// Days returns an iterator over every day in a complete range.
func (r Range) Days() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !r.IsComplete() {
			return
		}
		n := r.Normalize()
		for d := n.From; d <= n.To; d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	var out strings.Builder
	if !r.From.IsZero() {
		out.WriteString(r.From.String())
	}
	out.WriteString(" - ")
	if !r.To.IsZero() {
		out.WriteString(r.To.String())
	}
	return strings.TrimSpace(out.String())
}

// Parse parses a range of the form '<from>:<to>' where either
// bound may be empty and each bound is parsed using ParseCalendarDate.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var nr Range
	var err error
	if len(parts[0]) > 0 {
		if nr.From, err = ParseCalendarDate(parts[0]); err != nil {
			return fmt.Errorf("invalid from: %s: %v", parts[0], err)
		}
	}
	if len(parts[1]) > 0 {
		if nr.To, err = ParseCalendarDate(parts[1]); err != nil {
			return fmt.Errorf("invalid to: %s: %v", parts[1], err)
		}
	}
	*r = nr.Normalize()
	return nil
}
