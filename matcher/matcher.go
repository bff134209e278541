// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package matcher provides declarative constraints on calendar days,
// used to disable days and to compute per day modifiers such as
// availability or pricing.
package matcher

import (
	"slices"
	"time"

	"cloudeng.io/datepicker/dates"
)

// Matcher is implemented by all of the constraint variants.
type Matcher interface {
	Match(day dates.CalendarDate) bool
}

// Bool matches every day if true and no day if false.
type Bool bool

func (b Bool) Match(dates.CalendarDate) bool {
	return bool(b)
}

// Func is a predicate called with the day being evaluated.
type Func func(day dates.CalendarDate) bool

func (f Func) Match(day dates.CalendarDate) bool {
	if f == nil {
		return false
	}
	return f(day)
}

// Day matches a single day.
type Day dates.CalendarDate

func (d Day) Match(day dates.CalendarDate) bool {
	return dates.CalendarDate(d) == day
}

// Days matches any of the listed days.
type Days []dates.CalendarDate

func (d Days) Match(day dates.CalendarDate) bool {
	return slices.Contains(d, day)
}

// DayOfWeek matches days that fall on any of the listed weekdays.
type DayOfWeek []time.Weekday

func (d DayOfWeek) Match(day dates.CalendarDate) bool {
	return slices.Contains(d, day.Weekday())
}

// Weekends matches Saturdays and Sundays.
func Weekends() DayOfWeek {
	return DayOfWeek{time.Sunday, time.Saturday}
}

// Weekdays matches Monday through Friday.
func Weekdays() DayOfWeek {
	return DayOfWeek{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

// Before matches days strictly earlier than the specified day.
type Before dates.CalendarDate

func (b Before) Match(day dates.CalendarDate) bool {
	return day < dates.CalendarDate(b)
}

// After matches days strictly later than the specified day.
type After dates.CalendarDate

func (a After) Match(day dates.CalendarDate) bool {
	return day > dates.CalendarDate(a)
}

// Interval is the combination of a before and an after bound, it matches
// only the days strictly between After and Before, ie. the open interval
// (After, Before). It is not the union of the two bounds and so matches
// nothing when After is not earlier than Before.
type Interval struct {
	After  dates.CalendarDate
	Before dates.CalendarDate
}

func (i Interval) Match(day dates.CalendarDate) bool {
	return day > i.After && day < i.Before
}

// Range matches the days in the closed interval [From, To]. If only
// one bound is set it matches all days on or after From, or all days
// on or before To. A Range with neither bound set matches nothing.
type Range struct {
	From dates.CalendarDate
	To   dates.CalendarDate
}

func (r Range) Match(day dates.CalendarDate) bool {
	switch {
	case !r.From.IsZero() && !r.To.IsZero():
		from, to := r.From, r.To
		if from > to {
			from, to = to, from
		}
		return day >= from && day <= to
	case !r.From.IsZero():
		return day >= r.From
	case !r.To.IsZero():
		return day <= r.To
	}
	return false
}

// Any matches a day if any of its matchers do.
type Any []Matcher

func (a Any) Match(day dates.CalendarDate) bool {
	for _, m := range a {
		if m != nil && m.Match(day) {
			return true
		}
	}
	return false
}

// DayOf returns a Day matcher for the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day(dates.CalendarDateFromTime(t))
}

// DaysOf returns a Days matcher for the calendar days of the supplied times.
func DaysOf(times ...time.Time) Days {
	d := make(Days, len(times))
	for i, t := range times {
		d[i] = dates.CalendarDateFromTime(t)
	}
	return d
}

// BeforeTime returns a Before matcher for the calendar day of t.
func BeforeTime(t time.Time) Before {
	return Before(dates.CalendarDateFromTime(t))
}

// AfterTime returns an After matcher for the calendar day of t.
func AfterTime(t time.Time) After {
	return After(dates.CalendarDateFromTime(t))
}

// PredicateTime adapts a predicate on time.Time to a Func, the predicate
// is called with midnight UTC of the day being evaluated.
func PredicateTime(fn func(time.Time) bool) Func {
	return func(day dates.CalendarDate) bool {
		return fn(day.Time(time.UTC))
	}
}
