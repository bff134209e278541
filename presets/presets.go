// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package presets provides named date ranges, such as 'last-7-days' or
// 'this-month', that are evaluated relative to the current day and are
// typically offered alongside a range calendar.
package presets

import (
	"strings"
	"time"

	"cloudeng.io/datepicker/dates"
)

// Preset is a named range that is evaluated relative to today.
type Preset interface {
	Name() string
	Evaluate(today dates.CalendarDate) dates.Range
}

type preset struct {
	name string
	fn   func(today dates.CalendarDate) dates.Range
}

func (p preset) Name() string {
	return p.name
}

func (p preset) Evaluate(today dates.CalendarDate) dates.Range {
	return p.fn(today)
}

// New returns a Preset that calls fn to evaluate its range.
func New(name string, fn func(today dates.CalendarDate) dates.Range) Preset {
	return preset{name: name, fn: fn}
}

// LastDays returns a Preset for the n days up to and including today.
func LastDays(name string, n int) Preset {
	return New(name, func(today dates.CalendarDate) dates.Range {
		return dates.Range{From: today.AddDays(1 - max(n, 1)), To: today}
	})
}

// NextDays returns a Preset for the n days starting today.
func NextDays(name string, n int) Preset {
	return New(name, func(today dates.CalendarDate) dates.Range {
		return dates.Range{From: today, To: today.AddDays(max(n, 1) - 1)}
	})
}

func week(day dates.CalendarDate, weekStartsOn time.Weekday) dates.Range {
	return dates.Range{From: day.StartOfWeek(weekStartsOn), To: day.EndOfWeek(weekStartsOn)}
}

func month(day dates.CalendarDate) dates.Range {
	return dates.Range{From: day.StartOfMonth(), To: day.EndOfMonth()}
}

func year(day dates.CalendarDate) dates.Range {
	return dates.Range{From: day.StartOfYear(), To: day.EndOfYear()}
}

// Defaults returns the standard presets, week based presets use
// weekStartsOn.
func Defaults(weekStartsOn time.Weekday) List {
	return List{
		New("today", func(t dates.CalendarDate) dates.Range { return dates.Range{From: t, To: t} }),
		New("yesterday", func(t dates.CalendarDate) dates.Range {
			y := t.AddDays(-1)
			return dates.Range{From: y, To: y}
		}),
		LastDays("last-7-days", 7),
		LastDays("last-30-days", 30),
		New("this-week", func(t dates.CalendarDate) dates.Range { return week(t, weekStartsOn) }),
		New("last-week", func(t dates.CalendarDate) dates.Range { return week(t.AddDays(-7), weekStartsOn) }),
		New("this-month", month),
		New("last-month", func(t dates.CalendarDate) dates.Range { return month(t.StartOfMonth().AddMonths(-1)) }),
		New("this-year", year),
		New("last-year", func(t dates.CalendarDate) dates.Range { return year(t.AddYears(-1)) }),
	}
}

// List is a list of presets.
type List []Preset

func (l List) String() string {
	var out strings.Builder
	for i, p := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name())
	}
	return out.String()
}

// Lookup returns the preset with the specified name.
func (l List) Lookup(name string) (Preset, bool) {
	for _, p := range l {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Evaluate returns the ranges for all of the presets.
func (l List) Evaluate(today dates.CalendarDate) []dates.Range {
	result := make([]dates.Range, len(l))
	for i, p := range l {
		result[i] = p.Evaluate(today)
	}
	return result
}

// Active returns the first preset whose range for today is identical
// to selected, if any.
func (l List) Active(selected dates.Range, today dates.CalendarDate) (Preset, bool) {
	if !selected.IsComplete() {
		return nil, false
	}
	selected = selected.Normalize()
	for _, p := range l {
		if p.Evaluate(today) == selected {
			return p, true
		}
	}
	return nil, false
}
