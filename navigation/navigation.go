// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package navigation provides month to month navigation within an
// optional boundary, the options for month and year dropdowns and
// keyboard focus movement. All navigation is performed at month
// granularity, months are represented by the first day of the month.
package navigation

import (
	"fmt"
	"strings"

	"cloudeng.io/datepicker/dates"
)

// Direction is the direction of a navigation or focus move.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses 'previous'/'prev' or 'next'.
func ParseDirection(val string) (Direction, error) {
	switch strings.ToLower(val) {
	case "previous", "prev":
		return Previous, nil
	case "next":
		return Next, nil
	}
	return 0, fmt.Errorf("invalid direction: %q", val)
}

func (d Direction) sign() int {
	if d == Previous {
		return -1
	}
	return 1
}

// Boundary represents the earliest and latest months that may be
// navigated to, either may be zero to indicate no limit. Only the year
// and month of Start and End are significant.
type Boundary struct {
	Start dates.CalendarDate `yaml:"start,omitempty"`
	End   dates.CalendarDate `yaml:"end,omitempty"`
}

// Contains returns true if the month containing day lies within the
// boundary.
func (b Boundary) Contains(day dates.CalendarDate) bool {
	m := day.StartOfMonth()
	if !b.Start.IsZero() && m < b.Start.StartOfMonth() {
		return false
	}
	if !b.End.IsZero() && m > b.End.StartOfMonth() {
		return false
	}
	return true
}

// Clamp returns the first day of the month containing day, moved to
// the start or end of the boundary if it lies outside of it.
func (b Boundary) Clamp(day dates.CalendarDate) dates.CalendarDate {
	m := day.StartOfMonth()
	if !b.End.IsZero() && m > b.End.StartOfMonth() {
		m = b.End.StartOfMonth()
	}
	if !b.Start.IsZero() && m < b.Start.StartOfMonth() {
		m = b.Start.StartOfMonth()
	}
	return m
}

// FirstDay returns the first navigable day, or zero if there is no start.
func (b Boundary) FirstDay() dates.CalendarDate {
	if b.Start.IsZero() {
		return 0
	}
	return b.Start.StartOfMonth()
}

// LastDay returns the last navigable day, or zero if there is no end.
func (b Boundary) LastDay() dates.CalendarDate {
	if b.End.IsZero() {
		return 0
	}
	return b.End.EndOfMonth()
}

// Navigate returns the first day of the month before or after the month
// containing current.
func Navigate(dir Direction, current dates.CalendarDate) dates.CalendarDate {
	return current.StartOfMonth().AddMonths(dir.sign())
}

// CanNavigate returns true if the month that Navigate would return lies
// within the boundary.
func CanNavigate(dir Direction, current dates.CalendarDate, boundary Boundary) bool {
	return boundary.Contains(Navigate(dir, current))
}

// Step returns the month that Navigate would return and true if that
// month is within the boundary, otherwise it returns current unchanged
// and false.
func Step(dir Direction, current dates.CalendarDate, boundary Boundary) (dates.CalendarDate, bool) {
	next := Navigate(dir, current)
	if !boundary.Contains(next) {
		return current, false
	}
	return next, true
}

// Navigator supports navigation for a display of one or more consecutive
// months. The month passed to its methods is the first displayed month.
type Navigator struct {
	Boundary Boundary
	// NumberOfMonths is the number of months displayed, values less than
	// one are treated as one.
	NumberOfMonths int
	// Paged moves by NumberOfMonths rather than by a single month.
	Paged bool
	// Disabled prevents all navigation.
	Disabled bool
}

func (n Navigator) months() int {
	return max(n.NumberOfMonths, 1)
}

func (n Navigator) offset() int {
	if n.Paged {
		return n.months()
	}
	return 1
}

// Months returns the first day of each of the displayed months.
func (n Navigator) Months(first dates.CalendarDate) []dates.CalendarDate {
	first = first.StartOfMonth()
	months := make([]dates.CalendarDate, n.months())
	for i := range months {
		months[i] = first.AddMonths(i)
	}
	return months
}

// CanNext returns true if there is at least one month after those
// currently displayed that is within the boundary.
func (n Navigator) CanNext(first dates.CalendarDate) bool {
	if n.Disabled {
		return false
	}
	if n.Boundary.End.IsZero() {
		return true
	}
	return first.MonthsUntil(n.Boundary.End) >= n.months()
}

// CanPrevious returns true if there is at least one month before those
// currently displayed that is within the boundary.
func (n Navigator) CanPrevious(first dates.CalendarDate) bool {
	if n.Disabled {
		return false
	}
	if n.Boundary.Start.IsZero() {
		return true
	}
	return n.Boundary.Start.MonthsUntil(first) > 0
}

// Next returns the new first displayed month and true, or first and
// false if navigation is not possible. When paged the move is shortened
// so that no displayed month passes the end of the boundary.
func (n Navigator) Next(first dates.CalendarDate) (dates.CalendarDate, bool) {
	if !n.CanNext(first) {
		return first, false
	}
	next := first.StartOfMonth().AddMonths(n.offset())
	if !n.Boundary.End.IsZero() {
		if last := n.Boundary.End.StartOfMonth().AddMonths(1 - n.months()); next > last {
			next = last
		}
	}
	return next, true
}

// Previous returns the new first displayed month and true, or first and
// false if navigation is not possible. When paged the move is shortened
// so that no displayed month precedes the start of the boundary.
func (n Navigator) Previous(first dates.CalendarDate) (dates.CalendarDate, bool) {
	if !n.CanPrevious(first) {
		return first, false
	}
	prev := first.StartOfMonth().AddMonths(-n.offset())
	if start := n.Boundary.FirstDay(); !start.IsZero() && prev < start {
		prev = start
	}
	return prev, true
}

// Step moves in the specified direction, see Next and Previous.
func (n Navigator) Step(dir Direction, first dates.CalendarDate) (dates.CalendarDate, bool) {
	if dir == Previous {
		return n.Previous(first)
	}
	return n.Next(first)
}

// InitialMonth returns the first month to display, which is month if set,
// otherwise defaultMonth if set, otherwise today. The result is moved so
// that all displayed months fit before the end of the boundary and then
// so that the first is not before its start.
func (n Navigator) InitialMonth(month, defaultMonth, today dates.CalendarDate) dates.CalendarDate {
	initial := today
	switch {
	case !month.IsZero():
		initial = month
	case !defaultMonth.IsZero():
		initial = defaultMonth
	}
	initial = n.Boundary.Clamp(initial)
	if end := n.Boundary.End; !end.IsZero() && initial.MonthsUntil(end) < n.months()-1 {
		initial = n.Boundary.Clamp(end.StartOfMonth().AddMonths(1 - n.months()))
	}
	return initial
}

// YearOptions returns the years that may be chosen from a year dropdown.
// If the boundary has no start or end the range extends span years before
// or after the year of current.
func YearOptions(current dates.CalendarDate, boundary Boundary, span int) []int {
	from, to := current.Year()-span, current.Year()+span
	if !boundary.Start.IsZero() {
		from = boundary.Start.Year()
	}
	if !boundary.End.IsZero() {
		to = boundary.End.Year()
	}
	var years []int
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// MonthOptions returns the months of year that may be chosen from a
// month dropdown.
func MonthOptions(year int, boundary Boundary) []dates.Month {
	var months []dates.Month
	for m := dates.Month(1); m <= 12; m++ {
		if boundary.Contains(dates.NewCalendarDate(year, m, 1)) {
			months = append(months, m)
		}
	}
	return months
}
