// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package navigation

import (
	"fmt"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
)

// Move is the unit of a keyboard focus move.
type Move int

const (
	MoveDay Move = iota
	MoveWeek
	MoveMonth
	MoveYear
	MoveStartOfWeek
	MoveEndOfWeek
)

var moveNames = []string{"day", "week", "month", "year", "start-of-week", "end-of-week"}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// maxFocusAttempts limits the search for an enabled day.
const maxFocusAttempts = 365

// Focus computes keyboard focus movement between days. Days outside of
// the Boundary are never focused and days disabled by Bounds are skipped.
type Focus struct {
	WeekStartsOn time.Weekday
	Boundary     Boundary
	Bounds       matcher.Bounds
}

func (f Focus) clamp(day dates.CalendarDate) dates.CalendarDate {
	if first := f.Boundary.FirstDay(); !first.IsZero() && day < first {
		return first
	}
	if last := f.Boundary.LastDay(); !last.IsZero() && day > last {
		return last
	}
	return day
}

func (f Focus) target(day dates.CalendarDate, move Move, dir Direction) dates.CalendarDate {
	n := dir.sign()
	switch move {
	case MoveWeek:
		return day.AddDays(7 * n)
	case MoveMonth:
		return day.AddMonths(n)
	case MoveYear:
		return day.AddYears(n)
	case MoveStartOfWeek:
		return day.StartOfWeek(f.WeekStartsOn)
	case MoveEndOfWeek:
		return day.EndOfWeek(f.WeekStartsOn)
	}
	return day.AddDays(n)
}

// Next returns the day that focus moves to from day and true, or day and
// false if no enabled day can be found. For the start and end of week
// moves the direction is ignored and the nearest enabled day within the
// week is chosen.
func (f Focus) Next(day dates.CalendarDate, move Move, dir Direction) (dates.CalendarDate, bool) {
	switch move {
	case MoveStartOfWeek:
		return f.withinWeek(day, f.clamp(day.StartOfWeek(f.WeekStartsOn)), 1)
	case MoveEndOfWeek:
		return f.withinWeek(day, f.clamp(day.EndOfWeek(f.WeekStartsOn)), -1)
	}
	current := day
	for range maxFocusAttempts {
		next := f.clamp(f.target(current, move, dir))
		if next == current {
			// Pinned against the boundary.
			return day, false
		}
		if !f.Bounds.IsDisabled(next) {
			return next, true
		}
		current = next
	}
	return day, false
}

func (f Focus) withinWeek(day, candidate dates.CalendarDate, step int) (dates.CalendarDate, bool) {
	for range 7 {
		if !f.Bounds.IsDisabled(candidate) {
			return candidate, true
		}
		if candidate == day {
			break
		}
		candidate = candidate.AddDays(step)
	}
	return day, false
}
