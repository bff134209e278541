// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid builds the week aligned grid of days displayed for a month.
package grid

import (
	"time"

	"cloudeng.io/datepicker/dates"
)

// Cell is a single day in a month grid. Outside is true for days that
// belong to the previous or next month.
type Cell struct {
	Day     dates.CalendarDate
	Outside bool
}

// Build returns the cells for the month containing referenceMonth, the
// day of month is ignored. The first cell is the first day of the week,
// as determined by weekStartsOn, containing the first day of the month
// and the last cell is the last day of the week containing the last day
// of the month. The number of cells is always a multiple of 7.
// Values of weekStartsOn outside 0-6 are reduced modulo 7.
func Build(referenceMonth dates.CalendarDate, weekStartsOn time.Weekday) []Cell {
	weekStartsOn = normalizeWeekday(weekStartsOn)
	first := referenceMonth.StartOfMonth()
	last := referenceMonth.EndOfMonth()
	start := first.StartOfWeek(weekStartsOn)
	end := last.EndOfWeek(weekStartsOn)
	return cells(first, start, start.DaysUntil(end)+1)
}

// BuildFixed is like Build except that the grid always contains 6 weeks,
// padded with days from the following month.
func BuildFixed(referenceMonth dates.CalendarDate, weekStartsOn time.Weekday) []Cell {
	weekStartsOn = normalizeWeekday(weekStartsOn)
	first := referenceMonth.StartOfMonth()
	start := first.StartOfWeek(weekStartsOn)
	return cells(first, start, 6*7)
}

func cells(first, start dates.CalendarDate, n int) []Cell {
	cl := make([]Cell, n)
	day := start
	for i := range cl {
		cl[i] = Cell{Day: day, Outside: !day.SameMonth(first)}
		day = day.AddDays(1)
	}
	return cl
}

func normalizeWeekday(wd time.Weekday) time.Weekday {
	return time.Weekday((int(wd)%7 + 7) % 7)
}

// WeekRows chunks cells into rows of 7, preserving order. A trailing
// partial row is returned as is.
func WeekRows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for i := 0; i < len(cells); i += 7 {
		rows = append(rows, cells[i:min(i+7, len(cells))])
	}
	return rows
}

// WeekNumber returns the week number of day. When iso is true the
// ISO 8601 week number is returned (weeks start on Monday and week 1
// contains the first Thursday of the year), otherwise week 1 is the week,
// starting on weekStartsOn, that contains Jan 1.
func WeekNumber(day dates.CalendarDate, weekStartsOn time.Weekday, iso bool) int {
	if iso {
		_, week := day.Time(time.UTC).ISOWeek()
		return week
	}
	weekStartsOn = normalizeWeekday(weekStartsOn)
	firstWeek := day.StartOfYear().StartOfWeek(weekStartsOn)
	next := day.AddYears(1).StartOfYear().StartOfWeek(weekStartsOn)
	if day >= next {
		// the week containing Jan 1 of next year is week 1.
		return 1
	}
	return firstWeek.DaysUntil(day)/7 + 1
}
