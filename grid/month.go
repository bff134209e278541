// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"time"

	"cloudeng.io/datepicker/dates"
)

// Options controls how a Month is laid out.
type Options struct {
	WeekStartsOn time.Weekday
	FixedWeeks   bool // Always display 6 weeks.
	ISOWeek      bool // Use ISO 8601 week numbers, implies weeks start on Monday.
}

// Week is a single row of a month grid.
type Week struct {
	Number int
	Cells  []Cell
}

// Month is the grid for a single month.
type Month struct {
	Month dates.CalendarDate // First day of the month.
	Weeks []Week
}

// Days returns all of the cells in the month in order.
func (m Month) Days() []Cell {
	cells := make([]Cell, 0, len(m.Weeks)*7)
	for _, w := range m.Weeks {
		cells = append(cells, w.Cells...)
	}
	return cells
}

// Month returns the grid for the month containing referenceMonth.
func (o Options) Month(referenceMonth dates.CalendarDate) Month {
	wso := o.WeekStartsOn
	if o.ISOWeek {
		wso = time.Monday
	}
	var cells []Cell
	if o.FixedWeeks {
		cells = BuildFixed(referenceMonth, wso)
	} else {
		cells = Build(referenceMonth, wso)
	}
	rows := WeekRows(cells)
	m := Month{
		Month: referenceMonth.StartOfMonth(),
		Weeks: make([]Week, len(rows)),
	}
	for i, row := range rows {
		m.Weeks[i] = Week{
			Number: WeekNumber(row[0].Day, wso, o.ISOWeek),
			Cells:  row,
		}
	}
	return m
}

// Months returns the grids for n consecutive months starting with the
// month containing referenceMonth.
func (o Options) Months(referenceMonth dates.CalendarDate, n int) []Month {
	n = max(n, 1)
	months := make([]Month, n)
	for i := range months {
		months[i] = o.Month(referenceMonth.StartOfMonth().AddMonths(i))
	}
	return months
}
