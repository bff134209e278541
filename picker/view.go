// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/format"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/pricing"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/theme"
)

// DayState is the state of a single day cell.
type DayState struct {
	Day     dates.CalendarDate `json:"day"`
	Label   string             `json:"label"`            // Day of month in the configured locale.
	Outside bool               `json:"outside,omitzero"` // Belongs to the previous or next month.
	Hidden  bool               `json:"hidden,omitzero"`  // Outside and outside days are not shown.

	Disabled bool `json:"disabled,omitzero"`
	Selected bool `json:"selected,omitzero"`
	Today    bool `json:"today,omitzero"`

	// Set for days within a range selection. A range with only one
	// bound has RangeStart and RangeEnd set for that day.
	RangeStart  bool `json:"range_start,omitzero"`
	RangeMiddle bool `json:"range_middle,omitzero"`
	RangeEnd    bool `json:"range_end,omitzero"`

	Modifiers []string `json:"modifiers,omitempty"`

	Price  float64 `json:"price,omitzero"`
	Priced bool    `json:"priced,omitzero"`
	Lowest bool    `json:"lowest,omitzero"`
}

// WeekView is a single row of a MonthView.
type WeekView struct {
	Number int        `json:"number,omitzero"` // Zero unless week numbers are shown.
	Days   []DayState `json:"days"`
}

// MonthView is a single displayed month.
type MonthView struct {
	Month    dates.CalendarDate `json:"month"`
	Caption  string             `json:"caption"`
	Weekdays []string           `json:"weekdays"`
	Weeks    []WeekView         `json:"weeks"`
}

func (p *Picker) weekStartsOn() time.Weekday {
	if p.grid.ISOWeek {
		return time.Monday
	}
	return p.grid.WeekStartsOn
}

// Months returns the displayed months.
func (p *Picker) Months() []MonthView {
	weekdays := p.formatter.WeekdayLabels(p.weekStartsOn(), format.Short)
	showOutside := theme.Bool(p.settings.ShowOutsideDays)
	showNumbers := theme.Bool(p.settings.ShowWeekNumber)
	gms := p.grid.Months(p.month, p.navigator.NumberOfMonths)
	views := make([]MonthView, len(gms))
	for i, gm := range gms {
		var prices []pricing.CellPrice
		if p.pricing != nil {
			prices = p.pricing.Overlay(gm.Days())
		}
		mv := MonthView{
			Month:    gm.Month,
			Caption:  p.formatter.Caption(gm.Month),
			Weekdays: weekdays,
			Weeks:    make([]WeekView, len(gm.Weeks)),
		}
		for w, week := range gm.Weeks {
			wv := WeekView{Days: make([]DayState, len(week.Cells))}
			if showNumbers {
				wv.Number = week.Number
			}
			for d, cell := range week.Cells {
				ds := p.DayState(cell)
				ds.Hidden = cell.Outside && !showOutside
				if prices != nil {
					cp := prices[w*7+d]
					ds.Price, ds.Priced, ds.Lowest = cp.Price, cp.Priced, cp.Lowest
				}
				wv.Days[d] = ds
			}
			mv.Weeks[w] = wv
		}
		views[i] = mv
	}
	return views
}

// DayState returns the state of the specified cell, prices are only
// filled in by Months since the lowest price depends on the whole month.
func (p *Picker) DayState(cell grid.Cell) DayState {
	day := cell.Day
	ds := DayState{
		Day:       day,
		Label:     p.formatter.Day(day),
		Outside:   cell.Outside,
		Disabled:  p.IsDisabled(day),
		Selected:  p.selected.Contains(day),
		Today:     day == p.today,
		Modifiers: p.modifiers.Evaluate(day),
	}
	if rv, ok := p.selected.(selection.RangeValue); ok && !rv.IsEmpty() {
		r := rv.Range.Normalize()
		switch {
		case !r.IsComplete():
			ds.RangeStart = day == r.From || day == r.To
			ds.RangeEnd = ds.RangeStart
		default:
			ds.RangeStart = day == r.From
			ds.RangeEnd = day == r.To
			ds.RangeMiddle = day > r.From && day < r.To
		}
	}
	return ds
}
