// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/picker"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

func month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	ctx, s, err := newSession(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.Close()
	var ym dates.CalendarDate
	if len(args) == 1 {
		if ym, err = dates.ParseYearMonth(args[0]); err != nil {
			return err
		}
	}
	if fv.Months > 0 {
		s.config.Theme.NumberOfMonths = fv.Months
	}
	if fv.FixedWeeks {
		s.config.Theme.FixedWeeks = &fv.FixedWeeks
	}
	if fv.WeekNumbers {
		s.config.Theme.ShowWeekNumber = &fv.WeekNumbers
	}
	p, pc, err := s.picker(ctx, ym)
	if err != nil {
		return err
	}
	if fv.JSON {
		return writeJSON(os.Stdout, p.Months())
	}
	var price func(float64) string
	if tbl := pc.Pricing; tbl != nil {
		price = func(v float64) string { return p.Formatter().Price(v, tbl.Currency) }
	}
	render(os.Stdout, p.Months(), price)
	return nil
}

func writeJSON(out io.Writer, months []picker.MonthView) error {
	return json.MarshalWrite(out, months, jsontext.WithIndent("  "))
}

// cellWidth is the width of a single day, including its marker.
const cellWidth = 4

// marker returns the single character annotation for a day.
func marker(ds picker.DayState) string {
	switch {
	case ds.Selected:
		return "*"
	case ds.Disabled:
		return "-"
	case ds.Today:
		return "<"
	case len(ds.Modifiers) > 0:
		return "+"
	}
	return " "
}

func weekdayHeader(labels []string) string {
	var out strings.Builder
	for _, l := range labels {
		r := []rune(l)
		if len(r) > cellWidth-1 {
			r = r[:cellWidth-1]
		}
		fmt.Fprintf(&out, "%*s ", cellWidth-1, string(r))
	}
	return strings.TrimRight(out.String(), " ")
}

// lowest returns the lowest price in m and the days of the month that
// have it.
func lowest(m picker.MonthView) (float64, []string) {
	var p float64
	var days []string
	for _, w := range m.Weeks {
		for _, ds := range w.Days {
			if ds.Lowest {
				p = ds.Price
				days = append(days, ds.Label)
			}
		}
	}
	return p, days
}

// render writes each month as a text grid. Selected days are marked
// with '*', disabled days with '-', today with '<' and days with a
// modifier with '+'. If price is non-nil the lowest price in each
// month is written after its grid.
func render(out io.Writer, months []picker.MonthView, price func(float64) string) {
	for i, m := range months {
		if i > 0 {
			fmt.Fprintln(out)
		}
		numbers := len(m.Weeks) > 0 && m.Weeks[0].Number > 0
		prefix := ""
		if numbers {
			prefix = "    "
		}
		fmt.Fprintf(out, "%s%s\n", prefix, m.Caption)
		fmt.Fprintf(out, "%s%s\n", prefix, weekdayHeader(m.Weekdays))
		for _, w := range m.Weeks {
			var line strings.Builder
			if numbers {
				fmt.Fprintf(&line, "%2d  ", w.Number)
			}
			for _, ds := range w.Days {
				if ds.Hidden {
					line.WriteString(strings.Repeat(" ", cellWidth))
					continue
				}
				fmt.Fprintf(&line, "%*s%s", cellWidth-1, ds.Label, marker(ds))
			}
			fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
		}
		if price == nil {
			continue
		}
		if p, days := lowest(m); len(days) > 0 {
			fmt.Fprintf(out, "%slowest: %v on %v\n", prefix, price(p), strings.Join(days, ", "))
		}
	}
}
