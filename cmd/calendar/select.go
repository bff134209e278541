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
	"cloudeng.io/datepicker/presets"
	"cloudeng.io/datepicker/pricing"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/errors"
)

func selectDays(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*selectFlags)
	ctx, s, err := newSession(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.Close()
	if len(fv.Mode) > 0 {
		if s.config.Selection.Mode, err = selection.ParseMode(fv.Mode); err != nil {
			return err
		}
	}
	if fv.Min > 0 {
		s.config.Selection.Min = fv.Min
	}
	if fv.Max > 0 {
		s.config.Selection.Max = fv.Max
	}
	if fv.Required {
		s.config.Selection.Required = true
	}
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	p, pc, err := s.picker(ctx, days[0])
	if err != nil {
		return err
	}
	return replay(ctx, os.Stdout, p, pc.Pricing, days)
}

func parseDays(args []string) ([]dates.CalendarDate, error) {
	errs := &errors.M{}
	days := make([]dates.CalendarDate, 0, len(args))
	for _, arg := range args {
		day, err := dates.ParseFlexible(arg)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		days = append(days, day)
	}
	return days, errs.Err()
}

// replay clicks on each of days in turn and then writes the resulting
// selection, its total price if the calendar is priced and the matching
// preset, if any, for a range selection.
func replay(ctx context.Context, out io.Writer, p *picker.Picker, tbl *pricing.Table, days []dates.CalendarDate) error {
	f := p.Formatter()
	for _, day := range days {
		status := "accepted"
		if !p.Click(ctx, day) {
			status = "refused"
		}
		fmt.Fprintf(out, "%v: %v\n", f.Date(day), status)
	}
	sel := p.Selection()
	if sel.IsEmpty() {
		fmt.Fprintf(out, "%v: nothing selected\n", p.Mode())
		return nil
	}
	fmt.Fprintf(out, "%v: %v\n", p.Mode(), describe(sel, f.Date))
	rv, ok := sel.(selection.RangeValue)
	if !ok {
		return nil
	}
	if tbl != nil {
		total, unpriced := tbl.Total(rv.Range)
		fmt.Fprintf(out, "total: %v for %v days\n", f.Price(total, tbl.Currency), f.Number(max(rv.Len(), 1)))
		if len(unpriced) > 0 {
			return fmt.Errorf("no price for: %v", dates.CalendarDateList(unpriced))
		}
	}
	if preset, ok := presets.Defaults(p.Settings().Weekday()).Active(rv.Range, p.Today()); ok {
		fmt.Fprintf(out, "preset: %v\n", preset.Name())
	}
	return nil
}

func describe(v selection.Value, date func(dates.CalendarDate) string) string {
	switch sel := v.(type) {
	case selection.SingleValue:
		return date(sel.Day)
	case selection.RangeValue:
		r := sel.Range.Normalize()
		if !r.IsComplete() {
			return date(r.From) + " - ..."
		}
		return date(r.From) + " - " + date(r.To)
	case selection.MultipleValue:
		names := make([]string, 0, len(sel))
		for _, d := range sel.Sorted() {
			names = append(names, date(d))
		}
		return strings.Join(names, "; ")
	}
	return v.String()
}
