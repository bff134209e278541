// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/format"
	"cloudeng.io/datepicker/presets"
	"cloudeng.io/datepicker/selection"
)

func listPresets(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*presetsFlags)
	ctx, s, err := newSession(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.Close()
	p, _, err := s.picker(ctx, 0)
	if err != nil {
		return err
	}
	writePresets(os.Stdout, p.Formatter(), presets.Defaults(p.Settings().Weekday()), p.Today())
	return nil
}

func writePresets(out io.Writer, f *format.Formatter, list presets.List, today dates.CalendarDate) {
	for i, r := range list.Evaluate(today) {
		fmt.Fprintf(out, "%-14s %v - %v\n", list[i].Name(), f.Date(r.From), f.Date(r.To))
	}
}

func slots(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*slotsFlags)
	ctx, s, err := newSession(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.config.Appointments == nil {
		return fmt.Errorf("no appointment schedule is configured")
	}
	day, err := dates.ParseFlexible(args[0])
	if err != nil {
		return err
	}
	s.config.Selection = selection.Config{Mode: selection.ModeSingle}
	p, _, err := s.picker(ctx, day)
	if err != nil {
		return err
	}
	f := p.Formatter()
	if !p.Click(ctx, day) {
		return fmt.Errorf("%v: no appointments are available", f.Date(day))
	}
	fmt.Printf("%v\n", f.Date(day))
	for _, slot := range p.Slots() {
		status := "booked"
		if slot.Available {
			status = "available"
		}
		fmt.Printf("  %8s %v\n", f.Time(slot.Time), status)
	}
	return nil
}
