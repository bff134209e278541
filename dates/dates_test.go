// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates_test

import (
	"slices"
	"testing"
	"time"

	"cloudeng.io/datepicker/dates"
)

func ncd(y, m, d int) dates.CalendarDate {
	return dates.NewCalendarDate(y, dates.Month(m), d)
}

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month dates.Month
	}{
		{"1", 1},
		{"01", 1},
		{"12", 12},
		{"Jan", 1},
		{"FEB", 2},
		{"septem", 9},
		{"december", 12},
	} {
		var m dates.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, tc := range []string{"", "0", "13", "ja", "foo"} {
		var m dates.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	cd := ncd(2024, 2, 29)
	if got, want := cd.Year(), 2024; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Month(), dates.Month(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Day(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.String(), "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Weekday(), time.Thursday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Out of range values are normalized.
	for _, tc := range []struct {
		got, want dates.CalendarDate
	}{
		{ncd(2023, 2, 29), ncd(2023, 3, 1)},
		{ncd(2024, 1, 32), ncd(2024, 2, 1)},
		{ncd(2024, 3, 0), ncd(2024, 2, 29)},
		{ncd(2024, 13, 1), ncd(2025, 1, 1)},
	} {
		if tc.got != tc.want {
			t.Errorf("got %v, want %v", tc.got, tc.want)
		}
	}

	if !(ncd(2024, 1, 31) < ncd(2024, 2, 1)) || !(ncd(2023, 12, 31) < ncd(2024, 1, 1)) {
		t.Errorf("dates do not order correctly")
	}
	var zero dates.CalendarDate
	if !zero.IsZero() || cd.IsZero() {
		t.Errorf("IsZero is incorrect")
	}
}

func TestFromTime(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("no tz database")
	}
	// 23:30 UTC on the 1st is the 2nd in Tokyo.
	utc := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	if got, want := dates.CalendarDateFromTime(utc), ncd(2026, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dates.CalendarDateFromTime(utc.In(tokyo)), ncd(2026, 3, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2026, 3, 2).Time(tokyo), time.Date(2026, 3, 2, 0, 0, 0, 0, tokyo); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArithmetic(t *testing.T) {
	for i, tc := range []struct {
		got, want dates.CalendarDate
	}{
		{ncd(2024, 2, 28).AddDays(1), ncd(2024, 2, 29)},
		{ncd(2023, 2, 28).AddDays(1), ncd(2023, 3, 1)},
		{ncd(2024, 1, 1).AddDays(-1), ncd(2023, 12, 31)},
		{ncd(2024, 1, 31).AddMonths(1), ncd(2024, 2, 29)},
		{ncd(2023, 1, 31).AddMonths(1), ncd(2023, 2, 28)},
		{ncd(2024, 3, 31).AddMonths(-1), ncd(2024, 2, 29)},
		{ncd(2024, 1, 15).AddMonths(-1), ncd(2023, 12, 15)},
		{ncd(2024, 11, 15).AddMonths(14), ncd(2026, 1, 15)},
		{ncd(2024, 2, 29).AddYears(1), ncd(2025, 2, 28)},
		{ncd(2024, 2, 10).StartOfMonth(), ncd(2024, 2, 1)},
		{ncd(2024, 2, 10).EndOfMonth(), ncd(2024, 2, 29)},
		// 2026-03-04 is a Wednesday.
		{ncd(2026, 3, 4).StartOfWeek(time.Sunday), ncd(2026, 3, 1)},
		{ncd(2026, 3, 4).StartOfWeek(time.Monday), ncd(2026, 3, 2)},
		{ncd(2026, 3, 1).StartOfWeek(time.Monday), ncd(2026, 2, 23)},
		{ncd(2026, 3, 4).EndOfWeek(time.Sunday), ncd(2026, 3, 7)},
		{ncd(2026, 3, 4).EndOfWeek(time.Monday), ncd(2026, 3, 8)},
	} {
		if tc.got != tc.want {
			t.Errorf("%v: got %v, want %v", i, tc.got, tc.want)
		}
	}

	if got, want := ncd(2024, 1, 1).DaysUntil(ncd(2025, 1, 1)), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2024, 3, 10).DaysUntil(ncd(2024, 3, 1)), -9; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2024, 11, 30).MonthsUntil(ncd(2025, 2, 1)), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !ncd(2024, 2, 1).SameMonth(ncd(2024, 2, 29)) || ncd(2024, 2, 1).SameMonth(ncd(2025, 2, 1)) {
		t.Errorf("SameMonth is incorrect")
	}
}

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		input string
		cd    dates.CalendarDate
	}{
		{"2024-01-01", ncd(2024, 1, 1)},
		{"2024-02-29", ncd(2024, 2, 29)},
		{"02/29/2024", ncd(2024, 2, 29)},
		{"2/3/2023", ncd(2023, 2, 3)},
		{"Jan-01-2024", ncd(2024, 1, 1)},
		{"feb-28-2023", ncd(2023, 2, 28)},
	} {
		cd, err := dates.ParseCalendarDate(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
		var rt dates.CalendarDate
		if err := rt.UnmarshalText([]byte(cd.String())); err != nil || rt != cd {
			t.Errorf("%v: round trip failed: %v: %v", tc.input, rt, err)
		}
	}

	for _, tc := range []string{
		"",
		"2023-02-29",
		"Feb-29-2023",
		"02-03",
		"Jan/03",
		"24-01-01",
		"2024-13-01",
	} {
		if _, err := dates.ParseCalendarDate(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	for _, tc := range []struct {
		input string
		cd    dates.CalendarDate
	}{
		{"2026-03", ncd(2026, 3, 1)},
		{"03/2026", ncd(2026, 3, 1)},
		{"Mar-2026", ncd(2026, 3, 1)},
		{"december-1999", ncd(1999, 12, 1)},
	} {
		cd, err := dates.ParseYearMonth(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
	}
	for _, tc := range []string{"2026", "2026-13", "x-2026", "2026-03-01"} {
		if _, err := dates.ParseYearMonth(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
}

func TestParseFlexible(t *testing.T) {
	for _, tc := range []struct {
		input string
		cd    dates.CalendarDate
	}{
		{"2026-03-03", ncd(2026, 3, 3)},
		{"March 3, 2026", ncd(2026, 3, 3)},
		{"2026-03-03T22:15:00Z", ncd(2026, 3, 3)},
	} {
		cd, err := dates.ParseFlexible(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
	}
	if _, err := dates.ParseFlexible("not a date"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCalendarDateList(t *testing.T) {
	var l dates.CalendarDateList
	if err := l.Parse("2026-01-01,2026-01-05"); err != nil {
		t.Fatal(err)
	}
	if got, want := l, (dates.CalendarDateList{ncd(2026, 1, 1), ncd(2026, 1, 5)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !l.Contains(ncd(2026, 1, 5)) || l.Contains(ncd(2026, 1, 2)) {
		t.Errorf("Contains is incorrect")
	}
	if got, want := l.String(), "2026-01-01, 2026-01-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRange(t *testing.T) {
	r := dates.NewRange(ncd(2026, 3, 10), ncd(2026, 3, 1))
	if got, want := r.From, ncd(2026, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Len(), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !r.Contains(ncd(2026, 3, 1)) || !r.Contains(ncd(2026, 3, 10)) || r.Contains(ncd(2026, 3, 11)) {
		t.Errorf("Contains is incorrect")
	}
	var days []dates.CalendarDate
	for d := range (dates.Range{From: ncd(2024, 2, 28), To: ncd(2024, 3, 1)}).Days() {
		days = append(days, d)
	}
	if got, want := days, []dates.CalendarDate{ncd(2024, 2, 28), ncd(2024, 2, 29), ncd(2024, 3, 1)}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	open := dates.Range{From: ncd(2026, 3, 1)}
	if open.IsComplete() || open.Len() != 0 || !open.Contains(ncd(2026, 3, 1)) || open.Contains(ncd(2026, 3, 2)) {
		t.Errorf("open range is incorrect")
	}

	var pr dates.Range
	if err := pr.Parse("2026-03-05:2026-03-01"); err != nil {
		t.Fatal(err)
	}
	if got, want := pr, (dates.Range{From: ncd(2026, 3, 1), To: ncd(2026, 3, 5)}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := pr.Parse("2026-03-05:"); err != nil || pr.To != 0 {
		t.Errorf("unexpected: %v: %v", pr, err)
	}
	if err := pr.Parse("2026-03-05"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestTimeOfDay(t *testing.T) {
	for _, tc := range []struct {
		val string
		tod dates.TimeOfDay
	}{
		{"08", dates.NewTimeOfDay(8, 0, 0)},
		{"08:30", dates.NewTimeOfDay(8, 30, 0)},
		{"08:30:15", dates.NewTimeOfDay(8, 30, 15)},
		{"8am", dates.NewTimeOfDay(8, 0, 0)},
		{"12am", dates.NewTimeOfDay(0, 0, 0)},
		{"12pm", dates.NewTimeOfDay(12, 0, 0)},
		{"1:15 PM", dates.NewTimeOfDay(13, 15, 0)},
	} {
		var tod dates.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := tod, tc.tod; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, tc := range []string{"", "24", "13pm", "08:60", "a:b"} {
		var tod dates.TimeOfDay
		if err := tod.Parse(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}

	tod := dates.NewTimeOfDay(23, 30, 0)
	if got, want := tod.Add(time.Hour), dates.NewTimeOfDay(23, 59, 59); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(-time.Hour), dates.NewTimeOfDay(22, 30, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Duration(), 23*time.Hour+30*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var tl dates.TimeOfDayList
	if err := tl.Parse("14:00,09:00"); err != nil {
		t.Fatal(err)
	}
	if got, want := tl, (dates.TimeOfDayList{dates.NewTimeOfDay(9, 0, 0), dates.NewTimeOfDay(14, 0, 0)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	when := dates.Combine(ncd(2026, 3, 2), dates.NewTimeOfDay(9, 15, 0), time.UTC)
	if got, want := when, time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
