// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package navigation_test

import (
	"slices"
	"testing"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/datepicker/navigation"
)

func ncd(y, m, d int) dates.CalendarDate {
	return dates.NewCalendarDate(y, dates.Month(m), d)
}

func TestStep(t *testing.T) {
	march := ncd(2026, 3, 1)
	boundary := navigation.Boundary{Start: ncd(2026, 3, 15), End: ncd(2026, 5, 2)}

	if navigation.CanNavigate(navigation.Previous, march, boundary) {
		t.Errorf("should not be able to navigate before the start month")
	}
	next, ok := navigation.Step(navigation.Previous, march, boundary)
	if ok || next != march {
		t.Errorf("got %v, %v, want %v, false", next, ok, march)
	}
	// Mid-month days within the start month are compared by month.
	next, ok = navigation.Step(navigation.Previous, ncd(2026, 4, 20), boundary)
	if !ok || next != march {
		t.Errorf("got %v, %v, want %v, true", next, ok, march)
	}
	for _, tc := range []struct {
		current dates.CalendarDate
		next    dates.CalendarDate
		ok      bool
	}{
		{march, ncd(2026, 4, 1), true},
		{ncd(2026, 4, 30), ncd(2026, 5, 1), true},
		{ncd(2026, 5, 31), ncd(2026, 5, 31), false},
	} {
		next, ok := navigation.Step(navigation.Next, tc.current, boundary)
		if next != tc.next || ok != tc.ok {
			t.Errorf("%v: got %v, %v, want %v, %v", tc.current, next, ok, tc.next, tc.ok)
		}
	}

	if got, want := navigation.Navigate(navigation.Next, ncd(2026, 1, 31)), ncd(2026, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := navigation.Navigate(navigation.Previous, ncd(2026, 1, 31)), ncd(2025, 12, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !navigation.CanNavigate(navigation.Previous, march, navigation.Boundary{}) {
		t.Errorf("an empty boundary should not limit navigation")
	}
}

func TestDirection(t *testing.T) {
	for _, tc := range []struct {
		input string
		dir   navigation.Direction
	}{
		{"prev", navigation.Previous},
		{"Previous", navigation.Previous},
		{"next", navigation.Next},
	} {
		d, err := navigation.ParseDirection(tc.input)
		if err != nil || d != tc.dir {
			t.Errorf("%v: got %v, %v, want %v", tc.input, d, err, tc.dir)
		}
	}
	if _, err := navigation.ParseDirection("up"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := navigation.Next.String(), "next"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNavigatorPaged(t *testing.T) {
	jan, mar, apr, may := ncd(2026, 1, 1), ncd(2026, 3, 1), ncd(2026, 4, 1), ncd(2026, 5, 1)
	n := navigation.Navigator{
		Boundary:       navigation.Boundary{Start: jan, End: ncd(2026, 6, 1)},
		NumberOfMonths: 2,
		Paged:          true,
	}
	for _, tc := range []struct {
		dir   navigation.Direction
		first dates.CalendarDate
		next  dates.CalendarDate
		ok    bool
	}{
		{navigation.Next, jan, mar, true},
		{navigation.Next, mar, may, true},
		{navigation.Next, apr, may, true},
		{navigation.Next, may, may, false},
		{navigation.Previous, may, mar, true},
		{navigation.Previous, ncd(2026, 2, 1), jan, true},
		{navigation.Previous, jan, jan, false},
	} {
		next, ok := n.Step(tc.dir, tc.first)
		if next != tc.next || ok != tc.ok {
			t.Errorf("%v %v: got %v, %v, want %v, %v", tc.dir, tc.first, next, ok, tc.next, tc.ok)
		}
	}
	if got, want := n.Months(ncd(2026, 12, 25)), []dates.CalendarDate{ncd(2026, 12, 1), ncd(2027, 1, 1)}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	unpaged := navigation.Navigator{NumberOfMonths: 3}
	if next, ok := unpaged.Next(jan); !ok || next != ncd(2026, 2, 1) {
		t.Errorf("got %v, %v", next, ok)
	}
	disabled := navigation.Navigator{Disabled: true}
	if _, ok := disabled.Next(jan); ok {
		t.Errorf("navigation should be disabled")
	}
	if _, ok := disabled.Previous(jan); ok {
		t.Errorf("navigation should be disabled")
	}
}

func TestInitialMonth(t *testing.T) {
	today := ncd(2026, 10, 18)
	n := navigation.Navigator{
		Boundary:       navigation.Boundary{Start: ncd(2026, 3, 1), End: ncd(2026, 6, 30)},
		NumberOfMonths: 2,
	}
	for _, tc := range []struct {
		month, defaultMonth dates.CalendarDate
		initial             dates.CalendarDate
	}{
		{0, 0, ncd(2026, 5, 1)},
		{0, ncd(2026, 1, 10), ncd(2026, 3, 1)},
		{ncd(2026, 4, 15), ncd(2026, 1, 10), ncd(2026, 4, 1)},
		{ncd(2026, 6, 15), 0, ncd(2026, 5, 1)},
	} {
		if got, want := n.InitialMonth(tc.month, tc.defaultMonth, today), tc.initial; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.month, tc.defaultMonth, got, want)
		}
	}
	if got, want := (navigation.Navigator{}).InitialMonth(0, 0, today), ncd(2026, 10, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	b := navigation.Boundary{Start: ncd(2026, 3, 15), End: ncd(2026, 6, 10)}
	for _, tc := range []struct {
		day, want dates.CalendarDate
	}{
		{ncd(2026, 1, 20), ncd(2026, 3, 1)},
		{ncd(2026, 3, 2), ncd(2026, 3, 1)},
		{ncd(2026, 4, 30), ncd(2026, 4, 1)},
		{ncd(2026, 6, 30), ncd(2026, 6, 1)},
		{ncd(2027, 2, 1), ncd(2026, 6, 1)},
	} {
		if got := b.Clamp(tc.day); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.day, got, tc.want)
		}
	}
	if got, want := (navigation.Boundary{}).Clamp(ncd(2026, 4, 30)), ncd(2026, 4, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// A boundary narrower than the displayed months starts at its first month.
	n := navigation.Navigator{
		Boundary:       navigation.Boundary{Start: ncd(2026, 3, 1), End: ncd(2026, 3, 31)},
		NumberOfMonths: 2,
	}
	if got, want := n.InitialMonth(ncd(2026, 8, 1), 0, 0), ncd(2026, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDropdownOptions(t *testing.T) {
	current := ncd(2026, 10, 18)
	if got, want := navigation.YearOptions(current, navigation.Boundary{}, 2), []int{2024, 2025, 2026, 2027, 2028}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	b := navigation.Boundary{Start: ncd(2025, 6, 1)}
	if got, want := navigation.YearOptions(current, b, 1), []int{2025, 2026, 2027}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	b = navigation.Boundary{Start: ncd(2026, 3, 10), End: ncd(2026, 5, 1)}
	if got, want := navigation.MonthOptions(2026, b), []dates.Month{3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := navigation.MonthOptions(2025, b); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestFocus(t *testing.T) {
	f := navigation.Focus{
		WeekStartsOn: time.Sunday,
		Bounds:       matcher.Bounds{Disabled: []matcher.Matcher{matcher.Weekends()}},
	}
	for _, tc := range []struct {
		day  dates.CalendarDate
		move navigation.Move
		dir  navigation.Direction
		next dates.CalendarDate
	}{
		{ncd(2026, 3, 13), navigation.MoveDay, navigation.Next, ncd(2026, 3, 16)},
		{ncd(2026, 3, 16), navigation.MoveDay, navigation.Previous, ncd(2026, 3, 13)},
		{ncd(2026, 3, 10), navigation.MoveWeek, navigation.Next, ncd(2026, 3, 17)},
		{ncd(2026, 3, 31), navigation.MoveMonth, navigation.Next, ncd(2026, 4, 30)},
		{ncd(2024, 2, 29), navigation.MoveYear, navigation.Next, ncd(2025, 2, 28)},
		{ncd(2026, 3, 11), navigation.MoveStartOfWeek, navigation.Previous, ncd(2026, 3, 9)},
		{ncd(2026, 3, 11), navigation.MoveEndOfWeek, navigation.Next, ncd(2026, 3, 13)},
	} {
		next, ok := f.Next(tc.day, tc.move, tc.dir)
		if !ok || next != tc.next {
			t.Errorf("%v %v %v: got %v, %v, want %v", tc.day, tc.move, tc.dir, next, ok, tc.next)
		}
	}

	bounded := navigation.Focus{Boundary: navigation.Boundary{End: ncd(2026, 3, 1)}}
	if next, ok := bounded.Next(ncd(2026, 3, 31), navigation.MoveDay, navigation.Next); ok || next != ncd(2026, 3, 31) {
		t.Errorf("got %v, %v", next, ok)
	}
	if next, ok := bounded.Next(ncd(2026, 3, 28), navigation.MoveWeek, navigation.Next); !ok || next != ncd(2026, 3, 31) {
		t.Errorf("got %v, %v", next, ok)
	}

	none := navigation.Focus{Bounds: matcher.Bounds{Disabled: []matcher.Matcher{matcher.Bool(true)}}}
	if next, ok := none.Next(ncd(2026, 3, 10), navigation.MoveDay, navigation.Next); ok || next != ncd(2026, 3, 10) {
		t.Errorf("got %v, %v", next, ok)
	}
}
