// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides the state of a date picker: the displayed
// months, the current selection and the per day state needed to render
// each day cell. It composes the grid, matcher, selection, navigation
// and format packages. Clicks are routed through the disabled day
// matchers and then the selection mode.
package picker

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/datepicker/appointment"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/format"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/datepicker/navigation"
	"cloudeng.io/datepicker/pricing"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/theme"
	"cloudeng.io/logging/ctxlog"
)

// Config represents the configuration of a Picker.
type Config struct {
	// Settings are merged over Shared and then the theme defaults.
	Settings theme.Settings
	Shared   *theme.Settings

	Selection         selection.Config
	Boundary          navigation.Boundary
	Paged             bool
	DisableNavigation bool

	Bounds       matcher.Bounds
	Modifiers    matcher.Modifiers
	Pricing      *pricing.Table
	Appointments *appointment.Picker

	// Month is the month to display, DefaultMonth is used if Month is
	// not set and the current month if neither is set.
	Month        dates.CalendarDate
	DefaultMonth dates.CalendarDate
	// Today overrides the current day, which is otherwise obtained from
	// Now, or time.Now, in the configured time zone.
	Today dates.CalendarDate
	Now   func() time.Time
	// Selected is the initial selection and must be for the configured mode.
	Selected selection.Value
}

// FromConfig creates a Config from a YAML configuration.
func FromConfig(cfg *theme.Config, shared *theme.Settings) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	bounds, err := cfg.Bounds()
	if err != nil {
		return Config{}, err
	}
	mods, err := cfg.ModifierMatchers()
	if err != nil {
		return Config{}, err
	}
	tbl, err := cfg.PricingTable()
	if err != nil {
		return Config{}, err
	}
	appts, err := cfg.AppointmentPicker(bounds)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Settings:     cfg.Theme,
		Shared:       shared,
		Selection:    cfg.Selection,
		Boundary:     cfg.Boundary,
		Paged:        cfg.Paged,
		Bounds:       bounds,
		Modifiers:    mods,
		Pricing:      tbl,
		Appointments: appts,
	}, nil
}

// Picker represents the state of a date picker. It is not safe for
// concurrent use.
type Picker struct {
	settings     theme.Settings
	formatter    *format.Formatter
	selector     selection.Selector
	navigator    navigation.Navigator
	grid         grid.Options
	bounds       matcher.Bounds
	modifiers    matcher.Modifiers
	pricing      *pricing.Table
	appointments *appointment.Picker
	today        dates.CalendarDate
	month        dates.CalendarDate
	selected     selection.Value
}

// New creates a new Picker.
func New(ctx context.Context, cfg Config) (*Picker, error) {
	settings := theme.Resolve(cfg.Settings, cfg.Shared)
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	selector, err := cfg.Selection.Selector()
	if err != nil {
		return nil, err
	}
	p := &Picker{
		settings: settings,
		formatter: format.New(ctx, format.Options{
			Locale:   settings.Locale,
			TimeZone: settings.TimeZone,
			Hour12:   theme.Bool(settings.Hour12),
		}),
		selector: selector,
		navigator: navigation.Navigator{
			Boundary:       cfg.Boundary,
			NumberOfMonths: settings.NumberOfMonths,
			Paged:          cfg.Paged,
			Disabled:       cfg.DisableNavigation,
		},
		grid: grid.Options{
			WeekStartsOn: settings.Weekday(),
			FixedWeeks:   theme.Bool(settings.FixedWeeks),
			ISOWeek:      theme.Bool(settings.ISOWeek),
		},
		bounds:       cfg.Bounds,
		modifiers:    cfg.Modifiers,
		pricing:      cfg.Pricing,
		appointments: cfg.Appointments,
		today:        cfg.Today,
		selected:     selector.Empty(),
	}
	if p.appointments != nil {
		p.bounds = p.bounds.With(p.appointments.Matcher())
	}
	if p.today.IsZero() {
		now := time.Now
		if cfg.Now != nil {
			now = cfg.Now
		}
		p.today = p.formatter.Today(now())
	}
	if cfg.Selected != nil {
		if err := p.SetSelection(cfg.Selected); err != nil {
			return nil, err
		}
	}
	p.month = p.navigator.InitialMonth(cfg.Month, cfg.DefaultMonth, p.today)
	ctxlog.Logger(ctx).Debug("date picker created",
		"mode", selector.Mode(),
		"month", p.month,
		"today", p.today,
		"locale", p.formatter.Locale(),
		"months", p.navigator.NumberOfMonths)
	return p, nil
}

// Settings returns the resolved settings.
func (p *Picker) Settings() theme.Settings {
	return p.settings
}

// Formatter returns the formatter used for captions and labels.
func (p *Picker) Formatter() *format.Formatter {
	return p.formatter
}

// Today returns the current day.
func (p *Picker) Today() dates.CalendarDate {
	return p.today
}

// Month returns the first displayed month.
func (p *Picker) Month() dates.CalendarDate {
	return p.month
}

// Mode returns the selection mode.
func (p *Picker) Mode() selection.Mode {
	return p.selector.Mode()
}

// Selection returns the current selection.
func (p *Picker) Selection() selection.Value {
	return p.selected
}

// SetSelection replaces the current selection, the value must be for
// the picker's selection mode.
func (p *Picker) SetSelection(v selection.Value) error {
	if v == nil {
		p.selected = p.selector.Empty()
		return nil
	}
	if v.Mode() != p.selector.Mode() {
		return fmt.Errorf("selection is for mode %v, not %v", v.Mode(), p.selector.Mode())
	}
	p.selected = v
	return nil
}

// IsDisabled returns true if day cannot be clicked, either because it
// is disabled by the configured constraints or by the selection mode.
func (p *Picker) IsDisabled(day dates.CalendarDate) bool {
	return p.bounds.IsDisabled(day) || p.selector.Disabled(p.selected, day)
}

// Click applies a click on day to the current selection and returns
// true if the click was accepted.
func (p *Picker) Click(ctx context.Context, day dates.CalendarDate) bool {
	logger := ctxlog.Logger(ctx)
	if p.IsDisabled(day) {
		logger.Debug("click ignored", "day", day, "reason", "disabled")
		return false
	}
	next, ok := p.selector.Select(p.selected, day, p.bounds)
	if !ok {
		logger.Debug("click ignored", "day", day, "reason", "refused", "mode", p.selector.Mode())
		return false
	}
	p.selected = next
	logger.Debug("click accepted", "day", day, "selection", next.String())
	return true
}

// CanNext returns true if navigation to later months is possible.
func (p *Picker) CanNext() bool {
	return p.navigator.CanNext(p.month)
}

// CanPrevious returns true if navigation to earlier months is possible.
func (p *Picker) CanPrevious() bool {
	return p.navigator.CanPrevious(p.month)
}

// Next navigates forward and returns true if the displayed month changed.
func (p *Picker) Next() bool {
	var ok bool
	p.month, ok = p.navigator.Next(p.month)
	return ok
}

// Previous navigates backward and returns true if the displayed month
// changed.
func (p *Picker) Previous() bool {
	var ok bool
	p.month, ok = p.navigator.Previous(p.month)
	return ok
}

// GoTo displays the month containing day, adjusted so that all displayed
// months lie within the navigation boundary.
func (p *Picker) GoTo(day dates.CalendarDate) {
	p.month = p.navigator.InitialMonth(day, 0, p.today)
}

// Focus returns the day that keyboard focus moves to from day, making
// sure that the month containing it is displayed. Days that IsDisabled
// reports as disabled are skipped.
func (p *Picker) Focus(day dates.CalendarDate, move navigation.Move, dir navigation.Direction) (dates.CalendarDate, bool) {
	bySelection := matcher.Func(func(d dates.CalendarDate) bool {
		return p.selector.Disabled(p.selected, d)
	})
	f := navigation.Focus{
		WeekStartsOn: p.weekStartsOn(),
		Boundary:     p.navigator.Boundary,
		Bounds:       p.bounds.With(bySelection),
	}
	next, ok := f.Next(day, move, dir)
	if !ok {
		return day, false
	}
	months := p.navigator.Months(p.month)
	if next < months[0] || next > months[len(months)-1].EndOfMonth() {
		p.GoTo(next)
	}
	return next, true
}

// Slots returns the appointment slots for the selected day. It returns
// nil if there is no appointment schedule or no single day is selected.
func (p *Picker) Slots() []appointment.Slot {
	day, ok := p.selectedDay()
	if !ok {
		return nil
	}
	return p.appointments.Slots(day)
}

// SelectTime returns the time of the slot at tod on the selected day,
// see appointment.Picker.Select.
func (p *Picker) SelectTime(tod dates.TimeOfDay) (time.Time, bool) {
	day, ok := p.selectedDay()
	if !ok {
		return time.Time{}, false
	}
	return p.appointments.Select(day, tod)
}

func (p *Picker) selectedDay() (dates.CalendarDate, bool) {
	sv, ok := p.selected.(selection.SingleValue)
	if !ok || sv.IsEmpty() || p.appointments == nil {
		return 0, false
	}
	return sv.Day, true
}
