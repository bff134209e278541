// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package theme provides the settings shared by all of the calendars
// in an application. Settings are resolved by merging explicit settings
// over those supplied by a shared context over built in defaults.
package theme

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// Radius values.
var Radii = []string{"none", "sm", "md", "lg", "full"}

// NavButtonStyle values.
var NavButtonStyles = []string{"ghost", "outline", "solid"}

// MaxNumberOfMonths is the largest number of months that may be displayed.
const MaxNumberOfMonths = 12

// Settings represents the shared settings. Zero values, or nil pointers,
// are unset and are replaced when resolved.
type Settings struct {
	Locale          string `yaml:"locale,omitempty"`
	TimeZone        string `yaml:"time_zone,omitempty"`
	WeekStartsOn    *int   `yaml:"week_starts_on,omitempty"`
	NumberOfMonths  int    `yaml:"number_of_months,omitempty"`
	FixedWeeks      *bool  `yaml:"fixed_weeks,omitempty"`
	ShowOutsideDays *bool  `yaml:"show_outside_days,omitempty"`
	ShowWeekNumber  *bool  `yaml:"show_week_number,omitempty"`
	ISOWeek         *bool  `yaml:"iso_week,omitempty"`
	Hour12          *bool  `yaml:"hour12,omitempty"`
	Radius          string `yaml:"radius,omitempty"`
	NavButtonStyle  string `yaml:"nav_button_style,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

// Defaults returns the built in defaults, all fields are set.
func Defaults() Settings {
	return Settings{
		Locale:          "en-US",
		TimeZone:        "UTC",
		WeekStartsOn:    ptr(int(time.Sunday)),
		NumberOfMonths:  1,
		FixedWeeks:      ptr(false),
		ShowOutsideDays: ptr(true),
		ShowWeekNumber:  ptr(false),
		ISOWeek:         ptr(false),
		Hour12:          ptr(false),
		Radius:          "md",
		NavButtonStyle:  "ghost",
	}
}

func first[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

func firstPtr[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return ptr(*v)
		}
	}
	return nil
}

// Resolve returns the settings obtained by using each field of explicit
// if set, otherwise the field of shared if shared is non-nil and the field
// is set, otherwise the field from Defaults.
func Resolve(explicit Settings, shared *Settings) Settings {
	var ctx Settings
	if shared != nil {
		ctx = *shared
	}
	def := Defaults()
	return Settings{
		Locale:          first(explicit.Locale, ctx.Locale, def.Locale),
		TimeZone:        first(explicit.TimeZone, ctx.TimeZone, def.TimeZone),
		WeekStartsOn:    firstPtr(explicit.WeekStartsOn, ctx.WeekStartsOn, def.WeekStartsOn),
		NumberOfMonths:  first(explicit.NumberOfMonths, ctx.NumberOfMonths, def.NumberOfMonths),
		FixedWeeks:      firstPtr(explicit.FixedWeeks, ctx.FixedWeeks, def.FixedWeeks),
		ShowOutsideDays: firstPtr(explicit.ShowOutsideDays, ctx.ShowOutsideDays, def.ShowOutsideDays),
		ShowWeekNumber:  firstPtr(explicit.ShowWeekNumber, ctx.ShowWeekNumber, def.ShowWeekNumber),
		ISOWeek:         firstPtr(explicit.ISOWeek, ctx.ISOWeek, def.ISOWeek),
		Hour12:          firstPtr(explicit.Hour12, ctx.Hour12, def.Hour12),
		Radius:          first(explicit.Radius, ctx.Radius, def.Radius),
		NavButtonStyle:  first(explicit.NavButtonStyle, ctx.NavButtonStyle, def.NavButtonStyle),
	}
}

// Validate returns an error describing every invalid field. Locales and
// time zones are not validated since unsupported values are replaced
// by defaults when used.
func (s Settings) Validate() error {
	errs := &errors.M{}
	if s.WeekStartsOn != nil && (*s.WeekStartsOn < 0 || *s.WeekStartsOn > 6) {
		errs.Append(fmt.Errorf("week_starts_on: %v, must be 0 (Sunday) to 6 (Saturday)", *s.WeekStartsOn))
	}
	if s.NumberOfMonths < 0 || s.NumberOfMonths > MaxNumberOfMonths {
		errs.Append(fmt.Errorf("number_of_months: %v, must be 1 to %v", s.NumberOfMonths, MaxNumberOfMonths))
	}
	if len(s.Radius) > 0 && !slices.Contains(Radii, s.Radius) {
		errs.Append(fmt.Errorf("radius: %q, must be one of %v", s.Radius, strings.Join(Radii, ", ")))
	}
	if len(s.NavButtonStyle) > 0 && !slices.Contains(NavButtonStyles, s.NavButtonStyle) {
		errs.Append(fmt.Errorf("nav_button_style: %q, must be one of %v", s.NavButtonStyle, strings.Join(NavButtonStyles, ", ")))
	}
	return errs.Err()
}

// Weekday returns WeekStartsOn as a time.Weekday, Sunday if unset.
func (s Settings) Weekday() time.Weekday {
	if s.WeekStartsOn == nil {
		return time.Sunday
	}
	return time.Weekday(*s.WeekStartsOn)
}

// Bool returns the value of a boolean setting, false if unset.
func Bool(v *bool) bool {
	return v != nil && *v
}
