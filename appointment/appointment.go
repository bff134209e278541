// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package appointment provides the time slots for appointment and
// date-time pickers, where a day is selected first and a time of day
// second.
package appointment

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/errors"
)

// Schedule describes the daily slots, starting at Start and repeating
// every Interval for as long as a slot of length Duration ends no later
// than End. A zero Duration is treated as Interval.
type Schedule struct {
	Start    dates.TimeOfDay `yaml:"start"`
	End      dates.TimeOfDay `yaml:"end"`
	Interval time.Duration   `yaml:"interval"`
	Duration time.Duration   `yaml:"duration,omitempty"`
}

// Validate returns an error describing every invalid field in the Schedule.
func (s Schedule) Validate() error {
	errs := &errors.M{}
	if s.Interval <= 0 {
		errs.Append(fmt.Errorf("interval must be positive: %v", s.Interval))
	}
	if s.Duration < 0 {
		errs.Append(fmt.Errorf("duration must not be negative: %v", s.Duration))
	}
	if s.End <= s.Start {
		errs.Append(fmt.Errorf("end (%v) must be later than start (%v)", s.End, s.Start))
	}
	return errs.Err()
}

func (s Schedule) length() time.Duration {
	if s.Duration > 0 {
		return s.Duration
	}
	return s.Interval
}

// Times returns the start times of all slots in order. An invalid
// schedule has no slots.
func (s Schedule) Times() []dates.TimeOfDay {
	if s.Validate() != nil {
		return nil
	}
	var times []dates.TimeOfDay
	end, length := s.End.Duration(), s.length()
	for at := s.Start.Duration(); at+length <= end; at += s.Interval {
		times = append(times, dates.NewTimeOfDay(0, 0, 0).Add(at))
	}
	return times
}

// Slot is a single appointment slot.
type Slot struct {
	Time      dates.TimeOfDay
	Available bool
}

// Picker determines the available slots for each day. Days disabled by
// Bounds have no available slots, nor do slots listed in Booked or, if
// NotBefore is set, slots that start before it.
type Picker struct {
	Schedule  Schedule
	Bounds    matcher.Bounds
	Booked    map[dates.CalendarDate][]dates.TimeOfDay
	Location  *time.Location
	NotBefore time.Time
}

func (p Picker) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Picker) available(day dates.CalendarDate, tod dates.TimeOfDay) bool {
	if slices.Contains(p.Booked[day], tod) {
		return false
	}
	if !p.NotBefore.IsZero() && dates.Combine(day, tod, p.location()).Before(p.NotBefore) {
		return false
	}
	return true
}

// Slots returns all of the slots for day.
func (p Picker) Slots(day dates.CalendarDate) []Slot {
	times := p.Schedule.Times()
	slots := make([]Slot, len(times))
	disabled := p.Bounds.IsDisabled(day)
	for i, tod := range times {
		slots[i] = Slot{Time: tod, Available: !disabled && p.available(day, tod)}
	}
	return slots
}

// Available returns the start times of the available slots for day.
func (p Picker) Available(day dates.CalendarDate) []dates.TimeOfDay {
	var times []dates.TimeOfDay
	for _, s := range p.Slots(day) {
		if s.Available {
			times = append(times, s.Time)
		}
	}
	return times
}

// Matcher returns a matcher for the days that have no available slots.
func (p Picker) Matcher() matcher.Matcher {
	return matcher.Func(func(day dates.CalendarDate) bool {
		return !slices.ContainsFunc(p.Slots(day), func(s Slot) bool { return s.Available })
	})
}

// Select returns the time of the slot at tod on day in the picker's
// location and true, or false if there is no such available slot.
func (p Picker) Select(day dates.CalendarDate, tod dates.TimeOfDay) (time.Time, bool) {
	for _, s := range p.Slots(day) {
		if s.Time == tod && s.Available {
			return dates.Combine(day, tod, p.location()), true
		}
	}
	return time.Time{}, false
}

// Config is the YAML representation of a Picker's schedule and bookings,
// for example:
//
//	start: 09:00
//	end: 17:00
//	interval: 30m
//	booked:
//	  2026-03-10: ["09:00", "13:30"]
type Config struct {
	Schedule `yaml:",inline"`
	TimeZone string                                   `yaml:"time_zone,omitempty"`
	Booked   map[dates.CalendarDate][]dates.TimeOfDay `yaml:"booked,omitempty"`
}

// Picker returns the Picker represented by the Config.
func (c Config) Picker(bounds matcher.Bounds) (Picker, error) {
	if err := c.Validate(); err != nil {
		return Picker{}, err
	}
	loc := time.UTC
	if len(c.TimeZone) > 0 {
		var err error
		if loc, err = time.LoadLocation(c.TimeZone); err != nil {
			return Picker{}, err
		}
	}
	return Picker{
		Schedule: c.Schedule,
		Bounds:   bounds,
		Booked:   c.Booked,
		Location: loc,
	}, nil
}
