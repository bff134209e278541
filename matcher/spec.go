// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML representation of a single Matcher. Exactly one kind
// of constraint may be specified, with before and after together forming
// an Interval and from and to together forming a Range. In addition to
// the mapping form a Spec may be written as a scalar: 'weekends',
// 'weekdays', 'true', 'false' or a single date.
//
//	disabled:
//	  - weekends
//	  - 2026-12-25
//	  - days: [2026-01-01, 2026-01-02]
//	  - day_of_week: [3]
//	  - before: 2026-03-01
//	  - after: 2026-04-01
//	    before: 2026-04-10
//	  - from: 2026-07-01
//	    to: 2026-07-14
type Spec struct {
	All       *bool                `yaml:"all,omitempty"`
	Day       dates.CalendarDate   `yaml:"day,omitempty"`
	Days      []dates.CalendarDate `yaml:"days,omitempty"`
	DayOfWeek []int                `yaml:"day_of_week,omitempty"`
	Before    dates.CalendarDate   `yaml:"before,omitempty"`
	After     dates.CalendarDate   `yaml:"after,omitempty"`
	From      dates.CalendarDate   `yaml:"from,omitempty"`
	To        dates.CalendarDate   `yaml:"to,omitempty"`
}

type specAlias Spec

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		var a specAlias
		if err := node.Decode(&a); err != nil {
			return err
		}
		*s = Spec(a)
		return nil
	}
	switch v := strings.ToLower(strings.TrimSpace(node.Value)); v {
	case "weekends":
		*s = Spec{DayOfWeek: []int{int(time.Sunday), int(time.Saturday)}}
	case "weekdays":
		*s = Spec{DayOfWeek: []int{1, 2, 3, 4, 5}}
	case "true", "false":
		all := v == "true"
		*s = Spec{All: &all}
	default:
		day, err := dates.ParseCalendarDate(v)
		if err != nil {
			return fmt.Errorf("line %v: %w", node.Line, err)
		}
		*s = Spec{Day: day}
	}
	return nil
}

// Matcher returns the Matcher represented by the Spec.
func (s Spec) Matcher() (Matcher, error) {
	var kinds []string
	var m Matcher
	if s.All != nil {
		kinds = append(kinds, "all")
		m = Bool(*s.All)
	}
	if !s.Day.IsZero() {
		kinds = append(kinds, "day")
		m = Day(s.Day)
	}
	if len(s.Days) > 0 {
		kinds = append(kinds, "days")
		m = Days(s.Days)
	}
	if len(s.DayOfWeek) > 0 {
		kinds = append(kinds, "day_of_week")
		dow := make(DayOfWeek, 0, len(s.DayOfWeek))
		for _, d := range s.DayOfWeek {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("invalid day of week: %v, must be 0 (Sunday) to 6 (Saturday)", d)
			}
			dow = append(dow, time.Weekday(d))
		}
		m = dow
	}
	switch {
	case !s.Before.IsZero() && !s.After.IsZero():
		kinds = append(kinds, "before/after")
		m = Interval{After: s.After, Before: s.Before}
	case !s.Before.IsZero():
		kinds = append(kinds, "before")
		m = Before(s.Before)
	case !s.After.IsZero():
		kinds = append(kinds, "after")
		m = After(s.After)
	}
	if !s.From.IsZero() || !s.To.IsZero() {
		kinds = append(kinds, "from/to")
		m = Range{From: s.From, To: s.To}
	}
	switch len(kinds) {
	case 0:
		return nil, fmt.Errorf("empty constraint")
	case 1:
		return m, nil
	}
	return nil, fmt.Errorf("multiple constraint kinds specified: %v", strings.Join(kinds, ", "))
}

// SpecList is a list of Specs that are OR'ed together.
type SpecList []Spec

// Matchers returns the matchers for all of the Specs in the list. All
// invalid specs are reported in the returned error.
func (sl SpecList) Matchers() ([]Matcher, error) {
	errs := &errors.M{}
	ms := make([]Matcher, 0, len(sl))
	for i, s := range sl {
		m, err := s.Matcher()
		if err != nil {
			errs.Append(fmt.Errorf("constraint %v: %w", i, err))
			continue
		}
		ms = append(ms, m)
	}
	return ms, errs.Err()
}
