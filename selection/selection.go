// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package selection implements the selection semantics of a date picker
// for its three modes: a single day, a contiguous range of days and
// multiple individually toggled days. Every operation is a pure function
// from the previous selection and the clicked day to the next selection
// together with an indication of whether the click was accepted. A click
// that is not accepted always returns the previous selection unchanged.
package selection

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/errors"
)

// Mode identifies a selection mode.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
	ModeMultiple
)

var modeNames = []string{"single", "range", "multiple"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name in either lower or upper case.
func ParseMode(val string) (Mode, error) {
	if idx := slices.Index(modeNames, strings.ToLower(strings.TrimSpace(val))); idx >= 0 {
		return Mode(idx), nil
	}
	return 0, fmt.Errorf("invalid selection mode: %q, must be one of %v", val, strings.Join(modeNames, ", "))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Result is the outcome of a click for a specific selection type.
type Result[S Value] struct {
	Selection S
	Accepted  bool
}

// Value is implemented by SingleValue, RangeValue and MultipleValue only.
type Value interface {
	Mode() Mode
	Contains(day dates.CalendarDate) bool
	IsEmpty() bool
	String() string
	value()
}

// SingleValue is the selection for ModeSingle, a zero Day means that
// nothing is selected.
type SingleValue struct {
	Day dates.CalendarDate
}

func (SingleValue) Mode() Mode { return ModeSingle }
func (SingleValue) value() {}
func (v SingleValue) IsEmpty() bool { return v.Day.IsZero() }

func (v SingleValue) Contains(day dates.CalendarDate) bool {
	return !v.Day.IsZero() && v.Day == day
}

func (v SingleValue) String() string {
	if v.Day.IsZero() {
		return ""
	}
	return v.Day.String()
}

// RangeValue is the selection for ModeRange. A RangeValue with only From
// set is awaiting the end of the range.
type RangeValue struct {
	dates.Range
}

func (RangeValue) Mode() Mode { return ModeRange }
func (RangeValue) value() {}
func (v RangeValue) IsEmpty() bool { return v.Range.IsZero() }
func (v RangeValue) String() string { return v.Range.String() }

// MultipleValue is the selection for ModeMultiple. Days are stored in the
// order in which they were selected.
type MultipleValue []dates.CalendarDate

func (MultipleValue) Mode() Mode { return ModeMultiple }
func (MultipleValue) value() {}
func (v MultipleValue) IsEmpty() bool { return len(v) == 0 }

func (v MultipleValue) Contains(day dates.CalendarDate) bool {
	return slices.Contains(v, day)
}

// Sorted returns the selected days in calendar order.
func (v MultipleValue) Sorted() []dates.CalendarDate {
	return slices.Sorted(slices.Values(v))
}

func (v MultipleValue) String() string {
	return dates.CalendarDateList(v.Sorted()).String()
}

// Selector provides mode independent access to the selection controllers
// for use by code that is configured with a mode at runtime.
type Selector interface {
	Mode() Mode
	// Empty returns the empty selection for the mode.
	Empty() Value
	// Select applies a click on day to prev. A nil prev, or one for a
	// different mode, is treated as the empty selection.
	Select(prev Value, day dates.CalendarDate, bounds matcher.Bounds) (Value, bool)
	// Disabled returns true if day cannot be selected given the current
	// selection, in addition to any days disabled by the Bounds.
	Disabled(current Value, day dates.CalendarDate) bool
}

// Config represents the configuration of a selection mode.
type Config struct {
	Mode            Mode `yaml:"mode"`
	Min             int  `yaml:"min,omitempty"`
	Max             int  `yaml:"max,omitempty"`
	Required        bool `yaml:"required,omitempty"`
	ExcludeDisabled bool `yaml:"exclude_disabled,omitempty"`
}

// Validate returns an error describing every invalid field in the Config.
func (c Config) Validate() error {
	errs := &errors.M{}
	if c.Mode < ModeSingle || c.Mode > ModeMultiple {
		errs.Append(fmt.Errorf("invalid mode: %v", c.Mode))
	}
	if c.Min < 0 {
		errs.Append(fmt.Errorf("min must not be negative: %v", c.Min))
	}
	if c.Max < 0 {
		errs.Append(fmt.Errorf("max must not be negative: %v", c.Max))
	}
	if c.Min > 0 && c.Max > 0 && c.Min > c.Max {
		errs.Append(fmt.Errorf("min (%v) must not be greater than max (%v)", c.Min, c.Max))
	}
	return errs.Err()
}

// Selector returns the Selector for the configured mode.
func (c Config) Selector() (Selector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Mode {
	case ModeRange:
		return Range{Min: c.Min, Max: c.Max, ExcludeDisabled: c.ExcludeDisabled}, nil
	case ModeMultiple:
		return Multiple{Min: c.Min, Max: c.Max, Required: c.Required}, nil
	}
	return Single{}, nil
}
