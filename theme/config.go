// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker/appointment"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/datepicker/navigation"
	"cloudeng.io/datepicker/pricing"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/errors"
)

// Config represents the YAML configuration of a calendar, for example:
//
//	theme:
//	  locale: fr-FR
//	  week_starts_on: 1
//	  number_of_months: 2
//	selection:
//	  mode: range
//	  max: 14
//	boundary:
//	  start: 2026-01-01
//	  end: 2026-12-31
//	disabled:
//	  - weekends
//	  - 2026-12-25
//	modifiers:
//	  booked:
//	    - from: 2026-03-10
//	      to: 2026-03-12
//	pricing:
//	  currency: EUR
//	  default: 120
//	appointments:
//	  start: 09:00
//	  end: 17:00
//	  interval: 30m
type Config struct {
	Theme        Settings                    `yaml:"theme,omitempty"`
	Selection    selection.Config            `yaml:"selection,omitempty"`
	Boundary     navigation.Boundary         `yaml:"boundary,omitempty"`
	Paged        bool                        `yaml:"paged_navigation,omitempty"`
	Min          dates.CalendarDate          `yaml:"min,omitempty"`
	Max          dates.CalendarDate          `yaml:"max,omitempty"`
	Disabled     matcher.SpecList            `yaml:"disabled,omitempty"`
	Modifiers    map[string]matcher.SpecList `yaml:"modifiers,omitempty"`
	Pricing      *pricing.Config             `yaml:"pricing,omitempty"`
	Appointments *appointment.Config         `yaml:"appointments,omitempty"`
}

// ParseConfig parses a YAML configuration, unknown fields are reported
// as errors.
func ParseConfig(spec []byte) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML configuration file using
// cmdyaml.ParseConfigFileStrict and hence the file may be read from an
// fs.ReadFileFS stored in the context.
func LoadConfig(ctx context.Context, filename string) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Bounds returns the min, max and disabled constraints.
func (c *Config) Bounds() (matcher.Bounds, error) {
	ms, err := c.Disabled.Matchers()
	if err != nil {
		return matcher.Bounds{}, fmt.Errorf("disabled: %w", err)
	}
	return matcher.Bounds{Min: c.Min, Max: c.Max, Disabled: ms}, nil
}

// ModifierMatchers returns the named modifiers.
func (c *Config) ModifierMatchers() (matcher.Modifiers, error) {
	if len(c.Modifiers) == 0 {
		return nil, nil
	}
	errs := &errors.M{}
	mods := matcher.Modifiers{}
	for _, name := range slices.Sorted(maps.Keys(c.Modifiers)) {
		ms, err := c.Modifiers[name].Matchers()
		if err != nil {
			errs.Append(fmt.Errorf("modifier %v: %w", name, err))
			continue
		}
		mods[name] = matcher.Any(ms)
	}
	return mods, errs.Err()
}

// PricingTable returns the pricing table, or nil if none is configured.
func (c *Config) PricingTable() (*pricing.Table, error) {
	if c.Pricing == nil {
		return nil, nil
	}
	t, err := c.Pricing.Table()
	if err != nil {
		return nil, fmt.Errorf("pricing: %w", err)
	}
	return t, nil
}

// AppointmentPicker returns the appointment picker, or nil if none is
// configured.
func (c *Config) AppointmentPicker(bounds matcher.Bounds) (*appointment.Picker, error) {
	if c.Appointments == nil {
		return nil, nil
	}
	p, err := c.Appointments.Picker(bounds)
	if err != nil {
		return nil, fmt.Errorf("appointments: %w", err)
	}
	return &p, nil
}

// Validate returns an error describing every invalid part of the Config.
func (c *Config) Validate() error {
	errs := &errors.M{}
	if err := c.Theme.Validate(); err != nil {
		errs.Append(fmt.Errorf("theme: %w", err))
	}
	if err := c.Selection.Validate(); err != nil {
		errs.Append(fmt.Errorf("selection: %w", err))
	}
	if !c.Min.IsZero() && !c.Max.IsZero() && c.Min > c.Max {
		errs.Append(fmt.Errorf("min (%v) is later than max (%v)", c.Min, c.Max))
	}
	if b := c.Boundary; !b.Start.IsZero() && !b.End.IsZero() && b.Start.StartOfMonth() > b.End.StartOfMonth() {
		errs.Append(fmt.Errorf("boundary start (%v) is later than end (%v)", b.Start, b.End))
	}
	bounds, err := c.Bounds()
	errs.Append(err)
	_, err = c.ModifierMatchers()
	errs.Append(err)
	_, err = c.PricingTable()
	errs.Append(err)
	_, err = c.AppointmentPicker(bounds)
	errs.Append(err)
	return errs.Err()
}
