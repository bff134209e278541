// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pricing provides per day prices for calendars that display a
// price, or availability, in each day cell.
package pricing

import (
	"fmt"
	"maps"
	"slices"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/format"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/matcher"
	"cloudeng.io/errors"
	"golang.org/x/text/currency"
)

// Rule assigns Price to all days matched by When.
type Rule struct {
	Name  string
	When  matcher.Matcher
	Price float64
}

// Table determines the price of a day. Explicit per day Prices take
// precedence over Rules, which are evaluated in order, with the first
// match being used. Default, if set, applies to all other days.
type Table struct {
	Currency currency.Unit
	Default  *float64
	Rules    []Rule
	Prices   map[dates.CalendarDate]float64
}

// PriceFor returns the price for day and true, or false if the day has
// no price.
func (t *Table) PriceFor(day dates.CalendarDate) (float64, bool) {
	if p, ok := t.Prices[day]; ok {
		return p, true
	}
	for _, r := range t.Rules {
		if r.When != nil && r.When.Match(day) {
			return r.Price, true
		}
	}
	if t.Default != nil {
		return *t.Default, true
	}
	return 0, false
}

// Matcher returns a matcher for days that have no price, suitable for
// disabling them.
func (t *Table) Matcher() matcher.Matcher {
	return matcher.Func(func(day dates.CalendarDate) bool {
		_, ok := t.PriceFor(day)
		return !ok
	})
}

// CellPrice is the price, if any, of a grid cell. Lowest is set for
// the cells within the displayed month that have the lowest price.
type CellPrice struct {
	grid.Cell
	Price  float64
	Priced bool
	Lowest bool
}

// Overlay returns the prices for the supplied cells. Outside cells are
// priced but are never marked as Lowest.
func (t *Table) Overlay(cells []grid.Cell) []CellPrice {
	overlay := make([]CellPrice, len(cells))
	lowest, found := 0.0, false
	for i, c := range cells {
		p, ok := t.PriceFor(c.Day)
		overlay[i] = CellPrice{Cell: c, Price: p, Priced: ok}
		if ok && !c.Outside && (!found || p < lowest) {
			lowest, found = p, true
		}
	}
	if !found {
		return overlay
	}
	for i := range overlay {
		if o := &overlay[i]; o.Priced && !o.Outside && o.Price == lowest {
			o.Lowest = true
		}
	}
	return overlay
}

// Total returns the sum of the prices of the days in r and the days
// that have no price. A range with only one bound set is treated as
// that single day.
func (t *Table) Total(r dates.Range) (float64, []dates.CalendarDate) {
	switch {
	case r.IsZero():
		return 0, nil
	case !r.IsComplete():
		day := max(r.From, r.To)
		r = dates.Range{From: day, To: day}
	}
	var total float64
	var unpriced []dates.CalendarDate
	for d := range r.Days() {
		p, ok := t.PriceFor(d)
		if !ok {
			unpriced = append(unpriced, d)
			continue
		}
		total += p
	}
	return total, unpriced
}

// RuleConfig is the YAML representation of a Rule.
type RuleConfig struct {
	Name  string           `yaml:"name"`
	When  matcher.SpecList `yaml:"when"`
	Price float64          `yaml:"price"`
}

// Config is the YAML representation of a Table, for example:
//
//	currency: EUR
//	default: 120
//	rules:
//	  - name: weekend
//	    when: [weekends]
//	    price: 150
//	prices:
//	  2026-12-24: 200
type Config struct {
	Currency string                         `yaml:"currency,omitempty"`
	Default  *float64                       `yaml:"default,omitempty"`
	Rules    []RuleConfig                   `yaml:"rules,omitempty"`
	Prices   map[dates.CalendarDate]float64 `yaml:"prices,omitempty"`
}

// Table returns the Table represented by the Config. All invalid fields
// are reported in the returned error.
func (c Config) Table() (*Table, error) {
	errs := &errors.M{}
	t := &Table{
		Default: c.Default,
		Prices:  c.Prices,
	}
	unit, err := format.ParseCurrency(c.Currency)
	if err != nil {
		errs.Append(fmt.Errorf("currency %q: %w", c.Currency, err))
	}
	t.Currency = unit
	if c.Default != nil && *c.Default < 0 {
		errs.Append(fmt.Errorf("default price must not be negative: %v", *c.Default))
	}
	for i, rc := range c.Rules {
		name := rc.Name
		if len(name) == 0 {
			name = fmt.Sprintf("rule %v", i)
		}
		ms, err := rc.When.Matchers()
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", name, err))
			continue
		}
		if len(ms) == 0 {
			errs.Append(fmt.Errorf("%v: no days specified", name))
			continue
		}
		if rc.Price < 0 {
			errs.Append(fmt.Errorf("%v: price must not be negative: %v", name, rc.Price))
		}
		t.Rules = append(t.Rules, Rule{Name: name, When: matcher.Any(ms), Price: rc.Price})
	}
	for _, d := range slices.Sorted(maps.Keys(c.Prices)) {
		if p := c.Prices[d]; p < 0 {
			errs.Append(fmt.Errorf("%v: price must not be negative: %v", d, p))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
