// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendar displays month grids, replays date selections and
// lists presets and appointment slots for a calendar described by a
// YAML configuration file.
package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/picker"
	"cloudeng.io/datepicker/theme"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: calendar
summary: display and interact with calendars
commands:
  - name: month
    summary: display the month grids for a calendar
    arguments:
      - '[year-month]'
  - name: select
    summary: replay a sequence of clicks and display the resulting selection
    arguments:
      - <date>
      - ...
  - name: presets
    summary: display the ranges for the preset date ranges
  - name: slots
    summary: display the appointment slots for a day
    arguments:
      - <date>
`

type CommonFlags struct {
	cmdutil.LoggingFlags
	Config       string `subcmd:"config,,'calendar configuration file'"`
	Locale       string `subcmd:"locale,,'locale, eg. en-US or fr-FR'"`
	TimeZone     string `subcmd:"tz,,'IANA time zone used to determine the current day'"`
	Today        string `subcmd:"today,,'override the current day'"`
	WeekStartsOn int    `subcmd:"week-start,-1,'first day of the week, 0 for Sunday, -1 for the configured value'"`
}

type monthFlags struct {
	CommonFlags
	Months      int  `subcmd:"months,0,'number of months to display, 0 for the configured value'"`
	FixedWeeks  bool `subcmd:"fixed-weeks,false,always display six weeks"`
	WeekNumbers bool `subcmd:"week-numbers,false,display week numbers"`
	JSON        bool `subcmd:"json,false,write the month views as JSON"`
}

type selectFlags struct {
	CommonFlags
	Mode     string `subcmd:"mode,,'selection mode: single, range or multiple, overrides the configured mode'"`
	Min      int    `subcmd:"min,0,'minimum number of days in a range or multiple selection'"`
	Max      int    `subcmd:"max,0,'maximum number of days in a range or multiple selection'"`
	Required bool   `subcmd:"required,false,'at least one day must remain selected'"`
}

type presetsFlags struct {
	CommonFlags
}

type slotsFlags struct {
	CommonFlags
}

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("month").MustRunnerAndFlags(month,
		subcmd.MustRegisteredFlagSet(&monthFlags{}))
	cmdSet.Set("select").MustRunnerAndFlags(selectDays,
		subcmd.MustRegisteredFlagSet(&selectFlags{}))
	cmdSet.Set("presets").MustRunnerAndFlags(listPresets,
		subcmd.MustRegisteredFlagSet(&presetsFlags{}))
	cmdSet.Set("slots").MustRunnerAndFlags(slots,
		subcmd.MustRegisteredFlagSet(&slotsFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}

// session holds the state common to all commands.
type session struct {
	logger *cmdutil.Logger
	config *theme.Config
	today  dates.CalendarDate
}

func (s *session) Close() error {
	return s.logger.Close()
}

// newSession creates the logger, stores it in the returned context and
// loads the configuration, if any, with command line overrides applied.
func newSession(ctx context.Context, cf *CommonFlags) (context.Context, *session, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	s := &session{logger: logger, config: &theme.Config{}}
	if len(cf.Config) > 0 {
		if s.config, err = theme.LoadConfig(ctx, cf.Config); err != nil {
			logger.Close()
			return ctx, nil, err
		}
		logger.Debug("loaded configuration", "file", cf.Config)
	}
	if len(cf.Locale) > 0 {
		s.config.Theme.Locale = cf.Locale
	}
	if len(cf.TimeZone) > 0 {
		s.config.Theme.TimeZone = cf.TimeZone
	}
	if cf.WeekStartsOn >= 0 {
		wso := cf.WeekStartsOn
		s.config.Theme.WeekStartsOn = &wso
	}
	if len(cf.Today) > 0 {
		if s.today, err = dates.ParseFlexible(cf.Today); err != nil {
			logger.Close()
			return ctx, nil, fmt.Errorf("invalid --today: %w", err)
		}
	}
	return ctx, s, nil
}

// picker creates a date picker displaying month, if set.
func (s *session) picker(ctx context.Context, month dates.CalendarDate) (*picker.Picker, picker.Config, error) {
	pc, err := picker.FromConfig(s.config, nil)
	if err != nil {
		return nil, pc, err
	}
	pc.Today = s.today
	pc.Month = month
	p, err := picker.New(ctx, pc)
	return p, pc, err
}
