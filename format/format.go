// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package format provides locale and time zone aware formatting of
// month captions, weekday labels, day labels, times and prices. Month
// and weekday names are provided by github.com/goodsign/monday and
// numbers and currencies by golang.org/x/text. Unsupported locales and
// unknown time zones never result in an error, they are replaced by
// en-US and UTC respectively and a warning is logged.
package format

import (
	"context"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // time zones must be available on all platforms.
	"unicode"
	"unicode/utf8"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/logging/ctxlog"
	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultLocale is used when a locale is not specified or is
	// not supported.
	DefaultLocale = "en-US"
	// DefaultTimeZone is used when a time zone is not specified or
	// is not known.
	DefaultTimeZone = "UTC"
)

// WeekdayStyle determines the length of weekday names.
type WeekdayStyle int

const (
	Long   WeekdayStyle = iota // eg. Monday
	Short                      // eg. Mon
	Narrow                     // eg. M
)

// Options represents the locale, time zone and clock used for formatting.
type Options struct {
	Locale   string `yaml:"locale,omitempty"`
	TimeZone string `yaml:"time_zone,omitempty"`
	Hour12   bool   `yaml:"hour12,omitempty"`
}

// Formatter formats dates, times and numbers for a specific locale and
// time zone.
type Formatter struct {
	tag      language.Tag
	locale   monday.Locale
	location *time.Location
	printer  *message.Printer
	hour12   bool
	date     string // layout for full dates.
	caption  string // layout for month captions.
}

var (
	supportedTags    []language.Tag
	supportedLocales []monday.Locale
	localeMatcher    language.Matcher
)

func init() {
	// The first tag is the matcher's default.
	supportedTags = append(supportedTags, language.AmericanEnglish)
	supportedLocales = append(supportedLocales, monday.LocaleEnUS)
	for _, l := range monday.ListLocales() {
		if l == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		supportedTags = append(supportedTags, tag)
		supportedLocales = append(supportedLocales, l)
	}
	localeMatcher = language.NewMatcher(supportedTags)
}

// MatchLocale returns the supported locale that best matches the
// specified BCP 47 identifier and true, or DefaultLocale and false if
// the identifier cannot be parsed or no supported locale is a
// reasonable match.
func MatchLocale(id string) (language.Tag, monday.Locale, bool) {
	if len(id) == 0 {
		return language.AmericanEnglish, monday.LocaleEnUS, false
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return language.AmericanEnglish, monday.LocaleEnUS, false
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return language.AmericanEnglish, monday.LocaleEnUS, false
	}
	return supportedTags[idx], supportedLocales[idx], true
}

// New returns a Formatter for the specified options.
func New(ctx context.Context, opts Options) *Formatter {
	tag, locale, ok := MatchLocale(opts.Locale)
	if !ok && len(opts.Locale) > 0 {
		ctxlog.Logger(ctx).Warn("unsupported locale", "locale", opts.Locale, "using", DefaultLocale)
	}
	loc := time.UTC
	if len(opts.TimeZone) > 0 {
		var err error
		if loc, err = time.LoadLocation(opts.TimeZone); err != nil {
			ctxlog.Logger(ctx).Warn("unknown time zone", "tz", opts.TimeZone, "using", DefaultTimeZone, "error", err)
			loc = time.UTC
		}
	}
	return &Formatter{
		tag:      tag,
		locale:   locale,
		location: loc,
		printer:  message.NewPrinter(tag),
		hour12:   opts.Hour12,
		date:     localeLayout(monday.FullFormatsByLocale, locale),
		caption:  captionLayout(localeLayout(monday.LongFormatsByLocale, locale)),
	}
}

func localeLayout(layouts map[monday.Locale]string, locale monday.Locale) string {
	if l, ok := layouts[locale]; ok {
		return l
	}
	return layouts[monday.LocaleEnUS]
}

// layoutItems splits a layout into runs of letters, digits and
// delimiters.
func layoutItems(layout string) []string {
	class := func(r rune) int {
		switch {
		case unicode.IsLetter(r):
			return 1
		case unicode.IsDigit(r):
			return 2
		}
		return 0
	}
	var items []string
	start, prev := 0, -1
	for i, r := range layout {
		if c := class(r); c != prev {
			if i > start {
				items = append(items, layout[start:i])
			}
			start, prev = i, c
		}
	}
	if start < len(layout) {
		items = append(items, layout[start:])
	}
	return items
}

func isMonthOrYear(item string) bool {
	switch item {
	case "January", "Jan", "1", "01", "2006":
		return true
	}
	return false
}

func isDelimiter(item string) bool {
	r, _ := utf8.DecodeRuneInString(item)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// captionLayout derives a month and year layout from a long date layout
// by removing the day of the month. Words between the day and the next
// month or year element are removed with it, eg. "2 de January de 2006"
// becomes "January de 2006". A trailing day takes its suffix and the
// preceding delimiters with it, eg. "2006年1月2日" becomes "2006年1月".
func captionLayout(long string) string {
	items := layoutItems(long)
	day := slices.IndexFunc(items, func(item string) bool {
		return item == "2" || item == "02"
	})
	if day < 0 {
		return "January 2006"
	}
	for i := day + 1; i < len(items); i++ {
		if isMonthOrYear(items[i]) {
			return strings.Join(slices.Delete(items, day, i), "")
		}
	}
	for day > 0 && isDelimiter(items[day-1]) {
		day--
	}
	return strings.Join(items[:day], "")
}

// Locale returns the BCP 47 tag of the locale in use.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Location returns the time zone in use.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// Today returns the calendar day of now in the formatter's time zone.
func (f *Formatter) Today(now time.Time) dates.CalendarDate {
	return dates.CalendarDateFromTime(now.In(f.location))
}

func (f *Formatter) format(day dates.CalendarDate, layout string) string {
	return monday.Format(day.Time(time.UTC).Add(12*time.Hour), layout, f.locale)
}

// Caption returns the caption for the month containing day, eg.
// "March 2026".
func (f *Formatter) Caption(day dates.CalendarDate) string {
	return f.format(day.StartOfMonth(), f.caption)
}

// MonthName returns the name of month.
func (f *Formatter) MonthName(month dates.Month) string {
	return f.format(dates.NewCalendarDate(2026, month, 1), "January")
}

// 2026-01-04 is a Sunday.
var referenceSunday = dates.NewCalendarDate(2026, 1, 4)

// Weekday returns the name of wd in the specified style.
func (f *Formatter) Weekday(wd time.Weekday, style WeekdayStyle) string {
	day := referenceSunday.AddDays(int(wd % 7))
	switch style {
	case Short:
		return f.format(day, "Mon")
	case Narrow:
		name := f.format(day, "Monday")
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError {
			return name
		}
		return string(unicode.ToUpper(r))
	}
	return f.format(day, "Monday")
}

// WeekdayLabels returns the weekday names in display order for weeks
// starting on weekStartsOn.
func (f *Formatter) WeekdayLabels(weekStartsOn time.Weekday, style WeekdayStyle) []string {
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = f.Weekday((weekStartsOn+time.Weekday(i))%7, style)
	}
	return labels
}

// Day returns the label for a day cell, ie. the day of the month.
func (f *Formatter) Day(day dates.CalendarDate) string {
	return f.printer.Sprint(day.Day())
}

// Date returns the full date using the locale's layout, eg.
// "Tuesday, March 10, 2026" or "mardi 10 mars 2026".
func (f *Formatter) Date(day dates.CalendarDate) string {
	return f.format(day, f.date)
}

// Time returns the time of day using either a 12 or 24 hour clock.
func (f *Formatter) Time(tod dates.TimeOfDay) string {
	t := time.Date(2026, 1, 1, tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
	if f.hour12 {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// DateTime returns the date and time of t in the formatter's time zone.
func (f *Formatter) DateTime(t time.Time) string {
	t = t.In(f.location)
	return f.Date(dates.CalendarDateFromTime(t)) + " " + f.Time(dates.TimeOfDayFromTime(t))
}

// Number formats n using the locale's digit grouping.
func (f *Formatter) Number(n any) string {
	return f.printer.Sprint(n)
}

// Price formats amount in the specified currency using the currency's
// symbol for the formatter's locale.
func (f *Formatter) Price(amount float64, unit currency.Unit) string {
	return f.printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// ParseCurrency parses an ISO 4217 currency code, an empty code is
// treated as USD.
func ParseCurrency(code string) (currency.Unit, error) {
	if len(code) == 0 {
		return currency.USD, nil
	}
	return currency.ParseISO(code)
}
