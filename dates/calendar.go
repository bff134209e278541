// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CalendarDate represents a calendar day as a year, month and day. The
// year is stored in the top 16 bits, the month in the next 8 and the day
// in the lowest 8 bits so that CalendarDate values may be compared
// directly using <, == and >. The zero value represents an unset date.
type CalendarDate uint32

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day))
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day. Out of range months and days are normalized as per time.Date,
// so that Jan 32 is returned as Feb 1 and day 0 as the last day of the
// previous month.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	if month >= 1 && month <= 12 && day >= 1 && day <= DaysInMonth(year, month) {
		return newCalendarDate(year, month, day)
	}
	return fromUTC(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC))
}

// CalendarDateFromTime returns the CalendarDate for t in t's location,
// the time of day is discarded.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return newCalendarDate(y, Month(m), d)
}

// Today returns the current CalendarDate in the specified location. A nil
// location is treated as time.Local.
func Today(loc *time.Location) CalendarDate {
	if loc == nil {
		loc = time.Local
	}
	return CalendarDateFromTime(time.Now().In(loc))
}

func fromUTC(t time.Time) CalendarDate {
	return CalendarDateFromTime(t)
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsZero returns true for the zero, ie. unset, CalendarDate.
func (cd CalendarDate) IsZero() bool {
	return cd == 0
}

// noon is used for all arithmetic since it is never affected by
// daylight saving transitions.
func (cd CalendarDate) noon() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 12, 0, 0, 0, time.UTC)
}

// Time returns midnight of the date in the specified location, a nil
// location is treated as UTC.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.noon().Weekday()
}

// AddDays returns the date n days later, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	if n == 0 {
		return cd
	}
	return fromUTC(cd.noon().AddDate(0, 0, n))
}

// AddMonths returns the date n months later, n may be negative. Unlike
// time.AddDate the day is clamped to the last day of the resulting month,
// so that Jan 31 plus one month is Feb 28 (or 29).
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	total := cd.Year()*12 + int(cd.Month()) - 1 + n
	year, month := total/12, Month(total%12+1)
	if total < 0 {
		year, month = (total-11)/12, Month((total%12+12)%12+1)
	}
	day := min(cd.Day(), DaysInMonth(year, month))
	return newCalendarDate(year, month, day)
}

// AddYears returns the date n years later, Feb 29 is clamped to Feb 28
// for non-leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	return cd.AddMonths(n * 12)
}

// StartOfMonth returns the first day of the month.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	return newCalendarDate(cd.Year(), cd.Month(), 1)
}

// EndOfMonth returns the last day of the month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	return newCalendarDate(cd.Year(), cd.Month(), DaysInMonth(cd.Year(), cd.Month()))
}

// StartOfWeek returns the first day of the week containing the date for
// weeks that start on weekStartsOn.
func (cd CalendarDate) StartOfWeek(weekStartsOn time.Weekday) CalendarDate {
	diff := (7 + int(cd.Weekday()) - int(weekStartsOn%7)) % 7
	return cd.AddDays(-diff)
}

// EndOfWeek returns the last day of the week containing the date for
// weeks that start on weekStartsOn.
func (cd CalendarDate) EndOfWeek(weekStartsOn time.Weekday) CalendarDate {
	return cd.StartOfWeek(weekStartsOn).AddDays(6)
}

// StartOfYear returns Jan 1 of the date's year.
func (cd CalendarDate) StartOfYear() CalendarDate {
	return newCalendarDate(cd.Year(), 1, 1)
}

// EndOfYear returns Dec 31 of the date's year.
func (cd CalendarDate) EndOfYear() CalendarDate {
	return newCalendarDate(cd.Year(), 12, 31)
}

// DaysUntil returns the number of calendar days from cd to other, it is
// negative if other is earlier than cd.
func (cd CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.noon().Sub(cd.noon()) / (24 * time.Hour))
}

// MonthsUntil returns the number of calendar months from cd to other
// ignoring the day of the month.
func (cd CalendarDate) MonthsUntil(other CalendarDate) int {
	return (other.Year()-cd.Year())*12 + int(other.Month()) - int(cd.Month())
}

// SameMonth returns true if both dates are in the same month of the same year.
func (cd CalendarDate) SameMonth(other CalendarDate) bool {
	return cd.Year() == other.Year() && cd.Month() == other.Month()
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseCalendarDate.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	d, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

const expectedDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validCalendarDate(year int, month Month, dayStr string) (CalendarDate, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return 0, fmt.Errorf("invalid day: %s", dayStr)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("invalid day for %v %v: %d", month, year, day)
	}
	return newCalendarDate(year, month, day), nil
}

func parseYear(val string) (int, error) {
	if len(val) != 4 || !isNumeric(val) {
		return 0, fmt.Errorf("invalid year: %s", val)
	}
	return strconv.Atoi(val)
}

// ParseCalendarDate parses a date in formats '2006-01-02', '01/02/2006' or
// 'Jan-02-2006' with error checking for valid month and day.
func ParseCalendarDate(val string) (CalendarDate, error) {
	val = strings.TrimSpace(val)
	if strings.Contains(val, "/") {
		parts := strings.Split(val, "/")
		if len(parts) != 3 {
			return 0, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
		}
		return parseParts(parts[2], parts[0], parts[1], ParseNumericMonth)
	}
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	if isNumeric(parts[0]) {
		return parseParts(parts[0], parts[1], parts[2], ParseNumericMonth)
	}
	return parseParts(parts[2], parts[0], parts[1], ParseMonth)
}

func parseParts(y, m, d string, monthParser func(string) (Month, error)) (CalendarDate, error) {
	year, err := parseYear(y)
	if err != nil {
		return 0, err
	}
	month, err := monthParser(m)
	if err != nil {
		return 0, err
	}
	return validCalendarDate(year, month, d)
}

// ParseYearMonth parses a month in formats '2006-01', '01/2006' or
// 'Jan-2006' and returns the first day of that month.
func ParseYearMonth(val string) (CalendarDate, error) {
	val = strings.TrimSpace(val)
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid month %q, expected 2006-01, 01/2006 or Jan-2006", val)
	}
	yearStr, monthStr := parts[1], parts[0]
	if len(parts[0]) == 4 && isNumeric(parts[0]) {
		yearStr, monthStr = parts[0], parts[1]
	}
	year, err := parseYear(yearStr)
	if err != nil {
		return 0, err
	}
	var month Month
	if err := month.Parse(monthStr); err != nil {
		return 0, err
	}
	return newCalendarDate(year, month, 1), nil
}

// ParseFlexible parses val using ParseCalendarDate and, failing that,
// any of the free-form formats supported by github.com/araddon/dateparse,
// eg. "March 3, 2026" or "3 Mar 2026". Times of day are discarded.
func ParseFlexible(val string) (CalendarDate, error) {
	if cd, err := ParseCalendarDate(val); err == nil {
		return cd, nil
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(val), time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", val, err)
	}
	return CalendarDateFromTime(t), nil
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

// Parse a comma separated list of dates as per ParseCalendarDate.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(CalendarDateList, 0, len(parts))
	for _, p := range parts {
		cd, err := ParseCalendarDate(p)
		if err != nil {
			return err
		}
		l = append(l, cd)
	}
	*cdl = l
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
