// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay represents a time of day with the hour, minute and second
// packed so that values compare in chronological order.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int { return int(t >> 16) }
func (t TimeOfDay) Minute() int { return int(t >> 8 & 0xff) }
func (t TimeOfDay) Second() int { return int(t & 0xff) }

// Normalize returns a new TimeOfDay with the hour, minute and second
// values clamped to 0-23, 0-59 and 0-59.
func (t TimeOfDay) Normalize() TimeOfDay {
	return NewTimeOfDay(min(t.Hour(), 23), min(t.Minute(), 59), min(t.Second(), 59))
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// meridiem records whether a parsed time carried an am or pm suffix.
type meridiem int

const (
	clock24 meridiem = iota
	ante
	post
)

func splitMeridiem(val string) (string, meridiem) {
	val = strings.ToLower(strings.TrimSpace(val))
	if v, ok := strings.CutSuffix(val, "am"); ok {
		return strings.TrimSpace(v), ante
	}
	if v, ok := strings.CutSuffix(val, "pm"); ok {
		return strings.TrimSpace(v), post
	}
	return val, clock24
}

// field parses a one or two digit component of a time of day.
func field(name, val string, limit int) (int, error) {
	if len(val) == 0 || len(val) > 2 || strings.Trim(val, "0123456789") != "" {
		return 0, fmt.Errorf("invalid %v: %q", name, val)
	}
	n, _ := strconv.Atoi(val)
	if n > limit {
		return 0, fmt.Errorf("invalid %v: %q", name, val)
	}
	return n, nil
}

// Parse val in formats '08[:12[:10]][am|pm]'.
func (t *TimeOfDay) Parse(val string) error {
	hms, m := splitMeridiem(val)
	if len(hms) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	parts := strings.Split(hms, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid time %q, expected '08[:12][:10][am|pm]'", val)
	}
	parts = append(parts, "0", "0")[:3]
	hour, err := field("hour", parts[0], 23)
	if err != nil {
		return err
	}
	if m != clock24 {
		if hour == 0 || hour > 12 {
			return fmt.Errorf("invalid hour %q for a 12 hour clock", parts[0])
		}
		hour %= 12
		if m == post {
			hour += 12
		}
	}
	minute, err := field("minute", parts[1], 59)
	if err != nil {
		return err
	}
	second, err := field("second", parts[2], 59)
	if err != nil {
		return err
	}
	*t = NewTimeOfDay(hour, minute, second)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	return t.Parse(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// lastSecond is the duration from midnight of 23:59:59.
const lastSecond = 24*time.Hour - time.Second

// Add delta to the time of day. The result is clamped to
// 00:00:00 to 23:59:59 and sub-second precision is discarded.
func (t TimeOfDay) Add(delta time.Duration) TimeOfDay {
	return timeOfDayFromDuration(min(max(t.Duration()+delta, 0), lastSecond))
}

func timeOfDayFromDuration(d time.Duration) TimeOfDay {
	secs := int(d / time.Second)
	return NewTimeOfDay(secs/3600, secs/60%60, secs%60)
}

// Duration returns the time.Duration since midnight for the TimeOfDay.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour()*3600+t.Minute()*60+t.Second()) * time.Second
}

// TimeOfDayList represents a sorted list of TimeOfDay values.
type TimeOfDayList []TimeOfDay

// Parse val as a comma separated list of TimeOfDay values, the
// parsed values replace any existing ones.
func (tl *TimeOfDayList) Parse(val string) error {
	var l TimeOfDayList
	for p := range strings.SplitSeq(val, ",") {
		var tod TimeOfDay
		if err := tod.Parse(p); err != nil {
			return err
		}
		l = append(l, tod)
	}
	slices.Sort(l)
	*tl = l
	return nil
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// Combine returns the time.Time for day at time of day tod in loc using
// time.Date, a nil location is treated as UTC. Times that fall in a
// daylight saving gap are normalized as per time.Date.
func Combine(day CalendarDate, tod TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(day.Year(), time.Month(day.Month()), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}
