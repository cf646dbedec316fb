// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime

import (
	"fmt"
	"strings"
	"time"
)

// Value type names as used by the VALUE parameter.
const (
	TypeDate     = "DATE"
	TypeDateTime = "DATE-TIME"
	TypePeriod   = "PERIOD"
)

// Value is a typed calendar value: a CalDate, a CalDateTime or a Period.
type Value interface {
	// ValueType returns the VALUE parameter name of the concrete type.
	ValueType() string
	// ICal renders the value in its wire form.
	ICal() string
	// Time returns the value's start instant. Dates count as midnight,
	// floating values are interpreted in the consumer's local zone.
	Time() time.Time
}

// CalDate is a year-month-day without a time component.
type CalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses the RFC 5545 DATE form YYYYMMDD.
func ParseDate(s string) (CalDate, error) {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return CalDate{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return CalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d CalDate) ValueType() string { return TypeDate }

func (d CalDate) ICal() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

func (d CalDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// CalDateTime is a date with a time of day and a timezone discriminator.
// The Tz distinguishes floating time (no TZID, no Z suffix), UTC (the Z
// suffix) and zoned time (a TZID parameter resolved by the caller).
type CalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Tz     Tz
}

// ParseDateTime parses the RFC 5545 DATE-TIME forms YYYYMMDDTHHMMSS and
// YYYYMMDDTHHMMSSZ. A trailing Z yields UTC and wins over tz; otherwise
// the value is interpreted in tz (floating when tz is Local).
func ParseDateTime(s string, tz Tz) (CalDateTime, error) {
	if rest, ok := strings.CutSuffix(s, "Z"); ok {
		s = rest
		tz = UTC()
	}
	t, err := time.Parse("20060102T150405", s)
	if err != nil {
		return CalDateTime{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, s)
	}
	return CalDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Tz:     tz,
	}, nil
}

func (d CalDateTime) ValueType() string { return TypeDateTime }

func (d CalDateTime) ICal() string {
	suffix := ""
	if d.Tz.IsUTC() {
		suffix = "Z"
	}
	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02d%s",
		d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second, suffix)
}

func (d CalDateTime) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, 0, d.Tz.Location())
}

// Date returns the date part.
func (d CalDateTime) Date() CalDate {
	return CalDate{Year: d.Year, Month: d.Month, Day: d.Day}
}

// In returns the same civil time stamped with a different zone.
func (d CalDateTime) In(tz Tz) CalDateTime {
	d.Tz = tz
	return d
}

// UTC converts the instant to UTC. Floating time is reinterpreted in the
// consumer's local zone first.
func (d CalDateTime) UTC() CalDateTime {
	return FromTime(d.Time().UTC(), UTC())
}

// Before reports whether d's instant is before other's.
func (d CalDateTime) Before(other CalDateTime) bool {
	return d.Time().Before(other.Time())
}

// Equal reports whether the instants coincide.
func (d CalDateTime) Equal(other CalDateTime) bool {
	return d.Time().Equal(other.Time())
}

// FromTime converts a time.Time to a CalDateTime in the given zone.
func FromTime(t time.Time, tz Tz) CalDateTime {
	t = t.In(tz.Location())
	return CalDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Tz:     tz,
	}
}

// IsDate reports whether v is a bare DATE value.
func IsDate(v Value) bool {
	_, ok := v.(CalDate)
	return ok
}

// IsFloating reports whether v carries no timezone: bare dates and
// date-times with a Local zone float, UTC and zoned date-times do not.
func IsFloating(v Value) bool {
	switch v := v.(type) {
	case CalDateTime:
		return v.Tz.IsLocal()
	case Period:
		return v.Start.Tz.IsLocal()
	default:
		return true
	}
}
