// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
//
// A rule is parsed into an unvalidated RRule; Validate binds it to its
// DTSTART and checks the cross-field constraints. Only validated rules can
// be expanded into occurrences.
package rrule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michael-gallo/caldata/icaltime"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// ByDay is one BYDAY entry. Ordinal selects the nth occurrence of the
// weekday within the frequency period (negative counts from the end); an
// ordinal of zero means every occurrence.
type ByDay struct {
	Weekday Weekday
	Ordinal int
}

// RRule is a parameterized recurrence rule. A freshly parsed rule is
// unvalidated; Validate returns a copy bound to its DTSTART.
type RRule struct {
	// The frequency of the recurrence. This MUST be specified.
	Freq Frequency
	// The gap between recurrence periods. Treated as 1 when zero.
	Interval int
	// The number of occurrences. DTSTART always counts as the first
	// occurrence. Cannot occur together with Until.
	Count *int
	// The inclusive end of the recurrence. Cannot occur together with
	// Count.
	Until *icaltime.CalDateTime
	// UntilIsDate records whether UNTIL was given in DATE form, so the
	// rule renders back the way it came in.
	UntilIsDate bool

	BySecond   []int
	ByMinute   []int
	ByHour     []int
	ByDay      []ByDay
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByMonth    []int
	BySetPos   []int
	ByEaster   []int

	// WeekStart is the WKST part; empty means the RFC default MO.
	WeekStart Weekday

	validated bool
	dtstart   icaltime.CalDateTime
}

// ParseRRule parses an iCal recurrence rule string into an unvalidated
// RRule.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
//
// Example for an event that happens daily for 10 days:
//
//	ParseRRule("FREQ=DAILY;INTERVAL=1;COUNT=10")
func ParseRRule(rruleString string) (*RRule, error) {
	rrule := &RRule{}
	seenFreq := false

	for part := range strings.SplitSeq(rruleString, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRRuleString, part)
		}
		var err error
		switch tag {
		case "FREQ":
			seenFreq = true
			rrule.Freq, err = parseFrequency(value)
		case "INTERVAL":
			rrule.Interval, err = strconv.Atoi(value)
			if err == nil && rrule.Interval <= 0 {
				err = ErrInvalidInterval
			}
		case "COUNT":
			var count int
			count, err = strconv.Atoi(value)
			rrule.Count = &count
		case "UNTIL":
			err = rrule.parseUntil(value)
		case "WKST":
			weekday := Weekday(value)
			if !isValidWeekday(weekday) {
				err = fmt.Errorf("%w: %s", ErrInvalidRRuleString, value)
			}
			rrule.WeekStart = weekday
		case "BYDAY":
			rrule.ByDay, err = parseByDayList(value)
		case "BYSECOND":
			rrule.BySecond, err = parseIntList(value)
		case "BYMINUTE":
			rrule.ByMinute, err = parseIntList(value)
		case "BYHOUR":
			rrule.ByHour, err = parseIntList(value)
		case "BYMONTHDAY":
			rrule.ByMonthDay, err = parseIntList(value)
		case "BYYEARDAY":
			rrule.ByYearDay, err = parseIntList(value)
		case "BYWEEKNO":
			rrule.ByWeekNo, err = parseIntList(value)
		case "BYMONTH":
			rrule.ByMonth, err = parseIntList(value)
		case "BYSETPOS":
			rrule.BySetPos, err = parseIntList(value)
		case "BYEASTER":
			rrule.ByEaster, err = parseIntList(value)
		default:
			err = fmt.Errorf("%w: unknown part %s", ErrInvalidRRuleString, tag)
		}
		if err != nil {
			return nil, err
		}
	}

	if !seenFreq {
		return nil, ErrFrequencyRequired
	}
	if rrule.Count != nil && rrule.Until != nil {
		return nil, ErrCountAndUntilBothSet
	}
	return rrule, nil
}

// parseUntil accepts both the DATE and the DATE-TIME forms. The DATE form
// counts as floating midnight.
func (r *RRule) parseUntil(value string) error {
	if !strings.Contains(value, "T") {
		date, err := icaltime.ParseDate(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUntil, value)
		}
		until := icaltime.CalDateTime{Year: date.Year, Month: date.Month, Day: date.Day}
		r.Until = &until
		r.UntilIsDate = true
		return nil
	}
	until, err := icaltime.ParseDateTime(value, icaltime.Local())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUntil, value)
	}
	r.Until = &until
	return nil
}

func parseFrequency(value string) (Frequency, error) {
	freq := Frequency(value)
	switch freq {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily,
		FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return freq, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFrequency, value)
	}
}

func parseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRRuleString, part)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseByDayList(value string) ([]ByDay, error) {
	parts := strings.Split(value, ",")
	out := make([]ByDay, 0, len(parts))
	for _, part := range parts {
		byDay, err := ParseByDay(part)
		if err != nil {
			return nil, err
		}
		out = append(out, byDay)
	}
	return out, nil
}

// ParseByDay parses a single BYDAY entry. The entry is either a bare
// weekday ("MO") or an ordinal-prefixed weekday ("2MO", "-1SU").
func ParseByDay(byDayString string) (ByDay, error) {
	if byDayString == "" {
		return ByDay{}, ErrInvalidByDayString
	}

	digitEnd := 0
	for digitEnd < len(byDayString) {
		c := byDayString[digitEnd]
		if c >= '0' && c <= '9' || c == '-' && digitEnd == 0 || c == '+' && digitEnd == 0 {
			digitEnd++
			continue
		}
		break
	}

	weekday := Weekday(byDayString[digitEnd:])
	if !isValidWeekday(weekday) {
		return ByDay{}, fmt.Errorf("%w: %s", ErrInvalidByDayString, byDayString)
	}
	if digitEnd == 0 {
		return ByDay{Weekday: weekday}, nil
	}

	ordinal, err := strconv.Atoi(byDayString[:digitEnd])
	if err != nil || ordinal == 0 {
		return ByDay{}, fmt.Errorf("%w: %s", ErrInvalidByDayString, byDayString)
	}
	return ByDay{Weekday: weekday, Ordinal: ordinal}, nil
}

func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}

// Validated reports whether the rule has been bound to a DTSTART.
func (r *RRule) Validated() bool {
	return r.validated
}

// DTStart returns the DTSTART the rule was validated against. Only
// meaningful when Validated reports true.
func (r *RRule) DTStart() icaltime.CalDateTime {
	return r.dtstart
}

// String renders the rule back in its RECUR wire form, FREQ first and the
// remaining parts in the RFC's order.
func (r *RRule) String() string {
	parts := []string{"FREQ=" + string(r.Freq)}
	if r.Until != nil {
		if r.UntilIsDate {
			parts = append(parts, "UNTIL="+r.Until.Date().ICal())
		} else {
			parts = append(parts, "UNTIL="+r.Until.ICal())
		}
	}
	if r.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*r.Count))
	}
	if r.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	parts = appendIntListPart(parts, "BYSECOND", r.BySecond)
	parts = appendIntListPart(parts, "BYMINUTE", r.ByMinute)
	parts = appendIntListPart(parts, "BYHOUR", r.ByHour)
	if len(r.ByDay) > 0 {
		entries := make([]string, len(r.ByDay))
		for i, byDay := range r.ByDay {
			if byDay.Ordinal != 0 {
				entries[i] = strconv.Itoa(byDay.Ordinal) + string(byDay.Weekday)
			} else {
				entries[i] = string(byDay.Weekday)
			}
		}
		parts = append(parts, "BYDAY="+strings.Join(entries, ","))
	}
	parts = appendIntListPart(parts, "BYMONTHDAY", r.ByMonthDay)
	parts = appendIntListPart(parts, "BYYEARDAY", r.ByYearDay)
	parts = appendIntListPart(parts, "BYWEEKNO", r.ByWeekNo)
	parts = appendIntListPart(parts, "BYMONTH", r.ByMonth)
	parts = appendIntListPart(parts, "BYSETPOS", r.BySetPos)
	parts = appendIntListPart(parts, "BYEASTER", r.ByEaster)
	if r.WeekStart != "" && r.WeekStart != WeekdayMonday {
		parts = append(parts, "WKST="+string(r.WeekStart))
	}
	return strings.Join(parts, ";")
}

func appendIntListPart(parts []string, name string, values []int) []string {
	if len(values) == 0 {
		return parts
	}
	entries := make([]string, len(values))
	for i, v := range values {
		entries[i] = strconv.Itoa(v)
	}
	return append(parts, name+"="+strings.Join(entries, ","))
}
