// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"fmt"

	"github.com/michael-gallo/caldata/icaltime"
)

// Validator limits. Rules beyond these are refused rather than expanded.
const (
	maxInterval = 1000
	minYear     = 1000
	maxYear     = 9999
)

// Validate checks the rule's cross-field constraints against its DTSTART
// and returns a validated copy. The receiver is left untouched.
func (r *RRule) Validate(dtstart icaltime.CalDateTime) (*RRule, error) {
	out := *r

	if _, err := parseFrequency(string(out.Freq)); err != nil {
		return nil, err
	}
	if out.Interval == 0 {
		out.Interval = 1
	}
	if out.Interval > maxInterval {
		return nil, fmt.Errorf("%w: %d", ErrTooBigInterval, out.Interval)
	}
	if dtstart.Year < minYear || dtstart.Year > maxYear {
		return nil, fmt.Errorf("%w: %d", ErrYearOutOfRange, dtstart.Year)
	}

	if err := out.checkRanges(); err != nil {
		return nil, err
	}
	if err := out.checkByRuleFrequency(); err != nil {
		return nil, err
	}

	if len(out.BySetPos) > 0 && !out.hasOtherByRule() {
		return nil, ErrBySetPosWithoutByRule
	}
	if len(out.ByEaster) > 0 &&
		(len(out.ByHour) == 0 || len(out.ByMinute) == 0 || len(out.BySecond) == 0) {
		return nil, ErrByEasterWithoutTime
	}

	if out.Until != nil {
		if err := checkUntilTimezone(*out.Until, dtstart); err != nil {
			return nil, err
		}
		if out.Until.Time().Before(dtstart.Time()) {
			return nil, fmt.Errorf("%w: UNTIL %s, DTSTART %s",
				ErrUntilBeforeStart, out.Until.ICal(), dtstart.ICal())
		}
	}

	out.validated = true
	out.dtstart = dtstart
	return &out, nil
}

// checkUntilTimezone enforces RFC 5545's UNTIL locality rule: a floating
// DTSTART takes a floating UNTIL, a UTC or zoned DTSTART takes a UTC UNTIL.
func checkUntilTimezone(until, dtstart icaltime.CalDateTime) error {
	if dtstart.Tz.IsLocal() {
		if !until.Tz.IsLocal() {
			return fmt.Errorf("%w: DTSTART is floating, UNTIL is %s",
				ErrUntilTimezoneMismatch, until.Tz.Name())
		}
		return nil
	}
	if !until.Tz.IsUTC() {
		return fmt.Errorf("%w: DTSTART is %s, UNTIL must be UTC",
			ErrUntilTimezoneMismatch, dtstart.Tz.Name())
	}
	return nil
}

func (r *RRule) checkRanges() error {
	checks := []struct {
		field     string
		values    []int
		min, max  int
		wantsSign bool
	}{
		{"BYSECOND", r.BySecond, 0, 60, false},
		{"BYMINUTE", r.ByMinute, 0, 59, false},
		{"BYHOUR", r.ByHour, 0, 23, false},
		{"BYMONTH", r.ByMonth, 1, 12, false},
		{"BYMONTHDAY", r.ByMonthDay, 1, 31, true},
		{"BYYEARDAY", r.ByYearDay, 1, 366, true},
		{"BYWEEKNO", r.ByWeekNo, 1, 53, true},
		{"BYSETPOS", r.BySetPos, 1, 366, true},
		{"BYEASTER", r.ByEaster, -366, 366, false},
	}
	for _, check := range checks {
		for _, v := range check.values {
			magnitude := v
			if check.wantsSign && magnitude < 0 {
				magnitude = -magnitude
			}
			if magnitude < check.min || magnitude > check.max {
				return fmt.Errorf("%w: %s=%d", ErrFieldValueOutOfRange, check.field, v)
			}
		}
	}
	for _, byDay := range r.ByDay {
		if byDay.Ordinal != 0 && (byDay.Ordinal < -53 || byDay.Ordinal > 53) {
			return fmt.Errorf("%w: BYDAY=%d%s", ErrFieldValueOutOfRange, byDay.Ordinal, byDay.Weekday)
		}
	}
	return nil
}

func (r *RRule) checkByRuleFrequency() error {
	if len(r.ByWeekNo) > 0 && r.Freq != FrequencyYearly {
		return fmt.Errorf("%w: BYWEEKNO with FREQ=%s", ErrByRuleAndFrequency, r.Freq)
	}
	if len(r.ByYearDay) > 0 {
		switch r.Freq {
		case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
			return fmt.Errorf("%w: BYYEARDAY with FREQ=%s", ErrByRuleAndFrequency, r.Freq)
		}
	}
	if len(r.ByMonthDay) > 0 && r.Freq == FrequencyWeekly {
		return fmt.Errorf("%w: BYMONTHDAY with FREQ=WEEKLY", ErrByRuleAndFrequency)
	}
	for _, byDay := range r.ByDay {
		if byDay.Ordinal == 0 {
			continue
		}
		switch r.Freq {
		case FrequencyMonthly:
		case FrequencyYearly:
			if len(r.ByWeekNo) > 0 {
				return fmt.Errorf("%w: ordinal BYDAY with BYWEEKNO", ErrByRuleAndFrequency)
			}
		default:
			return fmt.Errorf("%w: ordinal BYDAY with FREQ=%s", ErrByRuleAndFrequency, r.Freq)
		}
	}
	return nil
}

func (r *RRule) hasOtherByRule() bool {
	return len(r.BySecond) > 0 || len(r.ByMinute) > 0 || len(r.ByHour) > 0 ||
		len(r.ByDay) > 0 || len(r.ByMonthDay) > 0 || len(r.ByYearDay) > 0 ||
		len(r.ByWeekNo) > 0 || len(r.ByMonth) > 0 || len(r.ByEaster) > 0
}
