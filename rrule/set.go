// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"errors"
	"slices"
	"time"

	rrulego "github.com/teambition/rrule-go"

	"github.com/michael-gallo/caldata/icaltime"
)

// ErrUnboundedExpansion is returned when an expansion without an upper
// bound is requested for a rule that has neither COUNT nor UNTIL.
var ErrUnboundedExpansion = errors.New("unbounded expansion of an infinite rule")

// Set is a full recurrence-rule set. The occurrence set is
// (RRULEs ∪ RDATEs) \ (EXRULEs ∪ EXDATEs), keyed by start instant. All
// rules must be validated against DTStart.
type Set struct {
	DTStart icaltime.CalDateTime
	RRules  []*RRule
	ExRules []*RRule
	RDates  []time.Time
	ExDates []time.Time
}

// Occurrences expands the set within the inclusive [after, before] window,
// time-ordered and deduplicated. Nil bounds leave that side open; an open
// upper bound requires every rule to carry COUNT or UNTIL.
func (s *Set) Occurrences(after, before *time.Time) ([]time.Time, error) {
	dtstart := s.DTStart.Time()

	included, err := expandRules(s.RRules, dtstart, after, before)
	if err != nil {
		return nil, err
	}
	// A set without rules still yields DTSTART itself.
	if len(s.RRules) == 0 {
		included = append(included, dtstart)
	}
	included = append(included, s.RDates...)

	excluded, err := expandRules(s.ExRules, dtstart, after, before)
	if err != nil {
		return nil, err
	}
	excluded = append(excluded, s.ExDates...)

	drop := make(map[int64]struct{}, len(excluded))
	for _, t := range excluded {
		drop[t.UnixNano()] = struct{}{}
	}

	out := included[:0]
	for _, t := range included {
		if _, skip := drop[t.UnixNano()]; skip {
			continue
		}
		if after != nil && t.Before(*after) {
			continue
		}
		if before != nil && t.After(*before) {
			continue
		}
		out = append(out, t)
	}

	slices.SortFunc(out, time.Time.Compare)
	return slices.CompactFunc(out, time.Time.Equal), nil
}

func expandRules(rules []*RRule, dtstart time.Time, after, before *time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, r := range rules {
		if !r.Validated() {
			return nil, ErrNotValidated
		}
		if before == nil && r.Count == nil && r.Until == nil {
			return nil, ErrUnboundedExpansion
		}
		lowered, err := r.lower(dtstart)
		if err != nil {
			return nil, err
		}
		if after != nil && before != nil {
			out = append(out, lowered.Between(*after, *before, true)...)
		} else {
			// One side open: expand fully, the caller-side filter trims.
			out = append(out, lowered.All()...)
		}
	}
	return out, nil
}

// lower converts the validated rule to its teambition/rrule-go
// realization, which implements the year-to-second bucket iteration.
func (r *RRule) lower(dtstart time.Time) (*rrulego.RRule, error) {
	opt := rrulego.ROption{
		Freq:       lowerFrequency(r.Freq),
		Dtstart:    dtstart,
		Interval:   r.Interval,
		Bysetpos:   r.BySetPos,
		Bymonth:    r.ByMonth,
		Bymonthday: r.ByMonthDay,
		Byyearday:  r.ByYearDay,
		Byweekno:   r.ByWeekNo,
		Byhour:     r.ByHour,
		Byminute:   r.ByMinute,
		Bysecond:   r.BySecond,
		Byeaster:   r.ByEaster,
	}
	if r.Count != nil {
		opt.Count = *r.Count
	}
	if r.Until != nil {
		opt.Until = r.Until.Time()
	}
	if r.WeekStart != "" {
		opt.Wkst = lowerWeekday(r.WeekStart)
	}
	for _, byDay := range r.ByDay {
		weekday := lowerWeekday(byDay.Weekday)
		if byDay.Ordinal != 0 {
			weekday = weekday.Nth(byDay.Ordinal)
		}
		opt.Byweekday = append(opt.Byweekday, weekday)
	}
	return rrulego.NewRRule(opt)
}

func lowerFrequency(freq Frequency) rrulego.Frequency {
	switch freq {
	case FrequencySecondly:
		return rrulego.SECONDLY
	case FrequencyMinutely:
		return rrulego.MINUTELY
	case FrequencyHourly:
		return rrulego.HOURLY
	case FrequencyDaily:
		return rrulego.DAILY
	case FrequencyWeekly:
		return rrulego.WEEKLY
	case FrequencyMonthly:
		return rrulego.MONTHLY
	default:
		return rrulego.YEARLY
	}
}

func lowerWeekday(weekday Weekday) rrulego.Weekday {
	switch weekday {
	case WeekdayTuesday:
		return rrulego.TU
	case WeekdayWednesday:
		return rrulego.WE
	case WeekdayThursday:
		return rrulego.TH
	case WeekdayFriday:
		return rrulego.FR
	case WeekdaySaturday:
		return rrulego.SA
	case WeekdaySunday:
		return rrulego.SU
	default:
		return rrulego.MO
	}
}
