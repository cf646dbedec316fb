// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
	"github.com/michael-gallo/caldata/rrule"
)

// recurrenceFields holds the parsed recurrence-rule set of an event, todo
// or journal. RDATE and EXDATE lines are always parsed. RRULE and EXRULE
// lines are validated against the component's DTSTART; without a DTSTART
// they stay raw content lines and RRules and ExRules are empty.
type recurrenceFields struct {
	RRules  []*rrule.RRule
	ExRules []*rrule.RRule
	RDates  []DateTimeListProp
	ExDates []DateTimeListProp
}

func extractRecurrence(props []parse.ContentLine, dtstart *DateTimeProp, tzs TZMap) (recurrenceFields, error) {
	var out recurrenceFields
	var err error

	if out.RDates, err = getAll(props, propRDate, func(line parse.ContentLine) (DateTimeListProp, error) {
		return parseDateTimeListProp(line, icaltime.TypeDateTime, tzs)
	}); err != nil {
		return out, err
	}
	if out.ExDates, err = getAll(props, propExDate, func(line parse.ContentLine) (DateTimeListProp, error) {
		return parseDateTimeListProp(line, icaltime.TypeDateTime, tzs)
	}); err != nil {
		return out, err
	}

	if dtstart == nil {
		return out, nil
	}
	start := dtstart.DateTime()

	validate := func(line parse.ContentLine) (*rrule.RRule, error) {
		parsed, err := parseRRuleProp(line)
		if err != nil {
			return nil, err
		}
		return parsed.Validate(start)
	}
	if out.RRules, err = getAll(props, propRRule, validate); err != nil {
		return out, err
	}
	if out.ExRules, err = getAll(props, propExRule, validate); err != nil {
		return out, err
	}
	return out, nil
}

func (f *recurrenceFields) empty() bool {
	return len(f.RRules) == 0 && len(f.ExRules) == 0 &&
		len(f.RDates) == 0 && len(f.ExDates) == 0
}

// set assembles the full recurrence set keyed by start instant.
func (f *recurrenceFields) set(dtstart icaltime.CalDateTime) *rrule.Set {
	out := &rrule.Set{
		DTStart: dtstart,
		RRules:  f.RRules,
		ExRules: f.ExRules,
	}
	for _, list := range f.RDates {
		for _, value := range list.Values {
			out.RDates = append(out.RDates, value.Time())
		}
	}
	for _, list := range f.ExDates {
		for _, value := range list.Values {
			out.ExDates = append(out.ExDates, value.Time())
		}
	}
	return out
}
