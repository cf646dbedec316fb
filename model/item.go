// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"slices"

	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
	"github.com/michael-gallo/caldata/rrule"
)

// Item is a component that can recur and be grouped into a CalendarObject:
// an Event, a Todo or a Journal.
type Item interface {
	UID() string
	Generate() string
	RecurrenceIDProp() *RecurrenceID
	DTStartProp() *DateTimeProp
	HasRecurrenceSet() bool
	RecurrenceSet() (*rrule.Set, error)
	TZIDs() []string

	addTo(c *Calendar)
}

// itemFields carries the typed properties shared by every Item.
type itemFields struct {
	uid          string
	DTStamp      DateTimeProp
	DTStart      *DateTimeProp
	RecurrenceID *RecurrenceID
	recurrence   recurrenceFields
}

// extractItemFields pulls the common required and recurrence properties
// out of a builder's property list.
func extractItemFields(props []parse.ContentLine, tzs TZMap) (itemFields, error) {
	var out itemFields
	var err error

	// REQUIRED, but ONLY ONCE
	if out.uid, err = requiredOnce(props, propUID, textValue); err != nil {
		return out, err
	}
	if out.DTStamp, err = requiredOnce(props, propDTStamp, parseDateTimeFn(tzs)); err != nil {
		return out, err
	}

	// OPTIONAL, but ONLY ONCE
	if out.DTStart, err = optionalOnce(props, propDTStart, parseDateTimeFn(tzs)); err != nil {
		return out, err
	}
	if out.RecurrenceID, err = optionalOnce(props, propRecurrenceID, func(line parse.ContentLine) (RecurrenceID, error) {
		return parseRecurrenceID(line, tzs)
	}); err != nil {
		return out, err
	}
	if out.DTStart != nil && out.RecurrenceID != nil {
		if err := out.RecurrenceID.ValidateDTStart(out.DTStart.Value); err != nil {
			return out, err
		}
	}

	if out.recurrence, err = extractRecurrence(props, out.DTStart, tzs); err != nil {
		return out, err
	}
	return out, nil
}

func parseDateTimeFn(tzs TZMap) func(parse.ContentLine) (DateTimeProp, error) {
	return func(line parse.ContentLine) (DateTimeProp, error) {
		return parseDateTimeProp(line, icaltime.TypeDateTime, tzs)
	}
}

// UID returns the component's unique identifier.
func (f *itemFields) UID() string {
	return f.uid
}

// RecurrenceIDProp returns the RECURRENCE-ID, or nil for a main instance.
func (f *itemFields) RecurrenceIDProp() *RecurrenceID {
	return f.RecurrenceID
}

// DTStartProp returns the DTSTART, or nil when absent.
func (f *itemFields) DTStartProp() *DateTimeProp {
	return f.DTStart
}

// HasRecurrenceSet reports whether any RRULE, EXRULE, RDATE or EXDATE is
// present.
func (f *itemFields) HasRecurrenceSet() bool {
	return !f.recurrence.empty()
}

// RecurrenceSet assembles the component's full recurrence set. It is nil
// without a DTSTART.
func (f *itemFields) RecurrenceSet() (*rrule.Set, error) {
	if f.DTStart == nil {
		return nil, nil
	}
	return f.recurrence.set(f.DTStart.DateTime()), nil
}

// sortedTZIDs turns a TZID set into a deterministic slice.
func sortedTZIDs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for tzid := range set {
		out = append(out, tzid)
	}
	slices.Sort(out)
	return out
}
