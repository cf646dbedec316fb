// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
)

// Event is a verified VEVENT component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	itemFields
	DTEnd    *DateTimeProp
	Duration *DurationProp

	Properties []parse.ContentLine
	Alarms     []*Alarm
}

// LastOccurrence returns the event's final instant: DTEND when present,
// otherwise DTSTART plus DURATION. Events with a recurrence set return
// nil; expanding the set answers the question there.
func (e *Event) LastOccurrence() icaltime.Value {
	if e.HasRecurrenceSet() {
		return nil
	}
	if e.DTEnd != nil {
		return e.DTEnd.Value
	}
	if e.DTStart != nil && e.Duration != nil {
		start := e.DTStart.DateTime()
		return icaltime.FromTime(start.Time().Add(e.Duration.Value.ToStd()), start.Tz)
	}
	return nil
}

// TZIDs returns the TZIDs referenced by the event and its alarms.
func (e *Event) TZIDs() []string {
	set := make(map[string]struct{})
	collectTZIDs(e.Properties, set)
	for _, alarm := range e.Alarms {
		collectTZIDs(alarm.Properties, set)
	}
	return sortedTZIDs(set)
}

// Generate renders the event as iCal text.
func (e *Event) Generate() string {
	var inner strings.Builder
	inner.WriteString(gen.ContentLines(e.Properties))
	for _, alarm := range e.Alarms {
		inner.WriteString(alarm.Generate())
	}
	return gen.Component(string(SectionTokenVEvent), inner.String())
}

// Builder returns the event's mutable form.
func (e *Event) Builder() *EventBuilder {
	b := &EventBuilder{componentProps: componentProps{Properties: e.Properties}}
	for _, alarm := range e.Alarms {
		b.alarms = append(b.alarms, alarm.Builder())
	}
	return b
}

func (e *Event) addTo(c *Calendar) {
	c.Events = append(c.Events, e)
}

// EventBuilder is the unverified form of an Event.
type EventBuilder struct {
	componentProps
	alarms []*AlarmBuilder
}

// NewEventBuilder returns an empty builder.
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *EventBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVEvent)}
}

// AddSubComponent implements parse.Builder, accepting VALARM children.
func (b *EventBuilder) AddSubComponent(name string, lines *parse.ContentLineParser, opts parse.Options) error {
	if SectionToken(name) != SectionTokenVAlarm {
		return parse.InvalidComponentError(name)
	}
	alarm := NewAlarmBuilder()
	if err := parse.Fill(alarm, lines, opts); err != nil {
		return err
	}
	b.alarms = append(b.alarms, alarm)
	return nil
}

func (b *EventBuilder) tzids(into map[string]struct{}) {
	b.componentProps.tzids(into)
	for _, alarm := range b.alarms {
		alarm.tzids(into)
	}
}

// Build verifies the event against a calendar's timezone map.
func (b *EventBuilder) Build(opts parse.Options, tzs TZMap) (*Event, error) {
	fields, err := extractItemFields(b.Properties, tzs)
	if err != nil {
		return nil, err
	}

	// OPTIONAL, but MUTUALLY EXCLUSIVE
	dtend, err := optionalOnce(b.Properties, propDTEnd, parseDateTimeFn(tzs))
	if err != nil {
		return nil, err
	}
	duration, err := optionalOnce(b.Properties, propDuration, parseDurationProp)
	if err != nil {
		return nil, err
	}
	if dtend != nil && duration != nil {
		return nil, fmt.Errorf("%w: both DTEND and DURATION are defined", ErrPropertyConflict)
	}

	event := &Event{
		itemFields: fields,
		DTEnd:      dtend,
		Duration:   duration,
		Properties: b.Properties,
	}
	for _, alarmBuilder := range b.alarms {
		alarm, err := alarmBuilder.Build(opts)
		if err != nil {
			return nil, err
		}
		event.Alarms = append(event.Alarms, alarm)
	}
	return event, nil
}
