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

// Todo is a verified VTODO component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	itemFields
	Due      *DateTimeProp
	Duration *DurationProp

	Properties []parse.ContentLine
	Alarms     []*Alarm
}

// LastOccurrence returns the todo's final instant: DUE when present,
// otherwise DTSTART plus DURATION. Todos with a recurrence set return nil.
func (t *Todo) LastOccurrence() icaltime.Value {
	if t.HasRecurrenceSet() {
		return nil
	}
	if t.Due != nil {
		return t.Due.Value
	}
	if t.DTStart != nil && t.Duration != nil {
		start := t.DTStart.DateTime()
		return icaltime.FromTime(start.Time().Add(t.Duration.Value.ToStd()), start.Tz)
	}
	return nil
}

// TZIDs returns the TZIDs referenced by the todo and its alarms.
func (t *Todo) TZIDs() []string {
	set := make(map[string]struct{})
	collectTZIDs(t.Properties, set)
	for _, alarm := range t.Alarms {
		collectTZIDs(alarm.Properties, set)
	}
	return sortedTZIDs(set)
}

// Generate renders the todo as iCal text.
func (t *Todo) Generate() string {
	var inner strings.Builder
	inner.WriteString(gen.ContentLines(t.Properties))
	for _, alarm := range t.Alarms {
		inner.WriteString(alarm.Generate())
	}
	return gen.Component(string(SectionTokenVTodo), inner.String())
}

// Builder returns the todo's mutable form.
func (t *Todo) Builder() *TodoBuilder {
	b := &TodoBuilder{componentProps: componentProps{Properties: t.Properties}}
	for _, alarm := range t.Alarms {
		b.alarms = append(b.alarms, alarm.Builder())
	}
	return b
}

func (t *Todo) addTo(c *Calendar) {
	c.Todos = append(c.Todos, t)
}

// TodoBuilder is the unverified form of a Todo.
type TodoBuilder struct {
	componentProps
	alarms []*AlarmBuilder
}

// NewTodoBuilder returns an empty builder.
func NewTodoBuilder() *TodoBuilder {
	return &TodoBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *TodoBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVTodo)}
}

// AddSubComponent implements parse.Builder, accepting VALARM children.
func (b *TodoBuilder) AddSubComponent(name string, lines *parse.ContentLineParser, opts parse.Options) error {
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

func (b *TodoBuilder) tzids(into map[string]struct{}) {
	b.componentProps.tzids(into)
	for _, alarm := range b.alarms {
		alarm.tzids(into)
	}
}

// Build verifies the todo against a calendar's timezone map.
func (b *TodoBuilder) Build(opts parse.Options, tzs TZMap) (*Todo, error) {
	fields, err := extractItemFields(b.Properties, tzs)
	if err != nil {
		return nil, err
	}

	// OPTIONAL, but MUTUALLY EXCLUSIVE
	due, err := optionalOnce(b.Properties, propDue, parseDateTimeFn(tzs))
	if err != nil {
		return nil, err
	}
	duration, err := optionalOnce(b.Properties, propDuration, parseDurationProp)
	if err != nil {
		return nil, err
	}
	if due != nil && duration != nil {
		return nil, fmt.Errorf("%w: both DUE and DURATION are defined", ErrPropertyConflict)
	}

	todo := &Todo{
		itemFields: fields,
		Due:        due,
		Duration:   duration,
		Properties: b.Properties,
	}
	for _, alarmBuilder := range b.alarms {
		alarm, err := alarmBuilder.Build(opts)
		if err != nil {
			return nil, err
		}
		todo.Alarms = append(todo.Alarms, alarm)
	}
	return todo, nil
}
