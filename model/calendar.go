// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/parse"
)

// Calendar is a verified VCALENDAR component, owning its timezones,
// events, todos, journals, free/busy blocks and free-standing alarms.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
type Calendar struct {
	Properties []parse.ContentLine

	TimeZones []*TimeZone
	Events    []*Event
	Todos     []*Todo
	Journals  []*Journal
	FreeBusys []*FreeBusy
	Alarms    []*Alarm

	tzs TZMap
}

// Version returns the calendar's VERSION value.
func (c *Calendar) Version() string {
	if prop := findFirst(c.Properties, propVersion); prop != nil {
		return prop.ValueText()
	}
	return ""
}

// ProdID returns the calendar's PRODID value.
func (c *Calendar) ProdID() string {
	if prop := findFirst(c.Properties, propProdID); prop != nil {
		return prop.ValueText()
	}
	return ""
}

// TimeZone returns the VTIMEZONE with the given TZID, or nil.
func (c *Calendar) TimeZone(tzid string) *TimeZone {
	for _, tz := range c.TimeZones {
		if tz.TZID() == tzid {
			return tz
		}
	}
	return nil
}

// TZMap returns the calendar's TZID lookup, as used by the typed property
// layer.
func (c *Calendar) TZMap() TZMap {
	return c.tzs
}

// TZIDs returns every TZID referenced by the calendar's components.
func (c *Calendar) TZIDs() []string {
	set := make(map[string]struct{})
	for _, item := range c.items() {
		for _, tzid := range item.TZIDs() {
			set[tzid] = struct{}{}
		}
	}
	for _, freeBusy := range c.FreeBusys {
		collectTZIDs(freeBusy.Properties, set)
	}
	return sortedTZIDs(set)
}

func (c *Calendar) items() []Item {
	out := make([]Item, 0, len(c.Events)+len(c.Todos)+len(c.Journals))
	for _, event := range c.Events {
		out = append(out, event)
	}
	for _, todo := range c.Todos {
		out = append(out, todo)
	}
	for _, journal := range c.Journals {
		out = append(out, journal)
	}
	return out
}

// Generate renders the calendar as iCal text. Sub-components come out in a
// fixed order: timezones, events, alarms, todos, journals, free/busy.
func (c *Calendar) Generate() string {
	var inner strings.Builder
	inner.WriteString(gen.ContentLines(c.Properties))
	for _, tz := range c.TimeZones {
		inner.WriteString(tz.Generate())
	}
	for _, event := range c.Events {
		inner.WriteString(event.Generate())
	}
	for _, alarm := range c.Alarms {
		inner.WriteString(alarm.Generate())
	}
	for _, todo := range c.Todos {
		inner.WriteString(todo.Generate())
	}
	for _, journal := range c.Journals {
		inner.WriteString(journal.Generate())
	}
	for _, freeBusy := range c.FreeBusys {
		inner.WriteString(freeBusy.Generate())
	}
	return gen.Component(string(SectionTokenVCalendar), inner.String())
}

// Builder returns the calendar's mutable form.
func (c *Calendar) Builder() *CalendarBuilder {
	b := &CalendarBuilder{componentProps: componentProps{Properties: c.Properties}}
	for _, tz := range c.TimeZones {
		b.timezones = append(b.timezones, tz.Builder())
	}
	for _, event := range c.Events {
		b.events = append(b.events, event.Builder())
	}
	for _, todo := range c.Todos {
		b.todos = append(b.todos, todo.Builder())
	}
	for _, journal := range c.Journals {
		b.journals = append(b.journals, journal.Builder())
	}
	for _, freeBusy := range c.FreeBusys {
		b.freeBusys = append(b.freeBusys, freeBusy.Builder())
	}
	for _, alarm := range c.Alarms {
		b.alarms = append(b.alarms, alarm.Builder())
	}
	return b
}

// CalendarBuilder is the unverified form of a Calendar.
type CalendarBuilder struct {
	componentProps
	timezones []*TimeZoneBuilder
	events    []*EventBuilder
	todos     []*TodoBuilder
	journals  []*JournalBuilder
	freeBusys []*FreeBusyBuilder
	alarms    []*AlarmBuilder
}

// NewCalendarBuilder returns an empty builder.
func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *CalendarBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVCalendar)}
}

// AddSubComponent implements parse.Builder, accepting every RFC 5545
// top-level child.
func (b *CalendarBuilder) AddSubComponent(name string, lines *parse.ContentLineParser, opts parse.Options) error {
	switch SectionToken(name) {
	case SectionTokenVEvent:
		child := NewEventBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.events = append(b.events, child)
	case SectionTokenVTodo:
		child := NewTodoBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.todos = append(b.todos, child)
	case SectionTokenVJournal:
		child := NewJournalBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.journals = append(b.journals, child)
	case SectionTokenVFreebusy:
		child := NewFreeBusyBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.freeBusys = append(b.freeBusys, child)
	case SectionTokenVTimezone:
		child := NewTimeZoneBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.timezones = append(b.timezones, child)
	case SectionTokenVAlarm:
		child := NewAlarmBuilder()
		if err := parse.Fill(child, lines, opts); err != nil {
			return err
		}
		b.alarms = append(b.alarms, child)
	default:
		return parse.InvalidComponentError(name)
	}
	return nil
}

// AddEvent attaches a pre-built event builder.
func (b *CalendarBuilder) AddEvent(event *EventBuilder) {
	b.events = append(b.events, event)
}

// AddTimeZone attaches a pre-built timezone builder.
func (b *CalendarBuilder) AddTimeZone(tz *TimeZoneBuilder) {
	b.timezones = append(b.timezones, tz)
}

// Build verifies the calendar. It checks VERSION and CALSCALE, requires
// PRODID, constructs the TZID lookup from the VTIMEZONE definitions (and,
// under RFC 7809, the bundled IANA set), and then builds every child
// against that lookup.
func (b *CalendarBuilder) Build(opts parse.Options) (*Calendar, error) {
	version, err := requiredOnce(b.Properties, propVersion, textValue)
	if err != nil {
		return nil, err
	}
	switch version {
	case "2.0":
	case "1.0":
		// Parse-accept 1.0, carry on with 2.0 semantics.
		setPropertyValue(b.Properties, propVersion, "2.0")
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidVersion, version)
	}
	if _, err := requiredOnce(b.Properties, propProdID, textValue); err != nil {
		return nil, err
	}
	calscale, err := optionalOnce(b.Properties, propCalScale, textValue)
	if err != nil {
		return nil, err
	}
	if calscale != nil && *calscale != "GREGORIAN" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCalScale, *calscale)
	}

	cal := &Calendar{Properties: b.Properties, tzs: make(TZMap)}
	for _, tzBuilder := range b.timezones {
		tz, err := tzBuilder.Build(opts)
		if err != nil {
			return nil, err
		}
		cal.TimeZones = append(cal.TimeZones, tz)
		cal.tzs[tz.TZID()] = tz.TZ()
	}

	if opts.RFC7809 {
		if err := b.synthesizeMissing(cal); err != nil {
			return nil, err
		}
	}

	for _, eventBuilder := range b.events {
		event, err := eventBuilder.Build(opts, cal.tzs)
		if err != nil {
			return nil, err
		}
		cal.Events = append(cal.Events, event)
	}
	for _, todoBuilder := range b.todos {
		todo, err := todoBuilder.Build(opts, cal.tzs)
		if err != nil {
			return nil, err
		}
		cal.Todos = append(cal.Todos, todo)
	}
	for _, journalBuilder := range b.journals {
		journal, err := journalBuilder.Build(opts, cal.tzs)
		if err != nil {
			return nil, err
		}
		cal.Journals = append(cal.Journals, journal)
	}
	for _, freeBusyBuilder := range b.freeBusys {
		freeBusy, err := freeBusyBuilder.Build(opts, cal.tzs)
		if err != nil {
			return nil, err
		}
		cal.FreeBusys = append(cal.FreeBusys, freeBusy)
	}
	for _, alarmBuilder := range b.alarms {
		alarm, err := alarmBuilder.Build(opts)
		if err != nil {
			return nil, err
		}
		cal.Alarms = append(cal.Alarms, alarm)
	}
	return cal, nil
}

// synthesizeMissing inserts bundled VTIMEZONE definitions for TZIDs the
// document references but does not define.
func (b *CalendarBuilder) synthesizeMissing(cal *Calendar) error {
	referenced := make(map[string]struct{})
	for _, child := range b.events {
		child.tzids(referenced)
	}
	for _, child := range b.todos {
		child.tzids(referenced)
	}
	for _, child := range b.journals {
		child.tzids(referenced)
	}
	for _, child := range b.freeBusys {
		child.tzids(referenced)
	}

	for _, tzid := range sortedTZIDs(referenced) {
		if _, defined := cal.tzs[tzid]; defined {
			continue
		}
		tz, err := TimeZoneFromTZID(tzid)
		if err != nil {
			return err
		}
		cal.TimeZones = append(cal.TimeZones, tz)
		cal.tzs[tzid] = tz.TZ()
	}
	return nil
}
