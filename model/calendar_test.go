// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model_test

import (
	_ "embed"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/model"
	"github.com/michael-gallo/caldata/parse"
)

var (
	//go:embed testdata/single_event_utc.ics
	testSingleEventUTCInput string
	//go:embed testdata/everything.ics
	testEverythingInput string
	//go:embed testdata/rfc7809_event.ics
	testRFC7809EventInput string
)

// lines joins its arguments with CRLF, the way calendars arrive on the
// wire.
func lines(parts ...string) string {
	return strings.Join(parts, "\r\n") + "\r\n"
}

func parseCalendar(t *testing.T, input string, opts ...caldata.Option) *model.Calendar {
	t.Helper()
	cal, err := caldata.NewCalendarParser([]byte(input), opts...).ExpectOne()
	require.NoError(t, err)
	return cal
}

func TestParseSingleEventUTC(t *testing.T) {
	cal := parseCalendar(t, testSingleEventUTCInput)

	assert.Equal(t, "2.0", cal.Version())
	assert.Equal(t, "-//x//y//EN", cal.ProdID())
	require.Len(t, cal.Events, 1)

	event := cal.Events[0]
	assert.Equal(t, "a", event.UID())
	require.NotNil(t, event.DTStart)
	assert.Equal(t,
		time.Date(1970, time.March, 29, 2, 0, 0, 0, time.UTC),
		event.DTStart.DateTime().Time())

	// Round-trip identical.
	assert.Equal(t, testSingleEventUTCInput, cal.Generate())
}

func TestParseEverythingRoundTrip(t *testing.T) {
	cal := parseCalendar(t, testEverythingInput)

	require.Len(t, cal.TimeZones, 1)
	require.Len(t, cal.Events, 2)
	require.Len(t, cal.Todos, 1)
	require.Len(t, cal.Journals, 1)
	require.Len(t, cal.FreeBusys, 1)

	assert.Equal(t, "America/New_York", cal.TimeZones[0].TZID())
	require.Len(t, cal.Events[0].Alarms, 1)
	assert.Equal(t, model.AlarmActionDisplay, cal.Events[0].Alarms[0].Action())
	assert.True(t, cal.Events[0].HasRecurrenceSet())
	require.NotNil(t, cal.Events[1].RecurrenceIDProp())

	assert.Equal(t, testEverythingInput, cal.Generate())

	// The emitted text parses back to the same output (idempotence).
	again := parseCalendar(t, cal.Generate())
	assert.Equal(t, cal.Generate(), again.Generate())
}

func TestCalendarHeaderValidation(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr error
	}{
		{
			name: "Missing VERSION",
			input: lines(
				"BEGIN:VCALENDAR",
				"PRODID:-//x//y//EN",
				"END:VCALENDAR"),
			expectErr: model.ErrMissingProperty,
		},
		{
			name: "Missing PRODID",
			input: lines(
				"BEGIN:VCALENDAR",
				"VERSION:2.0",
				"END:VCALENDAR"),
			expectErr: model.ErrMissingProperty,
		},
		{
			name: "Unsupported VERSION",
			input: lines(
				"BEGIN:VCALENDAR",
				"VERSION:3.0",
				"PRODID:-//x//y//EN",
				"END:VCALENDAR"),
			expectErr: model.ErrInvalidVersion,
		},
		{
			name: "Non-Gregorian CALSCALE",
			input: lines(
				"BEGIN:VCALENDAR",
				"VERSION:2.0",
				"PRODID:-//x//y//EN",
				"CALSCALE:JULIAN",
				"END:VCALENDAR"),
			expectErr: model.ErrInvalidCalScale,
		},
		{
			name: "Duplicate VERSION",
			input: lines(
				"BEGIN:VCALENDAR",
				"VERSION:2.0",
				"VERSION:2.0",
				"PRODID:-//x//y//EN",
				"END:VCALENDAR"),
			expectErr: model.ErrPropertyConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := caldata.NewCalendarParser([]byte(tc.input)).ExpectOne()
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestVersionOneIsNormalized(t *testing.T) {
	cal := parseCalendar(t, lines(
		"BEGIN:VCALENDAR",
		"VERSION:1.0",
		"PRODID:-//x//y//EN",
		"END:VCALENDAR"))
	assert.Equal(t, "2.0", cal.Version())
	assert.Contains(t, cal.Generate(), "VERSION:2.0\r\n")
}

func TestEventCardinality(t *testing.T) {
	event := func(props ...string) string {
		header := []string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"PRODID:-//x//y//EN",
			"BEGIN:VEVENT",
		}
		return lines(append(append(header, props...), "END:VEVENT", "END:VCALENDAR")...)
	}

	testCases := []struct {
		name      string
		input     string
		expectErr error
	}{
		{
			name:      "Missing UID",
			input:     event("DTSTAMP:20240101T000000Z"),
			expectErr: model.ErrMissingProperty,
		},
		{
			name:      "Missing DTSTAMP",
			input:     event("UID:a"),
			expectErr: model.ErrMissingProperty,
		},
		{
			name: "Duplicate DTSTART",
			input: event(
				"UID:a",
				"DTSTAMP:20240101T000000Z",
				"DTSTART:20240101T090000Z",
				"DTSTART:20240101T100000Z"),
			expectErr: model.ErrPropertyConflict,
		},
		{
			name: "DTEND and DURATION are mutually exclusive",
			input: event(
				"UID:a",
				"DTSTAMP:20240101T000000Z",
				"DTSTART:20240101T090000Z",
				"DTEND:20240101T100000Z",
				"DURATION:PT1H"),
			expectErr: model.ErrPropertyConflict,
		},
		{
			name: "RECURRENCE-ID DATE against DTSTART DATE-TIME",
			input: event(
				"UID:a",
				"DTSTAMP:20240101T000000Z",
				"DTSTART:20240101T090000Z",
				"RECURRENCE-ID;VALUE=DATE:20240101"),
			expectErr: model.ErrDtstartNotMatchingRecurID,
		},
		{
			name: "RECURRENCE-ID floating against DTSTART UTC",
			input: event(
				"UID:a",
				"DTSTAMP:20240101T000000Z",
				"DTSTART:20240101T090000Z",
				"RECURRENCE-ID:20240101T090000"),
			expectErr: model.ErrDtstartNotMatchingRecurID,
		},
		{
			name: "Unknown TZID",
			input: event(
				"UID:a",
				"DTSTAMP:20240101T000000Z",
				"DTSTART;TZID=Nowhere/AtAll:20240101T090000"),
			expectErr: model.ErrUnknownTZID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := caldata.NewCalendarParser([]byte(tc.input)).ExpectOne()
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestTodoDueDurationConflict(t *testing.T) {
	input := lines(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VTODO",
		"UID:t",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240101T090000Z",
		"DUE:20240102T090000Z",
		"DURATION:PT1H",
		"END:VTODO",
		"END:VCALENDAR")

	_, err := caldata.NewCalendarParser([]byte(input)).ExpectOne()
	assert.ErrorIs(t, err, model.ErrPropertyConflict)
}

func TestAlarmValidation(t *testing.T) {
	calendarWithAlarm := func(alarmProps ...string) string {
		header := []string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"PRODID:-//x//y//EN",
			"BEGIN:VEVENT",
			"UID:a",
			"DTSTAMP:20240101T000000Z",
			"BEGIN:VALARM",
		}
		return lines(append(append(header, alarmProps...),
			"END:VALARM", "END:VEVENT", "END:VCALENDAR")...)
	}

	_, err := caldata.NewCalendarParser([]byte(calendarWithAlarm("TRIGGER:-PT5M"))).ExpectOne()
	assert.ErrorIs(t, err, model.ErrMissingProperty)

	_, err = caldata.NewCalendarParser([]byte(calendarWithAlarm("ACTION:AUDIO"))).ExpectOne()
	assert.ErrorIs(t, err, model.ErrMissingProperty)

	_, err = caldata.NewCalendarParser([]byte(calendarWithAlarm("ACTION:DISPLAY", "TRIGGER:-PT5M"))).ExpectOne()
	assert.ErrorIs(t, err, model.ErrMissingProperty, "DISPLAY alarms need a DESCRIPTION")

	cal := parseCalendar(t, calendarWithAlarm("ACTION:DISPLAY", "TRIGGER:-PT5M", "DESCRIPTION:Ping"))
	require.Len(t, cal.Events[0].Alarms, 1)
	assert.Equal(t, "-PT5M", cal.Events[0].Alarms[0].Trigger())
}

func TestEventLastOccurrence(t *testing.T) {
	cal := parseCalendar(t, lines(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240101T090000Z",
		"DURATION:PT2H",
		"END:VEVENT",
		"END:VCALENDAR"))

	last := cal.Events[0].LastOccurrence()
	require.NotNil(t, last)
	assert.Equal(t,
		time.Date(2024, time.January, 1, 11, 0, 0, 0, time.UTC),
		last.Time())
}

func TestUnknownSubComponent(t *testing.T) {
	input := lines(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VSPACESHIP",
		"END:VSPACESHIP",
		"END:VCALENDAR")
	_, err := caldata.NewCalendarParser([]byte(input)).ExpectOne()
	assert.ErrorIs(t, err, parse.ErrInvalidComponent)
}

func TestCalendarTZMapResolvesDefinedZone(t *testing.T) {
	cal := parseCalendar(t, testEverythingInput)
	tz, ok := cal.TZMap()["America/New_York"]
	require.True(t, ok)
	assert.Equal(t, "America/New_York", tz.Name())

	event := cal.Events[0]
	require.NotNil(t, event.DTStart)
	start, isDateTime := event.DTStart.Value.(icaltime.CalDateTime)
	require.True(t, isDateTime)
	assert.Equal(t, "America/New_York", start.Tz.Name())
}
