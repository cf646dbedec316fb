// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata"
	"github.com/michael-gallo/caldata/model"
)

func TestRFC7809Synthesis(t *testing.T) {
	// Without the option the undefined TZID is an error.
	_, err := caldata.NewCalendarParser([]byte(testRFC7809EventInput)).ExpectOne()
	assert.ErrorIs(t, err, model.ErrUnknownTZID)

	// With it, the missing VTIMEZONE is synthesized from the bundled set.
	cal, err := caldata.NewCalendarParser([]byte(testRFC7809EventInput), caldata.WithRFC7809()).ExpectOne()
	require.NoError(t, err)

	require.Len(t, cal.TimeZones, 1)
	assert.Equal(t, "Europe/Berlin", cal.TimeZones[0].TZID())

	rendered := cal.Generate()
	assert.Contains(t, rendered, "BEGIN:VTIMEZONE\r\n")
	assert.Contains(t, rendered, "TZID:Europe/Berlin\r\n")

	// The synthesized calendar parses again without the option.
	_, err = caldata.NewCalendarParser([]byte(rendered)).ExpectOne()
	assert.NoError(t, err)
}

func TestRFC7809SynthesisForAlias(t *testing.T) {
	input := lines(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20240101T000000Z",
		"DTSTART;TZID=W. Europe Standard Time:20240610T090000",
		"END:VEVENT",
		"END:VCALENDAR")

	cal, err := caldata.NewCalendarParser([]byte(input), caldata.WithRFC7809()).ExpectOne()
	require.NoError(t, err)
	require.Len(t, cal.TimeZones, 1)
	assert.Equal(t, "W. Europe Standard Time", cal.TimeZones[0].TZID())
	assert.Equal(t, "Europe/Berlin", cal.TimeZones[0].TZ().Name())
}

func TestRFC7809ObjectParser(t *testing.T) {
	_, err := caldata.NewObjectParser([]byte(testRFC7809EventInput)).ExpectOne()
	assert.Error(t, err)

	object, err := caldata.NewObjectParser([]byte(testRFC7809EventInput), caldata.WithRFC7809()).ExpectOne()
	require.NoError(t, err)
	assert.Equal(t, []string{"Europe/Berlin"}, object.TZIDs())
	require.Len(t, object.TimeZones, 1)
}

func TestRFC7809UnresolvableStillFails(t *testing.T) {
	input := lines(
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20240101T000000Z",
		"DTSTART;TZID=Nowhere/AtAll:20240610T090000",
		"END:VEVENT",
		"END:VCALENDAR")

	_, err := caldata.NewCalendarParser([]byte(input), caldata.WithRFC7809()).ExpectOne()
	assert.ErrorIs(t, err, model.ErrUnknownTZID)
}
