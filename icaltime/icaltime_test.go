// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata/icaltime"
)

func TestParseDateTime(t *testing.T) {
	berlin, err := icaltime.Olson("Europe/Berlin")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		tz       icaltime.Tz
		wantTz   string
		wantICal string
	}{
		{
			name:     "UTC via Z suffix",
			input:    "19700329T020000Z",
			tz:       icaltime.Local(),
			wantTz:   "UTC",
			wantICal: "19700329T020000Z",
		},
		{
			name:     "Floating without suffix",
			input:    "19700329T020000",
			tz:       icaltime.Local(),
			wantTz:   "Local",
			wantICal: "19700329T020000",
		},
		{
			name:     "Zoned via TZID context",
			input:    "20240101T090000",
			tz:       berlin,
			wantTz:   "Europe/Berlin",
			wantICal: "20240101T090000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := icaltime.ParseDateTime(tc.input, tc.tz)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTz, got.Tz.Name())
			assert.Equal(t, tc.wantICal, got.ICal())
		})
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "2024", "20240101", "20240101T9000", "not-a-time"} {
		_, err := icaltime.ParseDateTime(input, icaltime.Local())
		assert.ErrorIs(t, err, icaltime.ErrInvalidDateTime, input)
	}
}

func TestParseDate(t *testing.T) {
	date, err := icaltime.ParseDate("20240229")
	require.NoError(t, err)
	assert.Equal(t, icaltime.CalDate{Year: 2024, Month: time.February, Day: 29}, date)
	assert.Equal(t, "20240229", date.ICal())

	_, err = icaltime.ParseDate("20230229")
	assert.ErrorIs(t, err, icaltime.ErrInvalidDate)
}

func TestDateTimeInstant(t *testing.T) {
	got, err := icaltime.ParseDateTime("20240101T090000Z", icaltime.Local())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC), got.Time())
}

func TestOlson(t *testing.T) {
	tz, err := icaltime.Olson("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", tz.Name())
	assert.False(t, tz.IsLocal())
	assert.False(t, tz.IsUTC())

	_, err = icaltime.Olson("Not/AZone")
	assert.ErrorIs(t, err, icaltime.ErrUnknownOlsonID)

	assert.True(t, icaltime.UTC().IsUTC())
	assert.True(t, icaltime.Local().IsLocal())
	assert.Equal(t, "Local", icaltime.Local().Name())
}

func TestParsePeriod(t *testing.T) {
	explicit, err := icaltime.ParsePeriod("19970101T180000Z/19970102T070000Z", icaltime.Local())
	require.NoError(t, err)
	require.NotNil(t, explicit.End)
	assert.Equal(t, "19970101T180000Z/19970102T070000Z", explicit.ICal())

	byDuration, err := icaltime.ParsePeriod("19970101T180000Z/PT5H30M", icaltime.Local())
	require.NoError(t, err)
	require.NotNil(t, byDuration.Duration)
	assert.Equal(t, "19970101T180000Z/PT5H30M", byDuration.ICal())
	assert.Equal(t,
		time.Date(1997, time.January, 1, 23, 30, 0, 0, time.UTC),
		byDuration.EndTime())

	_, err = icaltime.ParsePeriod("19970101T180000Z", icaltime.Local())
	assert.ErrorIs(t, err, icaltime.ErrInvalidPeriod)
}

func TestParsePartialDate(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"19850412", "19850412"},
		{"1985-04", "1985-04"},
		{"1985", "1985"},
		{"--0412", "--0412"},
		{"--04", "--04"},
		{"---12", "---12"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := icaltime.ParsePartialDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	for _, input := range []string{"", "--", "1985-13", "--1301", "---32", "19850432"} {
		_, err := icaltime.ParsePartialDate(input)
		assert.ErrorIs(t, err, icaltime.ErrInvalidPartialDate, input)
	}
}

func TestIsDateAndIsFloating(t *testing.T) {
	date, err := icaltime.ParseDate("20240101")
	require.NoError(t, err)
	floating, err := icaltime.ParseDateTime("20240101T090000", icaltime.Local())
	require.NoError(t, err)
	utc, err := icaltime.ParseDateTime("20240101T090000Z", icaltime.Local())
	require.NoError(t, err)

	assert.True(t, icaltime.IsDate(date))
	assert.False(t, icaltime.IsDate(floating))

	assert.True(t, icaltime.IsFloating(date))
	assert.True(t, icaltime.IsFloating(floating))
	assert.False(t, icaltime.IsFloating(utc))
}
