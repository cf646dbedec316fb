// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata"
	"github.com/michael-gallo/caldata/model"
)

func TestVcardParser(t *testing.T) {
	input := lines(
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Ada Lovelace",
		"N:Lovelace;Ada;;;",
		"BDAY:--1210",
		"EMAIL:ada@example.com",
		"END:VCARD")

	card, err := caldata.NewVcardParser([]byte(input)).ExpectOne()
	require.NoError(t, err)

	assert.Equal(t, "4.0", card.Version())
	assert.Equal(t, "Ada Lovelace", card.FormattedName())

	bday, err := card.BDay()
	require.NoError(t, err)
	require.NotNil(t, bday)
	assert.Nil(t, bday.Year)
	require.NotNil(t, bday.Month)
	assert.Equal(t, time.December, *bday.Month)
	require.NotNil(t, bday.Day)
	assert.Equal(t, 10, *bday.Day)

	anniversary, err := card.Anniversary()
	require.NoError(t, err)
	assert.Nil(t, anniversary)

	// Round-trip identical.
	assert.Equal(t, input, card.Generate())
}

func TestVcardLowercaseInput(t *testing.T) {
	input := lines(
		"begin:vcard",
		"version:4.0",
		"fn:Grace Hopper",
		"end:vcard")

	card, err := caldata.NewVcardParser([]byte(input)).ExpectOne()
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", card.FormattedName())
}

func TestVcardValidation(t *testing.T) {
	missingFN := lines(
		"BEGIN:VCARD",
		"VERSION:4.0",
		"END:VCARD")
	_, err := caldata.NewVcardParser([]byte(missingFN)).ExpectOne()
	assert.ErrorIs(t, err, model.ErrMissingProperty)

	missingVersion := lines(
		"BEGIN:VCARD",
		"FN:No Version",
		"END:VCARD")
	_, err = caldata.NewVcardParser([]byte(missingVersion)).ExpectOne()
	assert.ErrorIs(t, err, model.ErrMissingProperty)
}

func TestVcardStream(t *testing.T) {
	input := lines(
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:First",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Second",
		"END:VCARD")

	parser := caldata.NewVcardParser([]byte(input))
	var names []string
	for card, err := range parser.All() {
		require.NoError(t, err)
		names = append(names, card.FormattedName())
	}
	assert.Equal(t, []string{"First", "Second"}, names)
}
