// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gen_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/parse"
)

func TestContentLineRendering(t *testing.T) {
	value := "mailto:john@example.com"
	line := parse.ContentLine{
		Name: "ORGANIZER",
		Params: parse.Params{
			{Name: "CN", Values: []string{"Doe; John"}},
			{Name: "ROLE", Values: []string{"CHAIR"}},
		},
		Value: &value,
	}
	assert.Equal(t,
		"ORGANIZER;CN=\"Doe; John\";ROLE=CHAIR:mailto:john@example.com\r\n",
		gen.ContentLine(line))
}

func TestContentLineNilValue(t *testing.T) {
	line := parse.ContentLine{Name: "DESCRIPTION"}
	assert.Equal(t, "DESCRIPTION:\r\n", gen.ContentLine(line))
}

func TestContentLineMultiValueParam(t *testing.T) {
	value := "mailto:x@example.com"
	line := parse.ContentLine{
		Name: "ATTENDEE",
		Params: parse.Params{
			{Name: "MEMBER", Values: []string{"a", "b,c"}},
		},
		Value: &value,
	}
	assert.Equal(t, "ATTENDEE;MEMBER=a,\"b,c\":mailto:x@example.com\r\n", gen.ContentLine(line))
}

func TestFoldLongLines(t *testing.T) {
	// 200 copies of a two-octet codepoint force folds that must not land
	// inside a codepoint.
	value := strings.Repeat("ü", 200)
	rendered := gen.ContentLine(parse.NewContentLine("SUMMARY", nil, value))

	physical := strings.Split(strings.TrimSuffix(rendered, "\r\n"), "\r\n")
	require.Greater(t, len(physical), 1)
	for i, line := range physical {
		assert.LessOrEqual(t, len(line), 75, "physical line %d too long", i)
		assert.True(t, utf8.ValidString(line), "physical line %d splits a codepoint", i)
		if i > 0 {
			assert.True(t, strings.HasPrefix(line, " "))
		}
	}

	// Unfolding restores the logical line.
	reader := parse.NewLineReader([]byte(rendered))
	logical, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:"+value, logical.Text)
}

func TestFoldShortLineUntouched(t *testing.T) {
	assert.Equal(t, "SUMMARY:short", gen.Fold("SUMMARY:short"))
}
