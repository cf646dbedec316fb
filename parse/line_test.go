// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/caldata/parse"
)

func TestLineReaderUnfolding(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		want  []parse.Line
	}{
		{
			name:  "Simple CRLF lines",
			input: []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"),
			want: []parse.Line{
				{Text: "BEGIN:VCALENDAR", Number: 1},
				{Text: "VERSION:2.0", Number: 2},
				{Text: "END:VCALENDAR", Number: 3},
			},
		},
		{
			name:  "Folded line joins continuations",
			input: []byte("SUMMARY:Hello\r\n  World\r\n"),
			want:  []parse.Line{{Text: "SUMMARY:Hello World", Number: 1}},
		},
		{
			name:  "Tab continuation",
			input: []byte("SUMMARY:Hello\r\n\tWorld\r\n"),
			want:  []parse.Line{{Text: "SUMMARY:HelloWorld", Number: 1}},
		},
		{
			name:  "Multi-octet codepoint split across a fold",
			input: []byte("SUMMARY:\xc3\r\n \xbc"),
			want:  []parse.Line{{Text: "SUMMARY:ü", Number: 1}},
		},
		{
			name:  "Bare LF terminators are tolerated",
			input: []byte("BEGIN:VCARD\nFN:x\nEND:VCARD\n"),
			want: []parse.Line{
				{Text: "BEGIN:VCARD", Number: 1},
				{Text: "FN:x", Number: 2},
				{Text: "END:VCARD", Number: 3},
			},
		},
		{
			name:  "Empty physical lines are skipped",
			input: []byte("A:1\r\n\r\nB:2\r\n"),
			want: []parse.Line{
				{Text: "A:1", Number: 1},
				{Text: "B:2", Number: 3},
			},
		},
		{
			name:  "Line numbering follows the fold",
			input: []byte("A:1\r\n 2\r\nB:3\r\n"),
			want: []parse.Line{
				{Text: "A:12", Number: 1},
				{Text: "B:3", Number: 3},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := parse.NewLineReader(tc.input)
			var got []parse.Line
			for line, err := range reader.All() {
				require.NoError(t, err)
				got = append(got, line)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineReaderErrors(t *testing.T) {
	testCases := []struct {
		name      string
		input     []byte
		expectErr error
	}{
		{
			name:      "Continuation ending in NUL is not valid UTF-8",
			input:     []byte("\xc3\r\n \x00"),
			expectErr: parse.ErrInvalidUTF8,
		},
		{
			name:      "Truncated multi-octet sequence",
			input:     []byte("\xc3\r\n "),
			expectErr: parse.ErrInvalidUTF8,
		},
		{
			name:      "Space between the octets breaks the sequence",
			input:     []byte("\xc3 \r\n \xbc"),
			expectErr: parse.ErrInvalidUTF8,
		},
		{
			name:      "Lone CR at end of input",
			input:     []byte("SUMMARY:x\r"),
			expectErr: parse.ErrUnterminatedLine,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := parse.NewLineReader(tc.input)
			_, err := reader.Next()
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestLineReaderErrorCitesLineNumber(t *testing.T) {
	reader := parse.NewLineReader([]byte("OK:1\r\nBAD:\xff\r\n"))
	_, err := reader.Next()
	require.NoError(t, err)
	_, err = reader.Next()
	require.ErrorIs(t, err, parse.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLineReaderExhaustion(t *testing.T) {
	reader := parse.NewLineReader([]byte("A:1\r\n"))
	_, err := reader.Next()
	require.NoError(t, err)
	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
	// Next keeps reporting io.EOF.
	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}
