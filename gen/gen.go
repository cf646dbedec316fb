// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package gen renders parsed components back to RFC 5545 wire text:
// CRLF-terminated content lines folded at 75 octets.
package gen

import (
	"strings"
	"unicode/utf8"

	"github.com/michael-gallo/caldata/parse"
)

// Emitter is implemented by every verified component.
type Emitter interface {
	// Generate renders the component as CRLF-delimited iCal/vCard text.
	Generate() string
}

// Lines SHOULD NOT be longer than 75 octets, excluding the line break
// (RFC 5545 section 3.1).
const maxLineOctets = 75

// ContentLine renders a single content line, folded, with a trailing CRLF.
// Parameter values containing ":", ";" or "," are double-quoted.
func ContentLine(line parse.ContentLine) string {
	var b strings.Builder
	b.WriteString(line.Name)
	for _, param := range line.Params {
		b.WriteByte(';')
		b.WriteString(param.Name)
		b.WriteByte('=')
		for i, value := range param.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if strings.ContainsAny(value, ":;,") {
				b.WriteByte('"')
				b.WriteString(value)
				b.WriteByte('"')
			} else {
				b.WriteString(value)
			}
		}
	}
	b.WriteByte(':')
	if line.Value != nil {
		b.WriteString(*line.Value)
	}
	return Fold(b.String()) + "\r\n"
}

// ContentLines renders a property list in document order.
func ContentLines(lines []parse.ContentLine) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(ContentLine(line))
	}
	return b.String()
}

// Component renders a BEGIN/END bracket around already rendered inner text.
func Component(name, inner string) string {
	return "BEGIN:" + name + "\r\n" + inner + "END:" + name + "\r\n"
}

// Fold splits a logical line into physical lines of at most 75 octets,
// joined by CRLF plus a single space. Multi-byte UTF-8 sequences are never
// split.
func Fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	budget := maxLineOctets
	lineOctets := 0
	for _, r := range line {
		size := utf8.RuneLen(r)
		if lineOctets+size > budget {
			b.WriteString("\r\n ")
			// The leading space of a continuation counts toward its 75.
			budget = maxLineOctets - 1
			lineOctets = 0
		}
		b.WriteRune(r)
		lineOctets += size
	}
	return b.String()
}
