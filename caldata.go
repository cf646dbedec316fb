// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package caldata parses, validates and emits iCalendar (RFC 5545,
// RFC 7809) and vCard (RFC 6350) data, including a recurrence-rule engine
// for validating and expanding recurring components.
//
// Three parser entry points cover the common shapes: NewCalendarParser
// yields verified calendars, NewObjectParser yields calendar objects (one
// UID group per calendar), and NewVcardParser yields contacts. Each accepts
// a byte slice and returns a lazy parser; iterate with Next or All, or use
// ExpectOne for inputs that must hold exactly one component.
package caldata

import (
	"github.com/michael-gallo/caldata/model"
	"github.com/michael-gallo/caldata/parse"
)

// Option configures a parser.
type Option = parse.Option

// WithRFC7809 makes parsers synthesize missing VTIMEZONE definitions from
// the bundled IANA set.
func WithRFC7809() Option {
	return parse.WithRFC7809()
}

// NewCalendarParser returns a parser yielding one verified Calendar per
// top-level VCALENDAR in data.
func NewCalendarParser(data []byte, opts ...Option) *parse.ComponentParser[*model.CalendarBuilder, *model.Calendar] {
	return parse.NewComponentParser(data, model.NewCalendarBuilder, (*model.CalendarBuilder).Build, opts...)
}

// NewObjectParser returns a parser yielding one CalendarObject per
// top-level VCALENDAR in data. A calendar holding several UID groups fails
// with ErrDifferingUIDs.
func NewObjectParser(data []byte, opts ...Option) *parse.ComponentParser[*model.CalendarBuilder, *model.CalendarObject] {
	build := func(b *model.CalendarBuilder, o parse.Options) (*model.CalendarObject, error) {
		cal, err := b.Build(o)
		if err != nil {
			return nil, err
		}
		return model.SingleObject(cal)
	}
	return parse.NewComponentParser(data, model.NewCalendarBuilder, build, opts...)
}

// NewVcardParser returns a parser yielding one verified Contact per
// top-level VCARD in data.
func NewVcardParser(data []byte, opts ...Option) *parse.ComponentParser[*model.ContactBuilder, *model.Contact] {
	return parse.NewComponentParser(data, model.NewContactBuilder, (*model.ContactBuilder).Build, opts...)
}

// NewContentLineParser returns the raw content-line stream over data, for
// callers that want the middle of the pipeline.
func NewContentLineParser(data []byte) *parse.ContentLineParser {
	return parse.NewContentLineParser(data)
}

// NewLineReader returns the logical-line stream over data.
func NewLineReader(data []byte) *parse.LineReader {
	return parse.NewLineReader(data)
}
