// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
)

// FreeBusyStatus represents the possible values for the FBTYPE parameter of
// a FREEBUSY property.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
type FreeBusyStatus string

const (
	FreeBusyStatusFree            FreeBusyStatus = "FREE"
	FreeBusyStatusBusy            FreeBusyStatus = "BUSY"
	FreeBusyStatusBusyTentative   FreeBusyStatus = "BUSY-TENTATIVE"
	FreeBusyStatusBusyUnavailable FreeBusyStatus = "BUSY-UNAVAILABLE"
)

// FreeBusy is a verified VFREEBUSY component: a request for, reply to, or
// publication of free/busy time.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	uid     string
	DTStamp DateTimeProp
	DTStart *DateTimeProp
	DTEnd   *DateTimeProp

	// Periods holds the parsed FREEBUSY property lines in document order.
	Periods []DateTimeListProp

	Properties []parse.ContentLine
}

// UID returns the component's unique identifier.
func (f *FreeBusy) UID() string {
	return f.uid
}

// Status returns the FBTYPE of the given FREEBUSY line, defaulting to BUSY.
func (f *FreeBusy) Status(period DateTimeListProp) FreeBusyStatus {
	if fbtype, ok := period.Params.Get("FBTYPE"); ok {
		return FreeBusyStatus(fbtype)
	}
	return FreeBusyStatusBusy
}

// TZIDs returns the TZIDs referenced by the component.
func (f *FreeBusy) TZIDs() []string {
	set := make(map[string]struct{})
	collectTZIDs(f.Properties, set)
	return sortedTZIDs(set)
}

// Generate renders the component as iCal text.
func (f *FreeBusy) Generate() string {
	return gen.Component(string(SectionTokenVFreebusy), gen.ContentLines(f.Properties))
}

// Builder returns the component's mutable form.
func (f *FreeBusy) Builder() *FreeBusyBuilder {
	return &FreeBusyBuilder{componentProps{Properties: f.Properties}}
}

// FreeBusyBuilder is the unverified form of a FreeBusy.
type FreeBusyBuilder struct {
	componentProps
}

// NewFreeBusyBuilder returns an empty builder.
func NewFreeBusyBuilder() *FreeBusyBuilder {
	return &FreeBusyBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *FreeBusyBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVFreebusy)}
}

// AddSubComponent implements parse.Builder. Free/busy blocks have no
// sub-components.
func (b *FreeBusyBuilder) AddSubComponent(name string, _ *parse.ContentLineParser, _ parse.Options) error {
	return parse.InvalidComponentError(name)
}

// Build verifies the component against a calendar's timezone map.
func (b *FreeBusyBuilder) Build(_ parse.Options, tzs TZMap) (*FreeBusy, error) {
	uid, err := requiredOnce(b.Properties, propUID, textValue)
	if err != nil {
		return nil, err
	}
	dtstamp, err := requiredOnce(b.Properties, propDTStamp, parseDateTimeFn(tzs))
	if err != nil {
		return nil, err
	}
	dtstart, err := optionalOnce(b.Properties, propDTStart, parseDateTimeFn(tzs))
	if err != nil {
		return nil, err
	}
	dtend, err := optionalOnce(b.Properties, propDTEnd, parseDateTimeFn(tzs))
	if err != nil {
		return nil, err
	}
	periods, err := getAll(b.Properties, propFreeBusy, func(line parse.ContentLine) (DateTimeListProp, error) {
		return parseDateTimeListProp(line, icaltime.TypePeriod, tzs)
	})
	if err != nil {
		return nil, err
	}

	return &FreeBusy{
		uid:        uid,
		DTStamp:    dtstamp,
		DTStart:    dtstart,
		DTEnd:      dtend,
		Periods:    periods,
		Properties: b.Properties,
	}, nil
}
