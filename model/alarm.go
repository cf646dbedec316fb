// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/parse"
)

// AlarmAction represents the possible values for a VALARM's ACTION field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio     AlarmAction = "AUDIO"
	AlarmActionDisplay   AlarmAction = "DISPLAY"
	AlarmActionEmail     AlarmAction = "EMAIL"
	AlarmActionProcedure AlarmAction = "PROCEDURE"
)

// Alarm is a verified VALARM component: a property bag with no
// sub-components.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	Properties []parse.ContentLine
}

// Action returns the alarm's ACTION value.
func (a *Alarm) Action() AlarmAction {
	if prop := findFirst(a.Properties, propAction); prop != nil {
		return AlarmAction(prop.ValueText())
	}
	return ""
}

// Trigger returns the alarm's raw TRIGGER value.
func (a *Alarm) Trigger() string {
	if prop := findFirst(a.Properties, propTrigger); prop != nil {
		return prop.ValueText()
	}
	return ""
}

// Generate renders the alarm as iCal text.
func (a *Alarm) Generate() string {
	return gen.Component(string(SectionTokenVAlarm), gen.ContentLines(a.Properties))
}

// Builder returns the alarm's mutable form.
func (a *Alarm) Builder() *AlarmBuilder {
	return &AlarmBuilder{componentProps{Properties: a.Properties}}
}

// AlarmBuilder is the unverified form of an Alarm.
type AlarmBuilder struct {
	componentProps
}

// NewAlarmBuilder returns an empty builder.
func NewAlarmBuilder() *AlarmBuilder {
	return &AlarmBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *AlarmBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVAlarm)}
}

// AddSubComponent implements parse.Builder. Alarms have no sub-components.
func (b *AlarmBuilder) AddSubComponent(name string, _ *parse.ContentLineParser, _ parse.Options) error {
	return parse.InvalidComponentError(name)
}

// Build verifies the alarm: ACTION and TRIGGER are required once, and the
// DISPLAY and EMAIL actions carry their additional required properties.
func (b *AlarmBuilder) Build(_ parse.Options) (*Alarm, error) {
	action, err := requiredOnce(b.Properties, propAction, textValue)
	if err != nil {
		return nil, err
	}
	if _, err := requiredOnce(b.Properties, propTrigger, textValue); err != nil {
		return nil, err
	}

	switch AlarmAction(action) {
	case AlarmActionDisplay:
		if findFirst(b.Properties, propDescription) == nil {
			return nil, fmt.Errorf("%w: DESCRIPTION (ACTION=DISPLAY)", ErrMissingProperty)
		}
	case AlarmActionEmail:
		if findFirst(b.Properties, propDescription) == nil {
			return nil, fmt.Errorf("%w: DESCRIPTION (ACTION=EMAIL)", ErrMissingProperty)
		}
		if findFirst(b.Properties, propSummary) == nil {
			return nil, fmt.Errorf("%w: SUMMARY (ACTION=EMAIL)", ErrMissingProperty)
		}
		if findFirst(b.Properties, propAttendee) == nil {
			return nil, fmt.Errorf("%w: ATTENDEE (ACTION=EMAIL)", ErrMissingProperty)
		}
	}

	return &Alarm{Properties: b.Properties}, nil
}
