// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
	"github.com/michael-gallo/caldata/rrule"
	"github.com/michael-gallo/caldata/tzdata"
)

// TransitionKind distinguishes the two VTIMEZONE sub-components.
type TransitionKind string

const (
	TransitionStandard TransitionKind = "STANDARD"
	TransitionDaylight TransitionKind = "DAYLIGHT"
)

// Transition is a verified STANDARD or DAYLIGHT sub-component of a
// VTIMEZONE: the onset (DTSTART), the offset change, and the recurrence of
// the change.
type Transition struct {
	Kind       TransitionKind
	Properties []parse.ContentLine
	DTStart    DateTimeProp

	rrules []*rrule.RRule
	rdates []DateTimeListProp
}

// Generate renders the transition as iCal text.
func (t *Transition) Generate() string {
	return gen.Component(string(t.Kind), gen.ContentLines(t.Properties))
}

// TransitionBuilder is the unverified form of a Transition.
type TransitionBuilder struct {
	componentProps
	kind TransitionKind
}

// NewTransitionBuilder returns an empty builder of the given kind.
func NewTransitionBuilder(kind TransitionKind) *TransitionBuilder {
	return &TransitionBuilder{kind: kind}
}

// ComponentNames implements parse.Builder.
func (b *TransitionBuilder) ComponentNames() []string {
	return []string{string(TransitionStandard), string(TransitionDaylight)}
}

// AddSubComponent implements parse.Builder. Transitions have no
// sub-components.
func (b *TransitionBuilder) AddSubComponent(name string, _ *parse.ContentLineParser, _ parse.Options) error {
	return parse.InvalidComponentError(name)
}

// Build verifies the transition. DTSTART, TZOFFSETFROM and TZOFFSETTO are
// required once. RRULEs are validated with the onset treated as UTC, which
// enforces RFC 5545's rule that UNTIL inside a VTIMEZONE must be given in
// UTC.
func (b *TransitionBuilder) Build(_ parse.Options) (*Transition, error) {
	dtstart, err := requiredOnce(b.Properties, propDTStart, func(line parse.ContentLine) (DateTimeProp, error) {
		return parseDateTimeProp(line, icaltime.TypeDateTime, nil)
	})
	if err != nil {
		return nil, err
	}
	if _, err := requiredOnce(b.Properties, propTZOffsetFrom, textValue); err != nil {
		return nil, err
	}
	if _, err := requiredOnce(b.Properties, propTZOffsetTo, textValue); err != nil {
		return nil, err
	}

	onset := dtstart.DateTime().In(icaltime.UTC())
	rrules, err := getAll(b.Properties, propRRule, func(line parse.ContentLine) (*rrule.RRule, error) {
		parsed, err := parseRRuleProp(line)
		if err != nil {
			return nil, err
		}
		return parsed.Validate(onset)
	})
	if err != nil {
		return nil, err
	}
	rdates, err := getAll(b.Properties, propRDate, func(line parse.ContentLine) (DateTimeListProp, error) {
		return parseDateTimeListProp(line, icaltime.TypeDateTime, nil)
	})
	if err != nil {
		return nil, err
	}

	return &Transition{
		Kind:       b.kind,
		Properties: b.Properties,
		DTStart:    dtstart,
		rrules:     rrules,
		rdates:     rdates,
	}, nil
}

// TimeZone is a verified VTIMEZONE component: a TZID and an ordered list
// of transitions.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	Properties  []parse.ContentLine
	Transitions []*Transition
}

// TZID returns the timezone identifier. Verification guarantees it exists
// and is non-empty.
func (t *TimeZone) TZID() string {
	return findFirst(t.Properties, propTZID).ValueText()
}

// LicLocation returns the X-LIC-LOCATION property value, a common
// extension carrying the IANA name of the zone.
func (t *TimeZone) LicLocation() string {
	if prop := findFirst(t.Properties, propLicLocation); prop != nil {
		return prop.ValueText()
	}
	return ""
}

// TZ maps the definition to an Olson zone: first through X-LIC-LOCATION,
// then by treating the TZID itself as an Olson name, then through the
// proprietary alias table. Definitions matching none of these resolve to
// Local, leaving their date-times floating.
func (t *TimeZone) TZ() icaltime.Tz {
	if loc := t.LicLocation(); loc != "" {
		if tz, err := icaltime.Olson(loc); err == nil {
			return tz
		}
	}
	tzid := t.TZID()
	if tz, err := icaltime.Olson(tzid); err == nil {
		return tz
	}
	if olson, ok := tzdata.Aliases[tzid]; ok {
		if tz, err := icaltime.Olson(olson); err == nil {
			return tz
		}
	}
	return icaltime.Local()
}

// Generate renders the timezone as iCal text.
func (t *TimeZone) Generate() string {
	var inner strings.Builder
	inner.WriteString(gen.ContentLines(t.Properties))
	for _, transition := range t.Transitions {
		inner.WriteString(transition.Generate())
	}
	return gen.Component(string(SectionTokenVTimezone), inner.String())
}

// Builder returns the timezone's mutable form.
func (t *TimeZone) Builder() *TimeZoneBuilder {
	b := &TimeZoneBuilder{componentProps: componentProps{Properties: t.Properties}}
	for _, transition := range t.Transitions {
		b.transitions = append(b.transitions, &TransitionBuilder{
			componentProps: componentProps{Properties: transition.Properties},
			kind:           transition.Kind,
		})
	}
	return b
}

// Truncate drops transition history strictly before cutoff: RDATE values
// before the cutoff and RRULEs whose UNTIL lies before it are removed, and
// a transition left with neither that also started before the cutoff is
// deleted entirely.
func (t *TimeZone) Truncate(cutoff icaltime.CalDateTime) *TimeZone {
	out := &TimeZone{Properties: t.Properties}
	for _, transition := range t.Transitions {
		if kept := transition.truncate(cutoff); kept != nil {
			out.Transitions = append(out.Transitions, kept)
		}
	}
	return out
}

func (t *Transition) truncate(cutoff icaltime.CalDateTime) *Transition {
	cut := cutoff.Time()
	builder := NewTransitionBuilder(t.Kind)

	for _, prop := range t.Properties {
		switch prop.Name {
		case propRDate:
			list, err := parseDateTimeListProp(prop, icaltime.TypeDateTime, nil)
			if err != nil {
				builder.AddContentLine(prop)
				continue
			}
			var kept []icaltime.Value
			for _, value := range list.Values {
				if !value.Time().Before(cut) {
					kept = append(kept, value)
				}
			}
			if len(kept) == 0 {
				continue
			}
			list.Values = kept
			builder.AddContentLine(list.ContentLine())
		case propRRule:
			parsed, err := parseRRuleProp(prop)
			if err == nil && parsed.Until != nil && parsed.Until.Time().Before(cut) {
				continue
			}
			builder.AddContentLine(prop)
		default:
			builder.AddContentLine(prop)
		}
	}

	rebuilt, err := builder.Build(parse.Options{})
	if err != nil {
		return t
	}
	if len(rebuilt.rrules) == 0 && len(rebuilt.rdates) == 0 && rebuilt.DTStart.DateTime().Time().Before(cut) {
		return nil
	}
	return rebuilt
}

// TimeZoneBuilder is the unverified form of a TimeZone.
type TimeZoneBuilder struct {
	componentProps
	transitions []*TransitionBuilder
}

// NewTimeZoneBuilder returns an empty builder.
func NewTimeZoneBuilder() *TimeZoneBuilder {
	return &TimeZoneBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *TimeZoneBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVTimezone)}
}

// AddSubComponent implements parse.Builder, accepting STANDARD and
// DAYLIGHT children.
func (b *TimeZoneBuilder) AddSubComponent(name string, lines *parse.ContentLineParser, opts parse.Options) error {
	switch SectionToken(name) {
	case SectionTokenStandard:
		return b.addTransition(TransitionStandard, lines, opts)
	case SectionTokenDaylight:
		return b.addTransition(TransitionDaylight, lines, opts)
	default:
		return parse.InvalidComponentError(name)
	}
}

func (b *TimeZoneBuilder) addTransition(kind TransitionKind, lines *parse.ContentLineParser, opts parse.Options) error {
	transition := NewTransitionBuilder(kind)
	if err := parse.Fill(transition, lines, opts); err != nil {
		return err
	}
	b.transitions = append(b.transitions, transition)
	return nil
}

// Build verifies the timezone. TZID is required once with a non-empty
// value.
func (b *TimeZoneBuilder) Build(opts parse.Options) (*TimeZone, error) {
	tzid, err := requiredOnce(b.Properties, propTZID, textValue)
	if err != nil {
		return nil, err
	}
	if tzid == "" {
		return nil, fmt.Errorf("%w: TZID", ErrMissingProperty)
	}

	out := &TimeZone{Properties: b.Properties}
	for _, transitionBuilder := range b.transitions {
		transition, err := transitionBuilder.Build(opts)
		if err != nil {
			return nil, err
		}
		out.Transitions = append(out.Transitions, transition)
	}
	return out, nil
}

// tzCacheCell memoizes one parsed canonical VTIMEZONE; the once guarantees
// a single parse per TZID for the life of the process.
type tzCacheCell struct {
	once sync.Once
	tz   *TimeZone
	err  error
}

var tzCache sync.Map // string → *tzCacheCell

// TimeZoneFromTZID returns the bundled canonical VTIMEZONE for an IANA
// TZID or a known proprietary alias. The synthesized definition carries
// the requested TZID, so aliased requests stay internally consistent.
// Results are memoized process-wide.
func TimeZoneFromTZID(tzid string) (*TimeZone, error) {
	cellValue, _ := tzCache.LoadOrStore(tzid, &tzCacheCell{})
	cell := cellValue.(*tzCacheCell)
	cell.once.Do(func() {
		cell.tz, cell.err = synthesizeTimeZone(tzid)
	})
	return cell.tz, cell.err
}

func synthesizeTimeZone(tzid string) (*TimeZone, error) {
	blob, ok := tzdata.VTimezones[tzid]
	olson := tzid
	if !ok {
		if olson, ok = tzdata.Aliases[tzid]; ok {
			blob, ok = tzdata.VTimezones[olson]
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTZID, tzid)
	}

	parser := parse.NewComponentParser([]byte(blob), NewTimeZoneBuilder, (*TimeZoneBuilder).Build)
	tz, err := parser.ExpectOne()
	if err != nil {
		return nil, err
	}
	if tz.TZID() != tzid {
		// An aliased request: restamp the definition with the requested id
		// and keep the Olson name reachable via X-LIC-LOCATION.
		builder := tz.Builder()
		setPropertyValue(builder.Properties, propTZID, tzid)
		setPropertyValue(builder.Properties, propLicLocation, olson)
		return builder.Build(parse.Options{})
	}
	return tz, nil
}

func setPropertyValue(props []parse.ContentLine, name, value string) {
	for i := range props {
		if props[i].Name == name {
			props[i].Value = &value
			return
		}
	}
}
