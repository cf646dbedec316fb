// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/caldata/icaldur"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
	"github.com/michael-gallo/caldata/rrule"
	"github.com/michael-gallo/caldata/tzdata"
)

// TZMap resolves the TZID parameters of a document against its VTIMEZONE
// definitions. A nil map means no document context: TZIDs are then resolved
// directly against the IANA database and the proprietary alias table.
type TZMap map[string]icaltime.Tz

// resolveTz determines the timezone a property's value is interpreted in.
func resolveTz(params parse.Params, tzs TZMap) (icaltime.Tz, error) {
	tzid, ok := params.TZID()
	if !ok {
		return icaltime.Local(), nil
	}
	if tzs != nil {
		if tz, found := tzs[tzid]; found {
			return tz, nil
		}
		return icaltime.Local(), fmt.Errorf("%w: %s", ErrUnknownTZID, tzid)
	}
	if tz, err := icaltime.Olson(tzid); err == nil {
		return tz, nil
	}
	if olson, found := tzdata.Aliases[tzid]; found {
		if tz, err := icaltime.Olson(olson); err == nil {
			return tz, nil
		}
	}
	return icaltime.Local(), fmt.Errorf("%w: %s", ErrUnknownTZID, tzid)
}

func parseValue(raw, valueType string, tz icaltime.Tz) (icaltime.Value, error) {
	switch valueType {
	case icaltime.TypeDate:
		v, err := icaltime.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	case icaltime.TypePeriod:
		v, err := icaltime.ParsePeriod(raw, tz)
		if err != nil {
			return nil, err
		}
		return v, nil
	case icaltime.TypeDateTime:
		v, err := icaltime.ParseDateTime(raw, tz)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: VALUE=%s", ErrInvalidPropertyType, valueType)
	}
}

// DateTimeProp is a typed DATE / DATE-TIME / PERIOD property. The VALUE
// parameter, when present, wins over DefaultType; emission re-inserts it
// only when the concrete type differs from the default.
type DateTimeProp struct {
	Name        string
	DefaultType string
	Value       icaltime.Value
	Params      parse.Params
}

func parseDateTimeProp(line parse.ContentLine, defaultType string, tzs TZMap) (DateTimeProp, error) {
	if line.Value == nil {
		return DateTimeProp{}, fmt.Errorf("%w: %s has no value", ErrInvalidPropertyValue, line.Name)
	}
	tz, err := resolveTz(line.Params, tzs)
	if err != nil {
		return DateTimeProp{}, err
	}
	valueType := defaultType
	if explicit, ok := line.Params.ValueType(); ok {
		valueType = explicit
	}
	value, err := parseValue(*line.Value, valueType, tz)
	if err != nil {
		return DateTimeProp{}, fmt.Errorf("%w: %s", err, line.Name)
	}
	return DateTimeProp{
		Name:        line.Name,
		DefaultType: defaultType,
		Value:       value,
		Params:      line.Params.Clone(),
	}, nil
}

// ContentLine renders the property back to its wire form.
func (p *DateTimeProp) ContentLine() parse.ContentLine {
	params := p.Params.Clone()
	if p.Value.ValueType() != p.DefaultType {
		params.Replace("VALUE", p.Value.ValueType())
	} else {
		params.Remove("VALUE")
	}
	return parse.NewContentLine(p.Name, params, p.Value.ICal())
}

// DateTime coerces the value to a CalDateTime: bare dates become floating
// midnight, periods contribute their start.
func (p *DateTimeProp) DateTime() icaltime.CalDateTime {
	return asDateTime(p.Value)
}

func asDateTime(v icaltime.Value) icaltime.CalDateTime {
	switch v := v.(type) {
	case icaltime.CalDateTime:
		return v
	case icaltime.CalDate:
		return icaltime.CalDateTime{Year: v.Year, Month: v.Month, Day: v.Day}
	case icaltime.Period:
		return v.Start
	default:
		return icaltime.CalDateTime{}
	}
}

// DateTimeListProp is a comma-separated multi-valued property such as
// EXDATE or RDATE. Every element shares the line's parameter set.
type DateTimeListProp struct {
	Name        string
	DefaultType string
	Values      []icaltime.Value
	Params      parse.Params
}

func parseDateTimeListProp(line parse.ContentLine, defaultType string, tzs TZMap) (DateTimeListProp, error) {
	if line.Value == nil {
		return DateTimeListProp{}, fmt.Errorf("%w: %s has no value", ErrInvalidPropertyValue, line.Name)
	}
	tz, err := resolveTz(line.Params, tzs)
	if err != nil {
		return DateTimeListProp{}, err
	}
	valueType := defaultType
	if explicit, ok := line.Params.ValueType(); ok {
		valueType = explicit
	}

	raw := strings.TrimSuffix(*line.Value, ",")
	var values []icaltime.Value
	for element := range strings.SplitSeq(raw, ",") {
		value, err := parseValue(element, valueType, tz)
		if err != nil {
			return DateTimeListProp{}, fmt.Errorf("%w: %s", err, line.Name)
		}
		values = append(values, value)
	}
	return DateTimeListProp{
		Name:        line.Name,
		DefaultType: defaultType,
		Values:      values,
		Params:      line.Params.Clone(),
	}, nil
}

// ContentLine renders the list back to a single comma-joined line.
func (p *DateTimeListProp) ContentLine() parse.ContentLine {
	params := p.Params.Clone()
	if len(p.Values) > 0 && p.Values[0].ValueType() != p.DefaultType {
		params.Replace("VALUE", p.Values[0].ValueType())
	} else {
		params.Remove("VALUE")
	}
	rendered := make([]string, len(p.Values))
	for i, v := range p.Values {
		rendered[i] = v.ICal()
	}
	return parse.NewContentLine(p.Name, params, strings.Join(rendered, ","))
}

// RecurrenceIDRange is the RANGE parameter of RECURRENCE-ID.
type RecurrenceIDRange int

const (
	RangeThis RecurrenceIDRange = iota
	RangeThisAndFuture
)

// RecurrenceID is the RECURRENCE-ID property: the start value of the
// recurrence instance an override replaces.
type RecurrenceID struct {
	DateTimeProp
	Range RecurrenceIDRange
}

func parseRecurrenceID(line parse.ContentLine, tzs TZMap) (RecurrenceID, error) {
	base, err := parseDateTimeProp(line, icaltime.TypeDateTime, tzs)
	if err != nil {
		return RecurrenceID{}, err
	}
	out := RecurrenceID{DateTimeProp: base}
	switch value, ok := line.Params.Get("RANGE"); {
	case !ok:
	case value == "THISANDFUTURE":
		out.Range = RangeThisAndFuture
	default:
		return RecurrenceID{}, fmt.Errorf("%w: RANGE=%s", ErrInvalidPropertyType, value)
	}
	return out, nil
}

// ValidateDTStart checks that the recurrence id matches its sibling DTSTART
// in value type (DATE vs DATE-TIME) and timezone locality.
func (r *RecurrenceID) ValidateDTStart(dtstart icaltime.Value) error {
	if icaltime.IsDate(r.Value) != icaltime.IsDate(dtstart) ||
		icaltime.IsFloating(r.Value) != icaltime.IsFloating(dtstart) {
		return ErrDtstartNotMatchingRecurID
	}
	return nil
}

// DurationProp is a typed DURATION property.
type DurationProp struct {
	Name   string
	Value  icaldur.Duration
	Params parse.Params
}

func parseDurationProp(line parse.ContentLine) (DurationProp, error) {
	if line.Value == nil {
		return DurationProp{}, fmt.Errorf("%w: %s has no value", ErrInvalidPropertyValue, line.Name)
	}
	value, err := icaldur.Parse(*line.Value)
	if err != nil {
		return DurationProp{}, fmt.Errorf("%w: %s: %s", ErrInvalidPropertyValue, line.Name, err)
	}
	return DurationProp{Name: line.Name, Value: value, Params: line.Params.Clone()}, nil
}

// ContentLine renders the duration back to its wire form.
func (p *DurationProp) ContentLine() parse.ContentLine {
	return parse.NewContentLine(p.Name, p.Params.Clone(), p.Value.String())
}

func parseRRuleProp(line parse.ContentLine) (*rrule.RRule, error) {
	if line.Value == nil {
		return nil, fmt.Errorf("%w: %s has no value", ErrInvalidPropertyValue, line.Name)
	}
	return rrule.ParseRRule(*line.Value)
}

// textValue extracts the raw value of a property that requires one.
func textValue(line parse.ContentLine) (string, error) {
	if line.Value == nil {
		return "", fmt.Errorf("%w: %s has no value", ErrInvalidPropertyValue, line.Name)
	}
	return *line.Value, nil
}

// Cardinality helpers. Builders enumerate the properties they understand
// and pull them through these, so required / optional-once / many rules
// are enforced uniformly.

func findAll(props []parse.ContentLine, name string) []parse.ContentLine {
	var out []parse.ContentLine
	for _, prop := range props {
		if prop.Name == name {
			out = append(out, prop)
		}
	}
	return out
}

func findFirst(props []parse.ContentLine, name string) *parse.ContentLine {
	for i := range props {
		if props[i].Name == name {
			return &props[i]
		}
	}
	return nil
}

func getAll[T any](props []parse.ContentLine, name string, parseFn func(parse.ContentLine) (T, error)) ([]T, error) {
	matches := findAll(props, name)
	out := make([]T, 0, len(matches))
	for _, match := range matches {
		v, err := parseFn(match)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func optionalOnce[T any](props []parse.ContentLine, name string, parseFn func(parse.ContentLine) (T, error)) (*T, error) {
	matches := findAll(props, name)
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: %s occurs %d times", ErrPropertyConflict, name, len(matches))
	}
	v, err := parseFn(matches[0])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func requiredOnce[T any](props []parse.ContentLine, name string, parseFn func(parse.ContentLine) (T, error)) (T, error) {
	v, err := optionalOnce(props, name, parseFn)
	if err != nil {
		var zero T
		return zero, err
	}
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrMissingProperty, name)
	}
	return *v, nil
}

// componentProps is the shared mutable property bag every builder embeds.
type componentProps struct {
	Properties []parse.ContentLine
}

// AddContentLine appends a raw property.
func (b *componentProps) AddContentLine(line parse.ContentLine) {
	b.Properties = append(b.Properties, line)
}

// tzids collects the TZID parameters referenced by the builder's
// properties.
func (b *componentProps) tzids(into map[string]struct{}) {
	collectTZIDs(b.Properties, into)
}

func collectTZIDs(props []parse.ContentLine, into map[string]struct{}) {
	for _, prop := range props {
		if tzid, ok := prop.Params.TZID(); ok {
			into[tzid] = struct{}{}
		}
	}
}
