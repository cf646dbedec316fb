// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/parse"
)

// CalendarObject is the set of items sharing one UID inside a calendar:
// exactly one main instance without a RECURRENCE-ID plus zero or more
// overrides, together with the VTIMEZONE definitions the group references.
type CalendarObject struct {
	// Properties carries the owning calendar's own property lines
	// (VERSION, PRODID and friends).
	Properties []parse.ContentLine

	TimeZones []*TimeZone
	Main      Item
	Overrides []Item
}

// UID returns the group's shared unique identifier.
func (o *CalendarObject) UID() string {
	return o.Main.UID()
}

// TZIDs returns the TZIDs referenced by the group's items.
func (o *CalendarObject) TZIDs() []string {
	set := make(map[string]struct{})
	for _, item := range append([]Item{o.Main}, o.Overrides...) {
		for _, tzid := range item.TZIDs() {
			set[tzid] = struct{}{}
		}
	}
	return sortedTZIDs(set)
}

// Generate renders the object as a standalone VCALENDAR.
func (o *CalendarObject) Generate() string {
	var inner strings.Builder
	inner.WriteString(gen.ContentLines(o.Properties))
	for _, tz := range o.TimeZones {
		inner.WriteString(tz.Generate())
	}
	inner.WriteString(o.Main.Generate())
	for _, override := range o.Overrides {
		inner.WriteString(override.Generate())
	}
	return gen.Component(string(SectionTokenVCalendar), inner.String())
}

// Occurrence is one expanded instance of a recurring calendar object.
type Occurrence struct {
	Start time.Time
	Item  Item
}

// ExpandRecurrence expands the object's recurrence set within the
// inclusive [after, before] window. Occurrences whose start matches an
// override's RECURRENCE-ID are replaced by the override (with the
// override's own DTSTART). The result is time-ordered.
func (o *CalendarObject) ExpandRecurrence(after, before *time.Time) ([]Occurrence, error) {
	if o.Main.DTStartProp() == nil {
		return nil, nil
	}
	set, err := o.Main.RecurrenceSet()
	if err != nil {
		return nil, err
	}
	starts, err := set.Occurrences(after, before)
	if err != nil {
		return nil, err
	}

	overridesByInstant := make(map[int64]Item, len(o.Overrides))
	for _, override := range o.Overrides {
		overridesByInstant[override.RecurrenceIDProp().DateTime().Time().UnixNano()] = override
	}

	out := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		if override, ok := overridesByInstant[start.UnixNano()]; ok {
			delete(overridesByInstant, start.UnixNano())
			out = append(out, Occurrence{Start: override.DTStartProp().DateTime().Time(), Item: override})
			continue
		}
		out = append(out, Occurrence{Start: start, Item: o.Main})
	}
	// Overrides detached from the base set still occur on their own.
	for _, override := range overridesByInstant {
		start := override.DTStartProp().DateTime().Time()
		if (after != nil && start.Before(*after)) || (before != nil && start.After(*before)) {
			continue
		}
		out = append(out, Occurrence{Start: start, Item: override})
	}

	slices.SortFunc(out, func(a, b Occurrence) int {
		return a.Start.Compare(b.Start)
	})
	return out, nil
}

// IntoObjects groups the calendar's events, todos and journals by UID into
// calendar objects. Free/busy blocks carry no recurrence identity and make
// the conversion fail; free-standing alarms are not part of any group and
// are dropped.
func (c *Calendar) IntoObjects() ([]*CalendarObject, error) {
	if len(c.FreeBusys) > 0 {
		return nil, parse.InvalidComponentError(string(SectionTokenVFreebusy))
	}

	var order []string
	groups := make(map[string][]Item)
	for _, item := range c.items() {
		uid := item.UID()
		if _, seen := groups[uid]; !seen {
			order = append(order, uid)
		}
		groups[uid] = append(groups[uid], item)
	}

	objects := make([]*CalendarObject, 0, len(order))
	for _, uid := range order {
		object, err := c.buildObject(groups[uid])
		if err != nil {
			return nil, err
		}
		objects = append(objects, object)
	}
	return objects, nil
}

func (c *Calendar) buildObject(items []Item) (*CalendarObject, error) {
	object := &CalendarObject{Properties: c.Properties}

	for _, item := range items {
		if item.RecurrenceIDProp() != nil {
			object.Overrides = append(object.Overrides, item)
			continue
		}
		if object.Main != nil {
			return nil, ErrMultipleMainObjects
		}
		object.Main = item
	}
	if object.Main == nil {
		return nil, ErrMissingRecurrenceID
	}

	if dtstart := object.Main.DTStartProp(); dtstart != nil {
		for _, override := range object.Overrides {
			if err := override.RecurrenceIDProp().ValidateDTStart(dtstart.Value); err != nil {
				return nil, err
			}
		}
	}

	// Carry only the VTIMEZONE definitions the group references.
	referenced := make(map[string]struct{})
	for _, tzid := range object.TZIDs() {
		referenced[tzid] = struct{}{}
	}
	for _, tz := range c.TimeZones {
		if _, ok := referenced[tz.TZID()]; ok {
			object.TimeZones = append(object.TimeZones, tz)
		}
	}
	return object, nil
}

// singleObject converts a calendar expected to hold exactly one UID group.
func singleObject(c *Calendar) (*CalendarObject, error) {
	objects, err := c.IntoObjects()
	if err != nil {
		return nil, err
	}
	switch len(objects) {
	case 0:
		return nil, ErrEmptyCalendarObject
	case 1:
		return objects[0], nil
	default:
		return nil, ErrDifferingUIDs
	}
}

// SingleObject converts a verified calendar into its one calendar object,
// failing when the calendar holds zero or several UID groups.
func SingleObject(c *Calendar) (*CalendarObject, error) {
	return singleObject(c)
}

// CalendarFromObjects assembles a fresh VCALENDAR from calendar objects
// and free-standing alarms. The calendar gets the given PRODID and
// VERSION 2.0; VTIMEZONE definitions are deduplicated by TZID.
func CalendarFromObjects(prodID string, objects []*CalendarObject, alarms []*Alarm) *Calendar {
	cal := &Calendar{
		Properties: []parse.ContentLine{
			parse.NewContentLine(propVersion, nil, "2.0"),
			parse.NewContentLine(propProdID, nil, prodID),
		},
		tzs:    make(TZMap),
		Alarms: alarms,
	}

	for _, object := range objects {
		for _, tz := range object.TimeZones {
			if _, seen := cal.tzs[tz.TZID()]; seen {
				continue
			}
			cal.TimeZones = append(cal.TimeZones, tz)
			cal.tzs[tz.TZID()] = tz.TZ()
		}
		object.Main.addTo(cal)
		for _, override := range object.Overrides {
			override.addTo(cal)
		}
	}
	return cal
}

// DefaultProdID returns a fresh PRODID for calendars assembled
// programmatically.
func DefaultProdID() string {
	return fmt.Sprintf("-//caldata//%s//EN", uuid.NewString())
}

// NewUID returns a fresh unique identifier for a component built from
// scratch.
func NewUID() string {
	return uuid.NewString()
}
