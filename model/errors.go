// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "errors"

// Semantic errors raised while building components.
var (
	ErrMissingProperty      = errors.New("missing required property")
	ErrPropertyConflict     = errors.New("property conflict")
	ErrInvalidPropertyValue = errors.New("invalid property value")
	ErrInvalidPropertyType  = errors.New("invalid property value type")
	ErrInvalidCalScale      = errors.New("invalid CALSCALE: only GREGORIAN is supported")
	ErrInvalidVersion       = errors.New("invalid VERSION: must be 1.0 or 2.0")
	ErrUnknownTZID          = errors.New("unknown TZID")
)

// Object-level errors raised while grouping components by UID.
var (
	ErrMultipleMainObjects       = errors.New("multiple main components in a calendar object")
	ErrDifferingUIDs             = errors.New("differing UIDs inside a calendar object")
	ErrMissingRecurrenceID       = errors.New("calendar object has no main component")
	ErrDtstartNotMatchingRecurID = errors.New("DTSTART and RECURRENCE-ID must have the same value type and timezone")
	ErrEmptyCalendarObject       = errors.New("calendar object has no components")
)
