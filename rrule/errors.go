// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "errors"

// Parse errors.
var (
	// ErrInvalidRRuleString is returned when the rrule string format is invalid.
	ErrInvalidRRuleString = errors.New("invalid rrule string")

	// ErrFrequencyRequired is returned when the frequency property is missing.
	ErrFrequencyRequired = errors.New("frequency is required")

	// ErrInvalidFrequency is returned for a FREQ value outside the RFC 5545 set.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrCountAndUntilBothSet is returned when both count and until properties are set.
	ErrCountAndUntilBothSet = errors.New("count and until cannot both be set")

	// ErrInvalidInterval is returned when the interval is not a positive integer.
	ErrInvalidInterval = errors.New("interval must be a positive integer")

	// ErrInvalidByDayString is returned when a BYDAY entry is malformed.
	ErrInvalidByDayString = errors.New("invalid BYDAY string")

	// ErrInvalidUntil is returned when UNTIL is neither a DATE nor a DATE-TIME.
	ErrInvalidUntil = errors.New("invalid UNTIL value")
)

// Validation errors. Validation requires the rule's DTSTART and happens
// separately from parsing.
var (
	// ErrNotValidated is returned when an occurrence query is made on a
	// rule that was never validated against its DTSTART.
	ErrNotValidated = errors.New("rrule has not been validated against DTSTART")

	// ErrFieldValueOutOfRange is returned when a BY* entry falls outside
	// its RFC 5545 range.
	ErrFieldValueOutOfRange = errors.New("field value out of range")

	// ErrByRuleAndFrequency is returned for a BY* rule that the rule's
	// frequency does not admit.
	ErrByRuleAndFrequency = errors.New("by-rule not allowed with this frequency")

	// ErrBySetPosWithoutByRule is returned when BYSETPOS is used without
	// another BY* rule.
	ErrBySetPosWithoutByRule = errors.New("BYSETPOS requires another BY* rule")

	// ErrByEasterWithoutTime is returned when BYEASTER is used without
	// BYHOUR, BYMINUTE and BYSECOND.
	ErrByEasterWithoutTime = errors.New("BYEASTER requires BYHOUR, BYMINUTE and BYSECOND")

	// ErrUntilBeforeStart is returned when UNTIL precedes DTSTART.
	ErrUntilBeforeStart = errors.New("UNTIL is before DTSTART")

	// ErrUntilTimezoneMismatch is returned when UNTIL's timezone form does
	// not fit DTSTART's: a zoned or UTC DTSTART demands a UTC UNTIL, a
	// floating DTSTART a floating UNTIL.
	ErrUntilTimezoneMismatch = errors.New("UNTIL timezone does not match DTSTART")

	// ErrTooBigInterval is returned when INTERVAL exceeds the
	// implementation cap.
	ErrTooBigInterval = errors.New("interval exceeds implementation cap")

	// ErrYearOutOfRange is returned when DTSTART's year falls outside the
	// supported range.
	ErrYearOutOfRange = errors.New("DTSTART year out of supported range")
)
