// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// SectionToken represents the names of the components in an iCalendar or
// vCard document
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6
type SectionToken string

const (
	SectionTokenVCalendar SectionToken = "VCALENDAR"
	SectionTokenVEvent    SectionToken = "VEVENT"
	SectionTokenVTodo     SectionToken = "VTODO"
	SectionTokenVJournal  SectionToken = "VJOURNAL"
	SectionTokenVTimezone SectionToken = "VTIMEZONE"
	SectionTokenVFreebusy SectionToken = "VFREEBUSY"
	SectionTokenVAlarm    SectionToken = "VALARM"
	SectionTokenStandard  SectionToken = "STANDARD"
	SectionTokenDaylight  SectionToken = "DAYLIGHT"
	SectionTokenVCard     SectionToken = "VCARD"
)

// Property names the typed layer extracts. Properties outside this set stay
// raw content lines.
const (
	propUID          = "UID"
	propDTStamp      = "DTSTAMP"
	propDTStart      = "DTSTART"
	propDTEnd        = "DTEND"
	propDue          = "DUE"
	propDuration     = "DURATION"
	propRecurrenceID = "RECURRENCE-ID"
	propRRule        = "RRULE"
	propExRule       = "EXRULE"
	propRDate        = "RDATE"
	propExDate       = "EXDATE"
	propVersion      = "VERSION"
	propProdID       = "PRODID"
	propCalScale     = "CALSCALE"
	propTZID         = "TZID"
	propTZOffsetFrom = "TZOFFSETFROM"
	propTZOffsetTo   = "TZOFFSETTO"
	propLicLocation  = "X-LIC-LOCATION"
	propAction       = "ACTION"
	propTrigger      = "TRIGGER"
	propDescription  = "DESCRIPTION"
	propSummary      = "SUMMARY"
	propAttendee     = "ATTENDEE"
	propFreeBusy     = "FREEBUSY"
	propFN           = "FN"
	propBDay         = "BDAY"
	propAnniversary  = "ANNIVERSARY"
)
