// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tzdata bundles canonical VTIMEZONE definitions for a set of
// common IANA zones, used for RFC 7809 synthesis, plus the proprietary
// TZID alias table. The blobs follow the current-rule form emitted by
// common calendar servers: a 1970-epoch DTSTART with a yearly RRULE per
// transition. Fixed-offset zones carry a single STANDARD transition
// without an RRULE.
package tzdata

import "fmt"

// VTimezones maps an IANA TZID to its canonical VTIMEZONE blob.
var VTimezones = map[string]string{
	"UTC": fixed("UTC", "UTC", "+0000"),
	"Etc/UTC": fixed("Etc/UTC", "UTC", "+0000"),

	"Europe/Berlin": cet("Europe/Berlin"),
	"Europe/Paris": cet("Europe/Paris"),
	"Europe/Madrid": cet("Europe/Madrid"),
	"Europe/Rome": cet("Europe/Rome"),
	"Europe/Vienna": cet("Europe/Vienna"),
	"Europe/Zurich": cet("Europe/Zurich"),
	"Europe/Amsterdam": cet("Europe/Amsterdam"),
	"Europe/Brussels": cet("Europe/Brussels"),
	"Europe/Stockholm": cet("Europe/Stockholm"),
	"Europe/Oslo": cet("Europe/Oslo"),
	"Europe/Copenhagen": cet("Europe/Copenhagen"),
	"Europe/Budapest": cet("Europe/Budapest"),
	"Europe/Prague": cet("Europe/Prague"),
	"Europe/Warsaw": cet("Europe/Warsaw"),

	"Europe/London": dst("Europe/London",
		"BST", "+0000", "+0100", "19700329T010000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"GMT", "+0100", "+0000", "19701025T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),
	"Europe/Dublin": dst("Europe/Dublin",
		"IST", "+0000", "+0100", "19700329T010000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"GMT", "+0100", "+0000", "19701025T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),
	"Europe/Lisbon": dst("Europe/Lisbon",
		"WEST", "+0000", "+0100", "19700329T010000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"WET", "+0100", "+0000", "19701025T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),
	"Europe/Helsinki": dst("Europe/Helsinki",
		"EEST", "+0200", "+0300", "19700329T030000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"EET", "+0300", "+0200", "19701025T040000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),
	"Europe/Athens": dst("Europe/Athens",
		"EEST", "+0200", "+0300", "19700329T030000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"EET", "+0300", "+0200", "19701025T040000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),
	"Europe/Moscow": fixed("Europe/Moscow", "MSK", "+0300"),

	"America/New_York": usZone("America/New_York", "EST", "EDT", "-0500", "-0400"),
	"America/Toronto": usZone("America/Toronto", "EST", "EDT", "-0500", "-0400"),
	"America/Chicago": usZone("America/Chicago", "CST", "CDT", "-0600", "-0500"),
	"America/Denver": usZone("America/Denver", "MST", "MDT", "-0700", "-0600"),
	"America/Los_Angeles": usZone("America/Los_Angeles", "PST", "PDT", "-0800", "-0700"),
	"America/Vancouver": usZone("America/Vancouver", "PST", "PDT", "-0800", "-0700"),
	"America/Phoenix": fixed("America/Phoenix", "MST", "-0700"),
	"America/Sao_Paulo": fixed("America/Sao_Paulo", "-03", "-0300"),
	"America/Mexico_City": fixed("America/Mexico_City", "CST", "-0600"),

	"Asia/Tokyo": fixed("Asia/Tokyo", "JST", "+0900"),
	"Asia/Shanghai": fixed("Asia/Shanghai", "CST", "+0800"),
	"Asia/Hong_Kong": fixed("Asia/Hong_Kong", "HKT", "+0800"),
	"Asia/Singapore": fixed("Asia/Singapore", "+08", "+0800"),
	"Asia/Kolkata": fixed("Asia/Kolkata", "IST", "+0530"),
	"Asia/Dubai": fixed("Asia/Dubai", "+04", "+0400"),
	"Asia/Jerusalem": dst("Asia/Jerusalem",
		"IDT", "+0200", "+0300", "19700327T020000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1FR",
		"IST", "+0300", "+0200", "19701025T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU"),

	"Australia/Sydney": dst("Australia/Sydney",
		"AEDT", "+1000", "+1100", "19701004T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=1SU",
		"AEST", "+1100", "+1000", "19700405T030000", "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU"),
	"Australia/Melbourne": dst("Australia/Melbourne",
		"AEDT", "+1000", "+1100", "19701004T020000", "FREQ=YEARLY;BYMONTH=10;BYDAY=1SU",
		"AEST", "+1100", "+1000", "19700405T030000", "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU"),
	"Australia/Brisbane": fixed("Australia/Brisbane", "AEST", "+1000"),
	"Australia/Perth": fixed("Australia/Perth", "AWST", "+0800"),
	"Pacific/Auckland": dst("Pacific/Auckland",
		"NZDT", "+1200", "+1300", "19700927T020000", "FREQ=YEARLY;BYMONTH=9;BYDAY=-1SU",
		"NZST", "+1300", "+1200", "19700405T030000", "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU"),

	"Africa/Cairo": fixed("Africa/Cairo", "EET", "+0200"),
	"Africa/Johannesburg": fixed("Africa/Johannesburg", "SAST", "+0200"),
}

// fixed renders a zone without daylight saving.
func fixed(tzid, name, offset string) string {
	return fmt.Sprintf(`BEGIN:VTIMEZONE
TZID:%s
X-LIC-LOCATION:%s
BEGIN:STANDARD
TZNAME:%s
TZOFFSETFROM:%s
TZOFFSETTO:%s
DTSTART:19700101T000000
END:STANDARD
END:VTIMEZONE
`, tzid, tzid, name, offset, offset)
}

// dst renders a zone with one daylight and one standard transition.
func dst(tzid, dstName, dstFrom, dstTo, dstStart, dstRule, stdName, stdFrom, stdTo, stdStart, stdRule string) string {
	return fmt.Sprintf(`BEGIN:VTIMEZONE
TZID:%s
X-LIC-LOCATION:%s
BEGIN:DAYLIGHT
TZNAME:%s
TZOFFSETFROM:%s
TZOFFSETTO:%s
DTSTART:%s
RRULE:%s
END:DAYLIGHT
BEGIN:STANDARD
TZNAME:%s
TZOFFSETFROM:%s
TZOFFSETTO:%s
DTSTART:%s
RRULE:%s
END:STANDARD
END:VTIMEZONE
`, tzid, tzid, dstName, dstFrom, dstTo, dstStart, dstRule, stdName, stdFrom, stdTo, stdStart, stdRule)
}

// cet renders a central-European zone on the EU transition rule.
func cet(tzid string) string {
	return dst(tzid,
		"CEST", "+0100", "+0200", "19700329T020000", "FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"CET", "+0200", "+0100", "19701025T030000", "FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU")
}

// usZone renders a North American zone on the 2007 US transition rule.
func usZone(tzid, stdName, dstName, stdOffset, dstOffset string) string {
	return dst(tzid,
		dstName, stdOffset, dstOffset, "19700308T020000", "FREQ=YEARLY;BYMONTH=3;BYDAY=2SU",
		stdName, dstOffset, stdOffset, "19701101T020000", "FREQ=YEARLY;BYMONTH=11;BYDAY=1SU")
}
