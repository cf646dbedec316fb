// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tzdata

// Aliases maps proprietary timezone identifiers (mostly Microsoft Windows
// zone names as emitted by Exchange and Outlook) to their IANA TZID.
var Aliases = map[string]string{
	"W. Europe Standard Time": "Europe/Berlin",
	"Central Europe Standard Time": "Europe/Budapest",
	"Central European Standard Time": "Europe/Warsaw",
	"Romance Standard Time": "Europe/Paris",
	"GMT Standard Time": "Europe/London",
	"Greenwich Standard Time": "Etc/UTC",
	"GTB Standard Time": "Europe/Athens",
	"FLE Standard Time": "Europe/Helsinki",
	"Russian Standard Time": "Europe/Moscow",
	"Israel Standard Time": "Asia/Jerusalem",
	"Eastern Standard Time": "America/New_York",
	"Central Standard Time": "America/Chicago",
	"Mountain Standard Time": "America/Denver",
	"US Mountain Standard Time": "America/Phoenix",
	"Pacific Standard Time": "America/Los_Angeles",
	"E. South America Standard Time": "America/Sao_Paulo",
	"China Standard Time": "Asia/Shanghai",
	"Tokyo Standard Time": "Asia/Tokyo",
	"India Standard Time": "Asia/Kolkata",
	"Arabian Standard Time": "Asia/Dubai",
	"Singapore Standard Time": "Asia/Singapore",
	"AUS Eastern Standard Time": "Australia/Sydney",
	"E. Australia Standard Time": "Australia/Brisbane",
	"W. Australia Standard Time": "Australia/Perth",
	"New Zealand Standard Time": "Pacific/Auckland",
	"South Africa Standard Time": "Africa/Johannesburg",
	"Egypt Standard Time": "Africa/Cairo",
	"UTC": "Etc/UTC",
}
