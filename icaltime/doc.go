// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package icaltime implements the calendar value types of RFC 5545 section
// 3.3 and the truncated date forms of RFC 6350: dates, date-times with a
// floating/Olson timezone discriminator, periods, and partial dates.
package icaltime

// Import tzdata to embed the IANA timezone database, so Olson lookups work
// on hosts without a system database.
import _ "time/tzdata"
