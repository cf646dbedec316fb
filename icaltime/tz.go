// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime

import (
	"fmt"
	"time"
)

// Tz is either floating local time or a named Olson zone. The zero value is
// Local. UTC is the Olson zone "UTC".
type Tz struct {
	name string
	loc  *time.Location
}

// Local returns the floating-time zone.
func Local() Tz {
	return Tz{}
}

// UTC returns Olson("UTC").
func UTC() Tz {
	return Tz{name: "UTC", loc: time.UTC}
}

// Olson resolves name in the IANA database. It returns ErrUnknownOlsonID
// for names the database does not know.
func Olson(name string) (Tz, error) {
	if name == "UTC" {
		return UTC(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Tz{}, fmt.Errorf("%w: %s", ErrUnknownOlsonID, name)
	}
	return Tz{name: name, loc: loc}, nil
}

// IsLocal reports whether the zone is floating local time.
func (t Tz) IsLocal() bool {
	return t.name == ""
}

// IsUTC reports whether the zone is UTC.
func (t Tz) IsUTC() bool {
	return t.name == "UTC" || t.name == "Etc/UTC"
}

// Name returns the Olson id, or "Local" for floating time.
func (t Tz) Name() string {
	if t.IsLocal() {
		return "Local"
	}
	return t.name
}

// Location returns the zone's time.Location. Floating time maps to the
// consumer's local zone.
func (t Tz) Location() *time.Location {
	if t.loc == nil {
		return time.Local
	}
	return t.loc
}
