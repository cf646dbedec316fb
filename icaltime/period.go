// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime

import (
	"fmt"
	"strings"
	"time"

	"github.com/michael-gallo/caldata/icaldur"
)

// Period is a span of time: a start and either an explicit end or a
// duration, per RFC 5545 section 3.3.9. Exactly one of End and Duration is
// set.
type Period struct {
	Start    CalDateTime
	End      *CalDateTime
	Duration *icaldur.Duration
}

// ParsePeriod parses the forms start/end and start/duration. Both halves
// of an explicit period share tz.
func ParsePeriod(s string, tz Tz) (Period, error) {
	startRaw, endRaw, found := strings.Cut(s, "/")
	if !found {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}

	start, err := ParseDateTime(startRaw, tz)
	if err != nil {
		return Period{}, err
	}

	if strings.HasPrefix(endRaw, "P") || strings.HasPrefix(endRaw, "+") || strings.HasPrefix(endRaw, "-") {
		dur, err := icaldur.Parse(endRaw)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
		}
		return Period{Start: start, Duration: &dur}, nil
	}

	end, err := ParseDateTime(endRaw, tz)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: start, End: &end}, nil
}

func (p Period) ValueType() string { return TypePeriod }

func (p Period) ICal() string {
	if p.End != nil {
		return p.Start.ICal() + "/" + p.End.ICal()
	}
	if p.Duration != nil {
		return p.Start.ICal() + "/" + p.Duration.String()
	}
	return p.Start.ICal()
}

func (p Period) Time() time.Time {
	return p.Start.Time()
}

// EndTime returns the period's end instant, derived from the duration when
// no explicit end is present.
func (p Period) EndTime() time.Time {
	if p.End != nil {
		return p.End.Time()
	}
	if p.Duration != nil {
		return p.Start.Time().Add(p.Duration.ToStd())
	}
	return p.Start.Time()
}
