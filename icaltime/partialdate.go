// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime

import (
	"fmt"
	"strconv"
	"time"
)

// PartialDate is a date in which any of year, month and day may be absent,
// per RFC 6350 section 4.3.1 (truncated forms such as --MMDD for a yearly
// recurring day).
type PartialDate struct {
	Year  *int
	Month *time.Month
	Day   *int
}

// ParsePartialDate parses the complete and truncated RFC 6350 date forms:
// YYYYMMDD, YYYY-MM, YYYY, --MMDD, --MM and ---DD.
func ParsePartialDate(s string) (PartialDate, error) {
	bad := func() (PartialDate, error) {
		return PartialDate{}, fmt.Errorf("%w: %s", ErrInvalidPartialDate, s)
	}

	switch {
	case len(s) == 8 && s[:3] != "---" && s[:2] != "--":
		d, err := ParseDate(s)
		if err != nil {
			return bad()
		}
		return PartialDate{Year: &d.Year, Month: &d.Month, Day: &d.Day}, nil

	case len(s) == 7 && s[4] == '-':
		year, err1 := strconv.Atoi(s[:4])
		month, err2 := parseMonth(s[5:])
		if err1 != nil || err2 != nil {
			return bad()
		}
		return PartialDate{Year: &year, Month: &month}, nil

	case len(s) == 6 && s[:2] == "--":
		month, err1 := parseMonth(s[2:4])
		day, err2 := parseDay(s[4:])
		if err1 != nil || err2 != nil {
			return bad()
		}
		return PartialDate{Month: &month, Day: &day}, nil

	case len(s) == 4 && s[:2] == "--":
		month, err := parseMonth(s[2:])
		if err != nil {
			return bad()
		}
		return PartialDate{Month: &month}, nil

	case len(s) == 4:
		year, err := strconv.Atoi(s)
		if err != nil {
			return bad()
		}
		return PartialDate{Year: &year}, nil

	case len(s) == 5 && s[:3] == "---":
		day, err := parseDay(s[3:])
		if err != nil {
			return bad()
		}
		return PartialDate{Day: &day}, nil
	}
	return bad()
}

func parseMonth(s string) (time.Month, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 12 {
		return 0, ErrInvalidPartialDate
	}
	return time.Month(v), nil
}

func parseDay(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 31 {
		return 0, ErrInvalidPartialDate
	}
	return v, nil
}

// String renders the partial date back in its most specific truncated form.
func (p PartialDate) String() string {
	switch {
	case p.Year != nil && p.Month != nil && p.Day != nil:
		return fmt.Sprintf("%04d%02d%02d", *p.Year, int(*p.Month), *p.Day)
	case p.Year != nil && p.Month != nil:
		return fmt.Sprintf("%04d-%02d", *p.Year, int(*p.Month))
	case p.Year != nil:
		return fmt.Sprintf("%04d", *p.Year)
	case p.Month != nil && p.Day != nil:
		return fmt.Sprintf("--%02d%02d", int(*p.Month), *p.Day)
	case p.Month != nil:
		return fmt.Sprintf("--%02d", int(*p.Month))
	case p.Day != nil:
		return fmt.Sprintf("---%02d", *p.Day)
	}
	return ""
}
