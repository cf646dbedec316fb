// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package icaltime

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTime        = errors.New("invalid time")
	ErrInvalidDateTime    = errors.New("invalid date-time")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidPartialDate = errors.New("invalid partial date")
	ErrUnknownOlsonID     = errors.New("unknown Olson timezone id")
)
