// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package parse implements the line-level parsing pipeline shared by the
// iCalendar and vCard formats: unfolding raw bytes into logical lines,
// splitting logical lines into content lines, and assembling content lines
// into components bracketed by BEGIN/END.
//
// The pipeline is lazy and single-pass. Each stage exposes a pull-based
// Next method returning io.EOF on exhaustion, plus an All method for
// range-over-func iteration.
package parse
