// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model contains the verified iCalendar and vCard components and
// their builders.
//
// Every component exists in two states: a mutable builder that the parser
// fills with raw content lines, and an immutable verified form produced by
// the builder's build step. Building enforces cardinality and the
// cross-property constraints of RFC 5545; verified components keep their
// full property list in document order, so emission round-trips.
package model
