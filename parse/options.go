// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

// Options controls parser behaviour beyond the strict grammar.
type Options struct {
	// RFC7809 enables synthesis of missing VTIMEZONE definitions from the
	// bundled IANA set when a property references a TZID that is not
	// defined in the document (RFC 7809 calendars omit well-known zones).
	RFC7809 bool
}

// Option configures a parser.
type Option func(*Options)

// WithRFC7809 enables RFC 7809 timezone synthesis.
func WithRFC7809() Option {
	return func(o *Options) {
		o.RFC7809 = true
	}
}

func buildOptions(opts []Option) Options {
	var out Options
	for _, opt := range opts {
		opt(&out)
	}
	return out
}
