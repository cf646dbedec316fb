// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/parse"
)

// Journal is a verified VJOURNAL component. Journals take up no time on a
// calendar and own no alarms.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	itemFields
	Properties []parse.ContentLine
}

// TZIDs returns the TZIDs referenced by the journal.
func (j *Journal) TZIDs() []string {
	set := make(map[string]struct{})
	collectTZIDs(j.Properties, set)
	return sortedTZIDs(set)
}

// Generate renders the journal as iCal text.
func (j *Journal) Generate() string {
	return gen.Component(string(SectionTokenVJournal), gen.ContentLines(j.Properties))
}

// Builder returns the journal's mutable form.
func (j *Journal) Builder() *JournalBuilder {
	return &JournalBuilder{componentProps{Properties: j.Properties}}
}

func (j *Journal) addTo(c *Calendar) {
	c.Journals = append(c.Journals, j)
}

// JournalBuilder is the unverified form of a Journal.
type JournalBuilder struct {
	componentProps
}

// NewJournalBuilder returns an empty builder.
func NewJournalBuilder() *JournalBuilder {
	return &JournalBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *JournalBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVJournal)}
}

// AddSubComponent implements parse.Builder. Journals have no
// sub-components.
func (b *JournalBuilder) AddSubComponent(name string, _ *parse.ContentLineParser, _ parse.Options) error {
	return parse.InvalidComponentError(name)
}

// Build verifies the journal against a calendar's timezone map.
func (b *JournalBuilder) Build(_ parse.Options, tzs TZMap) (*Journal, error) {
	fields, err := extractItemFields(b.Properties, tzs)
	if err != nil {
		return nil, err
	}
	return &Journal{itemFields: fields, Properties: b.Properties}, nil
}
