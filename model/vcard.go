// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"github.com/michael-gallo/caldata/gen"
	"github.com/michael-gallo/caldata/icaltime"
	"github.com/michael-gallo/caldata/parse"
)

// Contact is a verified VCARD component (RFC 6350). Contacts are flat
// property bags; the typed accessors parse on demand.
type Contact struct {
	Properties []parse.ContentLine
}

// FormattedName returns the card's FN value.
func (c *Contact) FormattedName() string {
	return findFirst(c.Properties, propFN).ValueText()
}

// Version returns the card's VERSION value.
func (c *Contact) Version() string {
	return findFirst(c.Properties, propVersion).ValueText()
}

// BDay returns the card's birthday as a partial date, or nil when absent.
func (c *Contact) BDay() (*icaltime.PartialDate, error) {
	return c.partialDate(propBDay)
}

// Anniversary returns the card's anniversary as a partial date, or nil
// when absent.
func (c *Contact) Anniversary() (*icaltime.PartialDate, error) {
	return c.partialDate(propAnniversary)
}

func (c *Contact) partialDate(name string) (*icaltime.PartialDate, error) {
	return optionalOnce(c.Properties, name, func(line parse.ContentLine) (icaltime.PartialDate, error) {
		raw, err := textValue(line)
		if err != nil {
			return icaltime.PartialDate{}, err
		}
		return icaltime.ParsePartialDate(raw)
	})
}

// Generate renders the card as vCard text.
func (c *Contact) Generate() string {
	return gen.Component(string(SectionTokenVCard), gen.ContentLines(c.Properties))
}

// Builder returns the card's mutable form.
func (c *Contact) Builder() *ContactBuilder {
	return &ContactBuilder{componentProps{Properties: c.Properties}}
}

// ContactBuilder is the unverified form of a Contact.
type ContactBuilder struct {
	componentProps
}

// NewContactBuilder returns an empty builder.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{}
}

// ComponentNames implements parse.Builder.
func (b *ContactBuilder) ComponentNames() []string {
	return []string{string(SectionTokenVCard)}
}

// AddSubComponent implements parse.Builder. Cards have no sub-components.
func (b *ContactBuilder) AddSubComponent(name string, _ *parse.ContentLineParser, _ parse.Options) error {
	return parse.InvalidComponentError(name)
}

// Build verifies the card: VERSION and FN are required once.
func (b *ContactBuilder) Build(_ parse.Options) (*Contact, error) {
	if _, err := requiredOnce(b.Properties, propVersion, textValue); err != nil {
		return nil, err
	}
	if _, err := requiredOnce(b.Properties, propFN, textValue); err != nil {
		return nil, err
	}
	return &Contact{Properties: b.Properties}, nil
}
