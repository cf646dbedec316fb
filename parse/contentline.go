// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"io"
	"iter"
	"strings"
)

// Delimiters of the content-line grammar, RFC 5545 section 3.1.
const (
	paramDelimiter      = ';'
	valueDelimiter      = ':'
	paramValueDelimiter = ','
	paramNameDelimiter  = '='
)

// Param is a single content-line parameter: an uppercased key and one or
// more values in source order. Values keep their original case.
type Param struct {
	Name   string
	Values []string
}

// Params is the ordered parameter list of a content line. Insertion order
// is preserved through parse and emit.
type Params []Param

// Get returns the first value of the named parameter.
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name && len(param.Values) > 0 {
			return param.Values[0], true
		}
	}
	return "", false
}

// TZID returns the TZID parameter value.
func (p Params) TZID() (string, bool) {
	return p.Get("TZID")
}

// ValueType returns the VALUE parameter value.
func (p Params) ValueType() (string, bool) {
	return p.Get("VALUE")
}

// Replace sets the named parameter to a single value, replacing it in place
// if present and appending it otherwise.
func (p *Params) Replace(name, value string) {
	for i, param := range *p {
		if param.Name == name {
			(*p)[i] = Param{Name: name, Values: []string{value}}
			return
		}
	}
	*p = append(*p, Param{Name: name, Values: []string{value}})
}

// Remove deletes every parameter with the given name.
func (p *Params) Remove(name string) {
	kept := (*p)[:0]
	for _, param := range *p {
		if param.Name != name {
			kept = append(kept, param)
		}
	}
	*p = kept
}

// Clone returns a deep copy of the parameter list.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for i, param := range p {
		out[i] = Param{Name: param.Name, Values: append([]string(nil), param.Values...)}
	}
	return out
}

// ContentLine is one parsed property line: an uppercased name, the ordered
// parameter list, and the raw value. Value is nil when nothing followed the
// ":" delimiter; typed layers reject a nil value where the format forbids
// it. Number is the source line, or zero for synthesized lines.
type ContentLine struct {
	Name   string
	Params Params
	Value  *string
	Number int
}

// ValueText returns the value, or the empty string when it is absent.
func (c *ContentLine) ValueText() string {
	if c.Value == nil {
		return ""
	}
	return *c.Value
}

// NewContentLine builds a synthesized content line with the given value.
func NewContentLine(name string, params Params, value string) ContentLine {
	return ContentLine{Name: name, Params: params, Value: &value}
}

// ContentLineParser splits logical lines into content lines. Names and
// parameter keys are uppercased; values are untouched. No validity checks
// beyond the grammar are made here.
type ContentLineParser struct {
	lines *LineReader
}

// NewContentLineParser returns a ContentLineParser over data.
func NewContentLineParser(data []byte) *ContentLineParser {
	return &ContentLineParser{lines: NewLineReader(data)}
}

// Next returns the next content line, or io.EOF when the input is
// exhausted.
func (p *ContentLineParser) Next() (ContentLine, error) {
	line, err := p.lines.Next()
	if err != nil {
		return ContentLine{}, err
	}
	return parseContentLine(line)
}

// All returns an iterator over the remaining content lines. Unlike Next,
// iteration stops after the first error.
func (p *ContentLineParser) All() iter.Seq2[ContentLine, error] {
	return func(yield func(ContentLine, error) bool) {
		for {
			cl, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(cl, err) || err != nil {
				return
			}
		}
	}
}

func parseContentLine(line Line) (ContentLine, error) {
	rest := line.Text

	nameEnd := strings.IndexAny(rest, string(paramDelimiter)+string(valueDelimiter))
	if nameEnd <= 0 {
		return ContentLine{}, lineErr(line.Number, ErrMissingName)
	}
	name := strings.ToUpper(rest[:nameEnd])
	rest = rest[nameEnd:]

	var params Params
	for len(rest) > 0 && rest[0] == paramDelimiter {
		rest = rest[1:]

		keyEnd := strings.IndexByte(rest, paramNameDelimiter)
		if keyEnd == -1 {
			return ContentLine{}, lineErr(line.Number, ErrMissingEquals)
		}
		if keyEnd == 0 {
			return ContentLine{}, lineErr(line.Number, ErrMissingParamKey)
		}
		key := strings.ToUpper(rest[:keyEnd])
		rest = rest[keyEnd+1:]

		// Almost always a single value per parameter.
		values := make([]string, 0, 1)
		for {
			if strings.HasPrefix(rest, `"`) {
				// A quoted value may contain ";", ":" and ",".
				rest = rest[1:]
				quoteEnd := strings.IndexByte(rest, '"')
				if quoteEnd == -1 {
					return ContentLine{}, lineErr(line.Number, ErrMissingClosingQuote)
				}
				values = append(values, rest[:quoteEnd])
				rest = rest[quoteEnd+1:]
			} else {
				delim := strings.IndexAny(rest, string(paramDelimiter)+string(valueDelimiter)+string(paramValueDelimiter))
				if delim == -1 {
					return ContentLine{}, lineErr(line.Number, ErrMissingParamEnd)
				}
				values = append(values, rest[:delim])
				rest = rest[delim:]
			}
			if !strings.HasPrefix(rest, string(paramValueDelimiter)) {
				break
			}
			rest = rest[1:]
		}

		params = append(params, Param{Name: key, Values: values})
	}

	if !strings.HasPrefix(rest, string(valueDelimiter)) {
		return ContentLine{}, lineErr(line.Number, ErrMissingValue)
	}
	rest = rest[1:]

	cl := ContentLine{Name: name, Params: params, Number: line.Number}
	if rest != "" {
		cl.Value = &rest
	}
	return cl, nil
}
