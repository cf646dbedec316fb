// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Builder is the mutable, unverified form of a component. The component
// parser fills it from a content-line stream; a separate build step
// verifies it.
type Builder interface {
	// ComponentNames returns the BEGIN names this builder accepts.
	ComponentNames() []string
	// AddSubComponent consumes a nested BEGIN:<name> block from lines.
	AddSubComponent(name string, lines *ContentLineParser, opts Options) error
	// AddContentLine appends a raw property.
	AddContentLine(line ContentLine)
}

// Fill consumes content lines into b until the component's END line.
// Nested BEGIN lines are delegated to the builder; everything else is
// appended as a raw property. Reaching the end of input before END yields
// ErrNotComplete.
func Fill(b Builder, lines *ContentLineParser, opts Options) error {
	for {
		line, err := lines.Next()
		if err == io.EOF {
			return ErrNotComplete
		}
		if err != nil {
			return err
		}

		switch line.Name {
		case "END":
			return nil
		case "BEGIN":
			if line.Value == nil {
				return lineErr(line.Number, ErrMissingValue)
			}
			if err := b.AddSubComponent(strings.ToUpper(*line.Value), lines, opts); err != nil {
				return err
			}
		default:
			b.AddContentLine(line)
		}
	}
}

// BuildFunc verifies a filled builder, producing the verified component.
type BuildFunc[B Builder, V any] func(B, Options) (V, error)

// ComponentParser assembles a content-line stream into verified components
// of type V. Each call to Next consumes one BEGIN..END bracket and runs the
// build step. After a failed component, parsing resumes at the next
// top-level BEGIN.
type ComponentParser[B Builder, V any] struct {
	lines *ContentLineParser
	opts  Options
	fresh func() B
	build BuildFunc[B, V]
}

// NewComponentParser returns a parser over data. fresh produces an empty
// builder per component; build verifies it.
func NewComponentParser[B Builder, V any](data []byte, fresh func() B, build BuildFunc[B, V], opts ...Option) *ComponentParser[B, V] {
	return &ComponentParser[B, V]{
		lines: NewContentLineParser(data),
		opts:  buildOptions(opts),
		fresh: fresh,
		build: build,
	}
}

// Next parses and verifies the next component, or returns io.EOF when the
// input is exhausted.
func (p *ComponentParser[B, V]) Next() (V, error) {
	var zero V

	header, err := p.lines.Next()
	if err != nil {
		return zero, err
	}

	b := p.fresh()
	if header.Name != "BEGIN" ||
		header.Value == nil ||
		!slices.Contains(b.ComponentNames(), strings.ToUpper(*header.Value)) ||
		len(header.Params) != 0 {
		return zero, lineErr(header.Number, ErrMissingHeader)
	}

	if err := Fill(b, p.lines, p.opts); err != nil {
		// Discard the rest of the failed component, so that the next call
		// starts at the following top-level BEGIN.
		name := strings.ToUpper(*header.Value)
		for {
			line, nextErr := p.lines.Next()
			if nextErr == io.EOF {
				break
			}
			if nextErr == nil && line.Name == "END" && line.Value != nil && strings.ToUpper(*line.Value) == name {
				break
			}
		}
		return zero, err
	}
	return p.build(b, p.opts)
}

// ExpectOne asserts the input holds exactly one component and returns it.
// Zero components yield ErrEmptyInput, more than one ErrTooManyComponents.
func (p *ComponentParser[B, V]) ExpectOne() (V, error) {
	var zero V
	v, err := p.Next()
	if err == io.EOF {
		return zero, ErrEmptyInput
	}
	if err != nil {
		return zero, err
	}
	if _, err := p.Next(); err != io.EOF {
		return zero, ErrTooManyComponents
	}
	return v, nil
}

// All returns an iterator over the remaining components. A failed component
// is yielded as an error and iteration continues at the next top-level
// BEGIN.
func (p *ComponentParser[B, V]) All() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for {
			v, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// Options returns the parser's options.
func (p *ComponentParser[B, V]) Options() Options {
	return p.opts
}

// InvalidComponentError wraps ErrInvalidComponent with the offending name.
func InvalidComponentError(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidComponent, name)
}
