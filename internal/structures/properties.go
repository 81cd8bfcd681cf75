// Package structures holds the decoded element and property types that
// sit between the wire-level records in internal/core and the public
// Cell/Element model: polygons, paths, references, text, and the
// PROPATTR/PROPVALUE property bag every element carries.
package structures

import (
	"fmt"

	"github.com/layoutkit/gdsii/internal/core"
)

// minPropertyKey and maxPropertyKey bound the PROPATTR key space; keys
// outside this range are rejected rather than silently accepted.
const (
	minPropertyKey = 1
	maxPropertyKey = 126
)

// Properties is the attribute bag attached to every element: a sparse map
// from property key to its ASCII value.
type Properties map[int16]string

// Set assigns value to key, validating the key range. Re-setting an
// already-present key overwrites the previous value; callers that care
// about that should check for presence first, as PropertyBuilder.Value
// does to record the key in Overwrites.
func (p Properties) Set(key int16, value string) error {
	if key < minPropertyKey || key > maxPropertyKey {
		return core.NewError(core.KindNameConstraint,
			fmt.Sprintf("property key %d is outside the valid range [%d, %d]", key, minPropertyKey, maxPropertyKey))
	}
	p[key] = value
	return nil
}

// PropertyBuilder accumulates PROPATTR/PROPVALUE record pairs as the structural
// parser walks an element's record run. A PROPVALUE with no preceding
// PROPATTR is an orphan and fails the element.
type PropertyBuilder struct {
	props      Properties
	pendingKey *int16
	overwrites []int16
}

// NewPropertyBuilder returns an empty builder.
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{props: Properties{}}
}

// Attr records a PROPATTR key, to be paired with the next Value call.
func (b *PropertyBuilder) Attr(key int16) {
	k := key
	b.pendingKey = &k
}

// Value pairs a PROPVALUE with the most recently seen PROPATTR key. It
// returns an error if no PROPATTR preceded it (an orphan property value)
// or if the key is out of range.
func (b *PropertyBuilder) Value(offset int64, value string) error {
	if b.pendingKey == nil {
		return core.NewErrorAt(core.KindOrphanProperty, offset,
			"PROPVALUE record with no preceding PROPATTR")
	}
	key := *b.pendingKey
	b.pendingKey = nil
	if _, exists := b.props[key]; exists {
		b.overwrites = append(b.overwrites, key)
	}
	return b.props.Set(key, value)
}

// Finish returns the accumulated properties. It is an error to call it
// while a PROPATTR is still waiting for its PROPVALUE.
func (b *PropertyBuilder) Finish(offset int64) (Properties, error) {
	if b.pendingKey != nil {
		return nil, core.NewErrorAt(core.KindOrphanProperty, offset,
			"PROPATTR record with no following PROPVALUE")
	}
	return b.props, nil
}

// Overwrites reports which property keys were set more than once, for
// callers that want to log a diagnostic without failing the parse.
func (b *PropertyBuilder) Overwrites() []int16 {
	return b.overwrites
}
