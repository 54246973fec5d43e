/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package layout holds the layout elements of a map: groups, nodes, arcs,
// texts and phantoms. Elements are immutable values; every operation that
// changes one returns a new element.
package layout

import (
	"errors"
	"reflect"

	"github.com/google/uuid"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

var (
	// ErrNoSegments is returned by arc operations on an arc without segments.
	ErrNoSegments = errors.New("arc has no segments")
	// ErrEmptyFit is returned when fitting an empty collection.
	ErrEmptyFit = errors.New("nothing to fit")
)

// Element is a layout element. The concrete types are GroupLayout,
// NodeLayout, ArcLayout, TextLayout, MapLayout and PhantomLayout.
type Element interface {
	ElementID() string
	// DrawingElements lowers the element and its children to drawing
	// elements.
	DrawingElements() []drawing.Element
	// Children returns the direct child layout elements in drawing order.
	Children() []Element
	// Translated returns a copy moved by (dx, dy), children included.
	Translated(dx, dy float64) Element
	// Childless returns a copy with every child removed.
	Childless() Element
	withoutIDs(idx Index) Element
}

// NewID returns a fresh element identifier.
func NewID() string { return uuid.NewString() }

// Descendants returns every element below e, depth first.
func Descendants(e Element) []Element {
	var out []Element
	for _, c := range e.Children() {
		out = append(out, c)
		out = append(out, Descendants(c)...)
	}
	return out
}

// Flattened returns the childless copy of e followed by the flattened
// children.
func Flattened(e Element) []Element {
	out := []Element{e.Childless()}
	for _, c := range e.Children() {
		out = append(out, Flattened(c)...)
	}
	return out
}

// Equals compares a and b ignoring identifiers. Phantoms compare through the
// targets they resolve to within a and b. With flattened the elements are
// compared through their flattened lists, as sequences or, when unordered is
// set, as multisets.
func Equals(a, b Element, flattened, unordered bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	ia, ib := NewIndex(a), NewIndex(b)
	if !flattened {
		return same(a, b, ia, ib)
	}
	fa, fb := Flattened(a), Flattened(b)
	if len(fa) != len(fb) {
		return false
	}
	if !unordered {
		for i := range fa {
			if !same(fa[i], fb[i], ia, ib) {
				return false
			}
		}
		return true
	}
	return multisetIncluded(fa, fb, ia, ib) && multisetIncluded(fb, fa, ib, ia)
}

func same(a, b Element, ia, ib Index) bool {
	return reflect.DeepEqual(a.withoutIDs(ia), b.withoutIDs(ib))
}

// multisetIncluded reports whether every element of sub matches a distinct
// element of super.
func multisetIncluded(sub, super []Element, is, ip Index) bool {
	used := make([]bool, len(super))
outer:
	for _, e := range sub {
		for i, o := range super {
			if !used[i] && same(e, o, is, ip) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// subsequence reports whether sub appears in super in order.
func subsequence(sub, super []Element, is, ip Index) bool {
	i := 0
	for _, o := range super {
		if i < len(sub) && same(sub[i], o, is, ip) {
			i++
		}
	}
	return i == len(sub)
}

// Contains reports whether other, identifier included, is one of the
// descendants of e.
func Contains(e, other Element) bool {
	for _, d := range Descendants(e) {
		if reflect.DeepEqual(d, other) {
			return true
		}
	}
	return false
}

// Bbox returns the bounding box of e; ok is false when e draws nothing.
func Bbox(e Element) (geometry.Bbox, bool) {
	if t, ok := e.(TextLayout); ok {
		return t.Bbox(), true
	}
	return drawing.BboxOf(e.DrawingElements())
}

// Polylines returns the polygon approximation of e's drawing.
func Polylines(e Element) geometry.Polylines {
	var out geometry.Polylines
	for _, d := range e.DrawingElements() {
		out = append(out, d.Polylines()...)
	}
	return out
}

// Validate checks e and its descendants for structural errors.
func Validate(e Element) error {
	check := func(x Element) error {
		if a, ok := x.(ArcLayout); ok {
			_, err := a.Body()
			return err
		}
		return nil
	}
	if err := check(e); err != nil {
		return err
	}
	for _, d := range Descendants(e) {
		if err := check(d); err != nil {
			return err
		}
	}
	return nil
}

func translateAll(elems []Element, dx, dy float64) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = e.Translated(dx, dy)
	}
	return out
}

func stripAll(elems []Element, idx Index) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = e.withoutIDs(idx)
	}
	return out
}

func drawAll(elems []Element) []drawing.Element {
	var out []drawing.Element
	for _, e := range elems {
		out = append(out, e.DrawingElements()...)
	}
	return out
}

// wrap puts elems in a group carrying style and the element identifier.
func wrap(id string, style drawing.Attributes, elems []drawing.Element) []drawing.Element {
	style.ID = id
	return []drawing.Element{drawing.Group{Attributes: style, Elements: elems}}
}
