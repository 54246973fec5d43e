/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

// MapLayout is the root of a map drawing: a framed canvas holding the
// layout elements.
type MapLayout struct {
	ID       string
	Position geometry.Point
	Width    float64
	Height   float64
	Elements []Element
	Style    drawing.Attributes
}

func (m MapLayout) ElementID() string   { return m.ID }
func (m MapLayout) Children() []Element { return m.Elements }

// Frame is the canvas box.
func (m MapLayout) Frame() geometry.Bbox {
	return geometry.Bbox{Position: m.Position, Width: m.Width, Height: m.Height}
}

// SelfDrawingElements draws the canvas rectangle.
func (m MapLayout) SelfDrawingElements() []drawing.Element {
	f := m.Frame()
	return []drawing.Element{drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: f.NorthWest()},
		drawing.LineTo{Point: f.NorthEast()},
		drawing.LineTo{Point: f.SouthEast()},
		drawing.LineTo{Point: f.SouthWest()},
		drawing.ClosePath{},
	}}}
}

func (m MapLayout) DrawingElements() []drawing.Element {
	elems := m.SelfDrawingElements()
	elems = append(elems, drawAll(m.Elements)...)
	return wrap(m.ID, m.Style, elems)
}

func (m MapLayout) Translated(dx, dy float64) Element {
	m.Position = m.Position.Add(geometry.Pt(dx, dy))
	m.Elements = translateAll(m.Elements, dx, dy)
	return m
}

func (m MapLayout) Childless() Element {
	m.Elements = nil
	return m
}

func (m MapLayout) withoutIDs(idx Index) Element {
	m.ID = ""
	m.Elements = stripAll(m.Elements, idx)
	return m
}

// IsSublayout reports whether m is part of other: both canvases match and
// the elements of m are found among those of other. With flattened the
// whole trees are compared element by element; with unordered the order of
// the elements is ignored.
func (m MapLayout) IsSublayout(other MapLayout, flattened, unordered bool) bool {
	mi, oi := NewIndex(m), NewIndex(other)
	if !same(m.Childless(), other.Childless(), mi, oi) {
		return false
	}
	var mine, theirs []Element
	if flattened {
		mine, theirs = Flattened(m)[1:], Flattened(other)[1:]
	} else {
		mine, theirs = m.Children(), other.Children()
	}
	if unordered {
		return multisetIncluded(mine, theirs, mi, oi)
	}
	return subsequence(mine, theirs, mi, oi)
}
