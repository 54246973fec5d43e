/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package drawing is the backend-agnostic vector graphics representation that
// layout elements lower to and renderers consume.
package drawing

import (
	"errors"
	"fmt"

	"momapgo/internal/geometry"
)

// ErrUnsupportedElement is returned when a dispatcher meets an element that is
// not one of Path, Group, Text, Ellipse or Rectangle.
var ErrUnsupportedElement = errors.New("unsupported drawing element")

// Element is a drawing element: Path, Group, Text, Ellipse or Rectangle.
type Element interface {
	Attrs() Attributes
	// Polylines returns the polygon approximation in the parent coordinate
	// system, with the element's own Transform applied.
	Polylines() geometry.Polylines
	// Transformed maps every coordinate through t. The element's own
	// Transform list and paint are kept.
	Transformed(t geometry.Transformation) Element
	isElement()
}

// Bbox returns the bounding box of e; ok is false when e draws nothing.
func Bbox(e Element) (geometry.Bbox, bool) { return e.Polylines().Bounds() }

// BboxOf returns the bounding box of all elements.
func BboxOf(elems []Element) (geometry.Bbox, bool) {
	var all geometry.Polylines
	for _, e := range elems {
		all = append(all, e.Polylines()...)
	}
	return all.Bounds()
}

// Unsupported wraps ErrUnsupportedElement with the offending type.
func Unsupported(e Element) error { return fmt.Errorf("%w: %T", ErrUnsupportedElement, e) }

func applyOwn(a Attributes, ps geometry.Polylines) geometry.Polylines {
	if t, ok := a.Transformation(); ok {
		return ps.Transformed(t)
	}
	return ps
}

// Group is an ordered list of elements sharing inherited paint state.
type Group struct {
	Attributes
	Elements []Element
}

func (Group) isElement() {}

func (g Group) Polylines() geometry.Polylines {
	var out geometry.Polylines
	for _, e := range g.Elements {
		out = append(out, e.Polylines()...)
	}
	return applyOwn(g.Attributes, out)
}

func (g Group) Transformed(t geometry.Transformation) Element {
	out := g
	out.Elements = make([]Element, len(g.Elements))
	for i, e := range g.Elements {
		out.Elements[i] = e.Transformed(t)
	}
	return out
}

// Text is a single line of text whose baseline starts at Position.
type Text struct {
	Attributes
	Text       string
	FontFamily string
	FontSize   float64
	Position   geometry.Point
}

func (Text) isElement() {}

func (t Text) Polylines() geometry.Polylines {
	return applyOwn(t.Attributes, geometry.Polylines{t.Position.Polyline()})
}

func (t Text) Transformed(tr geometry.Transformation) Element {
	out := t
	out.Position = geometry.Apply(tr, t.Position)
	return out
}

// Ellipse is centered at Point with radii Rx and Ry.
type Ellipse struct {
	Attributes
	Point  geometry.Point
	Rx, Ry float64
}

func (Ellipse) isElement() {}

// ToPath returns the equivalent path of two half arcs.
func (e Ellipse) ToPath() Path {
	west := geometry.Point{X: e.Point.X - e.Rx, Y: e.Point.Y}
	east := geometry.Point{X: e.Point.X + e.Rx, Y: e.Point.Y}
	return Path{
		Attributes: e.Attributes,
		Actions: []PathAction{
			MoveTo{Point: west},
			EllipticalArc{Point: east, Rx: e.Rx, Ry: e.Ry, ArcFlag: true},
			EllipticalArc{Point: west, Rx: e.Rx, Ry: e.Ry, ArcFlag: true},
			ClosePath{},
		},
	}
}

func (e Ellipse) Polylines() geometry.Polylines { return e.ToPath().Polylines() }

func (e Ellipse) Transformed(t geometry.Transformation) Element { return e.ToPath().Transformed(t) }

// Rectangle has its top-left corner at Point; Rx and Ry round the corners.
type Rectangle struct {
	Attributes
	Point         geometry.Point
	Width, Height float64
	Rx, Ry        float64
}

func (Rectangle) isElement() {}

// ToPath returns the equivalent path, with corner arcs when both radii are
// positive.
func (r Rectangle) ToPath() Path {
	x, y, w, h, rx, ry := r.Point.X, r.Point.Y, r.Width, r.Height, r.Rx, r.Ry
	round := rx > 0 && ry > 0
	if !round {
		rx, ry = 0, 0
	}
	pt := geometry.Pt
	arc := func(p geometry.Point) PathAction { return EllipticalArc{Point: p, Rx: rx, Ry: ry, SweepFlag: true} }
	acts := []PathAction{MoveTo{Point: pt(x+rx, y)}, LineTo{Point: pt(x+w-rx, y)}}
	if round {
		acts = append(acts, arc(pt(x+w, y+ry)))
	}
	acts = append(acts, LineTo{Point: pt(x+w, y+h-ry)})
	if round {
		acts = append(acts, arc(pt(x+w-rx, y+h)))
	}
	acts = append(acts, LineTo{Point: pt(x+rx, y+h)})
	if round {
		acts = append(acts, arc(pt(x, y+h-ry)))
	}
	acts = append(acts, LineTo{Point: pt(x, y+ry)})
	if round {
		acts = append(acts, arc(pt(x+rx, y)))
	}
	acts = append(acts, ClosePath{})
	return Path{Attributes: r.Attributes, Actions: acts}
}

func (r Rectangle) Polylines() geometry.Polylines { return r.ToPath().Polylines() }

func (r Rectangle) Transformed(t geometry.Transformation) Element { return r.ToPath().Transformed(t) }
