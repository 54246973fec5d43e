/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package arcs provides the arrowheads of layout.ArcLayout. Each arrowhead
// is drawn pointing towards +x from its base; the arc rotates it.
package arcs

import (
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
)

// Polyline returns the straight segments joining points.
func Polyline(points ...geometry.Point) []geometry.PathSegment {
	if len(points) < 2 {
		return nil
	}
	out := make([]geometry.PathSegment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, geometry.Segment{P1: points[i-1], P2: points[i]})
	}
	return out
}

// New returns an arc through points ending with head; a nil head draws a
// plain line.
func New(head layout.Arrowhead, points ...geometry.Point) layout.ArcLayout {
	return layout.ArcLayout{ID: layout.NewID(), Segments: Polyline(points...), Arrowhead: head}
}

func off(base geometry.Point, dx, dy float64) geometry.Point {
	return base.Add(geometry.Pt(dx, dy))
}

// Arrow is a triangle Width long and Height wide.
type Arrow struct{ Width, Height float64 }

func (a Arrow) Length() float64 { return a.Width }

func (a Arrow) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	return drawing.Path{Attributes: style, Actions: []drawing.PathAction{
		drawing.MoveTo{Point: base},
		drawing.LineTo{Point: off(base, 0, -a.Height/2)},
		drawing.LineTo{Point: off(base, a.Width, 0)},
		drawing.LineTo{Point: off(base, 0, a.Height/2)},
		drawing.ClosePath{},
	}}
}

// Circle is an ellipse whose west point is the base.
type Circle struct{ Width, Height float64 }

func (c Circle) Length() float64 { return c.Width }

func (c Circle) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	return drawing.Ellipse{Attributes: style, Point: off(base, c.Width/2, 0), Rx: c.Width / 2, Ry: c.Height / 2}
}

// Bar is a line across the arc, in the middle of its Width.
type Bar struct{ Width, Height float64 }

func (b Bar) Length() float64 { return b.Width }

func (b Bar) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	return drawing.Path{Attributes: style, Actions: []drawing.PathAction{
		drawing.MoveTo{Point: off(base, b.Width/2, b.Height/2)},
		drawing.LineTo{Point: off(base, b.Width/2, -b.Height/2)},
	}}
}

// BarArrow is a bar, a gap of Sep and an arrow.
type BarArrow struct {
	Width, Height       float64
	BarWidth, BarHeight float64
	Sep                 float64
}

func (b BarArrow) Length() float64 { return b.BarWidth + b.Sep + b.Width }

func (b BarArrow) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	bar := drawing.Path{
		Attributes: drawing.Attributes{StrokeWidth: drawing.Float(b.BarWidth)},
		Actions: []drawing.PathAction{
			drawing.MoveTo{Point: off(base, b.BarWidth/2, b.BarHeight/2)},
			drawing.LineTo{Point: off(base, b.BarWidth/2, -b.BarHeight/2)},
		},
	}
	gap := drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: off(base, b.BarWidth, 0)},
		drawing.LineTo{Point: off(base, b.BarWidth+b.Sep, 0)},
	}}
	arrow := Arrow{Width: b.Width, Height: b.Height}.Element(off(base, b.BarWidth+b.Sep, 0), drawing.Attributes{})
	return drawing.Group{Attributes: style, Elements: []drawing.Element{bar, gap, arrow}}
}

// Diamond is a rhombus Width long and Height wide.
type Diamond struct{ Width, Height float64 }

func (d Diamond) Length() float64 { return d.Width }

func (d Diamond) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	return drawing.Path{Attributes: style, Actions: []drawing.PathAction{
		drawing.MoveTo{Point: base},
		drawing.LineTo{Point: off(base, d.Width/2, -d.Height/2)},
		drawing.LineTo{Point: off(base, d.Width, 0)},
		drawing.LineTo{Point: off(base, d.Width/2, d.Height/2)},
		drawing.ClosePath{},
	}}
}

var (
	_ layout.Arrowhead = Arrow{}
	_ layout.Arrowhead = Circle{}
	_ layout.Arrowhead = Bar{}
	_ layout.Arrowhead = BarArrow{}
	_ layout.Arrowhead = Diamond{}
)
