/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package shapes provides the node outlines used by layout.NodeLayout. Every
// shape draws inside the frame it is given; paint is inherited from the node.
package shapes

import (
	"math"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
)

func one(e drawing.Element) []drawing.Element { return []drawing.Element{e} }

// polygon closes a path through points.
func polygon(points ...geometry.Point) drawing.Path {
	p := drawing.Path{Actions: []drawing.PathAction{drawing.MoveTo{Point: points[0]}}}
	for _, q := range points[1:] {
		p = p.Append(drawing.LineTo{Point: q})
	}
	return p.Append(drawing.ClosePath{})
}

func arcTo(p geometry.Point, rx, ry float64) drawing.EllipticalArc {
	return drawing.EllipticalArc{Point: p, Rx: rx, Ry: ry, SweepFlag: true}
}

func at(f geometry.Bbox, dx, dy float64) geometry.Point {
	return f.Position.Add(geometry.Pt(dx, dy))
}

type Rectangle struct{}

func (Rectangle) Outline(f geometry.Bbox) []drawing.Element {
	return one(drawing.Rectangle{Point: f.NorthWest(), Width: f.Width, Height: f.Height})
}

// RoundedRectangle has elliptical corners of radii Rx and Ry.
type RoundedRectangle struct{ Rx, Ry float64 }

func (s RoundedRectangle) Outline(f geometry.Bbox) []drawing.Element {
	return one(drawing.Rectangle{Point: f.NorthWest(), Width: f.Width, Height: f.Height, Rx: s.Rx, Ry: s.Ry})
}

type Ellipse struct{}

func (Ellipse) Outline(f geometry.Bbox) []drawing.Element {
	return one(drawing.Ellipse{Point: f.Position, Rx: f.Width / 2, Ry: f.Height / 2})
}

// CutCornerRectangle is an octagon: a rectangle with its corners cut by Cut.
type CutCornerRectangle struct{ Cut float64 }

func (s CutCornerRectangle) Outline(f geometry.Bbox) []drawing.Element {
	w, h, c := f.Width/2, f.Height/2, s.Cut
	return one(polygon(
		at(f, c-w, -h), at(f, w-c, -h),
		at(f, w, c-h), at(f, w, h-c),
		at(f, w-c, h), at(f, c-w, h),
		at(f, -w, h-c), at(f, -w, c-h),
	))
}

// Stadium is a rectangle with half circles on its short sides.
type Stadium struct{}

func (Stadium) Outline(f geometry.Bbox) []drawing.Element {
	r := f.Height / 2
	return one(drawing.Rectangle{Point: f.NorthWest(), Width: f.Width, Height: f.Height, Rx: r, Ry: r})
}

// BottomRoundedRectangle rounds the two bottom corners only.
type BottomRoundedRectangle struct{ Radius float64 }

func (s BottomRoundedRectangle) Outline(f geometry.Bbox) []drawing.Element {
	w, h, r := f.Width/2, f.Height/2, s.Radius
	return one(drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: at(f, -w, -h)},
		drawing.LineTo{Point: at(f, w, -h)},
		drawing.LineTo{Point: at(f, w, h-r)},
		arcTo(at(f, w-r, h), r, r),
		drawing.LineTo{Point: at(f, r-w, h)},
		arcTo(at(f, -w, h-r), r, r),
		drawing.ClosePath{},
	}})
}

// CircleWithDiagonalBar is an ellipse crossed from its south west to its
// north east corner.
type CircleWithDiagonalBar struct{}

func (CircleWithDiagonalBar) Outline(f geometry.Bbox) []drawing.Element {
	bar := drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: f.SouthWest()},
		drawing.LineTo{Point: f.NorthEast()},
	}}
	return one(drawing.Group{Elements: []drawing.Element{
		drawing.Ellipse{Point: f.Position, Rx: f.Width / 2, Ry: f.Height / 2},
		bar,
	}})
}

// Hexagon has pointed west and east vertices; the angles, in degrees, are
// between the slanted sides and the horizontal.
type Hexagon struct {
	TopLeft, TopRight, BottomLeft, BottomRight float64
}

// side is the run of a slanted side spanning length at angle degrees.
func side(length, angle float64) float64 {
	a := geometry.Radians(angle)
	return math.Abs(length/(2*math.Sin(a))) * math.Cos(a)
}

func (s Hexagon) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	west, east := at(f, -w, 0), at(f, w, 0)
	return one(polygon(
		geometry.Pt(west.X+side(f.Height, s.TopLeft), west.Y-h),
		geometry.Pt(east.X-side(f.Height, s.TopRight), east.Y-h),
		east,
		geometry.Pt(east.X-side(f.Height, s.BottomRight), east.Y+h),
		geometry.Pt(west.X+side(f.Height, s.BottomLeft), west.Y+h),
		west,
	))
}

// InvertedHexagon has its west and east vertices pointing inwards.
type InvertedHexagon struct {
	TopLeft, TopRight, BottomLeft, BottomRight float64
}

func meet(p1, d1, p2, d2 geometry.Point, fallback geometry.Point) geometry.Point {
	objs := geometry.LineLineIntersection(
		geometry.Line{P1: p1, P2: p1.Add(d1)},
		geometry.Line{P1: p2, P2: p2.Add(d2)},
	)
	if len(objs) == 1 {
		if p, ok := objs[0].(geometry.Point); ok {
			return p
		}
	}
	return fallback
}

func (s InvertedHexagon) Outline(f geometry.Bbox) []drawing.Element {
	nw, ne, se, sw := f.NorthWest(), f.NorthEast(), f.SouthEast(), f.SouthWest()
	dir := func(angle, sx, sy float64) geometry.Point {
		a := geometry.Radians(angle)
		return geometry.Pt(sx*math.Cos(a), sy*math.Sin(a))
	}
	east := meet(ne, dir(s.TopRight, -1, 1), se, dir(s.BottomRight, -1, -1), f.East())
	west := meet(nw, dir(s.TopLeft, 1, 1), sw, dir(s.BottomLeft, 1, -1), f.West())
	return one(polygon(nw, ne, east, se, sw, west))
}

// Parallelogram leans right by Angle degrees.
type Parallelogram struct{ Angle float64 }

func (s Parallelogram) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	o := math.Abs(f.Height / math.Tan(geometry.Radians(s.Angle)))
	return one(polygon(at(f, o-w, -h), at(f, w, -h), at(f, w-o, h), at(f, -w, h)))
}

// InvertedParallelogram leans left by Angle degrees.
type InvertedParallelogram struct{ Angle float64 }

func (s InvertedParallelogram) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	o := math.Abs(f.Height / math.Tan(geometry.Radians(s.Angle)))
	return one(polygon(at(f, -w, -h), at(f, w-o, -h), at(f, w, h), at(f, o-w, h)))
}

// CircleWithInsideCircle draws a second ellipse Sep inside the first.
type CircleWithInsideCircle struct{ Sep float64 }

func (s CircleWithInsideCircle) Outline(f geometry.Bbox) []drawing.Element {
	return one(drawing.Group{Elements: []drawing.Element{
		drawing.Ellipse{Point: f.Position, Rx: f.Width / 2, Ry: f.Height / 2},
		drawing.Ellipse{Point: f.Position, Rx: f.Width/2 - s.Sep, Ry: f.Height/2 - s.Sep},
	}})
}

// Pointer is a pentagon pointing in Direction; the angles are those of the
// two sides of the point, in degrees.
type Pointer struct {
	Direction   layout.Direction
	TopAngle    float64
	BottomAngle float64
}

func (s Pointer) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	var pts []geometry.Point
	switch s.Direction {
	case layout.Up:
		pts = []geometry.Point{
			at(f, 0, -h),
			at(f, w, -h+side(f.Width, s.TopAngle)),
			at(f, w, h),
			at(f, -w, h),
			at(f, -w, -h+side(f.Width, s.TopAngle)),
		}
	case layout.Down:
		pts = []geometry.Point{
			at(f, -w, -h),
			at(f, w, -h),
			at(f, w, h-side(f.Width, s.BottomAngle)),
			at(f, 0, h),
			at(f, -w, h-side(f.Width, s.BottomAngle)),
		}
	case layout.Left:
		pts = []geometry.Point{
			at(f, -w+side(f.Height, s.TopAngle), -h),
			at(f, w, -h),
			at(f, w, h),
			at(f, -w+side(f.Height, s.BottomAngle), h),
			at(f, -w, 0),
		}
	default:
		pts = []geometry.Point{
			at(f, -w, -h),
			at(f, w-side(f.Height, s.TopAngle), -h),
			at(f, w, 0),
			at(f, w-side(f.Height, s.BottomAngle), h),
			at(f, -w, h),
		}
	}
	return one(polygon(pts...))
}

// DoubleRoundedRectangle is two rounded rectangles side by side, the right
// one RightWidth wide. The label is centered on the left one.
type DoubleRoundedRectangle struct {
	Radius     float64
	RightWidth float64
}

func (s DoubleRoundedRectangle) Outline(f geometry.Bbox) []drawing.Element {
	nw := f.NorthWest()
	return one(drawing.Group{Elements: []drawing.Element{
		drawing.Rectangle{Point: nw, Width: f.Width - s.RightWidth, Height: f.Height, Rx: s.Radius, Ry: s.Radius},
		drawing.Rectangle{
			Point: geometry.Pt(f.MaxX()-s.RightWidth, nw.Y),
			Width: s.RightWidth, Height: f.Height, Rx: s.Radius, Ry: s.Radius,
		},
	}})
}

func (s DoubleRoundedRectangle) LabelCenter(f geometry.Bbox) geometry.Point {
	return f.Position.Sub(geometry.Pt(s.RightWidth/2, 0))
}

// TruncatedRectangle has rounded left corners and its bottom right corner
// cut inwards. The truncations are fractions of the height and the width.
type TruncatedRectangle struct {
	Radius               float64
	VerticalTruncation   float64
	HorizontalTruncation float64
}

func (s TruncatedRectangle) Outline(f geometry.Bbox) []drawing.Element {
	w, h, r := f.Width/2, f.Height/2, s.Radius
	vt, ht := s.VerticalTruncation*f.Height, s.HorizontalTruncation*f.Width
	start := at(f, r-w, -h)
	return one(drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: start},
		drawing.LineTo{Point: at(f, w, -h)},
		drawing.LineTo{Point: at(f, w, h-vt)},
		drawing.LineTo{Point: at(f, w-ht, vt-h)},
		drawing.LineTo{Point: at(f, w-ht, h)},
		drawing.LineTo{Point: at(f, r-w, h)},
		arcTo(at(f, -w, h-r), r, r),
		drawing.LineTo{Point: at(f, -w, r-h)},
		arcTo(start, r, r),
		drawing.ClosePath{},
	}})
}

// FoxHead is a hexagon notched at the top middle with a point at the bottom
// middle.
type FoxHead struct{ VerticalTruncation float64 }

func (s FoxHead) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	vt := s.VerticalTruncation * f.Height
	return one(polygon(
		at(f, -w, -h), at(f, 0, vt-h), at(f, w, -h),
		at(f, w, h-vt), at(f, 0, h), at(f, -w, h-vt),
	))
}

// DoubleStadium is a stadium with elliptic ends, HorizontalProportion of the
// width each, and a second one Sep inside.
type DoubleStadium struct {
	HorizontalProportion float64
	Sep                  float64
}

func (s DoubleStadium) Outline(f geometry.Bbox) []drawing.Element {
	w, h := f.Width/2, f.Height/2
	rx := s.HorizontalProportion * f.Width
	stadium := func(p1, p2, p3, p4 geometry.Point, rx, ry float64) drawing.Path {
		return drawing.Path{Actions: []drawing.PathAction{
			drawing.MoveTo{Point: p1},
			drawing.LineTo{Point: p2},
			arcTo(p3, rx, ry),
			drawing.LineTo{Point: p4},
			arcTo(p1, rx, ry),
			drawing.ClosePath{},
		}}
	}
	p1, p2 := at(f, rx-w, -h), at(f, w-rx, -h)
	p3, p4 := at(f, w-rx, h), at(f, rx-w, h)
	sep := geometry.Pt(0, s.Sep)
	return one(drawing.Group{Elements: []drawing.Element{
		stadium(p1, p2, p3, p4, rx, h),
		stadium(p1.Add(sep), p2.Add(sep), p3.Sub(sep), p4.Sub(sep), rx-s.Sep, h-s.Sep),
	}})
}

// CrossPoint is a plus sign spanning the frame.
type CrossPoint struct{}

func (CrossPoint) Outline(f geometry.Bbox) []drawing.Element {
	line := func(a, b geometry.Point) drawing.Path {
		return drawing.Path{Actions: []drawing.PathAction{drawing.MoveTo{Point: a}, drawing.LineTo{Point: b}}}
	}
	return one(drawing.Group{Elements: []drawing.Element{
		line(f.West(), f.East()),
		line(f.North(), f.South()),
	}})
}

var (
	_ layout.Shape         = Rectangle{}
	_ layout.LabelCenterer = DoubleRoundedRectangle{}
)
