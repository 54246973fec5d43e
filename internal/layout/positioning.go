/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"fmt"
	"math"

	"momapgo/internal/geometry"
)

// Anchored is anything with compass anchors: geometry.Bbox, NodeLayout,
// TextLayout, or a point wrapped by At.
type Anchored interface {
	Anchor(a geometry.Anchor) geometry.Point
}

type pointAnchor geometry.Point

func (p pointAnchor) Anchor(geometry.Anchor) geometry.Point { return geometry.Point(p) }

// At makes a point usable where an Anchored is expected. Every anchor is the
// point itself.
func At(p geometry.Point) Anchored { return pointAnchor(p) }

func RightOf(obj Anchored, d float64) geometry.Point {
	return obj.Anchor(geometry.East).Add(geometry.Pt(d, 0))
}

func LeftOf(obj Anchored, d float64) geometry.Point {
	return obj.Anchor(geometry.West).Sub(geometry.Pt(d, 0))
}

func AboveOf(obj Anchored, d float64) geometry.Point {
	return obj.Anchor(geometry.North).Sub(geometry.Pt(0, d))
}

func BelowOf(obj Anchored, d float64) geometry.Point {
	return obj.Anchor(geometry.South).Add(geometry.Pt(0, d))
}

// AboveLeftOf is d1 above and d2 left of the north west anchor.
func AboveLeftOf(obj Anchored, d1, d2 float64) geometry.Point {
	return obj.Anchor(geometry.NorthWest).Sub(geometry.Pt(d2, d1))
}

// AboveRightOf is d1 above and d2 right of the north east anchor.
func AboveRightOf(obj Anchored, d1, d2 float64) geometry.Point {
	return obj.Anchor(geometry.NorthEast).Add(geometry.Pt(d2, -d1))
}

// BelowLeftOf is d1 below and d2 left of the south west anchor.
func BelowLeftOf(obj Anchored, d1, d2 float64) geometry.Point {
	return obj.Anchor(geometry.SouthWest).Add(geometry.Pt(-d2, d1))
}

// BelowRightOf is d1 below and d2 right of the south east anchor.
func BelowRightOf(obj Anchored, d1, d2 float64) geometry.Point {
	return obj.Anchor(geometry.SouthEast).Add(geometry.Pt(d2, d1))
}

// Fit returns the smallest box holding every box, grown by xsep on the left
// and right and by ysep on the top and bottom.
func Fit(boxes []geometry.Bbox, xsep, ysep float64) (geometry.Bbox, error) {
	if len(boxes) == 0 {
		return geometry.Bbox{}, ErrEmptyFit
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		minX, minY = math.Min(minX, b.MinX()), math.Min(minY, b.MinY())
		maxX, maxY = math.Max(maxX, b.MaxX()), math.Max(maxY, b.MaxY())
	}
	return geometry.BboxFromBounds(minX-xsep, minY-ysep, maxX+xsep, maxY+ysep), nil
}

// FitPoints is Fit over points.
func FitPoints(points []geometry.Point, xsep, ysep float64) (geometry.Bbox, error) {
	boxes := make([]geometry.Bbox, len(points))
	for i, p := range points {
		boxes[i] = p.Bbox()
	}
	return Fit(boxes, xsep, ysep)
}

// FitElements is Fit over the bounding boxes of elements. Elements that draw
// nothing are skipped.
func FitElements(elems []Element, xsep, ysep float64) (geometry.Bbox, error) {
	var boxes []geometry.Bbox
	for _, e := range elems {
		if b, ok := Bbox(e); ok {
			boxes = append(boxes, b)
		}
	}
	if len(boxes) == 0 {
		return geometry.Bbox{}, fmt.Errorf("%d elements without drawing: %w", len(elems), ErrEmptyFit)
	}
	return Fit(boxes, xsep, ysep)
}

// FractionOf returns the point at fraction f of arc and the rotation
// aligning an element placed there with the arc.
func FractionOf(arc ArcLayout, f float64) (geometry.Point, []geometry.Transformation, error) {
	p, angle, err := arc.Fraction(f)
	if err != nil {
		return geometry.Point{}, nil, err
	}
	return p, []geometry.Transformation{geometry.Rotation{Angle: angle, Pivot: p}}, nil
}

// SetPosition moves n so that its anchor a lies on p.
func SetPosition(n NodeLayout, p geometry.Point, a geometry.Anchor) NodeLayout {
	d := p.Sub(n.Position)
	n = n.Moved(d.X, d.Y)
	if a == geometry.Center {
		return n
	}
	d = p.Sub(n.Anchor(a))
	return n.Moved(d.X, d.Y)
}

func SetRightOf(n NodeLayout, ref Anchored, d float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, RightOf(ref, d), a)
}

func SetLeftOf(n NodeLayout, ref Anchored, d float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, LeftOf(ref, d), a)
}

func SetAboveOf(n NodeLayout, ref Anchored, d float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, AboveOf(ref, d), a)
}

func SetBelowOf(n NodeLayout, ref Anchored, d float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, BelowOf(ref, d), a)
}

func SetAboveLeftOf(n NodeLayout, ref Anchored, d1, d2 float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, AboveLeftOf(ref, d1, d2), a)
}

func SetAboveRightOf(n NodeLayout, ref Anchored, d1, d2 float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, AboveRightOf(ref, d1, d2), a)
}

func SetBelowLeftOf(n NodeLayout, ref Anchored, d1, d2 float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, BelowLeftOf(ref, d1, d2), a)
}

func SetBelowRightOf(n NodeLayout, ref Anchored, d1, d2 float64, a geometry.Anchor) NodeLayout {
	return SetPosition(n, BelowRightOf(ref, d1, d2), a)
}

// SetFit resizes n to the fitted box of boxes and places its anchor a on the
// box center.
func SetFit(n NodeLayout, boxes []geometry.Bbox, xsep, ysep float64, a geometry.Anchor) (NodeLayout, error) {
	b, err := Fit(boxes, xsep, ysep)
	if err != nil {
		return n, err
	}
	n.Width, n.Height = b.Width, b.Height
	return SetPosition(n, b.Position, a), nil
}

// SetFractionOf places n at fraction f of arc, rotated along the arc.
func SetFractionOf(n NodeLayout, arc ArcLayout, f float64, a geometry.Anchor) (NodeLayout, error) {
	p, transform, err := FractionOf(arc, f)
	if err != nil {
		return n, err
	}
	n = SetPosition(n, p, a)
	n.Style.Transform = transform
	return n, nil
}

