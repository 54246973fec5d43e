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

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

// Arrowhead draws the end decoration of an arc.
type Arrowhead interface {
	// Length is the extent of the arrowhead along the arc.
	Length() float64
	// Element draws the arrowhead pointing towards +x, its base at base.
	Element(base geometry.Point, style drawing.Attributes) drawing.Element
}

// ArcLayout is a path of segments from an optional source to an optional
// target, ending in an optional arrowhead. The last segment is shortened by
// Shorten plus the arrowhead length so the arrowhead tip ends Shorten before
// the path end.
type ArcLayout struct {
	ID             string
	Segments       []geometry.PathSegment
	Source         Element
	Target         Element
	Elements       []Element
	Style          drawing.Attributes
	Arrowhead      Arrowhead
	ArrowheadStyle drawing.Attributes
	Shorten        float64
}

func (a ArcLayout) ElementID() string { return a.ID }

func (a ArcLayout) Children() []Element {
	var out []Element
	if a.Source != nil {
		out = append(out, a.Source)
	}
	if a.Target != nil {
		out = append(out, a.Target)
	}
	return append(out, a.Elements...)
}

func (a ArcLayout) Translated(dx, dy float64) Element {
	segs := make([]geometry.PathSegment, len(a.Segments))
	for i, s := range a.Segments {
		segs[i] = geometry.Translate(s, dx, dy)
	}
	a.Segments = segs
	if a.Source != nil {
		a.Source = a.Source.Translated(dx, dy)
	}
	if a.Target != nil {
		a.Target = a.Target.Translated(dx, dy)
	}
	a.Elements = translateAll(a.Elements, dx, dy)
	return a
}

func (a ArcLayout) Childless() Element {
	a.Source, a.Target, a.Elements = nil, nil, nil
	return a
}

func (a ArcLayout) withoutIDs(idx Index) Element {
	a.ID = ""
	if a.Source != nil {
		a.Source = a.Source.withoutIDs(idx)
	}
	if a.Target != nil {
		a.Target = a.Target.withoutIDs(idx)
	}
	a.Elements = stripAll(a.Elements, idx)
	return a
}

func (a ArcLayout) noSegments() error {
	return fmt.Errorf("arc %q: %w", a.ID, ErrNoSegments)
}

// Points returns the start point of the first segment followed by the end
// point of every segment.
func (a ArcLayout) Points() []geometry.Point {
	var out []geometry.Point
	for i, s := range a.Segments {
		if i == 0 {
			out = append(out, s.Start())
		}
		out = append(out, s.End())
	}
	return out
}

// Length is the summed length of the segments.
func (a ArcLayout) Length() float64 {
	var l float64
	for _, s := range a.Segments {
		l += s.Length()
	}
	return l
}

func (a ArcLayout) StartPoint() (geometry.Point, error) {
	if len(a.Segments) == 0 {
		return geometry.Point{}, a.noSegments()
	}
	return a.Segments[0].Start(), nil
}

func (a ArcLayout) EndPoint() (geometry.Point, error) {
	if len(a.Segments) == 0 {
		return geometry.Point{}, a.noSegments()
	}
	return a.Segments[len(a.Segments)-1].End(), nil
}

// ArrowheadLength is 0 for an arc without arrowhead.
func (a ArcLayout) ArrowheadLength() float64 {
	if a.Arrowhead == nil {
		return 0
	}
	return a.Arrowhead.Length()
}

// ArrowheadTip is the end point pulled back by Shorten along the last
// segment.
func (a ArcLayout) ArrowheadTip() (geometry.Point, error) {
	if len(a.Segments) == 0 {
		return geometry.Point{}, a.noSegments()
	}
	last := a.Segments[len(a.Segments)-1]
	l := last.Length()
	if l == 0 {
		return last.End(), nil
	}
	return last.PositionAtFraction(1 - a.Shorten/l), nil
}

// ArrowheadBase lies one arrowhead length before the tip. A zero length last
// segment puts the base to the left of the tip.
func (a ArcLayout) ArrowheadBase() (geometry.Point, error) {
	if len(a.Segments) == 0 {
		return geometry.Point{}, a.noSegments()
	}
	last := a.Segments[len(a.Segments)-1]
	l := last.Length()
	if l == 0 {
		tip, _ := a.ArrowheadTip()
		return tip.Sub(geometry.Pt(a.ArrowheadLength(), 0)), nil
	}
	return last.PositionAtFraction(1 - (a.ArrowheadLength()+a.Shorten)/l), nil
}

// ArrowheadDrawingElement returns the arrowhead rotated along the
// base-to-tip direction, or nil for an arc without arrowhead.
func (a ArcLayout) ArrowheadDrawingElement() (drawing.Element, error) {
	if a.Arrowhead == nil {
		return nil, nil
	}
	base, err := a.ArrowheadBase()
	if err != nil {
		return nil, err
	}
	tip, _ := a.ArrowheadTip()
	elem := a.Arrowhead.Element(base, a.ArrowheadStyle)
	if base.AlmostEqual(tip, 1e-12) {
		return elem, nil
	}
	angle := geometry.AngleOfLine(geometry.Line{P1: base, P2: tip})
	return elem.Transformed(geometry.Rotation{Angle: angle, Pivot: base}), nil
}

// ArrowheadBbox is the box of the drawn arrowhead, or the tip alone for an
// arc without arrowhead.
func (a ArcLayout) ArrowheadBbox() (geometry.Bbox, error) {
	elem, err := a.ArrowheadDrawingElement()
	if err != nil {
		return geometry.Bbox{}, err
	}
	if elem != nil {
		if b, ok := drawing.Bbox(elem); ok {
			return b, nil
		}
	}
	tip, _ := a.ArrowheadTip()
	return tip.Bbox(), nil
}

// Body is the arc path: every segment in order, the last one shortened by
// Shorten plus the arrowhead length. Segment types unknown to the drawing
// IR are reported with geometry.ErrUnsupportedObject.
func (a ArcLayout) Body() (drawing.Path, error) {
	if len(a.Segments) == 0 {
		return drawing.Path{}, a.noSegments()
	}
	path := drawing.Path{Actions: []drawing.PathAction{drawing.MoveTo{Point: a.Segments[0].Start()}}}
	for i, s := range a.Segments {
		if i == len(a.Segments)-1 {
			if l := a.Shorten + a.ArrowheadLength(); l > 0 {
				shortened, err := geometry.Shorten(s, l)
				if err != nil {
					return drawing.Path{}, fmt.Errorf("arc %q: %w", a.ID, err)
				}
				s = shortened
			}
		}
		action, err := drawing.SegmentAction(s)
		if err != nil {
			return drawing.Path{}, fmt.Errorf("arc %q: %w", a.ID, err)
		}
		path = path.Append(action)
	}
	return path, nil
}

// SelfDrawingElements draws the body and the arrowhead. An arc whose body
// fails draws nothing; Validate reports it.
func (a ArcLayout) SelfDrawingElements() []drawing.Element {
	path, err := a.Body()
	if err != nil {
		return nil
	}
	out := []drawing.Element{path}
	if head, err := a.ArrowheadDrawingElement(); err == nil && head != nil {
		out = append(out, head)
	}
	return out
}

func (a ArcLayout) DrawingElements() []drawing.Element {
	elems := a.SelfDrawingElements()
	elems = append(elems, drawAll(a.Children())...)
	return wrap(a.ID, a.Style, elems)
}

// Fraction returns the point at fraction f of the arc length and the
// direction of the arc there, in radians. f is clamped to [0, 1].
func (a ArcLayout) Fraction(f float64) (geometry.Point, float64, error) {
	if len(a.Segments) == 0 {
		return geometry.Point{}, 0, a.noSegments()
	}
	f = math.Max(0, math.Min(1, f))
	target := f * a.Length()
	var before float64
	idx := len(a.Segments) - 1
	for i, s := range a.Segments {
		if before+s.Length() >= target || i == idx {
			idx = i
			break
		}
		before += s.Length()
	}
	seg := a.Segments[idx]
	local := 0.0
	if l := seg.Length(); l > 0 {
		local = (target - before) / l
	}
	return seg.PositionAtFraction(local), seg.AngleAtFraction(local), nil
}
