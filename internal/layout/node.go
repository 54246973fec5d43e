/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"math"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

// Shape draws the outline of a node inside its frame.
type Shape interface {
	Outline(frame geometry.Bbox) []drawing.Element
}

// Anchorer is implemented by shapes whose anchors are not on the outline,
// such as glyphs with connectors. ok is false for anchors left to the
// outline.
type Anchorer interface {
	Anchor(frame geometry.Bbox, a geometry.Anchor) (p geometry.Point, ok bool)
}

// LabelCenterer is implemented by shapes whose label is not centered on the
// node.
type LabelCenterer interface {
	LabelCenter(frame geometry.Bbox) geometry.Point
}

// rayLength is how far from the center the target point of an angle lies.
const rayLength = 100

// NodeLayout is a shape centered on Position, with an optional label and
// decorations drawn above it.
type NodeLayout struct {
	ID       string
	Position geometry.Point
	Width    float64
	Height   float64
	Shape    Shape
	Label    *TextLayout
	Elements []Element
	Style    drawing.Attributes
}

func (n NodeLayout) ElementID() string { return n.ID }

// Frame is the box the shape is drawn in.
func (n NodeLayout) Frame() geometry.Bbox {
	return geometry.Bbox{Position: n.Position, Width: n.Width, Height: n.Height}
}

// SelfDrawingElements draws the shape alone.
func (n NodeLayout) SelfDrawingElements() []drawing.Element {
	if n.Shape == nil {
		return nil
	}
	return n.Shape.Outline(n.Frame())
}

func (n NodeLayout) DrawingElements() []drawing.Element {
	elems := n.SelfDrawingElements()
	elems = append(elems, drawAll(n.Children())...)
	return wrap(n.ID, n.Style, elems)
}

func (n NodeLayout) Children() []Element {
	var out []Element
	if n.Label != nil {
		out = append(out, *n.Label)
	}
	return append(out, n.Elements...)
}

func (n NodeLayout) Translated(dx, dy float64) Element { return n.Moved(dx, dy) }

// Moved is Translated keeping the concrete type.
func (n NodeLayout) Moved(dx, dy float64) NodeLayout {
	n.Position = n.Position.Add(geometry.Pt(dx, dy))
	if n.Label != nil {
		l := n.Label.Moved(dx, dy)
		n.Label = &l
	}
	n.Elements = translateAll(n.Elements, dx, dy)
	return n
}

func (n NodeLayout) Childless() Element {
	n.Label = nil
	n.Elements = nil
	return n
}

func (n NodeLayout) withoutIDs(idx Index) Element {
	n.ID = ""
	if n.Label != nil {
		l := *n.Label
		l.ID = ""
		n.Label = &l
	}
	n.Elements = stripAll(n.Elements, idx)
	return n
}

// selfPolylines approximates the shape alone, under the node transform.
func (n NodeLayout) selfPolylines() geometry.Polylines {
	polys := polylinesOf(n.SelfDrawingElements())
	if t, ok := n.Style.Transformation(); ok {
		polys = polys.Transformed(t)
	}
	return polys
}

// SelfBbox is the bounding box of the shape alone.
func (n NodeLayout) SelfBbox() (geometry.Bbox, bool) {
	return n.selfPolylines().Bounds()
}

// SelfBorder returns where the ray from the center towards p leaves the
// shape.
func (n NodeLayout) SelfBorder(p geometry.Point) (geometry.Point, bool) {
	return borderPoint(n.selfPolylines(), n.Position, p)
}

// Border is SelfBorder against the whole drawing, label and decorations
// included.
func (n NodeLayout) Border(p geometry.Point) (geometry.Point, bool) {
	return borderPoint(polylinesOf(n.DrawingElements()), n.Position, p)
}

// SelfAngle returns the border point of the shape in the direction of angle
// degrees, counterclockwise from east.
func (n NodeLayout) SelfAngle(angle float64) (geometry.Point, bool) {
	cos, sin := geometry.Sincos(-angle)
	return n.SelfBorder(n.Position.Add(geometry.Pt(cos, sin).Mul(rayLength)))
}

// Angle is SelfAngle against the whole drawing.
func (n NodeLayout) Angle(angle float64) (geometry.Point, bool) {
	cos, sin := geometry.Sincos(-angle)
	return n.Border(n.Position.Add(geometry.Pt(cos, sin).Mul(rayLength)))
}

func (n NodeLayout) Center() geometry.Point { return n.Position }

func (n NodeLayout) North() geometry.Point     { return n.Anchor(geometry.North) }
func (n NodeLayout) NorthEast() geometry.Point { return n.Anchor(geometry.NorthEast) }
func (n NodeLayout) East() geometry.Point      { return n.Anchor(geometry.East) }
func (n NodeLayout) SouthEast() geometry.Point { return n.Anchor(geometry.SouthEast) }
func (n NodeLayout) South() geometry.Point     { return n.Anchor(geometry.South) }
func (n NodeLayout) SouthWest() geometry.Point { return n.Anchor(geometry.SouthWest) }
func (n NodeLayout) West() geometry.Point      { return n.Anchor(geometry.West) }
func (n NodeLayout) NorthWest() geometry.Point { return n.Anchor(geometry.NorthWest) }

// LabelCenter is where the label of the node is centered.
func (n NodeLayout) LabelCenter() geometry.Point {
	if lc, ok := n.Shape.(LabelCenterer); ok {
		return lc.LabelCenter(n.Frame())
	}
	return n.Position
}

// Anchor returns the named anchor. Compass anchors lie on the shape outline
// unless the shape provides its own; a ray that misses the outline falls
// back to the frame.
func (n NodeLayout) Anchor(a geometry.Anchor) geometry.Point {
	if a == geometry.Center {
		return n.Position
	}
	if an, ok := n.Shape.(Anchorer); ok {
		if p, ok := an.Anchor(n.Frame(), a); ok {
			return p
		}
	}
	var p geometry.Point
	var ok bool
	switch a {
	case geometry.North:
		p, ok = n.SelfAngle(90)
	case geometry.East:
		p, ok = n.SelfAngle(0)
	case geometry.South:
		p, ok = n.SelfAngle(270)
	case geometry.West:
		p, ok = n.SelfAngle(180)
	default:
		p, ok = n.SelfBorder(n.Frame().Anchor(a))
	}
	if !ok {
		return n.Frame().Anchor(a)
	}
	return p
}

func polylinesOf(elems []drawing.Element) geometry.Polylines {
	var out geometry.Polylines
	for _, e := range elems {
		out = append(out, e.Polylines()...)
	}
	return out
}

// borderPoint intersects the line through center and p with polys and
// keeps the farthest candidate from center lying on p's side.
func borderPoint(polys geometry.Polylines, center, p geometry.Point) (geometry.Point, bool) {
	if len(polys) == 0 || p.AlmostEqual(center, 1e-9) {
		return geometry.Point{}, false
	}
	objs, err := geometry.ObjectLineIntersection(polys, geometry.Line{P1: center, P2: p})
	if err != nil {
		return geometry.Point{}, false
	}
	var candidates []geometry.Point
	for _, o := range objs {
		switch v := o.(type) {
		case geometry.Point:
			candidates = append(candidates, v)
		case geometry.Segment:
			candidates = append(candidates, v.P1, v.P2)
		}
	}
	d1 := p.Distance(center)
	var (
		best     geometry.Point
		found    bool
		okExists bool
		maxD     = -1.0
	)
	for _, c := range candidates {
		d2 := c.Distance(p)
		d3 := c.Distance(center)
		ok := d2 <= d1 || d2 < d3
		if !ok && okExists {
			continue
		}
		if ok && !okExists {
			okExists = true
			maxD = -1
		}
		if d3 > maxD {
			maxD = d3
			best = c
			found = true
		}
	}
	return best, found && !math.IsNaN(best.X)
}
