/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"fmt"
	"math"
	"sort"
)

// LineLineIntersection returns nothing for distinct parallel lines, the line
// l itself for coincident lines and the single crossing point otherwise.
func LineLineIntersection(l, o Line) []Object {
	if l.IsCoincidentTo(o) {
		return []Object{l}
	}
	if l.IsParallelTo(o) {
		return nil
	}
	if l.IsVertical() {
		x := l.P1.X
		slope, _ := o.Slope()
		intercept, _ := o.Intercept()
		return []Object{Point{x, slope*x + intercept}}
	}
	if o.IsVertical() {
		x := o.P1.X
		slope, _ := l.Slope()
		intercept, _ := l.Intercept()
		return []Object{Point{x, slope*x + intercept}}
	}
	d := (l.P1.X-l.P2.X)*(o.P1.Y-o.P2.Y) - (l.P1.Y-l.P2.Y)*(o.P1.X-o.P2.X)
	a := l.P1.X*l.P2.Y - l.P1.Y*l.P2.X
	b := o.P1.X*o.P2.Y - o.P1.Y*o.P2.X
	px := (a*(o.P1.X-o.P2.X) - (l.P1.X-l.P2.X)*b) / d
	py := (a*(o.P1.Y-o.P2.Y) - (l.P1.Y-l.P2.Y)*b) / d
	return []Object{Point{px, py}}
}

// ObjectLineIntersection intersects line with obj. Lines are handled exactly.
// Every other object is reduced to its polygon approximation: the line is
// clipped to the approximation's bounding box, and the resulting chord is
// intersected with each polyline. The result holds Point and Segment values
// (Segment when the chord runs along an edge). Unknown objects yield
// ErrUnsupportedObject.
func ObjectLineIntersection(obj Object, line Line) ([]Object, error) {
	if l, ok := obj.(Line); ok {
		return LineLineIntersection(l, line), nil
	}
	polys, err := Approximate(obj)
	if err != nil {
		return nil, err
	}
	bbox, ok := polys.Bounds()
	if !ok {
		return nil, nil
	}
	chord, ok := ClipLine(line, bbox)
	if !ok {
		return nil, nil
	}
	var out []Object
	for _, pl := range polys {
		if len(pl) == 1 {
			if chord.HasPoint(pl[0], epsilon) {
				out = appendUnique(out, pl[0])
			}
			continue
		}
		for _, edge := range pl.Segments() {
			for _, r := range SegmentSegmentIntersection(chord, edge) {
				out = appendUnique(out, r)
			}
		}
	}
	return out, nil
}

// ClipLine clips the infinite line to bbox. When the line runs along a box
// border the whole border is returned. A zero-size box clips to the
// zero-length segment at its position when the line passes through it. ok is
// false when the line misses the box.
func ClipLine(line Line, bbox Bbox) (Segment, bool) {
	const tol = 1e-7
	if bbox.Width == 0 && bbox.Height == 0 {
		return Segment{P1: bbox.Position, P2: bbox.Position}, line.HasPoint(bbox.Position, tol)
	}
	var pts []Point
	for _, edge := range bbox.Edges() {
		for _, r := range LineLineIntersection(edge.Line(), line) {
			switch v := r.(type) {
			case Line:
				if edge.Length() > 0 {
					return edge, true
				}
			case Point:
				if bbox.Contains(v, tol*math.Max(1, math.Max(bbox.Width, bbox.Height))) {
					pts = append(pts, v)
				}
			}
		}
	}
	if len(pts) == 0 {
		return Segment{}, false
	}
	dir := line.P2.Sub(line.P1)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Dot(dir) < pts[j].Dot(dir) })
	return Segment{P1: pts[0], P2: pts[len(pts)-1]}, true
}

// SegmentSegmentIntersection returns the crossing Point of a and b, the
// overlapping Segment when they are collinear, or nothing.
func SegmentSegmentIntersection(a, b Segment) []Object {
	da, db := a.P2.Sub(a.P1), b.P2.Sub(b.P1)
	scale := math.Max(1, da.Norm()*db.Norm())
	if a.Length() == 0 {
		if b.HasPoint(a.P1, epsilon) {
			return []Object{a.P1}
		}
		return nil
	}
	if b.Length() == 0 {
		if a.HasPoint(b.P1, epsilon) {
			return []Object{b.P1}
		}
		return nil
	}
	denom := da.Cross(db)
	ca := b.P1.Sub(a.P1)
	if math.Abs(denom) <= epsilon*scale {
		if math.Abs(ca.Cross(da)) > epsilon*math.Max(1, ca.Norm()*da.Norm()) {
			return nil
		}
		// collinear: project b onto a
		dd := da.Dot(da)
		t0 := ca.Dot(da) / dd
		t1 := b.P2.Sub(a.P1).Dot(da) / dd
		lo, hi := math.Max(0, math.Min(t0, t1)), math.Min(1, math.Max(t0, t1))
		switch {
		case hi < lo-epsilon:
			return nil
		case hi-lo <= epsilon:
			return []Object{a.PositionAtFraction(lo)}
		default:
			return []Object{Segment{P1: a.PositionAtFraction(lo), P2: a.PositionAtFraction(hi)}}
		}
	}
	t := ca.Cross(db) / denom
	u := ca.Cross(da) / denom
	const tol = 1e-9
	if t < -tol || t > 1+tol || u < -tol || u > 1+tol {
		return nil
	}
	switch {
	case u <= 0:
		return []Object{b.P1}
	case u >= 1:
		return []Object{b.P2}
	case t <= 0:
		return []Object{a.P1}
	case t >= 1:
		return []Object{a.P2}
	}
	return []Object{a.PositionAtFraction(t)}
}

// appendUnique adds o unless it is already covered by out. Points lying on a
// reported overlap segment are absorbed by it.
func appendUnique(out []Object, o Object) []Object {
	switch v := o.(type) {
	case Point:
		for _, e := range out {
			switch w := e.(type) {
			case Point:
				if w.AlmostEqual(v, epsilon) {
					return out
				}
			case Segment:
				if w.HasPoint(v, epsilon) {
					return out
				}
			}
		}
	case Segment:
		for _, e := range out {
			if w, ok := e.(Segment); ok && ((w.P1.AlmostEqual(v.P1, epsilon) && w.P2.AlmostEqual(v.P2, epsilon)) ||
				(w.P1.AlmostEqual(v.P2, epsilon) && w.P2.AlmostEqual(v.P1, epsilon))) {
				return out
			}
		}
		kept := make([]Object, 0, len(out)+1)
		for _, e := range out {
			if w, ok := e.(Point); ok && v.HasPoint(w, epsilon) {
				continue
			}
			kept = append(kept, e)
		}
		out = kept
	}
	return append(out, o)
}

// IntersectionPoints flattens an intersection result into points; segments
// contribute both endpoints and lines their defining points.
func IntersectionPoints(objs []Object) []Point {
	var out []Point
	for _, o := range objs {
		switch v := o.(type) {
		case Point:
			out = append(out, v)
		case Segment:
			out = append(out, v.P1, v.P2)
		case Line:
			out = append(out, v.P1, v.P2)
		default:
			panic(fmt.Sprintf("geometry: unexpected intersection result %T", o))
		}
	}
	return out
}
