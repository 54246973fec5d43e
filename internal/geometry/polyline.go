/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Polyline is a piecewise-linear curve through its points.
type Polyline []Point

// Polylines is the polygon approximation of a compound shape. It is also the
// Object used for externally supplied polygonal outlines.
type Polylines []Polyline

func (Polylines) isObject() {}

// Length is the sum of the edge lengths.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Segments returns the edges of the polyline.
func (pl Polyline) Segments() []Segment {
	if len(pl) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out = append(out, Segment{P1: pl[i-1], P2: pl[i]})
	}
	return out
}

// locate finds the edge holding fraction f of the total length and the local
// fraction within that edge.
func (pl Polyline) locate(f float64) (edge Segment, local float64, ok bool) {
	segs := pl.Segments()
	if len(segs) == 0 {
		return Segment{}, 0, false
	}
	total := pl.Length()
	if total == 0 || f <= 0 {
		return segs[0], 0, true
	}
	if f >= 1 {
		return segs[len(segs)-1], 1, true
	}
	target := f * total
	var acc float64
	for _, s := range segs {
		l := s.Length()
		if l > 0 && acc+l >= target {
			return s, (target - acc) / l, true
		}
		acc += l
	}
	return segs[len(segs)-1], 1, true
}

// PositionAtFraction interpolates along the polyline by arc length. The
// accuracy for curves is bounded by the approximation's segment count.
func (pl Polyline) PositionAtFraction(f float64) Point {
	switch len(pl) {
	case 0:
		return Point{}
	case 1:
		return pl[0]
	}
	if f <= 0 {
		return pl[0]
	}
	if f >= 1 {
		return pl[len(pl)-1]
	}
	s, local, _ := pl.locate(f)
	return s.PositionAtFraction(local)
}

// AngleAtFraction returns the angle of the edge reached by walking the
// cumulative length up to fraction f.
func (pl Polyline) AngleAtFraction(f float64) float64 {
	segs := pl.Segments()
	if len(segs) == 0 {
		return 0
	}
	total := pl.Length()
	if total == 0 {
		return AngleOfLine(segs[0].Line())
	}
	var acc float64
	for _, s := range segs {
		l := s.Length()
		acc += l
		if l > 0 && acc/total >= f {
			return AngleOfLine(s.Line())
		}
	}
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].Length() > 0 {
			return AngleOfLine(segs[i].Line())
		}
	}
	return 0
}

// Bounds returns the bounding box; ok is false for an empty polyline.
func (pl Polyline) Bounds() (Bbox, bool) {
	if len(pl) == 0 {
		return Bbox{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pl {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return BboxFromBounds(minX, minY, maxX, maxY), true
}

// Transformed maps every point through t.
func (pl Polyline) Transformed(t Transformation) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = Apply(t, p)
	}
	return out
}

// Bounds returns the union of the member bounds; ok is false when every
// member is empty.
func (ps Polylines) Bounds() (Bbox, bool) {
	var (
		out   Bbox
		found bool
	)
	for _, pl := range ps {
		b, ok := pl.Bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out, found
}

// Transformed maps every member through t.
func (ps Polylines) Transformed(t Transformation) Polylines {
	out := make(Polylines, len(ps))
	for i, pl := range ps {
		out[i] = pl.Transformed(t)
	}
	return out
}
