/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Segment is the finite straight piece from P1 to P2.
type Segment struct{ P1, P2 Point }

func (Segment) isObject() {}

func (s Segment) Start() Point { return s.P1 }
func (s Segment) End() Point   { return s.P2 }

func (s Segment) Length() float64 { return s.P1.Distance(s.P2) }

// Line returns the infinite line supporting s.
func (s Segment) Line() Line { return Line{P1: s.P1, P2: s.P2} }

// PositionAtFraction returns the point at fraction f of the segment length.
func (s Segment) PositionAtFraction(f float64) Point { return Lerp(s.P1, s.P2, f) }

// AngleAtFraction is constant along a segment.
func (s Segment) AngleAtFraction(float64) float64 { return AngleOfLine(s.Line()) }

// Shortened moves P2 towards P1 by length. A zero-length segment is returned
// as is.
func (s Segment) Shortened(length float64) Segment {
	total := s.Length()
	if total == 0 {
		return s
	}
	return Segment{P1: s.P1, P2: s.PositionAtFraction(1 - length/total)}
}

func (s Segment) Transformed(t Transformation) Segment {
	return Segment{P1: Apply(t, s.P1), P2: Apply(t, s.P2)}
}

func (s Segment) Reversed() Segment { return Segment{P1: s.P2, P2: s.P1} }

func (s Segment) Polyline() Polyline { return Polyline{s.P1, s.P2} }

func (s Segment) Bbox() Bbox {
	b, _ := s.Polyline().Bounds()
	return b
}

// HasPoint reports whether p lies on the segment within eps.
func (s Segment) HasPoint(p Point, eps float64) bool {
	if s.Length() == 0 {
		return p.Distance(s.P1) <= eps
	}
	if s.Line().DistanceTo(p) > eps {
		return false
	}
	d := s.P2.Sub(s.P1)
	t := p.Sub(s.P1).Dot(d) / d.Dot(d)
	tol := eps / d.Norm()
	return t >= -tol && t <= 1+tol
}
