/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Line is the infinite line through P1 and P2.
type Line struct{ P1, P2 Point }

func (Line) isObject() {}

func (l Line) direction() Point { return l.P2.Sub(l.P1) }

// IsVertical reports whether the line has no finite slope.
func (l Line) IsVertical() bool { return math.Abs(l.P2.X-l.P1.X) <= epsilon }

// Slope returns the slope of the line; ok is false for vertical lines.
func (l Line) Slope() (slope float64, ok bool) {
	if l.IsVertical() {
		return 0, false
	}
	return (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X), true
}

// Intercept returns the y value at x=0; ok is false for vertical lines.
func (l Line) Intercept() (intercept float64, ok bool) {
	slope, ok := l.Slope()
	if !ok {
		return 0, false
	}
	return l.P1.Y - slope*l.P1.X, true
}

// Angle is the angle of the direction P1->P2 in [0, 2π).
func (l Line) Angle() float64 { return AngleOfLine(l) }

// IsParallelTo reports whether l and o have the same direction, up to sign.
func (l Line) IsParallelTo(o Line) bool {
	d1, d2 := l.direction(), o.direction()
	return math.Abs(d1.Cross(d2)) <= epsilon*math.Max(1, d1.Norm()*d2.Norm())
}

// IsCoincidentTo reports whether l and o describe the same infinite line.
func (l Line) IsCoincidentTo(o Line) bool {
	return l.IsParallelTo(o) && l.DistanceTo(o.P1) <= epsilon*math.Max(1, l.direction().Norm())
}

// DistanceTo returns the perpendicular distance from p to the line.
func (l Line) DistanceTo(p Point) float64 {
	d := l.direction()
	n := d.Norm()
	if n == 0 {
		return p.Distance(l.P1)
	}
	return math.Abs(d.Cross(p.Sub(l.P1))) / n
}

// HasPoint reports whether p lies on the line within eps.
func (l Line) HasPoint(p Point, eps float64) bool { return l.DistanceTo(p) <= eps }

// Transformed maps both defining points through t.
func (l Line) Transformed(t Transformation) Line {
	return Line{P1: Apply(t, l.P1), P2: Apply(t, l.P2)}
}

// Reversed swaps the defining points.
func (l Line) Reversed() Line { return Line{P1: l.P2, P2: l.P1} }
