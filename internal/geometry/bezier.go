/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// bezierSegments is the number of edges of a curve's polygon approximation.
const bezierSegments = 50

// BezierCurve runs from P1 to P2. One control point makes it quadratic, two
// make it cubic; higher degrees are evaluated the same way.
type BezierCurve struct {
	P1, P2        Point
	ControlPoints []Point
}

func (BezierCurve) isObject() {}

func (c BezierCurve) Start() Point { return c.P1 }
func (c BezierCurve) End() Point   { return c.P2 }

func (c BezierCurve) points() []Point {
	pts := make([]Point, 0, len(c.ControlPoints)+2)
	pts = append(pts, c.P1)
	pts = append(pts, c.ControlPoints...)
	return append(pts, c.P2)
}

// Evaluate returns the point at parameter t in [0, 1] (de Casteljau).
func (c BezierCurve) Evaluate(t float64) Point {
	pts := c.points()
	for n := len(pts) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			pts[i] = Lerp(pts[i], pts[i+1], t)
		}
	}
	return pts[0]
}

// Split cuts the curve at parameter t into two curves of the same degree.
func (c BezierCurve) Split(t float64) (BezierCurve, BezierCurve) {
	pts := c.points()
	n := len(pts)
	left := make([]Point, n)
	right := make([]Point, n)
	for level := 0; level < n; level++ {
		left[level] = pts[0]
		right[n-1-level] = pts[n-1-level]
		for i := 0; i < n-1-level; i++ {
			pts[i] = Lerp(pts[i], pts[i+1], t)
		}
	}
	mk := func(p []Point) BezierCurve {
		cps := append([]Point(nil), p[1:len(p)-1]...)
		return BezierCurve{P1: p[0], P2: p[len(p)-1], ControlPoints: cps}
	}
	return mk(left), mk(right)
}

// Polyline samples the curve at evenly spaced parameters.
func (c BezierCurve) Polyline() Polyline {
	out := make(Polyline, 0, bezierSegments+1)
	for i := 0; i <= bezierSegments; i++ {
		out = append(out, c.Evaluate(float64(i)/bezierSegments))
	}
	return out
}

// Length approximates the arc length with the polygon approximation.
func (c BezierCurve) Length() float64 { return c.Polyline().Length() }

func (c BezierCurve) PositionAtFraction(f float64) Point { return c.Polyline().PositionAtFraction(f) }

func (c BezierCurve) AngleAtFraction(f float64) float64 { return c.Polyline().AngleAtFraction(f) }

// parameterAtFraction maps an arc-length fraction to the curve parameter.
func (c BezierCurve) parameterAtFraction(f float64) float64 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	pl := c.Polyline()
	total := pl.Length()
	if total == 0 {
		return f
	}
	target := f * total
	var acc float64
	for i := 1; i < len(pl); i++ {
		l := pl[i-1].Distance(pl[i])
		if l > 0 && acc+l >= target {
			return (float64(i-1) + (target-acc)/l) / bezierSegments
		}
		acc += l
	}
	return 1
}

// Shortened trims the curve at its end by length, measured along the curve.
// The result keeps the degree of the original.
func (c BezierCurve) Shortened(length float64) BezierCurve {
	total := c.Length()
	if total == 0 || length <= 0 {
		return c
	}
	length = min(length, total)
	left, _ := c.Split(c.parameterAtFraction(1 - length/total))
	return left
}

func (c BezierCurve) Transformed(t Transformation) BezierCurve {
	cps := make([]Point, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		cps[i] = Apply(t, p)
	}
	return BezierCurve{P1: Apply(t, c.P1), P2: Apply(t, c.P2), ControlPoints: cps}
}

func (c BezierCurve) Reversed() BezierCurve {
	cps := make([]Point, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		cps[len(cps)-1-i] = p
	}
	return BezierCurve{P1: c.P2, P2: c.P1, ControlPoints: cps}
}

func (c BezierCurve) Bbox() Bbox {
	b, _ := c.Polyline().Bounds()
	return b
}
