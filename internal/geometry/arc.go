/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// arcSegments is the number of edges of an elliptical arc's approximation.
const arcSegments = 50

// EllipticalArc is an SVG-style arc from P1 to P2 on the ellipse with radii
// Rx, Ry whose x axis is rotated by XAxisRotation degrees. ArcFlag selects the
// large arc, SweepFlag the positive-angle direction.
type EllipticalArc struct {
	P1, P2        Point
	Rx, Ry        float64
	XAxisRotation float64
	ArcFlag       bool
	SweepFlag     bool
}

func (EllipticalArc) isObject() {}

func (a EllipticalArc) Start() Point { return a.P1 }
func (a EllipticalArc) End() Point   { return a.P2 }

// arcParams is the center parametrisation of an EllipticalArc.
type arcParams struct {
	center Point
	rx, ry float64
	sigma  float64 // x axis rotation, radians
	theta1 float64
	dtheta float64
}

// degenerate reports whether the arc is drawn as a straight line.
func (a EllipticalArc) degenerate() bool {
	return a.Rx == 0 || a.Ry == 0 || a.P1 == a.P2
}

// centerParams converts the endpoint parametrisation to the center one,
// following the SVG implementation notes (F.6.5 and F.6.6): radii too small for
// the chord are scaled up, and the sign of the center offset is chosen from the
// flags.
func (a EllipticalArc) centerParams() arcParams {
	sigma := Radians(a.XAxisRotation)
	cs, sn := math.Cos(sigma), math.Sin(sigma)
	rx, ry := math.Abs(a.Rx), math.Abs(a.Ry)
	hx, hy := (a.P1.X-a.P2.X)/2, (a.P1.Y-a.P2.Y)/2
	x1 := cs*hx + sn*hy
	y1 := -sn*hx + cs*hy

	if rx == 0 || ry == 0 {
		return arcParams{center: Lerp(a.P1, a.P2, 0.5), rx: rx, ry: ry, sigma: sigma}
	}
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	var k float64
	if den != 0 {
		k = math.Sqrt(num / den)
	}
	if a.ArcFlag == a.SweepFlag {
		k = -k
	}
	cx1 := k * rx * y1 / ry
	cy1 := -k * ry * x1 / rx
	center := Point{
		X: cs*cx1 - sn*cy1 + (a.P1.X+a.P2.X)/2,
		Y: sn*cx1 + cs*cy1 + (a.P1.Y+a.P2.Y)/2,
	}
	u := Point{(x1 - cx1) / rx, (y1 - cy1) / ry}
	v := Point{(-x1 - cx1) / rx, (-y1 - cy1) / ry}
	theta1 := vectorAngle(Point{1, 0}, u)
	dtheta := vectorAngle(u, v)
	if !a.SweepFlag && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if a.SweepFlag && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	return arcParams{center: center, rx: rx, ry: ry, sigma: sigma, theta1: theta1, dtheta: dtheta}
}

// vectorAngle is the signed angle from u to v.
func vectorAngle(u, v Point) float64 {
	n := u.Norm() * v.Norm()
	if n == 0 {
		return 0
	}
	c := math.Max(-1, math.Min(1, u.Dot(v)/n))
	ang := math.Acos(c)
	if u.Cross(v) < 0 {
		ang = -ang
	}
	return ang
}

// Center returns the center of the ellipse carrying the arc.
func (a EllipticalArc) Center() Point { return a.centerParams().center }

// ToArcAndTransformation returns a unit circle arc and the transformation
// mapping it onto this elliptical arc.
func (a EllipticalArc) ToArcAndTransformation() (Arc, Transformation) {
	p := a.centerParams()
	arc := Arc{Radius: 1, StartAngle: p.theta1, EndAngle: p.theta1 + p.dtheta}
	t := Compose(
		Translation{Tx: p.center.X, Ty: p.center.Y},
		Rotation{Angle: p.sigma},
		Scaling{Sx: p.rx, Sy: p.ry},
	)
	return arc, t
}

// Polyline samples the arc along its center parametrisation; the endpoints
// are P1 and P2 exactly. Degenerate arcs become straight segments.
func (a EllipticalArc) Polyline() Polyline {
	if a.degenerate() {
		return Polyline{a.P1, a.P2}
	}
	p := a.centerParams()
	cs, sn := math.Cos(p.sigma), math.Sin(p.sigma)
	out := make(Polyline, 0, arcSegments+1)
	out = append(out, a.P1)
	for i := 1; i < arcSegments; i++ {
		th := p.theta1 + p.dtheta*float64(i)/arcSegments
		x, y := p.rx*math.Cos(th), p.ry*math.Sin(th)
		out = append(out, Point{p.center.X + cs*x - sn*y, p.center.Y + sn*x + cs*y})
	}
	return append(out, a.P2)
}

func (a EllipticalArc) Length() float64 { return a.Polyline().Length() }

func (a EllipticalArc) PositionAtFraction(f float64) Point { return a.Polyline().PositionAtFraction(f) }

func (a EllipticalArc) AngleAtFraction(f float64) float64 { return a.Polyline().AngleAtFraction(f) }

// Shortened moves P2 back along the arc by length, keeping radii and flags.
func (a EllipticalArc) Shortened(length float64) EllipticalArc {
	total := a.Length()
	if total == 0 {
		return a
	}
	out := a
	out.P2 = a.PositionAtFraction(1 - length/total)
	return out
}

// Transformed maps the arc through t. The radii and axis rotation are
// recomputed from the images of the ellipse's axis vectors, and the sweep
// direction flips when t mirrors.
func (a EllipticalArc) Transformed(t Transformation) EllipticalArc {
	sigma := Radians(a.XAxisRotation)
	cs, sn := math.Cos(sigma), math.Sin(sigma)
	origin := Apply(t, Point{})
	east := Apply(t, Point{cs * a.Rx, sn * a.Rx}).Sub(origin)
	north := Apply(t, Point{-sn * a.Ry, cs * a.Ry}).Sub(origin)
	sweep := a.SweepFlag
	if Determinant(t) < 0 {
		sweep = !sweep
	}
	return EllipticalArc{
		P1:            Apply(t, a.P1),
		P2:            Apply(t, a.P2),
		Rx:            east.Norm(),
		Ry:            north.Norm(),
		XAxisRotation: Degrees(math.Atan2(east.Y, east.X)),
		ArcFlag:       a.ArcFlag,
		SweepFlag:     sweep,
	}
}

func (a EllipticalArc) Reversed() EllipticalArc {
	out := a
	out.P1, out.P2 = a.P2, a.P1
	out.SweepFlag = !a.SweepFlag
	return out
}

func (a EllipticalArc) Bbox() Bbox {
	b, _ := a.Polyline().Bounds()
	return b
}

// Arc is a circular arc from StartAngle to EndAngle (radians, positive
// towards +y).
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// PointAt returns the point of the circle at angle theta.
func (c Arc) PointAt(theta float64) Point {
	return Point{c.Center.X + c.Radius*math.Cos(theta), c.Center.Y + c.Radius*math.Sin(theta)}
}

func (c Arc) Start() Point { return c.PointAt(c.StartAngle) }
func (c Arc) End() Point   { return c.PointAt(c.EndAngle) }
