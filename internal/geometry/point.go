/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geometry holds the immutable 2D primitives used by layouts and
// drawings: points, lines, segments, curves, boxes and affine transformations,
// plus the intersection and angle algorithms that operate on them.
//
// The coordinate system follows SVG: x grows to the right, y grows downwards.
package geometry

import "math"

// epsilon is the absolute tolerance used for degenerate-case detection.
const epsilon = 1e-9

// Point is a 2D point or vector.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point   { return Point{p.X * k, p.Y * k} }
func (p Point) Div(k float64) Point   { return Point{p.X / k, p.Y / k} }
func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Norm() float64         { return math.Hypot(p.X, p.Y) }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// AlmostEqual reports whether p and q are within eps on both axes.
func (p Point) AlmostEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Transformed maps p through t.
func (p Point) Transformed(t Transformation) Point { return Apply(t, p) }

// Bbox is the zero-sized box located at p.
func (p Point) Bbox() Bbox { return Bbox{Position: p} }

// Polyline is the one-point approximation of p.
func (p Point) Polyline() Polyline { return Polyline{p} }

// Lerp returns a*(1-f) + b*f. f=0 and f=1 yield a and b exactly.
func Lerp(a, b Point, f float64) Point {
	return Point{a.X*(1-f) + b.X*f, a.Y*(1-f) + b.Y*f}
}

func (Point) isObject() {}
