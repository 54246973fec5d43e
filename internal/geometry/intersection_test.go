/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestLineLineIntersectionGeneral(t *testing.T) {
	cases := [][2]Line{
		{{Point{0, 0}, Point{10, 10}}, {Point{0, 10}, Point{10, 0}}},
		{{Point{-3, 1}, Point{7, 4}}, {Point{2, -8}, Point{-1, 9}}},
		{{Point{5, -1}, Point{5, 20}}, {Point{0, 0}, Point{10, 3}}},
		{{Point{0, 2}, Point{10, 2.5}}, {Point{-4, 0}, Point{-4, 1}}},
	}
	for _, c := range cases {
		res := LineLineIntersection(c[0], c[1])
		if len(res) != 1 {
			t.Fatalf("expected one point, got %+v", res)
		}
		p, ok := res[0].(Point)
		if !ok {
			t.Fatalf("expected Point, got %T", res[0])
		}
		if !c[0].HasPoint(p, 1e-9) || !c[1].HasPoint(p, 1e-9) {
			t.Fatalf("intersection %+v not on both lines %+v", p, c)
		}
	}
}

func TestLineLineIntersectionParallelAndCoincident(t *testing.T) {
	l1 := Line{Point{0, 0}, Point{10, 5}}
	l2 := Line{Point{0, 1}, Point{10, 6}}
	if res := LineLineIntersection(l1, l2); len(res) != 0 {
		t.Fatalf("expected no intersection, got %+v", res)
	}
	l3 := Line{Point{20, 10}, Point{-2, -1}}
	res := LineLineIntersection(l1, l3)
	if len(res) != 1 || res[0] != Object(l1) {
		t.Fatalf("expected the line itself, got %+v", res)
	}
	v1 := Line{Point{3, 0}, Point{3, 1}}
	v2 := Line{Point{4, 0}, Point{4, 1}}
	if res := LineLineIntersection(v1, v2); len(res) != 0 {
		t.Fatalf("expected no intersection for vertical parallels, got %+v", res)
	}
	if _, ok := v1.Slope(); ok {
		t.Fatalf("vertical line should have no slope")
	}
}

func TestObjectLineIntersectionSegment(t *testing.T) {
	s := Segment{Point{0, -5}, Point{0, 5}}
	res, err := ObjectLineIntersection(s, Line{Point{-10, 1}, Point{10, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || !res[0].(Point).AlmostEqual(Point{0, 1}, 1e-9) {
		t.Fatalf("unexpected intersection: %+v", res)
	}
}

func TestObjectLineIntersectionSquare(t *testing.T) {
	sq := Polylines{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	res, err := ObjectLineIntersection(sq, Line{Point{5, 5}, Point{6, 5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts := IntersectionPoints(res)
	if len(pts) != 2 {
		t.Fatalf("expected two points, got %+v", pts)
	}
	// collinear with the top border: the overlap is reported as a segment
	res, _ = ObjectLineIntersection(sq, Line{Point{-1, 0}, Point{1, 0}})
	if len(res) != 1 {
		t.Fatalf("expected one overlap, got %+v", res)
	}
	if seg, ok := res[0].(Segment); !ok || seg.Length() != 10 {
		t.Fatalf("unexpected overlap: %+v", res[0])
	}
	// miss
	res, _ = ObjectLineIntersection(sq, Line{Point{-1, 20}, Point{1, 20}})
	if len(res) != 0 {
		t.Fatalf("expected miss, got %+v", res)
	}
}

func TestObjectLineIntersectionPoint(t *testing.T) {
	diag := Line{Point{0, 0}, Point{10, 10}}
	res, err := ObjectLineIntersection(Point{5, 5}, diag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0] != Object(Point{5, 5}) {
		t.Fatalf("expected the point itself, got %+v", res)
	}
	if res, _ := ObjectLineIntersection(Point{5, 6}, diag); len(res) != 0 {
		t.Fatalf("expected miss, got %+v", res)
	}
	chord, ok := ClipLine(diag, Bbox{Position: Point{3, 3}})
	if !ok || chord.P1 != (Point{3, 3}) || chord.P2 != (Point{3, 3}) {
		t.Fatalf("unexpected chord %+v %v", chord, ok)
	}
}

func TestObjectLineIntersectionUnsupported(t *testing.T) {
	if _, err := ObjectLineIntersection(nil, Line{Point{0, 0}, Point{1, 1}}); !errors.Is(err, ErrUnsupportedObject) {
		t.Fatalf("expected ErrUnsupportedObject, got %v", err)
	}
}

func TestObjectLineIntersectionCircleArc(t *testing.T) {
	arc := EllipticalArc{P1: Point{-10, 0}, P2: Point{10, 0}, Rx: 10, Ry: 10, SweepFlag: true}
	res, err := ObjectLineIntersection(arc, Line{Point{0, 0}, Point{0, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts := IntersectionPoints(res)
	if len(pts) != 1 || !almostEq(math.Abs(pts[0].Y), 10, 0.1) || !almostEq(pts[0].X, 0, 1e-6) {
		t.Fatalf("unexpected arc intersection: %+v", pts)
	}
}

func TestAngles(t *testing.T) {
	if a := AngleOfLine(Line{Point{0, 0}, Point{0, -1}}); !almostEq(a, 3*math.Pi/2, 1e-12) {
		t.Fatalf("unexpected angle: %v", a)
	}
	if !IsAngleBetween(0.1, 2*math.Pi-0.5, 0.5) {
		t.Fatalf("expected wraparound sector to contain 0.1")
	}
	if IsAngleBetween(math.Pi, 2*math.Pi-0.5, 0.5) {
		t.Fatalf("pi should be outside the wraparound sector")
	}
	if !IsAngleBetween(-0.1, 2*math.Pi-0.5, 0.5) {
		t.Fatalf("negative angles should be normalized")
	}
	if !IsAngleInSector(math.Pi/4, Point{0, 0}, Point{1, 0}, Point{0, 1}) {
		t.Fatalf("expected angle in sector")
	}
	a := AngleBetweenSegments(Segment{Point{0, 0}, Point{1, 0}}, Segment{Point{0, 0}, Point{0, 1}})
	if !almostEq(a, math.Pi/2, 1e-12) {
		t.Fatalf("unexpected angle between segments: %v", a)
	}
	a = AngleBetweenSegments(Segment{Point{0, 0}, Point{1, 0}}, Segment{Point{0, 0}, Point{0, -1}})
	if !almostEq(a, -math.Pi/2, 1e-12) {
		t.Fatalf("unexpected signed angle: %v", a)
	}
	if c, s := Sincos(270); c != 0 || s != -1 {
		t.Fatalf("unexpected exact sincos: %v %v", c, s)
	}
}
