/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"momapgo/internal/geometry"
)

func almostEq(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestGroupTransformedShiftsLeavesAndKeepsPaint(t *testing.T) {
	path := Path{
		Attributes: Attributes{Stroke: Solid(Red), StrokeWidth: Float(2)},
		Actions: []PathAction{
			MoveTo{Point: geometry.Pt(0, 0)},
			LineTo{Point: geometry.Pt(10, 0)},
			CurveTo{Point: geometry.Pt(20, 10), Control1: geometry.Pt(12, 0), Control2: geometry.Pt(20, 5)},
			ClosePath{},
		},
	}
	ell := Ellipse{Attributes: Attributes{Fill: Solid(Blue)}, Point: geometry.Pt(50, 50), Rx: 5, Ry: 3}
	g := Group{Attributes: Attributes{ID: "g"}, Elements: []Element{path, ell}}

	moved, ok := g.Transformed(geometry.Translation{Tx: 10, Ty: 10}).(Group)
	if !ok {
		t.Fatalf("expected Group, got %T", moved)
	}
	if moved.ID != "g" || len(moved.Elements) != 2 {
		t.Fatalf("unexpected group: %+v", moved)
	}
	mp, ok := moved.Elements[0].(Path)
	if !ok {
		t.Fatalf("expected Path, got %T", moved.Elements[0])
	}
	if c, _ := mp.Stroke.Color(); c != Red || *mp.StrokeWidth != 2 {
		t.Fatalf("paint changed: %+v", mp.Attributes)
	}
	if mp.Actions[0].(MoveTo).Point != geometry.Pt(10, 10) || mp.Actions[1].(LineTo).Point != geometry.Pt(20, 10) {
		t.Fatalf("path not shifted: %+v", mp.Actions)
	}
	cv := mp.Actions[2].(CurveTo)
	if cv.Point != geometry.Pt(30, 20) || cv.Control1 != geometry.Pt(22, 10) || cv.Control2 != geometry.Pt(30, 15) {
		t.Fatalf("curve not shifted: %+v", cv)
	}
	// ellipses lower to paths when transformed
	ep, ok := moved.Elements[1].(Path)
	if !ok {
		t.Fatalf("expected transformed ellipse to be a Path, got %T", moved.Elements[1])
	}
	if c, _ := ep.Fill.Color(); c != Blue {
		t.Fatalf("fill changed: %+v", ep.Attributes)
	}
	if ep.Actions[0].(MoveTo).Point != geometry.Pt(55, 60) {
		t.Fatalf("ellipse start not shifted: %+v", ep.Actions[0])
	}
	arc := ep.Actions[1].(EllipticalArc)
	if arc.Point != geometry.Pt(65, 60) || !almostEq(arc.Rx, 5, 1e-12) || !almostEq(arc.Ry, 3, 1e-12) {
		t.Fatalf("arc not shifted: %+v", arc)
	}
	b0, _ := Bbox(g)
	b1, _ := Bbox(moved)
	if !b1.Position.AlmostEqual(b0.Position.Add(geometry.Pt(10, 10)), 1e-9) {
		t.Fatalf("bbox not shifted: %+v vs %+v", b0, b1)
	}
}

func TestPathPolylinesWithoutMoveTo(t *testing.T) {
	p := Path{Actions: []PathAction{LineTo{Point: geometry.Pt(10, 0)}, LineTo{Point: geometry.Pt(10, 10)}, ClosePath{}}}
	pls := p.Polylines()
	if len(pls) != 1 {
		t.Fatalf("expected one polyline, got %+v", pls)
	}
	pl := pls[0]
	if pl[0] != geometry.Pt(0, 0) || pl[len(pl)-1] != geometry.Pt(0, 0) || len(pl) != 4 {
		t.Fatalf("unexpected polyline: %+v", pl)
	}
	onlyClose := Path{Actions: []PathAction{ClosePath{}}}
	_ = onlyClose.Polylines()
}

func TestPathPolylinesSplitOnMoveTo(t *testing.T) {
	p := Path{Actions: []PathAction{
		MoveTo{Point: geometry.Pt(0, 0)}, LineTo{Point: geometry.Pt(5, 0)},
		MoveTo{Point: geometry.Pt(0, 5)}, LineTo{Point: geometry.Pt(5, 5)},
	}}
	if pls := p.Polylines(); len(pls) != 2 {
		t.Fatalf("expected two runs, got %+v", pls)
	}
}

func TestOwnTransformAppliesToPolylines(t *testing.T) {
	r := Rectangle{
		Attributes: Attributes{Transform: []geometry.Transformation{geometry.Translation{Tx: 100}}},
		Point:      geometry.Pt(0, 0), Width: 10, Height: 10,
	}
	b, ok := Bbox(r)
	if !ok || b.MinX() != 100 || b.MaxX() != 110 {
		t.Fatalf("unexpected bbox: %+v", b)
	}
}

func TestRectangleToPath(t *testing.T) {
	plain := Rectangle{Point: geometry.Pt(0, 0), Width: 20, Height: 10}.ToPath()
	if len(plain.Actions) != 6 {
		t.Fatalf("expected 6 actions, got %d", len(plain.Actions))
	}
	rounded := Rectangle{Point: geometry.Pt(0, 0), Width: 20, Height: 10, Rx: 2, Ry: 2}.ToPath()
	if len(rounded.Actions) != 10 {
		t.Fatalf("expected 10 actions, got %d", len(rounded.Actions))
	}
	b, _ := Bbox(Rectangle{Point: geometry.Pt(0, 0), Width: 20, Height: 10, Rx: 2, Ry: 2})
	if !almostEq(b.Width, 20, 1e-9) || !almostEq(b.Height, 10, 1e-9) {
		t.Fatalf("unexpected rounded bbox: %+v", b)
	}
}

func TestQuadraticToCurveTo(t *testing.T) {
	q := QuadraticCurveTo{Point: geometry.Pt(30, 0), Control: geometry.Pt(15, 30)}
	c := q.ToCurveTo(geometry.Pt(0, 0))
	if !c.Control1.AlmostEqual(geometry.Pt(10, 20), 1e-12) || !c.Control2.AlmostEqual(geometry.Pt(20, 20), 1e-12) {
		t.Fatalf("unexpected cubic: %+v", c)
	}
}

func TestStateInheritance(t *testing.T) {
	s := DefaultState().With(Attributes{Stroke: Solid(Red), StrokeWidth: Float(3)})
	s = s.With(Attributes{Fill: NoPaint, StrokeDasharray: Dashes(4, 2)})
	if c, _ := s.Stroke.Color(); c != Red || s.StrokeWidth != 3 || !s.Fill.IsNone() || len(s.StrokeDasharray) != 2 {
		t.Fatalf("unexpected state: %+v", s)
	}
}

func TestFilterCompatAndRegion(t *testing.T) {
	f := NewFilter(DropShadow{Dx: 2, Dy: 3, StdDeviation: 1.5, FloodOpacity: 0.5, FloodColor: Black})
	c := f.Compat()
	if len(c.Effects) != 5 {
		t.Fatalf("expected 5 primitives, got %d", len(c.Effects))
	}
	flood := c.Effects[0].(Flood)
	in := c.Effects[1].(Composite)
	blur := c.Effects[2].(GaussianBlur)
	off := c.Effects[3].(Offset)
	over := c.Effects[4].(Composite)
	if in.In != flood.Result || in.Operator != CompositeIn || blur.In != in.Result || off.In != blur.Result {
		t.Fatalf("broken chain: %+v", c.Effects)
	}
	if over.In != SourceGraphic || over.In2 != off.Result || over.Operator != CompositeOver || off.Dx != 2 || off.Dy != 3 {
		t.Fatalf("unexpected final composite: %+v %+v", over, off)
	}
	if flood.Result != f.ID+"-0-flood" || blur.Result != f.ID+"-0-blur" {
		t.Fatalf("unexpected result names %q %q", flood.Result, blur.Result)
	}
	again := NewFilter(DropShadow{Dx: 2, Dy: 3, StdDeviation: 1.5, FloodOpacity: 0.5, FloodColor: Black})
	if !reflect.DeepEqual(f, again) || !reflect.DeepEqual(c, again.Compat()) {
		t.Fatalf("equal filters differ: %+v %+v", f, again)
	}
	if other := NewFilter(DropShadow{Dx: 4, Dy: 3, StdDeviation: 1.5, FloodOpacity: 0.5, FloodColor: Black}); other.ID == f.ID {
		t.Fatalf("different filters share id %s", f.ID)
	}
	r := f.Region(geometry.BboxFromBounds(0, 0, 100, 50))
	if !almostEq(r.MinX(), -10, 1e-9) || !almostEq(r.MinY(), -5, 1e-9) || !almostEq(r.Width, 120, 1e-9) || !almostEq(r.Height, 60, 1e-9) {
		t.Fatalf("unexpected region: %+v", r)
	}
	u := Filter{Units: UserSpaceOnUse, X: Abs(5), Y: Abs(6), Width: Abs(7), Height: Abs(8)}
	if r := u.Region(geometry.BboxFromBounds(0, 0, 100, 50)); r.MinX() != 5 || r.Width != 7 {
		t.Fatalf("unexpected user space region: %+v", r)
	}
}

func TestColors(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil || c != (Color{255, 128, 0, 255}) {
		t.Fatalf("unexpected color: %+v %v", c, err)
	}
	if c.Hex() != "#ff8000" {
		t.Fatalf("unexpected hex: %s", c.Hex())
	}
	if n, _ := ParseColor("Red"); n != Red {
		t.Fatalf("unexpected named color: %+v", n)
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Fatalf("expected error")
	}
	if w := Black.Blend(White, 1); w != White {
		t.Fatalf("unexpected blend: %+v", w)
	}
}

func TestUnsupportedElementError(t *testing.T) {
	if err := Unsupported(nil); !errors.Is(err, ErrUnsupportedElement) {
		t.Fatalf("expected ErrUnsupportedElement, got %v", err)
	}
}
