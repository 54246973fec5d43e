/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"errors"
	"math"
	"testing"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

type rectShape struct{}

func (rectShape) Outline(f geometry.Bbox) []drawing.Element {
	return []drawing.Element{drawing.Path{Actions: []drawing.PathAction{
		drawing.MoveTo{Point: f.NorthWest()},
		drawing.LineTo{Point: f.NorthEast()},
		drawing.LineTo{Point: f.SouthEast()},
		drawing.LineTo{Point: f.SouthWest()},
		drawing.ClosePath{},
	}}}
}

type triangleHead struct{ length float64 }

func (h triangleHead) Length() float64 { return h.length }

func (h triangleHead) Element(base geometry.Point, style drawing.Attributes) drawing.Element {
	return drawing.Path{Attributes: style, Actions: []drawing.PathAction{
		drawing.MoveTo{Point: base.Add(geometry.Pt(0, -h.length/2))},
		drawing.LineTo{Point: base.Add(geometry.Pt(h.length, 0))},
		drawing.LineTo{Point: base.Add(geometry.Pt(0, h.length/2))},
		drawing.ClosePath{},
	}}
}

func almostEq(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func near(a, b geometry.Point) bool { return almostEq(a.X, b.X) && almostEq(a.Y, b.Y) }

func node(x, y, w, h float64) NodeLayout {
	return NodeLayout{ID: NewID(), Position: geometry.Pt(x, y), Width: w, Height: h, Shape: rectShape{}}
}

func TestRectangleAnchors(t *testing.T) {
	n := node(0, 0, 100, 50)
	cases := []struct {
		a    geometry.Anchor
		want geometry.Point
	}{
		{geometry.East, geometry.Pt(50, 0)},
		{geometry.North, geometry.Pt(0, -25)},
		{geometry.West, geometry.Pt(-50, 0)},
		{geometry.South, geometry.Pt(0, 25)},
		{geometry.NorthEast, geometry.Pt(50, -25)},
		{geometry.SouthWest, geometry.Pt(-50, 25)},
		{geometry.Center, geometry.Pt(0, 0)},
	}
	for _, c := range cases {
		if got := n.Anchor(c.a); !near(got, c.want) {
			t.Fatalf("%s: got %v want %v", c.a, got, c.want)
		}
	}
	if !near(n.LabelCenter(), n.Position) {
		t.Fatalf("label center %v", n.LabelCenter())
	}
}

func TestBorderTowardsPoint(t *testing.T) {
	n := node(100, 100, 80, 40)
	p, ok := n.Border(geometry.Pt(200, 100))
	if !ok || !near(p, geometry.Pt(140, 100)) {
		t.Fatalf("border: %v %v", p, ok)
	}
	p, ok = n.SelfAngle(180)
	if !ok || !near(p, geometry.Pt(60, 100)) {
		t.Fatalf("angle 180: %v %v", p, ok)
	}
	if _, ok := n.Border(n.Position); ok {
		t.Fatalf("border towards the center must fail")
	}
}

func TestAnchorWithoutShapeFallsBackToFrame(t *testing.T) {
	n := NodeLayout{Position: geometry.Pt(10, 10), Width: 20, Height: 10}
	if got := n.Anchor(geometry.East); !near(got, geometry.Pt(20, 10)) {
		t.Fatalf("east %v", got)
	}
}

func straightArc(head Arrowhead) ArcLayout {
	return ArcLayout{
		ID:        NewID(),
		Segments:  []geometry.PathSegment{geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(100, 0)}},
		Arrowhead: head,
	}
}

func TestArrowheadBaseAndTip(t *testing.T) {
	a := straightArc(triangleHead{length: 10})
	tip, err := a.ArrowheadTip()
	if err != nil || !near(tip, geometry.Pt(100, 0)) {
		t.Fatalf("tip %v %v", tip, err)
	}
	base, err := a.ArrowheadBase()
	if err != nil || !near(base, geometry.Pt(90, 0)) {
		t.Fatalf("base %v %v", base, err)
	}
	a.Shorten = 5
	tip, _ = a.ArrowheadTip()
	base, _ = a.ArrowheadBase()
	if !near(tip, geometry.Pt(95, 0)) || !near(base, geometry.Pt(85, 0)) {
		t.Fatalf("shortened: tip %v base %v", tip, base)
	}
}

func TestArcDrawingStopsAtArrowheadBase(t *testing.T) {
	a := straightArc(triangleHead{length: 10})
	elems := a.SelfDrawingElements()
	if len(elems) != 2 {
		t.Fatalf("want path and arrowhead, got %d", len(elems))
	}
	path := elems[0].(drawing.Path)
	last := path.Actions[len(path.Actions)-1].(drawing.LineTo)
	if !near(last.Point, geometry.Pt(90, 0)) {
		t.Fatalf("path end %v", last.Point)
	}
	b, err := a.ArrowheadBbox()
	if err != nil || !almostEq(b.MaxX(), 100) || !almostEq(b.MinX(), 90) {
		t.Fatalf("arrowhead bbox %+v %v", b, err)
	}
}

func TestTransformedNodeSelfBorderMatchesBorder(t *testing.T) {
	n := node(0, 0, 100, 50)
	n.Style.Transform = []geometry.Transformation{geometry.Rotation{Angle: math.Pi / 2, Pivot: geometry.Pt(0, 0)}}
	self, ok := n.SelfBorder(geometry.Pt(200, 0))
	if !ok || !near(self, geometry.Pt(25, 0)) {
		t.Fatalf("self border %v %v", self, ok)
	}
	full, ok := n.Border(geometry.Pt(200, 0))
	if !ok || !near(full, self) {
		t.Fatalf("border %v, self border %v", full, self)
	}
	b, ok := n.SelfBbox()
	if !ok || !almostEq(b.Width, 50) || !almostEq(b.Height, 100) {
		t.Fatalf("self bbox %+v", b)
	}
}

func TestArrowheadRotatesWithArc(t *testing.T) {
	a := ArcLayout{
		Segments:  []geometry.PathSegment{geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(0, 100)}},
		Arrowhead: triangleHead{length: 10},
	}
	b, err := a.ArrowheadBbox()
	if err != nil || !almostEq(b.MaxY(), 100) || !almostEq(b.MinY(), 90) || !almostEq(b.Width, 10) {
		t.Fatalf("rotated bbox %+v %v", b, err)
	}
}

func TestArcWithoutSegments(t *testing.T) {
	a := ArcLayout{ID: "empty"}
	if _, err := a.StartPoint(); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("start point: %v", err)
	}
	if _, _, err := a.Fraction(0.5); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("fraction: %v", err)
	}
	g := GroupLayout{Elements: []Element{node(0, 0, 10, 10), a}}
	if err := Validate(g); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("validate: %v", err)
	}
	if err := Validate(node(0, 0, 10, 10)); err != nil {
		t.Fatalf("validate node: %v", err)
	}
}

func TestArcFractionClamped(t *testing.T) {
	a := ArcLayout{Segments: []geometry.PathSegment{geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(100, 0)}}}
	p, _, err := a.Fraction(1.5)
	if err != nil || !near(p, geometry.Pt(100, 0)) {
		t.Fatalf("fraction 1.5: %v %v", p, err)
	}
	p, _, _ = a.Fraction(-0.5)
	if !near(p, geometry.Pt(0, 0)) {
		t.Fatalf("fraction -0.5: %v", p)
	}
}

// taggedSegment is a segment type the drawing IR does not know.
type taggedSegment struct{ geometry.Segment }

func TestArcUnknownSegmentType(t *testing.T) {
	a := ArcLayout{ID: "tagged", Segments: []geometry.PathSegment{
		taggedSegment{geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(10, 0)}},
	}}
	if _, err := a.Body(); !errors.Is(err, geometry.ErrUnsupportedObject) {
		t.Fatalf("body: %v", err)
	}
	if err := Validate(GroupLayout{Elements: []Element{a}}); !errors.Is(err, geometry.ErrUnsupportedObject) {
		t.Fatalf("validate: %v", err)
	}
	if elems := a.SelfDrawingElements(); len(elems) != 0 {
		t.Fatalf("unexpected drawing %+v", elems)
	}
	a.Arrowhead = triangleHead{length: 2}
	if _, err := a.Body(); !errors.Is(err, geometry.ErrUnsupportedObject) {
		t.Fatalf("shortened body: %v", err)
	}
}

func TestArcFractionUsesLocalFraction(t *testing.T) {
	a := ArcLayout{Segments: []geometry.PathSegment{
		geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(10, 0)},
		geometry.Segment{P1: geometry.Pt(10, 0), P2: geometry.Pt(10, 10)},
	}}
	p, angle, err := a.Fraction(0.75)
	if err != nil || !near(p, geometry.Pt(10, 5)) || !almostEq(angle, math.Pi/2) {
		t.Fatalf("fraction: %v %v %v", p, angle, err)
	}
	p, _, _ = a.Fraction(0.25)
	if !near(p, geometry.Pt(5, 0)) {
		t.Fatalf("first segment: %v", p)
	}
	if got := a.Points(); len(got) != 3 || !near(got[2], geometry.Pt(10, 10)) {
		t.Fatalf("points %v", got)
	}
}

func TestChildlessIsIdempotent(t *testing.T) {
	label := NewTextLayout("ATP", geometry.Pt(0, 0), 12)
	n := node(0, 0, 60, 30)
	n.Label = &label
	n.Elements = []Element{node(0, 20, 10, 10)}
	once := n.Childless()
	if len(once.Children()) != 0 {
		t.Fatalf("childless has children")
	}
	if !Equals(once.Childless(), once, false, false) {
		t.Fatalf("childless of childless differs")
	}
	if len(n.Children()) != 2 {
		t.Fatalf("original lost its children")
	}
}

func TestEqualsIgnoresIDs(t *testing.T) {
	a, b := node(0, 0, 10, 10), node(0, 0, 10, 10)
	if a.ID == b.ID || !Equals(a, b, false, false) {
		t.Fatalf("nodes differing by id only must be equal")
	}
	c := node(0, 0, 10, 20)
	if Equals(a, c, false, false) {
		t.Fatalf("different sizes compare equal")
	}
	if Equals(a, GroupLayout{}, false, false) {
		t.Fatalf("different types compare equal")
	}
	g1 := GroupLayout{Elements: []Element{a, c}}
	g2 := GroupLayout{Elements: []Element{c, b}}
	if Equals(g1, g2, true, false) {
		t.Fatalf("ordered flattened comparison ignored order")
	}
	if !Equals(g1, g2, true, true) {
		t.Fatalf("unordered flattened comparison failed")
	}
}

func TestEqualsComparesPhantomTargets(t *testing.T) {
	build := func(targetFirst bool) GroupLayout {
		first, second := node(0, 0, 10, 10), node(50, 0, 10, 10)
		arc := straightArc(nil)
		if targetFirst {
			arc.Target = Phantom(first)
		} else {
			arc.Target = Phantom(second)
		}
		return GroupLayout{Elements: []Element{first, second, arc}}
	}
	if !Equals(build(true), build(true), false, false) {
		t.Fatalf("trees differing by ids only must be equal")
	}
	if Equals(build(true), build(false), false, false) {
		t.Fatalf("arcs pointing at different nodes compare equal")
	}
	if Equals(build(true), build(false), true, true) {
		t.Fatalf("flattened arcs pointing at different nodes compare equal")
	}
	a, b := PhantomLayout{Ref: "x"}, PhantomLayout{Ref: "y"}
	if Equals(a, b, false, false) || !Equals(a, PhantomLayout{ID: "other", Ref: "x"}, false, false) {
		t.Fatalf("dangling phantoms must compare by reference")
	}
}

func TestContainsAndDescendants(t *testing.T) {
	inner := node(5, 5, 2, 2)
	outer := node(0, 0, 20, 20)
	outer.Elements = []Element{inner}
	g := GroupLayout{ID: NewID(), Elements: []Element{outer}}
	if got := len(Descendants(g)); got != 2 {
		t.Fatalf("descendants: %d", got)
	}
	if !Contains(g, inner) {
		t.Fatalf("inner not found")
	}
	if Contains(g, node(5, 5, 2, 2)) {
		t.Fatalf("a copy with another id is not contained")
	}
	if got := len(Flattened(g)); got != 3 {
		t.Fatalf("flattened: %d", got)
	}
}

func TestTranslatedMovesChildren(t *testing.T) {
	label := NewTextLayout("x", geometry.Pt(0, 0), 12)
	n := node(0, 0, 10, 10)
	n.Label = &label
	m := n.Translated(5, -5).(NodeLayout)
	if !near(m.Position, geometry.Pt(5, -5)) || !near(m.Label.Position, geometry.Pt(5, -5)) {
		t.Fatalf("translated: %v %v", m.Position, m.Label.Position)
	}
	if !near(label.Position, geometry.Pt(0, 0)) {
		t.Fatalf("original label moved")
	}
	a := straightArc(nil).Translated(1, 2).(ArcLayout)
	if start, _ := a.StartPoint(); !near(start, geometry.Pt(1, 2)) {
		t.Fatalf("arc start %v", start)
	}
}

func TestGroupDrawingCarriesStyle(t *testing.T) {
	g := GroupLayout{ID: "g", Elements: []Element{node(0, 0, 10, 10)}, Style: drawing.Attributes{Fill: drawing.NoPaint}}
	elems := g.DrawingElements()
	if len(elems) != 1 {
		t.Fatalf("want one group, got %d", len(elems))
	}
	grp := elems[0].(drawing.Group)
	if grp.ID != "g" || !grp.Fill.IsNone() {
		t.Fatalf("group attributes %+v", grp.Attributes)
	}
	b, ok := Bbox(g)
	if !ok || !almostEq(b.Width, 10) {
		t.Fatalf("bbox %+v", b)
	}
}

func TestTextLayoutLowersOneTextPerLine(t *testing.T) {
	tl := NewTextLayout("ab\ncd", geometry.Pt(0, 0), 13)
	elems := tl.DrawingElements()
	if len(elems) != 2 {
		t.Fatalf("want 2 lines, got %d", len(elems))
	}
	first := elems[0].(drawing.Text)
	second := elems[1].(drawing.Text)
	if first.Text != "ab" || second.Text != "cd" {
		t.Fatalf("texts %q %q", first.Text, second.Text)
	}
	if !almostEq(first.Position.X, -7) || !(second.Position.Y > first.Position.Y) {
		t.Fatalf("positions %v %v", first.Position, second.Position)
	}
	if c, ok := first.Fill.Color(); !ok || c != drawing.Black {
		t.Fatalf("fill %v", first.Fill)
	}
	b := tl.Bbox()
	if !near(b.Center(), geometry.Pt(0, 0)) || !almostEq(b.Width, 14) {
		t.Fatalf("bbox %+v", b)
	}
}

func TestTextLayoutAlignment(t *testing.T) {
	tl := NewTextLayout("ab", geometry.Pt(0, 0), 13)
	tl.Width = 100
	left := tl.DrawingElements()[0].(drawing.Text)
	if !almostEq(left.Position.X, -50) {
		t.Fatalf("left %v", left.Position)
	}
	tl.HAlign = AlignRight
	right := tl.DrawingElements()[0].(drawing.Text)
	if !almostEq(right.Position.X, 50-14) {
		t.Fatalf("right %v", right.Position)
	}
	tl.HAlign = AlignCenter
	if got := tl.Bbox().Center(); !almostEq(got.X, 0) {
		t.Fatalf("center %v", got)
	}
	if len(NewTextLayout("", geometry.Pt(1, 1), 12).DrawingElements()) != 0 {
		t.Fatalf("empty text draws")
	}
}

func TestPhantomIndex(t *testing.T) {
	target := node(50, 50, 20, 20)
	ph := Phantom(target)
	arc := straightArc(nil)
	arc.Target = ph
	root := GroupLayout{ID: NewID(), Elements: []Element{target, arc}}
	idx := NewIndex(root)
	got, ok := idx.Resolve(ph)
	if !ok || got.ElementID() != target.ID {
		t.Fatalf("resolve: %v %v", got, ok)
	}
	b, ok := idx.Bbox(ph)
	if !ok || !near(b.Center(), target.Position) {
		t.Fatalf("bbox %+v", b)
	}
	if len(ph.DrawingElements()) != 0 || len(ph.Children()) != 0 {
		t.Fatalf("phantom draws")
	}
	if _, ok := idx.Resolve(PhantomLayout{Ref: "missing"}); ok {
		t.Fatalf("dangling phantom resolved")
	}
	loop := PhantomLayout{ID: "loop", Ref: "loop"}
	if _, ok := NewIndex(loop).Resolve(loop); ok {
		t.Fatalf("cyclic phantom resolved")
	}
}

func TestFit(t *testing.T) {
	if _, err := Fit(nil, 0, 0); !errors.Is(err, ErrEmptyFit) {
		t.Fatalf("empty fit: %v", err)
	}
	b, err := Fit([]geometry.Bbox{
		{Position: geometry.Pt(0, 0), Width: 10, Height: 10},
		{Position: geometry.Pt(20, 10), Width: 10, Height: 10},
	}, 1, 2)
	if err != nil || !almostEq(b.Width, 32) || !almostEq(b.Height, 24) || !near(b.Center(), geometry.Pt(10, 5)) {
		t.Fatalf("fit %+v %v", b, err)
	}
	if _, err := FitElements([]Element{PhantomLayout{}}, 0, 0); !errors.Is(err, ErrEmptyFit) {
		t.Fatalf("fit of phantoms: %v", err)
	}
	b, _ = FitPoints([]geometry.Point{{X: 0, Y: 0}, {X: 4, Y: 2}}, 0, 0)
	if !near(b.Center(), geometry.Pt(2, 1)) {
		t.Fatalf("fit points %+v", b)
	}
}

func TestPositioning(t *testing.T) {
	ref := node(0, 0, 100, 50)
	if got := RightOf(ref, 10); !near(got, geometry.Pt(60, 0)) {
		t.Fatalf("right of %v", got)
	}
	if got := BelowOf(At(geometry.Pt(1, 1)), 4); !near(got, geometry.Pt(1, 5)) {
		t.Fatalf("below of point %v", got)
	}
	if got := AboveLeftOf(ref.Frame(), 5, 10); !near(got, geometry.Pt(-60, -30)) {
		t.Fatalf("above left %v", got)
	}
	n := SetRightOf(node(0, 0, 20, 20), ref, 10, geometry.West)
	if !near(n.Position, geometry.Pt(70, 0)) {
		t.Fatalf("set right of %v", n.Position)
	}
	n = SetPosition(node(3, 3, 20, 10), geometry.Pt(0, 0), geometry.NorthWest)
	if !near(n.Position, geometry.Pt(10, 5)) {
		t.Fatalf("set position %v", n.Position)
	}
	n, err := SetFractionOf(node(0, 0, 4, 4), ArcLayout{Segments: []geometry.PathSegment{
		geometry.Segment{P1: geometry.Pt(0, 0), P2: geometry.Pt(0, 10)},
	}}, 0.5, geometry.Center)
	if err != nil || !near(n.Position, geometry.Pt(0, 5)) || len(n.Style.Transform) != 1 {
		t.Fatalf("set fraction of %v %v", n.Position, err)
	}
}

func TestIsSubmap(t *testing.T) {
	n1, n2 := node(0, 0, 10, 10), node(30, 0, 10, 10)
	e1 := Entity{ID: "e1", Kind: "macromolecule", Name: "A"}
	e2 := Entity{ID: "e2", Kind: "simple chemical", Name: "B"}
	frame := MapLayout{Width: 200, Height: 100}
	small := frame
	small.Elements = []Element{n1}
	big := frame
	big.Elements = []Element{n1, n2}
	m1 := Map{
		Model:   EntityModel{Entities: []Entity{e1}},
		Layout:  small,
		Mapping: LayoutModelMapping{n1.ID: {Element: e1}},
	}
	m2 := Map{
		Model:   EntityModel{Entities: []Entity{e1, e2}},
		Layout:  big,
		Mapping: LayoutModelMapping{n1.ID: {Element: e1}, n2.ID: {Element: e2}},
	}
	if !m1.IsSubmap(m2) {
		t.Fatalf("m1 should be a submap of m2")
	}
	if m2.IsSubmap(m1) {
		t.Fatalf("m2 is not a submap of m1")
	}
	if !big.IsSublayout(big, true, true) {
		t.Fatalf("layout is a sublayout of itself")
	}
	reordered := frame
	reordered.Elements = []Element{n2, n1}
	if !small.IsSublayout(reordered, false, false) {
		t.Fatalf("single element is a subsequence")
	}
	twisted := frame
	twisted.Elements = []Element{n2, n1}
	if big.IsSublayout(twisted, false, false) || !big.IsSublayout(twisted, false, true) {
		t.Fatalf("order sensitivity")
	}
	other := MapLayout{Width: 10, Height: 10, Elements: []Element{n1, n2}}
	if small.IsSublayout(other, false, true) {
		t.Fatalf("different canvases")
	}
}
