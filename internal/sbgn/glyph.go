/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package sbgn builds SBGN Process Description glyphs as layout elements.
// A glyph is composed from a base shape, an optional multiplicity, optional
// connectors and an optional fixed text.
package sbgn

import (
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
)

// Connectors are the two stubs of a process or operator glyph. Left and
// right become top and bottom in the Vertical direction.
type Connectors struct {
	Direction        layout.Direction
	LeftLength       float64
	RightLength      float64
	LeftStrokeWidth  float64
	RightStrokeWidth float64
}

func (c Connectors) vertical() bool { return c.Direction == layout.Vertical }

func (c Connectors) bases(f geometry.Bbox) (left, right geometry.Point) {
	if c.vertical() {
		return f.North(), f.South()
	}
	return f.West(), f.East()
}

func (c Connectors) elements(f geometry.Bbox) []drawing.Element {
	left, right := c.bases(f)
	leftEnd := left.Sub(geometry.Pt(c.LeftLength, 0))
	rightEnd := right.Add(geometry.Pt(c.RightLength, 0))
	if c.vertical() {
		leftEnd = left.Sub(geometry.Pt(0, c.LeftLength))
		rightEnd = right.Add(geometry.Pt(0, c.RightLength))
	}
	stub := func(from, to geometry.Point, width float64) drawing.Element {
		return drawing.Path{
			Attributes: drawing.Attributes{StrokeWidth: drawing.Float(width)},
			Actions:    []drawing.PathAction{drawing.MoveTo{Point: from}, drawing.LineTo{Point: to}},
		}
	}
	return []drawing.Element{
		stub(left, leftEnd, c.LeftStrokeWidth),
		stub(right, rightEnd, c.RightStrokeWidth),
	}
}

// anchor returns the connector end for the anchors along the connectors.
func (c Connectors) anchor(f geometry.Bbox, a geometry.Anchor) (geometry.Point, bool) {
	switch {
	case !c.vertical() && a == geometry.West:
		return f.West().Sub(geometry.Pt(c.LeftLength, 0)), true
	case !c.vertical() && a == geometry.East:
		return f.East().Add(geometry.Pt(c.RightLength, 0)), true
	case c.vertical() && a == geometry.North:
		return f.North().Sub(geometry.Pt(0, c.LeftLength)), true
	case c.vertical() && a == geometry.South:
		return f.South().Add(geometry.Pt(0, c.RightLength)), true
	case a == geometry.West, a == geometry.East, a == geometry.North, a == geometry.South:
		return f.Anchor(a), true
	}
	return geometry.Point{}, false
}

// Text is a fixed text drawn at the label center, sized relative to the
// glyph width.
type Text struct {
	Text       string
	FontFamily string
	FontColor  drawing.Color
	// SizeFactor times the glyph width is the font size.
	SizeFactor float64
}

// Glyph is a layout.Shape. With Subunits > 1 the base shape is drawn that
// many times, shrunk and shifted by Offset, the last one on top at the
// north west.
type Glyph struct {
	Base          layout.Shape
	Subunits      int
	Offset        float64
	SubunitStyles []drawing.Attributes
	Connectors    *Connectors
	Text          *Text
}

func (g Glyph) multi() bool { return g.Subunits > 1 }

// SubunitFrame is the frame of subunit i.
func (g Glyph) SubunitFrame(f geometry.Bbox, i int) geometry.Bbox {
	if !g.multi() {
		return f
	}
	shrink := g.Offset * float64(g.Subunits-1)
	w, h := f.Width-shrink, f.Height-shrink
	return geometry.Bbox{
		Position: f.Position.Add(geometry.Pt(
			f.Width/2-w/2-float64(i)*g.Offset,
			f.Height/2-h/2-float64(i)*g.Offset,
		)),
		Width:  w,
		Height: h,
	}
}

func (g Glyph) Outline(f geometry.Bbox) []drawing.Element {
	var elems []drawing.Element
	if g.Connectors != nil {
		elems = append(elems, g.Connectors.elements(f)...)
	}
	if g.Base != nil {
		if g.multi() {
			for i := range g.Subunits {
				sub := g.Base.Outline(g.SubunitFrame(f, i))
				if i < len(g.SubunitStyles) {
					sub = []drawing.Element{drawing.Group{Attributes: g.SubunitStyles[i], Elements: sub}}
				}
				elems = append(elems, sub...)
			}
		} else {
			elems = append(elems, g.Base.Outline(f)...)
		}
	}
	if g.Text != nil {
		t := layout.NewTextLayout(g.Text.Text, g.LabelCenter(f), f.Width*g.Text.SizeFactor)
		t.FontColor = g.Text.FontColor
		if g.Text.FontFamily != "" {
			t.FontFamily = g.Text.FontFamily
		}
		elems = append(elems, t.DrawingElements()...)
	}
	return []drawing.Element{drawing.Group{Elements: elems}}
}

// Anchor places the compass anchors of glyphs with connectors on the
// connector ends or on the frame.
func (g Glyph) Anchor(f geometry.Bbox, a geometry.Anchor) (geometry.Point, bool) {
	if g.Connectors == nil {
		return geometry.Point{}, false
	}
	return g.Connectors.anchor(f, a)
}

// LabelCenter is the label center of the top subunit.
func (g Glyph) LabelCenter(f geometry.Bbox) geometry.Point {
	top := g.SubunitFrame(f, max(g.Subunits-1, 0))
	if lc, ok := g.Base.(layout.LabelCenterer); ok {
		return lc.LabelCenter(top)
	}
	return top.Position
}

var (
	_ layout.Shape         = Glyph{}
	_ layout.Anchorer      = Glyph{}
	_ layout.LabelCenterer = Glyph{}
)
