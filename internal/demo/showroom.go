/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package demo builds the layouts shown by the CLI: a showroom of every
// shape and arrowhead, and a small SBGN process description map.
package demo

import (
	"fmt"

	"momapgo/internal/arcs"
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
	"momapgo/internal/shapes"
)

// Sample is a named shape of the showroom.
type Sample struct {
	Name  string
	Shape layout.Shape
}

// Shapes lists every node shape with showroom parameters.
func Shapes() []Sample {
	hex := 60.0
	return []Sample{
		{"rectangle", shapes.Rectangle{}},
		{"rounded rectangle", shapes.RoundedRectangle{Rx: 10, Ry: 10}},
		{"ellipse", shapes.Ellipse{}},
		{"cut corner rectangle", shapes.CutCornerRectangle{Cut: 10}},
		{"stadium", shapes.Stadium{}},
		{"bottom rounded rectangle", shapes.BottomRoundedRectangle{Radius: 10}},
		{"circle with diagonal bar", shapes.CircleWithDiagonalBar{}},
		{"hexagon", shapes.Hexagon{TopLeft: hex, TopRight: hex, BottomLeft: hex, BottomRight: hex}},
		{"inverted hexagon", shapes.InvertedHexagon{TopLeft: hex, TopRight: hex, BottomLeft: hex, BottomRight: hex}},
		{"parallelogram", shapes.Parallelogram{Angle: 60}},
		{"inverted parallelogram", shapes.InvertedParallelogram{Angle: 60}},
		{"circle with inside circle", shapes.CircleWithInsideCircle{Sep: 4}},
		{"pointer", shapes.Pointer{Direction: layout.Right, TopAngle: 50, BottomAngle: 50}},
		{"double rounded rectangle", shapes.DoubleRoundedRectangle{Radius: 8, RightWidth: 20}},
		{"truncated rectangle", shapes.TruncatedRectangle{Radius: 10, VerticalTruncation: 0.4, HorizontalTruncation: 0.8}},
		{"fox head", shapes.FoxHead{VerticalTruncation: 0.3}},
		{"double stadium", shapes.DoubleStadium{HorizontalProportion: 0.8, Sep: 4}},
	}
}

// Arrowheads lists every arrowhead, nil being the plain line.
func Arrowheads() []struct {
	Name string
	Head layout.Arrowhead
} {
	return []struct {
		Name string
		Head layout.Arrowhead
	}{
		{"none", nil},
		{"arrow", arcs.Arrow{Width: 12, Height: 12}},
		{"circle", arcs.Circle{Width: 11, Height: 11}},
		{"bar", arcs.Bar{Width: 1.5, Height: 12}},
		{"bar arrow", arcs.BarArrow{Width: 12, Height: 12, BarWidth: 1, BarHeight: 12, Sep: 2}},
		{"diamond", arcs.Diamond{Width: 12, Height: 12}},
	}
}

const (
	cellWidth   = 180.0
	cellHeight  = 140.0
	columns     = 5
	shapeWidth  = 90.0
	shapeHeight = 50.0
	markerSize  = 6.0
	angleStep   = 15.0
)

var (
	shapeStyle = drawing.Attributes{
		Stroke:      drawing.Solid(drawing.Black),
		StrokeWidth: drawing.Float(1),
		Fill:        drawing.Solid(drawing.White),
	}
	anchorMarker = drawing.Attributes{Stroke: drawing.Solid(drawing.Red), StrokeWidth: drawing.Float(1)}
	angleMarker  = drawing.Attributes{Stroke: drawing.Solid(drawing.Blue), StrokeWidth: drawing.Float(0.5)}
)

func marker(p geometry.Point, style drawing.Attributes) layout.NodeLayout {
	return layout.NodeLayout{
		ID:       layout.NewID(),
		Position: p,
		Width:    markerSize,
		Height:   markerSize,
		Shape:    shapes.CrossPoint{},
		Style:    style,
	}
}

// Markers returns cross markers on the nine anchors of n and on its border
// every 15 degrees.
func Markers(n layout.NodeLayout) []layout.Element {
	var out []layout.Element
	for a := geometry.Center; a <= geometry.West; a++ {
		out = append(out, marker(n.Anchor(a), anchorMarker))
	}
	for angle := 0.0; angle < 360; angle += angleStep {
		if p, ok := n.SelfAngle(angle); ok {
			out = append(out, marker(p, angleMarker))
		}
	}
	return out
}

func caption(text string, p geometry.Point) layout.TextLayout {
	t := layout.NewTextLayout(text, p, 10)
	t.Width = cellWidth - 10
	t.HAlign = layout.AlignCenter
	return t
}

func cell(i int) geometry.Point {
	return geometry.Pt(
		cellWidth/2+float64(i%columns)*cellWidth,
		cellHeight/2+float64(i/columns)*cellHeight,
	)
}

// Showroom lays out every shape with its markers and caption, followed by
// one arc per arrowhead.
func Showroom() layout.GroupLayout {
	var elems []layout.Element
	samples := Shapes()
	for i, s := range samples {
		c := cell(i)
		n := layout.NodeLayout{
			ID:       fmt.Sprintf("shape-%d", i),
			Position: c,
			Width:    shapeWidth,
			Height:   shapeHeight,
			Shape:    s.Shape,
			Style:    shapeStyle,
		}
		elems = append(elems, n)
		elems = append(elems, Markers(n)...)
		elems = append(elems, caption(s.Name, layout.BelowOf(layout.At(c), shapeHeight/2+20)))
	}
	row := (len(samples)+columns-1)/columns + 1
	for i, h := range Arrowheads() {
		c := cell(row*columns + i)
		start := c.Sub(geometry.Pt(60, 0))
		end := c.Add(geometry.Pt(60, 0))
		a := arcs.New(h.Head, start, end)
		a.ID = fmt.Sprintf("arrowhead-%d", i)
		a.Style = drawing.Attributes{Stroke: drawing.Solid(drawing.Black), StrokeWidth: drawing.Float(1), Fill: drawing.NoPaint}
		a.ArrowheadStyle = shapeStyle
		elems = append(elems, a, caption(h.Name, layout.BelowOf(layout.At(c), 30)))
	}
	return layout.GroupLayout{ID: "showroom", Elements: elems}
}
