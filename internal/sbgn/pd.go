/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package sbgn

import (
	"momapgo/internal/arcs"
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
	"momapgo/internal/shapes"
)

// Default sizes of the glyph families.
const (
	EntityWidth       = 60.0
	EntityHeight      = 30.0
	ContainerSize     = 80.0
	ProcessSize       = 20.0
	ConnectorLength   = 10.0
	MultimerOffset    = 2.0
	MultimerSubunits  = 2
	LabelFontSize     = 12.0
	OperatorFontScale = 1.0 / 3
	ProcessFontScale  = 1 / 1.5
	OperatorFont      = "Cantarell"
)

func defaultStyle(strokeWidth float64) drawing.Attributes {
	return drawing.Attributes{
		Stroke:      drawing.Solid(drawing.Black),
		StrokeWidth: drawing.Float(strokeWidth),
		Fill:        drawing.Solid(drawing.White),
	}
}

// New returns a node drawn with g, labelled with label unless it is empty.
func New(g Glyph, pos geometry.Point, w, h float64, label string) layout.NodeLayout {
	n := layout.NodeLayout{
		ID:       layout.NewID(),
		Position: pos,
		Width:    w,
		Height:   h,
		Shape:    g,
		Style:    defaultStyle(1),
	}
	if label != "" {
		t := layout.NewTextLayout(label, n.LabelCenter(), LabelFontSize)
		n.Label = &t
	}
	return n
}

func entity(base layout.Shape, multimer bool) Glyph {
	g := Glyph{Base: base}
	if multimer {
		g.Subunits = MultimerSubunits
		g.Offset = MultimerOffset
	}
	return g
}

func Macromolecule(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.RoundedRectangle{Rx: 10, Ry: 10}, false), pos, EntityWidth, EntityHeight, label)
}

func MacromoleculeMultimer(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.RoundedRectangle{Rx: 10, Ry: 10}, true), pos, EntityWidth, EntityHeight, label)
}

func SimpleChemical(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.Stadium{}, false), pos, EntityWidth, EntityHeight, label)
}

func SimpleChemicalMultimer(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.Stadium{}, true), pos, EntityWidth, EntityHeight, label)
}

func Complex(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.CutCornerRectangle{Cut: 10}, false), pos, EntityWidth, EntityHeight, label)
}

func ComplexMultimer(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.CutCornerRectangle{Cut: 10}, true), pos, EntityWidth, EntityHeight, label)
}

func NucleicAcidFeature(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.BottomRoundedRectangle{Radius: 10}, false), pos, EntityWidth, EntityHeight, label)
}

func NucleicAcidFeatureMultimer(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.BottomRoundedRectangle{Radius: 10}, true), pos, EntityWidth, EntityHeight, label)
}

func UnspecifiedEntity(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.Ellipse{}, false), pos, EntityWidth, EntityHeight, label)
}

func EmptySet(pos geometry.Point) layout.NodeLayout {
	return New(entity(shapes.CircleWithDiagonalBar{}, false), pos, ProcessSize, ProcessSize, "")
}

func PerturbingAgent(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.InvertedHexagon{TopLeft: 50, TopRight: 50, BottomLeft: 50, BottomRight: 50}, false),
		pos, EntityWidth, EntityHeight, label)
}

func Phenotype(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.Hexagon{TopLeft: 50, TopRight: 50, BottomLeft: 50, BottomRight: 50}, false),
		pos, EntityWidth, EntityHeight, label)
}

// Compartment is drawn with a thick border.
func Compartment(pos geometry.Point, w, h float64, label string) layout.NodeLayout {
	n := New(entity(shapes.RoundedRectangle{Rx: 10, Ry: 10}, false), pos, w, h, label)
	n.Style = defaultStyle(4)
	return n
}

func Submap(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(shapes.Rectangle{}, false), pos, ContainerSize, ContainerSize, label)
}

func pointer(d layout.Direction) shapes.Pointer {
	return shapes.Pointer{Direction: d, TopAngle: 50, BottomAngle: 50}
}

func Tag(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(pointer(layout.Right), false), pos, EntityWidth, EntityHeight, label)
}

func Terminal(pos geometry.Point, label string) layout.NodeLayout {
	return New(entity(pointer(layout.Right), false), pos, EntityWidth, EntityHeight, label)
}

// StateVariable is the auxiliary unit usually placed on the border of an
// entity pool.
func StateVariable(pos geometry.Point, value string) layout.NodeLayout {
	return New(entity(shapes.Stadium{}, false), pos, EntityWidth, EntityHeight, value)
}

func UnitOfInformation(pos geometry.Point, value string) layout.NodeLayout {
	return New(entity(shapes.Rectangle{}, false), pos, EntityWidth, EntityHeight, value)
}

func connectors(d layout.Direction) *Connectors {
	return &Connectors{
		Direction:        d,
		LeftLength:       ConnectorLength,
		RightLength:      ConnectorLength,
		LeftStrokeWidth:  1,
		RightStrokeWidth: 1,
	}
}

func process(base layout.Shape, d layout.Direction, text string) Glyph {
	g := Glyph{Base: base, Connectors: connectors(d)}
	if text != "" {
		g.Text = &Text{Text: text, FontColor: drawing.Black, SizeFactor: ProcessFontScale}
	}
	return g
}

func operator(d layout.Direction, text string) Glyph {
	return Glyph{
		Base:       shapes.Ellipse{},
		Connectors: connectors(d),
		Text:       &Text{Text: text, FontFamily: OperatorFont, FontColor: drawing.Black, SizeFactor: OperatorFontScale},
	}
}

func small(g Glyph, pos geometry.Point) layout.NodeLayout {
	return New(g, pos, ProcessSize, ProcessSize, "")
}

func GenericProcess(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(process(shapes.Rectangle{}, d, ""), pos)
}

func OmittedProcess(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(process(shapes.Rectangle{}, d, `\\`), pos)
}

func UncertainProcess(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(process(shapes.Rectangle{}, d, "?"), pos)
}

func Association(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(process(shapes.Ellipse{}, d, ""), pos)
}

func Dissociation(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(process(shapes.CircleWithInsideCircle{Sep: 3.5}, d, ""), pos)
}

func And(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(operator(d, "AND"), pos)
}

func Or(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(operator(d, "OR"), pos)
}

func Not(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(operator(d, "NOT"), pos)
}

func Equivalence(pos geometry.Point, d layout.Direction) layout.NodeLayout {
	return small(operator(d, "≡"), pos)
}

// Arcs.

func arc(head layout.Arrowhead, fill drawing.Paint, shorten float64, points []geometry.Point) layout.ArcLayout {
	a := arcs.New(head, points...)
	a.Style = drawing.Attributes{
		Stroke:      drawing.Solid(drawing.Black),
		StrokeWidth: drawing.Float(1),
		Fill:        drawing.NoPaint,
	}
	a.ArrowheadStyle = drawing.Attributes{
		Stroke:      drawing.Solid(drawing.Black),
		StrokeWidth: drawing.Float(1),
		Fill:        fill,
	}
	a.Shorten = shorten
	return a
}

var white = drawing.Solid(drawing.White)

func Consumption(points ...geometry.Point) layout.ArcLayout {
	return arc(nil, drawing.NoPaint, 0, points)
}

func Production(points ...geometry.Point) layout.ArcLayout {
	return arc(arcs.Arrow{Width: 12, Height: 12}, drawing.Solid(drawing.Black), 0, points)
}

func Stimulation(points ...geometry.Point) layout.ArcLayout {
	return arc(arcs.Arrow{Width: 12, Height: 12}, white, 0, points)
}

func Catalysis(points ...geometry.Point) layout.ArcLayout {
	return arc(arcs.Circle{Width: 11, Height: 11}, white, 0, points)
}

func Inhibition(points ...geometry.Point) layout.ArcLayout {
	return arc(arcs.Bar{Width: 1.5, Height: 12}, white, 2, points)
}

func NecessaryStimulation(points ...geometry.Point) layout.ArcLayout {
	head := arcs.BarArrow{Width: 12, Height: 12, BarWidth: 1, BarHeight: 12, Sep: 2}
	return arc(head, white, 2, points)
}

func Modulation(points ...geometry.Point) layout.ArcLayout {
	return arc(arcs.Diamond{Width: 12, Height: 12}, white, 0, points)
}

func LogicArc(points ...geometry.Point) layout.ArcLayout {
	return arc(nil, drawing.NoPaint, 0, points)
}

func EquivalenceArc(points ...geometry.Point) layout.ArcLayout {
	return arc(nil, drawing.NoPaint, 0, points)
}
