/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/textlayout"
)

// HAlign is the horizontal alignment of the lines of a TextLayout.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign places the text block inside a TextLayout with a set Height.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// DefaultFontFamily is used by NewTextLayout.
const DefaultFontFamily = "DejaVu Sans"

// TextLayout is a block of text centered on Position. A zero Width or Height
// means the extent is taken from the laid out text. With a set Width the text
// wraps at Width.
type TextLayout struct {
	ID         string
	Text       string
	Position   geometry.Point
	FontSize   float64
	FontFamily string
	FontColor  drawing.Color
	Width      float64
	Height     float64
	HAlign     HAlign
	VAlign     VAlign
}

// NewTextLayout returns a black, left and top aligned text.
func NewTextLayout(text string, position geometry.Point, fontSize float64) TextLayout {
	return TextLayout{
		ID:         NewID(),
		Text:       text,
		Position:   position,
		FontSize:   fontSize,
		FontFamily: DefaultFontFamily,
		FontColor:  drawing.Black,
	}
}

func (t TextLayout) ElementID() string { return t.ID }
func (TextLayout) Children() []Element { return nil }
func (t TextLayout) Childless() Element { return t }

func (t TextLayout) Translated(dx, dy float64) Element { return t.Moved(dx, dy) }

// Moved is Translated keeping the concrete type.
func (t TextLayout) Moved(dx, dy float64) TextLayout {
	t.Position = t.Position.Add(geometry.Pt(dx, dy))
	return t
}

func (t TextLayout) withoutIDs(Index) Element {
	t.ID = ""
	return t
}

func (t TextLayout) box() textlayout.TextBox {
	spec := textlayout.FontSpec{Family: t.FontFamily, Size: t.FontSize}
	return textlayout.NewWordWrap(textlayout.Default()).Layout(t.Text, spec, t.Width)
}

type placedLine struct {
	text  string
	x, y  float64 // left end of the baseline
	width float64
	top   float64
}

// place positions every line of the laid out text.
func (t TextLayout) place() (lines []placedLine, box textlayout.TextBox) {
	box = t.box()
	frameW := box.Width
	tx := t.Position.X - box.Width/2
	if t.Width > 0 {
		frameW = t.Width
		tx = t.Position.X - t.Width/2
	}
	ty := t.Position.Y - box.Height/2
	if t.Height > 0 {
		switch t.VAlign {
		case AlignTop:
			ty = t.Position.Y - t.Height/2
		case AlignBottom:
			ty = t.Position.Y + t.Height/2 - box.Height
		}
	}
	for i, l := range box.Lines {
		x := tx
		switch t.HAlign {
		case AlignCenter:
			x += (frameW - l.Width) / 2
		case AlignRight:
			x += frameW - l.Width
		}
		top := ty + float64(i)*box.LineHeight
		lines = append(lines, placedLine{
			text: l.Text, x: x, y: top + box.Metrics.Ascent, width: l.Width, top: top,
		})
	}
	return lines, box
}

func (t TextLayout) DrawingElements() []drawing.Element {
	lines, _ := t.place()
	var out []drawing.Element
	for _, l := range lines {
		if l.text == "" {
			continue
		}
		out = append(out, drawing.Text{
			Attributes: drawing.Attributes{Stroke: drawing.NoPaint, Fill: drawing.Solid(t.FontColor)},
			Text:       l.text,
			FontFamily: t.FontFamily,
			FontSize:   t.FontSize,
			Position:   geometry.Pt(l.x, l.y),
		})
	}
	return out
}

// Bbox returns the box covered by the laid out lines. Empty text gives a
// zero sized box at Position.
func (t TextLayout) Bbox() geometry.Bbox {
	lines, box := t.place()
	first := true
	var minX, maxX float64
	for _, l := range lines {
		if l.width == 0 {
			continue
		}
		if first || l.x < minX {
			minX = l.x
		}
		if first || l.x+l.width > maxX {
			maxX = l.x + l.width
		}
		first = false
	}
	if first {
		return geometry.Bbox{Position: t.Position}
	}
	top := lines[0].top
	return geometry.BboxFromBounds(minX, top, maxX, top+box.Height)
}

// Anchor returns the named point of the text bounding box.
func (t TextLayout) Anchor(a geometry.Anchor) geometry.Point { return t.Bbox().Anchor(a) }
