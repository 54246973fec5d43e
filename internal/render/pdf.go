/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	applog "momapgo/internal/log"
)

// PDF draws the flattened elements on a single page sized to the drawing,
// one user unit per point. Filters are not supported and are skipped.
type PDF struct {
	Background *drawing.Color
}

func (p PDF) Render(w io.Writer, elems []drawing.Element, page Page) error {
	items, err := flatten(elems, drawing.DefaultState(), pageTransform(page, 1))
	if err != nil {
		return err
	}
	size := gofpdf.SizeType{Wd: max(page.Width, 1), Ht: max(page.Height, 1)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetAuthor("momapgo", false)
	pdf.SetCreator("momapgo", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("", size)

	if p.Background != nil {
		setFillColor(pdf, *p.Background)
		pdf.Rect(0, 0, size.Wd, size.Ht, "F")
	}
	filtered := 0
	for _, it := range items {
		if it.filter {
			filtered++
		}
		if it.text != nil {
			pdfText(pdf, it)
			continue
		}
		pdfPath(pdf, it)
	}
	if filtered > 0 {
		applog.WithComponent("render").Debug("pdf ignores filters", "elements", filtered)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// drawStyle returns the gofpdf path operator for the paint of it, or "" for
// nothing to draw.
func drawStyle(pdf *gofpdf.Fpdf, it item) string {
	op := ""
	if c, ok := it.state.Fill.Color(); ok && c.A > 0 {
		setFillColor(pdf, c)
		op = "F"
	}
	if sw := strokeWidth(it); sw > 0 {
		c, _ := it.state.Stroke.Color()
		setDrawColor(pdf, c)
		pdf.SetLineWidth(sw)
		dashes := make([]float64, len(it.state.StrokeDasharray))
		for i, d := range it.state.StrokeDasharray {
			dashes[i] = d * it.scale
		}
		pdf.SetDashPattern(dashes, it.state.StrokeDashoffset*it.scale)
		op += "D"
	}
	return op
}

func pdfPath(pdf *gofpdf.Fpdf, it item) {
	op := drawStyle(pdf, it)
	if op == "" {
		return
	}
	var started bool
	it.path.Walk(func(current geometry.Point, a drawing.PathAction) {
		if !started {
			if _, ok := a.(drawing.MoveTo); !ok {
				pdf.MoveTo(current.X, current.Y)
			}
			started = true
		}
		switch v := a.(type) {
		case drawing.MoveTo:
			pdf.MoveTo(v.Point.X, v.Point.Y)
		case drawing.LineTo:
			pdf.LineTo(v.Point.X, v.Point.Y)
		case drawing.CurveTo:
			pdf.CurveBezierCubicTo(v.Control1.X, v.Control1.Y, v.Control2.X, v.Control2.Y, v.Point.X, v.Point.Y)
		case drawing.QuadraticCurveTo:
			pdf.CurveTo(v.Control.X, v.Control.Y, v.Point.X, v.Point.Y)
		case drawing.EllipticalArc:
			for _, q := range v.Geometry(current).Polyline()[1:] {
				pdf.LineTo(q.X, q.Y)
			}
		case drawing.ClosePath:
			pdf.ClosePath()
		}
	})
	pdf.DrawPath(op)
}

func pdfText(pdf *gofpdf.Fpdf, it item) {
	c, ok := it.state.Fill.Color()
	if !ok || it.text.FontSize <= 0 {
		return
	}
	// built-in Helvetica keeps text vector without embedding
	pdf.SetFont("Helvetica", "", it.text.FontSize)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pdf.Text(it.text.Position.X, it.text.Position.Y, it.text.Text)
}

func setDrawColor(pdf *gofpdf.Fpdf, c drawing.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c drawing.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}
