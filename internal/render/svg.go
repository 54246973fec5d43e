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
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

// SVG keeps the group structure of the drawing: paint attributes are
// written per element and left to SVG inheritance.
type SVG struct {
	Background *drawing.Color
}

func (s SVG) Render(w io.Writer, elems []drawing.Element, page Page) error {
	canvas := svg.New(w)
	canvas.Start(int(math.Ceil(page.Width)), int(math.Ceil(page.Height)),
		fmt.Sprintf(`viewBox="%s %s %s %s"`, num(page.MinX), num(page.MinY), num(page.Width), num(page.Height)))

	filters := collectFilters(elems, nil)
	if len(filters) > 0 {
		canvas.Def()
		for _, f := range filters {
			writeFilter(canvas, f)
		}
		canvas.DefEnd()
	}
	if s.Background != nil {
		bg := drawing.Rectangle{
			Attributes: drawing.Attributes{Fill: drawing.Solid(*s.Background), Stroke: drawing.NoPaint},
			Point:      geometry.Pt(page.MinX, page.MinY),
			Width:      page.Width,
			Height:     page.Height,
		}
		canvas.Path(pathData(bg.ToPath()), style(bg.Attributes))
	}
	for _, e := range elems {
		if err := writeElement(canvas, e); err != nil {
			return err
		}
	}
	canvas.End()
	return nil
}

func writeElement(canvas *svg.SVG, e drawing.Element) error {
	a := e.Attrs()
	attrs := elementAttrs(a)
	switch v := e.(type) {
	case drawing.Group:
		canvas.Group(attrs...)
		for _, c := range v.Elements {
			if err := writeElement(canvas, c); err != nil {
				return err
			}
		}
		canvas.Gend()
	case drawing.Path:
		canvas.Path(pathData(v), attrs...)
	case drawing.Ellipse:
		canvas.Path(pathData(v.ToPath()), attrs...)
	case drawing.Rectangle:
		canvas.Path(pathData(v.ToPath()), attrs...)
	case drawing.Text:
		// svgo places text on integer coordinates; a translate keeps the
		// fractional position.
		canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(v.Position.X), num(v.Position.Y)))
		attrs = append(attrs, fmt.Sprintf(`font-family="%s"`, v.FontFamily), fmt.Sprintf(`font-size="%s"`, num(v.FontSize)))
		canvas.Text(0, 0, v.Text, attrs...)
		canvas.Gend()
	default:
		return drawing.Unsupported(e)
	}
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func pt(p geometry.Point) string { return num(p.X) + " " + num(p.Y) }

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// pathData returns the d attribute of p.
func pathData(p drawing.Path) string {
	var b strings.Builder
	for i, a := range p.Actions {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := a.(type) {
		case drawing.MoveTo:
			b.WriteString("M " + pt(v.Point))
		case drawing.LineTo:
			b.WriteString("L " + pt(v.Point))
		case drawing.CurveTo:
			b.WriteString("C " + pt(v.Control1) + " " + pt(v.Control2) + " " + pt(v.Point))
		case drawing.QuadraticCurveTo:
			b.WriteString("Q " + pt(v.Control) + " " + pt(v.Point))
		case drawing.EllipticalArc:
			fmt.Fprintf(&b, "A %s %s %s %s %s %s", num(v.Rx), num(v.Ry), num(v.XAxisRotation), flag(v.ArcFlag), flag(v.SweepFlag), pt(v.Point))
		case drawing.ClosePath:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func elementAttrs(a drawing.Attributes) []string {
	var out []string
	if a.ID != "" {
		out = append(out, fmt.Sprintf(`id="%s"`, a.ID))
	}
	if len(a.Transform) > 0 {
		parts := make([]string, len(a.Transform))
		for i, t := range a.Transform {
			parts[i] = transformString(t)
		}
		out = append(out, fmt.Sprintf(`transform="%s"`, strings.Join(parts, " ")))
	}
	if a.Filter != nil {
		out = append(out, fmt.Sprintf(`filter="url(#%s)"`, a.Filter.ID))
	}
	if s := style(a); s != "" {
		out = append(out, fmt.Sprintf(`style="%s"`, s))
	}
	return out
}

func transformString(t geometry.Transformation) string {
	switch v := t.(type) {
	case geometry.Translation:
		return fmt.Sprintf("translate(%s,%s)", num(v.Tx), num(v.Ty))
	case geometry.Rotation:
		return fmt.Sprintf("rotate(%s,%s,%s)", num(v.Angle*180/math.Pi), num(v.Pivot.X), num(v.Pivot.Y))
	case geometry.Scaling:
		return fmt.Sprintf("scale(%s,%s)", num(v.Sx), num(v.Sy))
	}
	a, b, c, d, e, f := geometry.Coefficients(t)
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", num(a), num(b), num(c), num(d), num(e), num(f))
}

// style writes the paint attributes that are set; unset ones inherit.
func style(a drawing.Attributes) string {
	var parts []string
	paint := func(name string, p drawing.Paint) {
		if p.IsInherited() {
			return
		}
		parts = append(parts, name+":"+p.String())
		if c, ok := p.Color(); ok && c.A != 255 {
			parts = append(parts, fmt.Sprintf("%s-opacity:%s", name, num(c.Opacity())))
		}
	}
	paint("stroke", a.Stroke)
	paint("fill", a.Fill)
	if a.StrokeWidth != nil {
		parts = append(parts, "stroke-width:"+num(*a.StrokeWidth))
	}
	if a.StrokeDasharray.Set {
		parts = append(parts, "stroke-dasharray:"+a.StrokeDasharray.String())
	}
	if a.StrokeDashoffset != nil {
		parts = append(parts, "stroke-dashoffset:"+num(*a.StrokeDashoffset))
	}
	return strings.Join(parts, ";")
}

// collectFilters returns the distinct filters of the tree, first use first.
func collectFilters(elems []drawing.Element, seen map[string]bool) []drawing.Filter {
	if seen == nil {
		seen = map[string]bool{}
	}
	var out []drawing.Filter
	for _, e := range elems {
		if f := e.Attrs().Filter; f != nil && !seen[f.ID] {
			seen[f.ID] = true
			out = append(out, *f)
		}
		if g, ok := e.(drawing.Group); ok {
			out = append(out, collectFilters(g.Elements, seen)...)
		}
	}
	return out
}

func length(l drawing.Length) string {
	if l.Percent {
		return num(l.Value) + "%"
	}
	return num(l.Value)
}

func writeFilter(canvas *svg.SVG, f drawing.Filter) {
	units := "objectBoundingBox"
	if f.Units == drawing.UserSpaceOnUse {
		units = "userSpaceOnUse"
	}
	canvas.Filter(f.ID,
		fmt.Sprintf(`filterUnits="%s"`, units),
		fmt.Sprintf(`x="%s"`, length(f.X)), fmt.Sprintf(`y="%s"`, length(f.Y)),
		fmt.Sprintf(`width="%s"`, length(f.Width)), fmt.Sprintf(`height="%s"`, length(f.Height)))
	for _, e := range f.Compat().Effects {
		switch v := e.(type) {
		case drawing.Flood:
			canvas.FeFlood(svg.Filterspec{Result: v.Result}, v.Color.Hex(), v.Opacity)
		case drawing.Composite:
			canvas.FeComposite(svg.Filterspec{In: v.In, In2: v.In2, Result: v.Result}, v.Operator.String(), 0, 0, 0, 0)
		case drawing.GaussianBlur:
			canvas.FeGaussianBlur(svg.Filterspec{In: v.In, Result: v.Result}, v.StdDeviation, v.StdDeviation,
				fmt.Sprintf(`edgeMode="%s"`, v.EdgeMode))
		case drawing.Offset:
			// svgo offsets are integral
			canvas.FeOffset(svg.Filterspec{In: v.In, Result: v.Result}, int(math.Round(v.Dx)), int(math.Round(v.Dy)))
		}
	}
	canvas.Fend()
}
