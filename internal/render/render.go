/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render paints drawing elements to SVG, PDF and PNG files.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
	applog "momapgo/internal/log"
)

// Format names an output format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// ErrUnknownFormat is returned for a format no backend handles.
var ErrUnknownFormat = errors.New("unknown render format")

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatSVG, FormatPDF, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls a single render.
//   - Margin is added around the drawing, in user units.
//   - Scale is the number of PNG pixels per user unit; 0 means 1.
//   - Background fills the page when set.
type Options struct {
	Format     Format
	Margin     float64
	Scale      float64
	Background *drawing.Color
}

// Page is the user-space area rendered to the output.
type Page struct {
	MinX, MinY    float64
	Width, Height float64
}

// PageFor returns the bounding box of elems grown by margin. Nothing to draw
// gives a margin-sized page at the origin.
func PageFor(elems []drawing.Element, margin float64) Page {
	b, ok := drawing.BboxOf(elems)
	if !ok {
		b = geometry.Bbox{}
	}
	return Page{
		MinX:   b.MinX() - margin,
		MinY:   b.MinY() - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// Renderer writes elements to w.
type Renderer interface {
	Render(w io.Writer, elems []drawing.Element, page Page) error
}

// New returns the backend for opt.Format.
func New(opt Options) (Renderer, error) {
	switch opt.Format {
	case FormatSVG:
		return SVG{Background: opt.Background}, nil
	case FormatPDF:
		return PDF{Background: opt.Background}, nil
	case FormatPNG:
		return PNG{Scale: opt.Scale, Background: opt.Background}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opt.Format)
}

// Export renders the layout tree root to path. An empty opt.Format is taken
// from the file extension.
func Export(root layout.Element, path string, opt Options) error {
	start := time.Now()
	lg := applog.WithOperation(applog.WithComponent("render"), "export")
	if err := layout.Validate(root); err != nil {
		return fmt.Errorf("validate layout: %w", err)
	}
	if opt.Format == "" {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return err
		}
		opt.Format = f
	}
	r, err := New(opt)
	if err != nil {
		return err
	}
	elems := root.DrawingElements()
	page := PageFor(elems, opt.Margin)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", opt.Format, err)
	}
	if err := r.Render(f, elems, page); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", opt.Format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opt.Format, err)
	}
	ctx := applog.WithTarget(context.Background(), applog.Target{Path: path, Format: string(opt.Format)})
	lg.InfoContext(ctx, "exported",
		"elements", len(elems), "width", page.Width, "height", page.Height, "took", time.Since(start))
	return nil
}

// item is a flattened drawing element in page coordinates, with its paint
// state resolved. Exactly one of path and text is set.
type item struct {
	path   *drawing.Path
	text   *drawing.Text
	state  drawing.State
	scale  float64
	filter bool
}

// flatten resolves inherited paint and composes transforms down the tree,
// the way the PDF and PNG backends consume it.
func flatten(elems []drawing.Element, st drawing.State, ctm geometry.Transformation) ([]item, error) {
	var out []item
	for _, e := range elems {
		a := e.Attrs()
		s := st.With(a)
		m := ctm
		if own, ok := a.Transformation(); ok {
			m = geometry.Compose(ctm, own)
		}
		scale := math.Sqrt(math.Abs(geometry.Determinant(m)))
		switch v := e.(type) {
		case drawing.Group:
			sub, err := flatten(v.Elements, s, m)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		case drawing.Path:
			out = append(out, pathItem(v, s, m, scale, a.Filter != nil))
		case drawing.Ellipse:
			out = append(out, pathItem(v.ToPath(), s, m, scale, a.Filter != nil))
		case drawing.Rectangle:
			out = append(out, pathItem(v.ToPath(), s, m, scale, a.Filter != nil))
		case drawing.Text:
			t := v
			t.Transform = nil
			t.Position = geometry.Apply(m, v.Position)
			t.FontSize = v.FontSize * scale
			out = append(out, item{text: &t, state: s, scale: scale, filter: a.Filter != nil})
		default:
			return nil, drawing.Unsupported(e)
		}
	}
	return out, nil
}

func pathItem(p drawing.Path, s drawing.State, m geometry.Transformation, scale float64, filtered bool) item {
	p.Transform = nil
	tp := p.Transformed(m).(drawing.Path)
	return item{path: &tp, state: s, scale: scale, filter: filtered}
}

// pageTransform maps page coordinates to output coordinates scaled by k.
func pageTransform(page Page, k float64) geometry.Transformation {
	return geometry.Compose(geometry.Scaling{Sx: k, Sy: k}, geometry.Translation{Tx: -page.MinX, Ty: -page.MinY})
}

// strokeWidth is the stroke width of it in output units; 0 means no stroke.
func strokeWidth(it item) float64 {
	if _, ok := it.state.Stroke.Color(); !ok {
		return 0
	}
	return it.state.StrokeWidth * it.scale
}
