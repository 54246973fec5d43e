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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/textlayout"
)

// PNG rasterizes the flattened elements. Curves are flattened to polylines;
// strokes are drawn as quads along each edge with square joins. Dashes and
// filters are not supported.
type PNG struct {
	// Scale is the number of pixels per user unit; 0 means 1.
	Scale      float64
	Background *drawing.Color
}

func (p PNG) scale() float64 {
	if p.Scale <= 0 {
		return 1
	}
	return p.Scale
}

func (p PNG) Render(w io.Writer, elems []drawing.Element, page Page) error {
	img, err := p.Image(elems, page)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Image rasterizes elems into a new image covering page.
func (p PNG) Image(elems []drawing.Element, page Page) (*image.RGBA, error) {
	k := p.scale()
	items, err := flatten(elems, drawing.DefaultState(), pageTransform(page, k))
	if err != nil {
		return nil, err
	}
	pixW := max(int(math.Ceil(page.Width*k)), 1)
	pixH := max(int(math.Ceil(page.Height*k)), 1)
	img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	if p.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(p.Background.RGBA()), image.Point{}, draw.Src)
	}
	for _, it := range items {
		if it.text != nil {
			drawText(img, it)
			continue
		}
		polys := it.path.Polylines()
		if c, ok := it.state.Fill.Color(); ok && c.A > 0 {
			fillPolylines(img, polys, c)
		}
		if sw := strokeWidth(it); sw > 0 {
			c, _ := it.state.Stroke.Color()
			strokePolylines(img, polys, sw, c)
		}
	}
	return img, nil
}

func fillPolylines(img *image.RGBA, polys geometry.Polylines, c drawing.Color) {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, pl := range polys {
		if len(pl) < 3 {
			continue
		}
		r.MoveTo(float32(pl[0].X), float32(pl[0].Y))
		for _, q := range pl[1:] {
			r.LineTo(float32(q.X), float32(q.Y))
		}
		r.ClosePath()
	}
	r.Draw(img, b, image.NewUniform(c.RGBA()), image.Point{})
}

// strokePolylines outlines every edge with a quad of the stroke width and
// every vertex with a square. All quads wind the same way so overlaps do not
// cancel.
func strokePolylines(img *image.RGBA, polys geometry.Polylines, width float64, c drawing.Color) {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	quad := func(ps ...geometry.Point) {
		r.MoveTo(float32(ps[0].X), float32(ps[0].Y))
		for _, q := range ps[1:] {
			r.LineTo(float32(q.X), float32(q.Y))
		}
		r.ClosePath()
	}
	for _, pl := range polys {
		for i, q := range pl {
			quad(q.Add(geometry.Pt(-half, -half)), q.Add(geometry.Pt(-half, half)),
				q.Add(geometry.Pt(half, half)), q.Add(geometry.Pt(half, -half)))
			if i == 0 {
				continue
			}
			from := pl[i-1]
			d := q.Sub(from)
			l := math.Hypot(d.X, d.Y)
			if l == 0 {
				continue
			}
			n := geometry.Pt(-d.Y/l*half, d.X/l*half)
			quad(from.Add(n), q.Add(n), q.Sub(n), from.Sub(n))
		}
	}
	r.Draw(img, b, image.NewUniform(c.RGBA()), image.Point{})
}

func drawText(img *image.RGBA, it item) {
	c, ok := it.state.Fill.Color()
	if !ok || it.text.FontSize <= 0 {
		return
	}
	face, _ := textlayout.Default().Resolve(textlayout.FontSpec{Family: it.text.FontFamily, Size: it.text.FontSize})
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Color(c.RGBA())),
		Face: face,
		Dot:  fixed.P(int(math.Round(it.text.Position.X)), int(math.Round(it.text.Position.Y))),
	}
	d.DrawString(it.text.Text)
}
