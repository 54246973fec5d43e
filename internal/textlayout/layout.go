/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textlayout measures and wraps label text. Measurement goes through a
// Provider so the deterministic basic font can be swapped for real OpenType
// faces loaded from disk.
package textlayout

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec describes a requested font.
type FontSpec struct {
	Family string
	Size   float64 // pixels
	Weight int     // 100..900
	Italic bool
}

// Metrics are the vertical metrics of a resolved face, in pixels. Size is the
// em size the face was resolved at; callers scale by requested/Size when a
// provider cannot honor the requested size.
type Metrics struct {
	Ascent, Descent, LineGap float64
	Size                     float64
}

// Line is a single laid out line.
type Line struct {
	Text  string
	Width float64
}

// TextBox is the result of laying out text, in pixels of the requested size.
type TextBox struct {
	Lines      []Line
	Width      float64
	Height     float64
	LineHeight float64
	Metrics    Metrics
}

// Provider maps a FontSpec to a concrete font.Face.
type Provider interface {
	Resolve(FontSpec) (font.Face, Metrics)
}

// BasicProvider uses basicfont.Face7x13 for every request.
type BasicProvider struct{}

func (BasicProvider) Resolve(FontSpec) (font.Face, Metrics) {
	f := basicfont.Face7x13
	m := f.Metrics()
	return f, Metrics{
		Ascent:  float64(m.Ascent.Round()),
		Descent: float64(m.Descent.Round()),
		LineGap: float64(m.Height.Round() - m.Ascent.Round() - m.Descent.Round()),
		Size:    13,
	}
}

var (
	defaultMu       sync.RWMutex
	defaultProvider Provider = BasicProvider{}
)

// Default returns the process-wide provider used by label layout.
func Default() Provider {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultProvider
}

// SetDefault replaces the process-wide provider; nil restores BasicProvider.
func SetDefault(p Provider) {
	if p == nil {
		p = BasicProvider{}
	}
	defaultMu.Lock()
	defaultProvider = p
	defaultMu.Unlock()
}

// WordWrapLayouter breaks on spaces and newlines; it does no shaping or
// hyphenation.
type WordWrapLayouter struct{ Provider Provider }

func NewWordWrap(provider Provider) *WordWrapLayouter { return &WordWrapLayouter{Provider: provider} }

// Layout wraps text to maxWidth (no wrapping when maxWidth <= 0). A word wider
// than maxWidth gets a line of its own.
func (l *WordWrapLayouter) Layout(text string, spec FontSpec, maxWidth float64) TextBox {
	p := l.Provider
	if p == nil {
		p = Default()
	}
	face, met := p.Resolve(spec)
	scale := 1.0
	if spec.Size > 0 && met.Size > 0 {
		scale = spec.Size / met.Size
	}
	drawer := &font.Drawer{Face: face}
	measure := func(s string) float64 { return advance(drawer, s) * scale }

	lineH := (met.Ascent + met.Descent + met.LineGap) * scale
	box := TextBox{
		LineHeight: lineH,
		Metrics: Metrics{
			Ascent:  met.Ascent * scale,
			Descent: met.Descent * scale,
			LineGap: met.LineGap * scale,
			Size:    met.Size * scale,
		},
	}
	addLine := func(words []string) {
		s := strings.Join(words, " ")
		w := measure(s)
		box.Lines = append(box.Lines, Line{Text: s, Width: w})
		box.Width = max(box.Width, w)
		box.Height += lineH
	}
	for _, para := range strings.Split(text, "\n") {
		var cur []string
		for _, word := range strings.Fields(para) {
			if len(cur) > 0 && maxWidth > 0 && measure(strings.Join(append(cur, word), " ")) > maxWidth {
				addLine(cur)
				cur = nil
			}
			cur = append(cur, word)
		}
		addLine(cur)
	}
	return box
}

func advance(d *font.Drawer, s string) float64 {
	return float64(d.MeasureString(s)) / 64 // fixed.Int26_6 to px
}

// Measure returns the unwrapped width and the line height of text.
func Measure(provider Provider, text string, spec FontSpec) (w, h float64) {
	box := NewWordWrap(provider).Layout(strings.ReplaceAll(text, "\n", " "), spec, 0)
	return box.Width, box.Metrics.Ascent + box.Metrics.Descent
}
