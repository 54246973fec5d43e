/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct{ R, G, B, A uint8 }

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 128, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

var namedColors = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"lightgray":   {211, 211, 211, 255},
	"darkgray":    {169, 169, 169, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"pink":        {255, 192, 203, 255},
	"brown":       {165, 42, 42, 255},
	"navy":        {0, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"lightblue":   {173, 216, 230, 255},
	"lightgreen":  {144, 238, 144, 255},
	"lightyellow": {255, 255, 224, 255},
	"transparent": Transparent,
}

// ParseColor accepts a CSS color name or a #rgb / #rrggbb hex string.
func ParseColor(s string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[n]; ok {
		return c, nil
	}
	c, err := colorful.Hex(n)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, 255}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c Color) Hex() string { return c.colorful().Hex() }

// Opacity returns the alpha channel in [0, 1].
func (c Color) Opacity() float64 { return float64(c.A) / 255 }

// WithOpacity returns c with alpha set from o in [0, 1].
func (c Color) WithOpacity(o float64) Color {
	o = max(0, min(1, o))
	c.A = uint8(o*255 + 0.5)
	return c
}

// Blend mixes c towards o by t in [0, 1] in Lab space.
func (c Color) Blend(o Color, t float64) Color {
	r, g, b := c.colorful().BlendLab(o.colorful(), t).Clamped().RGB255()
	a := float64(c.A)*(1-t) + float64(o.A)*t
	return Color{r, g, b, uint8(a + 0.5)}
}

// RGBA converts to the image/color representation.
func (c Color) RGBA() color.RGBA {
	// premultiplied as required by color.RGBA
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(c.A) / 255),
		G: uint8(uint16(c.G) * uint16(c.A) / 255),
		B: uint8(uint16(c.B) * uint16(c.A) / 255),
		A: c.A,
	}
}
