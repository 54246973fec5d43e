/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"strconv"
	"strings"

	"momapgo/internal/geometry"
)

type paintKind uint8

const (
	inheritPaint paintKind = iota
	noPaint
	colorPaint
)

// Paint is a stroke or fill value. The zero Paint inherits from the parent
// group.
type Paint struct {
	kind  paintKind
	color Color
}

var (
	Inherit = Paint{}
	NoPaint = Paint{kind: noPaint}
)

// Solid paints with c.
func Solid(c Color) Paint { return Paint{kind: colorPaint, color: c} }

func (p Paint) IsInherited() bool { return p.kind == inheritPaint }
func (p Paint) IsNone() bool      { return p.kind == noPaint }

// Color returns the paint color; ok is false for inherited or none paints.
func (p Paint) Color() (c Color, ok bool) { return p.color, p.kind == colorPaint }

func (p Paint) String() string {
	switch p.kind {
	case noPaint:
		return "none"
	case colorPaint:
		return p.color.Hex()
	default:
		return "inherit"
	}
}

// Dash is a stroke dash pattern. The zero Dash inherits; a set Dash with no
// values draws solid lines.
type Dash struct {
	Set    bool
	Values []float64
}

// Dashes returns a set dash pattern.
func Dashes(values ...float64) Dash { return Dash{Set: true, Values: values} }

// NoDash is an explicit solid stroke.
var NoDash = Dash{Set: true}

func (d Dash) String() string {
	if !d.Set {
		return "inherit"
	}
	if len(d.Values) == 0 {
		return "none"
	}
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Float returns a pointer to v, for optional numeric attributes.
func Float(v float64) *float64 { return &v }

// Attributes carries the optional paint state of a drawing element. Unset
// fields are inherited from the enclosing Group.
type Attributes struct {
	ID               string
	Stroke           Paint
	StrokeWidth      *float64
	StrokeDasharray  Dash
	StrokeDashoffset *float64
	Fill             Paint
	// Transform is applied to the element's coordinates, first entry
	// outermost.
	Transform []geometry.Transformation
	Filter    *Filter
}

// Attrs returns a.
func (a Attributes) Attrs() Attributes { return a }

// Transformation composes the Transform list; ok is false when it is empty.
func (a Attributes) Transformation() (geometry.Transformation, bool) {
	if len(a.Transform) == 0 {
		return nil, false
	}
	if len(a.Transform) == 1 {
		return a.Transform[0], true
	}
	return geometry.Compose(a.Transform...), true
}

// State is fully resolved paint state, as seen by a renderer.
type State struct {
	Stroke           Paint
	Fill             Paint
	StrokeWidth      float64
	StrokeDasharray  []float64
	StrokeDashoffset float64
}

// DefaultState matches SVG initial values: black fill, no stroke, width 1.
func DefaultState() State {
	return State{Stroke: NoPaint, Fill: Solid(Black), StrokeWidth: 1}
}

// With resolves a against s.
func (s State) With(a Attributes) State {
	if !a.Stroke.IsInherited() {
		s.Stroke = a.Stroke
	}
	if !a.Fill.IsInherited() {
		s.Fill = a.Fill
	}
	if a.StrokeWidth != nil {
		s.StrokeWidth = *a.StrokeWidth
	}
	if a.StrokeDasharray.Set {
		s.StrokeDasharray = a.StrokeDasharray.Values
	}
	if a.StrokeDashoffset != nil {
		s.StrokeDashoffset = *a.StrokeDashoffset
	}
	return s
}
