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

	"github.com/google/uuid"

	"momapgo/internal/geometry"
)

// FilterUnits selects how the filter region lengths are interpreted.
type FilterUnits uint8

const (
	// ObjectBoundingBox lengths are fractions of the filtered element's box.
	ObjectBoundingBox FilterUnits = iota
	// UserSpaceOnUse lengths are absolute user coordinates.
	UserSpaceOnUse
)

// Length is a filter region length, absolute or a percentage.
type Length struct {
	Value   float64
	Percent bool
}

func Percent(v float64) Length { return Length{Value: v, Percent: true} }
func Abs(v float64) Length     { return Length{Value: v} }

// Standard filter effect inputs.
const (
	SourceGraphic = "SourceGraphic"
	SourceAlpha   = "SourceAlpha"
)

// Filter is an ordered chain of effects applied to an element.
type Filter struct {
	ID                  string
	Units               FilterUnits
	X, Y, Width, Height Length
	Effects             []FilterEffect
}

// NewFilter returns a filter with the default region (-10%, -10%, 120%,
// 120%) in object bounding box units. The id is a name-based UUID of the
// content, so equal filters share it.
func NewFilter(effects ...FilterEffect) Filter {
	f := Filter{
		Units:   ObjectBoundingBox,
		X:       Percent(-10),
		Y:       Percent(-10),
		Width:   Percent(120),
		Height:  Percent(120),
		Effects: effects,
	}
	f.ID = "filter-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%v", f))).String()
	return f
}

// FilterEffect is one of DropShadow, Flood, Composite, GaussianBlur, Offset.
type FilterEffect interface {
	// ResultName names the effect output for later inputs; empty means
	// anonymous.
	ResultName() string
	isFilterEffect()
}

type DropShadow struct {
	Dx, Dy       float64
	StdDeviation float64
	FloodOpacity float64
	FloodColor   Color
	Result       string
}

type Flood struct {
	Color   Color
	Opacity float64
	Result  string
}

type CompositeOperator uint8

const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeLighter
	CompositeArithmetic
)

var compositeNames = [...]string{"over", "in", "out", "atop", "xor", "lighter", "arithmetic"}

func (o CompositeOperator) String() string {
	if int(o) < len(compositeNames) {
		return compositeNames[o]
	}
	return "over"
}

type Composite struct {
	In, In2  string
	Operator CompositeOperator
	Result   string
}

type EdgeMode uint8

const (
	EdgeNone EdgeMode = iota
	EdgeDuplicate
	EdgeWrap
)

var edgeModeNames = [...]string{"none", "duplicate", "wrap"}

func (m EdgeMode) String() string {
	if int(m) < len(edgeModeNames) {
		return edgeModeNames[m]
	}
	return "none"
}

type GaussianBlur struct {
	In           string
	StdDeviation float64
	EdgeMode     EdgeMode
	Result       string
}

type Offset struct {
	In     string
	Dx, Dy float64
	Result string
}

func (e DropShadow) ResultName() string   { return e.Result }
func (e Flood) ResultName() string        { return e.Result }
func (e Composite) ResultName() string    { return e.Result }
func (e GaussianBlur) ResultName() string { return e.Result }
func (e Offset) ResultName() string       { return e.Result }

func (DropShadow) isFilterEffect()   {}
func (Flood) isFilterEffect()        {}
func (Composite) isFilterEffect()    {}
func (GaussianBlur) isFilterEffect() {}
func (Offset) isFilterEffect()       {}

// Compat expands a DropShadow into the primitive chain understood by every
// backend: flood, composite in the source, blur, offset, composite the source
// over the shadow. Intermediate results are named after prefix.
func (e DropShadow) Compat(prefix string) []FilterEffect {
	flood := Flood{Color: e.FloodColor, Opacity: e.FloodOpacity, Result: prefix + "-flood"}
	masked := Composite{In: flood.Result, In2: SourceGraphic, Operator: CompositeIn, Result: prefix + "-mask"}
	blur := GaussianBlur{In: masked.Result, StdDeviation: e.StdDeviation, Result: prefix + "-blur"}
	offset := Offset{In: blur.Result, Dx: e.Dx, Dy: e.Dy, Result: prefix + "-offset"}
	over := Composite{In: SourceGraphic, In2: offset.Result, Operator: CompositeOver, Result: e.Result}
	return []FilterEffect{flood, masked, blur, offset, over}
}

// Compat returns a copy of f with every DropShadow expanded. The results of
// the i-th shadow are prefixed with "<id>-<i>".
func (f Filter) Compat() Filter {
	out := f
	out.Effects = make([]FilterEffect, 0, len(f.Effects))
	base := f.ID
	if base == "" {
		base = "filter"
	}
	for i, e := range f.Effects {
		if ds, ok := e.(DropShadow); ok {
			out.Effects = append(out.Effects, ds.Compat(fmt.Sprintf("%s-%d", base, i))...)
			continue
		}
		out.Effects = append(out.Effects, e)
	}
	return out
}

// Region resolves the filter region against the filtered element's box.
// Percentages always scale the box; plain values are fractions in
// ObjectBoundingBox units and coordinates in UserSpaceOnUse units.
func (f Filter) Region(b geometry.Bbox) geometry.Bbox {
	resolve := func(l Length, origin, extent float64, offset bool) float64 {
		switch {
		case l.Percent:
			v := l.Value / 100 * extent
			if offset {
				v += origin
			}
			return v
		case f.Units == ObjectBoundingBox:
			v := l.Value * extent
			if offset {
				v += origin
			}
			return v
		default:
			return l.Value
		}
	}
	x := resolve(f.X, b.MinX(), b.Width, true)
	y := resolve(f.Y, b.MinY(), b.Height, true)
	w := resolve(f.Width, 0, b.Width, false)
	h := resolve(f.Height, 0, b.Height, false)
	return geometry.BboxFromBounds(x, y, x+w, y+h)
}
