/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transformation is an affine map expressed as a 3x3 homogeneous matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The variants are Translation, Rotation, Scaling and MatrixTransformation.
type Transformation interface {
	// Matrix returns a fresh copy of the homogeneous matrix.
	Matrix() *mat.Dense
	// Inverse returns the transformation undoing this one.
	Inverse() (Transformation, error)
	isTransformation()
}

// Translation moves points by (Tx, Ty).
type Translation struct{ Tx, Ty float64 }

// Rotation turns points by Angle radians around Pivot. The zero Pivot is the
// origin.
type Rotation struct {
	Angle float64
	Pivot Point
}

// Scaling scales points by (Sx, Sy) around the origin.
type Scaling struct{ Sx, Sy float64 }

// MatrixTransformation wraps an arbitrary 3x3 homogeneous matrix.
type MatrixTransformation struct{ M *mat.Dense }

func (Translation) isTransformation()          {}
func (Rotation) isTransformation()             {}
func (Scaling) isTransformation()              {}
func (MatrixTransformation) isTransformation() {}

func affine(a, b, c, d, e, f float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a, c, e,
		b, d, f,
		0, 0, 1,
	})
}

// Identity returns the identity matrix transformation.
func Identity() MatrixTransformation { return MatrixTransformation{M: affine(1, 0, 0, 1, 0, 0)} }

func (t Translation) Matrix() *mat.Dense { return affine(1, 0, 0, 1, t.Tx, t.Ty) }

func (t Translation) Inverse() (Transformation, error) {
	return Translation{Tx: -t.Tx, Ty: -t.Ty}, nil
}

func (r Rotation) Matrix() *mat.Dense {
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	m := affine(c, s, -s, c, 0, 0)
	if r.Pivot == (Point{}) {
		return m
	}
	var tmp, out mat.Dense
	tmp.Mul(Translation{Tx: r.Pivot.X, Ty: r.Pivot.Y}.Matrix(), m)
	out.Mul(&tmp, Translation{Tx: -r.Pivot.X, Ty: -r.Pivot.Y}.Matrix())
	return &out
}

func (r Rotation) Inverse() (Transformation, error) {
	return Rotation{Angle: -r.Angle, Pivot: r.Pivot}, nil
}

func (s Scaling) Matrix() *mat.Dense { return affine(s.Sx, 0, 0, s.Sy, 0, 0) }

// Inverse scales by the reciprocal factors.
func (s Scaling) Inverse() (Transformation, error) {
	if s.Sx == 0 || s.Sy == 0 {
		return nil, fmt.Errorf("%w: scaling by (%g, %g)", ErrSingular, s.Sx, s.Sy)
	}
	return Scaling{Sx: 1 / s.Sx, Sy: 1 / s.Sy}, nil
}

func (m MatrixTransformation) Matrix() *mat.Dense {
	if m.M == nil {
		return affine(1, 0, 0, 1, 0, 0)
	}
	return mat.DenseCopyOf(m.M)
}

func (m MatrixTransformation) Inverse() (Transformation, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.Matrix()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return MatrixTransformation{M: &inv}, nil
}

// Compose returns the product M(ts[0]) * M(ts[1]) * ... . Applying the result
// to a point applies the last transformation first.
func Compose(ts ...Transformation) MatrixTransformation {
	out := affine(1, 0, 0, 1, 0, 0)
	for _, t := range ts {
		var next mat.Dense
		next.Mul(out, t.Matrix())
		out = &next
	}
	return MatrixTransformation{M: out}
}

// Apply maps p through t.
func Apply(t Transformation, p Point) Point {
	switch v := t.(type) {
	case Translation:
		return Point{p.X + v.Tx, p.Y + v.Ty}
	case Scaling:
		return Point{p.X * v.Sx, p.Y * v.Sy}
	}
	var r mat.VecDense
	r.MulVec(t.Matrix(), mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return Point{r.AtVec(0), r.AtVec(1)}
}

// Coefficients returns the (a, b, c, d, e, f) affine coefficients of t, the
// order used by SVG matrix() and PDF cm operators.
func Coefficients(t Transformation) (a, b, c, d, e, f float64) {
	m := t.Matrix()
	return m.At(0, 0), m.At(1, 0), m.At(0, 1), m.At(1, 1), m.At(0, 2), m.At(1, 2)
}

// Determinant returns the determinant of the linear part of t. A negative
// value means t mirrors.
func Determinant(t Transformation) float64 {
	a, b, c, d, _, _ := Coefficients(t)
	return a*d - b*c
}

// EqualTransformations reports whether a and b are the same variant with the
// same parameters.
func EqualTransformations(a, b Transformation) bool {
	switch va := a.(type) {
	case MatrixTransformation:
		vb, ok := b.(MatrixTransformation)
		return ok && mat.Equal(va.Matrix(), vb.Matrix())
	case nil:
		return b == nil
	default:
		return a == b
	}
}
