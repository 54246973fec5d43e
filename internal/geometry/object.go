/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "fmt"

// Object is the closed set of geometry values accepted by the intersection
// routines: Point, Line, Segment, BezierCurve, EllipticalArc and Polylines.
type Object interface{ isObject() }

// PathSegment is a finite piece of an arc path: Segment, BezierCurve or
// EllipticalArc.
type PathSegment interface {
	Object
	Start() Point
	End() Point
	Length() float64
	Polyline() Polyline
	Bbox() Bbox
	PositionAtFraction(f float64) Point
	AngleAtFraction(f float64) float64
}

// Shorten trims s at its end by length, keeping its start fixed.
func Shorten(s PathSegment, length float64) (PathSegment, error) {
	switch v := s.(type) {
	case Segment:
		return v.Shortened(length), nil
	case BezierCurve:
		return v.Shortened(length), nil
	case EllipticalArc:
		return v.Shortened(length), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, s)
	}
}

// Transform maps every defining point of s through t.
func Transform(s PathSegment, t Transformation) (PathSegment, error) {
	switch v := s.(type) {
	case Segment:
		return v.Transformed(t), nil
	case BezierCurve:
		return v.Transformed(t), nil
	case EllipticalArc:
		return v.Transformed(t), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, s)
	}
}

// Translate is Transform with a Translation, which cannot fail for the known
// variants; unknown variants are returned unchanged.
func Translate(s PathSegment, dx, dy float64) PathSegment {
	if out, err := Transform(s, Translation{Tx: dx, Ty: dy}); err == nil {
		return out
	}
	return s
}

// Approximate returns the polygon approximation of obj.
func Approximate(obj Object) (Polylines, error) {
	switch v := obj.(type) {
	case Point:
		return Polylines{v.Polyline()}, nil
	case Segment:
		return Polylines{v.Polyline()}, nil
	case BezierCurve:
		return Polylines{v.Polyline()}, nil
	case EllipticalArc:
		return Polylines{v.Polyline()}, nil
	case Polylines:
		return v, nil
	case Line:
		return nil, fmt.Errorf("%w: infinite line has no approximation", ErrUnsupportedObject)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}
}
