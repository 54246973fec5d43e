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

	"momapgo/internal/geometry"
)

// PathAction is one of MoveTo, LineTo, CurveTo, QuadraticCurveTo,
// EllipticalArc or ClosePath.
type PathAction interface{ isPathAction() }

type MoveTo struct{ Point geometry.Point }

type LineTo struct{ Point geometry.Point }

// CurveTo is a cubic Bezier curve to Point.
type CurveTo struct {
	Point              geometry.Point
	Control1, Control2 geometry.Point
}

// QuadraticCurveTo is a quadratic Bezier curve to Point.
type QuadraticCurveTo struct {
	Point   geometry.Point
	Control geometry.Point
}

// EllipticalArc is an SVG arc to Point; XAxisRotation is in degrees.
type EllipticalArc struct {
	Point         geometry.Point
	Rx, Ry        float64
	XAxisRotation float64
	ArcFlag       bool
	SweepFlag     bool
}

type ClosePath struct{}

func (MoveTo) isPathAction()           {}
func (LineTo) isPathAction()           {}
func (CurveTo) isPathAction()          {}
func (QuadraticCurveTo) isPathAction() {}
func (EllipticalArc) isPathAction()    {}
func (ClosePath) isPathAction()        {}

// ToCurveTo raises the curve to the equivalent cubic, starting at start.
func (q QuadraticCurveTo) ToCurveTo(start geometry.Point) CurveTo {
	return CurveTo{
		Point:    q.Point,
		Control1: start.Add(q.Control.Sub(start).Mul(2.0 / 3)),
		Control2: q.Point.Add(q.Control.Sub(q.Point).Mul(2.0 / 3)),
	}
}

// Geometry returns the arc as a geometry value starting at start.
func (a EllipticalArc) Geometry(start geometry.Point) geometry.EllipticalArc {
	return geometry.EllipticalArc{
		P1: start, P2: a.Point,
		Rx: a.Rx, Ry: a.Ry, XAxisRotation: a.XAxisRotation,
		ArcFlag: a.ArcFlag, SweepFlag: a.SweepFlag,
	}
}

// SegmentAction returns the action drawing s from its start point.
func SegmentAction(s geometry.PathSegment) (PathAction, error) {
	switch v := s.(type) {
	case geometry.Segment:
		return LineTo{Point: v.P2}, nil
	case geometry.BezierCurve:
		switch n := len(v.ControlPoints); {
		case n == 0:
			return LineTo{Point: v.P2}, nil
		case n == 1:
			return QuadraticCurveTo{Point: v.P2, Control: v.ControlPoints[0]}, nil
		default:
			// higher degrees keep their first two control points
			return CurveTo{Point: v.P2, Control1: v.ControlPoints[0], Control2: v.ControlPoints[1]}, nil
		}
	case geometry.EllipticalArc:
		return EllipticalArc{Point: v.P2, Rx: v.Rx, Ry: v.Ry, XAxisRotation: v.XAxisRotation, ArcFlag: v.ArcFlag, SweepFlag: v.SweepFlag}, nil
	default:
		return nil, fmt.Errorf("%w: %T", geometry.ErrUnsupportedObject, s)
	}
}

// Path is an append-only list of actions. Actions before the first MoveTo
// start at the origin.
type Path struct {
	Attributes
	Actions []PathAction
}

func (Path) isElement() {}

// Append returns a copy of p with actions added.
func (p Path) Append(actions ...PathAction) Path {
	out := p
	out.Actions = make([]PathAction, 0, len(p.Actions)+len(actions))
	out.Actions = append(out.Actions, p.Actions...)
	out.Actions = append(out.Actions, actions...)
	return out
}

// Walk calls fn with each action and the current point before it.
func (p Path) Walk(fn func(current geometry.Point, a PathAction)) {
	var current, initial geometry.Point
	for _, a := range p.Actions {
		fn(current, a)
		switch v := a.(type) {
		case MoveTo:
			current, initial = v.Point, v.Point
		case LineTo:
			current = v.Point
		case CurveTo:
			current = v.Point
		case QuadraticCurveTo:
			current = v.Point
		case EllipticalArc:
			current = v.Point
		case ClosePath:
			current = initial
		}
	}
}

func (p Path) Polylines() geometry.Polylines {
	var (
		out geometry.Polylines
		run = geometry.Polyline{{}}
	)
	flush := func() {
		if len(run) >= 2 {
			out = append(out, run)
		}
		run = nil
	}
	var initial geometry.Point
	p.Walk(func(current geometry.Point, a PathAction) {
		if len(run) == 0 {
			run = geometry.Polyline{current}
		}
		switch v := a.(type) {
		case MoveTo:
			flush()
			run = geometry.Polyline{v.Point}
			initial = v.Point
		case LineTo:
			run = append(run, v.Point)
		case CurveTo:
			c := geometry.BezierCurve{P1: current, P2: v.Point, ControlPoints: []geometry.Point{v.Control1, v.Control2}}
			run = append(run, c.Polyline()[1:]...)
		case QuadraticCurveTo:
			c := geometry.BezierCurve{P1: current, P2: v.Point, ControlPoints: []geometry.Point{v.Control}}
			run = append(run, c.Polyline()[1:]...)
		case EllipticalArc:
			run = append(run, v.Geometry(current).Polyline()[1:]...)
		case ClosePath:
			run = append(run, initial)
			flush()
		}
	})
	flush()
	return applyOwn(p.Attributes, out)
}

// Transformed maps every action through t. Quadratic curves stay quadratic
// and arcs get their radii and rotation recomputed.
func (p Path) Transformed(t geometry.Transformation) Element {
	out := p
	out.Actions = make([]PathAction, 0, len(p.Actions))
	p.Walk(func(current geometry.Point, a PathAction) {
		out.Actions = append(out.Actions, transformAction(a, current, t))
	})
	return out
}

func transformAction(a PathAction, current geometry.Point, t geometry.Transformation) PathAction {
	ap := func(q geometry.Point) geometry.Point { return geometry.Apply(t, q) }
	switch v := a.(type) {
	case MoveTo:
		return MoveTo{Point: ap(v.Point)}
	case LineTo:
		return LineTo{Point: ap(v.Point)}
	case CurveTo:
		return CurveTo{Point: ap(v.Point), Control1: ap(v.Control1), Control2: ap(v.Control2)}
	case QuadraticCurveTo:
		return QuadraticCurveTo{Point: ap(v.Point), Control: ap(v.Control)}
	case EllipticalArc:
		g := v.Geometry(current).Transformed(t)
		return EllipticalArc{Point: g.P2, Rx: g.Rx, Ry: g.Ry, XAxisRotation: g.XAxisRotation, ArcFlag: g.ArcFlag, SweepFlag: g.SweepFlag}
	default:
		return a
	}
}
