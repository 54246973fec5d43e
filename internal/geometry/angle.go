/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeAngle maps a to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// AngleOfLine is the angle of the direction P1->P2 in [0, 2π).
func AngleOfLine(l Line) float64 {
	return NormalizeAngle(math.Atan2(l.P2.Y-l.P1.Y, l.P2.X-l.P1.X))
}

// IsAngleBetween reports whether angle lies in the sector swept from start to
// end in the positive direction. A start greater than or equal to end means
// the sector crosses 0.
func IsAngleBetween(angle, start, end float64) bool {
	angle, start, end = NormalizeAngle(angle), NormalizeAngle(start), NormalizeAngle(end)
	if start < end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// IsAngleInSector reports whether angle lies in the sector centered at center
// and delimited by the rays towards p1 and p2.
func IsAngleInSector(angle float64, center, p1, p2 Point) bool {
	return IsAngleBetween(angle, AngleOfLine(Line{center, p1}), AngleOfLine(Line{center, p2}))
}

// AngleBetweenSegments returns the signed angle from s1 to s2, in [-π, π].
func AngleBetweenSegments(s1, s2 Segment) float64 {
	return vectorAngle(s1.P2.Sub(s1.P1), s2.P2.Sub(s2.P1))
}

// Sincos returns the cosine and sine of an angle in degrees, exact for
// multiples of 90.
func Sincos(deg float64) (cos, sin float64) {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	r := Radians(d)
	return math.Cos(r), math.Sin(r)
}
