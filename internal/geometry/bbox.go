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
	"strings"
)

// Bbox is an axis-aligned box given by its center and size.
type Bbox struct {
	Position      Point
	Width, Height float64
}

// BboxFromBounds builds the box spanning the given extremes.
func BboxFromBounds(minX, minY, maxX, maxY float64) Bbox {
	return Bbox{
		Position: Point{(minX + maxX) / 2, (minY + maxY) / 2},
		Width:    maxX - minX,
		Height:   maxY - minY,
	}
}

func (b Bbox) X() float64 { return b.Position.X }
func (b Bbox) Y() float64 { return b.Position.Y }

func (b Bbox) MinX() float64 { return b.Position.X - b.Width/2 }
func (b Bbox) MinY() float64 { return b.Position.Y - b.Height/2 }
func (b Bbox) MaxX() float64 { return b.Position.X + b.Width/2 }
func (b Bbox) MaxY() float64 { return b.Position.Y + b.Height/2 }

func (b Bbox) Center() Point    { return b.Position }
func (b Bbox) NorthWest() Point { return Point{b.MinX(), b.MinY()} }
func (b Bbox) North() Point     { return Point{b.X(), b.MinY()} }
func (b Bbox) NorthEast() Point { return Point{b.MaxX(), b.MinY()} }
func (b Bbox) East() Point      { return Point{b.MaxX(), b.Y()} }
func (b Bbox) SouthEast() Point { return Point{b.MaxX(), b.MaxY()} }
func (b Bbox) South() Point     { return Point{b.X(), b.MaxY()} }
func (b Bbox) SouthWest() Point { return Point{b.MinX(), b.MaxY()} }
func (b Bbox) West() Point      { return Point{b.MinX(), b.Y()} }

// Anchor returns the named compass point of the box.
func (b Bbox) Anchor(a Anchor) Point {
	switch a {
	case NorthWest:
		return b.NorthWest()
	case North:
		return b.North()
	case NorthEast:
		return b.NorthEast()
	case East:
		return b.East()
	case SouthEast:
		return b.SouthEast()
	case South:
		return b.South()
	case SouthWest:
		return b.SouthWest()
	case West:
		return b.West()
	default:
		return b.Center()
	}
}

// Union returns the smallest box containing b and o.
func (b Bbox) Union(o Bbox) Bbox {
	return BboxFromBounds(
		math.Min(b.MinX(), o.MinX()), math.Min(b.MinY(), o.MinY()),
		math.Max(b.MaxX(), o.MaxX()), math.Max(b.MaxY(), o.MaxY()),
	)
}

// Contains reports whether p lies inside b or on its border, within eps.
func (b Bbox) Contains(p Point, eps float64) bool {
	return p.X >= b.MinX()-eps && p.X <= b.MaxX()+eps && p.Y >= b.MinY()-eps && p.Y <= b.MaxY()+eps
}

// Edges returns the borders NW->NE, NE->SE, SE->SW and SW->NW.
func (b Bbox) Edges() [4]Segment {
	nw, ne, se, sw := b.NorthWest(), b.NorthEast(), b.SouthEast(), b.SouthWest()
	return [4]Segment{{nw, ne}, {ne, se}, {se, sw}, {sw, nw}}
}

// Anchor names one of the nine reference points of a box or node.
type Anchor int

const (
	Center Anchor = iota
	NorthWest
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
)

var anchorNames = [...]string{"center", "north_west", "north", "north_east", "east", "south_east", "south", "south_west", "west"}

func (a Anchor) String() string {
	if int(a) >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// ParseAnchor accepts names such as "north_west", "northwest" or "nw".
func ParseAnchor(s string) (Anchor, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	switch n {
	case "center", "c":
		return Center, nil
	case "northwest", "nw":
		return NorthWest, nil
	case "north", "n":
		return North, nil
	case "northeast", "ne":
		return NorthEast, nil
	case "east", "e":
		return East, nil
	case "southeast", "se":
		return SouthEast, nil
	case "south", "s":
		return South, nil
	case "southwest", "sw":
		return SouthWest, nil
	case "west", "w":
		return West, nil
	}
	return Center, fmt.Errorf("unknown anchor %q", s)
}

// Anchors lists the eight compass anchors, clockwise from north west.
var Anchors = []Anchor{NorthWest, North, NorthEast, East, SouthEast, South, SouthWest, West}
