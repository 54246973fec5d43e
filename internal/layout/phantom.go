/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
)

// PhantomLayout stands for another element of the tree, identified by Ref,
// without owning it. It draws nothing; an Index resolves it.
type PhantomLayout struct {
	ID  string
	Ref string

	// target is only set on identifier-free copies used for comparison.
	target Element
}

// Phantom returns a phantom referencing e.
func Phantom(e Element) PhantomLayout { return PhantomLayout{ID: NewID(), Ref: e.ElementID()} }

func (p PhantomLayout) ElementID() string                   { return p.ID }
func (PhantomLayout) DrawingElements() []drawing.Element    { return nil }
func (PhantomLayout) Children() []Element                   { return nil }
func (p PhantomLayout) Translated(float64, float64) Element { return p }
func (p PhantomLayout) Childless() Element                  { return p }

// withoutIDs swaps the reference for the identifier-free, childless copy of
// the target, so phantoms of equal targets compare equal. A phantom that does
// not resolve in idx keeps its reference.
func (p PhantomLayout) withoutIDs(idx Index) Element {
	if t, ok := idx.Resolve(p); ok {
		return PhantomLayout{target: t.Childless().withoutIDs(nil)}
	}
	return PhantomLayout{Ref: p.Ref}
}

// Index maps element identifiers to the elements of one or more trees.
type Index map[string]Element

// NewIndex indexes the roots and all their descendants. Phantoms are
// indexed under their own identifier.
func NewIndex(roots ...Element) Index {
	idx := make(Index)
	for _, r := range roots {
		idx.add(r)
		for _, d := range Descendants(r) {
			idx.add(d)
		}
	}
	return idx
}

func (idx Index) add(e Element) {
	if id := e.ElementID(); id != "" {
		if _, seen := idx[id]; !seen {
			idx[id] = e
		}
	}
}

// Lookup returns the element with the given identifier.
func (idx Index) Lookup(id string) (Element, bool) {
	e, ok := idx[id]
	return e, ok
}

// Resolve follows phantoms until a concrete element. ok is false for a
// dangling or cyclic reference.
func (idx Index) Resolve(e Element) (Element, bool) {
	for range len(idx) + 1 {
		p, isPhantom := e.(PhantomLayout)
		if !isPhantom {
			return e, true
		}
		next, ok := idx[p.Ref]
		if !ok {
			return nil, false
		}
		e = next
	}
	return nil, false
}

// Bbox is the bounding box of e, with phantoms resolved.
func (idx Index) Bbox(e Element) (geometry.Bbox, bool) {
	r, ok := idx.Resolve(e)
	if !ok {
		return geometry.Bbox{}, false
	}
	return Bbox(r)
}
