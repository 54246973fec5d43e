/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import "reflect"

// Model is the semantic side of a map.
type Model interface {
	// IsSubmodel reports whether the model is contained in other.
	IsSubmodel(other Model) bool
}

// ModelElement is an element of a Model.
type ModelElement interface {
	ModelElementID() string
}

// ModelRef is the model element a layout element stands for, with the
// element it appears in when the same element is drawn in several places.
type ModelRef struct {
	Element ModelElement
	Context ModelElement
}

// LayoutModelMapping maps layout element identifiers to model elements.
type LayoutModelMapping map[string]ModelRef

// IsSubmapping reports whether every entry of m is present in other.
func (m LayoutModelMapping) IsSubmapping(other LayoutModelMapping) bool {
	for k, v := range m {
		o, ok := other[k]
		if !ok || !reflect.DeepEqual(v, o) {
			return false
		}
	}
	return true
}

// Map ties a model to its layout.
type Map struct {
	ID      string
	Model   Model
	Layout  MapLayout
	Mapping LayoutModelMapping
}

// IsSubmap reports whether m is part of other: submodel, sublayout and
// submapping all hold.
func (m Map) IsSubmap(other Map) bool {
	switch {
	case m.Model == nil:
	case other.Model == nil:
		return false
	case !m.Model.IsSubmodel(other.Model):
		return false
	}
	return m.Layout.IsSublayout(other.Layout, false, false) && m.Mapping.IsSubmapping(other.Mapping)
}

// Index indexes the layout of m.
func (m Map) Index() Index { return NewIndex(m.Layout) }

// Entity is a named model element.
type Entity struct {
	ID   string
	Kind string
	Name string
}

func (e Entity) ModelElementID() string { return e.ID }

// EntityModel is a model made of a set of entities.
type EntityModel struct {
	Entities []Entity
}

// IsSubmodel reports whether every entity of m is in other.
func (m EntityModel) IsSubmodel(other Model) bool {
	o, ok := other.(EntityModel)
	if !ok {
		return false
	}
	have := make(map[Entity]int, len(o.Entities))
	for _, e := range o.Entities {
		have[e]++
	}
	for _, e := range m.Entities {
		if have[e] == 0 {
			return false
		}
		have[e]--
	}
	return true
}
