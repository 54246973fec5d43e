/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import "momapgo/internal/drawing"

// GroupLayout is a plain container of layout elements sharing one style.
type GroupLayout struct {
	ID       string
	Elements []Element
	Style    drawing.Attributes
}

func (g GroupLayout) ElementID() string   { return g.ID }
func (g GroupLayout) Children() []Element { return g.Elements }

func (g GroupLayout) DrawingElements() []drawing.Element {
	return wrap(g.ID, g.Style, drawAll(g.Elements))
}

func (g GroupLayout) Translated(dx, dy float64) Element {
	g.Elements = translateAll(g.Elements, dx, dy)
	return g
}

func (g GroupLayout) Childless() Element {
	g.Elements = nil
	return g
}

func (g GroupLayout) withoutIDs(idx Index) Element {
	g.ID = ""
	g.Elements = stripAll(g.Elements, idx)
	return g
}
