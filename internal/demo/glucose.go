/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package demo

import (
	"fmt"

	"momapgo/internal/drawing"
	"momapgo/internal/geometry"
	"momapgo/internal/layout"
	"momapgo/internal/sbgn"
)

// GlucoseMap returns the hexokinase reaction glucose + ATP -> glucose 6P +
// ADP as an SBGN process description map inside a cytosol compartment.
func GlucoseMap() (layout.Map, error) {
	p := sbgn.GenericProcess(geometry.Pt(240, 160), layout.Horizontal)
	p.ID = "reaction"

	glucose := layout.SetLeftOf(sbgn.SimpleChemical(geometry.Point{}, "glucose"), p, 80, geometry.East)
	glucose.ID = "glucose"
	g6p := layout.SetRightOf(sbgn.SimpleChemical(geometry.Point{}, "glucose 6P"), p, 80, geometry.West)
	g6p.ID = "glucose-6p"
	atp := layout.SetBelowOf(sbgn.SimpleChemical(geometry.Point{}, "ATP"), glucose, 50, geometry.North)
	atp.ID = "atp"
	adp := layout.SetBelowOf(sbgn.SimpleChemical(geometry.Point{}, "ADP"), g6p, 50, geometry.North)
	adp.ID = "adp"
	hk := layout.SetAboveOf(sbgn.Macromolecule(geometry.Point{}, "hexokinase"), p, 60, geometry.South)
	hk.ID = "hexokinase"

	connect := func(a layout.ArcLayout, id string, src, dst layout.Element) layout.ArcLayout {
		a.ID = id
		a.Source = layout.Phantom(src)
		a.Target = layout.Phantom(dst)
		return a
	}
	arcs := []layout.ArcLayout{
		connect(sbgn.Consumption(glucose.East(), p.West()), "c-glucose", glucose, p),
		connect(sbgn.Consumption(atp.NorthEast(), p.West()), "c-atp", atp, p),
		connect(sbgn.Production(p.East(), g6p.West()), "p-glucose-6p", p, g6p),
		connect(sbgn.Production(p.East(), adp.NorthWest()), "p-adp", p, adp),
		connect(sbgn.Catalysis(hk.South(), p.North()), "catalysis", hk, p),
	}

	nodes := []layout.NodeLayout{glucose, atp, p, g6p, adp, hk}
	var boxes []geometry.Bbox
	for _, n := range nodes {
		if b, ok := layout.Bbox(n); ok {
			boxes = append(boxes, b)
		}
	}
	cytosol, err := layout.SetFit(sbgn.Compartment(geometry.Point{}, 0, 0, "cytosol"), boxes, 30, 30, geometry.Center)
	if err != nil {
		return layout.Map{}, fmt.Errorf("fit compartment: %w", err)
	}
	cytosol.ID = "cytosol"

	elems := []layout.Element{cytosol}
	for _, n := range nodes {
		elems = append(elems, n)
	}
	for _, a := range arcs {
		elems = append(elems, a)
	}
	frame, err := layout.FitElements([]layout.Element{cytosol}, 40, 40)
	if err != nil {
		return layout.Map{}, fmt.Errorf("fit map: %w", err)
	}

	entities := []layout.Entity{
		{ID: "e-glucose", Kind: "simple chemical", Name: "glucose"},
		{ID: "e-atp", Kind: "simple chemical", Name: "ATP"},
		{ID: "e-reaction", Kind: "process", Name: "hexokinase reaction"},
		{ID: "e-glucose-6p", Kind: "simple chemical", Name: "glucose 6P"},
		{ID: "e-adp", Kind: "simple chemical", Name: "ADP"},
		{ID: "e-hexokinase", Kind: "macromolecule", Name: "hexokinase"},
		{ID: "e-cytosol", Kind: "compartment", Name: "cytosol"},
	}
	mapping := layout.LayoutModelMapping{"cytosol": {Element: entities[6]}}
	for i, n := range nodes {
		mapping[n.ID] = layout.ModelRef{Element: entities[i], Context: entities[6]}
	}

	return layout.Map{
		ID:    "glucose",
		Model: layout.EntityModel{Entities: entities},
		Layout: layout.MapLayout{
			ID:       "glucose-layout",
			Position: frame.Position,
			Width:    frame.Width,
			Height:   frame.Height,
			Elements: elems,
			Style:    drawing.Attributes{Stroke: drawing.NoPaint, Fill: drawing.Solid(drawing.White)},
		},
		Mapping: mapping,
	}, nil
}
