/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"momapgo/internal/drawing"
	"momapgo/internal/layout"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls a batch export of one layout to several formats.
//
// Files are written as <OutDir>/<format>/<Name>.<format>. An empty OutDir is
// the preset name.
type BatchOptions struct {
	Preset     PresetName
	Formats    []string // allowed: pdf, png, svg; empty means preset defaults
	Name       string   // base file name; empty means "map"
	Scale      float64  // when > 0 overrides the preset's PNG scale
	Margin     float64
	Background *drawing.Color
	OutDir     string
}

// BatchExport renders root once per format and returns the written paths.
func BatchExport(root layout.Element, opt BatchOptions) ([]string, error) {
	formats := opt.Formats
	if len(formats) == 0 {
		formats = presetDefaultFormats(opt.Preset)
	}
	name := opt.Name
	if name == "" {
		name = "map"
	}
	baseOut := opt.OutDir
	if baseOut == "" {
		baseOut = string(opt.Preset)
	}
	scale := presetScale(opt.Preset)
	if opt.Scale > 0 {
		scale = opt.Scale
	}

	var written []string
	for _, s := range formats {
		f, err := ParseFormat(strings.TrimSpace(s))
		if err != nil {
			return written, err
		}
		out := filepath.Join(baseOut, string(f), name+"."+string(f))
		o := Options{Format: f, Margin: opt.Margin, Scale: scale, Background: opt.Background}
		if err := Export(root, out, o); err != nil {
			return written, fmt.Errorf("%s: %w", f, err)
		}
		written = append(written, out)
	}
	return written, nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetWeb:
		return []string{"png", "svg"}
	case PresetPrint:
		return []string{"pdf", "png"}
	default:
		return []string{"svg"}
	}
}

// presetScale is the PNG scale: screen resolution for web, 300 dpi for
// print.
func presetScale(p PresetName) float64 {
	switch p {
	case PresetPrint:
		return 300.0 / 72
	default:
		return 1
	}
}
