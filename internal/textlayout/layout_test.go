/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestWordWrap_Naive(t *testing.T) {
	l := NewWordWrap(BasicProvider{})
	box := l.Layout("Hello world from Go", FontSpec{}, 50)
	if len(box.Lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(box.Lines))
	}
	if box.Width <= 0 || box.Height <= 0 {
		t.Fatalf("expected positive box size: %+v", box)
	}
	for _, ln := range box.Lines {
		if ln.Width > 50 && len(ln.Text) > 5 {
			t.Fatalf("line wider than box: %+v", ln)
		}
	}
}

func TestWordWrap_NewlinesAndNoWrap(t *testing.T) {
	box := NewWordWrap(BasicProvider{}).Layout("ATP\nADP", FontSpec{}, 0)
	if len(box.Lines) != 2 || box.Lines[0].Text != "ATP" || box.Lines[1].Text != "ADP" {
		t.Fatalf("unexpected lines: %+v", box.Lines)
	}
	// basic font advances are 7px per glyph at 13px
	if box.Lines[0].Width != 21 {
		t.Fatalf("unexpected width: %v", box.Lines[0].Width)
	}
}

func TestWordWrap_ScalesToRequestedSize(t *testing.T) {
	small := NewWordWrap(BasicProvider{}).Layout("glucose", FontSpec{Size: 13}, 0)
	big := NewWordWrap(BasicProvider{}).Layout("glucose", FontSpec{Size: 26}, 0)
	if math.Abs(big.Width-2*small.Width) > 1e-9 || math.Abs(big.LineHeight-2*small.LineHeight) > 1e-9 {
		t.Fatalf("expected doubled metrics: %+v vs %+v", small, big)
	}
}

func TestMeasure_Deterministic(t *testing.T) {
	w1, h1 := Measure(BasicProvider{}, "ABC", FontSpec{})
	w2, h2 := Measure(BasicProvider{}, "ABC", FontSpec{Family: "Other"})
	if w1 != w2 || h1 != h2 {
		t.Fatalf("expected same measure, got w1=%v h1=%v vs w2=%v h2=%v", w1, h1, w2, h2)
	}
}

func TestOTProvider_LoadedFamilyAndFallback(t *testing.T) {
	lib := NewFontLibrary()
	p := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(p, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	if err := lib.LoadTTF("Go", 400, false, p); err != nil {
		t.Fatalf("load font: %v", err)
	}
	if fams := lib.Families(); len(fams) != 1 || fams[0] != "Go" {
		t.Fatalf("unexpected families: %v", fams)
	}
	prov := OTProvider{Lib: lib}
	_, m := prov.Resolve(FontSpec{Family: "Go", Size: 20})
	if m.Size != 20 || m.Ascent <= 0 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
	_, fb := prov.Resolve(FontSpec{Family: "Missing", Size: 20})
	if fb.Size != 13 {
		t.Fatalf("expected basic fallback, got %+v", fb)
	}
	if err := lib.LoadTTFBytes("Bad", 400, false, []byte("nope")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultProvider(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })
	SetDefault(OTProvider{})
	if _, ok := Default().(OTProvider); !ok {
		t.Fatalf("expected OTProvider default")
	}
	SetDefault(nil)
	if _, ok := Default().(BasicProvider); !ok {
		t.Fatalf("expected BasicProvider default")
	}
}
