/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() { Init(Options{Console: io.Discard}) })
}

func TestConsoleScopeAndTarget(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer
	Init(Options{Console: &buf})

	l := WithOperation(WithComponent("render"), "export")
	ctx := WithTarget(context.Background(), Target{Path: "out/map.svg", Format: "svg"})
	l.InfoContext(ctx, "exported", "width", 12.5, "took", 1500*time.Microsecond)
	l.Debug("hidden at info")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("want one line, got %q", out)
	}
	for _, want := range []string{" INF [render/export] exported", "output=out/map.svg", "format=svg", "width=12.5", "took=1.5ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	for _, bad := range []string{"app=", "ver=", "component=", "op="} {
		if strings.Contains(out, bad) {
			t.Fatalf("console line carries %q: %q", bad, out)
		}
	}
}

func TestConsoleGroupsQuotingAndSource(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, mu: new(sync.Mutex), level: slog.LevelWarn, source: true}
	if h.Enabled(context.Background(), slog.LevelInfo) || !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("level gate wrong")
	}
	g := h.WithAttrs([]slog.Attr{slog.String("component", "sbgn")}).
		WithGroup("glyph").
		WithAttrs([]slog.Attr{slog.String("id", "g1")})

	var pcs [1]uintptr
	runtime.Callers(1, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelError, "bad glyph", pcs[0])
	r.AddAttrs(slog.String("label", "ATP synthase"), slog.Group("pos", slog.Float64("x", 1), slog.Float64("y", 2)))
	if err := g.Handle(context.Background(), r); err != nil {
		t.Fatalf("handle: %v", err)
	}

	out := buf.String()
	for _, want := range []string{" ERR [sbgn] bad glyph", "glyph.id=g1", `glyph.label="ATP synthase"`, "glyph.pos.x=1", "glyph.pos.y=2", "src=logger_test.go:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "glyph.component") {
		t.Fatalf("component leaked into attrs: %q", out)
	}
}

func TestFanoutHonoursEachLevel(t *testing.T) {
	var warn, debug bytes.Buffer
	f := fanout{
		slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	if !f.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("fanout should be enabled when any handler is")
	}
	l := slog.New(f).With("k", "v")
	l.Info("one")
	l.Warn("two")
	if n := strings.Count(warn.String(), "\n"); n != 1 {
		t.Fatalf("warn handler got %d records: %q", n, warn.String())
	}
	if n := strings.Count(debug.String(), "\n"); n != 2 {
		t.Fatalf("debug handler got %d records: %q", n, debug.String())
	}
	if !strings.Contains(debug.String(), `"k":"v"`) {
		t.Fatalf("attrs not propagated: %q", debug.String())
	}
}

func TestJSONFileLogging(t *testing.T) {
	resetLogger(t)
	// lumberjack keeps the file open; a plain temp path avoids TempDir cleanup failures.
	path := filepath.Join(os.TempDir(), "momapgo-log-"+time.Now().Format("150405.000000000")+".jsonl")
	t.Cleanup(func() { _ = os.Remove(path) })

	var console bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Console: &console, File: path})
	ctx := WithTarget(context.Background(), Target{Path: "glycolysis.pdf", Format: "pdf"})
	WithComponent("render").DebugContext(ctx, "pdf ignores filters", "elements", 2)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatalf("log file empty")
	}
	for name, line := range map[string][]byte{"file": sc.Bytes(), "console": bytes.TrimSpace(console.Bytes())} {
		var m map[string]any
		if err := json.Unmarshal(line, &m); err != nil {
			t.Fatalf("%s: bad json %q: %v", name, line, err)
		}
		if m["app"] != "momapgo" || m["component"] != "render" || m["output"] != "glycolysis.pdf" || m["format"] != "pdf" {
			t.Fatalf("%s: unexpected record %v", name, m)
		}
	}
}

func TestTargetFrom(t *testing.T) {
	if _, ok := TargetFrom(context.Background()); ok {
		t.Fatalf("background context has no target")
	}
	ctx := WithTarget(context.Background(), Target{Path: "a.png"})
	got, ok := TargetFrom(ctx)
	if !ok || got.Path != "a.png" || got.Format != "" {
		t.Fatalf("got %+v %v", got, ok)
	}
}

func TestFromEnvAndLevels(t *testing.T) {
	t.Setenv(EnvLevel, "warning")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "true")
	t.Setenv(EnvFile, "")
	o := FromEnv()
	if o.Level != "warning" || o.Format != "json" || !o.Source || o.File != "" {
		t.Fatalf("FromEnv: %+v", o)
	}
	cases := map[string]slog.Level{"": slog.LevelInfo, "DEBUG": slog.LevelDebug, " warning ": slog.LevelWarn, "error": slog.LevelError, "loud": slog.LevelInfo}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
