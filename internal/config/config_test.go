/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */


package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"momapgo/internal/drawing"
)

func isolate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, path)
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Format != "svg" || cfg.Fonts.Family != "DejaVu Sans" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestEnvOverridesRender(t *testing.T) {
	isolate(t)
	t.Setenv("MOMAPGO_RENDER_FORMAT", "PDF")
	t.Setenv("MOMAPGO_RENDER_SCALE", "2.5")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Format != "pdf" || cfg.Render.Scale != 2.5 {
		t.Fatalf("render overrides not applied: %#v", cfg.Render)
	}
	if name, ok := EnvOverrideFor("render.format"); !ok || name != "MOMAPGO_RENDER_FORMAT" {
		t.Fatalf("EnvOverrideFor = %q %v", name, ok)
	}
	if _, ok := EnvOverrideFor("render.preset"); ok {
		t.Fatalf("render.preset is not overridden")
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolate(t)
	t.Setenv("MOMAPGO_LOG_LEVEL", "error")
	t.Setenv("MOMAPGO_LOG_FORMAT", "json")
	t.Setenv("MOMAPGO_LOG_SOURCE", "true")
	t.Setenv("MOMAPGO_LOG_FILE", "X:/momapgo.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "X:/momapgo.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}

func TestEnvOverrideParseError(t *testing.T) {
	isolate(t)
	t.Setenv("MOMAPGO_RENDER_SCALE", "big")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed scale")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Defaults()
	cfg.Render.Background = "#ffffff"
	cfg.Fonts.Files = []FontFile{{Family: "Cantarell", Path: "/fonts/Cantarell.ttf", Weight: 400}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Render.Background != "#ffffff" || len(got.Fonts.Files) != 1 || got.Fonts.Files[0].Family != "Cantarell" {
		t.Fatalf("round trip lost fields: %#v", got)
	}
	bg, err := got.Render.BackgroundColor()
	if err != nil || bg == nil || *bg != drawing.White {
		t.Fatalf("background %v %v", bg, err)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("render:\n  format: gif\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
	if err := Validate([]byte("logging:\n  level: debug\n")); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if err := Validate([]byte("unknown_section: {}\nrender: {colour: red}\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown render key accepted: %v", err)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := AppConfig{Logging: LoggingConfig{Level: " DEBUG ", Format: "json", Source: true, File: "/tmp/momapgo.log"}}
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/momapgo.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
	if dst.Render.Format != "svg" {
		t.Fatalf("empty render section overwrote defaults: %#v", dst.Render)
	}
}
