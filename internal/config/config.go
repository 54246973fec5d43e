/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */


// Package config holds the user configuration: a YAML file in the user scope,
// validated against an embedded JSON schema, with MOMAPGO_* environment
// variables as read-only overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"momapgo/internal/drawing"
)

// config_version: bump when the structure changes in a backward-incompatible way.

type RenderConfig struct {
	Format     string  `yaml:"format"` // svg | pdf | png
	OutDir     string  `yaml:"out_dir"`
	Scale      float64 `yaml:"scale"`
	Margin     float64 `yaml:"margin"`
	Background string  `yaml:"background"` // color name or hex; empty is transparent
	Preset     string  `yaml:"preset"`     // web | print
}

type FontFile struct {
	Family string `yaml:"family"`
	Path   string `yaml:"path"`
	Weight int    `yaml:"weight"`
	Italic bool   `yaml:"italic"`
}

type FontsConfig struct {
	Family string     `yaml:"family"`
	Size   float64    `yaml:"size"`
	Files  []FontFile `yaml:"files"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Render        RenderConfig  `yaml:"render"`
	Fonts         FontsConfig   `yaml:"fonts"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Render:        RenderConfig{Format: "svg", OutDir: "out", Scale: 1, Margin: 10, Preset: "web"},
		Fonts:         FontsConfig{Family: "DejaVu Sans", Size: 12},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOMAPGO"

// EnvConfigPath points Load and Save at another config file.
const EnvConfigPath = "MOMAPGO_CONFIG"

// ErrInvalidConfig is returned when the config file does not match the schema.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed schema.json
var schemaJSON []byte

// envOverrides lists the environment overrides; nil fields are unset.
type envOverrides struct {
	RenderFormat     *string  `envconfig:"RENDER_FORMAT"`
	RenderOutDir     *string  `envconfig:"RENDER_OUT_DIR"`
	RenderScale      *float64 `envconfig:"RENDER_SCALE"`
	RenderMargin     *float64 `envconfig:"RENDER_MARGIN"`
	RenderBackground *string  `envconfig:"RENDER_BACKGROUND"`
	RenderPreset     *string  `envconfig:"RENDER_PRESET"`
	FontFamily       *string  `envconfig:"FONT_FAMILY"`
	FontSize         *float64 `envconfig:"FONT_SIZE"`
	LogLevel         *string  `envconfig:"LOG_LEVEL"`
	LogFormat        *string  `envconfig:"LOG_FORMAT"`
	LogSource        *bool    `envconfig:"LOG_SOURCE"`
	LogFile          *string  `envconfig:"LOG_FILE"`
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "momapgo")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "momapgo")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "momapgo")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Validate checks a YAML config document against the embedded schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return nil
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	return nil
}

// Load reads the user config file (if present) over the defaults and merges
// environment overrides. A file that does not match the schema is an error.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := Validate(data); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func trimLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// render
	if v := trimLower(src.Render.Format); v != "" {
		dst.Render.Format = v
	}
	if v := strings.TrimSpace(src.Render.OutDir); v != "" {
		dst.Render.OutDir = v
	}
	if src.Render.Scale > 0 {
		dst.Render.Scale = src.Render.Scale
	}
	if src.Render.Margin > 0 {
		dst.Render.Margin = src.Render.Margin
	}
	if v := strings.TrimSpace(src.Render.Background); v != "" {
		dst.Render.Background = v
	}
	if v := trimLower(src.Render.Preset); v != "" {
		dst.Render.Preset = v
	}
	// fonts
	if v := strings.TrimSpace(src.Fonts.Family); v != "" {
		dst.Fonts.Family = v
	}
	if src.Fonts.Size > 0 {
		dst.Fonts.Size = src.Fonts.Size
	}
	if len(src.Fonts.Files) > 0 {
		dst.Fonts.Files = append([]FontFile(nil), src.Fonts.Files...)
	}
	// logging
	if v := trimLower(src.Logging.Level); v != "" {
		dst.Logging.Level = v
	}
	if v := trimLower(src.Logging.Format); v != "" {
		dst.Logging.Format = v
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("env overrides: %w", err)
	}
	setString := func(dst *string, v *string, lower bool) {
		if v == nil || strings.TrimSpace(*v) == "" {
			return
		}
		*dst = strings.TrimSpace(*v)
		if lower {
			*dst = strings.ToLower(*dst)
		}
	}
	setString(&cfg.Render.Format, env.RenderFormat, true)
	setString(&cfg.Render.OutDir, env.RenderOutDir, false)
	setString(&cfg.Render.Background, env.RenderBackground, false)
	setString(&cfg.Render.Preset, env.RenderPreset, true)
	setString(&cfg.Fonts.Family, env.FontFamily, false)
	setString(&cfg.Logging.Level, env.LogLevel, true)
	setString(&cfg.Logging.Format, env.LogFormat, true)
	setString(&cfg.Logging.File, env.LogFile, false)
	if env.RenderScale != nil {
		cfg.Render.Scale = *env.RenderScale
	}
	if env.RenderMargin != nil {
		cfg.Render.Margin = *env.RenderMargin
	}
	if env.FontSize != nil {
		cfg.Fonts.Size = *env.FontSize
	}
	if env.LogSource != nil {
		cfg.Logging.Source = *env.LogSource
	}
	return nil
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	names := map[string]string{
		"render.format":     "RENDER_FORMAT",
		"render.out_dir":    "RENDER_OUT_DIR",
		"render.scale":      "RENDER_SCALE",
		"render.margin":     "RENDER_MARGIN",
		"render.background": "RENDER_BACKGROUND",
		"render.preset":     "RENDER_PRESET",
		"fonts.family":      "FONT_FAMILY",
		"fonts.size":        "FONT_SIZE",
		"logging.level":     "LOG_LEVEL",
		"logging.format":    "LOG_FORMAT",
		"logging.source":    "LOG_SOURCE",
		"logging.file":      "LOG_FILE",
	}
	n, ok := names[key]
	if !ok {
		return "", false
	}
	name := EnvPrefix + "_" + n
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}

// BackgroundColor parses Background; nil means no background.
func (r RenderConfig) BackgroundColor() (*drawing.Color, error) {
	if strings.TrimSpace(r.Background) == "" {
		return nil, nil
	}
	c, err := drawing.ParseColor(r.Background)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
