/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"momapgo/internal/bundle"
	"momapgo/internal/config"
	"momapgo/internal/crash"
	"momapgo/internal/demo"
	"momapgo/internal/layout"
	applog "momapgo/internal/log"
	"momapgo/internal/render"
	"momapgo/internal/textlayout"
	"momapgo/internal/version"
)

func usage() {
	fmt.Println("momapgo: molecular map layouts")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  momapgo version|-v|--version                     Show version")
	fmt.Println("  momapgo showroom [-out file] [-format f]         Render every shape and arrowhead")
	fmt.Println("  momapgo demo [-out file] [-format f]             Render the glucose phosphorylation map")
	fmt.Println("  momapgo render [showroom|demo] [-preset p] [-formats svg,png] [-outdir dir] [-zip]")
	fmt.Println("                                                   Render to several formats at once")
	fmt.Println("  momapgo config                                   Show the configuration file path")
}

func loggingOptions(c config.LoggingConfig) applog.Options {
	o := applog.FromEnv()
	if os.Getenv(applog.EnvLevel) == "" && c.Level != "" {
		o.Level = c.Level
	}
	if os.Getenv(applog.EnvFormat) == "" && c.Format != "" {
		o.Format = c.Format
	}
	if os.Getenv(applog.EnvFile) == "" && c.File != "" {
		o.File = c.File
	}
	o.Source = o.Source || c.Source
	return o
}

// loadFonts registers the configured font files as the default text
// measurer. Files that fail to load are logged and skipped.
func loadFonts(c config.FontsConfig, l *slog.Logger) {
	if len(c.Files) == 0 {
		return
	}
	lib := textlayout.NewFontLibrary()
	for _, f := range c.Files {
		if err := lib.LoadTTF(f.Family, f.Weight, f.Italic, f.Path); err != nil {
			l.Warn("font not loaded", slog.String("path", f.Path), slog.Any("err", err))
		}
	}
	textlayout.SetDefault(textlayout.OTProvider{Lib: lib, Fallback: textlayout.BasicProvider{}})
	l.Debug("fonts loaded", slog.Any("families", lib.Families()))
}

func build(name string) (layout.Element, error) {
	switch name {
	case "showroom":
		return demo.Showroom(), nil
	case "demo":
		m, err := demo.GlucoseMap()
		if err != nil {
			return nil, err
		}
		return m.Layout, nil
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}

func renderOne(name string, args []string, cfg config.AppConfig, ctx *crash.Context, l *slog.Logger) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	format := fs.String("format", cfg.Render.Format, "output format: svg, pdf or png")
	out := fs.String("out", "", "output file; the extension selects the format")
	_ = fs.Parse(args)

	if *out == "" {
		f, err := render.ParseFormat(*format)
		if err != nil {
			fail(l, "bad format", err)
		}
		*out = filepath.Join(cfg.Render.OutDir, name+"."+string(f))
	}
	ctx.OutDir = filepath.Dir(*out)
	bg, err := cfg.Render.BackgroundColor()
	if err != nil {
		fail(l, "bad background", err)
	}
	root, err := build(name)
	if err != nil {
		fail(l, "build failed", err)
	}
	opt := render.Options{Margin: cfg.Render.Margin, Scale: cfg.Render.Scale, Background: bg}
	if err := render.Export(root, *out, opt); err != nil {
		fail(l, "render failed", err)
	}
	fmt.Println("Wrote", *out)
}

func renderAll(args []string, cfg config.AppConfig, ctx *crash.Context, l *slog.Logger) {
	name := "demo"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	preset := fs.String("preset", cfg.Render.Preset, "export preset: web or print")
	formats := fs.String("formats", "", "comma separated formats; empty means the preset defaults")
	outDir := fs.String("outdir", cfg.Render.OutDir, "output directory")
	zipped := fs.Bool("zip", false, "also pack the output directory into <outdir>.zip")
	_ = fs.Parse(args)
	ctx.OutDir = *outDir

	bg, err := cfg.Render.BackgroundColor()
	if err != nil {
		fail(l, "bad background", err)
	}
	root, err := build(name)
	if err != nil {
		fail(l, "build failed", err)
	}
	opt := render.BatchOptions{
		Preset:     render.PresetName(*preset),
		Name:       name,
		Margin:     cfg.Render.Margin,
		Background: bg,
		OutDir:     *outDir,
	}
	if *formats != "" {
		opt.Formats = strings.Split(*formats, ",")
	}
	paths, err := render.BatchExport(root, opt)
	if err != nil {
		fail(l, "batch export failed", err)
	}
	for _, p := range paths {
		fmt.Println("Wrote", p)
	}
	if *zipped {
		dest := filepath.Clean(*outDir) + ".zip"
		if _, err := bundle.Pack(*outDir, dest); err != nil {
			fail(l, "bundle failed", err)
		}
		fmt.Println("Wrote", dest)
	}
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(loggingOptions(cfg.Logging))
	l := applog.WithComponent("cli")
	ctx := &crash.Context{OutDir: cfg.Render.OutDir, Args: os.Args[1:]}
	defer crash.Recover(ctx)

	if cfgErr != nil {
		fail(l, "config", cfgErr)
	}
	loadFonts(cfg.Fonts, l)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}
	ctx.Command = args[1]
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "showroom", "demo":
		renderOne(args[1], args[2:], cfg, ctx, l)
	case "render":
		renderAll(args[2:], cfg, ctx, l)
	case "config":
		p, err := config.ConfigPath()
		if err != nil {
			fail(l, "config path", err)
		}
		fmt.Println(p)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Println("Unknown command:", args[1])
		usage()
		os.Exit(2)
	}
}

