/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log sets up slog for momapgo. Records go to a console handler
// (short scoped lines, or JSON) and optionally to a rotated JSON file.
// Records logged with a context from WithTarget carry the output path and
// format of the file being rendered. The geometry and layout packages
// never log.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"momapgo/internal/version"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "MOMAPGO_LOG_LEVEL"
	EnvFormat = "MOMAPGO_LOG_FORMAT"
	EnvSource = "MOMAPGO_LOG_SOURCE"
	EnvFile   = "MOMAPGO_LOG_FILE"
)

// Options configures Init. The zero value logs info and above to stderr
// as console lines.
type Options struct {
	Level   string    // debug | info | warn | error
	Format  string    // console | json
	Source  bool      // append file:line of the call site
	File    string    // rotated JSON log, empty for none
	Console io.Writer // nil means os.Stderr
}

var current atomic.Pointer[slog.Logger]

// FromEnv reads Options from the MOMAPGO_LOG_* variables.
func FromEnv() Options {
	src, _ := strconv.ParseBool(os.Getenv(EnvSource))
	return Options{
		Level:  os.Getenv(EnvLevel),
		Format: os.Getenv(EnvFormat),
		Source: src,
		File:   os.Getenv(EnvFile),
	}
}

// Init replaces the process logger and slog's default.
func Init(opts Options) {
	level := parseLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	jsonOpts := &slog.HandlerOptions{Level: level, AddSource: opts.Source}

	var out fanout
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		out = append(out, slog.NewJSONHandler(console, jsonOpts))
	} else {
		out = append(out, &consoleHandler{w: console, mu: new(sync.Mutex), level: level, source: opts.Source})
	}
	if f := strings.TrimSpace(opts.File); f != "" {
		rot := &lj.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		out = append(out, slog.NewJSONHandler(rot, jsonOpts))
	}

	var h slog.Handler = out
	if len(out) == 1 {
		h = out[0]
	}
	l := slog.New(targetHandler{next: h}).With(
		slog.String("app", "momapgo"),
		slog.String("ver", version.Version),
	)
	current.Store(l)
	slog.SetDefault(l)
}

// L returns the process logger, initialising it from the environment on
// first use.
func L() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return current.Load()
}

// WithComponent scopes the logger to a package-level component such as
// "render" or "cli".
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// WithOperation scopes l to one operation of its component.
func WithOperation(l *slog.Logger, op string) *slog.Logger {
	return l.With(slog.String("op", op))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Target is the file a render writes.
type Target struct {
	Path   string
	Format string
}

type targetKey struct{}

// WithTarget attaches t to ctx. Records logged with the returned context
// gain "output" and "format" attributes.
func WithTarget(ctx context.Context, t Target) context.Context {
	return context.WithValue(ctx, targetKey{}, t)
}

// TargetFrom returns the Target attached by WithTarget.
func TargetFrom(ctx context.Context) (Target, bool) {
	if ctx == nil {
		return Target{}, false
	}
	t, ok := ctx.Value(targetKey{}).(Target)
	return t, ok
}

type targetHandler struct{ next slog.Handler }

func (h targetHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h targetHandler) Handle(ctx context.Context, r slog.Record) error {
	if t, ok := TargetFrom(ctx); ok {
		r = r.Clone()
		if t.Path != "" {
			r.AddAttrs(slog.String("output", t.Path))
		}
		if t.Format != "" {
			r.AddAttrs(slog.String("format", t.Format))
		}
	}
	return h.next.Handle(ctx, r)
}

func (h targetHandler) WithAttrs(as []slog.Attr) slog.Handler {
	return targetHandler{next: h.next.WithAttrs(as)}
}

func (h targetHandler) WithGroup(name string) slog.Handler {
	return targetHandler{next: h.next.WithGroup(name)}
}

// fanout passes each record to every handler enabled for its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(as []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(as)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// consoleHandler writes one line per record:
//
//	15:04:05.000 INF [render/export] exported output=map.svg format=svg
//
// The component and op attributes form the bracketed scope. The app and
// ver attributes only go to JSON output.
type consoleHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Level
	source bool

	component string
	op        string
	group     string // dotted prefix for attributes added after WithGroup
	attrs     []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *consoleHandler) WithAttrs(as []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)
	for _, a := range as {
		if h.group == "" {
			switch a.Key {
			case "component":
				c.component = a.Value.String()
				continue
			case "op":
				c.op = a.Value.String()
				continue
			case "app", "ver":
				continue
			}
		}
		a.Key = h.group + a.Key
		c.attrs = append(c.attrs, a)
	}
	return &c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.group = h.group + name + "."
	return &c
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	b.WriteString(t.Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	if s := h.scope(); s != "" {
		b.WriteString(" [")
		b.WriteString(s)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	if h.source && r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fmt.Fprintf(&b, " src=%s:%d", filepath.Base(f.File), f.Line)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) scope() string {
	switch {
	case h.op == "":
		return h.component
	case h.component == "":
		return h.op
	}
	return h.component + "/" + h.op
}

func levelTag(l slog.Level) string {
	switch l {
	case slog.LevelDebug:
		return "DBG"
	case slog.LevelInfo:
		return "INF"
	case slog.LevelWarn:
		return "WRN"
	case slog.LevelError:
		return "ERR"
	}
	return l.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			writeAttr(b, p, g)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " =\"\n") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	}
	return v.String()
}
