/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package bundle packs the files of a batch export into one zip archive and
// unpacks such archives again.
package bundle

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	applog "momapgo/internal/log"
	"momapgo/internal/version"
)

// ManifestName is the archive entry listing the packed files.
const ManifestName = "bundle.manifest.txt"

// ErrUnsafePath is returned for archive entries that would land outside the
// target directory.
var ErrUnsafePath = errors.New("unsafe path in bundle")

// Pack zips every file below dir into dest. Entry names are relative to dir
// with forward slashes, preceded by a manifest. It returns the number of
// packed files.
func Pack(dir, dest string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("bundle"), "pack").With(slog.String("dir", dir))
	if strings.TrimSpace(dir) == "" || strings.TrimSpace(dest) == "" {
		return 0, errors.New("dir and dest are required")
	}
	absDest, _ := filepath.Abs(dest)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == absDest {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(files)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("ensure bundle dir: %w", err)
	}
	zf, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("create bundle: %w", err)
	}
	defer func() { _ = zf.Close() }()
	zw := zip.NewWriter(zf)

	manifest := fmt.Sprintf("%s export bundle\nCreated: %s\n\n%s\n",
		version.String(), time.Now().Format(time.RFC3339), strings.Join(files, "\n"))
	w, err := zw.Create(ManifestName)
	if err != nil {
		return 0, fmt.Errorf("add manifest: %w", err)
	}
	if _, err := io.WriteString(w, manifest); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}
	for _, name := range files {
		if err := addFile(zw, filepath.Join(dir, filepath.FromSlash(name)), name); err != nil {
			l.Error("pack failed", slog.String("file", name), slog.Any("err", err))
			return 0, fmt.Errorf("add %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finish bundle: %w", err)
	}
	l.Info("bundle written", slog.Int("files", len(files)), slog.String("zip", dest))
	return len(files), nil
}

func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	fw, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, f)
	return err
}

// Unpack extracts the bundle at src into dir, skipping the manifest and files
// that already exist. It returns the number of extracted files.
func Unpack(src, dir string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("bundle"), "unpack").With(slog.String("dir", dir))
	r, err := zip.OpenReader(src)
	if err != nil {
		return 0, fmt.Errorf("open bundle: %w", err)
	}
	defer func() { _ = r.Close() }()

	n := 0
	for _, f := range r.File {
		if f.Name == ManifestName || f.FileInfo().IsDir() {
			continue
		}
		target, err := safeJoin(dir, f.Name)
		if err != nil {
			return n, err
		}
		if _, err := os.Stat(target); err == nil {
			l.Warn("skip existing file", slog.String("path", target))
			continue
		}
		if err := extract(f, target); err != nil {
			return n, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		n++
	}
	l.Info("bundle extracted", slog.Int("files", n))
	return n, nil
}

func safeJoin(dir, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	return filepath.Join(dir, clean), nil
}

func extract(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
